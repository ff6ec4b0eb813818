// Package handlers wires the HTTP surface: the rendered pages, the
// server-side registration flow, and the JSON enrollment gateway.
package handlers

import (
	"github.com/strimtechdev/academy/config"
	"github.com/strimtechdev/academy/enroll"
	"github.com/strimtechdev/academy/notify"
)

// Handlers carries the shared dependencies for every route.
type Handlers struct {
	cfg       *config.Config
	submitter enroll.Submitter
	notifier  *notify.Telegram
}

// New builds the handler set. notifier may be nil (notifications off).
func New(cfg *config.Config, submitter enroll.Submitter, notifier *notify.Telegram) *Handlers {
	return &Handlers{
		cfg:       cfg,
		submitter: submitter,
		notifier:  notifier,
	}
}
