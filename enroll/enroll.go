// Package enroll talks to the external enrollment backend. Both deployment
// modes — the server-rendered registration flow and the JSON gateway — sit
// behind the one Submitter, so callers never know which is live.
package enroll

import (
	"context"
	"encoding/json"

	"github.com/strimtechdev/academy/registration"
)

// Submitter forwards one complete registration to the enrollment backend
// and returns its opaque response body.
type Submitter interface {
	Submit(ctx context.Context, reg registration.Registration) (json.RawMessage, error)
}

// Error describes a failed submission attempt with a message safe to show
// the applicant. Status is the backend's HTTP status, or 0 when the
// failure happened before a response arrived (transport, marshalling).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Fallback messages when the backend gives nothing usable.
const (
	MsgRejected  = "Registration failed. Please try again."
	MsgTransport = "Server error processing registration"
)
