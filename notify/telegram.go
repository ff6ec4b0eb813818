// Package notify announces new enrollments to a staff chat. Notification
// is best-effort: failures are logged and never affect the enrollment
// outcome the applicant sees.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/strimtechdev/academy/logging"
	"github.com/strimtechdev/academy/registration"
)

// Telegram sends lead alerts to a fixed chat. A nil *Telegram is a valid
// no-op notifier, so call sites don't branch on configuration.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram returns nil (disabled) when token or chat id is unset.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// EnrollmentReceived posts a lead alert for a registration the backend
// accepted.
func (t *Telegram) EnrollmentReceived(reg registration.Registration) {
	if t == nil {
		return
	}
	text := fmt.Sprintf(
		"🎓 New enrollment\nCourse: %s\nName: %s %s\nEmail: %s\nPhone: %s\nState: %s\nReferred by: %s",
		reg.CourseID, reg.Firstname, reg.Lastname, reg.Email,
		reg.PhoneNumber, reg.State, orNone(reg.Ref),
	)
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		logging.Logger.Warn("telegram notification failed", zap.Error(err))
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
