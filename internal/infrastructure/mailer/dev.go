package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

// DevMailer logs the message instead of sending it. Default transport in
// development so the API works without SMTP or Gmail credentials.
type DevMailer struct {
	logger zerolog.Logger
}

func NewDevMailer(logger zerolog.Logger) *DevMailer {
	return &DevMailer{logger: logger}
}

func (d *DevMailer) Send(_ context.Context, toEmail, toName, subject, text, _ string) error {
	d.logger.Info().
		Str("to", toEmail).
		Str("name", toName).
		Str("subject", subject).
		Str("body", text).
		Msg("dev mail (not sent)")
	return nil
}
