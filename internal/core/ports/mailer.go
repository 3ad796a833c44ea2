package ports

import "context"

// Mailer sends a single transactional email. Implementations decide the
// transport (SMTP, Gmail API, log-only in development).
type Mailer interface {
	Send(ctx context.Context, toEmail, toName, subject, text, html string) error
}
