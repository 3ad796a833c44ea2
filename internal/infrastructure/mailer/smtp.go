package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends mail through a plain SMTP relay. With UseTLS false and no
// user it talks unauthenticated (Mailpit on 1025); otherwise it tries
// STARTTLS and falls back to implicit TLS.
type SMTPMailer struct {
	Host   string
	Port   int
	From   string
	User   string
	Pass   string
	UseTLS bool
}

func NewSMTPMailer(host string, port int, from, user, pass string, useTLS bool) *SMTPMailer {
	return &SMTPMailer{
		Host:   strings.TrimSpace(host),
		Port:   port,
		From:   strings.TrimSpace(from),
		User:   strings.TrimSpace(user),
		Pass:   strings.TrimSpace(pass),
		UseTLS: useTLS,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, toEmail, toName, subject, text, html string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	msg := buildMessage(s.From, toEmail, subject, text, html)
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// No auth, no TLS: local relay path.
	if !s.UseTLS && s.User == "" {
		return smtp.SendMail(addr, nil, s.From, []string{toEmail}, msg)
	}

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// SendMail upgrades to STARTTLS when the server advertises it.
	err := smtp.SendMail(addr, auth, s.From, []string{toEmail}, msg)
	if err == nil {
		return nil
	}

	if s.UseTLS {
		return s.sendImplicitTLS(ctx, addr, auth, toEmail, msg)
	}
	return fmt.Errorf("smtp send: %w", err)
}

// sendImplicitTLS handles servers that require TLS from the first byte (port 465).
func (s *SMTPMailer) sendImplicitTLS(ctx context.Context, addr string, auth smtp.Auth, toEmail string, msg []byte) error {
	dialer := tls.Dialer{Config: &tls.Config{ServerName: s.Host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if auth != nil {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(toEmail); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// buildMessage assembles a multipart/alternative RFC 822 message with a
// plain-text part and an HTML part.
func buildMessage(from, to, subject, text, html string) []byte {
	var buf bytes.Buffer
	boundary := "mixed-boundary"
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", text)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", html)

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}
