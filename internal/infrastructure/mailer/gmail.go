package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

const gmailSendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// GmailMailer sends mail through the Gmail REST API using an OAuth2
// refresh token. Access tokens are minted and renewed by the oauth2
// token source; no token state is persisted.
type GmailMailer struct {
	from   string
	client *http.Client
}

func NewGmailMailer(clientID, clientSecret, refreshToken, from string) *GmailMailer {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
		Scopes: []string{"https://www.googleapis.com/auth/gmail.send"},
	}
	token := &oauth2.Token{RefreshToken: refreshToken}

	return &GmailMailer{
		from:   from,
		client: conf.Client(context.Background(), token),
	}
}

func (g *GmailMailer) Send(ctx context.Context, toEmail, toName, subject, text, html string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	raw := base64.URLEncoding.WithPadding(base64.NoPadding).
		EncodeToString(buildMessage(g.from, toEmail, subject, text, html))

	body, err := json.Marshal(map[string]string{"raw": raw})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gmailSendURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("gmail send: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}
