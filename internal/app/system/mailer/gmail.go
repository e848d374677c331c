// internal/app/system/mailer/gmail.go
package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// DefaultGmailEndpoint is the Gmail API send URL.
const DefaultGmailEndpoint = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// Config keys holding the Gmail credentials. The token is refreshed manually
// by an operator through the /config endpoints.
const (
	gmailEmailKey = "gmail_email"
	gmailTokenKey = "gmail_token"
)

// ErrGmailNotConfigured is returned when the sender address or OAuth token
// is missing from system configuration.
var ErrGmailNotConfigured = errors.New("gmail configuration missing (email or token)")

// Gmail sends mail through the Gmail REST API. Credentials are read from
// the configurations store on every send so an operator-updated token takes
// effect without a restart.
type Gmail struct {
	Endpoint string
	cfg      ConfigReader
	log      *zap.Logger
}

// NewGmail creates a Gmail transport backed by the given credential source.
func NewGmail(cfg ConfigReader, logger *zap.Logger) *Gmail {
	return &Gmail{
		Endpoint: DefaultGmailEndpoint,
		cfg:      cfg,
		log:      logger,
	}
}

// Send builds an RFC 2822 message, base64url-encodes it, and posts it to the
// Gmail API with the stored bearer token.
func (g *Gmail) Send(ctx context.Context, e Email) error {
	creds, err := g.cfg.GetMany(ctx, []string{gmailEmailKey, gmailTokenKey})
	if err != nil {
		return fmt.Errorf("load gmail credentials: %w", err)
	}
	sender := creds[gmailEmailKey]
	accessToken := creds[gmailTokenKey]
	if sender == "" || accessToken == "" {
		return ErrGmailNotConfigured
	}

	raw := buildRawMessage(sender, e)
	payload, err := json.Marshal(map[string]string{"raw": raw})
	if err != nil {
		return err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(ctx, ts)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.log.Warn("gmail send failed",
			zap.Int("status", resp.StatusCode),
			zap.String("to", e.To))
		return fmt.Errorf("gmail API error (status %d): %s", resp.StatusCode, body)
	}
	return nil
}

// buildRawMessage assembles a minimal text/plain MIME message and encodes it
// the way the Gmail API expects (base64url, no padding stripped).
func buildRawMessage(from string, e Email) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", e.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", e.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(e.Body)
	return base64.URLEncoding.EncodeToString(buf.Bytes())
}
