// internal/app/system/mailer/resend.go
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Resend sends mail through the Resend API with a static key.
type Resend struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

// NewResend creates a Resend transport.
func NewResend(apiKey, from string, logger *zap.Logger) *Resend {
	return &Resend{
		client: resend.NewClient(apiKey),
		from:   from,
		log:    logger,
	}
}

// Send delivers one message.
func (t *Resend) Send(ctx context.Context, e Email) error {
	params := &resend.SendEmailRequest{
		From:    t.from,
		To:      []string{e.To},
		Subject: e.Subject,
		Text:    e.Body,
	}
	if _, err := t.client.Emails.SendWithContext(ctx, params); err != nil {
		t.log.Warn("resend send failed", zap.String("to", e.To), zap.Error(err))
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
