// internal/app/system/mailer/mailer.go

// Package mailer sends one-shot emails through an external provider.
// Two transports are available: the Gmail REST API using OAuth credentials
// stored in system configuration, and Resend using a static API key.
// The provider is selected by the mail_provider config key at startup.
package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Transport delivers a single email. Implementations must be safe for
// sequential reuse within one request; the bulk dispatcher calls Send once
// per recipient.
type Transport interface {
	Send(ctx context.Context, e Email) error
}

// ConfigReader supplies stored credential values by key. Satisfied by the
// configurations store.
type ConfigReader interface {
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
}

// New selects a transport by provider name.
func New(provider, from, resendAPIKey string, cfg ConfigReader, logger *zap.Logger) (Transport, error) {
	switch provider {
	case "gmail", "":
		return NewGmail(cfg, logger), nil
	case "resend":
		return NewResend(resendAPIKey, from, logger), nil
	}
	return nil, fmt.Errorf("unknown mail provider %q", provider)
}
