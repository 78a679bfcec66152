package email

import (
	"talentiq_backend/internal/config"
)

// Provider defines the interface for sending email.
type Provider interface {
	// Send sends a single message.
	Send(email *Email) error

	// Validate checks the provider configuration.
	Validate() error
}

// NewFromConfig picks the provider for the current configuration: SMTP
// when email is enabled, otherwise a no-op that only logs.
func NewFromConfig(cfg *config.Config) Provider {
	if !cfg.Email.Enabled {
		return NewNoopProvider()
	}
	return NewSMTPProvider(cfg)
}
