package email

import (
	"talentiq_backend/internal/logger"
)

// NoopProvider is used when email delivery is disabled. It logs the
// message at debug level and reports success.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email delivery disabled, dropping message",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *NoopProvider) Validate() error {
	return nil
}
