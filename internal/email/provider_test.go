package email

import (
	"testing"

	"talentiq_backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewFromConfig_DisabledUsesNoop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Email.Enabled = false

	p := NewFromConfig(cfg)

	assert.IsType(t, &NoopProvider{}, p)
	assert.NoError(t, p.Send(&Email{To: []string{"a@b.test"}, Subject: "hi"}))
}

func TestNewFromConfig_EnabledUsesSMTP(t *testing.T) {
	cfg := &config.Config{}
	cfg.Email.Enabled = true
	cfg.Email.SMTPHost = "smtp.example.test"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@example.test"

	p := NewFromConfig(cfg)

	assert.IsType(t, &SMTPProvider{}, p)
	assert.NoError(t, p.Validate())
}

func TestSMTPProvider_ValidateRejectsBadConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Email.SMTPPort = 587

	p := NewSMTPProvider(cfg)
	assert.Error(t, p.Validate())

	cfg.Email.SMTPHost = "smtp.example.test"
	cfg.Email.SMTPPort = 0
	p = NewSMTPProvider(cfg)
	assert.Error(t, p.Validate())
}
