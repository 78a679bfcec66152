package email

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"talentiq_backend/internal/config"
)

// SMTPProvider sends mail through an SMTP server via gomail.
type SMTPProvider struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	fromName  string
	useTLS    bool
}

// NewSMTPProvider creates an SMTP provider from the email section of the
// application config.
func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		host:      cfg.Email.SMTPHost,
		port:      cfg.Email.SMTPPort,
		username:  cfg.Email.SMTPUsername,
		password:  cfg.Email.SMTPPassword,
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
		useTLS:    cfg.Email.UseTLS,
	}
}

// Send sends a single message.
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	if p.fromName != "" {
		m.SetAddressHeader("From", p.fromEmail, p.fromName)
	} else {
		m.SetHeader("From", p.fromEmail)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		m.AddAlternative("text/html", email.HTMLBody)
	}

	d := gomail.NewDialer(p.host, p.port, p.username, p.password)
	if p.useTLS {
		d.TLSConfig = &tls.Config{ServerName: p.host}
	}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Validate checks the SMTP configuration.
func (p *SMTPProvider) Validate() error {
	if p.host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.port <= 0 || p.port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.port)
	}
	if p.fromEmail == "" {
		return fmt.Errorf("sender address is required")
	}
	return nil
}
