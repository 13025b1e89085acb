package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"inkwell-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendWelcomeEmail greets a freshly registered user. Callers treat a
// failure as non-fatal; registration succeeds either way.
func (es *EmailService) SendWelcomeEmail(email, username string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Inkwell")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour account is ready. Write your first post at /create.\n",
		username,
	))

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
