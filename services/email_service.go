// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"showroom-api/config"
)

// EmailService notifies showroom staff about new leads. Sending is best
// effort: the lead is already persisted before any mail goes out, and a
// mail failure is only logged.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	}
}

// Enabled reports whether SMTP and a staff recipient are configured.
func (es *EmailService) Enabled() bool {
	return es.config.SMTPHost != "" && es.config.StaffEmail != ""
}

// NotifyStaff sends a plain-text lead notification to the staff inbox.
func (es *EmailService) NotifyStaff(subject, body string) error {
	if !es.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", es.config.StaffEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		fmt.Printf("Warning: failed to send lead notification: %v\n", err)
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	return nil
}
