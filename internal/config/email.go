package config

import (
	"context"
	"log"

	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"
)

// EmailService delivers transactional email through Resend. Delivery is
// optional: when no API key is configured the service is disabled and every
// send is a logged no-op.
type EmailService struct {
	client *resend.Client
	from   string
}

func NewEmailService(lc fx.Lifecycle, cfg *Config) *EmailService {
	service := &EmailService{from: cfg.FromEmail}
	if cfg.ResendAPIKey != "" && cfg.FromEmail != "" {
		service.client = resend.NewClient(cfg.ResendAPIKey)
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if service.Enabled() {
				log.Println("Email service initialized")
			} else {
				log.Println("Email service disabled (RESEND_API_KEY or FROM_EMAIL not set)")
			}
			return nil
		},
	})
	return service
}

func (e *EmailService) Enabled() bool {
	return e != nil && e.client != nil
}

func (e *EmailService) SendEmail(to, subject, body string) error {
	if !e.Enabled() {
		log.Println("Email service disabled, skipping email to", to)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	if _, err := e.client.Emails.Send(params); err != nil {
		return err
	}

	log.Println("Email sent successfully to", to)
	return nil
}
