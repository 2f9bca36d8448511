package services

import (
	"context"
	"fmt"
	"log"

	"latinaempire/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendLeadNotification tells the site inbox about a new lead using the "lead_notification" template.
func (s *emailService) SendLeadNotification(ctx context.Context, data *domain.LeadNotificationEmailData) error {
	if data == nil || data.Lead == nil {
		return fmt.Errorf("lead notification data is nil")
	}
	if data.Inbox == "" {
		return fmt.Errorf("lead notification inbox is empty")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("lead_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render lead_notification template: %w", err)
	}
	if err := s.mailer.Send(data.Inbox, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}
	log.Printf("[EMAIL] Lead notification (%s) sent to %s", data.Lead.Kind, data.Inbox)
	return nil
}

// SendNewsletterWelcome greets a new subscriber using the "newsletter_welcome" template.
func (s *emailService) SendNewsletterWelcome(ctx context.Context, data *domain.NewsletterWelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("newsletter welcome data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("newsletter_welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render newsletter_welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send newsletter welcome: %w", err)
	}
	log.Printf("[EMAIL] Newsletter welcome sent to %s", data.Email)
	return nil
}
