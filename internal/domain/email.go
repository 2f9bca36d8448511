package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// LeadNotificationEmailData holds data for the inbox notification sent on every lead.
type LeadNotificationEmailData struct {
	Inbox string
	Lead  *Lead
}

// NewsletterWelcomeEmailData holds data for the welcome email sent to new subscribers.
type NewsletterWelcomeEmailData struct {
	Email string
	Name  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendLeadNotification(ctx context.Context, data *LeadNotificationEmailData) error
	SendNewsletterWelcome(ctx context.Context, data *NewsletterWelcomeEmailData) error
}
