package domain

import (
	"context"
	"regexp"
	"time"
)

// Lead kinds captured by the site's forms.
const (
	LeadKindContact    = "contact"
	LeadKindNewsletter = "newsletter"
)

// Lead is a contact or newsletter form submission.
// swagger:model Lead
type Lead struct {
	ID        string    `json:"id,omitempty"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether email looks like a deliverable address.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// LeadRepository defines storage for captured leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	// List returns one page of leads, newest first. kind "" lists every kind.
	List(ctx context.Context, kind string, params PaginationParams) ([]*Lead, error)
	Count(ctx context.Context, kind string) (int, error)
}

// LeadService captures form submissions and serves the admin inbox.
type LeadService interface {
	SubmitContact(ctx context.Context, lead *Lead) (*Lead, error)
	SubscribeNewsletter(ctx context.Context, lead *Lead) (*Lead, error)
	ListLeads(ctx context.Context, kind string, params PaginationParams) ([]*Lead, int, error)
}
