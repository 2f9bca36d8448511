package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"latinaempire/internal/domain"
)

// Lead field limits.
const (
	maxNameLen    = 120
	maxSubjectLen = 200
	maxMessageLen = 5000
	maxPhoneLen   = 40
)

type leadService struct {
	repo           domain.LeadRepository
	emailService   domain.EmailService
	inbox          string
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
	newID          func() string
}

// NewLeadService returns a LeadService that stores leads in repo and notifies inbox through emailService.
func NewLeadService(repo domain.LeadRepository, emailService domain.EmailService, inbox string, logger *slog.Logger, timeout time.Duration) domain.LeadService {
	if logger == nil {
		logger = slog.Default()
	}
	return &leadService{
		repo:           repo,
		emailService:   emailService,
		inbox:          inbox,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
		newID:          func() string { return uuid.NewString() },
	}
}

func (s *leadService) SubmitContact(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if lead == nil {
		return nil, fmt.Errorf("lead is nil: %w", domain.ErrValidation)
	}
	l := s.prepare(lead, domain.LeadKindContact)
	if errs := validateLead(l); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(errs, "; "), domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("store contact lead: %w", err)
	}
	s.notify(ctx, l)
	return l, nil
}

// SubscribeNewsletter is idempotent: subscribing an address twice succeeds
// without a second welcome email.
func (s *leadService) SubscribeNewsletter(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if lead == nil {
		return nil, fmt.Errorf("lead is nil: %w", domain.ErrValidation)
	}
	l := s.prepare(lead, domain.LeadKindNewsletter)
	if errs := validateLead(l); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(errs, "; "), domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.repo.Create(ctx, l); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			s.logger.InfoContext(ctx, "newsletter already subscribed", "email", l.Email)
			// The stored row keeps its own ID and timestamp.
			return &domain.Lead{Kind: l.Kind, Email: l.Email, Name: l.Name, Source: l.Source}, nil
		}
		return nil, fmt.Errorf("store newsletter lead: %w", err)
	}
	s.notify(ctx, l)
	if s.emailService != nil {
		if err := s.emailService.SendNewsletterWelcome(ctx, &domain.NewsletterWelcomeEmailData{Email: l.Email, Name: l.Name}); err != nil {
			s.logger.WarnContext(ctx, "newsletter welcome failed", "lead_id", l.ID, "err", err)
		}
	}
	return l, nil
}

func (s *leadService) ListLeads(ctx context.Context, kind string, params domain.PaginationParams) ([]*domain.Lead, int, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != "" && kind != domain.LeadKindContact && kind != domain.LeadKindNewsletter {
		return nil, 0, fmt.Errorf("unknown lead kind %q: %w", kind, domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	total, err := s.repo.Count(ctx, kind)
	if err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}
	leads, err := s.repo.List(ctx, kind, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	return leads, total, nil
}

// notify emails the inbox. Failures are logged; the lead is already stored.
func (s *leadService) notify(ctx context.Context, l *domain.Lead) {
	if s.emailService == nil || s.inbox == "" {
		return
	}
	if err := s.emailService.SendLeadNotification(ctx, &domain.LeadNotificationEmailData{Inbox: s.inbox, Lead: l}); err != nil {
		s.logger.WarnContext(ctx, "lead notification failed", "lead_id", l.ID, "kind", l.Kind, "err", err)
	}
}

// prepare copies the submitted fields into a new Lead of the given kind with a
// fresh ID and timestamp. Client-supplied IDs and timestamps are ignored.
func (s *leadService) prepare(in *domain.Lead, kind string) *domain.Lead {
	return &domain.Lead{
		ID:        s.newID(),
		Kind:      kind,
		CreatedAt: s.now().UTC(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Source:    strings.TrimSpace(in.Source),
	}
}

func validateLead(l *domain.Lead) []string {
	var errs []string
	if l.Email == "" {
		errs = append(errs, "email is required")
	} else if !domain.ValidEmail(l.Email) {
		errs = append(errs, "invalid email format")
	}
	if len(l.Name) > maxNameLen {
		errs = append(errs, fmt.Sprintf("name must be at most %d characters", maxNameLen))
	}
	if len(l.Phone) > maxPhoneLen {
		errs = append(errs, fmt.Sprintf("phone must be at most %d characters", maxPhoneLen))
	}
	if len(l.Subject) > maxSubjectLen {
		errs = append(errs, fmt.Sprintf("subject must be at most %d characters", maxSubjectLen))
	}
	if len(l.Message) > maxMessageLen {
		errs = append(errs, fmt.Sprintf("message must be at most %d characters", maxMessageLen))
	}
	if l.Kind == domain.LeadKindContact {
		if l.Name == "" {
			errs = append(errs, "name is required")
		}
		if l.Message == "" {
			errs = append(errs, "message is required")
		}
	}
	return errs
}
