package services

import (
	"context"
	"time"

	"latinaempire/internal/domain"
)

type eventService struct {
	repo           domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService returns an EventService reading from repo.
func NewEventService(repo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{repo: repo, contextTimeout: timeout}
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ApplyEventFilter(events, filter), nil
}

func (s *eventService) GetEvent(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.repo.GetBySlug(ctx, slug)
}

type ambassadorService struct {
	repo           domain.AmbassadorRepository
	contextTimeout time.Duration
}

// NewAmbassadorService returns an AmbassadorService reading from repo.
func NewAmbassadorService(repo domain.AmbassadorRepository, timeout time.Duration) domain.AmbassadorService {
	return &ambassadorService{repo: repo, contextTimeout: timeout}
}

func (s *ambassadorService) ListAmbassadors(ctx context.Context, filter domain.AmbassadorFilter) ([]*domain.Ambassador, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ambassadors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ApplyAmbassadorFilter(ambassadors, filter), nil
}

func (s *ambassadorService) GetAmbassador(ctx context.Context, slug string) (*domain.Ambassador, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.repo.GetBySlug(ctx, slug)
}

type blogService struct {
	repo           domain.BlogRepository
	contextTimeout time.Duration
}

// NewBlogService returns a BlogService reading from repo.
func NewBlogService(repo domain.BlogRepository, timeout time.Duration) domain.BlogService {
	return &blogService{repo: repo, contextTimeout: timeout}
}

// ListPosts filters posts and orders them newest first. Categories and popular
// tags are passed through unfiltered so the UI can render every facet.
func (s *blogService) ListPosts(ctx context.Context, filter domain.BlogFilter) (*domain.BlogFile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	f, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	posts := domain.SortPostsByDate(domain.ApplyBlogFilter(f.Posts, filter))
	return &domain.BlogFile{Posts: posts, Categories: f.Categories, PopularTags: f.PopularTags}, nil
}

func (s *blogService) GetPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.repo.GetBySlug(ctx, slug)
}
