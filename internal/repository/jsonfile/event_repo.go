package jsonfile

import (
	"context"

	"latinaempire/internal/domain"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository returns a domain.EventRepository backed by events.json.
func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	f, err := readJSON[domain.EventsFile](ctx, r.store, EventsFile)
	if err != nil {
		return nil, err
	}
	return compact(f.Events), nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}
