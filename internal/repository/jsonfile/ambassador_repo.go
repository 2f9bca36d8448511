package jsonfile

import (
	"context"

	"latinaempire/internal/domain"
)

type ambassadorRepository struct {
	store *Store
}

// NewAmbassadorRepository returns a domain.AmbassadorRepository backed by ambassadors.json.
func NewAmbassadorRepository(store *Store) domain.AmbassadorRepository {
	return &ambassadorRepository{store: store}
}

func (r *ambassadorRepository) List(ctx context.Context) ([]*domain.Ambassador, error) {
	f, err := readJSON[domain.AmbassadorsFile](ctx, r.store, AmbassadorsFile)
	if err != nil {
		return nil, err
	}
	return compact(f.Ambassadors), nil
}

func (r *ambassadorRepository) GetBySlug(ctx context.Context, slug string) (*domain.Ambassador, error) {
	ambassadors, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range ambassadors {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}
