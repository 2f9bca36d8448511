package jsonfile

import (
	"context"

	"latinaempire/internal/domain"
)

type blogRepository struct {
	store *Store
}

// NewBlogRepository returns a domain.BlogRepository backed by blog.json.
func NewBlogRepository(store *Store) domain.BlogRepository {
	return &blogRepository{store: store}
}

// Load returns the whole blog file with non-nil slices.
func (r *blogRepository) Load(ctx context.Context) (*domain.BlogFile, error) {
	f, err := readJSON[domain.BlogFile](ctx, r.store, BlogFile)
	if err != nil {
		return nil, err
	}
	f.Posts = compact(f.Posts)
	if f.Categories == nil {
		f.Categories = []string{}
	}
	if f.PopularTags == nil {
		f.PopularTags = []string{}
	}
	return &f, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	f, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range f.Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}
