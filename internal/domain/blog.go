package domain

import "context"

// BlogPost is an article on the blog. Content uses "## " headings and **bold** markers.
// swagger:model BlogPost
type BlogPost struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content,omitempty"`
	Author   Author   `json:"author"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime,omitempty"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image,omitempty"`
	Featured bool     `json:"featured"`
}

// Author is the byline of a post.
type Author struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
}

// BlogFile is the on-disk shape of blog.json.
// swagger:model BlogFile
type BlogFile struct {
	Posts       []*BlogPost `json:"posts"`
	Categories  []string    `json:"categories"`
	PopularTags []string    `json:"popularTags"`
}

// BlogFilter narrows a post listing. Empty fields match everything;
// Featured nil means "either".
type BlogFilter struct {
	Category string
	Tag      string
	Featured *bool
	Search   string
}

// BlogRepository defines the interface for blog storage
type BlogRepository interface {
	Load(ctx context.Context) (*BlogFile, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
}

// BlogService exposes blog posts to the delivery layer.
type BlogService interface {
	// ListPosts returns the filtered posts alongside the unfiltered categories and popular tags.
	ListPosts(ctx context.Context, filter BlogFilter) (*BlogFile, error)
	GetPost(ctx context.Context, slug string) (*BlogPost, error)
}
