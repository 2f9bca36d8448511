package domain

import "context"

// Ambassador is a community leader profile. Leaders and ambassadors are the same records.
// swagger:model Ambassador
type Ambassador struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Location    string           `json:"location"`
	Country     string           `json:"country,omitempty"`
	Quote       string           `json:"quote,omitempty"`
	Bio         string           `json:"bio"`
	LongBio     string           `json:"longBio,omitempty"`
	Image       string           `json:"image,omitempty"`
	CoverImage  string           `json:"coverImage,omitempty"`
	Social      *SocialLinks     `json:"social,omitempty"`
	Stats       *AmbassadorStats `json:"stats,omitempty"`
	MemberSince string           `json:"memberSince,omitempty"`
	Languages   []string         `json:"languages,omitempty"`
	Expertise   []string         `json:"expertise,omitempty"`
}

// SocialLinks are the profile's external handles or URLs.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

// AmbassadorStats are the numeric highlights shown on a profile.
type AmbassadorStats struct {
	YearsInProgram int `json:"yearsInProgram"`
	EventsHosted   int `json:"eventsHosted"`
}

// AmbassadorsFile is the on-disk shape of ambassadors.json.
type AmbassadorsFile struct {
	Ambassadors []*Ambassador `json:"ambassadors"`
}

// AmbassadorFilter narrows an ambassador listing. Empty fields match everything.
type AmbassadorFilter struct {
	Country string
	Search  string
}

// AmbassadorRepository defines the interface for ambassador storage
type AmbassadorRepository interface {
	List(ctx context.Context) ([]*Ambassador, error)
	GetBySlug(ctx context.Context, slug string) (*Ambassador, error)
}

// AmbassadorService exposes ambassador profiles to the delivery layer.
type AmbassadorService interface {
	ListAmbassadors(ctx context.Context, filter AmbassadorFilter) ([]*Ambassador, error)
	GetAmbassador(ctx context.Context, slug string) (*Ambassador, error)
}
