package domain

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"latinaempire/internal/eventdate"
)

// Event status values accepted by EventFilter.Status.
const (
	EventStatusPast     = "past"
	EventStatusUpcoming = "upcoming"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func equalFold(a, b string) bool {
	return normalize(a) == normalize(b)
}

// containsFold reports whether needle occurs in haystack ignoring case and
// diacritics, so "mexico" finds "México".
func containsFold(haystack, needle string) bool {
	return strings.Contains(stripMarks(strings.ToLower(haystack)), stripMarks(needle))
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if equalFold(t, tag) {
			return true
		}
	}
	return false
}

// FilterPostsByCategory returns posts whose category equals category, ignoring case.
// An empty category returns posts unchanged.
func FilterPostsByCategory(posts []*BlogPost, category string) []*BlogPost {
	if normalize(category) == "" {
		return posts
	}
	out := make([]*BlogPost, 0, len(posts))
	for _, p := range posts {
		if equalFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// FilterPostsByTag returns posts carrying tag, ignoring case.
// An empty tag returns posts unchanged.
func FilterPostsByTag(posts []*BlogPost, tag string) []*BlogPost {
	if normalize(tag) == "" {
		return posts
	}
	out := make([]*BlogPost, 0, len(posts))
	for _, p := range posts {
		if hasTag(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

// FilterFeaturedPosts keeps posts whose Featured flag equals featured.
func FilterFeaturedPosts(posts []*BlogPost, featured bool) []*BlogPost {
	out := make([]*BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Featured == featured {
			out = append(out, p)
		}
	}
	return out
}

// SearchPosts matches query against title, excerpt, author name and tags.
func SearchPosts(posts []*BlogPost, query string) []*BlogPost {
	q := normalize(query)
	if q == "" {
		return posts
	}
	out := make([]*BlogPost, 0, len(posts))
	for _, p := range posts {
		if containsFold(p.Title, q) || containsFold(p.Excerpt, q) || containsFold(p.Author.Name, q) ||
			containsFold(strings.Join(p.Tags, " "), q) {
			out = append(out, p)
		}
	}
	return out
}

// ApplyBlogFilter runs every BlogFilter criterion over posts.
func ApplyBlogFilter(posts []*BlogPost, f BlogFilter) []*BlogPost {
	posts = FilterPostsByCategory(posts, f.Category)
	posts = FilterPostsByTag(posts, f.Tag)
	if f.Featured != nil {
		posts = FilterFeaturedPosts(posts, *f.Featured)
	}
	return SearchPosts(posts, f.Search)
}

// SortPostsByDate orders posts newest first. Posts with unknown dates go last,
// keeping their relative order.
func SortPostsByDate(posts []*BlogPost) []*BlogPost {
	out := make([]*BlogPost, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := parsePostDate(out[i].Date)
		tj, okj := parsePostDate(out[j].Date)
		switch {
		case oki && okj:
			return ti.After(tj)
		case oki:
			return true
		default:
			return false
		}
	})
	return out
}

func parsePostDate(s string) (time.Time, bool) {
	return eventdate.Parse(s)
}

// PartitionEvents splits events on the IsPast flag. Every event lands in
// exactly one of the two slices, preserving input order.
func PartitionEvents(events []*Event) (past, upcoming []*Event) {
	past = make([]*Event, 0, len(events))
	upcoming = make([]*Event, 0, len(events))
	for _, e := range events {
		if e.IsPast {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return past, upcoming
}

// SearchEvents matches query against name, location, description and tags.
func SearchEvents(events []*Event, query string) []*Event {
	q := normalize(query)
	if q == "" {
		return events
	}
	out := make([]*Event, 0, len(events))
	for _, e := range events {
		if containsFold(e.Name, q) || containsFold(e.Location, q) || containsFold(e.Description, q) ||
			containsFold(strings.Join(e.Tags, " "), q) {
			out = append(out, e)
		}
	}
	return out
}

// ApplyEventFilter runs every EventFilter criterion over events.
func ApplyEventFilter(events []*Event, f EventFilter) []*Event {
	switch normalize(f.Status) {
	case EventStatusPast:
		events, _ = PartitionEvents(events)
	case EventStatusUpcoming:
		_, events = PartitionEvents(events)
	}
	return SearchEvents(events, f.Search)
}

// EventMonth groups events that start in the same calendar month.
type EventMonth struct {
	Year   int      `json:"year"`
	Month  string   `json:"month"`
	Events []*Event `json:"events"`
}

// GroupEventsByMonth buckets events by start month in chronological order.
// Events whose date cannot be parsed are left out.
func GroupEventsByMonth(events []*Event) []EventMonth {
	type dated struct {
		when time.Time
		e    *Event
	}
	var ds []dated
	for _, e := range events {
		if t, ok := e.When(); ok {
			ds = append(ds, dated{when: t, e: e})
		}
	}
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].when.Before(ds[j].when) })

	var out []EventMonth
	for _, d := range ds {
		n := len(out)
		if n > 0 && out[n-1].Year == d.when.Year() && out[n-1].Month == d.when.Month().String() {
			out[n-1].Events = append(out[n-1].Events, d.e)
			continue
		}
		out = append(out, EventMonth{Year: d.when.Year(), Month: d.when.Month().String(), Events: []*Event{d.e}})
	}
	return out
}

// NextEvent returns the earliest non-past event starting on or after now's day.
// Events with unknown dates are never highlighted. Returns nil if none qualify.
func NextEvent(events []*Event, now time.Time) *Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var (
		best     *Event
		bestWhen time.Time
	)
	for _, e := range events {
		if e.IsPast {
			continue
		}
		t, ok := e.When()
		if !ok || t.Before(today) {
			continue
		}
		if best == nil || t.Before(bestWhen) {
			best, bestWhen = e, t
		}
	}
	return best
}

// FilterAmbassadorsByCountry keeps profiles whose country (or, failing that,
// location) equals country, ignoring case.
func FilterAmbassadorsByCountry(ambassadors []*Ambassador, country string) []*Ambassador {
	if normalize(country) == "" {
		return ambassadors
	}
	out := make([]*Ambassador, 0, len(ambassadors))
	for _, a := range ambassadors {
		c := a.Country
		if c == "" {
			c = a.Location
		}
		if equalFold(c, country) {
			out = append(out, a)
		}
	}
	return out
}

// SearchAmbassadors matches query against name, title, location and expertise.
func SearchAmbassadors(ambassadors []*Ambassador, query string) []*Ambassador {
	q := normalize(query)
	if q == "" {
		return ambassadors
	}
	out := make([]*Ambassador, 0, len(ambassadors))
	for _, a := range ambassadors {
		if containsFold(a.Name, q) || containsFold(a.Title, q) || containsFold(a.Location, q) ||
			containsFold(strings.Join(a.Expertise, " "), q) {
			out = append(out, a)
		}
	}
	return out
}

// ApplyAmbassadorFilter runs every AmbassadorFilter criterion over ambassadors.
func ApplyAmbassadorFilter(ambassadors []*Ambassador, f AmbassadorFilter) []*Ambassador {
	ambassadors = FilterAmbassadorsByCountry(ambassadors, f.Country)
	return SearchAmbassadors(ambassadors, f.Search)
}
