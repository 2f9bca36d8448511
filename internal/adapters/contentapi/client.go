// Package contentapi is a typed client for the public content endpoints.
// Every read degrades to an empty collection (or nil for detail lookups) when
// the API is unreachable or answers with garbage; failures are logged.
package contentapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"latinaempire/internal/domain"
)

const (
	maxAttempts       = 2
	defaultRetryDelay = 250 * time.Millisecond
)

// Client fetches events, ambassadors and blog posts from the content API.
type Client struct {
	baseURL    string
	http       *http.Client
	logger     *slog.Logger
	propagator propagation.TextMapPropagator
	retryDelay time.Duration
}

// NewHTTPClient returns an http.Client with bounded dial and handshake timeouts.
func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// NewClient returns a Client for the API rooted at baseURL (e.g. "http://localhost:8080").
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(10 * time.Second)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       httpClient,
		logger:     logger,
		propagator: otel.GetTextMapPropagator(),
		retryDelay: defaultRetryDelay,
	}
}

// FetchEvents lists events matching filter and keeps the failure, if any, on the Result.
func (c *Client) FetchEvents(ctx context.Context, filter domain.EventFilter) Result[*domain.Event] {
	q := url.Values{}
	setIf(q, "status", filter.Status)
	setIf(q, "search", filter.Search)

	var body domain.EventsFile
	if err := c.getJSON(ctx, "/api/events", q, &body); err != nil {
		return failed[*domain.Event](err)
	}
	return Result[*domain.Event]{Items: nonNil(body.Events)}
}

// Events lists events matching filter, or an empty slice on failure.
func (c *Client) Events(ctx context.Context, filter domain.EventFilter) []*domain.Event {
	return c.FetchEvents(ctx, filter).Items
}

// Event returns the event with slug, or nil when it does not exist or the fetch fails.
func (c *Client) Event(ctx context.Context, slug string) *domain.Event {
	var body struct {
		Event *domain.Event `json:"event"`
	}
	if !c.getOne(ctx, "/api/events/"+url.PathEscape(slug), &body) {
		return nil
	}
	return body.Event
}

// FetchAmbassadors lists ambassador profiles matching filter.
func (c *Client) FetchAmbassadors(ctx context.Context, filter domain.AmbassadorFilter) Result[*domain.Ambassador] {
	return c.fetchProfiles(ctx, "/api/ambassadors", filter)
}

// Ambassadors lists ambassador profiles matching filter, or an empty slice on failure.
func (c *Client) Ambassadors(ctx context.Context, filter domain.AmbassadorFilter) []*domain.Ambassador {
	return c.FetchAmbassadors(ctx, filter).Items
}

// Leaders lists the same profiles through the leaders route.
func (c *Client) Leaders(ctx context.Context, filter domain.AmbassadorFilter) []*domain.Ambassador {
	return c.fetchProfiles(ctx, "/api/leaders", filter).Items
}

// Ambassador returns the profile with slug, or nil.
func (c *Client) Ambassador(ctx context.Context, slug string) *domain.Ambassador {
	return c.fetchProfile(ctx, "/api/ambassadors/"+url.PathEscape(slug))
}

// Leader returns the profile with slug through the leaders route, or nil.
func (c *Client) Leader(ctx context.Context, slug string) *domain.Ambassador {
	return c.fetchProfile(ctx, "/api/leaders/"+url.PathEscape(slug))
}

func (c *Client) fetchProfiles(ctx context.Context, path string, filter domain.AmbassadorFilter) Result[*domain.Ambassador] {
	q := url.Values{}
	setIf(q, "country", filter.Country)
	setIf(q, "search", filter.Search)

	var body domain.AmbassadorsFile
	if err := c.getJSON(ctx, path, q, &body); err != nil {
		return failed[*domain.Ambassador](err)
	}
	return Result[*domain.Ambassador]{Items: nonNil(body.Ambassadors)}
}

func (c *Client) fetchProfile(ctx context.Context, path string) *domain.Ambassador {
	var body struct {
		Ambassador *domain.Ambassador `json:"ambassador"`
	}
	if !c.getOne(ctx, path, &body) {
		return nil
	}
	return body.Ambassador
}

// FetchBlog lists posts matching filter. Items holds the posts; the facets are
// on the returned BlogFile, which is never nil.
func (c *Client) FetchBlog(ctx context.Context, filter domain.BlogFilter) (*domain.BlogFile, Result[*domain.BlogPost]) {
	q := url.Values{}
	setIf(q, "category", filter.Category)
	setIf(q, "tag", filter.Tag)
	setIf(q, "search", filter.Search)
	if filter.Featured != nil {
		q.Set("featured", strconv.FormatBool(*filter.Featured))
	}

	var body domain.BlogFile
	if err := c.getJSON(ctx, "/api/blog", q, &body); err != nil {
		return emptyBlog(), failed[*domain.BlogPost](err)
	}
	f := &domain.BlogFile{
		Posts:       nonNil(body.Posts),
		Categories:  nonNil(body.Categories),
		PopularTags: nonNil(body.PopularTags),
	}
	return f, Result[*domain.BlogPost]{Items: f.Posts}
}

// Blog lists posts matching filter with the category and tag facets.
// On failure it returns an empty, non-nil BlogFile.
func (c *Client) Blog(ctx context.Context, filter domain.BlogFilter) *domain.BlogFile {
	f, _ := c.FetchBlog(ctx, filter)
	return f
}

// Post returns the blog post with slug, or nil.
func (c *Client) Post(ctx context.Context, slug string) *domain.BlogPost {
	var body struct {
		Post *domain.BlogPost `json:"post"`
	}
	if !c.getOne(ctx, "/api/blog/"+url.PathEscape(slug), &body) {
		return nil
	}
	return body.Post
}

// getOne fetches a detail document. A 404 is reported as absent without an error log.
func (c *Client) getOne(ctx context.Context, path string, dest any) bool {
	err := c.getJSON(ctx, path, nil, dest)
	if errors.Is(err, domain.ErrNotFound) {
		c.logger.DebugContext(ctx, "content not found", "path", path)
		return false
	}
	return err == nil
}

// getJSON decodes a 200 response for path into dest. Transport errors and 5xx
// responses are retried once. Failures other than 404 are logged.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				err = ctx.Err()
				c.logger.ErrorContext(ctx, "content api request failed", "path", path, "err", err)
				return err
			}
		}
		var retry bool
		retry, err = c.fetch(ctx, u, dest)
		if err == nil || !retry || attempt == maxAttempts-1 {
			break
		}
		c.logger.WarnContext(ctx, "content api request failed, retrying", "path", path, "attempt", attempt+1, "err", err)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.logger.ErrorContext(ctx, "content api request failed", "path", path, "err", err)
	}
	return err
}

func (c *Client) fetch(ctx context.Context, u string, dest any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("failed to fetch content: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, domain.ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return true, fmt.Errorf("content api returned status: %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Errorf("content api returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return false, fmt.Errorf("failed to decode content response: %w", err)
	}
	return false, nil
}

func setIf(q url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		q.Set(key, v)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func emptyBlog() *domain.BlogFile {
	return &domain.BlogFile{Posts: []*domain.BlogPost{}, Categories: []string{}, PopularTags: []string{}}
}
