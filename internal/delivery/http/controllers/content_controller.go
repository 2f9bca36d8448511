package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	h "latinaempire/internal/delivery/http/helpers"
	"latinaempire/internal/domain"
)

// EventResponse is the response body for GET /api/events/{slug}.
type EventResponse struct {
	Event *domain.Event `json:"event"`
}

// AmbassadorResponse is the response body for GET /api/ambassadors/{slug} and GET /api/leaders/{slug}.
type AmbassadorResponse struct {
	Ambassador *domain.Ambassador `json:"ambassador"`
}

// PostResponse is the response body for GET /api/blog/{slug}.
type PostResponse struct {
	Post *domain.BlogPost `json:"post"`
}

// ContentController serves the read-only events, ambassadors and blog endpoints.
type ContentController struct {
	Logger      *slog.Logger
	Events      domain.EventService
	Ambassadors domain.AmbassadorService
	Blog        domain.BlogService
}

func NewContentController(logger *slog.Logger, events domain.EventService, ambassadors domain.AmbassadorService, blog domain.BlogService) *ContentController {
	return &ContentController{
		Logger:      logger,
		Events:      events,
		Ambassadors: ambassadors,
		Blog:        blog,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event in file order. A missing events file yields an empty list.
// @Tags events
// @Produce json
// @Param status query string false "past or upcoming"
// @Param search query string false "Substring match on name, location, description and tags"
// @Success 200 {object} domain.EventsFile
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *ContentController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := strings.ToLower(strings.TrimSpace(q.Get("status")))
	if status != "" && status != domain.EventStatusPast && status != domain.EventStatusUpcoming {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, `status must be "past" or "upcoming"`)
		return
	}
	events, err := c.Events.ListEvents(r.Context(), domain.EventFilter{Status: status, Search: q.Get("search")})
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, domain.EventsFile{Events: events})
}

// GetEvent godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{slug} [get]
func (c *ContentController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Events.GetEvent(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.lookupError(w, r, err, "event not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, EventResponse{Event: event})
}

// ListAmbassadors godoc
// @Summary List ambassadors
// @Description Returns every ambassador profile. /api/leaders serves the same list.
// @Tags ambassadors
// @Produce json
// @Param country query string false "Country, or location when no country is set"
// @Param search query string false "Substring match on name, title, location and expertise"
// @Success 200 {object} domain.AmbassadorsFile
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/ambassadors [get]
func (c *ContentController) ListAmbassadors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ambassadors, err := c.Ambassadors.ListAmbassadors(r.Context(), domain.AmbassadorFilter{Country: q.Get("country"), Search: q.Get("search")})
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, domain.AmbassadorsFile{Ambassadors: ambassadors})
}

// GetAmbassador godoc
// @Summary Get an ambassador by slug
// @Tags ambassadors
// @Produce json
// @Param slug path string true "Ambassador slug"
// @Success 200 {object} controllers.AmbassadorResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/ambassadors/{slug} [get]
func (c *ContentController) GetAmbassador(w http.ResponseWriter, r *http.Request) {
	ambassador, err := c.Ambassadors.GetAmbassador(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.lookupError(w, r, err, "ambassador not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, AmbassadorResponse{Ambassador: ambassador})
}

// ListBlogPosts godoc
// @Summary List blog posts
// @Description Returns posts newest first with every category and popular tag. Filters combine.
// @Tags blog
// @Produce json
// @Param category query string false "Category, case-insensitive"
// @Param tag query string false "Tag, case-insensitive"
// @Param featured query bool false "Only featured (true) or non-featured (false) posts"
// @Param search query string false "Substring match on title, excerpt, author and tags"
// @Success 200 {object} domain.BlogFile
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/blog [get]
func (c *ContentController) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BlogFilter{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
	}
	if s := strings.TrimSpace(q.Get("featured")); s != "" {
		featured, err := strconv.ParseBool(s)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "featured must be true or false")
			return
		}
		filter.Featured = &featured
	}
	blog, err := c.Blog.ListPosts(r.Context(), filter)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, blog)
}

// GetBlogPost godoc
// @Summary Get a blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} controllers.PostResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/blog/{slug} [get]
func (c *ContentController) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := c.Blog.GetPost(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.lookupError(w, r, err, "post not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, PostResponse{Post: post})
}

func (c *ContentController) lookupError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, notFound)
		return
	}
	c.internalError(w, r, err)
}

func (c *ContentController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteInternalError(w)
}
