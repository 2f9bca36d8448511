package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"latinaempire/internal/delivery/http/controllers"
	h "latinaempire/internal/delivery/http/helpers"
)

// Routes groups the controllers and handlers mounted by NewRouter.
type Routes struct {
	Content     *controllers.ContentController
	Leads       *controllers.LeadController
	Admin       *controllers.AdminController
	RequireAuth func(http.HandlerFunc) http.HandlerFunc
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	// Content
	mux.HandleFunc("GET /api/events", rt.Content.ListEvents)
	mux.HandleFunc("GET /api/events/{slug}", rt.Content.GetEvent)
	mux.HandleFunc("GET /api/ambassadors", rt.Content.ListAmbassadors)
	mux.HandleFunc("GET /api/ambassadors/{slug}", rt.Content.GetAmbassador)
	mux.HandleFunc("GET /api/leaders", rt.Content.ListAmbassadors)
	mux.HandleFunc("GET /api/leaders/{slug}", rt.Content.GetAmbassador)
	mux.HandleFunc("GET /api/blog", rt.Content.ListBlogPosts)
	mux.HandleFunc("GET /api/blog/{slug}", rt.Content.GetBlogPost)

	// Leads
	mux.HandleFunc("POST /api/contact", rt.Leads.SubmitContact)
	mux.HandleFunc("POST /api/newsletter", rt.Leads.SubscribeNewsletter)

	// Admin
	mux.HandleFunc("POST /api/admin/login", rt.Admin.Login)
	mux.HandleFunc("GET /api/admin/leads", rt.RequireAuth(rt.Admin.ListLeads))

	// Ops
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		h.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
