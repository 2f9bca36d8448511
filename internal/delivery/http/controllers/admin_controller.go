package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "latinaempire/internal/delivery/http/helpers"
	"latinaempire/internal/domain"
)

// LoginRequest is the request body for POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /api/admin/login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// ListLeadsResponse is the data of GET /api/admin/leads.
type ListLeadsResponse struct {
	Leads      []*domain.Lead   `json:"leads"`
	Pagination h.PaginationMeta `json:"pagination"`
}

type AdminController struct {
	Logger *slog.Logger
	Auth   domain.AuthService
	Leads  domain.LeadService
}

func NewAdminController(logger *slog.Logger, auth domain.AuthService, leads domain.LeadService) *AdminController {
	return &AdminController{
		Logger: logger,
		Auth:   auth,
		Leads:  leads,
	}
}

// Login godoc
// @Summary Log in as the site administrator
// @Description Returns a Bearer token for the admin endpoints.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid email or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteInternalError(w)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer"})
}

// ListLeads godoc
// @Summary List captured leads
// @Description Newest first. kind filters to contact or newsletter leads.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param kind query string false "contact or newsletter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains leads and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/leads [get]
func (c *AdminController) ListLeads(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	leads, total, err := c.Leads.ListLeads(r.Context(), r.URL.Query().Get("kind"), params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, `kind must be "contact" or "newsletter"`)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteInternalError(w)
		return
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListLeadsResponse{
		Leads:      leads,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
