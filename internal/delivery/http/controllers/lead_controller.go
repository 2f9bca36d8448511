package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "latinaempire/internal/delivery/http/helpers"
	"latinaempire/internal/domain"
)

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Source  string `json:"source"` // optional: page or campaign that produced the lead
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	errs = append(errs, validateEmail(c.Email)...)
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// NewsletterRequest is the request body for POST /api/newsletter.
type NewsletterRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Validate implements Validator.
func (n NewsletterRequest) Validate() []string {
	return validateEmail(n.Email)
}

func validateEmail(email string) []string {
	email = strings.TrimSpace(email)
	if email == "" {
		return []string{"email is required"}
	}
	if !domain.ValidEmail(email) {
		return []string{"invalid email format"}
	}
	return nil
}

// LeadSuccessResponse is the success envelope for the lead endpoints.
type LeadSuccessResponse struct {
	Data  *domain.Lead `json:"data"`
	Error *h.APIError  `json:"error"`
}

type LeadController struct {
	Logger  *slog.Logger
	Service domain.LeadService
}

func NewLeadController(logger *slog.Logger, svc domain.LeadService) *LeadController {
	return &LeadController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Stores the message and notifies the site inbox. A failed notification does not fail the request.
// @Tags leads
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact form"
// @Success 201 {object} controllers.LeadSuccessResponse "data contains the stored lead"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/contact [post]
func (c *LeadController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	lead, err := c.Service.SubmitContact(r.Context(), &domain.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Source:  req.Source,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, lead)
}

// SubscribeNewsletter godoc
// @Summary Subscribe to the newsletter
// @Description Subscribing an address that is already on the list succeeds; the response then carries no id or created_at.
// @Tags leads
// @Accept json
// @Produce json
// @Param body body NewsletterRequest true "Subscriber"
// @Success 201 {object} controllers.LeadSuccessResponse "data contains the subscription"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/newsletter [post]
func (c *LeadController) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	lead, err := c.Service.SubscribeNewsletter(r.Context(), &domain.Lead{
		Name:   req.Name,
		Email:  req.Email,
		Source: req.Source,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, lead)
}

func (c *LeadController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		msg := strings.TrimSuffix(err.Error(), ": "+domain.ErrValidation.Error())
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, msg)
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteInternalError(w)
}
