package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"latinaempire/internal/delivery/http/helpers"
	"latinaempire/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func TestAdminController_Login(t *testing.T) {
	c := NewAdminController(testLogger, &fakeAuthService{token: "jwt-token"}, &fakeLeadService{})

	rr := post(t, c.Login, "/api/admin/login", `{"email":"admin@latinaempire.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Data  LoginResponse     `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Nil(t, resp.Error)
	assert.Equal(t, "jwt-token", resp.Data.Token)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
}

func TestAdminController_Login_failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		body       string
		wantStatus int
		wantCode   string
	}{
		{"missing password", nil, `{"email":"admin@latinaempire.com"}`, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, `{"email":"admin@latinaempire.com","password":"x"}`, http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"issuer failure", errors.New("sign failed"), `{"email":"admin@latinaempire.com","password":"x"}`, http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAdminController(testLogger, &fakeAuthService{err: tt.err}, &fakeLeadService{})
			rr := post(t, c.Login, "/api/admin/login", tt.body)
			assertErrorEnvelope(t, rr, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestAdminController_ListLeads(t *testing.T) {
	svc := &fakeLeadService{
		leads: []*domain.Lead{{ID: "a", Kind: domain.LeadKindContact, Email: "a@example.com"}},
		total: 21,
	}
	c := NewAdminController(testLogger, &fakeAuthService{}, svc)

	rr := httptest.NewRecorder()
	c.ListLeads(rr, httptest.NewRequest(http.MethodGet, "/api/admin/leads?kind=contact&page=2&page_size=10", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Data ListLeadsResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Data.Leads, 1)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3, HasNext: true}, resp.Data.Pagination)
	assert.Equal(t, "contact", svc.lastKind)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 10}, svc.lastParams)
}

func TestAdminController_ListLeads_emptyIsArray(t *testing.T) {
	c := NewAdminController(testLogger, &fakeAuthService{}, &fakeLeadService{})

	rr := httptest.NewRecorder()
	c.ListLeads(rr, httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"leads":[],"pagination":{"page":1,"page_size":20,"total":0,"total_pages":0,"has_next":false}},"error":null}`, rr.Body.String())
}

func TestAdminController_ListLeads_errors(t *testing.T) {
	c := NewAdminController(testLogger, &fakeAuthService{}, &fakeLeadService{err: fmt.Errorf("unknown lead kind: %w", domain.ErrValidation)})
	rr := httptest.NewRecorder()
	c.ListLeads(rr, httptest.NewRequest(http.MethodGet, "/api/admin/leads?kind=spam", nil))
	assertErrorEnvelope(t, rr, http.StatusBadRequest, helpers.ErrCodeBadRequest)

	c = NewAdminController(testLogger, &fakeAuthService{}, &fakeLeadService{err: errors.New("db down")})
	rr = httptest.NewRecorder()
	c.ListLeads(rr, httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil))
	assertErrorEnvelope(t, rr, http.StatusInternalServerError, helpers.ErrCodeInternalError)
}
