package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"latinaempire/internal/domain"
)

// AdminSubject is the token subject for the site administrator.
const AdminSubject = "admin"

type authService struct {
	adminEmail        string
	adminPasswordHash string
	hasher            domain.PasswordHasher
	issuer            domain.TokenIssuer
	expiry            time.Duration
}

// NewAuthService creates an AuthService for the single configured admin account.
// An empty email or hash disables login.
func NewAuthService(adminEmail, adminPasswordHash string, hasher domain.PasswordHasher, issuer domain.TokenIssuer, expiry time.Duration) domain.AuthService {
	return &authService{
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: adminPasswordHash,
		hasher:            hasher,
		issuer:            issuer,
		expiry:            expiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.adminPasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(AdminSubject, s.adminEmail, s.expiry)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
