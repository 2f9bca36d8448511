package domain

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthService authenticates the site administrator.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
