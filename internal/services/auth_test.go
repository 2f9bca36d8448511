package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"latinaempire/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) { return "hash-" + password, nil }
func (fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err         error
	lastSubject string
	lastEmail   string
	lastExpiry  time.Duration
}

func (f *fakeTokenIssuer) Issue(subject, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastSubject, f.lastEmail, f.lastExpiry = subject, email, expiry
	return "token-" + subject, nil
}

func TestAuthService_Login(t *testing.T) {
	issuer := &fakeTokenIssuer{}
	svc := NewAuthService("Admin@LatinaEmpire.com", "hash-s3cret!", fakePasswordHasher{}, issuer, time.Hour)

	token, err := svc.Login(context.Background(), " admin@latinaempire.com ", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "token-admin", token)
	assert.Equal(t, AdminSubject, issuer.lastSubject)
	assert.Equal(t, "admin@latinaempire.com", issuer.lastEmail)
	assert.Equal(t, time.Hour, issuer.lastExpiry)
}

func TestAuthService_Login_invalid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		hash     string
		login    string
		password string
	}{
		{"wrong password", "admin@latinaempire.com", "hash-s3cret!", "admin@latinaempire.com", "guess"},
		{"wrong email", "admin@latinaempire.com", "hash-s3cret!", "someone@latinaempire.com", "s3cret!"},
		{"login disabled without hash", "admin@latinaempire.com", "", "admin@latinaempire.com", ""},
		{"login disabled without email", "", "hash-", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.email, tt.hash, fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour)
			_, err := svc.Login(context.Background(), tt.login, tt.password)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_issuerError(t *testing.T) {
	svc := NewAuthService("admin@latinaempire.com", "hash-pw", fakePasswordHasher{}, &fakeTokenIssuer{err: errors.New("sign failed")}, time.Hour)

	_, err := svc.Login(context.Background(), "admin@latinaempire.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "sign failed")
}
