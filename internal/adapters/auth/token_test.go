package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuerSvc := NewJWTIssuer(secret)

	token, err := issuerSvc.Issue("admin", "admin@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestJWTVerifier_Verify(t *testing.T) {
	secret := "test-secret"
	valid, err := NewJWTIssuer(secret).Issue("admin", "admin@example.com", time.Hour)
	require.NoError(t, err)
	expired, err := NewJWTIssuer(secret).Issue("admin", "admin@example.com", -time.Minute)
	require.NoError(t, err)
	otherSecret, err := NewJWTIssuer("other-secret").Issue("admin", "admin@example.com", time.Hour)
	require.NoError(t, err)

	noneAlg := jwt.NewWithClaims(jwt.SigningMethodNone, jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin", Issuer: issuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	unsigned, err := noneAlg.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin", Issuer: "someone-else", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	foreign, err := wrongIssuer.SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantSub string
		wantErr bool
	}{
		{"valid token", valid, "admin", false},
		{"expired token", expired, "", true},
		{"signed with other secret", otherSecret, "", true},
		{"alg none", unsigned, "", true},
		{"wrong issuer", foreign, "", true},
		{"garbage", "not.a.jwt", "", true},
	}
	verifier := NewJWTVerifier(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := verifier.Verify(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, sub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}
