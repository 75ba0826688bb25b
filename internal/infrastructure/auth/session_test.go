package auth

import (
	"testing"
	"time"

	"github.com/fitadmin/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(ttl time.Duration) *SessionService {
	return NewSessionService(config.AuthConfig{
		SessionSecret: "test-session-secret",
		SessionTTL:    ttl,
	}, "fitadmin-test")
}

func TestSessionService_IssueAndValidate(t *testing.T) {
	service := newTestSessionService(5 * 24 * time.Hour)

	token, expiresAt, err := service.Issue("admin1", "admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(5*24*time.Hour), expiresAt, time.Minute)

	claims, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", claims.UID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "fitadmin-test", claims.Issuer)
}

func TestSessionService_Issue_MissingUID(t *testing.T) {
	service := newTestSessionService(time.Hour)

	_, _, err := service.Issue("", "admin@example.com")

	assert.ErrorIs(t, err, ErrMissingUID)
}

func TestSessionService_Validate_WrongSecret(t *testing.T) {
	service := newTestSessionService(time.Hour)
	other := NewSessionService(config.AuthConfig{
		SessionSecret: "a-different-secret",
		SessionTTL:    time.Hour,
	}, "fitadmin-test")

	token, _, err := other.Issue("admin1", "")
	require.NoError(t, err)

	_, err = service.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionService_Validate_Expired(t *testing.T) {
	service := newTestSessionService(-time.Minute)

	token, _, err := service.Issue("admin1", "")
	require.NoError(t, err)

	_, err = service.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionService_Validate_Garbage(t *testing.T) {
	service := newTestSessionService(time.Hour)

	_, err := service.Validate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTIdentityVerifier_Verify(t *testing.T) {
	cfg := config.AuthConfig{
		IdentitySecret: "identity-secret",
		IdentityIssuer: "auth.example.com",
	}
	verifier := NewJWTIdentityVerifier(cfg)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user42",
		"email": "user42@example.com",
		"iss":   "auth.example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("identity-secret"))
	require.NoError(t, err)

	ident, err := verifier.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user42", ident.UID)
	assert.Equal(t, "user42@example.com", ident.Email)
}

func TestJWTIdentityVerifier_Verify_WrongIssuer(t *testing.T) {
	verifier := NewJWTIdentityVerifier(config.AuthConfig{
		IdentitySecret: "identity-secret",
		IdentityIssuer: "auth.example.com",
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user42",
		"iss": "evil.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("identity-secret"))
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTIdentityVerifier_Verify_MissingSubject(t *testing.T) {
	verifier := NewJWTIdentityVerifier(config.AuthConfig{
		IdentitySecret: "identity-secret",
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("identity-secret"))
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrMissingUID)
}
