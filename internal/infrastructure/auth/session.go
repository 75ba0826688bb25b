package auth

import (
	"errors"
	"time"

	"github.com/fitadmin/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Common errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrMissingUID    = errors.New("missing uid in claims")
)

// SessionClaims are the claims carried by the admin session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// SessionService mints and validates the signed admin session cookie.
// Membership in the admin allow-list is checked once at login; the cookie
// then stands alone for its whole lifetime.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewSessionService creates a new SessionService
func NewSessionService(cfg config.AuthConfig, issuer string) *SessionService {
	return &SessionService{
		secret: []byte(cfg.SessionSecret),
		ttl:    cfg.SessionTTL,
		issuer: issuer,
	}
}

// Issue mints a signed session token for a verified admin.
func (s *SessionService) Issue(uid, email string) (string, time.Time, error) {
	if uid == "" {
		return "", time.Time{}, ErrMissingUID
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UID:   uid,
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate parses a session token and returns its claims.
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.UID == "" {
		return nil, ErrMissingUID
	}
	return claims, nil
}
