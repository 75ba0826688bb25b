package auth

import (
	"errors"

	"github.com/fitadmin/backend/internal/domain/identity"
	"github.com/fitadmin/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
)

// identityClaims are the claims expected on identity-provider tokens.
type identityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// JWTIdentityVerifier verifies HS256 identity tokens against the
// configured provider secret and, when set, issuer.
type JWTIdentityVerifier struct {
	secret []byte
	issuer string
}

// NewJWTIdentityVerifier creates a new JWTIdentityVerifier
func NewJWTIdentityVerifier(cfg config.AuthConfig) *JWTIdentityVerifier {
	return &JWTIdentityVerifier{
		secret: []byte(cfg.IdentitySecret),
		issuer: cfg.IdentityIssuer,
	}
}

// Verify implements IdentityVerifier.
func (v *JWTIdentityVerifier) Verify(tokenString string) (identity.Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Identity{}, ErrExpiredToken
		}
		return identity.Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return identity.Identity{}, ErrInvalidClaims
	}
	if claims.Subject == "" {
		return identity.Identity{}, ErrMissingUID
	}

	return identity.Identity{UID: claims.Subject, Email: claims.Email}, nil
}
