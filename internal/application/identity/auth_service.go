// Package identity implements the admin login flow: identity-token
// verification, allow-list membership, and session minting.
package identity

import (
	"context"
	"strings"
	"time"

	"github.com/fitadmin/backend/internal/domain/identity"
	"github.com/fitadmin/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// IdentityVerifier verifies an identity token presented at login and
// resolves the subject behind it.
type IdentityVerifier interface {
	Verify(tokenString string) (identity.Identity, error)
}

// SessionIssuer mints signed admin session tokens.
type SessionIssuer interface {
	Issue(uid, email string) (string, time.Time, error)
}

// LoginResult carries a freshly minted admin session.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  identity.Identity
}

// AuthService handles admin authentication
type AuthService struct {
	verifier  IdentityVerifier
	allowList identity.AllowListRepository
	sessions  SessionIssuer
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(verifier IdentityVerifier, allowList identity.AllowListRepository, sessions SessionIssuer, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		verifier:  verifier,
		allowList: allowList,
		sessions:  sessions,
		logger:    logger,
	}
}

// Login verifies the identity token, checks the admin allow-list, and
// mints a session token. The allow-list check fails closed: lookup
// errors deny access the same way a missing membership does.
func (s *AuthService) Login(ctx context.Context, identityToken string) (*LoginResult, error) {
	if strings.TrimSpace(identityToken) == "" {
		return nil, shared.ErrUnauthorized
	}

	ident, err := s.verifier.Verify(identityToken)
	if err != nil {
		s.logger.Warn("Identity token verification failed", zap.Error(err))
		return nil, shared.ErrUnauthorized
	}

	isAdmin, err := s.allowList.IsAdmin(ctx, ident.UID)
	if err != nil {
		s.logger.Error("Admin allow-list lookup failed",
			zap.String("uid", ident.UID),
			zap.Error(err),
		)
		return nil, shared.ErrForbidden
	}
	if !isAdmin {
		s.logger.Warn("Login attempt by non-admin", zap.String("uid", ident.UID))
		return nil, shared.ErrForbidden
	}

	token, expiresAt, err := s.sessions.Issue(ident.UID, ident.Email)
	if err != nil {
		s.logger.Error("Failed to issue session token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Admin logged in", zap.String("uid", ident.UID))
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  ident,
	}, nil
}
