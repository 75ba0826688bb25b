package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitadmin/backend/internal/domain/identity"
	"github.com/fitadmin/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockIdentityVerifier is a mock implementation of IdentityVerifier
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) Verify(tokenString string) (identity.Identity, error) {
	args := m.Called(tokenString)
	return args.Get(0).(identity.Identity), args.Error(1)
}

// MockAllowListRepository is a mock implementation of identity.AllowListRepository
type MockAllowListRepository struct {
	mock.Mock
}

func (m *MockAllowListRepository) IsAdmin(ctx context.Context, uid string) (bool, error) {
	args := m.Called(ctx, uid)
	return args.Bool(0), args.Error(1)
}

// MockSessionIssuer is a mock implementation of SessionIssuer
type MockSessionIssuer struct {
	mock.Mock
}

func (m *MockSessionIssuer) Issue(uid, email string) (string, time.Time, error) {
	args := m.Called(uid, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func TestAuthService_Login_Success(t *testing.T) {
	verifier := new(MockIdentityVerifier)
	allowList := new(MockAllowListRepository)
	issuer := new(MockSessionIssuer)
	service := NewAuthService(verifier, allowList, issuer, zap.NewNop())

	expiresAt := time.Now().Add(5 * 24 * time.Hour)
	verifier.On("Verify", "id-token").Return(identity.Identity{UID: "admin1", Email: "admin@example.com"}, nil)
	allowList.On("IsAdmin", mock.Anything, "admin1").Return(true, nil)
	issuer.On("Issue", "admin1", "admin@example.com").Return("session-token", expiresAt, nil)

	result, err := service.Login(context.Background(), "id-token")

	assert.NoError(t, err)
	assert.Equal(t, "session-token", result.Token)
	assert.Equal(t, expiresAt, result.ExpiresAt)
	assert.Equal(t, "admin1", result.Identity.UID)
	issuer.AssertExpectations(t)
}

func TestAuthService_Login_InvalidToken(t *testing.T) {
	verifier := new(MockIdentityVerifier)
	allowList := new(MockAllowListRepository)
	issuer := new(MockSessionIssuer)
	service := NewAuthService(verifier, allowList, issuer, zap.NewNop())

	verifier.On("Verify", "garbage").Return(identity.Identity{}, errors.New("bad signature"))

	_, err := service.Login(context.Background(), "garbage")

	assert.ErrorIs(t, err, shared.ErrUnauthorized)
	allowList.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_NonAdmin_NoSession(t *testing.T) {
	verifier := new(MockIdentityVerifier)
	allowList := new(MockAllowListRepository)
	issuer := new(MockSessionIssuer)
	service := NewAuthService(verifier, allowList, issuer, zap.NewNop())

	verifier.On("Verify", "id-token").Return(identity.Identity{UID: "stranger"}, nil)
	allowList.On("IsAdmin", mock.Anything, "stranger").Return(false, nil)

	_, err := service.Login(context.Background(), "id-token")

	assert.ErrorIs(t, err, shared.ErrForbidden)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_AllowListErrorFailsClosed(t *testing.T) {
	verifier := new(MockIdentityVerifier)
	allowList := new(MockAllowListRepository)
	issuer := new(MockSessionIssuer)
	service := NewAuthService(verifier, allowList, issuer, zap.NewNop())

	verifier.On("Verify", "id-token").Return(identity.Identity{UID: "admin1"}, nil)
	allowList.On("IsAdmin", mock.Anything, "admin1").Return(false, errors.New("lookup timeout"))

	_, err := service.Login(context.Background(), "id-token")

	assert.ErrorIs(t, err, shared.ErrForbidden)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_EmptyToken(t *testing.T) {
	verifier := new(MockIdentityVerifier)
	allowList := new(MockAllowListRepository)
	issuer := new(MockSessionIssuer)
	service := NewAuthService(verifier, allowList, issuer, zap.NewNop())

	_, err := service.Login(context.Background(), "   ")

	assert.ErrorIs(t, err, shared.ErrUnauthorized)
	verifier.AssertNotCalled(t, "Verify", mock.Anything)
}
