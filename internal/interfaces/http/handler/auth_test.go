package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	identityapp "github.com/fitadmin/backend/internal/application/identity"
	"github.com/fitadmin/backend/internal/infrastructure/auth"
	"github.com/fitadmin/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAllowList is an in-memory identity.AllowListRepository
type fakeAllowList struct {
	admins map[string]bool
}

func (f *fakeAllowList) IsAdmin(_ context.Context, uid string) (bool, error) {
	return f.admins[uid], nil
}

func newAuthTestRouter(t *testing.T, admins map[string]bool) (*gin.Engine, *auth.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authCfg := config.AuthConfig{
		IdentitySecret: "identity-secret",
		SessionSecret:  "session-secret",
		SessionTTL:     5 * 24 * time.Hour,
	}
	cookieCfg := config.CookieConfig{
		Name:     "session",
		Path:     "/",
		SameSite: "lax",
	}

	sessions := auth.NewSessionService(authCfg, "fitadmin-test")
	verifier := auth.NewJWTIdentityVerifier(authCfg)
	service := identityapp.NewAuthService(verifier, &fakeAllowList{admins: admins}, sessions, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/v1")
	NewAuthHandler(service, sessions, cookieCfg).RegisterRoutes(api)
	return r, sessions
}

func signIdentityToken(t *testing.T, uid, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("identity-secret"))
	require.NoError(t, err)
	return signed
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	r, _ := newAuthTestRouter(t, map[string]bool{"admin1": true})

	body := `{"token":"` + signIdentityToken(t, "admin1", "admin@example.com") + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin1")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_NonAdmin_NoCookie(t *testing.T) {
	r, _ := newAuthTestRouter(t, map[string]bool{})

	body := `{"token":"` + signIdentityToken(t, "stranger", "") + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_Login_InvalidToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, map[string]bool{"admin1": true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"token":"garbage"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_Login_MissingToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, map[string]bool{"admin1": true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Me_WithValidSession(t *testing.T) {
	r, sessions := newAuthTestRouter(t, map[string]bool{"admin1": true})

	token, _, err := sessions.Issue("admin1", "admin@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestAuthHandler_Me_WithoutSession(t *testing.T) {
	r, _ := newAuthTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	r, _ := newAuthTestRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}
