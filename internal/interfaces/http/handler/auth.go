package handler

import (
	"net/http"
	"strings"
	"time"

	identityapp "github.com/fitadmin/backend/internal/application/identity"
	"github.com/fitadmin/backend/internal/domain/identity"
	"github.com/fitadmin/backend/internal/infrastructure/auth"
	"github.com/fitadmin/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	sessions    *auth.SessionService
	cookie      config.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, sessions *auth.SessionService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.Me)
	}
}

// LoginRequest carries the identity token obtained from the auth provider
type LoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// Login verifies the identity token against the admin allow-list and
// sets the httpOnly session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Token)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(time.Until(result.ExpiresAt).Seconds()))
	h.Success(c, gin.H{"user": result.Identity})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	h.Success(c, nil)
}

// Me returns the admin identity behind the current session cookie
func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err != nil || token == "" {
		h.Unauthorized(c, "Admin session required")
		return
	}

	claims, err := h.sessions.Validate(token)
	if err != nil {
		h.Unauthorized(c, "Invalid admin session")
		return
	}
	h.Success(c, gin.H{"user": identity.Identity{UID: claims.UID, Email: claims.Email}})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, value, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
