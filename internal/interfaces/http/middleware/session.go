package middleware

import (
	"net/http"

	"github.com/fitadmin/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AdminSessionGuard rejects requests that carry no admin session cookie.
// Only presence is checked per request; the token itself is verified at
// login and again by the /auth/me handler.
func AdminSessionGuard(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(cookieName); err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Admin session required"))
			return
		}
		c.Next()
	}
}
