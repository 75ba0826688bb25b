package handler

import (
	sessionapp "github.com/fitadmin/backend/internal/application/session"
	"github.com/fitadmin/backend/internal/domain/session"
	"github.com/gin-gonic/gin"
)

// SessionHandler handles workout session API endpoints
type SessionHandler struct {
	BaseHandler
	sessionService *sessionapp.Service
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService *sessionapp.Service) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// RegisterRoutes registers session routes
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("", h.List)
		sessions.POST("/reorder", h.Reorder)
		sessions.PUT("/:id", h.Update)
		sessions.DELETE("/:id", h.Delete)
	}
}

// CreateSessionRequest represents a request to create a workout session
type CreateSessionRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=200"`
	Duration     int    `json:"duration" binding:"omitempty,min=0"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// UpdateSessionRequest represents a partial session update
type UpdateSessionRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=1,max=200"`
	Duration     *int    `json:"duration" binding:"omitempty,min=0"`
	VideoURL     *string `json:"videoUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Order        *int    `json:"order" binding:"omitempty,min=0"`
}

// ReorderSessionsRequest carries the full new display sequence
type ReorderSessionsRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required,min=1"`
}

// Create creates a new session at the end of the manual order
func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	created, err := h.sessionService.Create(c.Request.Context(), &session.Session{
		Title:           req.Title,
		DurationMinutes: req.Duration,
		VideoURL:        req.VideoURL,
		ThumbnailURL:    req.ThumbnailURL,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns all sessions in display order
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, sessions)
}

// Update partially updates a session
func (h *SessionHandler) Update(c *gin.Context) {
	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	err := h.sessionService.Update(c.Request.Context(), c.Param("id"), session.Patch{
		Title:           req.Title,
		DurationMinutes: req.Duration,
		VideoURL:        req.VideoURL,
		ThumbnailURL:    req.ThumbnailURL,
		Order:           req.Order,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, nil)
}

// Delete removes a session
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, nil)
}

// Reorder assigns dense ranks following the submitted sequence and
// reports the per-document outcome
func (h *SessionHandler) Reorder(c *gin.Context) {
	var req ReorderSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.sessionService.Reorder(c.Request.Context(), req.OrderedIDs)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
