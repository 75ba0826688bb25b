package handler

import (
	trainingapp "github.com/fitadmin/backend/internal/application/training"
	"github.com/fitadmin/backend/internal/domain/training"
	"github.com/gin-gonic/gin"
)

// DayHandler handles day-related API endpoints within a program
type DayHandler struct {
	BaseHandler
	dayService *trainingapp.DayService
}

// NewDayHandler creates a new DayHandler
func NewDayHandler(dayService *trainingapp.DayService) *DayHandler {
	return &DayHandler{dayService: dayService}
}

// RegisterRoutes registers day routes
func (h *DayHandler) RegisterRoutes(rg *gin.RouterGroup) {
	days := rg.Group("/programs/:programId/days")
	{
		days.GET("", h.List)
		days.POST("", h.Create)
		days.PUT("/:dayId", h.Update)
		days.DELETE("/:dayId", h.Delete)
	}
}

// CreateDayRequest creates a single day, or a bulk batch of empty days
// when count is positive
type CreateDayRequest struct {
	Count        *int                `json:"count" binding:"omitempty,min=1,max=31"`
	DayNumber    *int                `json:"dayNumber" binding:"omitempty,min=1"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	ThumbnailURL string              `json:"thumbnailUrl"`
	Duration     *int                `json:"duration" binding:"omitempty,min=0"`
	Exercises    []training.Exercise `json:"exercises"`
}

// UpdateDayRequest represents a partial day update. An exercises field
// replaces the stored list wholesale; exerciseIds rewrites the reference
// list of legacy days.
type UpdateDayRequest struct {
	DayNumber    *int                 `json:"dayNumber" binding:"omitempty,min=1"`
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	ThumbnailURL *string              `json:"thumbnailUrl"`
	Duration     *int                 `json:"duration" binding:"omitempty,min=0"`
	Exercises    *[]training.Exercise `json:"exercises"`
	ExerciseIDs  *[]string            `json:"exerciseIds"`
}

// List returns the program's days in day order, with referenced
// exercises resolved
func (h *DayHandler) List(c *gin.Context) {
	days, err := h.dayService.List(c.Request.Context(), c.Param("programId"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, days)
}

// Create adds a single day or, when count is set, a week's worth of
// empty days numbered after the current highest day
func (h *DayHandler) Create(c *gin.Context) {
	var req CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	programID := c.Param("programId")

	if req.Count != nil && *req.Count > 0 {
		days, err := h.dayService.CreateWeek(c.Request.Context(), programID, *req.Count)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Created(c, gin.H{"days": days, "count": len(days)})
		return
	}

	day, err := h.dayService.Create(c.Request.Context(), programID, trainingapp.CreateDayInput{
		DayNumber:       req.DayNumber,
		Title:           req.Title,
		Description:     req.Description,
		ThumbnailURL:    req.ThumbnailURL,
		DurationMinutes: req.Duration,
		Exercises:       req.Exercises,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, day)
}

// Update partially updates a day and returns the updated document
func (h *DayHandler) Update(c *gin.Context) {
	var req UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	day, err := h.dayService.Update(c.Request.Context(), c.Param("programId"), c.Param("dayId"), training.DayPatch{
		DayNumber:       req.DayNumber,
		Title:           req.Title,
		Description:     req.Description,
		ThumbnailURL:    req.ThumbnailURL,
		DurationMinutes: req.Duration,
		Exercises:       req.Exercises,
		ExerciseIDs:     req.ExerciseIDs,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, day)
}

// Delete removes a single day
func (h *DayHandler) Delete(c *gin.Context) {
	if err := h.dayService.Delete(c.Request.Context(), c.Param("programId"), c.Param("dayId")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, nil)
}
