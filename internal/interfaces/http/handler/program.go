package handler

import (
	trainingapp "github.com/fitadmin/backend/internal/application/training"
	"github.com/fitadmin/backend/internal/domain/training"
	"github.com/gin-gonic/gin"
)

// ProgramHandler handles program-related API endpoints
type ProgramHandler struct {
	BaseHandler
	programService *trainingapp.ProgramService
}

// NewProgramHandler creates a new ProgramHandler
func NewProgramHandler(programService *trainingapp.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// RegisterRoutes registers program routes
func (h *ProgramHandler) RegisterRoutes(rg *gin.RouterGroup) {
	programs := rg.Group("/programs")
	{
		programs.POST("", h.Create)
		programs.GET("", h.List)
		programs.GET("/:programId", h.Get)
		programs.PUT("/:programId", h.Update)
		programs.DELETE("/:programId", h.Delete)
	}
}

// CreateProgramRequest represents a request to create a new program,
// optionally together with an initial batch of days
type CreateProgramRequest struct {
	Name         string            `json:"name" binding:"required,min=1,max=200"`
	Description  string            `json:"description" binding:"max=5000"`
	ThumbnailURL string            `json:"thumbnailUrl"`
	Difficulty   string            `json:"difficulty" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Days         []ProgramDayEntry `json:"days" binding:"omitempty,dive"`
}

// ProgramDayEntry is one day in a program creation request. Day numbering
// is taken from the caller as given.
type ProgramDayEntry struct {
	DayNumber    int                 `json:"dayNumber" binding:"required,min=1"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	ThumbnailURL string              `json:"thumbnailUrl"`
	Duration     *int                `json:"duration"`
	Exercises    []training.Exercise `json:"exercises"`
}

// UpdateProgramRequest represents a partial program update; absent fields
// are left untouched
type UpdateProgramRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=5000"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Difficulty   *string `json:"difficulty" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
}

// Create creates a new program, atomically inserting any supplied days
func (h *ProgramHandler) Create(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	program := &training.Program{
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Difficulty:   training.Difficulty(req.Difficulty),
	}
	days := make([]*training.Day, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, &training.Day{
			DayNumber:       d.DayNumber,
			Title:           d.Title,
			Description:     d.Description,
			ThumbnailURL:    d.ThumbnailURL,
			DurationMinutes: d.Duration,
			Exercises:       d.Exercises,
		})
	}

	created, err := h.programService.Create(c.Request.Context(), program, days)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, gin.H{"id": created.ID})
}

// List returns all programs, newest first
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, programs)
}

// Get returns a single program
func (h *ProgramHandler) Get(c *gin.Context) {
	program, err := h.programService.Get(c.Request.Context(), c.Param("programId"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, program)
}

// Update partially updates a program and returns the updated document
func (h *ProgramHandler) Update(c *gin.Context) {
	var req UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	patch := training.ProgramPatch{
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
	}
	if req.Difficulty != nil {
		difficulty := training.Difficulty(*req.Difficulty)
		patch.Difficulty = &difficulty
	}

	program, err := h.programService.Update(c.Request.Context(), c.Param("programId"), patch)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, program)
}

// Delete removes a program
func (h *ProgramHandler) Delete(c *gin.Context) {
	if err := h.programService.Delete(c.Request.Context(), c.Param("programId")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, nil)
}
