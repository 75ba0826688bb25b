package handler

import (
	trainingapp "github.com/fitadmin/backend/internal/application/training"
	"github.com/fitadmin/backend/internal/domain/training"
	"github.com/gin-gonic/gin"
)

// ExerciseHandler handles the standalone exercise library endpoints
type ExerciseHandler struct {
	BaseHandler
	exerciseService *trainingapp.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseService *trainingapp.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// RegisterRoutes registers exercise routes
func (h *ExerciseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	exercises := rg.Group("/exercises")
	{
		exercises.POST("", h.Create)
		exercises.GET("", h.List)
	}
}

// CreateExerciseRequest represents a request to create a library exercise
type CreateExerciseRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Sets         *int   `json:"sets" binding:"omitempty,min=0"`
	Reps         *int   `json:"reps" binding:"omitempty,min=0"`
	Time         *int   `json:"time" binding:"omitempty,min=0"`
	Distance     *int   `json:"distance" binding:"omitempty,min=0"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Create creates a new library exercise
func (h *ExerciseHandler) Create(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), &training.Exercise{
		Name:           req.Name,
		Sets:           req.Sets,
		Reps:           req.Reps,
		TimeSeconds:    req.Time,
		DistanceMeters: req.Distance,
		VideoURL:       req.VideoURL,
		ThumbnailURL:   req.ThumbnailURL,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, gin.H{"id": exercise.ID})
}

// List returns every library exercise, sorted by name
func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, exercises)
}
