package handler

import (
	memberapp "github.com/fitadmin/backend/internal/application/member"
	"github.com/fitadmin/backend/internal/domain/member"
	"github.com/gin-gonic/gin"
)

// UserHandler handles end-user profile API endpoints
type UserHandler struct {
	BaseHandler
	memberService *memberapp.Service
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(memberService *memberapp.Service) *UserHandler {
	return &UserHandler{memberService: memberService}
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

// CreateUserRequest represents a request to create a user profile
type CreateUserRequest struct {
	FirstName        string   `json:"firstName" binding:"required,min=1,max=100"`
	LastName         string   `json:"lastName" binding:"required,min=1,max=100"`
	Email            string   `json:"email" binding:"required,email"`
	DateOfBirth      string   `json:"dateOfBirth"`
	HeightFeet       int      `json:"heightFeet" binding:"omitempty,min=0"`
	HeightInches     int      `json:"heightInches" binding:"omitempty,min=0,max=11"`
	WeightPounds     int      `json:"weightPounds" binding:"omitempty,min=0"`
	ExperienceLevel  string   `json:"experienceLevel"`
	Goals            []string `json:"goals"`
	CurrentProgramID string   `json:"currentProgramId"`
	CurrentDayNumber int      `json:"currentDayNumber" binding:"omitempty,min=0"`
}

// UpdateUserRequest represents a partial user profile update
type UpdateUserRequest struct {
	FirstName        *string   `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName         *string   `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email            *string   `json:"email" binding:"omitempty,email"`
	DateOfBirth      *string   `json:"dateOfBirth"`
	HeightFeet       *int      `json:"heightFeet" binding:"omitempty,min=0"`
	HeightInches     *int      `json:"heightInches" binding:"omitempty,min=0,max=11"`
	WeightPounds     *int      `json:"weightPounds" binding:"omitempty,min=0"`
	ExperienceLevel  *string   `json:"experienceLevel"`
	Goals            *[]string `json:"goals"`
	CurrentProgramID *string   `json:"currentProgramId"`
	CurrentDayNumber *int      `json:"currentDayNumber" binding:"omitempty,min=0"`
}

// List returns all users, newest first
func (h *UserHandler) List(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, members)
}

// Create creates a new user profile
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	created, err := h.memberService.Create(c.Request.Context(), &member.Member{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		DateOfBirth:      req.DateOfBirth,
		HeightFeet:       req.HeightFeet,
		HeightInches:     req.HeightInches,
		WeightPounds:     req.WeightPounds,
		ExperienceLevel:  req.ExperienceLevel,
		Goals:            req.Goals,
		CurrentProgramID: req.CurrentProgramID,
		CurrentDayNumber: req.CurrentDayNumber,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// Get returns a user together with their workout completions
func (h *UserHandler) Get(c *gin.Context) {
	m, completions, err := h.memberService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"user": m, "completions": completions})
}

// Update partially updates a user profile and returns the updated document
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	updated, err := h.memberService.Update(c.Request.Context(), c.Param("id"), member.Patch{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		DateOfBirth:      req.DateOfBirth,
		HeightFeet:       req.HeightFeet,
		HeightInches:     req.HeightInches,
		WeightPounds:     req.WeightPounds,
		ExperienceLevel:  req.ExperienceLevel,
		Goals:            req.Goals,
		CurrentProgramID: req.CurrentProgramID,
		CurrentDayNumber: req.CurrentDayNumber,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes a user and cascades their completion and progress
// documents, reporting the cascade outcome
func (h *UserHandler) Delete(c *gin.Context) {
	result, err := h.memberService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"cascade": result})
}
