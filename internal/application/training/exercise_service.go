package training

import (
	"context"
	"time"

	"github.com/fitadmin/backend/internal/domain/training"
	"go.uber.org/zap"
)

// ExerciseService handles the standalone exercise library
type ExerciseService struct {
	exercises training.ExerciseRepository
	logger    *zap.Logger
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(exercises training.ExerciseRepository, logger *zap.Logger) *ExerciseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExerciseService{
		exercises: exercises,
		logger:    logger,
	}
}

// Create stores a new library exercise.
func (s *ExerciseService) Create(ctx context.Context, exercise *training.Exercise) (*training.Exercise, error) {
	if err := exercise.Validate(); err != nil {
		return nil, err
	}
	exercise.CreatedAt = time.Now()

	if err := s.exercises.Insert(ctx, exercise); err != nil {
		s.logger.Error("Failed to insert exercise", zap.Error(err))
		return nil, err
	}
	return exercise, nil
}

// List returns every library exercise sorted by name.
func (s *ExerciseService) List(ctx context.Context) ([]training.Exercise, error) {
	exercises, err := s.exercises.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []training.Exercise{}
	}
	return exercises, nil
}
