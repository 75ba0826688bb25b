// Package training implements the application services behind the
// program builder: Programs, their Days, and the exercise library.
package training

import (
	"context"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
	"github.com/fitadmin/backend/internal/domain/training"
	"go.uber.org/zap"
)

// ProgramService handles Program business operations
type ProgramService struct {
	programs training.ProgramRepository
	logger   *zap.Logger
}

// NewProgramService creates a new ProgramService
func NewProgramService(programs training.ProgramRepository, logger *zap.Logger) *ProgramService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramService{
		programs: programs,
		logger:   logger,
	}
}

// Create stores a new Program. When days is non-empty the whole batch is
// written atomically with the caller's day numbering taken verbatim.
func (s *ProgramService) Create(ctx context.Context, program *training.Program, days []*training.Day) (*training.Program, error) {
	if err := program.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	program.CreatedAt = now

	if len(days) == 0 {
		if err := s.programs.Insert(ctx, program); err != nil {
			s.logger.Error("Failed to insert program", zap.Error(err))
			return nil, err
		}
		return program, nil
	}

	for _, day := range days {
		if day.Title == "" {
			day.Title = training.DefaultTitle(day.DayNumber)
		}
		if day.Exercises == nil {
			day.Exercises = []training.Exercise{}
		}
		day.CreatedAt = now
	}

	if err := s.programs.InsertWithDays(ctx, program, days); err != nil {
		s.logger.Error("Failed to insert program with days",
			zap.Int("days", len(days)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Created program",
		zap.String("programId", program.ID),
		zap.Int("days", len(days)),
	)
	return program, nil
}

// Get returns a single Program.
func (s *ProgramService) Get(ctx context.Context, id string) (*training.Program, error) {
	return s.programs.FindByID(ctx, id)
}

// List returns every Program, newest first.
func (s *ProgramService) List(ctx context.Context) ([]training.Program, error) {
	programs, err := s.programs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []training.Program{}
	}
	return programs, nil
}

// Update merges the patch into the stored Program and returns the
// updated document. A patch with no fields is rejected before touching
// storage.
func (s *ProgramService) Update(ctx context.Context, id string, patch training.ProgramPatch) (*training.Program, error) {
	if patch.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Update requires at least one field")
	}
	return s.programs.Update(ctx, id, patch)
}

// Delete removes the Program document. Its Days are left in place.
func (s *ProgramService) Delete(ctx context.Context, id string) error {
	if err := s.programs.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted program", zap.String("programId", id))
	return nil
}
