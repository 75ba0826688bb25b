package training

import (
	"context"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
	"github.com/fitadmin/backend/internal/domain/training"
	"go.uber.org/zap"
)

// CreateDayInput is the shape of a single Day creation. Omitted fields
// fall back to defaults: dayNumber becomes max+1 within the Program and
// the title becomes "Day {n}".
type CreateDayInput struct {
	DayNumber       *int
	Title           string
	Description     string
	ThumbnailURL    string
	DurationMinutes *int
	Exercises       []training.Exercise
}

// DayService handles Day business operations within a Program
type DayService struct {
	days      training.DayRepository
	exercises training.ExerciseRepository
	logger    *zap.Logger
}

// NewDayService creates a new DayService
func NewDayService(days training.DayRepository, exercises training.ExerciseRepository, logger *zap.Logger) *DayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DayService{
		days:      days,
		exercises: exercises,
		logger:    logger,
	}
}

// List returns the Program's Days ordered by dayNumber, with referenced
// exercise IDs resolved to full exercise documents.
func (s *DayService) List(ctx context.Context, programID string) ([]training.Day, error) {
	days, err := s.days.FindByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	for i := range days {
		if err := s.resolveExercises(ctx, &days[i]); err != nil {
			return nil, err
		}
	}
	if days == nil {
		days = []training.Day{}
	}
	return days, nil
}

// Create stores a single new Day.
func (s *DayService) Create(ctx context.Context, programID string, in CreateDayInput) (*training.Day, error) {
	dayNumber, err := s.nextDayNumber(ctx, programID, in.DayNumber)
	if err != nil {
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = training.DefaultTitle(dayNumber)
	}
	exercises := in.Exercises
	if exercises == nil {
		exercises = []training.Exercise{}
	}

	day := &training.Day{
		ProgramID:       programID,
		DayNumber:       dayNumber,
		Title:           title,
		Description:     in.Description,
		ThumbnailURL:    in.ThumbnailURL,
		DurationMinutes: in.DurationMinutes,
		Exercises:       exercises,
		CreatedAt:       time.Now(),
	}
	if err := s.days.Insert(ctx, day); err != nil {
		s.logger.Error("Failed to insert day",
			zap.String("programId", programID),
			zap.Error(err),
		)
		return nil, err
	}
	return day, nil
}

// CreateWeek appends count empty Days, numbered sequentially after the
// highest existing dayNumber and titled "Day {n}".
func (s *DayService) CreateWeek(ctx context.Context, programID string, count int) ([]training.Day, error) {
	if count <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Day count must be positive")
	}

	maxNumber, err := s.days.MaxDayNumber(ctx, programID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := make([]training.Day, 0, count)
	for i := 0; i < count; i++ {
		dayNumber := maxNumber + 1 + i
		day := &training.Day{
			ProgramID: programID,
			DayNumber: dayNumber,
			Title:     training.DefaultTitle(dayNumber),
			Exercises: []training.Exercise{},
			CreatedAt: now,
		}
		if err := s.days.Insert(ctx, day); err != nil {
			s.logger.Error("Failed to insert day during bulk create",
				zap.String("programId", programID),
				zap.Int("dayNumber", dayNumber),
				zap.Error(err),
			)
			return nil, err
		}
		created = append(created, *day)
	}

	s.logger.Info("Created week of days",
		zap.String("programId", programID),
		zap.Int("count", count),
		zap.Int("firstDayNumber", maxNumber+1),
	)
	return created, nil
}

// Update merges the patch into the stored Day and returns the updated
// document. An exercises field in the patch replaces the stored list
// wholesale and converts a referenced Day to the embedded form, so a
// patch carrying both exercise representations is rejected.
func (s *DayService) Update(ctx context.Context, programID, dayID string, patch training.DayPatch) (*training.Day, error) {
	if patch.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Update requires at least one field")
	}
	if patch.Exercises != nil && patch.ExerciseIDs != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Exercises and exercise IDs are mutually exclusive")
	}
	return s.days.Update(ctx, programID, dayID, patch)
}

// Delete removes a single Day. Surviving Days keep their numbering.
func (s *DayService) Delete(ctx context.Context, programID, dayID string) error {
	return s.days.Delete(ctx, programID, dayID)
}

func (s *DayService) nextDayNumber(ctx context.Context, programID string, requested *int) (int, error) {
	if requested != nil {
		return *requested, nil
	}
	maxNumber, err := s.days.MaxDayNumber(ctx, programID)
	if err != nil {
		return 0, err
	}
	return maxNumber + 1, nil
}

// resolveExercises materializes referenced exercise IDs into full
// documents. Embedded Days pass through untouched.
func (s *DayService) resolveExercises(ctx context.Context, day *training.Day) error {
	if day.Source() == training.ExercisesReferenced {
		resolved, err := s.exercises.FindByIDs(ctx, day.ExerciseIDs)
		if err != nil {
			return err
		}
		day.Exercises = resolved
	}
	if day.Exercises == nil {
		day.Exercises = []training.Exercise{}
	}
	return nil
}
