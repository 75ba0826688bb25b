package training

import (
	"context"
	"fmt"
	"time"
)

// ExerciseSource identifies which of the two historical exercise
// representations a Day uses. Older Days reference library exercises by
// ID; newer Days embed the exercise documents directly. The two forms are
// mutually exclusive per Day and neither is migrated to the other.
type ExerciseSource int

const (
	ExercisesEmbedded ExerciseSource = iota
	ExercisesReferenced
)

// Day is one scheduled workout unit within a Program. DayNumber is 1-based
// and defines display and workout order within the owning Program.
type Day struct {
	ID              string     `json:"id,omitempty" bson:"_id,omitempty"`
	ProgramID       string     `json:"programId" bson:"programId"`
	DayNumber       int        `json:"dayNumber" bson:"dayNumber"`
	Title           string     `json:"title" bson:"title"`
	Description     string     `json:"description" bson:"description"`
	ThumbnailURL    string     `json:"thumbnailUrl" bson:"thumbnailUrl"`
	DurationMinutes *int       `json:"duration,omitempty" bson:"duration,omitempty"`
	Exercises       []Exercise `json:"exercises" bson:"exercises"`
	ExerciseIDs     []string   `json:"exerciseIds,omitempty" bson:"exerciseIds,omitempty"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Source reports which exercise representation this Day carries. A Day
// with a non-nil ExerciseIDs slice (even an empty one, as written by the
// legacy creation path) is the referenced variant.
func (d *Day) Source() ExerciseSource {
	if d.ExerciseIDs != nil {
		return ExercisesReferenced
	}
	return ExercisesEmbedded
}

// DefaultTitle returns the title used when the caller omits one.
func DefaultTitle(dayNumber int) string {
	return fmt.Sprintf("Day %d", dayNumber)
}

// DayPatch carries a partial Day update. Nil fields are left untouched in
// the stored document; set fields overwrite, with Exercises replaced
// wholesale rather than merged by ID. Writing Exercises also clears any
// stored exerciseIds, converting a referenced Day to the embedded form.
type DayPatch struct {
	DayNumber       *int        `json:"dayNumber,omitempty"`
	Title           *string     `json:"title,omitempty"`
	Description     *string     `json:"description,omitempty"`
	ThumbnailURL    *string     `json:"thumbnailUrl,omitempty"`
	DurationMinutes *int        `json:"duration,omitempty"`
	Exercises       *[]Exercise `json:"exercises,omitempty"`
	ExerciseIDs     *[]string   `json:"exerciseIds,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p DayPatch) IsEmpty() bool {
	return p.DayNumber == nil && p.Title == nil && p.Description == nil &&
		p.ThumbnailURL == nil && p.DurationMinutes == nil &&
		p.Exercises == nil && p.ExerciseIDs == nil
}

// DayRepository provides access to the Days sub-collection of a Program.
type DayRepository interface {
	// Insert stores a new Day under its Program and assigns its ID.
	Insert(ctx context.Context, day *Day) error
	// FindByID returns a single Day of a Program.
	FindByID(ctx context.Context, programID, dayID string) (*Day, error)
	// FindByProgram returns all Days of a Program sorted by dayNumber
	// ascending.
	FindByProgram(ctx context.Context, programID string) ([]Day, error)
	// MaxDayNumber returns the highest dayNumber in the Program, or 0
	// when the Program has no Days.
	MaxDayNumber(ctx context.Context, programID string) (int, error)
	// Update merges the patch into the stored Day and returns the
	// updated document.
	Update(ctx context.Context, programID, dayID string, patch DayPatch) (*Day, error)
	// Delete removes a single Day document. Surviving Days keep their
	// numbering.
	Delete(ctx context.Context, programID, dayID string) error
}
