package training

import (
	"context"
	"strings"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
)

// Exercise is a single movement prescription with demonstration media.
// The same shape is used both as a standalone library document and as an
// entry embedded directly in a Day.
type Exercise struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Sets           *int      `json:"sets,omitempty" bson:"sets,omitempty"`
	Reps           *int      `json:"reps,omitempty" bson:"reps,omitempty"`
	TimeSeconds    *int      `json:"time,omitempty" bson:"time,omitempty"`
	DistanceMeters *int      `json:"distance,omitempty" bson:"distance,omitempty"`
	VideoURL       string    `json:"videoUrl" bson:"videoUrl"`
	ThumbnailURL   string    `json:"thumbnailUrl" bson:"thumbnailUrl"`
	CreatedAt      time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Validate checks invariants for library exercises. Media URLs are not
// re-validated here; the admin UI enforces their presence before upload.
func (e *Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Exercise name is required")
	}
	return nil
}

// ExerciseRepository provides access to the standalone exercise library.
type ExerciseRepository interface {
	// Insert stores a new exercise and assigns its ID.
	Insert(ctx context.Context, exercise *Exercise) error
	// FindAll returns every library exercise sorted by name ascending.
	FindAll(ctx context.Context) ([]Exercise, error)
	// FindByIDs resolves referenced exercise IDs, preserving the input
	// order. Unknown IDs are skipped rather than failing the lookup.
	FindByIDs(ctx context.Context, ids []string) ([]Exercise, error)
}
