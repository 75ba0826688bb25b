package training

import (
	"context"
	"strings"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
)

// Difficulty grades a Program.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Program is a multi-day fitness curriculum. It exclusively owns its Days
// sub-collection.
type Program struct {
	ID           string     `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string     `json:"name" bson:"name"`
	Description  string     `json:"description" bson:"description"`
	ThumbnailURL string     `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Difficulty   Difficulty `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Validate checks invariants for new Programs.
func (p *Program) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Program name is required")
	}
	return nil
}

// ProgramPatch carries a partial Program update. Nil fields are preserved
// in the stored document.
type ProgramPatch struct {
	Name         *string     `json:"name,omitempty"`
	Description  *string     `json:"description,omitempty"`
	ThumbnailURL *string     `json:"thumbnailUrl,omitempty"`
	Difficulty   *Difficulty `json:"difficulty,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p ProgramPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.ThumbnailURL == nil && p.Difficulty == nil
}

// ProgramRepository provides access to the programs collection.
type ProgramRepository interface {
	// Insert stores a new Program and assigns its ID.
	Insert(ctx context.Context, program *Program) error
	// InsertWithDays stores a Program together with an initial batch of
	// Days as a single atomic multi-document write. Day numbering is
	// taken from the caller verbatim.
	InsertWithDays(ctx context.Context, program *Program, days []*Day) error
	// FindByID returns a Program by ID.
	FindByID(ctx context.Context, id string) (*Program, error)
	// FindAll returns every Program sorted by createdAt descending.
	FindAll(ctx context.Context) ([]Program, error)
	// Update merges the patch into the stored Program and returns the
	// updated document.
	Update(ctx context.Context, id string, patch ProgramPatch) (*Program, error)
	// Delete removes only the Program document. Days are intentionally
	// left in place; see the design notes on the non-cascading delete.
	Delete(ctx context.Context, id string) error
}
