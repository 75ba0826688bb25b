package member

import (
	"context"
	"strings"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
)

// ExperienceLevel grades a member's training background.
const DefaultExperienceLevel = "Beginner"

// Member is an end-user profile record managed from the admin console.
type Member struct {
	ID                 string     `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName          string     `json:"firstName" bson:"firstName"`
	LastName           string     `json:"lastName" bson:"lastName"`
	Email              string     `json:"email" bson:"email"`
	DateOfBirth        string     `json:"dateOfBirth" bson:"dateOfBirth"`
	HeightFeet         int        `json:"heightFeet" bson:"heightFeet"`
	HeightInches       int        `json:"heightInches" bson:"heightInches"`
	WeightPounds       int        `json:"weightPounds" bson:"weightPounds"`
	ExperienceLevel    string     `json:"experienceLevel" bson:"experienceLevel"`
	Goals              []string   `json:"goals" bson:"goals"`
	CurrentProgramID   string     `json:"currentProgramId" bson:"currentProgramId"`
	CurrentDayNumber   int        `json:"currentDayNumber" bson:"currentDayNumber"`
	JoinedDate         time.Time  `json:"joinedDate" bson:"joinedDate"`
	LastCompletionDate *time.Time `json:"lastCompletionDate,omitempty" bson:"lastCompletionDate,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Validate checks the fields required for member creation.
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.FirstName) == "" || strings.TrimSpace(m.LastName) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Email, first name, and last name are required")
	}
	return nil
}

// ApplyDefaults fills the defaults used when the admin form omits fields.
func (m *Member) ApplyDefaults() {
	if m.ExperienceLevel == "" {
		m.ExperienceLevel = DefaultExperienceLevel
	}
	if m.Goals == nil {
		m.Goals = []string{}
	}
}

// Completion records one finished workout day, stored in the member's
// completions sub-collection.
type Completion struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	MemberID        string    `json:"-" bson:"userId"`
	DayNumber       int       `json:"dayNumber" bson:"dayNumber"`
	DurationMinutes int       `json:"durationMinutes" bson:"durationMinutes"`
	CompletedAt     time.Time `json:"completedAt" bson:"completedAt"`
}

// Patch carries a partial Member update. Nil fields are preserved in the
// stored document.
type Patch struct {
	FirstName        *string   `json:"firstName,omitempty"`
	LastName         *string   `json:"lastName,omitempty"`
	Email            *string   `json:"email,omitempty"`
	DateOfBirth      *string   `json:"dateOfBirth,omitempty"`
	HeightFeet       *int      `json:"heightFeet,omitempty"`
	HeightInches     *int      `json:"heightInches,omitempty"`
	WeightPounds     *int      `json:"weightPounds,omitempty"`
	ExperienceLevel  *string   `json:"experienceLevel,omitempty"`
	Goals            *[]string `json:"goals,omitempty"`
	CurrentProgramID *string   `json:"currentProgramId,omitempty"`
	CurrentDayNumber *int      `json:"currentDayNumber,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.DateOfBirth == nil && p.HeightFeet == nil && p.HeightInches == nil &&
		p.WeightPounds == nil && p.ExperienceLevel == nil && p.Goals == nil &&
		p.CurrentProgramID == nil && p.CurrentDayNumber == nil
}

// Repository provides access to the users collection and its completions
// and progress sub-collections.
type Repository interface {
	// Insert stores a new Member and assigns its ID.
	Insert(ctx context.Context, m *Member) error
	// FindAll returns every Member sorted by joinedDate descending.
	FindAll(ctx context.Context) ([]Member, error)
	// FindByID returns a Member by ID.
	FindByID(ctx context.Context, id string) (*Member, error)
	// Update merges the patch into the stored Member.
	Update(ctx context.Context, id string, patch Patch) error
	// Delete removes only the Member document; sub-collections are
	// cascaded separately, one document at a time.
	Delete(ctx context.Context, id string) error

	// FindCompletions returns the member's completions sub-collection.
	FindCompletions(ctx context.Context, memberID string) ([]Completion, error)
	// CompletionIDs and ProgressIDs enumerate sub-collection documents
	// for the best-effort cascade delete.
	CompletionIDs(ctx context.Context, memberID string) ([]string, error)
	ProgressIDs(ctx context.Context, memberID string) ([]string, error)
	// DeleteCompletion and DeleteProgress remove a single sub-collection
	// document.
	DeleteCompletion(ctx context.Context, memberID, id string) error
	DeleteProgress(ctx context.Context, memberID, id string) error
}
