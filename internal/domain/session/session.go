package session

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
)

// Session is a standalone workout video entry with manual display
// ordering. Order is a dense 0-based rank; Sessions created before manual
// ordering existed have no Order at all and sort after every ranked one.
type Session struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string    `json:"title" bson:"title"`
	DurationMinutes int       `json:"duration" bson:"duration"`
	VideoURL        string    `json:"videoUrl" bson:"videoUrl"`
	ThumbnailURL    string    `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Order           *int      `json:"order,omitempty" bson:"order,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// Validate checks invariants for new Sessions.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Session title is required")
	}
	return nil
}

// Patch carries a partial Session update. Nil fields are preserved.
type Patch struct {
	Title           *string `json:"title,omitempty"`
	DurationMinutes *int    `json:"duration,omitempty"`
	VideoURL        *string `json:"videoUrl,omitempty"`
	ThumbnailURL    *string `json:"thumbnailUrl,omitempty"`
	Order           *int    `json:"order,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.DurationMinutes == nil && p.VideoURL == nil &&
		p.ThumbnailURL == nil && p.Order == nil
}

// Sort orders Sessions for display: ranked Sessions first by ascending
// Order, then unranked ones by createdAt descending. The mixed rule keeps
// lists stable for Sessions created before ordering existed.
func Sort(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		switch {
		case a.Order != nil && b.Order != nil:
			return *a.Order < *b.Order
		case a.Order != nil:
			return true
		case b.Order != nil:
			return false
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// Repository provides access to the flat sessions collection.
type Repository interface {
	// Insert stores a new Session and assigns its ID.
	Insert(ctx context.Context, s *Session) error
	// FindAll returns every Session in storage order; callers apply Sort.
	FindAll(ctx context.Context) ([]Session, error)
	// MaxOrder returns the highest assigned Order and whether any
	// Session carries one.
	MaxOrder(ctx context.Context) (int, bool, error)
	// Update merges the patch into the stored Session.
	Update(ctx context.Context, id string, patch Patch) error
	// Delete removes a Session document.
	Delete(ctx context.Context, id string) error
}
