package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestSort_OrderedBeforeUnordered(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []Session{
		{ID: "legacy-new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "second", Order: intPtr(1), CreatedAt: base},
		{ID: "legacy-old", CreatedAt: base.Add(time.Hour)},
		{ID: "first", Order: intPtr(0), CreatedAt: base},
	}

	Sort(sessions)

	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"first", "second", "legacy-new", "legacy-old"}, ids)
}

func TestSort_AllOrdered(t *testing.T) {
	sessions := []Session{
		{ID: "c", Order: intPtr(2)},
		{ID: "a", Order: intPtr(0)},
		{ID: "b", Order: intPtr(1)},
	}

	Sort(sessions)

	assert.Equal(t, "a", sessions[0].ID)
	assert.Equal(t, "b", sessions[1].ID)
	assert.Equal(t, "c", sessions[2].ID)
}

func TestSort_AllUnordered_NewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []Session{
		{ID: "oldest", CreatedAt: base},
		{ID: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "middle", CreatedAt: base.Add(time.Hour)},
	}

	Sort(sessions)

	assert.Equal(t, "newest", sessions[0].ID)
	assert.Equal(t, "middle", sessions[1].ID)
	assert.Equal(t, "oldest", sessions[2].ID)
}

func TestSort_Empty(t *testing.T) {
	var sessions []Session
	Sort(sessions)
	assert.Empty(t, sessions)
}

func TestSession_Validate(t *testing.T) {
	s := &Session{Title: "Morning Flow"}
	assert.NoError(t, s.Validate())

	s = &Session{Title: "   "}
	assert.Error(t, s.Validate())
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())

	title := "Updated"
	assert.False(t, Patch{Title: &title}.IsEmpty())
	assert.False(t, Patch{Order: intPtr(0)}.IsEmpty())
}
