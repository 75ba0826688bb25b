package persistence

import (
	"testing"

	"github.com/fitadmin/backend/internal/domain/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDayUpdateDocument_ReplacesExercisesWholesale(t *testing.T) {
	// Saving two exercises where three were stored must write exactly
	// the two-element array.
	kept := []training.Exercise{{Name: "Squat"}, {Name: "Lunge"}}
	update := dayUpdateDocument(training.DayPatch{Exercises: &kept})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, kept, set["exercises"])
	assert.Len(t, set["exercises"], 2)
}

func TestDayUpdateDocument_ClearsLegacyReferences(t *testing.T) {
	embedded := []training.Exercise{{Name: "Row"}}
	update := dayUpdateDocument(training.DayPatch{Exercises: &embedded})

	unset, ok := update["$unset"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, unset, "exerciseIds")
}

func TestDayUpdateDocument_NilExercisesStoredAsEmptyArray(t *testing.T) {
	var cleared []training.Exercise
	update := dayUpdateDocument(training.DayPatch{Exercises: &cleared})

	set := update["$set"].(bson.M)
	assert.Equal(t, []training.Exercise{}, set["exercises"])
}

func TestDayUpdateDocument_ReferencedFormLeftAlone(t *testing.T) {
	ids := []string{"ex1", "ex2"}
	update := dayUpdateDocument(training.DayPatch{ExerciseIDs: &ids})

	set := update["$set"].(bson.M)
	assert.Equal(t, ids, set["exerciseIds"])
	_, hasUnset := update["$unset"]
	assert.False(t, hasUnset)
}

func TestDayUpdateDocument_AlwaysStampsUpdatedAt(t *testing.T) {
	update := dayUpdateDocument(training.DayPatch{})

	set := update["$set"].(bson.M)
	assert.Contains(t, set, "updatedAt")
	assert.Len(t, set, 1)
}

func TestDayUpdateDocument_UntouchedFieldsStayOut(t *testing.T) {
	title := "Leg Day"
	update := dayUpdateDocument(training.DayPatch{Title: &title})

	set := update["$set"].(bson.M)
	assert.Equal(t, "Leg Day", set["title"])
	assert.NotContains(t, set, "description")
	assert.NotContains(t, set, "exercises")
	assert.NotContains(t, set, "exerciseIds")
}
