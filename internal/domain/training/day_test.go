package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay_Source(t *testing.T) {
	embedded := &Day{Exercises: []Exercise{{Name: "Squat"}}}
	assert.Equal(t, ExercisesEmbedded, embedded.Source())

	referenced := &Day{ExerciseIDs: []string{"ex1", "ex2"}}
	assert.Equal(t, ExercisesReferenced, referenced.Source())

	// The legacy creation path writes an empty (non-nil) reference list
	legacyEmpty := &Day{ExerciseIDs: []string{}}
	assert.Equal(t, ExercisesReferenced, legacyEmpty.Source())

	neither := &Day{}
	assert.Equal(t, ExercisesEmbedded, neither.Source())
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "Day 1", DefaultTitle(1))
	assert.Equal(t, "Day 12", DefaultTitle(12))
}

func TestDayPatch_IsEmpty(t *testing.T) {
	assert.True(t, DayPatch{}.IsEmpty())

	title := "Leg Day"
	assert.False(t, DayPatch{Title: &title}.IsEmpty())

	exercises := []Exercise{}
	assert.False(t, DayPatch{Exercises: &exercises}.IsEmpty())
}

func TestProgram_Validate(t *testing.T) {
	p := &Program{Name: "Strength Block"}
	assert.NoError(t, p.Validate())

	p = &Program{Name: " "}
	assert.Error(t, p.Validate())
}

func TestExercise_Validate(t *testing.T) {
	e := &Exercise{Name: "Deadlift"}
	assert.NoError(t, e.Validate())

	e = &Exercise{}
	assert.Error(t, e.Validate())
}
