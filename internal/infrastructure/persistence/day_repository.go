package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitadmin/backend/internal/domain/shared"
	"github.com/fitadmin/backend/internal/domain/training"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure MongoDayRepository implements training.DayRepository
var _ training.DayRepository = (*MongoDayRepository)(nil)

// MongoDayRepository persists Days in the program_days collection, keyed
// by the owning Program's ID.
type MongoDayRepository struct {
	db *Database
}

// NewMongoDayRepository creates a new MongoDayRepository
func NewMongoDayRepository(db *Database) *MongoDayRepository {
	return &MongoDayRepository{db: db}
}

func (r *MongoDayRepository) days() *mongo.Collection {
	return r.db.Collection(CollectionProgramDays)
}

// Insert stores a new Day under its Program and assigns its ID.
func (r *MongoDayRepository) Insert(ctx context.Context, day *training.Day) error {
	day.ID = primitive.NewObjectID().Hex()
	if _, err := r.days().InsertOne(ctx, day); err != nil {
		return fmt.Errorf("failed to insert day: %w", err)
	}
	return nil
}

// FindByID returns a single Day of a Program.
func (r *MongoDayRepository) FindByID(ctx context.Context, programID, dayID string) (*training.Day, error) {
	var day training.Day
	err := r.days().FindOne(ctx, bson.M{"_id": dayID, "programId": programID}).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find day: %w", err)
	}
	return &day, nil
}

// FindByProgram returns all Days of a Program sorted by dayNumber ascending.
func (r *MongoDayRepository) FindByProgram(ctx context.Context, programID string) ([]training.Day, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dayNumber", Value: 1}})
	cursor, err := r.days().Find(ctx, bson.M{"programId": programID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer cursor.Close(ctx)

	days := make([]training.Day, 0)
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("failed to decode days: %w", err)
	}
	return days, nil
}

// MaxDayNumber returns the highest dayNumber in the Program, or 0 when
// the Program has no Days.
func (r *MongoDayRepository) MaxDayNumber(ctx context.Context, programID string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "dayNumber", Value: -1}})
	var day training.Day
	err := r.days().FindOne(ctx, bson.M{"programId": programID}, opts).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find max day number: %w", err)
	}
	return day.DayNumber, nil
}

// Update merges the patch into the stored Day and returns the updated
// document. The exercises array is replaced wholesale, never merged by ID;
// writing it also removes any legacy exerciseIds so reads see the new list.
func (r *MongoDayRepository) Update(ctx context.Context, programID, dayID string, patch training.DayPatch) (*training.Day, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var day training.Day
	err := r.days().FindOneAndUpdate(ctx, bson.M{"_id": dayID, "programId": programID}, dayUpdateDocument(patch), opts).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update day: %w", err)
	}
	return &day, nil
}

// dayUpdateDocument translates a patch into the Mongo update to apply.
// The updatedAt stamp is always written, so even a patch with no fields
// produces a matching update and a missing Day surfaces as not found.
func dayUpdateDocument(patch training.DayPatch) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.DayNumber != nil {
		set["dayNumber"] = *patch.DayNumber
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ThumbnailURL != nil {
		set["thumbnailUrl"] = *patch.ThumbnailURL
	}
	if patch.DurationMinutes != nil {
		set["duration"] = *patch.DurationMinutes
	}
	if patch.ExerciseIDs != nil {
		ids := *patch.ExerciseIDs
		if ids == nil {
			ids = []string{}
		}
		set["exerciseIds"] = ids
	}

	update := bson.M{"$set": set}
	if patch.Exercises != nil {
		exercises := *patch.Exercises
		if exercises == nil {
			exercises = []training.Exercise{}
		}
		set["exercises"] = exercises
		// A saved exercise list supersedes the legacy referenced form.
		if patch.ExerciseIDs == nil {
			update["$unset"] = bson.M{"exerciseIds": ""}
		}
	}
	return update
}

// Delete removes a single Day document without renumbering survivors.
func (r *MongoDayRepository) Delete(ctx context.Context, programID, dayID string) error {
	res, err := r.days().DeleteOne(ctx, bson.M{"_id": dayID, "programId": programID})
	if err != nil {
		return fmt.Errorf("failed to delete day: %w", err)
	}
	if res.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
