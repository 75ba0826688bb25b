package persistence

import (
	"context"
	"fmt"

	"github.com/fitadmin/backend/internal/domain/training"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure MongoExerciseRepository implements training.ExerciseRepository
var _ training.ExerciseRepository = (*MongoExerciseRepository)(nil)

// MongoExerciseRepository persists library exercises in the exercises
// collection.
type MongoExerciseRepository struct {
	db *Database
}

// NewMongoExerciseRepository creates a new MongoExerciseRepository
func NewMongoExerciseRepository(db *Database) *MongoExerciseRepository {
	return &MongoExerciseRepository{db: db}
}

func (r *MongoExerciseRepository) exercises() *mongo.Collection {
	return r.db.Collection(CollectionExercises)
}

// Insert stores a new exercise and assigns its ID.
func (r *MongoExerciseRepository) Insert(ctx context.Context, exercise *training.Exercise) error {
	exercise.ID = primitive.NewObjectID().Hex()
	if _, err := r.exercises().InsertOne(ctx, exercise); err != nil {
		return fmt.Errorf("failed to insert exercise: %w", err)
	}
	return nil
}

// FindAll returns every library exercise sorted by name ascending.
func (r *MongoExerciseRepository) FindAll(ctx context.Context) ([]training.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.exercises().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer cursor.Close(ctx)

	exercises := make([]training.Exercise, 0)
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("failed to decode exercises: %w", err)
	}
	return exercises, nil
}

// FindByIDs resolves referenced exercise IDs, preserving the input order.
// Unknown IDs are skipped.
func (r *MongoExerciseRepository) FindByIDs(ctx context.Context, ids []string) ([]training.Exercise, error) {
	if len(ids) == 0 {
		return []training.Exercise{}, nil
	}

	cursor, err := r.exercises().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	found := make([]training.Exercise, 0, len(ids))
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode exercises: %w", err)
	}

	byID := make(map[string]training.Exercise, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}

	ordered := make([]training.Exercise, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered, nil
}
