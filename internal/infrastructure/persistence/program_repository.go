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

// Ensure MongoProgramRepository implements training.ProgramRepository
var _ training.ProgramRepository = (*MongoProgramRepository)(nil)

// MongoProgramRepository persists Programs in the programs collection.
// Document IDs are ObjectID hex strings assigned at insert time.
type MongoProgramRepository struct {
	db *Database
}

// NewMongoProgramRepository creates a new MongoProgramRepository
func NewMongoProgramRepository(db *Database) *MongoProgramRepository {
	return &MongoProgramRepository{db: db}
}

func (r *MongoProgramRepository) programs() *mongo.Collection {
	return r.db.Collection(CollectionPrograms)
}

// Insert stores a new Program and assigns its ID.
func (r *MongoProgramRepository) Insert(ctx context.Context, program *training.Program) error {
	program.ID = primitive.NewObjectID().Hex()
	if _, err := r.programs().InsertOne(ctx, program); err != nil {
		return fmt.Errorf("failed to insert program: %w", err)
	}
	return nil
}

// InsertWithDays stores a Program and its initial Days batch inside one
// transaction. Day numbering comes from the caller verbatim.
func (r *MongoProgramRepository) InsertWithDays(ctx context.Context, program *training.Program, days []*training.Day) error {
	program.ID = primitive.NewObjectID().Hex()

	sess, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.programs().InsertOne(sc, program); err != nil {
			return nil, err
		}
		if len(days) == 0 {
			return nil, nil
		}

		docs := make([]interface{}, 0, len(days))
		for _, day := range days {
			day.ID = primitive.NewObjectID().Hex()
			day.ProgramID = program.ID
			docs = append(docs, day)
		}
		if _, err := r.db.Collection(CollectionProgramDays).InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert program with days: %w", err)
	}
	return nil
}

// FindByID returns a Program by ID.
func (r *MongoProgramRepository) FindByID(ctx context.Context, id string) (*training.Program, error) {
	var program training.Program
	err := r.programs().FindOne(ctx, bson.M{"_id": id}).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find program: %w", err)
	}
	return &program, nil
}

// FindAll returns every Program sorted by createdAt descending.
func (r *MongoProgramRepository) FindAll(ctx context.Context) ([]training.Program, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.programs().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer cursor.Close(ctx)

	programs := make([]training.Program, 0)
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, fmt.Errorf("failed to decode programs: %w", err)
	}
	return programs, nil
}

// Update merges the patch into the stored Program and returns the updated
// document. Only fields present in the patch are written.
func (r *MongoProgramRepository) Update(ctx context.Context, id string, patch training.ProgramPatch) (*training.Program, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ThumbnailURL != nil {
		set["thumbnailUrl"] = *patch.ThumbnailURL
	}
	if patch.Difficulty != nil {
		set["difficulty"] = *patch.Difficulty
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var program training.Program
	err := r.programs().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update program: %w", err)
	}
	return &program, nil
}

// Delete removes only the Program document. Its Days stay in place.
func (r *MongoProgramRepository) Delete(ctx context.Context, id string) error {
	res, err := r.programs().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	if res.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
