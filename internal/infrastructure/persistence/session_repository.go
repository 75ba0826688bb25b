package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitadmin/backend/internal/domain/session"
	"github.com/fitadmin/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure MongoSessionRepository implements session.Repository
var _ session.Repository = (*MongoSessionRepository)(nil)

// MongoSessionRepository persists Sessions in the flat sessions
// collection.
type MongoSessionRepository struct {
	db *Database
}

// NewMongoSessionRepository creates a new MongoSessionRepository
func NewMongoSessionRepository(db *Database) *MongoSessionRepository {
	return &MongoSessionRepository{db: db}
}

func (r *MongoSessionRepository) sessions() *mongo.Collection {
	return r.db.Collection(CollectionSessions)
}

// Insert stores a new Session and assigns its ID.
func (r *MongoSessionRepository) Insert(ctx context.Context, s *session.Session) error {
	s.ID = primitive.NewObjectID().Hex()
	if _, err := r.sessions().InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// FindAll returns every Session in storage order. The display ordering
// rule lives in the domain, not in the query.
func (r *MongoSessionRepository) FindAll(ctx context.Context) ([]session.Session, error) {
	cursor, err := r.sessions().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := make([]session.Session, 0)
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// MaxOrder returns the highest assigned Order and whether any Session
// carries one.
func (r *MongoSessionRepository) MaxOrder(ctx context.Context) (int, bool, error) {
	filter := bson.M{"order": bson.M{"$exists": true}}
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})

	var s session.Session
	err := r.sessions().FindOne(ctx, filter, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find max order: %w", err)
	}
	if s.Order == nil {
		return 0, false, nil
	}
	return *s.Order, true, nil
}

// Update merges the patch into the stored Session.
func (r *MongoSessionRepository) Update(ctx context.Context, id string, patch session.Patch) error {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.DurationMinutes != nil {
		set["duration"] = *patch.DurationMinutes
	}
	if patch.VideoURL != nil {
		set["videoUrl"] = *patch.VideoURL
	}
	if patch.ThumbnailURL != nil {
		set["thumbnailUrl"] = *patch.ThumbnailURL
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}
	// Empty patches are rejected at the service layer; an empty $set
	// would be a Mongo error, so surface misuse instead of succeeding.
	if len(set) == 0 {
		return shared.ErrInvalidInput
	}

	res, err := r.sessions().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if res.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a Session document.
func (r *MongoSessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.sessions().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
