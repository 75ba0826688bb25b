package persistence

import (
	"context"
	"fmt"

	"github.com/fitadmin/backend/internal/domain/identity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure MongoAllowListRepository implements identity.AllowListRepository
var _ identity.AllowListRepository = (*MongoAllowListRepository)(nil)

// MongoAllowListRepository answers admin membership from the admins
// collection. Document IDs are the admin user identifiers; existence of
// the document is the entire payload.
type MongoAllowListRepository struct {
	db *Database
}

// NewMongoAllowListRepository creates a new MongoAllowListRepository
func NewMongoAllowListRepository(db *Database) *MongoAllowListRepository {
	return &MongoAllowListRepository{db: db}
}

// IsAdmin reports whether admins/{uid} exists.
func (r *MongoAllowListRepository) IsAdmin(ctx context.Context, uid string) (bool, error) {
	opts := options.Count().SetLimit(1)
	count, err := r.db.Collection(CollectionAdmins).CountDocuments(ctx, bson.M{"_id": uid}, opts)
	if err != nil {
		return false, fmt.Errorf("failed to check admin membership: %w", err)
	}
	return count > 0, nil
}
