package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitadmin/backend/internal/domain/member"
	"github.com/fitadmin/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure MongoMemberRepository implements member.Repository
var _ member.Repository = (*MongoMemberRepository)(nil)

// MongoMemberRepository persists end-user profiles in the users
// collection, with completions and progress as sibling collections keyed
// by the user's ID.
type MongoMemberRepository struct {
	db *Database
}

// NewMongoMemberRepository creates a new MongoMemberRepository
func NewMongoMemberRepository(db *Database) *MongoMemberRepository {
	return &MongoMemberRepository{db: db}
}

func (r *MongoMemberRepository) users() *mongo.Collection {
	return r.db.Collection(CollectionUsers)
}

func (r *MongoMemberRepository) completions() *mongo.Collection {
	return r.db.Collection(CollectionCompletions)
}

func (r *MongoMemberRepository) progress() *mongo.Collection {
	return r.db.Collection(CollectionProgress)
}

// Insert stores a new Member and assigns its ID.
func (r *MongoMemberRepository) Insert(ctx context.Context, m *member.Member) error {
	m.ID = primitive.NewObjectID().Hex()
	if _, err := r.users().InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindAll returns every Member sorted by joinedDate descending.
func (r *MongoMemberRepository) FindAll(ctx context.Context) ([]member.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joinedDate", Value: -1}})
	cursor, err := r.users().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	members := make([]member.Member, 0)
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return members, nil
}

// FindByID returns a Member by ID.
func (r *MongoMemberRepository) FindByID(ctx context.Context, id string) (*member.Member, error) {
	var m member.Member
	err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &m, nil
}

// Update merges the patch into the stored Member and stamps updatedAt.
func (r *MongoMemberRepository) Update(ctx context.Context, id string, patch member.Patch) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.FirstName != nil {
		set["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["lastName"] = *patch.LastName
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.DateOfBirth != nil {
		set["dateOfBirth"] = *patch.DateOfBirth
	}
	if patch.HeightFeet != nil {
		set["heightFeet"] = *patch.HeightFeet
	}
	if patch.HeightInches != nil {
		set["heightInches"] = *patch.HeightInches
	}
	if patch.WeightPounds != nil {
		set["weightPounds"] = *patch.WeightPounds
	}
	if patch.ExperienceLevel != nil {
		set["experienceLevel"] = *patch.ExperienceLevel
	}
	if patch.Goals != nil {
		goals := *patch.Goals
		if goals == nil {
			goals = []string{}
		}
		set["goals"] = goals
	}
	if patch.CurrentProgramID != nil {
		set["currentProgramId"] = *patch.CurrentProgramID
	}
	if patch.CurrentDayNumber != nil {
		set["currentDayNumber"] = *patch.CurrentDayNumber
	}

	res, err := r.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes only the Member document.
func (r *MongoMemberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindCompletions returns the member's completions sub-collection.
func (r *MongoMemberRepository) FindCompletions(ctx context.Context, memberID string) ([]member.Completion, error) {
	cursor, err := r.completions().Find(ctx, bson.M{"userId": memberID})
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer cursor.Close(ctx)

	completions := make([]member.Completion, 0)
	if err := cursor.All(ctx, &completions); err != nil {
		return nil, fmt.Errorf("failed to decode completions: %w", err)
	}
	return completions, nil
}

// CompletionIDs enumerates the member's completion document IDs.
func (r *MongoMemberRepository) CompletionIDs(ctx context.Context, memberID string) ([]string, error) {
	return r.subcollectionIDs(ctx, r.completions(), memberID)
}

// ProgressIDs enumerates the member's progress document IDs.
func (r *MongoMemberRepository) ProgressIDs(ctx context.Context, memberID string) ([]string, error) {
	return r.subcollectionIDs(ctx, r.progress(), memberID)
}

func (r *MongoMemberRepository) subcollectionIDs(ctx context.Context, coll *mongo.Collection, memberID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := coll.Find(ctx, bson.M{"userId": memberID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s ids: %w", coll.Name(), err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// DeleteCompletion removes a single completion document.
func (r *MongoMemberRepository) DeleteCompletion(ctx context.Context, memberID, id string) error {
	return r.deleteSubdocument(ctx, r.completions(), memberID, id)
}

// DeleteProgress removes a single progress document.
func (r *MongoMemberRepository) DeleteProgress(ctx context.Context, memberID, id string) error {
	return r.deleteSubdocument(ctx, r.progress(), memberID, id)
}

func (r *MongoMemberRepository) deleteSubdocument(ctx context.Context, coll *mongo.Collection, memberID, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, "userId": memberID})
	if err != nil {
		return fmt.Errorf("failed to delete %s document: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
