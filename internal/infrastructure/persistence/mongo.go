// Package persistence implements the document database gateway and the
// repository implementations behind the domain repository interfaces.
package persistence

import (
	"context"
	"fmt"

	"github.com/fitadmin/backend/internal/infrastructure/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Sub-collections of the original document store become
// sibling collections keyed by the parent document ID.
const (
	CollectionPrograms    = "programs"
	CollectionProgramDays = "program_days"
	CollectionExercises   = "exercises"
	CollectionSessions    = "sessions"
	CollectionUsers       = "users"
	CollectionCompletions = "user_completions"
	CollectionProgress    = "user_progress"
	CollectionAdmins      = "admins"
)

// Database wraps the document database handle used by all repositories.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDatabase opens a connection to the document database and verifies it
// with a ping.
func NewDatabase(ctx context.Context, cfg *config.MongoConfig) (*Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle to a named collection.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Client exposes the underlying client, used for multi-document
// transactions.
func (d *Database) Client() *mongo.Client {
	return d.client
}

// Ping verifies the connection is still alive.
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the database.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
