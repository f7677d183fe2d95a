package repomanager

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/blogd-io/blogd/internal/server/repositories/comments"
	"github.com/blogd-io/blogd/internal/server/repositories/posts"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

type MongoManager struct {
	client   *mongo.Client
	users    *users.MongoRepository
	posts    *posts.MongoRepository
	comments *comments.MongoRepository
}

// NewMongoManager connects to MongoDB, verifies the connection, and prepares
// the unique indexes backing the account uniqueness invariants.
func NewMongoManager(ctx context.Context, uri, database string) (*MongoManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	db := client.Database(database)

	m := &MongoManager{
		client:   client,
		users:    users.NewMongoRepository(db),
		posts:    posts.NewMongoRepository(db),
		comments: comments.NewMongoRepository(db),
	}

	if err := m.users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return m, nil
}

func (m *MongoManager) Users() users.Repository       { return m.users }
func (m *MongoManager) Posts() posts.Repository       { return m.posts }
func (m *MongoManager) Comments() comments.Repository { return m.comments }

func (m *MongoManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
