package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/server/models"
)

const mongoCollectionName = "users"

// mongoUser mirrors models.User with bson tags matching the document layout.
type mongoUser struct {
	ID            string    `bson:"_id"`
	FirstName     string    `bson:"firstName"`
	LastName      string    `bson:"lastName"`
	Email         string    `bson:"email"`
	UserName      string    `bson:"userName"`
	PasswordHash  string    `bson:"password"`
	RefreshTokens []string  `bson:"refreshTokens"`
	CreatedAt     time.Time `bson:"createdAt"`
}

func toMongoUser(u *models.User) *mongoUser {
	return &mongoUser{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		UserName:      u.UserName,
		PasswordHash:  u.PasswordHash,
		RefreshTokens: u.RefreshTokens,
		CreatedAt:     u.CreatedAt,
	}
}

func (m *mongoUser) toModel() *models.User {
	return &models.User{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		UserName:      m.UserName,
		PasswordHash:  m.PasswordHash,
		RefreshTokens: m.RefreshTokens,
		CreatedAt:     m.CreatedAt,
	}
}

// MongoRepository persists accounts in a MongoDB collection. Save replaces
// the whole document by _id, which gives the single-document atomicity the
// session-state invariants rely on.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(mongoCollectionName)}
}

// EnsureIndexes creates the unique indexes on email and userName. The indexes
// are the storage-level backstop behind the read-then-write uniqueness checks
// performed at sign-up.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc mongoUser
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"userName": userName})
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, toMongoUser(user)); err != nil {
		if dup := mapDuplicateKeyError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) Save(ctx context.Context, user *models.User) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, toMongoUser(user))
	if err != nil {
		if dup := mapDuplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// mapDuplicateKeyError translates a Mongo duplicate-key error into the typed
// conflict sentinel for the index that was violated, or returns nil for other
// errors.
func mapDuplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if strings.Contains(err.Error(), "userName") {
		return common.ErrDuplicateUserName
	}
	return common.ErrDuplicateEmail
}
