package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/filmdeck/internal/database"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

// Repository persists identities. Lookups by email are case-insensitive.
// Missing rows are reported as apperrors.ErrNotFound and duplicate emails as
// apperrors.ErrConflict.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error
}

// MongoRepository handles database interactions for the auth feature
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository expects the indexes from database.MigrateMongo.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(database.UsersCollection)}
}

// Create inserts a new user into the database
func (r *MongoRepository) Create(ctx context.Context, user *User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %s: %w", user.NormalizedEmail, apperrors.ErrConflict)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindByEmail finds a user by their email address
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"normalizedEmail": normalizeEmail(email)})
}

// FindByID finds a user by id
func (r *MongoRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &user, nil
}

// UpdatePassword replaces the stored hash
func (r *MongoRepository) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"passwordHash": passwordHash,
		"updatedAt":    updatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
