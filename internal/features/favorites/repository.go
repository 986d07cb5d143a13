package favorites

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/filmdeck/internal/database"
	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

// Repository stores favorites. Insert relies on the store's unique
// (user, media) constraint and reports a duplicate as apperrors.ErrConflict.
// DeleteByMedia only matches rows owned by userID and reports a miss as
// apperrors.ErrNotFound.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Insert(ctx context.Context, fav *Favorite) error
	DeleteByMedia(ctx context.Context, userID, mediaID string) error
}

type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository expects the indexes from database.MigrateMongo.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(database.FavoritesCollection)}
}

// ListByUser returns the user's favorites, newest first
func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cursor.Close(ctx)

	favs := []Favorite{}
	if err := cursor.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return favs, nil
}

func (r *MongoRepository) Insert(ctx context.Context, fav *Favorite) error {
	if _, err := r.collection.InsertOne(ctx, fav); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("favorite %s: %w", fav.MediaID, apperrors.ErrConflict)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) DeleteByMedia(ctx context.Context, userID, mediaID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "mediaId": mediaID})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
