package queries

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/filmdeck/internal/database"
)

// Repository is an append-only store of query records.
type Repository interface {
	Append(ctx context.Context, rec *Record) error
	Recent(ctx context.Context, n int) ([]Record, error)
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(database.SearchQueriesCollection)}
}

func (r *MongoRepository) Append(ctx context.Context, rec *Record) error {
	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Recent returns up to n records, newest first
func (r *MongoRepository) Recent(ctx context.Context, n int) ([]Record, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(n))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cursor.Close(ctx)

	recs := []Record{}
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return recs, nil
}
