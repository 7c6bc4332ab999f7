package directoryRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for fields frequently used in queries. The
// partial unique index on (kind, naturalKey) enforces the one-listing-per-key
// invariant at the store level; INTERNAL entries without a key are exempt.
func (r *MongoDirectoryRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	keyedOnly := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{"naturalKey": bson.M{"$exists": true}})

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "naturalKey", Value: 1}}, Options: keyedOnly},
		{Keys: bson.D{{Key: "approved", Value: 1}, {Key: "kind", Value: 1}}},
		{Keys: bson.D{{Key: "state", Value: 1}, {Key: "district", Value: 1}}},
		{Keys: bson.D{{Key: "specialization", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create directory indexes: %w", err)
	}
	return nil
}
