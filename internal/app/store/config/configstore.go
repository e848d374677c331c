package configstore

import (
	"context"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the configurations collection, a flat key/value
// table for runtime-editable settings such as mail credentials.
type Store struct {
	c *mongo.Collection
}

// New creates a configuration store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("configurations")}
}

// All returns every configuration entry as a key/value map.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.ConfigEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out, nil
}

// GetMany returns the entries for the given keys. Missing keys are absent
// from the result, not errors.
func (s *Store) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	cur, err := s.c.Find(ctx, bson.M{"key": bson.M{"$in": keys}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.ConfigEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out, nil
}

// Set upserts a configuration entry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"key": key},
		bson.M{"$set": bson.M{
			"key":        key,
			"value":      value,
			"updated_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true))
	return err
}
