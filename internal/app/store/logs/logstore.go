package logstore

import (
	"context"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit caps List when no limit is given.
const DefaultLimit = 100

// Store provides access to the logs collection.
type Store struct {
	c *mongo.Collection
}

// New creates a log store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("logs")}
}

// Create records a log entry.
func (s *Store) Create(ctx context.Context, source, level, message string, details map[string]any) (models.Log, error) {
	l := models.Log{
		ID:        primitive.NewObjectID(),
		Source:    source,
		Level:     level,
		Message:   message,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Log{}, err
	}
	return l, nil
}

// List returns log entries, newest first, optionally narrowed by source.
func (s *Store) List(ctx context.Context, source string, limit int64) ([]models.Log, error) {
	filter := bson.M{}
	if source != "" {
		filter["source"] = source
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	cur, err := s.c.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	logs := []models.Log{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
