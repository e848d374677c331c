package segmentstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a segment id does not exist.
var ErrNotFound = errors.New("segment not found")

// Store provides access to the segments collection.
type Store struct {
	c *mongo.Collection
}

// New creates a segment store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("segments")}
}

// Create saves a segment with its filters and the match count at creation
// time. The count is a snapshot and is never recomputed.
func (s *Store) Create(ctx context.Context, filters models.SegmentFilters, count int) (models.Segment, error) {
	seg := models.Segment{
		ID:        primitive.NewObjectID(),
		Filters:   filters,
		Count:     count,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, seg); err != nil {
		return models.Segment{}, err
	}
	return seg, nil
}

// Get loads a segment by id.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.Segment, error) {
	var seg models.Segment
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&seg); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Segment{}, ErrNotFound
		}
		return models.Segment{}, err
	}
	return seg, nil
}

// List returns all segments, newest first.
func (s *Store) List(ctx context.Context) ([]models.Segment, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	segs := []models.Segment{}
	if err := cur.All(ctx, &segs); err != nil {
		return nil, err
	}
	return segs, nil
}
