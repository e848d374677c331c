package taskstore

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

var (
	// ErrNotFound is returned when a task id does not exist.
	ErrNotFound = errors.New("task not found")
	// ErrNoPending is returned by ClaimNext when the queue is empty.
	ErrNoPending = errors.New("no pending tasks")
)

// Store provides access to the tasks collection.
type Store struct {
	c *mongo.Collection
}

// New creates a task store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tasks")}
}

// Enqueue inserts a new pending task.
func (s *Store) Enqueue(ctx context.Context, payload map[string]any) (models.Task, error) {
	now := time.Now().UTC()
	t := models.Task{
		ID:        primitive.NewObjectID(),
		Payload:   payload,
		Status:    models.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// Get loads a task by id.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.Task, error) {
	var t models.Task
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return t, nil
}

// ClaimNext atomically hands the oldest pending task to a bot. The find and
// the status flip are a single operation, so two bots polling at once cannot
// claim the same task.
func (s *Store) ClaimNext(ctx context.Context, botID string) (models.Task, error) {
	update := bson.M{"$set": bson.M{
		"status":     models.TaskProcessing,
		"bot_id":     botID,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetReturnDocument(options.After)

	var t models.Task
	err := s.c.FindOneAndUpdate(ctx, bson.M{"status": models.TaskPending}, update, opts).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Task{}, ErrNoPending
		}
		return models.Task{}, err
	}
	return t, nil
}

// Completion carries the fields a bot may report back. Nil pointers are not
// written.
type Completion struct {
	Status       *string
	Result       *string
	ErrorMessage *string
}

// Complete patches a task with a bot's outcome.
func (s *Store) Complete(ctx context.Context, id primitive.ObjectID, c Completion) (models.Task, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if c.Status != nil {
		set["status"] = *c.Status
	}
	if c.Result != nil {
		set["result"] = *c.Result
	}
	if c.ErrorMessage != nil {
		set["error_message"] = *c.ErrorMessage
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.Task
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return t, nil
}
