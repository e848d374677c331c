// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses. Transitions run PENDING → PROCESSING → COMPLETED/FAILED.
const (
	TaskPending    = "PENDING"
	TaskProcessing = "PROCESSING"
	TaskCompleted  = "COMPLETED"
	TaskFailed     = "FAILED"
)

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskPending, TaskProcessing, TaskCompleted, TaskFailed:
		return true
	}
	return false
}

// Task is a unit of work queued for external automation bots. Bots poll
// /bots/pending-tasks, which claims the oldest pending task, and report the
// outcome through /bots/task/{id}/complete.
type Task struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Payload      map[string]any     `bson:"payload" json:"payload"`
	Status       string             `bson:"status" json:"status"`
	BotID        string             `bson:"bot_id,omitempty" json:"bot_id,omitempty"`
	Result       string             `bson:"result,omitempty" json:"result,omitempty"`
	ErrorMessage string             `bson:"error_message,omitempty" json:"error_message,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
