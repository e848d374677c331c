// internal/domain/models/configentry.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConfigEntry is one key/value pair of system configuration. The mail
// transport reads its credentials (gmail_email, gmail_token) from here.
type ConfigEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key       string             `bson:"key" json:"key"`
	Value     string             `bson:"value" json:"value"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
