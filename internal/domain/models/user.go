// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values. Role is a free-form string; these are the two the server
// itself cares about.
const (
	RoleWorker = "worker"
	RoleAdmin  = "admin"
)

// User is an account that can authenticate against /auth endpoints.
//
// Role is a free-form string; "admin" is a universal override that passes
// every role check, not the top of a hierarchy.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	FullName     string             `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Role         string             `bson:"role" json:"role"` // default "worker"

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
