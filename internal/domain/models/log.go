// internal/domain/models/log.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log sources.
const (
	LogSourceBot           = "BOT"
	LogSourceFrontend      = "FRONTEND"
	LogSourceSystem        = "SYSTEM"
	LogSourceCommunication = "COMMUNICATION"
)

// Log levels.
const (
	LogLevelInfo     = "INFO"
	LogLevelWarning  = "WARNING"
	LogLevelError    = "ERROR"
	LogLevelCritical = "CRITICAL"
)

// ValidLogSource reports whether s is a recognized log source.
func ValidLogSource(s string) bool {
	switch s {
	case LogSourceBot, LogSourceFrontend, LogSourceSystem, LogSourceCommunication:
		return true
	}
	return false
}

// ValidLogLevel reports whether s is a recognized log level.
func ValidLogLevel(s string) bool {
	switch s {
	case LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical:
		return true
	}
	return false
}

// Log is an append-only record. Logs are never updated or deleted.
type Log struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Source    string             `bson:"source" json:"source"`
	Level     string             `bson:"level" json:"level"`
	Message   string             `bson:"message" json:"message"`
	Details   map[string]any     `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
