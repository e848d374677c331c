// internal/domain/models/segment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SegmentFilters is the recognized set of volunteer filter predicates.
// Incoming filter documents are decoded into this struct at the boundary,
// so unknown keys are dropped rather than stored. An all-zero value is a
// valid filter that matches every volunteer.
type SegmentFilters struct {
	Search        string   `bson:"search,omitempty" json:"search,omitempty"`
	Region        string   `bson:"region,omitempty" json:"region,omitempty"` // "all" means unconstrained
	Availability  string   `bson:"availability,omitempty" json:"availability,omitempty"`
	VolunteerType string   `bson:"volunteer_type,omitempty" json:"volunteer_type,omitempty"`
	Status        string   `bson:"status,omitempty" json:"status,omitempty"`
	Skills        []string `bson:"skills,omitempty" json:"skills,omitempty"`     // AND semantics
	Campaign      string   `bson:"campaign,omitempty" json:"campaign,omitempty"` // "all" means unconstrained
}

// Segment is a write-once snapshot of a filter document together with the
// match count computed when the segment was created. The count is never
// re-evaluated, so it can drift from live data.
type Segment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filters   SegmentFilters     `bson:"filters" json:"filters"`
	Count     int                `bson:"count" json:"count"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
