// internal/domain/models/volunteer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer is a person record managed through the /voluntarios endpoints.
//
// NOTE:
//   - Skill and campaign links are not embedded on Volunteer.
//     Use the volunteer_skills and volunteer_campaigns collections to
//     discover a volunteer's relations; the Skills/Campaigns fields are
//     populated by the stores when relations are resolved.
type Volunteer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName      string             `bson:"full_name" json:"full_name"`
	FullNameCI    string             `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Region        string             `bson:"region" json:"region"`
	City          string             `bson:"city,omitempty" json:"city,omitempty"`
	Availability  string             `bson:"availability,omitempty" json:"availability,omitempty"`
	VolunteerType string             `bson:"volunteer_type,omitempty" json:"volunteer_type,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"` // default "Activo"
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	// Resolved relations. Never persisted on the volunteer document.
	Skills    []Skill    `bson:"-" json:"skills"`
	Campaigns []Campaign `bson:"-" json:"campaigns"`
}

// Skill is created on demand the first time an update references its name.
type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Campaign is created on demand; the year defaults to the current year when
// a volunteer update references a campaign that does not exist yet.
type Campaign struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Year      int                `bson:"year" json:"year"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// VolunteerSkill links a volunteer to a skill. The full set of links for a
// volunteer is replaced whenever an update supplies a skill list.
type VolunteerSkill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VolunteerID primitive.ObjectID `bson:"volunteer_id" json:"volunteer_id"`
	SkillID     primitive.ObjectID `bson:"skill_id" json:"skill_id"`
}

// VolunteerCampaign links a volunteer to a campaign.
type VolunteerCampaign struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VolunteerID primitive.ObjectID `bson:"volunteer_id" json:"volunteer_id"`
	CampaignID  primitive.ObjectID `bson:"campaign_id" json:"campaign_id"`
}
