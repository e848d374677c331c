package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateVolunteer inserts a volunteer document with sensible defaults and
// returns it. Relations are not created; use LinkSkill / LinkCampaign.
func (f *Fixtures) CreateVolunteer(ctx context.Context, name, email, region string) models.Volunteer {
	f.t.Helper()

	now := time.Now().UTC()
	v := models.Volunteer{
		ID:            primitive.NewObjectID(),
		FullName:      name,
		FullNameCI:    text.Fold(name),
		Email:         email,
		Region:        region,
		Availability:  "weekends",
		VolunteerType: "presencial",
		Status:        "Activo",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := f.db.Collection("volunteers").InsertOne(ctx, v); err != nil {
		f.t.Fatalf("create volunteer: %v", err)
	}
	return v
}

// CreateSkill inserts a skill and returns it.
func (f *Fixtures) CreateSkill(ctx context.Context, name string) models.Skill {
	f.t.Helper()

	sk := models.Skill{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("skills").InsertOne(ctx, sk); err != nil {
		f.t.Fatalf("create skill: %v", err)
	}
	return sk
}

// CreateCampaign inserts a campaign and returns it.
func (f *Fixtures) CreateCampaign(ctx context.Context, name string, year int) models.Campaign {
	f.t.Helper()

	c := models.Campaign{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Year:      year,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("campaigns").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("create campaign: %v", err)
	}
	return c
}

// LinkSkill connects a volunteer to a skill.
func (f *Fixtures) LinkSkill(ctx context.Context, volunteerID, skillID primitive.ObjectID) {
	f.t.Helper()

	link := models.VolunteerSkill{
		ID:          primitive.NewObjectID(),
		VolunteerID: volunteerID,
		SkillID:     skillID,
	}
	if _, err := f.db.Collection("volunteer_skills").InsertOne(ctx, link); err != nil {
		f.t.Fatalf("link skill: %v", err)
	}
}

// LinkCampaign connects a volunteer to a campaign.
func (f *Fixtures) LinkCampaign(ctx context.Context, volunteerID, campaignID primitive.ObjectID) {
	f.t.Helper()

	link := models.VolunteerCampaign{
		ID:          primitive.NewObjectID(),
		VolunteerID: volunteerID,
		CampaignID:  campaignID,
	}
	if _, err := f.db.Collection("volunteer_campaigns").InsertOne(ctx, link); err != nil {
		f.t.Fatalf("link campaign: %v", err)
	}
}

// CreateTask inserts a task with the given status and returns it.
func (f *Fixtures) CreateTask(ctx context.Context, status string, payload map[string]any) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.Task{
		ID:        primitive.NewObjectID(),
		Payload:   payload,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("create task: %v", err)
	}
	return task
}
