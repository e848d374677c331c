// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup from EnsureSchema. Each ensure* function is
idempotent (CreateMany on an existing index with the same keys is a no-op).
Errors are aggregated so every problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureVolunteers(ctx, db); err != nil {
		problems = append(problems, "volunteers: "+err.Error())
	}
	if err := ensureSkills(ctx, db); err != nil {
		problems = append(problems, "skills: "+err.Error())
	}
	if err := ensureCampaigns(ctx, db); err != nil {
		problems = append(problems, "campaigns: "+err.Error())
	}
	if err := ensureLinks(ctx, db); err != nil {
		problems = append(problems, "links: "+err.Error())
	}
	if err := ensureSegments(ctx, db); err != nil {
		problems = append(problems, "segments: "+err.Error())
	}
	if err := ensureTasks(ctx, db); err != nil {
		problems = append(problems, "tasks: "+err.Error())
	}
	if err := ensureLogs(ctx, db); err != nil {
		problems = append(problems, "logs: "+err.Error())
	}
	if err := ensureConfigurations(ctx, db); err != nil {
		problems = append(problems, "configurations: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
	})
	return err
}

func ensureVolunteers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("volunteers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "full_name_ci", Value: 1}}, Options: options.Index().SetName("full_name_ci")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email")},
		{Keys: bson.D{{Key: "region", Value: 1}}, Options: options.Index().SetName("region")},
		{Keys: bson.D{{Key: "created_at", Value: 1}}, Options: options.Index().SetName("created_at")},
	})
	return err
}

func ensureSkills(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("skills").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("name_unique"),
		},
	})
	return err
}

func ensureCampaigns(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("campaigns").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("name_unique"),
		},
	})
	return err
}

func ensureLinks(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("volunteer_skills").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "volunteer_id", Value: 1}, {Key: "skill_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("volunteer_skill_unique"),
		},
		{Keys: bson.D{{Key: "skill_id", Value: 1}}, Options: options.Index().SetName("skill_id")},
	}); err != nil {
		return err
	}
	_, err := db.Collection("volunteer_campaigns").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "volunteer_id", Value: 1}, {Key: "campaign_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("volunteer_campaign_unique"),
		},
		{Keys: bson.D{{Key: "campaign_id", Value: 1}}, Options: options.Index().SetName("campaign_id")},
	})
	return err
}

func ensureSegments(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("segments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
	})
	return err
}

func ensureTasks(ctx context.Context, db *mongo.Database) error {
	// The claim query selects on status and orders by created_at.
	_, err := db.Collection("tasks").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("status_created_at"),
		},
	})
	return err
}

func ensureLogs(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("logs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
		{Keys: bson.D{{Key: "source", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("source_created_at")},
	})
	return err
}

func ensureConfigurations(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("configurations").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("key_unique"),
		},
	})
	return err
}
