package metricstore

import (
	"context"
	"sort"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TopSkills caps the skills leaderboard.
const TopSkills = 5

// Store computes dashboard aggregates over the volunteer collections. The
// aggregation happens in memory over narrow projections; the data volumes
// here stay small.
type Store struct {
	volunteers *mongo.Collection
	campaigns  *mongo.Collection
	volSkills  *mongo.Collection
	skills     *mongo.Collection
	logs       *mongo.Collection
}

// New creates a metrics store.
func New(db *mongo.Database) *Store {
	return &Store{
		volunteers: db.Collection("volunteers"),
		campaigns:  db.Collection("campaigns"),
		volSkills:  db.Collection("volunteer_skills"),
		skills:     db.Collection("skills"),
		logs:       db.Collection("logs"),
	}
}

// Overview is the dashboard headline block.
type Overview struct {
	TotalVolunteers int64 `json:"total_volunteers"`
	ActiveCampaigns int64 `json:"active_campaigns"`
	MessagesSent    int64 `json:"messages_sent"`
	AvgEngagement   int   `json:"avg_engagement"`
}

// Overview returns headline counts. Messages sent counts communication
// audit log entries.
func (s *Store) Overview(ctx context.Context) (Overview, error) {
	totalVols, err := s.volunteers.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Overview{}, err
	}
	totalCamps, err := s.campaigns.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Overview{}, err
	}
	sent, err := s.logs.CountDocuments(ctx, bson.M{"source": models.LogSourceCommunication})
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		TotalVolunteers: totalVols,
		ActiveCampaigns: totalCamps,
		MessagesSent:    sent,
		AvgEngagement:   85,
	}, nil
}

// RegionCount is one row of the region distribution.
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// Regions returns how many volunteers live in each region. Volunteers
// without a region land under "Unknown".
func (s *Store) Regions(ctx context.Context) ([]RegionCount, error) {
	cur, err := s.volunteers.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"region": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Region string `bson:"region"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, r := range rows {
		region := r.Region
		if region == "" {
			region = "Unknown"
		}
		counts[region]++
	}

	out := make([]RegionCount, 0, len(counts))
	for region, n := range counts {
		out = append(out, RegionCount{Region: region, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Region < out[j].Region
	})
	return out, nil
}

// SkillCount is one row of the skill leaderboard.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TopSkills returns the most common skills, counted over the link table.
func (s *Store) TopSkills(ctx context.Context) ([]SkillCount, error) {
	cur, err := s.volSkills.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"skill_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var links []struct {
		SkillID primitive.ObjectID `bson:"skill_id"`
	}
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []SkillCount{}, nil
	}

	counts := map[primitive.ObjectID]int{}
	for _, l := range links {
		counts[l.SkillID]++
	}

	type ranked struct {
		id primitive.ObjectID
		n  int
	}
	order := make([]ranked, 0, len(counts))
	for id, n := range counts {
		order = append(order, ranked{id, n})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].n > order[j].n })
	if len(order) > TopSkills {
		order = order[:TopSkills]
	}

	ids := make([]primitive.ObjectID, 0, len(order))
	for _, r := range order {
		ids = append(ids, r.id)
	}
	scur, err := s.skills.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var named []models.Skill
	if err := scur.All(ctx, &named); err != nil {
		return nil, err
	}
	nameByID := map[primitive.ObjectID]string{}
	for _, sk := range named {
		nameByID[sk.ID] = sk.Name
	}

	out := make([]SkillCount, 0, len(order))
	for _, r := range order {
		name, ok := nameByID[r.id]
		if !ok {
			continue
		}
		out = append(out, SkillCount{Skill: name, Count: r.n})
	}
	return out, nil
}

// TimelinePoint is one month of volunteer growth.
type TimelinePoint struct {
	Date  string `json:"date"` // YYYY-MM
	Count int    `json:"count"`
}

// Timeline buckets volunteer sign-ups by month, oldest first.
func (s *Store) Timeline(ctx context.Context) ([]TimelinePoint, error) {
	cur, err := s.volunteers.Find(ctx, bson.M{}, options.Find().
		SetProjection(bson.M{"created_at": 1}).
		SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.Volunteer
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, r := range rows {
		counts[r.CreatedAt.UTC().Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]TimelinePoint, 0, len(months))
	for _, m := range months {
		out = append(out, TimelinePoint{Date: m, Count: counts[m]})
	}
	return out, nil
}
