package volunteerfilter

import (
	"context"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
)

// All disables a predicate; accepted for the region and campaign filters.
const All = "all"

// Query builds the store-side part of a segment filter. Skills and campaign
// predicates are left to Residual because they cross into the link
// collections.
func Query(f models.SegmentFilters) bson.M {
	q := bson.M{}
	if f.Search != "" {
		q["$or"] = []bson.M{
			{"full_name_ci": bson.M{"$regex": text.Fold(f.Search)}},
			{"email": bson.M{"$regex": text.Fold(f.Search)}},
		}
	}
	if f.Region != "" && f.Region != All {
		q["region"] = f.Region
	}
	if f.Availability != "" {
		q["availability"] = f.Availability
	}
	if f.VolunteerType != "" {
		q["volunteer_type"] = f.VolunteerType
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	return q
}

// Residual applies the predicates Query cannot express: the volunteer must
// have every listed skill, and must belong to the named campaign unless the
// campaign filter is empty or "all". Relations must already be resolved.
func Residual(v models.Volunteer, f models.SegmentFilters) bool {
	for _, want := range f.Skills {
		if !hasSkill(v, want) {
			return false
		}
	}
	if f.Campaign != "" && f.Campaign != All {
		if !inCampaign(v, f.Campaign) {
			return false
		}
	}
	return true
}

func hasSkill(v models.Volunteer, name string) bool {
	for _, sk := range v.Skills {
		if sk.Name == name {
			return true
		}
	}
	return false
}

func inCampaign(v models.Volunteer, name string) bool {
	for _, c := range v.Campaigns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Finder is the slice of the volunteer store the engine needs.
type Finder interface {
	FindFiltered(ctx context.Context, filter bson.M) ([]models.Volunteer, error)
}

// Engine evaluates segment filters against the volunteer store.
type Engine struct {
	vols Finder
}

// NewEngine creates a filter engine over a volunteer finder.
func NewEngine(vols Finder) *Engine {
	return &Engine{vols: vols}
}

// Run returns the volunteers matching the filter, relations resolved, in
// creation order.
func (e *Engine) Run(ctx context.Context, f models.SegmentFilters) ([]models.Volunteer, error) {
	vols, err := e.vols.FindFiltered(ctx, Query(f))
	if err != nil {
		return nil, err
	}
	matched := make([]models.Volunteer, 0, len(vols))
	for _, v := range vols {
		if Residual(v, f) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}
