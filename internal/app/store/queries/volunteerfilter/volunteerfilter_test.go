package volunteerfilter

import (
	"testing"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

func TestQuery(t *testing.T) {
	t.Run("empty filters", func(t *testing.T) {
		q := Query(models.SegmentFilters{})
		if len(q) != 0 {
			t.Errorf("Query(empty) = %v, want empty", q)
		}
	})

	t.Run("scalar filters", func(t *testing.T) {
		q := Query(models.SegmentFilters{
			Region:        "Norte",
			Availability:  "weekends",
			VolunteerType: "presencial",
			Status:        "Activo",
		})
		if q["region"] != "Norte" {
			t.Errorf("region = %v", q["region"])
		}
		if q["availability"] != "weekends" {
			t.Errorf("availability = %v", q["availability"])
		}
		if q["volunteer_type"] != "presencial" {
			t.Errorf("volunteer_type = %v", q["volunteer_type"])
		}
		if q["status"] != "Activo" {
			t.Errorf("status = %v", q["status"])
		}
	})

	t.Run("region all is unconstrained", func(t *testing.T) {
		q := Query(models.SegmentFilters{Region: "all"})
		if _, ok := q["region"]; ok {
			t.Error("region 'all' should not constrain the query")
		}
	})

	t.Run("search builds or clause", func(t *testing.T) {
		q := Query(models.SegmentFilters{Search: "Ana"})
		if _, ok := q["$or"]; !ok {
			t.Error("search should build an $or clause")
		}
	})

	t.Run("skills and campaign stay out of the query", func(t *testing.T) {
		q := Query(models.SegmentFilters{Skills: []string{"cocina"}, Campaign: "Verano"})
		if len(q) != 0 {
			t.Errorf("skills/campaign leaked into query: %v", q)
		}
	})
}

func volunteerWith(skills []string, campaigns []string) models.Volunteer {
	v := models.Volunteer{}
	for _, s := range skills {
		v.Skills = append(v.Skills, models.Skill{Name: s})
	}
	for _, c := range campaigns {
		v.Campaigns = append(v.Campaigns, models.Campaign{Name: c})
	}
	return v
}

func TestResidualSkills(t *testing.T) {
	v := volunteerWith([]string{"cocina", "logística"}, nil)

	tests := []struct {
		name   string
		skills []string
		want   bool
	}{
		{"no skill filter", nil, true},
		{"one matching skill", []string{"cocina"}, true},
		{"all skills present", []string{"cocina", "logística"}, true},
		{"one missing skill fails", []string{"cocina", "primeros auxilios"}, false},
		{"unknown skill fails", []string{"buceo"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Residual(v, models.SegmentFilters{Skills: tt.skills})
			if got != tt.want {
				t.Errorf("Residual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResidualCampaign(t *testing.T) {
	v := volunteerWith(nil, []string{"Verano 2026"})

	tests := []struct {
		name     string
		campaign string
		want     bool
	}{
		{"no campaign filter", "", true},
		{"campaign all", "all", true},
		{"member of campaign", "Verano 2026", true},
		{"not a member", "Invierno 2026", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Residual(v, models.SegmentFilters{Campaign: tt.campaign})
			if got != tt.want {
				t.Errorf("Residual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResidualCombined(t *testing.T) {
	v := volunteerWith([]string{"cocina"}, []string{"Verano 2026"})

	if !Residual(v, models.SegmentFilters{Skills: []string{"cocina"}, Campaign: "Verano 2026"}) {
		t.Error("Residual() rejected a volunteer matching both predicates")
	}
	if Residual(v, models.SegmentFilters{Skills: []string{"cocina"}, Campaign: "Invierno 2026"}) {
		t.Error("Residual() accepted a volunteer failing the campaign predicate")
	}
}
