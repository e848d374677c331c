// internal/app/system/msgtemplate/msgtemplate.go

// Package msgtemplate expands the fixed placeholder set used in bulk
// communication messages. This is plain string substitution, not a template
// language: no conditionals, no loops, no nesting. Unrecognized placeholders
// pass through verbatim and missing fields substitute the empty string, so
// expansion never fails.
package msgtemplate

import (
	"strings"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

// Fields is the per-recipient value bag for placeholder expansion.
type Fields struct {
	Name         string
	Email        string
	Region       string
	Availability string
}

// FieldsFromVolunteer builds the expansion fields from a volunteer record.
func FieldsFromVolunteer(v models.Volunteer) Fields {
	return Fields{
		Name:         v.FullName,
		Email:        v.Email,
		Region:       v.Region,
		Availability: v.Availability,
	}
}

// Expand substitutes the recognized placeholders in template:
// {{nombre}}, {{email}}, {{region}}, {{disponibilidad}}.
func Expand(template string, f Fields) string {
	r := strings.NewReplacer(
		"{{nombre}}", f.Name,
		"{{email}}", f.Email,
		"{{region}}", f.Region,
		"{{disponibilidad}}", f.Availability,
	)
	return r.Replace(template)
}
