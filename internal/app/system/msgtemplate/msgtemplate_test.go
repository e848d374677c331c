package msgtemplate

import (
	"testing"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

func TestExpand(t *testing.T) {
	f := Fields{
		Name:         "Ana García",
		Email:        "ana@example.com",
		Region:       "Norte",
		Availability: "weekends",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "all placeholders",
			template: "Hola {{nombre}} ({{email}}), región {{region}}, disponible {{disponibilidad}}",
			want:     "Hola Ana García (ana@example.com), región Norte, disponible weekends",
		},
		{
			name:     "repeated placeholder",
			template: "{{nombre}} {{nombre}}",
			want:     "Ana García Ana García",
		},
		{
			name:     "unknown placeholder passes through",
			template: "Hola {{nombre}}, {{desconocido}}",
			want:     "Hola Ana García, {{desconocido}}",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			want:     "plain text",
		},
		{
			name:     "empty template",
			template: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.template, f); got != tt.want {
				t.Errorf("Expand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandMissingFields(t *testing.T) {
	got := Expand("Hola {{nombre}}, email {{email}}", Fields{})
	want := "Hola , email "
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestFieldsFromVolunteer(t *testing.T) {
	v := models.Volunteer{
		FullName:     "Luis Pérez",
		Email:        "luis@example.com",
		Region:       "Sur",
		Availability: "mornings",
	}
	f := FieldsFromVolunteer(v)
	if f.Name != "Luis Pérez" || f.Email != "luis@example.com" || f.Region != "Sur" || f.Availability != "mornings" {
		t.Errorf("FieldsFromVolunteer() = %+v", f)
	}
}
