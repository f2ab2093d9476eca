package schema

import (
	"testing"

	"eventory/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRsvpAcceptance_Validate(t *testing.T) {
	valid := RsvpAcceptance{Name: "Ada", Email: "ada@example.com", Attending: "going", EventID: "ev-1"}

	tests := []struct {
		name       string
		mutate     func(r *RsvpAcceptance)
		wantFields []string
		wantCode   string
	}{
		{name: "valid", mutate: func(r *RsvpAcceptance) {}},
		{name: "not sure", mutate: func(r *RsvpAcceptance) { r.Attending = "not_sure" }},
		{name: "not going", mutate: func(r *RsvpAcceptance) { r.Attending = "not_going" }},
		{
			name:       "attending outside enum",
			mutate:     func(r *RsvpAcceptance) { r.Attending = "maybe" },
			wantFields: []string{FieldAttending},
			wantCode:   CodeInvalidEnumValue,
		},
		{
			name:       "missing attending",
			mutate:     func(r *RsvpAcceptance) { r.Attending = "" },
			wantFields: []string{FieldAttending},
			wantCode:   CodeInvalidType,
		},
		{
			name:       "malformed email",
			mutate:     func(r *RsvpAcceptance) { r.Email = "not-an-email" },
			wantFields: []string{FieldEmail},
			wantCode:   CodeInvalidString,
		},
		{
			name:       "empty name",
			mutate:     func(r *RsvpAcceptance) { r.Name = "" },
			wantFields: []string{FieldName},
			wantCode:   CodeInvalidType,
		},
		{
			name: "everything missing",
			mutate: func(r *RsvpAcceptance) {
				*r = RsvpAcceptance{}
			},
			wantFields: []string{FieldName, FieldEmail, FieldAttending, FieldEventID},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			fields := issueFields(t, err)
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				require.Contains(t, fields, f)
				if tt.wantCode != "" {
					assert.Equal(t, tt.wantCode, fields[f].Code)
				}
			}
		})
	}
}

func TestRsvpAcceptance_AttendingMessage(t *testing.T) {
	err := RsvpAcceptance{Name: "Ada", Email: "ada@example.com", Attending: "yes", EventID: "ev-1"}.Validate()
	fields := issueFields(t, err)
	assert.Equal(t, "Invalid enum value. Expected 'going' | 'not_sure' | 'not_going'", fields[FieldAttending].Message)
}

func TestRsvpAcceptance_ValidateFor(t *testing.T) {
	form := domain.NewRsvpForm("Meetup", testNow)
	r := RsvpAcceptance{Attending: "going", EventID: "ev-1"}

	fields := issueFields(t, r.ValidateFor(form))
	assert.Contains(t, fields, FieldName)
	assert.Contains(t, fields, FieldEmail)

	form.YourNameDisplay = false
	form.EmailAddressDisplay = false
	assert.NoError(t, r.ValidateFor(form))

	r.Attending = "perhaps"
	fields = issueFields(t, r.ValidateFor(form))
	assert.Equal(t, []string{FieldAttending}, keys(fields))
}

func TestRsvpAcceptance_ForFormClearsHiddenFields(t *testing.T) {
	form := domain.NewRsvpForm("Meetup", testNow)
	form.EmailAddressDisplay = false
	r := RsvpAcceptance{Name: " Ada ", Email: "junk", Attending: "going", EventID: " ev-1 "}.Normalized().ForForm(form)
	assert.Equal(t, "Ada", r.Name)
	assert.Empty(t, r.Email)
	assert.Equal(t, "ev-1", r.EventID)
	assert.NoError(t, r.ValidateFor(form))
}

func keys(m map[string]Issue) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestDecodeRsvpAcceptance(t *testing.T) {
	t.Run("decodes without applying rules", func(t *testing.T) {
		got, err := DecodeRsvpAcceptance([]byte(`{"event_id":"ev-1","attending":"going"}`))
		require.NoError(t, err)
		assert.Equal(t, "ev-1", got.EventID)
		assert.Empty(t, got.Name)
	})

	t.Run("rejects unknown keys and wrong types", func(t *testing.T) {
		_, err := DecodeRsvpAcceptance([]byte(`{"event_id":"ev-1","name":7,"plus_one":true}`))
		got := issueFields(t, err)
		assert.Equal(t, CodeInvalidType, got[FieldName].Code)
		assert.Equal(t, CodeUnrecognizedKeys, got["plus_one"].Code)
	})
}
