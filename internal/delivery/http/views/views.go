// Package views renders the server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"eventory/internal/domain"
	"eventory/internal/rsvpform"
	"eventory/internal/schema"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var confettiColors = []string{"#f43f5e", "#f59e0b", "#10b981", "#3b82f6", "#a855f7"}

// ConfettiPiece is one falling square of the success animation.
type ConfettiPiece struct {
	Left  int
	Delay int
	Color string
}

// RsvpPage is the data behind the RSVP form page.
type RsvpPage struct {
	Form           *domain.RsvpForm
	Fields         []rsvpform.Field
	Options        []rsvpform.Option
	Values         rsvpform.Values
	State          rsvpform.State
	AttendingIssue string
	Confetti       []ConfettiPiece
}

// NewRsvpPage builds the page for f in its current state.
func NewRsvpPage(f *rsvpform.Form, values rsvpform.Values) RsvpPage {
	state := f.State()
	page := RsvpPage{
		Form:           f.Definition(),
		Fields:         f.Fields(),
		Options:        rsvpform.Options(),
		Values:         values,
		State:          state,
		AttendingIssue: state.IssueFor(schema.FieldAttending),
	}
	if state.Kind == rsvpform.Succeeded {
		page.Confetti = confetti(40)
	}
	return page
}

// Value returns the submitted value of the named text field.
func (p RsvpPage) Value(field string) string {
	switch field {
	case schema.FieldName:
		return p.Values.Name
	case schema.FieldEmail:
		return p.Values.Email
	}
	return ""
}

func confetti(n int) []ConfettiPiece {
	pieces := make([]ConfettiPiece, n)
	for i := range pieces {
		pieces[i] = ConfettiPiece{
			Left:  (i * 37) % 100,
			Delay: (i * 113) % 1500,
			Color: confettiColors[i%len(confettiColors)],
		}
	}
	return pieces
}

// RenderRsvpPage writes the RSVP page with the given status.
func RenderRsvpPage(w http.ResponseWriter, status int, page RsvpPage) error {
	return render(w, status, "rsvp.html", page)
}

// RenderNotFound writes the HTML not-found page.
func RenderNotFound(w http.ResponseWriter) error {
	return render(w, http.StatusNotFound, "not_found.html", nil)
}

// render executes into a buffer first so a template error never leaves a half-written page.
func render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
