package schema

import (
	"bytes"
	"encoding/json"
	"math"
	"time"

	"eventory/internal/domain"
)

// EventCreation is the payload of the create-event endpoint.
// eventDate is accepted as any JSON value; see Date.
type EventCreation struct {
	Name        string          `json:"name" validate:"min=4,max=73"`
	Location    string          `json:"location" validate:"min=3"`
	EventDate   json.RawMessage `json:"eventDate" swaggertype:"string"`
	PublicEvent *bool           `json:"publicEvent"`
}

func (EventCreation) messages() map[string]string {
	return map[string]string{
		"name.min":     "Enter at least 4 characters long",
		"name.max":     "Event Title must not exceed 73 characters long",
		"location.min": "Enter a valid url or a location",
	}
}

// ParseEventCreation decodes and validates a create-event payload. Unknown keys are ignored.
func ParseEventCreation(data []byte) (EventCreation, error) {
	var e EventCreation
	if err := Parse(data, &e, false); err != nil {
		return EventCreation{}, err
	}
	return e, nil
}

// eventDateLayouts are tried in order for string dates.
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Event dates outside years 1 through 9999 are dropped: they cannot be stored
// as TIMESTAMPTZ values or encoded as RFC 3339.
var (
	minEventDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxEventDate = time.Date(9999, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
)

func storableDate(t time.Time) *time.Time {
	t = t.UTC()
	if t.Before(minEventDate) || t.After(maxEventDate) {
		return nil
	}
	return &t
}

// Date interprets eventDate leniently: RFC 3339 or date/datetime-local strings and
// Unix-millisecond numbers yield a UTC time; anything else, including a missing
// or out-of-range value, yields nil.
func (e EventCreation) Date() *time.Time {
	raw := bytes.TrimSpace(e.EventDate)
	if len(raw) == 0 {
		return nil
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		for _, layout := range eventDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return storableDate(t)
			}
		}
	case c == '-' || (c >= '0' && c <= '9'):
		var ms float64
		if err := json.Unmarshal(raw, &ms); err != nil {
			return nil
		}
		if math.IsNaN(ms) || ms < float64(minEventDate.UnixMilli()) || ms > float64(maxEventDate.UnixMilli()) {
			return nil
		}
		return storableDate(time.UnixMilli(int64(ms)))
	}
	return nil
}

// Input converts the validated payload to the service input.
func (e EventCreation) Input() domain.CreateEventInput {
	in := domain.CreateEventInput{
		Name:     e.Name,
		Location: e.Location,
		Date:     e.Date(),
	}
	if e.PublicEvent != nil {
		in.PublicEvent = *e.PublicEvent
	}
	return in
}
