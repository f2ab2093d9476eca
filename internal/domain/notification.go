package domain

import (
	"context"
	"time"
)

// RsvpSubmitted is published after a guest response is stored.
type RsvpSubmitted struct {
	ResponseID  string     `json:"response_id"`
	EventID     string     `json:"event_id"`
	Attending   Attendance `json:"attending"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

// NotificationPublisher delivers domain notifications to a broker (infrastructure port).
type NotificationPublisher interface {
	PublishRsvpSubmitted(ctx context.Context, msg *RsvpSubmitted) error
	Close() error
}
