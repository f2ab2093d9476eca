package rsvpform

import "eventory/internal/schema"

// AlertMessage is shown to the guest when a submission fails for any reason
// other than invalid input.
const AlertMessage = "Something went wrong"

// Kind is the submission phase of a Form.
type Kind int

const (
	Idle Kind = iota
	Pending
	Succeeded
	Failed
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// State is a snapshot of a Form. Issues is only set in Idle after local
// validation fails; Alert and Err only in Failed; ResponseID only in Succeeded.
type State struct {
	Kind       Kind
	Issues     []schema.Issue
	Alert      string
	Err        error
	ResponseID string
}

// IssueFor returns the first issue message for field, or "".
func (s State) IssueFor(field string) string {
	for _, is := range s.Issues {
		if is.Field() == field {
			return is.Message
		}
	}
	return ""
}

// Editable reports whether the guest can still change and submit the form.
func (s State) Editable() bool {
	return s.Kind == Idle || s.Kind == Failed
}
