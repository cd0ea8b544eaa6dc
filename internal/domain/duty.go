package domain

import (
	"strings"
	"time"
)

// Duty is one recorded instance of a user performing a task at a specific
// time. Duties are append-only: no exposed operation updates or deletes them.
// The user and task fields hold registry names by value — deleting the
// referenced User or Task later does not cascade into the duty log.
type Duty struct {
	ID        string
	User      string
	Task      string
	Timestamp time.Time
}

// CreateDutyRequest holds parameters for logging a duty. Timestamp arrives as
// an RFC 3339 string from the wire and is parsed during validation.
type CreateDutyRequest struct {
	User      string
	Task      string
	Timestamp string

	parsed time.Time
}

// Validate checks that the request is well-formed and parses the timestamp.
// Referential checks against the registry are the service's job.
func (r *CreateDutyRequest) Validate() error {
	r.User = strings.TrimSpace(r.User)
	r.Task = strings.TrimSpace(r.Task)
	if r.User == "" {
		return ErrValidation("user is required")
	}
	if r.Task == "" {
		return ErrValidation("task is required")
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(r.Timestamp))
	if err != nil {
		return ErrValidation("timestamp %q is not a valid RFC 3339 instant", r.Timestamp)
	}
	r.parsed = ts
	return nil
}

// ParsedTimestamp returns the instant parsed by Validate, normalized to UTC.
func (r *CreateDutyRequest) ParsedTimestamp() time.Time {
	return r.parsed.UTC()
}
