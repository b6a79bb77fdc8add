package domain

import (
	"context"
	"strings"
	"time"
)

// Registration records one student's intent to attend one event. Its ID is
// derived from (event id, usn), so at most one record exists per pair;
// resubmitting the form replaces the record in full.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	USN       string    `json:"usn"`
	Email     string    `json:"email"`
	Semester  string    `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationID derives the storage key for a registration. Event id and
// usn are treated as opaque identifier strings.
func RegistrationID(eventID, usn string) string {
	return eventID + "_" + usn
}

// NewRegistration builds a Registration for the given event and form,
// deriving its ID from the event id and usn.
func NewRegistration(eventID string, form RegistrationForm, createdAt time.Time) *Registration {
	return &Registration{
		ID:        RegistrationID(eventID, form.USN),
		EventID:   eventID,
		Name:      form.Name,
		USN:       form.USN,
		Email:     form.Email,
		Semester:  form.Semester,
		CreatedAt: createdAt,
	}
}

// RegistrationForm carries the user-supplied fields of a registration
// submission. All fields are required.
type RegistrationForm struct {
	Name     string `json:"name"`
	USN      string `json:"usn"`
	Email    string `json:"email"`
	Semester string `json:"semester"`
}

// MissingFields returns the names of required fields that are empty or
// whitespace-only, in form order.
func (f RegistrationForm) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.USN) == "" {
		missing = append(missing, "usn")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Semester) == "" {
		missing = append(missing, "semester")
	}
	return missing
}

// RegistrationRepository defines storage operations for registrations.
//
// Put is a full replace keyed by the registration ID, not a conditional
// create: writing an ID that already exists overwrites the prior record.
type RegistrationRepository interface {
	Put(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Registration, int, error)
}

// AttendeeService defines attendee-facing operations, chiefly the
// registration pipeline.
type AttendeeService interface {
	// Register runs the registration write pipeline for the identified
	// student: record write, counter increment, history add, in that
	// order. A precondition failure returns ErrUnauthorized, ErrNotFound,
	// or ErrInvalidInput before any write; a write failure returns a
	// *PartialFailureError naming the failed step, with earlier writes
	// left in place.
	Register(ctx context.Context, eventID string, identity Identity, form RegistrationForm) (*Registration, error)
	// ListMyRegisteredEvents resolves the caller's registration history to
	// the events themselves. Events deleted since registration are skipped.
	ListMyRegisteredEvents(ctx context.Context, identity Identity) ([]*Event, error)
}
