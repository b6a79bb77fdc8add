package domain

import (
	"context"
	"time"
)

// Event represents a campus event. The Registrations field is the
// attendance counter maintained by the registration pipeline; every other
// field is owned by event management.
// swagger:model Event
type Event struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Venue         string     `json:"venue"`
	Date          *time.Time `json:"date"`
	Registrations int64      `json:"registrations"`
	OwnerID       string     `json:"owner_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name, description, venue string, date *time.Time, ownerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Venue:       venue,
		Date:        date,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventRepository defines the interface for event storage.
//
// IncrementRegistrations must be implemented as a store-side atomic
// increment, never a read-modify-write from application code.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	IncrementRegistrations(ctx context.Context, eventID string) error
}

// EventService defines event-management operations.
type EventService interface {
	CreateEvent(ctx context.Context, identity Identity, name, description, venue string, date *time.Time) (*Event, error)
	// GetEvent is a single-attempt read; it returns ErrNotFound when the
	// event does not exist and applies no retry policy.
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	// ListEventRegistrations returns the registrations for an event the
	// caller owns, with the total count for pagination.
	ListEventRegistrations(ctx context.Context, eventID string, identity Identity, params PaginationParams) ([]*Registration, int, error)
}
