package domain

import (
	"context"
	"time"

	"latinaempire/internal/eventdate"
)

// Event represents a community event (retreat, workshop, networking night).
// swagger:model Event
type Event struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Date            string          `json:"date"`
	StartDate       *eventdate.Date `json:"startDate,omitempty"`
	StartTime       string          `json:"startTime,omitempty"`
	EndTime         string          `json:"endTime,omitempty"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription,omitempty"`
	Host            *EventHost      `json:"host,omitempty"`
	Image           string          `json:"image,omitempty"`
	Gallery         []string        `json:"gallery,omitempty"`
	IsPast          bool            `json:"isPast"`
	Ticket          *Ticket         `json:"ticket,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
}

// EventHost is the person hosting an event.
type EventHost struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
}

// Ticket holds ticketing info for an event. Price is display text ("$150", "Free").
type Ticket struct {
	Price     string `json:"price,omitempty"`
	URL       string `json:"url,omitempty"`
	Available bool   `json:"available"`
}

// When returns the event's start day. StartDate wins when authored; otherwise
// the free-text Date is parsed. ok is false when the date is unknown.
func (e *Event) When() (time.Time, bool) {
	if e.StartDate != nil && !e.StartDate.IsZero() {
		return e.StartDate.Time, true
	}
	return eventdate.Parse(e.Date)
}

// EventsFile is the on-disk shape of events.json.
type EventsFile struct {
	Events []*Event `json:"events"`
}

// EventFilter narrows an event listing. Empty fields match everything.
type EventFilter struct {
	// Status is "past", "upcoming" or empty.
	Status string
	Search string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
}

// EventService exposes event listings to the delivery layer.
type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetEvent(ctx context.Context, slug string) (*Event, error)
}
