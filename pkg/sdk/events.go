package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// EventStatus is the lifecycle state of a campus event.
type EventStatus string

const (
	EventScheduled  EventStatus = "programado"
	EventInProgress EventStatus = "en_curso"
	EventFinished   EventStatus = "finalizado"
	EventCancelled  EventStatus = "cancelado"
)

// Event is a campus event as returned by the backend.
type Event struct {
	ID               string      `json:"_id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	BuildingAssigned string      `json:"building_assigned"`
	Classroom        string      `json:"classroom,omitempty"`
	DateTime         time.Time   `json:"date_time"`
	Organizer        string      `json:"organizer,omitempty"`
	Category         string      `json:"category,omitempty"`
	Status           EventStatus `json:"status"`
	Media            string      `json:"media,omitempty"`
}

// EventFilters narrows ListEvents. Zero-value fields are not sent.
type EventFilters struct {
	Category   string
	Status     EventStatus
	BuildingID string
	// Date limits results to one day, as a YYYY-MM-DD string.
	Date string
}

func (f EventFilters) query() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.BuildingID != "" {
		q.Set("buildingId", f.BuildingID)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	return q
}

// ListEvents returns events matching the filters.
func (c *Client) ListEvents(ctx context.Context, filters EventFilters) ([]Event, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/events", filters.query(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[Event](raw, "events")
}

// GetEvent returns a single event by ID.
func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	if id == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/events/"+id, nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeObject[Event](raw, "event")
}

// CreateEventInput carries the fields for a new event.
type CreateEventInput struct {
	Title            string      `json:"title" validate:"required"`
	Description      string      `json:"description,omitempty"`
	BuildingAssigned string      `json:"building_assigned" validate:"required"`
	Classroom        string      `json:"classroom,omitempty"`
	DateTime         time.Time   `json:"date_time" validate:"required"`
	Organizer        string      `json:"organizer,omitempty"`
	Category         string      `json:"category,omitempty"`
	Status           EventStatus `json:"status,omitempty" validate:"omitempty,oneof=programado en_curso finalizado cancelado"`
}

// CreateEvent creates an event and returns the server's representation.
func (c *Client) CreateEvent(ctx context.Context, input CreateEventInput) (*Event, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/events", nil, input, &raw); err != nil {
		return nil, err
	}
	return decodeObject[Event](raw, "event")
}

// UpdateEventInput carries editable event fields; zero values are omitted.
type UpdateEventInput struct {
	Title            string      `json:"title,omitempty"`
	Description      string      `json:"description,omitempty"`
	BuildingAssigned string      `json:"building_assigned,omitempty"`
	Classroom        string      `json:"classroom,omitempty"`
	DateTime         *time.Time  `json:"date_time,omitempty"`
	Organizer        string      `json:"organizer,omitempty"`
	Category         string      `json:"category,omitempty"`
	Status           EventStatus `json:"status,omitempty" validate:"omitempty,oneof=programado en_curso finalizado cancelado"`
}

// UpdateEvent applies the changes and returns the server's representation.
func (c *Client) UpdateEvent(ctx context.Context, id string, input UpdateEventInput) (*Event, error) {
	if id == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/events/"+id, nil, input, &raw); err != nil {
		return nil, err
	}
	return decodeObject[Event](raw, "event")
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("event ID is required")
	}
	return c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil, nil)
}

// Category is an event category.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// ListCategories returns the event category catalog.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[Category](raw, "categories")
}
