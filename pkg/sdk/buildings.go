package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Building is a campus building as returned by the backend. Reference lists
// (services, careers, subjects) arrive pre-joined.
type Building struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Accessibility    bool         `json:"accessibility"`
	Floors           int          `json:"floors"`
	Media            string       `json:"media,omitempty"`
	Availability     bool         `json:"availability"`
	StudentFrequency bool         `json:"student_frequency"`
	Services         []ServiceRef `json:"id_services,omitempty"`
	Careers          []CareerRef  `json:"id_careers,omitempty"`
	Subjects         []SubjectRef `json:"subjects,omitempty"`
	LastUpdated      *time.Time   `json:"last_updated,omitempty"`
}

// ServiceRef is a service offered inside a building.
type ServiceRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CareerRef is an academic career hosted in a building.
type CareerRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// SubjectRef is a subject taught in a building.
type SubjectRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Floor int    `json:"floor,omitempty"`
}

// ListBuildings returns all campus buildings.
func (c *Client) ListBuildings(ctx context.Context) ([]Building, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/buildings", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[Building](raw, "buildings")
}

// GetBuilding returns a single building by ID.
func (c *Client) GetBuilding(ctx context.Context, id string) (*Building, error) {
	if id == "" {
		return nil, fmt.Errorf("building ID is required")
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/buildings/"+id, nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeObject[Building](raw, "building")
}

// UpdateBuildingInput carries the editable building fields. Pointer fields
// are omitted when nil so partial updates don't clobber unrelated columns.
type UpdateBuildingInput struct {
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Accessibility *bool  `json:"accessibility,omitempty"`
	Floors        *int   `json:"floors,omitempty" validate:"omitempty,min=1"`
	Availability  *bool  `json:"availability,omitempty"`
}

// UpdateBuilding applies the changes and returns the server's representation.
func (c *Client) UpdateBuilding(ctx context.Context, id string, input UpdateBuildingInput) (*Building, error) {
	if id == "" {
		return nil, fmt.Errorf("building ID is required")
	}
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/buildings/"+id, nil, input, &raw); err != nil {
		return nil, err
	}
	return decodeObject[Building](raw, "building")
}

// UploadBuildingMedia attaches an image to a building. The returned string is
// the stored media reference.
func (c *Client) UploadBuildingMedia(ctx context.Context, id, filename string, file io.Reader) (string, error) {
	if id == "" {
		return "", fmt.Errorf("building ID is required")
	}
	var resp struct {
		Media string `json:"media"`
	}
	err := c.doMultipart(ctx, http.MethodPost, "/buildings/"+id+"/media", "media", filename, file, &resp)
	if err != nil {
		return "", err
	}
	return resp.Media, nil
}

// ListServices returns the campus service catalog.
func (c *Client) ListServices(ctx context.Context) ([]ServiceRef, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/services", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[ServiceRef](raw, "services")
}

// ListCareers returns the academic career catalog.
func (c *Client) ListCareers(ctx context.Context) ([]CareerRef, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/careers", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[CareerRef](raw, "careers")
}

// ListSubjects returns the subject catalog.
func (c *Client) ListSubjects(ctx context.Context) ([]SubjectRef, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/subject", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[SubjectRef](raw, "subjects")
}
