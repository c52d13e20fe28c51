package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
)

// AttendancePrediction is the ML service's attendance forecast for an event.
type AttendancePrediction struct {
	EventID    string             `json:"eventId"`
	Title      string             `json:"title,omitempty"`
	Predicted  int                `json:"predicted_attendance"`
	Confidence float64            `json:"confidence"`
	Factors    map[string]float64 `json:"factors,omitempty"`
}

// GetAttendancePrediction returns the attendance forecast for one event.
func (c *Client) GetAttendancePrediction(ctx context.Context, eventID string) (*AttendancePrediction, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	var pred AttendancePrediction
	if err := c.do(ctx, http.MethodGet, "/bigdata/predict/attendance/"+eventID, nil, nil, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

// GetBatchPredictions returns attendance forecasts for multiple events in one
// call, sorted by predicted attendance, highest first.
func (c *Client) GetBatchPredictions(ctx context.Context, eventIDs []string) ([]AttendancePrediction, error) {
	if len(eventIDs) == 0 {
		return nil, fmt.Errorf("at least one event ID is required")
	}
	body := map[string][]string{"eventIds": eventIDs}
	var resp struct {
		Predictions []AttendancePrediction `json:"predictions"`
	}
	if err := c.do(ctx, http.MethodPost, "/bigdata/predict/batch", nil, body, &resp); err != nil {
		return nil, err
	}
	SortPredictions(resp.Predictions)
	return resp.Predictions, nil
}

// SortPredictions orders forecasts by predicted attendance descending, with
// confidence as the tiebreaker.
func SortPredictions(preds []AttendancePrediction) {
	sort.SliceStable(preds, func(i, j int) bool {
		if preds[i].Predicted != preds[j].Predicted {
			return preds[i].Predicted > preds[j].Predicted
		}
		return preds[i].Confidence > preds[j].Confidence
	})
}

// HourlyDemand is one cell of a mobility forecast.
type HourlyDemand struct {
	Hour   int     `json:"hour"`
	Demand float64 `json:"demand"`
}

// MobilityPrediction is the forecast of foot traffic around a building.
type MobilityPrediction struct {
	BuildingID string         `json:"buildingId"`
	Date       string         `json:"date,omitempty"`
	Hourly     []HourlyDemand `json:"hourly,omitempty"`
	Peak       float64        `json:"peak"`
}

// HourlyGrid expands the forecast into a dense 24-slot grid, zero-filling
// hours the service did not report. Out-of-range hours are dropped.
func (p *MobilityPrediction) HourlyGrid() [24]float64 {
	var grid [24]float64
	for _, h := range p.Hourly {
		if h.Hour >= 0 && h.Hour < 24 {
			grid[h.Hour] = h.Demand
		}
	}
	return grid
}

// GetMobilityPrediction returns the mobility forecast for a building, for the
// given date (YYYY-MM-DD) or today when empty.
func (c *Client) GetMobilityPrediction(ctx context.Context, buildingID, date string) (*MobilityPrediction, error) {
	if buildingID == "" {
		return nil, fmt.Errorf("building ID is required")
	}
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var pred MobilityPrediction
	if err := c.do(ctx, http.MethodGet, "/bigdata/predict/mobility/"+buildingID, q, nil, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

// SaturationTarget selects what a saturation forecast is about.
type SaturationTarget string

const (
	SaturationBuilding SaturationTarget = "building"
	SaturationEvent    SaturationTarget = "event"
)

// SaturationPrediction is the forecast of how full a building or event gets.
type SaturationPrediction struct {
	Target SaturationTarget `json:"type"`
	ID     string           `json:"id"`
	Level  float64          `json:"saturation_level"`
	Risk   string           `json:"risk,omitempty"`
}

// GetSaturationPrediction returns the saturation forecast for a building or
// event, for the given date (YYYY-MM-DD) or today when empty.
func (c *Client) GetSaturationPrediction(ctx context.Context, target SaturationTarget, id, date string) (*SaturationPrediction, error) {
	if target != SaturationBuilding && target != SaturationEvent {
		return nil, fmt.Errorf("saturation target must be %q or %q", SaturationBuilding, SaturationEvent)
	}
	if id == "" {
		return nil, fmt.Errorf("target ID is required")
	}
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	path := fmt.Sprintf("/bigdata/predict/saturation/%s/%s", target, id)
	var pred SaturationPrediction
	if err := c.do(ctx, http.MethodGet, path, q, nil, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

// MLStatus reports the remote prediction service's health.
type MLStatus struct {
	Available   bool   `json:"available"`
	Version     string `json:"version,omitempty"`
	LastTrained string `json:"last_trained,omitempty"`
}

// GetMLStatus checks whether the prediction service is reachable and trained.
func (c *Client) GetMLStatus(ctx context.Context) (*MLStatus, error) {
	var status MLStatus
	if err := c.do(ctx, http.MethodGet, "/bigdata/ml/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
