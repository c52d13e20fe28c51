package sdk

import (
	"context"
	"net/http"
	"net/url"
)

// StatsRange bounds an analytics query. Dates are YYYY-MM-DD strings as the
// backend expects; empty bounds mean the backend's full window.
type StatsRange struct {
	StartDate string
	EndDate   string
}

func (r StatsRange) query() url.Values {
	q := url.Values{}
	if r.StartDate != "" {
		q.Set("startDate", r.StartDate)
	}
	if r.EndDate != "" {
		q.Set("endDate", r.EndDate)
	}
	return q
}

// DashboardStats is the aggregate analytics snapshot.
type DashboardStats struct {
	TotalEvents      int            `json:"totalEvents"`
	TotalBuildings   int            `json:"totalBuildings"`
	TotalAttendance  int            `json:"totalAttendance"`
	AverageOccupancy float64        `json:"averageOccupancy"`
	EventsByCategory map[string]int `json:"eventsByCategory,omitempty"`
	EventsByStatus   map[string]int `json:"eventsByStatus,omitempty"`
}

// GetDashboardStats returns the aggregate analytics dashboard.
func (c *Client) GetDashboardStats(ctx context.Context, r StatsRange) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/bigdata/dashboard", r.query(), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// BuildingStats is per-building usage aggregates.
type BuildingStats struct {
	BuildingID   string  `json:"buildingId"`
	BuildingName string  `json:"buildingName"`
	EventCount   int     `json:"eventCount"`
	Attendance   int     `json:"attendance"`
	Occupancy    float64 `json:"occupancy"`
}

// BuildingStatsFilter narrows GetBuildingStats.
type BuildingStatsFilter struct {
	StatsRange
	BuildingID string
}

// GetBuildingStats returns usage aggregates per building.
func (c *Client) GetBuildingStats(ctx context.Context, f BuildingStatsFilter) ([]BuildingStats, error) {
	q := f.query()
	if f.BuildingID != "" {
		q.Set("buildingId", f.BuildingID)
	}
	var resp struct {
		Stats []BuildingStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/bigdata/stats/buildings", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

// EventStats is per-event attendance aggregates.
type EventStats struct {
	EventID    string      `json:"eventId"`
	Title      string      `json:"title"`
	Status     EventStatus `json:"status"`
	Attendance int         `json:"attendance"`
	Capacity   int         `json:"capacity,omitempty"`
}

// EventStatsFilter narrows GetEventStats.
type EventStatsFilter struct {
	StatsRange
	Status EventStatus
}

// GetEventStats returns attendance aggregates per event.
func (c *Client) GetEventStats(ctx context.Context, f EventStatsFilter) ([]EventStats, error) {
	q := f.query()
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	var resp struct {
		Stats []EventStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/bigdata/stats/events", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

// BatchResult reports a manually triggered batch processing run.
type BatchResult struct {
	Message   string `json:"message"`
	Processed int    `json:"processed"`
}

// RunBatchProcessing triggers the analytics batch pipeline on demand.
func (c *Client) RunBatchProcessing(ctx context.Context) (*BatchResult, error) {
	var result BatchResult
	if err := c.do(ctx, http.MethodPost, "/bigdata/batch/process", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
