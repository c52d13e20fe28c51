package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestory/gestoryctl/pkg/sdk"
)

func TestSortPredictions(t *testing.T) {
	preds := []sdk.AttendancePrediction{
		{EventID: "e1", Predicted: 50, Confidence: 0.9},
		{EventID: "e2", Predicted: 200, Confidence: 0.7},
		{EventID: "e3", Predicted: 50, Confidence: 0.95},
	}

	sdk.SortPredictions(preds)

	assert.Equal(t, "e2", preds[0].EventID, "highest predicted attendance first")
	assert.Equal(t, "e3", preds[1].EventID, "confidence breaks ties")
	assert.Equal(t, "e1", preds[2].EventID)
}

func TestGetBatchPredictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bigdata/predict/batch", r.URL.Path)

		var body struct {
			EventIDs []string `json:"eventIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"e1", "e2"}, body.EventIDs)

		w.Write([]byte(`{"predictions": [
			{"eventId": "e1", "predicted_attendance": 30, "confidence": 0.8},
			{"eventId": "e2", "predicted_attendance": 120, "confidence": 0.6}
		]}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	preds, err := client.GetBatchPredictions(context.Background(), []string{"e1", "e2"})
	require.NoError(t, err)
	require.Len(t, preds, 2)
	assert.Equal(t, "e2", preds[0].EventID, "results come back sorted")

	_, err = client.GetBatchPredictions(context.Background(), nil)
	assert.Error(t, err)
}

func TestMobilityPrediction_HourlyGrid(t *testing.T) {
	pred := sdk.MobilityPrediction{
		Hourly: []sdk.HourlyDemand{
			{Hour: 8, Demand: 12.5},
			{Hour: 14, Demand: 40},
			{Hour: 25, Demand: 99}, // out of range, dropped
			{Hour: -1, Demand: 99}, // out of range, dropped
		},
	}

	grid := pred.HourlyGrid()
	assert.Equal(t, 12.5, grid[8])
	assert.Equal(t, 40.0, grid[14])
	assert.Equal(t, 0.0, grid[0], "unreported hours are zero-filled")
	assert.Equal(t, 0.0, grid[23])
}

func TestGetSaturationPrediction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bigdata/predict/saturation/building/b1", r.URL.Path)
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))
		w.Write([]byte(`{"type": "building", "id": "b1", "saturation_level": 0.85, "risk": "high"}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	pred, err := client.GetSaturationPrediction(context.Background(), sdk.SaturationBuilding, "b1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 0.85, pred.Level)
	assert.Equal(t, "high", pred.Risk)

	_, err = client.GetSaturationPrediction(context.Background(), "campus", "b1", "")
	assert.Error(t, err, "unknown target must be rejected locally")
}

func TestGetDashboardStats_Range(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bigdata/dashboard", r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-06-30", r.URL.Query().Get("endDate"))
		w.Write([]byte(`{"totalEvents": 42, "totalBuildings": 7, "totalAttendance": 1300, "averageOccupancy": 61.5}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	stats, err := client.GetDashboardStats(context.Background(), sdk.StatsRange{
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalEvents)
	assert.Equal(t, 61.5, stats.AverageOccupancy)
}
