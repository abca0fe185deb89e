package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchDistances_ParsesElements(t *testing.T) {
	var gotPath, gotOrigins, gotDestinations, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOrigins = r.URL.Query().Get("origins")
		gotDestinations = r.URL.Query().Get("destinations")
		gotKey = r.URL.Query().Get("key")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"rows": [{
				"elements": [
					{"status": "OK", "distance": {"value": 1500}, "duration": {"value": 240}},
					{"status": "ZERO_RESULTS"},
					{"status": "OK", "distance": {"value": 3200}, "duration": {"value": 510}}
				]
			}]
		}`))
	}))
	defer server.Close()

	client := NewDistanceMatrixClient(server.URL, "test-key", 2*time.Second)
	results, err := client.BatchDistances(
		context.Background(),
		models.LatLng{Lat: 14.6, Lng: 120.98},
		[]models.LatLng{
			{Lat: 14.61, Lng: 120.97},
			{Lat: 14.62, Lng: 120.96},
			{Lat: 14.63, Lng: 120.95},
		},
	)

	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "/maps/api/distancematrix/json", gotPath)
	assert.Equal(t, "14.6,120.98", gotOrigins)
	assert.Equal(t, "14.61,120.97|14.62,120.96|14.63,120.95", gotDestinations)
	assert.Equal(t, "test-key", gotKey)

	assert.True(t, results[0].OK)
	assert.Equal(t, 1500, results[0].DistanceMeters)
	assert.Equal(t, 240, results[0].DurationSeconds)
	assert.False(t, results[1].OK)
	assert.True(t, results[2].OK)
	assert.Equal(t, 3200, results[2].DistanceMeters)
}

func TestBatchDistances_NonOKStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewDistanceMatrixClient(server.URL, "test-key", 2*time.Second)
	results, err := client.BatchDistances(
		context.Background(),
		models.LatLng{Lat: 14.6, Lng: 120.98},
		[]models.LatLng{{Lat: 14.61, Lng: 120.97}},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, results)
}

func TestBatchDistances_NoRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "INVALID_REQUEST", "rows": []}`))
	}))
	defer server.Close()

	client := NewDistanceMatrixClient(server.URL, "test-key", 2*time.Second)
	results, err := client.BatchDistances(
		context.Background(),
		models.LatLng{Lat: 14.6, Lng: 120.98},
		[]models.LatLng{{Lat: 14.61, Lng: 120.97}},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, results)
}

func TestBatchDistances_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewDistanceMatrixClient(server.URL, "test-key", 2*time.Second)
	_, err := client.BatchDistances(
		context.Background(),
		models.LatLng{Lat: 14.6, Lng: 120.98},
		[]models.LatLng{{Lat: 14.61, Lng: 120.97}},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBatchDistances_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	client := NewDistanceMatrixClient(server.URL, "test-key", time.Second)
	_, err := client.BatchDistances(
		context.Background(),
		models.LatLng{Lat: 14.6, Lng: 120.98},
		[]models.LatLng{{Lat: 14.61, Lng: 120.97}},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
