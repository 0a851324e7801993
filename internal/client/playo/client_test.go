package playo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchActivities(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"requestStatus": 1, "data": {"activities": []}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	result, err := client.SearchActivities(context.Background(), &SearchRequest{
		Lat:      12.9716,
		Lng:      77.5946,
		Date:     "2025-11-24",
		SportIDs: []string{"SP5"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/activity-public/list/location", gotPath)
	assert.Equal(t, float64(1), result["requestStatus"])

	assert.Equal(t, 12.9716, gotPayload["lat"])
	assert.Equal(t, false, gotPayload["booking"])
	assert.Equal(t, []any{"2025-11-24T00:00:00.000Z"}, gotPayload["date"])
	assert.Equal(t, []any{"SP5"}, gotPayload["sportId"])

	// Defaults fill in when the request leaves them out
	assert.Equal(t, []any{float64(0), float64(1), float64(2)}, gotPayload["timing"])
	assert.Equal(t, []any{float64(1)}, gotPayload["skill"])
	assert.Equal(t, float64(50), gotPayload["cityRadius"])
	assert.NotContains(t, gotPayload, "appliedFilters")
}

func TestSearchActivitiesSort(t *testing.T) {
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.SearchActivities(context.Background(), &SearchRequest{
		Lat:    12.9716,
		Lng:    77.5946,
		SortBy: "distance",
	})
	require.NoError(t, err)

	filters, ok := gotPayload["appliedFilters"].(map[string]any)
	require.True(t, ok)
	sorter, ok := filters["sortandfilter"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "distance", sorter["sort_by"])
}

func TestSearchActivitiesNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.SearchActivities(context.Background(), &SearchRequest{Lat: 1, Lng: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-11-24T00:00:00.000Z", normalizeDate("2025-11-24"))
	assert.Equal(t, "2025-11-24T10:30:00.000Z", normalizeDate("2025-11-24T10:30:00.000Z"))

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today+"T00:00:00.000Z", normalizeDate(""))
}
