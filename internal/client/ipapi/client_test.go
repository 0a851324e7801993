package ipapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLookup(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"country": "India",
			"countryCode": "IN",
			"regionName": "Karnataka",
			"city": "Bengaluru",
			"lat": 12.9716,
			"lon": 77.5946,
			"timezone": "Asia/Kolkata",
			"isp": "Bharti Airtel",
			"query": "104.28.210.1"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	info, err := client.Lookup(context.Background(), "104.28.210.1", "", "")
	require.NoError(t, err)

	assert.Equal(t, "/json/104.28.210.1", gotPath)
	assert.Empty(t, gotQuery)
	assert.Equal(t, "India", info.Country)
	assert.Equal(t, "Bengaluru", info.City)
	assert.Equal(t, 12.9716, info.Lat)
	assert.Equal(t, "104.28.210.1", info.Query)
}

func TestLookupOwnIP(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": "success", "query": "203.0.113.9"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	info, err := client.Lookup(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "/json/", gotPath)
	assert.Equal(t, "203.0.113.9", info.Query)
}

func TestLookupParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"status": "success"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.Lookup(context.Background(), "1.1.1.1", "status,country,city", "de")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "fields=status%2Ccountry%2Ccity")
	assert.Contains(t, gotQuery, "lang=de")

	// English is the upstream default and is not sent
	_, err = client.Lookup(context.Background(), "1.1.1.1", "", "en")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestLookupFailStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "invalid query", "query": "not-an-ip"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.Lookup(context.Background(), "not-an-ip", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
}

func TestLookupNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.Lookup(context.Background(), "1.1.1.1", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
