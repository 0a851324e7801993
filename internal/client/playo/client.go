// Package playo queries the Playo public activity listing for sports
// venues and games around a coordinate.
package playo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const listPath = "/activity-public/list/location"

// SearchRequest describes one venue-activity search
type SearchRequest struct {
	Lat        float64
	Lng        float64
	Date       string // YYYY-MM-DD or full ISO timestamp; empty means today
	SportIDs   []string
	TimingIDs  []int
	SkillIDs   []int
	CityRadius int
	SortBy     string // "distance" or "time_date"
	Page       int
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With(zap.String("client", "playo")),
	}
}

// normalizeDate pads a bare YYYY-MM-DD into the full timestamp the listing
// endpoint expects
func normalizeDate(date string) string {
	if date == "" {
		return time.Now().Format("2006-01-02") + "T00:00:00.000Z"
	}
	for _, r := range date {
		if r == 'T' {
			return date
		}
	}
	return date + "T00:00:00.000Z"
}

// SearchActivities posts one search and returns the provider's result as-is
func (c *Client) SearchActivities(ctx context.Context, req *SearchRequest) (map[string]any, error) {
	timings := req.TimingIDs
	if len(timings) == 0 {
		// Default window: morning, day, evening
		timings = []int{0, 1, 2}
	}

	skills := req.SkillIDs
	if len(skills) == 0 {
		skills = []int{1} // amateur
	}

	radius := req.CityRadius
	if radius <= 0 {
		radius = 50
	}

	sportIDs := req.SportIDs
	if sportIDs == nil {
		sportIDs = []string{}
	}

	payload := map[string]any{
		"booking":            false,
		"cityRadius":         radius,
		"date":               []string{normalizeDate(req.Date)},
		"gameTimeActivities": false,
		"lastId":             "",
		"lat":                req.Lat,
		"lng":                req.Lng,
		"page":               req.Page,
		"skill":              skills,
		"sportId":            sportIDs,
		"timing":             timings,
	}

	if req.SortBy == "distance" || req.SortBy == "time_date" {
		payload["appliedFilters"] = map[string]any{
			"sortandfilter": map[string]any{
				"sort_by": req.SortBy,
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal activity search payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+listPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build activity search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error("Activity search request failed",
			zap.Error(err),
			zap.Float64("lat", req.Lat),
			zap.Float64("lng", req.Lng),
		)
		return nil, fmt.Errorf("activity search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("Activity search returned non-200",
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("activity search request: unexpected status %d", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode activity search response: %w", err)
	}

	return result, nil
}
