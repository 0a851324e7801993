// Package ipapi wraps the ip-api.com geolocation endpoint.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// LocationInfo is the projected geolocation record for one IP
type LocationInfo struct {
	Status      string  `json:"status"`
	Message     string  `json:"message,omitempty"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	AS          string  `json:"as"`
	Query       string  `json:"query"`
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
		log:     log.With(zap.String("client", "ipapi")),
	}
}

// Lookup resolves geolocation for one IP address. An empty ip resolves the
// caller's own address. fields narrows the response; lang localizes names.
func (c *Client) Lookup(ctx context.Context, ip, fields, lang string) (*LocationInfo, error) {
	endpoint := c.baseURL + "/json/"
	if ip != "" {
		endpoint += url.PathEscape(ip)
	}

	params := url.Values{}
	if fields != "" {
		params.Set("fields", fields)
	}
	if lang != "" && lang != "en" {
		params.Set("lang", lang)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geolocation request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Geolocation request failed", zap.Error(err), zap.String("ip", ip))
		return nil, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("Geolocation request returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.String("ip", ip),
		)
		return nil, fmt.Errorf("geolocation request: unexpected status %d", resp.StatusCode)
	}

	var info LocationInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode geolocation response: %w", err)
	}

	if info.Status == "fail" {
		return nil, fmt.Errorf("geolocation lookup failed: %s", info.Message)
	}

	return &info, nil
}
