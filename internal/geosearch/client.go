package geosearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"landmarks-backend/internal/models"
)

// ErrProvider marks failures of the upstream geosearch provider:
// transport errors, non-2xx statuses, and malformed payloads.
var ErrProvider = errors.New("geosearch provider error")

const (
	// DefaultBaseURL is the MediaWiki API endpoint of English Wikipedia
	DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

	// MaxRadius is the provider-imposed search radius cap in meters
	MaxRadius = 10000

	// resultLimit is the fixed gslimit sent with every query
	resultLimit = 50
)

// Searcher is the lookup interface handlers depend on, so tests can
// substitute a fake provider.
type Searcher interface {
	SearchNearby(ctx context.Context, lat, lon, radius float64) ([]models.Landmark, error)
}

// Client queries the MediaWiki geosearch list action
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geosearch client. An empty baseURL selects the
// Wikipedia endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// geoSearchResponse mirrors the MediaWiki JSON envelope. The geosearch
// list is nested under query; MediaWiki reports errors in-band with a
// 200 status, in which case query is absent.
type geoSearchResponse struct {
	Query *struct {
		GeoSearch []models.Landmark `json:"geosearch"`
	} `json:"query"`
}

// SearchNearby returns landmarks within radius meters of (lat, lon).
// The radius is clamped to MaxRadius and at most resultLimit records
// are returned, ordered by distance as the provider sends them.
func (c *Client) SearchNearby(ctx context.Context, lat, lon, radius float64) ([]models.Landmark, error) {
	if radius > MaxRadius {
		radius = MaxRadius
	}
	if radius < 1 {
		radius = 1
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "geosearch")
	params.Set("gscoord", fmt.Sprintf("%g|%g", lat, lon))
	// The provider only accepts whole-meter radii
	params.Set("gsradius", strconv.Itoa(int(radius)))
	params.Set("gslimit", strconv.Itoa(resultLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProvider, resp.StatusCode)
	}

	var payload geoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}

	if payload.Query == nil {
		return nil, fmt.Errorf("%w: response missing geosearch results", ErrProvider)
	}

	return payload.Query.GeoSearch, nil
}
