package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/placez/placez-api/internal/config"
	"github.com/placez/placez-api/internal/domain"
)

// defaultEndpoint is the Google Maps geocoding API endpoint.
const defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// statusZeroResults is the upstream status for an address with no match.
const statusZeroResults = "ZERO_RESULTS"

// GoogleClient is a Geocoder backed by the Google Maps geocoding API.
// The endpoint is overridable for tests; each call is bounded by the
// configured timeout through the underlying HTTP client.
type GoogleClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string
	apiKey     string
}

// Ensure GoogleClient implements Geocoder.
var _ Geocoder = (*GoogleClient)(nil)

// NewGoogleClient creates a geocoding client from configuration.
func NewGoogleClient(cfg config.GeocodeConfig, logger *slog.Logger) *GoogleClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &GoogleClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger:   logger,
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
	}
}

// geocodeResponse is the subset of the upstream payload the client reads.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve implements Geocoder.Resolve. An empty address short-circuits
// to ErrAddressNotFound without an upstream call.
func (c *GoogleClient) Resolve(ctx context.Context, address string) (domain.Location, error) {
	if address == "" {
		return domain.Location{}, ErrAddressNotFound
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return domain.Location{}, fmt.Errorf("failed to parse geocoding endpoint: %w", err)
	}

	q := reqURL.Query()
	q.Set("address", address)
	q.Set("key", c.apiKey)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("failed to create geocoding request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("geocoding request failed",
			slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("geocoding service returned error status",
			slog.Int("http_status", resp.StatusCode))
		return domain.Location{}, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Location{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if body.Status == statusZeroResults || len(body.Results) == 0 {
		return domain.Location{}, ErrAddressNotFound
	}

	loc := body.Results[0].Geometry.Location
	return domain.Location{Lat: loc.Lat, Lng: loc.Lng}, nil
}
