package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fireduino/fireduino-api/internal/models"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

var (
	// ErrNoCandidates - an empty destination set was offered.
	ErrNoCandidates = errors.New("routing: no candidate destinations")

	// ErrUnavailable - the provider errored, timed out, or returned a
	// response that cannot be trusted (wrong result count, no usable rows).
	ErrUnavailable = errors.New("routing: provider unavailable")
)

// TravelResult is one element of a distance-matrix response, index-aligned
// with the destinations as sent.
type TravelResult struct {
	// OK reports whether the provider could route this pair.
	OK bool
	// DistanceMeters is the road-travel distance, not straight-line.
	DistanceMeters int
	// DurationSeconds is the estimated travel time.
	DurationSeconds int
}

// Client wraps an external distance-matrix API. Providers vary; the resolver
// only depends on this one method.
type Client interface {
	// BatchDistances resolves travel results from origin to every
	// destination in a single provider call. The returned slice is
	// index-aligned with destinations.
	BatchDistances(ctx context.Context, origin models.LatLng, destinations []models.LatLng) ([]TravelResult, error)
}

// DistanceMatrixClient talks to the distancematrix.ai JSON API.
type DistanceMatrixClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewDistanceMatrixClient(baseURL, apiKey string, timeout time.Duration) *DistanceMatrixClient {
	return &DistanceMatrixClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// distanceMatrixResponse mirrors the provider payload. Only the first row is
// meaningful because requests carry a single origin.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

func (c *DistanceMatrixClient) BatchDistances(ctx context.Context, origin models.LatLng, destinations []models.LatLng) ([]TravelResult, error) {
	dests := make([]string, len(destinations))
	for i, d := range destinations {
		dests[i] = fmt.Sprintf("%g,%g", d.Lat, d.Lng)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("origins", fmt.Sprintf("%g,%g", origin.Lat, origin.Lng))
	params.Set("destinations", strings.Join(dests, "|"))

	endpoint := c.baseURL + "/maps/api/distancematrix/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var body distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(body.Rows) == 0 {
		return nil, fmt.Errorf("%w: response has no rows", ErrUnavailable)
	}

	elements := body.Rows[0].Elements
	results := make([]TravelResult, len(elements))
	for i, el := range elements {
		results[i] = TravelResult{
			OK:              el.Status == "OK",
			DistanceMeters:  el.Distance.Value,
			DurationSeconds: el.Duration.Value,
		}
	}
	return results, nil
}
