// Package api talks to the remote rescue-data service over plain HTTP.
// The service is a black box: GET returns the current location set and
// DELETE resolves one location. No retry is attempted.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
)

// Client is the transport surface the rescue service depends on.
type Client interface {
	FetchLocations(ctx context.Context) ([]models.RescueLocation, error)
	DeleteLocation(ctx context.Context, id string) error
}

// HTTPClient implements Client against a base URL.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds an HTTPClient. timeout 0 means no client-side
// timeout; callers bound requests through ctx instead.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

type locationsResponse struct {
	Locations []models.RescueLocation `json:"locations"`
}

// FetchLocations GETs the current location set. A non-2xx status or a
// body without a "locations" field yields an empty list, not an error;
// only transport and decode failures are reported.
func (c *HTTPClient) FetchLocations(ctx context.Context) ([]models.RescueLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/locations", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(ctx, "locations fetch returned non-2xx", "status", resp.Status)
		return []models.RescueLocation{}, nil
	}

	var body locationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	if body.Locations == nil {
		return []models.RescueLocation{}, nil
	}
	return body.Locations, nil
}

// DeleteLocation issues the resolve call for one location. Any non-2xx
// status is an error; the caller must not mutate local state on failure.
func (c *HTTPClient) DeleteLocation(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/users/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("delete location %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("delete location %s failed: %s; body: %s", id, resp.Status, string(b))
	}
	return nil
}
