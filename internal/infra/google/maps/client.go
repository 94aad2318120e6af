// Package maps adapts the Google Maps Platform web services (Geocoding, Street View metadata
// and imagery) to the domain service interfaces.
package maps

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trustscore/config"
	"trustscore/internal/errors"
)

const (
	DefaultGeocodeBaseURL    = "https://maps.googleapis.com/maps/api/geocode/json"
	DefaultStreetViewBaseURL = "https://maps.googleapis.com/maps/api/streetview"
	DefaultEmbedBaseURL      = "https://www.google.com/maps/embed/v1/streetview"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

// client holds the transport shared by the Maps adapters.
type client struct {
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func newClient(cfg *config.GoogleConfig, httpClient *http.Client, logger *slog.Logger) *client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &client{
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		httpClient: httpClient,
		logger:     logger,
	}
}

// getJSON issues a GET against endpoint with params plus the API key and decodes the body into out.
func (c *client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params.Set("key", c.apiKey)
	reqURL := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "maps request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("maps returned http status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode maps response")
	}

	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return strings.TrimRight(value, "/")
}
