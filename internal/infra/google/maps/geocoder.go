package maps

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"trustscore/config"
	"trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/service"
)

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type geocoder struct {
	*client
	endpoint string
}

// NewGeocoder creates a Geocoder backed by the Google Geocoding API.
func NewGeocoder(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) service.Geocoder {
	return &geocoder{
		client:   newClient(cfg.Google, httpClient, logger),
		endpoint: orDefault(cfg.Google.GeocodeBaseURL, DefaultGeocodeBaseURL),
	}
}

// Geocode returns the location of the first result.
func (g *geocoder) Geocode(ctx context.Context, address string) (geo.Point, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResponse
	if err := g.getJSON(ctx, g.endpoint, params, &resp); err != nil {
		return geo.Point{}, errors.ErrResolutionFailed.Wrap(err, "geocode address")
	}

	if resp.Status != statusOK || len(resp.Results) == 0 {
		g.logger.Warn("Geocoding returned no usable result",
			slog.String("status", resp.Status),
			slog.String("error_message", resp.ErrorMessage),
		)

		return geo.Point{}, errors.ErrResolutionFailed.WithDetails("geocoding status: " + resp.Status)
	}

	loc := resp.Results[0].Geometry.Location
	point := geo.NewPoint(loc.Lat, loc.Lng)
	if !point.Valid() {
		return geo.Point{}, errors.ErrResolutionFailed.WithDetails("geocoding returned an invalid coordinate")
	}

	return point, nil
}
