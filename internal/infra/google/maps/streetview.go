package maps

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"trustscore/config"
	"trustscore/internal/domain/entity"
	"trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/service"
)

type metadataResponse struct {
	Status   string `json:"status"`
	PanoID   string `json:"pano_id"`
	Date     string `json:"date"`
	Location *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type panoramaLocator struct {
	*client
	endpoint      string
	defaultRadius float64
}

// NewPanoramaLocator creates a PanoramaLocator backed by the Street View metadata API.
func NewPanoramaLocator(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) service.PanoramaLocator {
	return &panoramaLocator{
		client:        newClient(cfg.Google, httpClient, logger),
		endpoint:      orDefault(cfg.Google.StreetViewBaseURL, DefaultStreetViewBaseURL) + "/metadata",
		defaultRadius: cfg.Google.SearchRadiusMeters,
	}
}

// Locate asks for the nearest panorama. Metadata requests are not billed.
func (p *panoramaLocator) Locate(ctx context.Context, query service.PanoramaQuery) (*entity.PanoramaReference, bool, error) {
	radius := query.RadiusMeters
	if radius <= 0 {
		radius = p.defaultRadius
	}

	params := url.Values{}
	params.Set("location", query.Near.String())
	params.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))
	params.Set("heading", strconv.FormatFloat(query.Heading, 'f', -1, 64))
	params.Set("pitch", strconv.FormatFloat(query.Pitch, 'f', -1, 64))
	params.Set("fov", strconv.FormatFloat(query.FieldOfView, 'f', -1, 64))

	var resp metadataResponse
	if err := p.getJSON(ctx, p.endpoint, params, &resp); err != nil {
		return nil, false, errors.ErrResolutionFailed.Wrap(err, "street view metadata")
	}

	switch resp.Status {
	case statusOK:
	case statusZeroResults, statusNotFound:
		p.logger.Debug("No street view coverage near point",
			slog.String("near", query.Near.String()),
			slog.Float64("radius", radius),
		)

		return nil, false, nil
	default:
		return nil, false, errors.ErrResolutionFailed.WithDetails("street view status: " + resp.Status)
	}

	if resp.Location == nil {
		return nil, false, errors.ErrResolutionFailed.WithDetails("street view metadata without location")
	}

	location := geo.NewPoint(resp.Location.Lat, resp.Location.Lng)
	if !location.Valid() {
		return nil, false, errors.ErrResolutionFailed.WithDetails("street view returned an invalid coordinate")
	}

	return &entity.PanoramaReference{
		PanoID:      resp.PanoID,
		Location:    location,
		Heading:     geo.NormalizeHeading(query.Heading),
		Pitch:       query.Pitch,
		FieldOfView: query.FieldOfView,
		CapturedOn:  resp.Date,
	}, true, nil
}
