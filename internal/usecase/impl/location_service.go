package impl

import (
	"context"
	"log/slog"
	"strings"

	"trustscore/config"
	deliverycontext "trustscore/internal/delivery/context"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/service"
	"trustscore/internal/usecase"
)

type locationService struct {
	geocoder      service.Geocoder
	locator       service.PanoramaLocator
	imagery       service.ImageryURLBuilder
	defaultRadius float64
	logger        *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	geocoder service.Geocoder,
	locator service.PanoramaLocator,
	imagery service.ImageryURLBuilder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		geocoder:      geocoder,
		locator:       locator,
		imagery:       imagery,
		defaultRadius: cfg.Google.SearchRadiusMeters,
		logger:        logger,
	}
}

// GeocodeAddress resolves a free-text address or a flattened claim
func (s *locationService) GeocodeAddress(ctx context.Context, input *usecase.GeocodeInput) (*usecase.GeocodeResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	address := strings.TrimSpace(input.Address)
	if address == "" {
		address = input.Claim.Flatten()
	}
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	point, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	return &usecase.GeocodeResult{Address: address, Point: point}, nil
}

// SearchPanorama finds the nearest panorama and builds the embed URL. Without coverage the
// embed falls back to the requested point. Without an explicit heading the camera faces the
// requested point from the panorama.
func (s *locationService) SearchPanorama(ctx context.Context, input *usecase.PanoramaSearchInput) (*usecase.PanoramaSearchResult, error) {
	if input == nil || !input.Point.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lng are required")
	}

	params := service.DefaultImageParams(0)
	if input.Heading != nil {
		params.Heading = geo.NormalizeHeading(*input.Heading)
	}
	if input.Pitch != nil {
		params.Pitch = *input.Pitch
	}
	if input.FieldOfView != nil {
		params.FieldOfView = *input.FieldOfView
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = s.defaultRadius
	}

	panorama, found, err := s.locator.Locate(ctx, service.PanoramaQuery{
		Near:         input.Point,
		RadiusMeters: radius,
		Heading:      params.Heading,
		Pitch:        params.Pitch,
		FieldOfView:  params.FieldOfView,
	})
	if err != nil {
		return nil, err
	}

	location := input.Point
	if found {
		location = panorama.Location
		if input.Heading == nil {
			params.Heading = geo.Bearing(panorama.Location, input.Point)
			panorama.Heading = params.Heading
		}
	} else {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("No panorama near point, using requested point",
			slog.String("point", input.Point.String()),
			slog.Float64("radius", radius),
		)
	}

	return &usecase.PanoramaSearchResult{
		Panorama:      panorama,
		PanoramaFound: found,
		Location:      location,
		Heading:       params.Heading,
		Pitch:         params.Pitch,
		FieldOfView:   params.FieldOfView,
		EmbedURL:      s.imagery.EmbedURL(location, params),
	}, nil
}

// ConfirmCapture renders the still image for the confirmed panorama point
func (s *locationService) ConfirmCapture(ctx context.Context, panoramaPoint geo.Point, heading float64) (*usecase.CaptureResult, error) {
	if !panoramaPoint.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pano_lat and pano_lng are required")
	}

	heading = geo.NormalizeHeading(heading)

	return &usecase.CaptureResult{
		PanoramaPoint: panoramaPoint,
		Heading:       heading,
		ImageURL:      s.imagery.WithAPIKey(s.imagery.StaticImageURL(panoramaPoint, service.DefaultImageParams(heading))),
	}, nil
}
