package impl

import (
	"context"
	"testing"

	"trustscore/config"
	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/service"
	"trustscore/internal/errors"
	mockService "trustscore/internal/mocks/service"
	"trustscore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service  usecase.LocationUsecase
	geocoder *mockService.MockGeocoder
	locator  *mockService.MockPanoramaLocator
	imagery  *mockService.MockImageryURLBuilder
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	geocoder := mockService.NewMockGeocoder(t)
	locator := mockService.NewMockPanoramaLocator(t)
	imagery := mockService.NewMockImageryURLBuilder(t)
	cfg := &config.Config{Google: &config.GoogleConfig{SearchRadiusMeters: 500}}

	return locationServiceFixtures{
		service:  NewLocationService(geocoder, locator, imagery, cfg, discardLogger()),
		geocoder: geocoder,
		locator:  locator,
		imagery:  imagery,
	}
}

func TestLocationService_GeocodeAddress(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	point := geo.NewPoint(6.6018, 3.3515)

	fx.geocoder.EXPECT().Geocode(ctx, "12B Allen Avenue, Ikeja, Lagos").Return(point, nil).Twice()

	result, err := fx.service.GeocodeAddress(ctx, &usecase.GeocodeInput{
		Claim: entity.AddressClaim{HouseNumber: "12B", Street: "Allen Avenue", City: "Ikeja", State: "Lagos"},
	})
	require.NoError(t, err)
	assert.Equal(t, point, result.Point)
	assert.Equal(t, "12B Allen Avenue, Ikeja, Lagos", result.Address)

	result, err = fx.service.GeocodeAddress(ctx, &usecase.GeocodeInput{Address: "12B Allen Avenue, Ikeja, Lagos"})
	require.NoError(t, err)
	assert.Equal(t, point, result.Point)
}

func TestLocationService_GeocodeAddress_Errors(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	_, err := fx.service.GeocodeAddress(ctx, &usecase.GeocodeInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.geocoder.EXPECT().Geocode(ctx, "Nowhere").Return(geo.Point{}, domainerrors.ErrResolutionFailed)

	_, err = fx.service.GeocodeAddress(ctx, &usecase.GeocodeInput{Address: "Nowhere"})
	assert.True(t, errors.Is(err, domainerrors.ErrResolutionFailed))
}

func TestLocationService_SearchPanorama_FoundFacesRequestedPoint(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	requested := geo.NewPoint(6.6018, 3.3515)
	panoPoint := geo.NewPoint(6.6018, 3.3510) // due west of the requested point
	pano := &entity.PanoramaReference{PanoID: "abc", Location: panoPoint, FieldOfView: 90}

	fx.locator.EXPECT().
		Locate(ctx, service.PanoramaQuery{Near: requested, RadiusMeters: 500, Heading: 0, Pitch: 0, FieldOfView: 90}).
		Return(pano, true, nil)
	fx.imagery.EXPECT().
		EmbedURL(panoPoint, mock.MatchedBy(func(p service.ImageParams) bool {
			return p.Heading > 89 && p.Heading < 91 && p.Pitch == 0 && p.FieldOfView == 90
		})).
		Return("embed://pano")

	result, err := fx.service.SearchPanorama(ctx, &usecase.PanoramaSearchInput{Point: requested})
	require.NoError(t, err)
	assert.True(t, result.PanoramaFound)
	assert.Equal(t, panoPoint, result.Location)
	assert.InDelta(t, 90, result.Heading, 1)
	assert.InDelta(t, 90, result.Panorama.Heading, 1)
	assert.Equal(t, "embed://pano", result.EmbedURL)
}

func TestLocationService_SearchPanorama_ExplicitCamera(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	requested := geo.NewPoint(6.6018, 3.3515)
	heading, pitch, fov := 370.0, 10.0, 60.0
	params := service.ImageParams{Heading: 10, Pitch: 10, FieldOfView: 60}

	fx.locator.EXPECT().
		Locate(ctx, service.PanoramaQuery{Near: requested, RadiusMeters: 100, Heading: 10, Pitch: 10, FieldOfView: 60}).
		Return(&entity.PanoramaReference{Location: requested}, true, nil)
	fx.imagery.EXPECT().EmbedURL(requested, params).Return("embed://explicit")

	result, err := fx.service.SearchPanorama(ctx, &usecase.PanoramaSearchInput{
		Point: requested, Heading: &heading, Pitch: &pitch, FieldOfView: &fov, RadiusMeters: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, result.Heading)
	assert.Equal(t, "embed://explicit", result.EmbedURL)
}

func TestLocationService_SearchPanorama_NotFoundFallsBack(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	requested := geo.NewPoint(6.6018, 3.3515)

	fx.locator.EXPECT().Locate(ctx, mock.Anything).Return(nil, false, nil)
	fx.imagery.EXPECT().EmbedURL(requested, service.DefaultImageParams(0)).Return("embed://raw")

	result, err := fx.service.SearchPanorama(ctx, &usecase.PanoramaSearchInput{Point: requested})
	require.NoError(t, err)
	assert.False(t, result.PanoramaFound)
	assert.Nil(t, result.Panorama)
	assert.Equal(t, requested, result.Location)
	assert.Equal(t, "embed://raw", result.EmbedURL)
}

func TestLocationService_SearchPanorama_Errors(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	_, err := fx.service.SearchPanorama(ctx, &usecase.PanoramaSearchInput{Point: geo.NewPoint(91, 0)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.locator.EXPECT().Locate(ctx, mock.Anything).Return(nil, false, domainerrors.ErrResolutionFailed)

	_, err = fx.service.SearchPanorama(ctx, &usecase.PanoramaSearchInput{Point: geo.NewPoint(6.6, 3.3)})
	assert.True(t, errors.Is(err, domainerrors.ErrResolutionFailed))
}

func TestLocationService_ConfirmCapture(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	point := geo.NewPoint(6.60185, 3.35152)

	fx.imagery.EXPECT().StaticImageURL(point, service.DefaultImageParams(45)).Return("static://capture")
	fx.imagery.EXPECT().WithAPIKey("static://capture").Return("static://capture?key=k")

	result, err := fx.service.ConfirmCapture(ctx, point, -315)
	require.NoError(t, err)
	assert.Equal(t, point, result.PanoramaPoint)
	assert.Equal(t, 45.0, result.Heading)
	assert.Equal(t, "static://capture?key=k", result.ImageURL)

	_, err = fx.service.ConfirmCapture(ctx, geo.NewPoint(0, 200), 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
