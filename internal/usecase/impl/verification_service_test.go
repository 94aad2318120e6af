package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"trustscore/config"
	deliverycontext "trustscore/internal/delivery/context"
	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"
	"trustscore/internal/domain/service"
	"trustscore/internal/domain/verification"
	"trustscore/internal/errors"
	mockRepo "trustscore/internal/mocks/repository"
	mockService "trustscore/internal/mocks/service"
	"trustscore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	lagosAddress = geo.NewPoint(6.5244, 3.3792)
	lagosDevice  = geo.NewPoint(6.5248, 3.3795)
	fixedNow     = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	fixedID      = uuid.MustParse("0b8f1c1e-7c1f-4c55-9d3e-2b0c1f7d9a10")
)

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service   usecase.VerificationUsecase
	geocoder  *mockService.MockGeocoder
	locator   *mockService.MockPanoramaLocator
	imagery   *mockService.MockImageryURLBuilder
	repo      *mockRepo.MockVerificationRepository
	publisher *mockService.MockEventPublisher
	qrcode    *mockService.MockQRCodeService
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	fx := verificationServiceFixtures{
		geocoder:  mockService.NewMockGeocoder(t),
		locator:   mockService.NewMockPanoramaLocator(t),
		imagery:   mockService.NewMockImageryURLBuilder(t),
		repo:      mockRepo.NewMockVerificationRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		qrcode:    mockService.NewMockQRCodeService(t),
	}

	engine := verification.NewEngine(fx.imagery,
		verification.WithClock(func() time.Time { return fixedNow }),
		verification.WithIDGenerator(func() uuid.UUID { return fixedID }),
	)
	fx.imagery.EXPECT().WithAPIKey(mock.Anything).RunAndReturn(func(rawURL string) string {
		if rawURL == "" {
			return ""
		}
		return rawURL + "&key=test-key"
	}).Maybe()

	cfg := &config.Config{Google: &config.GoogleConfig{SearchRadiusMeters: 500}}
	fx.service = NewVerificationService(fx.geocoder, fx.locator, engine, fx.imagery, fx.repo, fx.publisher, fx.qrcode, cfg, discardLogger())

	return fx
}

func float(v float64) *float64 {
	return &v
}

func TestVerificationService_VerifyAddress_WithCapture(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	pano := geo.NewPoint(6.5245, 3.3793)

	fx.geocoder.EXPECT().Geocode(mock.Anything, "12B Allen Avenue, Ikeja, Lagos").Return(lagosAddress, nil)
	fx.imagery.EXPECT().StaticImageURL(pano, service.DefaultImageParams(45)).Return("static://pano")
	// Stored and published copies keep the keyless URL
	fx.repo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.VerificationRecord) bool {
		return r.ImageURL == "static://pano"
	})).Return(nil)
	fx.publisher.EXPECT().
		PublishVerificationEvent(ctx, mock.MatchedBy(func(e *service.VerificationEvent) bool {
			return e.RequestID == "req-42" && e.VerificationID == fixedID.String() && e.Outcome == "pending" &&
				e.ImageURL == "static://pano"
		})).
		Return(nil)

	record, err := fx.service.VerifyAddress(ctx, &usecase.VerifyAddressInput{
		SubjectID:      "22222222222",
		InputAddress:   " 12B Allen Avenue, Ikeja, Lagos ",
		DevicePoint:    lagosDevice,
		DeviceAccuracy: float(30),
		PanoramaPoint:  &pano,
		Heading:        45,
	})

	require.NoError(t, err)
	assert.Equal(t, fixedID, record.ID)
	assert.InDelta(t, 55, record.DistanceMeters, 1)
	assert.Equal(t, policy.OutcomePending, record.Outcome)
	assert.True(t, record.PanoramaFound)
	assert.Equal(t, pano, record.PanoramaPoint)
	assert.Equal(t, "static://pano&key=test-key", record.ImageURL)
	assert.Equal(t, "12B Allen Avenue, Ikeja, Lagos", record.InputAddress)
	assert.Equal(t, fixedNow, record.CreatedAt)

	fx.locator.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything)
}

func TestVerificationService_VerifyAddress_LocatesPanoramaConcurrently(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	found := geo.NewPoint(6.52445, 3.37925)

	fx.geocoder.EXPECT().Geocode(mock.Anything, "Allen Avenue").Return(lagosAddress, nil)
	fx.locator.EXPECT().
		Locate(mock.Anything, service.PanoramaQuery{Near: lagosDevice, RadiusMeters: 500, Heading: 0, Pitch: 0, FieldOfView: 90}).
		Return(&entity.PanoramaReference{Location: found}, true, nil)
	fx.imagery.EXPECT().StaticImageURL(found, mock.Anything).Return("static://found")
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishVerificationEvent(ctx, mock.Anything).Return(nil)

	record, err := fx.service.VerifyAddress(ctx, &usecase.VerifyAddressInput{
		SubjectID:    "22222222222",
		InputAddress: "Allen Avenue",
		DevicePoint:  lagosDevice,
	})

	require.NoError(t, err)
	assert.True(t, record.PanoramaFound)
	assert.Equal(t, found, record.PanoramaPoint)
	// no accuracy reported, so never approved
	assert.NotEqual(t, policy.OutcomeApproved, record.Outcome)
}

func TestVerificationService_VerifyAddress_NoPanoramaFallsBackToDevice(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(lagosDevice, nil)
	fx.locator.EXPECT().Locate(mock.Anything, mock.Anything).Return(nil, false, nil)
	fx.imagery.EXPECT().StaticImageURL(lagosDevice, mock.Anything).Return("static://device")
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishVerificationEvent(ctx, mock.Anything).Return(nil)

	record, err := fx.service.VerifyAddress(ctx, &usecase.VerifyAddressInput{
		SubjectID:      "22222222222",
		InputAddress:   "Allen Avenue",
		DevicePoint:    lagosDevice,
		DeviceAccuracy: float(10),
	})

	require.NoError(t, err)
	assert.False(t, record.PanoramaFound)
	assert.Equal(t, lagosDevice, record.PanoramaPoint)
	assert.Equal(t, 0.0, record.DistanceMeters)
	assert.Equal(t, policy.OutcomeApproved, record.Outcome)
}

func TestVerificationService_VerifyAddress_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	pano := geo.NewPoint(6.5245, 3.3793)

	fx.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(lagosAddress, nil)
	fx.imagery.EXPECT().StaticImageURL(mock.Anything, mock.Anything).Return("static://pano")
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishVerificationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	record, err := fx.service.VerifyAddress(ctx, &usecase.VerifyAddressInput{
		SubjectID: "22222222222", InputAddress: "Allen Avenue", DevicePoint: lagosDevice, PanoramaPoint: &pano,
	})

	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestVerificationService_VerifyAddress_ProviderAndStoreFailures(t *testing.T) {
	pano := geo.NewPoint(6.5245, 3.3793)
	input := func() *usecase.VerifyAddressInput {
		return &usecase.VerifyAddressInput{
			SubjectID: "22222222222", InputAddress: "Allen Avenue", DevicePoint: lagosDevice, PanoramaPoint: &pano,
		}
	}

	t.Run("geocoding fails", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(geo.Point{}, domainerrors.ErrResolutionFailed)

		_, err := fx.service.VerifyAddress(context.Background(), input())
		assert.True(t, errors.Is(err, domainerrors.ErrResolutionFailed))
	})

	t.Run("panorama lookup fails", func(t *testing.T) {
		fx := createTestVerificationService(t)
		in := input()
		in.PanoramaPoint = nil
		fx.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(lagosAddress, nil).Maybe()
		fx.locator.EXPECT().Locate(mock.Anything, mock.Anything).Return(nil, false, domainerrors.ErrResolutionFailed)

		_, err := fx.service.VerifyAddress(context.Background(), in)
		assert.True(t, errors.Is(err, domainerrors.ErrResolutionFailed))
	})

	t.Run("store refuses", func(t *testing.T) {
		fx := createTestVerificationService(t)
		fx.geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(lagosAddress, nil)
		fx.imagery.EXPECT().StaticImageURL(mock.Anything, mock.Anything).Return("static://pano")
		fx.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.NewDatabaseExecuteError(errors.New("down"), "insert"))

		_, err := fx.service.VerifyAddress(context.Background(), input())
		assert.Error(t, err)
		fx.publisher.AssertNotCalled(t, "PublishVerificationEvent", mock.Anything, mock.Anything)
	})
}

func TestVerificationService_VerifyAddress_ValidationBeforeProviders(t *testing.T) {
	bad := geo.NewPoint(95, 3)

	tests := []struct {
		name  string
		input *usecase.VerifyAddressInput
	}{
		{"nil input", nil},
		{"missing subject", &usecase.VerifyAddressInput{InputAddress: "a", DevicePoint: lagosDevice}},
		{"missing address", &usecase.VerifyAddressInput{SubjectID: "s", InputAddress: "  ", DevicePoint: lagosDevice}},
		{"device out of range", &usecase.VerifyAddressInput{SubjectID: "s", InputAddress: "a", DevicePoint: bad}},
		{"panorama out of range", &usecase.VerifyAddressInput{SubjectID: "s", InputAddress: "a", DevicePoint: lagosDevice, PanoramaPoint: &bad}},
		{"negative accuracy", &usecase.VerifyAddressInput{SubjectID: "s", InputAddress: "a", DevicePoint: lagosDevice, DeviceAccuracy: float(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVerificationService(t)

			record, err := fx.service.VerifyAddress(context.Background(), tt.input)
			assert.Nil(t, record)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestVerificationService_GetAndList(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	record := &entity.VerificationRecord{ID: fixedID, SubjectID: "22222222222", ImageURL: "static://pano"}

	fx.repo.EXPECT().FindByID(ctx, fixedID).Return(record, nil)
	fx.repo.EXPECT().FindBySubject(ctx, "22222222222", 20).Return([]*entity.VerificationRecord{record}, nil)

	got, err := fx.service.GetVerification(ctx, fixedID, "22222222222")
	require.NoError(t, err)
	assert.Equal(t, fixedID, got.ID)
	assert.Equal(t, "static://pano&key=test-key", got.ImageURL)
	assert.Equal(t, "static://pano", record.ImageURL, "the stored record is not modified")

	list, err := fx.service.ListSubjectVerifications(ctx, "22222222222", 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "static://pano&key=test-key", list[0].ImageURL)

	_, err = fx.service.GetVerification(ctx, uuid.Nil, "22222222222")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.GetVerification(ctx, fixedID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.ListSubjectVerifications(ctx, "", 20)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVerificationService_GetVerification_OtherSubject(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	record := &entity.VerificationRecord{ID: fixedID, SubjectID: "22222222222", Outcome: policy.OutcomeApproved}

	fx.repo.EXPECT().FindByID(ctx, fixedID).Return(record, nil).Times(2)

	got, err := fx.service.GetVerification(ctx, fixedID, "33333333333")
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationNotFound))

	png, err := fx.service.GenerateReceipt(ctx, fixedID, "33333333333")
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationNotFound))
}

func TestVerificationService_Receipts(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	record := &entity.VerificationRecord{
		ID:           fixedID,
		SubjectID:    "22222222222",
		InputAddress: "12 Allen Avenue, Ikeja, Lagos",
		Outcome:      policy.OutcomeApproved,
		CreatedAt:    createdAt,
	}

	fx.repo.EXPECT().FindByID(ctx, fixedID).Return(record, nil).Times(3)
	fx.qrcode.EXPECT().
		GenerateReceiptQR(service.Receipt{VerificationID: fixedID, Outcome: policy.OutcomeApproved}).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	fx.qrcode.EXPECT().ParseReceiptQR("genuine").
		Return(service.Receipt{VerificationID: fixedID, Outcome: policy.OutcomeApproved}, nil)
	fx.qrcode.EXPECT().ParseReceiptQR("forged").
		Return(service.Receipt{VerificationID: fixedID, Outcome: policy.OutcomeRejected}, nil)
	fx.qrcode.EXPECT().ParseReceiptQR("garbage").Return(service.Receipt{}, domainerrors.ErrReceiptInvalid)

	png, err := fx.service.GenerateReceipt(ctx, fixedID, "22222222222")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	check, err := fx.service.VerifyReceipt(ctx, "genuine")
	require.NoError(t, err)
	assert.True(t, check.Matches)
	assert.Equal(t, createdAt, check.RecordedAt)

	body, err := json.Marshal(check)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "22222222222")
	assert.NotContains(t, string(body), "Allen Avenue")

	// A forged outcome is reported against the stored one
	check, err = fx.service.VerifyReceipt(ctx, "forged")
	require.NoError(t, err)
	assert.False(t, check.Matches)
	assert.Equal(t, policy.OutcomeApproved, check.Outcome)

	_, err = fx.service.VerifyReceipt(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrReceiptInvalid))
}
