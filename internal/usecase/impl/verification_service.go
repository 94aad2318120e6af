package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"trustscore/config"
	deliverycontext "trustscore/internal/delivery/context"
	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/repository"
	"trustscore/internal/domain/service"
	"trustscore/internal/domain/verification"
	"trustscore/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type verificationService struct {
	geocoder      service.Geocoder
	locator       service.PanoramaLocator
	engine        *verification.Engine
	imagery       service.ImageryURLBuilder
	repo          repository.VerificationRepository
	publisher     service.EventPublisher
	qrcode        service.QRCodeService
	defaultRadius float64
	logger        *slog.Logger
}

// NewVerificationService creates a new verification service instance
func NewVerificationService(
	geocoder service.Geocoder,
	locator service.PanoramaLocator,
	engine *verification.Engine,
	imagery service.ImageryURLBuilder,
	repo repository.VerificationRepository,
	publisher service.EventPublisher,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	return &verificationService{
		geocoder:      geocoder,
		locator:       locator,
		engine:        engine,
		imagery:       imagery,
		repo:          repo,
		publisher:     publisher,
		qrcode:        qrcode,
		defaultRadius: cfg.Google.SearchRadiusMeters,
		logger:        logger,
	}
}

// VerifyAddress geocodes the claimed address and, when no capture was confirmed, looks for a
// panorama near the device concurrently. The decided record is stored before it is published.
func (s *verificationService) VerifyAddress(ctx context.Context, input *usecase.VerifyAddressInput) (*entity.VerificationRecord, error) {
	if err := validateVerifyInput(input); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	address := strings.TrimSpace(input.InputAddress)

	var (
		addressPoint  geo.Point
		panoramaPoint = input.PanoramaPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		point, err := s.geocoder.Geocode(gctx, address)
		if err != nil {
			return err
		}
		addressPoint = point

		return nil
	})
	if panoramaPoint == nil {
		g.Go(func() error {
			panorama, found, err := s.locator.Locate(gctx, service.PanoramaQuery{
				Near:         input.DevicePoint,
				RadiusMeters: s.defaultRadius,
				Heading:      input.Heading,
				Pitch:        service.DefaultPitch,
				FieldOfView:  service.DefaultFieldOfView,
			})
			if err != nil {
				return err
			}
			if found {
				point := panorama.Location
				panoramaPoint = &point
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	record, err := s.engine.Decide(verification.DecisionInput{
		SubjectID:      input.SubjectID,
		InputAddress:   address,
		AddressPoint:   addressPoint,
		DevicePoint:    input.DevicePoint,
		DeviceAccuracy: input.DeviceAccuracy,
		PanoramaPoint:  panoramaPoint,
		Heading:        input.Heading,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Verification recorded",
		slog.String("verification_id", record.ID.String()),
		slog.String("outcome", string(record.Outcome)),
		slog.Float64("distance_meters", record.DistanceMeters),
		slog.Bool("panorama_found", record.PanoramaFound),
	)

	// The record is already stored; a failed publish only delays archiving.
	if err := s.publisher.PublishVerificationEvent(ctx, toVerificationEvent(ctx, record)); err != nil {
		logger.Error("Failed to publish verification event",
			slog.String("verification_id", record.ID.String()),
			slog.Any("error", err),
		)
	}

	return s.served(record), nil
}

// GetVerification retrieves a stored record of the subject
func (s *verificationService) GetVerification(ctx context.Context, id uuid.UUID, subjectID string) (*entity.VerificationRecord, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("verification id is required")
	}
	if subjectID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subject is required")
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Same answer as a missing id so record ids cannot be probed across subjects
	if record.SubjectID != subjectID {
		return nil, domainerrors.ErrVerificationNotFound
	}

	return s.served(record), nil
}

// ListSubjectVerifications retrieves the latest records of a subject
func (s *verificationService) ListSubjectVerifications(ctx context.Context, subjectID string, limit int) ([]*entity.VerificationRecord, error) {
	if subjectID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subject is required")
	}

	records, err := s.repo.FindBySubject(ctx, subjectID, limit)
	if err != nil {
		return nil, err
	}

	served := make([]*entity.VerificationRecord, len(records))
	for i, record := range records {
		served[i] = s.served(record)
	}

	return served, nil
}

// served returns a copy of a stored record whose image URL carries the API key
func (s *verificationService) served(record *entity.VerificationRecord) *entity.VerificationRecord {
	out := *record
	out.ImageURL = s.imagery.WithAPIKey(record.ImageURL)

	return &out
}

// GenerateReceipt renders the QR receipt of a stored record of the subject
func (s *verificationService) GenerateReceipt(ctx context.Context, id uuid.UUID, subjectID string) ([]byte, error) {
	record, err := s.GetVerification(ctx, id, subjectID)
	if err != nil {
		return nil, err
	}

	return s.qrcode.GenerateReceiptQR(service.Receipt{VerificationID: record.ID, Outcome: record.Outcome})
}

// VerifyReceipt parses a scanned receipt and compares it with the stored record
func (s *verificationService) VerifyReceipt(ctx context.Context, payload string) (*usecase.ReceiptCheck, error) {
	receipt, err := s.qrcode.ParseReceiptQR(payload)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.FindByID(ctx, receipt.VerificationID)
	if err != nil {
		return nil, err
	}

	return &usecase.ReceiptCheck{
		VerificationID: receipt.VerificationID,
		Outcome:        record.Outcome,
		RecordedAt:     record.CreatedAt,
		Matches:        record.Outcome == receipt.Outcome,
	}, nil
}

func validateVerifyInput(input *usecase.VerifyAddressInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("verification input is required")
	case input.SubjectID == "":
		return domainerrors.ErrValidationFailed.WithDetails("subject is required")
	case strings.TrimSpace(input.InputAddress) == "":
		return domainerrors.ErrValidationFailed.WithDetails("input_address is required")
	case !input.DevicePoint.Valid():
		return domainerrors.ErrValidationFailed.WithDetails("device coordinates are out of range")
	case input.PanoramaPoint != nil && !input.PanoramaPoint.Valid():
		return domainerrors.ErrValidationFailed.WithDetails("panorama coordinates are out of range")
	case input.DeviceAccuracy != nil && (*input.DeviceAccuracy < 0 || math.IsNaN(*input.DeviceAccuracy)):
		return domainerrors.ErrValidationFailed.WithDetails("device_accuracy must be a non-negative number")
	}

	return nil
}

func toVerificationEvent(ctx context.Context, record *entity.VerificationRecord) *service.VerificationEvent {
	return &service.VerificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		VerificationID: record.ID.String(),
		SubjectID:      record.SubjectID,
		InputAddress:   record.InputAddress,
		AddressLat:     record.AddressPoint.Lat,
		AddressLng:     record.AddressPoint.Lng,
		DeviceLat:      record.DevicePoint.Lat,
		DeviceLng:      record.DevicePoint.Lng,
		DeviceAccuracy: record.DeviceAccuracy,
		PanoramaLat:    record.PanoramaPoint.Lat,
		PanoramaLng:    record.PanoramaPoint.Lng,
		Heading:        record.Heading,
		DistanceMeters: record.DistanceMeters,
		ImageURL:       record.ImageURL,
		Outcome:        string(record.Outcome),
		CreatedAt:      record.CreatedAt,
	}
}
