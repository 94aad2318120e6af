// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"
	"trustscore/internal/domain/repository"
	"trustscore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultListLimit = 50

// verificationRepository implements the repository.VerificationRepository interface.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{
		db: db,
	}
}

// Create inserts a record after re-checking its derived fields.
func (repo *verificationRepository) Create(ctx context.Context, record *entity.VerificationRecord) error {
	if record == nil {
		return domainerrors.ErrValidationFailed.WithDetails("record is required")
	}
	if err := record.CheckInvariants(); err != nil {
		return err
	}

	recordM := fromVerificationDomain(record)
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvariantViolation.WrapMessage("verification id already recorded")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvariantViolation.Wrap(err, "verification record rejected by database")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification record")
	}

	return nil
}

// FindByID retrieves a record by its unique ID.
func (repo *verificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VerificationRecord, error) {
	var recordM model.VerificationRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification by ID")
	}

	return toVerificationDomain(&recordM), nil
}

// FindBySubject retrieves the latest records of a subject.
func (repo *verificationRepository) FindBySubject(ctx context.Context, subjectID string, limit int) ([]*entity.VerificationRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var recordModels []*model.VerificationRecordModel
	if err := repo.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find verifications by subject")
	}

	records := make([]*entity.VerificationRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toVerificationDomain(recordM))
	}

	return records, nil
}

func fromVerificationDomain(record *entity.VerificationRecord) *model.VerificationRecordModel {
	return &model.VerificationRecordModel{
		ID:             record.ID,
		SubjectID:      record.SubjectID,
		InputAddress:   record.InputAddress,
		AddressLat:     record.AddressPoint.Lat,
		AddressLng:     record.AddressPoint.Lng,
		DeviceLat:      record.DevicePoint.Lat,
		DeviceLng:      record.DevicePoint.Lng,
		DeviceAccuracy: copyFloat(record.DeviceAccuracy),
		PanoramaLat:    record.PanoramaPoint.Lat,
		PanoramaLng:    record.PanoramaPoint.Lng,
		PanoramaFound:  record.PanoramaFound,
		Heading:        record.Heading,
		DistanceMeters: record.DistanceMeters,
		ImageURL:       record.ImageURL,
		Outcome:        string(record.Outcome),
		CreatedAt:      record.CreatedAt,
	}
}

func toVerificationDomain(recordM *model.VerificationRecordModel) *entity.VerificationRecord {
	return &entity.VerificationRecord{
		ID:             recordM.ID,
		SubjectID:      recordM.SubjectID,
		InputAddress:   recordM.InputAddress,
		AddressPoint:   geo.NewPoint(recordM.AddressLat, recordM.AddressLng),
		DevicePoint:    geo.NewPoint(recordM.DeviceLat, recordM.DeviceLng),
		DeviceAccuracy: copyFloat(recordM.DeviceAccuracy),
		PanoramaPoint:  geo.NewPoint(recordM.PanoramaLat, recordM.PanoramaLng),
		PanoramaFound:  recordM.PanoramaFound,
		Heading:        recordM.Heading,
		DistanceMeters: recordM.DistanceMeters,
		ImageURL:       recordM.ImageURL,
		Outcome:        policy.Outcome(recordM.Outcome),
		CreatedAt:      recordM.CreatedAt.UTC(),
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v

	return &c
}
