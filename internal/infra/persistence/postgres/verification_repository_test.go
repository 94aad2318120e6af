package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"trustscore/config"
	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"
	"trustscore/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func lagosRecord() *entity.VerificationRecord {
	address := geo.NewPoint(6.5244, 3.3792)
	device := geo.NewPoint(6.5248, 3.3795)
	accuracy := 30.0
	distance := geo.Distance(address, device)

	return &entity.VerificationRecord{
		ID:             uuid.New(),
		SubjectID:      "22222222222",
		InputAddress:   "12B Allen Avenue, Ikeja, Lagos",
		AddressPoint:   address,
		DevicePoint:    device,
		DeviceAccuracy: &accuracy,
		PanoramaPoint:  geo.NewPoint(6.5245, 3.3793),
		PanoramaFound:  true,
		Heading:        45,
		DistanceMeters: distance,
		ImageURL:       "https://maps.example/streetview",
		Outcome:        policy.Decide(distance, &accuracy),
		CreatedAt:      time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestVerificationMapping_RoundTrip(t *testing.T) {
	record := lagosRecord()

	recordM := fromVerificationDomain(record)
	assert.Equal(t, "pending", recordM.Outcome)
	assert.InDelta(t, 6.5248, recordM.DeviceLat, 1e-12)

	back := toVerificationDomain(recordM)
	assert.Equal(t, record, back)
	require.NoError(t, back.CheckInvariants())

	// accuracy is copied, not shared
	*recordM.DeviceAccuracy = 99
	assert.InDelta(t, 30.0, *record.DeviceAccuracy, 1e-12)
}

func TestVerificationMapping_NilAccuracy(t *testing.T) {
	record := lagosRecord()
	record.DeviceAccuracy = nil
	record.Outcome = policy.Decide(record.DistanceMeters, nil)

	back := toVerificationDomain(fromVerificationDomain(record))
	assert.Nil(t, back.DeviceAccuracy)
}

func TestVerificationRepository_CreateRefusesInconsistentRecords(t *testing.T) {
	// The invariant check runs before any statement is issued, so no database is needed.
	repo := NewVerificationRepository(nil)

	tampered := lagosRecord()
	tampered.Outcome = policy.OutcomeApproved
	err := repo.Create(context.Background(), tampered)
	assert.True(t, errors.Is(err, domainerrors.ErrInvariantViolation))

	moved := lagosRecord()
	moved.DistanceMeters = 10
	err = repo.Create(context.Background(), moved)
	assert.True(t, errors.Is(err, domainerrors.ErrInvariantViolation))

	err = repo.Create(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isCheckConstraintViolation(errors.New(`ERROR: new row violates check constraint (SQLSTATE 23514)`)))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "subject_id"`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}

	l := newGormSlogLogger(base, cfg)
	longSQL := "INSERT INTO verification_records VALUES ('" + strings.Repeat("x", 2*maxLoggedSQLLength) + "')"

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return longSQL, 0 }, errors.New("boom"))
	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, `"component":"gorm"`)
	assert.NotContains(t, out, longSQL)

	buf.Reset()
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	buf.Reset()
	l.LogMode(logger.Info).Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Contains(t, buf.String(), "GORM query")
}
