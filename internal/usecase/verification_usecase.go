package usecase

import (
	"context"
	"time"

	"trustscore/internal/domain/entity"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"

	"github.com/google/uuid"
)

// VerifyAddressInput is a verification attempt for the session subject.
// PanoramaPoint is nil when the user did not confirm a capture.
type VerifyAddressInput struct {
	SubjectID      string
	InputAddress   string
	DevicePoint    geo.Point
	DeviceAccuracy *float64
	PanoramaPoint  *geo.Point
	Heading        float64
}

// ReceiptCheck is the result of checking a scanned receipt against the stored record.
// It is shown to whoever holds the receipt, so it carries no subject, address or coordinates.
type ReceiptCheck struct {
	VerificationID uuid.UUID      `json:"verification_id"`
	Outcome        policy.Outcome `json:"outcome"`
	RecordedAt     time.Time      `json:"recorded_at"`
	Matches        bool           `json:"matches"`
}

// VerificationUsecase defines the decision step and record access
type VerificationUsecase interface {
	// VerifyAddress resolves the address, decides, stores and publishes a new record
	VerifyAddress(ctx context.Context, input *VerifyAddressInput) (*entity.VerificationRecord, error)

	// GetVerification returns a record owned by subjectID; other subjects' records are reported as not found
	GetVerification(ctx context.Context, id uuid.UUID, subjectID string) (*entity.VerificationRecord, error)
	ListSubjectVerifications(ctx context.Context, subjectID string, limit int) ([]*entity.VerificationRecord, error)

	// GenerateReceipt renders the QR receipt of a record owned by subjectID
	GenerateReceipt(ctx context.Context, id uuid.UUID, subjectID string) ([]byte, error)
	// VerifyReceipt checks a scanned receipt payload against the stored record
	VerifyReceipt(ctx context.Context, payload string) (*ReceiptCheck, error)
}
