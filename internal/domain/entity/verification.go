package entity

import (
	"math"
	"time"

	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"

	"github.com/google/uuid"
)

// distanceTolerance absorbs float round-trips through storage (decimal columns).
const distanceTolerance = 0.01

// VerificationRecord is the append-only audit entry produced by one verification attempt.
// Records are created by the decision engine and never updated; a correction is a new record.
type VerificationRecord struct {
	ID             uuid.UUID      `json:"id"`
	SubjectID      string         `json:"subject_id"`    // External identity reference (BVN).
	InputAddress   string         `json:"input_address"` // Flattened address claim.
	AddressPoint   geo.Point      `json:"address_point"`
	DevicePoint    geo.Point      `json:"device_point"`
	DeviceAccuracy *float64       `json:"device_accuracy"` // Meters; nil when the device did not report one.
	PanoramaPoint  geo.Point      `json:"panorama_point"`
	PanoramaFound  bool           `json:"panorama_found"` // False when the device point stood in for the panorama.
	Heading        float64        `json:"heading"`
	DistanceMeters float64        `json:"distance_meters"`
	ImageURL       string         `json:"image_url"`
	Outcome        policy.Outcome `json:"outcome"`
	CreatedAt      time.Time      `json:"created_at"`
}

// CheckInvariants verifies that the derived fields still match their inputs.
func (r *VerificationRecord) CheckInvariants() error {
	if r.ID == uuid.Nil {
		return domainerrors.ErrInvariantViolation.WrapMessage("record has no id")
	}

	if !r.AddressPoint.Valid() || !r.DevicePoint.Valid() || !r.PanoramaPoint.Valid() {
		return domainerrors.ErrInvariantViolation.WrapMessage("record holds an out-of-range coordinate")
	}

	want := geo.Distance(r.AddressPoint, r.DevicePoint)
	if math.Abs(want-r.DistanceMeters) > distanceTolerance {
		return domainerrors.ErrInvariantViolation.WrapMessage("distance is not derived from address and device points")
	}

	if !r.Outcome.Valid() || r.Outcome != policy.Decide(r.DistanceMeters, r.DeviceAccuracy) {
		return domainerrors.ErrInvariantViolation.WrapMessage("outcome is not derived from the verification policy")
	}

	return nil
}
