// Package verification turns resolved verification inputs into immutable records.
package verification

import (
	"time"

	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"
	"trustscore/internal/domain/service"

	"github.com/google/uuid"
)

// DecisionInput holds everything the engine needs once the address has been geocoded.
// PanoramaPoint is nil when no panorama was resolved; the device point is used in its place.
type DecisionInput struct {
	SubjectID      string
	InputAddress   string
	AddressPoint   geo.Point
	DevicePoint    geo.Point
	DeviceAccuracy *float64
	PanoramaPoint  *geo.Point
	Heading        float64
}

// Engine derives distance, image URL and outcome and assembles the record.
type Engine struct {
	imagery service.ImageryURLBuilder
	now     func() time.Time
	newID   func() uuid.UUID
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the record timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides the record id source.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// NewEngine creates a decision engine rendering image URLs with imagery.
func NewEngine(imagery service.ImageryURLBuilder, opts ...Option) *Engine {
	engine := &Engine{
		imagery: imagery,
		now:     time.Now,
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Decide validates the inputs and returns a new record. Identical inputs always produce the same
// distance and outcome; only the id and timestamp differ between calls.
func (e *Engine) Decide(input DecisionInput) (*entity.VerificationRecord, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	panoramaPoint := input.DevicePoint
	panoramaFound := false
	if input.PanoramaPoint != nil {
		panoramaPoint = *input.PanoramaPoint
		panoramaFound = true
	}

	heading := geo.NormalizeHeading(input.Heading)
	distance := geo.Distance(input.AddressPoint, input.DevicePoint)

	var accuracy *float64
	if input.DeviceAccuracy != nil {
		v := *input.DeviceAccuracy
		accuracy = &v
	}

	record := &entity.VerificationRecord{
		ID:             e.newID(),
		SubjectID:      input.SubjectID,
		InputAddress:   input.InputAddress,
		AddressPoint:   input.AddressPoint,
		DevicePoint:    input.DevicePoint,
		DeviceAccuracy: accuracy,
		PanoramaPoint:  panoramaPoint,
		PanoramaFound:  panoramaFound,
		Heading:        heading,
		DistanceMeters: distance,
		ImageURL:       e.imagery.StaticImageURL(panoramaPoint, service.DefaultImageParams(heading)),
		Outcome:        policy.Decide(distance, accuracy),
		CreatedAt:      e.now().UTC(),
	}

	if err := record.CheckInvariants(); err != nil {
		return nil, err
	}

	return record, nil
}

func validateInput(input DecisionInput) error {
	switch {
	case input.SubjectID == "":
		return domainerrors.ErrValidationFailed.WrapMessage("subject id is required")
	case !input.AddressPoint.Valid():
		return domainerrors.ErrValidationFailed.WrapMessage("address point is out of range")
	case !input.DevicePoint.Valid():
		return domainerrors.ErrValidationFailed.WrapMessage("device point is out of range")
	case input.PanoramaPoint != nil && !input.PanoramaPoint.Valid():
		return domainerrors.ErrValidationFailed.WrapMessage("panorama point is out of range")
	}

	return nil
}
