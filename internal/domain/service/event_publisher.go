package service

import (
	"context"
	"time"
)

// VerificationEvent is published after a verification record has been stored.
type VerificationEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	VerificationID string    `json:"verification_id"`
	SubjectID      string    `json:"subject_id"`
	InputAddress   string    `json:"input_address"`
	AddressLat     float64   `json:"address_lat"`
	AddressLng     float64   `json:"address_lng"`
	DeviceLat      float64   `json:"device_lat"`
	DeviceLng      float64   `json:"device_lng"`
	DeviceAccuracy *float64  `json:"device_accuracy,omitempty"`
	PanoramaLat    float64   `json:"panorama_lat"`
	PanoramaLng    float64   `json:"panorama_lng"`
	Heading        float64   `json:"heading"`
	DistanceMeters float64   `json:"distance_meters"`
	ImageURL       string    `json:"image_url"`
	Outcome        string    `json:"outcome"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVerificationEvent publishes a recorded verification for async archiving
	PublishVerificationEvent(ctx context.Context, event *VerificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
