package usecase

import (
	"context"

	"trustscore/internal/domain/entity"
	"trustscore/internal/domain/geo"
)

// GeocodeInput carries either a free-text address or a structured claim; Address wins when set
type GeocodeInput struct {
	Address string
	Claim   entity.AddressClaim
}

// GeocodeResult is a resolved address
type GeocodeResult struct {
	Address string    `json:"address"`
	Point   geo.Point `json:"point"`
}

// PanoramaSearchInput asks for street-level coverage near a point. Nil camera fields take defaults.
type PanoramaSearchInput struct {
	Point        geo.Point
	Heading      *float64
	Pitch        *float64
	FieldOfView  *float64
	RadiusMeters float64
}

// PanoramaSearchResult describes what the capture step should display
type PanoramaSearchResult struct {
	Panorama      *entity.PanoramaReference `json:"panorama,omitempty"`
	PanoramaFound bool                      `json:"panorama_found"`
	Location      geo.Point                 `json:"location"`
	Heading       float64                   `json:"heading"`
	Pitch         float64                   `json:"pitch"`
	FieldOfView   float64                   `json:"fov"`
	EmbedURL      string                    `json:"embed_url"`
}

// CaptureResult is the confirmed panorama capture
type CaptureResult struct {
	PanoramaPoint geo.Point `json:"panorama_point"`
	Heading       float64   `json:"heading"`
	ImageURL      string    `json:"image_url"`
}

// LocationUsecase defines the geocoding and Street View steps of the verification wizard
type LocationUsecase interface {
	GeocodeAddress(ctx context.Context, input *GeocodeInput) (*GeocodeResult, error)
	SearchPanorama(ctx context.Context, input *PanoramaSearchInput) (*PanoramaSearchResult, error)
	ConfirmCapture(ctx context.Context, panoramaPoint geo.Point, heading float64) (*CaptureResult, error)
}
