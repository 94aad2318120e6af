package service

import "trustscore/internal/domain/geo"

const (
	DefaultPitch       = 0.0
	DefaultFieldOfView = 90.0
)

// ImageParams is the camera used to render a panorama.
type ImageParams struct {
	Heading     float64
	Pitch       float64
	FieldOfView float64
}

// DefaultImageParams returns a level camera with a 90 degree field of view.
func DefaultImageParams(heading float64) ImageParams {
	return ImageParams{Heading: heading, Pitch: DefaultPitch, FieldOfView: DefaultFieldOfView}
}

// ImageryURLBuilder renders deterministic panorama URLs. Implementations perform no I/O.
type ImageryURLBuilder interface {
	// StaticImageURL returns a still image URL for the panorama at point. The URL carries no
	// API key so it can be stored and forwarded; pass it through WithAPIKey before serving it.
	StaticImageURL(point geo.Point, params ImageParams) string

	// EmbedURL returns an interactive viewer URL for the panorama at point, ready to serve.
	EmbedURL(point geo.Point, params ImageParams) string

	// WithAPIKey appends the provider key to a URL built by StaticImageURL. Empty URLs stay empty.
	WithAPIKey(rawURL string) string
}
