package entity

import "trustscore/internal/domain/geo"

// PanoramaReference is a surveyed street-level imagery point and the camera used to view it.
type PanoramaReference struct {
	PanoID      string    `json:"pano_id,omitempty"`
	Location    geo.Point `json:"location"`
	Heading     float64   `json:"heading"`
	Pitch       float64   `json:"pitch"`
	FieldOfView float64   `json:"fov"`
	CapturedOn  string    `json:"captured_on,omitempty"` // Provider capture date, e.g. "2023-04".
}
