package service

import (
	"context"

	"trustscore/internal/domain/entity"
	"trustscore/internal/domain/geo"
)

// PanoramaQuery asks for the nearest surveyed panorama around an approximate point.
type PanoramaQuery struct {
	Near         geo.Point
	RadiusMeters float64
	Heading      float64
	Pitch        float64
	FieldOfView  float64
}

// PanoramaLocator finds street-level imagery coverage.
type PanoramaLocator interface {
	// Locate returns the nearest panorama within the query radius. found is false, with a nil
	// error, when the radius has no coverage.
	Locate(ctx context.Context, query PanoramaQuery) (panorama *entity.PanoramaReference, found bool, err error)
}
