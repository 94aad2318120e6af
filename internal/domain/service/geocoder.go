// Package service defines interfaces for the external collaborators and stateless helpers
// the verification use cases depend on.
package service

import (
	"context"

	"trustscore/internal/domain/geo"
)

// Geocoder resolves a free-text address to a coordinate.
type Geocoder interface {
	// Geocode returns the best match for address. It fails with ErrResolutionFailed when the
	// provider reports no results or a non-success status.
	Geocode(ctx context.Context, address string) (geo.Point, error)
}
