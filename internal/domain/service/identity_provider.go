package service

import (
	"context"

	"trustscore/internal/domain/entity"
)

// IdentityProvider looks up a subject by BVN.
type IdentityProvider interface {
	// LookupBVN returns the subject profile. It fails with ErrIdentityNotFound when the provider
	// has no match and ErrIdentityLookupFailed on any other provider failure.
	LookupBVN(ctx context.Context, bvn string) (*entity.IdentityProfile, error)
}
