package usecase

import (
	"context"
	"time"

	"trustscore/internal/domain/entity"
)

// IdentityVerification is the result of a successful BVN lookup
type IdentityVerification struct {
	Profile          *entity.IdentityProfile `json:"profile"`
	SessionToken     string                  `json:"session_token"`
	SessionExpiresAt time.Time               `json:"session_expires_at"`
}

// IdentityUsecase defines the identity step of the verification wizard
type IdentityUsecase interface {
	// VerifyBVN looks up the BVN holder and opens a verification session for them
	VerifyBVN(ctx context.Context, bvn string) (*IdentityVerification, error)
}
