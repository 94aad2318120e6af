package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "trustscore/internal/delivery/context"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/service"
	"trustscore/internal/usecase"
)

const bvnLength = 11

type identityService struct {
	provider service.IdentityProvider
	sessions service.SessionService
	logger   *slog.Logger
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(provider service.IdentityProvider, sessions service.SessionService, logger *slog.Logger) usecase.IdentityUsecase {
	return &identityService{
		provider: provider,
		sessions: sessions,
		logger:   logger,
	}
}

// VerifyBVN looks up the BVN and issues a session bound to it
func (s *identityService) VerifyBVN(ctx context.Context, bvn string) (*usecase.IdentityVerification, error) {
	bvn = strings.TrimSpace(bvn)
	if err := validateBVN(bvn); err != nil {
		return nil, err
	}

	profile, err := s.provider.LookupBVN(ctx, bvn)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.sessions.Issue(bvn, profile.FullName())
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Identity verified, session issued",
		slog.Time("session_expires_at", expiresAt),
	)

	return &usecase.IdentityVerification{
		Profile:          profile,
		SessionToken:     token,
		SessionExpiresAt: expiresAt,
	}, nil
}

func validateBVN(bvn string) error {
	if bvn == "" {
		return domainerrors.ErrValidationFailed.WithDetails("bvn is required")
	}
	if len(bvn) != bvnLength {
		return domainerrors.ErrValidationFailed.WithDetails("bvn must have 11 digits")
	}
	for _, r := range bvn {
		if r < '0' || r > '9' {
			return domainerrors.ErrValidationFailed.WithDetails("bvn must have 11 digits")
		}
	}

	return nil
}
