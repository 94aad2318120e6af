// Package auth provides the session token implementation for the verification wizard.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"trustscore/config"
	"trustscore/internal/domain/errors"
	"trustscore/internal/domain/service"
)

const sessionIssuer = "trustscore"

// sessionService signs wizard sessions as HS256 JWTs.
type sessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(cfg *config.Config) (service.SessionService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.ErrInternalError.WithDetails("session secret must be provided")
	}

	return &sessionService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// Issue signs a session for the subject that expires after the configured TTL.
func (s *sessionService) Issue(subjectID, fullName string) (string, time.Time, error) {
	if subjectID == "" {
		return "", time.Time{}, errors.ErrValidationFailed.WithDetails("subject is required")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := &service.SessionClaims{
		SubjectID: subjectID,
		FullName:  fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    sessionIssuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.ErrInternalError.Wrap(err, "sign session")
	}

	return token, expiresAt, nil
}

// Validate checks the signature, issuer and expiry of a session token.
func (s *sessionService) Validate(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, errors.ErrSessionInvalid.Wrap(err, "validate session")
	}

	if claims.SubjectID == "" {
		return nil, errors.ErrSessionInvalid.WithDetails("session has no subject")
	}

	return claims, nil
}
