package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the wizard state between verification steps.
type SessionClaims struct {
	SubjectID string `json:"sid"`
	FullName  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionService issues and validates verification session tokens.
type SessionService interface {
	// Issue signs a session for subjectID and returns the token and its expiry.
	Issue(subjectID, fullName string) (token string, expiresAt time.Time, err error)

	// Validate parses a token and returns its claims. It fails with ErrSessionInvalid.
	Validate(token string) (*SessionClaims, error)
}
