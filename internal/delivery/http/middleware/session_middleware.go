package middleware

import (
	"strings"

	"trustscore/internal/delivery/http/response"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeySession is the echo.Context key holding the validated *service.SessionClaims.
const ContextKeySession = "session"

// SessionMiddleware guards wizard steps that need a verified identity.
type SessionMiddleware struct {
	sessions service.SessionService
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions service.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Authenticate validates the Bearer session token and stores its claims on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authorization header is missing")
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.sessions.Validate(token)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), domainerrors.ErrSessionInvalid.Message())
		}

		c.Set(ContextKeySession, claims)

		return next(c)
	}
}

// SessionFromContext returns the claims stored by Authenticate.
func SessionFromContext(c echo.Context) (*service.SessionClaims, bool) {
	claims, ok := c.Get(ContextKeySession).(*service.SessionClaims)

	return claims, ok && claims != nil
}
