// Package handler holds the echo handlers of the verification wizard.
package handler

import (
	"net/http"

	"trustscore/internal/delivery/http/response"
	domainerrors "trustscore/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate decodes the request body into req and runs its validate tags.
// Both failures surface as ErrValidationFailed so no provider is called.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
