// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trustscore/internal/delivery/http/middleware"
	"trustscore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler     *handler.IdentityHandler
	LocationHandler     *handler.LocationHandler
	VerificationHandler *handler.VerificationHandler
	DocumentHandler     *handler.DocumentHandler
	SessionMiddleware   *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler     *handler.IdentityHandler
	locationHandler     *handler.LocationHandler
	verificationHandler *handler.VerificationHandler
	documentHandler     *handler.DocumentHandler
	sessionMiddleware   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler:     params.IdentityHandler,
		locationHandler:     params.LocationHandler,
		verificationHandler: params.VerificationHandler,
		documentHandler:     params.DocumentHandler,
		sessionMiddleware:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Wizard steps
	e.POST("/verifykyc", r.identityHandler.VerifyKYC)
	e.POST("/geocode", r.locationHandler.Geocode)
	e.POST("/search-location", r.locationHandler.SearchLocation)
	e.POST("/confirm-capture", r.locationHandler.ConfirmCapture)
	e.POST("/verify-address", r.verificationHandler.VerifyAddress, r.sessionMiddleware.Authenticate)

	// Records and receipts
	e.GET("/verifications", r.verificationHandler.ListVerifications, r.sessionMiddleware.Authenticate)
	e.GET("/verifications/:id", r.verificationHandler.GetVerification, r.sessionMiddleware.Authenticate)
	e.GET("/verifications/:id/receipt", r.verificationHandler.GetReceipt, r.sessionMiddleware.Authenticate)
	e.POST("/receipts/verify", r.verificationHandler.VerifyReceipt)

	// OCR uploads
	e.POST("/upload", r.documentHandler.Upload)
	e.POST("/upload-utility-bill", r.documentHandler.Upload)
}
