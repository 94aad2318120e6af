package handler

import (
	"log/slog"
	"net/http"

	"trustscore/internal/delivery/http/response"
	"trustscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// IdentityHandler serves the BVN step of the wizard
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// VerifyKYCRequest is the body of POST /verifykyc
type VerifyKYCRequest struct {
	BVN string `json:"bvn" validate:"required"`
}

// VerifyKYC looks up the BVN holder and returns their profile with a session token
func (h *IdentityHandler) VerifyKYC(c echo.Context) error {
	var req VerifyKYCRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.identityUC.VerifyBVN(c.Request().Context(), req.BVN)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "Identity verified")
}
