package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"trustscore/internal/delivery/http/middleware"
	"trustscore/internal/delivery/http/response"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxListLimit caps GET /verifications page sizes.
const maxListLimit = 200

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// VerificationHandler serves the decision step, record lookups and receipts
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{
		verificationUC: params.VerificationUC,
		logger:         params.Logger,
	}
}

// VerifyAddressRequest is the body of POST /verify-address. The panorama point is
// optional but its two coordinates must come together.
type VerifyAddressRequest struct {
	InputAddress   string   `json:"input_address" validate:"required"`
	DeviceLat      *float64 `json:"device_lat" validate:"required,min=-90,max=90"`
	DeviceLng      *float64 `json:"device_lng" validate:"required,min=-180,max=180"`
	DeviceAccuracy *float64 `json:"device_accuracy" validate:"omitempty,min=0"`
	PanoLat        *float64 `json:"pano_lat" validate:"omitempty,min=-90,max=90"`
	PanoLng        *float64 `json:"pano_lng" validate:"omitempty,min=-180,max=180"`
	Heading        *float64 `json:"heading"`
}

// VerifyReceiptRequest is the body of POST /receipts/verify
type VerifyReceiptRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// VerifyAddress decides and records a verification for the session subject
func (h *VerificationHandler) VerifyAddress(c echo.Context) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	var req VerifyAddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.VerifyAddressInput{
		SubjectID:      claims.SubjectID,
		InputAddress:   req.InputAddress,
		DevicePoint:    geo.NewPoint(*req.DeviceLat, *req.DeviceLng),
		DeviceAccuracy: req.DeviceAccuracy,
	}
	if (req.PanoLat == nil) != (req.PanoLng == nil) {
		return domainerrors.ErrValidationFailed.WithDetails("pano_lat and pano_lng must be sent together")
	}
	if req.PanoLat != nil {
		pano := geo.NewPoint(*req.PanoLat, *req.PanoLng)
		input.PanoramaPoint = &pano
	}
	if req.Heading != nil {
		input.Heading = *req.Heading
	}

	record, err := h.verificationUC.VerifyAddress(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, record, "Verification recorded")
}

// GetVerification returns one stored record of the session subject
func (h *VerificationHandler) GetVerification(c echo.Context) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	id, err := parseVerificationID(c)
	if err != nil {
		return err
	}

	record, err := h.verificationUC.GetVerification(c.Request().Context(), id, claims.SubjectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, record, "")
}

// ListVerifications returns the newest records of the session subject
func (h *VerificationHandler) ListVerifications(c echo.Context) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxListLimit {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and " + strconv.Itoa(maxListLimit))
		}
		limit = n
	}

	records, err := h.verificationUC.ListSubjectVerifications(c.Request().Context(), claims.SubjectID, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records, "")
}

// GetReceipt renders the QR receipt of a session subject's record as PNG
func (h *VerificationHandler) GetReceipt(c echo.Context) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	id, err := parseVerificationID(c)
	if err != nil {
		return err
	}

	png, err := h.verificationUC.GenerateReceipt(c.Request().Context(), id, claims.SubjectID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// VerifyReceipt checks a scanned receipt payload against the stored record. It is public
// and answers with the outcome only.
func (h *VerificationHandler) VerifyReceipt(c echo.Context) error {
	var req VerifyReceiptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	check, err := h.verificationUC.VerifyReceipt(c.Request().Context(), req.Payload)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, check, "")
}

func parseVerificationID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid verification id")
	}

	return id, nil
}
