package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"trustscore/internal/delivery/http/response"
	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the geocoding and Street View steps
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// GeocodeRequest accepts either a single address line or its structured parts
type GeocodeRequest struct {
	Address     string `json:"address"`
	HouseNumber string `json:"house_number"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// SearchLocationRequest is the body of POST /search-location
type SearchLocationRequest struct {
	Lat     *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng     *float64 `json:"lng" validate:"required,min=-180,max=180"`
	Heading *float64 `json:"heading"`
	Pitch   *float64 `json:"pitch" validate:"omitempty,min=-90,max=90"`
	FOV     *float64 `json:"fov" validate:"omitempty,gt=0,max=120"`
	Radius  float64  `json:"radius" validate:"omitempty,gt=0"`
}

// ConfirmCaptureRequest is the body of POST /confirm-capture
type ConfirmCaptureRequest struct {
	PanoLat *float64 `json:"pano_lat" validate:"required,min=-90,max=90"`
	PanoLng *float64 `json:"pano_lng" validate:"required,min=-180,max=180"`
	Heading *float64 `json:"heading"`
}

// CaptureResponse keeps the flat field names the wizard front end reads
type CaptureResponse struct {
	PanoLat  float64 `json:"pano_lat"`
	PanoLng  float64 `json:"pano_lng"`
	Heading  float64 `json:"heading"`
	ImageURL string  `json:"image_url"`
}

// Geocode resolves the claimed address to a point
func (h *LocationHandler) Geocode(c echo.Context) error {
	var req GeocodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.GeocodeInput{
		Address: strings.TrimSpace(req.Address),
		Claim: entity.AddressClaim{
			HouseNumber: req.HouseNumber,
			Street:      req.Street,
			City:        req.City,
			State:       req.State,
		},
	}
	if input.Address == "" && input.Claim.IsEmpty() {
		return domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	result, err := h.locationUC.GeocodeAddress(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "Address resolved")
}

// SearchLocation finds Street View coverage near a point, falling back to the point itself
func (h *LocationHandler) SearchLocation(c echo.Context) error {
	var req SearchLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.locationUC.SearchPanorama(c.Request().Context(), &usecase.PanoramaSearchInput{
		Point:        geo.NewPoint(*req.Lat, *req.Lng),
		Heading:      req.Heading,
		Pitch:        req.Pitch,
		FieldOfView:  req.FOV,
		RadiusMeters: req.Radius,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "")
}

// ConfirmCapture returns the static image URL of the confirmed panorama view
func (h *LocationHandler) ConfirmCapture(c echo.Context) error {
	var req ConfirmCaptureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var heading float64
	if req.Heading != nil {
		heading = *req.Heading
	}

	capture, err := h.locationUC.ConfirmCapture(c.Request().Context(), geo.NewPoint(*req.PanoLat, *req.PanoLng), heading)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, CaptureResponse{
		PanoLat:  capture.PanoramaPoint.Lat,
		PanoLng:  capture.PanoramaPoint.Lng,
		Heading:  capture.Heading,
		ImageURL: capture.ImageURL,
	}, "Capture confirmed")
}
