package handler

import (
	"io"
	"log/slog"
	"net/http"

	"trustscore/config"
	"trustscore/internal/delivery/http/response"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/usecase"
	"trustscore/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// DocumentHandler serves OCR uploads
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	maxSize    int64
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		maxSize:    params.Config.Upload.MaxSizeBytes,
		logger:     params.Logger,
	}
}

// ExtractTextResponse lists the detected text, full page first
type ExtractTextResponse struct {
	Text []string `json:"text"`
}

// Upload reads the multipart "file" field and returns the text found in it
func (h *DocumentHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}
	if fileHeader.Size > h.maxSize {
		return domainerrors.ErrValidationFailed.WithDetails(util.SizeLimitDetails(fileHeader.Size, h.maxSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrValidationFailed.Wrap(err, "open upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		return domainerrors.ErrValidationFailed.Wrap(err, "read upload")
	}

	text, err := h.documentUC.ExtractText(c.Request().Context(), fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ExtractTextResponse{Text: text}, "")
}
