package impl

import (
	"context"
	"log/slog"

	deliverycontext "trustscore/internal/delivery/context"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/service"
	"trustscore/internal/usecase"
)

type documentService struct {
	uploads   service.UploadStore
	extractor service.TextExtractor
	logger    *slog.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(uploads service.UploadStore, extractor service.TextExtractor, logger *slog.Logger) usecase.DocumentUsecase {
	return &documentService{
		uploads:   uploads,
		extractor: extractor,
		logger:    logger,
	}
}

// ExtractText stages the upload, runs OCR and always releases the staged copy
func (s *documentService) ExtractText(ctx context.Context, filename string, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	key, err := s.uploads.Put(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	defer func() {
		// The request context may already be canceled; release must still run.
		if err := s.uploads.Release(context.WithoutCancel(ctx), key); err != nil {
			logger.Warn("Failed to release upload", slog.String("key", key), slog.Any("error", err))
		}
	}()

	staged, err := s.uploads.Read(ctx, key)
	if err != nil {
		return nil, err
	}

	spans, err := s.extractor.ExtractText(ctx, staged)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0)
	for span := range spans {
		lines = append(lines, span)
	}

	logger.Info("Document text extracted", slog.Int("spans", len(lines)))

	return lines, nil
}
