// Package vision runs OCR on uploaded documents through Google Cloud Vision.
package vision

import (
	"context"
	"encoding/base64"
	"iter"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"trustscore/config"
	"trustscore/internal/domain/errors"
	"trustscore/internal/domain/service"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

const featureTextDetection = "TEXT_DETECTION"

type textExtractor struct {
	images  *vision.ImagesService
	timeout time.Duration
	logger  *slog.Logger
}

// NewTextExtractor creates a TextExtractor. Credentials come from the configured service
// account file or, when empty, from application default credentials.
func NewTextExtractor(cfg *config.Config, logger *slog.Logger) (service.TextExtractor, error) {
	var opts []option.ClientOption
	if cfg.Google.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Google.CredentialsPath))
	}
	if cfg.Google.VisionEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Google.VisionEndpoint))
	}

	return newTextExtractor(context.Background(), cfg.Google.Timeout, logger, opts...)
}

func newTextExtractor(ctx context.Context, timeout time.Duration, logger *slog.Logger, opts ...option.ClientOption) (*textExtractor, error) {
	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.ErrInternalError.Wrap(err, "create vision client")
	}

	return &textExtractor{
		images:  svc.Images,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (e *textExtractor) ExtractText(ctx context.Context, image []byte) (iter.Seq[string], error) {
	if len(image) == 0 {
		return nil, errors.ErrExtractionFailed.WithDetails("empty image")
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []*vision.Feature{{Type: featureTextDetection}},
		}},
	}

	resp, err := e.images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, errors.ErrExtractionFailed.Wrap(err, "vision annotate")
	}

	if len(resp.Responses) == 0 {
		return nil, errors.ErrExtractionFailed.WithDetails("vision returned no responses")
	}

	result := resp.Responses[0]
	if result.Error != nil && result.Error.Code != 0 {
		return nil, errors.ErrExtractionFailed.WithDetails(result.Error.Message)
	}

	spans := make([]string, 0, len(result.TextAnnotations))
	for _, annotation := range result.TextAnnotations {
		if text := strings.TrimSpace(annotation.Description); text != "" {
			spans = append(spans, text)
		}
	}

	e.logger.Debug("Text extracted", slog.Int("spans", len(spans)))

	return once(spans), nil
}

// once yields spans on the first range only; later ranges see an empty sequence.
func once(spans []string) iter.Seq[string] {
	var used atomic.Bool

	return func(yield func(string) bool) {
		if used.Swap(true) {
			return
		}
		for _, span := range spans {
			if !yield(span) {
				return
			}
		}
	}
}
