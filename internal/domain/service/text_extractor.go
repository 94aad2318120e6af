package service

import (
	"context"
	"iter"
)

// TextExtractor runs OCR on an image.
type TextExtractor interface {
	// ExtractText returns the recognized text spans. The first span is the full-page text.
	// The sequence is single-use. Failures are reported as ErrExtractionFailed.
	ExtractText(ctx context.Context, image []byte) (iter.Seq[string], error)
}
