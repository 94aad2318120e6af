package usecase

import "context"

// DocumentUsecase runs OCR on uploaded documents such as utility bills
type DocumentUsecase interface {
	// ExtractText stages the upload, extracts its text and releases it. The first line is the
	// full-page text.
	ExtractText(ctx context.Context, filename string, data []byte) ([]string, error)
}
