package impl

import (
	"context"
	"slices"
	"testing"

	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/errors"
	mockService "trustscore/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_ExtractText(t *testing.T) {
	uploads := mockService.NewMockUploadStore(t)
	extractor := mockService.NewMockTextExtractor(t)
	svc := NewDocumentService(uploads, extractor, discardLogger())
	ctx := context.Background()

	uploads.EXPECT().Put(ctx, "bill.jpg", []byte("img")).Return("uploads/k.jpg", nil)
	uploads.EXPECT().Read(ctx, "uploads/k.jpg").Return([]byte("img"), nil)
	extractor.EXPECT().ExtractText(ctx, []byte("img")).Return(slices.Values([]string{"IKEJA ELECTRIC\n12B Allen", "IKEJA"}), nil)
	uploads.EXPECT().Release(mock.Anything, "uploads/k.jpg").Return(nil)

	lines, err := svc.ExtractText(ctx, "bill.jpg", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, []string{"IKEJA ELECTRIC\n12B Allen", "IKEJA"}, lines)
}

func TestDocumentService_ExtractText_ReleasesOnFailure(t *testing.T) {
	uploads := mockService.NewMockUploadStore(t)
	extractor := mockService.NewMockTextExtractor(t)
	svc := NewDocumentService(uploads, extractor, discardLogger())
	ctx := context.Background()

	uploads.EXPECT().Put(ctx, "bill.jpg", mock.Anything).Return("uploads/k.jpg", nil)
	uploads.EXPECT().Read(ctx, "uploads/k.jpg").Return([]byte("img"), nil)
	extractor.EXPECT().ExtractText(ctx, mock.Anything).Return(nil, domainerrors.ErrExtractionFailed)
	uploads.EXPECT().Release(mock.Anything, "uploads/k.jpg").Return(errors.New("already gone"))

	lines, err := svc.ExtractText(ctx, "bill.jpg", []byte("img"))
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, domainerrors.ErrExtractionFailed))
}

func TestDocumentService_ExtractText_UnreadableUpload(t *testing.T) {
	uploads := mockService.NewMockUploadStore(t)
	extractor := mockService.NewMockTextExtractor(t)
	svc := NewDocumentService(uploads, extractor, discardLogger())
	ctx := context.Background()

	uploads.EXPECT().Put(ctx, "bill.jpg", mock.Anything).Return("uploads/k.jpg", nil)
	uploads.EXPECT().Read(ctx, "uploads/k.jpg").Return(nil, domainerrors.ErrExtractionFailed.WithDetails("upload not found: uploads/k.jpg"))
	uploads.EXPECT().Release(mock.Anything, "uploads/k.jpg").Return(nil)

	lines, err := svc.ExtractText(ctx, "bill.jpg", []byte("img"))
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, domainerrors.ErrExtractionFailed))
}

func TestDocumentService_ExtractText_EmptyFile(t *testing.T) {
	uploads := mockService.NewMockUploadStore(t)
	extractor := mockService.NewMockTextExtractor(t)
	svc := NewDocumentService(uploads, extractor, discardLogger())

	_, err := svc.ExtractText(context.Background(), "bill.jpg", nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
