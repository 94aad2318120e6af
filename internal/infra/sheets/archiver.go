// Package sheets archives recorded verifications as rows of a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"log/slog"
	"time"

	"trustscore/config"
	"trustscore/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

const (
	defaultRange     = "Sheet1!A:Z"
	valueInputRaw    = "RAW"
	insertRowsOption = "INSERT_ROWS"
)

type sheetsArchiver struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	writeRange    string
	logger        *slog.Logger
}

// noopArchiver only logs, used when no spreadsheet is configured
type noopArchiver struct {
	logger *slog.Logger
}

func (a *noopArchiver) Archive(ctx context.Context, event *service.VerificationEvent) error {
	a.logger.Debug("[NoopArchiver] Sheets archive disabled, skipping",
		slog.String("verification_id", event.VerificationID),
	)

	return nil
}

// NewRecordArchiver creates the archiver from configuration. Without a spreadsheet ID it
// returns an archiver that only logs.
func NewRecordArchiver(cfg *config.Config, logger *slog.Logger) (service.RecordArchiver, error) {
	if cfg.Sheets == nil || cfg.Sheets.SpreadsheetID == "" {
		logger.Info("Sheets archive not configured, using no-op archiver")

		return &noopArchiver{logger: logger}, nil
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.Sheets.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsPath))
	}

	return newSheetsArchiver(context.Background(), cfg.Sheets, logger, opts...)
}

func newSheetsArchiver(ctx context.Context, cfg *config.SheetsConfig, logger *slog.Logger, opts ...option.ClientOption) (*sheetsArchiver, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create sheets client")
	}

	writeRange := cfg.Range
	if writeRange == "" {
		writeRange = defaultRange
	}

	return &sheetsArchiver{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		writeRange:    writeRange,
		logger:        logger,
	}, nil
}

// Archive appends one row per event.
func (a *sheetsArchiver) Archive(ctx context.Context, event *service.VerificationEvent) error {
	body := &sheets.ValueRange{Values: [][]any{row(event)}}

	resp, err := a.values.Append(a.spreadsheetID, a.writeRange, body).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRowsOption).
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "append verification %s", event.VerificationID)
	}

	a.logger.Info("Verification archived",
		slog.String("verification_id", event.VerificationID),
		slog.String("updated_range", updatedRange(resp)),
	)

	return nil
}

// row lays out the event in the archive column order.
func row(event *service.VerificationEvent) []any {
	var accuracy any = ""
	if event.DeviceAccuracy != nil {
		accuracy = *event.DeviceAccuracy
	}

	return []any{
		event.VerificationID,
		event.SubjectID,
		event.InputAddress,
		event.AddressLat,
		event.AddressLng,
		event.DeviceLat,
		event.DeviceLng,
		accuracy,
		event.PanoramaLat,
		event.PanoramaLng,
		event.Heading,
		event.DistanceMeters,
		event.ImageURL,
		event.Outcome,
		event.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func updatedRange(resp *sheets.AppendValuesResponse) string {
	if resp == nil || resp.Updates == nil {
		return ""
	}

	return resp.Updates.UpdatedRange
}
