package service

import "context"

// RecordArchiver appends verification events to an external audit sheet.
type RecordArchiver interface {
	Archive(ctx context.Context, event *VerificationEvent) error
}
