// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"trustscore/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationRepository stores verification records. Records are append-only: there is no
// update or delete.
type VerificationRepository interface {
	// Create persists a new record. Records that fail CheckInvariants are refused with
	// ErrInvariantViolation.
	Create(ctx context.Context, record *entity.VerificationRecord) error

	// FindByID retrieves a record by its ID. It fails with ErrVerificationNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VerificationRecord, error)

	// FindBySubject retrieves the records of a subject, newest first.
	FindBySubject(ctx context.Context, subjectID string, limit int) ([]*entity.VerificationRecord, error)
}
