package service

import (
	"github.com/google/uuid"

	"trustscore/internal/domain/policy"
)

// Receipt is the content encoded in a verification receipt QR code.
type Receipt struct {
	VerificationID uuid.UUID
	Outcome        policy.Outcome
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReceiptQR renders a PNG QR code for a verification receipt
	GenerateReceiptQR(receipt Receipt) ([]byte, error)

	// ParseReceiptQR decodes the text payload scanned from a receipt QR code
	ParseReceiptQR(payload string) (Receipt, error)
}
