package qrcode

import (
	"encoding/json"

	"trustscore/internal/domain/errors"
	"trustscore/internal/domain/policy"
	"trustscore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const receiptType = "verification_receipt"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData is the JSON document encoded in a receipt QR code
type ReceiptData struct {
	VerificationID string `json:"verification_id"`
	Outcome        string `json:"outcome"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReceiptQR renders the receipt as a PNG QR code
func (s *qrcodeService) GenerateReceiptQR(receipt service.Receipt) ([]byte, error) {
	if receipt.VerificationID == uuid.Nil || !receipt.Outcome.Valid() {
		return nil, errors.ErrValidationFailed.WithDetails("receipt requires a verification id and outcome")
	}

	jsonData, err := json.Marshal(ReceiptData{
		VerificationID: receipt.VerificationID.String(),
		Outcome:        string(receipt.Outcome),
		Type:           receiptType,
	})
	if err != nil {
		return nil, errors.ErrInternalError.Wrap(err, "marshal receipt")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.ErrInternalError.Wrap(err, "create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.ErrInternalError.Wrap(err, "render QR code")
	}

	return pngBytes, nil
}

// ParseReceiptQR decodes a scanned receipt payload
func (s *qrcodeService) ParseReceiptQR(payload string) (service.Receipt, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return service.Receipt{}, errors.ErrReceiptInvalid.Wrap(err, "unmarshal receipt")
	}

	if data.Type != receiptType {
		return service.Receipt{}, errors.ErrReceiptInvalid.WithDetails("unexpected receipt type: " + data.Type)
	}

	id, err := uuid.Parse(data.VerificationID)
	if err != nil {
		return service.Receipt{}, errors.ErrReceiptInvalid.Wrap(err, "parse verification id")
	}

	outcome := policy.Outcome(data.Outcome)
	if !outcome.Valid() {
		return service.Receipt{}, errors.ErrReceiptInvalid.WithDetails("unknown outcome: " + data.Outcome)
	}

	return service.Receipt{VerificationID: id, Outcome: outcome}, nil
}
