package service

import (
	"travelfit/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePassQR renders a redemption token as a PNG image
	GeneratePassQR(token *entity.RedemptionToken) ([]byte, error)

	// ParsePassQR parses scanned QR code data back into a redemption token
	ParsePassQR(qrData string) (*entity.RedemptionToken, error)
}
