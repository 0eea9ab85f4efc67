package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"travelfit/internal/domain/entity"
	"travelfit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// passTokenType marks QR payloads issued for guest passes.
const passTokenType = "guest_pass"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PassQRData represents the redemption token encoded in a pass QR code
type PassQRData struct {
	Type     string `json:"type"`
	PassID   string `json:"pass_id"`
	UserID   string `json:"user_id"`
	GymID    string `json:"gym_id"`
	PassName string `json:"pass_name"`
	Duration int    `json:"duration"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
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

// GeneratePassQR generates the redemption QR code of a guest pass
func (s *qrcodeService) GeneratePassQR(token *entity.RedemptionToken) ([]byte, error) {
	if token == nil {
		return nil, fmt.Errorf("redemption token is required")
	}

	data := PassQRData{
		Type:     passTokenType,
		PassID:   token.PassID.String(),
		UserID:   token.UserID.String(),
		GymID:    token.GymID.String(),
		PassName: token.PassName,
		Duration: token.DurationDays,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePassQR parses scanned QR code data back into a redemption token
func (s *qrcodeService) ParsePassQR(qrData string) (*entity.RedemptionToken, error) {
	var data PassQRData
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != passTokenType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	passID, err := uuid.Parse(data.PassID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pass ID: %w", err)
	}
	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}
	gymID, err := uuid.Parse(data.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gym ID: %w", err)
	}

	if data.Duration < 1 {
		return nil, fmt.Errorf("invalid pass duration: %d", data.Duration)
	}

	return &entity.RedemptionToken{
		PassID:       passID,
		UserID:       userID,
		GymID:        gymID,
		PassName:     data.PassName,
		DurationDays: data.Duration,
	}, nil
}
