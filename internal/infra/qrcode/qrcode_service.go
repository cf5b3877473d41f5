// Package qrcode renders merchant scan codes as printable QR images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"stampcard/config"
	"stampcard/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload structure.
type QRCodeData struct {
	ScanCode string `json:"scan_code"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultQRSize
	level := qrcode.Medium
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		switch cfg.QRCode.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateScanQR renders a merchant's scan code as a PNG QR image.
func (s *qrcodeService) GenerateScanQR(scanCode string) ([]byte, error) {
	data := QRCodeData{
		ScanCode: scanCode,
		Type:     "checkin",
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

// ParseScanQR parses QR payload data and returns the embedded scan code.
func (s *qrcodeService) ParseScanQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "checkin" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ScanCode == "" {
		return "", fmt.Errorf("QR code carries no scan code")
	}

	return data.ScanCode, nil
}
