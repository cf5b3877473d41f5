package service

// QRCodeService defines the interface for scan-code QR generation and parsing.
type QRCodeService interface {
	// GenerateScanQR renders a merchant's scan code as a PNG QR image.
	GenerateScanQR(scanCode string) ([]byte, error)

	// ParseScanQR parses QR payload data and returns the embedded scan code.
	ParseScanQR(qrData string) (string, error)
}
