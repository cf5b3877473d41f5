package qrcode

import (
	"encoding/json"
	"testing"

	"stampcard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateScanQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	png, err := svc.GenerateScanQR("cafe-scan-code")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParseScanQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{ScanCode: "cafe-scan-code", Type: "checkin"})
	require.NoError(t, err)

	scanCode, err := svc.ParseScanQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "cafe-scan-code", scanCode)
}

func TestQRCodeService_ParseScanQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{ScanCode: "cafe-scan-code", Type: "payment"})
	require.NoError(t, err)

	_, err = svc.ParseScanQR(string(payload))
	require.Error(t, err)
}

func TestQRCodeService_ParseScanQR_EmptyScanCode(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{Type: "checkin"})
	require.NoError(t, err)

	_, err = svc.ParseScanQR(string(payload))
	require.Error(t, err)
}

func TestQRCodeService_ParseScanQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.ParseScanQR("not json")
	require.Error(t, err)
}
