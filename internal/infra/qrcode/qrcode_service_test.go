package qrcode

import (
	"testing"

	"agrifarma/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "http://example.com")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://agrifarma.example/")
	productID := uuid.New()

	qrBytes, err := svc.GenerateProductQR(productID)
	require.NoError(t, err)
	require.True(t, len(qrBytes) > 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ProductURL(t *testing.T) {
	svc := newQRCodeService(128, "L", "https://agrifarma.example/")
	productID := uuid.New()

	assert.Equal(t, "https://agrifarma.example/product/"+productID.String(), svc.ProductURL(productID))
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	svc := NewQRCodeService(cfg)

	productID := uuid.New()
	assert.Equal(t, "http://localhost:8080/product/"+productID.String(), svc.ProductURL(productID))

	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}
	cfg.HTTP.BaseURL = "https://shop.example"
	svc = NewQRCodeService(cfg)
	assert.Equal(t, "https://shop.example/product/"+productID.String(), svc.ProductURL(productID))
}
