package qrcode

import (
	"fmt"
	"strings"

	"agrifarma/config"
	"agrifarma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService builds the product share code renderer from config.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	baseURL := cfg.HTTP.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return newQRCodeService(size, level, baseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func (s *qrcodeService) ProductURL(productID uuid.UUID) string {
	return s.baseURL + "/product/" + productID.String()
}

// GenerateProductQR generates a PNG share code pointing at the product page
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
