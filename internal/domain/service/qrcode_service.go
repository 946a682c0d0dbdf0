package service

import "github.com/google/uuid"

// QRCodeService renders share codes for product pages.
type QRCodeService interface {
	// GenerateProductQR returns a PNG encoding the product's public URL.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ProductURL is the URL encoded by GenerateProductQR.
	ProductURL(productID uuid.UUID) string
}
