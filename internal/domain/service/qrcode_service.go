package service

// QRCodeService generates shareable QR codes.
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code linking to the shop.
	GenerateShopQR(shopID uint) ([]byte, error)
}
