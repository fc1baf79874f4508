package qrcode

import (
	"strconv"
	"strings"

	"zembil/config"
	"zembil/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// recoveryLevels maps the configured letter to go-qrcode's level. go-qrcode names
// the Q level "High" and H "Highest".
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService renders shop links with the configured size and recovery level.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, level, baseURL string) *qrcodeService {
	recovery, ok := recoveryLevels[strings.ToUpper(level)]
	if !ok {
		recovery = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recovery,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateShopQR renders a PNG QR code encoding the shop's public URL.
func (s *qrcodeService) GenerateShopQR(shopID uint) ([]byte, error) {
	png, err := qrcode.Encode(s.shopURL(shopID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render QR code for shop %d", shopID)
	}

	return png, nil
}

func (s *qrcodeService) shopURL(shopID uint) string {
	return s.baseURL + "/shops/" + strconv.FormatUint(uint64(shopID), 10)
}
