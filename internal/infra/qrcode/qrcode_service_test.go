package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"zembil/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Lowercase level", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "http://localhost")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_ShopURL(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://zembil.example/api/v1/")

	assert.Equal(t, "https://zembil.example/api/v1/shops/12", svc.shopURL(12))
}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M", BaseURL: "http://localhost:8080/api/v1"}}
	svc := NewQRCodeService(cfg)

	qrBytes, err := svc.GenerateShopQR(3)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(qrBytes, pngMagic))

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateShopQR_DifferentIDsDiffer(t *testing.T) {
	svc := newQRCodeService(128, "L", "http://localhost")

	first, err := svc.GenerateShopQR(1)
	require.NoError(t, err)
	second, err := svc.GenerateShopQR(2)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
