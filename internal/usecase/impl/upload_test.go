package impl

import (
	"strings"
	"testing"

	"zembil/config"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "photo.png", want: "photo.png"},
		{in: "../../etc/passwd.png", want: "passwd.png"},
		{in: `C:\Users\me\shop front.jpg`, want: "shop-front.jpg"},
		{in: "ቡና.gif", want: "--.gif"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}

func TestUploadPolicy_ObjectKey(t *testing.T) {
	policy := newUploadPolicy(nil)
	upload := &usecase.UploadInput{Filename: "Front.JPG", Content: strings.NewReader("x")}

	key, err := policy.objectKey("shops", 3, upload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "shops/3/"))
	assert.True(t, strings.HasSuffix(key, "-Front.JPG"))

	_, err = policy.objectKey("shops", 3, &usecase.UploadInput{Filename: "a.png"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
}

func TestNewUploadPolicy_NormalizesExtensions(t *testing.T) {
	policy := newUploadPolicy(&config.Config{Storage: &config.StorageConfig{AllowedExtensions: []string{".WEBP", "png"}}})

	assert.Equal(t, []string{"webp", "png"}, policy.allowed)
	assert.Zero(t, policy.maxSize)
}
