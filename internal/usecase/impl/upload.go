package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"zembil/config"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"
	"zembil/internal/util"

	"github.com/google/uuid"
)

var defaultAllowedExtensions = []string{"png", "jpg", "jpeg", "gif"}

// uploadPolicy validates uploaded images and names their objects.
type uploadPolicy struct {
	allowed []string
	maxSize int64
}

func newUploadPolicy(cfg *config.Config) uploadPolicy {
	policy := uploadPolicy{allowed: defaultAllowedExtensions}
	if cfg == nil || cfg.Storage == nil {
		return policy
	}

	if len(cfg.Storage.AllowedExtensions) > 0 {
		policy.allowed = make([]string, 0, len(cfg.Storage.AllowedExtensions))
		for _, ext := range cfg.Storage.AllowedExtensions {
			policy.allowed = append(policy.allowed, strings.ToLower(strings.TrimPrefix(ext, ".")))
		}
	}
	policy.maxSize = cfg.Storage.MaxUploadSize

	return policy
}

// objectKey returns "<kind>/<id>/<uuid>-<sanitized name>".
func (p uploadPolicy) objectKey(kind string, id uint, upload *usecase.UploadInput) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", domainerrors.ErrInvalidUpload.WrapMessage("file is required")
	}
	if p.maxSize > 0 && upload.Size > p.maxSize {
		return "", domainerrors.ErrInvalidUpload.WrapMessage("file exceeds the " + util.FormatBytes(p.maxSize) + " limit")
	}

	name := sanitizeFilename(upload.Filename)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if name == "" || !slices.Contains(p.allowed, ext) {
		return "", domainerrors.ErrInvalidUpload.WrapMessage("file type is not allowed")
	}

	return fmt.Sprintf("%s/%d/%s-%s", kind, id, uuid.NewString(), name), nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}

// storeUpload writes the upload and returns its public path. The save callback persists the path;
// when it fails the stored object is removed again.
func storeUpload(
	ctx context.Context,
	logger *slog.Logger,
	storage service.FileStorage,
	key string,
	upload *usecase.UploadInput,
	save func(path string) error,
) error {
	path, err := storage.Save(ctx, key, upload.ContentType, upload.Content)
	if err != nil {
		logger.Error("Failed to store upload", slog.String("key", key), slog.Any("error", err))

		return domainerrors.ErrStorageFailed.WrapMessage("failed to store file")
	}

	if err := save(path); err != nil {
		if delErr := storage.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to remove orphaned upload", slog.String("key", key), slog.Any("error", delErr))
		}

		return err
	}

	return nil
}
