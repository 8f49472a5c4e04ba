package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"agenda_backend/internal/imageprocessor"
	"agenda_backend/internal/logger"
	"agenda_backend/internal/storage"

	"github.com/google/uuid"
)

// photoStore handles upload, replacement and cleanup of photos for
// profiles and events. Files live under <module>/<uuid>/<filename> so
// each upload gets its own directory.
type photoStore struct {
	storage      storage.Storage
	maxSize      int64
	allowedTypes []string
}

func newPhotoStore(st storage.Storage, maxSize int64, allowedTypes []string) *photoStore {
	return &photoStore{
		storage:      st,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

var (
	errPhotoTooLarge    = fmt.Errorf("photo exceeds the maximum allowed size")
	errPhotoNotAnImage  = fmt.Errorf("photo must be an image")
	errPhotoUnsupported = fmt.Errorf("unsupported photo content type")
)

// isPhotoValidationError tells client mistakes apart from storage faults.
func isPhotoValidationError(err error) bool {
	return errors.Is(err, errPhotoTooLarge) ||
		errors.Is(err, errPhotoNotAnImage) ||
		errors.Is(err, errPhotoUnsupported)
}

// validate checks size and image content and returns the MIME type
// detected from the bytes. The client's Content-Type header is never
// trusted.
func (p *photoStore) validate(file *multipart.FileHeader) (string, error) {
	if p.maxSize > 0 && file.Size > p.maxSize {
		return "", errPhotoTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	info, err := imageprocessor.Sniff(src)
	if err != nil {
		return "", errPhotoNotAnImage
	}

	contentType := info.ContentType()
	for _, allowed := range p.allowedTypes {
		if contentType == allowed {
			return contentType, nil
		}
	}
	return "", errPhotoUnsupported
}

// Store validates and saves the uploaded file under a fresh
// unique directory inside module ("profiles" or "events") and returns
// the storage-relative path.
func (p *photoStore) Store(ctx context.Context, module string, file *multipart.FileHeader) (string, error) {
	contentType, err := p.validate(file)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := path.Base(strings.ReplaceAll(file.Filename, "\\", "/"))
	if filename == "" || filename == "." || filename == "/" {
		filename = "photo"
	}
	storagePath := fmt.Sprintf("%s/%s/%s", module, uuid.NewString(), filename)

	if err := p.storage.Save(ctx, storagePath, src, contentType); err != nil {
		return "", err
	}
	return storagePath, nil
}

// Remove deletes the file and, when its directory ends up empty, the
// directory too. Failures are logged and swallowed: a stale file must
// never fail the request that replaced it.
func (p *photoStore) Remove(ctx context.Context, storagePath string) {
	if storagePath == "" {
		return
	}

	if err := p.storage.Delete(ctx, storagePath); err != nil {
		logger.CtxWarn(ctx, "Failed to delete photo file", "path", storagePath, "error", err.Error())
		return
	}
	if err := p.storage.DeleteDirIfEmpty(ctx, path.Dir(storagePath)); err != nil {
		logger.CtxWarn(ctx, "Failed to delete photo directory", "dir", path.Dir(storagePath), "error", err.Error())
	}
}

// URL resolves a stored path to the public URL handed to clients.
func (p *photoStore) URL(ctx context.Context, storagePath *string) *string {
	if storagePath == nil || *storagePath == "" {
		return nil
	}
	url, err := p.storage.GetURL(ctx, *storagePath)
	if err != nil {
		logger.CtxWarn(ctx, "Failed to resolve photo URL", "path", *storagePath, "error", err.Error())
		return nil
	}
	return &url
}
