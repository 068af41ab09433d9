// Package upload stores multipart image uploads on local disk and
// serves as the best-effort cleanup point for orphaned files.
package upload

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/placez/placez-api/internal/domain"
)

// allowedTypes maps accepted image content types to the extension the
// stored file gets. Uploads are renamed, so the client extension is
// never trusted.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Store writes uploaded images under a single directory with
// randomized names and removes them again on cleanup paths.
type Store struct {
	dir      string
	maxBytes int64
	logger   *slog.Logger
}

// NewStore creates an image store rooted at dir, creating the directory
// if needed.
func NewStore(dir string, maxBytes int64, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &Store{
		dir:      dir,
		maxBytes: maxBytes,
		logger:   logger.With(slog.String("component", "upload_store")),
	}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and persists an uploaded image, returning the stored
// path relative to the working directory (the same form the API serves
// it under). The original filename only participates in validation; the
// stored name is a fresh UUID with a content-type derived extension.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := validateFilename(header.Filename); err != nil {
		return "", err
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", domain.NewValidationError("image", "has an unsupported content type", domain.ErrValidation)
	}

	if header.Size > s.maxBytes {
		return "", domain.NewValidationError("image", fmt.Sprintf("exceeds the maximum size of %d bytes", s.maxBytes), domain.ErrValidation)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		s.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	if err := dst.Close(); err != nil {
		s.Remove(path)
		return "", fmt.Errorf("failed to finish upload: %w", err)
	}

	return path, nil
}

// Remove deletes a stored image. Failure is logged, never surfaced;
// callers treat file cleanup as best effort.
func (s *Store) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove uploaded image",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}
}

// validateFilename rejects empty, oversized, and traversal-shaped
// client filenames before anything touches the disk.
func validateFilename(filename string) error {
	if filename == "" {
		return domain.NewValidationError("image", "filename cannot be empty", domain.ErrValidation)
	}
	if len(filename) > 255 {
		return domain.NewValidationError("image", "filename is too long", domain.ErrValidation)
	}
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return domain.NewValidationError("image", "filename contains invalid characters", domain.ErrValidation)
	}
	return nil
}
