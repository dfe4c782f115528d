package services

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpetrov/portfolio-site-backend/errs"
)

// MaxUploadSize is the hard cap on an uploaded image payload.
const MaxUploadSize int64 = 5 * 1024 * 1024 // 5 MiB

// DefaultUploadDir is where project images land; the returned image_url is
// relative to the site root and served statically.
const DefaultUploadDir = "images/projects"

// allowedExtensions is matched case-sensitively against the original
// filename's extension.
var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// ImageStore writes uploaded project images to a fixed directory under
// collision-resistant names.
type ImageStore struct {
	dir    string
	logger zerolog.Logger
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{
		dir:    dir,
		logger: log.With().Str("serviceName", "imageStore").Logger(),
	}
}

// EnsureDir creates the upload directory if it does not exist. Called once
// at startup.
func (s *ImageStore) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Store validates the original filename's extension, copies at most
// MaxUploadSize bytes to a freshly named file in the upload directory and
// returns the relative path usable as a project image_url. Oversized
// payloads abort the write and leave nothing behind.
func (s *ImageStore) Store(src io.Reader, originalFilename string) (string, error) {
	ext := path.Ext(originalFilename)
	if !extensionAllowed(ext) {
		return "", errs.NewUnsupportedMediaTypeError(ext, allowedExtensions)
	}

	name := fmt.Sprintf("project-%d-%s%s", time.Now().UnixMilli(), shortSuffix(), ext)
	dst := filepath.Join(s.dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	written, err := io.Copy(out, io.LimitReader(src, MaxUploadSize+1))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(dst)
		return "", errs.NewMaxBodySizeExceededError(MaxUploadSize)
	}

	s.logger.Info().Str("file", name).Int64("bytes", written).Msg("stored project image")

	return filepath.ToSlash(dst), nil
}

func extensionAllowed(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// shortSuffix returns the leading segment of a fresh UUID, enough randomness
// to avoid collisions within a single millisecond.
func shortSuffix() string {
	return uuid.NewString()[:8]
}
