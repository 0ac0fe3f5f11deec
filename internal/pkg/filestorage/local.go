package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/upgoma/upg-portal/internal/pkg/logger"
)

// publicDir is the subdirectory all candidate uploads land in, mirroring
// the public prefix of the original bucket layout.
const publicDir = "public"

// LocalStorage stores uploads on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating
// the directory tree if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(basePath, publicDir), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Save stores content under public/<kind>-<timestamp>-<random>.<ext> and
// returns that path.
func (ls *LocalStorage) Save(r io.Reader, kind, originalName string) (string, error) {
	name := ObjectName(kind, originalName)
	dstPath := filepath.Join(ls.basePath, publicDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, r); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	storedPath := publicDir + "/" + name
	logger.Info().Str("filename", originalName).Str("stored_as", storedPath).Msg("File saved")
	return storedPath, nil
}

// DeleteFile removes a stored file. A missing file is treated as an
// already-successful delete.
func (ls *LocalStorage) DeleteFile(path string) error {
	if path == "" {
		return nil
	}

	filename := filepath.Base(path)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", path)
	}

	physicalPath := filepath.Join(ls.basePath, publicDir, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// ObjectName builds the storage name <kind>-<unix-ms>-<random>.<ext> from
// an original filename, lower-casing the extension.
func ObjectName(kind, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s-%d-%s%s", kind, time.Now().UnixMilli(), suffix, ext)
}
