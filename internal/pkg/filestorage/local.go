package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/IndiraMehta/EduTask/internal/pkg/logger"
)

// LocalStorage saves uploaded files to a flat directory per category under a
// fixed storage root. Stored names are opaque generated tokens; the mapping
// from entity to filenames lives in the entity rows, not here.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// generateFilename builds a collision-resistant stored name:
// <field>-<unix-ms>-<uuid><original extension>.
func generateFilename(field, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.New().String(), ext)
}

// SaveUploads persists every file of a multipart field into the category
// directory and returns the generated filenames in upload order.
func (ls *LocalStorage) SaveUploads(field, category string, files []*multipart.FileHeader) ([]string, error) {
	dir := filepath.Join(ls.basePath, category)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create category directory: %w", err)
	}

	var saved []string
	for _, fh := range files {
		name := generateFilename(field, fh.Filename)
		if err := ls.saveOne(fh, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		saved = append(saved, name)
	}

	return saved, nil
}

func (ls *LocalStorage) saveOne(fh *multipart.FileHeader, dstPath string) error {
	src, err := fh.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fh.Filename).Msg("Failed to open uploaded file")
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fh.Filename).Str("saved_as", filepath.Base(dstPath)).Msg("File saved")
	return nil
}

// Resolve maps a stored filename to its full path within the category
// directory. Only the basename of the argument is used, so a crafted
// filename cannot escape the storage root. Returns os.ErrNotExist wrapped
// when the file is absent.
func (ls *LocalStorage) Resolve(category, filename string) (string, error) {
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename: %s", filename)
	}

	path := filepath.Join(ls.basePath, category, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("stat %s: %w", name, err)
	}

	return path, nil
}
