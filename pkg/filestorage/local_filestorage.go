// pkg/filestorage/local_filestorage.go

package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const LocalURLPrefix = "/uploads/"

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (*LocalFileStorage, error) {
	if basePath == "" {
		basePath = "uploads"
	}
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("не удалось создать директорию: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) BasePath() string { return s.basePath }

func (s *LocalFileStorage) Save(_ context.Context, file io.Reader, originalFileName, prefix, _ string) (string, error) {
	key := objectKey(prefix, originalFileName, time.Now())
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", err
	}

	return LocalURLPrefix + key, nil
}

func (s *LocalFileStorage) Delete(_ context.Context, fileURL string) error {
	// fileURL приходит в виде "/uploads/prefix/2024/08/21/file.jpg"
	relativePath := strings.TrimPrefix(fileURL, LocalURLPrefix)
	if relativePath == "" || strings.Contains(relativePath, "..") {
		return nil
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(relativePath))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}
