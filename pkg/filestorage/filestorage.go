package filestorage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"saha-servis/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileStorageInterface - хранилище загруженных файлов. Save возвращает публичный URL.
type FileStorageInterface interface {
	Save(ctx context.Context, file io.Reader, originalFileName, prefix, contentType string) (fileURL string, err error)
	Delete(ctx context.Context, fileURL string) error
}

// New выбирает S3, если задан бакет, иначе локальную папку.
func New(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (FileStorageInterface, error) {
	if cfg.Bucket != "" {
		s3Storage, err := NewS3FileStorage(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Файловое хранилище: S3", zap.String("bucket", cfg.Bucket))
		return s3Storage, nil
	}
	logger.Info("Файловое хранилище: локальная папка", zap.String("path", cfg.LocalPath))
	return NewLocalFileStorage(cfg.LocalPath)
}

// objectKey строит ключ вида prefix/2025/01/31/2025-01-31-<uuid>.jpg.
func objectKey(prefix, originalFileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	uniqueFileName := fmt.Sprintf("%s-%s%s", now.Format("2006-01-02"), uuid.New().String(), ext)
	return filepath.ToSlash(filepath.Join(prefix, now.Format("2006/01/02"), uniqueFileName))
}

var (
	_ FileStorageInterface = (*LocalFileStorage)(nil)
	_ FileStorageInterface = (*S3FileStorage)(nil)
)
