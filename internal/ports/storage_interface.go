package ports

import (
	"context"
	"io"
)

// BlobStorage : непрозрачное хранилище содержимого файлов, ключ — "<id><ext>"
type BlobStorage interface {
	Upload(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, int64, error)
	DeleteObject(ctx context.Context, key string) error
}
