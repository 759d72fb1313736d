package ports

import (
	"context"
	"file-hosting-server/internal/model"
)

// CacheRepository : Redis слой метаданных файлов
type CacheRepository interface {
	SetFile(ctx context.Context, file *model.File) error
	GetFile(ctx context.Context, id int64) (*model.File, error)
	DeleteFile(ctx context.Context, id int64) error
}
