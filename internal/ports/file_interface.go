package ports

import (
	"context"
	"file-hosting-server/internal/model"
	"io"
)

// FileRepository : SQL слой метаданных файлов
type FileRepository interface {
	Create(ctx context.Context, file *model.File) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.File, error)
	List(ctx context.Context, limit int, offset int) ([]model.File, error)
	Update(ctx context.Context, file *model.File) (int64, error)
}

type FileService interface {
	Upload(ctx context.Context, name string, mimeType string, size int64, content io.Reader) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.File, error)
	Download(ctx context.Context, id int64) (*model.File, io.ReadCloser, error)
	List(ctx context.Context, listSize int, page int) ([]model.File, error)
	Update(ctx context.Context, id int64, name string, mimeType string, size int64, content io.Reader) error
}
