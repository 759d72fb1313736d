package repository

import (
	"context"
	"database/sql"
	"errors"
	"file-hosting-server/config"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/util"
)

type FileRepository struct {
	*config.Database
}

func NewFileRepository(database *config.Database) *FileRepository {
	return &FileRepository{database}
}

// Create : сохраняет метаданные файла, id выдаёт база
func (r *FileRepository) Create(ctx context.Context, file *model.File) (int64, error) {
	query := `
	INSERT INTO files (name, ext, mime_type, size)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	var id int64
	err := r.DB.QueryRowxContext(ctx, query, file.Name, file.Ext, file.MimeType, file.Size).Scan(&id)
	if err != nil {
		return 0, util.LogError("[FileRepo] ошибка вставки данных в БД", err)
	}

	return id, nil
}

// GetByID : метаданные файла по id, (nil, nil) если файла нет
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*model.File, error) {
	query := `SELECT id, name, ext, mime_type, size, registration_date FROM files WHERE id = $1`

	var file model.File
	err := r.DB.GetContext(ctx, &file, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[FileRepo] не удалось найти файл в БД", err)
	}

	return &file, nil
}

// List : страница списка файлов, порядок по id
func (r *FileRepository) List(ctx context.Context, limit int, offset int) ([]model.File, error) {
	query := `
	SELECT id, name, ext, mime_type, size, registration_date
	FROM files
	ORDER BY id ASC
	LIMIT $1 OFFSET $2
	`

	var files []model.File
	err := r.DB.SelectContext(ctx, &files, query, limit, offset)
	if err != nil {
		return nil, util.LogError("[FileRepo] не удалось получить список файлов", err)
	}

	return files, nil
}

// Update : заменяет метаданные файла, возвращает число обновлённых строк
func (r *FileRepository) Update(ctx context.Context, file *model.File) (int64, error) {
	query := `
	UPDATE files
	SET name = $2, ext = $3, mime_type = $4, size = $5
	WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query, file.ID, file.Name, file.Ext, file.MimeType, file.Size)
	if err != nil {
		return 0, util.LogError("[FileRepo] не удалось обновить файл", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[FileRepo] не удалось проверить, обновлён ли файл", err)
	}

	return rowsAffected, nil
}
