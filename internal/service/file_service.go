package service

import (
	"context"
	"file-hosting-server/internal/apperr"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/ports"
	"fmt"
	"io"
	"log"
	"path/filepath"
)

// FileService связывает метаданные в БД, кэш и блоб-хранилище.
// Чтения идут по схеме cache-aside: сначала Redis, затем БД с прогревом кэша.
type FileService struct {
	fileRepository  ports.FileRepository
	cacheRepository ports.CacheRepository
	storage         ports.BlobStorage
}

func NewFileService(
	fileRepository ports.FileRepository,
	cacheRepository ports.CacheRepository,
	storage ports.BlobStorage,
) *FileService {
	return &FileService{
		fileRepository:  fileRepository,
		cacheRepository: cacheRepository,
		storage:         storage,
	}
}

// Upload сохраняет метаданные, затем содержимое. Идентификатор выдаёт база,
// он же определяет ключ в хранилище.
func (s *FileService) Upload(ctx context.Context, name string, mimeType string, size int64, content io.Reader) (int64, error) {
	file := &model.File{
		Name:     name,
		Ext:      filepath.Ext(name),
		MimeType: mimeType,
		Size:     size,
	}

	id, err := s.fileRepository.Create(ctx, file)
	if err != nil {
		return 0, fmt.Errorf("[FileService] ошибка сохранения метаданных: %w", err)
	}
	file.ID = id

	if err := s.storage.Upload(ctx, file.StorageKey(), content, size, mimeType); err != nil {
		return 0, fmt.Errorf("[FileService] ошибка загрузки содержимого: %w", err)
	}

	if err := s.cacheRepository.SetFile(ctx, file); err != nil {
		log.Printf("[FileService] не удалось прогреть кэш файла %d: %v", id, err)
	}

	return id, nil
}

// GetByID : метаданные файла, apperr.ErrNotFound если файла нет
func (s *FileService) GetByID(ctx context.Context, id int64) (*model.File, error) {
	cached, err := s.cacheRepository.GetFile(ctx, id)
	if err != nil {
		log.Printf("[FileService] ошибка чтения кэша файла %d: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	file, err := s.fileRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("[FileService] ошибка чтения метаданных: %w", err)
	}
	if file == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "файл не существует")
	}

	if err := s.cacheRepository.SetFile(ctx, file); err != nil {
		log.Printf("[FileService] не удалось прогреть кэш файла %d: %v", id, err)
	}

	return file, nil
}

// Download : метаданные и поток содержимого.
// Закрыть поток обязан вызывающий.
func (s *FileService) Download(ctx context.Context, id int64) (*model.File, io.ReadCloser, error) {
	file, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	content, _, err := s.storage.Download(ctx, file.StorageKey())
	if err != nil {
		return nil, nil, fmt.Errorf("[FileService] ошибка чтения содержимого: %w", err)
	}

	return file, content, nil
}

// List : страница списка файлов, нумерация страниц с единицы
func (s *FileService) List(ctx context.Context, listSize int, page int) ([]model.File, error) {
	files, err := s.fileRepository.List(ctx, listSize, (page-1)*listSize)
	if err != nil {
		return nil, fmt.Errorf("[FileService] ошибка получения списка файлов: %w", err)
	}
	return files, nil
}

// Update заменяет содержимое и метаданные существующего файла.
// Если расширение поменялось, старый объект в хранилище подчищается.
func (s *FileService) Update(ctx context.Context, id int64, name string, mimeType string, size int64, content io.Reader) error {
	old, err := s.fileRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("[FileService] ошибка чтения метаданных: %w", err)
	}
	if old == nil {
		return apperr.Wrap(apperr.ErrNotFound, "указанный файл не существует")
	}

	file := &model.File{
		ID:       id,
		Name:     name,
		Ext:      filepath.Ext(name),
		MimeType: mimeType,
		Size:     size,
	}

	affected, err := s.fileRepository.Update(ctx, file)
	if err != nil {
		return fmt.Errorf("[FileService] ошибка обновления метаданных: %w", err)
	}
	if affected == 0 {
		return apperr.Wrap(apperr.ErrNotFound, "указанный файл не существует")
	}

	if err := s.storage.Upload(ctx, file.StorageKey(), content, size, mimeType); err != nil {
		return fmt.Errorf("[FileService] ошибка загрузки содержимого: %w", err)
	}

	if old.Ext != file.Ext {
		if err := s.storage.DeleteObject(ctx, old.StorageKey()); err != nil {
			log.Printf("[FileService] не удалось удалить старый объект %s: %v", old.StorageKey(), err)
		}
	}

	if err := s.cacheRepository.DeleteFile(ctx, id); err != nil {
		log.Printf("[FileService] не удалось сбросить кэш файла %d: %v", id, err)
	}

	return nil
}
