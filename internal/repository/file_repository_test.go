package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"file-hosting-server/config"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newTestFileRepository(t *testing.T) (*repository.FileRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return repository.NewFileRepository(&config.Database{DB: sqlxDB}), mock
}

// 1. Вставка метаданных возвращает id из базы
func TestFileCreate(t *testing.T) {
	repo, mock := newTestFileRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO files (name, ext, mime_type, size)`)).
		WithArgs("report.pdf", ".pdf", "application/pdf", int64(2048)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Create(context.Background(), &model.File{
		Name:     "report.pdf",
		Ext:      ".pdf",
		MimeType: "application/pdf",
		Size:     2048,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 2. Файл найден
func TestFileGetByID(t *testing.T) {
	repo, mock := newTestFileRepository(t)

	registered := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "ext", "mime_type", "size", "registration_date"}).
		AddRow(int64(42), "report.pdf", ".pdf", "application/pdf", int64(2048), registered)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, ext, mime_type, size, registration_date FROM files WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	file, err := repo.GetByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.NotNil(t, file)
	assert.Equal(t, "report.pdf", file.Name)
	assert.Equal(t, "42.pdf", file.StorageKey())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 3. Файла нет — (nil, nil)
func TestFileGetByID_NotFound(t *testing.T) {
	repo, mock := newTestFileRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, ext, mime_type, size, registration_date FROM files WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "ext", "mime_type", "size", "registration_date"}))

	file, err := repo.GetByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, file)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 4. Страница списка
func TestFileList(t *testing.T) {
	repo, mock := newTestFileRepository(t)

	rows := sqlmock.NewRows([]string{"id", "name", "ext", "mime_type", "size", "registration_date"}).
		AddRow(int64(1), "a.txt", ".txt", "text/plain", int64(10), time.Now()).
		AddRow(int64(2), "b.txt", ".txt", "text/plain", int64(20), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, ext, mime_type, size, registration_date`)).
		WithArgs(10, 0).
		WillReturnRows(rows)

	files, err := repo.List(context.Background(), 10, 0)

	assert.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, int64(1), files[0].ID)
	assert.Equal(t, int64(2), files[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 5. Обновление метаданных возвращает число затронутых строк
func TestFileUpdate(t *testing.T) {
	repo, mock := newTestFileRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE files`)).
		WithArgs(int64(42), "new.txt", ".txt", "text/plain", int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(), &model.File{
		ID:       42,
		Name:     "new.txt",
		Ext:      ".txt",
		MimeType: "text/plain",
		Size:     30,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
