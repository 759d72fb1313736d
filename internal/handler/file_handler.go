package handler

import (
	"encoding/json"
	"file-hosting-server/config"
	"file-hosting-server/internal/model/requestresponse"
	"file-hosting-server/internal/ports"
	"file-hosting-server/internal/util"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	defaultListSize = 10
	defaultPage     = 1
)

type FileHandler struct {
	fileService ports.FileService
	upload      *config.UploadConfig
}

func NewFileHandler(fileService ports.FileService, upload *config.UploadConfig) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		upload:      upload,
	}
}

// ListFiles godoc
// @Summary Список файлов
// @Tags Files
// @Produce json
// @Param list_size query int false "Размер страницы" default(10)
// @Param page query int false "Номер страницы" default(1)
// @Success 200 {array} model.File
// @Failure 400 {string} string "Wrong request"
// @Failure 401 {string} string "Unauthorized action"
// @Security ApiKeyAuth
// @Router /api/file/list [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	listSizeParam := r.URL.Query().Get("list_size")
	pageParam := r.URL.Query().Get("page")

	if !util.IsPositiveNumber(listSizeParam) || !util.IsPositiveNumber(pageParam) {
		http.Error(w, "Wrong request", http.StatusBadRequest)
		return
	}

	listSize := defaultListSize
	if listSizeParam != "" {
		listSize, _ = strconv.Atoi(listSizeParam)
	}
	page := defaultPage
	if pageParam != "" {
		page, _ = strconv.Atoi(pageParam)
	}

	files, err := h.fileService.List(r.Context(), listSize, page)
	if err != nil {
		writeProtocolError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(files)
}

// GetFile godoc
// @Summary Метаданные файла
// @Tags Files
// @Produce json
// @Param id path int true "Идентификатор файла"
// @Success 200 {object} model.File
// @Failure 400 {string} string "Wrong request"
// @Failure 404 {string} string "Не найдено"
// @Security ApiKeyAuth
// @Router /api/file/{id} [get]
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, ok := fileIDFromURL(w, r)
	if !ok {
		return
	}

	file, err := h.fileService.GetByID(r.Context(), id)
	if err != nil {
		writeProtocolError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(file)
}

// DownloadFile godoc
// @Summary Скачивание файла
// @Tags Files
// @Produce octet-stream
// @Param id path int true "Идентификатор файла"
// @Success 200 {file} binary
// @Failure 400 {string} string "Wrong request"
// @Failure 404 {string} string "Не найдено"
// @Security ApiKeyAuth
// @Router /api/file/download/{id} [get]
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id, ok := fileIDFromURL(w, r)
	if !ok {
		return
	}

	file, content, err := h.fileService.Download(r.Context(), id)
	if err != nil {
		writeProtocolError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, content); err != nil {
		log.Printf("ошибка отдачи файла %d: %v", id, err)
	}
}

// UploadFile godoc
// @Summary Загрузка файла
// @Description Принимает один файл multipart-формы, отдаёт его идентификатор
// @Tags Files
// @Accept mpfd
// @Produce json
// @Param file formData file true "Файл"
// @Success 200 {object} requestresponse.UploadFileResponse
// @Failure 400 {string} string "Wrong request"
// @Failure 500 {string} string "Ошибка загрузки файла"
// @Security ApiKeyAuth
// @Router /api/file/upload [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	name, mimeType, size, content, ok := h.readUploadedFile(w, r)
	if !ok {
		return
	}
	defer content.Close()

	id, err := h.fileService.Upload(r.Context(), name, mimeType, size, content)
	if err != nil {
		writeProtocolError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.UploadFileResponse{ID: id})
}

// UpdateFile godoc
// @Summary Замена файла
// @Description Заменяет содержимое и метаданные существующего файла
// @Tags Files
// @Accept mpfd
// @Produce json
// @Param id path int true "Идентификатор файла"
// @Param file formData file true "Файл"
// @Success 200 {object} requestresponse.UpdateFileResponse
// @Failure 400 {string} string "Wrong request"
// @Failure 404 {string} string "Указанный файл не существует"
// @Security ApiKeyAuth
// @Router /api/file/update/{id} [put]
func (h *FileHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	id, ok := fileIDFromURL(w, r)
	if !ok {
		return
	}

	name, mimeType, size, content, ok := h.readUploadedFile(w, r)
	if !ok {
		return
	}
	defer content.Close()

	if err := h.fileService.Update(r.Context(), id, name, mimeType, size, content); err != nil {
		writeProtocolError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.UpdateFileResponse{ID: id})
}

// readUploadedFile достаёт единственный файл multipart-формы.
// Лимит размера берётся из конфигурации (10 МБ в исходной настройке).
func (h *FileHandler) readUploadedFile(w http.ResponseWriter, r *http.Request) (string, string, int64, io.ReadCloser, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.upload.MaxFileSizeBytes)

	if err := r.ParseMultipartForm(h.upload.MaxFileSizeBytes); err != nil {
		http.Error(w, "Ошибка загрузки файла", http.StatusBadRequest)
		return "", "", 0, nil, false
	}

	var header *multipart.FileHeader
	for _, headers := range r.MultipartForm.File {
		if len(headers) > 0 {
			header = headers[0]
			break
		}
	}
	if header == nil || header.Filename == "" {
		http.Error(w, "Ошибка загрузки файла", http.StatusBadRequest)
		return "", "", 0, nil, false
	}

	content, err := header.Open()
	if err != nil {
		http.Error(w, "Ошибка загрузки файла", http.StatusBadRequest)
		return "", "", 0, nil, false
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return header.Filename, mimeType, header.Size, content, true
}

func fileIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Wrong request", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
