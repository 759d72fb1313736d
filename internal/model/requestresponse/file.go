package requestresponse

// UploadFileResponse : идентификатор созданного файла
type UploadFileResponse struct {
	ID int64 `json:"id" example:"42"`
}

// UpdateFileResponse : идентификатор обновлённого файла
type UpdateFileResponse struct {
	ID int64 `json:"id" example:"42"`
}
