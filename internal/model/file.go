package model

import (
	"strconv"
	"time"
)

// File : метаданные загруженного файла. Содержимое лежит в блоб-хранилище
// под ключом "<id><ext>".
type File struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Ext              string    `db:"ext" json:"ext"`
	MimeType         string    `db:"mime_type" json:"mime_type"`
	Size             int64     `db:"size" json:"size"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}

// StorageKey : ключ объекта в блоб-хранилище
func (f *File) StorageKey() string {
	return strconv.FormatInt(f.ID, 10) + f.Ext
}
