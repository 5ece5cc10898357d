package repository

import "errors"

var (
	// ErrNotFound возвращается, когда запись отсутствует в хранилище
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists возвращается при нарушении уникальности
	ErrAlreadyExists = errors.New("already exists")
)
