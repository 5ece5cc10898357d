// Package blob хранит содержимое документов команд в объектном хранилище.
package blob

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("object not found")

// Store - объектное хранилище с доступом по ключу
type Store interface {
	Put(ctx context.Context, key string, body []byte) error
	// Get возвращает ErrNotFound, если объекта нет
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete не считает отсутствие объекта ошибкой
	Delete(ctx context.Context, key string) error
}
