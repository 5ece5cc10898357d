package domain

import "time"

type Document struct {
	ID          int64
	TeamID      int64
	Title       string
	Description string
	Content     string
	StorageKey  string
	CreatedAt   time.Time
}
