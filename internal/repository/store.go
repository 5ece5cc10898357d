package repository

import "context"

// Repositories - набор репозиториев, привязанных к одной транзакции
type Repositories interface {
	Teams() TeamRepository
	Sessions() SessionRepository
	Attendances() AttendanceRepository
	Members() MemberRepository
	Documents() DocumentRepository
}

// Store открывает единицы работы над хранилищем.
// WithinTx фиксирует изменения, только если fn вернула nil.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
