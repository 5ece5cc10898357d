// Package logging описывает структурный логгер, которым пользуются сервисы и
// HTTP-слой. Реализация по умолчанию построена на log/slog.
package logging

import "context"

// Logger - структурный логгер с контекстом.
//
// Аргументы args - пары ключ-значение:
//
//	log.Info(ctx, "team updated", "team_id", id, "toggle", "added")
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With возвращает дочерний логгер с постоянными атрибутами
	With(args ...any) Logger
}
