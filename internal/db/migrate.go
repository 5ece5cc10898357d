package db

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/team-attendance/internal/db/migrations"
	"github.com/pressly/goose/v3"
)

// gooseUpContext подменяется в тестах
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate накатывает встроенные миграции схемы
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
