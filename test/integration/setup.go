//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/team-attendance/internal/db"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Отдельный контейнер на каждый тест, схема накатывается миграциями приложения
	container, err := postgres.Run(ctx,
		"postgres:17.7",
		postgres.WithDatabase("attendance_test"),
		postgres.WithUsername("attendance"),
		postgres.WithPassword("attendance"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	require.NoError(t, conn.Ping())

	// Накатываем встроенные миграции goose
	require.NoError(t, db.Migrate(ctx, conn), "не удалось применить миграции")

	t.Cleanup(func() {
		conn.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return conn
}
