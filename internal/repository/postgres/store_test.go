package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDB создает мок базы данных для тестов
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestStore_WithinTx(t *testing.T) {
	t.Run("репозитории работают внутри одной транзакции", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectExec("DELETE FROM team_members").
			WithArgs(int64(7), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			if err := repos.Teams().Lock(ctx, 7); err != nil {
				return err
			}
			return repos.Teams().RemoveMember(ctx, 7, 1)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка откатывает транзакцию", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			return repos.Teams().Lock(ctx, 7)
		})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_ReadOnly(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	expectedError := errors.New("read failed")
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM teams").WillReturnError(expectedError)
	mock.ExpectRollback()

	err := store.ReadOnly(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		_, err := repos.Teams().ListIDs(ctx)
		return err
	})

	assert.Equal(t, expectedError, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		from int
		n    int
		want string
	}{
		{name: "один аргумент", from: 1, n: 1, want: "$1"},
		{name: "три аргумента", from: 1, n: 3, want: "$1, $2, $3"},
		{name: "со сдвигом", from: 4, n: 2, want: "$4, $5"},
		{name: "пусто", from: 1, n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placeholders(tt.from, tt.n))
		})
	}
}
