package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/team-attendance/internal/db"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

// Store - хранилище составов команд поверх PostgreSQL.
// Каждая единица работы выполняется в отдельной транзакции.
type Store struct {
	conn *sql.DB
}

func NewStore(conn *sql.DB) *Store {
	return &Store{conn: conn}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return db.WithTx(ctx, s.conn, nil, func(ctx context.Context, tx db.DBExecutor) error {
		return fn(ctx, NewRepositories(tx))
	})
}

func (s *Store) ReadOnly(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return db.WithTx(ctx, s.conn, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx db.DBExecutor) error {
		return fn(ctx, NewRepositories(tx))
	})
}

type repositories struct {
	executor db.DBExecutor
}

// NewRepositories привязывает репозитории к *sql.DB или *sql.Tx
func NewRepositories(executor db.DBExecutor) repository.Repositories {
	return &repositories{executor: executor}
}

func (r *repositories) Teams() repository.TeamRepository {
	return NewTeamRepository(r.executor)
}

func (r *repositories) Sessions() repository.SessionRepository {
	return NewSessionRepository(r.executor)
}

func (r *repositories) Attendances() repository.AttendanceRepository {
	return NewAttendanceRepository(r.executor)
}

func (r *repositories) Members() repository.MemberRepository {
	return NewMemberRepository(r.executor)
}

func (r *repositories) Documents() repository.DocumentRepository {
	return NewDocumentRepository(r.executor)
}
