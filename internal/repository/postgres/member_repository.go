package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/team-attendance/internal/db"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type memberRepository struct {
	executor db.DBExecutor
}

func NewMemberRepository(executor db.DBExecutor) *memberRepository {
	return &memberRepository{executor: executor}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.Member, error) {
	member := &domain.Member{}
	var role string
	var email, phone, track sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&member.ID,
		&member.Name,
		&role,
		&email,
		&phone,
		&track,
		&member.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	member.Role = domain.Role(role)
	member.Email = nullStringPtr(email)
	member.Phone = nullStringPtr(phone)
	member.Track = nullStringPtr(track)
	member.UpdatedAt = nullTimePtr(updatedAt)

	return member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (id, name, role, email, phone, track, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.ID,
		member.Name,
		string(member.Role),
		member.Email,
		member.Phone,
		member.Track,
		time.Now(),
	).Scan(&member.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		return err
	}
	member.UpdatedAt = nil

	return nil
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members
		SET name = $2, role = $3, email = $4, phone = $5, track = $6, updated_at = $7
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.ID,
		member.Name,
		string(member.Role),
		member.Email,
		member.Phone,
		member.Track,
		time.Now(),
	).Scan(&member.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	member.UpdatedAt = nullTimePtr(updatedAt)

	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `
		SELECT id, name, role, email, phone, track, created_at, updated_at
		FROM members
		WHERE id = $1
	`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.executor.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *memberRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Member, error) {
	if len(ids) == 0 {
		return []*domain.Member{}, nil
	}

	query := `
		SELECT id, name, role, email, phone, track, created_at, updated_at
		FROM members
		WHERE id IN (` + placeholders(1, len(ids)) + `)
		ORDER BY id
	`

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	return r.query(ctx, query, args...)
}

func (r *memberRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Member, error) {
	query := `
		SELECT id, name, role, email, phone, track, created_at, updated_at
		FROM members
		WHERE role = $1
		ORDER BY id
	`

	return r.query(ctx, query, string(role))
}

// Delete возвращает ErrAlreadyExists, пока на участника ссылаются team_members или attendances
func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrAlreadyExists
		}
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *memberRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Member, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
