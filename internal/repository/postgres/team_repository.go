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

type teamRepository struct {
	executor db.DBExecutor
}

func NewTeamRepository(executor db.DBExecutor) *teamRepository {
	return &teamRepository{executor: executor}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) (bool, error) {
	query := `
		INSERT INTO teams (id, note, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at
	`

	err := r.executor.QueryRowContext(ctx, query, team.ID, team.Note, time.Now()).Scan(&team.CreatedAt)
	if err != nil {
		// ON CONFLICT DO NOTHING не возвращает строк
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	team.UpdatedAt = nil

	return true, nil
}

func (r *teamRepository) Lock(ctx context.Context, id int64) error {
	query := `
		SELECT id
		FROM teams
		WHERE id = $1
		FOR UPDATE
	`

	var lockedID int64
	err := r.executor.QueryRowContext(ctx, query, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	return nil
}

func (r *teamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.executor.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM teams WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT id, note, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	var note sql.NullString
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&note,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	team.Note = nullStringPtr(note)
	team.UpdatedAt = nullTimePtr(updatedAt)

	members, err := r.members(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT id, note, created_at, updated_at
		FROM teams
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		team := &domain.Team{}
		var note sql.NullString
		var updatedAt sql.NullTime
		if err := rows.Scan(&team.ID, &note, &team.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		team.Note = nullStringPtr(note)
		team.UpdatedAt = nullTimePtr(updatedAt)
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, team := range teams {
		members, err := r.members(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		team.Members = members
	}

	return teams, nil
}

func (r *teamRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.executor.QueryContext(ctx, `SELECT id FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *teamRepository) UpdateNote(ctx context.Context, id int64, note *string) error {
	query := `
		UPDATE teams
		SET note = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id, note, time.Now())
	if err != nil {
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *teamRepository) AddMember(ctx context.Context, teamID, memberID int64) error {
	query := `
		INSERT INTO team_members (member_id, team_id, joined_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.executor.ExecContext(ctx, query, memberID, teamID, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		// команду или участника удалили параллельно
		if isForeignKeyViolation(err) {
			return repository.ErrNotFound
		}
		return err
	}

	return nil
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID, memberID int64) error {
	query := `
		DELETE FROM team_members
		WHERE team_id = $1 AND member_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, memberID)
	if err != nil {
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *teamRepository) RemoveAllMembers(ctx context.Context, teamID int64) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID)
	return err
}

func (r *teamRepository) FindByMember(ctx context.Context, memberID int64) (int64, error) {
	var teamID int64
	err := r.executor.QueryRowContext(ctx, `SELECT team_id FROM team_members WHERE member_id = $1`, memberID).Scan(&teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}

	return teamID, nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *teamRepository) members(ctx context.Context, teamID int64) ([]*domain.Member, error) {
	query := `
		SELECT m.id, m.name, m.role, m.email, m.phone, m.track, m.created_at, m.updated_at
		FROM team_members tm
		JOIN members m ON m.id = tm.member_id
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at, m.id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
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
