package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/team-attendance/internal/db"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type attendanceRepository struct {
	executor db.DBExecutor
}

func NewAttendanceRepository(executor db.DBExecutor) *attendanceRepository {
	return &attendanceRepository{executor: executor}
}

func scanAttendance(row rowScanner) (*domain.AttendanceRecord, error) {
	record := &domain.AttendanceRecord{}
	var status string
	var note sql.NullString
	var score sql.NullInt64
	err := row.Scan(
		&record.ID,
		&record.SessionID,
		&record.Member.ID,
		&record.Member.Name,
		&status,
		&note,
		&score,
	)
	if err != nil {
		return nil, err
	}
	record.Status = domain.AttendanceStatus(status)
	record.Note = nullStringPtr(note)
	record.Score = nullInt64Ptr(score)

	return record, nil
}

func (r *attendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendances (session_id, member_id, status, note, score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		record.SessionID,
		record.Member.ID,
		string(record.Status),
		record.Note,
		record.Score,
	).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*domain.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.session_id, a.member_id, m.name, a.status, a.note, a.score
		FROM attendances a
		JOIN members m ON m.id = a.member_id
		WHERE a.id = $1
	`

	record, err := scanAttendance(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *domain.AttendanceRecord) error {
	query := `
		UPDATE attendances
		SET status = $2, note = $3, score = $4
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, record.ID, string(record.Status), record.Note, record.Score)
	if err != nil {
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *attendanceRepository) DeleteBySession(ctx context.Context, sessionID int64) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM attendances WHERE session_id = $1`, sessionID)
	return err
}

func (r *attendanceRepository) DeleteByTeamMember(ctx context.Context, teamID, memberID int64) (int64, error) {
	query := `
		DELETE FROM attendances a
		USING sessions s
		WHERE a.session_id = s.id AND s.team_id = $1 AND a.member_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, memberID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *attendanceRepository) DeleteByTeam(ctx context.Context, teamID int64) error {
	query := `
		DELETE FROM attendances a
		USING sessions s
		WHERE a.session_id = s.id AND s.team_id = $1
	`

	_, err := r.executor.ExecContext(ctx, query, teamID)
	return err
}

func (r *attendanceRepository) listByTeam(ctx context.Context, teamID int64) ([]*domain.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.session_id, a.member_id, m.name, a.status, a.note, a.score
		FROM attendances a
		JOIN sessions s ON s.id = a.session_id
		JOIN members m ON m.id = a.member_id
		WHERE s.team_id = $1
		ORDER BY a.id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
