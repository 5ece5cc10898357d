package postgres

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/db"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type sessionRepository struct {
	executor db.DBExecutor
}

func NewSessionRepository(executor db.DBExecutor) *sessionRepository {
	return &sessionRepository{executor: executor}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (team_id, date, time)
		VALUES ($1, $2::date, $3::time)
		RETURNING id
	`

	err := r.executor.QueryRowContext(ctx, query, session.TeamID, session.Date, session.Time).Scan(&session.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		return err
	}

	attendanceRepo := NewAttendanceRepository(r.executor)
	for _, record := range session.Attendances {
		record.SessionID = session.ID
		if err := attendanceRepo.Create(ctx, record); err != nil {
			return err
		}
	}

	return nil
}

func (r *sessionRepository) ListByTeam(ctx context.Context, teamID int64) ([]*domain.Session, error) {
	query := `
		SELECT id, team_id, to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI')
		FROM sessions
		WHERE team_id = $1
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	byID := make(map[int64]*domain.Session)
	for rows.Next() {
		session := &domain.Session{Attendances: make([]*domain.AttendanceRecord, 0)}
		if err := rows.Scan(&session.ID, &session.TeamID, &session.Date, &session.Time); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
		byID[session.ID] = session
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		return sessions, nil
	}

	records, err := NewAttendanceRepository(r.executor).listByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if session, ok := byID[record.SessionID]; ok {
			session.Attendances = append(session.Attendances, record)
		}
	}

	return sessions, nil
}

func (r *sessionRepository) Delete(ctx context.Context, teamID, sessionID int64) error {
	query := `
		DELETE FROM sessions
		WHERE id = $1 AND team_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, sessionID, teamID)
	if err != nil {
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *sessionRepository) DeleteByTeam(ctx context.Context, teamID int64) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM sessions WHERE team_id = $1`, teamID)
	return err
}
