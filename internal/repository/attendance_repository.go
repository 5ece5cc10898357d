package repository

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record *domain.AttendanceRecord) error
	GetByID(ctx context.Context, id int64) (*domain.AttendanceRecord, error)
	Update(ctx context.Context, record *domain.AttendanceRecord) error
	DeleteBySession(ctx context.Context, sessionID int64) error
	// DeleteByTeamMember удаляет записи участника во всех занятиях команды
	DeleteByTeamMember(ctx context.Context, teamID, memberID int64) (int64, error)
	DeleteByTeam(ctx context.Context, teamID int64) error
}
