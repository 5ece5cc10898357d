package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type TeamService interface {
	// SetMembers создает команду или переключает участников существующей
	SetMembers(ctx context.Context, teamID int64, note *string, memberIDs []int64) (int64, error)
	RemoveMember(ctx context.Context, memberID int64) error
	MembershipRemover
	DeleteTeam(ctx context.Context, teamID int64) error
	GetTeam(ctx context.Context, teamID int64) (*domain.Team, error)
	GetAllTeams(ctx context.Context) ([]*domain.Team, error)
}

// DocumentCleaner удаляет документы команды перед удалением самой команды
type DocumentCleaner interface {
	DeleteDocumentsForTeam(ctx context.Context, teamID int64) error
}
