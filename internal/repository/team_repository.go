package repository

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type TeamRepository interface {
	// Create создает команду, если её ещё нет. Возвращает false, если команда уже была.
	Create(ctx context.Context, team *domain.Team) (bool, error)
	// Lock блокирует строку команды до конца транзакции, ErrNotFound если команды нет
	Lock(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	ListIDs(ctx context.Context) ([]int64, error)
	UpdateNote(ctx context.Context, id int64, note *string) error
	AddMember(ctx context.Context, teamID, memberID int64) error
	RemoveMember(ctx context.Context, teamID, memberID int64) error
	RemoveAllMembers(ctx context.Context, teamID int64) error
	// FindByMember ищет команду участника, ErrNotFound если участник ни в одной команде
	FindByMember(ctx context.Context, memberID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
