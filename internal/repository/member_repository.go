package repository

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// FindByIDs возвращает найденных участников, отсутствующие id пропускаются
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Member, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Member, error)
	// Delete возвращает ErrAlreadyExists, если участник еще состоит в команде или есть его записи
	Delete(ctx context.Context, id int64) error
}
