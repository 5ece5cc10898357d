package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type MemberService interface {
	Register(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Get(ctx context.Context, id int64) (*domain.Member, error)
	ListByRole(ctx context.Context, role string) ([]*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) (*domain.Member, error)
	// Delete удаляет аккаунт, предварительно убрав участника из его команды
	Delete(ctx context.Context, id int64) error
}

// MembershipRemover - часть TeamService, нужная при удалении аккаунта.
// DetachMember работает внутри транзакции вызывающего, чтобы выход из команды
// и удаление самого участника фиксировались вместе.
type MembershipRemover interface {
	DetachMember(ctx context.Context, repos repository.Repositories, memberID int64) error
}
