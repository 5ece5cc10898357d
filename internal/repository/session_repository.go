package repository

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type SessionRepository interface {
	// Create сохраняет занятие вместе с его записями посещаемости и заполняет идентификаторы
	Create(ctx context.Context, session *domain.Session) error
	// ListByTeam возвращает занятия команды по порядку создания вместе с записями
	ListByTeam(ctx context.Context, teamID int64) ([]*domain.Session, error)
	Delete(ctx context.Context, teamID, sessionID int64) error
	DeleteByTeam(ctx context.Context, teamID int64) error
}
