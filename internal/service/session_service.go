package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type SessionService interface {
	// CreateSessions создает все занятия пакета или ни одного
	CreateSessions(ctx context.Context, teamID int64, slots []domain.SessionSlot) ([]*domain.Session, error)
	GetSessions(ctx context.Context, teamID int64) ([]*domain.Session, error)
	GetAllSessions(ctx context.Context) (map[int64][]*domain.Session, error)
	DeleteSession(ctx context.Context, teamID, sessionID int64) error
}
