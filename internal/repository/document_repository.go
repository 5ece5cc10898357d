package repository

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	ListByTeam(ctx context.Context, teamID int64) ([]*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id int64) error
	DeleteByTeam(ctx context.Context, teamID int64) error
}
