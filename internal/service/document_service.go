package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type DocumentService interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Get(ctx context.Context, id int64) (*domain.Document, error)
	ListByTeam(ctx context.Context, teamID int64) ([]*domain.Document, error)
	ListAll(ctx context.Context) (map[int64][]*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Delete(ctx context.Context, id int64) error
	DeleteDocumentsForTeam(ctx context.Context, teamID int64) error
}
