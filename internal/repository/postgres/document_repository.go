package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/team-attendance/internal/db"
	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

// documentRepository хранит только метаданные, содержимое лежит в объектном хранилище
type documentRepository struct {
	executor db.DBExecutor
}

func NewDocumentRepository(executor db.DBExecutor) *documentRepository {
	return &documentRepository{executor: executor}
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	doc := &domain.Document{}
	err := row.Scan(
		&doc.ID,
		&doc.TeamID,
		&doc.Title,
		&doc.Description,
		&doc.StorageKey,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (team_id, title, description, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return r.executor.QueryRowContext(
		ctx,
		query,
		doc.TeamID,
		doc.Title,
		doc.Description,
		doc.StorageKey,
		createdAt,
	).Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := `
		SELECT id, team_id, title, description, storage_key, created_at
		FROM documents
		WHERE id = $1
	`

	doc, err := scanDocument(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return doc, nil
}

func (r *documentRepository) ListByTeam(ctx context.Context, teamID int64) ([]*domain.Document, error) {
	query := `
		SELECT id, team_id, title, description, storage_key, created_at
		FROM documents
		WHERE team_id = $1
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (r *documentRepository) Update(ctx context.Context, doc *domain.Document) error {
	query := `
		UPDATE documents
		SET title = $2, description = $3, storage_key = $4
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, doc.ID, doc.Title, doc.Description, doc.StorageKey)
	if err != nil {
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectOneRow(result, repository.ErrNotFound)
}

func (r *documentRepository) DeleteByTeam(ctx context.Context, teamID int64) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM documents WHERE team_id = $1`, teamID)
	return err
}
