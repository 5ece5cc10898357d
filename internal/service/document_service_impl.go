package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/bagdasarian/team-attendance/internal/storage/blob"
	"github.com/google/uuid"
)

// documentService хранит метаданные в Roster Store, а содержимое в объектном хранилище
type documentService struct {
	store   repository.Store
	objects blob.Store
	log     logging.Logger
}

func NewDocumentService(store repository.Store, objects blob.Store, log logging.Logger) DocumentService {
	return &documentService{
		store:   store,
		objects: objects,
		log:     log.With("service", "document"),
	}
}

// StorageKey генерирует ключ объекта для документа команды
func StorageKey(teamID int64) string {
	return fmt.Sprintf("teams/%d/docs/%v", teamID, uuid.New())
}

func documentNotFound(id int64) error {
	return domain.NewNotFoundError(fmt.Sprintf("document %d", id))
}

func validateDocument(doc *domain.Document) error {
	doc.Title = strings.TrimSpace(doc.Title)
	if doc.Title == "" {
		return domain.NewInvalidArgumentError("document title is required")
	}
	return nil
}

func (s *documentService) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	if err := s.requireTeam(ctx, doc.TeamID); err != nil {
		return nil, err
	}

	doc.StorageKey = StorageKey(doc.TeamID)
	if err := s.objects.Put(ctx, doc.StorageKey, []byte(doc.Content)); err != nil {
		return nil, err
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		err := repos.Documents().Create(ctx, doc)
		return mapNotFound(err, func() error { return teamNotFound(doc.TeamID) })
	})
	if err != nil {
		if delErr := s.objects.Delete(ctx, doc.StorageKey); delErr != nil {
			s.log.Warn(ctx, "orphan document object", "key", doc.StorageKey, "error", delErr)
		}
		return nil, err
	}

	s.log.Info(ctx, "document created", "team_id", doc.TeamID, "document_id", doc.ID)
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, id int64) (*domain.Document, error) {
	var doc *domain.Document
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		doc, err = repos.Documents().GetByID(ctx, id)
		return mapNotFound(err, func() error { return documentNotFound(id) })
	})
	if err != nil {
		return nil, err
	}

	if err := s.loadContent(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListByTeam(ctx context.Context, teamID int64) ([]*domain.Document, error) {
	var docs []*domain.Document
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Teams().Exists(ctx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return teamNotFound(teamID)
		}

		docs, err = repos.Documents().ListByTeam(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if err := s.loadContent(ctx, doc); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// ListAll группирует документы по командам, команды без документов тоже попадают в результат
func (s *documentService) ListAll(ctx context.Context) (map[int64][]*domain.Document, error) {
	result := make(map[int64][]*domain.Document)
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		ids, err := repos.Teams().ListIDs(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			docs, err := repos.Documents().ListByTeam(ctx, id)
			if err != nil {
				return err
			}
			result[id] = docs
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, docs := range result {
		for _, doc := range docs {
			if err := s.loadContent(ctx, doc); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// Update меняет заголовок, описание и содержимое, ключ объекта остается прежним
func (s *documentService) Update(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var existing *domain.Document
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		existing, err = repos.Documents().GetByID(ctx, doc.ID)
		return mapNotFound(err, func() error { return documentNotFound(doc.ID) })
	})
	if err != nil {
		return nil, err
	}

	if err := s.objects.Put(ctx, existing.StorageKey, []byte(doc.Content)); err != nil {
		return nil, err
	}

	existing.Title = doc.Title
	existing.Description = doc.Description
	existing.Content = doc.Content
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		err := repos.Documents().Update(ctx, existing)
		return mapNotFound(err, func() error { return documentNotFound(doc.ID) })
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *documentService) Delete(ctx context.Context, id int64) error {
	var doc *domain.Document
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		doc, err = repos.Documents().GetByID(ctx, id)
		return mapNotFound(err, func() error { return documentNotFound(id) })
	})
	if err != nil {
		return err
	}

	if err := s.objects.Delete(ctx, doc.StorageKey); err != nil {
		return err
	}

	return s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		err := repos.Documents().Delete(ctx, id)
		return mapNotFound(err, func() error { return documentNotFound(id) })
	})
}

// DeleteDocumentsForTeam удаляет объекты и метаданные всех документов команды
func (s *documentService) DeleteDocumentsForTeam(ctx context.Context, teamID int64) error {
	var docs []*domain.Document
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		docs, err = repos.Documents().ListByTeam(ctx, teamID)
		return err
	})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	for _, doc := range docs {
		if err := s.objects.Delete(ctx, doc.StorageKey); err != nil {
			return err
		}
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Documents().DeleteByTeam(ctx, teamID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "team documents deleted", "team_id", teamID, "count", len(docs))
	return nil
}

func (s *documentService) requireTeam(ctx context.Context, teamID int64) error {
	return s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Teams().Exists(ctx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return teamNotFound(teamID)
		}
		return nil
	})
}

// loadContent подгружает тело документа, отсутствующий объект дает пустое содержимое
func (s *documentService) loadContent(ctx context.Context, doc *domain.Document) error {
	body, err := s.objects.Get(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			s.log.Warn(ctx, "document object missing", "document_id", doc.ID, "key", doc.StorageKey)
			doc.Content = ""
			return nil
		}
		return err
	}
	doc.Content = string(body)
	return nil
}
