package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type sessionService struct {
	store repository.Store
	log   logging.Logger
}

func NewSessionService(store repository.Store, log logging.Logger) SessionService {
	return &sessionService{
		store: store,
		log:   log.With("service", "session"),
	}
}

func (s *sessionService) CreateSessions(ctx context.Context, teamID int64, slots []domain.SessionSlot) ([]*domain.Session, error) {
	if len(slots) == 0 {
		return nil, domain.NewInvalidArgumentError("sessions list is empty")
	}

	normalized := make([]domain.SessionSlot, 0, len(slots))
	for _, slot := range slots {
		n, err := slot.Normalize()
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}

	var created []*domain.Session
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Teams().Lock(ctx, teamID); err != nil {
			return mapNotFound(err, func() error { return teamNotFound(teamID) })
		}

		team, err := repos.Teams().GetByID(ctx, teamID)
		if err != nil {
			return mapNotFound(err, func() error { return teamNotFound(teamID) })
		}

		existing, err := repos.Sessions().ListByTeam(ctx, teamID)
		if err != nil {
			return err
		}
		taken := make(map[domain.SessionSlot]struct{}, len(existing)+len(normalized))
		for _, session := range existing {
			taken[session.Slot()] = struct{}{}
		}

		batch := make([]*domain.Session, 0, len(normalized))
		for _, slot := range normalized {
			if _, ok := taken[slot]; ok {
				return duplicateSession(teamID, slot)
			}
			taken[slot] = struct{}{}

			batch = append(batch, &domain.Session{
				TeamID:      teamID,
				Date:        slot.Date,
				Time:        slot.Time,
				Attendances: BuildRoster(team.Members),
			})
		}

		for _, session := range batch {
			if err := repos.Sessions().Create(ctx, session); err != nil {
				if errors.Is(err, repository.ErrAlreadyExists) {
					return duplicateSession(teamID, session.Slot())
				}
				return err
			}
		}

		created = batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "sessions created", "team_id", teamID, "count", len(created))
	return created, nil
}

func duplicateSession(teamID int64, slot domain.SessionSlot) error {
	return domain.NewConflictError(fmt.Sprintf("session %s %s already exists in team %d", slot.Date, slot.Time, teamID))
}

// GetSessions возвращает занятия команды в порядке создания вместе с записями
func (s *sessionService) GetSessions(ctx context.Context, teamID int64) ([]*domain.Session, error) {
	var sessions []*domain.Session
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Teams().Exists(ctx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return teamNotFound(teamID)
		}

		sessions, err = repos.Sessions().ListByTeam(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *sessionService) GetAllSessions(ctx context.Context) (map[int64][]*domain.Session, error) {
	result := make(map[int64][]*domain.Session)
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		ids, err := repos.Teams().ListIDs(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			sessions, err := repos.Sessions().ListByTeam(ctx, id)
			if err != nil {
				return err
			}
			result[id] = sessions
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteSession удаляет занятие команды вместе с его записями.
// Занятие другой команды считается ненайденным.
func (s *sessionService) DeleteSession(ctx context.Context, teamID, sessionID int64) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Teams().Lock(ctx, teamID); err != nil {
			return mapNotFound(err, func() error { return teamNotFound(teamID) })
		}

		// при чужом занятии транзакция откатит удаление записей
		if err := repos.Attendances().DeleteBySession(ctx, sessionID); err != nil {
			return err
		}
		err := repos.Sessions().Delete(ctx, teamID, sessionID)
		return mapNotFound(err, func() error {
			return domain.NewNotFoundError(fmt.Sprintf("session %d in team %d", sessionID, teamID))
		})
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "session deleted", "team_id", teamID, "session_id", sessionID)
	return nil
}
