package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type teamService struct {
	store repository.Store
	docs  DocumentCleaner
	log   logging.Logger
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(store repository.Store, docs DocumentCleaner, log logging.Logger) TeamService {
	return &teamService{
		store: store,
		docs:  docs,
		log:   log.With("service", "team"),
	}
}

// SetMembers для новой команды создает её ровно с переданными участниками.
// Для существующей команды каждый id переключается отдельной транзакцией:
// отсутствующий участник добавляется, присутствующий удаляется.
// Ошибка прерывает обработку оставшихся id, уже выполненные переключения сохраняются.
func (s *teamService) SetMembers(ctx context.Context, teamID int64, note *string, memberIDs []int64) (int64, error) {
	created, err := s.createTeam(ctx, teamID, note, memberIDs)
	if err != nil {
		return 0, err
	}
	if created {
		s.log.Info(ctx, "team created", "team_id", teamID, "members", len(memberIDs))
		return teamID, nil
	}

	if note != nil {
		err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
			if err := repos.Teams().Lock(ctx, teamID); err != nil {
				return mapNotFound(err, func() error { return teamNotFound(teamID) })
			}
			return repos.Teams().UpdateNote(ctx, teamID, note)
		})
		if err != nil {
			return 0, err
		}
	}

	for i, memberID := range memberIDs {
		toggle, err := s.toggle(ctx, teamID, memberID)
		if err != nil {
			s.log.Warn(ctx, "toggle aborted", "team_id", teamID, "member_id", memberID, "processed", i, "error", err)
			return 0, err
		}
		s.log.Info(ctx, "member toggled", "team_id", teamID, "member_id", memberID, "toggle", toggle.String())
	}

	return teamID, nil
}

// createTeam возвращает false, если команда уже существует
func (s *teamService) createTeam(ctx context.Context, teamID int64, note *string, memberIDs []int64) (bool, error) {
	created := false
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Teams().Exists(ctx, teamID)
		if err != nil || exists {
			return err
		}

		ids := uniqueIDs(memberIDs)
		members, err := repos.Members().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if missing, ok := firstMissing(ids, members); ok {
			return memberNotFound(missing)
		}

		ok, err := repos.Teams().Create(ctx, &domain.Team{ID: teamID, Note: note})
		if err != nil || !ok {
			// команду успели создать параллельно, дальше работаем как с существующей
			return err
		}

		for _, id := range ids {
			if err := repos.Teams().AddMember(ctx, teamID, id); err != nil {
				if errors.Is(err, repository.ErrAlreadyExists) {
					return domain.NewConflictError(fmt.Sprintf("member %d already belongs to another team", id))
				}
				return err
			}
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *teamService) toggle(ctx context.Context, teamID, memberID int64) (domain.Toggle, error) {
	var toggle domain.Toggle
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Teams().Lock(ctx, teamID); err != nil {
			return mapNotFound(err, func() error { return teamNotFound(teamID) })
		}

		member, err := repos.Members().GetByID(ctx, memberID)
		if err != nil {
			return mapNotFound(err, func() error { return memberNotFound(memberID) })
		}

		currentTeamID, err := repos.Teams().FindByMember(ctx, memberID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			toggle = domain.ToggleAdded
			return s.addMember(ctx, repos, teamID, member)
		case err != nil:
			return err
		case currentTeamID != teamID:
			return domain.NewConflictError(fmt.Sprintf("member %d already belongs to team %d", memberID, currentTeamID))
		default:
			toggle = domain.ToggleRemoved
			return s.removeMember(ctx, repos, teamID, memberID)
		}
	})
	if err != nil {
		return 0, err
	}
	return toggle, nil
}

// addMember добавляет участника и заводит ему запись в каждом существующем занятии
func (s *teamService) addMember(ctx context.Context, repos repository.Repositories, teamID int64, member *domain.Member) error {
	if err := repos.Teams().AddMember(ctx, teamID, member.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			// участника успели добавить в другую команду параллельно
			return domain.NewConflictError(fmt.Sprintf("member %d already belongs to another team", member.ID))
		case errors.Is(err, repository.ErrNotFound):
			return memberNotFound(member.ID)
		}
		return err
	}

	sessions, err := repos.Sessions().ListByTeam(ctx, teamID)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		record := BuildOne(member)
		record.SessionID = session.ID
		if err := repos.Attendances().Create(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// removeMember удаляет записи участника во всех занятиях команды и само членство
func (s *teamService) removeMember(ctx context.Context, repos repository.Repositories, teamID, memberID int64) error {
	removed, err := repos.Attendances().DeleteByTeamMember(ctx, teamID, memberID)
	if err != nil {
		return err
	}
	s.log.Debug(ctx, "attendance records removed", "team_id", teamID, "member_id", memberID, "count", removed)

	return repos.Teams().RemoveMember(ctx, teamID, memberID)
}

// RemoveMember убирает участника из его команды. Если участник ни в одной команде, ничего не делает.
func (s *teamService) RemoveMember(ctx context.Context, memberID int64) error {
	return s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return s.DetachMember(ctx, repos, memberID)
	})
}

// DetachMember делает то же, что RemoveMember, но в уже открытой транзакции
func (s *teamService) DetachMember(ctx context.Context, repos repository.Repositories, memberID int64) error {
	teamID, err := repos.Teams().FindByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := repos.Teams().Lock(ctx, teamID); err != nil {
		return mapNotFound(err, func() error { return teamNotFound(teamID) })
	}

	if err := s.removeMember(ctx, repos, teamID, memberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	s.log.Info(ctx, "member removed from team", "team_id", teamID, "member_id", memberID)
	return nil
}

// DeleteTeam сначала удаляет документы команды, затем в одной транзакции
// записи посещаемости, занятия, членство и саму команду
func (s *teamService) DeleteTeam(ctx context.Context, teamID int64) error {
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Teams().Exists(ctx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return teamNotFound(teamID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.docs.DeleteDocumentsForTeam(ctx, teamID); err != nil {
		return fmt.Errorf("delete documents of team %d: %w", teamID, err)
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Teams().Lock(ctx, teamID); err != nil {
			return mapNotFound(err, func() error { return teamNotFound(teamID) })
		}
		if err := repos.Attendances().DeleteByTeam(ctx, teamID); err != nil {
			return err
		}
		if err := repos.Sessions().DeleteByTeam(ctx, teamID); err != nil {
			return err
		}
		if err := repos.Teams().RemoveAllMembers(ctx, teamID); err != nil {
			return err
		}
		// строки документов, созданных после очистки, не должны пережить команду
		if err := repos.Documents().DeleteByTeam(ctx, teamID); err != nil {
			return err
		}
		return repos.Teams().Delete(ctx, teamID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "team deleted", "team_id", teamID)
	return nil
}

// GetTeam получает команду с участниками
func (s *teamService) GetTeam(ctx context.Context, teamID int64) (*domain.Team, error) {
	var team *domain.Team
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		team, err = repos.Teams().GetByID(ctx, teamID)
		return mapNotFound(err, func() error { return teamNotFound(teamID) })
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) GetAllTeams(ctx context.Context) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		teams, err = repos.Teams().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// firstMissing ищет первый id из ids, которого нет среди members
func firstMissing(ids []int64, members []*domain.Member) (int64, bool) {
	found := make(map[int64]struct{}, len(members))
	for _, m := range members {
		found[m.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return id, true
		}
	}
	return 0, false
}
