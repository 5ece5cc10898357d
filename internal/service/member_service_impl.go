package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type memberService struct {
	store repository.Store
	teams MembershipRemover
	log   logging.Logger
}

func NewMemberService(store repository.Store, teams MembershipRemover, log logging.Logger) MemberService {
	return &memberService{
		store: store,
		teams: teams,
		log:   log.With("service", "member"),
	}
}

func validateMember(member *domain.Member) error {
	if member.ID <= 0 {
		return domain.NewInvalidArgumentError("member id must be positive")
	}
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return domain.NewInvalidArgumentError("member name is required")
	}
	role, err := domain.ParseRole(string(member.Role))
	if err != nil {
		return err
	}
	member.Role = role
	return nil
}

func (s *memberService) Register(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if err := validateMember(member); err != nil {
		return nil, err
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Members().Create(ctx, member)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.NewConflictError(fmt.Sprintf("member %d already exists", member.ID))
		}
		return nil, err
	}

	s.log.Info(ctx, "member registered", "member_id", member.ID, "role", string(member.Role))
	return member, nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*domain.Member, error) {
	var member *domain.Member
	err := s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		member, err = repos.Members().GetByID(ctx, id)
		return mapNotFound(err, func() error { return memberNotFound(id) })
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) ListByRole(ctx context.Context, role string) ([]*domain.Member, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	var members []*domain.Member
	err = s.store.ReadOnly(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		members, err = repos.Members().ListByRole(ctx, parsed)
		return err
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update перезаписывает профиль участника целиком
func (s *memberService) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if err := validateMember(member); err != nil {
		return nil, err
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		err := repos.Members().Update(ctx, member)
		return mapNotFound(err, func() error { return memberNotFound(member.ID) })
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Delete в одной транзакции убирает участника из команды вместе с его записями
// посещаемости и удаляет сам аккаунт
func (s *memberService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Members().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return memberNotFound(id)
		}

		if err := s.teams.DetachMember(ctx, repos, id); err != nil {
			return fmt.Errorf("remove member %d from team: %w", id, err)
		}

		err = repos.Members().Delete(ctx, id)
		if errors.Is(err, repository.ErrAlreadyExists) {
			// участника добавили в команду, пока шло удаление
			return domain.NewConflictError(fmt.Sprintf("member %d is still referenced by a team", id))
		}
		return mapNotFound(err, func() error { return memberNotFound(id) })
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "member deleted", "member_id", id)
	return nil
}
