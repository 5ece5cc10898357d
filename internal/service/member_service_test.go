package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/bagdasarian/team-attendance/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberService_Register(t *testing.T) {
	t.Run("успешная регистрация", func(t *testing.T) {
		e := newEngine(t)

		member, err := e.members.Register(context.Background(), &domain.Member{
			ID:    1,
			Name:  "  Alice ",
			Role:  "admin",
			Track: ptr("BE"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice", member.Name)
		assert.Equal(t, domain.RoleAdmin, member.Role)
		assert.False(t, member.CreatedAt.IsZero())
	})

	t.Run("ошибка: id уже занят", func(t *testing.T) {
		e := newEngine(t)
		e.register(t, 1)

		_, err := e.members.Register(context.Background(), &domain.Member{ID: 1, Name: "Bob", Role: domain.RoleStudent})

		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("ошибки валидации", func(t *testing.T) {
		e := newEngine(t)

		tests := []struct {
			name   string
			member *domain.Member
		}{
			{name: "пустое имя", member: &domain.Member{ID: 1, Name: " ", Role: domain.RoleStudent}},
			{name: "неизвестная роль", member: &domain.Member{ID: 1, Name: "Alice", Role: "GUEST"}},
			{name: "нулевой id", member: &domain.Member{Name: "Alice", Role: domain.RoleStudent}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := e.members.Register(context.Background(), tt.member)
				assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
			})
		}
	})
}

func TestMemberService_GetUpdateList(t *testing.T) {
	e := newEngine(t)
	e.register(t, 1, 2)
	ctx := context.Background()

	updated, err := e.members.Update(ctx, &domain.Member{ID: 2, Name: "Bob", Role: domain.RoleAdmin, Email: ptr("bob@example.com")})
	require.NoError(t, err)
	assert.NotNil(t, updated.UpdatedAt)

	member, err := e.members.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", *member.Email)

	admins, err := e.members.ListByRole(ctx, "ADMIN")
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, int64(2), admins[0].ID)

	_, err = e.members.ListByRole(ctx, "guest")
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	_, err = e.members.Get(ctx, 9)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = e.members.Update(ctx, &domain.Member{ID: 9, Name: "x", Role: domain.RoleStudent})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMemberService_Delete(t *testing.T) {
	t.Run("удаление аккаунта убирает участника из команды и его записи", func(t *testing.T) {
		e := newEngine(t)
		e.teamSeven(t)

		require.NoError(t, e.members.Delete(context.Background(), 1))

		assert.Equal(t, []int64{2}, e.teamMembers(t, 7))
		assert.Equal(t, []int64{2}, e.sessionsOf(t, 7)[0].MemberIDs())
		_, err := e.members.Get(context.Background(), 1)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("выход из команды выполняется в той же транзакции до удаления участника", func(t *testing.T) {
		store := memory.NewStore()
		teams := new(MockMembershipRemover)
		service := NewMemberService(store, teams, logging.Nop())
		ctx := context.Background()

		_, err := service.Register(ctx, &domain.Member{ID: 1, Name: "Alice", Role: domain.RoleStudent})
		require.NoError(t, err)

		teams.On("DetachMember", mock.Anything, mock.Anything, int64(1)).
			Run(func(args mock.Arguments) {
				repos := args.Get(1).(repository.Repositories)
				exists, err := repos.Members().Exists(ctx, 1)
				assert.NoError(t, err)
				assert.True(t, exists)
			}).
			Return(nil).Once()

		require.NoError(t, service.Delete(ctx, 1))
		teams.AssertExpectations(t)
	})

	t.Run("повторное добавление в команду во время удаления откатывает всё", func(t *testing.T) {
		e := newEngine(t)
		e.teamSeven(t)
		ctx := context.Background()

		// участник снова попадает в команду 7 между выходом из неё и удалением строки
		readd := &rejoiningRemover{inner: e.teams, teamID: 7}
		service := NewMemberService(e.store, readd, logging.Nop())

		err := service.Delete(ctx, 1)

		assert.True(t, errors.Is(err, domain.ErrConflict))
		assert.Equal(t, []int64{1, 2}, e.teamMembers(t, 7))
		assert.Equal(t, []int64{1, 2}, e.sessionsOf(t, 7)[0].MemberIDs())
		_, err = e.members.Get(ctx, 1)
		assert.NoError(t, err, "участник не удален")

		// обычное удаление после этого проходит и не оставляет записей
		require.NoError(t, e.members.Delete(ctx, 1))
		assert.Equal(t, []int64{2}, e.teamMembers(t, 7))
		assert.Equal(t, []int64{2}, e.sessionsOf(t, 7)[0].MemberIDs())

		e.register(t, 1)
		_, err = e.teams.SetMembers(ctx, 8, nil, []int64{1})
		require.NoError(t, err)
	})

	t.Run("ошибка выхода из команды оставляет участника", func(t *testing.T) {
		e := newEngine(t)
		e.teamSeven(t)
		teams := new(MockMembershipRemover)
		service := NewMemberService(e.store, teams, logging.Nop())

		teams.On("DetachMember", mock.Anything, mock.Anything, int64(1)).Return(errors.New("lock timeout")).Once()

		err := service.Delete(context.Background(), 1)

		require.Error(t, err)
		_, err = e.members.Get(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("ошибка: участник не найден", func(t *testing.T) {
		teams := new(MockMembershipRemover)
		service := NewMemberService(memory.NewStore(), teams, logging.Nop())

		err := service.Delete(context.Background(), 1)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		teams.AssertNotCalled(t, "DetachMember", mock.Anything, mock.Anything, mock.Anything)
	})
}

// rejoiningRemover выводит участника из команды и сразу возвращает его обратно,
// как сделал бы параллельный SetMembers
type rejoiningRemover struct {
	inner  MembershipRemover
	teamID int64
}

func (r *rejoiningRemover) DetachMember(ctx context.Context, repos repository.Repositories, memberID int64) error {
	if err := r.inner.DetachMember(ctx, repos, memberID); err != nil {
		return err
	}
	return repos.Teams().AddMember(ctx, r.teamID, memberID)
}
