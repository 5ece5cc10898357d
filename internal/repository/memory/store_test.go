package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, teamID int64, memberIDs ...int64) {
	t.Helper()
	err := s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Teams().Create(ctx, &domain.Team{ID: teamID}); err != nil {
			return err
		}
		for _, id := range memberIDs {
			if err := repos.Members().Create(ctx, &domain.Member{ID: id, Name: "m", Role: domain.RoleStudent}); err != nil {
				return err
			}
			if err := repos.Teams().AddMember(ctx, teamID, id); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestStore_WithinTx_RollbackOnError(t *testing.T) {
	s := NewStore()
	seed(t, s, 7, 1)

	failure := errors.New("boom")
	err := s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		require.NoError(t, repos.Teams().RemoveMember(ctx, 7, 1))
		return failure
	})
	assert.ErrorIs(t, err, failure)

	err = s.ReadOnly(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		team, err := repos.Teams().GetByID(ctx, 7)
		require.NoError(t, err)
		assert.True(t, team.HasMember(1), "изменения откатились")
		return nil
	})
	require.NoError(t, err)
}

func TestStore_WithinTx_RollbackOnPanic(t *testing.T) {
	s := NewStore()
	seed(t, s, 7, 1)

	assert.Panics(t, func() {
		_ = s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			_ = repos.Teams().Delete(ctx, 7)
			panic("boom")
		})
	})

	err := s.ReadOnly(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Teams().Exists(ctx, 7)
		assert.True(t, exists)
		return err
	})
	require.NoError(t, err)
}

func TestStore_ReadOnly_DiscardsWrites(t *testing.T) {
	s := NewStore()
	seed(t, s, 7)

	require.NoError(t, s.ReadOnly(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		return repos.Teams().Delete(ctx, 7)
	}))

	require.NoError(t, s.ReadOnly(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Teams().Exists(ctx, 7)
		assert.True(t, exists)
		return err
	}))
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.WithinTx(ctx, func(context.Context, repository.Repositories) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestTeamRepository_Membership(t *testing.T) {
	s := NewStore()
	seed(t, s, 7, 1, 2)
	seed(t, s, 8)

	err := s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		teams := repos.Teams()

		created, err := teams.Create(ctx, &domain.Team{ID: 7})
		require.NoError(t, err)
		assert.False(t, created, "команда уже есть")

		assert.ErrorIs(t, teams.AddMember(ctx, 8, 1), repository.ErrAlreadyExists)
		assert.ErrorIs(t, teams.RemoveMember(ctx, 8, 1), repository.ErrNotFound)

		teamID, err := teams.FindByMember(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(7), teamID)

		team, err := teams.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, team.MemberIDs())

		require.NoError(t, teams.RemoveAllMembers(ctx, 7))
		_, err = teams.FindByMember(ctx, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		ids, err := teams.ListIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{7, 8}, ids)
		return nil
	})
	require.NoError(t, err)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	s := NewStore()
	seed(t, s, 7, 1, 2)
	seed(t, s, 8)

	err := s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		session := &domain.Session{
			TeamID: 7,
			Date:   "2024-01-01",
			Time:   "09:00",
			Attendances: []*domain.AttendanceRecord{
				{Member: domain.MemberRef{ID: 1}, Status: domain.StatusNotRecorded},
				{Member: domain.MemberRef{ID: 2}, Status: domain.StatusNotRecorded},
			},
		}
		require.NoError(t, repos.Sessions().Create(ctx, session))
		assert.NotZero(t, session.ID)
		assert.NotZero(t, session.Attendances[1].ID)

		dup := &domain.Session{TeamID: 7, Date: "2024-01-01", Time: "09:00"}
		assert.ErrorIs(t, repos.Sessions().Create(ctx, dup), repository.ErrAlreadyExists)

		sessions, err := repos.Sessions().ListByTeam(ctx, 7)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, []int64{1, 2}, sessions[0].MemberIDs())
		assert.Equal(t, "m", sessions[0].Attendances[0].Member.Name)

		n, err := repos.Attendances().DeleteByTeamMember(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		assert.ErrorIs(t, repos.Sessions().Delete(ctx, 8, session.ID), repository.ErrNotFound)

		require.NoError(t, repos.Attendances().DeleteBySession(ctx, session.ID))
		require.NoError(t, repos.Sessions().Delete(ctx, 7, session.ID))

		sessions, err = repos.Sessions().ListByTeam(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, sessions)
		return nil
	})
	require.NoError(t, err)
}

func TestAttendanceRepository_Update(t *testing.T) {
	s := NewStore()
	seed(t, s, 7, 1)

	var recordID int64
	require.NoError(t, s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		session := &domain.Session{
			TeamID:      7,
			Date:        "2024-01-01",
			Time:        "09:00",
			Attendances: []*domain.AttendanceRecord{{Member: domain.MemberRef{ID: 1}, Status: domain.StatusNotRecorded}},
		}
		if err := repos.Sessions().Create(ctx, session); err != nil {
			return err
		}
		recordID = session.Attendances[0].ID
		return nil
	}))

	score := int64(10)
	note := "ok"
	require.NoError(t, s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		return repos.Attendances().Update(ctx, &domain.AttendanceRecord{
			ID:     recordID,
			Status: domain.StatusPresent,
			Note:   &note,
			Score:  &score,
		})
	}))
	note = "changed after write"

	require.NoError(t, s.ReadOnly(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		record, err := repos.Attendances().GetByID(ctx, recordID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPresent, record.Status)
		assert.Equal(t, "ok", *record.Note)
		assert.Equal(t, int64(10), *record.Score)

		assert.ErrorIs(t, repos.Attendances().Update(ctx, &domain.AttendanceRecord{ID: 55}), repository.ErrNotFound)
		return nil
	}))
}

func TestMemberRepository_DeleteReferenced(t *testing.T) {
	s := NewStore()
	seed(t, s, 7, 1)

	require.NoError(t, s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		assert.ErrorIs(t, repos.Members().Delete(ctx, 1), repository.ErrAlreadyExists, "участник в команде")

		session := &domain.Session{
			TeamID:      7,
			Date:        "2024-01-01",
			Time:        "09:00",
			Attendances: []*domain.AttendanceRecord{{Member: domain.MemberRef{ID: 1}, Status: domain.StatusNotRecorded}},
		}
		require.NoError(t, repos.Sessions().Create(ctx, session))
		require.NoError(t, repos.Teams().RemoveMember(ctx, 7, 1))
		assert.ErrorIs(t, repos.Members().Delete(ctx, 1), repository.ErrAlreadyExists, "остались записи посещаемости")

		_, err := repos.Attendances().DeleteByTeamMember(ctx, 7, 1)
		require.NoError(t, err)
		return repos.Members().Delete(ctx, 1)
	}))
}

func TestMemberAndDocumentRepositories(t *testing.T) {
	s := NewStore()
	seed(t, s, 7)

	require.NoError(t, s.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		members := repos.Members()
		require.NoError(t, members.Create(ctx, &domain.Member{ID: 3, Name: "Carol", Role: domain.RoleAdmin}))
		require.NoError(t, members.Create(ctx, &domain.Member{ID: 1, Name: "Alice", Role: domain.RoleStudent}))
		assert.ErrorIs(t, members.Create(ctx, &domain.Member{ID: 1}), repository.ErrAlreadyExists)

		found, err := members.FindByIDs(ctx, []int64{3, 1, 9, 1})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, int64(1), found[0].ID)

		admins, err := members.ListByRole(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, "Carol", admins[0].Name)

		updated := &domain.Member{ID: 1, Name: "Alice B", Role: domain.RoleStudent}
		require.NoError(t, members.Update(ctx, updated))
		assert.NotNil(t, updated.UpdatedAt)
		assert.False(t, updated.CreatedAt.IsZero())

		docs := repos.Documents()
		doc := &domain.Document{TeamID: 7, Title: "t", Content: "body", StorageKey: "k"}
		require.NoError(t, docs.Create(ctx, doc))

		stored, err := docs.GetByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Empty(t, stored.Content)
		assert.Equal(t, "k", stored.StorageKey)

		assert.ErrorIs(t, docs.Create(ctx, &domain.Document{TeamID: 99}), repository.ErrNotFound)

		require.NoError(t, docs.DeleteByTeam(ctx, 7))
		list, err := docs.ListByTeam(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, list)
		return nil
	}))
}
