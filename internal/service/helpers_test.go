package service

import (
	"context"
	"testing"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
	"github.com/bagdasarian/team-attendance/internal/repository/memory"
	"github.com/bagdasarian/team-attendance/internal/storage/blob"
	"github.com/stretchr/testify/require"
)

// engine - сервисы поверх одного хранилища в памяти
type engine struct {
	store      *memory.Store
	objects    *blob.MemoryStore
	teams      TeamService
	sessions   SessionService
	attendance AttendanceService
	members    MemberService
	documents  DocumentService
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	log := logging.Nop()
	store := memory.NewStore()
	objects := blob.NewMemoryStore()
	documents := NewDocumentService(store, objects, log)
	teams := NewTeamService(store, documents, log)

	return &engine{
		store:      store,
		objects:    objects,
		teams:      teams,
		sessions:   NewSessionService(store, log),
		attendance: NewAttendanceService(store, log),
		members:    NewMemberService(store, teams, log),
		documents:  documents,
	}
}

func (e *engine) register(t *testing.T, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		_, err := e.members.Register(context.Background(), &domain.Member{
			ID:   id,
			Name: "member",
			Role: domain.RoleStudent,
		})
		require.NoError(t, err)
	}
}

// teamSeven - команда 7 с участниками 1 и 2 и одним занятием
func (e *engine) teamSeven(t *testing.T) *domain.Session {
	t.Helper()
	ctx := context.Background()

	e.register(t, 1, 2, 3)
	_, err := e.teams.SetMembers(ctx, 7, nil, []int64{1, 2})
	require.NoError(t, err)

	sessions, err := e.sessions.CreateSessions(ctx, 7, []domain.SessionSlot{{Date: "2024-01-01", Time: "09:00"}})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	return sessions[0]
}

func (e *engine) sessionsOf(t *testing.T, teamID int64) []*domain.Session {
	t.Helper()
	sessions, err := e.sessions.GetSessions(context.Background(), teamID)
	require.NoError(t, err)
	return sessions
}

func (e *engine) teamMembers(t *testing.T, teamID int64) []int64 {
	t.Helper()
	team, err := e.teams.GetTeam(context.Background(), teamID)
	require.NoError(t, err)
	return team.MemberIDs()
}

// countRecords считает записи посещаемости напрямую в хранилище
func (e *engine) countRecords(t *testing.T, teamID int64) int {
	t.Helper()
	n := 0
	err := e.store.ReadOnly(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		sessions, err := repos.Sessions().ListByTeam(ctx, teamID)
		for _, s := range sessions {
			n += len(s.Attendances)
		}
		return err
	})
	require.NoError(t, err)
	return n
}
