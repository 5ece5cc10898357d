// Package memory реализует repository.Store в памяти процесса.
// Используется для локального запуска (STORAGE_DRIVER=memory) и в тестах сервисов.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type teamRow struct {
	id        int64
	note      *string
	createdAt time.Time
	updatedAt *time.Time
}

type membershipRow struct {
	teamID int64
	joined int64
}

type sessionRow struct {
	id     int64
	teamID int64
	date   string
	time   string
}

type attendanceRow struct {
	id        int64
	sessionID int64
	memberID  int64
	status    domain.AttendanceStatus
	note      *string
	score     *int64
}

type state struct {
	members     map[int64]domain.Member
	teams       map[int64]teamRow
	memberships map[int64]membershipRow
	sessions    map[int64]sessionRow
	attendances map[int64]attendanceRow
	documents   map[int64]domain.Document

	sessionSeq    int64
	attendanceSeq int64
	documentSeq   int64
	joinSeq       int64
}

func newState() *state {
	return &state{
		members:     make(map[int64]domain.Member),
		teams:       make(map[int64]teamRow),
		memberships: make(map[int64]membershipRow),
		sessions:    make(map[int64]sessionRow),
		attendances: make(map[int64]attendanceRow),
		documents:   make(map[int64]domain.Document),
	}
}

// clone копирует состояние целиком. Указатели внутри строк не разделяются
// с копией, потому что репозитории всегда заменяют их, а не изменяют.
func (s *state) clone() *state {
	c := &state{
		members:       make(map[int64]domain.Member, len(s.members)),
		teams:         make(map[int64]teamRow, len(s.teams)),
		memberships:   make(map[int64]membershipRow, len(s.memberships)),
		sessions:      make(map[int64]sessionRow, len(s.sessions)),
		attendances:   make(map[int64]attendanceRow, len(s.attendances)),
		documents:     make(map[int64]domain.Document, len(s.documents)),
		sessionSeq:    s.sessionSeq,
		attendanceSeq: s.attendanceSeq,
		documentSeq:   s.documentSeq,
		joinSeq:       s.joinSeq,
	}
	for k, v := range s.members {
		c.members[k] = v
	}
	for k, v := range s.teams {
		c.teams[k] = v
	}
	for k, v := range s.memberships {
		c.memberships[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, v := range s.attendances {
		c.attendances[k] = v
	}
	for k, v := range s.documents {
		c.documents[k] = v
	}
	return c
}

// Store сериализует все единицы работы одним мьютексом.
// WithinTx работает над копией состояния и публикует её только при успехе,
// так что ошибка или паника внутри fn ничего не меняют.
type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &repositories{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// ReadOnly выполняет fn над копией, изменения отбрасываются
func (s *Store) ReadOnly(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx, &repositories{st: s.st.clone()})
}

type repositories struct {
	st *state
}

func (r *repositories) Teams() repository.TeamRepository {
	return &teamRepository{st: r.st}
}

func (r *repositories) Sessions() repository.SessionRepository {
	return &sessionRepository{st: r.st}
}

func (r *repositories) Attendances() repository.AttendanceRepository {
	return &attendanceRepository{st: r.st}
}

func (r *repositories) Members() repository.MemberRepository {
	return &memberRepository{st: r.st}
}

func (r *repositories) Documents() repository.DocumentRepository {
	return &documentRepository{st: r.st}
}

func sortedKeys[V any](m map[int64]V, keep func(V) bool) []int64 {
	keys := make([]int64, 0, len(m))
	for k, v := range m {
		if keep == nil || keep(v) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
