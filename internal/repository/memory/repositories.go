package memory

import (
	"context"
	"sort"
	"time"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type teamRepository struct {
	st *state
}

func (r *teamRepository) Create(_ context.Context, team *domain.Team) (bool, error) {
	if _, ok := r.st.teams[team.ID]; ok {
		return false, nil
	}

	team.CreatedAt = time.Now()
	team.UpdatedAt = nil
	r.st.teams[team.ID] = teamRow{id: team.ID, note: copyString(team.Note), createdAt: team.CreatedAt}
	return true, nil
}

func (r *teamRepository) Lock(_ context.Context, id int64) error {
	if _, ok := r.st.teams[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (r *teamRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.st.teams[id]
	return ok, nil
}

func (r *teamRepository) GetByID(_ context.Context, id int64) (*domain.Team, error) {
	row, ok := r.st.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.build(row), nil
}

func (r *teamRepository) List(_ context.Context) ([]*domain.Team, error) {
	teams := make([]*domain.Team, 0, len(r.st.teams))
	for _, id := range sortedKeys(r.st.teams, nil) {
		teams = append(teams, r.build(r.st.teams[id]))
	}
	return teams, nil
}

func (r *teamRepository) ListIDs(_ context.Context) ([]int64, error) {
	return sortedKeys(r.st.teams, nil), nil
}

func (r *teamRepository) UpdateNote(_ context.Context, id int64, note *string) error {
	row, ok := r.st.teams[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	row.note = copyString(note)
	row.updatedAt = &now
	r.st.teams[id] = row
	return nil
}

func (r *teamRepository) AddMember(_ context.Context, teamID, memberID int64) error {
	if _, ok := r.st.teams[teamID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.st.members[memberID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.st.memberships[memberID]; ok {
		return repository.ErrAlreadyExists
	}

	r.st.joinSeq++
	r.st.memberships[memberID] = membershipRow{teamID: teamID, joined: r.st.joinSeq}
	return nil
}

func (r *teamRepository) RemoveMember(_ context.Context, teamID, memberID int64) error {
	m, ok := r.st.memberships[memberID]
	if !ok || m.teamID != teamID {
		return repository.ErrNotFound
	}
	delete(r.st.memberships, memberID)
	return nil
}

func (r *teamRepository) RemoveAllMembers(_ context.Context, teamID int64) error {
	for memberID, m := range r.st.memberships {
		if m.teamID == teamID {
			delete(r.st.memberships, memberID)
		}
	}
	return nil
}

func (r *teamRepository) FindByMember(_ context.Context, memberID int64) (int64, error) {
	m, ok := r.st.memberships[memberID]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return m.teamID, nil
}

func (r *teamRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.st.teams[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.st.teams, id)
	return nil
}

// build собирает команду с участниками в порядке вступления
func (r *teamRepository) build(row teamRow) *domain.Team {
	team := &domain.Team{
		ID:        row.id,
		Note:      copyString(row.note),
		Members:   make([]*domain.Member, 0),
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}

	ids := sortedKeys(r.st.memberships, func(m membershipRow) bool { return m.teamID == row.id })
	sort.SliceStable(ids, func(i, j int) bool {
		return r.st.memberships[ids[i]].joined < r.st.memberships[ids[j]].joined
	})
	for _, id := range ids {
		if member, ok := r.st.members[id]; ok {
			m := member
			team.Members = append(team.Members, &m)
		}
	}
	return team
}

type sessionRepository struct {
	st *state
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if _, ok := r.st.teams[session.TeamID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.st.sessions {
		if existing.teamID == session.TeamID && existing.date == session.Date && existing.time == session.Time {
			return repository.ErrAlreadyExists
		}
	}

	r.st.sessionSeq++
	session.ID = r.st.sessionSeq
	r.st.sessions[session.ID] = sessionRow{
		id:     session.ID,
		teamID: session.TeamID,
		date:   session.Date,
		time:   session.Time,
	}

	attendances := &attendanceRepository{st: r.st}
	for _, record := range session.Attendances {
		record.SessionID = session.ID
		if err := attendances.Create(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (r *sessionRepository) ListByTeam(_ context.Context, teamID int64) ([]*domain.Session, error) {
	ids := sortedKeys(r.st.sessions, func(s sessionRow) bool { return s.teamID == teamID })

	sessions := make([]*domain.Session, 0, len(ids))
	byID := make(map[int64]*domain.Session, len(ids))
	for _, id := range ids {
		row := r.st.sessions[id]
		session := &domain.Session{
			ID:          row.id,
			TeamID:      row.teamID,
			Date:        row.date,
			Time:        row.time,
			Attendances: make([]*domain.AttendanceRecord, 0),
		}
		sessions = append(sessions, session)
		byID[id] = session
	}

	attendances := &attendanceRepository{st: r.st}
	for _, id := range sortedKeys(r.st.attendances, nil) {
		row := r.st.attendances[id]
		if session, ok := byID[row.sessionID]; ok {
			session.Attendances = append(session.Attendances, attendances.build(row))
		}
	}
	return sessions, nil
}

func (r *sessionRepository) Delete(_ context.Context, teamID, sessionID int64) error {
	row, ok := r.st.sessions[sessionID]
	if !ok || row.teamID != teamID {
		return repository.ErrNotFound
	}
	delete(r.st.sessions, sessionID)
	return nil
}

func (r *sessionRepository) DeleteByTeam(_ context.Context, teamID int64) error {
	for id, row := range r.st.sessions {
		if row.teamID == teamID {
			delete(r.st.sessions, id)
		}
	}
	return nil
}

type attendanceRepository struct {
	st *state
}

func (r *attendanceRepository) Create(_ context.Context, record *domain.AttendanceRecord) error {
	if _, ok := r.st.sessions[record.SessionID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.st.attendances {
		if existing.sessionID == record.SessionID && existing.memberID == record.Member.ID {
			return repository.ErrAlreadyExists
		}
	}

	r.st.attendanceSeq++
	record.ID = r.st.attendanceSeq
	r.st.attendances[record.ID] = attendanceRow{
		id:        record.ID,
		sessionID: record.SessionID,
		memberID:  record.Member.ID,
		status:    record.Status,
		note:      copyString(record.Note),
		score:     copyInt64(record.Score),
	}
	return nil
}

func (r *attendanceRepository) GetByID(_ context.Context, id int64) (*domain.AttendanceRecord, error) {
	row, ok := r.st.attendances[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.build(row), nil
}

func (r *attendanceRepository) Update(_ context.Context, record *domain.AttendanceRecord) error {
	row, ok := r.st.attendances[record.ID]
	if !ok {
		return repository.ErrNotFound
	}
	row.status = record.Status
	row.note = copyString(record.Note)
	row.score = copyInt64(record.Score)
	r.st.attendances[record.ID] = row
	return nil
}

func (r *attendanceRepository) DeleteBySession(_ context.Context, sessionID int64) error {
	for id, row := range r.st.attendances {
		if row.sessionID == sessionID {
			delete(r.st.attendances, id)
		}
	}
	return nil
}

func (r *attendanceRepository) DeleteByTeamMember(_ context.Context, teamID, memberID int64) (int64, error) {
	var n int64
	for id, row := range r.st.attendances {
		if row.memberID != memberID {
			continue
		}
		if s, ok := r.st.sessions[row.sessionID]; ok && s.teamID == teamID {
			delete(r.st.attendances, id)
			n++
		}
	}
	return n, nil
}

func (r *attendanceRepository) DeleteByTeam(_ context.Context, teamID int64) error {
	for id, row := range r.st.attendances {
		if s, ok := r.st.sessions[row.sessionID]; ok && s.teamID == teamID {
			delete(r.st.attendances, id)
		}
	}
	return nil
}

func (r *attendanceRepository) build(row attendanceRow) *domain.AttendanceRecord {
	return &domain.AttendanceRecord{
		ID:        row.id,
		SessionID: row.sessionID,
		Member:    domain.MemberRef{ID: row.memberID, Name: r.st.members[row.memberID].Name},
		Status:    row.status,
		Note:      copyString(row.note),
		Score:     copyInt64(row.score),
	}
}

type memberRepository struct {
	st *state
}

func (r *memberRepository) Create(_ context.Context, member *domain.Member) error {
	if _, ok := r.st.members[member.ID]; ok {
		return repository.ErrAlreadyExists
	}
	member.CreatedAt = time.Now()
	member.UpdatedAt = nil
	r.st.members[member.ID] = *member
	return nil
}

func (r *memberRepository) Update(_ context.Context, member *domain.Member) error {
	existing, ok := r.st.members[member.ID]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	member.CreatedAt = existing.CreatedAt
	member.UpdatedAt = &now
	r.st.members[member.ID] = *member
	return nil
}

func (r *memberRepository) GetByID(_ context.Context, id int64) (*domain.Member, error) {
	member, ok := r.st.members[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &member, nil
}

func (r *memberRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.st.members[id]
	return ok, nil
}

func (r *memberRepository) FindByIDs(_ context.Context, ids []int64) ([]*domain.Member, error) {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	members := make([]*domain.Member, 0, len(wanted))
	for _, id := range sortedKeys(r.st.members, nil) {
		if _, ok := wanted[id]; ok {
			m := r.st.members[id]
			members = append(members, &m)
		}
	}
	return members, nil
}

func (r *memberRepository) ListByRole(_ context.Context, role domain.Role) ([]*domain.Member, error) {
	members := make([]*domain.Member, 0)
	for _, id := range sortedKeys(r.st.members, func(m domain.Member) bool { return m.Role == role }) {
		m := r.st.members[id]
		members = append(members, &m)
	}
	return members, nil
}

// Delete отказывает, пока на участника ссылаются членство или записи посещаемости,
// так же как внешние ключи в PostgreSQL
func (r *memberRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.st.members[id]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.st.memberships[id]; ok {
		return repository.ErrAlreadyExists
	}
	for _, a := range r.st.attendances {
		if a.memberID == id {
			return repository.ErrAlreadyExists
		}
	}
	delete(r.st.members, id)
	return nil
}

// documentRepository хранит только метаданные, Content не сохраняется
type documentRepository struct {
	st *state
}

func (r *documentRepository) Create(_ context.Context, doc *domain.Document) error {
	if _, ok := r.st.teams[doc.TeamID]; !ok {
		return repository.ErrNotFound
	}
	r.st.documentSeq++
	doc.ID = r.st.documentSeq
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	r.st.documents[doc.ID] = metadata(*doc)
	return nil
}

func (r *documentRepository) GetByID(_ context.Context, id int64) (*domain.Document, error) {
	doc, ok := r.st.documents[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &doc, nil
}

func (r *documentRepository) ListByTeam(_ context.Context, teamID int64) ([]*domain.Document, error) {
	docs := make([]*domain.Document, 0)
	for _, id := range sortedKeys(r.st.documents, func(d domain.Document) bool { return d.TeamID == teamID }) {
		doc := r.st.documents[id]
		docs = append(docs, &doc)
	}
	return docs, nil
}

func (r *documentRepository) Update(_ context.Context, doc *domain.Document) error {
	existing, ok := r.st.documents[doc.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title = doc.Title
	existing.Description = doc.Description
	existing.StorageKey = doc.StorageKey
	r.st.documents[doc.ID] = existing
	return nil
}

func (r *documentRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.st.documents[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.st.documents, id)
	return nil
}

func (r *documentRepository) DeleteByTeam(_ context.Context, teamID int64) error {
	for id, doc := range r.st.documents {
		if doc.TeamID == teamID {
			delete(r.st.documents, id)
		}
	}
	return nil
}

func metadata(doc domain.Document) domain.Document {
	doc.Content = ""
	return doc
}
