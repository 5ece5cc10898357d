package service

import "github.com/bagdasarian/team-attendance/internal/domain"

// BuildOne создает пустую запись посещаемости для участника: статус NOT, без заметки и балла
func BuildOne(member *domain.Member) *domain.AttendanceRecord {
	return &domain.AttendanceRecord{
		Member: member.Ref(),
		Status: domain.StatusNotRecorded,
	}
}

// BuildRoster создает по одной пустой записи на каждого участника в том же порядке
func BuildRoster(members []*domain.Member) []*domain.AttendanceRecord {
	roster := make([]*domain.AttendanceRecord, 0, len(members))
	for _, member := range members {
		roster = append(roster, BuildOne(member))
	}
	return roster
}
