package domain

import "time"

type Team struct {
	ID        int64
	Note      *string
	Members   []*Member
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// HasMember сообщает, входит ли участник в команду
func (t *Team) HasMember(memberID int64) bool {
	for _, m := range t.Members {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// MemberIDs возвращает идентификаторы участников в порядке хранения
func (t *Team) MemberIDs() []int64 {
	ids := make([]int64, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

// Toggle - результат переключения участника в команде
type Toggle int

const (
	ToggleAdded Toggle = iota + 1
	ToggleRemoved
)

func (t Toggle) String() string {
	switch t {
	case ToggleAdded:
		return "added"
	case ToggleRemoved:
		return "removed"
	default:
		return "unknown"
	}
}
