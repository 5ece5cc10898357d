package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// ParseRole проверяет значение роли, регистр не важен
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", NewInvalidArgumentError("unknown role: " + s)
	}
}

type Member struct {
	ID        int64
	Name      string
	Role      Role
	Email     *string
	Phone     *string
	Track     *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// MemberRef - краткая ссылка на участника внутри записи посещаемости
type MemberRef struct {
	ID   int64
	Name string
}

func (m *Member) Ref() MemberRef {
	return MemberRef{ID: m.ID, Name: m.Name}
}
