package domain

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Session struct {
	ID          int64
	TeamID      int64
	Date        string
	Time        string
	Attendances []*AttendanceRecord
}

// SessionSlot - дата и время занятия, уникальные в рамках команды
type SessionSlot struct {
	Date string
	Time string
}

func (s *Session) Slot() SessionSlot {
	return SessionSlot{Date: s.Date, Time: s.Time}
}

// Normalize проверяет дату и время и приводит время к виду HH:MM
func (s SessionSlot) Normalize() (SessionSlot, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s.Date))
	if err != nil {
		return SessionSlot{}, NewInvalidArgumentError("date must be YYYY-MM-DD: " + s.Date)
	}

	raw := strings.TrimSpace(s.Time)
	var t time.Time
	if len(raw) == len("15:04:05") {
		t, err = time.Parse("15:04:05", raw)
	} else {
		t, err = time.Parse(TimeLayout, raw)
	}
	if err != nil {
		return SessionSlot{}, NewInvalidArgumentError("time must be HH:MM: " + s.Time)
	}

	return SessionSlot{Date: d.Format(DateLayout), Time: t.Format(TimeLayout)}, nil
}

// MemberIDs возвращает участников, на которых заведены записи занятия
func (s *Session) MemberIDs() []int64 {
	ids := make([]int64, 0, len(s.Attendances))
	for _, a := range s.Attendances {
		ids = append(ids, a.Member.ID)
	}
	return ids
}
