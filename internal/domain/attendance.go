package domain

import "strings"

type AttendanceStatus string

const (
	StatusNotRecorded AttendanceStatus = "NOT"
	StatusPresent     AttendanceStatus = "PRESENT"
	StatusLate        AttendanceStatus = "LATE"
	StatusAbsent      AttendanceStatus = "ABSENT"
)

// ParseAttendanceStatus проверяет значение статуса посещаемости
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch st := AttendanceStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusNotRecorded, StatusPresent, StatusLate, StatusAbsent:
		return st, nil
	default:
		return "", NewInvalidArgumentError("unknown attendance status: " + s)
	}
}

type AttendanceRecord struct {
	ID        int64
	SessionID int64
	Member    MemberRef
	Status    AttendanceStatus
	Note      *string
	Score     *int64
}

// AttendanceUpdate - изменение одной записи посещаемости
type AttendanceUpdate struct {
	ID     int64
	Status AttendanceStatus
	Note   *string
	Score  *int64
}
