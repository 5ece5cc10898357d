package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SetMembersResponse struct {
	TeamID int64 `json:"team_id"`
}

type MemberRequest struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Track *string `json:"track,omitempty"`
}

type MemberResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Track     *string    `json:"track,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type TeamResponse struct {
	TeamID  int64            `json:"team_id"`
	Note    *string          `json:"note"`
	Members []MemberResponse `json:"members"`
}

type SessionRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type AttendanceMemberResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AttendanceResponse struct {
	ID     int64                    `json:"id"`
	Member AttendanceMemberResponse `json:"member"`
	Status string                   `json:"status"`
	Note   *string                  `json:"note"`
	Score  *int64                   `json:"score"`
}

type SessionResponse struct {
	ID          int64                `json:"id"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type AttendanceUpdateRequest struct {
	ID     int64   `json:"id"`
	Status string  `json:"status"`
	Note   *string `json:"note"`
	Score  *int64  `json:"score"`
}

type DocumentRequest struct {
	ID          int64  `json:"id"`
	TeamID      int64  `json:"team_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type DocumentResponse struct {
	ID          int64     `json:"id"`
	TeamID      int64     `json:"team_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
