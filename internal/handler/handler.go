package handler

import (
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/service"
)

type Handler struct {
	teamService       service.TeamService
	sessionService    service.SessionService
	attendanceService service.AttendanceService
	memberService     service.MemberService
	documentService   service.DocumentService
	log               logging.Logger
}

func NewHandler(
	teamService service.TeamService,
	sessionService service.SessionService,
	attendanceService service.AttendanceService,
	memberService service.MemberService,
	documentService service.DocumentService,
	log logging.Logger,
) *Handler {
	return &Handler{
		teamService:       teamService,
		sessionService:    sessionService,
		attendanceService: attendanceService,
		memberService:     memberService,
		documentService:   documentService,
		log:               log,
	}
}
