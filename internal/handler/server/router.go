package server

import (
	"net/http"

	"github.com/bagdasarian/team-attendance/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /api/team", h.SetTeamMembers)
	mux.HandleFunc("GET /api/team", h.GetTeam)
	mux.HandleFunc("GET /api/team/all", h.GetAllTeams)
	mux.HandleFunc("DELETE /api/team", h.DeleteTeam)

	mux.HandleFunc("POST /api/schedules", h.CreateSessions)
	mux.HandleFunc("GET /api/schedules", h.GetSessions)
	mux.HandleFunc("GET /api/schedules/all", h.GetAllSessions)
	mux.HandleFunc("DELETE /api/schedules", h.DeleteSession)

	mux.HandleFunc("PUT /api/att", h.UpdateAttendance)

	mux.HandleFunc("POST /api/user", h.RegisterMember)
	mux.HandleFunc("GET /api/user", h.GetMember)
	mux.HandleFunc("PUT /api/user", h.UpdateMember)
	mux.HandleFunc("DELETE /api/user", h.DeleteMember)
	mux.HandleFunc("GET /api/user/role", h.ListMembersByRole)

	mux.HandleFunc("POST /api/docs", h.CreateDocument)
	mux.HandleFunc("GET /api/docs", h.GetDocuments)
	mux.HandleFunc("PUT /api/docs", h.UpdateDocument)
	mux.HandleFunc("DELETE /api/docs", h.DeleteDocument)
	mux.HandleFunc("GET /api/docs/all", h.GetAllDocuments)

	mux.HandleFunc("GET /healthz", h.Health)
}
