package handler

import (
	"net/http"
)

// SetTeamMembers создает команду или переключает её участников.
// Тело запроса - массив id участников, заметка передается параметром note.
func (h *Handler) SetTeamMembers(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var note *string
	if q := r.URL.Query(); q.Has("note") {
		v := q.Get("note")
		note = &v
	}

	var memberIDs []int64
	if err := decodeJSON(r, &memberIDs); err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := h.teamService.SetMembers(r.Context(), teamID, note, memberIDs)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SetMembersResponse{TeamID: id})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.GetAllTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
