package handler

import "net/http"

func (h *Handler) CreateSessions(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req []SessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	sessions, err := h.sessionService.CreateSessions(r.Context(), teamID, httpSlotsToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainSessionsToHTTP(sessions))
}

func (h *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	sessions, err := h.sessionService.GetSessions(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSessionsToHTTP(sessions))
}

// GetAllSessions отдает объект "id команды -> список занятий"
func (h *Handler) GetAllSessions(w http.ResponseWriter, r *http.Request) {
	all, err := h.sessionService.GetAllSessions(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result := make(map[int64][]SessionResponse, len(all))
	for teamID, sessions := range all {
		result[teamID] = domainSessionsToHTTP(sessions)
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	sessionID, err := queryInt64(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.sessionService.DeleteSession(r.Context(), teamID, sessionID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
