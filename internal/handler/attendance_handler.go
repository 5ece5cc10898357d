package handler

import "net/http"

func (h *Handler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var req []AttendanceUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	records, err := h.attendanceService.ApplyUpdates(r.Context(), httpUpdatesToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAttendancesToHTTP(records))
}
