package handler

import "net/http"

func (h *Handler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.Register(r.Context(), httpMemberToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := queryInt64(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}

func (h *Handler) ListMembersByRole(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		h.handleError(w, r, badRequest("role parameter is required"))
		return
	}

	members, err := h.memberService.ListByRole(r.Context(), role)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.Update(r.Context(), httpMemberToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := queryInt64(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.memberService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
