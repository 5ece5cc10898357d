package handler

import "net/http"

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	doc, err := h.documentService.Create(r.Context(), httpDocumentToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainDocumentToHTTP(doc))
}

// GetDocuments отдает один документ по id или все документы команды по teamId
func (h *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("id") {
		id, err := queryInt64(r, "id")
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		doc, err := h.documentService.Get(r.Context(), id)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, domainDocumentToHTTP(doc))
		return
	}

	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	docs, err := h.documentService.ListByTeam(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domainDocumentsToHTTP(docs))
}

func (h *Handler) GetAllDocuments(w http.ResponseWriter, r *http.Request) {
	all, err := h.documentService.ListAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result := make(map[int64][]DocumentResponse, len(all))
	for teamID, docs := range all {
		result[teamID] = domainDocumentsToHTTP(docs)
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	doc, err := h.documentService.Update(r.Context(), httpDocumentToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainDocumentToHTTP(doc))
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := queryInt64(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
