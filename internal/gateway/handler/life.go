package handler

import (
	"net/http"
	"strings"
)

func (s *Service) HandleOmniLife(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.GetOmniLifeItems(r.Context()))
}

func (s *Service) HandleOmniItemByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/life/"), "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "item id is required")
		return
	}
	item, ok := s.store.GetOmniItemByID(r.Context(), id)
	if !ok {
		writeNotFound(w, "life item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
