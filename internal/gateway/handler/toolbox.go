package handler

import (
	"net/http"
	"strings"
)

func (s *Service) HandleToolbox(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.GetToolboxItems(r.Context()))
}

func (s *Service) HandleToolboxItemByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/toolbox/"), "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "item id is required")
		return
	}
	item, ok := s.store.GetToolboxItemByID(r.Context(), id)
	if !ok {
		writeNotFound(w, "toolbox item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
