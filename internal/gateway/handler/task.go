package handler

import (
	"net/http"
	"strings"
)

func (s *Service) HandleAllianceTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.GetAllianceTasks(r.Context()))
}

// HandleClaimTask marks an alliance task as claimed by the current user.
// Path form: /api/tasks/{id}/claim.
func (s *Service) HandleClaimTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tasks/"), "/")
	id := strings.TrimSuffix(rest, "/claim")
	if id == "" || id == rest {
		writeError(w, http.StatusBadRequest, "task id is required")
		return
	}
	task, ok := s.store.ClaimAllianceTask(r.Context(), id)
	if !ok {
		writeNotFound(w, "task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}
