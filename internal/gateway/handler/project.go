package handler

import (
	"net/http"
	"strings"

	"omniportal/internal/gateway/entity"
)

func (s *Service) HandleProjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.GetProjects(r.Context()))
	case http.MethodPost:
		var draft entity.Project
		if !decodeBody(w, r, &draft) {
			return
		}
		writeJSON(w, http.StatusCreated, s.store.CreateProject(r.Context(), draft))
	default:
		methodNotAllowed(w)
	}
}

func (s *Service) HandleMyProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.GetMyInitiatedProjects(r.Context()))
}

func (s *Service) HandleProjectByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/projects/"), "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "project id is required")
		return
	}
	project, ok := s.store.GetProjectByID(r.Context(), id)
	if !ok {
		writeNotFound(w, "project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

type suggestRolesRequest struct {
	Description string `json:"description"`
}

type suggestRolesResponse struct {
	Roles []entity.ProjectRole `json:"roles"`
}

// HandleSuggestRoles exposes the blueprint suggestion directly, outside any
// creation-flow session.
func (s *Service) HandleSuggestRoles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req suggestRolesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, suggestRolesResponse{
		Roles: s.suggester.SuggestRoles(r.Context(), req.Description),
	})
}
