package handler

import (
	"net/http"

	"omniportal/internal/gateway/entity"
)

func (s *Service) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.GetUserProfile(r.Context()))
	case http.MethodPut:
		var next entity.UserProfile
		if !decodeBody(w, r, &next) {
			return
		}
		writeJSON(w, http.StatusOK, s.store.UpdateUserProfile(r.Context(), next))
	default:
		methodNotAllowed(w)
	}
}

type strengthsRequest struct {
	Bio string `json:"bio"`
}

type strengthsResponse struct {
	Strengths []string `json:"strengths"`
}

func (s *Service) HandleStrengths(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req strengthsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, strengthsResponse{
		Strengths: s.suggester.AnalyzeStrengths(r.Context(), req.Bio),
	})
}
