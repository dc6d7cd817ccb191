package handler

import "net/http"

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

func (s *Service) HandleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: s.auth.IsAuthenticated()})
}

func (s *Service) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	s.auth.Login()
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true})
}

func (s *Service) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	s.auth.Logout()
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
}
