package handler

import (
	"net/http"

	"omniportal/internal/assistant"
)

type chatRequest struct {
	Message string              `json:"message"`
	History []assistant.Message `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// HandleChat answers a single assistant turn. The caller supplies the prior
// history; the server keeps no conversation state on this route.
func (s *Service) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Reply: s.assistant.Reply(r.Context(), req.Message, req.History),
	})
}
