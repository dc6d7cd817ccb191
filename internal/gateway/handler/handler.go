package handler

import (
	"encoding/json"
	"log"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"omniportal/internal/assistant"
	"omniportal/internal/gateway/auth"
	"omniportal/internal/gateway/repository/media"
	"omniportal/internal/gateway/repository/portal"
	"omniportal/internal/suggest"
	"omniportal/internal/workflow"
)

// flowSessionCap bounds how many creation-flow sessions are kept alive at
// once. Abandoned sessions fall out LRU-first instead of accumulating for
// the process lifetime.
const flowSessionCap = 128

// Service implements the portal HTTP surface. It holds the repository, the
// AI clients, and the per-session creation flows.
type Service struct {
	store     portal.Repository
	suggester *suggest.Service
	assistant *assistant.Client
	auth      *auth.Store
	media     media.Store

	flows *lru.Cache[string, *workflow.CreationFlow]
}

func NewService(store portal.Repository, suggester *suggest.Service, chat *assistant.Client, authStore *auth.Store, mediaStore media.Store) *Service {
	flows, _ := lru.New[string, *workflow.CreationFlow](flowSessionCap)
	return &Service{
		store:     store,
		suggester: suggester,
		assistant: chat,
		auth:      authStore,
		media:     mediaStore,
		flows:     flows,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handler: encode response: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeNotFound renders the expected, recoverable miss outcome.
func writeNotFound(w http.ResponseWriter, what string) {
	writeError(w, http.StatusNotFound, what+" not found")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
