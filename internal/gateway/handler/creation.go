package handler

import (
	"net/http"

	"github.com/google/uuid"

	"omniportal/internal/gateway/entity"
	"omniportal/internal/workflow"
)

type creationStateResponse struct {
	SessionID   string               `json:"sessionId"`
	Stage       string               `json:"stage"`
	Description string               `json:"description"`
	Roles       []entity.ProjectRole `json:"roles"`
}

func (s *Service) creationState(id string, flow *workflow.CreationFlow) creationStateResponse {
	return creationStateResponse{
		SessionID:   id,
		Stage:       flow.Stage().String(),
		Description: flow.Description(),
		Roles:       flow.Roles(),
	}
}

func (s *Service) flowFor(id string) (*workflow.CreationFlow, bool) {
	return s.flows.Get(id)
}

// HandleCreationStart opens a new creation-flow session and returns its id.
func (s *Service) HandleCreationStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	id := uuid.NewString()
	flow := workflow.New(s.suggester, s.store)
	s.flows.Add(id, flow)
	writeJSON(w, http.StatusCreated, s.creationState(id, flow))
}

type describeRequest struct {
	SessionID   string `json:"sessionId"`
	Description string `json:"description"`
}

func (s *Service) HandleCreationDescribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req describeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	flow, ok := s.flowFor(req.SessionID)
	if !ok {
		writeNotFound(w, "creation session")
		return
	}
	flow.SetDescription(req.Description)
	writeJSON(w, http.StatusOK, s.creationState(req.SessionID, flow))
}

type sessionRequest struct {
	SessionID string `json:"sessionId"`
}

// HandleCreationAnalyze runs the role suggestion for the session's current
// description and moves the flow into review.
func (s *Service) HandleCreationAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req sessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	flow, ok := s.flowFor(req.SessionID)
	if !ok {
		writeNotFound(w, "creation session")
		return
	}
	flow.GenerateBlueprint(r.Context())
	writeJSON(w, http.StatusOK, s.creationState(req.SessionID, flow))
}

type equityRequest struct {
	SessionID   string `json:"sessionId"`
	RoleID      string `json:"roleId"`
	EquityShare int    `json:"equityShare"`
}

func (s *Service) HandleCreationEquity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req equityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	flow, ok := s.flowFor(req.SessionID)
	if !ok {
		writeNotFound(w, "creation session")
		return
	}
	if !flow.SetRoleEquity(req.RoleID, req.EquityShare) {
		writeNotFound(w, "role")
		return
	}
	writeJSON(w, http.StatusOK, s.creationState(req.SessionID, flow))
}

func (s *Service) HandleCreationBack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req sessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	flow, ok := s.flowFor(req.SessionID)
	if !ok {
		writeNotFound(w, "creation session")
		return
	}
	flow.Back()
	writeJSON(w, http.StatusOK, s.creationState(req.SessionID, flow))
}

type publishResponse struct {
	Project  entity.Project   `json:"project"`
	Projects []entity.Project `json:"projects"`
}

// HandleCreationPublish commits the blueprint. The session is removed once
// the project is created.
func (s *Service) HandleCreationPublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req sessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	flow, ok := s.flowFor(req.SessionID)
	if !ok {
		writeNotFound(w, "creation session")
		return
	}
	created, mine, published := flow.Publish(r.Context())
	if !published {
		writeError(w, http.StatusConflict, "blueprint has not been generated yet")
		return
	}
	s.flows.Remove(req.SessionID)
	writeJSON(w, http.StatusOK, publishResponse{Project: created, Projects: mine})
}
