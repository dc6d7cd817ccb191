package server

import (
	"net/http"

	"omniportal/internal/gateway/handler"
	"omniportal/internal/gateway/middleware"
)

func NewMux(svc *handler.Service) http.Handler {
	mux := http.NewServeMux()

	// Profile
	mux.HandleFunc("/api/profile", svc.HandleProfile)
	mux.HandleFunc("/api/profile/strengths", svc.HandleStrengths)

	// Projects
	mux.HandleFunc("/api/projects", svc.HandleProjects)
	mux.HandleFunc("/api/projects/mine", svc.HandleMyProjects)
	mux.HandleFunc("/api/projects/", svc.HandleProjectByID)
	mux.HandleFunc("/api/projects/suggest-roles", svc.HandleSuggestRoles)

	// Creation flow
	mux.HandleFunc("/api/creation/start", svc.HandleCreationStart)
	mux.HandleFunc("/api/creation/describe", svc.HandleCreationDescribe)
	mux.HandleFunc("/api/creation/analyze", svc.HandleCreationAnalyze)
	mux.HandleFunc("/api/creation/equity", svc.HandleCreationEquity)
	mux.HandleFunc("/api/creation/back", svc.HandleCreationBack)
	mux.HandleFunc("/api/creation/publish", svc.HandleCreationPublish)

	// Finance
	mux.HandleFunc("/api/finance", svc.HandleFinance)
	mux.HandleFunc("/api/finance/transactions/more", svc.HandleMoreTransactions)

	// Omni life, toolbox, alliance tasks
	mux.HandleFunc("/api/life", svc.HandleOmniLife)
	mux.HandleFunc("/api/life/", svc.HandleOmniItemByID)
	mux.HandleFunc("/api/toolbox", svc.HandleToolbox)
	mux.HandleFunc("/api/toolbox/", svc.HandleToolboxItemByID)
	mux.HandleFunc("/api/tasks", svc.HandleAllianceTasks)
	mux.HandleFunc("/api/tasks/", svc.HandleClaimTask)

	// Assistant
	mux.HandleFunc("/api/chat", svc.HandleChat)
	mux.HandleFunc("/api/chat/ws", svc.HandleChatWS)

	// Session
	mux.HandleFunc("/api/auth/session", svc.HandleSession)
	mux.HandleFunc("/api/auth/login", svc.HandleLogin)
	mux.HandleFunc("/api/auth/logout", svc.HandleLogout)

	// Media
	mux.HandleFunc("/api/media/", svc.HandleMedia)

	return middleware.CORS(mux)
}
