package app

import (
	"context"
	"fmt"
	"log"

	"omniportal/internal/assistant"
	"omniportal/internal/gateway/auth"
	"omniportal/internal/gateway/config"
	"omniportal/internal/gateway/handler"
	"omniportal/internal/gateway/repository/portal"
	"omniportal/internal/gateway/server"
	"omniportal/internal/llm"
	"omniportal/internal/suggest"
)

type App struct {
	server *server.Server
	llm    llm.Client
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	store := portal.NewFromEnv(cfg.Store.SnapshotPath)
	authStore := auth.NewStore(cfg.Store.AuthPath)
	mediaStore := chooseMediaStore(cfg)

	var backend llm.Client
	if cfg.Gemini.Available() {
		client, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to init gemini client: %w", err)
		}
		backend = client
	} else {
		log.Printf("GEMINI_API_KEY not set; AI features run in offline mode")
	}

	suggester := suggest.New(backend)
	chat := assistant.New(backend)

	svc := handler.NewService(store, suggester, chat, authStore, mediaStore)

	// Routing & Server
	mux := server.NewMux(svc)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		llm:    backend,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if a.llm != nil {
		if err := a.llm.Close(); err != nil {
			log.Printf("llm client close failed: %v", err)
		}
	}
	return a.server.Shutdown(ctx)
}
