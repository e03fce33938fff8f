package main

import (
	"log"
	"log/slog"

	"github.com/wecareapp/wecare/internal/advice"
	"github.com/wecareapp/wecare/internal/assistant"
	"github.com/wecareapp/wecare/internal/assistant/gemini"
	openaibackend "github.com/wecareapp/wecare/internal/assistant/openai"
	"github.com/wecareapp/wecare/internal/config"
	"github.com/wecareapp/wecare/internal/db"
	"github.com/wecareapp/wecare/internal/logging"
	"github.com/wecareapp/wecare/internal/photostore/local"
	"github.com/wecareapp/wecare/internal/service"
	"github.com/wecareapp/wecare/internal/session"
	"github.com/wecareapp/wecare/internal/store"
	"github.com/wecareapp/wecare/internal/web"
	"github.com/wecareapp/wecare/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	photoStore, err := local.New(cfg.PhotoPath)
	if err != nil {
		logger.Error("failed to initialize photo store", "error", err)
		return
	}

	ai := newAssistant(cfg, logger)
	sessions := session.NewManager()

	server := web.NewServer(
		service.NewScanService(ai, photoStore, logger),
		service.NewChatService(ai, logger),
		store.NewClinicStore(database),
		store.NewTipStore(database),
		advice.NewClient(cfg.AdviceURL, logger),
		sessions,
		photoStore,
		templates.FS,
		logger,
	)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// newAssistant picks the configured capability backend. A missing credential
// is not fatal: calls will fail and every flow settles on its fallback, which
// keeps the app demonstrable without keys.
func newAssistant(cfg *config.Config, logger *slog.Logger) assistant.Assistant {
	switch cfg.AssistantBackend {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("OPENAI_API_KEY is empty, assistant calls will use fallbacks")
		}
		logger.Info("using OpenAI assistant backend", "model", cfg.OpenAIModel)
		return openaibackend.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	default:
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY is empty, assistant calls will use fallbacks")
		}
		logger.Info("using Gemini assistant backend", "model", cfg.GeminiModel)
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
