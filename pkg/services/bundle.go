package services

import (
	"log/slog"

	"github.com/stockbuddy/stockbuddy/pkg/config"
	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/events"
	"github.com/stockbuddy/stockbuddy/pkg/llm"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
)

// Bundle carries the shared services the orchestration pipeline needs.
// It is built once at startup (and per test), then injected; nothing in
// the runtime reaches for globals.
type Bundle struct {
	Config        *config.Config
	Logger        *slog.Logger
	Conversations *ConversationService
	Tasks         *TaskService
	Events        *events.Service
	Items         database.ItemStore
	Registry      *remote.Registry
	LLM           llm.Client
}

// NewBundle composes the service bundle from its leaves.
func NewBundle(
	cfg *config.Config,
	logger *slog.Logger,
	convStore database.ConversationStore,
	itemStore database.ItemStore,
	registry *remote.Registry,
	llmClient llm.Client,
) *Bundle {
	return &Bundle{
		Config:        cfg,
		Logger:        logger,
		Conversations: NewConversationService(convStore, logger),
		Tasks:         NewTaskService(logger),
		Events:        events.NewService(itemStore, logger),
		Items:         itemStore,
		Registry:      registry,
		LLM:           llmClient,
	}
}
