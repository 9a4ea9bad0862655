// StockBuddy orchestration server — triages user queries, plans task
// DAGs, and executes them against remote specialist agents with every
// event persisted and streamed over SSE.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stockbuddy/stockbuddy/pkg/api"
	"github.com/stockbuddy/stockbuddy/pkg/config"
	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/executor"
	"github.com/stockbuddy/stockbuddy/pkg/llm"
	"github.com/stockbuddy/stockbuddy/pkg/orchestrator"
	"github.com/stockbuddy/stockbuddy/pkg/planner"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
	"github.com/stockbuddy/stockbuddy/pkg/services"
	"github.com/stockbuddy/stockbuddy/pkg/triage"
)

func main() {
	// Load .env if present; a missing file is fine.
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using existing environment")
	}

	logger := slog.Default()

	// 1. Configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting StockBuddy",
		"http_port", cfg.HTTPPort,
		"database_path", cfg.DatabasePath,
		"timezone", cfg.Timezone.String(),
		"agents", len(cfg.AgentEndpoints))

	// 2. Database (runs embedded migrations)
	dbClient, err := database.NewClient(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}()
	slog.Info("Database ready", "path", cfg.DatabasePath)

	// 3. Remote agent registry
	// Note: grpc.NewClient dials lazily; connections open on first RPC.
	registry := remote.NewRegistry(logger)
	for name, addr := range cfg.AgentEndpoints {
		client, err := remote.NewGRPCAgentClient(addr)
		if err != nil {
			slog.Error("Failed to create agent client", "agent", name, "addr", addr, "error", err)
			os.Exit(1)
		}
		registry.Register(name, client)
		slog.Info("Registered remote agent", "agent", name, "addr", addr)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			slog.Error("Error closing agent clients", "error", err)
		}
	}()

	// 4. LLM client for triage and planning
	llmClient := llm.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	slog.Info("LLM client initialized", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)

	// 5. Service bundle and pipeline
	bundle := services.NewBundle(cfg, logger,
		database.NewConversationStore(dbClient),
		database.NewItemStore(dbClient),
		registry, llmClient)

	triager := triage.NewTriager(llmClient, registry, logger)
	p := planner.NewPlanner(llmClient, registry, cfg.FallbackMultiAgentPlan, logger)
	planning := planner.NewService(p, cfg.ExecutionContextTTL, logger)
	exec := executor.New(bundle)
	orch := orchestrator.New(bundle, triager, planning, exec)
	slog.Info("Orchestration pipeline initialized")

	// 6. HTTP server (non-blocking)
	httpServer := api.NewServer(bundle, orch)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 7. Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stop accepting requests, then stop the
	// recurring-task loops.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	exec.Stop()
	slog.Info("Shutdown complete")
}
