// Package api exposes the HTTP surface: the SSE chat endpoint driving
// orchestration sessions, the task cancel endpoint, conversation replay,
// and health.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/orchestrator"
	"github.com/stockbuddy/stockbuddy/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	orch          *orchestrator.Orchestrator
	conversations *services.ConversationService
	tasks         *services.TaskService
	items         database.ItemStore
	logger        *slog.Logger

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the API server over the service bundle and the
// session orchestrator.
func NewServer(bundle *services.Bundle, orch *orchestrator.Orchestrator) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		orch:          orch,
		conversations: bundle.Conversations,
		tasks:         bundle.Tasks,
		items:         bundle.Items,
		logger:        bundle.Logger.With("component", "api"),
		engine:        engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.Health)

	v1 := s.engine.Group("/api/v1")
	v1.POST("/chat", s.Chat)
	v1.POST("/tasks/:id/cancel", s.CancelTask)
	v1.GET("/conversations", s.ListConversations)
	v1.GET("/conversations/:id", s.GetConversation)
	v1.GET("/conversations/:id/items", s.ListConversationItems)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Start blocks serving HTTP on addr until Shutdown or failure.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.engine}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
