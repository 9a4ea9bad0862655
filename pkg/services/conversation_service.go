// Package services holds the stateful domain services: conversation
// lifecycle, the in-memory task registry with cancellation tokens, and
// the bundle that composes everything at process startup.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// ConversationService owns conversation records. Item persistence is the
// event service's job; this service only touches conversation metadata.
type ConversationService struct {
	store  database.ConversationStore
	logger *slog.Logger
}

// NewConversationService creates a conversation service.
func NewConversationService(store database.ConversationStore, logger *slog.Logger) *ConversationService {
	return &ConversationService{
		store:  store,
		logger: logger.With("component", "conversations"),
	}
}

// EnsureConversation loads the conversation when an id is supplied, or
// creates a new one. The returned bool is true when a conversation was
// created.
func (s *ConversationService) EnsureConversation(ctx context.Context, conversationID, userID, agentName string) (*models.Conversation, bool, error) {
	if conversationID != "" {
		conv, err := s.store.Get(ctx, conversationID)
		if err != nil {
			return nil, false, err
		}
		return conv, false, nil
	}

	conv := &models.Conversation{
		ID:        models.NewConversationID(),
		UserID:    userID,
		AgentName: agentName,
		Status:    models.ConversationStatusActive,
	}
	if err := s.store.Create(ctx, conv); err != nil {
		return nil, false, err
	}
	s.logger.Info("created conversation", "conversation_id", conv.ID, "user_id", userID)
	return conv, true, nil
}

// EnsureSubagentConversation creates the child conversation a handed-off
// task runs in, under the id the planner already assigned to the task.
// Recurring re-invocations hit the existing record.
func (s *ConversationService) EnsureSubagentConversation(ctx context.Context, conversationID, userID, agentName string) (*models.Conversation, error) {
	conv, err := s.store.Get(ctx, conversationID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, database.ErrConversationNotFound) {
		return nil, err
	}

	conv = &models.Conversation{
		ID:        conversationID,
		UserID:    userID,
		AgentName: agentName,
		Status:    models.ConversationStatusActive,
	}
	if err := s.store.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create subagent conversation: %w", err)
	}
	s.logger.Info("created subagent conversation",
		"conversation_id", conv.ID, "agent", agentName)
	return conv, nil
}

// Get returns a conversation by id.
func (s *ConversationService) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	return s.store.Get(ctx, conversationID)
}

// ListByUser returns a user's conversations, newest first.
func (s *ConversationService) ListByUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	return s.store.ListByUser(ctx, userID)
}

// SetStatus updates the conversation lifecycle state.
func (s *ConversationService) SetStatus(ctx context.Context, conversationID string, status models.ConversationStatus) error {
	return s.store.SetStatus(ctx, conversationID, status)
}

// SetTitleOnce writes the title only when the conversation has none.
func (s *ConversationService) SetTitleOnce(ctx context.Context, conversationID, title string) (bool, error) {
	wrote, err := s.store.SetTitleOnce(ctx, conversationID, title)
	if err != nil {
		return false, err
	}
	if wrote {
		s.logger.Info("set conversation title", "conversation_id", conversationID, "title", title)
	}
	return wrote, nil
}
