package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// Sink forwards a response to the client stream. Implementations must
// not block; when the consumer is gone the forward becomes a no-op.
type Sink func(*Response)

// DiscardSink drops every response. Used for background recurrence after
// the client stream has closed.
func DiscardSink(*Response) {}

// Service persists responses and forwards them. Persistence happens
// before the forward, so a restart can replay the conversation from the
// item store.
type Service struct {
	items  database.ItemStore
	logger *slog.Logger
}

// NewService creates an event service on the given item store.
func NewService(items database.ItemStore, logger *slog.Logger) *Service {
	return &Service{items: items, logger: logger.With("component", "events")}
}

// Emit persists resp and forwards it to sink.
func (s *Service) Emit(ctx context.Context, resp *Response, sink Sink) error {
	item, err := toItem(resp)
	if err != nil {
		return err
	}
	if err := s.items.Append(ctx, item); err != nil {
		return fmt.Errorf("failed to persist event %s: %w", resp.Event, err)
	}
	sink(resp)
	return nil
}

// EmitAll persists and forwards responses in order, stopping on the
// first persistence failure.
func (s *Service) EmitAll(ctx context.Context, responses []*Response, sink Sink) error {
	for _, resp := range responses {
		if err := s.Emit(ctx, resp, sink); err != nil {
			return err
		}
	}
	return nil
}

// EmitUpdate replaces the payload of an already-persisted item in place
// (item-id-keyed upsert) and forwards the new value.
func (s *Service) EmitUpdate(ctx context.Context, resp *Response, sink Sink) error {
	item, err := toItem(resp)
	if err != nil {
		return err
	}
	if err := s.items.UpsertByItemID(ctx, item); err != nil {
		return fmt.Errorf("failed to upsert event %s: %w", resp.Event, err)
	}
	sink(resp)
	return nil
}

// AppendUserMessage records the user's turn in the item log.
func (s *Service) AppendUserMessage(ctx context.Context, conversationID, threadID, query string) error {
	payload, err := json.Marshal(map[string]any{"content": query})
	if err != nil {
		return fmt.Errorf("failed to encode user message: %w", err)
	}
	item := &models.ConversationItem{
		ItemID:         models.NewItemID(),
		ConversationID: conversationID,
		ThreadID:       threadID,
		Role:           models.RoleUser,
		Event:          KindMessageChunk,
		Payload:        string(payload),
	}
	if err := s.items.Append(ctx, item); err != nil {
		return fmt.Errorf("failed to persist user message: %w", err)
	}
	return nil
}

func toItem(resp *Response) (*models.ConversationItem, error) {
	payload, err := json.Marshal(resp.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for %s: %w", resp.Event, err)
	}
	return &models.ConversationItem{
		ItemID:         resp.ItemID,
		ConversationID: resp.ConversationID,
		ThreadID:       resp.ThreadID,
		TaskID:         resp.TaskID,
		Role:           models.RoleAssistant,
		Event:          resp.Event,
		AgentName:      resp.AgentName,
		Payload:        string(payload),
		CreatedAt:      resp.Timestamp,
	}, nil
}
