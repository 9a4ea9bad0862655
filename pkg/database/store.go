package database

import (
	"context"
	"errors"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// Sentinel errors for store operations.
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrItemNotFound         = errors.New("conversation item not found")
)

// ConversationStore persists conversation metadata, keyed by conversation id.
type ConversationStore interface {
	Create(ctx context.Context, conv *models.Conversation) error
	Get(ctx context.Context, conversationID string) (*models.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Conversation, error)
	SetStatus(ctx context.Context, conversationID string, status models.ConversationStatus) error
	// SetTitleOnce writes the title only when the conversation has none.
	// Returns true when the title was written.
	SetTitleOnce(ctx context.Context, conversationID, title string) (bool, error)
}

// ItemStore is the append-only event log. Each operation is atomic at the
// row level; insertion order within a conversation is the replay order.
type ItemStore interface {
	Append(ctx context.Context, item *models.ConversationItem) error
	// UpsertByItemID replaces the payload of an existing item in place,
	// or appends the item when no row with that item id exists.
	UpsertByItemID(ctx context.Context, item *models.ConversationItem) error
	ListByConversation(ctx context.Context, conversationID string) ([]*models.ConversationItem, error)
	// ListByEvent returns all items of the given event kind across
	// conversations, in insertion order.
	ListByEvent(ctx context.Context, event string) ([]*models.ConversationItem, error)
	CountByConversation(ctx context.Context, conversationID string) (int, error)
}
