package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// SQLiteItemStore implements ItemStore on the shared client.
type SQLiteItemStore struct {
	db *sqlx.DB
}

// NewItemStore creates an ItemStore backed by the client.
func NewItemStore(client *Client) *SQLiteItemStore {
	return &SQLiteItemStore{db: client.db}
}

func (s *SQLiteItemStore) Append(ctx context.Context, item *models.ConversationItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversation_items
		 (item_id, conversation_id, thread_id, task_id, role, event, agent_name, payload, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID, item.ConversationID, item.ThreadID, item.TaskID,
		item.Role, item.Event, item.AgentName, item.Payload, item.Metadata, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append item %s: %w", item.ItemID, err)
	}
	return nil
}

// UpsertByItemID replaces an existing item's payload in place so replay sees
// the final value at its original position, or appends when the id is new.
func (s *SQLiteItemStore) UpsertByItemID(ctx context.Context, item *models.ConversationItem) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE conversation_items SET payload = ?, metadata = ? WHERE item_id = ?`,
		item.Payload, item.Metadata, item.ItemID)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", item.ItemID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	return s.Append(ctx, item)
}

func (s *SQLiteItemStore) ListByConversation(ctx context.Context, conversationID string) ([]*models.ConversationItem, error) {
	var items []*models.ConversationItem
	err := s.db.SelectContext(ctx, &items,
		`SELECT item_id, conversation_id, thread_id, task_id, role, event, agent_name, payload, metadata, created_at
		 FROM conversation_items WHERE conversation_id = ? ORDER BY seq`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for conversation %s: %w", conversationID, err)
	}
	return items, nil
}

func (s *SQLiteItemStore) ListByEvent(ctx context.Context, event string) ([]*models.ConversationItem, error) {
	var items []*models.ConversationItem
	err := s.db.SelectContext(ctx, &items,
		`SELECT item_id, conversation_id, thread_id, task_id, role, event, agent_name, payload, metadata, created_at
		 FROM conversation_items WHERE event = ? ORDER BY seq`, event)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for event %s: %w", event, err)
	}
	return items, nil
}

func (s *SQLiteItemStore) CountByConversation(ctx context.Context, conversationID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM conversation_items WHERE conversation_id = ?`, conversationID)
	if err != nil {
		return 0, fmt.Errorf("failed to count items for conversation %s: %w", conversationID, err)
	}
	return count, nil
}
