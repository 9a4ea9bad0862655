package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// SQLiteConversationStore implements ConversationStore on the shared client.
type SQLiteConversationStore struct {
	db *sqlx.DB
}

// NewConversationStore creates a ConversationStore backed by the client.
func NewConversationStore(client *Client) *SQLiteConversationStore {
	return &SQLiteConversationStore{db: client.db}
}

func (s *SQLiteConversationStore) Create(ctx context.Context, conv *models.Conversation) error {
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now().UTC()
	}
	if conv.Status == "" {
		conv.Status = models.ConversationStatusActive
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, agent_name, title, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		conv.ID, conv.UserID, conv.AgentName, conv.Title, conv.Status, conv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create conversation %s: %w", conv.ID, err)
	}
	return nil
}

func (s *SQLiteConversationStore) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := s.db.GetContext(ctx, &conv,
		`SELECT id, user_id, agent_name, title, status, created_at
		 FROM conversations WHERE id = ?`, conversationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrConversationNotFound, conversationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation %s: %w", conversationID, err)
	}
	return &conv, nil
}

func (s *SQLiteConversationStore) ListByUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	var convs []*models.Conversation
	err := s.db.SelectContext(ctx, &convs,
		`SELECT id, user_id, agent_name, title, status, created_at
		 FROM conversations WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for user %s: %w", userID, err)
	}
	return convs, nil
}

func (s *SQLiteConversationStore) SetStatus(ctx context.Context, conversationID string, status models.ConversationStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE conversations SET status = ? WHERE id = ?`, status, conversationID)
	if err != nil {
		return fmt.Errorf("failed to set status for conversation %s: %w", conversationID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrConversationNotFound, conversationID)
	}
	return nil
}

// SetTitleOnce writes the title only for a conversation that has none.
// The guard lives in the WHERE clause so concurrent writers cannot both win.
func (s *SQLiteConversationStore) SetTitleOnce(ctx context.Context, conversationID, title string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE conversations SET title = ? WHERE id = ? AND title = ''`,
		title, conversationID)
	if err != nil {
		return false, fmt.Errorf("failed to set title for conversation %s: %w", conversationID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
