// Package models defines the domain types shared across the orchestration
// runtime: conversations, persisted items, tasks, plans, and the inputs and
// outcomes that flow between the triager, planner, and executor.
package models

import "time"

// ConversationStatus represents the lifecycle state of a conversation.
type ConversationStatus string

const (
	ConversationStatusActive           ConversationStatus = "active"
	ConversationStatusRequireUserInput ConversationStatus = "require_user_input"
	ConversationStatusTerminated       ConversationStatus = "terminated"
)

// Conversation is the unit of long-lived state between a user and the system.
// A conversation in require_user_input status always has a matching
// ExecutionContext held by the orchestrator; title is written at most once.
type Conversation struct {
	ID        string             `json:"id" db:"id"`
	UserID    string             `json:"user_id" db:"user_id"`
	AgentName string             `json:"agent_name" db:"agent_name"`
	Title     string             `json:"title,omitempty" db:"title"`
	Status    ConversationStatus `json:"status" db:"status"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
}

// ConversationItem is a persisted response event. Items are append-only;
// the single exception is an item-id-keyed upsert that replaces the payload
// in place (used for component updates such as marking a scheduled-task
// controller cancelled). Insertion order within a conversation is the
// replay order.
type ConversationItem struct {
	ItemID         string    `json:"item_id" db:"item_id"`
	ConversationID string    `json:"conversation_id" db:"conversation_id"`
	ThreadID       string    `json:"thread_id,omitempty" db:"thread_id"`
	TaskID         string    `json:"task_id,omitempty" db:"task_id"`
	Role           string    `json:"role" db:"role"`
	Event          string    `json:"event" db:"event"`
	AgentName      string    `json:"agent_name,omitempty" db:"agent_name"`
	Payload        string    `json:"payload" db:"payload"`
	Metadata       string    `json:"metadata,omitempty" db:"metadata"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Item roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)
