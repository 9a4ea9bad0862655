package events

import (
	"time"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// Response is the canonical client-facing event. Payload is the
// kind-specific body; it is marshalled to JSON for persistence and for
// the SSE wire format.
type Response struct {
	Event          string         `json:"event"`
	ConversationID string         `json:"conversation_id"`
	ThreadID       string         `json:"thread_id,omitempty"`
	TaskID         string         `json:"task_id,omitempty"`
	AgentName      string         `json:"agent_name,omitempty"`
	ItemID         string         `json:"item_id"`
	Payload        map[string]any `json:"payload"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Factory builds responses scoped to one conversation/thread pair. It is
// stateless beyond the scope fields; item ids are fresh per event.
type Factory struct {
	ConversationID string
	ThreadID       string
}

// NewFactory creates a factory scoped to a conversation and thread.
func NewFactory(conversationID, threadID string) *Factory {
	return &Factory{ConversationID: conversationID, ThreadID: threadID}
}

// ForConversation rescopes the factory to another conversation, keeping
// the thread. Used for subagent child conversations.
func (f *Factory) ForConversation(conversationID string) *Factory {
	return &Factory{ConversationID: conversationID, ThreadID: f.ThreadID}
}

func (f *Factory) build(event, taskID, agentName string, payload map[string]any) *Response {
	if payload == nil {
		payload = map[string]any{}
	}
	return &Response{
		Event:          event,
		ConversationID: f.ConversationID,
		ThreadID:       f.ThreadID,
		TaskID:         taskID,
		AgentName:      agentName,
		ItemID:         models.NewItemID(),
		Payload:        payload,
		Timestamp:      time.Now().UTC(),
	}
}

func (f *Factory) ConversationStarted() *Response {
	return f.build(KindConversationStarted, "", "", nil)
}

func (f *Factory) ThreadStarted() *Response {
	return f.build(KindThreadStarted, "", "", nil)
}

func (f *Factory) TaskStarted(taskID, agentName, title string) *Response {
	return f.build(KindTaskStarted, taskID, agentName, map[string]any{"title": title})
}

func (f *Factory) TaskCompleted(taskID, agentName string) *Response {
	return f.build(KindTaskCompleted, taskID, agentName, nil)
}

func (f *Factory) TaskFailed(taskID, agentName, reason string) *Response {
	return f.build(KindTaskFailed, taskID, agentName, map[string]any{"reason": reason})
}

func (f *Factory) MessageChunk(taskID, agentName, content string) *Response {
	return f.build(KindMessageChunk, taskID, agentName, map[string]any{"content": content})
}

func (f *Factory) Reasoning(taskID, agentName, content string) *Response {
	return f.build(KindReasoning, taskID, agentName, map[string]any{"content": content})
}

func (f *Factory) ToolCallStarted(taskID, agentName, toolName, arguments string) *Response {
	return f.build(KindToolCallStarted, taskID, agentName, map[string]any{
		"tool_name": toolName,
		"arguments": arguments,
	})
}

func (f *Factory) ToolCallCompleted(taskID, agentName, toolName, result string) *Response {
	return f.build(KindToolCallCompleted, taskID, agentName, map[string]any{
		"tool_name": toolName,
		"result":    result,
	})
}

func (f *Factory) PlanRequireUserInput(prompt string) *Response {
	return f.build(KindPlanRequireUserInput, "", "", map[string]any{"prompt": prompt})
}

func (f *Factory) PlanFailed(reason string) *Response {
	return f.build(KindPlanFailed, "", "", map[string]any{"reason": reason})
}

// Component builds a component_generator event. content is the
// component-type-specific body.
func (f *Factory) Component(taskID, agentName, componentType string, content map[string]any) *Response {
	return f.build(KindComponentGenerator, taskID, agentName, map[string]any{
		"type":    componentType,
		"content": content,
	})
}

func (f *Factory) SystemFailed(reason string) *Response {
	return f.build(KindSystemFailed, "", "", map[string]any{"reason": reason})
}

func (f *Factory) Done() *Response {
	return f.build(KindDone, "", "", nil)
}
