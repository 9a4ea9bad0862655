package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/events"
	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/services"
)

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Query           string `json:"query" binding:"required"`
	TargetAgentName string `json:"target_agent_name"`
	UserID          string `json:"user_id" binding:"required"`
	ConversationID  string `json:"conversation_id"`
}

// Chat handles POST /api/v1/chat: it starts an orchestration session and
// streams its events to the client as SSE. A disconnect closes delivery
// only; the session keeps running and persisting.
func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &models.UserInput{
		Query:           req.Query,
		TargetAgentName: req.TargetAgentName,
		Meta: models.UserMeta{
			UserID:         req.UserID,
			ConversationID: req.ConversationID,
		},
	}

	stream := s.orch.ProcessUserInput(input)
	defer stream.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case resp, ok := <-stream.Events():
			if !ok {
				return
			}
			c.SSEvent(resp.Event, resp)
			c.Writer.Flush()
		case <-clientGone:
			s.logger.Info("chat client disconnected", "conversation_id", req.ConversationID)
			return
		}
	}
}

// CancelTaskResponse is the body of POST /api/v1/tasks/:id/cancel.
type CancelTaskResponse struct {
	TaskID              string   `json:"taskId"`
	Success             bool     `json:"success"`
	UpdatedComponentIDs []string `json:"updatedComponentIds"`
}

// CancelTask handles POST /api/v1/tasks/:id/cancel. It cancels the
// in-memory task when present and, regardless, rewrites every persisted
// scheduled_task_controller component for the task to cancelled. The
// endpoint is idempotent and still works after a restart dropped the
// in-memory task.
func (s *Server) CancelTask(c *gin.Context) {
	taskID := c.Param("id")

	cancelled := false
	switch err := s.tasks.Cancel(taskID); {
	case err == nil:
		cancelled = true
	case errors.Is(err, services.ErrTaskNotFound):
		// May still have persisted controllers from a previous run.
	case errors.Is(err, services.ErrTaskAlreadyDone):
		s.logger.Info("cancel requested for finished task", "task_id", taskID)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.cancelPersistedControllers(c, taskID)
	if err != nil {
		s.logger.Error("failed to update scheduled task controllers", "task_id", taskID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !cancelled && len(updated) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown task: " + taskID})
		return
	}

	c.JSON(http.StatusOK, CancelTaskResponse{
		TaskID:              taskID,
		Success:             true,
		UpdatedComponentIDs: updated,
	})
}

// cancelPersistedControllers upserts task_status to cancelled on every
// persisted scheduled_task_controller item referencing taskID and
// returns the item ids touched.
func (s *Server) cancelPersistedControllers(c *gin.Context, taskID string) ([]string, error) {
	ctx := c.Request.Context()
	items, err := s.items.ListByEvent(ctx, events.KindComponentGenerator)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, 1)
	for _, item := range items {
		var payload struct {
			Type    string         `json:"type"`
			Content map[string]any `json:"content"`
		}
		if err := json.Unmarshal([]byte(item.Payload), &payload); err != nil {
			s.logger.Warn("skipping unreadable component payload", "item_id", item.ItemID, "error", err)
			continue
		}
		if payload.Type != events.ComponentScheduledTaskController {
			continue
		}
		if id, _ := payload.Content["task_id"].(string); id != taskID {
			continue
		}

		payload.Content["task_status"] = string(models.TaskStatusCancelled)
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		item.Payload = string(raw)
		if err := s.items.UpsertByItemID(ctx, item); err != nil {
			return nil, err
		}
		updated = append(updated, item.ItemID)
	}
	return updated, nil
}

// GetConversation handles GET /api/v1/conversations/:id.
func (s *Server) GetConversation(c *gin.Context) {
	conv, err := s.conversations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// ListConversationItems handles GET /api/v1/conversations/:id/items,
// replaying the conversation's event log in insertion order.
func (s *Server) ListConversationItems(c *gin.Context) {
	ctx := c.Request.Context()
	conversationID := c.Param("id")

	if _, err := s.conversations.Get(ctx, conversationID); err != nil {
		if errors.Is(err, database.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := s.items.ListByConversation(ctx, conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListConversations handles GET /api/v1/conversations?user_id=.
func (s *Server) ListConversations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	conversations, err := s.conversations.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conversations)
}
