package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbuddy/stockbuddy/pkg/config"
	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/events"
	"github.com/stockbuddy/stockbuddy/pkg/executor"
	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/orchestrator"
	"github.com/stockbuddy/stockbuddy/pkg/planner"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
	"github.com/stockbuddy/stockbuddy/pkg/services"
	"github.com/stockbuddy/stockbuddy/pkg/triage"
)

type fakeLLM struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (f *fakeLLM) Invoke(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.responses) {
		return "", context.Canceled
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

func newTestServer(t *testing.T, llmResponses []string) (*Server, *services.Bundle) {
	t.Helper()
	client, err := database.NewClient(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.Default()
	registry := remote.NewRegistry(logger)
	cfg := &config.Config{
		Language:            "en",
		Timezone:            time.UTC,
		ExecutionContextTTL: time.Hour,
	}
	llmClient := &fakeLLM{responses: llmResponses}
	bundle := services.NewBundle(cfg, logger,
		database.NewConversationStore(client), database.NewItemStore(client), registry, llmClient)

	triager := triage.NewTriager(llmClient, registry, logger)
	p := planner.NewPlanner(llmClient, registry, false, logger)
	planning := planner.NewService(p, cfg.ExecutionContextTTL, logger)
	exec := executor.New(bundle)
	t.Cleanup(exec.Stop)

	orch := orchestrator.New(bundle, triager, planning, exec)
	return NewServer(bundle, orch), bundle
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := doJSON(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestChat_TriageAnswerStreamsSSE(t *testing.T) {
	s, _ := newTestServer(t, []string{`{"decision":"answer","answer_content":"4"}`})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat",
		`{"query":"What is 2+2?","user_id":"user-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "event:conversation_started")
	assert.Contains(t, body, "event:thread_started")
	assert.Contains(t, body, "event:message_chunk")
	assert.Contains(t, body, "event:done")

	// Order: done is the last event in the stream.
	assert.Greater(t, strings.LastIndex(body, "event:done"), strings.LastIndex(body, "event:message_chunk"))
}

func TestChat_BadRequest(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat", `{"query":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// persistController stores a scheduled_task_controller component and
// returns its item id.
func persistController(t *testing.T, bundle *services.Bundle, conversationID, taskID, status string) string {
	t.Helper()
	factory := events.NewFactory(conversationID, "thread_1")
	resp := factory.Component(taskID, "NewsAgent", events.ComponentScheduledTaskController, map[string]any{
		"task_id":     taskID,
		"title":       "News: apple earnings",
		"task_status": status,
		"schedule":    "daily at 09:00",
	})
	require.NoError(t, bundle.Events.Emit(context.Background(), resp, events.DiscardSink))
	return resp.ItemID
}

func controllerStatus(t *testing.T, bundle *services.Bundle, conversationID, itemID string) string {
	t.Helper()
	items, err := bundle.Items.ListByConversation(context.Background(), conversationID)
	require.NoError(t, err)
	for _, item := range items {
		if item.ItemID != itemID {
			continue
		}
		var payload struct {
			Content map[string]any `json:"content"`
		}
		require.NoError(t, json.Unmarshal([]byte(item.Payload), &payload))
		status, _ := payload.Content["task_status"].(string)
		return status
	}
	t.Fatalf("item %s not found", itemID)
	return ""
}

func TestCancelTask_InMemoryAndPersisted(t *testing.T) {
	s, bundle := newTestServer(t, nil)

	task := &models.Task{
		TaskID:         "task_sched",
		ConversationID: "conv_1",
		UserID:         "user-1",
		AgentName:      "NewsAgent",
		Status:         models.TaskStatusPending,
		Pattern:        models.TaskPatternRecurring,
		ScheduleConfig: &models.ScheduleConfig{DailyTime: "09:00"},
	}
	bundle.Tasks.Register(task)
	require.NoError(t, bundle.Tasks.SetStatus("task_sched", models.TaskStatusRunning))
	itemID := persistController(t, bundle, "conv_1", "task_sched", "running")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/tasks/task_sched/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CancelTaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "task_sched", resp.TaskID)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{itemID}, resp.UpdatedComponentIDs)

	status, err := bundle.Tasks.Status("task_sched")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCancelled, status)
	assert.Equal(t, "cancelled", controllerStatus(t, bundle, "conv_1", itemID))

	// Idempotent: a second call observes identical state.
	rec2 := doJSON(t, s, http.MethodPost, "/api/v1/tasks/task_sched/cancel", "")
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.JSONEq(t, rec.Body.String(), rec2.Body.String())
}

func TestCancelTask_PersistedOnlyAfterRestart(t *testing.T) {
	s, bundle := newTestServer(t, nil)

	// No in-memory task: simulates a restart with a live controller in
	// the UI.
	itemID := persistController(t, bundle, "conv_1", "task_gone", "running")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/tasks/task_gone/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CancelTaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{itemID}, resp.UpdatedComponentIDs)
	assert.Equal(t, "cancelled", controllerStatus(t, bundle, "conv_1", itemID))
}

func TestCancelTask_Unknown(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/tasks/task_nope/cancel", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversationEndpoints(t *testing.T) {
	s, bundle := newTestServer(t, nil)
	ctx := context.Background()

	created, err := bundle.Conversations.EnsureSubagentConversation(ctx, "conv_api", "user-1", "SuperAgent")
	require.NoError(t, err)
	require.Equal(t, "conv_api", created.ID)

	require.NoError(t, bundle.Events.Emit(ctx,
		events.NewFactory("conv_api", "thread_1").MessageChunk("", "SuperAgent", "hello"),
		events.DiscardSink))

	rec := doJSON(t, s, http.MethodGet, "/api/v1/conversations/conv_api", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.UserID)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/conversations/conv_api/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []*models.ConversationItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, events.KindMessageChunk, items[0].Event)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/conversations?user_id=user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []*models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.NotEmpty(t, list)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/conversations/conv_missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/conversations", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
