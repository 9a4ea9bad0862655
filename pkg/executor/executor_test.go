package executor

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbuddy/stockbuddy/pkg/config"
	"github.com/stockbuddy/stockbuddy/pkg/database"
	"github.com/stockbuddy/stockbuddy/pkg/events"
	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
	"github.com/stockbuddy/stockbuddy/pkg/services"
)

// scriptedAgent replays canned event streams, one script per invocation.
// The last script repeats once the list is exhausted.
type scriptedAgent struct {
	mu      sync.Mutex
	scripts [][]*remote.Event
	calls   int
}

func (a *scriptedAgent) SendMessage(ctx context.Context, query, conversationID string, meta *remote.CallMetadata) (<-chan *remote.Event, error) {
	a.mu.Lock()
	idx := a.calls
	if idx >= len(a.scripts) {
		idx = len(a.scripts) - 1
	}
	script := a.scripts[idx]
	a.calls++
	a.mu.Unlock()

	ch := make(chan *remote.Event, len(script))
	for _, event := range script {
		ch <- event
	}
	close(ch)
	return ch, nil
}

func (a *scriptedAgent) GetCard(ctx context.Context) (*remote.CapabilityCard, error) {
	return &remote.CapabilityCard{}, nil
}
func (a *scriptedAgent) Cancel(ctx context.Context, remoteTaskID string) error { return nil }
func (a *scriptedAgent) Close() error                                          { return nil }

func (a *scriptedAgent) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func submitted(remoteID string) *remote.Event {
	return &remote.Event{Status: &remote.TaskStatusUpdate{State: remote.RemoteStateSubmitted, RemoteTaskID: remoteID}}
}
func working(msg string) *remote.Event {
	return &remote.Event{Status: &remote.TaskStatusUpdate{State: remote.RemoteStateWorking, Message: msg}}
}
func completedEvent() *remote.Event {
	return &remote.Event{Status: &remote.TaskStatusUpdate{State: remote.RemoteStateCompleted}}
}
func failedEvent(reason string) *remote.Event {
	return &remote.Event{Status: &remote.TaskStatusUpdate{State: remote.RemoteStateFailed, Message: reason}}
}

func okScript(remoteID, msg string) []*remote.Event {
	return []*remote.Event{submitted(remoteID), working(msg), completedEvent()}
}

// recordingSink collects forwarded responses in order.
type recordingSink struct {
	mu        sync.Mutex
	responses []*events.Response
}

func (s *recordingSink) sink(r *events.Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, r)
}

func (s *recordingSink) all() []*events.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*events.Response(nil), s.responses...)
}

// indexOf returns the position of the first response matching kind and
// task id ("" matches any task).
func (s *recordingSink) indexOf(kind, taskID string) int {
	for i, r := range s.all() {
		if r.Event == kind && (taskID == "" || r.TaskID == taskID) {
			return i
		}
	}
	return -1
}

func testConfig() *config.Config {
	return &config.Config{
		Language:            "en",
		Timezone:            time.UTC,
		ExecutionContextTTL: time.Hour,
	}
}

func newTestBundle(t *testing.T, agents map[string]remote.RemoteAgentClient) *services.Bundle {
	t.Helper()
	client, err := database.NewClient(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	registry := remote.NewRegistry(slog.Default())
	for name, agent := range agents {
		registry.Register(name, agent)
	}
	return services.NewBundle(testConfig(), slog.Default(),
		database.NewConversationStore(client), database.NewItemStore(client), registry, nil)
}

func onceTask(id, conversationID, agent string) *models.Task {
	return &models.Task{
		TaskID:         id,
		ConversationID: conversationID,
		ThreadID:       "thread_1",
		UserID:         "user-1",
		AgentName:      agent,
		Status:         models.TaskStatusPending,
		Title:          agent + " task",
		Query:          "do the thing",
		Pattern:        models.TaskPatternOnce,
	}
}

func newPlan(conversationID string, tasks ...*models.Task) *models.ExecutionPlan {
	return &models.ExecutionPlan{
		PlanID:         models.NewPlanID(),
		ConversationID: conversationID,
		UserID:         "user-1",
		OrigQuery:      "test query",
		Tasks:          tasks,
	}
}

func TestExecute_SingleTask(t *testing.T) {
	agent := &scriptedAgent{scripts: [][]*remote.Event{okScript("remote-1", "Tesla up 3%")}}
	bundle := newTestBundle(t, map[string]remote.RemoteAgentClient{"NewsAgent": agent})
	exec := New(bundle)
	t.Cleanup(exec.Stop)

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	plan := newPlan("conv_1", onceTask("task_n", "conv_1", "NewsAgent"))

	exec.Execute(context.Background(), plan, factory, sink.sink)

	kinds := make([]string, 0)
	for _, r := range sink.all() {
		kinds = append(kinds, r.Event)
	}
	assert.Equal(t, []string{events.KindTaskStarted, events.KindMessageChunk, events.KindTaskCompleted}, kinds)

	status, err := bundle.Tasks.Status("task_n")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, status)

	task, err := bundle.Tasks.Get("task_n")
	require.NoError(t, err)
	assert.Equal(t, []string{"remote-1"}, task.RemoteTaskIDs)

	// Every forwarded event is persisted, same order.
	items, err := bundle.Items.ListByConversation(context.Background(), "conv_1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, r := range sink.all() {
		assert.Equal(t, r.ItemID, items[i].ItemID)
	}
}

func TestExecute_DAGBatchOrdering(t *testing.T) {
	agents := map[string]remote.RemoteAgentClient{
		"ResearchAgent": &scriptedAgent{scripts: [][]*remote.Event{okScript("r-1", "fundamentals")}},
		"NewsAgent":     &scriptedAgent{scripts: [][]*remote.Event{okScript("n-1", "headlines")}},
		"StrategyAgent": &scriptedAgent{scripts: [][]*remote.Event{okScript("s-1", "buy")}},
	}
	bundle := newTestBundle(t, agents)
	exec := New(bundle)
	t.Cleanup(exec.Stop)

	research := onceTask("task_r", "conv_1", "ResearchAgent")
	news := onceTask("task_n", "conv_1", "NewsAgent")
	strategy := onceTask("task_s", "conv_1", "StrategyAgent")
	strategy.DependsOn = []string{"task_r", "task_n"}

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	exec.Execute(context.Background(), newPlan("conv_1", research, news, strategy), factory, sink.sink)

	// Multi-task plans announce themselves first.
	assert.Equal(t, 0, sink.indexOf(events.KindComponentGenerator, ""))

	sStart := sink.indexOf(events.KindTaskStarted, "task_s")
	require.NotEqual(t, -1, sStart)
	assert.Greater(t, sStart, sink.indexOf(events.KindTaskCompleted, "task_r"))
	assert.Greater(t, sStart, sink.indexOf(events.KindTaskCompleted, "task_n"))
}

func TestExecute_FailureIsolation(t *testing.T) {
	agents := map[string]remote.RemoteAgentClient{
		"ResearchAgent": &scriptedAgent{scripts: [][]*remote.Event{okScript("r-1", "fundamentals")}},
		"NewsAgent":     &scriptedAgent{scripts: [][]*remote.Event{{submitted("n-1"), failedEvent("upstream timeout")}}},
		"StrategyAgent": &scriptedAgent{scripts: [][]*remote.Event{okScript("s-1", "buy")}},
	}
	bundle := newTestBundle(t, agents)
	exec := New(bundle)
	t.Cleanup(exec.Stop)

	research := onceTask("task_r", "conv_1", "ResearchAgent")
	news := onceTask("task_n", "conv_1", "NewsAgent")
	strategy := onceTask("task_s", "conv_1", "StrategyAgent")
	strategy.DependsOn = []string{"task_r", "task_n"}

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	exec.Execute(context.Background(), newPlan("conv_1", research, news, strategy), factory, sink.sink)

	assert.NotEqual(t, -1, sink.indexOf(events.KindTaskFailed, "task_n"))
	assert.NotEqual(t, -1, sink.indexOf(events.KindTaskCompleted, "task_r"))
	// The dependent never starts: no events at all for task_s.
	assert.Equal(t, -1, sink.indexOf(events.KindTaskStarted, "task_s"))

	nStatus, _ := bundle.Tasks.Status("task_n")
	assert.Equal(t, models.TaskStatusFailed, nStatus)
	rStatus, _ := bundle.Tasks.Status("task_r")
	assert.Equal(t, models.TaskStatusCompleted, rStatus)
}

// cancellingAgent cancels its own task before replaying the script,
// modelling a cancel request that lands while the invocation is in
// flight.
type cancellingAgent struct {
	scriptedAgent
	cancel func()
}

func (a *cancellingAgent) SendMessage(ctx context.Context, query, conversationID string, meta *remote.CallMetadata) (<-chan *remote.Event, error) {
	a.cancel()
	return a.scriptedAgent.SendMessage(ctx, query, conversationID, meta)
}

func TestExecute_CancelDuringInvocationEmitsNoTerminal(t *testing.T) {
	bundle := newTestBundle(t, nil)
	agent := &cancellingAgent{
		scriptedAgent: scriptedAgent{scripts: [][]*remote.Event{okScript("n-1", "partial")}},
		cancel:        func() { _ = bundle.Tasks.Cancel("task_n") },
	}
	bundle.Registry.Register("NewsAgent", agent)
	exec := New(bundle)
	t.Cleanup(exec.Stop)

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	exec.Execute(context.Background(), newPlan("conv_1", onceTask("task_n", "conv_1", "NewsAgent")), factory, sink.sink)

	kinds := make([]string, 0)
	for _, r := range sink.all() {
		kinds = append(kinds, r.Event)
	}
	// In-flight events still stream, but the cancelled task gets no
	// terminal event.
	assert.Equal(t, []string{events.KindTaskStarted, events.KindMessageChunk}, kinds)

	status, err := bundle.Tasks.Status("task_n")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCancelled, status)
}

func TestExecute_CancelDuringFailingInvocationEmitsNoTerminal(t *testing.T) {
	bundle := newTestBundle(t, nil)
	agent := &cancellingAgent{
		scriptedAgent: scriptedAgent{scripts: [][]*remote.Event{{submitted("n-1"), failedEvent("upstream timeout")}}},
		cancel:        func() { _ = bundle.Tasks.Cancel("task_n") },
	}
	bundle.Registry.Register("NewsAgent", agent)
	exec := New(bundle)
	t.Cleanup(exec.Stop)

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	exec.Execute(context.Background(), newPlan("conv_1", onceTask("task_n", "conv_1", "NewsAgent")), factory, sink.sink)

	assert.Equal(t, -1, sink.indexOf(events.KindTaskFailed, ""))
	assert.Equal(t, -1, sink.indexOf(events.KindTaskCompleted, ""))

	status, err := bundle.Tasks.Status("task_n")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCancelled, status)
}

func TestExecute_GuidancePassThrough(t *testing.T) {
	bundle := newTestBundle(t, nil)
	exec := New(bundle)
	t.Cleanup(exec.Stop)

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	plan := newPlan("conv_1")
	plan.GuidanceMessage = "Please confirm the schedule first."

	exec.Execute(context.Background(), plan, factory, sink.sink)

	responses := sink.all()
	require.Len(t, responses, 1)
	assert.Equal(t, events.KindMessageChunk, responses[0].Event)
	assert.Equal(t, PlannerAgentName, responses[0].AgentName)
	assert.Equal(t, "Please confirm the schedule first.", responses[0].Payload["content"])
}

func TestExecute_SubagentConversation(t *testing.T) {
	agent := &scriptedAgent{scripts: [][]*remote.Event{okScript("n-1", "headlines")}}
	bundle := newTestBundle(t, map[string]remote.RemoteAgentClient{"NewsAgent": agent})
	exec := New(bundle)
	t.Cleanup(exec.Stop)

	task := onceTask("task_n", "conv_child", "NewsAgent")
	task.HandoffFromSuperAgent = true
	task.SuperAgentConversationID = "conv_parent"

	sink := &recordingSink{}
	factory := events.NewFactory("conv_parent", "thread_1")
	exec.Execute(context.Background(), newPlan("conv_parent", task), factory, sink.sink)

	// Child conversation exists with the planner-assigned id.
	child, err := bundle.Conversations.Get(context.Background(), "conv_child")
	require.NoError(t, err)
	assert.Equal(t, "NewsAgent", child.AgentName)

	responses := sink.all()
	var phases []string
	endIdx, completedIdx := -1, -1
	for i, r := range responses {
		if r.Event == events.KindComponentGenerator {
			if r.Payload["type"] == events.ComponentSubagentConversation {
				content := r.Payload["content"].(map[string]any)
				phases = append(phases, content["phase"].(string))
				if content["phase"] == events.PhaseEnd {
					endIdx = i
				}
			}
		}
		if r.Event == events.KindTaskCompleted {
			completedIdx = i
		}
	}
	assert.Equal(t, []string{events.PhaseStart, events.PhaseEnd}, phases)
	require.NotEqual(t, -1, endIdx)
	assert.Less(t, endIdx, completedIdx)

	// Task events are scoped to the child conversation.
	started := responses[sink.indexOf(events.KindTaskStarted, "task_n")]
	assert.Equal(t, "conv_child", started.ConversationID)

	threadIdx := sink.indexOf(events.KindThreadStarted, "")
	require.NotEqual(t, -1, threadIdx)
	assert.Equal(t, "conv_child", responses[threadIdx].ConversationID)
}

func recurringTask(id, conversationID string) *models.Task {
	task := onceTask(id, conversationID, "NewsAgent")
	task.Pattern = models.TaskPatternRecurring
	task.ScheduleConfig = &models.ScheduleConfig{IntervalMinutes: 30}
	return task
}

func TestExecute_RecurringFirstInvocation(t *testing.T) {
	agent := &scriptedAgent{scripts: [][]*remote.Event{okScript("n-1", "cycle one")}}
	bundle := newTestBundle(t, map[string]remote.RemoteAgentClient{"NewsAgent": agent})
	exec := New(bundle)
	// Keep the background loop parked.
	exec.delayFn = func(*models.ScheduleConfig, *time.Location, time.Time) (time.Duration, bool) {
		return time.Hour, true
	}
	t.Cleanup(exec.Stop)

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	task := recurringTask("task_sched", "conv_1")
	exec.Execute(context.Background(), newPlan("conv_1", task), factory, sink.sink)

	// Chunks are consolidated: no raw message_chunk reaches the client.
	assert.Equal(t, -1, sink.indexOf(events.KindMessageChunk, ""))

	var sawController, sawResult bool
	for _, r := range sink.all() {
		if r.Event != events.KindComponentGenerator {
			continue
		}
		switch r.Payload["type"] {
		case events.ComponentScheduledTaskController:
			sawController = true
			content := r.Payload["content"].(map[string]any)
			assert.Equal(t, "task_sched", content["task_id"])
			assert.Equal(t, "every 30 minutes", content["schedule"])
		case events.ComponentScheduleTaskResult:
			sawResult = true
			content := r.Payload["content"].(map[string]any)
			assert.Equal(t, "cycle one", content["result"])
		}
	}
	assert.True(t, sawController)
	assert.True(t, sawResult)

	// Task keeps running for recurrence; no terminal event was emitted.
	status, err := bundle.Tasks.Status("task_sched")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, status)
	assert.Equal(t, -1, sink.indexOf(events.KindTaskCompleted, ""))

	require.NoError(t, bundle.Tasks.Cancel("task_sched"))
}

func TestExecute_RecurringContinuesAfterDisconnect(t *testing.T) {
	agent := &scriptedAgent{scripts: [][]*remote.Event{okScript("n-1", "cycle")}}
	bundle := newTestBundle(t, map[string]remote.RemoteAgentClient{"NewsAgent": agent})
	exec := New(bundle)
	exec.delayFn = func(*models.ScheduleConfig, *time.Location, time.Time) (time.Duration, bool) {
		return 20 * time.Millisecond, true
	}
	exec.pollInterval = 5 * time.Millisecond
	t.Cleanup(exec.Stop)

	factory := events.NewFactory("conv_1", "thread_1")
	task := recurringTask("task_sched", "conv_1")
	// The client is gone: emissions are no-ops but persistence continues.
	exec.Execute(context.Background(), newPlan("conv_1", task), factory, events.DiscardSink)

	require.Eventually(t, func() bool {
		items, err := bundle.Items.ListByEvent(context.Background(), events.KindComponentGenerator)
		if err != nil {
			return false
		}
		results := 0
		for _, item := range items {
			if item.TaskID == "task_sched" && strings.Contains(item.Payload, events.ComponentScheduleTaskResult) {
				results++
			}
		}
		return results >= 4 // first invocation plus at least 3 background cycles
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, bundle.Tasks.Cancel("task_sched"))
}

func TestExecute_RecurringCyclesBypassClientStream(t *testing.T) {
	agent := &scriptedAgent{scripts: [][]*remote.Event{okScript("n-1", "cycle")}}
	bundle := newTestBundle(t, map[string]remote.RemoteAgentClient{"NewsAgent": agent})
	exec := New(bundle)
	exec.delayFn = func(*models.ScheduleConfig, *time.Location, time.Time) (time.Duration, bool) {
		return 20 * time.Millisecond, true
	}
	exec.pollInterval = 5 * time.Millisecond
	t.Cleanup(exec.Stop)

	sink := &recordingSink{}
	factory := events.NewFactory("conv_1", "thread_1")
	task := recurringTask("task_sched", "conv_1")
	exec.Execute(context.Background(), newPlan("conv_1", task), factory, sink.sink)
	foreground := len(sink.all())

	// Wait until background cycles have persisted results.
	require.Eventually(t, func() bool {
		items, err := bundle.Items.ListByEvent(context.Background(), events.KindComponentGenerator)
		if err != nil {
			return false
		}
		results := 0
		for _, item := range items {
			if item.TaskID == "task_sched" && strings.Contains(item.Payload, events.ComponentScheduleTaskResult) {
				results++
			}
		}
		return results >= 3
	}, 5*time.Second, 20*time.Millisecond)

	// The session stream saw only the first invocation; later cycles
	// never touch it.
	assert.Equal(t, foreground, len(sink.all()))

	require.NoError(t, bundle.Tasks.Cancel("task_sched"))
}

func TestExecute_RecurringCancelDuringSleep(t *testing.T) {
	agent := &scriptedAgent{scripts: [][]*remote.Event{okScript("n-1", "cycle")}}
	bundle := newTestBundle(t, map[string]remote.RemoteAgentClient{"NewsAgent": agent})
	exec := New(bundle)
	exec.delayFn = func(*models.ScheduleConfig, *time.Location, time.Time) (time.Duration, bool) {
		return time.Hour, true
	}
	exec.pollInterval = 5 * time.Millisecond
	t.Cleanup(exec.Stop)

	factory := events.NewFactory("conv_1", "thread_1")
	task := recurringTask("task_sched", "conv_1")
	exec.Execute(context.Background(), newPlan("conv_1", task), factory, events.DiscardSink)
	require.Equal(t, 1, agent.callCount())

	require.NoError(t, bundle.Tasks.Cancel("task_sched"))

	// The sleep notices within a few poll intervals; no further
	// invocation happens.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, agent.callCount())

	status, err := bundle.Tasks.Status("task_sched")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCancelled, status)
}
