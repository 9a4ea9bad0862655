// Package executor runs execution plans: it peels the task DAG into
// parallel batches, opens one remote stream per task, merges the streams
// into the client feed, and drives recurring tasks on their schedule
// with cooperative cancellation.
package executor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stockbuddy/stockbuddy/pkg/config"
	"github.com/stockbuddy/stockbuddy/pkg/events"
	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
	"github.com/stockbuddy/stockbuddy/pkg/services"
)

// defaultPollInterval bounds how long a cancelled recurring task keeps
// sleeping before its loop notices.
const defaultPollInterval = 100 * time.Millisecond

// PlannerAgentName labels planner-originated client messages.
const PlannerAgentName = "Planner"

// Executor runs plans against remote agents.
type Executor struct {
	tasks         *services.TaskService
	conversations *services.ConversationService
	events        *events.Service
	registry      *remote.Registry
	cfg           *config.Config
	logger        *slog.Logger

	pollInterval time.Duration
	delayFn      func(*models.ScheduleConfig, *time.Location, time.Time) (time.Duration, bool)

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates an executor over the service bundle.
func New(bundle *services.Bundle) *Executor {
	return &Executor{
		tasks:         bundle.Tasks,
		conversations: bundle.Conversations,
		events:        bundle.Events,
		registry:      bundle.Registry,
		cfg:           bundle.Config,
		logger:        bundle.Logger.With("component", "executor"),
		pollInterval:  defaultPollInterval,
		delayFn:       NextExecutionDelay,
		stopCh:        make(chan struct{}),
	}
}

// Stop ends all background recurrence loops and waits for them.
func (e *Executor) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	e.wg.Wait()
}

// taskOutcome is one task's batch result.
type taskOutcome struct {
	task   *models.Task
	output string
	failed bool
}

// Execute runs the plan to completion of its once tasks. Recurring
// tasks execute their first invocation inline, then continue in
// background goroutines until cancelled; Execute does not wait for
// them, so the client stream can close early.
func (e *Executor) Execute(ctx context.Context, plan *models.ExecutionPlan, factory *events.Factory, sink events.Sink) {
	if plan.GuidanceMessage != "" {
		e.emit(ctx, factory.MessageChunk("", PlannerAgentName, plan.GuidanceMessage), sink)
		return
	}
	if len(plan.Tasks) == 0 {
		return
	}

	for _, task := range plan.Tasks {
		e.tasks.Register(task)
	}
	if len(plan.Tasks) > 1 {
		e.emit(ctx, executionPlanComponent(factory, plan), sink)
	}

	remaining := make(map[string]*models.Task, len(plan.Tasks))
	order := make([]string, 0, len(plan.Tasks))
	for _, task := range plan.Tasks {
		remaining[task.TaskID] = task
		order = append(order, task.TaskID)
	}
	completed := map[string]bool{}
	failed := map[string]bool{}
	outputs := map[string]string{}

	for len(remaining) > 0 {
		// Tasks downstream of a failure never start and emit nothing.
		// Repeat until settled so skips cascade through chains.
		for {
			changed := false
			for id, task := range remaining {
				if anyDepIn(task.DependsOn, failed) {
					e.logger.Warn("skipping task with failed dependency",
						"task_id", id, "agent", task.AgentName)
					failed[id] = true
					delete(remaining, id)
					changed = true
				}
			}
			if !changed {
				break
			}
		}

		var batch []*models.Task
		for _, id := range order {
			task, ok := remaining[id]
			if ok && allDepsIn(task.DependsOn, completed) {
				batch = append(batch, task)
			}
		}
		if len(batch) == 0 {
			if len(remaining) == 0 {
				break
			}
			// Validation should have caught this; run the leftovers
			// best-effort in one final batch.
			e.logger.Error("dependency cycle detected in plan, running remaining tasks in one batch",
				"plan_id", plan.PlanID, "remaining", len(remaining))
			for _, id := range order {
				if task, ok := remaining[id]; ok {
					batch = append(batch, task)
				}
			}
		}

		outcomes := make([]taskOutcome, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		for i, task := range batch {
			deps := e.dependencyArtifacts(task, plan, outputs)
			g.Go(func() error {
				outcomes[i] = e.runTask(gctx, task, factory, sink, deps)
				return nil
			})
		}
		_ = g.Wait()

		for _, outcome := range outcomes {
			delete(remaining, outcome.task.TaskID)
			if outcome.failed {
				failed[outcome.task.TaskID] = true
				continue
			}
			completed[outcome.task.TaskID] = true
			outputs[outcome.task.TaskID] = outcome.output
		}
	}
}

// dependencyArtifacts maps each dependency's title to the text it
// produced, for the remote-call metadata.
func (e *Executor) dependencyArtifacts(task *models.Task, plan *models.ExecutionPlan, outputs map[string]string) map[string]string {
	if len(task.DependsOn) == 0 {
		return nil
	}
	titles := make(map[string]string, len(plan.Tasks))
	for _, t := range plan.Tasks {
		titles[t.TaskID] = t.Title
	}
	deps := make(map[string]string, len(task.DependsOn))
	for _, dep := range task.DependsOn {
		if output, ok := outputs[dep]; ok {
			deps[titles[dep]] = output
		}
	}
	return deps
}

// runTask executes one task: subagent bookkeeping, the first (or only)
// remote invocation, terminal synthesis, and recurrence spawn.
func (e *Executor) runTask(ctx context.Context, task *models.Task, factory *events.Factory, sink events.Sink, deps map[string]string) taskOutcome {
	if err := e.tasks.SetStatus(task.TaskID, models.TaskStatusRunning); err != nil {
		// Cancelled before it started; stay silent per the cancellation
		// contract (no terminal event).
		e.logger.Warn("task not startable", "task_id", task.TaskID, "error", err)
		return taskOutcome{task: task, failed: true}
	}

	taskFactory := factory
	emitEnd := func() {}
	if task.HandoffFromSuperAgent {
		if _, err := e.conversations.EnsureSubagentConversation(ctx, task.ConversationID, task.UserID, task.AgentName); err != nil {
			e.logger.Error("failed to ensure subagent conversation",
				"task_id", task.TaskID, "error", err)
			return e.failTask(ctx, task, factory, sink, "could not create subagent conversation", emitEnd)
		}
		taskFactory = factory.ForConversation(task.ConversationID)

		e.emit(ctx, factory.Component(task.TaskID, task.AgentName, events.ComponentSubagentConversation, map[string]any{
			"phase":           events.PhaseStart,
			"conversation_id": task.ConversationID,
			"agent_name":      task.AgentName,
		}), sink)
		e.emit(ctx, taskFactory.ThreadStarted(), sink)

		var endOnce sync.Once
		emitEnd = func() {
			endOnce.Do(func() {
				e.emit(ctx, factory.Component(task.TaskID, task.AgentName, events.ComponentSubagentConversation, map[string]any{
					"phase":           events.PhaseEnd,
					"conversation_id": task.ConversationID,
					"agent_name":      task.AgentName,
				}), sink)
			})
		}
	}

	client, err := e.registry.Resolve(task.AgentName)
	if err != nil {
		return e.failTask(ctx, task, taskFactory, sink, err.Error(), emitEnd)
	}

	if task.IsScheduled() {
		e.emit(ctx, taskFactory.Component(task.TaskID, task.AgentName, events.ComponentScheduledTaskController, map[string]any{
			"task_id":     task.TaskID,
			"title":       task.Title,
			"task_status": string(models.TaskStatusRunning),
			"schedule":    task.ScheduleConfig.String(),
		}), sink)
	}

	output, failReason := e.runInvocation(ctx, task, client, taskFactory, sink, deps)
	if failReason != "" {
		return e.failTask(ctx, task, taskFactory, sink, failReason, emitEnd)
	}

	if task.IsScheduled() {
		// The client stream may end now; recurrence continues detached.
		e.wg.Add(1)
		go e.recurrenceLoop(task, client, taskFactory, deps)
		return taskOutcome{task: task, output: output}
	}

	if err := e.tasks.SetStatus(task.TaskID, models.TaskStatusCompleted); err != nil {
		if errors.Is(err, services.ErrTaskAlreadyDone) && e.tasks.IsCancelled(task.TaskID) {
			// Cancelled while the invocation was in flight: no terminal
			// event for a cancelled task.
			e.logger.Info("task cancelled during invocation", "task_id", task.TaskID)
			emitEnd()
			return taskOutcome{task: task, failed: true}
		}
		e.logger.Warn("could not complete task", "task_id", task.TaskID, "error", err)
	}
	emitEnd()
	e.emit(ctx, taskFactory.TaskCompleted(task.TaskID, task.AgentName), sink)
	return taskOutcome{task: task, output: output}
}

func (e *Executor) failTask(ctx context.Context, task *models.Task, factory *events.Factory, sink events.Sink, reason string, emitEnd func()) taskOutcome {
	if err := e.tasks.SetStatus(task.TaskID, models.TaskStatusFailed); err != nil {
		if errors.Is(err, services.ErrTaskAlreadyDone) && e.tasks.IsCancelled(task.TaskID) {
			e.logger.Info("task cancelled during invocation", "task_id", task.TaskID)
			emitEnd()
			return taskOutcome{task: task, failed: true}
		}
		if !errors.Is(err, services.ErrTaskAlreadyDone) {
			e.logger.Warn("could not mark task failed", "task_id", task.TaskID, "error", err)
		}
	}
	e.logger.Error("task failed", "task_id", task.TaskID, "agent", task.AgentName, "reason", reason)
	emitEnd()
	e.emit(ctx, factory.TaskFailed(task.TaskID, task.AgentName, reason), sink)
	return taskOutcome{task: task, failed: true}
}

// runInvocation performs one remote streaming call and routes its
// events. Returns the concatenated message text and, on failure, the
// reason.
func (e *Executor) runInvocation(ctx context.Context, task *models.Task, client remote.RemoteAgentClient, factory *events.Factory, sink events.Sink, deps map[string]string) (string, string) {
	meta := &remote.CallMetadata{
		UserID:       task.UserID,
		Language:     e.cfg.Language,
		Timezone:     e.cfg.Timezone.String(),
		Dependencies: deps,
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, err := client.SendMessage(callCtx, task.Query, task.ConversationID, meta)
	if err != nil {
		return "", err.Error()
	}

	router := events.NewRouter(factory, task.TaskID, task.AgentName, task.Title)
	acc := events.NewScheduledTaskResultAccumulator(task.IsScheduled())

	var output strings.Builder
	var failReason string

	for event := range ch {
		if event.Status != nil && event.Status.State == remote.RemoteStateSubmitted {
			if err := e.tasks.AppendRemoteTaskID(task.TaskID, event.Status.RemoteTaskID); err != nil {
				e.logger.Warn("could not record remote task id", "task_id", task.TaskID, "error", err)
			}
		}

		result := router.Route(event)
		for _, resp := range result.Responses {
			if resp.Event == events.KindMessageChunk {
				if content, ok := resp.Payload["content"].(string); ok {
					output.WriteString(content)
				}
			}
			if forwarded := acc.Process(resp); forwarded != nil {
				e.emit(ctx, forwarded, sink)
			}
		}
		for _, effect := range result.SideEffects {
			if effect.Kind == events.SideEffectFailTask {
				failReason = effect.Reason
			}
		}
		if result.Done {
			cancel()
		}
	}

	if failReason == "" {
		if final := acc.Finalize(factory, task.TaskID, task.AgentName); final != nil {
			e.emit(ctx, final, sink)
		}
	}
	return output.String(), failReason
}

// recurrenceLoop re-invokes a recurring task on its schedule until the
// task is cancelled, the process stops, or an invocation fails. The
// sleep polls cancellation at pollInterval granularity. The session
// stream is over by the time a cycle fires, so cycles persist their
// events without forwarding.
func (e *Executor) recurrenceLoop(task *models.Task, client remote.RemoteAgentClient, factory *events.Factory, deps map[string]string) {
	defer e.wg.Done()
	ctx := context.Background()
	sink := events.DiscardSink

	for {
		delay, ok := e.delayFn(task.ScheduleConfig, e.cfg.Timezone, time.Now())
		if !ok {
			e.logger.Info("recurrence ended", "task_id", task.TaskID)
			return
		}
		if !e.sleepCooperatively(task.TaskID, delay) {
			e.logger.Info("recurring task stopped during sleep", "task_id", task.TaskID)
			return
		}
		if e.tasks.IsCancelled(task.TaskID) {
			return
		}

		_, failReason := e.runInvocation(ctx, task, client, factory, sink, deps)
		if failReason != "" {
			e.failTask(ctx, task, factory, sink, failReason, func() {})
			return
		}
	}
}

// sleepCooperatively waits d, checking the task's cancellation token and
// executor shutdown every pollInterval. Returns false when interrupted.
func (e *Executor) sleepCooperatively(taskID string, d time.Duration) bool {
	deadline := time.Now().Add(d)
	for {
		if e.tasks.IsCancelled(taskID) {
			return false
		}
		left := time.Until(deadline)
		if left <= 0 {
			return true
		}
		wait := e.pollInterval
		if left < wait {
			wait = left
		}
		select {
		case <-time.After(wait):
		case <-e.stopCh:
			return false
		case <-e.tasks.Cancelled(taskID):
			return false
		}
	}
}

func (e *Executor) emit(ctx context.Context, resp *events.Response, sink events.Sink) {
	if err := e.events.Emit(ctx, resp, sink); err != nil {
		e.logger.Error("failed to emit event", "event", resp.Event, "error", err)
	}
}

func executionPlanComponent(factory *events.Factory, plan *models.ExecutionPlan) *events.Response {
	var tasks []map[string]any
	parallel := 0
	for _, task := range plan.Tasks {
		if len(task.DependsOn) == 0 {
			parallel++
		}
		tasks = append(tasks, map[string]any{
			"id":         task.TaskID,
			"agent_name": task.AgentName,
			"title":      task.Title,
			"query":      task.Query,
			"status":     string(task.Status),
			"depends_on": task.DependsOn,
		})
	}
	return factory.Component("", PlannerAgentName, events.ComponentExecutionPlan, map[string]any{
		"tasks":            tasks,
		"total_count":      len(plan.Tasks),
		"parallel_count":   parallel,
		"sequential_count": len(plan.Tasks) - parallel,
	})
}

func allDepsIn(deps []string, set map[string]bool) bool {
	for _, dep := range deps {
		if !set[dep] {
			return false
		}
	}
	return true
}

func anyDepIn(deps []string, set map[string]bool) bool {
	for _, dep := range deps {
		if set[dep] {
			return true
		}
	}
	return false
}
