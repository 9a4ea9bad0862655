// Package orchestrator drives one session per user turn: triage, plan,
// execute, with human-in-the-loop pause and resume through in-memory
// execution contexts. Each session runs on a detached producer goroutine
// pushing into a bounded stream; a disconnected client stops delivery
// but never stops the work.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/stockbuddy/stockbuddy/pkg/config"
	"github.com/stockbuddy/stockbuddy/pkg/events"
	"github.com/stockbuddy/stockbuddy/pkg/executor"
	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/planner"
	"github.com/stockbuddy/stockbuddy/pkg/services"
	"github.com/stockbuddy/stockbuddy/pkg/triage"
)

// SuperAgentName labels triage answers in the client stream.
const SuperAgentName = "SuperAgent"

// Orchestrator is the top-level session driver.
type Orchestrator struct {
	cfg           *config.Config
	conversations *services.ConversationService
	events        *events.Service
	triager       *triage.Triager
	planning      *planner.Service
	executor      *executor.Executor
	contexts      *contextRegistry
	logger        *slog.Logger
}

// New creates an orchestrator over the service bundle.
func New(bundle *services.Bundle, triager *triage.Triager, planning *planner.Service, exec *executor.Executor) *Orchestrator {
	return &Orchestrator{
		cfg:           bundle.Config,
		conversations: bundle.Conversations,
		events:        bundle.Events,
		triager:       triager,
		planning:      planning,
		executor:      exec,
		contexts:      newContextRegistry(bundle.Config.ExecutionContextTTL),
		logger:        bundle.Logger.With("component", "orchestrator"),
	}
}

// ProcessUserInput starts a session for one user turn and returns its
// event stream. The producer is detached: closing the stream early does
// not stop execution, only delivery.
func (o *Orchestrator) ProcessUserInput(input *models.UserInput) *Stream {
	stream := newStream()
	go o.run(input, stream)
	return stream
}

func (o *Orchestrator) run(input *models.UserInput, stream *Stream) {
	ctx := context.Background()
	defer stream.finish()

	threadID := models.NewThreadID()
	factory := events.NewFactory(input.Meta.ConversationID, threadID)
	sink := stream.send

	// done closes every session, whatever path it took.
	defer func() { o.emit(ctx, factory.Done(), sink) }()
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("session panicked",
				"conversation_id", input.Meta.ConversationID,
				"panic", r, "stack", string(debug.Stack()))
			o.emit(ctx, factory.SystemFailed("internal error"), sink)
		}
	}()

	conv, created, err := o.conversations.EnsureConversation(ctx, input.Meta.ConversationID, input.Meta.UserID, o.conversationAgent(input))
	if err != nil {
		o.logger.Error("failed to load conversation",
			"conversation_id", input.Meta.ConversationID, "error", err)
		o.emit(ctx, factory.SystemFailed(fmt.Sprintf("could not load conversation: %v", err)), sink)
		return
	}
	factory = events.NewFactory(conv.ID, threadID)

	if created {
		o.emit(ctx, factory.ConversationStarted(), sink)
	}
	o.emit(ctx, factory.ThreadStarted(), sink)
	if err := o.events.AppendUserMessage(ctx, conv.ID, threadID, input.Query); err != nil {
		o.logger.Warn("could not persist user message", "conversation_id", conv.ID, "error", err)
	}

	if conv.Status == models.ConversationStatusRequireUserInput {
		o.resume(ctx, input, conv, factory, sink)
		return
	}

	o.startSession(ctx, input, conv, threadID, factory, sink)
}

func (o *Orchestrator) conversationAgent(input *models.UserInput) string {
	if input.TargetAgentName != "" {
		return input.TargetAgentName
	}
	return SuperAgentName
}

// startSession handles an active-conversation turn: route the query and
// hand it to the planner, unless the triager answers directly.
func (o *Orchestrator) startSession(ctx context.Context, input *models.UserInput, conv *models.Conversation, threadID string, factory *events.Factory, sink events.Sink) {
	req := &planner.PlanRequest{
		Query:           input.Query,
		TargetAgentName: input.TargetAgentName,
		UserID:          input.Meta.UserID,
		ConversationID:  conv.ID,
		ThreadID:        threadID,
	}

	switch {
	case input.TargetAgentName != "":
		// Directly addressed agent: transparent proxy, no triage.
	case planner.FastTrackToPlanner(input.Query):
		o.logger.Info("fast-tracking complex query to planner", "conversation_id", conv.ID)
	default:
		outcome := o.triager.Triage(ctx, input)
		if outcome.Decision == models.TriageDecisionAnswer {
			o.emit(ctx, factory.MessageChunk("", SuperAgentName, outcome.AnswerContent), sink)
			return
		}
		if outcome.EnrichedQuery != "" {
			req.Query = outcome.EnrichedQuery
		}
		req.RecommendedAgents = outcome.RecommendedAgents
	}

	job := o.planning.Start(req)
	o.monitor(ctx, input, conv, factory, sink, job)
}

// monitor waits for the planning job to finish or to raise a
// clarification request. A request pauses the session: the context is
// parked, the conversation flips to require_user_input, and this stream
// ends while the job keeps running for the next turn.
func (o *Orchestrator) monitor(ctx context.Context, input *models.UserInput, conv *models.Conversation, factory *events.Factory, sink events.Sink, job *planner.Job) {
	select {
	case <-job.Done():
		o.finishPlanning(ctx, conv, factory, sink, job)

	case req := <-job.Pending():
		o.contexts.put(&ExecutionContext{
			Stage:          StagePlanning,
			ConversationID: conv.ID,
			ThreadID:       factory.ThreadID,
			UserID:         input.Meta.UserID,
			OriginalQuery:  input.Query,
			Pending:        req,
		})
		if err := o.conversations.SetStatus(ctx, conv.ID, models.ConversationStatusRequireUserInput); err != nil {
			o.logger.Error("could not mark conversation paused",
				"conversation_id", conv.ID, "error", err)
		}
		o.emit(ctx, factory.PlanRequireUserInput(req.Prompt), sink)
		o.logger.Info("planning paused for user input", "conversation_id", conv.ID)
	}
}

// resume handles a turn on a paused conversation: validate the parked
// context, deliver the user's reply to the waiting planner, and go back
// to polling the job.
func (o *Orchestrator) resume(ctx context.Context, input *models.UserInput, conv *models.Conversation, factory *events.Factory, sink events.Sink) {
	ectx, err := o.contexts.take(conv.ID, input.Meta.UserID)
	if err != nil {
		o.logger.Error("cannot resume paused session", "conversation_id", conv.ID, "error", err)
		o.planning.Remove(conv.ID)
		o.reactivate(ctx, conv.ID)
		o.emit(ctx, factory.SystemFailed(fmt.Sprintf("cannot resume session: %v", err)), sink)
		return
	}

	job, ok := o.planning.Get(conv.ID)
	if !ok {
		o.logger.Error("paused conversation has no planning job", "conversation_id", conv.ID)
		o.reactivate(ctx, conv.ID)
		o.emit(ctx, factory.SystemFailed("cannot resume session: planning job is gone"), sink)
		return
	}

	o.reactivate(ctx, conv.ID)
	ectx.Pending.Fulfil(input.Query)
	o.logger.Info("resumed paused planning", "conversation_id", conv.ID)
	o.monitor(ctx, input, conv, factory, sink, job)
}

func (o *Orchestrator) reactivate(ctx context.Context, conversationID string) {
	if err := o.conversations.SetStatus(ctx, conversationID, models.ConversationStatusActive); err != nil {
		o.logger.Warn("could not reactivate conversation",
			"conversation_id", conversationID, "error", err)
	}
}

// finishPlanning surfaces the finished job: plan_failed on planner
// errors, otherwise title bookkeeping and execution.
func (o *Orchestrator) finishPlanning(ctx context.Context, conv *models.Conversation, factory *events.Factory, sink events.Sink, job *planner.Job) {
	plan, err := job.Result()
	o.planning.Remove(conv.ID)
	if err != nil {
		o.logger.Warn("planning failed", "conversation_id", conv.ID, "error", err)
		o.emit(ctx, factory.PlanFailed(err.Error()), sink)
		return
	}

	if len(plan.Tasks) > 0 {
		if _, err := o.conversations.SetTitleOnce(ctx, conv.ID, plan.Tasks[0].Title); err != nil {
			o.logger.Warn("could not set conversation title",
				"conversation_id", conv.ID, "error", err)
		}
	}

	o.executor.Execute(ctx, plan, factory, sink)
}

func (o *Orchestrator) emit(ctx context.Context, resp *events.Response, sink events.Sink) {
	if err := o.events.Emit(ctx, resp, sink); err != nil {
		o.logger.Error("failed to emit event", "event", resp.Event, "error", err)
	}
}
