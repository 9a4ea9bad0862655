package planner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// ErrNoResponse is returned when a clarification request is abandoned.
var ErrNoResponse = errors.New("user input request was cancelled")

// UserInputRequest is one clarification round: the planner's prompt and
// a one-shot slot for the user's reply.
type UserInputRequest struct {
	Prompt string

	once   sync.Once
	respCh chan string
}

// NewUserInputRequest creates a pending request.
func NewUserInputRequest(prompt string) *UserInputRequest {
	return &UserInputRequest{Prompt: prompt, respCh: make(chan string, 1)}
}

// Fulfil delivers the user's reply. Later calls are no-ops.
func (r *UserInputRequest) Fulfil(response string) {
	r.once.Do(func() { r.respCh <- response })
}

// Await blocks for the reply or ctx cancellation.
func (r *UserInputRequest) Await(ctx context.Context) (string, error) {
	select {
	case resp := <-r.respCh:
		return resp, nil
	case <-ctx.Done():
		return "", ErrNoResponse
	}
}

// Job is one background planning run. The orchestrator polls Done and
// Pending; the planner goroutine keeps running across client turns.
type Job struct {
	ConversationID string

	pending chan *UserInputRequest
	done    chan struct{}
	cancel  context.CancelFunc

	mu   sync.Mutex
	plan *models.ExecutionPlan
	err  error
}

// Done is closed when planning finished (successfully or not).
func (j *Job) Done() <-chan struct{} { return j.done }

// Pending delivers clarification requests as the planner raises them.
func (j *Job) Pending() <-chan *UserInputRequest { return j.pending }

// Result returns the finished plan. Valid only after Done is closed.
func (j *Job) Result() (*models.ExecutionPlan, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.plan, j.err
}

// Cancel aborts the planning run; a blocked clarification wait exits
// with ErrNoResponse.
func (j *Job) Cancel() { j.cancel() }

// Service runs planning jobs keyed by conversation id. Jobs are
// detached from the client stream: a paused planner survives the
// pausing turn and is picked up again on resume. A clarification the
// user never answers expires after pendingTTL, so abandoned jobs
// unblock and get reaped instead of living forever.
type Service struct {
	planner    *Planner
	pendingTTL time.Duration
	logger     *slog.Logger

	mu   sync.Mutex
	jobs map[string]*Job
}

// NewService creates a planning service. pendingTTL bounds how long a
// job waits for a clarification answer; it should match the execution
// context TTL so a resumable context always finds its job alive.
func NewService(p *Planner, pendingTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		planner:    p,
		pendingTTL: pendingTTL,
		logger:     logger.With("component", "planning-jobs"),
		jobs:       make(map[string]*Job),
	}
}

// Start launches a planning job for the request's conversation,
// replacing (and cancelling) any previous job on it.
func (s *Service) Start(req *PlanRequest) *Job {
	ctx, cancel := context.WithCancel(context.Background())
	job := &Job{
		ConversationID: req.ConversationID,
		pending:        make(chan *UserInputRequest, 1),
		done:           make(chan struct{}),
		cancel:         cancel,
	}

	s.mu.Lock()
	if prev, ok := s.jobs[req.ConversationID]; ok {
		prev.cancel()
	}
	s.jobs[req.ConversationID] = job
	s.mu.Unlock()

	ask := func(ctx context.Context, prompt string) (string, error) {
		request := NewUserInputRequest(prompt)
		select {
		case job.pending <- request:
		case <-ctx.Done():
			return "", ErrNoResponse
		}
		waitCtx, cancelWait := context.WithTimeout(ctx, s.pendingTTL)
		defer cancelWait()
		return request.Await(waitCtx)
	}

	go func() {
		defer close(job.done)
		plan, err := s.planner.CreatePlan(ctx, req, ask)
		job.mu.Lock()
		job.plan, job.err = plan, err
		job.mu.Unlock()
		if err != nil {
			s.logger.Warn("planning job failed",
				"conversation_id", req.ConversationID, "error", err)
		}

		// Reap the entry unless a newer job already replaced it; the
		// caller still holds the job pointer for Result.
		s.mu.Lock()
		if s.jobs[req.ConversationID] == job {
			delete(s.jobs, req.ConversationID)
		}
		s.mu.Unlock()
	}()

	return job
}

// Get returns the job for a conversation, if any.
func (s *Service) Get(conversationID string) (*Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[conversationID]
	return job, ok
}

// Remove cancels and forgets the conversation's job.
func (s *Service) Remove(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[conversationID]; ok {
		job.cancel()
		delete(s.jobs, conversationID)
	}
}
