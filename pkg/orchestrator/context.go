package orchestrator

import (
	"errors"
	"sync"
	"time"

	"github.com/stockbuddy/stockbuddy/pkg/planner"
)

// StagePlanning is the only execution-context stage today.
const StagePlanning = "planning"

// Context validation errors. All of them surface as system_failed on the
// resuming stream.
var (
	ErrContextMissing      = errors.New("no execution context for conversation")
	ErrContextExpired      = errors.New("execution context expired")
	ErrContextUserMismatch = errors.New("execution context belongs to another user")
	ErrContextWrongStage   = errors.New("execution context is not in the planning stage")
)

// ExecutionContext is the in-memory pause state for a conversation whose
// planner is waiting on user input. Never persisted; a process restart
// drops paused sessions.
type ExecutionContext struct {
	Stage          string
	ConversationID string
	ThreadID       string
	UserID         string
	OriginalQuery  string
	Pending        *planner.UserInputRequest
	CreatedAt      time.Time
}

// contextRegistry holds execution contexts keyed by conversation id.
// The orchestrator is the only writer.
type contextRegistry struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	contexts map[string]*ExecutionContext
}

func newContextRegistry(ttl time.Duration) *contextRegistry {
	return &contextRegistry{
		ttl:      ttl,
		now:      time.Now,
		contexts: make(map[string]*ExecutionContext),
	}
}

func (r *contextRegistry) put(ectx *ExecutionContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ectx.CreatedAt.IsZero() {
		ectx.CreatedAt = r.now()
	}
	r.contexts[ectx.ConversationID] = ectx
}

// take removes and validates the conversation's context. The context is
// consumed either way: a failed validation also cleans it up.
func (r *contextRegistry) take(conversationID, userID string) (*ExecutionContext, error) {
	r.mu.Lock()
	ectx, ok := r.contexts[conversationID]
	delete(r.contexts, conversationID)
	r.mu.Unlock()

	if !ok {
		return nil, ErrContextMissing
	}
	if r.now().Sub(ectx.CreatedAt) > r.ttl {
		return nil, ErrContextExpired
	}
	if ectx.UserID != userID {
		return nil, ErrContextUserMismatch
	}
	if ectx.Stage != StagePlanning {
		return nil, ErrContextWrongStage
	}
	return ectx, nil
}
