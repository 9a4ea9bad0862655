// Package remote defines the client surface for specialist agents: the
// streaming event types agents emit, the capability card they advertise,
// the RemoteAgentClient interface, its gRPC implementation, and the
// name-keyed registry the rest of the runtime resolves agents through.
package remote

import "context"

// RemoteState is the lifecycle state a remote agent reports for a task.
type RemoteState string

const (
	RemoteStateSubmitted RemoteState = "submitted"
	RemoteStateWorking   RemoteState = "working"
	RemoteStateCompleted RemoteState = "completed"
	RemoteStateFailed    RemoteState = "failed"
)

// Terminal reports whether the state ends the remote stream.
func (s RemoteState) Terminal() bool {
	return s == RemoteStateCompleted || s == RemoteStateFailed
}

// ToolCall describes a tool invocation reported by a remote agent.
// Result is empty while the call is in flight.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
	Result    string
}

// TaskStatusUpdate is a state change on the remote side of a task.
// At most one of Message, Reasoning, ToolCall is set per update.
type TaskStatusUpdate struct {
	RemoteTaskID string
	State        RemoteState
	Message      string
	Reasoning    string
	ToolCall     *ToolCall
}

// TaskArtifactUpdate carries a remote artifact. The core ignores these.
type TaskArtifactUpdate struct {
	RemoteTaskID string
	Name         string
	Content      string
}

// Event is one message from a remote agent stream. Exactly one of
// Status or Artifact is non-nil.
type Event struct {
	Status   *TaskStatusUpdate
	Artifact *TaskArtifactUpdate
}

// CapabilitySkill is one advertised skill on a capability card.
type CapabilitySkill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CapabilityCard describes what a remote agent can do. Injected into the
// triage and planning prompts.
type CapabilityCard struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Skills      []CapabilitySkill `json:"skills,omitempty"`
}

// CallMetadata travels with every SendMessage call.
type CallMetadata struct {
	UserID      string
	Language    string
	Timezone    string
	UserProfile string
	// Dependencies maps an upstream task title to the text it produced,
	// so dependent agents see their inputs.
	Dependencies map[string]string
}

// RemoteAgentClient is the capability every registered agent provides.
type RemoteAgentClient interface {
	// SendMessage opens a streaming call for one task invocation. The
	// returned channel is closed when the remote stream ends; stream
	// errors are delivered as a terminal failed status event.
	SendMessage(ctx context.Context, query, conversationID string, meta *CallMetadata) (<-chan *Event, error)
	GetCard(ctx context.Context) (*CapabilityCard, error)
	// Cancel asks the agent to stop a remote task. Optional; clients for
	// agents without a cancel surface return nil.
	Cancel(ctx context.Context, remoteTaskID string) error
	Close() error
}
