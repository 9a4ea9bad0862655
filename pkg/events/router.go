package events

import (
	"github.com/stockbuddy/stockbuddy/pkg/remote"
)

// SideEffectKind names an action the executor must take in response to a
// routed remote event.
type SideEffectKind string

const (
	// SideEffectFailTask marks the owning task failed with the carried reason.
	SideEffectFailTask SideEffectKind = "fail_task"
)

// SideEffect is an executor action produced by routing.
type SideEffect struct {
	Kind   SideEffectKind
	Reason string
}

// RouteResult is the outcome of routing one remote event.
type RouteResult struct {
	Responses   []*Response
	SideEffects []SideEffect
	// Done is true when the remote stream reached a terminal state.
	// Terminal synthesis (task_completed / task_failed) is the
	// executor's job, not the router's.
	Done bool
}

// Router translates one task's remote event stream into client events.
// One Router instance serves one task invocation; it tracks whether
// task_started was already emitted.
type Router struct {
	factory   *Factory
	taskID    string
	agentName string
	title     string
	started   bool
}

// NewRouter creates a router for one task invocation.
func NewRouter(factory *Factory, taskID, agentName, title string) *Router {
	return &Router{factory: factory, taskID: taskID, agentName: agentName, title: title}
}

// Route translates a single remote event. Artifact updates are dropped.
func (r *Router) Route(event *remote.Event) RouteResult {
	if event == nil || event.Status == nil {
		return RouteResult{}
	}

	status := event.Status
	var result RouteResult

	switch status.State {
	case remote.RemoteStateSubmitted:
		if !r.started {
			r.started = true
			result.Responses = append(result.Responses,
				r.factory.TaskStarted(r.taskID, r.agentName, r.title))
		}
	case remote.RemoteStateWorking:
		result.Responses = r.translateWorking(status)
	case remote.RemoteStateCompleted:
		result.Done = true
	case remote.RemoteStateFailed:
		result.Done = true
		reason := status.Message
		if reason == "" {
			reason = "remote agent reported failure"
		}
		result.SideEffects = append(result.SideEffects, SideEffect{
			Kind:   SideEffectFailTask,
			Reason: reason,
		})
	}

	return result
}

func (r *Router) translateWorking(status *remote.TaskStatusUpdate) []*Response {
	var responses []*Response
	if status.Message != "" {
		responses = append(responses,
			r.factory.MessageChunk(r.taskID, r.agentName, status.Message))
	}
	if status.Reasoning != "" {
		responses = append(responses,
			r.factory.Reasoning(r.taskID, r.agentName, status.Reasoning))
	}
	if tc := status.ToolCall; tc != nil {
		if tc.Result != "" {
			responses = append(responses,
				r.factory.ToolCallCompleted(r.taskID, r.agentName, tc.Name, tc.Result))
		} else {
			responses = append(responses,
				r.factory.ToolCallStarted(r.taskID, r.agentName, tc.Name, tc.Arguments))
		}
	}
	return responses
}
