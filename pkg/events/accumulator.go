package events

import (
	"strings"
	"time"
)

// ScheduledTaskResultAccumulator consolidates one recurring invocation's
// output into a single schedule_task_result component, so the client is
// not flooded with chunks from background runs. For once tasks it is a
// pass-through.
//
// Recurring mode: message chunks are buffered, reasoning and tool-call
// events are dropped, everything else passes through.
type ScheduledTaskResultAccumulator struct {
	recurring bool
	buf       strings.Builder
}

// NewScheduledTaskResultAccumulator creates an accumulator. recurring
// selects buffering mode.
func NewScheduledTaskResultAccumulator(recurring bool) *ScheduledTaskResultAccumulator {
	return &ScheduledTaskResultAccumulator{recurring: recurring}
}

// Process filters one response. A nil return means the response was
// absorbed (buffered or dropped).
func (a *ScheduledTaskResultAccumulator) Process(resp *Response) *Response {
	if !a.recurring {
		return resp
	}
	switch resp.Event {
	case KindMessageChunk:
		if content, ok := resp.Payload["content"].(string); ok {
			a.buf.WriteString(content)
		}
		return nil
	case KindReasoning, KindToolCallStarted, KindToolCallCompleted:
		return nil
	}
	return resp
}

// Finalize ends one invocation. In recurring mode it returns the
// consolidated schedule_task_result component and resets the buffer for
// the next cycle; otherwise nil.
func (a *ScheduledTaskResultAccumulator) Finalize(factory *Factory, taskID, agentName string) *Response {
	if !a.recurring {
		return nil
	}
	result := a.buf.String()
	a.buf.Reset()
	return factory.Component(taskID, agentName, ComponentScheduleTaskResult, map[string]any{
		"result":      result,
		"create_time": time.Now().UTC().Format(time.RFC3339),
	})
}
