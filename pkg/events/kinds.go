// Package events defines the canonical client-facing event taxonomy, the
// factory that builds events, the router that translates remote agent
// streams, the recurring-result accumulator, and the persisting emit
// service. Every event the runtime emits flows through this package.
package events

// Event kinds consumed by the client.
const (
	KindConversationStarted = "conversation_started"
	KindThreadStarted       = "thread_started"

	KindTaskStarted   = "task_started"
	KindTaskCompleted = "task_completed"
	KindTaskFailed    = "task_failed"

	KindMessageChunk      = "message_chunk"
	KindReasoning         = "reasoning"
	KindToolCallStarted   = "tool_call_started"
	KindToolCallCompleted = "tool_call_completed"

	KindPlanRequireUserInput = "plan_require_user_input"
	KindPlanFailed           = "plan_failed"

	KindComponentGenerator = "component_generator"

	KindSystemFailed = "system_failed"
	KindDone         = "done"
)

// component_generator payload types.
const (
	ComponentExecutionPlan           = "execution_plan"
	ComponentSubagentConversation    = "subagent_conversation"
	ComponentScheduledTaskController = "scheduled_task_controller"
	ComponentScheduleTaskResult      = "schedule_task_result"
)

// subagent_conversation phases.
const (
	PhaseStart = "start"
	PhaseEnd   = "end"
)
