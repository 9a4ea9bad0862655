package models

import "time"

// ExecutionPlan is the validated DAG of tasks produced by the planner.
// When GuidanceMessage is non-empty the plan carries no tasks: the planner
// is asking the user for clarification instead of scheduling work.
type ExecutionPlan struct {
	PlanID          string    `json:"plan_id"`
	ConversationID  string    `json:"conversation_id"`
	UserID          string    `json:"user_id"`
	OrigQuery       string    `json:"orig_query"`
	Tasks           []*Task   `json:"tasks"`
	GuidanceMessage string    `json:"guidance_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserMeta identifies the requesting user and target conversation.
type UserMeta struct {
	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}

// UserInput is a single user turn as delivered by the transport.
// TargetAgentName is empty when the user addresses the system as a whole.
type UserInput struct {
	Query           string   `json:"query"`
	TargetAgentName string   `json:"target_agent_name,omitempty"`
	Meta            UserMeta `json:"meta"`
}

// TriageDecision is the SuperAgent's routing verdict.
type TriageDecision string

const (
	TriageDecisionAnswer  TriageDecision = "answer"
	TriageDecisionHandoff TriageDecision = "handoff_to_planner"
)

// TriageOutcome is the result of the SuperAgent's single triage call.
type TriageOutcome struct {
	Decision          TriageDecision `json:"decision"`
	AnswerContent     string         `json:"answer_content,omitempty"`
	EnrichedQuery     string         `json:"enriched_query,omitempty"`
	RecommendedAgents []string       `json:"recommended_agents,omitempty"`
	Reason            string         `json:"reason,omitempty"`
}
