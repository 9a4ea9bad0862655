package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Terminal reports whether the status is a terminal state.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusCancelled:
		return true
	}
	return false
}

// TaskPattern distinguishes one-shot tasks from recurring ones.
type TaskPattern string

const (
	TaskPatternOnce      TaskPattern = "once"
	TaskPatternRecurring TaskPattern = "recurring"
)

var dailyTimeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// Sentinel validation errors.
var (
	ErrScheduleEmpty     = errors.New("schedule config must set exactly one of interval_minutes or daily_time")
	ErrScheduleAmbiguous = errors.New("schedule config must not set both interval_minutes and daily_time")
)

// ScheduleConfig describes when a recurring task re-executes.
// Exactly one of IntervalMinutes or DailyTime is set.
type ScheduleConfig struct {
	IntervalMinutes int    `json:"interval_minutes,omitempty"`
	DailyTime       string `json:"daily_time,omitempty"` // "HH:MM", 24h
}

// Validate checks the exactly-one-field invariant.
func (c *ScheduleConfig) Validate() error {
	hasInterval := c.IntervalMinutes > 0
	hasDaily := c.DailyTime != ""
	switch {
	case hasInterval && hasDaily:
		return ErrScheduleAmbiguous
	case !hasInterval && !hasDaily:
		return ErrScheduleEmpty
	case hasDaily && !dailyTimeRe.MatchString(c.DailyTime):
		return fmt.Errorf("invalid daily_time %q: must be HH:MM in 24h format", c.DailyTime)
	}
	return nil
}

// String renders the schedule for prompts and component payloads.
func (c *ScheduleConfig) String() string {
	if c == nil {
		return ""
	}
	if c.IntervalMinutes > 0 {
		return fmt.Sprintf("every %d minutes", c.IntervalMinutes)
	}
	return "daily at " + c.DailyTime
}

// Task is a unit of work delegated to a single remote agent.
//
// DependsOn references tasks in the same plan and must form a DAG.
// ScheduleConfig is non-nil iff Pattern is recurring. RemoteTaskIDs grows
// monotonically, one entry per remote invocation.
type Task struct {
	TaskID         string          `json:"task_id"`
	ConversationID string          `json:"conversation_id"`
	ThreadID       string          `json:"thread_id"`
	UserID         string          `json:"user_id"`
	AgentName      string          `json:"agent_name"`
	Status         TaskStatus      `json:"status"`
	Title          string          `json:"title"`
	Query          string          `json:"query"`
	Pattern        TaskPattern     `json:"pattern"`
	ScheduleConfig *ScheduleConfig `json:"schedule_config,omitempty"`
	DependsOn      []string        `json:"depends_on,omitempty"`
	RemoteTaskIDs  []string        `json:"remote_task_ids,omitempty"`

	// Handoff bookkeeping: tasks routed by the SuperAgent run in a fresh
	// child conversation while the parent thread id is preserved.
	HandoffFromSuperAgent    bool   `json:"handoff_from_super_agent,omitempty"`
	SuperAgentConversationID string `json:"super_agent_conversation_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsScheduled reports whether the task re-executes on a schedule.
func (t *Task) IsScheduled() bool {
	return t.Pattern == TaskPatternRecurring && t.ScheduleConfig != nil
}
