package models

import "github.com/google/uuid"

// ID constructors. Prefixes make log lines and persisted rows self-describing.

func NewConversationID() string { return "conv_" + uuid.NewString() }
func NewThreadID() string       { return "thread_" + uuid.NewString() }
func NewTaskID() string         { return "task_" + uuid.NewString() }
func NewItemID() string         { return "item_" + uuid.NewString() }
func NewPlanID() string         { return "plan_" + uuid.NewString() }
