package planner

import (
	"errors"
	"fmt"

	"github.com/stockbuddy/stockbuddy/pkg/models"
	"github.com/stockbuddy/stockbuddy/pkg/remote"
)

// Plan validation errors.
var (
	ErrUnknownAgent    = errors.New("plan references an unregistered agent")
	ErrDependencyCycle = errors.New("plan dependencies contain a cycle")
	ErrBadDependency   = errors.New("plan dependency references a task outside the plan")
	ErrEmptyTaskField  = errors.New("task title and query must be non-empty")
)

// ValidatePlan checks the contract every plan must honor before
// execution: known agents, a dependency DAG closed over the plan,
// exactly-one schedule field on recurring tasks, and non-empty
// title/query.
func ValidatePlan(tasks []*models.Task, registry *remote.Registry) error {
	ids := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		ids[task.TaskID] = true
	}

	for _, task := range tasks {
		if !registry.Has(task.AgentName) {
			return fmt.Errorf("%w: %s", ErrUnknownAgent, task.AgentName)
		}
		if task.Title == "" || task.Query == "" {
			return fmt.Errorf("%w: task %s", ErrEmptyTaskField, task.TaskID)
		}
		for _, dep := range task.DependsOn {
			if !ids[dep] {
				return fmt.Errorf("%w: task %s depends on %s", ErrBadDependency, task.TaskID, dep)
			}
		}
		if task.Pattern == models.TaskPatternRecurring {
			if task.ScheduleConfig == nil {
				return fmt.Errorf("recurring task %s has no schedule: %w", task.TaskID, models.ErrScheduleEmpty)
			}
			if err := task.ScheduleConfig.Validate(); err != nil {
				return fmt.Errorf("recurring task %s: %w", task.TaskID, err)
			}
		} else if task.ScheduleConfig != nil {
			return fmt.Errorf("once task %s carries a schedule config", task.TaskID)
		}
	}

	if hasCycle(tasks) {
		return ErrDependencyCycle
	}
	return nil
}

// hasCycle runs topological peeling to completion; leftovers mean a cycle.
func hasCycle(tasks []*models.Task) bool {
	remaining := make(map[string][]string, len(tasks))
	for _, task := range tasks {
		remaining[task.TaskID] = task.DependsOn
	}
	done := make(map[string]bool, len(tasks))

	for len(remaining) > 0 {
		progressed := false
		for id, deps := range remaining {
			ready := true
			for _, dep := range deps {
				if !done[dep] {
					ready = false
					break
				}
			}
			if ready {
				done[id] = true
				delete(remaining, id)
				progressed = true
			}
		}
		if !progressed {
			return true
		}
	}
	return false
}
