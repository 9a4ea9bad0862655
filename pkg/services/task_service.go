package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/stockbuddy/stockbuddy/pkg/models"
)

// Task registry errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskAlreadyDone = errors.New("task already in a terminal state")
)

type taskEntry struct {
	task       *models.Task
	cancelCh   chan struct{}
	cancelOnce sync.Once
}

// TaskService is the in-memory task registry. All task state writes
// funnel through here; readers get snapshots. Each task carries a
// cancellation token (a closed channel) that recurring workers poll.
//
// Tasks live only for the process lifetime; persisted components (the
// scheduled_task_controller items) are the durable trace.
type TaskService struct {
	mu     sync.RWMutex
	tasks  map[string]*taskEntry
	logger *slog.Logger
}

// NewTaskService creates an empty task registry.
func NewTaskService(logger *slog.Logger) *TaskService {
	return &TaskService{
		tasks:  make(map[string]*taskEntry),
		logger: logger.With("component", "tasks"),
	}
}

// Register adds a task to the registry. Re-registering an id replaces
// the previous entry and its token.
func (s *TaskService) Register(task *models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.TaskID] = &taskEntry{
		task:     task,
		cancelCh: make(chan struct{}),
	}
}

// Get returns a snapshot of the task.
func (s *TaskService) Get(taskID string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	snapshot := *entry.task
	return &snapshot, nil
}

// Status returns the task's current status.
func (s *TaskService) Status(taskID string) (models.TaskStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.tasks[taskID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return entry.task.Status, nil
}

// SetStatus transitions the task. Transitions out of a terminal state
// are rejected.
func (s *TaskService) SetStatus(taskID string, status models.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tasks[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if entry.task.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", ErrTaskAlreadyDone, taskID, entry.task.Status)
	}
	entry.task.Status = status
	return nil
}

// AppendRemoteTaskID records one remote invocation id. The list grows
// monotonically; recurring tasks accumulate one entry per cycle.
func (s *TaskService) AppendRemoteTaskID(taskID, remoteTaskID string) error {
	if remoteTaskID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tasks[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	entry.task.RemoteTaskIDs = append(entry.task.RemoteTaskIDs, remoteTaskID)
	return nil
}

// Cancel transitions the task to CANCELLED and signals its token.
// Cancelling an already-terminal task is an error; cancelling twice is
// safe for the token (it closes once).
func (s *TaskService) Cancel(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tasks[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if entry.task.Status == models.TaskStatusCancelled {
		return nil
	}
	if entry.task.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", ErrTaskAlreadyDone, taskID, entry.task.Status)
	}
	entry.task.Status = models.TaskStatusCancelled
	entry.cancelOnce.Do(func() { close(entry.cancelCh) })
	s.logger.Info("cancelled task", "task_id", taskID)
	return nil
}

// Cancelled returns the task's cancellation token: a channel closed on
// cancel. Unknown ids get a never-closing channel so workers can always
// select on the result.
func (s *TaskService) Cancelled(taskID string) <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.tasks[taskID]
	if !ok {
		return make(chan struct{})
	}
	return entry.cancelCh
}

// IsCancelled reports whether the task was cancelled.
func (s *TaskService) IsCancelled(taskID string) bool {
	select {
	case <-s.Cancelled(taskID):
		return true
	default:
		return false
	}
}
