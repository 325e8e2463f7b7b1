package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "todo"
	TaskStatusDone TaskStatus = "done"
)

const (
	TaskPriorityMin = 1
	TaskPriorityMax = 5
)

const (
	TaskTitleMinLen       = 3
	TaskTitleMaxLen       = 255
	TaskDescriptionMaxLen = 10000
)

type Task struct {
	ID          uint64
	OwnerID     uint64
	ParentID    *uint64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    int
	CreatedAt   time.Time
	CompletedAt *time.Time
	Subtasks    []*Task
}

// AddSubtask attaches child to t. Adding a task that is already a
// subtask of t is a no-op.
func (t *Task) AddSubtask(child *Task) {
	for _, sub := range t.Subtasks {
		if sub == child {
			return
		}
	}
	t.Subtasks = append(t.Subtasks, child)
	id := t.ID
	child.ParentID = &id
}

// RemoveSubtask detaches child from t. The child's parent reference is
// cleared only if it still points at t.
func (t *Task) RemoveSubtask(child *Task) {
	for i, sub := range t.Subtasks {
		if sub != child {
			continue
		}
		t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
		if child.ParentID != nil && *child.ParentID == t.ID {
			child.ParentID = nil
		}
		return
	}
}

// TaskInput carries the writable task fields for create and update.
type TaskInput struct {
	Title       string
	Description *string
	Priority    int
	ParentID    *uint64
}

// TaskFilters restricts a task listing. Empty fields are ignored; set
// fields combine with logical AND.
type TaskFilters struct {
	Status      string
	Priority    string
	Title       string
	Description string
}
