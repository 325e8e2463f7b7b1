package ports

import (
	"context"
	"time"

	"tasklane/internal/core/domain"
)

type TaskRepository interface {
	// ListForOwner returns the owner's top-level tasks matching the
	// filters, ordered per sort, with subtasks attached recursively.
	ListForOwner(ctx context.Context, ownerID uint64, filters domain.TaskFilters, sort string) ([]*domain.Task, error)
	// FindByID returns the task with its full subtree, or
	// domain.ErrTaskNotFound.
	FindByID(ctx context.Context, id uint64) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	MarkDone(ctx context.Context, id uint64, completedAt time.Time) error
	// Delete removes the task and all of its descendants.
	Delete(ctx context.Context, id uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, ownerID uint64, filters domain.TaskFilters, sort string) ([]*domain.Task, error)
	CreateTask(ctx context.Context, input domain.TaskInput, ownerID uint64) (*domain.Task, error)
	GetTask(ctx context.Context, id uint64, ownerID uint64) (*domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.TaskInput, ownerID uint64) (*domain.Task, error)
	CompleteTask(ctx context.Context, id uint64, ownerID uint64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id uint64, ownerID uint64) error
}
