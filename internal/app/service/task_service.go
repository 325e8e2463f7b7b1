package service

import (
	"context"
	"time"

	"tasklane/internal/core/domain"
	"tasklane/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64, filters domain.TaskFilters, sort string) ([]*domain.Task, error) {
	return s.taskRepository.ListForOwner(ctx, ownerID, filters, sort)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.TaskInput, ownerID uint64) (*domain.Task, error) {
	task := &domain.Task{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusTodo,
		Priority:    input.Priority,
		CreatedAt:   time.Now(),
	}

	if input.ParentID != nil {
		parent, err := s.findOwnedTask(ctx, *input.ParentID, ownerID)
		if err != nil {
			return nil, err
		}
		task.ParentID = &parent.ID
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint64, ownerID uint64) (*domain.Task, error) {
	return s.findOwnedTask(ctx, id, ownerID)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.TaskInput, ownerID uint64) (*domain.Task, error) {
	task, err := s.findOwnedTask(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Priority = input.Priority

	if input.ParentID != nil {
		if *input.ParentID == task.ID {
			return nil, domain.ErrTaskSelfParent
		}
		parent, err := s.findOwnedTask(ctx, *input.ParentID, ownerID)
		if err != nil {
			return nil, err
		}
		task.ParentID = &parent.ID
	} else {
		// A null parent detaches the task from its hierarchy.
		task.ParentID = nil
	}

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// CompleteTask marks the task done once every direct subtask is done.
// Completing an already-done task is a no-op: completedAt keeps its
// original value.
func (s *TaskService) CompleteTask(ctx context.Context, id uint64, ownerID uint64) (*domain.Task, error) {
	task, err := s.findOwnedTask(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if task.Status == domain.TaskStatusDone {
		return task, nil
	}

	for _, subtask := range task.Subtasks {
		if subtask.Status != domain.TaskStatusDone {
			return nil, domain.ErrUnfinishedSubtasks
		}
	}

	completedAt := time.Now()
	if err := s.taskRepository.MarkDone(ctx, task.ID, completedAt); err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatusDone
	task.CompletedAt = &completedAt

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64, ownerID uint64) error {
	task, err := s.findOwnedTask(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if task.Status == domain.TaskStatusDone {
		return domain.ErrTaskAlreadyComplete
	}

	return s.taskRepository.Delete(ctx, task.ID)
}

// findOwnedTask resolves a task id and verifies ownership. A missing
// task wins over a foreign one: not-found is reported before
// access-denied.
func (s *TaskService) findOwnedTask(ctx context.Context, id uint64, ownerID uint64) (*domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != ownerID {
		return nil, domain.ErrTaskAccessDenied
	}
	return task, nil
}
