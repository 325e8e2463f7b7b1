package mapper

import (
	"tasklane/internal/adapter/http/dto"
	"tasklane/internal/core/domain"
)

const timeLayout = "2006-01-02 15:04:05"

func ToTaskItems(tasks []*domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task *domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  task.Priority,
		CreatedAt: task.CreatedAt.Format(timeLayout),
		Subtasks:  make([]dto.TaskItem, 0, len(task.Subtasks)),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(timeLayout)
		item.CompletedAt = &value
	}

	if task.ParentID != nil {
		value := *task.ParentID
		item.ParentID = &value
	}

	for _, subtask := range task.Subtasks {
		item.Subtasks = append(item.Subtasks, ToTaskItem(subtask))
	}

	return item
}
