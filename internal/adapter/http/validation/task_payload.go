package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"tasklane/internal/adapter/http/dto"
	"tasklane/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildTaskInput validates the request payload and converts it into a
// domain input. Field rules: title 3-255 characters after trimming,
// description up to 10000 characters, priority 1-5.
func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if length := utf8.RuneCountInString(title); length < domain.TaskTitleMinLen || length > domain.TaskTitleMaxLen {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	if req.Description != nil && utf8.RuneCountInString(*req.Description) > domain.TaskDescriptionMaxLen {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	if req.Priority < domain.TaskPriorityMin || req.Priority > domain.TaskPriorityMax {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	return domain.TaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    req.Priority,
		ParentID:    req.ParentID,
	}, nil
}
