package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskAccessDenied    = errors.New("task access denied")
	ErrTaskSelfParent      = errors.New("task cannot be its own parent")
	ErrUnfinishedSubtasks  = errors.New("task has unfinished subtasks")
	ErrTaskAlreadyComplete = errors.New("cannot delete a completed task")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
