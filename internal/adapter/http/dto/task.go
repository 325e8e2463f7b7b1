package dto

type TaskItem struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Priority    int        `json:"priority"`
	CreatedAt   string     `json:"createdAt"`
	CompletedAt *string    `json:"completedAt"`
	ParentID    *uint64    `json:"parentId"`
	Subtasks    []TaskItem `json:"subtasks"`
}

// TaskRequest is the payload for both create and update.
type TaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Priority    int     `json:"priority" binding:"required"`
	ParentID    *uint64 `json:"parentId" binding:"omitempty,gt=0"`
}
