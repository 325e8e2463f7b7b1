package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tasklane/internal/core/domain"
	"tasklane/internal/core/ports"
)

const selectSubtreeQuery = `
SELECT t.* FROM tasks t
WHERE t.owner_id = ? AND t.parent_id IS NOT NULL
ORDER BY t.id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	OwnerID     uint64         `db:"owner_id"`
	ParentID    sql.NullInt64  `db:"parent_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    int            `db:"priority"`
	CreatedAt   time.Time      `db:"created_at"`
	CompletedAt sql.NullTime   `db:"completed_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListForOwner(ctx context.Context, ownerID uint64, filters domain.TaskFilters, sort string) ([]*domain.Task, error) {
	query, args := buildListQuery(ownerID, filters, sort)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	children, err := r.loadSubtree(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		attachSubtasks(task, children)
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, "SELECT t.* FROM tasks t WHERE t.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	children, err := r.loadSubtree(ctx, row.OwnerID)
	if err != nil {
		return nil, err
	}
	attachSubtasks(task, children)

	return task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (owner_id, parent_id, title, description, status, priority, created_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.OwnerID,
		task.ParentID,
		task.Title,
		task.Description,
		string(task.Status),
		task.Priority,
		task.CreatedAt,
		task.CompletedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = uint64(id)

	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE tasks SET title = ?, description = ?, priority = ?, parent_id = ?
WHERE id = ?`,
		task.Title,
		task.Description,
		task.Priority,
		task.ParentID,
		task.ID,
	)
	return err
}

func (r *TaskRepository) MarkDone(ctx context.Context, id uint64, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?",
		string(domain.TaskStatusDone), completedAt, id,
	)
	return err
}

// Delete removes the task and every descendant in one transaction,
// deepest level first. The parent_id foreign key also carries
// ON DELETE CASCADE, so a row never survives its parent.
func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	levels := [][]uint64{{id}}
	for {
		frontier := levels[len(levels)-1]
		query, args, err := sqlx.In("SELECT id FROM tasks WHERE parent_id IN (?)", frontier)
		if err != nil {
			return err
		}

		var next []uint64
		if err := tx.SelectContext(ctx, &next, tx.Rebind(query), args...); err != nil {
			return err
		}
		if len(next) == 0 {
			break
		}
		levels = append(levels, next)
	}

	for i := len(levels) - 1; i >= 0; i-- {
		query, args, err := sqlx.In("DELETE FROM tasks WHERE id IN (?)", levels[i])
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// loadSubtree fetches every non-root task of the owner and groups them
// by parent so callers can attach subtasks without further queries.
func (r *TaskRepository) loadSubtree(ctx context.Context, ownerID uint64) (map[uint64][]*domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, selectSubtreeQuery, ownerID); err != nil {
		return nil, err
	}

	children := make(map[uint64][]*domain.Task, len(rows))
	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		parentID := uint64(row.ParentID.Int64)
		children[parentID] = append(children[parentID], task)
	}

	return children, nil
}

// attachSubtasks wires the children map into the task. The subtree
// query orders by id, so each subtask list keeps insertion order.
func attachSubtasks(task *domain.Task, children map[uint64][]*domain.Task) {
	for _, sub := range children[task.ID] {
		task.Subtasks = append(task.Subtasks, sub)
		attachSubtasks(sub, children)
	}
}

func mapTaskRowToDomainTask(row taskRow) *domain.Task {
	task := &domain.Task{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  row.Priority,
		CreatedAt: row.CreatedAt,
	}

	if row.ParentID.Valid {
		value := uint64(row.ParentID.Int64)
		task.ParentID = &value
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	return task
}
