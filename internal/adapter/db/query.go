package db

import (
	"strings"

	"tasklane/internal/core/domain"
)

// Sortable fields exposed by the list endpoint, mapped to columns.
var sortColumns = map[string]string{
	"priority":    "t.priority",
	"createdAt":   "t.created_at",
	"completedAt": "t.completed_at",
}

const defaultOrderBy = "ORDER BY t.created_at DESC"

// buildListQuery translates filter and sort criteria into the SQL for
// the owner's top-level task listing. It is a pure function so the
// translation can be tested without a database.
func buildListQuery(ownerID uint64, filters domain.TaskFilters, sort string) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT t.* FROM tasks t WHERE t.owner_id = ? AND t.parent_id IS NULL")
	args := []any{ownerID}

	if filters.Status != "" {
		sb.WriteString(" AND t.status = ?")
		args = append(args, filters.Status)
	}
	if filters.Priority != "" {
		sb.WriteString(" AND t.priority = ?")
		args = append(args, filters.Priority)
	}
	if filters.Title != "" {
		sb.WriteString(" AND t.title LIKE ?")
		args = append(args, "%"+filters.Title+"%")
	}
	if filters.Description != "" {
		sb.WriteString(" AND t.description LIKE ?")
		args = append(args, "%"+filters.Description+"%")
	}

	sb.WriteString(" ")
	sb.WriteString(buildOrderBy(sort))
	return sb.String(), args
}

// buildOrderBy parses a flat field,direction token list, e.g.
// "priority,desc,createdAt,asc". Unknown fields are skipped together
// with their direction token; a missing direction means ascending.
func buildOrderBy(sort string) string {
	if strings.TrimSpace(sort) == "" {
		return defaultOrderBy
	}

	tokens := strings.Split(sort, ",")
	var clauses []string
	for i := 0; i < len(tokens); i += 2 {
		field := strings.TrimSpace(tokens[i])
		direction := "ASC"
		if i+1 < len(tokens) && strings.EqualFold(strings.TrimSpace(tokens[i+1]), "desc") {
			direction = "DESC"
		}

		column, ok := sortColumns[field]
		if !ok {
			continue
		}
		clauses = append(clauses, column+" "+direction)
	}

	if len(clauses) == 0 {
		return defaultOrderBy
	}
	return "ORDER BY " + strings.Join(clauses, ", ")
}
