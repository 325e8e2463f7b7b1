package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"tasklane/internal/core/domain"
	"tasklane/internal/core/ports"
)

const mysqlErrDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID       uint64          `db:"id"`
	Email    string          `db:"email"`
	Roles    json.RawMessage `db:"roles"`
	Password string          `db:"password"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	roles, err := json.Marshal(user.Roles)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (email, roles, password) VALUES (?, ?, ?)",
		user.Email, roles, user.PasswordHash,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.ErrEmailTaken
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint64(id)

	return nil
}

// FindByEmail returns (nil, nil) when no user has the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, "SELECT id, email, roles, password FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.Password,
	}
	if len(row.Roles) > 0 {
		if err := json.Unmarshal(row.Roles, &user.Roles); err != nil {
			return nil, err
		}
	}

	return user, nil
}
