package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase/interfaces"
)

// UserPostgresRepository persists staff accounts.
type UserPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(db *sql.DB) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

func (r *UserPostgresRepository) Create(ctx context.Context, u *entities.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, created_date, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.PasswordHash, u.Role, u.CreatedDate, u.Enabled)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserPostgresRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role, created_date, enabled
		 FROM users WHERE username = $1`,
		strings.ToLower(strings.TrimSpace(username))).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedDate, &u.Enabled)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
