package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// User is a dashboard login stored in DB.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepo handles user persistence
type UserRepo struct {
	pool DBPool // reuse DBPool type from repository package
}

func NewUserRepo(pool DBPool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new user. Expects caller to hash the password.
func (r *UserRepo) Create(ctx context.Context, u *User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1,$2)`,
		u.Username, u.PasswordHash,
	)
	return err
}

// GetByUsername returns a user by username.
// Returns (nil, nil) if not found.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	row := r.pool.QueryRow(ctx, `
    SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1
    LIMIT 1`, username)

	var u User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
