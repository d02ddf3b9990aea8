package dbrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// ============================== User Repository ==============================
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// GetUserByUsername fetches an operator account for sign-in
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, name, role, created_at, updated_at
		FROM users
		WHERE username = $1;`

	u := &models.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.Password, &u.Name, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return u, nil
}

// EnsureDefaultUser seeds the first operator account when the users table
// is empty. The password hash is computed at boot so no fixed hash ships
// in the migrations.
func (r *UserRepo) EnsureDefaultUser(ctx context.Context, username, hash, name, role string) error {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO users (username, password, name, role) VALUES ($1, $2, $3, $4);`,
		username, hash, name, role)
	if err != nil {
		return fmt.Errorf("error seeding default user: %w", err)
	}
	return nil
}

// UpdateUserPassword stores a new bcrypt hash for the account
func (r *UserRepo) UpdateUserPassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.Exec(ctx,
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2;`, hash, id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if res.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
