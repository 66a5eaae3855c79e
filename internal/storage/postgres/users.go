package postgres

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, password_hash, email, phone_number, role_id, created_at, updated_at`

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser fetches a user by primary key.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByUsername fetches a user by username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, email, phone_number, role_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Email, user.PhoneNumber, user.RoleID)
	return scanUser(row)
}

// UpdateUser overwrites the mutable profile columns and bumps updated_at.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	const query = `
		UPDATE users
		SET username = $2, password_hash = $3, email = $4, phone_number = $5, updated_at = NOW()
		WHERE id = $1`
	return s.execOne(ctx, query, user.ID, user.Username, user.PasswordHash, user.Email, user.PhoneNumber)
}

// DeleteUser removes a user row.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.execOne(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.PhoneNumber, &user.RoleID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}
