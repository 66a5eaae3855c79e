package sqlite

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
)

const userColumns = `id, username, password_hash, email, phone_number, role_id, created_at, updated_at`

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
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

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	id, err := s.insert(ctx,
		`INSERT INTO users (username, password_hash, email, phone_number, role_id) VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Email, user.PhoneNumber, user.RoleID)
	if err != nil {
		return models.User{}, err
	}
	return s.GetUser(ctx, id)
}

func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	const query = `
		UPDATE users
		SET username = ?, password_hash = ?, email = ?, phone_number = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	return s.execOne(ctx, query, user.Username, user.PasswordHash, user.Email, user.PhoneNumber, user.ID)
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.execOne(ctx, `DELETE FROM users WHERE id = ?`, id)
}

func scanUser(row scanner) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.PhoneNumber, &user.RoleID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}
