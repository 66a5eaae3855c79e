package postgres

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
	"github.com/jackc/pgx/v5"
)

// ListRoles returns every role ordered by id.
func (s *Store) ListRoles(ctx context.Context) ([]models.Role, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]models.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("list roles: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// GetRole fetches a role by primary key.
func (s *Store) GetRole(ctx context.Context, id int64) (models.Role, error) {
	return scanRole(s.pool.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id))
}

// FindRoleByName fetches a role by its exact name.
func (s *Store) FindRoleByName(ctx context.Context, name string) (models.Role, error) {
	return scanRole(s.pool.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name))
}

// CreateRole inserts a new role.
func (s *Store) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	return scanRole(s.pool.QueryRow(ctx, `INSERT INTO roles (name) VALUES ($1) RETURNING id, name`, role.Name))
}

func scanRole(row pgx.Row) (models.Role, error) {
	var role models.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		return models.Role{}, translate(err)
	}
	return role, nil
}
