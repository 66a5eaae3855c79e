package sqlite

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
)

func (s *Store) ListRoles(ctx context.Context) ([]models.Role, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
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

func (s *Store) GetRole(ctx context.Context, id int64) (models.Role, error) {
	return scanRole(s.db.QueryRowContext(ctx, `SELECT id, name FROM roles WHERE id = ?`, id))
}

func (s *Store) FindRoleByName(ctx context.Context, name string) (models.Role, error) {
	return scanRole(s.db.QueryRowContext(ctx, `SELECT id, name FROM roles WHERE name = ?`, name))
}

func (s *Store) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	id, err := s.insert(ctx, `INSERT INTO roles (name) VALUES (?)`, role.Name)
	if err != nil {
		return models.Role{}, err
	}
	return models.Role{ID: id, Name: role.Name}, nil
}

func scanRole(row scanner) (models.Role, error) {
	var role models.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		return models.Role{}, translate(err)
	}
	return role, nil
}
