package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"

	"venue-service/internal/domain"
	"venue-service/pkg/telemetry"
)

type postgresRoleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRoleRepository creates a role repository backed by PostgreSQL
func NewPostgresRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &postgresRoleRepository{pool: pool}
}

func (r *postgresRoleRepository) List(ctx context.Context) ([]*domain.Role, error) {
	ctx, span := telemetry.StartSpan(ctx, "RoleRepository.List")
	defer span.End()

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]*domain.Role, 0)
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roles: %w", err)
	}
	return roles, nil
}

func (r *postgresRoleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check role %d: %w", id, err)
	}
	return exists, nil
}
