package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"venue-service/internal/domain"
	"venue-service/pkg/telemetry"
)

type postgresZoneRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresZoneRepository creates a zone repository backed by PostgreSQL
func NewPostgresZoneRepository(pool *pgxpool.Pool) ZoneRepository {
	return &postgresZoneRepository{pool: pool}
}

func (r *postgresZoneRepository) List(ctx context.Context) ([]*domain.Zone, error) {
	ctx, span := telemetry.StartSpan(ctx, "ZoneRepository.List")
	defer span.End()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, is_private
		FROM zones
		ORDER BY id`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*domain.Zone, 0)
	for rows.Next() {
		var z domain.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Description, &z.IsPrivate); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, &z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}

	span.SetAttributes(attribute.Int("zones.count", len(zones)))
	return zones, nil
}

func (r *postgresZoneRepository) GetByID(ctx context.Context, id int64) (*domain.Zone, error) {
	ctx, span := telemetry.StartSpan(ctx, "ZoneRepository.GetByID")
	defer span.End()
	span.SetAttributes(attribute.Int64("zone.id", id))

	var z domain.Zone
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, is_private
		FROM zones
		WHERE id = $1`, id).Scan(&z.ID, &z.Name, &z.Description, &z.IsPrivate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrZoneNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to get zone %d: %w", id, err)
	}
	return &z, nil
}

func (r *postgresZoneRepository) Create(ctx context.Context, zone *domain.Zone) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "ZoneRepository.Create")
	defer span.End()

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO zones (name, description, is_private)
		VALUES ($1, $2, $3)
		RETURNING id`,
		zone.Name, zone.Description, zone.IsPrivate).Scan(&id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return 0, fmt.Errorf("failed to create zone: %w", err)
	}

	span.SetAttributes(attribute.Int64("zone.id", id))
	return id, nil
}

func (r *postgresZoneRepository) Update(ctx context.Context, zone *domain.Zone) error {
	ctx, span := telemetry.StartSpan(ctx, "ZoneRepository.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("zone.id", zone.ID))

	tag, err := r.pool.Exec(ctx, `
		UPDATE zones
		SET name = $1, description = $2, is_private = $3
		WHERE id = $4`,
		zone.Name, zone.Description, zone.IsPrivate, zone.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return fmt.Errorf("failed to update zone %d: %w", zone.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

func (r *postgresZoneRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "ZoneRepository.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("zone.id", id))

	tag, err := r.pool.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete zone %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}
