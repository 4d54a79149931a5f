package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"venue-service/internal/domain"
	"venue-service/pkg/telemetry"
)

type postgresTourRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTourRepository creates a tour repository backed by PostgreSQL
func NewPostgresTourRepository(pool *pgxpool.Pool) TourRepository {
	return &postgresTourRepository{pool: pool}
}

func (r *postgresTourRepository) List(ctx context.Context) ([]*domain.Tour, error) {
	ctx, span := telemetry.StartSpan(ctx, "TourRepository.List")
	defer span.End()

	rows, err := r.pool.Query(ctx, `
		SELECT id, tour_type, start_time, duration_minutes, guide_id
		FROM tours
		ORDER BY id`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	defer rows.Close()

	tours := make([]*domain.Tour, 0)
	for rows.Next() {
		var t domain.Tour
		if err := rows.Scan(&t.ID, &t.Type, &t.StartTime, &t.DurationMinutes, &t.GuideID); err != nil {
			return nil, fmt.Errorf("failed to scan tour: %w", err)
		}
		tours = append(tours, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tours: %w", err)
	}

	span.SetAttributes(attribute.Int("tours.count", len(tours)))
	return tours, nil
}

func (r *postgresTourRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tours WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check tour %d: %w", id, err)
	}
	return exists, nil
}

// Create inserts the tour row and its zone links atomically so a failed
// link never leaves a tour without its zones.
func (r *postgresTourRepository) Create(ctx context.Context, tour *domain.Tour) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "TourRepository.Create")
	defer span.End()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO tours (tour_type, start_time, duration_minutes, guide_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		tour.Type, tour.StartTime, tour.DurationMinutes, tour.GuideID).Scan(&id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return 0, fmt.Errorf("failed to create tour: %w", err)
	}

	for _, zoneID := range tour.ZoneIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO tour_zones (tour_id, zone_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, id, zoneID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "zone link failed")
			return 0, fmt.Errorf("failed to link tour %d to zone %d: %w", id, zoneID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit tour: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("tour.id", id),
		attribute.Int("tour.zones", len(tour.ZoneIDs)),
	)
	return id, nil
}
