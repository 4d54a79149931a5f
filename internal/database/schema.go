package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap creates all tables and seed data needed by the service.
// Safe to call multiple times - uses IF NOT EXISTS and guarded ALTERs.
// Statements run one at a time because pgx uses the extended protocol.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS zones (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_private BOOLEAN NOT NULL DEFAULT FALSE
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,

	// participants and tours reference each other (booking and guide),
	// so the booking FK is added after tours exists.
	`CREATE TABLE IF NOT EXISTS participants (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		connection_active BOOLEAN NOT NULL DEFAULT TRUE,
		tour_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS tours (
		id BIGSERIAL PRIMARY KEY,
		tour_type TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		duration_minutes INT NOT NULL CHECK (duration_minutes > 0),
		guide_id BIGINT REFERENCES participants(id) ON DELETE SET NULL
	)`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'participants_tour_id_fkey'
		) THEN
			ALTER TABLE participants
				ADD CONSTRAINT participants_tour_id_fkey
				FOREIGN KEY (tour_id) REFERENCES tours(id) ON DELETE SET NULL;
		END IF;
	END $$`,

	`CREATE TABLE IF NOT EXISTS avatars (
		id BIGSERIAL PRIMARY KEY,
		participant_id BIGINT NOT NULL UNIQUE REFERENCES participants(id) ON DELETE CASCADE,
		avatar_type TEXT NOT NULL DEFAULT 'Default',
		state TEXT NOT NULL DEFAULT 'Idle',
		zone_id BIGINT REFERENCES zones(id) ON DELETE SET NULL,
		role_id BIGINT NOT NULL REFERENCES roles(id)
	)`,

	`CREATE TABLE IF NOT EXISTS tour_zones (
		tour_id BIGINT NOT NULL REFERENCES tours(id) ON DELETE CASCADE,
		zone_id BIGINT NOT NULL REFERENCES zones(id) ON DELETE CASCADE,
		PRIMARY KEY (tour_id, zone_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_participants_tour_id ON participants(tour_id)`,
	`CREATE INDEX IF NOT EXISTS idx_avatars_zone_id ON avatars(zone_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tour_zones_zone_id ON tour_zones(zone_id)`,

	`INSERT INTO roles (id, name) VALUES (1, 'Explorer'), (2, 'Admin'), (3, 'Guide')
		ON CONFLICT (id) DO NOTHING`,

	`SELECT setval('roles_id_seq', GREATEST((SELECT MAX(id) FROM roles), 1))`,
}
