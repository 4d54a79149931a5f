package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"venue-service/internal/domain"
	"venue-service/pkg/telemetry"
)

const pgUniqueViolation = "23505"

type postgresParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresParticipantRepository creates a participant repository
// backed by PostgreSQL.
func NewPostgresParticipantRepository(pool *pgxpool.Pool) ParticipantRepository {
	return &postgresParticipantRepository{pool: pool}
}

// List joins through tours and avatars so the tour type and current
// zone name come from the rows that own them.
func (r *postgresParticipantRepository) List(ctx context.Context) ([]*domain.ParticipantInfo, error) {
	ctx, span := telemetry.StartSpan(ctx, "ParticipantRepository.List")
	defer span.End()

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.email, p.username, p.connection_active,
		       p.tour_id, p.created_at, p.updated_at,
		       t.tour_type, z.name
		FROM participants p
		LEFT JOIN tours t ON t.id = p.tour_id
		LEFT JOIN avatars a ON a.participant_id = p.id
		LEFT JOIN zones z ON z.id = a.zone_id
		ORDER BY p.id`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := make([]*domain.ParticipantInfo, 0)
	for rows.Next() {
		var info domain.ParticipantInfo
		err := rows.Scan(
			&info.ID, &info.Name, &info.Email, &info.Username, &info.ConnectionActive,
			&info.TourID, &info.CreatedAt, &info.UpdatedAt,
			&info.TourType, &info.CurrentZone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, &info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}

	span.SetAttributes(attribute.Int("participants.count", len(participants)))
	return participants, nil
}

// Register inserts the participant and its avatar atomically so every
// participant has exactly one avatar from the moment it exists.
func (r *postgresParticipantRepository) Register(ctx context.Context, p *domain.Participant, avatar *domain.Avatar) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "ParticipantRepository.Register")
	defer span.End()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO participants (name, email, username, password_hash, connection_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Name, p.Email, p.Username, p.PasswordHash, p.ConnectionActive).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrUsernameTaken
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return 0, fmt.Errorf("failed to create participant: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO avatars (participant_id, avatar_type, state, role_id)
		VALUES ($1, $2, $3, $4)`,
		id, avatar.Type, avatar.State, avatar.RoleID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "avatar insert failed")
		return 0, fmt.Errorf("failed to create avatar for participant %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit registration: %w", err)
	}

	span.SetAttributes(attribute.Int64("participant.id", id))
	return id, nil
}

func (r *postgresParticipantRepository) Update(ctx context.Context, p *domain.Participant) error {
	ctx, span := telemetry.StartSpan(ctx, "ParticipantRepository.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("participant.id", p.ID))

	tag, err := r.pool.Exec(ctx, `
		UPDATE participants
		SET name = $1, email = $2, connection_active = $3, updated_at = NOW()
		WHERE id = $4`,
		p.Name, p.Email, p.ConnectionActive, p.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return fmt.Errorf("failed to update participant %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *postgresParticipantRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "ParticipantRepository.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("participant.id", id))

	tag, err := r.pool.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *postgresParticipantRepository) GetCredentials(ctx context.Context, username string) (*domain.Credentials, error) {
	ctx, span := telemetry.StartSpan(ctx, "ParticipantRepository.GetCredentials")
	defer span.End()

	var creds domain.Credentials
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.name, p.username, p.password_hash, a.role_id, r.name
		FROM participants p
		JOIN avatars a ON a.participant_id = p.id
		JOIN roles r ON r.id = a.role_id
		WHERE p.username = $1`, username).Scan(
		&creds.User.ID, &creds.User.Name, &creds.User.Username,
		&creds.PasswordHash, &creds.User.RoleID, &creds.User.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	return &creds, nil
}

func (r *postgresParticipantRepository) SetTour(ctx context.Context, participantID, tourID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "ParticipantRepository.SetTour")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("participant.id", participantID),
		attribute.Int64("tour.id", tourID),
	)

	tag, err := r.pool.Exec(ctx, `
		UPDATE participants SET tour_id = $1, updated_at = NOW() WHERE id = $2`,
		tourID, participantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return fmt.Errorf("failed to book tour %d for participant %d: %w", tourID, participantID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *postgresParticipantRepository) SetZone(ctx context.Context, participantID, zoneID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "ParticipantRepository.SetZone")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("participant.id", participantID),
		attribute.Int64("zone.id", zoneID),
	)

	tag, err := r.pool.Exec(ctx, `
		UPDATE avatars SET zone_id = $1 WHERE participant_id = $2`,
		zoneID, participantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return fmt.Errorf("failed to move participant %d to zone %d: %w", participantID, zoneID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAvatarNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
