package repository

import (
	"context"

	"venue-service/internal/domain"
)

// ZoneRepository defines data access for zones
type ZoneRepository interface {
	// List retrieves all zones ordered by id
	List(ctx context.Context) ([]*domain.Zone, error)
	// GetByID retrieves a zone by id
	GetByID(ctx context.Context, id int64) (*domain.Zone, error)
	// Create inserts a zone and returns its generated id
	Create(ctx context.Context, zone *domain.Zone) (int64, error)
	// Update updates a zone's mutable fields; ErrZoneNotFound when absent
	Update(ctx context.Context, zone *domain.Zone) error
	// Delete removes a zone by id; ErrZoneNotFound when absent
	Delete(ctx context.Context, id int64) error
}

// RoleRepository defines data access for roles
type RoleRepository interface {
	// List retrieves all roles ordered by id
	List(ctx context.Context) ([]*domain.Role, error)
	// Exists reports whether a role with the given id exists
	Exists(ctx context.Context, id int64) (bool, error)
}

// TourRepository defines data access for tours
type TourRepository interface {
	// List retrieves all tours as flat rows (no zone expansion)
	List(ctx context.Context) ([]*domain.Tour, error)
	// Exists reports whether a tour with the given id exists
	Exists(ctx context.Context, id int64) (bool, error)
	// Create inserts the tour and its zone associations in a single
	// transaction and returns the generated id
	Create(ctx context.Context, tour *domain.Tour) (int64, error)
}

// ParticipantRepository defines data access for participants and their
// avatars.
type ParticipantRepository interface {
	// List retrieves all participants joined with their booked tour's
	// type and their avatar's current zone name
	List(ctx context.Context) ([]*domain.ParticipantInfo, error)
	// Register inserts the participant and its avatar in a single
	// transaction and returns the participant id; ErrUsernameTaken on a
	// duplicate username
	Register(ctx context.Context, p *domain.Participant, avatar *domain.Avatar) (int64, error)
	// Update updates name, email and the active-connection flag;
	// ErrParticipantNotFound when absent
	Update(ctx context.Context, p *domain.Participant) error
	// Delete removes a participant; the avatar goes with it by cascade.
	// ErrParticipantNotFound when absent
	Delete(ctx context.Context, id int64) error
	// GetCredentials retrieves the stored credentials and role for a
	// username; ErrParticipantNotFound when absent
	GetCredentials(ctx context.Context, username string) (*domain.Credentials, error)
	// SetTour overwrites the participant's booked-tour reference;
	// ErrParticipantNotFound when absent
	SetTour(ctx context.Context, participantID, tourID int64) error
	// SetZone moves the participant's avatar to the given zone;
	// ErrAvatarNotFound when the participant has no avatar
	SetZone(ctx context.Context, participantID, zoneID int64) error
}

// ZoneCache is an optional read-through cache for the zone list
type ZoneCache interface {
	// GetList returns the cached zone list, or ok=false on miss
	GetList(ctx context.Context) (zones []*domain.Zone, ok bool)
	// SetList stores the zone list
	SetList(ctx context.Context, zones []*domain.Zone)
	// Invalidate drops the cached list
	Invalidate(ctx context.Context)
}
