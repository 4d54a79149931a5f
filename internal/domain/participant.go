package domain

import (
	"strings"
	"time"
)

// Participant is a registered user. It holds at most one active tour
// booking; booking again overwrites the reference.
type Participant struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"`
	ConnectionActive bool      `json:"connection_active"`
	TourID           *int64    `json:"tour_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ValidateRegistration validates the fields required to register
func (p *Participant) ValidateRegistration() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(p.Username) == "" {
		return ErrInvalidUsername
	}
	return nil
}

// ParticipantInfo is a participant listing row enriched with the booked
// tour's type and the avatar's current zone name, both derived by join.
type ParticipantInfo struct {
	Participant
	TourType    *string `json:"tour_type,omitempty"`
	CurrentZone *string `json:"current_zone,omitempty"`
}

// AuthenticatedUser is the result of a successful login: identity plus
// the avatar's role.
type AuthenticatedUser struct {
	ID       int64
	Name     string
	Username string
	RoleID   int64
	RoleName string
}

// Credentials couples a participant's stored password hash with the
// identity returned once the secret has been verified.
type Credentials struct {
	User         AuthenticatedUser
	PasswordHash string
}
