package domain

// Avatar is the in-venue representation of a participant, created
// together with it. The avatar's zone reference is the single source of
// truth for the participant's current location.
type Avatar struct {
	ID            int64  `json:"id"`
	ParticipantID int64  `json:"participant_id"`
	Type          string `json:"type"`
	State         string `json:"state"`
	ZoneID        *int64 `json:"zone_id,omitempty"`
	RoleID        int64  `json:"role_id"`
}

// Defaults applied when a participant registers.
const (
	DefaultAvatarType = "Default"
	AvatarStateIdle   = "Idle"
)
