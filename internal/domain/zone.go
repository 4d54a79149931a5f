package domain

import "strings"

// Zone is a named area of the virtual venue that tours visit and
// avatars can occupy.
type Zone struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

// Validate validates the zone fields
func (z *Zone) Validate() error {
	if strings.TrimSpace(z.Name) == "" {
		return ErrInvalidZoneName
	}
	return nil
}
