package domain

import (
	"strings"
	"time"
)

// Tour is a scheduled guided session of a given type, associated with
// zero or more zones and an optional guide.
type Tour struct {
	ID              int64     `json:"id"`
	Type            string    `json:"type"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	GuideID         *int64    `json:"guide_id,omitempty"`
	ZoneIDs         []int64   `json:"zone_ids,omitempty"`
}

// Validate validates the tour fields
func (t *Tour) Validate() error {
	if strings.TrimSpace(t.Type) == "" {
		return ErrInvalidTourType
	}
	if t.StartTime.IsZero() {
		return ErrInvalidStartTime
	}
	if t.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
