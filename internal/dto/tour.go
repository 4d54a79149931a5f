package dto

import (
	"fmt"
	"time"

	"venue-service/internal/domain"
)

// TimeLayout is the wire format for tour start times
const TimeLayout = "2006-01-02 15:04:05"

// CreateTourRequest is the payload for scheduling a tour
type CreateTourRequest struct {
	Tipo        string  `json:"tipo" binding:"required"`
	FechaInicio string  `json:"fechaInicio" binding:"required"`
	Duracion    int     `json:"duracion" binding:"required"`
	IDGuia      *int64  `json:"idGuia"`
	Zones       []int64 `json:"zones"`
}

// ToDomain converts the request to a domain Tour, parsing the start
// time in the venue's wire format (RFC3339 is accepted as well).
func (r *CreateTourRequest) ToDomain() (*domain.Tour, error) {
	start, err := time.Parse(TimeLayout, r.FechaInicio)
	if err != nil {
		start, err = time.Parse(time.RFC3339, r.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("invalid fechaInicio %q: %w", r.FechaInicio, domain.ErrInvalidStartTime)
		}
	}

	return &domain.Tour{
		Type:            r.Tipo,
		StartTime:       start,
		DurationMinutes: r.Duracion,
		GuideID:         r.IDGuia,
		ZoneIDs:         r.Zones,
	}, nil
}

// TourResponse is a tour row in API responses
type TourResponse struct {
	IDRecorrido int64  `json:"idRecorrido"`
	Tipo        string `json:"tipo"`
	FechaInicio string `json:"fechaInicio"`
	Duracion    int    `json:"duracion"`
	IDGuia      *int64 `json:"idGuia"`
}

// TourFromDomain converts a domain Tour to its API representation
func TourFromDomain(t *domain.Tour) *TourResponse {
	return &TourResponse{
		IDRecorrido: t.ID,
		Tipo:        t.Type,
		FechaInicio: t.StartTime.Format(TimeLayout),
		Duracion:    t.DurationMinutes,
		IDGuia:      t.GuideID,
	}
}

// ToursFromDomain converts a slice of domain Tours
func ToursFromDomain(tours []*domain.Tour) []*TourResponse {
	out := make([]*TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, TourFromDomain(t))
	}
	return out
}
