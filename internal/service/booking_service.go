package service

import (
	"context"

	"venue-service/internal/domain"
	"venue-service/internal/repository"
)

// BookingService handles tour bookings and avatar movement
type BookingService interface {
	// BookTour assigns a tour to a participant, replacing any previous
	// booking.
	BookTour(ctx context.Context, participantID, tourID int64) error
	// Move places the participant's avatar in a zone
	Move(ctx context.Context, participantID, zoneID int64) error
}

type bookingService struct {
	participantRepo repository.ParticipantRepository
	tourRepo        repository.TourRepository
	zoneRepo        repository.ZoneRepository
}

// NewBookingService creates a booking service
func NewBookingService(
	participantRepo repository.ParticipantRepository,
	tourRepo repository.TourRepository,
	zoneRepo repository.ZoneRepository,
) BookingService {
	return &bookingService{
		participantRepo: participantRepo,
		tourRepo:        tourRepo,
		zoneRepo:        zoneRepo,
	}
}

func (s *bookingService) BookTour(ctx context.Context, participantID, tourID int64) error {
	exists, err := s.tourRepo.Exists(ctx, tourID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTourNotFound
	}
	return s.participantRepo.SetTour(ctx, participantID, tourID)
}

func (s *bookingService) Move(ctx context.Context, participantID, zoneID int64) error {
	if _, err := s.zoneRepo.GetByID(ctx, zoneID); err != nil {
		return err
	}
	return s.participantRepo.SetZone(ctx, participantID, zoneID)
}
