package service

import (
	"context"

	"venue-service/internal/domain"
	"venue-service/internal/repository"
)

// TourService handles tour business logic
type TourService interface {
	List(ctx context.Context) ([]*domain.Tour, error)
	Create(ctx context.Context, tour *domain.Tour) (int64, error)
}

type tourService struct {
	repo     repository.TourRepository
	zoneRepo repository.ZoneRepository
}

// NewTourService creates a tour service
func NewTourService(repo repository.TourRepository, zoneRepo repository.ZoneRepository) TourService {
	return &tourService{repo: repo, zoneRepo: zoneRepo}
}

func (s *tourService) List(ctx context.Context) ([]*domain.Tour, error) {
	return s.repo.List(ctx)
}

// Create validates the tour and its zone references before writing so
// the transaction never trips a foreign key mid-flight.
func (s *tourService) Create(ctx context.Context, tour *domain.Tour) (int64, error) {
	if err := tour.Validate(); err != nil {
		return 0, err
	}

	for _, zoneID := range tour.ZoneIDs {
		if _, err := s.zoneRepo.GetByID(ctx, zoneID); err != nil {
			return 0, err
		}
	}

	return s.repo.Create(ctx, tour)
}
