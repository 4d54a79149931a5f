package service

import (
	"context"

	"venue-service/internal/domain"
	"venue-service/internal/repository"
)

// ZoneService handles zone business logic
type ZoneService interface {
	List(ctx context.Context) ([]*domain.Zone, error)
	Get(ctx context.Context, id int64) (*domain.Zone, error)
	Create(ctx context.Context, zone *domain.Zone) (int64, error)
	Update(ctx context.Context, zone *domain.Zone) error
	Delete(ctx context.Context, id int64) error
}

type zoneService struct {
	repo  repository.ZoneRepository
	cache repository.ZoneCache
}

// NewZoneService creates a zone service. The cache is optional; pass
// nil to serve every read from the database.
func NewZoneService(repo repository.ZoneRepository, cache repository.ZoneCache) ZoneService {
	return &zoneService{repo: repo, cache: cache}
}

func (s *zoneService) List(ctx context.Context) ([]*domain.Zone, error) {
	if s.cache != nil {
		if zones, ok := s.cache.GetList(ctx); ok {
			return zones, nil
		}
	}

	zones, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, zones)
	}
	return zones, nil
}

func (s *zoneService) Get(ctx context.Context, id int64) (*domain.Zone, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *zoneService) Create(ctx context.Context, zone *domain.Zone) (int64, error) {
	if err := zone.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, zone)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx)
	return id, nil
}

func (s *zoneService) Update(ctx context.Context, zone *domain.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, zone); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *zoneService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *zoneService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
