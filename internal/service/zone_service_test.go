package service

import (
	"context"
	"errors"
	"testing"

	"venue-service/internal/domain"
)

func TestZoneService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		zone    *domain.Zone
		wantErr error
	}{
		{
			name: "valid zone",
			zone: &domain.Zone{Name: "Lobby", Description: "Entrance hall"},
		},
		{
			name:    "missing name",
			zone:    &domain.Zone{Description: "no name"},
			wantErr: domain.ErrInvalidZoneName,
		},
		{
			name:    "whitespace name",
			zone:    &domain.Zone{Name: "   "},
			wantErr: domain.ErrInvalidZoneName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockZoneRepository()
			svc := NewZoneService(repo, nil)

			id, err := svc.Create(ctx, tt.zone)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id == 0 {
				t.Error("expected a generated id")
			}
		})
	}
}

func TestZoneService_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMockZoneRepository()
	repo.AddZone(&domain.Zone{ID: 1, Name: "Lobby"})
	svc := NewZoneService(repo, nil)

	err := svc.Update(ctx, &domain.Zone{ID: 1, Name: "Main Lobby", IsPrivate: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, _ := repo.GetByID(ctx, 1)
	if updated.Name != "Main Lobby" || !updated.IsPrivate {
		t.Errorf("update not applied: %+v", updated)
	}

	err = svc.Update(ctx, &domain.Zone{ID: 99, Name: "Ghost"})
	if !errors.Is(err, domain.ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestZoneService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMockZoneRepository()
	repo.AddZone(&domain.Zone{ID: 1, Name: "Lobby"})
	svc := NewZoneService(repo, nil)

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, domain.ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestZoneService_ListUsesCache(t *testing.T) {
	ctx := context.Background()
	repo := NewMockZoneRepository()
	repo.AddZone(&domain.Zone{ID: 1, Name: "Lobby"})
	cache := &MockZoneCache{}
	svc := NewZoneService(repo, cache)

	// First read misses and fills the cache, second read hits it.
	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.misses != 1 || cache.hits != 1 || cache.sets != 1 {
		t.Errorf("unexpected cache traffic: misses=%d hits=%d sets=%d", cache.misses, cache.hits, cache.sets)
	}
}

func TestZoneService_WritesInvalidateCache(t *testing.T) {
	ctx := context.Background()
	repo := NewMockZoneRepository()
	repo.AddZone(&domain.Zone{ID: 1, Name: "Lobby"})
	cache := &MockZoneCache{}
	svc := NewZoneService(repo, cache)

	if _, err := svc.Create(ctx, &domain.Zone{Name: "Garden"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Update(ctx, &domain.Zone{ID: 1, Name: "Lobby 2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.invalidated != 3 {
		t.Errorf("expected 3 invalidations, got %d", cache.invalidated)
	}
}
