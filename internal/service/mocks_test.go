package service

import (
	"context"

	"venue-service/internal/domain"
)

// MockZoneRepository is an in-memory implementation of ZoneRepository
type MockZoneRepository struct {
	zones     map[int64]*domain.Zone
	nextID    int64
	listErr   error
	createErr error
}

func NewMockZoneRepository() *MockZoneRepository {
	return &MockZoneRepository{zones: make(map[int64]*domain.Zone), nextID: 1}
}

func (m *MockZoneRepository) AddZone(z *domain.Zone) {
	m.zones[z.ID] = z
	if z.ID >= m.nextID {
		m.nextID = z.ID + 1
	}
}

func (m *MockZoneRepository) List(ctx context.Context) ([]*domain.Zone, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	zones := make([]*domain.Zone, 0, len(m.zones))
	for _, z := range m.zones {
		zones = append(zones, z)
	}
	return zones, nil
}

func (m *MockZoneRepository) GetByID(ctx context.Context, id int64) (*domain.Zone, error) {
	z, ok := m.zones[id]
	if !ok {
		return nil, domain.ErrZoneNotFound
	}
	return z, nil
}

func (m *MockZoneRepository) Create(ctx context.Context, zone *domain.Zone) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	zone.ID = m.nextID
	m.nextID++
	m.zones[zone.ID] = zone
	return zone.ID, nil
}

func (m *MockZoneRepository) Update(ctx context.Context, zone *domain.Zone) error {
	if _, ok := m.zones[zone.ID]; !ok {
		return domain.ErrZoneNotFound
	}
	m.zones[zone.ID] = zone
	return nil
}

func (m *MockZoneRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.zones[id]; !ok {
		return domain.ErrZoneNotFound
	}
	delete(m.zones, id)
	return nil
}

// MockZoneCache records cache traffic for assertions
type MockZoneCache struct {
	list        []*domain.Zone
	hits        int
	misses      int
	sets        int
	invalidated int
}

func (m *MockZoneCache) GetList(ctx context.Context) ([]*domain.Zone, bool) {
	if m.list == nil {
		m.misses++
		return nil, false
	}
	m.hits++
	return m.list, true
}

func (m *MockZoneCache) SetList(ctx context.Context, zones []*domain.Zone) {
	m.sets++
	m.list = zones
}

func (m *MockZoneCache) Invalidate(ctx context.Context) {
	m.invalidated++
	m.list = nil
}

// MockRoleRepository is an in-memory implementation of RoleRepository
type MockRoleRepository struct {
	roles map[int64]*domain.Role
}

func NewMockRoleRepository() *MockRoleRepository {
	return &MockRoleRepository{roles: map[int64]*domain.Role{
		domain.RoleExplorer: {ID: domain.RoleExplorer, Name: "Explorer"},
		domain.RoleAdmin:    {ID: domain.RoleAdmin, Name: "Admin"},
		domain.RoleGuide:    {ID: domain.RoleGuide, Name: "Guide"},
	}}
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*domain.Role, error) {
	roles := make([]*domain.Role, 0, len(m.roles))
	for _, r := range m.roles {
		roles = append(roles, r)
	}
	return roles, nil
}

func (m *MockRoleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.roles[id]
	return ok, nil
}

// MockTourRepository is an in-memory implementation of TourRepository
type MockTourRepository struct {
	tours     map[int64]*domain.Tour
	zoneLinks map[int64][]int64
	nextID    int64
	createErr error
}

func NewMockTourRepository() *MockTourRepository {
	return &MockTourRepository{
		tours:     make(map[int64]*domain.Tour),
		zoneLinks: make(map[int64][]int64),
		nextID:    1,
	}
}

func (m *MockTourRepository) AddTour(t *domain.Tour) {
	m.tours[t.ID] = t
	if t.ID >= m.nextID {
		m.nextID = t.ID + 1
	}
}

func (m *MockTourRepository) List(ctx context.Context) ([]*domain.Tour, error) {
	tours := make([]*domain.Tour, 0, len(m.tours))
	for _, t := range m.tours {
		tours = append(tours, t)
	}
	return tours, nil
}

func (m *MockTourRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.tours[id]
	return ok, nil
}

func (m *MockTourRepository) Create(ctx context.Context, tour *domain.Tour) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	tour.ID = m.nextID
	m.nextID++
	m.tours[tour.ID] = tour
	m.zoneLinks[tour.ID] = append([]int64(nil), tour.ZoneIDs...)
	return tour.ID, nil
}

// MockParticipantRepository is an in-memory implementation of
// ParticipantRepository.
type MockParticipantRepository struct {
	participants map[int64]*domain.Participant
	avatars      map[int64]*domain.Avatar
	nextID       int64
	registerErr  error
}

func NewMockParticipantRepository() *MockParticipantRepository {
	return &MockParticipantRepository{
		participants: make(map[int64]*domain.Participant),
		avatars:      make(map[int64]*domain.Avatar),
		nextID:       1,
	}
}

func (m *MockParticipantRepository) AddParticipant(p *domain.Participant, a *domain.Avatar) {
	m.participants[p.ID] = p
	if a != nil {
		m.avatars[p.ID] = a
	}
	if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
}

func (m *MockParticipantRepository) List(ctx context.Context) ([]*domain.ParticipantInfo, error) {
	out := make([]*domain.ParticipantInfo, 0, len(m.participants))
	for _, p := range m.participants {
		out = append(out, &domain.ParticipantInfo{Participant: *p})
	}
	return out, nil
}

func (m *MockParticipantRepository) Register(ctx context.Context, p *domain.Participant, avatar *domain.Avatar) (int64, error) {
	if m.registerErr != nil {
		return 0, m.registerErr
	}
	for _, existing := range m.participants {
		if existing.Username == p.Username {
			return 0, domain.ErrUsernameTaken
		}
	}
	p.ID = m.nextID
	m.nextID++
	m.participants[p.ID] = p
	avatar.ParticipantID = p.ID
	m.avatars[p.ID] = avatar
	return p.ID, nil
}

func (m *MockParticipantRepository) Update(ctx context.Context, p *domain.Participant) error {
	existing, ok := m.participants[p.ID]
	if !ok {
		return domain.ErrParticipantNotFound
	}
	existing.Name = p.Name
	existing.Email = p.Email
	existing.ConnectionActive = p.ConnectionActive
	return nil
}

func (m *MockParticipantRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.participants[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	delete(m.participants, id)
	delete(m.avatars, id)
	return nil
}

func (m *MockParticipantRepository) GetCredentials(ctx context.Context, username string) (*domain.Credentials, error) {
	for id, p := range m.participants {
		if p.Username != username {
			continue
		}
		creds := &domain.Credentials{
			User: domain.AuthenticatedUser{
				ID:       p.ID,
				Name:     p.Name,
				Username: p.Username,
			},
			PasswordHash: p.PasswordHash,
		}
		if a, ok := m.avatars[id]; ok {
			creds.User.RoleID = a.RoleID
		}
		return creds, nil
	}
	return nil, domain.ErrParticipantNotFound
}

func (m *MockParticipantRepository) SetTour(ctx context.Context, participantID, tourID int64) error {
	p, ok := m.participants[participantID]
	if !ok {
		return domain.ErrParticipantNotFound
	}
	p.TourID = &tourID
	return nil
}

func (m *MockParticipantRepository) SetZone(ctx context.Context, participantID, zoneID int64) error {
	a, ok := m.avatars[participantID]
	if !ok {
		return domain.ErrAvatarNotFound
	}
	a.ZoneID = &zoneID
	return nil
}
