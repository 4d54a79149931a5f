package handler

import (
	"context"

	"venue-service/internal/domain"
)

// MockZoneService is an in-memory implementation of ZoneService
type MockZoneService struct {
	zones  map[int64]*domain.Zone
	nextID int64
}

func NewMockZoneService() *MockZoneService {
	return &MockZoneService{zones: make(map[int64]*domain.Zone), nextID: 1}
}

func (m *MockZoneService) AddZone(z *domain.Zone) {
	m.zones[z.ID] = z
	if z.ID >= m.nextID {
		m.nextID = z.ID + 1
	}
}

func (m *MockZoneService) List(ctx context.Context) ([]*domain.Zone, error) {
	zones := make([]*domain.Zone, 0, len(m.zones))
	for _, z := range m.zones {
		zones = append(zones, z)
	}
	return zones, nil
}

func (m *MockZoneService) Get(ctx context.Context, id int64) (*domain.Zone, error) {
	z, ok := m.zones[id]
	if !ok {
		return nil, domain.ErrZoneNotFound
	}
	return z, nil
}

func (m *MockZoneService) Create(ctx context.Context, zone *domain.Zone) (int64, error) {
	if err := zone.Validate(); err != nil {
		return 0, err
	}
	zone.ID = m.nextID
	m.nextID++
	m.zones[zone.ID] = zone
	return zone.ID, nil
}

func (m *MockZoneService) Update(ctx context.Context, zone *domain.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	if _, ok := m.zones[zone.ID]; !ok {
		return domain.ErrZoneNotFound
	}
	m.zones[zone.ID] = zone
	return nil
}

func (m *MockZoneService) Delete(ctx context.Context, id int64) error {
	if _, ok := m.zones[id]; !ok {
		return domain.ErrZoneNotFound
	}
	delete(m.zones, id)
	return nil
}

// MockTourService is an in-memory implementation of TourService
type MockTourService struct {
	tours  map[int64]*domain.Tour
	nextID int64
}

func NewMockTourService() *MockTourService {
	return &MockTourService{tours: make(map[int64]*domain.Tour), nextID: 1}
}

func (m *MockTourService) List(ctx context.Context) ([]*domain.Tour, error) {
	tours := make([]*domain.Tour, 0, len(m.tours))
	for _, t := range m.tours {
		tours = append(tours, t)
	}
	return tours, nil
}

func (m *MockTourService) Create(ctx context.Context, tour *domain.Tour) (int64, error) {
	if err := tour.Validate(); err != nil {
		return 0, err
	}
	tour.ID = m.nextID
	m.nextID++
	m.tours[tour.ID] = tour
	return tour.ID, nil
}

// MockParticipantService is an in-memory implementation of
// ParticipantService.
type MockParticipantService struct {
	participants map[int64]*domain.Participant
	nextID       int64
}

func NewMockParticipantService() *MockParticipantService {
	return &MockParticipantService{participants: make(map[int64]*domain.Participant), nextID: 1}
}

func (m *MockParticipantService) AddParticipant(p *domain.Participant) {
	m.participants[p.ID] = p
	if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
}

func (m *MockParticipantService) List(ctx context.Context) ([]*domain.ParticipantInfo, error) {
	out := make([]*domain.ParticipantInfo, 0, len(m.participants))
	for _, p := range m.participants {
		out = append(out, &domain.ParticipantInfo{Participant: *p})
	}
	return out, nil
}

func (m *MockParticipantService) Register(ctx context.Context, p *domain.Participant, password string, roleID *int64) (int64, error) {
	if err := p.ValidateRegistration(); err != nil {
		return 0, err
	}
	if password == "" {
		return 0, domain.ErrInvalidPassword
	}
	for _, existing := range m.participants {
		if existing.Username == p.Username {
			return 0, domain.ErrUsernameTaken
		}
	}
	p.ID = m.nextID
	m.nextID++
	m.participants[p.ID] = p
	return p.ID, nil
}

func (m *MockParticipantService) Update(ctx context.Context, p *domain.Participant) error {
	if _, ok := m.participants[p.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	m.participants[p.ID] = p
	return nil
}

func (m *MockParticipantService) Delete(ctx context.Context, id int64) error {
	if _, ok := m.participants[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	delete(m.participants, id)
	return nil
}

// MockRoleService returns a fixed role catalog
type MockRoleService struct{}

func (m *MockRoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return []*domain.Role{
		{ID: domain.RoleExplorer, Name: "Explorer"},
		{ID: domain.RoleAdmin, Name: "Admin"},
		{ID: domain.RoleGuide, Name: "Guide"},
	}, nil
}

// MockAuthService authenticates against a fixed credential table
type MockAuthService struct {
	users map[string]string
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{users: make(map[string]string)}
}

func (m *MockAuthService) AddUser(username, password string) {
	m.users[username] = password
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, string, error) {
	stored, ok := m.users[username]
	if !ok || stored != password {
		return nil, "", domain.ErrInvalidCredentials
	}
	user := &domain.AuthenticatedUser{
		ID:       1,
		Name:     "User " + username,
		Username: username,
		RoleID:   domain.RoleExplorer,
		RoleName: "Explorer",
	}
	return user, "token-123", nil
}

// MockBookingService records bookings and movements
type MockBookingService struct {
	bookErr error
	moveErr error
	booked  map[int64]int64
	moved   map[int64]int64
}

func NewMockBookingService() *MockBookingService {
	return &MockBookingService{booked: make(map[int64]int64), moved: make(map[int64]int64)}
}

func (m *MockBookingService) BookTour(ctx context.Context, participantID, tourID int64) error {
	if m.bookErr != nil {
		return m.bookErr
	}
	m.booked[participantID] = tourID
	return nil
}

func (m *MockBookingService) Move(ctx context.Context, participantID, zoneID int64) error {
	if m.moveErr != nil {
		return m.moveErr
	}
	m.moved[participantID] = zoneID
	return nil
}
