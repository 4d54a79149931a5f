package di

import (
	"venue-service/internal/handler"
	"venue-service/internal/repository"
	"venue-service/internal/service"
	"venue-service/pkg/config"
	"venue-service/pkg/database"
	"venue-service/pkg/logger"
	"venue-service/pkg/redis"
)

// Container holds all dependencies for the venue service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	ZoneRepo        repository.ZoneRepository
	RoleRepo        repository.RoleRepository
	TourRepo        repository.TourRepository
	ParticipantRepo repository.ParticipantRepository

	// Services
	ZoneService        service.ZoneService
	TourService        service.TourService
	ParticipantService service.ParticipantService
	RoleService        service.RoleService
	AuthService        service.AuthService
	BookingService     service.BookingService

	// Handlers
	HealthHandler      *handler.HealthHandler
	ZoneHandler        *handler.ZoneHandler
	TourHandler        *handler.TourHandler
	ParticipantHandler *handler.ParticipantHandler
	AuthHandler        *handler.AuthHandler
	BookingHandler     *handler.BookingHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client
	Logger *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	c.ZoneRepo = repository.NewPostgresZoneRepository(c.DB.Pool())
	c.RoleRepo = repository.NewPostgresRoleRepository(c.DB.Pool())
	c.TourRepo = repository.NewPostgresTourRepository(c.DB.Pool())
	c.ParticipantRepo = repository.NewPostgresParticipantRepository(c.DB.Pool())

	// The zone list cache is only wired when Redis is available
	var zoneCache repository.ZoneCache
	if c.Redis != nil {
		zoneCache = repository.NewRedisZoneCache(c.Redis, cfg.Config.Redis.CacheTTL, cfg.Logger)
	}

	// Initialize services
	c.ZoneService = service.NewZoneService(c.ZoneRepo, zoneCache)
	c.TourService = service.NewTourService(c.TourRepo, c.ZoneRepo)
	c.ParticipantService = service.NewParticipantService(c.ParticipantRepo, c.RoleRepo)
	c.RoleService = service.NewRoleService(c.RoleRepo)
	c.AuthService = service.NewAuthService(c.ParticipantRepo, service.TokenConfig{
		Secret: cfg.Config.JWT.Secret,
		TTL:    cfg.Config.JWT.AccessTokenTTL,
		Issuer: cfg.Config.JWT.Issuer,
	})
	c.BookingService = service.NewBookingService(c.ParticipantRepo, c.TourRepo, c.ZoneRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis, cfg.Config.App.Version)
	c.ZoneHandler = handler.NewZoneHandler(c.ZoneService)
	c.TourHandler = handler.NewTourHandler(c.TourService)
	c.ParticipantHandler = handler.NewParticipantHandler(c.ParticipantService, c.RoleService)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)

	return c
}
