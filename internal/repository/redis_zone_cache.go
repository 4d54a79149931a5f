package repository

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"venue-service/internal/domain"
	"venue-service/pkg/logger"
	"venue-service/pkg/redis"
)

const zoneListKey = "zones:list"

// redisZoneCache caches the zone list in Redis. Cache failures are
// logged and swallowed so Redis being down never breaks reads.
type redisZoneCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisZoneCache creates a zone cache backed by Redis
func NewRedisZoneCache(client *redis.Client, ttl time.Duration, log *logger.Logger) ZoneCache {
	return &redisZoneCache{client: client, ttl: ttl, log: log}
}

func (c *redisZoneCache) GetList(ctx context.Context) ([]*domain.Zone, bool) {
	data, err := c.client.Client().Get(ctx, zoneListKey).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("zone cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var zones []*domain.Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		c.log.Warn("zone cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return zones, true
}

func (c *redisZoneCache) SetList(ctx context.Context, zones []*domain.Zone) {
	data, err := json.Marshal(zones)
	if err != nil {
		c.log.Warn("zone cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Client().Set(ctx, zoneListKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("zone cache write failed", zap.Error(err))
	}
}

func (c *redisZoneCache) Invalidate(ctx context.Context) {
	if err := c.client.Client().Del(ctx, zoneListKey).Err(); err != nil {
		c.log.Warn("zone cache invalidation failed", zap.Error(err))
	}
}
