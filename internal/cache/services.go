package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

const serviceListKey = "services:all"

func serviceKey(id uint) string {
	return fmt.Sprintf("services:item:%d", id)
}

// ServiceCache is a read-through cache for the service catalog. Every
// method degrades to a miss on redis errors; the caller falls back to the
// database.
type ServiceCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewServiceCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *ServiceCache {
	return &ServiceCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *ServiceCache) GetService(ctx context.Context, id uint) (*models.Service, bool) {
	data, err := c.client.Get(ctx, serviceKey(id)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("service cache read failed", zap.Uint("id", id), zap.Error(err))
		}
		return nil, false
	}

	var svc models.Service
	if err := json.Unmarshal([]byte(data), &svc); err != nil {
		return nil, false
	}
	return &svc, true
}

func (c *ServiceCache) SetService(ctx context.Context, svc *models.Service) {
	data, err := json.Marshal(svc)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, serviceKey(svc.ID), data, c.ttl).Err(); err != nil {
		c.log.Debug("service cache write failed", zap.Uint("id", svc.ID), zap.Error(err))
	}
}

func (c *ServiceCache) GetList(ctx context.Context) ([]models.Service, bool) {
	data, err := c.client.Get(ctx, serviceListKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("service list cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal([]byte(data), &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *ServiceCache) SetList(ctx context.Context, services []models.Service) {
	data, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, serviceListKey, data, c.ttl).Err(); err != nil {
		c.log.Debug("service list cache write failed", zap.Error(err))
	}
}

// Invalidate drops the item and list entries after any catalog write.
func (c *ServiceCache) Invalidate(ctx context.Context, id uint) {
	if err := c.client.Del(ctx, serviceKey(id), serviceListKey).Err(); err != nil {
		c.log.Debug("service cache invalidation failed", zap.Uint("id", id), zap.Error(err))
	}
}
