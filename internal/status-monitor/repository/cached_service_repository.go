package repository

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const servicesListCacheKey = "services:all"

// cachedServiceRepository is a read-through redis cache in front of a ServiceRepository.
// Cache failures are logged and the wrapped repository answers instead.
type cachedServiceRepository struct {
	redis    redis.Cmdable
	repo     ServiceRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

func (*cachedServiceRepository) getServiceCacheKey(id string) string {
	return fmt.Sprintf("service:%s", id)
}

func (c *cachedServiceRepository) UpsertServices(ctx context.Context, services []model.Service) error {
	if err := c.repo.UpsertServices(ctx, services); err != nil {
		return fmt.Errorf("cachedServiceRepository.UpsertServices: %w", err)
	}
	keys := []string{servicesListCacheKey}
	for _, service := range services {
		keys = append(keys, c.getServiceCacheKey(service.ID))
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("failed to invalidate service cache", zap.Error(fmt.Errorf("cachedServiceRepository.UpsertServices: %w", err)))
	}
	return nil
}

func (c *cachedServiceRepository) GetServiceByID(ctx context.Context, id string) (model.Service, error) {
	key := c.getServiceCacheKey(id)
	var service model.Service
	if c.get(ctx, key, &service) {
		return service, nil
	}
	service, err := c.repo.GetServiceByID(ctx, id)
	if err != nil {
		return service, fmt.Errorf("cachedServiceRepository.GetServiceByID: %w", err)
	}
	c.set(ctx, key, service)
	return service, nil
}

func (c *cachedServiceRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if c.get(ctx, servicesListCacheKey, &services) {
		return services, nil
	}
	services, err := c.repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("cachedServiceRepository.ListServices: %w", err)
	}
	c.set(ctx, servicesListCacheKey, services)
	return services, nil
}

func (c *cachedServiceRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("failed to read service cache", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err = json.Unmarshal(b, dst); err != nil {
		c.logger.Warn("failed to decode cached service", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *cachedServiceRepository) set(ctx context.Context, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to encode service for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err = c.redis.Set(ctx, key, b, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("failed to write service cache", zap.String("key", key), zap.Error(err))
	}
}

func NewCachedServiceRepository(redis redis.Cmdable, repo ServiceRepository, cacheTTL time.Duration, logger *zap.Logger) ServiceRepository {
	return &cachedServiceRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}
