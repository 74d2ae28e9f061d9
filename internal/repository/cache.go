package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/massafina/massafina-api/internal/config"
	"github.com/massafina/massafina-api/internal/models"
)

const (
	menuKeyPrefix   = "menu:"
	defaultCacheTTL = 5 * time.Minute
)

// RedisMenuCache caches whole catalog listings. The menu is read far more
// often than it changes, so entries live until a write to that catalog
// invalidates them or the TTL expires.
type RedisMenuCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisMenuCache(cfg config.RedisConfig, logger *slog.Logger) *RedisMenuCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &RedisMenuCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "menu-cache"),
	}
}

// GetList returns the cached listing for a catalog, or nil on a miss.
func (c *RedisMenuCache) GetList(ctx context.Context, catalog string) ([]models.Product, error) {
	key := menuKeyPrefix + catalog

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.logger.Debug("cache miss", "catalog", catalog)
		return nil, nil
	}
	if err != nil {
		c.logger.Error("cache get error", "catalog", catalog, "error", err)
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	c.logger.Debug("cache hit", "catalog", catalog)
	return products, nil
}

func (c *RedisMenuCache) SetList(ctx context.Context, catalog string, products []models.Product) error {
	key := menuKeyPrefix + catalog

	data, err := json.Marshal(products)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Error("cache set error", "catalog", catalog, "error", err)
		return err
	}
	return nil
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, catalog string) error {
	key := menuKeyPrefix + catalog

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("cache invalidate error", "catalog", catalog, "error", err)
		return err
	}

	c.logger.Debug("catalog invalidated", "catalog", catalog)
	return nil
}

func (c *RedisMenuCache) Close() error {
	return c.client.Close()
}
