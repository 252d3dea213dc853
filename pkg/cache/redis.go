package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/kev-n-dev/sky-way/internal/models"
	"github.com/redis/go-redis/v9"
)

const airportsKey = "cache:airports"

// RedisCache holds the airport directory, which is immutable after
// seeding and read on every landing-page request.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// GetAirports returns the cached airport list, or nil on a cache miss.
func (c *RedisCache) GetAirports(ctx context.Context) ([]models.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var airports []models.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []models.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey, payload, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
