package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"food-tracker/catalog-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const generationKey = "catalog:generation"

// RedisCache keeps aggregate listings keyed by filter. Invalidation bumps a
// generation counter so every previously cached listing becomes unreachable
// and ages out through its TTL.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

type cachedView struct {
	domain.RestaurantView
	Picture []byte `json:"picture,omitempty"`
}

func (c *RedisCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.Client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisCache) ListingKey(gen int64, f domain.Filter) string {
	return "catalog:" + strconv.FormatInt(gen, 10) + ":restaurants:" +
		strconv.Quote(f.Area) + ":" + strconv.Quote(f.Cuisine) + ":" + strconv.Itoa(f.Limit)
}

// GetRestaurants also returns the generation the lookup ran under. Callers
// pass it back to SetRestaurants so a listing read before an invalidation is
// stored under the superseded generation.
func (c *RedisCache) GetRestaurants(ctx context.Context, f domain.Filter) ([]domain.RestaurantView, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}
	payload, err := c.Client.Get(ctx, c.ListingKey(gen, f)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, err
	}

	var cached []cachedView
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, gen, false, err
	}
	views := make([]domain.RestaurantView, 0, len(cached))
	for _, cv := range cached {
		cv.RestaurantView.Picture = cv.Picture
		views = append(views, cv.RestaurantView)
	}
	return views, gen, true, nil
}

func (c *RedisCache) SetRestaurants(ctx context.Context, gen int64, f domain.Filter, views []domain.RestaurantView) error {
	cached := make([]cachedView, 0, len(views))
	for _, v := range views {
		cached = append(cached, cachedView{RestaurantView: v, Picture: v.Picture})
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.ListingKey(gen, f), payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.Client.Incr(ctx, generationKey).Err()
}
