package upstream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/logger"
)

// Cache เก็บผล normalize ไว้ใน Redis กัน hit Swiggy ถี่เกิน
// พังตรงไหนก็แค่ fetch สด ไม่ถือเป็น error
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(addr string) *Cache {
	r := redis.NewClient(&redis.Options{Addr: addr})
	return &Cache{rdb: r, ttl: 2 * time.Minute}
}

func cacheGet[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return zero, false
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, false
	}
	return out, true
}

func cacheSet(ctx context.Context, c *Cache, key string, val any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
