package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetVideoDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	log.Printf("getting entry in cache for video #%s...", id)

	val, err := c.client.Get(ctx, detailsKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagVideoDetails(ctx context.Context, id db.UUID) (string, error) {
	val, err := c.client.Get(ctx, etagKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time) {
	log.Printf("creating entry in cache for video #%s, valid until %s...", id, validUntil.Format(time.RFC1123))

	if err := c.client.Set(ctx, detailsKey(id), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for video #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagVideoDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, etagKey(id), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for video #%s etag: %v", id, err)
	}
}

func (c *Cache) DeleteVideoDetails(ctx context.Context, id db.UUID) error {
	log.Printf("deleting entry in cache for video #%s...", id)

	if err := c.client.Del(ctx, detailsKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagVideoDetails(ctx context.Context, id db.UUID) error {
	if err := c.client.Del(ctx, etagKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func detailsKey(id db.UUID) string {
	return "video:" + id.String()
}

func etagKey(id db.UUID) string {
	return "video_etag:" + id.String()
}
