// Package catalog caches package catalog lookups in Redis.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// DefaultTTL is how long catalog entries stay cached
const DefaultTTL = 5 * time.Minute

const keyPrefix = "catalog:"

// Cached serves catalog reads from Redis and falls through to the
// wrapped catalog on a miss. Redis errors never fail a read.
type Cached struct {
	next itinerary.Catalog
	rdb  *redis.Client
	ttl  time.Duration
}

// NewCached wraps next with a Redis read-through cache
func NewCached(next itinerary.Catalog, rdb *redis.Client, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cached{next: next, rdb: rdb, ttl: ttl}
}

// NewClient connects to Redis from a redis:// URL
func NewClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opt), nil
}

func activityKey(id uuid.UUID) string { return keyPrefix + "activity:" + id.String() }
func transferKey(id uuid.UUID) string { return keyPrefix + "transfer:" + id.String() }

func searchKey(kind, city string, limit int) string {
	return fmt.Sprintf("%ssearch:%s:%s:%d", keyPrefix, kind, strings.ToLower(strings.TrimSpace(city)), limit)
}

func (c *Cached) GetActivity(ctx context.Context, id uuid.UUID) (*models.ActivityPackage, error) {
	var a models.ActivityPackage
	if c.load(ctx, activityKey(id), &a) {
		return &a, nil
	}
	got, err := c.next.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, activityKey(id), got)
	return got, nil
}

func (c *Cached) GetTransfer(ctx context.Context, id uuid.UUID) (*models.TransferPackage, error) {
	var t models.TransferPackage
	if c.load(ctx, transferKey(id), &t) {
		return &t, nil
	}
	got, err := c.next.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, transferKey(id), got)
	return got, nil
}

func (c *Cached) SearchActivities(ctx context.Context, city string, limit int) ([]models.ActivityPackage, error) {
	key := searchKey("activity", city, limit)
	var acts []models.ActivityPackage
	if c.load(ctx, key, &acts) {
		return acts, nil
	}
	acts, err := c.next.SearchActivities(ctx, city, limit)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, acts)
	return acts, nil
}

func (c *Cached) SearchTransfers(ctx context.Context, city string, limit int) ([]models.TransferPackage, error) {
	key := searchKey("transfer", city, limit)
	var transfers []models.TransferPackage
	if c.load(ctx, key, &transfers) {
		return transfers, nil
	}
	transfers, err := c.next.SearchTransfers(ctx, city, limit)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, transfers)
	return transfers, nil
}

// Ping checks the Redis connection
func (c *Cached) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Invalidate drops every cached catalog entry
func (c *Cached) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan catalog keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Cached) load(ctx context.Context, key string, dst any) bool {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[catalog] Error reading cache key %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		log.Printf("[catalog] Error decoding cache key %s: %v", key, err)
		return false
	}
	return true
}

func (c *Cached) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[catalog] Error encoding cache key %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, string(b), c.ttl).Err(); err != nil {
		log.Printf("[catalog] Error writing cache key %s: %v", key, err)
	}
}
