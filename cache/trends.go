// Package cache provides Redis client initialization and the short-TTL
// trending-topics cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trend-studio/logger"
	"trend-studio/models"
)

// ConnectRedis creates a Redis client and verifies the connection with a ping.
func ConnectRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Log.Infof("redis connected: %s", addr)
	return client, nil
}

// TrendCache stores trend lists per (category, keyword) for a short TTL.
// A nil client disables caching and every lookup misses.
type TrendCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrendCache(client *redis.Client, ttl time.Duration) *TrendCache {
	return &TrendCache{client: client, ttl: ttl}
}

func trendKey(category, keyword string) string {
	return fmt.Sprintf("trends:%s:%s", category, keyword)
}

// Get returns the cached trend list for the key, if present and decodable.
func (c *TrendCache) Get(ctx context.Context, category, keyword string) ([]models.TrendingTopic, bool) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return nil, false
	}
	raw, err := c.client.Get(ctx, trendKey(category, keyword)).Bytes()
	if err != nil {
		return nil, false
	}
	var topics []models.TrendingTopic
	if err := json.Unmarshal(raw, &topics); err != nil {
		return nil, false
	}
	return topics, true
}

// Set stores the trend list. Cache write failures only log; the caller already
// has the data.
func (c *TrendCache) Set(ctx context.Context, category, keyword string, topics []models.TrendingTopic) {
	if c == nil || c.client == nil || c.ttl <= 0 || len(topics) == 0 {
		return
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, trendKey(category, keyword), raw, c.ttl).Err(); err != nil {
		logger.WarnWithFields("trend cache write failed", logger.Fields{"error": err.Error()})
	}
}
