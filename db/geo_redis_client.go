package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"directory-server/logger"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient implements RedisClient on top of go-redis.
type GeoRedisClient struct {
	client *redis.Client
	log    *slog.Logger
}

// NewGeoRedisClient wraps an existing go-redis client.
func NewGeoRedisClient(client *redis.Client, log *slog.Logger) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		log:    logger.Component(log, "GeoRedisClient"),
	}
}

// Set sets a key-value pair in Redis
func (r *GeoRedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GeoRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

func (r *GeoRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	return r.client.Keys(ctx, pattern).Result()
}

func (r *GeoRedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// AddLocationWithJSON stores geolocation along with associated JSON data.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lon,
	})
	pipe.Set(ctx, memberKey, jsonData, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add geolocation for %s: %w", memberKey, err)
	}

	r.log.Debug("added geolocation and JSON", slog.String("member", memberKey))
	return nil
}

// RemoveLocation drops a member from the geo index. The member's JSON key is
// left alone.
func (r *GeoRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	return r.client.ZRem(ctx, geoKey, memberKey).Err()
}

// GetLocationsWithinRadius finds all members within the given radius and returns their JSON data.
func (r *GeoRedisClient) GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error) {
	results, err := r.client.GeoRadius(ctx, geoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby locations: %w", err)
	}

	objects := make([]string, 0, len(results))
	for _, loc := range results {
		data, err := r.client.Get(ctx, loc.Name).Result()
		if err != nil {
			r.log.Warn("skipping geo member", slog.String("member", loc.Name), slog.Any("error", err))
			continue
		}
		objects = append(objects, data)
	}

	return objects, nil
}

func (r *GeoRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
