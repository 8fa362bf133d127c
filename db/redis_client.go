package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("redis: key not found")

// RedisClient defines the methods the DAO layer needs from Redis.
type RedisClient interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, keys ...string) error
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	RemoveLocation(ctx context.Context, geoKey, memberKey string) error
	// GetLocationsWithinRadius returns the JSON stored under every member of
	// geoKey within radiusKm of (lat, lon), nearest first.
	GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error)
	Ping(ctx context.Context) error
}
