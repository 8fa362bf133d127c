package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"sort"
	"sync"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	geoData map[string]map[string]GeoLoc // Geolocation data
	mu      sync.RWMutex
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Keys matches glob patterns the way KEYS does for the patterns we use.
func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := []string{}
	for k := range m.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
		delete(m.geoData, k)
	}
	return nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	return nil
}

func (m *MockRedisClient) RemoveLocation(ctx context.Context, geoKey, memberKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.geoData[geoKey], memberKey)
	return nil
}

// GetLocationsWithinRadius filters members by great-circle distance, nearest first.
func (m *MockRedisClient) GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lon, radiusKm float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		member string
		dist   float64
	}
	var hits []hit
	for member, loc := range m.geoData[geoKey] {
		d := haversineKm(lat, lon, loc.Latitude, loc.Longitude)
		if d <= radiusKm {
			hits = append(hits, hit{member: member, dist: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].member < hits[j].member
		}
		return hits[i].dist < hits[j].dist
	})

	results := make([]string, 0, len(hits))
	for _, h := range hits {
		if data, exists := m.data[h.member]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// Ping always succeeds.
func (m *MockRedisClient) Ping(ctx context.Context) error {
	return nil
}

const earthRadiusKm = 6372.797560856

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
