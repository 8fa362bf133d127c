package redis

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log/slog"
    "sort"
    "strings"

    "directory-server/db"
    "directory-server/logger"
    "directory-server/models"
    "directory-server/models/business"
)

const BUSINESSES_GEO_KEY_V1 = "businesses_geo_v1"
const BUSINESS_MEMBER_KEY_FORMAT_V1 = "business_v1:%s"
const CITY_PAGE_KEY_FORMAT_V1 = "city_page_v1:%s"
const STATE_PAGE_KEY_FORMAT_V1 = "state_page_v1:%s"

// ErrNotFound is returned when the requested business or bundle is not stored.
var ErrNotFound = errors.New("not found")

// RedisDirectoryDAO stores business listings and page bundles in Redis.
// Businesses with coordinates are also indexed in a geo set so nearby
// providers can be found by radius.
type RedisDirectoryDAO struct {
    client db.RedisClient
    log    *slog.Logger
}

// NewRedisDirectoryDAO initializes a RedisDirectoryDAO with the Redis client.
func NewRedisDirectoryDAO(client db.RedisClient, log *slog.Logger) *RedisDirectoryDAO {
    return &RedisDirectoryDAO{client: client, log: logger.Component(log, "RedisDirectoryDAO")}
}

func businessKey(slug string) string {
    return fmt.Sprintf(BUSINESS_MEMBER_KEY_FORMAT_V1, slug)
}

// UpsertBusiness stores the listing JSON under its slug, indexing it by
// location when it has coordinates.
func (dao *RedisDirectoryDAO) UpsertBusiness(ctx context.Context, b business.BusinessListing) error {
    key := businessKey(b.Slug)
    if b.HasCoordinates() {
        if err := dao.client.AddLocationWithJSON(ctx, BUSINESSES_GEO_KEY_V1, key, b.Latitude, b.Longitude, b); err != nil {
            return fmt.Errorf("failed to upsert business %s: %w", b.Slug, err)
        }
        return nil
    }
    if err := dao.client.RemoveLocation(ctx, BUSINESSES_GEO_KEY_V1, key); err != nil {
        return fmt.Errorf("failed to remove stale geo entry %s: %w", key, err)
    }
    return dao.setJSON(ctx, key, b)
}

// GetBusiness returns the listing stored under slug, or ErrNotFound.
func (dao *RedisDirectoryDAO) GetBusiness(ctx context.Context, slug string) (*business.BusinessListing, error) {
    var b business.BusinessListing
    if err := dao.getJSON(ctx, businessKey(slug), &b); err != nil {
        return nil, err
    }
    return &b, nil
}

// GetNearbyBusinesses retrieves businesses within radiusKm, nearest first.
func (dao *RedisDirectoryDAO) GetNearbyBusinesses(ctx context.Context, lat, lon, radiusKm float64) ([]business.BusinessListing, error) {
    raw, err := dao.client.GetLocationsWithinRadius(ctx, BUSINESSES_GEO_KEY_V1, lat, lon, radiusKm)
    if err != nil {
        return nil, fmt.Errorf("failed to get nearby businesses: %w", err)
    }

    out := make([]business.BusinessListing, len(raw))
    for i, s := range raw {
        if err := json.Unmarshal([]byte(s), &out[i]); err != nil {
            return nil, fmt.Errorf("failed to unmarshal business JSON: %w", err)
        }
    }
    return out, nil
}

// ListBusinessSlugs returns the slugs of every stored business.
func (dao *RedisDirectoryDAO) ListBusinessSlugs(ctx context.Context) ([]string, error) {
    return dao.listSuffixes(ctx, BUSINESS_MEMBER_KEY_FORMAT_V1)
}

// DeleteBusiness removes the listing and its geo index entry.
func (dao *RedisDirectoryDAO) DeleteBusiness(ctx context.Context, slug string) error {
    key := businessKey(slug)
    if err := dao.client.RemoveLocation(ctx, BUSINESSES_GEO_KEY_V1, key); err != nil {
        return fmt.Errorf("failed to remove geo entry %s: %w", key, err)
    }
    if err := dao.client.Del(ctx, key); err != nil {
        return fmt.Errorf("failed to delete business key %s: %w", key, err)
    }
    dao.log.Debug("deleted business", slog.String("slug", slug))
    return nil
}

// SetCityPage caches a city bundle by its slug.
func (dao *RedisDirectoryDAO) SetCityPage(ctx context.Context, c models.CityPageData) error {
    return dao.setJSON(ctx, fmt.Sprintf(CITY_PAGE_KEY_FORMAT_V1, c.Slug), c)
}

func (dao *RedisDirectoryDAO) GetCityPage(ctx context.Context, slug string) (*models.CityPageData, error) {
    var c models.CityPageData
    if err := dao.getJSON(ctx, fmt.Sprintf(CITY_PAGE_KEY_FORMAT_V1, slug), &c); err != nil {
        return nil, err
    }
    return &c, nil
}

// ListCityPages returns every cached city bundle ordered by slug.
func (dao *RedisDirectoryDAO) ListCityPages(ctx context.Context) ([]models.CityPageData, error) {
    slugs, err := dao.listSuffixes(ctx, CITY_PAGE_KEY_FORMAT_V1)
    if err != nil {
        return nil, err
    }
    pages := make([]models.CityPageData, 0, len(slugs))
    for _, slug := range slugs {
        c, err := dao.GetCityPage(ctx, slug)
        if errors.Is(err, ErrNotFound) {
            continue
        }
        if err != nil {
            return nil, err
        }
        pages = append(pages, *c)
    }
    return pages, nil
}

func (dao *RedisDirectoryDAO) SetStatePage(ctx context.Context, s models.StatePageData) error {
    return dao.setJSON(ctx, fmt.Sprintf(STATE_PAGE_KEY_FORMAT_V1, s.Slug), s)
}

func (dao *RedisDirectoryDAO) GetStatePage(ctx context.Context, slug string) (*models.StatePageData, error) {
    var s models.StatePageData
    if err := dao.getJSON(ctx, fmt.Sprintf(STATE_PAGE_KEY_FORMAT_V1, slug), &s); err != nil {
        return nil, err
    }
    return &s, nil
}

// ListStatePages returns every cached state bundle ordered by slug.
func (dao *RedisDirectoryDAO) ListStatePages(ctx context.Context) ([]models.StatePageData, error) {
    slugs, err := dao.listSuffixes(ctx, STATE_PAGE_KEY_FORMAT_V1)
    if err != nil {
        return nil, err
    }
    pages := make([]models.StatePageData, 0, len(slugs))
    for _, slug := range slugs {
        s, err := dao.GetStatePage(ctx, slug)
        if errors.Is(err, ErrNotFound) {
            continue
        }
        if err != nil {
            return nil, err
        }
        pages = append(pages, *s)
    }
    return pages, nil
}

// DeletePages removes the given city and state bundles.
func (dao *RedisDirectoryDAO) DeletePages(ctx context.Context, citySlugs, stateSlugs []string) error {
    keys := make([]string, 0, len(citySlugs)+len(stateSlugs))
    for _, s := range citySlugs {
        keys = append(keys, fmt.Sprintf(CITY_PAGE_KEY_FORMAT_V1, s))
    }
    for _, s := range stateSlugs {
        keys = append(keys, fmt.Sprintf(STATE_PAGE_KEY_FORMAT_V1, s))
    }
    if err := dao.client.Del(ctx, keys...); err != nil {
        return fmt.Errorf("failed to delete page bundles: %w", err)
    }
    return nil
}

func (dao *RedisDirectoryDAO) setJSON(ctx context.Context, key string, v interface{}) error {
    data, err := json.Marshal(v)
    if err != nil {
        return fmt.Errorf("failed to marshal %s: %w", key, err)
    }
    if err := dao.client.Set(ctx, key, string(data)); err != nil {
        return fmt.Errorf("failed to set %s in redis: %w", key, err)
    }
    return nil
}

func (dao *RedisDirectoryDAO) getJSON(ctx context.Context, key string, v interface{}) error {
    str, err := dao.client.Get(ctx, key)
    if errors.Is(err, db.ErrKeyNotFound) {
        return ErrNotFound
    }
    if err != nil {
        return fmt.Errorf("failed to get %s from redis: %w", key, err)
    }
    if err := json.Unmarshal([]byte(str), v); err != nil {
        return fmt.Errorf("failed to unmarshal %s: %w", key, err)
    }
    return nil
}

// listSuffixes lists keys matching format (with %s as the wildcard) and
// strips the prefix.
func (dao *RedisDirectoryDAO) listSuffixes(ctx context.Context, format string) ([]string, error) {
    keys, err := dao.client.Keys(ctx, fmt.Sprintf(format, "*"))
    if err != nil {
        return nil, fmt.Errorf("failed to list keys: %w", err)
    }
    prefix := fmt.Sprintf(format, "")
    out := make([]string, 0, len(keys))
    for _, k := range keys {
        out = append(out, strings.TrimPrefix(k, prefix))
    }
    sort.Strings(out)
    return out, nil
}
