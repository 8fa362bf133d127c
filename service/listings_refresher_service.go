package services

import (
    "context"
    "fmt"
    "log/slog"
    "time"

    "directory-server/api/listings"
    "directory-server/dao/redis"
    "directory-server/logger"
)

// RefreshReport summarizes one refresh run.
type RefreshReport struct {
    Fetched           int
    Stored            int
    Skipped           []Skipped
    Cities            int
    States            int
    RemovedBusinesses int
    RemovedCities     int
    RemovedStates     int
}

// ListingsRefresherService pulls listings from a source and rebuilds the
// cached business, city and state bundles.
type ListingsRefresherService struct {
    directoryDao *redis.RedisDirectoryDAO
    source       listings.ListingsSource
    log          *slog.Logger
}

// NewListingsRefresherService constructs a new refresher with dependencies.
func NewListingsRefresherService(
    directoryDao *redis.RedisDirectoryDAO,
    source listings.ListingsSource,
    log *slog.Logger,
) *ListingsRefresherService {
    return &ListingsRefresherService{
        directoryDao: directoryDao,
        source:       source,
        log:          logger.Component(log, "ListingsRefresherService"),
    }
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop stops when ctx is cancelled. A non-positive interval starts nothing.
func (lr *ListingsRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
    if interval <= 0 {
        lr.log.Error("invalid refresh interval, periodic refresher not started",
            slog.Duration("interval", interval))
        return
    }
    go lr.startPeriodicJob(ctx, interval)
}

func (lr *ListingsRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
    ticker := time.NewTicker(interval)
    defer ticker.Stop()

    for {
        select {
        case <-ctx.Done():
            lr.log.Info("periodic listings refresher stopped")
            return
        case <-ticker.C:
            lr.log.Info("running periodic listings refresher job")
            if _, err := lr.RefreshListings(ctx); err != nil {
                lr.log.Error("RefreshListings returned error", slog.Any("error", err))
            }
        }
    }
}

// RefreshListings fetches, normalizes and stores one snapshot of listings.
// Businesses and bundles that are no longer in the snapshot are removed
// after the new ones are written, so readers never see an empty directory.
func (lr *ListingsRefresherService) RefreshListings(ctx context.Context) (RefreshReport, error) {
    var report RefreshReport

    raw, err := lr.source.FetchListings(ctx)
    if err != nil {
        return report, fmt.Errorf("failed to fetch listings from %s: %w", lr.source.Name(), err)
    }
    report.Fetched = len(raw)
    lr.log.Info("fetched listings", slog.String("source", lr.source.Name()), slog.Int("count", len(raw)))

    normalized, skipped := NormalizeListings(raw)
    report.Skipped = skipped
    for _, s := range skipped {
        lr.log.Warn("skipping listing",
            slog.Int("index", s.Index), slog.String("name", s.Name), slog.String("reason", s.Reason))
    }

    bundles := BuildDirectory(normalized)

    previousBusinesses, err := lr.directoryDao.ListBusinessSlugs(ctx)
    if err != nil {
        return report, err
    }
    previousCities, err := lr.listCitySlugs(ctx)
    if err != nil {
        return report, err
    }
    previousStates, err := lr.listStateSlugs(ctx)
    if err != nil {
        return report, err
    }

    keepBusinesses := make(map[string]struct{}, len(bundles.Businesses))
    for _, b := range bundles.Businesses {
        if err := lr.directoryDao.UpsertBusiness(ctx, b); err != nil {
            return report, err
        }
        lr.log.Debug("upserted business", slog.String("business", b.ToString()))
        keepBusinesses[b.Slug] = struct{}{}
        report.Stored++
    }

    keepCities := make(map[string]struct{}, len(bundles.Cities))
    for _, c := range bundles.Cities {
        if err := lr.directoryDao.SetCityPage(ctx, c); err != nil {
            return report, err
        }
        keepCities[c.Slug] = struct{}{}
    }
    report.Cities = len(bundles.Cities)

    keepStates := make(map[string]struct{}, len(bundles.States))
    for _, s := range bundles.States {
        if err := lr.directoryDao.SetStatePage(ctx, s); err != nil {
            return report, err
        }
        keepStates[s.Slug] = struct{}{}
    }
    report.States = len(bundles.States)

    for _, slug := range missingFrom(previousBusinesses, keepBusinesses) {
        if err := lr.directoryDao.DeleteBusiness(ctx, slug); err != nil {
            return report, err
        }
        report.RemovedBusinesses++
    }

    staleCities := missingFrom(previousCities, keepCities)
    staleStates := missingFrom(previousStates, keepStates)
    if len(staleCities)+len(staleStates) > 0 {
        if err := lr.directoryDao.DeletePages(ctx, staleCities, staleStates); err != nil {
            return report, err
        }
    }
    report.RemovedCities = len(staleCities)
    report.RemovedStates = len(staleStates)

    lr.log.Info("listings refresh completed",
        slog.Int("stored", report.Stored),
        slog.Int("skipped", len(report.Skipped)),
        slog.Int("cities", report.Cities),
        slog.Int("states", report.States),
        slog.Int("removed_businesses", report.RemovedBusinesses),
    )
    return report, nil
}

func (lr *ListingsRefresherService) listCitySlugs(ctx context.Context) ([]string, error) {
    pages, err := lr.directoryDao.ListCityPages(ctx)
    if err != nil {
        return nil, err
    }
    slugs := make([]string, len(pages))
    for i, p := range pages {
        slugs[i] = p.Slug
    }
    return slugs, nil
}

func (lr *ListingsRefresherService) listStateSlugs(ctx context.Context) ([]string, error) {
    pages, err := lr.directoryDao.ListStatePages(ctx)
    if err != nil {
        return nil, err
    }
    slugs := make([]string, len(pages))
    for i, p := range pages {
        slugs[i] = p.Slug
    }
    return slugs, nil
}

func missingFrom(previous []string, keep map[string]struct{}) []string {
    var out []string
    for _, s := range previous {
        if _, ok := keep[s]; !ok {
            out = append(out, s)
        }
    }
    return out
}
