package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"directory-server/dao/redis"
	"directory-server/logger"
	"directory-server/models"
	"directory-server/models/business"
)

// DirectoryStore is the part of the Redis DAO the read side needs.
type DirectoryStore interface {
	GetBusiness(ctx context.Context, slug string) (*business.BusinessListing, error)
	GetNearbyBusinesses(ctx context.Context, lat, lon, radiusKm float64) ([]business.BusinessListing, error)
	GetCityPage(ctx context.Context, slug string) (*models.CityPageData, error)
	ListCityPages(ctx context.Context) ([]models.CityPageData, error)
	GetStatePage(ctx context.Context, slug string) (*models.StatePageData, error)
	ListStatePages(ctx context.Context) ([]models.StatePageData, error)
}

// DirectoryService loads the bundles the page composers consume. A missing
// bundle is reported as nil with no error.
type DirectoryService struct {
	store          DirectoryStore
	nearbyRadiusKm float64
	log            *slog.Logger
}

// NewDirectoryService constructs a new DirectoryService.
func NewDirectoryService(store DirectoryStore, nearbyRadiusKm float64, log *slog.Logger) *DirectoryService {
	return &DirectoryService{
		store:          store,
		nearbyRadiusKm: nearbyRadiusKm,
		log:            logger.Component(log, "DirectoryService"),
	}
}

// HomeData returns every city and state bundle plus the listings behind them.
// Cities come back busiest first, states by name.
func (ds *DirectoryService) HomeData(ctx context.Context) (models.HomePageData, error) {
	cities, err := ds.store.ListCityPages(ctx)
	if err != nil {
		return models.HomePageData{}, fmt.Errorf("failed to list city pages: %w", err)
	}
	states, err := ds.store.ListStatePages(ctx)
	if err != nil {
		return models.HomePageData{}, fmt.Errorf("failed to list state pages: %w", err)
	}

	// stored order is by slug
	sortCities(cities)
	sortStates(states)

	businesses := []business.BusinessListing{}
	for _, c := range cities {
		businesses = append(businesses, c.Businesses...)
	}
	return models.HomePageData{
		Businesses: businesses,
		CityPages:  cities,
		StatePages: states,
	}, nil
}

// StateData returns the state bundle for slug, or nil when there is none.
func (ds *DirectoryService) StateData(ctx context.Context, slug string) (*models.StatePageData, error) {
	s, err := ds.store.GetStatePage(ctx, slug)
	if errors.Is(err, redis.ErrNotFound) {
		ds.log.Debug("no state bundle", slog.String("slug", slug))
		return nil, nil
	}
	return s, err
}

// CityData returns the city bundle for slug, or nil when there is none.
func (ds *DirectoryService) CityData(ctx context.Context, slug string) (*models.CityPageData, error) {
	c, err := ds.store.GetCityPage(ctx, slug)
	if errors.Is(err, redis.ErrNotFound) {
		ds.log.Debug("no city bundle", slog.String("slug", slug))
		return nil, nil
	}
	return c, err
}

// BusinessData returns the business bundle for slug, or nil when the
// business does not exist. Nearby providers come from the geo index when
// the business has coordinates, otherwise from its city bundle. The
// business itself is never among them.
func (ds *DirectoryService) BusinessData(ctx context.Context, slug string) (*models.BusinessPageData, error) {
	b, err := ds.store.GetBusiness(ctx, slug)
	if errors.Is(err, redis.ErrNotFound) {
		ds.log.Info("business not found", slog.String("slug", slug))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	nearby, err := ds.nearby(ctx, b)
	if err != nil {
		return nil, err
	}
	return &models.BusinessPageData{Business: b, NearbyBusinesses: nearby}, nil
}

func (ds *DirectoryService) nearby(ctx context.Context, b *business.BusinessListing) ([]business.BusinessListing, error) {
	var candidates []business.BusinessListing
	if b.HasCoordinates() {
		found, err := ds.store.GetNearbyBusinesses(ctx, b.Latitude, b.Longitude, ds.nearbyRadiusKm)
		if err != nil {
			return nil, fmt.Errorf("failed to load nearby businesses for %s: %w", b.Slug, err)
		}
		candidates = found
	}

	if len(withoutSlug(candidates, b.Slug)) == 0 {
		city, err := ds.CityData(ctx, CitySlug(b.City, b.State))
		if err != nil {
			return nil, fmt.Errorf("failed to load city bundle for %s: %w", b.Slug, err)
		}
		if city != nil {
			candidates = city.Businesses
		}
	}
	return withoutSlug(candidates, b.Slug), nil
}

func withoutSlug(list []business.BusinessListing, slug string) []business.BusinessListing {
	out := make([]business.BusinessListing, 0, len(list))
	for _, b := range list {
		if b.Slug != slug {
			out = append(out, b)
		}
	}
	return out
}
