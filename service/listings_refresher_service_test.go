package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"directory-server/dao/redis"
	"directory-server/db"
	"directory-server/models/business"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	listings []business.BusinessListing
	err      error
	calls    atomic.Int32
}

func (s *stubSource) FetchListings(ctx context.Context) ([]business.BusinessListing, error) {
	s.calls.Add(1)
	return s.listings, s.err
}

func (s *stubSource) Name() string { return "stub" }

func austinListings() []business.BusinessListing {
	return []business.BusinessListing{
		{Name: "Smooth Skin", City: "austin", State: "TX", Rating: 4.5, Latitude: 30.2672, Longitude: -97.7431},
		{Name: "Clear Path", City: "Austin", State: "TX", Rating: 3},
		{Name: "Round Rock Electrolysis", City: "Round Rock", State: "TX", Rating: 5, Latitude: 30.5083, Longitude: -97.6789},
		{Name: "Bayou Hair Free", City: "Houston", State: "TX", Rating: 4, Latitude: 29.7604, Longitude: -95.3698},
		{Name: "Golden Gate Smooth", City: "San Francisco", State: "CA", Rating: 4.2},
		{Name: "", City: "Austin", State: "TX"},
	}
}

func newRefresherWith(source *stubSource) (*ListingsRefresherService, *redis.RedisDirectoryDAO) {
	dao := redis.NewRedisDirectoryDAO(db.NewMockRedisClient(), nil)
	return NewListingsRefresherService(dao, source, nil), dao
}

func TestListingsRefresherService_RefreshListings_StoresBundles(t *testing.T) {
	ctx := context.Background()
	refresher, dao := newRefresherWith(&stubSource{listings: austinListings()})

	report, err := refresher.RefreshListings(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, report.Fetched)
	assert.Equal(t, 5, report.Stored)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "missing name", report.Skipped[0].Reason)
	assert.Equal(t, 4, report.Cities)
	assert.Equal(t, 2, report.States)

	slugs, err := dao.ListBusinessSlugs(ctx)
	require.NoError(t, err)
	assert.Len(t, slugs, 5)

	austin, err := dao.GetCityPage(ctx, "austin-tx")
	require.NoError(t, err)
	assert.Equal(t, "Austin", austin.CityName)
	assert.Equal(t, "Texas", austin.StateName)
	assert.Equal(t, 2, austin.BusinessCount())

	texas, err := dao.GetStatePage(ctx, "texas")
	require.NoError(t, err)
	assert.Equal(t, 4, texas.BusinessCount())
	require.Len(t, texas.Cities, 3)
	assert.Equal(t, "Austin", texas.Cities[0].Name)
	assert.Equal(t, "TX", texas.Cities[0].StateCode)
}

func TestListingsRefresherService_RefreshListings_RemovesStaleEntries(t *testing.T) {
	ctx := context.Background()
	source := &stubSource{listings: austinListings()}
	refresher, dao := newRefresherWith(source)

	_, err := refresher.RefreshListings(ctx)
	require.NoError(t, err)

	source.listings = austinListings()[:2]
	report, err := refresher.RefreshListings(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.RemovedBusinesses)
	assert.Equal(t, 3, report.RemovedCities)
	assert.Equal(t, 1, report.RemovedStates)

	_, err = dao.GetCityPage(ctx, "houston-tx")
	assert.ErrorIs(t, err, redis.ErrNotFound)
	_, err = dao.GetStatePage(ctx, "california")
	assert.ErrorIs(t, err, redis.ErrNotFound)
	_, err = dao.GetBusiness(ctx, "bayou-hair-free-houston")
	assert.ErrorIs(t, err, redis.ErrNotFound)

	nearby, err := dao.GetNearbyBusinesses(ctx, 29.7604, -95.3698, 10)
	require.NoError(t, err)
	assert.Empty(t, nearby)

	kept, err := dao.GetBusiness(ctx, "smooth-skin-austin")
	require.NoError(t, err)
	assert.Equal(t, "Smooth Skin", kept.Name)
}

func TestListingsRefresherService_RefreshListings_SourceError(t *testing.T) {
	ctx := context.Background()
	refresher, dao := newRefresherWith(&stubSource{err: errors.New("boom")})

	_, err := refresher.RefreshListings(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	slugs, err := dao.ListBusinessSlugs(ctx)
	require.NoError(t, err)
	assert.Empty(t, slugs)
}

func TestListingsRefresherService_StartPeriodicJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	source := &stubSource{listings: austinListings()}
	refresher, _ := newRefresherWith(source)

	refresher.StartPeriodicJob(ctx, 10*time.Millisecond)

	require.Eventually(t, func() bool { return source.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
}

func TestListingsRefresherService_StartPeriodicJob_NonPositiveInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	source := &stubSource{listings: austinListings()}
	refresher, _ := newRefresherWith(source)

	assert.NotPanics(t, func() {
		refresher.StartPeriodicJob(ctx, 0)
		refresher.StartPeriodicJob(ctx, -time.Second)
	})

	assert.Never(t, func() bool { return source.calls.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}
