package services

import (
	"testing"

	"directory-server/models"
	"directory-server/models/business"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCityListings(t *testing.T) {
	cityPages := []models.CityPageData{
		{
			CityName:   "Los Angeles",
			StateName:  "California",
			Slug:       "los-angeles-ca",
			Businesses: []business.BusinessListing{listing("a", 4), listing("b", 3)},
		},
		{CityName: "Austin", StateName: "texas", Slug: "austin-tx"},
	}

	listings := BuildCityListings(cityPages)

	require.Len(t, listings, len(cityPages))
	assert.Equal(t, models.CityListing{
		Name:          "Los Angeles",
		Slug:          "los-angeles-ca",
		State:         "California",
		StateCode:     "CA",
		BusinessCount: 2,
	}, listings[0])
	assert.Equal(t, "TE", listings[1].StateCode)
	assert.Equal(t, 0, listings[1].BusinessCount)
	assert.Equal(t, "austin-tx", listings[1].Key())
}

func TestBuildCityListings_CountMatchesBusinesses(t *testing.T) {
	var cityPages []models.CityPageData
	for n := 0; n < 6; n++ {
		page := models.CityPageData{CityName: "c", StateName: "s", Slug: string(rune('a' + n))}
		for i := 0; i < n; i++ {
			page.Businesses = append(page.Businesses, listing("b", float64(i)))
		}
		cityPages = append(cityPages, page)
	}

	listings := BuildCityListings(cityPages)

	require.Len(t, listings, len(cityPages))
	for i, l := range listings {
		assert.Equal(t, len(cityPages[i].Businesses), l.BusinessCount)
	}
}

func TestBuildStateListings(t *testing.T) {
	statePages := []models.StatePageData{
		{
			StateName: "Texas",
			Slug:      "texas",
			Cities: []models.CityListing{
				{Name: "Austin", Slug: "austin-tx", BusinessCount: 4},
				{Name: "Dallas", Slug: "dallas-tx", BusinessCount: 1},
			},
		},
	}

	listings := BuildStateListings(statePages)

	require.Len(t, listings, 1)
	assert.Equal(t, "Texas", listings[0].Name)
	assert.Equal(t, "texas", listings[0].Key())
	assert.Equal(t, 5, listings[0].BusinessCount)
	assert.NotNil(t, listings[0].Cities)
	assert.Empty(t, listings[0].Cities)
}

func TestStateCodeFromName(t *testing.T) {
	assert.Equal(t, "NE", StateCodeFromName("New York"))
	assert.Equal(t, "I", StateCodeFromName("i"))
	assert.Equal(t, "", StateCodeFromName(""))
}
