package services

import (
	"strings"

	"directory-server/models"
)

// BuildCityListings derives one navigational summary per city bundle, in
// input order.
func BuildCityListings(cityPages []models.CityPageData) []models.CityListing {
	listings := make([]models.CityListing, 0, len(cityPages))
	for i := range cityPages {
		city := &cityPages[i]
		listings = append(listings, models.CityListing{
			Name:          city.CityName,
			Slug:          city.Slug,
			State:         city.StateName,
			StateCode:     StateCodeFromName(city.StateName),
			BusinessCount: city.BusinessCount(),
		})
	}
	return listings
}

// BuildStateListings derives one navigational summary per state bundle. The
// nested city list is left empty; the home page does not show it.
func BuildStateListings(statePages []models.StatePageData) []models.StateListing {
	listings := make([]models.StateListing, 0, len(statePages))
	for i := range statePages {
		state := &statePages[i]
		listings = append(listings, models.StateListing{
			Name:          state.StateName,
			Slug:          state.Slug,
			BusinessCount: state.BusinessCount(),
			Cities:        []models.CityListing{},
		})
	}
	return listings
}

// StateCodeFromName upper-cases the first two characters of the state name.
// This is not a real postal code lookup ("Texas" -> "TE").
func StateCodeFromName(stateName string) string {
	runes := []rune(stateName)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
