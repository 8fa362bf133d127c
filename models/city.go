package models

import "directory-server/models/business"

// CityPageData is the pre-built bundle behind a city page.
type CityPageData struct {
	CityName   string                     `json:"cityName"`
	StateName  string                     `json:"stateName"`
	Slug       string                     `json:"slug"`
	Businesses []business.BusinessListing `json:"businesses"`
}

// BusinessCount is always derived from the bundle's businesses.
func (c *CityPageData) BusinessCount() int {
	return len(c.Businesses)
}

// CityListing is the navigational summary of a city.
type CityListing struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	State         string `json:"state"`
	StateCode     string `json:"stateCode"`
	BusinessCount int    `json:"businessCount"`
}

// Key identifies the row when rendering lists of cities.
func (c CityListing) Key() string {
	return c.Slug
}
