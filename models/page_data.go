package models

import "directory-server/models/business"

// BusinessPageData is the bundle behind a business detail page. Business is
// nil when no listing matched the requested slug.
type BusinessPageData struct {
	Business         *business.BusinessListing  `json:"business"`
	NearbyBusinesses []business.BusinessListing `json:"nearbyBusinesses"`
}

// HomePageData carries the full listing sets shown on the home page.
type HomePageData struct {
	Businesses []business.BusinessListing `json:"businessListings"`
	CityPages  []CityPageData             `json:"cityPages"`
	StatePages []StatePageData            `json:"statePages"`
}
