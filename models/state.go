package models

// StatePageData is the pre-built bundle behind a state page.
type StatePageData struct {
	StateName string        `json:"stateName"`
	Slug      string        `json:"slug"`
	Cities    []CityListing `json:"cities"`
}

// BusinessCount sums the counts of the state's cities.
func (s *StatePageData) BusinessCount() int {
	total := 0
	for _, c := range s.Cities {
		total += c.BusinessCount
	}
	return total
}

// StateListing is the navigational summary of a state.
type StateListing struct {
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	BusinessCount int           `json:"businessCount"`
	Cities        []CityListing `json:"cities"`
}

func (s StateListing) Key() string {
	return s.Slug
}
