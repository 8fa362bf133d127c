package services

import (
	"sort"
	"strings"

	"directory-server/models"
	"directory-server/models/business"
	"directory-server/util"
)

// DirectoryBundles is everything the read side serves, built from one
// snapshot of listings.
type DirectoryBundles struct {
	Businesses []business.BusinessListing
	Cities     []models.CityPageData
	States     []models.StatePageData
}

// Skipped describes a source listing that could not be used.
type Skipped struct {
	Index  int
	Name   string
	Reason string
}

// NormalizeListings cleans raw source listings: trims text fields,
// title-cases the city, fills missing slugs and ids, clamps the rating into
// [0,5] and drops records without a name, city or state, or with a slug seen
// earlier in the batch.
func NormalizeListings(raw []business.BusinessListing) ([]business.BusinessListing, []Skipped) {
	out := make([]business.BusinessListing, 0, len(raw))
	var skipped []Skipped
	seen := make(map[string]struct{}, len(raw))

	for i, b := range raw {
		b.Name = strings.TrimSpace(b.Name)
		b.City = util.TitleCase(b.City)
		b.State = strings.TrimSpace(b.State)

		switch {
		case b.Name == "":
			skipped = append(skipped, Skipped{Index: i, Reason: "missing name"})
			continue
		case b.City == "" || b.State == "":
			skipped = append(skipped, Skipped{Index: i, Name: b.Name, Reason: "missing city or state"})
			continue
		}

		if b.Slug = util.Slugify(b.Slug); b.Slug == "" {
			b.Slug = util.Slugify(b.Name + " " + b.City)
		}
		if _, dup := seen[b.Slug]; dup {
			skipped = append(skipped, Skipped{Index: i, Name: b.Name, Reason: "duplicate slug " + b.Slug})
			continue
		}
		seen[b.Slug] = struct{}{}

		if b.ID == "" {
			b.ID = b.Slug
		}
		if b.Rating < 0 {
			b.Rating = 0
		} else if b.Rating > MAX_STARS {
			b.Rating = MAX_STARS
		}
		if b.Services == nil {
			b.Services = []string{}
		}
		out = append(out, b)
	}
	return out, skipped
}

// CitySlug builds the combined city-state slug used by city routes,
// e.g. ("Los Angeles", "CA") -> "los-angeles-ca".
func CitySlug(city, state string) string {
	name, code := resolveState(state)
	if code != "" {
		return util.Slugify(city + " " + code)
	}
	return util.Slugify(city + " " + name)
}

// StateSlug builds the state route slug from a state name or postal code.
func StateSlug(state string) string {
	name, _ := resolveState(state)
	return util.Slugify(name)
}

// BuildDirectory groups normalized listings into city and state bundles.
// Businesses keep their input order inside each city. Cities are ordered by
// business count, then name; states by name.
func BuildDirectory(listings []business.BusinessListing) DirectoryBundles {
	citiesBySlug := make(map[string]*models.CityPageData)
	var cityOrder []string
	cityState := make(map[string]string)

	for _, b := range listings {
		slug := CitySlug(b.City, b.State)
		city, ok := citiesBySlug[slug]
		if !ok {
			stateName, _ := resolveState(b.State)
			city = &models.CityPageData{
				CityName:   b.City,
				StateName:  stateName,
				Slug:       slug,
				Businesses: []business.BusinessListing{},
			}
			citiesBySlug[slug] = city
			cityOrder = append(cityOrder, slug)
			cityState[slug] = b.State
		}
		city.Businesses = append(city.Businesses, b)
	}

	cities := make([]models.CityPageData, 0, len(cityOrder))
	for _, slug := range cityOrder {
		cities = append(cities, *citiesBySlug[slug])
	}
	sortCities(cities)

	statesBySlug := make(map[string]*models.StatePageData)
	for _, city := range cities {
		raw := cityState[city.Slug]
		name, code := resolveState(raw)
		if code == "" {
			code = StateCodeFromName(name)
		}
		slug := StateSlug(raw)
		state, ok := statesBySlug[slug]
		if !ok {
			state = &models.StatePageData{StateName: name, Slug: slug, Cities: []models.CityListing{}}
			statesBySlug[slug] = state
		}
		state.Cities = append(state.Cities, models.CityListing{
			Name:          city.CityName,
			Slug:          city.Slug,
			State:         name,
			StateCode:     code,
			BusinessCount: city.BusinessCount(),
		})
	}

	states := make([]models.StatePageData, 0, len(statesBySlug))
	for _, s := range statesBySlug {
		sort.Slice(s.Cities, func(i, j int) bool { return s.Cities[i].Name < s.Cities[j].Name })
		states = append(states, *s)
	}
	sortStates(states)

	return DirectoryBundles{Businesses: listings, Cities: cities, States: states}
}

// sortCities orders cities busiest first, then by name.
func sortCities(cities []models.CityPageData) {
	sort.SliceStable(cities, func(i, j int) bool {
		if cities[i].BusinessCount() != cities[j].BusinessCount() {
			return cities[i].BusinessCount() > cities[j].BusinessCount()
		}
		return cities[i].CityName < cities[j].CityName
	})
}

func sortStates(states []models.StatePageData) {
	sort.SliceStable(states, func(i, j int) bool { return states[i].StateName < states[j].StateName })
}
