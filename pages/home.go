package pages

import (
	"directory-server/config"
	"directory-server/models"
	services "directory-server/service"
)

// HomePage is the landing page view.
type HomePage struct {
	Heading       string
	Tagline       string
	SearchHint    string
	CitiesTitle   string
	Cities        []CityLinkView
	StatesTitle   string
	States        []StateLinkView
	About         Section
	WhyChooseHead string
	WhyChoose     []Feature

	// BusinessTotal is the number of listings behind the page.
	BusinessTotal int
}

func (p HomePage) TemplateName() string { return "home" }
func (p HomePage) PageTitle() string    { return p.Heading }

var homeAbout = Section{
	Heading: "About Electrolysis Hair Removal",
	Paragraphs: []string{
		"Electrolysis is the only FDA-approved method for permanent hair removal. Unlike other hair removal methods that provide temporary results, electrolysis uses shortwave radio frequencies to destroy the hair growth center, preventing future hair growth.",
		"Finding a qualified electrologist in your area is essential for safe and effective treatment. Our directory helps you locate certified professionals near you who specialize in permanent hair removal through electrolysis.",
	},
}

var homeWhyChoose = []Feature{
	{"Permanent Results", "Unlike laser hair removal or waxing, electrolysis provides truly permanent hair removal by destroying the hair follicle completely."},
	{"Works on All Skin Types", "Electrolysis is effective for all skin tones and types, making it universally accessible regardless of your complexion."},
	{"FDA-Approved", "Electrolysis is the only hair removal method approved by the FDA for permanent removal of unwanted hair."},
	{"Works on All Hair Colors", "Unlike laser hair removal, electrolysis works on all hair colors including blonde, red, and gray hair."},
}

// ComposeHome derives the city and state summaries and keeps the first
// HOME_TOP_CITIES_LIMIT cities and HOME_TOP_STATES_LIMIT states.
func ComposeHome(data models.HomePageData) HomePage {
	cityListings := services.BuildCityListings(data.CityPages)
	stateListings := services.BuildStateListings(data.StatePages)

	cities := make([]CityLinkView, 0, config.HOME_TOP_CITIES_LIMIT)
	for _, c := range firstN(cityListings, config.HOME_TOP_CITIES_LIMIT) {
		cities = append(cities, CityLinkView{
			Key:           c.Key(),
			Name:          c.Name,
			StateCode:     c.StateCode,
			URL:           cityURL(c.Slug),
			BusinessCount: c.BusinessCount,
		})
	}

	states := make([]StateLinkView, 0, config.HOME_TOP_STATES_LIMIT)
	for _, s := range firstN(stateListings, config.HOME_TOP_STATES_LIMIT) {
		states = append(states, StateLinkView{
			Key:           s.Key(),
			Name:          s.Name,
			URL:           stateURL(s.Slug),
			BusinessCount: s.BusinessCount,
		})
	}

	return HomePage{
		Heading:       "Find Electrolysis Hair Removal Services Near You",
		Tagline:       "Discover the best permanent hair removal professionals in your area.",
		SearchHint:    "Enter your city or state",
		CitiesTitle:   "Top Cities for Electrolysis Hair Removal",
		Cities:        cities,
		StatesTitle:   "Browse by State",
		States:        states,
		About:         homeAbout,
		WhyChooseHead: "Why Choose Electrolysis?",
		WhyChoose:     homeWhyChoose,
		BusinessTotal: len(data.Businesses),
	}
}

func firstN[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
