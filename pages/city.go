package pages

import (
	"fmt"
	"strings"

	"directory-server/models"
	"directory-server/models/business"
)

const CITY_LIST_TITLE = "Electrolysis Providers in Your Area"

// CityPage shows every provider of one city, best rated first.
type CityPage struct {
	CityName   string
	StateName  string
	Heading    string
	Intro      string
	Listing    BusinessListView
	MapURL     string
	About      Section
	FAQHeading string
	FAQs       []FAQ
}

func (p CityPage) TemplateName() string { return "city" }
func (p CityPage) PageTitle() string    { return p.Heading }

// CityNamesFromSlug splits a combined city-state slug: the last hyphen
// segment is the state, the rest joined by spaces is the city
// ("los-angeles-ca" -> "los angeles", "ca").
func CityNamesFromSlug(slug string) (cityName, stateName string) {
	parts := strings.Split(slug, "-")
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

// ComposeCity builds the city page. data may be nil, in which case names
// come from the slug and the listing is empty.
func ComposeCity(slug string, data *models.CityPageData) CityPage {
	cityName, stateName := CityNamesFromSlug(slug)
	var businesses []business.BusinessListing
	if data != nil {
		if data.CityName != "" {
			cityName = data.CityName
		}
		if data.StateName != "" {
			stateName = data.StateName
		}
		businesses = data.Businesses
	}

	mapURL := ""
	if slug != "" {
		mapURL = cityURL(slug) + "/map"
	}

	return CityPage{
		CityName:  cityName,
		StateName: stateName,
		Heading:   fmt.Sprintf("Electrolysis Hair Removal in %s, %s", cityName, stateName),
		Intro:     fmt.Sprintf("Find the best electrolysis hair removal providers in %s, %s. Below is a list of top-rated permanent hair removal specialists in your area.", cityName, stateName),
		Listing:   ComposeBusinessList(businesses, CITY_LIST_TITLE, 0),
		MapURL:    mapURL,
		About: Section{
			Heading: "About Electrolysis in " + cityName,
			Paragraphs: []string{
				fmt.Sprintf("Electrolysis is the gold standard for permanent hair removal in %s, %s. Unlike temporary methods like waxing or shaving, electrolysis offers a permanent solution by destroying the hair follicle completely.", cityName, stateName),
				fmt.Sprintf("When choosing an electrologist in %s, look for proper certification, experience, and positive reviews. Many providers listed in our directory offer free consultations to discuss your specific needs and develop a treatment plan.", cityName),
			},
		},
		FAQHeading: "Frequently Asked Questions",
		FAQs: []FAQ{
			{
				Question: fmt.Sprintf("How much does electrolysis cost in %s?", cityName),
				Answer:   fmt.Sprintf("Prices in %s typically range from $60-$120 per hour, depending on the provider's experience and location. Many offer package deals for multiple sessions.", cityName),
			},
			{
				Question: "How many electrolysis sessions will I need?",
				Answer:   "The number of sessions varies based on the treatment area, hair density, and individual factors. Most clients require multiple sessions over several months for complete results.",
			},
			{
				Question: "Is electrolysis painful?",
				Answer:   "Most people experience mild discomfort during electrolysis, often described as a momentary pinch or heat sensation. Many providers offer numbing options to increase comfort.",
			},
		},
	}
}
