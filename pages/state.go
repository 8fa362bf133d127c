package pages

import (
	"fmt"
	"strings"

	"directory-server/models"
	"directory-server/util"
)

// StatePage lists the cities of one state.
type StatePage struct {
	StateName       string
	Heading         string
	Intro           string
	CitiesHeading   string
	Cities          []CityLinkView
	NoCitiesMessage string
	About           Section
	FAQHeading      string
	FAQs            []FAQ
}

func (p StatePage) TemplateName() string { return "state" }
func (p StatePage) PageTitle() string    { return p.Heading }

// StateNameFromSlug turns a route slug into a display name: hyphens become
// spaces and only the first letter is capitalized ("new-york" -> "New york").
func StateNameFromSlug(slug string) string {
	return util.UpperFirst(strings.ReplaceAll(slug, "-", " "))
}

// ComposeState builds the state page. data may be nil, in which case the
// name comes from the slug and the city list is empty.
func ComposeState(slug string, data *models.StatePageData) StatePage {
	stateName := StateNameFromSlug(slug)
	var cities []models.CityListing
	if data != nil {
		if data.StateName != "" {
			stateName = data.StateName
		}
		cities = data.Cities
	}

	links := make([]CityLinkView, 0, len(cities))
	for _, c := range cities {
		links = append(links, CityLinkView{
			Key:           c.Key(),
			Name:          c.Name,
			StateCode:     c.StateCode,
			URL:           cityURL(c.Slug),
			BusinessCount: c.BusinessCount,
		})
	}

	return StatePage{
		StateName:       stateName,
		Heading:         "Electrolysis Hair Removal in " + stateName,
		Intro:           fmt.Sprintf("Find electrolysis hair removal providers across %s. Choose your city below to see local specialists.", stateName),
		CitiesHeading:   "Cities in " + stateName,
		Cities:          links,
		NoCitiesMessage: fmt.Sprintf("No cities with electrolysis providers found in %s.", stateName),
		About: Section{
			Heading: "About Electrolysis in " + stateName,
			Paragraphs: []string{
				fmt.Sprintf("Electrolysis has become increasingly popular in %s as more people seek permanent solutions for unwanted hair. With numerous certified practitioners across the state, residents have access to quality electrolysis services.", stateName),
				fmt.Sprintf("%s requires proper licensing and certification for electrologists to ensure safe and effective treatments. When choosing a provider, look for proper credentials and positive client reviews.", stateName),
			},
		},
		FAQHeading: "Frequently Asked Questions",
		FAQs: []FAQ{
			{
				Question: fmt.Sprintf("How much does electrolysis cost in %s?", stateName),
				Answer:   fmt.Sprintf("Electrolysis costs in %s typically range from $60 to $150 per hour, depending on the practitioner's experience and location. Many providers offer package deals for multiple sessions.", stateName),
			},
			{
				Question: fmt.Sprintf("Is electrolysis regulated in %s?", stateName),
				Answer:   fmt.Sprintf("Yes, electrolysis is regulated in %s. Practitioners must complete specific training and obtain proper licensing before offering services.", stateName),
			},
			{
				Question: "How many sessions will I need?",
				Answer:   "The number of sessions varies depending on the area being treated, hair type, and individual factors. Most people require multiple sessions over several months for complete permanent hair removal.",
			},
		},
	}
}
