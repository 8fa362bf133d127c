package pages

// Page is implemented by every composed page view.
type Page interface {
	// TemplateName is the content template the renderer executes.
	TemplateName() string
	// PageTitle is used for the document <title>.
	PageTitle() string
}

// Section is a heading followed by paragraphs of static copy.
type Section struct {
	Heading    string
	Paragraphs []string
}

// FAQ is one question and its answer.
type FAQ struct {
	Question string
	Answer   string
}

// Feature is a titled blurb in a grid.
type Feature struct {
	Title string
	Body  string
}

// CityLinkView links to a city page from a list of cities.
type CityLinkView struct {
	Key           string
	Name          string
	StateCode     string
	URL           string
	BusinessCount int
}

// ShowCount hides zero counts.
func (c CityLinkView) ShowCount() bool {
	return c.BusinessCount > 0
}

// StateLinkView links to a state page.
type StateLinkView struct {
	Key           string
	Name          string
	URL           string
	BusinessCount int
}

func (s StateLinkView) ShowCount() bool {
	return s.BusinessCount > 0
}

func cityURL(slug string) string {
	return "/city/" + slug
}

func stateURL(slug string) string {
	return "/state/" + slug
}
