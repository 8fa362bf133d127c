package pages

import (
	"fmt"
	"strings"

	"directory-server/config"
	"directory-server/models"
	"directory-server/models/business"
	services "directory-server/service"
)

const NOT_FOUND_TITLE = "Business Information"
const NOT_FOUND_MESSAGE = "Business details could not be found. Please check the URL or try another business."

// ServiceItem is one row of the "Services Offered" list.
type ServiceItem struct {
	Name string
	Body string
}

// BusinessDetailView holds everything shown about a found business. Optional
// fields are empty when absent and the template omits their section.
type BusinessDetailView struct {
	Name            string
	Rating          *RatingView
	Address         string
	Phone           string
	Email           string
	Website         string
	HoursLines      []string
	AboutHeading    string
	Description     string
	ServicesSummary string
	ServicesOffered []ServiceItem
	ContactHeading  string
	HasCoordinates  bool
	Latitude        float64
	Longitude       float64
	MapMessage      string
	MapURL          string
	LocationNote    string
	PaymentMethods  []string
	Amenities       []string
}

// BusinessPage is either the not-found page or the detail page.
type BusinessPage struct {
	NotFound bool
	Title    string
	Message  string

	Detail *BusinessDetailView
	// Nearby is nil when there are no nearby providers.
	Nearby *BusinessListView
}

func (p BusinessPage) TemplateName() string { return "business" }
func (p BusinessPage) PageTitle() string    { return p.Title }

// FormatHours splits the upstream hours string on the literal `","` and
// strips every double quote: `"Mon-Fri 9-5","Sat 10-2"` -> [Mon-Fri 9-5, Sat 10-2].
func FormatHours(hours string) []string {
	if hours == "" {
		return nil
	}
	parts := strings.Split(hours, `","`)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, strings.ReplaceAll(p, `"`, ""))
	}
	return lines
}

// ComposeBusiness builds the business detail page. A nil bundle or a bundle
// without a business yields the not-found page and nothing else.
func ComposeBusiness(data *models.BusinessPageData) BusinessPage {
	if data == nil || data.Business == nil {
		return BusinessPage{NotFound: true, Title: NOT_FOUND_TITLE, Message: NOT_FOUND_MESSAGE}
	}
	b := data.Business

	page := BusinessPage{
		Title:  b.Name,
		Detail: composeDetail(b),
	}
	if len(data.NearbyBusinesses) > 0 {
		nearby := ComposeBusinessList(
			data.NearbyBusinesses,
			fmt.Sprintf("More Electrolysis Providers Near %s", b.City),
			config.NEARBY_BUSINESSES_LIMIT,
		)
		page.Nearby = &nearby
	}
	return page
}

func composeDetail(b *business.BusinessListing) *BusinessDetailView {
	d := &BusinessDetailView{
		Name:           b.Name,
		Rating:         ratingView(b),
		Address:        b.FullAddress(),
		Phone:          b.Phone,
		Email:          b.Email,
		Website:        b.Website,
		HoursLines:     FormatHours(b.Hours),
		AboutHeading:   "About " + b.Name,
		Description:    b.Description,
		ContactHeading: "Contact " + b.Name,
		HasCoordinates: b.HasCoordinates(),
		MapMessage:     "Map not available",
		LocationNote:   fmt.Sprintf("Located in %s, %s. Please contact for specific directions.", b.City, b.State),
		PaymentMethods: b.PaymentMethods,
		Amenities:      b.Amenities,
	}
	if d.Description == "" {
		d.Description = fmt.Sprintf("%s provides professional electrolysis hair removal services. Contact them directly for more information about their services and pricing.", b.Name)
	}
	if d.HasCoordinates {
		d.Latitude, d.Longitude = b.Latitude, b.Longitude
		d.MapMessage = "Map will be displayed here"
		d.MapURL = cityURL(services.CitySlug(b.City, b.State)) + "/map"
	}

	d.ServicesOffered = append(d.ServicesOffered, ServiceItem{
		Name: "Electrolysis Hair Removal",
		Body: "Permanent hair removal services for all skin types and hair colors.",
	})
	if len(b.Services) > 0 {
		d.ServicesSummary = strings.Join(b.Services, ", ")
		for _, s := range b.Services {
			d.ServicesOffered = append(d.ServicesOffered, ServiceItem{
				Name: s,
				Body: "Professional service provided by trained specialists.",
			})
		}
	} else {
		d.ServicesOffered = append(d.ServicesOffered, ServiceItem{
			Name: "Consultation",
			Body: "Initial assessment to determine your specific needs and create a personalized treatment plan.",
		})
	}
	return d
}
