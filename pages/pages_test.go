package pages

import (
	"fmt"
	"testing"

	"directory-server/models"
	"directory-server/models/business"
	services "directory-server/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusiness(slug string, rating float64) business.BusinessListing {
	return business.BusinessListing{
		ID:       slug,
		Slug:     slug,
		Name:     "Biz " + slug,
		Address:  "1 Main St",
		City:     "Austin",
		State:    "TX",
		ZipCode:  "78701",
		Phone:    "555-0100",
		Services: []string{},
		Rating:   rating,
	}
}

func TestCityNamesFromSlug(t *testing.T) {
	tests := []struct {
		slug, city, state string
	}{
		{"los-angeles-ca", "los angeles", "ca"},
		{"austin-tx", "austin", "tx"},
		{"austin", "", "austin"},
		{"", "", ""},
	}
	for _, test := range tests {
		city, state := CityNamesFromSlug(test.slug)
		assert.Equal(t, test.city, city, test.slug)
		assert.Equal(t, test.state, state, test.slug)
	}
}

func TestStateNameFromSlug(t *testing.T) {
	assert.Equal(t, "New york", StateNameFromSlug("new-york"))
	assert.Equal(t, "California", StateNameFromSlug("california"))
	assert.Equal(t, "", StateNameFromSlug(""))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, []string{"Mon-Fri 9-5", "Sat 10-2"}, FormatHours(`"Mon-Fri 9-5","Sat 10-2"`))
	assert.Equal(t, []string{"Daily 8-8"}, FormatHours(`"Daily 8-8"`))
	assert.Nil(t, FormatHours(""))
}

func TestComposeHome_LimitsAndSummaries(t *testing.T) {
	var data models.HomePageData
	for i := 0; i < 20; i++ {
		data.CityPages = append(data.CityPages, models.CityPageData{
			CityName:   fmt.Sprintf("City %d", i),
			StateName:  "Texas",
			Slug:       fmt.Sprintf("city-%d-tx", i),
			Businesses: []business.BusinessListing{testBusiness(fmt.Sprintf("b%d", i), 4)},
		})
		data.StatePages = append(data.StatePages, models.StatePageData{
			StateName: fmt.Sprintf("State %d", i),
			Slug:      fmt.Sprintf("state-%d", i),
		})
	}

	page := ComposeHome(data)

	require.Len(t, page.Cities, 12)
	require.Len(t, page.States, 16)
	assert.Equal(t, "city-0-tx", page.Cities[0].Key)
	assert.Equal(t, "/city/city-0-tx", page.Cities[0].URL)
	assert.Equal(t, "TE", page.Cities[0].StateCode)
	assert.Equal(t, 1, page.Cities[0].BusinessCount)
	assert.Equal(t, "/state/state-0", page.States[0].URL)
	assert.False(t, page.States[0].ShowCount())
	assert.Len(t, page.WhyChoose, 4)
	assert.Equal(t, "home", page.TemplateName())
}

func TestComposeState_Fallback(t *testing.T) {
	page := ComposeState("new-york", nil)

	assert.Equal(t, "New york", page.StateName)
	assert.Equal(t, "Electrolysis Hair Removal in New york", page.Heading)
	assert.Empty(t, page.Cities)
	assert.Equal(t, "No cities with electrolysis providers found in New york.", page.NoCitiesMessage)
	require.Len(t, page.FAQs, 3)
	assert.Equal(t, "How much does electrolysis cost in New york?", page.FAQs[0].Question)
}

func TestComposeState_WithBundle(t *testing.T) {
	data := &models.StatePageData{
		StateName: "Texas",
		Slug:      "texas",
		Cities: []models.CityListing{
			{Name: "Austin", Slug: "austin-tx", StateCode: "TX", BusinessCount: 3},
			{Name: "Waco", Slug: "waco-tx", StateCode: "TX"},
		},
	}

	page := ComposeState("texas", data)

	assert.Equal(t, "Texas", page.StateName)
	require.Len(t, page.Cities, 2)
	assert.Equal(t, "/city/austin-tx", page.Cities[0].URL)
	assert.True(t, page.Cities[0].ShowCount())
	assert.False(t, page.Cities[1].ShowCount())
}

func TestComposeCity_Fallback(t *testing.T) {
	page := ComposeCity("los-angeles-ca", nil)

	assert.Equal(t, "los angeles", page.CityName)
	assert.Equal(t, "ca", page.StateName)
	assert.Equal(t, "Electrolysis Hair Removal in los angeles, ca", page.Heading)
	assert.Empty(t, page.Listing.Cards)
	assert.Equal(t, EMPTY_LIST_MESSAGE, page.Listing.EmptyMessage)
	assert.Equal(t, "How much does electrolysis cost in los angeles?", page.FAQs[0].Question)
}

func TestComposeCity_RanksAllBusinesses(t *testing.T) {
	data := &models.CityPageData{
		CityName:  "Austin",
		StateName: "Texas",
		Slug:      "austin-tx",
		Businesses: []business.BusinessListing{
			testBusiness("a", 3), testBusiness("b", 0), testBusiness("c", 5), testBusiness("d", 3),
			testBusiness("e", 1),
		},
	}

	page := ComposeCity("austin-tx", data)

	require.Len(t, page.Listing.Cards, 5)
	var keys []string
	for _, c := range page.Listing.Cards {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"c", "a", "d", "e", "b"}, keys)
	assert.Equal(t, CITY_LIST_TITLE, page.Listing.Title)
	assert.Equal(t, "/city/austin-tx/map", page.MapURL)
	// the input bundle is left untouched
	assert.Equal(t, "a", data.Businesses[0].Slug)
}

func TestComposeBusiness_NotFound(t *testing.T) {
	for _, data := range []*models.BusinessPageData{nil, {}} {
		page := ComposeBusiness(data)

		assert.True(t, page.NotFound)
		assert.Equal(t, NOT_FOUND_TITLE, page.Title)
		assert.Equal(t, NOT_FOUND_MESSAGE, page.Message)
		assert.Nil(t, page.Detail)
		assert.Nil(t, page.Nearby)
	}
}

func TestComposeBusiness_Detail(t *testing.T) {
	b := testBusiness("smooth-skin", 4.5)
	b.Name = "Smooth Skin"
	b.Reviews = 120
	b.Email = "hi@smooth.example"
	b.Hours = `"Mon-Fri 9-5","Sat 10-2"`
	b.Services = []string{"Facial", "Body"}
	b.Latitude, b.Longitude = 30.2672, -97.7431
	b.PaymentMethods = []string{"Cash", "Visa"}

	page := ComposeBusiness(&models.BusinessPageData{Business: &b})

	require.False(t, page.NotFound)
	d := page.Detail
	require.NotNil(t, d)
	require.NotNil(t, d.Rating)
	assert.Equal(t, "4.5 (120 reviews)", d.Rating.Label)
	assert.Equal(t, []services.StarState{services.StarFull, services.StarFull, services.StarFull, services.StarFull, services.StarFull}, d.Rating.Stars)
	assert.Equal(t, "1 Main St, Austin, TX 78701", d.Address)
	assert.Equal(t, "hi@smooth.example", d.Email)
	assert.Empty(t, d.Website)
	assert.Equal(t, []string{"Mon-Fri 9-5", "Sat 10-2"}, d.HoursLines)
	assert.Equal(t, "Facial, Body", d.ServicesSummary)
	require.Len(t, d.ServicesOffered, 3)
	assert.Equal(t, "Electrolysis Hair Removal", d.ServicesOffered[0].Name)
	assert.Equal(t, "Body", d.ServicesOffered[2].Name)
	assert.True(t, d.HasCoordinates)
	assert.Equal(t, "Map will be displayed here", d.MapMessage)
	assert.Equal(t, "/city/austin-tx/map", d.MapURL)
	assert.Equal(t, []string{"Cash", "Visa"}, d.PaymentMethods)
	assert.Empty(t, d.Amenities)
	assert.Contains(t, d.Description, "Smooth Skin provides professional electrolysis")
	assert.Nil(t, page.Nearby)
}

func TestComposeBusiness_OptionalFieldsAbsent(t *testing.T) {
	b := testBusiness("plain", 0)

	d := ComposeBusiness(&models.BusinessPageData{Business: &b}).Detail

	require.NotNil(t, d)
	assert.Nil(t, d.Rating)
	assert.Nil(t, d.HoursLines)
	assert.False(t, d.HasCoordinates)
	assert.Equal(t, "Map not available", d.MapMessage)
	assert.Empty(t, d.MapURL)
	assert.Empty(t, d.ServicesSummary)
	require.Len(t, d.ServicesOffered, 2)
	assert.Equal(t, "Consultation", d.ServicesOffered[1].Name)
}

func TestComposeBusiness_NearbyLimitedAndRanked(t *testing.T) {
	b := testBusiness("main", 4)
	nearby := []business.BusinessListing{
		testBusiness("n1", 2), testBusiness("n2", 5), testBusiness("n3", 3), testBusiness("n4", 4.5),
	}

	page := ComposeBusiness(&models.BusinessPageData{Business: &b, NearbyBusinesses: nearby})

	require.NotNil(t, page.Nearby)
	assert.Equal(t, "More Electrolysis Providers Near Austin", page.Nearby.Title)
	require.Len(t, page.Nearby.Cards, 3)
	assert.Equal(t, "n2", page.Nearby.Cards[0].Key)
	assert.Equal(t, "n4", page.Nearby.Cards[1].Key)
	assert.Equal(t, "n3", page.Nearby.Cards[2].Key)
}

func TestComposeBusinessList_CardSummary(t *testing.T) {
	withServices := testBusiness("a", 0)
	withServices.Services = []string{"Facial", "Body"}
	described := testBusiness("b", 0)
	described.Description = "Family owned since 1980."

	list := ComposeBusinessList([]business.BusinessListing{withServices, described}, DEFAULT_LIST_TITLE, 0)

	assert.Equal(t, DEFAULT_LIST_TITLE, list.Title)
	require.Len(t, list.Cards, 2)
	assert.Equal(t, "Professional electrolysis hair removal services offered by Biz a. Specializing in Facial, Body.", list.Cards[0].Summary)
	assert.Equal(t, "Family owned since 1980.", list.Cards[1].Summary)
	assert.Equal(t, "/business/a", list.Cards[0].URL)
	assert.Nil(t, list.Cards[0].Rating)
}

func TestComposeBusinessList_EmptyTitleKept(t *testing.T) {
	list := ComposeBusinessList([]business.BusinessListing{testBusiness("a", 4)}, "", 0)

	assert.Empty(t, list.Title)
	assert.Len(t, list.Cards, 1)
}
