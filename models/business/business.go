package business

import "fmt"

// BusinessListing represents a single electrolysis provider.
type BusinessListing struct {
    ID      string `json:"id"`
    Slug    string `json:"slug"`
    Name    string `json:"name"`
    Address string `json:"address"`
    City    string `json:"city"`
    State   string `json:"state"`
    ZipCode string `json:"zipCode"`
    Phone   string `json:"phone"`

    Email       string   `json:"email,omitempty"`
    Website     string   `json:"website,omitempty"`
    Description string   `json:"description,omitempty"`
    Services    []string `json:"services"`

    // Rating is 0 when the provider has no rating; "unrated" and "zero stars"
    // are indistinguishable.
    Rating  float64 `json:"rating,omitempty"`
    Reviews int     `json:"reviews,omitempty"`

    Latitude       float64  `json:"latitude,omitempty"`
    Longitude      float64  `json:"longitude,omitempty"`
    PaymentMethods []string `json:"paymentMethods,omitempty"`
    Amenities      []string `json:"amenities,omitempty"`

    // Hours uses the upstream quote-comma-joined format: "Mon-Fri 9-5","Sat 10-2"
    Hours string `json:"hours,omitempty"`
}

// HasCoordinates reports whether both coordinates are set.
func (b *BusinessListing) HasCoordinates() bool {
    return b.Latitude != 0 && b.Longitude != 0
}

// FullAddress renders the postal address on one line.
func (b *BusinessListing) FullAddress() string {
    return fmt.Sprintf("%s, %s, %s %s", b.Address, b.City, b.State, b.ZipCode)
}

func (b *BusinessListing) ToString() string {
    return fmt.Sprintf("BusinessListing(slug=%s, name=%s, city=%s, state=%s, rating=%.1f)",
        b.Slug, b.Name, b.City, b.State, b.Rating)
}
