package listings

import (
	"context"

	"directory-server/models/business"
)

// LISTINGS_ENDPOINT is the path under the source base URL that serves the
// listing export.
const LISTINGS_ENDPOINT = "/listings.json"

// ListingsSource defines where raw business listings come from.
type ListingsSource interface {
	FetchListings(ctx context.Context) ([]business.BusinessListing, error)
	Name() string
}
