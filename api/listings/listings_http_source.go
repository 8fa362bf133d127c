package listings

import (
	"context"
	"fmt"
	"net/http"

	"directory-server/api"
	"directory-server/models/business"
)

// HTTPListingsSource fetches the listing export from a remote endpoint.
type HTTPListingsSource struct {
	httpClient *api.HTTPClient
}

// NewHTTPListingsSource creates a new instance of HTTPListingsSource
func NewHTTPListingsSource(httpClient *api.HTTPClient) *HTTPListingsSource {
	return &HTTPListingsSource{httpClient: httpClient}
}

// FetchListings retrieves the listing export and decodes it.
func (s *HTTPListingsSource) FetchListings(ctx context.Context) ([]business.BusinessListing, error) {
	var listings []business.BusinessListing
	if err := s.httpClient.Request(ctx, http.MethodGet, LISTINGS_ENDPOINT, nil, nil, &listings); err != nil {
		return nil, fmt.Errorf("failed to fetch listings from %s: %w", s.Name(), err)
	}
	return listings, nil
}

func (s *HTTPListingsSource) Name() string {
	return s.httpClient.BaseURL + LISTINGS_ENDPOINT
}
