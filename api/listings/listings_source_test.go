package listings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"directory-server/api"
	"directory-server/models/business"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPListingsSource_FetchListings(t *testing.T) {
	want := []business.BusinessListing{
		{ID: "1", Slug: "smooth-skin", Name: "Smooth Skin", City: "Austin", State: "TX", Rating: 4.5, Reviews: 120},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, LISTINGS_ENDPOINT, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	source := NewHTTPListingsSource(api.NewHTTPClient(srv.URL))

	got, err := source.FetchListings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, srv.URL+LISTINGS_ENDPOINT, source.Name())
}

func TestHTTPListingsSource_FetchListings_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPListingsSource(api.NewHTTPClient(srv.URL)).FetchListings(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFileListingsSource_FetchListings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	content := `[{"id":"1","slug":"a","name":"A","city":"Austin","state":"TX","services":["Facial"],"hours":"\"Mon-Fri 9-5\""}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := NewFileListingsSource(path).FetchListings(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, []string{"Facial"}, got[0].Services)
	assert.Equal(t, `"Mon-Fri 9-5"`, got[0].Hours)
}

func TestFileListingsSource_MissingFile(t *testing.T) {
	_, err := NewFileListingsSource(filepath.Join(t.TempDir(), "nope.json")).FetchListings(context.Background())

	assert.Error(t, err)
}
