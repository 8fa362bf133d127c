package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-endpoint", r.URL.Path)
		assert.Equal(t, "token", r.Header.Get("X-Api-Key"))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "success"})
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	err := client.Request(context.Background(), http.MethodGet, "/test-endpoint", map[string]string{"X-Api-Key": "token"}, nil, &response)

	require.NoError(t, err)
	assert.Equal(t, "success", response["message"])
}

func TestHTTPClient_Request_SendsJSONBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "value", body["key"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	err := NewHTTPClient(mockServer.URL).Request(context.Background(), http.MethodPost, "/", nil, map[string]string{"key": "value"}, nil)

	assert.NoError(t, err)
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	err := client.Request(context.Background(), http.MethodPost, "/test-endpoint", nil, map[string]string{"key": "value"}, &response)

	require.Error(t, err)
	assert.Equal(t, "unexpected status code: 400 Bad Request", err.Error())
}

func TestHTTPClient_Request_Cancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewHTTPClient(mockServer.URL).Request(ctx, http.MethodGet, "/", nil, nil, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
