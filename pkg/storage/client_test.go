package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/config"
)

func TestSignedURL(t *testing.T) {
	t.Setenv("STORAGE_API_TOKEN", "store-token")

	var gotReq signRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(signResponse{URL: "https://signed.example/calls/rec-1.wav?sig=abc"})
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultStorageConfig()
	cfg.BaseURL = srv.URL
	store := NewHTTPStore(cfg)

	url, err := store.SignedURL(context.Background(), "calls/rec-1.wav")
	require.NoError(t, err)

	assert.Equal(t, "https://signed.example/calls/rec-1.wav?sig=abc", url)
	assert.Equal(t, "Bearer store-token", gotAuth)
	assert.Equal(t, "calls/rec-1.wav", gotReq.Path)
	assert.Equal(t, int(cfg.SignedURLTTL.Seconds()), gotReq.ExpiryS)
}

func TestSignedURL_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown path", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultStorageConfig()
	cfg.BaseURL = srv.URL
	store := NewHTTPStore(cfg)

	_, err := store.SignedURL(context.Background(), "calls/missing.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestSignedURL_EmptyURLRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(signResponse{})
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultStorageConfig()
	cfg.BaseURL = srv.URL
	store := NewHTTPStore(cfg)

	_, err := store.SignedURL(context.Background(), "calls/rec-1.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty URL")
}
