// Package storage resolves object-store paths to time-limited signed
// URLs via the external storage gateway.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/callscope-ai/callscope/pkg/config"
)

// Store produces signed URLs for stored audio.
type Store interface {
	SignedURL(ctx context.Context, path string) (string, error)
}

// HTTPStore is the production storage-gateway adapter.
type HTTPStore struct {
	cfg        *config.StorageConfig
	httpClient *http.Client
	token      string
}

// NewHTTPStore creates a storage client.
func NewHTTPStore(cfg *config.StorageConfig) *HTTPStore {
	if cfg == nil {
		panic("storage configuration is required")
	}
	return &HTTPStore{
		cfg:        cfg,
		httpClient: &http.Client{},
		token:      os.Getenv(cfg.TokenEnv),
	}
}

type signRequest struct {
	Path    string `json:"path"`
	ExpiryS int    `json:"expiry_s"`
}

type signResponse struct {
	URL string `json:"url"`
}

// SignedURL exchanges an object path for a signed, expiring URL.
func (s *HTTPStore) SignedURL(ctx context.Context, path string) (string, error) {
	body, err := json.Marshal(signRequest{
		Path:    path,
		ExpiryS: int(s.cfg.SignedURLTTL.Seconds()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/v1/sign", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage gateway returned %d: %s", resp.StatusCode, string(msg))
	}

	var decoded signResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("invalid storage response: %w", err)
	}
	if decoded.URL == "" {
		return "", fmt.Errorf("storage gateway returned an empty URL")
	}
	return decoded.URL, nil
}
