package config

import "time"

// ASRConfig holds settings for the external speech-to-text service.
type ASRConfig struct {
	// BaseURL is the ASR service endpoint.
	BaseURL string `yaml:"base_url"`

	// TokenEnv names the environment variable holding the bearer token.
	TokenEnv string `yaml:"token_env"`

	// RequestTimeout bounds a single transcription request.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxRetries is the number of retries on transient failures.
	MaxRetries int `yaml:"max_retries"`
}

// DefaultASRConfig returns the built-in ASR defaults.
func DefaultASRConfig() *ASRConfig {
	return &ASRConfig{
		TokenEnv:       "ASR_API_TOKEN",
		RequestTimeout: 30 * time.Second,
		MaxRetries:     3,
	}
}

// StorageConfig holds settings for the audio object store used to
// resolve signed URLs for recordings.
type StorageConfig struct {
	// BaseURL is the storage gateway endpoint.
	BaseURL string `yaml:"base_url"`

	// TokenEnv names the environment variable holding the bearer token.
	TokenEnv string `yaml:"token_env"`

	// SignedURLTTL is the lifetime requested for signed audio URLs.
	SignedURLTTL time.Duration `yaml:"signed_url_ttl"`
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		TokenEnv:     "STORAGE_API_TOKEN",
		SignedURLTTL: 15 * time.Minute,
	}
}
