package config

import "time"

// LLMConfig holds settings for the LLM judge backend.
type LLMConfig struct {
	// Model is the generation model used for stage judgments.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Temperature for judge calls. Kept at 0 so evaluations replay
	// deterministically for a given prompt.
	Temperature float32 `yaml:"temperature"`

	// TopP for judge calls.
	TopP float32 `yaml:"top_p"`

	// MaxOutputTokens caps the structured judgment response.
	MaxOutputTokens int32 `yaml:"max_output_tokens"`

	// RequestTimeout bounds a single generation call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// RetryBackoffs are the delays between retries of a failed call.
	RetryBackoffs []time.Duration `yaml:"retry_backoffs"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:           "gemini-2.5-flash",
		APIKeyEnv:       "GOOGLE_API_KEY",
		Temperature:     0,
		TopP:            1.0,
		MaxOutputTokens: 4096,
		RequestTimeout:  60 * time.Second,
		RetryBackoffs: []time.Duration{
			1 * time.Second,
			3 * time.Second,
			10 * time.Second,
		},
	}
}

// EmbeddingConfig holds settings for the embedding backend used by
// semantic detection.
type EmbeddingConfig struct {
	// Model is the embedding model.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Dimensions is the requested embedding width.
	Dimensions int32 `yaml:"dimensions"`

	// RequestTimeout bounds a single embedding call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// CacheSize is the max number of cached embeddings kept in memory.
	CacheSize int `yaml:"cache_size"`
}

// DefaultEmbeddingConfig returns the built-in embedding defaults.
func DefaultEmbeddingConfig() *EmbeddingConfig {
	return &EmbeddingConfig{
		Model:          "gemini-embedding-001",
		APIKeyEnv:      "GOOGLE_API_KEY",
		Dimensions:     768,
		RequestTimeout: 10 * time.Second,
		CacheSize:      4096,
	}
}
