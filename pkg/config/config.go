package config

// Config is the umbrella configuration object that encapsulates all
// resolved settings. This is the primary object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// HTTP server settings
	Server *ServerConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Pipeline thresholds and timeouts
	Pipeline *PipelineConfig

	// LLM judge backend
	LLM *LLMConfig

	// Embedding backend for semantic detection
	Embedding *EmbeddingConfig

	// PII redaction
	Redaction *RedactionConfig

	// External speech-to-text service
	ASR *ASRConfig

	// Audio object store
	Storage *StorageConfig

	// Purging of soft-deleted rows
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
