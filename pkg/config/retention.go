package config

import "time"

// RetentionConfig controls purging of soft-deleted rows.
type RetentionConfig struct {
	// Enabled turns the background purge loop on.
	Enabled bool `yaml:"enabled"`

	// SoftDeleteRetentionDays is how long soft-deleted recordings and
	// evaluations are kept before being removed for good.
	SoftDeleteRetentionDays int `yaml:"soft_delete_retention_days"`

	// PurgeInterval is how often the purge loop runs.
	PurgeInterval time.Duration `yaml:"purge_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:                 true,
		SoftDeleteRetentionDays: 30,
		PurgeInterval:           12 * time.Hour,
	}
}
