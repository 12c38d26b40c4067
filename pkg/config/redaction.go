package config

// RedactionConfig holds PII redaction settings.
// Applied system-wide to transcripts before DB storage or LLM calls.
type RedactionConfig struct {
	// Enabled toggles redaction. Disabling it is only meant for tests.
	Enabled bool `yaml:"enabled"`

	// PatternGroup selects the built-in pattern set to apply.
	PatternGroup string `yaml:"pattern_group"`
}

// DefaultRedactionConfig returns the built-in redaction defaults.
func DefaultRedactionConfig() *RedactionConfig {
	return &RedactionConfig{
		Enabled:      true,
		PatternGroup: "pii",
	}
}
