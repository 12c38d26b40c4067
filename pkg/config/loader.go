package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CallscopeYAMLConfig represents the complete callscope.yaml file structure.
// Every section is optional; unset values fall back to built-in defaults.
type CallscopeYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Queue     *QueueConfig     `yaml:"queue"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	LLM       *LLMConfig       `yaml:"llm"`
	Embedding *EmbeddingConfig `yaml:"embedding"`
	Redaction *RedactionConfig `yaml:"redaction"`
	ASR       *ASRConfig       `yaml:"asr"`
	Storage   *StorageConfig   `yaml:"storage"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load callscope.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-provided values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"semantic_threshold", cfg.Pipeline.SemanticThreshold,
		"llm_model", cfg.LLM.Model,
		"embedding_model", cfg.Embedding.Model)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadCallscopeYAML()
	if err != nil {
		return nil, NewLoadError("callscope.yaml", err)
	}

	cfg := &Config{
		configDir: configDir,
		Server:    DefaultServerConfig(),
		Queue:     DefaultQueueConfig(),
		Pipeline:  DefaultPipelineConfig(),
		LLM:       DefaultLLMConfig(),
		Embedding: DefaultEmbeddingConfig(),
		Redaction: DefaultRedactionConfig(),
		ASR:       DefaultASRConfig(),
		Storage:   DefaultStorageConfig(),
		Retention: DefaultRetentionConfig(),
	}

	// Merge user-provided sections into defaults (non-zero values override).
	if yamlCfg.Server != nil {
		if err := mergo.Merge(cfg.Server, yamlCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(cfg.Queue, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if yamlCfg.Pipeline != nil {
		if err := mergo.Merge(cfg.Pipeline, yamlCfg.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(cfg.LLM, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	if yamlCfg.Embedding != nil {
		if err := mergo.Merge(cfg.Embedding, yamlCfg.Embedding, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge embedding config: %w", err)
		}
	}
	if yamlCfg.Redaction != nil {
		// mergo cannot distinguish an explicit false from unset, so the
		// redaction section is taken verbatim when present.
		cfg.Redaction = yamlCfg.Redaction
		if cfg.Redaction.PatternGroup == "" {
			cfg.Redaction.PatternGroup = DefaultRedactionConfig().PatternGroup
		}
	}
	if yamlCfg.ASR != nil {
		if err := mergo.Merge(cfg.ASR, yamlCfg.ASR, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge asr config: %w", err)
		}
	}
	if yamlCfg.Storage != nil {
		if err := mergo.Merge(cfg.Storage, yamlCfg.Storage, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge storage config: %w", err)
		}
	}
	if yamlCfg.Retention != nil {
		// Like redaction, an explicit enabled=false must stick, so the
		// section is taken verbatim when present.
		cfg.Retention = yamlCfg.Retention
		if cfg.Retention.SoftDeleteRetentionDays == 0 {
			cfg.Retention.SoftDeleteRetentionDays = DefaultRetentionConfig().SoftDeleteRetentionDays
		}
		if cfg.Retention.PurgeInterval == 0 {
			cfg.Retention.PurgeInterval = DefaultRetentionConfig().PurgeInterval
		}
	}

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCallscopeYAML() (*CallscopeYAMLConfig, error) {
	var config CallscopeYAMLConfig

	if err := l.loadYAML("callscope.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
