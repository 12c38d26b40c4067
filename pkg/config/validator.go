package config

import (
	"errors"
	"fmt"
)

// Validator checks resolved configuration for out-of-range or
// inconsistent values before the application starts.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every section validator and joins the failures.
func (v *Validator) ValidateAll() error {
	var errs []error

	if err := v.validateServer(); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateQueue(v.cfg.Queue); err != nil {
		errs = append(errs, err)
	}
	if err := v.validatePipeline(); err != nil {
		errs = append(errs, err)
	}
	if err := v.validateLLM(); err != nil {
		errs = append(errs, err)
	}
	if err := v.validateEmbedding(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (v *Validator) validateServer() error {
	s := v.cfg.Server
	if s == nil {
		return errors.New("server configuration is nil")
	}
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "server", "port",
			fmt.Errorf("%w: must be between 1 and 65535, got %d", ErrInvalidValue, s.Port))
	}
	return nil
}

// ValidateQueue checks queue configuration bounds.
func ValidateQueue(q *QueueConfig) error {
	if q == nil {
		return errors.New("queue configuration is nil")
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return NewValidationError("queue", "queue", "worker_count",
			fmt.Errorf("%w: worker_count must be between 1 and 50, got %d", ErrInvalidValue, q.WorkerCount))
	}
	if q.MaxConcurrentJobs < 1 || q.MaxConcurrentJobs > 100 {
		return NewValidationError("queue", "queue", "max_concurrent_jobs",
			fmt.Errorf("%w: max_concurrent_jobs must be between 1 and 100, got %d", ErrInvalidValue, q.MaxConcurrentJobs))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval",
			fmt.Errorf("%w: poll_interval must be positive", ErrInvalidValue))
	}
	if q.JobTimeout <= 0 {
		return NewValidationError("queue", "queue", "job_timeout",
			fmt.Errorf("%w: job_timeout must be positive", ErrInvalidValue))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "queue", "orphan_threshold",
			fmt.Errorf("%w: orphan_threshold must exceed heartbeat_interval", ErrInvalidValue))
	}
	if q.MaxAttempts < 1 {
		return NewValidationError("queue", "queue", "max_attempts",
			fmt.Errorf("%w: max_attempts must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p == nil {
		return errors.New("pipeline configuration is nil")
	}
	if p.SemanticThreshold <= 0 || p.SemanticThreshold >= 1 {
		return NewValidationError("pipeline", "pipeline", "semantic_threshold",
			fmt.Errorf("%w: must be in (0, 1), got %v", ErrInvalidValue, p.SemanticThreshold))
	}
	if p.DefaultPassThreshold < 0 || p.DefaultPassThreshold > 100 {
		return NewValidationError("pipeline", "pipeline", "default_pass_threshold",
			fmt.Errorf("%w: must be between 0 and 100, got %d", ErrInvalidValue, p.DefaultPassThreshold))
	}
	if p.ReviewBandWidth < 0 {
		return NewValidationError("pipeline", "pipeline", "review_band_width",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if p.ReviewConfidenceFloor < 0 || p.ReviewConfidenceFloor > 1 {
		return NewValidationError("pipeline", "pipeline", "review_confidence_floor",
			fmt.Errorf("%w: must be in [0, 1], got %v", ErrInvalidValue, p.ReviewConfidenceFloor))
	}
	if p.MaxTranscriptSeconds <= 0 {
		return NewValidationError("pipeline", "pipeline", "max_transcript_seconds",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.MergeGapSeconds < 0 {
		return NewValidationError("pipeline", "pipeline", "merge_gap_seconds",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateLLM() error {
	l := v.cfg.LLM
	if l == nil {
		return errors.New("llm configuration is nil")
	}
	if l.Model == "" {
		return NewValidationError("llm", "llm", "model",
			fmt.Errorf("%w: model", ErrMissingRequiredField))
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return NewValidationError("llm", "llm", "temperature",
			fmt.Errorf("%w: must be in [0, 2], got %v", ErrInvalidValue, l.Temperature))
	}
	if l.RequestTimeout <= 0 {
		return NewValidationError("llm", "llm", "request_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateEmbedding() error {
	e := v.cfg.Embedding
	if e == nil {
		return errors.New("embedding configuration is nil")
	}
	if e.Model == "" {
		return NewValidationError("embedding", "embedding", "model",
			fmt.Errorf("%w: model", ErrMissingRequiredField))
	}
	if e.Dimensions < 1 {
		return NewValidationError("embedding", "embedding", "dimensions",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, e.Dimensions))
	}
	return nil
}
