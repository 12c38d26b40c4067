package config

import "time"

// PipelineConfig contains thresholds and timeouts for the evaluation
// pipeline: normalization, detection, scoring, and the LLM judge.
type PipelineConfig struct {
	// SemanticThreshold is the cosine similarity (scaled to [0,1]) above
	// which a semantic match counts as detected.
	SemanticThreshold float64 `yaml:"semantic_threshold"`

	// DefaultPassThreshold is the overall score required to pass when a
	// blueprint does not specify its own threshold.
	DefaultPassThreshold int `yaml:"default_pass_threshold"`

	// ReviewBandWidth is the half-width of the score band around the pass
	// threshold inside which human review is always requested.
	ReviewBandWidth int `yaml:"review_band_width"`

	// ReviewConfidenceFloor triggers human review when overall confidence
	// falls below it.
	ReviewConfidenceFloor float64 `yaml:"review_confidence_floor"`

	// MaxTranscriptSeconds is the duration above which transcripts are
	// trimmed before detection.
	MaxTranscriptSeconds float64 `yaml:"max_transcript_seconds"`

	// TrimEdgeSeconds is how much of the call start and end survives
	// trimming untouched.
	TrimEdgeSeconds float64 `yaml:"trim_edge_seconds"`

	// TrimContextSeconds is the context kept around rule hits when trimming.
	TrimContextSeconds float64 `yaml:"trim_context_seconds"`

	// MergeGapSeconds is the max silence between same-speaker segments that
	// still merges them into one.
	MergeGapSeconds float64 `yaml:"merge_gap_seconds"`

	// StageWindowPaddingSeconds widens each stage's detection window before
	// it is handed to the judge.
	StageWindowPaddingSeconds float64 `yaml:"stage_window_padding_seconds"`

	// ASRTimeout bounds the transcription call per recording.
	ASRTimeout time.Duration `yaml:"asr_timeout"`

	// StageJudgeTimeout bounds each per-stage LLM judge call.
	StageJudgeTimeout time.Duration `yaml:"stage_judge_timeout"`

	// EmbeddingTimeout bounds each embedding request.
	EmbeddingTimeout time.Duration `yaml:"embedding_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		SemanticThreshold:         0.72,
		DefaultPassThreshold:      70,
		ReviewBandWidth:           5,
		ReviewConfidenceFloor:     0.6,
		MaxTranscriptSeconds:      1200,
		TrimEdgeSeconds:           120,
		TrimContextSeconds:        30,
		MergeGapSeconds:           1.5,
		StageWindowPaddingSeconds: 15,
		ASRTimeout:                30 * time.Second,
		StageJudgeTimeout:         60 * time.Second,
		EmbeddingTimeout:          10 * time.Second,
	}
}
