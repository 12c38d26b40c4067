package models

// MatchType records which matcher produced a detection.
type MatchType string

// MatchType values.
const (
	MatchTypeExact    MatchType = "exact"
	MatchTypeSemantic MatchType = "semantic"
	MatchTypeNone     MatchType = "none"
)

// BehaviorResult is the detection outcome for one compiled step.
type BehaviorResult struct {
	StepID         string         `json:"behavior_id"`
	StageID        string         `json:"stage_id"`
	Detected       bool           `json:"detected"`
	MatchType      MatchType      `json:"match_type"`
	MatchedText    string         `json:"matched_text,omitempty"`
	SegmentIndex   int            `json:"segment_index"`
	StartS         float64        `json:"start"`
	EndS           float64        `json:"end"`
	Confidence     float64        `json:"confidence"`
	Violation      bool           `json:"violation"`
	OutOfWindow    bool           `json:"out_of_window,omitempty"`
	CriticalAction CriticalAction `json:"critical_action,omitempty"`
}

// StageDetection aggregates detections for one stage, including the detected
// time window used to scope the LLM stage evaluator.
type StageDetection struct {
	StageID       string  `json:"stage_id"`
	ExpectedSteps int     `json:"expected_steps"`
	DetectedSteps int     `json:"detected_steps"`
	Violations    int     `json:"violations"`
	WindowStartS  float64 `json:"window_start_s"`
	WindowEndS    float64 `json:"window_end_s"`
	HasWindow     bool    `json:"has_window"`
}

// DetectionOutput is the full detection engine result. Behaviors are sorted
// by (stage ordering_index, step ui order, step id) for determinism.
type DetectionOutput struct {
	Behaviors         []BehaviorResult          `json:"behaviors"`
	Stages            map[string]StageDetection `json:"stages"`
	EmbeddingFallback bool                      `json:"embedding_fallback,omitempty"`
}

// ResultForStep returns the behavior result for a step id, or nil.
func (d *DetectionOutput) ResultForStep(stepID string) *BehaviorResult {
	for i := range d.Behaviors {
		if d.Behaviors[i].StepID == stepID {
			return &d.Behaviors[i]
		}
	}
	return nil
}
