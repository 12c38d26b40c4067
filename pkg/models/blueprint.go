package models

// BehaviorType classifies how a behavior participates in scoring.
type BehaviorType string

// BehaviorType values.
const (
	BehaviorRequired  BehaviorType = "required"
	BehaviorOptional  BehaviorType = "optional"
	BehaviorForbidden BehaviorType = "forbidden"
	BehaviorCritical  BehaviorType = "critical"
)

// DetectionMode selects the matching strategy for a behavior.
type DetectionMode string

// DetectionMode values.
const (
	DetectSemantic    DetectionMode = "semantic"
	DetectExactPhrase DetectionMode = "exact_phrase"
	DetectHybrid      DetectionMode = "hybrid"
)

// CriticalAction is what happens when a critical behavior is violated.
type CriticalAction string

// CriticalAction values.
const (
	CriticalFailStage   CriticalAction = "fail_stage"
	CriticalFailOverall CriticalAction = "fail_overall"
	CriticalFlagOnly    CriticalAction = "flag_only"
)

// BehaviorSnapshot is the immutable authoring form of one behavior, captured
// at publish time inside a BlueprintSnapshot.
type BehaviorSnapshot struct {
	ID             string         `json:"id"`
	Name           string         `json:"behavior_name"`
	Description    string         `json:"description"`
	Type           BehaviorType   `json:"behavior_type"`
	DetectionMode  DetectionMode  `json:"detection_mode"`
	Phrases        []string       `json:"phrases,omitempty"`
	Weight         float64        `json:"weight"`
	CriticalAction CriticalAction `json:"critical_action,omitempty"`
	UIOrder        int            `json:"ui_order"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// StageSnapshot is the immutable authoring form of one stage.
type StageSnapshot struct {
	ID            string             `json:"id"`
	Name          string             `json:"stage_name"`
	OrderingIndex int                `json:"ordering_index"`
	Weight        *float64           `json:"stage_weight,omitempty"`
	Behaviors     []BehaviorSnapshot `json:"behaviors"`
	Metadata      map[string]any     `json:"metadata,omitempty"`
}

// BlueprintSnapshot is the full normalized blueprint captured on publish.
// It is the sole input to the compiler: compiled artifacts never read the
// live (mutable) blueprint rows.
type BlueprintSnapshot struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	VersionNumber int             `json:"version_number"`
	Language      string          `json:"language,omitempty"`
	Stages        []StageSnapshot `json:"stages"`
}

// Documented metadata keys. Anything else in a Metadata map is carried
// verbatim into compiled artifacts but never interpreted.
const (
	MetaKeySpeaker          = "speaker"
	MetaKeyLanguageHint     = "language_hint"
	MetaKeyDurationHint     = "expected_duration_hint"
	MetaKeyTimingRequirement = "timing_requirement"
	MetaKeyExamples         = "examples"
	MetaKeyAllowRawLLM      = "allow_raw_llm"
)

// MetaString returns a documented string key from a metadata map, or "".
func MetaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

// MetaFloat returns a documented numeric key from a metadata map.
func MetaFloat(meta map[string]any, key string) (float64, bool) {
	if meta == nil {
		return 0, false
	}
	switch v := meta[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// MetaBool returns a documented boolean key from a metadata map.
func MetaBool(meta map[string]any, key string) bool {
	if meta == nil {
		return false
	}
	v, _ := meta[key].(bool)
	return v
}
