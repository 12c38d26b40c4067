package models

// StepEvaluation is the per-step judgment inside a stage evaluation.
type StepEvaluation struct {
	StepID    string   `json:"step_id"`
	Passed    bool     `json:"passed"`
	Rationale string   `json:"rationale,omitempty"`
	Evidence  []string `json:"evidence,omitempty"`
}

// StageEvaluation is one stage's judgment, produced either by the LLM stage
// evaluator or by its deterministic fallback.
type StageEvaluation struct {
	StageID           string           `json:"stage_id"`
	StageScore        float64          `json:"stage_score"`
	StepEvaluations   []StepEvaluation `json:"step_evaluations"`
	StageFeedback     []string         `json:"stage_feedback,omitempty"`
	StageConfidence   float64          `json:"stage_confidence"`
	CriticalViolation bool             `json:"critical_violation"`
	Fallback          bool             `json:"fallback,omitempty"`
	PromptHash        string           `json:"prompt_hash,omitempty"`
}

// CategoryScore is one rubric category's aggregated result.
type CategoryScore struct {
	CategoryID    string  `json:"category_id"`
	Name          string  `json:"name"`
	Score         int     `json:"score"`
	Weight        float64 `json:"weight"`
	PassThreshold float64 `json:"pass_threshold"`
	Passed        bool    `json:"passed"`
}

// Violation is a scored rule or behavior violation surfaced in the final
// evaluation document.
type Violation struct {
	RuleID      string        `json:"rule_id,omitempty"`
	StepID      string        `json:"step_id,omitempty"`
	Severity    Severity      `json:"severity"`
	Description string        `json:"description"`
	StartS      float64       `json:"start,omitempty"`
	Evidence    []EvidenceRef `json:"evidence,omitempty"`
}

// StageSummary is a compact per-stage line in the final document.
type StageSummary struct {
	StageID    string  `json:"stage_id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Fallback   bool    `json:"fallback,omitempty"`
}

// ConfidenceBreakdown explains the scalar confidence score.
type ConfidenceBreakdown struct {
	StageMean     float64 `json:"stage_mean"`
	ASRConfidence float64 `json:"asr_confidence"`
	FallbackUsed  bool    `json:"fallback_used"`
}

// FinalEvaluation is the terminal scorecard document.
type FinalEvaluation struct {
	CategoryScores      []CategoryScore     `json:"category_scores"`
	OverallScore        int                 `json:"overall_score"`
	OverallPassed       bool                `json:"overall_passed"`
	Violations          []Violation         `json:"violations"`
	StageSummaries      []StageSummary      `json:"stage_summaries"`
	Explanation         string              `json:"explanation,omitempty"`
	RequiresHumanReview bool                `json:"requires_human_review"`
	ConfidenceScore     float64             `json:"confidence_score"`
	Confidence          ConfidenceBreakdown `json:"confidence_breakdown"`
}

// SandboxResult mirrors an Evaluation without being tied to a Recording.
type SandboxResult struct {
	Deterministic    DeterministicResults `json:"deterministic_results"`
	StageEvaluations []StageEvaluation    `json:"llm_stage_evaluations"`
	Final            FinalEvaluation      `json:"final_evaluation"`
	Usage            SandboxUsage         `json:"usage"`
}

// SandboxUsage carries rough cost/usage estimates for a sandbox run.
type SandboxUsage struct {
	LLMCalls        int `json:"llm_calls"`
	EmbeddingCalls  int `json:"embedding_calls"`
	EmbeddingCached int `json:"embedding_cached"`
	PromptChars     int `json:"prompt_chars"`
}
