// Package scoring folds detection output, rule outcomes, and stage
// judgments through the compiled rubric into the final scorecard.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Confidence blend weights for the scalar confidence score.
const (
	stageConfidenceWeight = 0.8
	asrConfidenceWeight   = 0.2
)

// Scorer computes the final evaluation document. Pure: no I/O, no clock.
type Scorer struct {
	cfg *config.PipelineConfig
}

// NewScorer creates a rubric scorer.
func NewScorer(cfg *config.PipelineConfig) *Scorer {
	if cfg == nil {
		panic("pipeline configuration is required for Scorer")
	}
	return &Scorer{cfg: cfg}
}

// Input is everything one scoring pass reads.
type Input struct {
	Flow          *models.CompiledFlow
	Deterministic *models.DeterministicResults
	// Stages are the judge outputs (LLM or fallback), one per stage in
	// ordering_index order.
	Stages        []models.StageEvaluation
	ASRConfidence float64
}

// Score produces the final evaluation.
func (s *Scorer) Score(in Input) models.FinalEvaluation {
	final := models.FinalEvaluation{}

	stageEvalByID := make(map[string]*models.StageEvaluation, len(in.Stages))
	for i := range in.Stages {
		stageEvalByID[in.Stages[i].StageID] = &in.Stages[i]
	}

	// fail_stage overrides force the target step's category to fail
	// regardless of its numeric score.
	forcedFailStages, failOverall := s.criticalOverrides(in)

	for _, cat := range in.Flow.Rubric.Categories {
		score := s.categoryScore(in, cat, stageEvalByID)
		passed := float64(score) >= cat.PassThreshold
		if forcedFailStages[cat.StageID] {
			passed = false
		}
		final.CategoryScores = append(final.CategoryScores, models.CategoryScore{
			CategoryID:    cat.ID,
			Name:          cat.Name,
			Score:         score,
			Weight:        cat.Weight,
			PassThreshold: cat.PassThreshold,
			Passed:        passed,
		})
	}

	overall := 0.0
	for _, cs := range final.CategoryScores {
		overall += float64(cs.Score) * cs.Weight / 100
	}
	final.OverallScore = clampInt(int(math.Round(overall)), 0, 100)

	final.OverallPassed = !failOverall
	for _, cs := range final.CategoryScores {
		if !cs.Passed {
			final.OverallPassed = false
		}
	}

	final.Violations = s.collectViolations(in)
	final.StageSummaries = s.stageSummaries(in)

	fallbackUsed := false
	for _, se := range in.Stages {
		if se.Fallback {
			fallbackUsed = true
		}
	}

	stageMean := meanStageConfidence(in.Stages)
	confidence := stageConfidenceWeight*stageMean + asrConfidenceWeight*in.ASRConfidence
	if len(in.Stages) == 0 {
		confidence = in.ASRConfidence
	}
	final.ConfidenceScore = clamp01(confidence)
	final.Confidence = models.ConfidenceBreakdown{
		StageMean:     stageMean,
		ASRConfidence: in.ASRConfidence,
		FallbackUsed:  fallbackUsed,
	}

	final.RequiresHumanReview = s.requiresReview(final, in.Stages, fallbackUsed)
	final.Explanation = s.explain(final)

	return final
}

// categoryScore sums the category's step verdicts under normalized
// contribution weights. A step's verdict comes from the stage judgment
// when available, otherwise from detection.
func (s *Scorer) categoryScore(in Input, cat models.RubricCategory, stageEvals map[string]*models.StageEvaluation) int {
	var mappings []models.RubricMapping
	totalWeight := 0.0
	for _, m := range in.Flow.Rubric.Mappings {
		if m.CategoryID != cat.ID {
			continue
		}
		mappings = append(mappings, m)
		totalWeight += m.ContributionWeight
	}
	if len(mappings) == 0 {
		return 0
	}

	score := 0.0
	for _, m := range mappings {
		weight := m.ContributionWeight / totalWeight
		if totalWeight <= 0 {
			weight = 1 / float64(len(mappings))
		}
		if s.stepPassed(in, cat.StageID, m.StepID, stageEvals) {
			score += 100 * weight
		}
	}
	return clampInt(int(math.Round(score)), 0, 100)
}

func (s *Scorer) stepPassed(in Input, stageID, stepID string, stageEvals map[string]*models.StageEvaluation) bool {
	if se, ok := stageEvals[stageID]; ok {
		for _, step := range se.StepEvaluations {
			if step.StepID == stepID {
				return step.Passed
			}
		}
	}

	// No judgment for this step: fall back to raw detection.
	res := in.Deterministic.Detection.ResultForStep(stepID)
	if res == nil {
		return false
	}
	if sp := in.Flow.StepByID(stepID); sp != nil && sp.BehaviorType == models.BehaviorForbidden {
		return !res.Detected
	}
	return res.Detected
}

// criticalOverrides resolves critical actions: fail_stage marks its
// category forced-failed, fail_overall sinks the whole evaluation, and
// flag_only surfaces as a violation without a score effect.
func (s *Scorer) criticalOverrides(in Input) (map[string]bool, bool) {
	forced := make(map[string]bool)
	failOverall := false

	apply := func(action models.CriticalAction, stageID string) {
		switch action {
		case models.CriticalFailOverall:
			failOverall = true
		case models.CriticalFailStage:
			if stageID != "" {
				forced[stageID] = true
			}
		}
	}

	for _, r := range in.Deterministic.Rules {
		if r.Passed {
			continue
		}
		if r.Severity == models.SeverityCritical {
			failOverall = true
		}
		stageID := ""
		if sp := in.Flow.StepByID(r.TargetStepID); sp != nil {
			stageID = sp.StageID
		}
		apply(r.ActionOnFail, stageID)
	}

	for _, b := range in.Deterministic.Detection.Behaviors {
		if !b.Violation {
			continue
		}
		apply(b.CriticalAction, b.StageID)
	}

	return forced, failOverall
}

func (s *Scorer) collectViolations(in Input) []models.Violation {
	var out []models.Violation

	for _, r := range in.Deterministic.Rules {
		if r.Passed {
			continue
		}
		v := models.Violation{
			RuleID:      r.RuleID,
			StepID:      r.TargetStepID,
			Severity:    r.Severity,
			Description: r.Detail,
			Evidence:    r.Evidence,
		}
		if v.Description == "" {
			v.Description = fmt.Sprintf("%s rule failed", r.Type)
		}
		if len(r.Evidence) > 0 {
			v.StartS = r.Evidence[0].StartS
		}
		out = append(out, v)
	}

	// Behavior violations without a matching rule (e.g. optional flows)
	// still surface; rule-backed ones are already listed.
	ruled := make(map[string]bool)
	for _, r := range in.Deterministic.Rules {
		if !r.Passed && r.TargetStepID != "" {
			ruled[r.TargetStepID] = true
		}
	}
	for _, b := range in.Deterministic.Detection.Behaviors {
		if !b.Violation || ruled[b.StepID] {
			continue
		}
		severity := models.SeverityMajor
		if b.CriticalAction != "" {
			severity = models.SeverityCritical
		}
		desc := "required behavior was not detected"
		if b.Detected {
			desc = "forbidden behavior was detected"
		}
		out = append(out, models.Violation{
			StepID:      b.StepID,
			Severity:    severity,
			Description: desc,
			StartS:      b.StartS,
		})
	}

	return out
}

func (s *Scorer) stageSummaries(in Input) []models.StageSummary {
	var out []models.StageSummary
	for _, se := range in.Stages {
		name := se.StageID
		if st := in.Flow.StageByID(se.StageID); st != nil {
			name = st.Name
		}
		out = append(out, models.StageSummary{
			StageID:    se.StageID,
			Name:       name,
			Score:      se.StageScore,
			Confidence: se.StageConfidence,
			Fallback:   se.Fallback,
		})
	}
	return out
}

// requiresReview routes low-confidence or borderline evaluations to a
// human: any stage under the confidence floor, an overall score inside
// the band around the pass threshold, or any fallback-scored stage.
func (s *Scorer) requiresReview(final models.FinalEvaluation, stages []models.StageEvaluation, fallbackUsed bool) bool {
	if fallbackUsed {
		return true
	}
	for _, se := range stages {
		if se.StageConfidence < s.cfg.ReviewConfidenceFloor {
			return true
		}
	}
	band := float64(s.cfg.ReviewBandWidth)
	return math.Abs(float64(final.OverallScore-s.cfg.DefaultPassThreshold)) <= band
}

func (s *Scorer) explain(final models.FinalEvaluation) string {
	verdict := "failed"
	if final.OverallPassed {
		verdict = "passed"
	}
	var failed []string
	for _, cs := range final.CategoryScores {
		if !cs.Passed {
			failed = append(failed, cs.Name)
		}
	}
	msg := fmt.Sprintf("Call %s with an overall score of %d.", verdict, final.OverallScore)
	if len(failed) > 0 {
		msg += fmt.Sprintf(" Categories below threshold: %s.", strings.Join(failed, ", "))
	}
	if len(final.Violations) > 0 {
		msg += fmt.Sprintf(" %d violation(s) recorded.", len(final.Violations))
	}
	return msg
}

func meanStageConfidence(stages []models.StageEvaluation) float64 {
	if len(stages) == 0 {
		return 0
	}
	sum := 0.0
	for _, se := range stages {
		sum += se.StageConfidence
	}
	return sum / float64(len(stages))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
