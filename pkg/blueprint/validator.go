// Package blueprint turns author-edited blueprints into immutable
// compiled artifacts: validation, lowering to flow/rules/rubric, and
// atomic persistence.
package blueprint

import (
	"fmt"
	"math"
	"strings"

	"github.com/callscope-ai/callscope/pkg/models"
)

// weightTolerance is the accepted drift when stage weights must sum to 100.
const weightTolerance = 0.01

// supportedLanguages is the set of language hints the pipeline has been
// exercised against. Others still compile but draw a warning.
var supportedLanguages = map[string]bool{
	"en": true, "es": true, "fr": true, "de": true, "pt": true, "it": true,
}

// maxPhraseLength bounds a single configured phrase.
const maxPhraseLength = 200

// Issue is a single validation finding.
type Issue struct {
	Check   string `json:"check"`
	Message string `json:"message"`
}

// ValidationResult collects errors and warnings from one validation run.
type ValidationResult struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Valid reports whether the blueprint can be published.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) errorf(check, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Check: check, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(check, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Check: check, Message: fmt.Sprintf(format, args...)})
}

// ValidateOptions tune a validation run.
type ValidateOptions struct {
	// ForceNormalizeWeights waives the weight-sum checks; the caller has
	// asked for normalization instead.
	ForceNormalizeWeights bool
}

// Validate performs the publish-time checks in a fixed order and returns
// every finding; it never stops at the first error.
func Validate(bp *models.BlueprintSnapshot, opts ValidateOptions) *ValidationResult {
	res := &ValidationResult{}

	// 1. Structure: at least one stage, each with at least one behavior.
	if len(bp.Stages) == 0 {
		res.errorf("structure", "blueprint has no stages")
	}
	for _, st := range bp.Stages {
		if len(st.Behaviors) == 0 {
			res.errorf("structure", "stage %q has no behaviors", st.Name)
		}
	}

	// 2. Unique stage names; unique behavior names within each stage.
	stageNames := make(map[string]bool)
	for _, st := range bp.Stages {
		if stageNames[st.Name] {
			res.errorf("unique_names", "duplicate stage name %q", st.Name)
		}
		stageNames[st.Name] = true

		behaviorNames := make(map[string]bool)
		for _, b := range st.Behaviors {
			if behaviorNames[b.Name] {
				res.errorf("unique_names", "stage %q: duplicate behavior name %q", st.Name, b.Name)
			}
			behaviorNames[b.Name] = true
		}
	}

	// 3. Non-negative behavior weights.
	for _, st := range bp.Stages {
		for _, b := range st.Behaviors {
			if b.Weight < 0 {
				res.errorf("weights", "stage %q: behavior %q has negative weight %v", st.Name, b.Name, b.Weight)
			}
		}
	}

	// 4. Stage weights sum to 100 ± tolerance, unless normalization was
	// requested or no stage carries a weight at all (even split later).
	if !opts.ForceNormalizeWeights {
		sum, anySet := stageWeightSum(bp)
		if anySet && math.Abs(sum-100) > weightTolerance {
			res.errorf("stage_weights", "stage weights sum to %v, expected 100 (or force_normalize_weights)", sum)
		}
	}

	// 5. Per-stage behavior weight sums must be positive.
	if !opts.ForceNormalizeWeights {
		for _, st := range bp.Stages {
			sum := 0.0
			for _, b := range st.Behaviors {
				sum += b.Weight
			}
			if len(st.Behaviors) > 0 && sum <= 0 {
				res.errorf("behavior_weights", "stage %q: behavior weights sum to %v, expected > 0 (or force_normalize_weights)", st.Name, sum)
			}
		}
	}

	// 6. Non-semantic detection needs phrases, each within length bounds.
	for _, st := range bp.Stages {
		for _, b := range st.Behaviors {
			if b.DetectionMode == models.DetectSemantic {
				continue
			}
			if len(b.Phrases) == 0 {
				res.errorf("phrases", "stage %q: behavior %q uses %s detection but has no phrases", st.Name, b.Name, b.DetectionMode)
			}
			for _, p := range b.Phrases {
				if len(p) > maxPhraseLength {
					res.errorf("phrases", "stage %q: behavior %q has a phrase longer than %d chars", st.Name, b.Name, maxPhraseLength)
				}
			}
		}
	}

	// 7. Critical behaviors must say what happens on violation.
	for _, st := range bp.Stages {
		for _, b := range st.Behaviors {
			if b.Type == models.BehaviorCritical && b.CriticalAction == "" {
				res.errorf("critical_action", "stage %q: critical behavior %q has no critical_action", st.Name, b.Name)
			}
		}
	}

	// 8. Required and forbidden phrase sets must be disjoint per stage.
	for _, st := range bp.Stages {
		required := make(map[string]string) // normalized phrase → behavior name
		for _, b := range st.Behaviors {
			if b.Type != models.BehaviorRequired && b.Type != models.BehaviorCritical {
				continue
			}
			for _, p := range b.Phrases {
				required[normalizePhrase(p)] = b.Name
			}
		}
		for _, b := range st.Behaviors {
			if b.Type != models.BehaviorForbidden {
				continue
			}
			for _, p := range b.Phrases {
				if owner, ok := required[normalizePhrase(p)]; ok {
					res.errorf("phrase_conflict", "stage %q: phrase %q is both required (behavior %q) and forbidden (behavior %q)", st.Name, p, owner, b.Name)
				}
			}
		}
	}

	// 9. Phrases duplicated across behaviors within a stage.
	for _, st := range bp.Stages {
		seen := make(map[string]string)
		for _, b := range st.Behaviors {
			for _, p := range b.Phrases {
				key := normalizePhrase(p)
				if owner, ok := seen[key]; ok && owner != b.Name {
					res.warnf("duplicate_phrases", "stage %q: phrase %q appears in behaviors %q and %q", st.Name, p, owner, b.Name)
				} else {
					seen[key] = b.Name
				}
			}
		}
	}

	// 10. Unknown language hints.
	if bp.Language != "" && !supportedLanguages[strings.ToLower(bp.Language)] {
		res.warnf("language", "language hint %q is outside the supported set; semantic detection quality is unverified", bp.Language)
	}

	return res
}

// stageWeightSum sums explicit stage weights. anySet is false when no
// stage carries a weight, which means even distribution downstream.
func stageWeightSum(bp *models.BlueprintSnapshot) (sum float64, anySet bool) {
	for _, st := range bp.Stages {
		if st.Weight != nil {
			sum += *st.Weight
			anySet = true
		}
	}
	return sum, anySet
}

// normalizePhrase lowercases and collapses whitespace for comparisons.
func normalizePhrase(p string) string {
	return strings.Join(strings.Fields(strings.ToLower(p)), " ")
}

// NormalizeWeights returns a copy of the blueprint with stage weights
// scaled to sum to 100 and behavior weights within each stage scaled to
// sum to that stage's weight. Zero sums distribute evenly.
func NormalizeWeights(bp *models.BlueprintSnapshot) *models.BlueprintSnapshot {
	out := *bp
	out.Stages = make([]models.StageSnapshot, len(bp.Stages))
	copy(out.Stages, bp.Stages)

	if len(out.Stages) == 0 {
		return &out
	}

	sum, anySet := stageWeightSum(bp)
	for i := range out.Stages {
		var w float64
		switch {
		case !anySet || sum <= 0:
			w = 100 / float64(len(out.Stages))
		case out.Stages[i].Weight == nil:
			w = 0
		default:
			w = *out.Stages[i].Weight * 100 / sum
		}
		out.Stages[i].Weight = &w

		out.Stages[i].Behaviors = normalizeBehaviors(bp.Stages[i].Behaviors, w)
	}

	return &out
}

func normalizeBehaviors(behaviors []models.BehaviorSnapshot, stageWeight float64) []models.BehaviorSnapshot {
	out := make([]models.BehaviorSnapshot, len(behaviors))
	copy(out, behaviors)
	if len(out) == 0 {
		return out
	}

	sum := 0.0
	for _, b := range out {
		sum += b.Weight
	}

	for i := range out {
		if sum <= 0 {
			out[i].Weight = stageWeight / float64(len(out))
		} else {
			out[i].Weight = out[i].Weight * stageWeight / sum
		}
	}
	return out
}
