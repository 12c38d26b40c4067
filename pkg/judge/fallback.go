package judge

import (
	"fmt"

	"github.com/callscope-ai/callscope/pkg/models"
)

// Fallback penalty schedule, applied to a base score of 100.
const (
	penaltyMissingRequired = 20
	penaltyMajor           = 40
	penaltyMinor           = 10
	penaltyTiming          = 10
	discretionaryCap       = 10
	discretionaryPerStep   = 5
	fallbackConfidence     = 0.5
)

// fallback synthesizes a stage evaluation from rule outcomes and
// detection results alone. Same inputs, same result.
func (e *Evaluator) fallback(in StageInput, reason string) models.StageEvaluation {
	ev := models.StageEvaluation{
		StageID:         in.Stage.ID,
		StageConfidence: fallbackConfidence,
		Fallback:        true,
		StageFeedback: []string{
			fmt.Sprintf("deterministic fallback (%s): score derived from rule outcomes", reason),
		},
	}

	score := 100.0
	critical := false

	// Failed rules carry their own penalty; a step whose absence is
	// already a failed rule is not penalized twice.
	penalizedSteps := make(map[string]bool)
	for _, r := range in.Rules {
		if r.Passed {
			continue
		}
		switch {
		case r.Type == models.RuleTiming:
			score -= penaltyTiming
		case r.Severity == models.SeverityMinor:
			score -= penaltyMinor
		default:
			score -= penaltyMajor
		}
		if r.TargetStepID != "" {
			penalizedSteps[r.TargetStepID] = true
		}
		if r.Severity == models.SeverityCritical || r.ActionOnFail == models.CriticalFailOverall || r.ActionOnFail == models.CriticalFailStage {
			critical = true
		}
	}

	discretionary := 0.0
	for _, sp := range in.Steps {
		passed := stepPassedByDetection(in.Detection, sp)

		rationale := "detected in the call"
		if !passed {
			switch sp.BehaviorType {
			case models.BehaviorForbidden:
				rationale = "forbidden behavior occurred"
			default:
				rationale = "expected behavior was not detected"
			}
		}
		ev.StepEvaluations = append(ev.StepEvaluations, models.StepEvaluation{
			StepID:    sp.ID,
			Passed:    passed,
			Rationale: rationale,
		})

		switch sp.BehaviorType {
		case models.BehaviorRequired, models.BehaviorCritical:
			if !passed && !penalizedSteps[sp.ID] {
				score -= penaltyMissingRequired
			}
			if !passed && sp.BehaviorType == models.BehaviorCritical {
				critical = true
			}
		case models.BehaviorOptional:
			// Optional steps that did happen earn the capped
			// discretionary bonus.
			if passed {
				discretionary = min(discretionary+discretionaryPerStep, discretionaryCap)
			}
		case models.BehaviorForbidden:
			if !passed && sp.CriticalAction != "" {
				critical = true
			}
		}
	}

	score += discretionary
	ev.StageScore = clampScore(score)
	ev.CriticalViolation = critical
	return ev
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
