package judge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/callscope-ai/callscope/pkg/models"
)

type stageResponse struct {
	StageScore        float64            `json:"stage_score"`
	StepEvaluations   []stepEvaluation   `json:"step_evaluations"`
	StageFeedback     []string           `json:"stage_feedback"`
	StageConfidence   float64            `json:"stage_confidence"`
	CriticalViolation bool               `json:"critical_violation"`
}

type stepEvaluation struct {
	StepID    string   `json:"step_id"`
	Passed    bool     `json:"passed"`
	Rationale string   `json:"rationale"`
	Evidence  []string `json:"evidence"`
}

// parseResponse decodes and validates a judge completion. Anything the
// schema should have prevented is treated as a validation failure so the
// caller falls back deterministically.
func parseResponse(raw string, in StageInput) (models.StageEvaluation, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var resp stageResponse
	if err := dec.Decode(&resp); err != nil {
		return models.StageEvaluation{}, fmt.Errorf("invalid judge JSON: %w", err)
	}

	if resp.StageScore < 0 || resp.StageScore > 100 {
		return models.StageEvaluation{}, fmt.Errorf("stage_score %v out of range [0,100]", resp.StageScore)
	}
	if resp.StageConfidence < 0 || resp.StageConfidence > 1 {
		return models.StageEvaluation{}, fmt.Errorf("stage_confidence %v out of range [0,1]", resp.StageConfidence)
	}

	known := make(map[string]bool, len(in.Steps))
	for _, sp := range in.Steps {
		known[sp.ID] = true
	}
	seen := make(map[string]bool, len(resp.StepEvaluations))
	for _, se := range resp.StepEvaluations {
		if !known[se.StepID] {
			return models.StageEvaluation{}, fmt.Errorf("step_evaluations references unknown step %q", se.StepID)
		}
		if seen[se.StepID] {
			return models.StageEvaluation{}, fmt.Errorf("step_evaluations repeats step %q", se.StepID)
		}
		seen[se.StepID] = true
	}

	ev := models.StageEvaluation{
		StageID:           in.Stage.ID,
		StageScore:        resp.StageScore,
		StageFeedback:     resp.StageFeedback,
		StageConfidence:   resp.StageConfidence,
		CriticalViolation: resp.CriticalViolation,
	}
	for _, se := range resp.StepEvaluations {
		ev.StepEvaluations = append(ev.StepEvaluations, models.StepEvaluation{
			StepID:    se.StepID,
			Passed:    se.Passed,
			Rationale: se.Rationale,
			Evidence:  se.Evidence,
		})
	}

	// Steps the model skipped mirror the deterministic detection result,
	// so downstream scoring always sees full coverage.
	for _, sp := range in.Steps {
		if seen[sp.ID] {
			continue
		}
		ev.StepEvaluations = append(ev.StepEvaluations, models.StepEvaluation{
			StepID:    sp.ID,
			Passed:    stepPassedByDetection(in.Detection, sp),
			Rationale: "not judged by the model; mirrors detection",
		})
	}

	return ev, nil
}

// stepPassedByDetection converts a detection result into a pass verdict:
// forbidden steps pass when absent, everything else passes when present.
func stepPassedByDetection(det *models.DetectionOutput, sp models.CompiledFlowStep) bool {
	detected := false
	if det != nil {
		if res := det.ResultForStep(sp.ID); res != nil {
			detected = res.Detected
		}
	}
	if sp.BehaviorType == models.BehaviorForbidden {
		return !detected
	}
	return detected
}
