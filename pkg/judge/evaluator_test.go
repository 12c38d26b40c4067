package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

type stubClient struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (s *stubClient) GenerateJSON(_ context.Context, _, user string, _ *genai.Schema) (string, error) {
	s.calls++
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testStageInput() StageInput {
	return StageInput{
		Stage: models.CompiledFlowStage{ID: "stage-1", Name: "Verification", OrderingIndex: 0},
		Steps: []models.CompiledFlowStep{
			{ID: "step-1", StageID: "stage-1", Name: "ask for date of birth",
				BehaviorType: models.BehaviorRequired, ExpectedRole: models.SpeakerAgent},
			{ID: "step-2", StageID: "stage-1", Name: "offer callback",
				BehaviorType: models.BehaviorOptional, ExpectedRole: models.SpeakerAgent},
		},
		Segments: []models.Segment{
			{Speaker: models.SpeakerAgent, Text: "Can I have your date of birth?", StartS: 9, EndS: 11, Confidence: 0.9},
		},
		Detection: &models.DetectionOutput{Behaviors: []models.BehaviorResult{
			{StepID: "step-1", Detected: true, SegmentIndex: 0, StartS: 9, EndS: 11},
			{StepID: "step-2", Detected: false, SegmentIndex: -1},
		}},
		Rules: []models.RuleOutcome{
			{RuleID: "r-1", Type: models.RuleRequiredStep, TargetStepID: "step-1",
				Passed: true, Severity: models.SeverityCritical},
		},
	}
}

func TestEvaluateStage_ValidResponse(t *testing.T) {
	client := &stubClient{response: `{
		"stage_score": 85,
		"step_evaluations": [
			{"step_id": "step-1", "passed": true, "rationale": "asked for date of birth", "evidence": ["Can I have your date of birth?"]}
		],
		"stage_feedback": ["verification was thorough"],
		"stage_confidence": 0.9,
		"critical_violation": false
	}`}
	evaluator := NewEvaluator(client, config.DefaultPipelineConfig())

	ev := evaluator.EvaluateStage(context.Background(), testStageInput())

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "stage-1", ev.StageID)
	assert.Equal(t, 85.0, ev.StageScore)
	assert.Equal(t, 0.9, ev.StageConfidence)
	assert.False(t, ev.Fallback)
	assert.NotEmpty(t, ev.PromptHash)

	// The skipped optional step is backfilled from detection.
	require.Len(t, ev.StepEvaluations, 2)
	assert.Equal(t, "step-2", ev.StepEvaluations[1].StepID)
	assert.False(t, ev.StepEvaluations[1].Passed)
}

func TestEvaluateStage_ProviderErrorFallsBack(t *testing.T) {
	client := &stubClient{err: errors.New("rate limited")}
	evaluator := NewEvaluator(client, config.DefaultPipelineConfig())

	ev := evaluator.EvaluateStage(context.Background(), testStageInput())

	assert.True(t, ev.Fallback)
	assert.Equal(t, fallbackConfidence, ev.StageConfidence)
	assert.NotEmpty(t, ev.PromptHash)
}

func TestEvaluateStage_NilClientFallsBack(t *testing.T) {
	evaluator := NewEvaluator(nil, config.DefaultPipelineConfig())

	ev := evaluator.EvaluateStage(context.Background(), testStageInput())

	assert.True(t, ev.Fallback)
	assert.Equal(t, 100.0, ev.StageScore)
}

func TestEvaluateStage_PromptHashIsDeterministic(t *testing.T) {
	evaluator := NewEvaluator(nil, config.DefaultPipelineConfig())

	a := evaluator.EvaluateStage(context.Background(), testStageInput())
	b := evaluator.EvaluateStage(context.Background(), testStageInput())
	assert.Equal(t, a.PromptHash, b.PromptHash)

	in := testStageInput()
	in.Segments[0].Text = "something else entirely"
	c := evaluator.EvaluateStage(context.Background(), in)
	assert.NotEqual(t, a.PromptHash, c.PromptHash)
}

func TestParseResponse_Rejections(t *testing.T) {
	in := testStageInput()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `stage looks fine to me`},
		{"unknown field", `{"stage_score": 80, "step_evaluations": [], "stage_confidence": 0.8, "critical_violation": false, "extra": 1}`},
		{"score out of range", `{"stage_score": 140, "step_evaluations": [], "stage_confidence": 0.8, "critical_violation": false}`},
		{"confidence out of range", `{"stage_score": 80, "step_evaluations": [], "stage_confidence": 1.4, "critical_violation": false}`},
		{"unknown step id", `{"stage_score": 80, "step_evaluations": [{"step_id": "step-99", "passed": true}], "stage_confidence": 0.8, "critical_violation": false}`},
		{"duplicate step id", `{"stage_score": 80, "step_evaluations": [{"step_id": "step-1", "passed": true}, {"step_id": "step-1", "passed": false}], "stage_confidence": 0.8, "critical_violation": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseResponse(tt.raw, in)
			assert.Error(t, err)
		})
	}
}

func TestFallback_PenaltyMath(t *testing.T) {
	evaluator := NewEvaluator(nil, config.DefaultPipelineConfig())

	t.Run("perfect stage scores 100", func(t *testing.T) {
		ev := evaluator.fallback(testStageInput(), "test")
		assert.Equal(t, 100.0, ev.StageScore)
		assert.False(t, ev.CriticalViolation)
	})

	t.Run("missing required step without a rule", func(t *testing.T) {
		in := testStageInput()
		in.Detection.Behaviors[0].Detected = false
		in.Rules = nil

		ev := evaluator.fallback(in, "test")
		assert.Equal(t, 80.0, ev.StageScore)
		assert.False(t, ev.StepEvaluations[0].Passed)
	})

	t.Run("failed rule absorbs the step penalty", func(t *testing.T) {
		in := testStageInput()
		in.Detection.Behaviors[0].Detected = false
		in.Rules = []models.RuleOutcome{{
			RuleID: "r-1", Type: models.RuleRequiredStep, TargetStepID: "step-1",
			Passed: false, Severity: models.SeverityMajor,
		}}

		// -40 for the major rule, no extra -20 for the same step.
		ev := evaluator.fallback(in, "test")
		assert.Equal(t, 60.0, ev.StageScore)
	})

	t.Run("timing and minor penalties", func(t *testing.T) {
		in := testStageInput()
		in.Rules = []models.RuleOutcome{
			{RuleID: "r-1", Type: models.RuleTiming, TargetStepID: "step-1",
				Passed: false, Severity: models.SeverityMinor},
			{RuleID: "r-2", Type: models.RuleRequiredPhrase,
				Passed: false, Severity: models.SeverityMinor},
		}

		ev := evaluator.fallback(in, "test")
		assert.Equal(t, 80.0, ev.StageScore)
	})

	t.Run("detected optional step earns discretionary bonus after penalties", func(t *testing.T) {
		in := testStageInput()
		in.Detection.Behaviors[1].Detected = true
		in.Rules = []models.RuleOutcome{{
			RuleID: "r-1", Type: models.RuleRequiredPhrase, Passed: false, Severity: models.SeverityMajor,
		}}

		// 100 - 40 + 5.
		ev := evaluator.fallback(in, "test")
		assert.Equal(t, 65.0, ev.StageScore)
	})

	t.Run("score clamps at zero", func(t *testing.T) {
		in := testStageInput()
		in.Rules = []models.RuleOutcome{
			{RuleID: "r-1", Passed: false, Severity: models.SeverityMajor, Type: models.RuleRequiredPhrase},
			{RuleID: "r-2", Passed: false, Severity: models.SeverityMajor, Type: models.RuleRequiredPhrase},
			{RuleID: "r-3", Passed: false, Severity: models.SeverityMajor, Type: models.RuleForbiddenPhrase},
		}

		ev := evaluator.fallback(in, "test")
		assert.Equal(t, 0.0, ev.StageScore)
	})

	t.Run("critical rule failure sets the flag", func(t *testing.T) {
		in := testStageInput()
		in.Rules = []models.RuleOutcome{{
			RuleID: "r-1", Type: models.RuleRequiredStep, TargetStepID: "step-1",
			Passed: false, Severity: models.SeverityCritical, ActionOnFail: models.CriticalFailOverall,
		}}

		ev := evaluator.fallback(in, "test")
		assert.True(t, ev.CriticalViolation)
	})

	t.Run("undetected critical behavior sets the flag", func(t *testing.T) {
		in := testStageInput()
		in.Steps[0].BehaviorType = models.BehaviorCritical
		in.Detection.Behaviors[0].Detected = false
		in.Rules = nil

		ev := evaluator.fallback(in, "test")
		assert.True(t, ev.CriticalViolation)
	})
}
