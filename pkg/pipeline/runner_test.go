package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/embedding"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/redact"
)

// stageStub answers each stage judge call with a canned response keyed
// by stage name, and records the prompts it saw.
type stageStub struct {
	responses map[string]string
	err       error
	prompts   []string
}

func (s *stageStub) GenerateJSON(_ context.Context, _, userPrompt string, _ *genai.Schema) (string, error) {
	s.prompts = append(s.prompts, userPrompt)
	if s.err != nil {
		return "", s.err
	}
	for name, resp := range s.responses {
		if strings.Contains(userPrompt, "## Stage: "+name) {
			return resp, nil
		}
	}
	return "", fmt.Errorf("no canned response for prompt")
}

func cardFlow() *models.CompiledFlow {
	return &models.CompiledFlow{
		Version: models.CompiledFlowVersion{ID: "fv-1", CompanyID: "co-1"},
		Stages: []models.CompiledFlowStage{
			{ID: "stage-open", FlowVersionID: "fv-1", Name: "Opening", OrderingIndex: 0},
			{ID: "stage-verify", FlowVersionID: "fv-1", Name: "Verification", OrderingIndex: 1},
		},
		Steps: []models.CompiledFlowStep{
			{
				ID: "greet", StageID: "stage-open", FlowVersionID: "fv-1", Name: "Greeting",
				OrderingIndex: 0, ExpectedRole: models.SpeakerAgent,
				ExpectedPhrases: []string{"thank you for calling"},
				DetectionHint:   models.DetectExactPhrase, BehaviorType: models.BehaviorRequired, Weight: 100,
			},
			{
				ID: "verify", StageID: "stage-verify", FlowVersionID: "fv-1", Name: "Identity verification",
				OrderingIndex: 0, ExpectedRole: models.SpeakerAgent,
				ExpectedPhrases: []string{"verify your identity"},
				DetectionHint:   models.DetectExactPhrase, BehaviorType: models.BehaviorCritical,
				CriticalAction:  models.CriticalFailOverall, Weight: 50,
			},
			{
				ID: "no-guarantee", StageID: "stage-verify", FlowVersionID: "fv-1", Name: "No guarantees",
				OrderingIndex: 1, ExpectedRole: models.SpeakerAgent,
				ExpectedPhrases: []string{"i guarantee"},
				DetectionHint:   models.DetectExactPhrase, BehaviorType: models.BehaviorForbidden, Weight: 50,
			},
		},
		Rules: []models.CompiledComplianceRule{
			{
				ID: "rule-greet", FlowVersionID: "fv-1", Type: models.RuleRequiredPhrase,
				TargetStepID: "greet", Phrases: []string{"thank you for calling"},
				MatchMode: models.MatchContains, Severity: models.SeverityMajor,
			},
			{
				ID: "rule-guarantee", FlowVersionID: "fv-1", Type: models.RuleForbiddenPhrase,
				TargetStepID: "no-guarantee", Phrases: []string{"i guarantee"},
				MatchMode: models.MatchContains, Severity: models.SeverityCritical,
				ActionOnFail: models.CriticalFailOverall,
			},
		},
		Rubric: models.CompiledRubricTemplate{
			ID: "rub-1", FlowVersionID: "fv-1",
			Categories: []models.RubricCategory{
				{ID: "cat-open", Name: "Opening", StageID: "stage-open", Weight: 40, PassThreshold: 70},
				{ID: "cat-verify", Name: "Verification", StageID: "stage-verify", Weight: 60, PassThreshold: 70},
			},
			Mappings: []models.RubricMapping{
				{CategoryID: "cat-open", StepID: "greet", ContributionWeight: 40, Required: true},
				{CategoryID: "cat-verify", StepID: "verify", ContributionWeight: 30, Required: true},
				{CategoryID: "cat-verify", StepID: "no-guarantee", ContributionWeight: 30},
			},
		},
	}
}

func cleanTranscript() *models.Transcript {
	segments := []models.Segment{
		{Speaker: models.SpeakerAgent, Text: "Thank you for calling Acme card support, how can I help?", StartS: 0, EndS: 4, Confidence: 0.95},
		{Speaker: models.SpeakerCaller, Text: "Hi, my card was blocked this morning.", StartS: 4, EndS: 8, Confidence: 0.9},
		{Speaker: models.SpeakerAgent, Text: "I first need to verify your identity before we continue.", StartS: 8, EndS: 12, Confidence: 0.92},
		{Speaker: models.SpeakerCaller, Text: "Sure, go ahead.", StartS: 12, EndS: 14, Confidence: 0.9},
		{Speaker: models.SpeakerAgent, Text: "All set, your card is active again.", StartS: 40, EndS: 44, Confidence: 0.93},
	}
	return &models.Transcript{RecordingID: "rec-1", Segments: segments, Confidence: 0.9}
}

func goodResponses() map[string]string {
	return map[string]string{
		"Opening": `{"stage_score": 95, "step_evaluations": [
			{"step_id": "greet", "passed": true, "rationale": "branded greeting in the first utterance"}],
			"stage_feedback": ["clean opening"], "stage_confidence": 0.9, "critical_violation": false}`,
		"Verification": `{"stage_score": 90, "step_evaluations": [
			{"step_id": "verify", "passed": true},
			{"step_id": "no-guarantee", "passed": true}],
			"stage_confidence": 0.85, "critical_violation": false}`,
	}
}

func newTestRunner(t *testing.T, client *stageStub) *Runner {
	t.Helper()

	cfg := config.DefaultPipelineConfig()
	embeddings := embedding.NewService(nil, config.DefaultEmbeddingConfig())
	redactor := redact.NewService(config.DefaultRedactionConfig())

	if client == nil {
		return NewRunner(cfg, embeddings, nil, redactor)
	}
	return NewRunner(cfg, embeddings, client, redactor)
}

func TestRun_HappyPath(t *testing.T) {
	stub := &stageStub{responses: goodResponses()}
	runner := newTestRunner(t, stub)

	res := runner.Run(context.Background(), cardFlow(), cleanTranscript(), nil)

	assert.True(t, res.Final.OverallPassed)
	assert.GreaterOrEqual(t, res.Final.OverallScore, 90)
	assert.False(t, res.Final.RequiresHumanReview)
	assert.Empty(t, res.Final.Violations)

	require.Len(t, res.Stages, 2)
	assert.Equal(t, "stage-open", res.Stages[0].StageID)
	assert.Equal(t, "stage-verify", res.Stages[1].StageID)
	assert.False(t, res.Stages[0].Fallback)
	assert.NotEmpty(t, res.Stages[0].PromptHash)

	for _, outcome := range res.Deterministic.Rules {
		assert.True(t, outcome.Passed, "rule %s", outcome.RuleID)
	}
	assert.Equal(t, 2, res.Usage.LLMCalls)
	assert.Positive(t, res.Usage.PromptChars)
}

func TestRun_StagePromptsScopedToWindow(t *testing.T) {
	stub := &stageStub{responses: goodResponses()}
	runner := newTestRunner(t, stub)

	runner.Run(context.Background(), cardFlow(), cleanTranscript(), nil)

	require.Len(t, stub.prompts, 2)
	assert.Contains(t, stub.prompts[0], "## Stage: Opening")
	assert.Contains(t, stub.prompts[0], "Thank you for calling")
	// The greeting stage's padded window ends well before the wrap-up.
	assert.NotContains(t, stub.prompts[0], "active again")
	assert.Contains(t, stub.prompts[1], "verify your identity")
}

func TestRun_MissingCriticalBehaviorFailsOverall(t *testing.T) {
	stub := &stageStub{responses: map[string]string{
		"Opening": goodResponses()["Opening"],
		"Verification": `{"stage_score": 30, "step_evaluations": [
			{"step_id": "verify", "passed": false, "rationale": "identity never verified"},
			{"step_id": "no-guarantee", "passed": true}],
			"stage_confidence": 0.9, "critical_violation": true}`,
	}}
	runner := newTestRunner(t, stub)

	tr := cleanTranscript()
	// Drop the verification utterance.
	tr.Segments = append(tr.Segments[:2], tr.Segments[3:]...)

	res := runner.Run(context.Background(), cardFlow(), tr, nil)

	assert.False(t, res.Final.OverallPassed)
	verify := res.Deterministic.Detection.ResultForStep("verify")
	require.NotNil(t, verify)
	assert.False(t, verify.Detected)
	assert.True(t, verify.Violation)

	var stepIDs []string
	for _, v := range res.Final.Violations {
		stepIDs = append(stepIDs, v.StepID)
	}
	assert.Contains(t, stepIDs, "verify")
}

func TestRun_ForbiddenPhraseFailsOverall(t *testing.T) {
	stub := &stageStub{responses: map[string]string{
		"Opening": goodResponses()["Opening"],
		"Verification": `{"stage_score": 40, "step_evaluations": [
			{"step_id": "verify", "passed": true},
			{"step_id": "no-guarantee", "passed": false, "rationale": "agent promised a guarantee"}],
			"stage_confidence": 0.9, "critical_violation": true}`,
	}}
	runner := newTestRunner(t, stub)

	tr := cleanTranscript()
	tr.Segments = append(tr.Segments, models.Segment{
		Speaker: models.SpeakerAgent, Text: "I guarantee this will never happen again.",
		StartS: 44, EndS: 47, Confidence: 0.9,
	})

	res := runner.Run(context.Background(), cardFlow(), tr, nil)

	assert.False(t, res.Final.OverallPassed)

	var failedRules []string
	for _, outcome := range res.Deterministic.FailedRules() {
		failedRules = append(failedRules, outcome.RuleID)
	}
	assert.Contains(t, failedRules, "rule-guarantee")
}

func TestRun_LLMFailureDegradesToFallback(t *testing.T) {
	stub := &stageStub{responses: map[string]string{
		"Opening":      `not json at all`,
		"Verification": `not json at all`,
	}}
	runner := newTestRunner(t, stub)

	res := runner.Run(context.Background(), cardFlow(), cleanTranscript(), nil)

	require.Len(t, res.Stages, 2)
	for _, st := range res.Stages {
		assert.True(t, st.Fallback)
		assert.InDelta(t, 0.5, st.StageConfidence, 1e-9)
	}
	// Clean deterministic results keep the scores up even on fallback,
	// but the run is flagged for a human.
	assert.True(t, res.Final.OverallPassed)
	assert.True(t, res.Final.RequiresHumanReview)
	assert.True(t, res.Final.Confidence.FallbackUsed)
}

func TestRun_NoLLMConfigured(t *testing.T) {
	runner := newTestRunner(t, nil)

	res := runner.Run(context.Background(), cardFlow(), cleanTranscript(), nil)

	assert.Equal(t, 0, res.Usage.LLMCalls)
	for _, st := range res.Stages {
		assert.True(t, st.Fallback)
	}
	assert.True(t, res.Final.RequiresHumanReview)
}

func TestRun_RedactsBeforeJudging(t *testing.T) {
	stub := &stageStub{responses: goodResponses()}
	runner := newTestRunner(t, stub)

	tr := cleanTranscript()
	tr.Segments[1].Text = "Hi, my card 4111 1111 1111 1111 was blocked this morning."

	res := runner.Run(context.Background(), cardFlow(), tr, nil)

	for _, prompt := range stub.prompts {
		assert.NotContains(t, prompt, "4111")
	}
	for _, seg := range res.Redacted.Segments {
		assert.NotContains(t, seg.Text, "4111")
	}
}
