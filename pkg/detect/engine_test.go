package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/embedding"
	"github.com/callscope-ai/callscope/pkg/models"
)

func newTestEngine() *Engine {
	embCfg := config.DefaultEmbeddingConfig()
	embCfg.Dimensions = 128
	return NewEngine(embedding.NewService(nil, embCfg), config.DefaultPipelineConfig())
}

func testFlow(steps ...models.CompiledFlowStep) *models.CompiledFlow {
	flow := &models.CompiledFlow{
		Version: models.CompiledFlowVersion{ID: "fv-1", CompanyID: "co-1"},
		Stages: []models.CompiledFlowStage{
			{ID: "stage-1", FlowVersionID: "fv-1", Name: "Greeting", OrderingIndex: 0},
		},
		Steps: steps,
	}
	return flow
}

func agentSeg(text string, start, end, conf float64) models.Segment {
	return models.Segment{Speaker: models.SpeakerAgent, Text: text, StartS: start, EndS: end, Confidence: conf}
}

func callerSeg(text string, start, end, conf float64) models.Segment {
	return models.Segment{Speaker: models.SpeakerCaller, Text: text, StartS: start, EndS: end, Confidence: conf}
}

func TestDetect_ExactMatch(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "greet caller",
		ExpectedRole:    models.SpeakerAgent,
		ExpectedPhrases: []string{"thank you for calling"},
		DetectionHint:   models.DetectExactPhrase,
		BehaviorType:    models.BehaviorRequired,
	})
	tr := &models.Transcript{Segments: []models.Segment{
		callerSeg("hello", 0, 1, 0.9),
		agentSeg("Thank  You for CALLING support, how can I help", 1.5, 4, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	require.Len(t, out.Behaviors, 1)
	b := out.Behaviors[0]
	assert.True(t, b.Detected)
	assert.Equal(t, models.MatchTypeExact, b.MatchType)
	assert.Equal(t, 1, b.SegmentIndex)
	assert.Equal(t, 1.5, b.StartS)
	assert.False(t, b.Violation)
	// 0.7 detector + 0.3 ASR.
	assert.InDelta(t, 0.7*1.0+0.3*0.9, b.Confidence, 1e-9)
	assert.False(t, out.EmbeddingFallback)
}

func TestDetect_RoleFilter(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "greet caller",
		ExpectedRole:    models.SpeakerAgent,
		ExpectedPhrases: []string{"thank you for calling"},
		DetectionHint:   models.DetectExactPhrase,
		BehaviorType:    models.BehaviorRequired,
	})
	// The phrase only occurs on the caller side.
	tr := &models.Transcript{Segments: []models.Segment{
		callerSeg("thank you for calling me back", 0, 2, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	assert.False(t, out.Behaviors[0].Detected)
	assert.True(t, out.Behaviors[0].Violation)
	assert.Equal(t, -1, out.Behaviors[0].SegmentIndex)
}

func TestDetect_ForbiddenDetectedIsViolation(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "no guarantees",
		ExpectedRole:    models.SpeakerAgent,
		ExpectedPhrases: []string{"i guarantee"},
		DetectionHint:   models.DetectExactPhrase,
		BehaviorType:    models.BehaviorForbidden,
		CriticalAction:  models.CriticalFlagOnly,
	})
	tr := &models.Transcript{Segments: []models.Segment{
		agentSeg("I guarantee this will never happen again", 10, 13, 0.8),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	b := out.Behaviors[0]
	assert.True(t, b.Detected)
	assert.True(t, b.Violation)
	assert.Equal(t, models.CriticalFlagOnly, b.CriticalAction)
}

func TestDetect_SemanticMatch(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "cancellation intent",
		Description:   "caller asks to cancel the subscription",
		ExpectedRole:  models.SpeakerCaller,
		DetectionHint: models.DetectSemantic,
		BehaviorType:  models.BehaviorRequired,
	})
	tr := &models.Transcript{Segments: []models.Segment{
		// Near-identical wording scores close to 1 even on the fallback
		// embedder; unrelated text stays near 0.5.
		callerSeg("caller asks to cancel the subscription", 5, 8, 0.9),
		callerSeg("the weather is lovely today", 9, 11, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	b := out.Behaviors[0]
	require.True(t, b.Detected)
	assert.Equal(t, models.MatchTypeSemantic, b.MatchType)
	assert.Equal(t, 0, b.SegmentIndex)
	// Provider is nil, so semantic matching ran on the fallback path.
	assert.True(t, out.EmbeddingFallback)
}

func TestDetect_SemanticBelowThreshold(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "cancellation intent",
		Description:   "caller asks to cancel the subscription",
		ExpectedRole:  models.SpeakerCaller,
		DetectionHint: models.DetectSemantic,
		BehaviorType:  models.BehaviorRequired,
	})
	tr := &models.Transcript{Segments: []models.Segment{
		callerSeg("what time do you open on weekends", 5, 8, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	assert.False(t, out.Behaviors[0].Detected)
	assert.Equal(t, models.MatchTypeNone, out.Behaviors[0].MatchType)
}

func TestDetect_HybridPrefersExact(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "identity check",
		Description:     "agent verifies the caller's identity",
		ExpectedRole:    models.SpeakerAgent,
		ExpectedPhrases: []string{"verify your identity"},
		DetectionHint:   models.DetectHybrid,
		BehaviorType:    models.BehaviorRequired,
	})
	tr := &models.Transcript{Segments: []models.Segment{
		agentSeg("let me verify your identity first", 3, 6, 0.95),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	b := out.Behaviors[0]
	assert.True(t, b.Detected)
	assert.Equal(t, models.MatchTypeExact, b.MatchType)
	assert.InDelta(t, 0.7+0.3*0.95, b.Confidence, 1e-9)
	// Exact matched everywhere, so the embedder was never consulted.
	assert.False(t, out.EmbeddingFallback)
}

func TestDetect_TieBreakEarliestUtterance(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "greet caller",
		ExpectedRole:    models.SpeakerAgent,
		ExpectedPhrases: []string{"thank you for calling"},
		DetectionHint:   models.DetectExactPhrase,
		BehaviorType:    models.BehaviorRequired,
	})
	tr := &models.Transcript{Segments: []models.Segment{
		agentSeg("thank you for calling", 2, 4, 0.9),
		agentSeg("thank you for calling again", 50, 53, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	assert.Equal(t, 0, out.Behaviors[0].SegmentIndex)
	assert.Equal(t, 2.0, out.Behaviors[0].StartS)
}

func TestDetect_ResultOrderIsDeterministic(t *testing.T) {
	engine := newTestEngine()
	flow := &models.CompiledFlow{
		Version: models.CompiledFlowVersion{ID: "fv-1"},
		Stages: []models.CompiledFlowStage{
			{ID: "stage-b", FlowVersionID: "fv-1", Name: "Second", OrderingIndex: 1},
			{ID: "stage-a", FlowVersionID: "fv-1", Name: "First", OrderingIndex: 0},
		},
		Steps: []models.CompiledFlowStep{
			{ID: "step-z", StageID: "stage-b", Name: "late", OrderingIndex: 0,
				ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"goodbye"},
				DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired},
			{ID: "step-b", StageID: "stage-a", Name: "second of first", OrderingIndex: 1,
				ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"verify"},
				DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired},
			{ID: "step-a", StageID: "stage-a", Name: "first of first", OrderingIndex: 0,
				ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"hello"},
				DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired},
		},
	}
	tr := &models.Transcript{Segments: []models.Segment{
		agentSeg("hello, let me verify that, goodbye", 0, 5, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	require.Len(t, out.Behaviors, 3)
	assert.Equal(t, "step-a", out.Behaviors[0].StepID)
	assert.Equal(t, "step-b", out.Behaviors[1].StepID)
	assert.Equal(t, "step-z", out.Behaviors[2].StepID)
}

func TestDetect_TimingOutOfWindow(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "greet caller",
		ExpectedRole:    models.SpeakerAgent,
		ExpectedPhrases: []string{"thank you for calling"},
		DetectionHint:   models.DetectExactPhrase,
		BehaviorType:    models.BehaviorRequired,
	})
	flow.Rules = []models.CompiledComplianceRule{{
		ID: "rule-1", FlowVersionID: "fv-1", Type: models.RuleTiming,
		TargetStepID: "step-1", Severity: models.SeverityMinor,
		Timing: &models.TimingConstraints{WithinSeconds: 10, Reference: models.TimingFromCallStart},
	}}
	tr := &models.Transcript{Segments: []models.Segment{
		agentSeg("thank you for calling", 45, 48, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	b := out.Behaviors[0]
	assert.True(t, b.Detected)
	assert.True(t, b.OutOfWindow)
	// Out-of-window is a downgrade, not an undetection.
	assert.False(t, b.Violation)
}

func TestDetect_TimingPreviousStepAnchor(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(
		models.CompiledFlowStep{
			ID: "step-1", StageID: "stage-1", Name: "state recording notice", OrderingIndex: 0,
			ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"this call is recorded"},
			DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired,
		},
		models.CompiledFlowStep{
			ID: "step-2", StageID: "stage-1", Name: "ask for consent", OrderingIndex: 1,
			ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"do you consent"},
			DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired,
		},
	)
	flow.Rules = []models.CompiledComplianceRule{{
		ID: "rule-1", FlowVersionID: "fv-1", Type: models.RuleTiming,
		TargetStepID: "step-2", Severity: models.SeverityMinor,
		Timing: &models.TimingConstraints{WithinSeconds: 5, Reference: models.TimingFromPreviousStep},
	}}

	t.Run("within window of previous step", func(t *testing.T) {
		tr := &models.Transcript{Segments: []models.Segment{
			agentSeg("this call is recorded", 2, 4, 0.9),
			agentSeg("do you consent to continue", 6, 8, 0.9),
		}}
		out := engine.Detect(context.Background(), flow, tr)
		assert.False(t, out.ResultForStep("step-2").OutOfWindow)
	})

	t.Run("past the window", func(t *testing.T) {
		tr := &models.Transcript{Segments: []models.Segment{
			agentSeg("this call is recorded", 2, 4, 0.9),
			agentSeg("do you consent to continue", 30, 32, 0.9),
		}}
		out := engine.Detect(context.Background(), flow, tr)
		assert.True(t, out.ResultForStep("step-2").OutOfWindow)
	})

	t.Run("undetected anchor disables the check", func(t *testing.T) {
		tr := &models.Transcript{Segments: []models.Segment{
			agentSeg("do you consent to continue", 300, 302, 0.9),
		}}
		out := engine.Detect(context.Background(), flow, tr)
		assert.False(t, out.ResultForStep("step-2").OutOfWindow)
	})
}

func TestDetect_StageAggregates(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(
		models.CompiledFlowStep{
			ID: "step-1", StageID: "stage-1", Name: "greet", OrderingIndex: 0,
			ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"thank you for calling"},
			DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired,
		},
		models.CompiledFlowStep{
			ID: "step-2", StageID: "stage-1", Name: "introduce self", OrderingIndex: 1,
			ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"my name is"},
			DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired,
		},
	)
	tr := &models.Transcript{Segments: []models.Segment{
		agentSeg("thank you for calling", 20, 23, 0.9),
		agentSeg("my name is {{NAME}}", 25, 27, 0.9),
		callerSeg("hi", 28, 29, 0.9),
		agentSeg("anything else", 200, 202, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	agg, ok := out.Stages["stage-1"]
	require.True(t, ok)
	assert.Equal(t, 2, agg.ExpectedSteps)
	assert.Equal(t, 2, agg.DetectedSteps)
	assert.Equal(t, 0, agg.Violations)
	require.True(t, agg.HasWindow)
	// Window is padded by 15 s and clamped to the call bounds.
	assert.InDelta(t, 5, agg.WindowStartS, 1e-9)
	assert.InDelta(t, 42, agg.WindowEndS, 1e-9)
}

func TestDetect_StageWithoutDetectionsHasNoWindow(t *testing.T) {
	engine := newTestEngine()
	flow := testFlow(models.CompiledFlowStep{
		ID: "step-1", StageID: "stage-1", Name: "greet",
		ExpectedRole: models.SpeakerAgent, ExpectedPhrases: []string{"thank you for calling"},
		DetectionHint: models.DetectExactPhrase, BehaviorType: models.BehaviorRequired,
	})
	tr := &models.Transcript{Segments: []models.Segment{
		callerSeg("hello", 0, 1, 0.9),
	}}

	out := engine.Detect(context.Background(), flow, tr)

	agg := out.Stages["stage-1"]
	assert.False(t, agg.HasWindow)
	assert.Equal(t, 1, agg.Violations)
}
