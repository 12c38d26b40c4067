package rules

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

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

func testTranscript() *models.Transcript {
	return &models.Transcript{
		Segments: []models.Segment{
			{Speaker: models.SpeakerAgent, Text: "Thank you for calling, this call is recorded", StartS: 0, EndS: 4, Confidence: 0.9},
			{Speaker: models.SpeakerCaller, Text: "hi, I need help with my account", StartS: 5, EndS: 8, Confidence: 0.85},
			{Speaker: models.SpeakerAgent, Text: "Can I have your date of birth?", StartS: 9, EndS: 11, Confidence: 0.9},
			{Speaker: models.SpeakerAgent, Text: "And the last four digits on file?", StartS: 12, EndS: 14, Confidence: 0.9},
			{Speaker: models.SpeakerAgent, Text: "You're verified, let me pull that up", StartS: 15, EndS: 18, Confidence: 0.9},
			{Speaker: models.SpeakerAgent, Text: "I guarantee this is resolved for good", StartS: 40, EndS: 43, Confidence: 0.8},
		},
	}
}

func detected(stepID string, segIdx int, start, end float64) models.BehaviorResult {
	return models.BehaviorResult{
		StepID: stepID, Detected: true, MatchType: models.MatchTypeExact,
		SegmentIndex: segIdx, StartS: start, EndS: end, Confidence: 0.9,
	}
}

func undetected(stepID string) models.BehaviorResult {
	return models.BehaviorResult{StepID: stepID, MatchType: models.MatchTypeNone, SegmentIndex: -1}
}

func testInput(rules []models.CompiledComplianceRule, det *models.DetectionOutput) Input {
	if det == nil {
		det = &models.DetectionOutput{Stages: map[string]models.StageDetection{}}
	}
	if det.Stages == nil {
		det.Stages = map[string]models.StageDetection{}
	}
	return Input{
		Flow: &models.CompiledFlow{
			Version: models.CompiledFlowVersion{ID: "fv-1"},
			Stages: []models.CompiledFlowStage{
				{ID: "stage-1", FlowVersionID: "fv-1", Name: "Verification", OrderingIndex: 0},
			},
			Steps: []models.CompiledFlowStep{
				{ID: "step-notice", StageID: "stage-1", OrderingIndex: 0, ExpectedRole: models.SpeakerAgent},
				{ID: "step-verify", StageID: "stage-1", OrderingIndex: 1, ExpectedRole: models.SpeakerAgent},
				{ID: "step-resolve", StageID: "stage-1", OrderingIndex: 2, ExpectedRole: models.SpeakerAgent},
			},
			Rules: rules,
		},
		Transcript: testTranscript(),
		Detection:  det,
	}
}

func TestRequiredPhrase(t *testing.T) {
	engine := newTestEngine()

	t.Run("pass with evidence", func(t *testing.T) {
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{"this call is recorded"}, MatchMode: models.MatchContains,
			Severity: models.SeverityMajor,
		}}, nil)

		out := engine.Evaluate(context.Background(), in)
		require.Len(t, out, 1)
		assert.True(t, out[0].Passed)
		require.Len(t, out[0].Evidence, 1)
		assert.Equal(t, 0, out[0].Evidence[0].SegmentIndex)
		assert.Equal(t, models.SpeakerAgent, out[0].Evidence[0].Speaker)
	})

	t.Run("fail when absent", func(t *testing.T) {
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{"have I resolved everything"}, MatchMode: models.MatchContains,
			Severity: models.SeverityMajor,
		}}, nil)

		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)
		assert.Empty(t, out[0].Evidence)
		assert.NotEmpty(t, out[0].Detail)
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{"THANK YOU FOR CALLING"}, MatchMode: models.MatchContains,
			Severity: models.SeverityMajor,
		}}, nil)

		out := engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
	})

	t.Run("stage scope uses the detected window", func(t *testing.T) {
		det := &models.DetectionOutput{Stages: map[string]models.StageDetection{
			"stage-1": {StageID: "stage-1", HasWindow: true, WindowStartS: 8, WindowEndS: 20},
		}}
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{"this call is recorded"}, MatchMode: models.MatchContains,
			Severity: models.SeverityMajor,
			Params:   map[string]any{"scope_stage": "stage-1"},
		}}, det)

		// The phrase occurs at 0-4s, outside the 8-20s stage window.
		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)
	})
}

func TestForbiddenPhrase(t *testing.T) {
	engine := newTestEngine()

	in := testInput([]models.CompiledComplianceRule{{
		ID: "r-1", Type: models.RuleForbiddenPhrase,
		Phrases: []string{"i guarantee"}, MatchMode: models.MatchContains,
		Severity: models.SeverityMajor,
	}}, nil)

	out := engine.Evaluate(context.Background(), in)
	assert.False(t, out[0].Passed)
	require.Len(t, out[0].Evidence, 1)
	assert.Equal(t, 5, out[0].Evidence[0].SegmentIndex)
}

func TestPhraseMatchModes(t *testing.T) {
	engine := newTestEngine()

	t.Run("exact requires the whole utterance", func(t *testing.T) {
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{"thank you for calling"}, MatchMode: models.MatchExact,
			Severity: models.SeverityMajor,
		}}, nil)
		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)

		in.Transcript.Segments = append(in.Transcript.Segments,
			models.Segment{Speaker: models.SpeakerAgent, Text: "Thank you for calling", StartS: 50, EndS: 52, Confidence: 0.9})
		out = engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
	})

	t.Run("regex", func(t *testing.T) {
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{`last (four|4) digits`}, MatchMode: models.MatchRegex,
			Severity: models.SeverityMajor,
		}}, nil)
		out := engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
	})

	t.Run("invalid regex never matches", func(t *testing.T) {
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{`(unclosed`}, MatchMode: models.MatchRegex,
			Severity: models.SeverityMajor,
		}}, nil)
		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)
	})

	t.Run("semantic", func(t *testing.T) {
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredPhrase,
			Phrases: []string{"hi, I need help with my account"}, MatchMode: models.MatchSemantic,
			Severity: models.SeverityMajor,
		}}, nil)
		out := engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
	})
}

func TestRequiredStep(t *testing.T) {
	engine := newTestEngine()

	t.Run("detected step passes", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{detected("step-verify", 2, 9, 11)}}
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredStep, TargetStepID: "step-verify",
			Severity: models.SeverityCritical, ActionOnFail: models.CriticalFailOverall,
		}}, det)

		out := engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
		require.Len(t, out[0].Evidence, 1)
		assert.Equal(t, 2, out[0].Evidence[0].SegmentIndex)
	})

	t.Run("undetected step fails with action", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{undetected("step-verify")}}
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleRequiredStep, TargetStepID: "step-verify",
			Severity: models.SeverityCritical, ActionOnFail: models.CriticalFailOverall,
		}}, det)

		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)
		assert.Equal(t, models.CriticalFailOverall, out[0].ActionOnFail)
	})
}

func TestSequenceRule(t *testing.T) {
	engine := newTestEngine()
	rule := models.CompiledComplianceRule{
		ID: "r-1", Type: models.RuleSequence, Severity: models.SeverityMajor,
		Params: map[string]any{"before_step": "step-verify", "after_step": "step-resolve"},
	}

	t.Run("in order", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{
			detected("step-verify", 2, 9, 11),
			detected("step-resolve", 4, 15, 18),
		}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.True(t, out[0].Passed)
		assert.Len(t, out[0].Evidence, 2)
	})

	t.Run("out of order", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{
			detected("step-verify", 4, 15, 18),
			detected("step-resolve", 2, 9, 11),
		}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.False(t, out[0].Passed)
	})

	t.Run("ties fail unless allowed", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{
			detected("step-verify", 2, 9, 11),
			detected("step-resolve", 2, 9, 11),
		}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.False(t, out[0].Passed)

		tieRule := rule
		tieRule.Params = map[string]any{"before_step": "step-verify", "after_step": "step-resolve", "allow_ties": true}
		out = engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{tieRule}, det))
		assert.True(t, out[0].Passed)
	})

	t.Run("missing detection fails", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{
			detected("step-verify", 2, 9, 11),
			undetected("step-resolve"),
		}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.False(t, out[0].Passed)
	})
}

func TestTimingRule(t *testing.T) {
	engine := newTestEngine()

	t.Run("within window from call start", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{detected("step-notice", 0, 0, 4)}}
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleTiming, TargetStepID: "step-notice",
			Severity: models.SeverityMinor,
			Timing:   &models.TimingConstraints{WithinSeconds: 10, Reference: models.TimingFromCallStart},
		}}, det)
		out := engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
	})

	t.Run("too late", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{detected("step-notice", 5, 30, 34)}}
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleTiming, TargetStepID: "step-notice",
			Severity: models.SeverityMinor,
			Timing:   &models.TimingConstraints{WithinSeconds: 10, Reference: models.TimingFromCallStart},
		}}, det)
		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)
		assert.Contains(t, out[0].Detail, "limit")
	})

	t.Run("previous step anchor", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{
			detected("step-notice", 0, 0, 4),
			detected("step-verify", 2, 9, 11),
		}}
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleTiming, TargetStepID: "step-verify",
			Severity: models.SeverityMinor,
			Timing:   &models.TimingConstraints{WithinSeconds: 5, Reference: models.TimingFromPreviousStep},
		}}, det)
		out := engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
	})

	t.Run("undetected target passes vacuously", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{undetected("step-notice")}}
		in := testInput([]models.CompiledComplianceRule{{
			ID: "r-1", Type: models.RuleTiming, TargetStepID: "step-notice",
			Severity: models.SeverityMinor,
			Timing:   &models.TimingConstraints{WithinSeconds: 10, Reference: models.TimingFromCallStart},
		}}, det)
		out := engine.Evaluate(context.Background(), in)
		assert.True(t, out[0].Passed)
		assert.Contains(t, out[0].Detail, "not applicable")
	})
}

func TestVerificationRule(t *testing.T) {
	engine := newTestEngine()
	rule := models.CompiledComplianceRule{
		ID: "r-1", Type: models.RuleVerification, Severity: models.SeverityCritical,
		Params: map[string]any{
			"verification_step":         "step-verify",
			"required_question_count":   2.0,
			"must_complete_before_step": "step-resolve",
		},
	}

	t.Run("enough questions before the gate", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{detected("step-resolve", 4, 15, 18)}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.True(t, out[0].Passed)
		assert.Len(t, out[0].Evidence, 2)
	})

	t.Run("gate before the questions", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{detected("step-resolve", 0, 0, 4)}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.False(t, out[0].Passed)
		assert.Contains(t, out[0].Detail, "0 verification questions")
	})

	t.Run("undetected gate counts the whole call", func(t *testing.T) {
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{undetected("step-resolve")}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.True(t, out[0].Passed)
	})
}

func TestConditionalRule(t *testing.T) {
	engine := newTestEngine()

	t.Run("phrase mention triggers required action", func(t *testing.T) {
		rule := models.CompiledComplianceRule{
			ID: "r-1", Type: models.RuleConditional, Severity: models.SeverityMajor,
			Params: map[string]any{
				"condition":        map[string]any{"type": "phrase_mention", "phrase": "my account"},
				"required_actions": []any{"step-verify"},
			},
		}

		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{undetected("step-verify")}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.False(t, out[0].Passed)

		det = &models.DetectionOutput{Behaviors: []models.BehaviorResult{detected("step-verify", 2, 9, 11)}}
		out = engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.True(t, out[0].Passed)
	})

	t.Run("untriggered condition passes without actions", func(t *testing.T) {
		rule := models.CompiledComplianceRule{
			ID: "r-1", Type: models.RuleConditional, Severity: models.SeverityMajor,
			Params: map[string]any{
				"condition":        map[string]any{"type": "phrase_mention", "phrase": "supervisor"},
				"required_actions": []any{"step-verify"},
			},
		}
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{undetected("step-verify")}}
		out := engine.Evaluate(context.Background(), testInput([]models.CompiledComplianceRule{rule}, det))
		assert.True(t, out[0].Passed)
		assert.Equal(t, "condition not triggered", out[0].Detail)
	})

	t.Run("sentiment threshold", func(t *testing.T) {
		rule := models.CompiledComplianceRule{
			ID: "r-1", Type: models.RuleConditional, Severity: models.SeverityMajor,
			Params: map[string]any{
				"condition":        map[string]any{"type": "sentiment_below", "threshold": -0.3},
				"required_actions": []any{"step-resolve"},
			},
		}
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{undetected("step-resolve")}}
		in := testInput([]models.CompiledComplianceRule{rule}, det)
		in.Transcript.Sentiment = []models.SentimentSpan{{StartS: 5, EndS: 8, Score: -0.6}}

		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)
	})

	t.Run("metadata flag", func(t *testing.T) {
		rule := models.CompiledComplianceRule{
			ID: "r-1", Type: models.RuleConditional, Severity: models.SeverityMajor,
			Params: map[string]any{
				"condition":        map[string]any{"type": "metadata_flag", "key": "escalated"},
				"required_actions": []any{"step-resolve"},
			},
		}
		det := &models.DetectionOutput{Behaviors: []models.BehaviorResult{undetected("step-resolve")}}
		in := testInput([]models.CompiledComplianceRule{rule}, det)
		in.Metadata = map[string]any{"escalated": true}

		out := engine.Evaluate(context.Background(), in)
		assert.False(t, out[0].Passed)
	})
}

func TestUnknownRuleTypePasses(t *testing.T) {
	engine := newTestEngine()
	in := testInput([]models.CompiledComplianceRule{{
		ID: "r-1", Type: models.RuleType("future_rule"), Severity: models.SeverityMinor,
	}}, nil)

	out := engine.Evaluate(context.Background(), in)
	assert.True(t, out[0].Passed)
}

func TestExcerptCutsOnRuneBoundary(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", excerpt("hello"))
	})

	t.Run("ascii cut at limit", func(t *testing.T) {
		long := strings.Repeat("a", 200)
		out := excerpt(long)
		assert.Equal(t, strings.Repeat("a", 160)+"…", out)
	})

	t.Run("multi-byte rune never split", func(t *testing.T) {
		// 3-byte runes put byte 160 mid-sequence.
		long := strings.Repeat("語", 100)
		out := excerpt(long)
		assert.True(t, utf8.ValidString(out))
		assert.Equal(t, strings.Repeat("語", 53)+"…", out)
	})
}
