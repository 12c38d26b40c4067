package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
)

// scoringFlow: two categories (stages) weighted 40/60, each with two
// steps splitting the category weight evenly.
func scoringFlow() *models.CompiledFlow {
	return &models.CompiledFlow{
		Version: models.CompiledFlowVersion{ID: "fv-1"},
		Stages: []models.CompiledFlowStage{
			{ID: "stage-1", Name: "Opening", OrderingIndex: 0},
			{ID: "stage-2", Name: "Resolution", OrderingIndex: 1},
		},
		Steps: []models.CompiledFlowStep{
			{ID: "s1a", StageID: "stage-1", BehaviorType: models.BehaviorRequired},
			{ID: "s1b", StageID: "stage-1", BehaviorType: models.BehaviorRequired},
			{ID: "s2a", StageID: "stage-2", BehaviorType: models.BehaviorRequired},
			{ID: "s2b", StageID: "stage-2", BehaviorType: models.BehaviorForbidden},
		},
		Rubric: models.CompiledRubricTemplate{
			ID: "rub-1", FlowVersionID: "fv-1",
			Categories: []models.RubricCategory{
				{ID: "cat-1", Name: "Opening", StageID: "stage-1", Weight: 40, PassThreshold: 70},
				{ID: "cat-2", Name: "Resolution", StageID: "stage-2", Weight: 60, PassThreshold: 70},
			},
			Mappings: []models.RubricMapping{
				{CategoryID: "cat-1", StepID: "s1a", ContributionWeight: 20, Required: true},
				{CategoryID: "cat-1", StepID: "s1b", ContributionWeight: 20, Required: true},
				{CategoryID: "cat-2", StepID: "s2a", ContributionWeight: 30, Required: true},
				{CategoryID: "cat-2", StepID: "s2b", ContributionWeight: 30, Required: false},
			},
		},
	}
}

func passingStages() []models.StageEvaluation {
	return []models.StageEvaluation{
		{StageID: "stage-1", StageScore: 95, StageConfidence: 0.9, StepEvaluations: []models.StepEvaluation{
			{StepID: "s1a", Passed: true}, {StepID: "s1b", Passed: true},
		}},
		{StageID: "stage-2", StageScore: 90, StageConfidence: 0.85, StepEvaluations: []models.StepEvaluation{
			{StepID: "s2a", Passed: true}, {StepID: "s2b", Passed: true},
		}},
	}
}

func cleanDeterministic() *models.DeterministicResults {
	return &models.DeterministicResults{
		Detection: models.DetectionOutput{
			Behaviors: []models.BehaviorResult{
				{StepID: "s1a", StageID: "stage-1", Detected: true},
				{StepID: "s1b", StageID: "stage-1", Detected: true},
				{StepID: "s2a", StageID: "stage-2", Detected: true},
				{StepID: "s2b", StageID: "stage-2", Detected: false},
			},
			Stages: map[string]models.StageDetection{},
		},
	}
}

func TestScore_HappyPath(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())

	final := scorer.Score(Input{
		Flow:          scoringFlow(),
		Deterministic: cleanDeterministic(),
		Stages:        passingStages(),
		ASRConfidence: 0.9,
	})

	require.Len(t, final.CategoryScores, 2)
	assert.Equal(t, 100, final.CategoryScores[0].Score)
	assert.Equal(t, 100, final.CategoryScores[1].Score)
	assert.Equal(t, 100, final.OverallScore)
	assert.True(t, final.OverallPassed)
	assert.Empty(t, final.Violations)
	assert.False(t, final.RequiresHumanReview)

	// 0.8 * mean(0.9, 0.85) + 0.2 * 0.9
	assert.InDelta(t, 0.8*0.875+0.2*0.9, final.ConfidenceScore, 1e-9)
	assert.False(t, final.Confidence.FallbackUsed)
}

func TestScore_FailedStepLowersCategory(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())
	stages := passingStages()
	stages[0].StepEvaluations[1].Passed = false

	final := scorer.Score(Input{
		Flow:          scoringFlow(),
		Deterministic: cleanDeterministic(),
		Stages:        stages,
		ASRConfidence: 0.9,
	})

	// Half the Opening category's weight gone: 50 < 70 threshold.
	assert.Equal(t, 50, final.CategoryScores[0].Score)
	assert.False(t, final.CategoryScores[0].Passed)
	assert.False(t, final.OverallPassed)
	// 50*0.4 + 100*0.6.
	assert.Equal(t, 80, final.OverallScore)
}

func TestScore_DetectionBackfillWhenStepUnjudged(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())
	stages := passingStages()
	// Drop the judgment for the forbidden step; detection says it did
	// not occur, which counts as passed.
	stages[1].StepEvaluations = stages[1].StepEvaluations[:1]

	final := scorer.Score(Input{
		Flow:          scoringFlow(),
		Deterministic: cleanDeterministic(),
		Stages:        stages,
		ASRConfidence: 0.9,
	})

	assert.Equal(t, 100, final.CategoryScores[1].Score)
}

func TestScore_CriticalSeverityFailsOverall(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())
	det := cleanDeterministic()
	det.Rules = []models.RuleOutcome{{
		RuleID: "r-1", Type: models.RuleRequiredStep, TargetStepID: "s1a",
		Passed: false, Severity: models.SeverityCritical,
	}}

	final := scorer.Score(Input{
		Flow:          scoringFlow(),
		Deterministic: det,
		Stages:        passingStages(),
		ASRConfidence: 0.9,
	})

	assert.False(t, final.OverallPassed)
	require.Len(t, final.Violations, 1)
	assert.Equal(t, "r-1", final.Violations[0].RuleID)
}

func TestScore_FailStageOverride(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())
	det := cleanDeterministic()
	det.Rules = []models.RuleOutcome{{
		RuleID: "r-1", Type: models.RuleForbiddenPhrase, TargetStepID: "s2b",
		Passed: false, Severity: models.SeverityMajor, ActionOnFail: models.CriticalFailStage,
	}}

	final := scorer.Score(Input{
		Flow:          scoringFlow(),
		Deterministic: det,
		Stages:        passingStages(),
		ASRConfidence: 0.9,
	})

	// Numeric score stays, but the stage's category is forced to fail.
	assert.Equal(t, 100, final.CategoryScores[1].Score)
	assert.False(t, final.CategoryScores[1].Passed)
	assert.False(t, final.OverallPassed)
	assert.True(t, final.CategoryScores[0].Passed)
}

func TestScore_FlagOnlyKeepsScores(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())
	det := cleanDeterministic()
	det.Detection.Behaviors[3].Detected = true
	det.Detection.Behaviors[3].Violation = true
	det.Detection.Behaviors[3].CriticalAction = models.CriticalFlagOnly

	stages := passingStages()
	final := scorer.Score(Input{
		Flow:          scoringFlow(),
		Deterministic: det,
		Stages:        stages,
		ASRConfidence: 0.9,
	})

	assert.True(t, final.OverallPassed)
	require.Len(t, final.Violations, 1)
	assert.Equal(t, "s2b", final.Violations[0].StepID)
	assert.Equal(t, models.SeverityCritical, final.Violations[0].Severity)
}

func TestScore_ReviewRouting(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())

	t.Run("fallback forces review", func(t *testing.T) {
		stages := passingStages()
		stages[0].Fallback = true
		final := scorer.Score(Input{
			Flow: scoringFlow(), Deterministic: cleanDeterministic(),
			Stages: stages, ASRConfidence: 0.9,
		})
		assert.True(t, final.RequiresHumanReview)
		assert.True(t, final.Confidence.FallbackUsed)
	})

	t.Run("low stage confidence forces review", func(t *testing.T) {
		stages := passingStages()
		stages[1].StageConfidence = 0.4
		final := scorer.Score(Input{
			Flow: scoringFlow(), Deterministic: cleanDeterministic(),
			Stages: stages, ASRConfidence: 0.9,
		})
		assert.True(t, final.RequiresHumanReview)
	})

	t.Run("borderline overall score forces review", func(t *testing.T) {
		// One Resolution step failed: 100*0.4 + 50*0.6 = 70, right on
		// the pass threshold.
		stages := passingStages()
		stages[1].StepEvaluations[0].Passed = false
		det := cleanDeterministic()
		det.Detection.Behaviors[2].Detected = false

		final := scorer.Score(Input{
			Flow: scoringFlow(), Deterministic: det,
			Stages: stages, ASRConfidence: 0.9,
		})
		assert.Equal(t, 70, final.OverallScore)
		assert.True(t, final.RequiresHumanReview)
	})
}

func TestScore_NoStageEvaluations(t *testing.T) {
	scorer := NewScorer(config.DefaultPipelineConfig())

	final := scorer.Score(Input{
		Flow:          scoringFlow(),
		Deterministic: cleanDeterministic(),
		ASRConfidence: 0.85,
	})

	// Detection verdicts alone drive the categories.
	assert.Equal(t, 100, final.CategoryScores[0].Score)
	assert.Equal(t, 100, final.CategoryScores[1].Score)
	assert.InDelta(t, 0.85, final.ConfidenceScore, 1e-9)
}
