package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/models"
)

func weightPtr(v float64) *float64 { return &v }

// sampleBlueprint is a small but fully valid snapshot: two stages whose
// weights sum to 100, one critical behavior with an action, one
// semantic-only forbidden behavior.
func sampleBlueprint() *models.BlueprintSnapshot {
	return &models.BlueprintSnapshot{
		ID:            "bp-1234567890",
		CompanyID:     "co-1",
		Name:          "Card Support QA",
		VersionNumber: 3,
		Language:      "en",
		Stages: []models.StageSnapshot{
			{
				ID:     "st-1",
				Name:   "Greeting",
				Weight: weightPtr(20),
				Behaviors: []models.BehaviorSnapshot{
					{
						ID:            "b-1",
						Name:          "greet caller",
						Type:          models.BehaviorRequired,
						DetectionMode: models.DetectExactPhrase,
						Phrases:       []string{"thank you for calling"},
						Weight:        1,
					},
				},
			},
			{
				ID:     "st-2",
				Name:   "Verification",
				Weight: weightPtr(80),
				Behaviors: []models.BehaviorSnapshot{
					{
						ID:             "b-2",
						Name:           "verify identity",
						Type:           models.BehaviorCritical,
						DetectionMode:  models.DetectHybrid,
						Phrases:        []string{"verify your identity"},
						Weight:         2,
						CriticalAction: models.CriticalFailOverall,
					},
					{
						ID:            "b-3",
						Name:          "no full card readback",
						Description:   "agent reads back the full card number",
						Type:          models.BehaviorForbidden,
						DetectionMode: models.DetectSemantic,
						Weight:        1,
					},
				},
			},
		},
	}
}

func checksOf(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = is.Check
	}
	return out
}

func TestValidate_ValidBlueprint(t *testing.T) {
	res := Validate(sampleBlueprint(), ValidateOptions{})

	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_Structure(t *testing.T) {
	t.Run("no stages", func(t *testing.T) {
		bp := sampleBlueprint()
		bp.Stages = nil

		res := Validate(bp, ValidateOptions{})
		require.False(t, res.Valid())
		assert.Contains(t, checksOf(res.Errors), "structure")
	})

	t.Run("stage without behaviors", func(t *testing.T) {
		bp := sampleBlueprint()
		bp.Stages[0].Behaviors = nil

		res := Validate(bp, ValidateOptions{})
		require.False(t, res.Valid())
		assert.Contains(t, res.Errors[0].Message, "Greeting")
	})
}

func TestValidate_UniqueNames(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[1].Name = "Greeting"
	bp.Stages[1].Behaviors[1].Name = "verify identity"

	res := Validate(bp, ValidateOptions{})
	require.False(t, res.Valid())

	checks := checksOf(res.Errors)
	assert.Contains(t, checks, "unique_names")
	// Duplicate stage name and duplicate behavior name both reported.
	assert.Len(t, res.Errors, 2)
}

func TestValidate_NegativeBehaviorWeight(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Behaviors[0].Weight = -1

	res := Validate(bp, ValidateOptions{})
	require.False(t, res.Valid())
	assert.Contains(t, checksOf(res.Errors), "weights")
}

func TestValidate_StageWeightSum(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Weight = weightPtr(30)
	bp.Stages[1].Weight = weightPtr(30)

	res := Validate(bp, ValidateOptions{})
	require.False(t, res.Valid())
	assert.Contains(t, checksOf(res.Errors), "stage_weights")

	// force_normalize_weights waives the check.
	res = Validate(bp, ValidateOptions{ForceNormalizeWeights: true})
	assert.True(t, res.Valid())

	// No stage weights at all means even distribution, not an error.
	bp.Stages[0].Weight = nil
	bp.Stages[1].Weight = nil
	res = Validate(bp, ValidateOptions{})
	assert.True(t, res.Valid())
}

func TestValidate_StageWeightTolerance(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Weight = weightPtr(20.005)
	bp.Stages[1].Weight = weightPtr(80)

	res := Validate(bp, ValidateOptions{})
	assert.True(t, res.Valid())
}

func TestValidate_BehaviorWeightSum(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Behaviors[0].Weight = 0

	res := Validate(bp, ValidateOptions{})
	require.False(t, res.Valid())
	assert.Contains(t, checksOf(res.Errors), "behavior_weights")

	res = Validate(bp, ValidateOptions{ForceNormalizeWeights: true})
	assert.True(t, res.Valid())
}

func TestValidate_Phrases(t *testing.T) {
	t.Run("exact_phrase without phrases", func(t *testing.T) {
		bp := sampleBlueprint()
		bp.Stages[0].Behaviors[0].Phrases = nil

		res := Validate(bp, ValidateOptions{})
		require.False(t, res.Valid())
		assert.Contains(t, checksOf(res.Errors), "phrases")
	})

	t.Run("semantic without phrases is fine", func(t *testing.T) {
		bp := sampleBlueprint()
		bp.Stages[0].Behaviors[0].DetectionMode = models.DetectSemantic
		bp.Stages[0].Behaviors[0].Phrases = nil

		res := Validate(bp, ValidateOptions{})
		assert.True(t, res.Valid())
	})

	t.Run("phrase too long", func(t *testing.T) {
		bp := sampleBlueprint()
		long := make([]byte, maxPhraseLength+1)
		for i := range long {
			long[i] = 'a'
		}
		bp.Stages[0].Behaviors[0].Phrases = []string{string(long)}

		res := Validate(bp, ValidateOptions{})
		require.False(t, res.Valid())
		assert.Contains(t, checksOf(res.Errors), "phrases")
	})
}

func TestValidate_CriticalAction(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[1].Behaviors[0].CriticalAction = ""

	res := Validate(bp, ValidateOptions{})
	require.False(t, res.Valid())
	assert.Contains(t, checksOf(res.Errors), "critical_action")
}

func TestValidate_PhraseConflict(t *testing.T) {
	bp := sampleBlueprint()
	// Forbidden phrase collides with a required one modulo case and
	// whitespace.
	bp.Stages[1].Behaviors[1].Phrases = []string{"  Verify   Your identity "}

	res := Validate(bp, ValidateOptions{})
	require.False(t, res.Valid())
	assert.Contains(t, checksOf(res.Errors), "phrase_conflict")
}

func TestValidate_DuplicatePhraseWarning(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[1].Behaviors = append(bp.Stages[1].Behaviors, models.BehaviorSnapshot{
		ID:            "b-4",
		Name:          "confirm identity check",
		Type:          models.BehaviorRequired,
		DetectionMode: models.DetectExactPhrase,
		Phrases:       []string{"verify your identity"},
		Weight:        1,
	})

	res := Validate(bp, ValidateOptions{})
	assert.True(t, res.Valid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "duplicate_phrases", res.Warnings[0].Check)
}

func TestValidate_LanguageWarning(t *testing.T) {
	bp := sampleBlueprint()
	bp.Language = "zz"

	res := Validate(bp, ValidateOptions{})
	assert.True(t, res.Valid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "language", res.Warnings[0].Check)
}

func TestNormalizeWeights(t *testing.T) {
	t.Run("scales stage weights to 100", func(t *testing.T) {
		bp := sampleBlueprint()
		bp.Stages[0].Weight = weightPtr(30)
		bp.Stages[1].Weight = weightPtr(30)

		out := NormalizeWeights(bp)
		assert.InDelta(t, 50, *out.Stages[0].Weight, weightTolerance)
		assert.InDelta(t, 50, *out.Stages[1].Weight, weightTolerance)

		// Input untouched.
		assert.Equal(t, 30.0, *bp.Stages[0].Weight)
	})

	t.Run("even split when no stage weights", func(t *testing.T) {
		bp := sampleBlueprint()
		bp.Stages[0].Weight = nil
		bp.Stages[1].Weight = nil

		out := NormalizeWeights(bp)
		assert.InDelta(t, 50, *out.Stages[0].Weight, weightTolerance)
		assert.InDelta(t, 50, *out.Stages[1].Weight, weightTolerance)
	})

	t.Run("behavior weights scale to stage weight", func(t *testing.T) {
		bp := sampleBlueprint()

		out := NormalizeWeights(bp)
		// Verification stage: weights 2 and 1 over stage weight 80.
		assert.InDelta(t, 80.0*2/3, out.Stages[1].Behaviors[0].Weight, weightTolerance)
		assert.InDelta(t, 80.0*1/3, out.Stages[1].Behaviors[1].Weight, weightTolerance)
	})

	t.Run("zero behavior sum splits evenly", func(t *testing.T) {
		bp := sampleBlueprint()
		bp.Stages[1].Behaviors[0].Weight = 0
		bp.Stages[1].Behaviors[1].Weight = 0

		out := NormalizeWeights(bp)
		assert.InDelta(t, 40, out.Stages[1].Behaviors[0].Weight, weightTolerance)
		assert.InDelta(t, 40, out.Stages[1].Behaviors[1].Weight, weightTolerance)
	})
}
