package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/pkg/models"
)

func rulesOfType(flow *models.CompiledFlow, rt models.RuleType) []models.CompiledComplianceRule {
	var out []models.CompiledComplianceRule
	for _, r := range flow.Rules {
		if r.Type == rt {
			out = append(out, r)
		}
	}
	return out
}

func TestMap_Structure(t *testing.T) {
	bp := sampleBlueprint()
	flow := Map(bp, "bpv-1")

	assert.Equal(t, "co-1", flow.Version.CompanyID)
	assert.Equal(t, "bpv-1", flow.Version.BlueprintVersionID)
	assert.Equal(t, "Card Support QA (bp:bp-12345 v3)", flow.Version.Name)
	assert.Equal(t, "en", flow.Version.Metadata[models.MetaKeyLanguageHint])

	require.Len(t, flow.Stages, 2)
	require.Len(t, flow.Steps, 3)
	require.Len(t, flow.Rubric.Categories, 2)
	require.Len(t, flow.Rubric.Mappings, 3)

	// Ordering indexes follow blueprint order.
	assert.Equal(t, 0, flow.Stages[0].OrderingIndex)
	assert.Equal(t, 1, flow.Stages[1].OrderingIndex)

	// Every step references a real stage in this flow.
	for _, sp := range flow.Steps {
		assert.NotNil(t, flow.StageByID(sp.StageID))
		assert.Equal(t, flow.Version.ID, sp.FlowVersionID)
	}
}

func TestMap_StepFields(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Behaviors[0].Metadata = map[string]any{models.MetaKeySpeaker: "caller"}
	flow := Map(bp, "bpv-1")

	greet := flow.Steps[0]
	assert.Equal(t, "greet caller", greet.Name)
	assert.Equal(t, models.SpeakerCaller, greet.ExpectedRole)
	assert.Equal(t, models.DetectExactPhrase, greet.DetectionHint)
	assert.Equal(t, models.BehaviorRequired, greet.BehaviorType)
	assert.Equal(t, []string{"thank you for calling"}, greet.ExpectedPhrases)

	verify := flow.Steps[1]
	assert.Equal(t, models.SpeakerAgent, verify.ExpectedRole)
	assert.Equal(t, models.CriticalFailOverall, verify.CriticalAction)
}

func TestMap_RoleFallsBackToAgent(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Behaviors[0].Metadata = map[string]any{models.MetaKeySpeaker: "other"}
	flow := Map(bp, "bpv-1")

	assert.Equal(t, models.SpeakerAgent, flow.Steps[0].ExpectedRole)
}

func TestMap_RequiredPhraseRule(t *testing.T) {
	flow := Map(sampleBlueprint(), "bpv-1")

	rules := rulesOfType(flow, models.RuleRequiredPhrase)
	require.Len(t, rules, 2)

	greetRule := rules[0]
	assert.Equal(t, flow.Steps[0].ID, greetRule.TargetStepID)
	assert.Equal(t, []string{"thank you for calling"}, greetRule.Phrases)
	assert.Equal(t, models.MatchContains, greetRule.MatchMode)
	assert.Equal(t, models.SeverityMajor, greetRule.Severity)
	assert.Empty(t, greetRule.ActionOnFail)
	assert.Equal(t, flow.Stages[0].ID, greetRule.Params["scope_stage"])

	criticalRule := rules[1]
	assert.Equal(t, models.MatchHybrid, criticalRule.MatchMode)
	assert.Equal(t, models.SeverityCritical, criticalRule.Severity)
	assert.Equal(t, models.CriticalFailOverall, criticalRule.ActionOnFail)
}

func TestMap_SemanticOnlyRequiredStep(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Behaviors[0].DetectionMode = models.DetectSemantic
	bp.Stages[0].Behaviors[0].Phrases = nil
	flow := Map(bp, "bpv-1")

	rules := rulesOfType(flow, models.RuleRequiredStep)
	require.Len(t, rules, 1)
	assert.Equal(t, flow.Steps[0].ID, rules[0].TargetStepID)
	assert.Empty(t, rules[0].Phrases)
}

func TestMap_ForbiddenRule(t *testing.T) {
	flow := Map(sampleBlueprint(), "bpv-1")

	rules := rulesOfType(flow, models.RuleForbiddenPhrase)
	require.Len(t, rules, 1)

	// Semantic-only forbidden behavior matches against its description.
	assert.Equal(t, []string{"agent reads back the full card number"}, rules[0].Phrases)
	assert.Equal(t, models.MatchSemantic, rules[0].MatchMode)
	assert.Equal(t, models.SeverityMajor, rules[0].Severity)
}

func TestMap_TimingRule(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Behaviors[0].Metadata = map[string]any{
		models.MetaKeyTimingRequirement: map[string]any{
			"within_seconds": 30.0,
			"reference":      "previous_step",
		},
	}
	flow := Map(bp, "bpv-1")

	rules := rulesOfType(flow, models.RuleTiming)
	require.Len(t, rules, 1)
	assert.Equal(t, models.SeverityMinor, rules[0].Severity)
	require.NotNil(t, rules[0].Timing)
	assert.Equal(t, 30.0, rules[0].Timing.WithinSeconds)
	assert.Equal(t, models.TimingFromPreviousStep, rules[0].Timing.Reference)
	assert.Equal(t, flow.Stages[0].ID, rules[0].Timing.ScopeStageID)
}

func TestMap_TimingRuleIgnoresMalformedMetadata(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Behaviors[0].Metadata = map[string]any{
		models.MetaKeyTimingRequirement: map[string]any{"within_seconds": -5.0},
	}
	flow := Map(bp, "bpv-1")

	assert.Empty(t, rulesOfType(flow, models.RuleTiming))
}

func TestMap_RubricWeights(t *testing.T) {
	flow := Map(sampleBlueprint(), "bpv-1")

	// Explicit stage weights 20/80 pass through normalized.
	assert.InDelta(t, 20, flow.Rubric.Categories[0].Weight, weightTolerance)
	assert.InDelta(t, 80, flow.Rubric.Categories[1].Weight, weightTolerance)

	// Mappings split the category weight evenly across its steps.
	assert.InDelta(t, 20, flow.Rubric.Mappings[0].ContributionWeight, weightTolerance)
	assert.InDelta(t, 40, flow.Rubric.Mappings[1].ContributionWeight, weightTolerance)
	assert.InDelta(t, 40, flow.Rubric.Mappings[2].ContributionWeight, weightTolerance)

	assert.True(t, flow.Rubric.Mappings[0].Required)
	assert.True(t, flow.Rubric.Mappings[1].Required)
	assert.False(t, flow.Rubric.Mappings[2].Required)
}

func TestMap_RubricWeightsEvenWhenUnset(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[0].Weight = nil
	bp.Stages[1].Weight = nil
	flow := Map(bp, "bpv-1")

	assert.InDelta(t, 50, flow.Rubric.Categories[0].Weight, weightTolerance)
	assert.InDelta(t, 50, flow.Rubric.Categories[1].Weight, weightTolerance)
}

func TestMap_NormalizedWeightsSumTo100(t *testing.T) {
	// Four stages at 30 each, compiled with forced normalization: the
	// rubric must still account for exactly 100 points.
	bp := sampleBlueprint()
	extra := models.StageSnapshot{
		ID:     "st-3",
		Name:   "Resolution",
		Weight: weightPtr(30),
		Behaviors: []models.BehaviorSnapshot{
			{ID: "b-5", Name: "offer resolution", Type: models.BehaviorRequired,
				DetectionMode: models.DetectSemantic, Weight: 1},
		},
	}
	extra2 := extra
	extra2.ID, extra2.Name = "st-4", "Closing"
	extra2.Behaviors = []models.BehaviorSnapshot{
		{ID: "b-6", Name: "close politely", Type: models.BehaviorRequired,
			DetectionMode: models.DetectSemantic, Weight: 1},
	}
	bp.Stages[0].Weight = weightPtr(30)
	bp.Stages[1].Weight = weightPtr(30)
	bp.Stages = append(bp.Stages, extra, extra2)

	require.True(t, Validate(bp, ValidateOptions{ForceNormalizeWeights: true}).Valid())
	flow := Map(NormalizeWeights(bp), "bpv-1")

	var categorySum, mappingSum float64
	for _, c := range flow.Rubric.Categories {
		categorySum += c.Weight
		assert.InDelta(t, 25, c.Weight, weightTolerance)
	}
	for _, m := range flow.Rubric.Mappings {
		mappingSum += m.ContributionWeight
	}
	assert.InDelta(t, 100, categorySum, weightTolerance)
	assert.InDelta(t, 100, mappingSum, weightTolerance)
}

func TestMap_StagePassThreshold(t *testing.T) {
	bp := sampleBlueprint()
	bp.Stages[1].Metadata = map[string]any{"pass_threshold": 85.0}
	flow := Map(bp, "bpv-1")

	assert.Equal(t, 70.0, flow.Rubric.Categories[0].PassThreshold)
	assert.Equal(t, 85.0, flow.Rubric.Categories[1].PassThreshold)
}
