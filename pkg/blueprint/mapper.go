package blueprint

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/callscope-ai/callscope/pkg/models"
)

// defaultPassThreshold applies to rubric categories whose stage does not
// set its own via metadata.
const defaultPassThreshold = 70.0

// Map lowers a validated blueprint snapshot into compiled artifacts.
// Pure function: all artifact IDs are pre-generated so cross-references
// resolve before anything is persisted.
func Map(bp *models.BlueprintSnapshot, blueprintVersionID string) *models.CompiledFlow {
	flow := &models.CompiledFlow{
		Version: models.CompiledFlowVersion{
			ID:                 uuid.NewString(),
			CompanyID:          bp.CompanyID,
			BlueprintVersionID: blueprintVersionID,
			Name:               flowName(bp),
		},
	}
	if bp.Language != "" {
		flow.Version.Metadata = map[string]any{models.MetaKeyLanguageHint: bp.Language}
	}

	flow.Rubric = models.CompiledRubricTemplate{
		ID:            uuid.NewString(),
		FlowVersionID: flow.Version.ID,
	}

	categoryWeights := rubricCategoryWeights(bp)

	for si, st := range bp.Stages {
		stage := models.CompiledFlowStage{
			ID:            uuid.NewString(),
			FlowVersionID: flow.Version.ID,
			Name:          st.Name,
			OrderingIndex: si,
			Weight:        st.Weight,
		}
		flow.Stages = append(flow.Stages, stage)

		category := models.RubricCategory{
			ID:            uuid.NewString(),
			Name:          st.Name,
			StageID:       stage.ID,
			Weight:        categoryWeights[si],
			PassThreshold: stagePassThreshold(st),
		}
		flow.Rubric.Categories = append(flow.Rubric.Categories, category)

		for bi, b := range st.Behaviors {
			step := mapStep(flow.Version.ID, stage.ID, bi, b)
			flow.Steps = append(flow.Steps, step)

			flow.Rules = append(flow.Rules, mapRules(flow.Version.ID, stage.ID, step.ID, b)...)

			// Step mappings split the category weight evenly.
			flow.Rubric.Mappings = append(flow.Rubric.Mappings, models.RubricMapping{
				CategoryID:         category.ID,
				StepID:             step.ID,
				ContributionWeight: category.Weight / float64(len(st.Behaviors)),
				Required:           b.Type == models.BehaviorRequired || b.Type == models.BehaviorCritical,
			})
		}
	}

	return flow
}

// flowName disambiguates compiled flows globally: the blueprint name
// alone is only unique per company.
func flowName(bp *models.BlueprintSnapshot) string {
	return fmt.Sprintf("%s (bp:%s v%d)", bp.Name, shortID(bp.ID), bp.VersionNumber)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func mapStep(flowVersionID, stageID string, index int, b models.BehaviorSnapshot) models.CompiledFlowStep {
	// Compiled steps only distinguish agent and caller; anything else
	// (including "other") is treated as agent.
	role := models.Speaker(models.MetaString(b.Metadata, models.MetaKeySpeaker))
	switch role {
	case models.SpeakerAgent, models.SpeakerCaller:
	default:
		role = models.SpeakerAgent
	}

	return models.CompiledFlowStep{
		ID:            uuid.NewString(),
		StageID:       stageID,
		FlowVersionID: flowVersionID,
		Name:          b.Name,
		Description:   b.Description,
		OrderingIndex: index,
		ExpectedRole:  role,
		// Phrases are always carried, even in semantic mode: they feed
		// semantic prompts and give reviewers context.
		ExpectedPhrases: b.Phrases,
		DetectionHint:   b.DetectionMode,
		BehaviorType:    b.Type,
		CriticalAction:  b.CriticalAction,
		Weight:          b.Weight,
		Metadata:        b.Metadata,
	}
}

// mapRules emits the compliance rules implied by one behavior.
func mapRules(flowVersionID, stageID, stepID string, b models.BehaviorSnapshot) []models.CompiledComplianceRule {
	var rules []models.CompiledComplianceRule

	severity := models.SeverityMajor
	var action models.CriticalAction
	if b.Type == models.BehaviorCritical {
		severity = models.SeverityCritical
		action = b.CriticalAction
	}

	switch b.Type {
	case models.BehaviorRequired, models.BehaviorCritical:
		if len(b.Phrases) > 0 {
			rules = append(rules, models.CompiledComplianceRule{
				ID:            uuid.NewString(),
				FlowVersionID: flowVersionID,
				Type:          models.RuleRequiredPhrase,
				TargetStepID:  stepID,
				Phrases:       b.Phrases,
				MatchMode:     matchModeFor(b.DetectionMode),
				Severity:      severity,
				ActionOnFail:  action,
				Params:        map[string]any{"scope_stage": stageID},
			})
		} else {
			// Semantic-only behaviors lean on the detection engine.
			rules = append(rules, models.CompiledComplianceRule{
				ID:            uuid.NewString(),
				FlowVersionID: flowVersionID,
				Type:          models.RuleRequiredStep,
				TargetStepID:  stepID,
				Severity:      severity,
				ActionOnFail:  action,
			})
		}
	case models.BehaviorForbidden:
		phrases := b.Phrases
		mode := matchModeFor(b.DetectionMode)
		if len(phrases) == 0 {
			// Forbidden semantic-only: match against the description.
			phrases = []string{b.Description}
			mode = models.MatchSemantic
		}
		rules = append(rules, models.CompiledComplianceRule{
			ID:            uuid.NewString(),
			FlowVersionID: flowVersionID,
			Type:          models.RuleForbiddenPhrase,
			TargetStepID:  stepID,
			Phrases:       phrases,
			MatchMode:     mode,
			Severity:      models.SeverityMajor,
		})
	}

	// A documented timing requirement compiles to a timing rule
	// regardless of behavior type.
	if tc := timingFromMeta(b.Metadata); tc != nil {
		tc.ScopeStageID = stageID
		rules = append(rules, models.CompiledComplianceRule{
			ID:            uuid.NewString(),
			FlowVersionID: flowVersionID,
			Type:          models.RuleTiming,
			TargetStepID:  stepID,
			Severity:      models.SeverityMinor,
			Timing:        tc,
		})
	}

	return rules
}

func matchModeFor(mode models.DetectionMode) models.MatchMode {
	switch mode {
	case models.DetectExactPhrase:
		return models.MatchContains
	case models.DetectSemantic:
		return models.MatchSemantic
	default:
		return models.MatchHybrid
	}
}

// timingFromMeta parses the documented timing_requirement metadata key:
// {"within_seconds": N, "reference": "call_start"|"previous_step"}.
func timingFromMeta(meta map[string]any) *models.TimingConstraints {
	raw, ok := meta[models.MetaKeyTimingRequirement].(map[string]any)
	if !ok {
		return nil
	}

	within, ok := models.MetaFloat(raw, "within_seconds")
	if !ok || within <= 0 {
		return nil
	}

	ref := models.TimingReference(models.MetaString(raw, "reference"))
	if ref != models.TimingFromPreviousStep {
		ref = models.TimingFromCallStart
	}

	return &models.TimingConstraints{
		WithinSeconds: within,
		Reference:     ref,
	}
}

// rubricCategoryWeights resolves one weight per stage: normalized from
// explicit stage weights, or distributed evenly when absent.
func rubricCategoryWeights(bp *models.BlueprintSnapshot) []float64 {
	weights := make([]float64, len(bp.Stages))
	if len(bp.Stages) == 0 {
		return weights
	}

	sum, anySet := stageWeightSum(bp)
	for i, st := range bp.Stages {
		switch {
		case !anySet || sum <= 0:
			weights[i] = 100 / float64(len(bp.Stages))
		case st.Weight == nil:
			weights[i] = 0
		default:
			weights[i] = *st.Weight * 100 / sum
		}
	}
	return weights
}

func stagePassThreshold(st models.StageSnapshot) float64 {
	if v, ok := models.MetaFloat(st.Metadata, "pass_threshold"); ok && v >= 0 && v <= 100 {
		return v
	}
	return defaultPassThreshold
}
