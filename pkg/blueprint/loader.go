package blueprint

import (
	"context"
	"fmt"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
	"github.com/callscope-ai/callscope/pkg/models"
)

// LoadCompiledFlow reads a persisted compiled flow back into the
// in-memory form the detection and scoring engines work with. Stages and
// steps come back in ordering_index order, rules in id order.
func LoadCompiledFlow(ctx context.Context, client *ent.Client, flowVersionID string) (*models.CompiledFlow, error) {
	version, err := client.CompiledFlowVersion.Get(ctx, flowVersionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("compiled flow version %s not found", flowVersionID)
		}
		return nil, fmt.Errorf("failed to load compiled flow version: %w", err)
	}

	flow := &models.CompiledFlow{
		Version: models.CompiledFlowVersion{
			ID:                 version.ID,
			CompanyID:          version.CompanyID,
			BlueprintVersionID: version.BlueprintVersionID,
			Name:               version.Name,
			Metadata:           version.Metadata,
		},
	}

	stages, err := client.CompiledFlowStage.Query().
		Where(compiledflowstage.FlowVersionID(flowVersionID)).
		Order(ent.Asc(compiledflowstage.FieldOrderingIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load compiled stages: %w", err)
	}
	for _, st := range stages {
		flow.Stages = append(flow.Stages, models.CompiledFlowStage{
			ID:            st.ID,
			FlowVersionID: st.FlowVersionID,
			Name:          st.StageName,
			OrderingIndex: st.OrderingIndex,
			Weight:        st.StageWeight,
		})
	}

	steps, err := client.CompiledFlowStep.Query().
		Where(compiledflowstep.FlowVersionID(flowVersionID)).
		Order(ent.Asc(compiledflowstep.FieldOrderingIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load compiled steps: %w", err)
	}
	for _, sp := range steps {
		step := models.CompiledFlowStep{
			ID:              sp.ID,
			StageID:         sp.CompiledStageID,
			FlowVersionID:   sp.FlowVersionID,
			Name:            sp.StepName,
			Description:     sp.Description,
			OrderingIndex:   sp.OrderingIndex,
			ExpectedRole:    models.Speaker(sp.ExpectedRole),
			ExpectedPhrases: sp.ExpectedPhrases,
			DetectionHint:   models.DetectionMode(sp.DetectionHint),
			BehaviorType:    models.BehaviorType(sp.BehaviorType),
			Weight:          sp.Weight,
			Metadata:        sp.Metadata,
		}
		if sp.CriticalAction != nil {
			step.CriticalAction = models.CriticalAction(*sp.CriticalAction)
		}
		flow.Steps = append(flow.Steps, step)
	}

	rules, err := client.CompiledComplianceRule.Query().
		Where(compiledcompliancerule.FlowVersionID(flowVersionID)).
		Order(ent.Asc(compiledcompliancerule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load compiled rules: %w", err)
	}
	for _, r := range rules {
		rule := models.CompiledComplianceRule{
			ID:            r.ID,
			FlowVersionID: r.FlowVersionID,
			Type:          models.RuleType(r.RuleType),
			TargetStepID:  r.TargetStepID,
			Phrases:       r.Phrases,
			Severity:      models.Severity(r.Severity),
			Timing:        r.TimingConstraints,
			Params:        r.Params,
		}
		if r.MatchMode != nil {
			rule.MatchMode = models.MatchMode(*r.MatchMode)
		}
		if r.ActionOnFail != nil {
			rule.ActionOnFail = models.CriticalAction(*r.ActionOnFail)
		}
		flow.Rules = append(flow.Rules, rule)
	}

	rubric, err := client.CompiledRubricTemplate.Query().
		Where(compiledrubrictemplate.FlowVersionID(flowVersionID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load compiled rubric: %w", err)
	}
	flow.Rubric = models.CompiledRubricTemplate{
		ID:            rubric.ID,
		FlowVersionID: rubric.FlowVersionID,
		Categories:    rubric.Categories,
		Mappings:      rubric.Mappings,
	}

	return flow, nil
}
