package blueprint

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/callscope-ai/callscope/ent"
	entblueprint "github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Compiler turns a blueprint version snapshot into immutable compiled
// artifacts: validate, lower, persist atomically, mark published.
type Compiler struct {
	client *ent.Client
}

// NewCompiler creates a blueprint compiler.
func NewCompiler(client *ent.Client) *Compiler {
	if client == nil {
		panic("database client is required for Compiler")
	}
	return &Compiler{client: client}
}

// CompileOptions tune a single compile run.
type CompileOptions struct {
	// ForceNormalizeWeights rescales weights instead of rejecting a
	// blueprint whose sums are off.
	ForceNormalizeWeights bool `json:"force_normalize_weights"`

	// DraftPreview compiles artifacts for sandbox use without flipping
	// the blueprint to published.
	DraftPreview bool `json:"draft_preview,omitempty"`
}

// CompileResult reports the outcome of a compile run. A validation
// failure is a non-error result with Success=false; errors are reserved
// for infrastructure problems.
type CompileResult struct {
	Success               bool    `json:"success"`
	CompiledFlowVersionID string  `json:"compiled_flow_version_id,omitempty"`
	Errors                []Issue `json:"errors,omitempty"`
	Warnings              []Issue `json:"warnings,omitempty"`
}

// Compile validates and lowers one blueprint version. Re-compiling a
// version that already has compiled artifacts returns the existing
// compiled flow version ID without touching the database.
func (c *Compiler) Compile(ctx context.Context, blueprintVersionID string, opts CompileOptions) (*CompileResult, error) {
	version, err := c.client.BlueprintVersion.Get(ctx, blueprintVersionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("blueprint version %s not found: %w", blueprintVersionID, err)
		}
		return nil, fmt.Errorf("failed to load blueprint version %s: %w", blueprintVersionID, err)
	}

	if version.CompiledFlowVersionID != nil && *version.CompiledFlowVersionID != "" {
		slog.Info("Blueprint version already compiled, returning existing artifacts",
			"blueprint_version_id", blueprintVersionID,
			"compiled_flow_version_id", *version.CompiledFlowVersionID)
		return &CompileResult{
			Success:               true,
			CompiledFlowVersionID: *version.CompiledFlowVersionID,
		}, nil
	}

	snapshot := version.Snapshot
	if snapshot == nil {
		return nil, fmt.Errorf("blueprint version %s has no snapshot", blueprintVersionID)
	}

	res := Validate(snapshot, ValidateOptions{ForceNormalizeWeights: opts.ForceNormalizeWeights})
	if !res.Valid() {
		slog.Info("Blueprint compilation rejected by validation",
			"blueprint_version_id", blueprintVersionID,
			"errors", len(res.Errors),
			"warnings", len(res.Warnings))
		return &CompileResult{
			Success:  false,
			Errors:   res.Errors,
			Warnings: res.Warnings,
		}, nil
	}

	if opts.ForceNormalizeWeights {
		if sum, anySet := stageWeightSum(snapshot); anySet && math.Abs(sum-100) > weightTolerance {
			res.warnf("stage_weights", "stage weights summed to %v; normalized to 100", sum)
		}
		snapshot = NormalizeWeights(snapshot)
	}

	flow := Map(snapshot, version.ID)

	if err := c.persist(ctx, version, flow, opts.DraftPreview); err != nil {
		return nil, err
	}

	slog.Info("Blueprint compiled",
		"blueprint_version_id", blueprintVersionID,
		"compiled_flow_version_id", flow.Version.ID,
		"stages", len(flow.Stages),
		"steps", len(flow.Steps),
		"rules", len(flow.Rules))

	return &CompileResult{
		Success:               true,
		CompiledFlowVersionID: flow.Version.ID,
		Warnings:              res.Warnings,
	}, nil
}

// persist writes the full artifact set and flips the blueprint to
// published in one transaction. Either everything lands or nothing does.
// Draft previews leave the blueprint itself untouched.
func (c *Compiler) persist(ctx context.Context, version *ent.BlueprintVersion, flow *models.CompiledFlow, draftPreview bool) error {
	tx, err := c.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	versionCreate := tx.CompiledFlowVersion.Create().
		SetID(flow.Version.ID).
		SetCompanyID(flow.Version.CompanyID).
		SetBlueprintVersionID(flow.Version.BlueprintVersionID).
		SetName(flow.Version.Name)
	if flow.Version.Metadata != nil {
		versionCreate.SetMetadata(flow.Version.Metadata)
	}
	if _, err := versionCreate.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("compiled artifacts already exist for blueprint version %s: %w", version.ID, err)
		}
		return fmt.Errorf("failed to create compiled flow version: %w", err)
	}

	for _, st := range flow.Stages {
		if _, err := tx.CompiledFlowStage.Create().
			SetID(st.ID).
			SetFlowVersionID(st.FlowVersionID).
			SetStageName(st.Name).
			SetOrderingIndex(st.OrderingIndex).
			SetNillableStageWeight(st.Weight).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create compiled stage %q: %w", st.Name, err)
		}
	}

	for _, sp := range flow.Steps {
		stepCreate := tx.CompiledFlowStep.Create().
			SetID(sp.ID).
			SetCompiledStageID(sp.StageID).
			SetFlowVersionID(sp.FlowVersionID).
			SetStepName(sp.Name).
			SetOrderingIndex(sp.OrderingIndex).
			SetExpectedRole(compiledflowstep.ExpectedRole(sp.ExpectedRole)).
			SetDetectionHint(compiledflowstep.DetectionHint(sp.DetectionHint)).
			SetBehaviorType(compiledflowstep.BehaviorType(sp.BehaviorType)).
			SetWeight(sp.Weight)
		if sp.Description != "" {
			stepCreate.SetDescription(sp.Description)
		}
		if len(sp.ExpectedPhrases) > 0 {
			stepCreate.SetExpectedPhrases(sp.ExpectedPhrases)
		}
		if sp.CriticalAction != "" {
			stepCreate.SetCriticalAction(compiledflowstep.CriticalAction(sp.CriticalAction))
		}
		if sp.Metadata != nil {
			stepCreate.SetMetadata(sp.Metadata)
		}
		if _, err := stepCreate.Save(ctx); err != nil {
			return fmt.Errorf("failed to create compiled step %q: %w", sp.Name, err)
		}
	}

	for _, r := range flow.Rules {
		ruleCreate := tx.CompiledComplianceRule.Create().
			SetID(r.ID).
			SetFlowVersionID(r.FlowVersionID).
			SetRuleType(compiledcompliancerule.RuleType(r.Type)).
			SetSeverity(compiledcompliancerule.Severity(r.Severity))
		if r.TargetStepID != "" {
			ruleCreate.SetTargetStepID(r.TargetStepID)
		}
		if len(r.Phrases) > 0 {
			ruleCreate.SetPhrases(r.Phrases)
		}
		if r.MatchMode != "" {
			ruleCreate.SetMatchMode(compiledcompliancerule.MatchMode(r.MatchMode))
		}
		if r.ActionOnFail != "" {
			ruleCreate.SetActionOnFail(compiledcompliancerule.ActionOnFail(r.ActionOnFail))
		}
		if r.Timing != nil {
			ruleCreate.SetTimingConstraints(r.Timing)
		}
		if r.Params != nil {
			ruleCreate.SetParams(r.Params)
		}
		if _, err := ruleCreate.Save(ctx); err != nil {
			return fmt.Errorf("failed to create compliance rule %s: %w", r.Type, err)
		}
	}

	if _, err := tx.CompiledRubricTemplate.Create().
		SetID(flow.Rubric.ID).
		SetFlowVersionID(flow.Rubric.FlowVersionID).
		SetCategories(flow.Rubric.Categories).
		SetMappings(flow.Rubric.Mappings).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create rubric template: %w", err)
	}

	// compiled_flow_version_id on the version is what makes Compile
	// idempotent; setting it is part of the same transaction.
	if _, err := tx.BlueprintVersion.UpdateOneID(version.ID).
		SetCompiledFlowVersionID(flow.Version.ID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark blueprint version compiled: %w", err)
	}

	if !draftPreview {
		if _, err := tx.Blueprint.UpdateOneID(version.BlueprintID).
			SetCompiledFlowVersionID(flow.Version.ID).
			SetStatus(entblueprint.StatusPublished).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to publish blueprint: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit compiled artifacts: %w", err)
	}
	return nil
}
