package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/callscope-ai/callscope/ent"
	entblueprint "github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/queue"
)

// BehaviorInput is one behavior in a create or update request.
type BehaviorInput struct {
	Name           string
	Description    string
	Type           models.BehaviorType
	DetectionMode  models.DetectionMode
	Phrases        []string
	Weight         float64
	CriticalAction models.CriticalAction
	UIOrder        int
	Metadata       map[string]any
}

// StageInput is one stage in a create or update request.
type StageInput struct {
	Name          string
	OrderingIndex int
	Weight        *float64
	Metadata      map[string]any
	Behaviors     []BehaviorInput
}

// CreateBlueprintInput is the domain-level create request.
type CreateBlueprintInput struct {
	CompanyID   string
	Name        string
	Description string
	Language    string
	Stages      []StageInput
}

// BlueprintDetail is a blueprint with its authoring tree loaded.
type BlueprintDetail struct {
	Blueprint *ent.Blueprint
	Stages    []StageDetail
}

// StageDetail is one stage with its behaviors.
type StageDetail struct {
	Stage     *ent.BlueprintStage
	Behaviors []*ent.BlueprintBehavior
}

// PublishOptions tune one publish request.
type PublishOptions struct {
	PublishedBy           string
	PublishNote           string
	ForceNormalizeWeights bool
}

// PublishResult reports an accepted publish request. Compilation runs
// asynchronously; poll the job for the outcome.
type PublishResult struct {
	Version *ent.BlueprintVersion
	Job     *ent.Job
}

// PublishStatus is the point-in-time state of one publish request.
type PublishStatus struct {
	Job                   *ent.Job
	BlueprintStatus       entblueprint.Status
	CompiledFlowVersionID string
}

// BlueprintService handles blueprint authoring and publishing.
type BlueprintService struct {
	client   *ent.Client
	compiler *blueprint.Compiler
}

// NewBlueprintService creates a new BlueprintService.
func NewBlueprintService(client *ent.Client, compiler *blueprint.Compiler) *BlueprintService {
	if client == nil {
		panic("NewBlueprintService: client must not be nil")
	}
	if compiler == nil {
		panic("NewBlueprintService: compiler must not be nil")
	}
	return &BlueprintService{client: client, compiler: compiler}
}

// CreateBlueprint creates a draft blueprint with its stages and behaviors.
func (s *BlueprintService) CreateBlueprint(ctx context.Context, input CreateBlueprintInput) (*BlueprintDetail, error) {
	if input.CompanyID == "" {
		return nil, NewValidationError("company_id", "company id is required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "blueprint name is required")
	}
	for i, st := range input.Stages {
		if st.Name == "" {
			return nil, NewValidationError("stages", fmt.Sprintf("stage %d has no name", i))
		}
		for j, b := range st.Behaviors {
			if b.Name == "" {
				return nil, NewValidationError("stages", fmt.Sprintf("behavior %d in stage %q has no name", j, st.Name))
			}
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	blueprintID := uuid.NewString()
	create := tx.Blueprint.Create().
		SetID(blueprintID).
		SetCompanyID(input.CompanyID).
		SetName(input.Name).
		SetStatus(entblueprint.StatusDraft)
	if input.Description != "" {
		create.SetDescription(input.Description)
	}
	if input.Language != "" {
		create.SetLanguage(input.Language)
	}
	if _, err := create.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create blueprint: %w", err)
	}

	if err := createStages(ctx, tx, blueprintID, input.Stages); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit blueprint: %w", err)
	}

	return s.GetBlueprint(ctx, blueprintID)
}

func createStages(ctx context.Context, tx *ent.Tx, blueprintID string, stages []StageInput) error {
	for _, st := range stages {
		stageID := uuid.NewString()
		stageCreate := tx.BlueprintStage.Create().
			SetID(stageID).
			SetBlueprintID(blueprintID).
			SetStageName(st.Name).
			SetOrderingIndex(st.OrderingIndex).
			SetNillableStageWeight(st.Weight)
		if st.Metadata != nil {
			stageCreate.SetMetadata(st.Metadata)
		}
		if _, err := stageCreate.Save(ctx); err != nil {
			return fmt.Errorf("failed to create stage %q: %w", st.Name, err)
		}

		for _, b := range st.Behaviors {
			behaviorCreate := tx.BlueprintBehavior.Create().
				SetID(uuid.NewString()).
				SetStageID(stageID).
				SetBehaviorName(b.Name).
				SetBehaviorType(blueprintbehavior.BehaviorType(b.Type)).
				SetDetectionMode(blueprintbehavior.DetectionMode(b.DetectionMode)).
				SetWeight(b.Weight).
				SetUIOrder(b.UIOrder)
			if b.Description != "" {
				behaviorCreate.SetDescription(b.Description)
			}
			if len(b.Phrases) > 0 {
				behaviorCreate.SetPhrases(b.Phrases)
			}
			if b.CriticalAction != "" {
				behaviorCreate.SetCriticalAction(blueprintbehavior.CriticalAction(b.CriticalAction))
			}
			if b.Metadata != nil {
				behaviorCreate.SetMetadata(b.Metadata)
			}
			if _, err := behaviorCreate.Save(ctx); err != nil {
				return fmt.Errorf("failed to create behavior %q: %w", b.Name, err)
			}
		}
	}
	return nil
}

// GetBlueprint loads a blueprint with its full authoring tree.
func (s *BlueprintService) GetBlueprint(ctx context.Context, blueprintID string) (*BlueprintDetail, error) {
	bp, err := s.client.Blueprint.Get(ctx, blueprintID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blueprint: %w", err)
	}

	stages, err := s.client.BlueprintStage.Query().
		Where(blueprintstage.BlueprintID(blueprintID)).
		Order(ent.Asc(blueprintstage.FieldOrderingIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages: %w", err)
	}

	detail := &BlueprintDetail{Blueprint: bp}
	for _, st := range stages {
		behaviors, err := s.client.BlueprintBehavior.Query().
			Where(blueprintbehavior.StageID(st.ID)).
			Order(ent.Asc(blueprintbehavior.FieldUIOrder), ent.Asc(blueprintbehavior.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load behaviors: %w", err)
		}
		detail.Stages = append(detail.Stages, StageDetail{Stage: st, Behaviors: behaviors})
	}
	return detail, nil
}

// ListBlueprints returns a company's blueprints, newest first.
func (s *BlueprintService) ListBlueprints(ctx context.Context, companyID string) ([]*ent.Blueprint, error) {
	if companyID == "" {
		return nil, NewValidationError("company_id", "company id is required")
	}
	blueprints, err := s.client.Blueprint.Query().
		Where(entblueprint.CompanyID(companyID)).
		Order(ent.Desc(entblueprint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blueprints: %w", err)
	}
	return blueprints, nil
}

// ArchiveBlueprint retires a blueprint. Archived blueprints keep their
// history but refuse new evaluations and publishes.
func (s *BlueprintService) ArchiveBlueprint(ctx context.Context, blueprintID string) error {
	err := s.client.Blueprint.UpdateOneID(blueprintID).
		SetStatus(entblueprint.StatusArchived).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to archive blueprint: %w", err)
	}
	return nil
}

// Publish snapshots the blueprint's current authoring state into an
// immutable version and enqueues its compilation. The blueprint flips to
// published only when the compile job succeeds.
func (s *BlueprintService) Publish(ctx context.Context, blueprintID string, opts PublishOptions) (*PublishResult, error) {
	bp, err := s.client.Blueprint.Get(ctx, blueprintID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blueprint: %w", err)
	}
	if bp.Status == entblueprint.StatusArchived {
		return nil, fmt.Errorf("%w: blueprint %s is archived", ErrPrecondition, blueprintID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	version, err := snapshotVersion(ctx, tx, bp, opts)
	if err != nil {
		return nil, err
	}

	queued, err := queue.EnqueueTx(ctx, tx, job.KindCompileBlueprint,
		"compile-"+version.ID,
		map[string]any{
			queue.PayloadBlueprintVersionID: version.ID,
			queue.PayloadForceNormalize:     opts.ForceNormalizeWeights,
		})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit publish: %w", err)
	}

	return &PublishResult{Version: version, Job: queued}, nil
}

// GetPublishStatus reports how one publish request is doing.
func (s *BlueprintService) GetPublishStatus(ctx context.Context, blueprintID, jobID string) (*PublishStatus, error) {
	bp, err := s.client.Blueprint.Get(ctx, blueprintID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blueprint: %w", err)
	}

	queued, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if queued.Kind != job.KindCompileBlueprint {
		return nil, ErrNotFound
	}

	status := &PublishStatus{Job: queued, BlueprintStatus: bp.Status}
	if bp.CompiledFlowVersionID != nil {
		status.CompiledFlowVersionID = *bp.CompiledFlowVersionID
	}
	return status, nil
}

// CompileDraft compiles the blueprint's current draft synchronously, for
// sandbox runs against unpublished blueprints. Like Publish it consumes
// a version number; unlike Publish the blueprint stays in draft.
func (s *BlueprintService) CompileDraft(ctx context.Context, blueprintID string) (string, error) {
	bp, err := s.client.Blueprint.Get(ctx, blueprintID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load blueprint: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	version, err := snapshotVersion(ctx, tx, bp, PublishOptions{})
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit draft version: %w", err)
	}

	result, err := s.compiler.Compile(ctx, version.ID, blueprint.CompileOptions{DraftPreview: true})
	if err != nil {
		return "", err
	}
	if !result.Success {
		return "", NewValidationError("blueprint", result.Errors[0].Message)
	}
	return result.CompiledFlowVersionID, nil
}

// snapshotVersion captures the live authoring rows into an immutable
// BlueprintVersion and bumps the blueprint's version counter.
func snapshotVersion(ctx context.Context, tx *ent.Tx, bp *ent.Blueprint, opts PublishOptions) (*ent.BlueprintVersion, error) {
	snapshot, err := buildSnapshot(ctx, tx, bp)
	if err != nil {
		return nil, err
	}

	create := tx.BlueprintVersion.Create().
		SetID(uuid.NewString()).
		SetBlueprintID(bp.ID).
		SetVersionNumber(bp.VersionNumber).
		SetSnapshot(snapshot)
	if opts.PublishedBy != "" {
		create.SetPublishedBy(opts.PublishedBy)
	}
	if opts.PublishNote != "" {
		create.SetPublishNote(opts.PublishNote)
	}
	version, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: version %d of blueprint %s already exists", ErrAlreadyExists, bp.VersionNumber, bp.ID)
		}
		return nil, fmt.Errorf("failed to create blueprint version: %w", err)
	}

	if err := tx.Blueprint.UpdateOneID(bp.ID).
		SetVersionNumber(bp.VersionNumber + 1).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to bump version number: %w", err)
	}

	return version, nil
}

func buildSnapshot(ctx context.Context, tx *ent.Tx, bp *ent.Blueprint) (*models.BlueprintSnapshot, error) {
	stages, err := tx.BlueprintStage.Query().
		Where(blueprintstage.BlueprintID(bp.ID)).
		Order(ent.Asc(blueprintstage.FieldOrderingIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages for snapshot: %w", err)
	}

	snapshot := &models.BlueprintSnapshot{
		ID:            bp.ID,
		CompanyID:     bp.CompanyID,
		Name:          bp.Name,
		Description:   bp.Description,
		VersionNumber: bp.VersionNumber,
		Language:      bp.Language,
	}

	for _, st := range stages {
		behaviors, err := tx.BlueprintBehavior.Query().
			Where(blueprintbehavior.StageID(st.ID)).
			Order(ent.Asc(blueprintbehavior.FieldUIOrder), ent.Asc(blueprintbehavior.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load behaviors for snapshot: %w", err)
		}

		stageSnap := models.StageSnapshot{
			ID:            st.ID,
			Name:          st.StageName,
			OrderingIndex: st.OrderingIndex,
			Weight:        st.StageWeight,
			Metadata:      st.Metadata,
		}
		for _, b := range behaviors {
			behaviorSnap := models.BehaviorSnapshot{
				ID:            b.ID,
				Name:          b.BehaviorName,
				Description:   b.Description,
				Type:          models.BehaviorType(b.BehaviorType),
				DetectionMode: models.DetectionMode(b.DetectionMode),
				Phrases:       b.Phrases,
				Weight:        b.Weight,
				UIOrder:       b.UIOrder,
				Metadata:      b.Metadata,
			}
			if b.CriticalAction != nil {
				behaviorSnap.CriticalAction = models.CriticalAction(*b.CriticalAction)
			}
			stageSnap.Behaviors = append(stageSnap.Behaviors, behaviorSnap)
		}
		snapshot.Stages = append(snapshot.Stages, stageSnap)
	}

	return snapshot, nil
}
