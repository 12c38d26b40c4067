package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/ent"
	entblueprint "github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintversion"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/queue"
	testdb "github.com/callscope-ai/callscope/test/database"
)

func setupBlueprintService(t *testing.T) (*BlueprintService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	return NewBlueprintService(client, blueprint.NewCompiler(client)), client
}

// validBlueprintInput returns an input that passes publish-time validation.
func validBlueprintInput(companyID string) CreateBlueprintInput {
	return CreateBlueprintInput{
		CompanyID:   companyID,
		Name:        "Support Call QA",
		Description: "Baseline QA flow for the support line",
		Language:    "en",
		Stages: []StageInput{
			{
				Name:          "Opening",
				OrderingIndex: 0,
				Behaviors: []BehaviorInput{
					{
						Name:          "Greets the customer",
						Type:          models.BehaviorRequired,
						DetectionMode: models.DetectExactPhrase,
						Phrases:       []string{"thank you for calling"},
						Weight:        60,
						UIOrder:       0,
					},
					{
						Name:          "Offers help",
						Type:          models.BehaviorRequired,
						DetectionMode: models.DetectSemantic,
						Weight:        40,
						UIOrder:       1,
					},
				},
			},
			{
				Name:          "Closing",
				OrderingIndex: 1,
				Behaviors: []BehaviorInput{
					{
						Name:          "Thanks the customer",
						Type:          models.BehaviorOptional,
						DetectionMode: models.DetectSemantic,
						Weight:        100,
						UIOrder:       0,
					},
				},
			},
		},
	}
}

func TestNewBlueprintService(t *testing.T) {
	client := testdb.NewTestClient(t).Client

	t.Run("panics when client is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBlueprintService(nil, blueprint.NewCompiler(client))
		})
	})

	t.Run("panics when compiler is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBlueprintService(client, nil)
		})
	})
}

func TestCreateBlueprint(t *testing.T) {
	svc, _ := setupBlueprintService(t)
	ctx := context.Background()

	detail, err := svc.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	bp := detail.Blueprint
	assert.Equal(t, "acme", bp.CompanyID)
	assert.Equal(t, "Support Call QA", bp.Name)
	assert.Equal(t, entblueprint.StatusDraft, bp.Status)
	assert.Equal(t, 1, bp.VersionNumber)
	assert.Nil(t, bp.CompiledFlowVersionID)

	require.Len(t, detail.Stages, 2)
	assert.Equal(t, "Opening", detail.Stages[0].Stage.StageName)
	assert.Equal(t, "Closing", detail.Stages[1].Stage.StageName)
	require.Len(t, detail.Stages[0].Behaviors, 2)
	assert.Equal(t, "Greets the customer", detail.Stages[0].Behaviors[0].BehaviorName)
	assert.Equal(t, "Offers help", detail.Stages[0].Behaviors[1].BehaviorName)
}

func TestCreateBlueprintValidation(t *testing.T) {
	svc, _ := setupBlueprintService(t)
	ctx := context.Background()

	t.Run("missing company id", func(t *testing.T) {
		input := validBlueprintInput("")
		_, err := svc.CreateBlueprint(ctx, input)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing name", func(t *testing.T) {
		input := validBlueprintInput("acme")
		input.Name = ""
		_, err := svc.CreateBlueprint(ctx, input)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unnamed stage", func(t *testing.T) {
		input := validBlueprintInput("acme")
		input.Stages[0].Name = ""
		_, err := svc.CreateBlueprint(ctx, input)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unnamed behavior", func(t *testing.T) {
		input := validBlueprintInput("acme")
		input.Stages[0].Behaviors[0].Name = ""
		_, err := svc.CreateBlueprint(ctx, input)
		assert.True(t, IsValidationError(err))
	})
}

func TestListBlueprints(t *testing.T) {
	svc, _ := setupBlueprintService(t)
	ctx := context.Background()

	_, err := svc.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)
	other := validBlueprintInput("acme")
	other.Name = "Sales Call QA"
	_, err = svc.CreateBlueprint(ctx, other)
	require.NoError(t, err)
	_, err = svc.CreateBlueprint(ctx, validBlueprintInput("globex"))
	require.NoError(t, err)

	acme, err := svc.ListBlueprints(ctx, "acme")
	require.NoError(t, err)
	assert.Len(t, acme, 2)

	globex, err := svc.ListBlueprints(ctx, "globex")
	require.NoError(t, err)
	assert.Len(t, globex, 1)

	_, err = svc.ListBlueprints(ctx, "")
	assert.True(t, IsValidationError(err))
}

func TestArchiveBlueprint(t *testing.T) {
	svc, client := setupBlueprintService(t)
	ctx := context.Background()

	detail, err := svc.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	require.NoError(t, svc.ArchiveBlueprint(ctx, detail.Blueprint.ID))

	bp, err := client.Blueprint.Get(ctx, detail.Blueprint.ID)
	require.NoError(t, err)
	assert.Equal(t, entblueprint.StatusArchived, bp.Status)

	// Archived blueprints refuse publishing.
	_, err = svc.Publish(ctx, detail.Blueprint.ID, PublishOptions{})
	assert.ErrorIs(t, err, ErrPrecondition)

	assert.ErrorIs(t, svc.ArchiveBlueprint(ctx, "missing"), ErrNotFound)
}

func TestPublish(t *testing.T) {
	svc, client := setupBlueprintService(t)
	ctx := context.Background()

	detail, err := svc.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	result, err := svc.Publish(ctx, detail.Blueprint.ID, PublishOptions{
		PublishedBy:           "reviewer@acme.test",
		PublishNote:           "initial rollout",
		ForceNormalizeWeights: true,
	})
	require.NoError(t, err)

	version := result.Version
	assert.Equal(t, detail.Blueprint.ID, version.BlueprintID)
	assert.Equal(t, 1, version.VersionNumber)
	require.NotNil(t, version.Snapshot)
	assert.Equal(t, "Support Call QA", version.Snapshot.Name)
	assert.Len(t, version.Snapshot.Stages, 2)
	require.NotNil(t, version.PublishedBy)
	assert.Equal(t, "reviewer@acme.test", *version.PublishedBy)
	require.NotNil(t, version.PublishNote)
	assert.Equal(t, "initial rollout", *version.PublishNote)

	// Compile job queued with the version and the normalization flag.
	queued := result.Job
	assert.Equal(t, job.KindCompileBlueprint, queued.Kind)
	assert.Equal(t, job.StatusPending, queued.Status)
	assert.Equal(t, version.ID, queued.Payload[queue.PayloadBlueprintVersionID])
	assert.Equal(t, true, queued.Payload[queue.PayloadForceNormalize])

	// Version counter advanced; blueprint stays draft until the job runs.
	bp, err := client.Blueprint.Get(ctx, detail.Blueprint.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, bp.VersionNumber)
	assert.Equal(t, entblueprint.StatusDraft, bp.Status)

	// A second publish snapshots the next version.
	result2, err := svc.Publish(ctx, detail.Blueprint.ID, PublishOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result2.Version.VersionNumber)
	assert.Nil(t, result2.Version.PublishedBy)

	_, err = svc.Publish(ctx, "missing", PublishOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPublishStatus(t *testing.T) {
	svc, client := setupBlueprintService(t)
	ctx := context.Background()

	detail, err := svc.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)
	result, err := svc.Publish(ctx, detail.Blueprint.ID, PublishOptions{})
	require.NoError(t, err)

	status, err := svc.GetPublishStatus(ctx, detail.Blueprint.ID, result.Job.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Job.ID, status.Job.ID)
	assert.Equal(t, entblueprint.StatusDraft, status.BlueprintStatus)
	assert.Empty(t, status.CompiledFlowVersionID)

	// A job of another kind is not a publish status.
	foreign, err := queue.Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-x", map[string]any{})
	require.NoError(t, err)
	_, err = svc.GetPublishStatus(ctx, detail.Blueprint.ID, foreign.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetPublishStatus(ctx, detail.Blueprint.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompileDraft(t *testing.T) {
	svc, client := setupBlueprintService(t)
	ctx := context.Background()

	detail, err := svc.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	flowVersionID, err := svc.CompileDraft(ctx, detail.Blueprint.ID)
	require.NoError(t, err)
	require.NotEmpty(t, flowVersionID)

	// Compiled artifacts exist and the draft version records them.
	flowVersion, err := client.CompiledFlowVersion.Get(ctx, flowVersionID)
	require.NoError(t, err)
	assert.Equal(t, "acme", flowVersion.CompanyID)

	version, err := client.BlueprintVersion.Query().
		Where(blueprintversion.BlueprintID(detail.Blueprint.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, version.CompiledFlowVersionID)
	assert.Equal(t, flowVersionID, *version.CompiledFlowVersionID)

	// Draft preview never flips the blueprint to published.
	bp, err := client.Blueprint.Get(ctx, detail.Blueprint.ID)
	require.NoError(t, err)
	assert.Equal(t, entblueprint.StatusDraft, bp.Status)
	assert.Nil(t, bp.CompiledFlowVersionID)
	assert.Equal(t, 2, bp.VersionNumber, "draft compile consumes a version number")
}

func TestCompileDraftRejectsInvalidBlueprint(t *testing.T) {
	svc, _ := setupBlueprintService(t)
	ctx := context.Background()

	input := validBlueprintInput("acme")
	// Exact-phrase detection with no phrases fails validation.
	input.Stages[0].Behaviors[0].Phrases = nil
	detail, err := svc.CreateBlueprint(ctx, input)
	require.NoError(t, err)

	_, err = svc.CompileDraft(ctx, detail.Blueprint.ID)
	assert.True(t, IsValidationError(err))
}
