package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/pkg/asr"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/embedding"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/pipeline"
	"github.com/callscope-ai/callscope/pkg/redact"
	"github.com/callscope-ai/callscope/pkg/storage"
	testdb "github.com/callscope-ai/callscope/test/database"
)

// setupSandboxService wires a SandboxService over the deterministic-only
// pipeline: no LLM judge, no embedding provider, no external ASR calls.
func setupSandboxService(t *testing.T) (*SandboxService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	pipelineCfg := config.DefaultPipelineConfig()
	embeddings := embedding.NewService(nil, config.DefaultEmbeddingConfig())
	redactor := redact.NewService(config.DefaultRedactionConfig())
	runner := pipeline.NewRunner(pipelineCfg, embeddings, nil, redactor)
	executor := pipeline.NewExecutor(client, runner,
		asr.NewHTTPProvider(config.DefaultASRConfig()),
		storage.NewHTTPStore(config.DefaultStorageConfig()),
		pipelineCfg)

	blueprints := NewBlueprintService(client, blueprint.NewCompiler(client))
	return NewSandboxService(client, blueprints, executor, redactor), client
}

func sandboxTranscript() *models.Transcript {
	return &models.Transcript{
		Text: "thank you for calling how can I help",
		Segments: []models.Segment{
			{Speaker: models.SpeakerAgent, Text: "thank you for calling", StartS: 0, EndS: 2.1, Confidence: 0.95},
			{Speaker: models.SpeakerAgent, Text: "how can I help", StartS: 2.1, EndS: 3.4, Confidence: 0.93},
			{Speaker: models.SpeakerCaller, Text: "my order never arrived", StartS: 3.6, EndS: 5.2, Confidence: 0.91},
		},
		Confidence: 0.93,
	}
}

func TestCreateRunValidation(t *testing.T) {
	svc, _ := setupSandboxService(t)
	ctx := context.Background()

	t.Run("missing blueprint id", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, CreateSandboxRunInput{Transcript: sandboxTranscript()})
		assert.True(t, IsValidationError(err))
	})

	t.Run("neither transcript nor recording", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, CreateSandboxRunInput{BlueprintID: "bp-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("both transcript and recording", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, CreateSandboxRunInput{
			BlueprintID: "bp-1",
			RecordingID: "rec-1",
			Transcript:  sandboxTranscript(),
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown blueprint", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, CreateSandboxRunInput{
			BlueprintID: "missing",
			Transcript:  sandboxTranscript(),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateRunQueuesAsync(t *testing.T) {
	svc, client := setupSandboxService(t)
	ctx := context.Background()

	blueprints := NewBlueprintService(client, blueprint.NewCompiler(client))
	detail, err := blueprints.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	run, err := svc.CreateRun(ctx, CreateSandboxRunInput{
		BlueprintID: detail.Blueprint.ID,
		Transcript:  sandboxTranscript(),
	})
	require.NoError(t, err)

	assert.Equal(t, detail.Blueprint.ID, run.BlueprintID)
	assert.Equal(t, sandboxrun.StatusPending, run.Status)
	assert.NotEmpty(t, run.CompiledFlowVersionID, "draft blueprint should be compiled on the spot")
	require.NotNil(t, run.TranscriptSnapshot)
	assert.Len(t, run.TranscriptSnapshot.Segments, 3)

	queued, err := client.Job.Query().Where(job.KindEQ(job.KindSandboxEvaluate)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.ID, queued.Payload["sandbox_run_id"])
}

func TestCreateRunIdempotencyKey(t *testing.T) {
	svc, client := setupSandboxService(t)
	ctx := context.Background()

	blueprints := NewBlueprintService(client, blueprint.NewCompiler(client))
	detail, err := blueprints.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	input := CreateSandboxRunInput{
		BlueprintID:    detail.Blueprint.ID,
		Transcript:     sandboxTranscript(),
		IdempotencyKey: "preview-7f3a",
	}

	first, err := svc.CreateRun(ctx, input)
	require.NoError(t, err)

	second, err := svc.CreateRun(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same key must return the original run")

	count, err := client.SandboxRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetRunScopedToBlueprint(t *testing.T) {
	svc, client := setupSandboxService(t)
	ctx := context.Background()

	blueprints := NewBlueprintService(client, blueprint.NewCompiler(client))
	detail, err := blueprints.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	run, err := svc.CreateRun(ctx, CreateSandboxRunInput{
		BlueprintID: detail.Blueprint.ID,
		Transcript:  sandboxTranscript(),
	})
	require.NoError(t, err)

	loaded, err := svc.GetRun(ctx, detail.Blueprint.ID, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, loaded.ID)

	// A run is invisible through another blueprint's scope.
	_, err = svc.GetRun(ctx, "other-blueprint", run.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetRun(ctx, detail.Blueprint.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRunSynchronous(t *testing.T) {
	svc, client := setupSandboxService(t)
	ctx := context.Background()

	blueprints := NewBlueprintService(client, blueprint.NewCompiler(client))
	detail, err := blueprints.CreateBlueprint(ctx, validBlueprintInput("acme"))
	require.NoError(t, err)

	run, err := svc.CreateRun(ctx, CreateSandboxRunInput{
		BlueprintID: detail.Blueprint.ID,
		Transcript:  sandboxTranscript(),
		Synchronous: true,
	})
	require.NoError(t, err)

	assert.Equal(t, sandboxrun.StatusCompleted, run.Status)
	require.NotNil(t, run.Result)
	assert.NotNil(t, run.CompletedAt)

	// Synchronous runs never touch the queue.
	count, err := client.Job.Query().Where(job.KindEQ(job.KindSandboxEvaluate)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
