package blueprint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/ent"
	entblueprint "github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/pkg/models"
	testdb "github.com/callscope-ai/callscope/test/database"
)

// seedVersion inserts a draft blueprint and one version row carrying the
// given snapshot, the state the compiler picks up after a publish.
func seedVersion(ctx context.Context, t *testing.T, client *ent.Client, snapshot *models.BlueprintSnapshot) *ent.BlueprintVersion {
	t.Helper()

	bp, err := client.Blueprint.Create().
		SetID(snapshot.ID).
		SetCompanyID(snapshot.CompanyID).
		SetName(snapshot.Name).
		SetVersionNumber(snapshot.VersionNumber).
		Save(ctx)
	require.NoError(t, err)

	version, err := client.BlueprintVersion.Create().
		SetID("bpv-" + bp.ID).
		SetBlueprintID(bp.ID).
		SetVersionNumber(snapshot.VersionNumber).
		SetSnapshot(snapshot).
		Save(ctx)
	require.NoError(t, err)
	return version
}

func TestCompilePersistsArtifactsAndPublishes(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	compiler := NewCompiler(client)
	ctx := context.Background()

	version := seedVersion(ctx, t, client, sampleBlueprint())

	result, err := compiler.Compile(ctx, version.ID, CompileOptions{})
	require.NoError(t, err)
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.NotEmpty(t, result.CompiledFlowVersionID)

	flowVersion, err := client.CompiledFlowVersion.Get(ctx, result.CompiledFlowVersionID)
	require.NoError(t, err)
	assert.Equal(t, "co-1", flowVersion.CompanyID)
	assert.Equal(t, version.ID, flowVersion.BlueprintVersionID)

	stages, err := client.CompiledFlowStage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stages)
	steps, err := client.CompiledFlowStep.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
	rubrics, err := client.CompiledRubricTemplate.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rubrics)

	bp, err := client.Blueprint.Get(ctx, version.BlueprintID)
	require.NoError(t, err)
	assert.Equal(t, entblueprint.StatusPublished, bp.Status)
	require.NotNil(t, bp.CompiledFlowVersionID)
	assert.Equal(t, result.CompiledFlowVersionID, *bp.CompiledFlowVersionID)
}

func TestCompileIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	compiler := NewCompiler(client)
	ctx := context.Background()

	version := seedVersion(ctx, t, client, sampleBlueprint())

	first, err := compiler.Compile(ctx, version.ID, CompileOptions{})
	require.NoError(t, err)
	require.True(t, first.Success)

	// Duplicate delivery of the same compile job returns the existing
	// artifacts without writing anything new.
	second, err := compiler.Compile(ctx, version.ID, CompileOptions{})
	require.NoError(t, err)
	require.True(t, second.Success)
	assert.Equal(t, first.CompiledFlowVersionID, second.CompiledFlowVersionID)

	count, err := client.CompiledFlowVersion.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCompileDraftPreviewLeavesBlueprintDraft(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	compiler := NewCompiler(client)
	ctx := context.Background()

	version := seedVersion(ctx, t, client, sampleBlueprint())

	result, err := compiler.Compile(ctx, version.ID, CompileOptions{DraftPreview: true})
	require.NoError(t, err)
	require.True(t, result.Success)

	bp, err := client.Blueprint.Get(ctx, version.BlueprintID)
	require.NoError(t, err)
	assert.Equal(t, entblueprint.StatusDraft, bp.Status)
	assert.Nil(t, bp.CompiledFlowVersionID)

	// The version itself still records the artifacts so re-compiles dedupe.
	reloaded, err := client.BlueprintVersion.Get(ctx, version.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CompiledFlowVersionID)
	assert.Equal(t, result.CompiledFlowVersionID, *reloaded.CompiledFlowVersionID)
}

func TestCompileValidationFailureWritesNothing(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	compiler := NewCompiler(client)
	ctx := context.Background()

	snapshot := sampleBlueprint()
	snapshot.Stages[0].Behaviors[0].Phrases = nil // exact_phrase without phrases
	version := seedVersion(ctx, t, client, snapshot)

	result, err := compiler.Compile(ctx, version.ID, CompileOptions{})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)

	count, err := client.CompiledFlowVersion.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	bp, err := client.Blueprint.Get(ctx, version.BlueprintID)
	require.NoError(t, err)
	assert.Equal(t, entblueprint.StatusDraft, bp.Status)
}
