package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/ent"
	entblueprint "github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/queue"
	testdb "github.com/callscope-ai/callscope/test/database"
)

// publishedFixture creates a recording and a published blueprint with a
// compiled flow, the state RequestEvaluation expects.
func publishedFixture(ctx context.Context, t *testing.T, client *ent.Client, companyID string) (recordingID, blueprintID string) {
	t.Helper()

	rec, err := NewRecordingService(client).CreateRecording(ctx, companyID, "s3://calls/fixture.wav")
	require.NoError(t, err)

	blueprints := NewBlueprintService(client, blueprint.NewCompiler(client))
	detail, err := blueprints.CreateBlueprint(ctx, validBlueprintInput(companyID))
	require.NoError(t, err)

	flowVersionID, err := blueprints.CompileDraft(ctx, detail.Blueprint.ID)
	require.NoError(t, err)
	err = client.Blueprint.UpdateOneID(detail.Blueprint.ID).
		SetStatus(entblueprint.StatusPublished).
		SetCompiledFlowVersionID(flowVersionID).
		Exec(ctx)
	require.NoError(t, err)

	return rec.ID, detail.Blueprint.ID
}

func TestRequestEvaluation(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEvaluationService(client)
	ctx := context.Background()

	recordingID, blueprintID := publishedFixture(ctx, t, client, "acme")

	accepted, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	require.NoError(t, err)

	eval := accepted.Evaluation
	assert.Equal(t, recordingID, eval.RecordingID)
	assert.Equal(t, blueprintID, eval.BlueprintID)
	assert.Equal(t, evaluation.StatusPending, eval.Status)
	assert.NotEmpty(t, eval.CompiledFlowVersionID)

	queued := accepted.Job
	require.NotNil(t, queued)
	assert.Equal(t, job.KindEvaluateRecording, queued.Kind)
	assert.Equal(t, recordingID, queued.Payload[queue.PayloadRecordingID])
	assert.Equal(t, blueprintID, queued.Payload[queue.PayloadBlueprintID])
}

func TestRequestEvaluationPreconditions(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEvaluationService(client)
	ctx := context.Background()

	recordingID, blueprintID := publishedFixture(ctx, t, client, "acme")

	t.Run("unknown recording", func(t *testing.T) {
		_, err := svc.RequestEvaluation(ctx, "missing", blueprintID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown blueprint", func(t *testing.T) {
		_, err := svc.RequestEvaluation(ctx, recordingID, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("company mismatch", func(t *testing.T) {
		otherRec, otherBp := publishedFixture(ctx, t, client, "globex")
		_, err := svc.RequestEvaluation(ctx, otherRec, blueprintID)
		assert.ErrorIs(t, err, ErrPrecondition)
		_, err = svc.RequestEvaluation(ctx, recordingID, otherBp)
		assert.ErrorIs(t, err, ErrPrecondition)
	})

	t.Run("unpublished blueprint", func(t *testing.T) {
		blueprints := NewBlueprintService(client, blueprint.NewCompiler(client))
		draft, err := blueprints.CreateBlueprint(ctx, validBlueprintInput("acme"))
		require.NoError(t, err)
		_, err = svc.RequestEvaluation(ctx, recordingID, draft.Blueprint.ID)
		assert.ErrorIs(t, err, ErrPrecondition)
	})
}

func TestRequestEvaluationDuplicate(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEvaluationService(client)
	ctx := context.Background()

	recordingID, blueprintID := publishedFixture(ctx, t, client, "acme")

	first, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	require.NoError(t, err)

	// Pending duplicate is refused with the pending evaluation attached.
	dup, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	require.NotNil(t, dup)
	assert.Equal(t, first.Evaluation.ID, dup.Evaluation.ID)

	// Completed evaluations short-circuit without error or a new job.
	err = client.Evaluation.UpdateOneID(first.Evaluation.ID).
		SetStatus(evaluation.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	done, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	require.NoError(t, err)
	assert.Equal(t, first.Evaluation.ID, done.Evaluation.ID)
	assert.Equal(t, evaluation.StatusCompleted, done.Evaluation.Status)
	assert.Nil(t, done.Job)
}

// TestRequestEvaluationConcurrentDuplicates races several requests for
// the same recording. Exactly one evaluation row may exist afterwards;
// losers get the winner's row back as a duplicate, never a raw
// constraint error.
func TestRequestEvaluationConcurrentDuplicates(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEvaluationService(client)
	ctx := context.Background()

	recordingID, blueprintID := publishedFixture(ctx, t, client, "acme")

	const requests = 4
	type outcome struct {
		result *EvaluationRequest
		err    error
	}
	results := make([]outcome, requests)

	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
			results[i] = outcome{result: res, err: err}
		}(i)
	}
	wg.Wait()

	count, err := client.Evaluation.Query().
		Where(evaluation.RecordingID(recordingID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "exactly one evaluation row may exist")

	winner, err := client.Evaluation.Query().
		Where(evaluation.RecordingID(recordingID)).
		Only(ctx)
	require.NoError(t, err)

	accepted := 0
	for _, out := range results {
		if out.err == nil {
			accepted++
		} else {
			require.ErrorIs(t, out.err, ErrAlreadyExists)
		}
		require.NotNil(t, out.result, "every caller gets the evaluation back")
		assert.Equal(t, winner.ID, out.result.Evaluation.ID)
	}
	assert.Equal(t, 1, accepted, "exactly one request may start the pipeline")
}

func TestRequestEvaluationRetriesFailed(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEvaluationService(client)
	ctx := context.Background()

	recordingID, blueprintID := publishedFixture(ctx, t, client, "acme")

	first, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	require.NoError(t, err)

	// Simulate a permanent pipeline failure.
	err = client.Evaluation.UpdateOneID(first.Evaluation.ID).
		SetStatus(evaluation.StatusFailed).
		SetErrorCode("ASR_UNAVAILABLE").
		SetErrorMessage("provider 503").
		Exec(ctx)
	require.NoError(t, err)
	err = client.Job.UpdateOneID(first.Job.ID).
		SetStatus(job.StatusFailed).
		SetAttempts(3).
		SetErrorMessage("provider 503").
		Exec(ctx)
	require.NoError(t, err)

	// Re-requesting resets the evaluation in place and revives the job.
	retried, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	require.NoError(t, err)
	assert.Equal(t, first.Evaluation.ID, retried.Evaluation.ID)
	assert.Equal(t, evaluation.StatusPending, retried.Evaluation.Status)
	assert.Nil(t, retried.Evaluation.ErrorCode)
	assert.Nil(t, retried.Evaluation.ErrorMessage)

	require.NotNil(t, retried.Job)
	assert.Equal(t, first.Job.ID, retried.Job.ID)
	assert.Equal(t, job.StatusPending, retried.Job.Status)
	assert.Equal(t, 0, retried.Job.Attempts)
}

func TestGetEvaluation(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEvaluationService(client)
	ctx := context.Background()

	recordingID, blueprintID := publishedFixture(ctx, t, client, "acme")
	accepted, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	require.NoError(t, err)

	loaded, err := svc.GetEvaluation(ctx, recordingID)
	require.NoError(t, err)
	assert.Equal(t, accepted.Evaluation.ID, loaded.ID)

	_, err = svc.GetEvaluation(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPurgeSoftDeletedEvaluations(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEvaluationService(client)
	ctx := context.Background()

	recordingID, blueprintID := publishedFixture(ctx, t, client, "acme")
	accepted, err := svc.RequestEvaluation(ctx, recordingID, blueprintID)
	require.NoError(t, err)

	err = client.Evaluation.UpdateOneID(accepted.Evaluation.ID).
		SetDeletedAt(time.Now().AddDate(0, 0, -45)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := svc.PurgeSoftDeleted(ctx, time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.Evaluation.Get(ctx, accepted.Evaluation.ID)
	assert.True(t, ent.IsNotFound(err))
}
