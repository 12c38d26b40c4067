package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/pkg/config"
	testdb "github.com/callscope-ai/callscope/test/database"
)

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		JobTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		MaxAttempts:             3,
		RetryBackoffs:           []time.Duration{time.Second, 3 * time.Second},
	}
}

func TestEnqueueCreatesPendingJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	queued, err := Enqueue(ctx, client, job.KindCompileBlueprint, "compile-v1",
		map[string]any{PayloadBlueprintVersionID: "v1"})
	require.NoError(t, err)

	assert.Equal(t, job.StatusPending, queued.Status)
	assert.Equal(t, job.KindCompileBlueprint, queued.Kind)
	assert.Equal(t, "compile-v1", queued.IdempotencyKey)
	assert.Equal(t, 0, queued.Attempts)
	assert.Equal(t, "v1", queued.Payload[PayloadBlueprintVersionID])
}

func TestEnqueueDeduplicatesByIdempotencyKey(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	first, err := Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-rec-1",
		map[string]any{PayloadRecordingID: "rec-1"})
	require.NoError(t, err)

	second, err := Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-rec-1",
		map[string]any{PayloadRecordingID: "rec-1"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "duplicate enqueue should return the original job")

	count, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnqueueRevivesTerminalJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	queued, err := Enqueue(ctx, client, job.KindSandboxEvaluate, "sandbox-run-1",
		map[string]any{PayloadSandboxRunID: "run-1"})
	require.NoError(t, err)

	// Fail the job permanently.
	now := time.Now()
	err = client.Job.UpdateOneID(queued.ID).
		SetStatus(job.StatusFailed).
		SetAttempts(3).
		SetPodID("pod-old").
		SetErrorMessage("boom").
		SetCompletedAt(now).
		Exec(ctx)
	require.NoError(t, err)

	// Resubmitting the same key revives the job for a fresh set of attempts.
	revived, err := Enqueue(ctx, client, job.KindSandboxEvaluate, "sandbox-run-1",
		map[string]any{PayloadSandboxRunID: "run-1"})
	require.NoError(t, err)

	assert.Equal(t, queued.ID, revived.ID)
	assert.Equal(t, job.StatusPending, revived.Status)
	assert.Equal(t, 0, revived.Attempts)
	assert.Nil(t, revived.PodID)
	assert.Nil(t, revived.ErrorMessage)
	assert.Nil(t, revived.CompletedAt)
}

func TestEnqueueTxRollbackLeavesNoJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	_, err = EnqueueTx(ctx, tx, job.KindCompileBlueprint, "compile-rollback", map[string]any{})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	count, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "rolled-back enqueue should not persist a job")
}

// TestEnqueueTxRevivesFailedJob resubmits a failed job's key inside a
// caller-owned transaction. Dedup must happen by lookup, not by tripping
// the unique index: a unique violation would abort the whole transaction
// and every later statement in it.
func TestEnqueueTxRevivesFailedJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	queued, err := Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-rec-9",
		map[string]any{PayloadRecordingID: "rec-9"})
	require.NoError(t, err)

	err = client.Job.UpdateOneID(queued.ID).
		SetStatus(job.StatusFailed).
		SetAttempts(3).
		SetPodID("pod-old").
		SetErrorMessage("provider 503").
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	revived, err := EnqueueTx(ctx, tx, job.KindEvaluateRecording, "evaluate-rec-9",
		map[string]any{PayloadRecordingID: "rec-9", PayloadBlueprintID: "bp-9"})
	require.NoError(t, err)

	// The transaction must still be usable after the dedup hit.
	_, err = tx.Job.Query().Count(ctx)
	require.NoError(t, err, "transaction should survive enqueueing an existing key")
	require.NoError(t, tx.Commit())

	assert.Equal(t, queued.ID, revived.ID)
	assert.Equal(t, job.StatusPending, revived.Status)
	assert.Equal(t, 0, revived.Attempts)
	assert.Nil(t, revived.PodID)
	assert.Nil(t, revived.ErrorMessage)
	assert.Nil(t, revived.CompletedAt)

	reloaded, err := client.Job.Get(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloaded.Status)
	assert.Equal(t, "bp-9", reloaded.Payload[PayloadBlueprintID])
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending job.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	queued, err := Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-claim-1",
		map[string]any{PayloadRecordingID: "rec-1"})
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending job")
	assert.Equal(t, queued.ID, claimed.ID)
	assert.Equal(t, job.StatusInProgress, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoJobsAvailable
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2, "no more pending jobs should be available")
}

// TestConcurrentClaimsDifferentJobs tests that concurrent workers claim different jobs.
func TestConcurrentClaimsDifferentJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		queued, err := Enqueue(ctx, client, job.KindEvaluateRecording,
			fmt.Sprintf("evaluate-concurrent-%d", i),
			map[string]any{PayloadRecordingID: fmt.Sprintf("rec-%d", i)})
		require.NoError(t, err)
		jobIDs[queued.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil)
			j, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- err
				return
			}
			mu.Lock()
			claimed = append(claimed, j.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		// SKIP LOCKED makes a loser see no claimable rows instead of blocking.
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	}

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed twice", id)
		seen[id] = struct{}{}
		_, known := jobIDs[id]
		assert.True(t, known, "claimed unknown job %s", id)
	}
}

func TestClaimSkipsJobsWaitingOnBackoff(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	queued, err := Enqueue(ctx, client, job.KindCompileBlueprint, "compile-backoff", map[string]any{})
	require.NoError(t, err)
	err = client.Job.UpdateOneID(queued.ID).
		SetRunAfter(time.Now().Add(time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable, "job with future run_after must not be claimed")
}

func TestFinishJobCompleted(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, err := Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-finish-ok", map[string]any{})
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	err = w.finishJob(ctx, claimed, context.Background(), nil)
	require.NoError(t, err)

	reloaded, err := client.Job.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, reloaded.Status)
	assert.NotNil(t, reloaded.CompletedAt)
	assert.Nil(t, reloaded.ErrorMessage)
}

func TestFinishJobSchedulesRetryWithBackoff(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	_, err := Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-finish-retry", map[string]any{})
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, claimed.Attempts)

	before := time.Now()
	err = w.finishJob(ctx, claimed, context.Background(), errors.New("transient failure"))
	require.NoError(t, err)

	reloaded, err := client.Job.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloaded.Status)
	assert.Nil(t, reloaded.PodID)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "transient failure", *reloaded.ErrorMessage)
	require.NotNil(t, reloaded.RunAfter)
	assert.WithinDuration(t, before.Add(cfg.RetryBackoff(1)), *reloaded.RunAfter, 5*time.Second)
}

func TestFinishJobFailsPermanentlyAfterMaxAttempts(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	queued, err := Enqueue(ctx, client, job.KindEvaluateRecording, "evaluate-finish-fail", map[string]any{})
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	// Put the job on its final attempt.
	err = client.Job.UpdateOneID(queued.ID).
		SetAttempts(cfg.MaxAttempts - 1).
		Exec(ctx)
	require.NoError(t, err)

	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil)
	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.Equal(t, cfg.MaxAttempts, claimed.Attempts)

	err = w.finishJob(ctx, claimed, context.Background(), errors.New("persistent failure"))
	require.NoError(t, err)

	reloaded, err := client.Job.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, reloaded.Status)
	assert.NotNil(t, reloaded.CompletedAt)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "persistent failure", *reloaded.ErrorMessage)
}

func TestCleanupStartupOrphans(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()
	cfg := intTestQueueConfig()

	mkInProgress := func(key string, attempts int, podID string) *ent.Job {
		t.Helper()
		queued, err := Enqueue(ctx, client, job.KindEvaluateRecording, key, map[string]any{})
		require.NoError(t, err)
		updated, err := client.Job.UpdateOneID(queued.ID).
			SetStatus(job.StatusInProgress).
			SetAttempts(attempts).
			SetPodID(podID).
			SetStartedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
		return updated
	}

	retryable := mkInProgress("orphan-retryable", 1, "pod-a")
	exhausted := mkInProgress("orphan-exhausted", cfg.MaxAttempts, "pod-a")
	otherPod := mkInProgress("orphan-other-pod", 1, "pod-b")

	err := CleanupStartupOrphans(ctx, client, cfg, "pod-a")
	require.NoError(t, err)

	reloaded, err := client.Job.Get(ctx, retryable.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloaded.Status, "retryable orphan should be requeued")
	assert.Nil(t, reloaded.PodID)

	reloaded, err = client.Job.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusTimedOut, reloaded.Status, "exhausted orphan should be retired")

	reloaded, err = client.Job.Get(ctx, otherPod.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, reloaded.Status, "other pods' jobs must be untouched")
}

// TestOrphanRecoveryAcrossReplicas exercises heartbeat-based orphan
// detection with two independent connection pools over one schema, the
// way two pods share the queue in production.
func TestOrphanRecoveryAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()
	cfg := intTestQueueConfig()

	// Pod A claims a job, then silently dies (heartbeat goes stale).
	_, err := Enqueue(ctx, clientA.Client, job.KindEvaluateRecording, "evaluate-orphaned", map[string]any{})
	require.NoError(t, err)

	workerA := NewWorker("pod-a-worker-0", "pod-a", clientA.Client, cfg, nil)
	claimed, err := workerA.claimNextJob(ctx)
	require.NoError(t, err)

	stale := time.Now().Add(-cfg.OrphanThreshold - time.Minute)
	err = clientA.Client.Job.UpdateOneID(claimed.ID).
		SetLastHeartbeatAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	// Pod B's orphan scan recovers the job.
	poolB := NewWorkerPool("pod-b", clientB.Client, cfg, nil)
	err = poolB.detectAndRecoverOrphans(ctx)
	require.NoError(t, err)

	reloaded, err := clientB.Client.Job.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloaded.Status)
	assert.Nil(t, reloaded.PodID)

	// And a worker on pod B can claim it again.
	workerB := NewWorker("pod-b-worker-0", "pod-b", clientB.Client, cfg, nil)
	reclaimed, err := workerB.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, claimed.ID, reclaimed.ID)
	assert.Equal(t, 2, reclaimed.Attempts)
}
