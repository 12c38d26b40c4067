package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 2. Claim next job
	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "kind", claimed.Kind, "worker_id", w.id)
	log.Info("Job claimed", "attempt", claimed.Attempts)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Job context with timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// 4. Heartbeat for orphan detection
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 5. Execute
	execErr := w.executor.Execute(jobCtx, claimed)
	cancelHeartbeat()

	// 6. Terminal status (use background context — job ctx may be cancelled)
	if err := w.finishJob(context.Background(), claimed, jobCtx, execErr); err != nil {
		log.Error("Failed to update job terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	return nil
}

// claimNextJob atomically claims the next runnable job using
// FOR UPDATE SKIP LOCKED. Jobs waiting on a retry backoff (run_after in
// the future) are skipped.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Order by created_at for FIFO processing.
	claimed, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.Or(
				job.RunAfterIsNil(),
				job.RunAfterLTE(time.Now()),
			),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	claimed, err = claimed.Update().
		SetStatus(job.StatusInProgress).
		SetPodID(w.podID).
		SetAttempts(claimed.Attempts + 1).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// finishJob writes the job's terminal state, or schedules a retry.
func (w *Worker) finishJob(ctx context.Context, claimed *ent.Job, jobCtx context.Context, execErr error) error {
	log := slog.With("job_id", claimed.ID, "kind", claimed.Kind)
	now := time.Now()

	switch {
	case execErr == nil:
		log.Info("Job completed")
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusCompleted).
			SetCompletedAt(now).
			ClearErrorMessage().
			Exec(ctx)

	case errors.Is(jobCtx.Err(), context.Canceled):
		// Pod shutdown mid-job: leave it retryable for another pod.
		log.Warn("Job cancelled by shutdown, releasing for retry")
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusPending).
			ClearPodID().
			SetErrorMessage("released: worker shut down mid-job").
			Exec(ctx)

	case errors.Is(jobCtx.Err(), context.DeadlineExceeded) && claimed.Attempts >= w.config.MaxAttempts:
		log.Error("Job timed out on final attempt", "attempts", claimed.Attempts)
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusTimedOut).
			SetCompletedAt(now).
			SetErrorMessage(fmt.Sprintf("timed out after %v", w.config.JobTimeout)).
			Exec(ctx)

	case claimed.Attempts >= w.config.MaxAttempts:
		log.Error("Job failed permanently", "attempts", claimed.Attempts, "error", execErr)
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(execErr.Error()).
			Exec(ctx)

	default:
		backoff := w.config.RetryBackoff(claimed.Attempts)
		log.Warn("Job failed, scheduling retry",
			"attempt", claimed.Attempts, "backoff", backoff, "error", execErr)
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusPending).
			ClearPodID().
			SetRunAfter(now.Add(backoff)).
			SetErrorMessage(execErr.Error()).
			Exec(ctx)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
