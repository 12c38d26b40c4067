package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/pkg/config"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently; operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs with stale heartbeats.
// Jobs with attempts left go back to pending for another pod to claim;
// exhausted ones are marked timed_out.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, orphan := range orphans {
		if err := p.recoverOrphanedJob(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", orphan.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob requeues or retires one orphaned job.
func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, orphan *ent.Job) error {
	podID := "unknown"
	if orphan.PodID != nil {
		podID = *orphan.PodID
	}
	lastHeartbeat := "unknown"
	if orphan.LastHeartbeatAt != nil {
		lastHeartbeat = orphan.LastHeartbeatAt.Format(time.RFC3339)
	}
	log := slog.With("job_id", orphan.ID, "old_pod_id", podID)

	if orphan.Attempts >= p.config.MaxAttempts {
		err := orphan.Update().
			SetStatus(job.StatusTimedOut).
			SetCompletedAt(time.Now()).
			SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s, attempts exhausted", podID, lastHeartbeat)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark job as timed_out: %w", err)
		}
		log.Warn("Orphaned job marked as timed_out", "last_heartbeat", lastHeartbeat)
		return nil
	}

	err := orphan.Update().
		SetStatus(job.StatusPending).
		ClearPodID().
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s, requeued", podID, lastHeartbeat)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned job: %w", err)
	}
	log.Warn("Orphaned job requeued", "last_heartbeat", lastHeartbeat, "attempts", orphan.Attempts)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of jobs owned by
// this pod that were in-progress when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, orphan := range orphans {
		update := orphan.Update()
		if orphan.Attempts >= cfg.MaxAttempts {
			update.
				SetStatus(job.StatusTimedOut).
				SetCompletedAt(now).
				SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted, attempts exhausted", podID))
		} else {
			update.
				SetStatus(job.StatusPending).
				ClearPodID().
				SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while job was in progress", podID))
		}
		if err := update.Exec(ctx); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", orphan.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", orphan.ID)
	}

	return nil
}
