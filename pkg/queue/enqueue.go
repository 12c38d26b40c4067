package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
)

// Enqueue creates a pending job, deduplicated by idempotency key. When a
// job with the same key already exists, that job is returned instead of
// a new one; callers get the same job back no matter how often they
// submit the same work.
func Enqueue(ctx context.Context, client *ent.Client, kind job.Kind, idempotencyKey string, payload map[string]any) (*ent.Job, error) {
	queued, err := enqueue(ctx, client.Job, kind, idempotencyKey, payload)
	if ent.IsConstraintError(err) {
		// Lost an insert race on the key. Outside a transaction the
		// session is still usable, so a second pass picks up the
		// winner's row.
		return enqueue(ctx, client.Job, kind, idempotencyKey, payload)
	}
	return queued, err
}

// EnqueueTx is Enqueue inside a caller-owned transaction, so the job and
// the state change that warranted it commit together. A concurrent
// insert on the same key surfaces as a constraint error; by then
// Postgres has aborted the transaction, so the caller must roll back
// the whole request rather than retry in place.
func EnqueueTx(ctx context.Context, tx *ent.Tx, kind job.Kind, idempotencyKey string, payload map[string]any) (*ent.Job, error) {
	return enqueue(ctx, tx.Job, kind, idempotencyKey, payload)
}

// enqueue checks for an existing job under the key before inserting.
// The order matters: an insert that trips the unique index poisons the
// surrounding Postgres transaction, so dedup and revival must happen
// without provoking the constraint on the common path.
func enqueue(ctx context.Context, jobs *ent.JobClient, kind job.Kind, idempotencyKey string, payload map[string]any) (*ent.Job, error) {
	existing, err := jobs.Query().
		Where(job.IdempotencyKey(idempotencyKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up job for key %s: %w", idempotencyKey, err)
	}

	if existing != nil {
		// Pending or running work is simply returned; a job that already
		// failed permanently is revived so the work can be retried under
		// the same key.
		switch existing.Status {
		case job.StatusFailed, job.StatusTimedOut, job.StatusCancelled:
			revived, err := jobs.UpdateOneID(existing.ID).
				SetStatus(job.StatusPending).
				SetAttempts(0).
				SetPayload(payload).
				ClearPodID().
				ClearRunAfter().
				ClearErrorMessage().
				ClearStartedAt().
				ClearCompletedAt().
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to revive job for key %s: %w", idempotencyKey, err)
			}
			return revived, nil
		default:
			return existing, nil
		}
	}

	created, err := jobs.Create().
		SetID(uuid.NewString()).
		SetKind(kind).
		SetIdempotencyKey(idempotencyKey).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("concurrent enqueue for key %s: %w", idempotencyKey, err)
		}
		return nil, fmt.Errorf("failed to enqueue %s job: %w", kind, err)
	}
	return created, nil
}
