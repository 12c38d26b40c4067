package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/callscope-ai/callscope/ent"
	entblueprint "github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/job"
	entrecording "github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/pkg/queue"
)

// EvaluationService accepts evaluation requests and exposes their results.
// The actual evaluation runs asynchronously on the worker pool.
type EvaluationService struct {
	client *ent.Client
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(client *ent.Client) *EvaluationService {
	if client == nil {
		panic("NewEvaluationService: client must not be nil")
	}
	return &EvaluationService{client: client}
}

// EvaluationRequest is the accepted state of one evaluation submission.
type EvaluationRequest struct {
	Evaluation *ent.Evaluation
	Job        *ent.Job
}

// RequestEvaluation queues a recording for evaluation against a
// published blueprint. A completed evaluation for the recording is
// returned as-is; a pending one is refused as a duplicate.
func (s *EvaluationService) RequestEvaluation(ctx context.Context, recordingID, blueprintID string) (*EvaluationRequest, error) {
	rec, err := s.client.Recording.Query().
		Where(entrecording.ID(recordingID), entrecording.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load recording: %w", err)
	}
	bp, err := s.client.Blueprint.Get(ctx, blueprintID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blueprint: %w", err)
	}

	if rec.CompanyID != bp.CompanyID {
		return nil, fmt.Errorf("%w: recording and blueprint belong to different companies", ErrPrecondition)
	}
	if bp.Status != entblueprint.StatusPublished {
		return nil, fmt.Errorf("%w: blueprint %s is %s, not published", ErrPrecondition, bp.ID, bp.Status)
	}
	if bp.CompiledFlowVersionID == nil || *bp.CompiledFlowVersionID == "" {
		return nil, fmt.Errorf("%w: blueprint %s has no compiled flow", ErrPrecondition, bp.ID)
	}

	existing, err := s.client.Evaluation.Query().
		Where(evaluation.RecordingID(recordingID), evaluation.DeletedAtIsNil()).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up evaluation: %w", err)
	}
	if existing != nil {
		switch existing.Status {
		case evaluation.StatusCompleted:
			return &EvaluationRequest{Evaluation: existing}, nil
		case evaluation.StatusPending:
			return &EvaluationRequest{Evaluation: existing}, ErrAlreadyExists
		}
		// A failed evaluation is retried via a fresh job below.
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	eval := existing
	if eval == nil {
		eval, err = tx.Evaluation.Create().
			SetID(uuid.NewString()).
			SetRecordingID(recordingID).
			SetBlueprintID(blueprintID).
			SetCompiledFlowVersionID(*bp.CompiledFlowVersionID).
			SetStatus(evaluation.StatusPending).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// A concurrent request won the partial unique index on the
				// recording. The transaction is aborted at this point, so
				// the winner's row is read back outside it.
				tx.Rollback()
				winner, qerr := s.client.Evaluation.Query().
					Where(evaluation.RecordingID(recordingID), evaluation.DeletedAtIsNil()).
					Only(ctx)
				if qerr != nil {
					return nil, fmt.Errorf("failed to load concurrent evaluation: %w", qerr)
				}
				return &EvaluationRequest{Evaluation: winner}, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create evaluation: %w", err)
		}
	} else {
		eval, err = tx.Evaluation.UpdateOneID(existing.ID).
			SetStatus(evaluation.StatusPending).
			ClearErrorCode().
			ClearErrorMessage().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reset failed evaluation: %w", err)
		}
	}

	queued, err := queue.EnqueueTx(ctx, tx, job.KindEvaluateRecording,
		"evaluate-"+recordingID,
		map[string]any{
			queue.PayloadRecordingID: recordingID,
			queue.PayloadBlueprintID: blueprintID,
		})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit evaluation request: %w", err)
	}

	return &EvaluationRequest{Evaluation: eval, Job: queued}, nil
}

// PurgeSoftDeleted hard-deletes evaluations soft-deleted before the
// cutoff. Covers evaluations orphaned by superseded retries; those
// belonging to purged recordings are already gone via cascade.
func (s *EvaluationService) PurgeSoftDeleted(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.Evaluation.Delete().
		Where(evaluation.DeletedAtNotNil(), evaluation.DeletedAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge evaluations: %w", err)
	}
	return n, nil
}

// GetEvaluation returns the live evaluation for a recording.
func (s *EvaluationService) GetEvaluation(ctx context.Context, recordingID string) (*ent.Evaluation, error) {
	eval, err := s.client.Evaluation.Query().
		Where(evaluation.RecordingID(recordingID), evaluation.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load evaluation: %w", err)
	}
	return eval, nil
}
