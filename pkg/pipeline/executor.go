package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/callscope-ai/callscope/ent"
	entblueprint "github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/evaluation"
	entrecording "github.com/callscope-ai/callscope/ent/recording"
	enttranscript "github.com/callscope-ai/callscope/ent/transcript"
	"github.com/callscope-ai/callscope/pkg/asr"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/storage"
)

// Stable error codes persisted on failed evaluations.
const (
	CodePrecondition  = "precondition_error"
	CodeTranscription = "transcription_error"
	CodeInternal      = "internal_error"
)

// maxErrorMessageLen bounds persisted error messages.
const maxErrorMessageLen = 500

// Executor drives one recording's evaluation end to end: preconditions,
// transcript acquisition, the engine run, and the terminal database
// writes. A recording it touches always ends completed or failed, never
// stuck processing.
type Executor struct {
	client *ent.Client
	runner *Runner
	asr    asr.Provider
	store  storage.Store
	cfg    *config.PipelineConfig
}

// NewExecutor creates an evaluation executor.
func NewExecutor(client *ent.Client, runner *Runner, provider asr.Provider, store storage.Store, cfg *config.PipelineConfig) *Executor {
	if client == nil {
		panic("database client is required for Executor")
	}
	if runner == nil {
		panic("runner is required for Executor")
	}
	if provider == nil {
		panic("ASR provider is required for Executor")
	}
	if store == nil {
		panic("storage client is required for Executor")
	}
	if cfg == nil {
		panic("pipeline configuration is required for Executor")
	}
	return &Executor{client: client, runner: runner, asr: provider, store: store, cfg: cfg}
}

// EvaluateRecording evaluates one recording against one published
// blueprint. Safe to call repeatedly with the same arguments: a
// completed evaluation short-circuits, a failed one is retried in place.
func (x *Executor) EvaluateRecording(ctx context.Context, recordingID, blueprintID string) error {
	rec, err := x.client.Recording.Get(ctx, recordingID)
	if err != nil {
		return fmt.Errorf("failed to load recording %s: %w", recordingID, err)
	}
	bp, err := x.client.Blueprint.Get(ctx, blueprintID)
	if err != nil {
		return fmt.Errorf("failed to load blueprint %s: %w", blueprintID, err)
	}

	existing, err := x.client.Evaluation.Query().
		Where(evaluation.RecordingID(recordingID), evaluation.DeletedAtIsNil()).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to look up evaluation: %w", err)
	}
	if existing != nil && existing.Status == evaluation.StatusCompleted {
		slog.Info("Evaluation already completed, skipping",
			"recording_id", recordingID, "evaluation_id", existing.ID)
		return nil
	}

	if err := checkPreconditions(rec, bp); err != nil {
		x.markFailed(ctx, rec, bp, existing, CodePrecondition, err)
		return err
	}

	if err := x.client.Recording.UpdateOne(rec).
		SetStatus(entrecording.StatusProcessing).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark recording processing: %w", err)
	}

	flow, err := blueprint.LoadCompiledFlow(ctx, x.client, *bp.CompiledFlowVersionID)
	if err != nil {
		x.markFailed(ctx, rec, bp, existing, CodeInternal, err)
		return err
	}

	tr, err := x.ensureTranscript(ctx, rec)
	if err != nil {
		x.markFailed(ctx, rec, bp, existing, CodeTranscription, err)
		return err
	}

	result := x.runner.Run(ctx, flow, tr, nil)

	if err := x.persistCompleted(ctx, rec, bp, existing, flow, tr, result); err != nil {
		x.markFailed(ctx, rec, bp, existing, CodeInternal, err)
		return err
	}
	return nil
}

// checkPreconditions validates that the blueprint can evaluate the
// recording at all. These are re-checked at execution time: state may
// have changed between enqueue and claim.
func checkPreconditions(rec *ent.Recording, bp *ent.Blueprint) error {
	if rec.CompanyID != bp.CompanyID {
		return fmt.Errorf("recording %s and blueprint %s belong to different companies", rec.ID, bp.ID)
	}
	if bp.Status != entblueprint.StatusPublished {
		return fmt.Errorf("blueprint %s is %s, not published", bp.ID, bp.Status)
	}
	if bp.CompiledFlowVersionID == nil || *bp.CompiledFlowVersionID == "" {
		return fmt.Errorf("blueprint %s has no compiled flow", bp.ID)
	}
	return nil
}

// ensureTranscript returns the recording's stored transcript, running
// ASR first when none exists. Stored transcripts are already redacted;
// redaction is idempotent, so the engines may redact again freely.
func (x *Executor) ensureTranscript(ctx context.Context, rec *ent.Recording) (*models.Transcript, error) {
	row, err := x.client.Transcript.Query().
		Where(enttranscript.RecordingID(rec.ID)).
		Only(ctx)
	if err == nil {
		return &models.Transcript{
			RecordingID: row.RecordingID,
			Text:        row.TranscriptText,
			Segments:    row.DiarizedSegments,
			Sentiment:   row.SentimentAnalysis,
			Confidence:  row.AsrConfidence,
		}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up transcript: %w", err)
	}

	signedURL, err := x.store.SignedURL(ctx, rec.AudioURL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign audio URL: %w", err)
	}

	asrCtx := ctx
	if x.cfg.ASRTimeout > 0 {
		var cancel context.CancelFunc
		asrCtx, cancel = context.WithTimeout(ctx, x.cfg.ASRTimeout)
		defer cancel()
	}
	tr, err := x.asr.Transcribe(asrCtx, signedURL)
	if err != nil {
		return nil, err
	}
	tr.RecordingID = rec.ID

	// Only the redacted form touches storage.
	redacted := x.runner.redactor.RedactTranscript(tr)

	err = x.client.Transcript.Create().
		SetID(uuid.NewString()).
		SetRecordingID(rec.ID).
		SetTranscriptText(redacted.Text).
		SetDiarizedSegments(redacted.Segments).
		SetSentimentAnalysis(redacted.Sentiment).
		SetAsrConfidence(redacted.Confidence).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to store transcript: %w", err)
	}

	slog.Info("Transcript acquired",
		"recording_id", rec.ID,
		"segments", len(redacted.Segments),
		"asr_confidence", redacted.Confidence)
	return redacted, nil
}

// persistCompleted writes the terminal evaluation and recording state in
// one transaction.
func (x *Executor) persistCompleted(ctx context.Context, rec *ent.Recording, bp *ent.Blueprint, existing *ent.Evaluation, flow *models.CompiledFlow, tr *models.Transcript, result *RunResult) error {
	tx, err := x.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	if existing != nil {
		err = tx.Evaluation.UpdateOneID(existing.ID).
			SetStatus(evaluation.StatusCompleted).
			SetCompiledFlowVersionID(flow.Version.ID).
			SetOverallScore(result.Final.OverallScore).
			SetOverallPassed(result.Final.OverallPassed).
			SetRequiresHumanReview(result.Final.RequiresHumanReview).
			SetConfidenceScore(result.Final.ConfidenceScore).
			SetDeterministicResults(&result.Deterministic).
			SetLlmStageEvaluations(result.Stages).
			SetFinalEvaluation(&result.Final).
			ClearErrorCode().
			ClearErrorMessage().
			SetCompletedAt(now).
			Exec(ctx)
	} else {
		err = tx.Evaluation.Create().
			SetID(uuid.NewString()).
			SetRecordingID(rec.ID).
			SetBlueprintID(bp.ID).
			SetCompiledFlowVersionID(flow.Version.ID).
			SetStatus(evaluation.StatusCompleted).
			SetOverallScore(result.Final.OverallScore).
			SetOverallPassed(result.Final.OverallPassed).
			SetRequiresHumanReview(result.Final.RequiresHumanReview).
			SetConfidenceScore(result.Final.ConfidenceScore).
			SetDeterministicResults(&result.Deterministic).
			SetLlmStageEvaluations(result.Stages).
			SetFinalEvaluation(&result.Final).
			SetCompletedAt(now).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to persist evaluation: %w", err)
	}

	if err := tx.Recording.UpdateOneID(rec.ID).
		SetStatus(entrecording.StatusCompleted).
		SetDurationS(tr.Duration()).
		ClearErrorMessage().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark recording completed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit evaluation: %w", err)
	}

	slog.Info("Evaluation completed",
		"recording_id", rec.ID,
		"blueprint_id", bp.ID,
		"overall_score", result.Final.OverallScore,
		"overall_passed", result.Final.OverallPassed)
	return nil
}

// markFailed records a failed evaluation and releases the recording from
// processing. Best effort: persistence errors here are logged, not
// returned, so the original failure stays visible to the caller.
func (x *Executor) markFailed(ctx context.Context, rec *ent.Recording, bp *ent.Blueprint, existing *ent.Evaluation, code string, cause error) {
	msg := truncate(cause.Error(), maxErrorMessageLen)

	tx, err := x.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to record evaluation failure", "recording_id", rec.ID, "error", err)
		return
	}
	defer tx.Rollback()

	now := time.Now()
	if existing != nil {
		err = tx.Evaluation.UpdateOneID(existing.ID).
			SetStatus(evaluation.StatusFailed).
			SetErrorCode(code).
			SetErrorMessage(msg).
			SetCompletedAt(now).
			Exec(ctx)
	} else {
		create := tx.Evaluation.Create().
			SetID(uuid.NewString()).
			SetRecordingID(rec.ID).
			SetBlueprintID(bp.ID).
			SetStatus(evaluation.StatusFailed).
			SetErrorCode(code).
			SetErrorMessage(msg).
			SetCompletedAt(now)
		if bp.CompiledFlowVersionID != nil {
			create.SetCompiledFlowVersionID(*bp.CompiledFlowVersionID)
		}
		err = create.Exec(ctx)
	}
	if err != nil {
		slog.Error("Failed to persist failed evaluation", "recording_id", rec.ID, "error", err)
		return
	}

	if err := tx.Recording.UpdateOneID(rec.ID).
		SetStatus(entrecording.StatusFailed).
		SetErrorMessage(msg).
		Exec(ctx); err != nil {
		slog.Error("Failed to mark recording failed", "recording_id", rec.ID, "error", err)
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit evaluation failure", "recording_id", rec.ID, "error", err)
		return
	}

	slog.Warn("Evaluation failed",
		"recording_id", rec.ID,
		"blueprint_id", bp.ID,
		"error_code", code,
		"error", cause)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
