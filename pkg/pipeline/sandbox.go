package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	enttranscript "github.com/callscope-ai/callscope/ent/transcript"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/models"
)

// ExecuteSandbox runs one sandbox evaluation. It mirrors the recording
// pipeline from detection onward but writes its result onto the sandbox
// run itself: no Evaluation row, no recording state changes.
func (x *Executor) ExecuteSandbox(ctx context.Context, runID string) error {
	run, err := x.client.SandboxRun.Get(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load sandbox run %s: %w", runID, err)
	}
	if run.Status == sandboxrun.StatusCompleted {
		slog.Info("Sandbox run already completed, skipping", "run_id", runID)
		return nil
	}

	if err := x.client.SandboxRun.UpdateOne(run).
		SetStatus(sandboxrun.StatusInProgress).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark sandbox run in progress: %w", err)
	}

	result, err := x.runSandbox(ctx, run)
	if err != nil {
		x.markSandboxFailed(ctx, run, err)
		return err
	}

	if err := x.client.SandboxRun.UpdateOneID(run.ID).
		SetStatus(sandboxrun.StatusCompleted).
		SetResult(result).
		ClearErrorMessage().
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist sandbox result: %w", err)
	}

	slog.Info("Sandbox run completed",
		"run_id", run.ID,
		"blueprint_id", run.BlueprintID,
		"overall_score", result.Final.OverallScore,
		"llm_calls", result.Usage.LLMCalls)
	return nil
}

func (x *Executor) runSandbox(ctx context.Context, run *ent.SandboxRun) (*models.SandboxResult, error) {
	flowVersionID := run.CompiledFlowVersionID
	if flowVersionID == "" {
		// Runs created before the blueprint's compile finished fall back
		// to whatever the blueprint points at now.
		bp, err := x.client.Blueprint.Get(ctx, run.BlueprintID)
		if err != nil {
			return nil, fmt.Errorf("failed to load blueprint %s: %w", run.BlueprintID, err)
		}
		if bp.CompiledFlowVersionID == nil || *bp.CompiledFlowVersionID == "" {
			return nil, fmt.Errorf("blueprint %s has no compiled flow for sandbox run", bp.ID)
		}
		flowVersionID = *bp.CompiledFlowVersionID
	}

	flow, err := blueprint.LoadCompiledFlow(ctx, x.client, flowVersionID)
	if err != nil {
		return nil, err
	}

	tr, err := x.sandboxTranscript(ctx, run)
	if err != nil {
		return nil, err
	}

	res := x.runner.Run(ctx, flow, tr, nil)
	return &models.SandboxResult{
		Deterministic:    res.Deterministic,
		StageEvaluations: res.Stages,
		Final:            res.Final,
		Usage:            res.Usage,
	}, nil
}

// sandboxTranscript resolves the transcript under test: an inline
// snapshot wins, otherwise the referenced recording's stored transcript.
func (x *Executor) sandboxTranscript(ctx context.Context, run *ent.SandboxRun) (*models.Transcript, error) {
	if run.TranscriptSnapshot != nil && len(run.TranscriptSnapshot.Segments) > 0 {
		return run.TranscriptSnapshot, nil
	}
	if run.RecordingID == "" {
		return nil, fmt.Errorf("sandbox run %s has neither a transcript snapshot nor a recording", run.ID)
	}

	row, err := x.client.Transcript.Query().
		Where(enttranscript.RecordingID(run.RecordingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("recording %s has no transcript yet", run.RecordingID)
		}
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	return &models.Transcript{
		RecordingID: row.RecordingID,
		Text:        row.TranscriptText,
		Segments:    row.DiarizedSegments,
		Sentiment:   row.SentimentAnalysis,
		Confidence:  row.AsrConfidence,
	}, nil
}

func (x *Executor) markSandboxFailed(ctx context.Context, run *ent.SandboxRun, cause error) {
	err := x.client.SandboxRun.UpdateOneID(run.ID).
		SetStatus(sandboxrun.StatusFailed).
		SetErrorMessage(truncate(cause.Error(), maxErrorMessageLen)).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to record sandbox failure", "run_id", run.ID, "error", err)
		return
	}
	slog.Warn("Sandbox run failed", "run_id", run.ID, "error", cause)
}
