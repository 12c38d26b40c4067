package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/pipeline"
	"github.com/callscope-ai/callscope/pkg/queue"
	"github.com/callscope-ai/callscope/pkg/redact"
)

// CreateSandboxRunInput describes one sandbox evaluation request.
// Exactly one of RecordingID or Transcript must be set.
type CreateSandboxRunInput struct {
	BlueprintID    string
	RecordingID    string
	Transcript     *models.Transcript
	IdempotencyKey string

	// Synchronous runs the evaluation inline instead of queueing it.
	Synchronous bool
}

// SandboxService runs blueprint evaluations against ad-hoc transcripts
// without touching recording or evaluation state.
type SandboxService struct {
	client     *ent.Client
	blueprints *BlueprintService
	executor   *pipeline.Executor
	redactor   *redact.Service
}

// NewSandboxService creates a new SandboxService.
func NewSandboxService(client *ent.Client, blueprints *BlueprintService, executor *pipeline.Executor, redactor *redact.Service) *SandboxService {
	if client == nil {
		panic("NewSandboxService: client must not be nil")
	}
	if blueprints == nil {
		panic("NewSandboxService: blueprints must not be nil")
	}
	if executor == nil {
		panic("NewSandboxService: executor must not be nil")
	}
	if redactor == nil {
		panic("NewSandboxService: redactor must not be nil")
	}
	return &SandboxService{
		client:     client,
		blueprints: blueprints,
		executor:   executor,
		redactor:   redactor,
	}
}

// CreateRun accepts one sandbox evaluation. Requests carrying an
// idempotency key are deduplicated: resubmitting the same key returns
// the original run regardless of its state. Draft blueprints are
// compiled on the spot.
func (s *SandboxService) CreateRun(ctx context.Context, input CreateSandboxRunInput) (*ent.SandboxRun, error) {
	if input.BlueprintID == "" {
		return nil, NewValidationError("blueprint_id", "blueprint id is required")
	}
	hasTranscript := input.Transcript != nil && len(input.Transcript.Segments) > 0
	if hasTranscript == (input.RecordingID != "") {
		return nil, NewValidationError("transcript", "provide exactly one of recording_id or transcript")
	}

	if input.IdempotencyKey != "" {
		existing, err := s.client.SandboxRun.Query().
			Where(sandboxrun.IdempotencyKey(input.IdempotencyKey)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up sandbox run: %w", err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	bp, err := s.client.Blueprint.Get(ctx, input.BlueprintID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blueprint: %w", err)
	}

	flowVersionID := ""
	if bp.CompiledFlowVersionID != nil {
		flowVersionID = *bp.CompiledFlowVersionID
	}
	if flowVersionID == "" {
		flowVersionID, err = s.blueprints.CompileDraft(ctx, bp.ID)
		if err != nil {
			return nil, err
		}
	}

	create := s.client.SandboxRun.Create().
		SetID(uuid.NewString()).
		SetBlueprintID(bp.ID).
		SetCompiledFlowVersionID(flowVersionID).
		SetStatus(sandboxrun.StatusPending)
	if input.IdempotencyKey != "" {
		create.SetIdempotencyKey(input.IdempotencyKey)
	}
	if hasTranscript {
		create.SetTranscriptSnapshot(s.redactor.RedactTranscript(input.Transcript))
	} else {
		create.SetRecordingID(input.RecordingID)
	}

	run, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race on the idempotency key; hand back the winner.
			return s.client.SandboxRun.Query().
				Where(sandboxrun.IdempotencyKey(input.IdempotencyKey)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create sandbox run: %w", err)
	}

	if input.Synchronous {
		if err := s.executor.ExecuteSandbox(ctx, run.ID); err != nil {
			return nil, err
		}
		return s.client.SandboxRun.Get(ctx, run.ID)
	}

	if _, err := queue.Enqueue(ctx, s.client, job.KindSandboxEvaluate,
		"sandbox-"+run.ID,
		map[string]any{queue.PayloadSandboxRunID: run.ID}); err != nil {
		return nil, err
	}
	return run, nil
}

// GetRun loads one sandbox run scoped to its blueprint.
func (s *SandboxService) GetRun(ctx context.Context, blueprintID, runID string) (*ent.SandboxRun, error) {
	run, err := s.client.SandboxRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load sandbox run: %w", err)
	}
	if run.BlueprintID != blueprintID {
		return nil, ErrNotFound
	}
	return run, nil
}
