package queue

import (
	"context"
	"fmt"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/pkg/blueprint"
	"github.com/callscope-ai/callscope/pkg/pipeline"
)

// Payload keys shared by enqueuers and the dispatcher.
const (
	PayloadBlueprintVersionID = "blueprint_version_id"
	PayloadRecordingID        = "recording_id"
	PayloadBlueprintID        = "blueprint_id"
	PayloadSandboxRunID       = "sandbox_run_id"
	PayloadForceNormalize     = "force_normalize_weights"
)

// Dispatcher routes claimed jobs to their executors by kind.
type Dispatcher struct {
	compiler *blueprint.Compiler
	pipeline *pipeline.Executor
}

// NewDispatcher creates a job dispatcher.
func NewDispatcher(compiler *blueprint.Compiler, pipelineExec *pipeline.Executor) *Dispatcher {
	if compiler == nil {
		panic("compiler is required for Dispatcher")
	}
	if pipelineExec == nil {
		panic("pipeline executor is required for Dispatcher")
	}
	return &Dispatcher{compiler: compiler, pipeline: pipelineExec}
}

// Execute runs one job. Every branch is idempotent: the underlying
// executors short-circuit on already-completed work.
func (d *Dispatcher) Execute(ctx context.Context, j *ent.Job) error {
	switch j.Kind {
	case job.KindCompileBlueprint:
		versionID, err := payloadString(j, PayloadBlueprintVersionID)
		if err != nil {
			return err
		}
		force, _ := j.Payload[PayloadForceNormalize].(bool)
		result, err := d.compiler.Compile(ctx, versionID, blueprint.CompileOptions{ForceNormalizeWeights: force})
		if err != nil {
			return err
		}
		if !result.Success {
			// Validation errors are not transient: retrying will not fix
			// the blueprint. Fail the job with the first error.
			return fmt.Errorf("blueprint version %s failed validation: %s", versionID, result.Errors[0].Message)
		}
		return nil

	case job.KindEvaluateRecording:
		recordingID, err := payloadString(j, PayloadRecordingID)
		if err != nil {
			return err
		}
		blueprintID, err := payloadString(j, PayloadBlueprintID)
		if err != nil {
			return err
		}
		return d.pipeline.EvaluateRecording(ctx, recordingID, blueprintID)

	case job.KindSandboxEvaluate:
		runID, err := payloadString(j, PayloadSandboxRunID)
		if err != nil {
			return err
		}
		return d.pipeline.ExecuteSandbox(ctx, runID)

	default:
		return fmt.Errorf("unknown job kind %q", j.Kind)
	}
}

func payloadString(j *ent.Job, key string) (string, error) {
	v, ok := j.Payload[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("job %s payload is missing %q", j.ID, key)
	}
	return v, nil
}
