package api

import "github.com/callscope-ai/callscope/pkg/models"

// CreateBlueprintRequest is the HTTP request body for POST /api/v1/blueprints.
type CreateBlueprintRequest struct {
	CompanyID   string                  `json:"company_id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Language    string                  `json:"language,omitempty"`
	Stages      []BlueprintStageRequest `json:"stages,omitempty"`
}

// BlueprintStageRequest is one stage in a create request.
type BlueprintStageRequest struct {
	StageName     string                     `json:"stage_name"`
	OrderingIndex int                        `json:"ordering_index"`
	Weight        *float64                   `json:"weight,omitempty"`
	Metadata      map[string]any             `json:"metadata,omitempty"`
	Behaviors     []BlueprintBehaviorRequest `json:"behaviors,omitempty"`
}

// BlueprintBehaviorRequest is one expected behavior in a create request.
type BlueprintBehaviorRequest struct {
	BehaviorName   string         `json:"behavior_name"`
	Description    string         `json:"description,omitempty"`
	BehaviorType   string         `json:"behavior_type"`
	DetectionMode  string         `json:"detection_mode"`
	Phrases        []string       `json:"phrases,omitempty"`
	Weight         float64        `json:"weight"`
	CriticalAction string         `json:"critical_action,omitempty"`
	UIOrder        int            `json:"ui_order,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// PublishBlueprintRequest is the body for POST /api/v1/blueprints/:id/publish.
type PublishBlueprintRequest struct {
	ForceNormalizeWeights bool   `json:"force_normalize_weights,omitempty"`
	PublishNote           string `json:"publish_note,omitempty"`
}

// CreateRecordingRequest is the body for POST /api/v1/recordings.
type CreateRecordingRequest struct {
	CompanyID string `json:"company_id"`
	AudioURL  string `json:"audio_url"`
}

// EvaluateRecordingRequest is the body for POST /api/v1/recordings/:id/evaluate.
type EvaluateRecordingRequest struct {
	BlueprintID string `json:"blueprint_id"`
}

// SandboxEvaluateRequest is the body for POST /api/v1/blueprints/:id/sandbox-evaluate.
// Exactly one of Input.Transcript or Input.RecordingID must be set.
type SandboxEvaluateRequest struct {
	Mode  string              `json:"mode,omitempty"`
	Input SandboxEvaluateSeed `json:"input"`
}

// SandboxEvaluateSeed carries the transcript source for a sandbox run.
type SandboxEvaluateSeed struct {
	Transcript  *models.Transcript `json:"transcript,omitempty"`
	RecordingID string             `json:"recording_id,omitempty"`
}

// TaskCompileBlueprintRequest is the body for POST /api/v1/tasks/compile-blueprint.
type TaskCompileBlueprintRequest struct {
	BlueprintID        string              `json:"blueprint_id,omitempty"`
	BlueprintVersionID string              `json:"blueprint_version_id"`
	CompileOptions     *TaskCompileOptions `json:"compile_options,omitempty"`
	UserID             string              `json:"user_id,omitempty"`
}

// TaskCompileOptions mirrors the compiler options accepted over HTTP.
type TaskCompileOptions struct {
	ForceNormalizeWeights bool `json:"force_normalize_weights,omitempty"`
}

// TaskProcessRecordingRequest is the body for POST /api/v1/tasks/process-recording.
type TaskProcessRecordingRequest struct {
	RecordingID string `json:"recording_id"`
	BlueprintID string `json:"blueprint_id"`
}

// TaskSandboxEvaluateRequest is the body for POST /api/v1/tasks/sandbox-evaluate.
type TaskSandboxEvaluateRequest struct {
	SandboxRunID string `json:"sandbox_run_id"`
}
