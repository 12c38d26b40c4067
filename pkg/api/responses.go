package api

import (
	"time"

	"github.com/callscope-ai/callscope/ent"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/queue"
	"github.com/callscope-ai/callscope/pkg/services"
)

// BlueprintResponse is the authoring view of one blueprint.
type BlueprintResponse struct {
	BlueprintID           string                   `json:"blueprint_id"`
	CompanyID             string                   `json:"company_id"`
	Name                  string                   `json:"name"`
	Description           string                   `json:"description,omitempty"`
	Language              string                   `json:"language,omitempty"`
	Status                string                   `json:"status"`
	VersionNumber         int                      `json:"version_number"`
	CompiledFlowVersionID string                   `json:"compiled_flow_version_id,omitempty"`
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
	Stages                []BlueprintStageResponse `json:"stages"`
}

// BlueprintStageResponse is one stage of a blueprint.
type BlueprintStageResponse struct {
	StageID       string                      `json:"stage_id"`
	StageName     string                      `json:"stage_name"`
	OrderingIndex int                         `json:"ordering_index"`
	Weight        *float64                    `json:"weight,omitempty"`
	Metadata      map[string]any              `json:"metadata,omitempty"`
	Behaviors     []BlueprintBehaviorResponse `json:"behaviors"`
}

// BlueprintBehaviorResponse is one expected behavior of a stage.
type BlueprintBehaviorResponse struct {
	BehaviorID     string         `json:"behavior_id"`
	BehaviorName   string         `json:"behavior_name"`
	Description    string         `json:"description,omitempty"`
	BehaviorType   string         `json:"behavior_type"`
	DetectionMode  string         `json:"detection_mode"`
	Phrases        []string       `json:"phrases,omitempty"`
	Weight         float64        `json:"weight"`
	CriticalAction string         `json:"critical_action,omitempty"`
	UIOrder        int            `json:"ui_order"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// BlueprintListItem is one row of GET /api/v1/blueprints.
type BlueprintListItem struct {
	BlueprintID   string    `json:"blueprint_id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	VersionNumber int       `json:"version_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublishResponse is returned by POST /api/v1/blueprints/:id/publish.
type PublishResponse struct {
	JobID              string       `json:"job_id"`
	BlueprintVersionID string       `json:"blueprint_version_id"`
	VersionNumber      int          `json:"version_number"`
	Status             string       `json:"status"`
	Links              PublishLinks `json:"links"`
}

// PublishLinks points the client at the polling endpoint.
type PublishLinks struct {
	Status string `json:"status"`
}

// PublishStatusResponse is returned by GET /api/v1/blueprints/:id/publish-status/:job_id.
type PublishStatusResponse struct {
	JobID                 string `json:"job_id"`
	Status                string `json:"status"`
	ErrorMessage          string `json:"error_message,omitempty"`
	BlueprintStatus       string `json:"blueprint_status"`
	CompiledFlowVersionID string `json:"compiled_flow_version_id,omitempty"`
}

// RecordingResponse is the API view of one recording.
type RecordingResponse struct {
	RecordingID  string    `json:"recording_id"`
	CompanyID    string    `json:"company_id"`
	AudioURL     string    `json:"audio_url"`
	Status       string    `json:"status"`
	DurationS    *float64  `json:"duration_s,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// EvaluateResponse is returned by POST /api/v1/recordings/:id/evaluate.
type EvaluateResponse struct {
	EvaluationID string `json:"evaluation_id"`
	Status       string `json:"status"`
	JobID        string `json:"job_id,omitempty"`
}

// EvaluationResponse is the full structured evaluation document.
type EvaluationResponse struct {
	EvaluationID          string                       `json:"evaluation_id"`
	RecordingID           string                       `json:"recording_id"`
	BlueprintID           string                       `json:"blueprint_id"`
	CompiledFlowVersionID string                       `json:"compiled_flow_version_id,omitempty"`
	Status                string                       `json:"status"`
	OverallScore          *int                         `json:"overall_score,omitempty"`
	OverallPassed         *bool                        `json:"overall_passed,omitempty"`
	RequiresHumanReview   *bool                        `json:"requires_human_review,omitempty"`
	ConfidenceScore       *float64                     `json:"confidence_score,omitempty"`
	DeterministicResults  *models.DeterministicResults `json:"deterministic_results,omitempty"`
	LLMStageEvaluations   []models.StageEvaluation     `json:"llm_stage_evaluations,omitempty"`
	FinalEvaluation       *models.FinalEvaluation      `json:"final_evaluation,omitempty"`
	ErrorCode             string                       `json:"error_code,omitempty"`
	ErrorMessage          string                       `json:"error_message,omitempty"`
	CreatedAt             time.Time                    `json:"created_at"`
	CompletedAt           *time.Time                   `json:"completed_at,omitempty"`
}

// SandboxRunResponse is the API view of one sandbox run.
type SandboxRunResponse struct {
	RunID                 string                `json:"run_id"`
	BlueprintID           string                `json:"blueprint_id"`
	CompiledFlowVersionID string                `json:"compiled_flow_version_id"`
	Status                string                `json:"status"`
	Result                *models.SandboxResult `json:"result,omitempty"`
	ErrorMessage          string                `json:"error_message,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	CompletedAt           *time.Time            `json:"completed_at,omitempty"`
}

// JobResponse is the API view of one background job.
type JobResponse struct {
	JobID        string     `json:"job_id"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	Attempts     int        `json:"attempts"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// TaskResponse is returned by the internal /tasks handlers.
type TaskResponse struct {
	Status string `json:"status"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Checks     map[string]HealthCheck `json:"checks"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
}

// HealthCheck is one component's health state.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func toBlueprintResponse(detail *services.BlueprintDetail) *BlueprintResponse {
	bp := detail.Blueprint
	resp := &BlueprintResponse{
		BlueprintID:   bp.ID,
		CompanyID:     bp.CompanyID,
		Name:          bp.Name,
		Description:   bp.Description,
		Language:      bp.Language,
		Status:        string(bp.Status),
		VersionNumber: bp.VersionNumber,
		CreatedAt:     bp.CreatedAt,
		UpdatedAt:     bp.UpdatedAt,
		Stages:        []BlueprintStageResponse{},
	}
	if bp.CompiledFlowVersionID != nil {
		resp.CompiledFlowVersionID = *bp.CompiledFlowVersionID
	}
	for _, sd := range detail.Stages {
		stage := BlueprintStageResponse{
			StageID:       sd.Stage.ID,
			StageName:     sd.Stage.StageName,
			OrderingIndex: sd.Stage.OrderingIndex,
			Weight:        sd.Stage.StageWeight,
			Metadata:      sd.Stage.Metadata,
			Behaviors:     []BlueprintBehaviorResponse{},
		}
		for _, b := range sd.Behaviors {
			behavior := BlueprintBehaviorResponse{
				BehaviorID:    b.ID,
				BehaviorName:  b.BehaviorName,
				Description:   b.Description,
				BehaviorType:  string(b.BehaviorType),
				DetectionMode: string(b.DetectionMode),
				Phrases:       b.Phrases,
				Weight:        b.Weight,
				UIOrder:       b.UIOrder,
				Metadata:      b.Metadata,
			}
			if b.CriticalAction != nil {
				behavior.CriticalAction = string(*b.CriticalAction)
			}
			stage.Behaviors = append(stage.Behaviors, behavior)
		}
		resp.Stages = append(resp.Stages, stage)
	}
	return resp
}

func toRecordingResponse(rec *ent.Recording) *RecordingResponse {
	resp := &RecordingResponse{
		RecordingID: rec.ID,
		CompanyID:   rec.CompanyID,
		AudioURL:    rec.AudioURL,
		Status:      string(rec.Status),
		DurationS:   rec.DurationS,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.ErrorMessage != nil {
		resp.ErrorMessage = *rec.ErrorMessage
	}
	return resp
}

func toEvaluationResponse(eval *ent.Evaluation) *EvaluationResponse {
	resp := &EvaluationResponse{
		EvaluationID:          eval.ID,
		RecordingID:           eval.RecordingID,
		BlueprintID:           eval.BlueprintID,
		CompiledFlowVersionID: eval.CompiledFlowVersionID,
		Status:                string(eval.Status),
		OverallScore:          eval.OverallScore,
		OverallPassed:         eval.OverallPassed,
		RequiresHumanReview:   eval.RequiresHumanReview,
		ConfidenceScore:       eval.ConfidenceScore,
		DeterministicResults:  eval.DeterministicResults,
		LLMStageEvaluations:   eval.LlmStageEvaluations,
		FinalEvaluation:       eval.FinalEvaluation,
		CreatedAt:             eval.CreatedAt,
		CompletedAt:           eval.CompletedAt,
	}
	if eval.ErrorCode != nil {
		resp.ErrorCode = *eval.ErrorCode
	}
	if eval.ErrorMessage != nil {
		resp.ErrorMessage = *eval.ErrorMessage
	}
	return resp
}

func toSandboxRunResponse(run *ent.SandboxRun) *SandboxRunResponse {
	resp := &SandboxRunResponse{
		RunID:                 run.ID,
		BlueprintID:           run.BlueprintID,
		CompiledFlowVersionID: run.CompiledFlowVersionID,
		Status:                string(run.Status),
		Result:                run.Result,
		CreatedAt:             run.CreatedAt,
		CompletedAt:           run.CompletedAt,
	}
	if run.ErrorMessage != nil {
		resp.ErrorMessage = *run.ErrorMessage
	}
	return resp
}

func toJobResponse(j *ent.Job) *JobResponse {
	resp := &JobResponse{
		JobID:       j.ID,
		Kind:        string(j.Kind),
		Status:      string(j.Status),
		Attempts:    j.Attempts,
		CreatedAt:   j.CreatedAt,
		StartedAt:   j.StartedAt,
		CompletedAt: j.CompletedAt,
	}
	if j.ErrorMessage != nil {
		resp.ErrorMessage = *j.ErrorMessage
	}
	return resp
}

// jobPublicStatus maps internal job states to the publish-facing
// queued/running/succeeded/failed vocabulary.
func jobPublicStatus(j *ent.Job) string {
	switch j.Status {
	case "pending":
		return "queued"
	case "in_progress":
		return "running"
	case "completed":
		return "succeeded"
	default:
		return "failed"
	}
}
