// Package judge scores one stage at a time with an LLM, falling back to
// a deterministic score derived from rule outcomes whenever the model is
// unavailable or returns something the schema validation rejects.
package judge

import (
	"context"
	"log/slog"

	"google.golang.org/genai"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/llm"
	"github.com/callscope-ai/callscope/pkg/models"
)

// responseSchema constrains the model's JSON output.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"stage_score": {Type: genai.TypeNumber},
		"step_evaluations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"step_id":   {Type: genai.TypeString},
					"passed":    {Type: genai.TypeBoolean},
					"rationale": {Type: genai.TypeString},
					"evidence": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"step_id", "passed"},
			},
		},
		"stage_feedback": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"stage_confidence":   {Type: genai.TypeNumber},
		"critical_violation": {Type: genai.TypeBoolean},
	},
	Required: []string{"stage_score", "step_evaluations", "stage_confidence", "critical_violation"},
}

// StageInput is everything the evaluator sees for one stage.
type StageInput struct {
	Stage models.CompiledFlowStage
	Steps []models.CompiledFlowStep
	// Segments are the redacted utterances inside the stage's detected
	// window, in time order.
	Segments  []models.Segment
	Detection *models.DetectionOutput
	// Rules are the outcomes relevant to this stage.
	Rules []models.RuleOutcome
}

// Evaluator judges stages. A nil client means every stage takes the
// deterministic fallback path.
type Evaluator struct {
	client llm.Client
	cfg    *config.PipelineConfig
}

// NewEvaluator creates a stage evaluator.
func NewEvaluator(client llm.Client, cfg *config.PipelineConfig) *Evaluator {
	if cfg == nil {
		panic("pipeline configuration is required for Evaluator")
	}
	return &Evaluator{client: client, cfg: cfg}
}

// Available reports whether an LLM client is configured.
func (e *Evaluator) Available() bool {
	return e.client != nil
}

// EvaluateStage judges one stage. It never returns an error: any failure
// along the LLM path degrades to the deterministic fallback.
func (e *Evaluator) EvaluateStage(ctx context.Context, in StageInput) models.StageEvaluation {
	user := buildUserPrompt(in)
	hash := promptHash(systemPrompt, user)

	if e.client == nil {
		ev := e.fallback(in, "no LLM configured")
		ev.PromptHash = hash
		return ev
	}

	callCtx := ctx
	if e.cfg.StageJudgeTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.StageJudgeTimeout)
		defer cancel()
	}

	raw, err := e.client.GenerateJSON(callCtx, systemPrompt, user, responseSchema)
	if err != nil {
		slog.Warn("Stage judge call failed, using deterministic fallback",
			"stage_id", in.Stage.ID, "error", err)
		ev := e.fallback(in, "LLM request failed")
		ev.PromptHash = hash
		return ev
	}

	ev, err := parseResponse(raw, in)
	if err != nil {
		slog.Warn("Stage judge response rejected, using deterministic fallback",
			"stage_id", in.Stage.ID, "error", err)
		ev = e.fallback(in, "LLM response failed validation")
	}
	ev.PromptHash = hash
	return ev
}
