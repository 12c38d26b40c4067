// Package pipeline runs the full evaluation of one recording against one
// compiled flow: normalization, redaction, behavior detection,
// deterministic rules, per-stage LLM judgment, and final scoring.
package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/detect"
	"github.com/callscope-ai/callscope/pkg/embedding"
	"github.com/callscope-ai/callscope/pkg/judge"
	"github.com/callscope-ai/callscope/pkg/llm"
	"github.com/callscope-ai/callscope/pkg/models"
	"github.com/callscope-ai/callscope/pkg/redact"
	"github.com/callscope-ai/callscope/pkg/rules"
	"github.com/callscope-ai/callscope/pkg/scoring"
	"github.com/callscope-ai/callscope/pkg/transcript"
)

// Runner composes the evaluation stages. It holds no database access;
// callers hand it a compiled flow and a transcript and persist the
// result themselves. Safe for concurrent use.
type Runner struct {
	cfg        *config.PipelineConfig
	normalizer *transcript.Normalizer
	redactor   *redact.Service
	detector   *detect.Engine
	rules      *rules.Engine
	judge      *judge.Evaluator
	scorer     *scoring.Scorer
	embeddings *embedding.Service
}

// NewRunner wires the evaluation engines. A nil LLM client is allowed:
// every stage then takes the deterministic fallback path.
func NewRunner(cfg *config.PipelineConfig, embeddings *embedding.Service, llmClient llm.Client, redactor *redact.Service) *Runner {
	if cfg == nil {
		panic("pipeline configuration is required for Runner")
	}
	if embeddings == nil {
		panic("embedding service is required for Runner")
	}
	if redactor == nil {
		panic("redaction service is required for Runner")
	}
	return &Runner{
		cfg:        cfg,
		normalizer: transcript.NewNormalizer(cfg),
		redactor:   redactor,
		detector:   detect.NewEngine(embeddings, cfg),
		rules:      rules.NewEngine(embeddings, cfg),
		judge:      judge.NewEvaluator(llmClient, cfg),
		scorer:     scoring.NewScorer(cfg),
		embeddings: embeddings,
	}
}

// RunResult is everything one evaluation run produces.
type RunResult struct {
	Deterministic models.DeterministicResults
	Stages        []models.StageEvaluation
	Final         models.FinalEvaluation

	// Redacted is the normalized, redacted transcript the engines saw.
	Redacted *models.Transcript

	// Usage holds rough cost estimates, reported on sandbox runs.
	Usage models.SandboxUsage
}

// Run evaluates one transcript against one compiled flow. Metadata
// carries call-level flags for conditional rules. Run never fails:
// engine degradations (embedding provider down, LLM rejected) surface
// as warnings and fallbacks inside the result.
func (r *Runner) Run(ctx context.Context, flow *models.CompiledFlow, raw *models.Transcript, metadata map[string]any) *RunResult {
	cacheBefore := r.embeddings.CacheLen()

	norm := r.normalizer.Normalize(raw, transcript.Options{
		KeyEvents: keyEventTimes(flow, raw),
	})
	red := r.redactor.RedactTranscript(norm.Transcript)

	detection := r.detector.Detect(ctx, flow, red)
	outcomes := r.rules.Evaluate(ctx, rules.Input{
		Flow:       flow,
		Transcript: red,
		Detection:  detection,
		Metadata:   metadata,
	})

	det := models.DeterministicResults{
		Detection: *detection,
		Rules:     outcomes,
		Normalize: norm.Meta,
	}
	if detection.EmbeddingFallback {
		det.Warnings = append(det.Warnings,
			"embedding provider unavailable: semantic matching degraded to exact matching")
	}

	stageEvals, usage := r.judgeStages(ctx, flow, red, detection, outcomes)

	final := r.scorer.Score(scoring.Input{
		Flow:          flow,
		Deterministic: &det,
		Stages:        stageEvals,
		ASRConfidence: raw.Confidence,
	})

	usage.EmbeddingCached = cacheBefore
	usage.EmbeddingCalls = r.embeddings.CacheLen() - cacheBefore

	slog.Info("Evaluation run finished",
		"flow_version_id", flow.Version.ID,
		"overall_score", final.OverallScore,
		"overall_passed", final.OverallPassed,
		"requires_human_review", final.RequiresHumanReview,
		"stages", len(stageEvals))

	return &RunResult{
		Deterministic: det,
		Stages:        stageEvals,
		Final:         final,
		Redacted:      red,
		Usage:         usage,
	}
}

// judgeStages runs the stage evaluator over every stage in
// ordering_index order.
func (r *Runner) judgeStages(ctx context.Context, flow *models.CompiledFlow, tr *models.Transcript, detection *models.DetectionOutput, outcomes []models.RuleOutcome) ([]models.StageEvaluation, models.SandboxUsage) {
	stages := make([]models.CompiledFlowStage, len(flow.Stages))
	copy(stages, flow.Stages)
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].OrderingIndex < stages[j].OrderingIndex
	})

	var evals []models.StageEvaluation
	var usage models.SandboxUsage
	for _, st := range stages {
		in := judge.StageInput{
			Stage:     st,
			Steps:     flow.StepsForStage(st.ID),
			Segments:  stageSegments(tr, detection.Stages[st.ID]),
			Detection: detection,
			Rules:     stageOutcomes(flow, st.ID, outcomes),
		}
		usage.PromptChars += judge.PromptSize(in)
		if r.judge.Available() {
			usage.LLMCalls++
		}
		evals = append(evals, r.judge.EvaluateStage(ctx, in))
	}
	return evals, usage
}

// stageSegments picks the utterances inside a stage's padded window.
// Stages with no detected window see the whole call.
func stageSegments(tr *models.Transcript, agg models.StageDetection) []models.Segment {
	if !agg.HasWindow {
		return tr.Segments
	}
	var out []models.Segment
	for _, seg := range tr.Segments {
		if seg.EndS >= agg.WindowStartS && seg.StartS <= agg.WindowEndS {
			out = append(out, seg)
		}
	}
	return out
}

// stageOutcomes filters rule outcomes down to one stage: rules whose
// target step lives in the stage, or whose scope pins them to it.
func stageOutcomes(flow *models.CompiledFlow, stageID string, outcomes []models.RuleOutcome) []models.RuleOutcome {
	var out []models.RuleOutcome
	for _, o := range outcomes {
		if o.TargetStepID != "" {
			if sp := flow.StepByID(o.TargetStepID); sp != nil && sp.StageID == stageID {
				out = append(out, o)
			}
			continue
		}
		if ruleScopeStage(flow, o.RuleID) == stageID {
			out = append(out, o)
		}
	}
	return out
}

func ruleScopeStage(flow *models.CompiledFlow, ruleID string) string {
	for _, rule := range flow.Rules {
		if rule.ID != ruleID {
			continue
		}
		if scope, ok := rule.Params["scope_stage"].(string); ok {
			return scope
		}
	}
	return ""
}

// keyEventTimes finds cheap exact-phrase rule hits in the raw transcript
// so trimming keeps context around them.
func keyEventTimes(flow *models.CompiledFlow, tr *models.Transcript) []float64 {
	var phrases []string
	for _, rule := range flow.Rules {
		for _, p := range rule.Phrases {
			if n := normalizeText(p); n != "" {
				phrases = append(phrases, n)
			}
		}
	}
	if len(phrases) == 0 {
		return nil
	}

	var times []float64
	for _, seg := range tr.Segments {
		text := normalizeText(seg.Text)
		for _, p := range phrases {
			if strings.Contains(text, p) {
				times = append(times, seg.StartS)
				break
			}
		}
	}
	return times
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
