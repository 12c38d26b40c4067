// Package detect locates compiled behaviors in a normalized transcript
// using exact, semantic, and hybrid matching.
package detect

import (
	"context"
	"sort"
	"strings"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/embedding"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Confidence blend weights: detector confidence dominates, ASR confidence
// of the matched utterance tempers it.
const (
	detectorConfidenceWeight = 0.7
	asrConfidenceWeight      = 0.3
)

// Engine runs behavior detection. It is deterministic for identical
// inputs and embedding service state.
type Engine struct {
	embeddings *embedding.Service
	cfg        *config.PipelineConfig
}

// NewEngine creates a detection engine.
func NewEngine(embeddings *embedding.Service, cfg *config.PipelineConfig) *Engine {
	if embeddings == nil {
		panic("embedding service is required for detect Engine")
	}
	if cfg == nil {
		panic("pipeline configuration is required for detect Engine")
	}
	return &Engine{embeddings: embeddings, cfg: cfg}
}

// Detect evaluates every compiled step against the transcript and
// aggregates per-stage detection windows.
func (e *Engine) Detect(ctx context.Context, flow *models.CompiledFlow, tr *models.Transcript) *models.DetectionOutput {
	out := &models.DetectionOutput{
		Stages: make(map[string]models.StageDetection, len(flow.Stages)),
	}

	usedSemantic := false
	for _, sp := range orderedSteps(flow) {
		res, semantic := e.detectStep(ctx, tr, sp)
		usedSemantic = usedSemantic || semantic
		out.Behaviors = append(out.Behaviors, res)
	}

	e.applyTimingWindows(flow, out)
	e.aggregateStages(flow, tr, out)

	// The flag matters only when semantic matching actually ran: exact
	// results are unaffected by the provider being down.
	out.EmbeddingFallback = usedSemantic && !e.embeddings.Available()

	return out
}

// orderedSteps returns steps sorted by (stage ordering_index, step
// ordering_index, step id). Flows loaded from storage may not carry
// mapper order.
func orderedSteps(flow *models.CompiledFlow) []models.CompiledFlowStep {
	stageOrder := make(map[string]int, len(flow.Stages))
	for _, st := range flow.Stages {
		stageOrder[st.ID] = st.OrderingIndex
	}

	steps := make([]models.CompiledFlowStep, len(flow.Steps))
	copy(steps, flow.Steps)
	sort.SliceStable(steps, func(i, j int) bool {
		if stageOrder[steps[i].StageID] != stageOrder[steps[j].StageID] {
			return stageOrder[steps[i].StageID] < stageOrder[steps[j].StageID]
		}
		if steps[i].OrderingIndex != steps[j].OrderingIndex {
			return steps[i].OrderingIndex < steps[j].OrderingIndex
		}
		return steps[i].ID < steps[j].ID
	})
	return steps
}

// detectStep finds the best-matching utterance for one step. The second
// return reports whether semantic matching ran.
func (e *Engine) detectStep(ctx context.Context, tr *models.Transcript, sp models.CompiledFlowStep) (models.BehaviorResult, bool) {
	res := models.BehaviorResult{
		StepID:         sp.ID,
		StageID:        sp.StageID,
		MatchType:      models.MatchTypeNone,
		SegmentIndex:   -1,
		CriticalAction: sp.CriticalAction,
	}

	normalizedPhrases := make([]string, len(sp.ExpectedPhrases))
	for i, p := range sp.ExpectedPhrases {
		normalizedPhrases[i] = normalizeText(p)
	}

	// The semantic target vector is computed at most once per step.
	var targetVec []float32
	usedSemantic := false
	semanticVec := func() []float32 {
		if targetVec == nil {
			usedSemantic = true
			targetVec = e.embeddings.Embed(ctx, semanticTarget(sp))
		}
		return targetVec
	}

	bestConf := 0.0
	bestIdx := -1
	bestType := models.MatchTypeNone

	for i, seg := range tr.Segments {
		if seg.Speaker != sp.ExpectedRole {
			continue
		}

		conf, matchType := 0.0, models.MatchTypeNone
		switch sp.DetectionHint {
		case models.DetectExactPhrase:
			conf, matchType = exactMatch(seg.Text, normalizedPhrases)
		case models.DetectSemantic:
			conf, matchType = e.semanticMatch(ctx, seg.Text, semanticVec())
		default: // hybrid: exact wins outright, semantic is the backstop
			conf, matchType = exactMatch(seg.Text, normalizedPhrases)
			if matchType == models.MatchTypeNone {
				conf, matchType = e.semanticMatch(ctx, seg.Text, semanticVec())
			}
		}
		if matchType == models.MatchTypeNone {
			continue
		}

		// Strictly-greater keeps the earliest utterance on ties;
		// segments arrive in time order.
		if conf > bestConf {
			bestConf, bestIdx, bestType = conf, i, matchType
		}
	}

	if bestIdx >= 0 {
		seg := tr.Segments[bestIdx]
		res.Detected = true
		res.MatchType = bestType
		res.MatchedText = seg.Text
		res.SegmentIndex = bestIdx
		res.StartS = seg.StartS
		res.EndS = seg.EndS
		res.Confidence = clamp01(detectorConfidenceWeight*bestConf + asrConfidenceWeight*seg.Confidence)
	}

	switch sp.BehaviorType {
	case models.BehaviorRequired, models.BehaviorCritical:
		res.Violation = !res.Detected
	case models.BehaviorForbidden:
		res.Violation = res.Detected
	}

	return res, usedSemantic
}

// exactMatch reports a normalized substring match against any phrase.
func exactMatch(utterance string, normalizedPhrases []string) (float64, models.MatchType) {
	if len(normalizedPhrases) == 0 {
		return 0, models.MatchTypeNone
	}
	u := normalizeText(utterance)
	for _, p := range normalizedPhrases {
		if p != "" && strings.Contains(u, p) {
			return 1.0, models.MatchTypeExact
		}
	}
	return 0, models.MatchTypeNone
}

func (e *Engine) semanticMatch(ctx context.Context, utterance string, target []float32) (float64, models.MatchType) {
	sim := embedding.Similarity(e.embeddings.Embed(ctx, utterance), target)
	if sim < e.cfg.SemanticThreshold {
		return 0, models.MatchTypeNone
	}
	return sim, models.MatchTypeSemantic
}

// semanticTarget builds the reference text a step is compared against.
func semanticTarget(sp models.CompiledFlowStep) string {
	var parts []string
	if sp.Description != "" {
		parts = append(parts, sp.Description)
	}
	parts = append(parts, sp.ExpectedPhrases...)
	if len(parts) == 0 {
		parts = []string{sp.Name}
	}
	return strings.Join(parts, " || ")
}

// applyTimingWindows downgrades detections that land outside a timing
// rule's window. The violation itself is the rule engine's to report.
func (e *Engine) applyTimingWindows(flow *models.CompiledFlow, out *models.DetectionOutput) {
	for _, rule := range flow.Rules {
		if rule.Type != models.RuleTiming || rule.Timing == nil || rule.TargetStepID == "" {
			continue
		}
		res := out.ResultForStep(rule.TargetStepID)
		if res == nil || !res.Detected {
			continue
		}

		ref, ok := timingReference(flow, out, rule)
		if !ok {
			continue
		}
		if res.StartS > ref+rule.Timing.WithinSeconds {
			res.OutOfWindow = true
		}
	}
}

// timingReference resolves the anchor time for a timing rule. A
// previous_step reference without a detected predecessor has no anchor.
func timingReference(flow *models.CompiledFlow, out *models.DetectionOutput, rule models.CompiledComplianceRule) (float64, bool) {
	if rule.Timing.Reference != models.TimingFromPreviousStep {
		return 0, true
	}

	target := flow.StepByID(rule.TargetStepID)
	if target == nil {
		return 0, false
	}
	var prev *models.CompiledFlowStep
	for i := range flow.Steps {
		s := &flow.Steps[i]
		if s.StageID != target.StageID || s.OrderingIndex >= target.OrderingIndex {
			continue
		}
		if prev == nil || s.OrderingIndex > prev.OrderingIndex {
			prev = s
		}
	}
	if prev == nil {
		return 0, false
	}
	prevRes := out.ResultForStep(prev.ID)
	if prevRes == nil || !prevRes.Detected {
		return 0, false
	}
	return prevRes.EndS, true
}

// aggregateStages computes per-stage counts and the padded time window
// handed to the stage evaluator.
func (e *Engine) aggregateStages(flow *models.CompiledFlow, tr *models.Transcript, out *models.DetectionOutput) {
	duration := tr.Duration()

	for _, st := range flow.Stages {
		agg := models.StageDetection{StageID: st.ID}

		for _, b := range out.Behaviors {
			if b.StageID != st.ID {
				continue
			}
			agg.ExpectedSteps++
			if b.Detected {
				agg.DetectedSteps++
				if !agg.HasWindow || b.StartS < agg.WindowStartS {
					agg.WindowStartS = b.StartS
				}
				if !agg.HasWindow || b.EndS > agg.WindowEndS {
					agg.WindowEndS = b.EndS
				}
				agg.HasWindow = true
			}
			if b.Violation {
				agg.Violations++
			}
		}

		if agg.HasWindow {
			agg.WindowStartS = max(0, agg.WindowStartS-e.cfg.StageWindowPaddingSeconds)
			agg.WindowEndS = min(duration, agg.WindowEndS+e.cfg.StageWindowPaddingSeconds)
		}

		out.Stages[st.ID] = agg
	}
}

// normalizeText lowercases and collapses whitespace for exact matching.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
