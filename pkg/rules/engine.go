// Package rules evaluates compiled compliance rules over a transcript
// and the detection engine's output. The engine performs no persistence;
// for fixed inputs and embedding state its output is deterministic.
package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/callscope-ai/callscope/pkg/config"
	"github.com/callscope-ai/callscope/pkg/embedding"
	"github.com/callscope-ai/callscope/pkg/models"
)

// maxEvidence bounds how many supporting segments one outcome carries.
const maxEvidence = 3

// Engine evaluates compliance rules.
type Engine struct {
	embeddings *embedding.Service
	cfg        *config.PipelineConfig
}

// NewEngine creates a rule engine.
func NewEngine(embeddings *embedding.Service, cfg *config.PipelineConfig) *Engine {
	if embeddings == nil {
		panic("embedding service is required for rules Engine")
	}
	if cfg == nil {
		panic("pipeline configuration is required for rules Engine")
	}
	return &Engine{embeddings: embeddings, cfg: cfg}
}

// Input is everything one rule evaluation pass reads.
type Input struct {
	Flow       *models.CompiledFlow
	Transcript *models.Transcript
	Detection  *models.DetectionOutput
	// Metadata carries call-level flags for conditional rules.
	Metadata map[string]any
}

// Evaluate runs every compiled rule and returns outcomes in rule order.
func (e *Engine) Evaluate(ctx context.Context, in Input) []models.RuleOutcome {
	outcomes := make([]models.RuleOutcome, 0, len(in.Flow.Rules))
	for _, rule := range in.Flow.Rules {
		outcomes = append(outcomes, e.evaluateRule(ctx, in, rule))
	}
	return outcomes
}

func (e *Engine) evaluateRule(ctx context.Context, in Input, rule models.CompiledComplianceRule) models.RuleOutcome {
	out := models.RuleOutcome{
		RuleID:       rule.ID,
		Type:         rule.Type,
		TargetStepID: rule.TargetStepID,
		Severity:     rule.Severity,
		ActionOnFail: rule.ActionOnFail,
	}

	switch rule.Type {
	case models.RuleRequiredPhrase:
		e.evalRequiredPhrase(ctx, in, rule, &out)
	case models.RuleForbiddenPhrase:
		e.evalForbiddenPhrase(ctx, in, rule, &out)
	case models.RuleRequiredStep:
		evalRequiredStep(in, rule, &out)
	case models.RuleSequence:
		evalSequence(in, rule, &out)
	case models.RuleTiming:
		evalTiming(in, rule, &out)
	case models.RuleVerification:
		evalVerification(in, rule, &out)
	case models.RuleConditional:
		evalConditional(in, rule, &out)
	default:
		// Unknown rule types pass: a newer compiler must not fail older
		// engines.
		out.Passed = true
		out.Detail = fmt.Sprintf("unknown rule type %s skipped", rule.Type)
	}

	return out
}

func (e *Engine) evalRequiredPhrase(ctx context.Context, in Input, rule models.CompiledComplianceRule, out *models.RuleOutcome) {
	hits := e.phraseHits(ctx, in, rule)
	out.Passed = len(hits) > 0
	out.Evidence = hits
	if !out.Passed {
		out.Detail = "no utterance matched any required phrase"
	}
}

func (e *Engine) evalForbiddenPhrase(ctx context.Context, in Input, rule models.CompiledComplianceRule, out *models.RuleOutcome) {
	hits := e.phraseHits(ctx, in, rule)
	out.Passed = len(hits) == 0
	if !out.Passed {
		out.Evidence = hits
		out.Detail = "a forbidden phrase was used"
	}
}

// phraseHits returns the segments matching any rule phrase, scoped to the
// rule's stage window when one was detected.
func (e *Engine) phraseHits(ctx context.Context, in Input, rule models.CompiledComplianceRule) []models.EvidenceRef {
	mode := rule.MatchMode
	if mode == "" {
		mode = models.MatchContains
	}

	var regexes []*regexp.Regexp
	if mode == models.MatchRegex {
		for _, p := range rule.Phrases {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				continue
			}
			regexes = append(regexes, re)
		}
	}

	var targetVec []float32
	semanticVec := func() []float32 {
		if targetVec == nil {
			targetVec = e.embeddings.Embed(ctx, strings.Join(rule.Phrases, " || "))
		}
		return targetVec
	}

	var hits []models.EvidenceRef
	for i, seg := range in.Transcript.Segments {
		if !inRuleScope(in, rule, seg) {
			continue
		}

		matched := false
		switch mode {
		case models.MatchExact:
			u := normalizeText(seg.Text)
			for _, p := range rule.Phrases {
				if u == normalizeText(p) {
					matched = true
					break
				}
			}
		case models.MatchContains:
			matched = containsAny(seg.Text, rule.Phrases)
		case models.MatchRegex:
			for _, re := range regexes {
				if re.MatchString(seg.Text) {
					matched = true
					break
				}
			}
		case models.MatchSemantic:
			sim := embedding.Similarity(e.embeddings.Embed(ctx, seg.Text), semanticVec())
			matched = sim >= e.cfg.SemanticThreshold
		case models.MatchHybrid:
			matched = containsAny(seg.Text, rule.Phrases)
			if !matched {
				sim := embedding.Similarity(e.embeddings.Embed(ctx, seg.Text), semanticVec())
				matched = sim >= e.cfg.SemanticThreshold
			}
		}
		if !matched {
			continue
		}

		hits = append(hits, evidenceFor(i, seg))
		if len(hits) == maxEvidence {
			break
		}
	}
	return hits
}

// inRuleScope restricts a phrase rule to its stage's detected window.
// Without a detected window the whole call is in scope.
func inRuleScope(in Input, rule models.CompiledComplianceRule, seg models.Segment) bool {
	scope, _ := rule.Params["scope_stage"].(string)
	if scope == "" {
		return true
	}
	agg, ok := in.Detection.Stages[scope]
	if !ok || !agg.HasWindow {
		return true
	}
	return seg.EndS >= agg.WindowStartS && seg.StartS <= agg.WindowEndS
}

func evalRequiredStep(in Input, rule models.CompiledComplianceRule, out *models.RuleOutcome) {
	res := in.Detection.ResultForStep(rule.TargetStepID)
	if res == nil {
		out.Detail = "target step is not part of this flow"
		return
	}
	out.Passed = res.Detected
	if res.Detected {
		out.Evidence = []models.EvidenceRef{evidenceForResult(in, res)}
	} else {
		out.Detail = "step was not detected in the call"
	}
}

// evalSequence checks that before_step first occurs before after_step.
func evalSequence(in Input, rule models.CompiledComplianceRule, out *models.RuleOutcome) {
	beforeID, _ := rule.Params["before_step"].(string)
	afterID, _ := rule.Params["after_step"].(string)
	allowTies := models.MetaBool(rule.Params, "allow_ties")

	before := in.Detection.ResultForStep(beforeID)
	after := in.Detection.ResultForStep(afterID)
	if before == nil || after == nil {
		out.Detail = "sequence rule references steps outside this flow"
		return
	}
	if !before.Detected || !after.Detected {
		out.Detail = "both steps of the sequence must be detected"
		return
	}

	if allowTies {
		out.Passed = before.StartS <= after.StartS
	} else {
		out.Passed = before.StartS < after.StartS
	}
	out.Evidence = []models.EvidenceRef{evidenceForResult(in, before), evidenceForResult(in, after)}
	if !out.Passed {
		out.Detail = "steps occurred out of order"
	}
}

// evalTiming re-checks the detection engine's window math and reports it
// as a rule outcome. An undetected target or missing anchor passes
// vacuously; absence is the required_step/phrase rule's finding.
func evalTiming(in Input, rule models.CompiledComplianceRule, out *models.RuleOutcome) {
	if rule.Timing == nil {
		out.Passed = true
		out.Detail = "timing rule without constraints skipped"
		return
	}
	res := in.Detection.ResultForStep(rule.TargetStepID)
	if res == nil || !res.Detected {
		out.Passed = true
		out.Detail = "target step not detected; timing not applicable"
		return
	}

	ref, ok := timingReference(in, rule)
	if !ok {
		out.Passed = true
		out.Detail = "timing anchor not detected; timing not applicable"
		return
	}

	out.Passed = res.StartS <= ref+rule.Timing.WithinSeconds
	out.Evidence = []models.EvidenceRef{evidenceForResult(in, res)}
	if !out.Passed {
		out.Detail = fmt.Sprintf("step occurred %.1fs after its reference, limit %.1fs",
			res.StartS-ref, rule.Timing.WithinSeconds)
	}
}

func timingReference(in Input, rule models.CompiledComplianceRule) (float64, bool) {
	if rule.Timing.Reference != models.TimingFromPreviousStep {
		return 0, true
	}
	target := in.Flow.StepByID(rule.TargetStepID)
	if target == nil {
		return 0, false
	}
	var prev *models.CompiledFlowStep
	for i := range in.Flow.Steps {
		s := &in.Flow.Steps[i]
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
	prevRes := in.Detection.ResultForStep(prev.ID)
	if prevRes == nil || !prevRes.Detected {
		return 0, false
	}
	return prevRes.EndS, true
}

// evalVerification counts independent question utterances attributed to
// the verification step's speaker before the gating step occurs.
func evalVerification(in Input, rule models.CompiledComplianceRule, out *models.RuleOutcome) {
	verifyID, _ := rule.Params["verification_step"].(string)
	gateID, _ := rule.Params["must_complete_before_step"].(string)
	requiredCount, ok := models.MetaFloat(rule.Params, "required_question_count")
	if !ok || requiredCount <= 0 {
		out.Passed = true
		out.Detail = "verification rule without a question count skipped"
		return
	}

	verifyStep := in.Flow.StepByID(verifyID)
	if verifyStep == nil {
		out.Detail = "verification rule references a step outside this flow"
		return
	}

	// Questions after the gating step do not count.
	deadline := in.Transcript.Duration()
	if gate := in.Detection.ResultForStep(gateID); gate != nil && gate.Detected {
		deadline = gate.StartS
	}

	count := 0
	var evidence []models.EvidenceRef
	for i, seg := range in.Transcript.Segments {
		if seg.Speaker != verifyStep.ExpectedRole || seg.StartS >= deadline {
			continue
		}
		if !strings.Contains(seg.Text, "?") {
			continue
		}
		count++
		if len(evidence) < maxEvidence {
			evidence = append(evidence, evidenceFor(i, seg))
		}
	}

	out.Passed = float64(count) >= requiredCount
	out.Evidence = evidence
	if !out.Passed {
		out.Detail = fmt.Sprintf("%d verification questions asked, %d required before the gating step",
			count, int(requiredCount))
	}
}

// evalConditional asserts required actions only when its condition holds.
// Condition forms: sentiment_below, phrase_mention, metadata_flag.
func evalConditional(in Input, rule models.CompiledComplianceRule, out *models.RuleOutcome) {
	condition, _ := rule.Params["condition"].(map[string]any)
	if condition == nil {
		out.Passed = true
		out.Detail = "conditional rule without a condition skipped"
		return
	}

	triggered := false
	switch models.MetaString(condition, "type") {
	case "sentiment_below":
		threshold, ok := models.MetaFloat(condition, "threshold")
		if ok {
			for _, span := range in.Transcript.Sentiment {
				if span.Score <= threshold {
					triggered = true
					break
				}
			}
		}
	case "phrase_mention":
		phrase := models.MetaString(condition, "phrase")
		if phrase != "" {
			triggered = containsAny(fullText(in.Transcript), []string{phrase})
		}
	case "metadata_flag":
		triggered = models.MetaBool(in.Metadata, models.MetaString(condition, "key"))
	}

	if !triggered {
		out.Passed = true
		out.Detail = "condition not triggered"
		return
	}

	actions := stringSlice(rule.Params["required_actions"])
	out.Passed = true
	var missing []string
	for _, stepID := range actions {
		res := in.Detection.ResultForStep(stepID)
		if res == nil || !res.Detected {
			out.Passed = false
			missing = append(missing, stepID)
			continue
		}
		if len(out.Evidence) < maxEvidence {
			out.Evidence = append(out.Evidence, evidenceForResult(in, res))
		}
	}
	if !out.Passed {
		out.Detail = fmt.Sprintf("condition triggered but %d required action(s) missing", len(missing))
	}
}

func containsAny(text string, phrases []string) bool {
	u := normalizeText(text)
	for _, p := range phrases {
		n := normalizeText(p)
		if n != "" && strings.Contains(u, n) {
			return true
		}
	}
	return false
}

func fullText(tr *models.Transcript) string {
	if tr.Text != "" {
		return tr.Text
	}
	parts := make([]string, len(tr.Segments))
	for i, seg := range tr.Segments {
		parts[i] = seg.Text
	}
	return strings.Join(parts, " ")
}

func evidenceFor(index int, seg models.Segment) models.EvidenceRef {
	return models.EvidenceRef{
		SegmentIndex: index,
		Speaker:      seg.Speaker,
		StartS:       seg.StartS,
		EndS:         seg.EndS,
		Text:         excerpt(seg.Text),
	}
}

func evidenceForResult(in Input, res *models.BehaviorResult) models.EvidenceRef {
	if res.SegmentIndex >= 0 && res.SegmentIndex < len(in.Transcript.Segments) {
		return evidenceFor(res.SegmentIndex, in.Transcript.Segments[res.SegmentIndex])
	}
	return models.EvidenceRef{SegmentIndex: res.SegmentIndex, StartS: res.StartS, EndS: res.EndS, Text: excerpt(res.MatchedText)}
}

// excerpt bounds evidence text for persisted documents.
func excerpt(s string) string {
	const limit = 160
	if len(s) <= limit {
		return s
	}
	// Walk back to a rune boundary so a multi-byte character is never
	// split mid-sequence.
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

// stringSlice coerces a JSON-decoded array into []string.
func stringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// normalizeText lowercases and collapses whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
