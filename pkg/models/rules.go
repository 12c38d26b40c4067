package models

// EvidenceRef points at a transcript segment supporting a rule outcome.
type EvidenceRef struct {
	SegmentIndex int     `json:"segment_index"`
	Speaker      Speaker `json:"speaker"`
	StartS       float64 `json:"start_s"`
	EndS         float64 `json:"end_s"`
	Text         string  `json:"text"`
}

// RuleOutcome is the result of evaluating one compiled compliance rule.
type RuleOutcome struct {
	RuleID       string         `json:"rule_id"`
	Type         RuleType       `json:"rule_type"`
	TargetStepID string         `json:"target,omitempty"`
	Passed       bool           `json:"passed"`
	Severity     Severity       `json:"severity"`
	ActionOnFail CriticalAction `json:"action_on_fail,omitempty"`
	Evidence     []EvidenceRef  `json:"evidence,omitempty"`
	Detail       string         `json:"detail,omitempty"`
}

// DeterministicResults is the persisted document combining detection output
// and rule outcomes. It alone must support a defensible evaluation; the LLM
// path only refines it.
type DeterministicResults struct {
	Detection DetectionOutput `json:"detection"`
	Rules     []RuleOutcome   `json:"rules"`
	Normalize NormalizeMeta   `json:"normalize_meta"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// FailedRules returns outcomes that did not pass.
func (d *DeterministicResults) FailedRules() []RuleOutcome {
	var out []RuleOutcome
	for _, r := range d.Rules {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}

// HasCriticalFailure reports whether any critical-severity rule failed or a
// fail_overall action triggered.
func (d *DeterministicResults) HasCriticalFailure() bool {
	for _, r := range d.Rules {
		if !r.Passed && (r.Severity == SeverityCritical || r.ActionOnFail == CriticalFailOverall) {
			return true
		}
	}
	for _, b := range d.Detection.Behaviors {
		if b.Violation && b.CriticalAction == CriticalFailOverall {
			return true
		}
	}
	return false
}
