package models

// RuleType enumerates compiled compliance rule kinds.
type RuleType string

// RuleType values.
const (
	RuleRequiredPhrase  RuleType = "required_phrase"
	RuleForbiddenPhrase RuleType = "forbidden_phrase"
	RuleRequiredStep    RuleType = "required_step"
	RuleSequence        RuleType = "sequence_rule"
	RuleTiming          RuleType = "timing_rule"
	RuleVerification    RuleType = "verification_rule"
	RuleConditional     RuleType = "conditional_rule"
)

// MatchMode selects how rule phrases are matched against utterances.
type MatchMode string

// MatchMode values.
const (
	MatchExact    MatchMode = "exact"
	MatchContains MatchMode = "contains"
	MatchRegex    MatchMode = "regex"
	MatchSemantic MatchMode = "semantic"
	MatchHybrid   MatchMode = "hybrid"
)

// Severity grades a rule violation.
type Severity string

// Severity values.
const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// TimingReference anchors a timing rule.
type TimingReference string

// TimingReference values.
const (
	TimingFromCallStart    TimingReference = "call_start"
	TimingFromPreviousStep TimingReference = "previous_step"
)

// TimingConstraints bounds when a target step must occur.
type TimingConstraints struct {
	WithinSeconds float64         `json:"within_seconds"`
	Reference     TimingReference `json:"reference"`
	ScopeStageID  string          `json:"scope_stage,omitempty"`
}

// CompiledFlowVersion is the root compiled artifact for one published
// blueprint version.
type CompiledFlowVersion struct {
	ID                 string         `json:"id"`
	CompanyID          string         `json:"company_id"`
	BlueprintVersionID string         `json:"blueprint_version_id"`
	Name               string         `json:"name"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// CompiledFlowStage is one ordered stage within a compiled flow.
type CompiledFlowStage struct {
	ID            string   `json:"id"`
	FlowVersionID string   `json:"flow_version_id"`
	Name          string   `json:"stage_name"`
	OrderingIndex int      `json:"ordering_index"`
	Weight        *float64 `json:"stage_weight,omitempty"`
}

// CompiledFlowStep is the compiled form of one behavior.
// ExpectedPhrases are carried even in semantic mode: they feed semantic
// prompts and provide reviewer context.
type CompiledFlowStep struct {
	ID             string         `json:"id"`
	StageID        string         `json:"stage_id"`
	FlowVersionID  string         `json:"flow_version_id"`
	Name           string         `json:"step_name"`
	Description    string         `json:"description,omitempty"`
	OrderingIndex  int            `json:"ordering_index"`
	ExpectedRole   Speaker        `json:"expected_role"`
	ExpectedPhrases []string      `json:"expected_phrases,omitempty"`
	DetectionHint  DetectionMode  `json:"detection_hint"`
	BehaviorType   BehaviorType   `json:"behavior_type"`
	CriticalAction CriticalAction `json:"critical_action,omitempty"`
	Weight         float64        `json:"weight"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// CompiledComplianceRule is one deterministic rule evaluated against the
// transcript and detection output.
type CompiledComplianceRule struct {
	ID            string             `json:"id"`
	FlowVersionID string             `json:"flow_version_id"`
	Type          RuleType           `json:"rule_type"`
	TargetStepID  string             `json:"target,omitempty"`
	Phrases       []string           `json:"phrases,omitempty"`
	MatchMode     MatchMode          `json:"match_mode,omitempty"`
	Severity      Severity           `json:"severity"`
	ActionOnFail  CriticalAction     `json:"action_on_fail,omitempty"`
	Timing        *TimingConstraints `json:"timing_constraints,omitempty"`
	Params        map[string]any     `json:"params,omitempty"`
}

// RubricCategory aggregates step scores for one stage.
type RubricCategory struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	StageID          string            `json:"stage_id"`
	Weight           float64           `json:"weight"`
	PassThreshold    float64           `json:"pass_threshold"`
	LevelDefinitions map[string]string `json:"level_definitions,omitempty"`
}

// RubricMapping routes one step's score into a category.
type RubricMapping struct {
	CategoryID         string  `json:"category_id"`
	StepID             string  `json:"step_id"`
	ContributionWeight float64 `json:"contribution_weight"`
	Required           bool    `json:"required_flag"`
}

// CompiledRubricTemplate is the scoring rubric for a compiled flow.
type CompiledRubricTemplate struct {
	ID            string           `json:"id"`
	FlowVersionID string           `json:"flow_version_id"`
	Categories    []RubricCategory `json:"categories"`
	Mappings      []RubricMapping  `json:"mappings"`
}

// CompiledFlow bundles every artifact emitted by the mapper for one
// blueprint version. All IDs are pre-generated so cross-references resolve
// before anything is persisted.
type CompiledFlow struct {
	Version CompiledFlowVersion      `json:"version"`
	Stages  []CompiledFlowStage      `json:"stages"`
	Steps   []CompiledFlowStep       `json:"steps"`
	Rules   []CompiledComplianceRule `json:"rules"`
	Rubric  CompiledRubricTemplate   `json:"rubric"`
}

// StepByID returns the step with the given id, or nil.
func (f *CompiledFlow) StepByID(id string) *CompiledFlowStep {
	for i := range f.Steps {
		if f.Steps[i].ID == id {
			return &f.Steps[i]
		}
	}
	return nil
}

// StageByID returns the stage with the given id, or nil.
func (f *CompiledFlow) StageByID(id string) *CompiledFlowStage {
	for i := range f.Stages {
		if f.Stages[i].ID == id {
			return &f.Stages[i]
		}
	}
	return nil
}

// StepsForStage returns the steps of one stage in ordering_index order.
// Mapper output is already ordered, so this is a filter.
func (f *CompiledFlow) StepsForStage(stageID string) []CompiledFlowStep {
	var out []CompiledFlowStep
	for _, s := range f.Steps {
		if s.StageID == stageID {
			out = append(out, s)
		}
	}
	return out
}
