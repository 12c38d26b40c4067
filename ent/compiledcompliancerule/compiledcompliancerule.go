// Code generated by ent, DO NOT EDIT.

package compiledcompliancerule

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the compiledcompliancerule type in the database.
	Label = "compiled_compliance_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldFlowVersionID holds the string denoting the flow_version_id field in the database.
	FieldFlowVersionID = "flow_version_id"
	// FieldRuleType holds the string denoting the rule_type field in the database.
	FieldRuleType = "rule_type"
	// FieldTargetStepID holds the string denoting the target_step_id field in the database.
	FieldTargetStepID = "target_step_id"
	// FieldPhrases holds the string denoting the phrases field in the database.
	FieldPhrases = "phrases"
	// FieldMatchMode holds the string denoting the match_mode field in the database.
	FieldMatchMode = "match_mode"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldActionOnFail holds the string denoting the action_on_fail field in the database.
	FieldActionOnFail = "action_on_fail"
	// FieldTimingConstraints holds the string denoting the timing_constraints field in the database.
	FieldTimingConstraints = "timing_constraints"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// EdgeFlowVersion holds the string denoting the flow_version edge name in mutations.
	EdgeFlowVersion = "flow_version"
	// CompiledFlowVersionFieldID holds the string denoting the ID field of the CompiledFlowVersion.
	CompiledFlowVersionFieldID = "flow_version_id"
	// Table holds the table name of the compiledcompliancerule in the database.
	Table = "compiled_compliance_rules"
	// FlowVersionTable is the table that holds the flow_version relation/edge.
	FlowVersionTable = "compiled_compliance_rules"
	// FlowVersionInverseTable is the table name for the CompiledFlowVersion entity.
	// It exists in this package in order to avoid circular dependency with the "compiledflowversion" package.
	FlowVersionInverseTable = "compiled_flow_versions"
	// FlowVersionColumn is the table column denoting the flow_version relation/edge.
	FlowVersionColumn = "flow_version_id"
)

// Columns holds all SQL columns for compiledcompliancerule fields.
var Columns = []string{
	FieldID,
	FieldFlowVersionID,
	FieldRuleType,
	FieldTargetStepID,
	FieldPhrases,
	FieldMatchMode,
	FieldSeverity,
	FieldActionOnFail,
	FieldTimingConstraints,
	FieldParams,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// RuleType defines the type for the "rule_type" enum field.
type RuleType string

// RuleType values.
const (
	RuleTypeRequiredPhrase   RuleType = "required_phrase"
	RuleTypeForbiddenPhrase  RuleType = "forbidden_phrase"
	RuleTypeRequiredStep     RuleType = "required_step"
	RuleTypeSequenceRule     RuleType = "sequence_rule"
	RuleTypeTimingRule       RuleType = "timing_rule"
	RuleTypeVerificationRule RuleType = "verification_rule"
	RuleTypeConditionalRule  RuleType = "conditional_rule"
)

func (rt RuleType) String() string {
	return string(rt)
}

// RuleTypeValidator is a validator for the "rule_type" field enum values. It is called by the builders before save.
func RuleTypeValidator(rt RuleType) error {
	switch rt {
	case RuleTypeRequiredPhrase, RuleTypeForbiddenPhrase, RuleTypeRequiredStep, RuleTypeSequenceRule, RuleTypeTimingRule, RuleTypeVerificationRule, RuleTypeConditionalRule:
		return nil
	default:
		return fmt.Errorf("compiledcompliancerule: invalid enum value for rule_type field: %q", rt)
	}
}

// MatchMode defines the type for the "match_mode" enum field.
type MatchMode string

// MatchMode values.
const (
	MatchModeExact    MatchMode = "exact"
	MatchModeContains MatchMode = "contains"
	MatchModeRegex    MatchMode = "regex"
	MatchModeSemantic MatchMode = "semantic"
	MatchModeHybrid   MatchMode = "hybrid"
)

func (mm MatchMode) String() string {
	return string(mm)
}

// MatchModeValidator is a validator for the "match_mode" field enum values. It is called by the builders before save.
func MatchModeValidator(mm MatchMode) error {
	switch mm {
	case MatchModeExact, MatchModeContains, MatchModeRegex, MatchModeSemantic, MatchModeHybrid:
		return nil
	default:
		return fmt.Errorf("compiledcompliancerule: invalid enum value for match_mode field: %q", mm)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor:
		return nil
	default:
		return fmt.Errorf("compiledcompliancerule: invalid enum value for severity field: %q", s)
	}
}

// ActionOnFail defines the type for the "action_on_fail" enum field.
type ActionOnFail string

// ActionOnFail values.
const (
	ActionOnFailFailStage   ActionOnFail = "fail_stage"
	ActionOnFailFailOverall ActionOnFail = "fail_overall"
	ActionOnFailFlagOnly    ActionOnFail = "flag_only"
)

func (aof ActionOnFail) String() string {
	return string(aof)
}

// ActionOnFailValidator is a validator for the "action_on_fail" field enum values. It is called by the builders before save.
func ActionOnFailValidator(aof ActionOnFail) error {
	switch aof {
	case ActionOnFailFailStage, ActionOnFailFailOverall, ActionOnFailFlagOnly:
		return nil
	default:
		return fmt.Errorf("compiledcompliancerule: invalid enum value for action_on_fail field: %q", aof)
	}
}

// OrderOption defines the ordering options for the CompiledComplianceRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFlowVersionID orders the results by the flow_version_id field.
func ByFlowVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowVersionID, opts...).ToFunc()
}

// ByRuleType orders the results by the rule_type field.
func ByRuleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleType, opts...).ToFunc()
}

// ByTargetStepID orders the results by the target_step_id field.
func ByTargetStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetStepID, opts...).ToFunc()
}

// ByMatchMode orders the results by the match_mode field.
func ByMatchMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchMode, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByActionOnFail orders the results by the action_on_fail field.
func ByActionOnFail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionOnFail, opts...).ToFunc()
}

// ByFlowVersionField orders the results by flow_version field.
func ByFlowVersionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlowVersionStep(), sql.OrderByField(field, opts...))
	}
}
func newFlowVersionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlowVersionInverseTable, CompiledFlowVersionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FlowVersionTable, FlowVersionColumn),
	)
}
