// Code generated by ent, DO NOT EDIT.

package compiledcompliancerule

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldContainsFold(FieldID, id))
}

// FlowVersionID applies equality check predicate on the "flow_version_id" field. It's identical to FlowVersionIDEQ.
func FlowVersionID(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldFlowVersionID, v))
}

// TargetStepID applies equality check predicate on the "target_step_id" field. It's identical to TargetStepIDEQ.
func TargetStepID(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldTargetStepID, v))
}

// FlowVersionIDEQ applies the EQ predicate on the "flow_version_id" field.
func FlowVersionIDEQ(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldFlowVersionID, v))
}

// FlowVersionIDNEQ applies the NEQ predicate on the "flow_version_id" field.
func FlowVersionIDNEQ(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNEQ(FieldFlowVersionID, v))
}

// FlowVersionIDIn applies the In predicate on the "flow_version_id" field.
func FlowVersionIDIn(vs ...string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDNotIn applies the NotIn predicate on the "flow_version_id" field.
func FlowVersionIDNotIn(vs ...string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDGT applies the GT predicate on the "flow_version_id" field.
func FlowVersionIDGT(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldGT(FieldFlowVersionID, v))
}

// FlowVersionIDGTE applies the GTE predicate on the "flow_version_id" field.
func FlowVersionIDGTE(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldGTE(FieldFlowVersionID, v))
}

// FlowVersionIDLT applies the LT predicate on the "flow_version_id" field.
func FlowVersionIDLT(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldLT(FieldFlowVersionID, v))
}

// FlowVersionIDLTE applies the LTE predicate on the "flow_version_id" field.
func FlowVersionIDLTE(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldLTE(FieldFlowVersionID, v))
}

// FlowVersionIDContains applies the Contains predicate on the "flow_version_id" field.
func FlowVersionIDContains(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldContains(FieldFlowVersionID, v))
}

// FlowVersionIDHasPrefix applies the HasPrefix predicate on the "flow_version_id" field.
func FlowVersionIDHasPrefix(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldHasPrefix(FieldFlowVersionID, v))
}

// FlowVersionIDHasSuffix applies the HasSuffix predicate on the "flow_version_id" field.
func FlowVersionIDHasSuffix(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldHasSuffix(FieldFlowVersionID, v))
}

// FlowVersionIDEqualFold applies the EqualFold predicate on the "flow_version_id" field.
func FlowVersionIDEqualFold(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEqualFold(FieldFlowVersionID, v))
}

// FlowVersionIDContainsFold applies the ContainsFold predicate on the "flow_version_id" field.
func FlowVersionIDContainsFold(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldContainsFold(FieldFlowVersionID, v))
}

// RuleTypeEQ applies the EQ predicate on the "rule_type" field.
func RuleTypeEQ(v RuleType) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldRuleType, v))
}

// RuleTypeNEQ applies the NEQ predicate on the "rule_type" field.
func RuleTypeNEQ(v RuleType) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNEQ(FieldRuleType, v))
}

// RuleTypeIn applies the In predicate on the "rule_type" field.
func RuleTypeIn(vs ...RuleType) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIn(FieldRuleType, vs...))
}

// RuleTypeNotIn applies the NotIn predicate on the "rule_type" field.
func RuleTypeNotIn(vs ...RuleType) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotIn(FieldRuleType, vs...))
}

// TargetStepIDEQ applies the EQ predicate on the "target_step_id" field.
func TargetStepIDEQ(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldTargetStepID, v))
}

// TargetStepIDNEQ applies the NEQ predicate on the "target_step_id" field.
func TargetStepIDNEQ(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNEQ(FieldTargetStepID, v))
}

// TargetStepIDIn applies the In predicate on the "target_step_id" field.
func TargetStepIDIn(vs ...string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIn(FieldTargetStepID, vs...))
}

// TargetStepIDNotIn applies the NotIn predicate on the "target_step_id" field.
func TargetStepIDNotIn(vs ...string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotIn(FieldTargetStepID, vs...))
}

// TargetStepIDGT applies the GT predicate on the "target_step_id" field.
func TargetStepIDGT(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldGT(FieldTargetStepID, v))
}

// TargetStepIDGTE applies the GTE predicate on the "target_step_id" field.
func TargetStepIDGTE(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldGTE(FieldTargetStepID, v))
}

// TargetStepIDLT applies the LT predicate on the "target_step_id" field.
func TargetStepIDLT(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldLT(FieldTargetStepID, v))
}

// TargetStepIDLTE applies the LTE predicate on the "target_step_id" field.
func TargetStepIDLTE(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldLTE(FieldTargetStepID, v))
}

// TargetStepIDContains applies the Contains predicate on the "target_step_id" field.
func TargetStepIDContains(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldContains(FieldTargetStepID, v))
}

// TargetStepIDHasPrefix applies the HasPrefix predicate on the "target_step_id" field.
func TargetStepIDHasPrefix(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldHasPrefix(FieldTargetStepID, v))
}

// TargetStepIDHasSuffix applies the HasSuffix predicate on the "target_step_id" field.
func TargetStepIDHasSuffix(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldHasSuffix(FieldTargetStepID, v))
}

// TargetStepIDIsNil applies the IsNil predicate on the "target_step_id" field.
func TargetStepIDIsNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIsNull(FieldTargetStepID))
}

// TargetStepIDNotNil applies the NotNil predicate on the "target_step_id" field.
func TargetStepIDNotNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotNull(FieldTargetStepID))
}

// TargetStepIDEqualFold applies the EqualFold predicate on the "target_step_id" field.
func TargetStepIDEqualFold(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEqualFold(FieldTargetStepID, v))
}

// TargetStepIDContainsFold applies the ContainsFold predicate on the "target_step_id" field.
func TargetStepIDContainsFold(v string) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldContainsFold(FieldTargetStepID, v))
}

// PhrasesIsNil applies the IsNil predicate on the "phrases" field.
func PhrasesIsNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIsNull(FieldPhrases))
}

// PhrasesNotNil applies the NotNil predicate on the "phrases" field.
func PhrasesNotNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotNull(FieldPhrases))
}

// MatchModeEQ applies the EQ predicate on the "match_mode" field.
func MatchModeEQ(v MatchMode) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldMatchMode, v))
}

// MatchModeNEQ applies the NEQ predicate on the "match_mode" field.
func MatchModeNEQ(v MatchMode) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNEQ(FieldMatchMode, v))
}

// MatchModeIn applies the In predicate on the "match_mode" field.
func MatchModeIn(vs ...MatchMode) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIn(FieldMatchMode, vs...))
}

// MatchModeNotIn applies the NotIn predicate on the "match_mode" field.
func MatchModeNotIn(vs ...MatchMode) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotIn(FieldMatchMode, vs...))
}

// MatchModeIsNil applies the IsNil predicate on the "match_mode" field.
func MatchModeIsNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIsNull(FieldMatchMode))
}

// MatchModeNotNil applies the NotNil predicate on the "match_mode" field.
func MatchModeNotNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotNull(FieldMatchMode))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotIn(FieldSeverity, vs...))
}

// ActionOnFailEQ applies the EQ predicate on the "action_on_fail" field.
func ActionOnFailEQ(v ActionOnFail) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldEQ(FieldActionOnFail, v))
}

// ActionOnFailNEQ applies the NEQ predicate on the "action_on_fail" field.
func ActionOnFailNEQ(v ActionOnFail) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNEQ(FieldActionOnFail, v))
}

// ActionOnFailIn applies the In predicate on the "action_on_fail" field.
func ActionOnFailIn(vs ...ActionOnFail) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIn(FieldActionOnFail, vs...))
}

// ActionOnFailNotIn applies the NotIn predicate on the "action_on_fail" field.
func ActionOnFailNotIn(vs ...ActionOnFail) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotIn(FieldActionOnFail, vs...))
}

// ActionOnFailIsNil applies the IsNil predicate on the "action_on_fail" field.
func ActionOnFailIsNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIsNull(FieldActionOnFail))
}

// ActionOnFailNotNil applies the NotNil predicate on the "action_on_fail" field.
func ActionOnFailNotNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotNull(FieldActionOnFail))
}

// TimingConstraintsIsNil applies the IsNil predicate on the "timing_constraints" field.
func TimingConstraintsIsNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIsNull(FieldTimingConstraints))
}

// TimingConstraintsNotNil applies the NotNil predicate on the "timing_constraints" field.
func TimingConstraintsNotNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotNull(FieldTimingConstraints))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.FieldNotNull(FieldParams))
}

// HasFlowVersion applies the HasEdge predicate on the "flow_version" edge.
func HasFlowVersion() predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FlowVersionTable, FlowVersionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlowVersionWith applies the HasEdge predicate on the "flow_version" edge with a given conditions (other predicates).
func HasFlowVersionWith(preds ...predicate.CompiledFlowVersion) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(func(s *sql.Selector) {
		step := newFlowVersionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompiledComplianceRule) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompiledComplianceRule) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompiledComplianceRule) predicate.CompiledComplianceRule {
	return predicate.CompiledComplianceRule(sql.NotPredicates(p))
}
