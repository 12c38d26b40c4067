// Code generated by ent, DO NOT EDIT.

package compiledflowstep

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContainsFold(FieldID, id))
}

// CompiledStageID applies equality check predicate on the "compiled_stage_id" field. It's identical to CompiledStageIDEQ.
func CompiledStageID(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldCompiledStageID, v))
}

// FlowVersionID applies equality check predicate on the "flow_version_id" field. It's identical to FlowVersionIDEQ.
func FlowVersionID(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldFlowVersionID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldStepName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldDescription, v))
}

// OrderingIndex applies equality check predicate on the "ordering_index" field. It's identical to OrderingIndexEQ.
func OrderingIndex(v int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldOrderingIndex, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldWeight, v))
}

// CompiledStageIDEQ applies the EQ predicate on the "compiled_stage_id" field.
func CompiledStageIDEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldCompiledStageID, v))
}

// CompiledStageIDNEQ applies the NEQ predicate on the "compiled_stage_id" field.
func CompiledStageIDNEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldCompiledStageID, v))
}

// CompiledStageIDIn applies the In predicate on the "compiled_stage_id" field.
func CompiledStageIDIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldCompiledStageID, vs...))
}

// CompiledStageIDNotIn applies the NotIn predicate on the "compiled_stage_id" field.
func CompiledStageIDNotIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldCompiledStageID, vs...))
}

// CompiledStageIDGT applies the GT predicate on the "compiled_stage_id" field.
func CompiledStageIDGT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGT(FieldCompiledStageID, v))
}

// CompiledStageIDGTE applies the GTE predicate on the "compiled_stage_id" field.
func CompiledStageIDGTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGTE(FieldCompiledStageID, v))
}

// CompiledStageIDLT applies the LT predicate on the "compiled_stage_id" field.
func CompiledStageIDLT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLT(FieldCompiledStageID, v))
}

// CompiledStageIDLTE applies the LTE predicate on the "compiled_stage_id" field.
func CompiledStageIDLTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLTE(FieldCompiledStageID, v))
}

// CompiledStageIDContains applies the Contains predicate on the "compiled_stage_id" field.
func CompiledStageIDContains(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContains(FieldCompiledStageID, v))
}

// CompiledStageIDHasPrefix applies the HasPrefix predicate on the "compiled_stage_id" field.
func CompiledStageIDHasPrefix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasPrefix(FieldCompiledStageID, v))
}

// CompiledStageIDHasSuffix applies the HasSuffix predicate on the "compiled_stage_id" field.
func CompiledStageIDHasSuffix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasSuffix(FieldCompiledStageID, v))
}

// CompiledStageIDEqualFold applies the EqualFold predicate on the "compiled_stage_id" field.
func CompiledStageIDEqualFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEqualFold(FieldCompiledStageID, v))
}

// CompiledStageIDContainsFold applies the ContainsFold predicate on the "compiled_stage_id" field.
func CompiledStageIDContainsFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContainsFold(FieldCompiledStageID, v))
}

// FlowVersionIDEQ applies the EQ predicate on the "flow_version_id" field.
func FlowVersionIDEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldFlowVersionID, v))
}

// FlowVersionIDNEQ applies the NEQ predicate on the "flow_version_id" field.
func FlowVersionIDNEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldFlowVersionID, v))
}

// FlowVersionIDIn applies the In predicate on the "flow_version_id" field.
func FlowVersionIDIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDNotIn applies the NotIn predicate on the "flow_version_id" field.
func FlowVersionIDNotIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDGT applies the GT predicate on the "flow_version_id" field.
func FlowVersionIDGT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGT(FieldFlowVersionID, v))
}

// FlowVersionIDGTE applies the GTE predicate on the "flow_version_id" field.
func FlowVersionIDGTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGTE(FieldFlowVersionID, v))
}

// FlowVersionIDLT applies the LT predicate on the "flow_version_id" field.
func FlowVersionIDLT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLT(FieldFlowVersionID, v))
}

// FlowVersionIDLTE applies the LTE predicate on the "flow_version_id" field.
func FlowVersionIDLTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLTE(FieldFlowVersionID, v))
}

// FlowVersionIDContains applies the Contains predicate on the "flow_version_id" field.
func FlowVersionIDContains(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContains(FieldFlowVersionID, v))
}

// FlowVersionIDHasPrefix applies the HasPrefix predicate on the "flow_version_id" field.
func FlowVersionIDHasPrefix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasPrefix(FieldFlowVersionID, v))
}

// FlowVersionIDHasSuffix applies the HasSuffix predicate on the "flow_version_id" field.
func FlowVersionIDHasSuffix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasSuffix(FieldFlowVersionID, v))
}

// FlowVersionIDEqualFold applies the EqualFold predicate on the "flow_version_id" field.
func FlowVersionIDEqualFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEqualFold(FieldFlowVersionID, v))
}

// FlowVersionIDContainsFold applies the ContainsFold predicate on the "flow_version_id" field.
func FlowVersionIDContainsFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContainsFold(FieldFlowVersionID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContainsFold(FieldStepName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldContainsFold(FieldDescription, v))
}

// OrderingIndexEQ applies the EQ predicate on the "ordering_index" field.
func OrderingIndexEQ(v int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldOrderingIndex, v))
}

// OrderingIndexNEQ applies the NEQ predicate on the "ordering_index" field.
func OrderingIndexNEQ(v int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldOrderingIndex, v))
}

// OrderingIndexIn applies the In predicate on the "ordering_index" field.
func OrderingIndexIn(vs ...int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldOrderingIndex, vs...))
}

// OrderingIndexNotIn applies the NotIn predicate on the "ordering_index" field.
func OrderingIndexNotIn(vs ...int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldOrderingIndex, vs...))
}

// OrderingIndexGT applies the GT predicate on the "ordering_index" field.
func OrderingIndexGT(v int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGT(FieldOrderingIndex, v))
}

// OrderingIndexGTE applies the GTE predicate on the "ordering_index" field.
func OrderingIndexGTE(v int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGTE(FieldOrderingIndex, v))
}

// OrderingIndexLT applies the LT predicate on the "ordering_index" field.
func OrderingIndexLT(v int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLT(FieldOrderingIndex, v))
}

// OrderingIndexLTE applies the LTE predicate on the "ordering_index" field.
func OrderingIndexLTE(v int) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLTE(FieldOrderingIndex, v))
}

// ExpectedRoleEQ applies the EQ predicate on the "expected_role" field.
func ExpectedRoleEQ(v ExpectedRole) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldExpectedRole, v))
}

// ExpectedRoleNEQ applies the NEQ predicate on the "expected_role" field.
func ExpectedRoleNEQ(v ExpectedRole) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldExpectedRole, v))
}

// ExpectedRoleIn applies the In predicate on the "expected_role" field.
func ExpectedRoleIn(vs ...ExpectedRole) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldExpectedRole, vs...))
}

// ExpectedRoleNotIn applies the NotIn predicate on the "expected_role" field.
func ExpectedRoleNotIn(vs ...ExpectedRole) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldExpectedRole, vs...))
}

// ExpectedPhrasesIsNil applies the IsNil predicate on the "expected_phrases" field.
func ExpectedPhrasesIsNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIsNull(FieldExpectedPhrases))
}

// ExpectedPhrasesNotNil applies the NotNil predicate on the "expected_phrases" field.
func ExpectedPhrasesNotNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotNull(FieldExpectedPhrases))
}

// DetectionHintEQ applies the EQ predicate on the "detection_hint" field.
func DetectionHintEQ(v DetectionHint) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldDetectionHint, v))
}

// DetectionHintNEQ applies the NEQ predicate on the "detection_hint" field.
func DetectionHintNEQ(v DetectionHint) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldDetectionHint, v))
}

// DetectionHintIn applies the In predicate on the "detection_hint" field.
func DetectionHintIn(vs ...DetectionHint) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldDetectionHint, vs...))
}

// DetectionHintNotIn applies the NotIn predicate on the "detection_hint" field.
func DetectionHintNotIn(vs ...DetectionHint) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldDetectionHint, vs...))
}

// BehaviorTypeEQ applies the EQ predicate on the "behavior_type" field.
func BehaviorTypeEQ(v BehaviorType) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldBehaviorType, v))
}

// BehaviorTypeNEQ applies the NEQ predicate on the "behavior_type" field.
func BehaviorTypeNEQ(v BehaviorType) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldBehaviorType, v))
}

// BehaviorTypeIn applies the In predicate on the "behavior_type" field.
func BehaviorTypeIn(vs ...BehaviorType) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldBehaviorType, vs...))
}

// BehaviorTypeNotIn applies the NotIn predicate on the "behavior_type" field.
func BehaviorTypeNotIn(vs ...BehaviorType) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldBehaviorType, vs...))
}

// CriticalActionEQ applies the EQ predicate on the "critical_action" field.
func CriticalActionEQ(v CriticalAction) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldCriticalAction, v))
}

// CriticalActionNEQ applies the NEQ predicate on the "critical_action" field.
func CriticalActionNEQ(v CriticalAction) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldCriticalAction, v))
}

// CriticalActionIn applies the In predicate on the "critical_action" field.
func CriticalActionIn(vs ...CriticalAction) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldCriticalAction, vs...))
}

// CriticalActionNotIn applies the NotIn predicate on the "critical_action" field.
func CriticalActionNotIn(vs ...CriticalAction) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldCriticalAction, vs...))
}

// CriticalActionIsNil applies the IsNil predicate on the "critical_action" field.
func CriticalActionIsNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIsNull(FieldCriticalAction))
}

// CriticalActionNotNil applies the NotNil predicate on the "critical_action" field.
func CriticalActionNotNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotNull(FieldCriticalAction))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldLTE(FieldWeight, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.FieldNotNull(FieldMetadata))
}

// HasStage applies the HasEdge predicate on the "stage" edge.
func HasStage() predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageWith applies the HasEdge predicate on the "stage" edge with a given conditions (other predicates).
func HasStageWith(preds ...predicate.CompiledFlowStage) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(func(s *sql.Selector) {
		step := newStageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompiledFlowStep) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompiledFlowStep) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompiledFlowStep) predicate.CompiledFlowStep {
	return predicate.CompiledFlowStep(sql.NotPredicates(p))
}
