// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldID, id))
}

// RecordingID applies equality check predicate on the "recording_id" field. It's identical to RecordingIDEQ.
func RecordingID(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRecordingID, v))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldBlueprintID, v))
}

// CompiledFlowVersionID applies equality check predicate on the "compiled_flow_version_id" field. It's identical to CompiledFlowVersionIDEQ.
func CompiledFlowVersionID(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldOverallScore, v))
}

// OverallPassed applies equality check predicate on the "overall_passed" field. It's identical to OverallPassedEQ.
func OverallPassed(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldOverallPassed, v))
}

// RequiresHumanReview applies equality check predicate on the "requires_human_review" field. It's identical to RequiresHumanReviewEQ.
func RequiresHumanReview(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRequiresHumanReview, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldConfidenceScore, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDeletedAt, v))
}

// RecordingIDEQ applies the EQ predicate on the "recording_id" field.
func RecordingIDEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRecordingID, v))
}

// RecordingIDNEQ applies the NEQ predicate on the "recording_id" field.
func RecordingIDNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldRecordingID, v))
}

// RecordingIDIn applies the In predicate on the "recording_id" field.
func RecordingIDIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldRecordingID, vs...))
}

// RecordingIDNotIn applies the NotIn predicate on the "recording_id" field.
func RecordingIDNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldRecordingID, vs...))
}

// RecordingIDGT applies the GT predicate on the "recording_id" field.
func RecordingIDGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldRecordingID, v))
}

// RecordingIDGTE applies the GTE predicate on the "recording_id" field.
func RecordingIDGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldRecordingID, v))
}

// RecordingIDLT applies the LT predicate on the "recording_id" field.
func RecordingIDLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldRecordingID, v))
}

// RecordingIDLTE applies the LTE predicate on the "recording_id" field.
func RecordingIDLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldRecordingID, v))
}

// RecordingIDContains applies the Contains predicate on the "recording_id" field.
func RecordingIDContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldRecordingID, v))
}

// RecordingIDHasPrefix applies the HasPrefix predicate on the "recording_id" field.
func RecordingIDHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldRecordingID, v))
}

// RecordingIDHasSuffix applies the HasSuffix predicate on the "recording_id" field.
func RecordingIDHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldRecordingID, v))
}

// RecordingIDEqualFold applies the EqualFold predicate on the "recording_id" field.
func RecordingIDEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldRecordingID, v))
}

// RecordingIDContainsFold applies the ContainsFold predicate on the "recording_id" field.
func RecordingIDContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldRecordingID, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// BlueprintIDGT applies the GT predicate on the "blueprint_id" field.
func BlueprintIDGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldBlueprintID, v))
}

// BlueprintIDGTE applies the GTE predicate on the "blueprint_id" field.
func BlueprintIDGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldBlueprintID, v))
}

// BlueprintIDLT applies the LT predicate on the "blueprint_id" field.
func BlueprintIDLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldBlueprintID, v))
}

// BlueprintIDLTE applies the LTE predicate on the "blueprint_id" field.
func BlueprintIDLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldBlueprintID, v))
}

// BlueprintIDContains applies the Contains predicate on the "blueprint_id" field.
func BlueprintIDContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldBlueprintID, v))
}

// BlueprintIDHasPrefix applies the HasPrefix predicate on the "blueprint_id" field.
func BlueprintIDHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldBlueprintID, v))
}

// BlueprintIDHasSuffix applies the HasSuffix predicate on the "blueprint_id" field.
func BlueprintIDHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldBlueprintID, v))
}

// BlueprintIDEqualFold applies the EqualFold predicate on the "blueprint_id" field.
func BlueprintIDEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldBlueprintID, v))
}

// BlueprintIDContainsFold applies the ContainsFold predicate on the "blueprint_id" field.
func BlueprintIDContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldBlueprintID, v))
}

// CompiledFlowVersionIDEQ applies the EQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDNEQ applies the NEQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIn applies the In predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDNotIn applies the NotIn predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDGT applies the GT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDGTE applies the GTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLT applies the LT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLTE applies the LTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContains applies the Contains predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasPrefix applies the HasPrefix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasSuffix applies the HasSuffix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIsNil applies the IsNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDNotNil applies the NotNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDEqualFold applies the EqualFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContainsFold applies the ContainsFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldCompiledFlowVersionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldStatus, vs...))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldOverallScore, v))
}

// OverallScoreIsNil applies the IsNil predicate on the "overall_score" field.
func OverallScoreIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldOverallScore))
}

// OverallScoreNotNil applies the NotNil predicate on the "overall_score" field.
func OverallScoreNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldOverallScore))
}

// OverallPassedEQ applies the EQ predicate on the "overall_passed" field.
func OverallPassedEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldOverallPassed, v))
}

// OverallPassedNEQ applies the NEQ predicate on the "overall_passed" field.
func OverallPassedNEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldOverallPassed, v))
}

// OverallPassedIsNil applies the IsNil predicate on the "overall_passed" field.
func OverallPassedIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldOverallPassed))
}

// OverallPassedNotNil applies the NotNil predicate on the "overall_passed" field.
func OverallPassedNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldOverallPassed))
}

// RequiresHumanReviewEQ applies the EQ predicate on the "requires_human_review" field.
func RequiresHumanReviewEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldRequiresHumanReview, v))
}

// RequiresHumanReviewNEQ applies the NEQ predicate on the "requires_human_review" field.
func RequiresHumanReviewNEQ(v bool) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldRequiresHumanReview, v))
}

// RequiresHumanReviewIsNil applies the IsNil predicate on the "requires_human_review" field.
func RequiresHumanReviewIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldRequiresHumanReview))
}

// RequiresHumanReviewNotNil applies the NotNil predicate on the "requires_human_review" field.
func RequiresHumanReviewNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldRequiresHumanReview))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldConfidenceScore))
}

// DeterministicResultsIsNil applies the IsNil predicate on the "deterministic_results" field.
func DeterministicResultsIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldDeterministicResults))
}

// DeterministicResultsNotNil applies the NotNil predicate on the "deterministic_results" field.
func DeterministicResultsNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldDeterministicResults))
}

// LlmStageEvaluationsIsNil applies the IsNil predicate on the "llm_stage_evaluations" field.
func LlmStageEvaluationsIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldLlmStageEvaluations))
}

// LlmStageEvaluationsNotNil applies the NotNil predicate on the "llm_stage_evaluations" field.
func LlmStageEvaluationsNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldLlmStageEvaluations))
}

// FinalEvaluationIsNil applies the IsNil predicate on the "final_evaluation" field.
func FinalEvaluationIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldFinalEvaluation))
}

// FinalEvaluationNotNil applies the NotNil predicate on the "final_evaluation" field.
func FinalEvaluationNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldFinalEvaluation))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldDeletedAt))
}

// HasRecording applies the HasEdge predicate on the "recording" edge.
func HasRecording() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecordingTable, RecordingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingWith applies the HasEdge predicate on the "recording" edge with a given conditions (other predicates).
func HasRecordingWith(preds ...predicate.Recording) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newRecordingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.NotPredicates(p))
}
