// Code generated by ent, DO NOT EDIT.

package sandboxrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContainsFold(FieldID, id))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldBlueprintID, v))
}

// CompiledFlowVersionID applies equality check predicate on the "compiled_flow_version_id" field. It's identical to CompiledFlowVersionIDEQ.
func CompiledFlowVersionID(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// RecordingID applies equality check predicate on the "recording_id" field. It's identical to RecordingIDEQ.
func RecordingID(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldRecordingID, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldIdempotencyKey, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldCompletedAt, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// BlueprintIDGT applies the GT predicate on the "blueprint_id" field.
func BlueprintIDGT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldBlueprintID, v))
}

// BlueprintIDGTE applies the GTE predicate on the "blueprint_id" field.
func BlueprintIDGTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldBlueprintID, v))
}

// BlueprintIDLT applies the LT predicate on the "blueprint_id" field.
func BlueprintIDLT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldBlueprintID, v))
}

// BlueprintIDLTE applies the LTE predicate on the "blueprint_id" field.
func BlueprintIDLTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldBlueprintID, v))
}

// BlueprintIDContains applies the Contains predicate on the "blueprint_id" field.
func BlueprintIDContains(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContains(FieldBlueprintID, v))
}

// BlueprintIDHasPrefix applies the HasPrefix predicate on the "blueprint_id" field.
func BlueprintIDHasPrefix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasPrefix(FieldBlueprintID, v))
}

// BlueprintIDHasSuffix applies the HasSuffix predicate on the "blueprint_id" field.
func BlueprintIDHasSuffix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasSuffix(FieldBlueprintID, v))
}

// BlueprintIDEqualFold applies the EqualFold predicate on the "blueprint_id" field.
func BlueprintIDEqualFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEqualFold(FieldBlueprintID, v))
}

// BlueprintIDContainsFold applies the ContainsFold predicate on the "blueprint_id" field.
func BlueprintIDContainsFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContainsFold(FieldBlueprintID, v))
}

// CompiledFlowVersionIDEQ applies the EQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDNEQ applies the NEQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIn applies the In predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDNotIn applies the NotIn predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDGT applies the GT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDGTE applies the GTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLT applies the LT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLTE applies the LTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContains applies the Contains predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContains(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContains(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasPrefix applies the HasPrefix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasPrefix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasPrefix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasSuffix applies the HasSuffix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasSuffix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasSuffix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIsNil applies the IsNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIsNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIsNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDNotNil applies the NotNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDEqualFold applies the EqualFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEqualFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEqualFold(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContainsFold applies the ContainsFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContainsFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContainsFold(FieldCompiledFlowVersionID, v))
}

// RecordingIDEQ applies the EQ predicate on the "recording_id" field.
func RecordingIDEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldRecordingID, v))
}

// RecordingIDNEQ applies the NEQ predicate on the "recording_id" field.
func RecordingIDNEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldRecordingID, v))
}

// RecordingIDIn applies the In predicate on the "recording_id" field.
func RecordingIDIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldRecordingID, vs...))
}

// RecordingIDNotIn applies the NotIn predicate on the "recording_id" field.
func RecordingIDNotIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldRecordingID, vs...))
}

// RecordingIDGT applies the GT predicate on the "recording_id" field.
func RecordingIDGT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldRecordingID, v))
}

// RecordingIDGTE applies the GTE predicate on the "recording_id" field.
func RecordingIDGTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldRecordingID, v))
}

// RecordingIDLT applies the LT predicate on the "recording_id" field.
func RecordingIDLT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldRecordingID, v))
}

// RecordingIDLTE applies the LTE predicate on the "recording_id" field.
func RecordingIDLTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldRecordingID, v))
}

// RecordingIDContains applies the Contains predicate on the "recording_id" field.
func RecordingIDContains(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContains(FieldRecordingID, v))
}

// RecordingIDHasPrefix applies the HasPrefix predicate on the "recording_id" field.
func RecordingIDHasPrefix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasPrefix(FieldRecordingID, v))
}

// RecordingIDHasSuffix applies the HasSuffix predicate on the "recording_id" field.
func RecordingIDHasSuffix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasSuffix(FieldRecordingID, v))
}

// RecordingIDIsNil applies the IsNil predicate on the "recording_id" field.
func RecordingIDIsNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIsNull(FieldRecordingID))
}

// RecordingIDNotNil applies the NotNil predicate on the "recording_id" field.
func RecordingIDNotNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotNull(FieldRecordingID))
}

// RecordingIDEqualFold applies the EqualFold predicate on the "recording_id" field.
func RecordingIDEqualFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEqualFold(FieldRecordingID, v))
}

// RecordingIDContainsFold applies the ContainsFold predicate on the "recording_id" field.
func RecordingIDContainsFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContainsFold(FieldRecordingID, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldStatus, vs...))
}

// TranscriptSnapshotIsNil applies the IsNil predicate on the "transcript_snapshot" field.
func TranscriptSnapshotIsNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIsNull(FieldTranscriptSnapshot))
}

// TranscriptSnapshotNotNil applies the NotNil predicate on the "transcript_snapshot" field.
func TranscriptSnapshotNotNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotNull(FieldTranscriptSnapshot))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SandboxRun {
	return predicate.SandboxRun(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxRun) predicate.SandboxRun {
	return predicate.SandboxRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxRun) predicate.SandboxRun {
	return predicate.SandboxRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxRun) predicate.SandboxRun {
	return predicate.SandboxRun(sql.NotPredicates(p))
}
