// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evaluation type in the database.
	Label = "evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "evaluation_id"
	// FieldRecordingID holds the string denoting the recording_id field in the database.
	FieldRecordingID = "recording_id"
	// FieldBlueprintID holds the string denoting the blueprint_id field in the database.
	FieldBlueprintID = "blueprint_id"
	// FieldCompiledFlowVersionID holds the string denoting the compiled_flow_version_id field in the database.
	FieldCompiledFlowVersionID = "compiled_flow_version_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldOverallPassed holds the string denoting the overall_passed field in the database.
	FieldOverallPassed = "overall_passed"
	// FieldRequiresHumanReview holds the string denoting the requires_human_review field in the database.
	FieldRequiresHumanReview = "requires_human_review"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldDeterministicResults holds the string denoting the deterministic_results field in the database.
	FieldDeterministicResults = "deterministic_results"
	// FieldLlmStageEvaluations holds the string denoting the llm_stage_evaluations field in the database.
	FieldLlmStageEvaluations = "llm_stage_evaluations"
	// FieldFinalEvaluation holds the string denoting the final_evaluation field in the database.
	FieldFinalEvaluation = "final_evaluation"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeRecording holds the string denoting the recording edge name in mutations.
	EdgeRecording = "recording"
	// RecordingFieldID holds the string denoting the ID field of the Recording.
	RecordingFieldID = "recording_id"
	// Table holds the table name of the evaluation in the database.
	Table = "evaluations"
	// RecordingTable is the table that holds the recording relation/edge.
	RecordingTable = "evaluations"
	// RecordingInverseTable is the table name for the Recording entity.
	// It exists in this package in order to avoid circular dependency with the "recording" package.
	RecordingInverseTable = "recordings"
	// RecordingColumn is the table column denoting the recording relation/edge.
	RecordingColumn = "recording_id"
)

// Columns holds all SQL columns for evaluation fields.
var Columns = []string{
	FieldID,
	FieldRecordingID,
	FieldBlueprintID,
	FieldCompiledFlowVersionID,
	FieldStatus,
	FieldOverallScore,
	FieldOverallPassed,
	FieldRequiresHumanReview,
	FieldConfidenceScore,
	FieldDeterministicResults,
	FieldLlmStageEvaluations,
	FieldFinalEvaluation,
	FieldErrorCode,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldCompletedAt,
	FieldDeletedAt,
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

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("evaluation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Evaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecordingID orders the results by the recording_id field.
func ByRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingID, opts...).ToFunc()
}

// ByBlueprintID orders the results by the blueprint_id field.
func ByBlueprintID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlueprintID, opts...).ToFunc()
}

// ByCompiledFlowVersionID orders the results by the compiled_flow_version_id field.
func ByCompiledFlowVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompiledFlowVersionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByOverallPassed orders the results by the overall_passed field.
func ByOverallPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallPassed, opts...).ToFunc()
}

// ByRequiresHumanReview orders the results by the requires_human_review field.
func ByRequiresHumanReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresHumanReview, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByRecordingField orders the results by recording field.
func ByRecordingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordingStep(), sql.OrderByField(field, opts...))
	}
}
func newRecordingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordingInverseTable, RecordingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecordingTable, RecordingColumn),
	)
}
