// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Evaluation is the model entity for the Evaluation schema.
type Evaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RecordingID holds the value of the "recording_id" field.
	RecordingID string `json:"recording_id,omitempty"`
	// BlueprintID holds the value of the "blueprint_id" field.
	BlueprintID string `json:"blueprint_id,omitempty"`
	// CompiledFlowVersionID holds the value of the "compiled_flow_version_id" field.
	CompiledFlowVersionID string `json:"compiled_flow_version_id,omitempty"`
	// Status holds the value of the "status" field.
	Status evaluation.Status `json:"status,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore *int `json:"overall_score,omitempty"`
	// OverallPassed holds the value of the "overall_passed" field.
	OverallPassed *bool `json:"overall_passed,omitempty"`
	// RequiresHumanReview holds the value of the "requires_human_review" field.
	RequiresHumanReview *bool `json:"requires_human_review,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// DeterministicResults holds the value of the "deterministic_results" field.
	DeterministicResults *models.DeterministicResults `json:"deterministic_results,omitempty"`
	// LlmStageEvaluations holds the value of the "llm_stage_evaluations" field.
	LlmStageEvaluations []models.StageEvaluation `json:"llm_stage_evaluations,omitempty"`
	// FinalEvaluation holds the value of the "final_evaluation" field.
	FinalEvaluation *models.FinalEvaluation `json:"final_evaluation,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// Truncated before storage
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationQuery when eager-loading is set.
	Edges        EvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationEdges holds the relations/edges for other nodes in the graph.
type EvaluationEdges struct {
	// Recording holds the value of the recording edge.
	Recording *Recording `json:"recording,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordingOrErr returns the Recording value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationEdges) RecordingOrErr() (*Recording, error) {
	if e.Recording != nil {
		return e.Recording, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recording.Label}
	}
	return nil, &NotLoadedError{edge: "recording"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldDeterministicResults, evaluation.FieldLlmStageEvaluations, evaluation.FieldFinalEvaluation:
			values[i] = new([]byte)
		case evaluation.FieldOverallPassed, evaluation.FieldRequiresHumanReview:
			values[i] = new(sql.NullBool)
		case evaluation.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case evaluation.FieldOverallScore:
			values[i] = new(sql.NullInt64)
		case evaluation.FieldID, evaluation.FieldRecordingID, evaluation.FieldBlueprintID, evaluation.FieldCompiledFlowVersionID, evaluation.FieldStatus, evaluation.FieldErrorCode, evaluation.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case evaluation.FieldCreatedAt, evaluation.FieldCompletedAt, evaluation.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evaluation fields.
func (_m *Evaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluation.FieldRecordingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_id", values[i])
			} else if value.Valid {
				_m.RecordingID = value.String
			}
		case evaluation.FieldBlueprintID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value.Valid {
				_m.BlueprintID = value.String
			}
		case evaluation.FieldCompiledFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_flow_version_id", values[i])
			} else if value.Valid {
				_m.CompiledFlowVersionID = value.String
			}
		case evaluation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = evaluation.Status(value.String)
			}
		case evaluation.FieldOverallScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = new(int)
				*_m.OverallScore = int(value.Int64)
			}
		case evaluation.FieldOverallPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field overall_passed", values[i])
			} else if value.Valid {
				_m.OverallPassed = new(bool)
				*_m.OverallPassed = value.Bool
			}
		case evaluation.FieldRequiresHumanReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_human_review", values[i])
			} else if value.Valid {
				_m.RequiresHumanReview = new(bool)
				*_m.RequiresHumanReview = value.Bool
			}
		case evaluation.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case evaluation.FieldDeterministicResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deterministic_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DeterministicResults); err != nil {
					return fmt.Errorf("unmarshal field deterministic_results: %w", err)
				}
			}
		case evaluation.FieldLlmStageEvaluations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_stage_evaluations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmStageEvaluations); err != nil {
					return fmt.Errorf("unmarshal field llm_stage_evaluations: %w", err)
				}
			}
		case evaluation.FieldFinalEvaluation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field final_evaluation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinalEvaluation); err != nil {
					return fmt.Errorf("unmarshal field final_evaluation: %w", err)
				}
			}
		case evaluation.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case evaluation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case evaluation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evaluation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case evaluation.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Evaluation.
// This includes values selected through modifiers, order, etc.
func (_m *Evaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecording queries the "recording" edge of the Evaluation entity.
func (_m *Evaluation) QueryRecording() *RecordingQuery {
	return NewEvaluationClient(_m.config).QueryRecording(_m)
}

// Update returns a builder for updating this Evaluation.
// Note that you need to call Evaluation.Unwrap() before calling this method if this Evaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evaluation) Update() *EvaluationUpdateOne {
	return NewEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evaluation) Unwrap() *Evaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evaluation) String() string {
	var builder strings.Builder
	builder.WriteString("Evaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recording_id=")
	builder.WriteString(_m.RecordingID)
	builder.WriteString(", ")
	builder.WriteString("blueprint_id=")
	builder.WriteString(_m.BlueprintID)
	builder.WriteString(", ")
	builder.WriteString("compiled_flow_version_id=")
	builder.WriteString(_m.CompiledFlowVersionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.OverallScore; v != nil {
		builder.WriteString("overall_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OverallPassed; v != nil {
		builder.WriteString("overall_passed=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RequiresHumanReview; v != nil {
		builder.WriteString("requires_human_review=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("deterministic_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeterministicResults))
	builder.WriteString(", ")
	builder.WriteString("llm_stage_evaluations=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmStageEvaluations))
	builder.WriteString(", ")
	builder.WriteString("final_evaluation=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalEvaluation))
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Evaluations is a parsable slice of Evaluation.
type Evaluations []*Evaluation
