// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
)

// CompiledFlowStep is the model entity for the CompiledFlowStep schema.
type CompiledFlowStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompiledStageID holds the value of the "compiled_stage_id" field.
	CompiledStageID string `json:"compiled_stage_id,omitempty"`
	// Denormalized for whole-flow loads
	FlowVersionID string `json:"flow_version_id,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// OrderingIndex holds the value of the "ordering_index" field.
	OrderingIndex int `json:"ordering_index,omitempty"`
	// ExpectedRole holds the value of the "expected_role" field.
	ExpectedRole compiledflowstep.ExpectedRole `json:"expected_role,omitempty"`
	// ExpectedPhrases holds the value of the "expected_phrases" field.
	ExpectedPhrases []string `json:"expected_phrases,omitempty"`
	// DetectionHint holds the value of the "detection_hint" field.
	DetectionHint compiledflowstep.DetectionHint `json:"detection_hint,omitempty"`
	// BehaviorType holds the value of the "behavior_type" field.
	BehaviorType compiledflowstep.BehaviorType `json:"behavior_type,omitempty"`
	// CriticalAction holds the value of the "critical_action" field.
	CriticalAction *compiledflowstep.CriticalAction `json:"critical_action,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight float64 `json:"weight,omitempty"`
	// Language/example metadata, carried verbatim from authoring
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompiledFlowStepQuery when eager-loading is set.
	Edges        CompiledFlowStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompiledFlowStepEdges holds the relations/edges for other nodes in the graph.
type CompiledFlowStepEdges struct {
	// Stage holds the value of the stage edge.
	Stage *CompiledFlowStage `json:"stage,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StageOrErr returns the Stage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompiledFlowStepEdges) StageOrErr() (*CompiledFlowStage, error) {
	if e.Stage != nil {
		return e.Stage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: compiledflowstage.Label}
	}
	return nil, &NotLoadedError{edge: "stage"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompiledFlowStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compiledflowstep.FieldExpectedPhrases, compiledflowstep.FieldMetadata:
			values[i] = new([]byte)
		case compiledflowstep.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case compiledflowstep.FieldOrderingIndex:
			values[i] = new(sql.NullInt64)
		case compiledflowstep.FieldID, compiledflowstep.FieldCompiledStageID, compiledflowstep.FieldFlowVersionID, compiledflowstep.FieldStepName, compiledflowstep.FieldDescription, compiledflowstep.FieldExpectedRole, compiledflowstep.FieldDetectionHint, compiledflowstep.FieldBehaviorType, compiledflowstep.FieldCriticalAction:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompiledFlowStep fields.
func (_m *CompiledFlowStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compiledflowstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case compiledflowstep.FieldCompiledStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_stage_id", values[i])
			} else if value.Valid {
				_m.CompiledStageID = value.String
			}
		case compiledflowstep.FieldFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_version_id", values[i])
			} else if value.Valid {
				_m.FlowVersionID = value.String
			}
		case compiledflowstep.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case compiledflowstep.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case compiledflowstep.FieldOrderingIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ordering_index", values[i])
			} else if value.Valid {
				_m.OrderingIndex = int(value.Int64)
			}
		case compiledflowstep.FieldExpectedRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_role", values[i])
			} else if value.Valid {
				_m.ExpectedRole = compiledflowstep.ExpectedRole(value.String)
			}
		case compiledflowstep.FieldExpectedPhrases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_phrases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedPhrases); err != nil {
					return fmt.Errorf("unmarshal field expected_phrases: %w", err)
				}
			}
		case compiledflowstep.FieldDetectionHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detection_hint", values[i])
			} else if value.Valid {
				_m.DetectionHint = compiledflowstep.DetectionHint(value.String)
			}
		case compiledflowstep.FieldBehaviorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field behavior_type", values[i])
			} else if value.Valid {
				_m.BehaviorType = compiledflowstep.BehaviorType(value.String)
			}
		case compiledflowstep.FieldCriticalAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field critical_action", values[i])
			} else if value.Valid {
				_m.CriticalAction = new(compiledflowstep.CriticalAction)
				*_m.CriticalAction = compiledflowstep.CriticalAction(value.String)
			}
		case compiledflowstep.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case compiledflowstep.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompiledFlowStep.
// This includes values selected through modifiers, order, etc.
func (_m *CompiledFlowStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStage queries the "stage" edge of the CompiledFlowStep entity.
func (_m *CompiledFlowStep) QueryStage() *CompiledFlowStageQuery {
	return NewCompiledFlowStepClient(_m.config).QueryStage(_m)
}

// Update returns a builder for updating this CompiledFlowStep.
// Note that you need to call CompiledFlowStep.Unwrap() before calling this method if this CompiledFlowStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompiledFlowStep) Update() *CompiledFlowStepUpdateOne {
	return NewCompiledFlowStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompiledFlowStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompiledFlowStep) Unwrap() *CompiledFlowStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompiledFlowStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompiledFlowStep) String() string {
	var builder strings.Builder
	builder.WriteString("CompiledFlowStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("compiled_stage_id=")
	builder.WriteString(_m.CompiledStageID)
	builder.WriteString(", ")
	builder.WriteString("flow_version_id=")
	builder.WriteString(_m.FlowVersionID)
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("ordering_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderingIndex))
	builder.WriteString(", ")
	builder.WriteString("expected_role=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedRole))
	builder.WriteString(", ")
	builder.WriteString("expected_phrases=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedPhrases))
	builder.WriteString(", ")
	builder.WriteString("detection_hint=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectionHint))
	builder.WriteString(", ")
	builder.WriteString("behavior_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BehaviorType))
	builder.WriteString(", ")
	if v := _m.CriticalAction; v != nil {
		builder.WriteString("critical_action=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// CompiledFlowSteps is a parsable slice of CompiledFlowStep.
type CompiledFlowSteps []*CompiledFlowStep
