// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
)

// CompiledFlowStage is the model entity for the CompiledFlowStage schema.
type CompiledFlowStage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FlowVersionID holds the value of the "flow_version_id" field.
	FlowVersionID string `json:"flow_version_id,omitempty"`
	// StageName holds the value of the "stage_name" field.
	StageName string `json:"stage_name,omitempty"`
	// OrderingIndex holds the value of the "ordering_index" field.
	OrderingIndex int `json:"ordering_index,omitempty"`
	// Normalized; nil when rubric distributes evenly
	StageWeight *float64 `json:"stage_weight,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompiledFlowStageQuery when eager-loading is set.
	Edges        CompiledFlowStageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompiledFlowStageEdges holds the relations/edges for other nodes in the graph.
type CompiledFlowStageEdges struct {
	// FlowVersion holds the value of the flow_version edge.
	FlowVersion *CompiledFlowVersion `json:"flow_version,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*CompiledFlowStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FlowVersionOrErr returns the FlowVersion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompiledFlowStageEdges) FlowVersionOrErr() (*CompiledFlowVersion, error) {
	if e.FlowVersion != nil {
		return e.FlowVersion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: compiledflowversion.Label}
	}
	return nil, &NotLoadedError{edge: "flow_version"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e CompiledFlowStageEdges) StepsOrErr() ([]*CompiledFlowStep, error) {
	if e.loadedTypes[1] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompiledFlowStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compiledflowstage.FieldStageWeight:
			values[i] = new(sql.NullFloat64)
		case compiledflowstage.FieldOrderingIndex:
			values[i] = new(sql.NullInt64)
		case compiledflowstage.FieldID, compiledflowstage.FieldFlowVersionID, compiledflowstage.FieldStageName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompiledFlowStage fields.
func (_m *CompiledFlowStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compiledflowstage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case compiledflowstage.FieldFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_version_id", values[i])
			} else if value.Valid {
				_m.FlowVersionID = value.String
			}
		case compiledflowstage.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = value.String
			}
		case compiledflowstage.FieldOrderingIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ordering_index", values[i])
			} else if value.Valid {
				_m.OrderingIndex = int(value.Int64)
			}
		case compiledflowstage.FieldStageWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_weight", values[i])
			} else if value.Valid {
				_m.StageWeight = new(float64)
				*_m.StageWeight = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompiledFlowStage.
// This includes values selected through modifiers, order, etc.
func (_m *CompiledFlowStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFlowVersion queries the "flow_version" edge of the CompiledFlowStage entity.
func (_m *CompiledFlowStage) QueryFlowVersion() *CompiledFlowVersionQuery {
	return NewCompiledFlowStageClient(_m.config).QueryFlowVersion(_m)
}

// QuerySteps queries the "steps" edge of the CompiledFlowStage entity.
func (_m *CompiledFlowStage) QuerySteps() *CompiledFlowStepQuery {
	return NewCompiledFlowStageClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this CompiledFlowStage.
// Note that you need to call CompiledFlowStage.Unwrap() before calling this method if this CompiledFlowStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompiledFlowStage) Update() *CompiledFlowStageUpdateOne {
	return NewCompiledFlowStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompiledFlowStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompiledFlowStage) Unwrap() *CompiledFlowStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompiledFlowStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompiledFlowStage) String() string {
	var builder strings.Builder
	builder.WriteString("CompiledFlowStage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("flow_version_id=")
	builder.WriteString(_m.FlowVersionID)
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(_m.StageName)
	builder.WriteString(", ")
	builder.WriteString("ordering_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderingIndex))
	builder.WriteString(", ")
	if v := _m.StageWeight; v != nil {
		builder.WriteString("stage_weight=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CompiledFlowStages is a parsable slice of CompiledFlowStage.
type CompiledFlowStages []*CompiledFlowStage
