// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
)

// BlueprintStage is the model entity for the BlueprintStage schema.
type BlueprintStage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BlueprintID holds the value of the "blueprint_id" field.
	BlueprintID string `json:"blueprint_id,omitempty"`
	// StageName holds the value of the "stage_name" field.
	StageName string `json:"stage_name,omitempty"`
	// Position within the blueprint: 0, 1, 2...
	OrderingIndex int `json:"ordering_index,omitempty"`
	// 0-100; optional, normalized at publish
	StageWeight *float64 `json:"stage_weight,omitempty"`
	// Opaque author metadata, carried into compiled artifacts
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlueprintStageQuery when eager-loading is set.
	Edges        BlueprintStageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlueprintStageEdges holds the relations/edges for other nodes in the graph.
type BlueprintStageEdges struct {
	// Blueprint holds the value of the blueprint edge.
	Blueprint *Blueprint `json:"blueprint,omitempty"`
	// Behaviors holds the value of the behaviors edge.
	Behaviors []*BlueprintBehavior `json:"behaviors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BlueprintOrErr returns the Blueprint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlueprintStageEdges) BlueprintOrErr() (*Blueprint, error) {
	if e.Blueprint != nil {
		return e.Blueprint, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: blueprint.Label}
	}
	return nil, &NotLoadedError{edge: "blueprint"}
}

// BehaviorsOrErr returns the Behaviors value or an error if the edge
// was not loaded in eager-loading.
func (e BlueprintStageEdges) BehaviorsOrErr() ([]*BlueprintBehavior, error) {
	if e.loadedTypes[1] {
		return e.Behaviors, nil
	}
	return nil, &NotLoadedError{edge: "behaviors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlueprintStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprintstage.FieldMetadata:
			values[i] = new([]byte)
		case blueprintstage.FieldStageWeight:
			values[i] = new(sql.NullFloat64)
		case blueprintstage.FieldOrderingIndex:
			values[i] = new(sql.NullInt64)
		case blueprintstage.FieldID, blueprintstage.FieldBlueprintID, blueprintstage.FieldStageName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlueprintStage fields.
func (_m *BlueprintStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprintstage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blueprintstage.FieldBlueprintID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value.Valid {
				_m.BlueprintID = value.String
			}
		case blueprintstage.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = value.String
			}
		case blueprintstage.FieldOrderingIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ordering_index", values[i])
			} else if value.Valid {
				_m.OrderingIndex = int(value.Int64)
			}
		case blueprintstage.FieldStageWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_weight", values[i])
			} else if value.Valid {
				_m.StageWeight = new(float64)
				*_m.StageWeight = value.Float64
			}
		case blueprintstage.FieldMetadata:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BlueprintStage.
// This includes values selected through modifiers, order, etc.
func (_m *BlueprintStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlueprint queries the "blueprint" edge of the BlueprintStage entity.
func (_m *BlueprintStage) QueryBlueprint() *BlueprintQuery {
	return NewBlueprintStageClient(_m.config).QueryBlueprint(_m)
}

// QueryBehaviors queries the "behaviors" edge of the BlueprintStage entity.
func (_m *BlueprintStage) QueryBehaviors() *BlueprintBehaviorQuery {
	return NewBlueprintStageClient(_m.config).QueryBehaviors(_m)
}

// Update returns a builder for updating this BlueprintStage.
// Note that you need to call BlueprintStage.Unwrap() before calling this method if this BlueprintStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlueprintStage) Update() *BlueprintStageUpdateOne {
	return NewBlueprintStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlueprintStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlueprintStage) Unwrap() *BlueprintStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlueprintStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlueprintStage) String() string {
	var builder strings.Builder
	builder.WriteString("BlueprintStage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blueprint_id=")
	builder.WriteString(_m.BlueprintID)
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
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// BlueprintStages is a parsable slice of BlueprintStage.
type BlueprintStages []*BlueprintStage
