// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
)

// BlueprintBehavior is the model entity for the BlueprintBehavior schema.
type BlueprintBehavior struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StageID holds the value of the "stage_id" field.
	StageID string `json:"stage_id,omitempty"`
	// BehaviorName holds the value of the "behavior_name" field.
	BehaviorName string `json:"behavior_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// BehaviorType holds the value of the "behavior_type" field.
	BehaviorType blueprintbehavior.BehaviorType `json:"behavior_type,omitempty"`
	// DetectionMode holds the value of the "detection_mode" field.
	DetectionMode blueprintbehavior.DetectionMode `json:"detection_mode,omitempty"`
	// Required when detection_mode != semantic
	Phrases []string `json:"phrases,omitempty"`
	// >= 0
	Weight float64 `json:"weight,omitempty"`
	// Required when behavior_type = critical
	CriticalAction *blueprintbehavior.CriticalAction `json:"critical_action,omitempty"`
	// UIOrder holds the value of the "ui_order" field.
	UIOrder int `json:"ui_order,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlueprintBehaviorQuery when eager-loading is set.
	Edges        BlueprintBehaviorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlueprintBehaviorEdges holds the relations/edges for other nodes in the graph.
type BlueprintBehaviorEdges struct {
	// Stage holds the value of the stage edge.
	Stage *BlueprintStage `json:"stage,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StageOrErr returns the Stage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlueprintBehaviorEdges) StageOrErr() (*BlueprintStage, error) {
	if e.Stage != nil {
		return e.Stage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: blueprintstage.Label}
	}
	return nil, &NotLoadedError{edge: "stage"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlueprintBehavior) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprintbehavior.FieldPhrases, blueprintbehavior.FieldMetadata:
			values[i] = new([]byte)
		case blueprintbehavior.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case blueprintbehavior.FieldUIOrder:
			values[i] = new(sql.NullInt64)
		case blueprintbehavior.FieldID, blueprintbehavior.FieldStageID, blueprintbehavior.FieldBehaviorName, blueprintbehavior.FieldDescription, blueprintbehavior.FieldBehaviorType, blueprintbehavior.FieldDetectionMode, blueprintbehavior.FieldCriticalAction:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlueprintBehavior fields.
func (_m *BlueprintBehavior) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprintbehavior.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blueprintbehavior.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case blueprintbehavior.FieldBehaviorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field behavior_name", values[i])
			} else if value.Valid {
				_m.BehaviorName = value.String
			}
		case blueprintbehavior.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case blueprintbehavior.FieldBehaviorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field behavior_type", values[i])
			} else if value.Valid {
				_m.BehaviorType = blueprintbehavior.BehaviorType(value.String)
			}
		case blueprintbehavior.FieldDetectionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detection_mode", values[i])
			} else if value.Valid {
				_m.DetectionMode = blueprintbehavior.DetectionMode(value.String)
			}
		case blueprintbehavior.FieldPhrases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phrases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Phrases); err != nil {
					return fmt.Errorf("unmarshal field phrases: %w", err)
				}
			}
		case blueprintbehavior.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case blueprintbehavior.FieldCriticalAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field critical_action", values[i])
			} else if value.Valid {
				_m.CriticalAction = new(blueprintbehavior.CriticalAction)
				*_m.CriticalAction = blueprintbehavior.CriticalAction(value.String)
			}
		case blueprintbehavior.FieldUIOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ui_order", values[i])
			} else if value.Valid {
				_m.UIOrder = int(value.Int64)
			}
		case blueprintbehavior.FieldMetadata:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BlueprintBehavior.
// This includes values selected through modifiers, order, etc.
func (_m *BlueprintBehavior) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStage queries the "stage" edge of the BlueprintBehavior entity.
func (_m *BlueprintBehavior) QueryStage() *BlueprintStageQuery {
	return NewBlueprintBehaviorClient(_m.config).QueryStage(_m)
}

// Update returns a builder for updating this BlueprintBehavior.
// Note that you need to call BlueprintBehavior.Unwrap() before calling this method if this BlueprintBehavior
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlueprintBehavior) Update() *BlueprintBehaviorUpdateOne {
	return NewBlueprintBehaviorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlueprintBehavior entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlueprintBehavior) Unwrap() *BlueprintBehavior {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlueprintBehavior is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlueprintBehavior) String() string {
	var builder strings.Builder
	builder.WriteString("BlueprintBehavior(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("behavior_name=")
	builder.WriteString(_m.BehaviorName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("behavior_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BehaviorType))
	builder.WriteString(", ")
	builder.WriteString("detection_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectionMode))
	builder.WriteString(", ")
	builder.WriteString("phrases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phrases))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	if v := _m.CriticalAction; v != nil {
		builder.WriteString("critical_action=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("ui_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.UIOrder))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// BlueprintBehaviors is a parsable slice of BlueprintBehavior.
type BlueprintBehaviors []*BlueprintBehavior
