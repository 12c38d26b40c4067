// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintversion"
	"github.com/callscope-ai/callscope/pkg/models"
)

// BlueprintVersion is the model entity for the BlueprintVersion schema.
type BlueprintVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BlueprintID holds the value of the "blueprint_id" field.
	BlueprintID string `json:"blueprint_id,omitempty"`
	// VersionNumber holds the value of the "version_number" field.
	VersionNumber int `json:"version_number,omitempty"`
	// Entire normalized blueprint at publish time
	Snapshot *models.BlueprintSnapshot `json:"snapshot,omitempty"`
	// Set once compilation succeeds; makes compile idempotent
	CompiledFlowVersionID *string `json:"compiled_flow_version_id,omitempty"`
	// PublishedBy holds the value of the "published_by" field.
	PublishedBy string `json:"published_by,omitempty"`
	// PublishNote holds the value of the "publish_note" field.
	PublishNote string `json:"publish_note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlueprintVersionQuery when eager-loading is set.
	Edges        BlueprintVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlueprintVersionEdges holds the relations/edges for other nodes in the graph.
type BlueprintVersionEdges struct {
	// Blueprint holds the value of the blueprint edge.
	Blueprint *Blueprint `json:"blueprint,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BlueprintOrErr returns the Blueprint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlueprintVersionEdges) BlueprintOrErr() (*Blueprint, error) {
	if e.Blueprint != nil {
		return e.Blueprint, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: blueprint.Label}
	}
	return nil, &NotLoadedError{edge: "blueprint"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlueprintVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprintversion.FieldSnapshot:
			values[i] = new([]byte)
		case blueprintversion.FieldVersionNumber:
			values[i] = new(sql.NullInt64)
		case blueprintversion.FieldID, blueprintversion.FieldBlueprintID, blueprintversion.FieldCompiledFlowVersionID, blueprintversion.FieldPublishedBy, blueprintversion.FieldPublishNote:
			values[i] = new(sql.NullString)
		case blueprintversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlueprintVersion fields.
func (_m *BlueprintVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprintversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blueprintversion.FieldBlueprintID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value.Valid {
				_m.BlueprintID = value.String
			}
		case blueprintversion.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = int(value.Int64)
			}
		case blueprintversion.FieldSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Snapshot); err != nil {
					return fmt.Errorf("unmarshal field snapshot: %w", err)
				}
			}
		case blueprintversion.FieldCompiledFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_flow_version_id", values[i])
			} else if value.Valid {
				_m.CompiledFlowVersionID = new(string)
				*_m.CompiledFlowVersionID = value.String
			}
		case blueprintversion.FieldPublishedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field published_by", values[i])
			} else if value.Valid {
				_m.PublishedBy = value.String
			}
		case blueprintversion.FieldPublishNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publish_note", values[i])
			} else if value.Valid {
				_m.PublishNote = value.String
			}
		case blueprintversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlueprintVersion.
// This includes values selected through modifiers, order, etc.
func (_m *BlueprintVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlueprint queries the "blueprint" edge of the BlueprintVersion entity.
func (_m *BlueprintVersion) QueryBlueprint() *BlueprintQuery {
	return NewBlueprintVersionClient(_m.config).QueryBlueprint(_m)
}

// Update returns a builder for updating this BlueprintVersion.
// Note that you need to call BlueprintVersion.Unwrap() before calling this method if this BlueprintVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlueprintVersion) Update() *BlueprintVersionUpdateOne {
	return NewBlueprintVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlueprintVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlueprintVersion) Unwrap() *BlueprintVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlueprintVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlueprintVersion) String() string {
	var builder strings.Builder
	builder.WriteString("BlueprintVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blueprint_id=")
	builder.WriteString(_m.BlueprintID)
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNumber))
	builder.WriteString(", ")
	builder.WriteString("snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.Snapshot))
	builder.WriteString(", ")
	if v := _m.CompiledFlowVersionID; v != nil {
		builder.WriteString("compiled_flow_version_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("published_by=")
	builder.WriteString(_m.PublishedBy)
	builder.WriteString(", ")
	builder.WriteString("publish_note=")
	builder.WriteString(_m.PublishNote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlueprintVersions is a parsable slice of BlueprintVersion.
type BlueprintVersions []*BlueprintVersion
