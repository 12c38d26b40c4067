// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/blueprint"
)

// Blueprint is the model entity for the Blueprint schema.
type Blueprint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant identifier
	CompanyID string `json:"company_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status blueprint.Status `json:"status,omitempty"`
	// Incremented on each publish
	VersionNumber int `json:"version_number,omitempty"`
	// Set after a successful compile of the latest version
	CompiledFlowVersionID *string `json:"compiled_flow_version_id,omitempty"`
	// Language hint, e.g. 'en'
	Language string `json:"language,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlueprintQuery when eager-loading is set.
	Edges        BlueprintEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlueprintEdges holds the relations/edges for other nodes in the graph.
type BlueprintEdges struct {
	// Stages holds the value of the stages edge.
	Stages []*BlueprintStage `json:"stages,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*BlueprintVersion `json:"versions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StagesOrErr returns the Stages value or an error if the edge
// was not loaded in eager-loading.
func (e BlueprintEdges) StagesOrErr() ([]*BlueprintStage, error) {
	if e.loadedTypes[0] {
		return e.Stages, nil
	}
	return nil, &NotLoadedError{edge: "stages"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e BlueprintEdges) VersionsOrErr() ([]*BlueprintVersion, error) {
	if e.loadedTypes[1] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Blueprint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprint.FieldVersionNumber:
			values[i] = new(sql.NullInt64)
		case blueprint.FieldID, blueprint.FieldCompanyID, blueprint.FieldName, blueprint.FieldDescription, blueprint.FieldStatus, blueprint.FieldCompiledFlowVersionID, blueprint.FieldLanguage:
			values[i] = new(sql.NullString)
		case blueprint.FieldCreatedAt, blueprint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Blueprint fields.
func (_m *Blueprint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blueprint.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case blueprint.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case blueprint.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case blueprint.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = blueprint.Status(value.String)
			}
		case blueprint.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = int(value.Int64)
			}
		case blueprint.FieldCompiledFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_flow_version_id", values[i])
			} else if value.Valid {
				_m.CompiledFlowVersionID = new(string)
				*_m.CompiledFlowVersionID = value.String
			}
		case blueprint.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case blueprint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case blueprint.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Blueprint.
// This includes values selected through modifiers, order, etc.
func (_m *Blueprint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStages queries the "stages" edge of the Blueprint entity.
func (_m *Blueprint) QueryStages() *BlueprintStageQuery {
	return NewBlueprintClient(_m.config).QueryStages(_m)
}

// QueryVersions queries the "versions" edge of the Blueprint entity.
func (_m *Blueprint) QueryVersions() *BlueprintVersionQuery {
	return NewBlueprintClient(_m.config).QueryVersions(_m)
}

// Update returns a builder for updating this Blueprint.
// Note that you need to call Blueprint.Unwrap() before calling this method if this Blueprint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Blueprint) Update() *BlueprintUpdateOne {
	return NewBlueprintClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Blueprint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Blueprint) Unwrap() *Blueprint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Blueprint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Blueprint) String() string {
	var builder strings.Builder
	builder.WriteString("Blueprint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNumber))
	builder.WriteString(", ")
	if v := _m.CompiledFlowVersionID; v != nil {
		builder.WriteString("compiled_flow_version_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Blueprints is a parsable slice of Blueprint.
type Blueprints []*Blueprint
