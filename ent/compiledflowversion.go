// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
)

// CompiledFlowVersion is the model entity for the CompiledFlowVersion schema.
type CompiledFlowVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// BlueprintVersionID holds the value of the "blueprint_version_id" field.
	BlueprintVersionID string `json:"blueprint_version_id,omitempty"`
	// Globally disambiguated: "{name} (bp:{short} v{n})"
	Name string `json:"name,omitempty"`
	// Language, retention hints
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompiledFlowVersionQuery when eager-loading is set.
	Edges        CompiledFlowVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompiledFlowVersionEdges holds the relations/edges for other nodes in the graph.
type CompiledFlowVersionEdges struct {
	// Stages holds the value of the stages edge.
	Stages []*CompiledFlowStage `json:"stages,omitempty"`
	// Rules holds the value of the rules edge.
	Rules []*CompiledComplianceRule `json:"rules,omitempty"`
	// Rubric holds the value of the rubric edge.
	Rubric *CompiledRubricTemplate `json:"rubric,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// StagesOrErr returns the Stages value or an error if the edge
// was not loaded in eager-loading.
func (e CompiledFlowVersionEdges) StagesOrErr() ([]*CompiledFlowStage, error) {
	if e.loadedTypes[0] {
		return e.Stages, nil
	}
	return nil, &NotLoadedError{edge: "stages"}
}

// RulesOrErr returns the Rules value or an error if the edge
// was not loaded in eager-loading.
func (e CompiledFlowVersionEdges) RulesOrErr() ([]*CompiledComplianceRule, error) {
	if e.loadedTypes[1] {
		return e.Rules, nil
	}
	return nil, &NotLoadedError{edge: "rules"}
}

// RubricOrErr returns the Rubric value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompiledFlowVersionEdges) RubricOrErr() (*CompiledRubricTemplate, error) {
	if e.Rubric != nil {
		return e.Rubric, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: compiledrubrictemplate.Label}
	}
	return nil, &NotLoadedError{edge: "rubric"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompiledFlowVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compiledflowversion.FieldMetadata:
			values[i] = new([]byte)
		case compiledflowversion.FieldID, compiledflowversion.FieldCompanyID, compiledflowversion.FieldBlueprintVersionID, compiledflowversion.FieldName:
			values[i] = new(sql.NullString)
		case compiledflowversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompiledFlowVersion fields.
func (_m *CompiledFlowVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compiledflowversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case compiledflowversion.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case compiledflowversion.FieldBlueprintVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_version_id", values[i])
			} else if value.Valid {
				_m.BlueprintVersionID = value.String
			}
		case compiledflowversion.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case compiledflowversion.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case compiledflowversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CompiledFlowVersion.
// This includes values selected through modifiers, order, etc.
func (_m *CompiledFlowVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStages queries the "stages" edge of the CompiledFlowVersion entity.
func (_m *CompiledFlowVersion) QueryStages() *CompiledFlowStageQuery {
	return NewCompiledFlowVersionClient(_m.config).QueryStages(_m)
}

// QueryRules queries the "rules" edge of the CompiledFlowVersion entity.
func (_m *CompiledFlowVersion) QueryRules() *CompiledComplianceRuleQuery {
	return NewCompiledFlowVersionClient(_m.config).QueryRules(_m)
}

// QueryRubric queries the "rubric" edge of the CompiledFlowVersion entity.
func (_m *CompiledFlowVersion) QueryRubric() *CompiledRubricTemplateQuery {
	return NewCompiledFlowVersionClient(_m.config).QueryRubric(_m)
}

// Update returns a builder for updating this CompiledFlowVersion.
// Note that you need to call CompiledFlowVersion.Unwrap() before calling this method if this CompiledFlowVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompiledFlowVersion) Update() *CompiledFlowVersionUpdateOne {
	return NewCompiledFlowVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompiledFlowVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompiledFlowVersion) Unwrap() *CompiledFlowVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompiledFlowVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompiledFlowVersion) String() string {
	var builder strings.Builder
	builder.WriteString("CompiledFlowVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("blueprint_version_id=")
	builder.WriteString(_m.BlueprintVersionID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompiledFlowVersions is a parsable slice of CompiledFlowVersion.
type CompiledFlowVersions []*CompiledFlowVersion
