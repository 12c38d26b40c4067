// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
	"github.com/callscope-ai/callscope/pkg/models"
)

// CompiledRubricTemplate is the model entity for the CompiledRubricTemplate schema.
type CompiledRubricTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FlowVersionID holds the value of the "flow_version_id" field.
	FlowVersionID string `json:"flow_version_id,omitempty"`
	// Categories holds the value of the "categories" field.
	Categories []models.RubricCategory `json:"categories,omitempty"`
	// Mappings holds the value of the "mappings" field.
	Mappings []models.RubricMapping `json:"mappings,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompiledRubricTemplateQuery when eager-loading is set.
	Edges        CompiledRubricTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompiledRubricTemplateEdges holds the relations/edges for other nodes in the graph.
type CompiledRubricTemplateEdges struct {
	// FlowVersion holds the value of the flow_version edge.
	FlowVersion *CompiledFlowVersion `json:"flow_version,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FlowVersionOrErr returns the FlowVersion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompiledRubricTemplateEdges) FlowVersionOrErr() (*CompiledFlowVersion, error) {
	if e.FlowVersion != nil {
		return e.FlowVersion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: compiledflowversion.Label}
	}
	return nil, &NotLoadedError{edge: "flow_version"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompiledRubricTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compiledrubrictemplate.FieldCategories, compiledrubrictemplate.FieldMappings:
			values[i] = new([]byte)
		case compiledrubrictemplate.FieldID, compiledrubrictemplate.FieldFlowVersionID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompiledRubricTemplate fields.
func (_m *CompiledRubricTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compiledrubrictemplate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case compiledrubrictemplate.FieldFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_version_id", values[i])
			} else if value.Valid {
				_m.FlowVersionID = value.String
			}
		case compiledrubrictemplate.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case compiledrubrictemplate.FieldMappings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mappings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Mappings); err != nil {
					return fmt.Errorf("unmarshal field mappings: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompiledRubricTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *CompiledRubricTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFlowVersion queries the "flow_version" edge of the CompiledRubricTemplate entity.
func (_m *CompiledRubricTemplate) QueryFlowVersion() *CompiledFlowVersionQuery {
	return NewCompiledRubricTemplateClient(_m.config).QueryFlowVersion(_m)
}

// Update returns a builder for updating this CompiledRubricTemplate.
// Note that you need to call CompiledRubricTemplate.Unwrap() before calling this method if this CompiledRubricTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompiledRubricTemplate) Update() *CompiledRubricTemplateUpdateOne {
	return NewCompiledRubricTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompiledRubricTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompiledRubricTemplate) Unwrap() *CompiledRubricTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompiledRubricTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompiledRubricTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("CompiledRubricTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("flow_version_id=")
	builder.WriteString(_m.FlowVersionID)
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("mappings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mappings))
	builder.WriteByte(')')
	return builder.String()
}

// CompiledRubricTemplates is a parsable slice of CompiledRubricTemplate.
type CompiledRubricTemplates []*CompiledRubricTemplate
