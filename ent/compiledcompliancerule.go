// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/pkg/models"
)

// CompiledComplianceRule is the model entity for the CompiledComplianceRule schema.
type CompiledComplianceRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FlowVersionID holds the value of the "flow_version_id" field.
	FlowVersionID string `json:"flow_version_id,omitempty"`
	// RuleType holds the value of the "rule_type" field.
	RuleType compiledcompliancerule.RuleType `json:"rule_type,omitempty"`
	// TargetStepID holds the value of the "target_step_id" field.
	TargetStepID string `json:"target_step_id,omitempty"`
	// Phrases holds the value of the "phrases" field.
	Phrases []string `json:"phrases,omitempty"`
	// MatchMode holds the value of the "match_mode" field.
	MatchMode *compiledcompliancerule.MatchMode `json:"match_mode,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity compiledcompliancerule.Severity `json:"severity,omitempty"`
	// ActionOnFail holds the value of the "action_on_fail" field.
	ActionOnFail *compiledcompliancerule.ActionOnFail `json:"action_on_fail,omitempty"`
	// TimingConstraints holds the value of the "timing_constraints" field.
	TimingConstraints *models.TimingConstraints `json:"timing_constraints,omitempty"`
	// Rule-type specific parameters (sequence/verification/conditional)
	Params map[string]interface{} `json:"params,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompiledComplianceRuleQuery when eager-loading is set.
	Edges        CompiledComplianceRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompiledComplianceRuleEdges holds the relations/edges for other nodes in the graph.
type CompiledComplianceRuleEdges struct {
	// FlowVersion holds the value of the flow_version edge.
	FlowVersion *CompiledFlowVersion `json:"flow_version,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FlowVersionOrErr returns the FlowVersion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompiledComplianceRuleEdges) FlowVersionOrErr() (*CompiledFlowVersion, error) {
	if e.FlowVersion != nil {
		return e.FlowVersion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: compiledflowversion.Label}
	}
	return nil, &NotLoadedError{edge: "flow_version"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompiledComplianceRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compiledcompliancerule.FieldPhrases, compiledcompliancerule.FieldTimingConstraints, compiledcompliancerule.FieldParams:
			values[i] = new([]byte)
		case compiledcompliancerule.FieldID, compiledcompliancerule.FieldFlowVersionID, compiledcompliancerule.FieldRuleType, compiledcompliancerule.FieldTargetStepID, compiledcompliancerule.FieldMatchMode, compiledcompliancerule.FieldSeverity, compiledcompliancerule.FieldActionOnFail:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompiledComplianceRule fields.
func (_m *CompiledComplianceRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compiledcompliancerule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case compiledcompliancerule.FieldFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_version_id", values[i])
			} else if value.Valid {
				_m.FlowVersionID = value.String
			}
		case compiledcompliancerule.FieldRuleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_type", values[i])
			} else if value.Valid {
				_m.RuleType = compiledcompliancerule.RuleType(value.String)
			}
		case compiledcompliancerule.FieldTargetStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_step_id", values[i])
			} else if value.Valid {
				_m.TargetStepID = value.String
			}
		case compiledcompliancerule.FieldPhrases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phrases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Phrases); err != nil {
					return fmt.Errorf("unmarshal field phrases: %w", err)
				}
			}
		case compiledcompliancerule.FieldMatchMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_mode", values[i])
			} else if value.Valid {
				_m.MatchMode = new(compiledcompliancerule.MatchMode)
				*_m.MatchMode = compiledcompliancerule.MatchMode(value.String)
			}
		case compiledcompliancerule.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = compiledcompliancerule.Severity(value.String)
			}
		case compiledcompliancerule.FieldActionOnFail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_on_fail", values[i])
			} else if value.Valid {
				_m.ActionOnFail = new(compiledcompliancerule.ActionOnFail)
				*_m.ActionOnFail = compiledcompliancerule.ActionOnFail(value.String)
			}
		case compiledcompliancerule.FieldTimingConstraints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field timing_constraints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TimingConstraints); err != nil {
					return fmt.Errorf("unmarshal field timing_constraints: %w", err)
				}
			}
		case compiledcompliancerule.FieldParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Params); err != nil {
					return fmt.Errorf("unmarshal field params: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompiledComplianceRule.
// This includes values selected through modifiers, order, etc.
func (_m *CompiledComplianceRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFlowVersion queries the "flow_version" edge of the CompiledComplianceRule entity.
func (_m *CompiledComplianceRule) QueryFlowVersion() *CompiledFlowVersionQuery {
	return NewCompiledComplianceRuleClient(_m.config).QueryFlowVersion(_m)
}

// Update returns a builder for updating this CompiledComplianceRule.
// Note that you need to call CompiledComplianceRule.Unwrap() before calling this method if this CompiledComplianceRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompiledComplianceRule) Update() *CompiledComplianceRuleUpdateOne {
	return NewCompiledComplianceRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompiledComplianceRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompiledComplianceRule) Unwrap() *CompiledComplianceRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompiledComplianceRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompiledComplianceRule) String() string {
	var builder strings.Builder
	builder.WriteString("CompiledComplianceRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("flow_version_id=")
	builder.WriteString(_m.FlowVersionID)
	builder.WriteString(", ")
	builder.WriteString("rule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleType))
	builder.WriteString(", ")
	builder.WriteString("target_step_id=")
	builder.WriteString(_m.TargetStepID)
	builder.WriteString(", ")
	builder.WriteString("phrases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phrases))
	builder.WriteString(", ")
	if v := _m.MatchMode; v != nil {
		builder.WriteString("match_mode=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	if v := _m.ActionOnFail; v != nil {
		builder.WriteString("action_on_fail=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("timing_constraints=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimingConstraints))
	builder.WriteString(", ")
	builder.WriteString("params=")
	builder.WriteString(fmt.Sprintf("%v", _m.Params))
	builder.WriteByte(')')
	return builder.String()
}

// CompiledComplianceRules is a parsable slice of CompiledComplianceRule.
type CompiledComplianceRules []*CompiledComplianceRule
