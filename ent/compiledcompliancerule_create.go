// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/pkg/models"
)

// CompiledComplianceRuleCreate is the builder for creating a CompiledComplianceRule entity.
type CompiledComplianceRuleCreate struct {
	config
	mutation *CompiledComplianceRuleMutation
	hooks    []Hook
}

// SetFlowVersionID sets the "flow_version_id" field.
func (_c *CompiledComplianceRuleCreate) SetFlowVersionID(v string) *CompiledComplianceRuleCreate {
	_c.mutation.SetFlowVersionID(v)
	return _c
}

// SetRuleType sets the "rule_type" field.
func (_c *CompiledComplianceRuleCreate) SetRuleType(v compiledcompliancerule.RuleType) *CompiledComplianceRuleCreate {
	_c.mutation.SetRuleType(v)
	return _c
}

// SetTargetStepID sets the "target_step_id" field.
func (_c *CompiledComplianceRuleCreate) SetTargetStepID(v string) *CompiledComplianceRuleCreate {
	_c.mutation.SetTargetStepID(v)
	return _c
}

// SetNillableTargetStepID sets the "target_step_id" field if the given value is not nil.
func (_c *CompiledComplianceRuleCreate) SetNillableTargetStepID(v *string) *CompiledComplianceRuleCreate {
	if v != nil {
		_c.SetTargetStepID(*v)
	}
	return _c
}

// SetPhrases sets the "phrases" field.
func (_c *CompiledComplianceRuleCreate) SetPhrases(v []string) *CompiledComplianceRuleCreate {
	_c.mutation.SetPhrases(v)
	return _c
}

// SetMatchMode sets the "match_mode" field.
func (_c *CompiledComplianceRuleCreate) SetMatchMode(v compiledcompliancerule.MatchMode) *CompiledComplianceRuleCreate {
	_c.mutation.SetMatchMode(v)
	return _c
}

// SetNillableMatchMode sets the "match_mode" field if the given value is not nil.
func (_c *CompiledComplianceRuleCreate) SetNillableMatchMode(v *compiledcompliancerule.MatchMode) *CompiledComplianceRuleCreate {
	if v != nil {
		_c.SetMatchMode(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *CompiledComplianceRuleCreate) SetSeverity(v compiledcompliancerule.Severity) *CompiledComplianceRuleCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetActionOnFail sets the "action_on_fail" field.
func (_c *CompiledComplianceRuleCreate) SetActionOnFail(v compiledcompliancerule.ActionOnFail) *CompiledComplianceRuleCreate {
	_c.mutation.SetActionOnFail(v)
	return _c
}

// SetNillableActionOnFail sets the "action_on_fail" field if the given value is not nil.
func (_c *CompiledComplianceRuleCreate) SetNillableActionOnFail(v *compiledcompliancerule.ActionOnFail) *CompiledComplianceRuleCreate {
	if v != nil {
		_c.SetActionOnFail(*v)
	}
	return _c
}

// SetTimingConstraints sets the "timing_constraints" field.
func (_c *CompiledComplianceRuleCreate) SetTimingConstraints(v *models.TimingConstraints) *CompiledComplianceRuleCreate {
	_c.mutation.SetTimingConstraints(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *CompiledComplianceRuleCreate) SetParams(v map[string]interface{}) *CompiledComplianceRuleCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CompiledComplianceRuleCreate) SetID(v string) *CompiledComplianceRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFlowVersion sets the "flow_version" edge to the CompiledFlowVersion entity.
func (_c *CompiledComplianceRuleCreate) SetFlowVersion(v *CompiledFlowVersion) *CompiledComplianceRuleCreate {
	return _c.SetFlowVersionID(v.ID)
}

// Mutation returns the CompiledComplianceRuleMutation object of the builder.
func (_c *CompiledComplianceRuleCreate) Mutation() *CompiledComplianceRuleMutation {
	return _c.mutation
}

// Save creates the CompiledComplianceRule in the database.
func (_c *CompiledComplianceRuleCreate) Save(ctx context.Context) (*CompiledComplianceRule, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompiledComplianceRuleCreate) SaveX(ctx context.Context) *CompiledComplianceRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledComplianceRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledComplianceRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompiledComplianceRuleCreate) check() error {
	if _, ok := _c.mutation.FlowVersionID(); !ok {
		return &ValidationError{Name: "flow_version_id", err: errors.New(`ent: missing required field "CompiledComplianceRule.flow_version_id"`)}
	}
	if _, ok := _c.mutation.RuleType(); !ok {
		return &ValidationError{Name: "rule_type", err: errors.New(`ent: missing required field "CompiledComplianceRule.rule_type"`)}
	}
	if v, ok := _c.mutation.RuleType(); ok {
		if err := compiledcompliancerule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "CompiledComplianceRule.rule_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MatchMode(); ok {
		if err := compiledcompliancerule.MatchModeValidator(v); err != nil {
			return &ValidationError{Name: "match_mode", err: fmt.Errorf(`ent: validator failed for field "CompiledComplianceRule.match_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "CompiledComplianceRule.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := compiledcompliancerule.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "CompiledComplianceRule.severity": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ActionOnFail(); ok {
		if err := compiledcompliancerule.ActionOnFailValidator(v); err != nil {
			return &ValidationError{Name: "action_on_fail", err: fmt.Errorf(`ent: validator failed for field "CompiledComplianceRule.action_on_fail": %w`, err)}
		}
	}
	if len(_c.mutation.FlowVersionIDs()) == 0 {
		return &ValidationError{Name: "flow_version", err: errors.New(`ent: missing required edge "CompiledComplianceRule.flow_version"`)}
	}
	return nil
}

func (_c *CompiledComplianceRuleCreate) sqlSave(ctx context.Context) (*CompiledComplianceRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CompiledComplianceRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompiledComplianceRuleCreate) createSpec() (*CompiledComplianceRule, *sqlgraph.CreateSpec) {
	var (
		_node = &CompiledComplianceRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compiledcompliancerule.Table, sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RuleType(); ok {
		_spec.SetField(compiledcompliancerule.FieldRuleType, field.TypeEnum, value)
		_node.RuleType = value
	}
	if value, ok := _c.mutation.TargetStepID(); ok {
		_spec.SetField(compiledcompliancerule.FieldTargetStepID, field.TypeString, value)
		_node.TargetStepID = value
	}
	if value, ok := _c.mutation.Phrases(); ok {
		_spec.SetField(compiledcompliancerule.FieldPhrases, field.TypeJSON, value)
		_node.Phrases = value
	}
	if value, ok := _c.mutation.MatchMode(); ok {
		_spec.SetField(compiledcompliancerule.FieldMatchMode, field.TypeEnum, value)
		_node.MatchMode = &value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(compiledcompliancerule.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.ActionOnFail(); ok {
		_spec.SetField(compiledcompliancerule.FieldActionOnFail, field.TypeEnum, value)
		_node.ActionOnFail = &value
	}
	if value, ok := _c.mutation.TimingConstraints(); ok {
		_spec.SetField(compiledcompliancerule.FieldTimingConstraints, field.TypeJSON, value)
		_node.TimingConstraints = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(compiledcompliancerule.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if nodes := _c.mutation.FlowVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   compiledcompliancerule.FlowVersionTable,
			Columns: []string{compiledcompliancerule.FlowVersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FlowVersionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompiledComplianceRuleCreateBulk is the builder for creating many CompiledComplianceRule entities in bulk.
type CompiledComplianceRuleCreateBulk struct {
	config
	err      error
	builders []*CompiledComplianceRuleCreate
}

// Save creates the CompiledComplianceRule entities in the database.
func (_c *CompiledComplianceRuleCreateBulk) Save(ctx context.Context) ([]*CompiledComplianceRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompiledComplianceRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompiledComplianceRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CompiledComplianceRuleCreateBulk) SaveX(ctx context.Context) []*CompiledComplianceRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledComplianceRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledComplianceRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
