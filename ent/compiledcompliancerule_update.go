// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledComplianceRuleUpdate is the builder for updating CompiledComplianceRule entities.
type CompiledComplianceRuleUpdate struct {
	config
	hooks    []Hook
	mutation *CompiledComplianceRuleMutation
}

// Where appends a list predicates to the CompiledComplianceRuleUpdate builder.
func (_u *CompiledComplianceRuleUpdate) Where(ps ...predicate.CompiledComplianceRule) *CompiledComplianceRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CompiledComplianceRuleMutation object of the builder.
func (_u *CompiledComplianceRuleUpdate) Mutation() *CompiledComplianceRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompiledComplianceRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledComplianceRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompiledComplianceRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledComplianceRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledComplianceRuleUpdate) check() error {
	if _u.mutation.FlowVersionCleared() && len(_u.mutation.FlowVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledComplianceRule.flow_version"`)
	}
	return nil
}

func (_u *CompiledComplianceRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledcompliancerule.Table, compiledcompliancerule.Columns, sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TargetStepIDCleared() {
		_spec.ClearField(compiledcompliancerule.FieldTargetStepID, field.TypeString)
	}
	if _u.mutation.PhrasesCleared() {
		_spec.ClearField(compiledcompliancerule.FieldPhrases, field.TypeJSON)
	}
	if _u.mutation.MatchModeCleared() {
		_spec.ClearField(compiledcompliancerule.FieldMatchMode, field.TypeEnum)
	}
	if _u.mutation.ActionOnFailCleared() {
		_spec.ClearField(compiledcompliancerule.FieldActionOnFail, field.TypeEnum)
	}
	if _u.mutation.TimingConstraintsCleared() {
		_spec.ClearField(compiledcompliancerule.FieldTimingConstraints, field.TypeJSON)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(compiledcompliancerule.FieldParams, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledcompliancerule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompiledComplianceRuleUpdateOne is the builder for updating a single CompiledComplianceRule entity.
type CompiledComplianceRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompiledComplianceRuleMutation
}

// Mutation returns the CompiledComplianceRuleMutation object of the builder.
func (_u *CompiledComplianceRuleUpdateOne) Mutation() *CompiledComplianceRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompiledComplianceRuleUpdate builder.
func (_u *CompiledComplianceRuleUpdateOne) Where(ps ...predicate.CompiledComplianceRule) *CompiledComplianceRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompiledComplianceRuleUpdateOne) Select(field string, fields ...string) *CompiledComplianceRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompiledComplianceRule entity.
func (_u *CompiledComplianceRuleUpdateOne) Save(ctx context.Context) (*CompiledComplianceRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledComplianceRuleUpdateOne) SaveX(ctx context.Context) *CompiledComplianceRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompiledComplianceRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledComplianceRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledComplianceRuleUpdateOne) check() error {
	if _u.mutation.FlowVersionCleared() && len(_u.mutation.FlowVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledComplianceRule.flow_version"`)
	}
	return nil
}

func (_u *CompiledComplianceRuleUpdateOne) sqlSave(ctx context.Context) (_node *CompiledComplianceRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledcompliancerule.Table, compiledcompliancerule.Columns, sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompiledComplianceRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compiledcompliancerule.FieldID)
		for _, f := range fields {
			if !compiledcompliancerule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compiledcompliancerule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TargetStepIDCleared() {
		_spec.ClearField(compiledcompliancerule.FieldTargetStepID, field.TypeString)
	}
	if _u.mutation.PhrasesCleared() {
		_spec.ClearField(compiledcompliancerule.FieldPhrases, field.TypeJSON)
	}
	if _u.mutation.MatchModeCleared() {
		_spec.ClearField(compiledcompliancerule.FieldMatchMode, field.TypeEnum)
	}
	if _u.mutation.ActionOnFailCleared() {
		_spec.ClearField(compiledcompliancerule.FieldActionOnFail, field.TypeEnum)
	}
	if _u.mutation.TimingConstraintsCleared() {
		_spec.ClearField(compiledcompliancerule.FieldTimingConstraints, field.TypeJSON)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(compiledcompliancerule.FieldParams, field.TypeJSON)
	}
	_node = &CompiledComplianceRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledcompliancerule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
