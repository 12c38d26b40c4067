// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledComplianceRuleDelete is the builder for deleting a CompiledComplianceRule entity.
type CompiledComplianceRuleDelete struct {
	config
	hooks    []Hook
	mutation *CompiledComplianceRuleMutation
}

// Where appends a list predicates to the CompiledComplianceRuleDelete builder.
func (_d *CompiledComplianceRuleDelete) Where(ps ...predicate.CompiledComplianceRule) *CompiledComplianceRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompiledComplianceRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledComplianceRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompiledComplianceRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compiledcompliancerule.Table, sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CompiledComplianceRuleDeleteOne is the builder for deleting a single CompiledComplianceRule entity.
type CompiledComplianceRuleDeleteOne struct {
	_d *CompiledComplianceRuleDelete
}

// Where appends a list predicates to the CompiledComplianceRuleDelete builder.
func (_d *CompiledComplianceRuleDeleteOne) Where(ps ...predicate.CompiledComplianceRule) *CompiledComplianceRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompiledComplianceRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compiledcompliancerule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledComplianceRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
