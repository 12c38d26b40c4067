// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledFlowStepDelete is the builder for deleting a CompiledFlowStep entity.
type CompiledFlowStepDelete struct {
	config
	hooks    []Hook
	mutation *CompiledFlowStepMutation
}

// Where appends a list predicates to the CompiledFlowStepDelete builder.
func (_d *CompiledFlowStepDelete) Where(ps ...predicate.CompiledFlowStep) *CompiledFlowStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompiledFlowStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledFlowStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompiledFlowStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compiledflowstep.Table, sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString))
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

// CompiledFlowStepDeleteOne is the builder for deleting a single CompiledFlowStep entity.
type CompiledFlowStepDeleteOne struct {
	_d *CompiledFlowStepDelete
}

// Where appends a list predicates to the CompiledFlowStepDelete builder.
func (_d *CompiledFlowStepDeleteOne) Where(ps ...predicate.CompiledFlowStep) *CompiledFlowStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompiledFlowStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compiledflowstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledFlowStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
