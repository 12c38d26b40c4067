// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledFlowVersionDelete is the builder for deleting a CompiledFlowVersion entity.
type CompiledFlowVersionDelete struct {
	config
	hooks    []Hook
	mutation *CompiledFlowVersionMutation
}

// Where appends a list predicates to the CompiledFlowVersionDelete builder.
func (_d *CompiledFlowVersionDelete) Where(ps ...predicate.CompiledFlowVersion) *CompiledFlowVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompiledFlowVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledFlowVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompiledFlowVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compiledflowversion.Table, sqlgraph.NewFieldSpec(compiledflowversion.FieldID, field.TypeString))
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

// CompiledFlowVersionDeleteOne is the builder for deleting a single CompiledFlowVersion entity.
type CompiledFlowVersionDeleteOne struct {
	_d *CompiledFlowVersionDelete
}

// Where appends a list predicates to the CompiledFlowVersionDelete builder.
func (_d *CompiledFlowVersionDeleteOne) Where(ps ...predicate.CompiledFlowVersion) *CompiledFlowVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompiledFlowVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compiledflowversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledFlowVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
