// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledFlowStageDelete is the builder for deleting a CompiledFlowStage entity.
type CompiledFlowStageDelete struct {
	config
	hooks    []Hook
	mutation *CompiledFlowStageMutation
}

// Where appends a list predicates to the CompiledFlowStageDelete builder.
func (_d *CompiledFlowStageDelete) Where(ps ...predicate.CompiledFlowStage) *CompiledFlowStageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompiledFlowStageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledFlowStageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompiledFlowStageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compiledflowstage.Table, sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString))
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

// CompiledFlowStageDeleteOne is the builder for deleting a single CompiledFlowStage entity.
type CompiledFlowStageDeleteOne struct {
	_d *CompiledFlowStageDelete
}

// Where appends a list predicates to the CompiledFlowStageDelete builder.
func (_d *CompiledFlowStageDeleteOne) Where(ps ...predicate.CompiledFlowStage) *CompiledFlowStageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompiledFlowStageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compiledflowstage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledFlowStageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
