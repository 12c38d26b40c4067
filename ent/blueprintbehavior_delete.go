// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// BlueprintBehaviorDelete is the builder for deleting a BlueprintBehavior entity.
type BlueprintBehaviorDelete struct {
	config
	hooks    []Hook
	mutation *BlueprintBehaviorMutation
}

// Where appends a list predicates to the BlueprintBehaviorDelete builder.
func (_d *BlueprintBehaviorDelete) Where(ps ...predicate.BlueprintBehavior) *BlueprintBehaviorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlueprintBehaviorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlueprintBehaviorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlueprintBehaviorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blueprintbehavior.Table, sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString))
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

// BlueprintBehaviorDeleteOne is the builder for deleting a single BlueprintBehavior entity.
type BlueprintBehaviorDeleteOne struct {
	_d *BlueprintBehaviorDelete
}

// Where appends a list predicates to the BlueprintBehaviorDelete builder.
func (_d *BlueprintBehaviorDeleteOne) Where(ps ...predicate.BlueprintBehavior) *BlueprintBehaviorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlueprintBehaviorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blueprintbehavior.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlueprintBehaviorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
