// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledRubricTemplateDelete is the builder for deleting a CompiledRubricTemplate entity.
type CompiledRubricTemplateDelete struct {
	config
	hooks    []Hook
	mutation *CompiledRubricTemplateMutation
}

// Where appends a list predicates to the CompiledRubricTemplateDelete builder.
func (_d *CompiledRubricTemplateDelete) Where(ps ...predicate.CompiledRubricTemplate) *CompiledRubricTemplateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompiledRubricTemplateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledRubricTemplateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompiledRubricTemplateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compiledrubrictemplate.Table, sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString))
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

// CompiledRubricTemplateDeleteOne is the builder for deleting a single CompiledRubricTemplate entity.
type CompiledRubricTemplateDeleteOne struct {
	_d *CompiledRubricTemplateDelete
}

// Where appends a list predicates to the CompiledRubricTemplateDelete builder.
func (_d *CompiledRubricTemplateDeleteOne) Where(ps ...predicate.CompiledRubricTemplate) *CompiledRubricTemplateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompiledRubricTemplateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compiledrubrictemplate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompiledRubricTemplateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
