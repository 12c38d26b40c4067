// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledRubricTemplateUpdate is the builder for updating CompiledRubricTemplate entities.
type CompiledRubricTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *CompiledRubricTemplateMutation
}

// Where appends a list predicates to the CompiledRubricTemplateUpdate builder.
func (_u *CompiledRubricTemplateUpdate) Where(ps ...predicate.CompiledRubricTemplate) *CompiledRubricTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CompiledRubricTemplateMutation object of the builder.
func (_u *CompiledRubricTemplateUpdate) Mutation() *CompiledRubricTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompiledRubricTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledRubricTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompiledRubricTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledRubricTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledRubricTemplateUpdate) check() error {
	if _u.mutation.FlowVersionCleared() && len(_u.mutation.FlowVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledRubricTemplate.flow_version"`)
	}
	return nil
}

func (_u *CompiledRubricTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledrubrictemplate.Table, compiledrubrictemplate.Columns, sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledrubrictemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompiledRubricTemplateUpdateOne is the builder for updating a single CompiledRubricTemplate entity.
type CompiledRubricTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompiledRubricTemplateMutation
}

// Mutation returns the CompiledRubricTemplateMutation object of the builder.
func (_u *CompiledRubricTemplateUpdateOne) Mutation() *CompiledRubricTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompiledRubricTemplateUpdate builder.
func (_u *CompiledRubricTemplateUpdateOne) Where(ps ...predicate.CompiledRubricTemplate) *CompiledRubricTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompiledRubricTemplateUpdateOne) Select(field string, fields ...string) *CompiledRubricTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompiledRubricTemplate entity.
func (_u *CompiledRubricTemplateUpdateOne) Save(ctx context.Context) (*CompiledRubricTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledRubricTemplateUpdateOne) SaveX(ctx context.Context) *CompiledRubricTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompiledRubricTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledRubricTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledRubricTemplateUpdateOne) check() error {
	if _u.mutation.FlowVersionCleared() && len(_u.mutation.FlowVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledRubricTemplate.flow_version"`)
	}
	return nil
}

func (_u *CompiledRubricTemplateUpdateOne) sqlSave(ctx context.Context) (_node *CompiledRubricTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledrubrictemplate.Table, compiledrubrictemplate.Columns, sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompiledRubricTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compiledrubrictemplate.FieldID)
		for _, f := range fields {
			if !compiledrubrictemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compiledrubrictemplate.FieldID {
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
	_node = &CompiledRubricTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledrubrictemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
