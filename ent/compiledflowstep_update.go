// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledFlowStepUpdate is the builder for updating CompiledFlowStep entities.
type CompiledFlowStepUpdate struct {
	config
	hooks    []Hook
	mutation *CompiledFlowStepMutation
}

// Where appends a list predicates to the CompiledFlowStepUpdate builder.
func (_u *CompiledFlowStepUpdate) Where(ps ...predicate.CompiledFlowStep) *CompiledFlowStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CompiledFlowStepMutation object of the builder.
func (_u *CompiledFlowStepUpdate) Mutation() *CompiledFlowStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompiledFlowStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledFlowStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompiledFlowStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledFlowStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledFlowStepUpdate) check() error {
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledFlowStep.stage"`)
	}
	return nil
}

func (_u *CompiledFlowStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledflowstep.Table, compiledflowstep.Columns, sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(compiledflowstep.FieldDescription, field.TypeString)
	}
	if _u.mutation.ExpectedPhrasesCleared() {
		_spec.ClearField(compiledflowstep.FieldExpectedPhrases, field.TypeJSON)
	}
	if _u.mutation.CriticalActionCleared() {
		_spec.ClearField(compiledflowstep.FieldCriticalAction, field.TypeEnum)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(compiledflowstep.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompiledFlowStepUpdateOne is the builder for updating a single CompiledFlowStep entity.
type CompiledFlowStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompiledFlowStepMutation
}

// Mutation returns the CompiledFlowStepMutation object of the builder.
func (_u *CompiledFlowStepUpdateOne) Mutation() *CompiledFlowStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompiledFlowStepUpdate builder.
func (_u *CompiledFlowStepUpdateOne) Where(ps ...predicate.CompiledFlowStep) *CompiledFlowStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompiledFlowStepUpdateOne) Select(field string, fields ...string) *CompiledFlowStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompiledFlowStep entity.
func (_u *CompiledFlowStepUpdateOne) Save(ctx context.Context) (*CompiledFlowStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledFlowStepUpdateOne) SaveX(ctx context.Context) *CompiledFlowStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompiledFlowStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledFlowStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledFlowStepUpdateOne) check() error {
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledFlowStep.stage"`)
	}
	return nil
}

func (_u *CompiledFlowStepUpdateOne) sqlSave(ctx context.Context) (_node *CompiledFlowStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledflowstep.Table, compiledflowstep.Columns, sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompiledFlowStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compiledflowstep.FieldID)
		for _, f := range fields {
			if !compiledflowstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compiledflowstep.FieldID {
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
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(compiledflowstep.FieldDescription, field.TypeString)
	}
	if _u.mutation.ExpectedPhrasesCleared() {
		_spec.ClearField(compiledflowstep.FieldExpectedPhrases, field.TypeJSON)
	}
	if _u.mutation.CriticalActionCleared() {
		_spec.ClearField(compiledflowstep.FieldCriticalAction, field.TypeEnum)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(compiledflowstep.FieldMetadata, field.TypeJSON)
	}
	_node = &CompiledFlowStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
