// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprintversion"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// BlueprintVersionUpdate is the builder for updating BlueprintVersion entities.
type BlueprintVersionUpdate struct {
	config
	hooks    []Hook
	mutation *BlueprintVersionMutation
}

// Where appends a list predicates to the BlueprintVersionUpdate builder.
func (_u *BlueprintVersionUpdate) Where(ps ...predicate.BlueprintVersion) *BlueprintVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *BlueprintVersionUpdate) SetCompiledFlowVersionID(v string) *BlueprintVersionUpdate {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *BlueprintVersionUpdate) SetNillableCompiledFlowVersionID(v *string) *BlueprintVersionUpdate {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *BlueprintVersionUpdate) ClearCompiledFlowVersionID() *BlueprintVersionUpdate {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// Mutation returns the BlueprintVersionMutation object of the builder.
func (_u *BlueprintVersionUpdate) Mutation() *BlueprintVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlueprintVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlueprintVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintVersionUpdate) check() error {
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintVersion.blueprint"`)
	}
	return nil
}

func (_u *BlueprintVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintversion.Table, blueprintversion.Columns, sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(blueprintversion.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(blueprintversion.FieldCompiledFlowVersionID, field.TypeString)
	}
	if _u.mutation.PublishedByCleared() {
		_spec.ClearField(blueprintversion.FieldPublishedBy, field.TypeString)
	}
	if _u.mutation.PublishNoteCleared() {
		_spec.ClearField(blueprintversion.FieldPublishNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlueprintVersionUpdateOne is the builder for updating a single BlueprintVersion entity.
type BlueprintVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlueprintVersionMutation
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *BlueprintVersionUpdateOne) SetCompiledFlowVersionID(v string) *BlueprintVersionUpdateOne {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *BlueprintVersionUpdateOne) SetNillableCompiledFlowVersionID(v *string) *BlueprintVersionUpdateOne {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *BlueprintVersionUpdateOne) ClearCompiledFlowVersionID() *BlueprintVersionUpdateOne {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// Mutation returns the BlueprintVersionMutation object of the builder.
func (_u *BlueprintVersionUpdateOne) Mutation() *BlueprintVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlueprintVersionUpdate builder.
func (_u *BlueprintVersionUpdateOne) Where(ps ...predicate.BlueprintVersion) *BlueprintVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlueprintVersionUpdateOne) Select(field string, fields ...string) *BlueprintVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlueprintVersion entity.
func (_u *BlueprintVersionUpdateOne) Save(ctx context.Context) (*BlueprintVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintVersionUpdateOne) SaveX(ctx context.Context) *BlueprintVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlueprintVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintVersionUpdateOne) check() error {
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintVersion.blueprint"`)
	}
	return nil
}

func (_u *BlueprintVersionUpdateOne) sqlSave(ctx context.Context) (_node *BlueprintVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintversion.Table, blueprintversion.Columns, sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlueprintVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintversion.FieldID)
		for _, f := range fields {
			if !blueprintversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprintversion.FieldID {
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
	if value, ok := _u.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(blueprintversion.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(blueprintversion.FieldCompiledFlowVersionID, field.TypeString)
	}
	if _u.mutation.PublishedByCleared() {
		_spec.ClearField(blueprintversion.FieldPublishedBy, field.TypeString)
	}
	if _u.mutation.PublishNoteCleared() {
		_spec.ClearField(blueprintversion.FieldPublishNote, field.TypeString)
	}
	_node = &BlueprintVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
