// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledFlowStageUpdate is the builder for updating CompiledFlowStage entities.
type CompiledFlowStageUpdate struct {
	config
	hooks    []Hook
	mutation *CompiledFlowStageMutation
}

// Where appends a list predicates to the CompiledFlowStageUpdate builder.
func (_u *CompiledFlowStageUpdate) Where(ps ...predicate.CompiledFlowStage) *CompiledFlowStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddStepIDs adds the "steps" edge to the CompiledFlowStep entity by IDs.
func (_u *CompiledFlowStageUpdate) AddStepIDs(ids ...string) *CompiledFlowStageUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the CompiledFlowStep entity.
func (_u *CompiledFlowStageUpdate) AddSteps(v ...*CompiledFlowStep) *CompiledFlowStageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the CompiledFlowStageMutation object of the builder.
func (_u *CompiledFlowStageUpdate) Mutation() *CompiledFlowStageMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the CompiledFlowStep entity.
func (_u *CompiledFlowStageUpdate) ClearSteps() *CompiledFlowStageUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to CompiledFlowStep entities by IDs.
func (_u *CompiledFlowStageUpdate) RemoveStepIDs(ids ...string) *CompiledFlowStageUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to CompiledFlowStep entities.
func (_u *CompiledFlowStageUpdate) RemoveSteps(v ...*CompiledFlowStep) *CompiledFlowStageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompiledFlowStageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledFlowStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompiledFlowStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledFlowStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledFlowStageUpdate) check() error {
	if _u.mutation.FlowVersionCleared() && len(_u.mutation.FlowVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledFlowStage.flow_version"`)
	}
	return nil
}

func (_u *CompiledFlowStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledflowstage.Table, compiledflowstage.Columns, sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageWeightCleared() {
		_spec.ClearField(compiledflowstage.FieldStageWeight, field.TypeFloat64)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowstage.StepsTable,
			Columns: []string{compiledflowstage.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowstage.StepsTable,
			Columns: []string{compiledflowstage.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowstage.StepsTable,
			Columns: []string{compiledflowstage.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledflowstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompiledFlowStageUpdateOne is the builder for updating a single CompiledFlowStage entity.
type CompiledFlowStageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompiledFlowStageMutation
}

// AddStepIDs adds the "steps" edge to the CompiledFlowStep entity by IDs.
func (_u *CompiledFlowStageUpdateOne) AddStepIDs(ids ...string) *CompiledFlowStageUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the CompiledFlowStep entity.
func (_u *CompiledFlowStageUpdateOne) AddSteps(v ...*CompiledFlowStep) *CompiledFlowStageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the CompiledFlowStageMutation object of the builder.
func (_u *CompiledFlowStageUpdateOne) Mutation() *CompiledFlowStageMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the CompiledFlowStep entity.
func (_u *CompiledFlowStageUpdateOne) ClearSteps() *CompiledFlowStageUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to CompiledFlowStep entities by IDs.
func (_u *CompiledFlowStageUpdateOne) RemoveStepIDs(ids ...string) *CompiledFlowStageUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to CompiledFlowStep entities.
func (_u *CompiledFlowStageUpdateOne) RemoveSteps(v ...*CompiledFlowStep) *CompiledFlowStageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the CompiledFlowStageUpdate builder.
func (_u *CompiledFlowStageUpdateOne) Where(ps ...predicate.CompiledFlowStage) *CompiledFlowStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompiledFlowStageUpdateOne) Select(field string, fields ...string) *CompiledFlowStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompiledFlowStage entity.
func (_u *CompiledFlowStageUpdateOne) Save(ctx context.Context) (*CompiledFlowStage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledFlowStageUpdateOne) SaveX(ctx context.Context) *CompiledFlowStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompiledFlowStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledFlowStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompiledFlowStageUpdateOne) check() error {
	if _u.mutation.FlowVersionCleared() && len(_u.mutation.FlowVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompiledFlowStage.flow_version"`)
	}
	return nil
}

func (_u *CompiledFlowStageUpdateOne) sqlSave(ctx context.Context) (_node *CompiledFlowStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compiledflowstage.Table, compiledflowstage.Columns, sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompiledFlowStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compiledflowstage.FieldID)
		for _, f := range fields {
			if !compiledflowstage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compiledflowstage.FieldID {
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
	if _u.mutation.StageWeightCleared() {
		_spec.ClearField(compiledflowstage.FieldStageWeight, field.TypeFloat64)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowstage.StepsTable,
			Columns: []string{compiledflowstage.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowstage.StepsTable,
			Columns: []string{compiledflowstage.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowstage.StepsTable,
			Columns: []string{compiledflowstage.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CompiledFlowStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledflowstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
