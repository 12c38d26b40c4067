// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// BlueprintStageUpdate is the builder for updating BlueprintStage entities.
type BlueprintStageUpdate struct {
	config
	hooks    []Hook
	mutation *BlueprintStageMutation
}

// Where appends a list predicates to the BlueprintStageUpdate builder.
func (_u *BlueprintStageUpdate) Where(ps ...predicate.BlueprintStage) *BlueprintStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *BlueprintStageUpdate) SetStageName(v string) *BlueprintStageUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *BlueprintStageUpdate) SetNillableStageName(v *string) *BlueprintStageUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetOrderingIndex sets the "ordering_index" field.
func (_u *BlueprintStageUpdate) SetOrderingIndex(v int) *BlueprintStageUpdate {
	_u.mutation.ResetOrderingIndex()
	_u.mutation.SetOrderingIndex(v)
	return _u
}

// SetNillableOrderingIndex sets the "ordering_index" field if the given value is not nil.
func (_u *BlueprintStageUpdate) SetNillableOrderingIndex(v *int) *BlueprintStageUpdate {
	if v != nil {
		_u.SetOrderingIndex(*v)
	}
	return _u
}

// AddOrderingIndex adds value to the "ordering_index" field.
func (_u *BlueprintStageUpdate) AddOrderingIndex(v int) *BlueprintStageUpdate {
	_u.mutation.AddOrderingIndex(v)
	return _u
}

// SetStageWeight sets the "stage_weight" field.
func (_u *BlueprintStageUpdate) SetStageWeight(v float64) *BlueprintStageUpdate {
	_u.mutation.ResetStageWeight()
	_u.mutation.SetStageWeight(v)
	return _u
}

// SetNillableStageWeight sets the "stage_weight" field if the given value is not nil.
func (_u *BlueprintStageUpdate) SetNillableStageWeight(v *float64) *BlueprintStageUpdate {
	if v != nil {
		_u.SetStageWeight(*v)
	}
	return _u
}

// AddStageWeight adds value to the "stage_weight" field.
func (_u *BlueprintStageUpdate) AddStageWeight(v float64) *BlueprintStageUpdate {
	_u.mutation.AddStageWeight(v)
	return _u
}

// ClearStageWeight clears the value of the "stage_weight" field.
func (_u *BlueprintStageUpdate) ClearStageWeight() *BlueprintStageUpdate {
	_u.mutation.ClearStageWeight()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BlueprintStageUpdate) SetMetadata(v map[string]interface{}) *BlueprintStageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BlueprintStageUpdate) ClearMetadata() *BlueprintStageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddBehaviorIDs adds the "behaviors" edge to the BlueprintBehavior entity by IDs.
func (_u *BlueprintStageUpdate) AddBehaviorIDs(ids ...string) *BlueprintStageUpdate {
	_u.mutation.AddBehaviorIDs(ids...)
	return _u
}

// AddBehaviors adds the "behaviors" edges to the BlueprintBehavior entity.
func (_u *BlueprintStageUpdate) AddBehaviors(v ...*BlueprintBehavior) *BlueprintStageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBehaviorIDs(ids...)
}

// Mutation returns the BlueprintStageMutation object of the builder.
func (_u *BlueprintStageUpdate) Mutation() *BlueprintStageMutation {
	return _u.mutation
}

// ClearBehaviors clears all "behaviors" edges to the BlueprintBehavior entity.
func (_u *BlueprintStageUpdate) ClearBehaviors() *BlueprintStageUpdate {
	_u.mutation.ClearBehaviors()
	return _u
}

// RemoveBehaviorIDs removes the "behaviors" edge to BlueprintBehavior entities by IDs.
func (_u *BlueprintStageUpdate) RemoveBehaviorIDs(ids ...string) *BlueprintStageUpdate {
	_u.mutation.RemoveBehaviorIDs(ids...)
	return _u
}

// RemoveBehaviors removes "behaviors" edges to BlueprintBehavior entities.
func (_u *BlueprintStageUpdate) RemoveBehaviors(v ...*BlueprintBehavior) *BlueprintStageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBehaviorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlueprintStageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlueprintStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintStageUpdate) check() error {
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintStage.blueprint"`)
	}
	return nil
}

func (_u *BlueprintStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintstage.Table, blueprintstage.Columns, sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(blueprintstage.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderingIndex(); ok {
		_spec.SetField(blueprintstage.FieldOrderingIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderingIndex(); ok {
		_spec.AddField(blueprintstage.FieldOrderingIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageWeight(); ok {
		_spec.SetField(blueprintstage.FieldStageWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStageWeight(); ok {
		_spec.AddField(blueprintstage.FieldStageWeight, field.TypeFloat64, value)
	}
	if _u.mutation.StageWeightCleared() {
		_spec.ClearField(blueprintstage.FieldStageWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(blueprintstage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(blueprintstage.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.BehaviorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprintstage.BehaviorsTable,
			Columns: []string{blueprintstage.BehaviorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBehaviorsIDs(); len(nodes) > 0 && !_u.mutation.BehaviorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprintstage.BehaviorsTable,
			Columns: []string{blueprintstage.BehaviorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BehaviorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprintstage.BehaviorsTable,
			Columns: []string{blueprintstage.BehaviorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlueprintStageUpdateOne is the builder for updating a single BlueprintStage entity.
type BlueprintStageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlueprintStageMutation
}

// SetStageName sets the "stage_name" field.
func (_u *BlueprintStageUpdateOne) SetStageName(v string) *BlueprintStageUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *BlueprintStageUpdateOne) SetNillableStageName(v *string) *BlueprintStageUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetOrderingIndex sets the "ordering_index" field.
func (_u *BlueprintStageUpdateOne) SetOrderingIndex(v int) *BlueprintStageUpdateOne {
	_u.mutation.ResetOrderingIndex()
	_u.mutation.SetOrderingIndex(v)
	return _u
}

// SetNillableOrderingIndex sets the "ordering_index" field if the given value is not nil.
func (_u *BlueprintStageUpdateOne) SetNillableOrderingIndex(v *int) *BlueprintStageUpdateOne {
	if v != nil {
		_u.SetOrderingIndex(*v)
	}
	return _u
}

// AddOrderingIndex adds value to the "ordering_index" field.
func (_u *BlueprintStageUpdateOne) AddOrderingIndex(v int) *BlueprintStageUpdateOne {
	_u.mutation.AddOrderingIndex(v)
	return _u
}

// SetStageWeight sets the "stage_weight" field.
func (_u *BlueprintStageUpdateOne) SetStageWeight(v float64) *BlueprintStageUpdateOne {
	_u.mutation.ResetStageWeight()
	_u.mutation.SetStageWeight(v)
	return _u
}

// SetNillableStageWeight sets the "stage_weight" field if the given value is not nil.
func (_u *BlueprintStageUpdateOne) SetNillableStageWeight(v *float64) *BlueprintStageUpdateOne {
	if v != nil {
		_u.SetStageWeight(*v)
	}
	return _u
}

// AddStageWeight adds value to the "stage_weight" field.
func (_u *BlueprintStageUpdateOne) AddStageWeight(v float64) *BlueprintStageUpdateOne {
	_u.mutation.AddStageWeight(v)
	return _u
}

// ClearStageWeight clears the value of the "stage_weight" field.
func (_u *BlueprintStageUpdateOne) ClearStageWeight() *BlueprintStageUpdateOne {
	_u.mutation.ClearStageWeight()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BlueprintStageUpdateOne) SetMetadata(v map[string]interface{}) *BlueprintStageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BlueprintStageUpdateOne) ClearMetadata() *BlueprintStageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddBehaviorIDs adds the "behaviors" edge to the BlueprintBehavior entity by IDs.
func (_u *BlueprintStageUpdateOne) AddBehaviorIDs(ids ...string) *BlueprintStageUpdateOne {
	_u.mutation.AddBehaviorIDs(ids...)
	return _u
}

// AddBehaviors adds the "behaviors" edges to the BlueprintBehavior entity.
func (_u *BlueprintStageUpdateOne) AddBehaviors(v ...*BlueprintBehavior) *BlueprintStageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBehaviorIDs(ids...)
}

// Mutation returns the BlueprintStageMutation object of the builder.
func (_u *BlueprintStageUpdateOne) Mutation() *BlueprintStageMutation {
	return _u.mutation
}

// ClearBehaviors clears all "behaviors" edges to the BlueprintBehavior entity.
func (_u *BlueprintStageUpdateOne) ClearBehaviors() *BlueprintStageUpdateOne {
	_u.mutation.ClearBehaviors()
	return _u
}

// RemoveBehaviorIDs removes the "behaviors" edge to BlueprintBehavior entities by IDs.
func (_u *BlueprintStageUpdateOne) RemoveBehaviorIDs(ids ...string) *BlueprintStageUpdateOne {
	_u.mutation.RemoveBehaviorIDs(ids...)
	return _u
}

// RemoveBehaviors removes "behaviors" edges to BlueprintBehavior entities.
func (_u *BlueprintStageUpdateOne) RemoveBehaviors(v ...*BlueprintBehavior) *BlueprintStageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBehaviorIDs(ids...)
}

// Where appends a list predicates to the BlueprintStageUpdate builder.
func (_u *BlueprintStageUpdateOne) Where(ps ...predicate.BlueprintStage) *BlueprintStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlueprintStageUpdateOne) Select(field string, fields ...string) *BlueprintStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlueprintStage entity.
func (_u *BlueprintStageUpdateOne) Save(ctx context.Context) (*BlueprintStage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintStageUpdateOne) SaveX(ctx context.Context) *BlueprintStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlueprintStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintStageUpdateOne) check() error {
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintStage.blueprint"`)
	}
	return nil
}

func (_u *BlueprintStageUpdateOne) sqlSave(ctx context.Context) (_node *BlueprintStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintstage.Table, blueprintstage.Columns, sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlueprintStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintstage.FieldID)
		for _, f := range fields {
			if !blueprintstage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprintstage.FieldID {
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
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(blueprintstage.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderingIndex(); ok {
		_spec.SetField(blueprintstage.FieldOrderingIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderingIndex(); ok {
		_spec.AddField(blueprintstage.FieldOrderingIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageWeight(); ok {
		_spec.SetField(blueprintstage.FieldStageWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStageWeight(); ok {
		_spec.AddField(blueprintstage.FieldStageWeight, field.TypeFloat64, value)
	}
	if _u.mutation.StageWeightCleared() {
		_spec.ClearField(blueprintstage.FieldStageWeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(blueprintstage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(blueprintstage.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.BehaviorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprintstage.BehaviorsTable,
			Columns: []string{blueprintstage.BehaviorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBehaviorsIDs(); len(nodes) > 0 && !_u.mutation.BehaviorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprintstage.BehaviorsTable,
			Columns: []string{blueprintstage.BehaviorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BehaviorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprintstage.BehaviorsTable,
			Columns: []string{blueprintstage.BehaviorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BlueprintStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
