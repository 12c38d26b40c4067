// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
)

// BlueprintStageCreate is the builder for creating a BlueprintStage entity.
type BlueprintStageCreate struct {
	config
	mutation *BlueprintStageMutation
	hooks    []Hook
}

// SetBlueprintID sets the "blueprint_id" field.
func (_c *BlueprintStageCreate) SetBlueprintID(v string) *BlueprintStageCreate {
	_c.mutation.SetBlueprintID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *BlueprintStageCreate) SetStageName(v string) *BlueprintStageCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetOrderingIndex sets the "ordering_index" field.
func (_c *BlueprintStageCreate) SetOrderingIndex(v int) *BlueprintStageCreate {
	_c.mutation.SetOrderingIndex(v)
	return _c
}

// SetStageWeight sets the "stage_weight" field.
func (_c *BlueprintStageCreate) SetStageWeight(v float64) *BlueprintStageCreate {
	_c.mutation.SetStageWeight(v)
	return _c
}

// SetNillableStageWeight sets the "stage_weight" field if the given value is not nil.
func (_c *BlueprintStageCreate) SetNillableStageWeight(v *float64) *BlueprintStageCreate {
	if v != nil {
		_c.SetStageWeight(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BlueprintStageCreate) SetMetadata(v map[string]interface{}) *BlueprintStageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BlueprintStageCreate) SetID(v string) *BlueprintStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_c *BlueprintStageCreate) SetBlueprint(v *Blueprint) *BlueprintStageCreate {
	return _c.SetBlueprintID(v.ID)
}

// AddBehaviorIDs adds the "behaviors" edge to the BlueprintBehavior entity by IDs.
func (_c *BlueprintStageCreate) AddBehaviorIDs(ids ...string) *BlueprintStageCreate {
	_c.mutation.AddBehaviorIDs(ids...)
	return _c
}

// AddBehaviors adds the "behaviors" edges to the BlueprintBehavior entity.
func (_c *BlueprintStageCreate) AddBehaviors(v ...*BlueprintBehavior) *BlueprintStageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBehaviorIDs(ids...)
}

// Mutation returns the BlueprintStageMutation object of the builder.
func (_c *BlueprintStageCreate) Mutation() *BlueprintStageMutation {
	return _c.mutation
}

// Save creates the BlueprintStage in the database.
func (_c *BlueprintStageCreate) Save(ctx context.Context) (*BlueprintStage, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlueprintStageCreate) SaveX(ctx context.Context) *BlueprintStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlueprintStageCreate) check() error {
	if _, ok := _c.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "BlueprintStage.blueprint_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "BlueprintStage.stage_name"`)}
	}
	if _, ok := _c.mutation.OrderingIndex(); !ok {
		return &ValidationError{Name: "ordering_index", err: errors.New(`ent: missing required field "BlueprintStage.ordering_index"`)}
	}
	if len(_c.mutation.BlueprintIDs()) == 0 {
		return &ValidationError{Name: "blueprint", err: errors.New(`ent: missing required edge "BlueprintStage.blueprint"`)}
	}
	return nil
}

func (_c *BlueprintStageCreate) sqlSave(ctx context.Context) (*BlueprintStage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BlueprintStage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlueprintStageCreate) createSpec() (*BlueprintStage, *sqlgraph.CreateSpec) {
	var (
		_node = &BlueprintStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blueprintstage.Table, sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(blueprintstage.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.OrderingIndex(); ok {
		_spec.SetField(blueprintstage.FieldOrderingIndex, field.TypeInt, value)
		_node.OrderingIndex = value
	}
	if value, ok := _c.mutation.StageWeight(); ok {
		_spec.SetField(blueprintstage.FieldStageWeight, field.TypeFloat64, value)
		_node.StageWeight = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(blueprintstage.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.BlueprintIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blueprintstage.BlueprintTable,
			Columns: []string{blueprintstage.BlueprintColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BlueprintID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BehaviorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlueprintStageCreateBulk is the builder for creating many BlueprintStage entities in bulk.
type BlueprintStageCreateBulk struct {
	config
	err      error
	builders []*BlueprintStageCreate
}

// Save creates the BlueprintStage entities in the database.
func (_c *BlueprintStageCreateBulk) Save(ctx context.Context) ([]*BlueprintStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlueprintStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintStageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BlueprintStageCreateBulk) SaveX(ctx context.Context) []*BlueprintStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
