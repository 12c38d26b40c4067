// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
)

// CompiledFlowStageCreate is the builder for creating a CompiledFlowStage entity.
type CompiledFlowStageCreate struct {
	config
	mutation *CompiledFlowStageMutation
	hooks    []Hook
}

// SetFlowVersionID sets the "flow_version_id" field.
func (_c *CompiledFlowStageCreate) SetFlowVersionID(v string) *CompiledFlowStageCreate {
	_c.mutation.SetFlowVersionID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *CompiledFlowStageCreate) SetStageName(v string) *CompiledFlowStageCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetOrderingIndex sets the "ordering_index" field.
func (_c *CompiledFlowStageCreate) SetOrderingIndex(v int) *CompiledFlowStageCreate {
	_c.mutation.SetOrderingIndex(v)
	return _c
}

// SetStageWeight sets the "stage_weight" field.
func (_c *CompiledFlowStageCreate) SetStageWeight(v float64) *CompiledFlowStageCreate {
	_c.mutation.SetStageWeight(v)
	return _c
}

// SetNillableStageWeight sets the "stage_weight" field if the given value is not nil.
func (_c *CompiledFlowStageCreate) SetNillableStageWeight(v *float64) *CompiledFlowStageCreate {
	if v != nil {
		_c.SetStageWeight(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompiledFlowStageCreate) SetID(v string) *CompiledFlowStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFlowVersion sets the "flow_version" edge to the CompiledFlowVersion entity.
func (_c *CompiledFlowStageCreate) SetFlowVersion(v *CompiledFlowVersion) *CompiledFlowStageCreate {
	return _c.SetFlowVersionID(v.ID)
}

// AddStepIDs adds the "steps" edge to the CompiledFlowStep entity by IDs.
func (_c *CompiledFlowStageCreate) AddStepIDs(ids ...string) *CompiledFlowStageCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the CompiledFlowStep entity.
func (_c *CompiledFlowStageCreate) AddSteps(v ...*CompiledFlowStep) *CompiledFlowStageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the CompiledFlowStageMutation object of the builder.
func (_c *CompiledFlowStageCreate) Mutation() *CompiledFlowStageMutation {
	return _c.mutation
}

// Save creates the CompiledFlowStage in the database.
func (_c *CompiledFlowStageCreate) Save(ctx context.Context) (*CompiledFlowStage, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompiledFlowStageCreate) SaveX(ctx context.Context) *CompiledFlowStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledFlowStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledFlowStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompiledFlowStageCreate) check() error {
	if _, ok := _c.mutation.FlowVersionID(); !ok {
		return &ValidationError{Name: "flow_version_id", err: errors.New(`ent: missing required field "CompiledFlowStage.flow_version_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "CompiledFlowStage.stage_name"`)}
	}
	if _, ok := _c.mutation.OrderingIndex(); !ok {
		return &ValidationError{Name: "ordering_index", err: errors.New(`ent: missing required field "CompiledFlowStage.ordering_index"`)}
	}
	if len(_c.mutation.FlowVersionIDs()) == 0 {
		return &ValidationError{Name: "flow_version", err: errors.New(`ent: missing required edge "CompiledFlowStage.flow_version"`)}
	}
	return nil
}

func (_c *CompiledFlowStageCreate) sqlSave(ctx context.Context) (*CompiledFlowStage, error) {
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
			return nil, fmt.Errorf("unexpected CompiledFlowStage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompiledFlowStageCreate) createSpec() (*CompiledFlowStage, *sqlgraph.CreateSpec) {
	var (
		_node = &CompiledFlowStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compiledflowstage.Table, sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(compiledflowstage.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.OrderingIndex(); ok {
		_spec.SetField(compiledflowstage.FieldOrderingIndex, field.TypeInt, value)
		_node.OrderingIndex = value
	}
	if value, ok := _c.mutation.StageWeight(); ok {
		_spec.SetField(compiledflowstage.FieldStageWeight, field.TypeFloat64, value)
		_node.StageWeight = &value
	}
	if nodes := _c.mutation.FlowVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   compiledflowstage.FlowVersionTable,
			Columns: []string{compiledflowstage.FlowVersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FlowVersionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompiledFlowStageCreateBulk is the builder for creating many CompiledFlowStage entities in bulk.
type CompiledFlowStageCreateBulk struct {
	config
	err      error
	builders []*CompiledFlowStageCreate
}

// Save creates the CompiledFlowStage entities in the database.
func (_c *CompiledFlowStageCreateBulk) Save(ctx context.Context) ([]*CompiledFlowStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompiledFlowStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompiledFlowStageMutation)
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
func (_c *CompiledFlowStageCreateBulk) SaveX(ctx context.Context) []*CompiledFlowStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledFlowStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledFlowStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
