// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
)

// BlueprintBehaviorCreate is the builder for creating a BlueprintBehavior entity.
type BlueprintBehaviorCreate struct {
	config
	mutation *BlueprintBehaviorMutation
	hooks    []Hook
}

// SetStageID sets the "stage_id" field.
func (_c *BlueprintBehaviorCreate) SetStageID(v string) *BlueprintBehaviorCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetBehaviorName sets the "behavior_name" field.
func (_c *BlueprintBehaviorCreate) SetBehaviorName(v string) *BlueprintBehaviorCreate {
	_c.mutation.SetBehaviorName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BlueprintBehaviorCreate) SetDescription(v string) *BlueprintBehaviorCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BlueprintBehaviorCreate) SetNillableDescription(v *string) *BlueprintBehaviorCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetBehaviorType sets the "behavior_type" field.
func (_c *BlueprintBehaviorCreate) SetBehaviorType(v blueprintbehavior.BehaviorType) *BlueprintBehaviorCreate {
	_c.mutation.SetBehaviorType(v)
	return _c
}

// SetDetectionMode sets the "detection_mode" field.
func (_c *BlueprintBehaviorCreate) SetDetectionMode(v blueprintbehavior.DetectionMode) *BlueprintBehaviorCreate {
	_c.mutation.SetDetectionMode(v)
	return _c
}

// SetPhrases sets the "phrases" field.
func (_c *BlueprintBehaviorCreate) SetPhrases(v []string) *BlueprintBehaviorCreate {
	_c.mutation.SetPhrases(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *BlueprintBehaviorCreate) SetWeight(v float64) *BlueprintBehaviorCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *BlueprintBehaviorCreate) SetNillableWeight(v *float64) *BlueprintBehaviorCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetCriticalAction sets the "critical_action" field.
func (_c *BlueprintBehaviorCreate) SetCriticalAction(v blueprintbehavior.CriticalAction) *BlueprintBehaviorCreate {
	_c.mutation.SetCriticalAction(v)
	return _c
}

// SetNillableCriticalAction sets the "critical_action" field if the given value is not nil.
func (_c *BlueprintBehaviorCreate) SetNillableCriticalAction(v *blueprintbehavior.CriticalAction) *BlueprintBehaviorCreate {
	if v != nil {
		_c.SetCriticalAction(*v)
	}
	return _c
}

// SetUIOrder sets the "ui_order" field.
func (_c *BlueprintBehaviorCreate) SetUIOrder(v int) *BlueprintBehaviorCreate {
	_c.mutation.SetUIOrder(v)
	return _c
}

// SetNillableUIOrder sets the "ui_order" field if the given value is not nil.
func (_c *BlueprintBehaviorCreate) SetNillableUIOrder(v *int) *BlueprintBehaviorCreate {
	if v != nil {
		_c.SetUIOrder(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BlueprintBehaviorCreate) SetMetadata(v map[string]interface{}) *BlueprintBehaviorCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BlueprintBehaviorCreate) SetID(v string) *BlueprintBehaviorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStage sets the "stage" edge to the BlueprintStage entity.
func (_c *BlueprintBehaviorCreate) SetStage(v *BlueprintStage) *BlueprintBehaviorCreate {
	return _c.SetStageID(v.ID)
}

// Mutation returns the BlueprintBehaviorMutation object of the builder.
func (_c *BlueprintBehaviorCreate) Mutation() *BlueprintBehaviorMutation {
	return _c.mutation
}

// Save creates the BlueprintBehavior in the database.
func (_c *BlueprintBehaviorCreate) Save(ctx context.Context) (*BlueprintBehavior, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlueprintBehaviorCreate) SaveX(ctx context.Context) *BlueprintBehavior {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintBehaviorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintBehaviorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlueprintBehaviorCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := blueprintbehavior.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.UIOrder(); !ok {
		v := blueprintbehavior.DefaultUIOrder
		_c.mutation.SetUIOrder(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlueprintBehaviorCreate) check() error {
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "BlueprintBehavior.stage_id"`)}
	}
	if _, ok := _c.mutation.BehaviorName(); !ok {
		return &ValidationError{Name: "behavior_name", err: errors.New(`ent: missing required field "BlueprintBehavior.behavior_name"`)}
	}
	if _, ok := _c.mutation.BehaviorType(); !ok {
		return &ValidationError{Name: "behavior_type", err: errors.New(`ent: missing required field "BlueprintBehavior.behavior_type"`)}
	}
	if v, ok := _c.mutation.BehaviorType(); ok {
		if err := blueprintbehavior.BehaviorTypeValidator(v); err != nil {
			return &ValidationError{Name: "behavior_type", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.behavior_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetectionMode(); !ok {
		return &ValidationError{Name: "detection_mode", err: errors.New(`ent: missing required field "BlueprintBehavior.detection_mode"`)}
	}
	if v, ok := _c.mutation.DetectionMode(); ok {
		if err := blueprintbehavior.DetectionModeValidator(v); err != nil {
			return &ValidationError{Name: "detection_mode", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.detection_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "BlueprintBehavior.weight"`)}
	}
	if v, ok := _c.mutation.CriticalAction(); ok {
		if err := blueprintbehavior.CriticalActionValidator(v); err != nil {
			return &ValidationError{Name: "critical_action", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.critical_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UIOrder(); !ok {
		return &ValidationError{Name: "ui_order", err: errors.New(`ent: missing required field "BlueprintBehavior.ui_order"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "BlueprintBehavior.stage"`)}
	}
	return nil
}

func (_c *BlueprintBehaviorCreate) sqlSave(ctx context.Context) (*BlueprintBehavior, error) {
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
			return nil, fmt.Errorf("unexpected BlueprintBehavior.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlueprintBehaviorCreate) createSpec() (*BlueprintBehavior, *sqlgraph.CreateSpec) {
	var (
		_node = &BlueprintBehavior{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blueprintbehavior.Table, sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BehaviorName(); ok {
		_spec.SetField(blueprintbehavior.FieldBehaviorName, field.TypeString, value)
		_node.BehaviorName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(blueprintbehavior.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.BehaviorType(); ok {
		_spec.SetField(blueprintbehavior.FieldBehaviorType, field.TypeEnum, value)
		_node.BehaviorType = value
	}
	if value, ok := _c.mutation.DetectionMode(); ok {
		_spec.SetField(blueprintbehavior.FieldDetectionMode, field.TypeEnum, value)
		_node.DetectionMode = value
	}
	if value, ok := _c.mutation.Phrases(); ok {
		_spec.SetField(blueprintbehavior.FieldPhrases, field.TypeJSON, value)
		_node.Phrases = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(blueprintbehavior.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.CriticalAction(); ok {
		_spec.SetField(blueprintbehavior.FieldCriticalAction, field.TypeEnum, value)
		_node.CriticalAction = &value
	}
	if value, ok := _c.mutation.UIOrder(); ok {
		_spec.SetField(blueprintbehavior.FieldUIOrder, field.TypeInt, value)
		_node.UIOrder = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(blueprintbehavior.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blueprintbehavior.StageTable,
			Columns: []string{blueprintbehavior.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlueprintBehaviorCreateBulk is the builder for creating many BlueprintBehavior entities in bulk.
type BlueprintBehaviorCreateBulk struct {
	config
	err      error
	builders []*BlueprintBehaviorCreate
}

// Save creates the BlueprintBehavior entities in the database.
func (_c *BlueprintBehaviorCreateBulk) Save(ctx context.Context) ([]*BlueprintBehavior, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlueprintBehavior, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintBehaviorMutation)
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
func (_c *BlueprintBehaviorCreateBulk) SaveX(ctx context.Context) []*BlueprintBehavior {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintBehaviorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintBehaviorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
