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
)

// CompiledFlowStepCreate is the builder for creating a CompiledFlowStep entity.
type CompiledFlowStepCreate struct {
	config
	mutation *CompiledFlowStepMutation
	hooks    []Hook
}

// SetCompiledStageID sets the "compiled_stage_id" field.
func (_c *CompiledFlowStepCreate) SetCompiledStageID(v string) *CompiledFlowStepCreate {
	_c.mutation.SetCompiledStageID(v)
	return _c
}

// SetFlowVersionID sets the "flow_version_id" field.
func (_c *CompiledFlowStepCreate) SetFlowVersionID(v string) *CompiledFlowStepCreate {
	_c.mutation.SetFlowVersionID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *CompiledFlowStepCreate) SetStepName(v string) *CompiledFlowStepCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CompiledFlowStepCreate) SetDescription(v string) *CompiledFlowStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CompiledFlowStepCreate) SetNillableDescription(v *string) *CompiledFlowStepCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOrderingIndex sets the "ordering_index" field.
func (_c *CompiledFlowStepCreate) SetOrderingIndex(v int) *CompiledFlowStepCreate {
	_c.mutation.SetOrderingIndex(v)
	return _c
}

// SetExpectedRole sets the "expected_role" field.
func (_c *CompiledFlowStepCreate) SetExpectedRole(v compiledflowstep.ExpectedRole) *CompiledFlowStepCreate {
	_c.mutation.SetExpectedRole(v)
	return _c
}

// SetNillableExpectedRole sets the "expected_role" field if the given value is not nil.
func (_c *CompiledFlowStepCreate) SetNillableExpectedRole(v *compiledflowstep.ExpectedRole) *CompiledFlowStepCreate {
	if v != nil {
		_c.SetExpectedRole(*v)
	}
	return _c
}

// SetExpectedPhrases sets the "expected_phrases" field.
func (_c *CompiledFlowStepCreate) SetExpectedPhrases(v []string) *CompiledFlowStepCreate {
	_c.mutation.SetExpectedPhrases(v)
	return _c
}

// SetDetectionHint sets the "detection_hint" field.
func (_c *CompiledFlowStepCreate) SetDetectionHint(v compiledflowstep.DetectionHint) *CompiledFlowStepCreate {
	_c.mutation.SetDetectionHint(v)
	return _c
}

// SetBehaviorType sets the "behavior_type" field.
func (_c *CompiledFlowStepCreate) SetBehaviorType(v compiledflowstep.BehaviorType) *CompiledFlowStepCreate {
	_c.mutation.SetBehaviorType(v)
	return _c
}

// SetCriticalAction sets the "critical_action" field.
func (_c *CompiledFlowStepCreate) SetCriticalAction(v compiledflowstep.CriticalAction) *CompiledFlowStepCreate {
	_c.mutation.SetCriticalAction(v)
	return _c
}

// SetNillableCriticalAction sets the "critical_action" field if the given value is not nil.
func (_c *CompiledFlowStepCreate) SetNillableCriticalAction(v *compiledflowstep.CriticalAction) *CompiledFlowStepCreate {
	if v != nil {
		_c.SetCriticalAction(*v)
	}
	return _c
}

// SetWeight sets the "weight" field.
func (_c *CompiledFlowStepCreate) SetWeight(v float64) *CompiledFlowStepCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *CompiledFlowStepCreate) SetNillableWeight(v *float64) *CompiledFlowStepCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CompiledFlowStepCreate) SetMetadata(v map[string]interface{}) *CompiledFlowStepCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CompiledFlowStepCreate) SetID(v string) *CompiledFlowStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStageID sets the "stage" edge to the CompiledFlowStage entity by ID.
func (_c *CompiledFlowStepCreate) SetStageID(id string) *CompiledFlowStepCreate {
	_c.mutation.SetStageID(id)
	return _c
}

// SetStage sets the "stage" edge to the CompiledFlowStage entity.
func (_c *CompiledFlowStepCreate) SetStage(v *CompiledFlowStage) *CompiledFlowStepCreate {
	return _c.SetStageID(v.ID)
}

// Mutation returns the CompiledFlowStepMutation object of the builder.
func (_c *CompiledFlowStepCreate) Mutation() *CompiledFlowStepMutation {
	return _c.mutation
}

// Save creates the CompiledFlowStep in the database.
func (_c *CompiledFlowStepCreate) Save(ctx context.Context) (*CompiledFlowStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompiledFlowStepCreate) SaveX(ctx context.Context) *CompiledFlowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledFlowStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledFlowStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompiledFlowStepCreate) defaults() {
	if _, ok := _c.mutation.ExpectedRole(); !ok {
		v := compiledflowstep.DefaultExpectedRole
		_c.mutation.SetExpectedRole(v)
	}
	if _, ok := _c.mutation.Weight(); !ok {
		v := compiledflowstep.DefaultWeight
		_c.mutation.SetWeight(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompiledFlowStepCreate) check() error {
	if _, ok := _c.mutation.CompiledStageID(); !ok {
		return &ValidationError{Name: "compiled_stage_id", err: errors.New(`ent: missing required field "CompiledFlowStep.compiled_stage_id"`)}
	}
	if _, ok := _c.mutation.FlowVersionID(); !ok {
		return &ValidationError{Name: "flow_version_id", err: errors.New(`ent: missing required field "CompiledFlowStep.flow_version_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "CompiledFlowStep.step_name"`)}
	}
	if _, ok := _c.mutation.OrderingIndex(); !ok {
		return &ValidationError{Name: "ordering_index", err: errors.New(`ent: missing required field "CompiledFlowStep.ordering_index"`)}
	}
	if _, ok := _c.mutation.ExpectedRole(); !ok {
		return &ValidationError{Name: "expected_role", err: errors.New(`ent: missing required field "CompiledFlowStep.expected_role"`)}
	}
	if v, ok := _c.mutation.ExpectedRole(); ok {
		if err := compiledflowstep.ExpectedRoleValidator(v); err != nil {
			return &ValidationError{Name: "expected_role", err: fmt.Errorf(`ent: validator failed for field "CompiledFlowStep.expected_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetectionHint(); !ok {
		return &ValidationError{Name: "detection_hint", err: errors.New(`ent: missing required field "CompiledFlowStep.detection_hint"`)}
	}
	if v, ok := _c.mutation.DetectionHint(); ok {
		if err := compiledflowstep.DetectionHintValidator(v); err != nil {
			return &ValidationError{Name: "detection_hint", err: fmt.Errorf(`ent: validator failed for field "CompiledFlowStep.detection_hint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BehaviorType(); !ok {
		return &ValidationError{Name: "behavior_type", err: errors.New(`ent: missing required field "CompiledFlowStep.behavior_type"`)}
	}
	if v, ok := _c.mutation.BehaviorType(); ok {
		if err := compiledflowstep.BehaviorTypeValidator(v); err != nil {
			return &ValidationError{Name: "behavior_type", err: fmt.Errorf(`ent: validator failed for field "CompiledFlowStep.behavior_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CriticalAction(); ok {
		if err := compiledflowstep.CriticalActionValidator(v); err != nil {
			return &ValidationError{Name: "critical_action", err: fmt.Errorf(`ent: validator failed for field "CompiledFlowStep.critical_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "CompiledFlowStep.weight"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "CompiledFlowStep.stage"`)}
	}
	return nil
}

func (_c *CompiledFlowStepCreate) sqlSave(ctx context.Context) (*CompiledFlowStep, error) {
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
			return nil, fmt.Errorf("unexpected CompiledFlowStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompiledFlowStepCreate) createSpec() (*CompiledFlowStep, *sqlgraph.CreateSpec) {
	var (
		_node = &CompiledFlowStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compiledflowstep.Table, sqlgraph.NewFieldSpec(compiledflowstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FlowVersionID(); ok {
		_spec.SetField(compiledflowstep.FieldFlowVersionID, field.TypeString, value)
		_node.FlowVersionID = value
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(compiledflowstep.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(compiledflowstep.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OrderingIndex(); ok {
		_spec.SetField(compiledflowstep.FieldOrderingIndex, field.TypeInt, value)
		_node.OrderingIndex = value
	}
	if value, ok := _c.mutation.ExpectedRole(); ok {
		_spec.SetField(compiledflowstep.FieldExpectedRole, field.TypeEnum, value)
		_node.ExpectedRole = value
	}
	if value, ok := _c.mutation.ExpectedPhrases(); ok {
		_spec.SetField(compiledflowstep.FieldExpectedPhrases, field.TypeJSON, value)
		_node.ExpectedPhrases = value
	}
	if value, ok := _c.mutation.DetectionHint(); ok {
		_spec.SetField(compiledflowstep.FieldDetectionHint, field.TypeEnum, value)
		_node.DetectionHint = value
	}
	if value, ok := _c.mutation.BehaviorType(); ok {
		_spec.SetField(compiledflowstep.FieldBehaviorType, field.TypeEnum, value)
		_node.BehaviorType = value
	}
	if value, ok := _c.mutation.CriticalAction(); ok {
		_spec.SetField(compiledflowstep.FieldCriticalAction, field.TypeEnum, value)
		_node.CriticalAction = &value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(compiledflowstep.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(compiledflowstep.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   compiledflowstep.StageTable,
			Columns: []string{compiledflowstep.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompiledStageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompiledFlowStepCreateBulk is the builder for creating many CompiledFlowStep entities in bulk.
type CompiledFlowStepCreateBulk struct {
	config
	err      error
	builders []*CompiledFlowStepCreate
}

// Save creates the CompiledFlowStep entities in the database.
func (_c *CompiledFlowStepCreateBulk) Save(ctx context.Context) ([]*CompiledFlowStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompiledFlowStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompiledFlowStepMutation)
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
func (_c *CompiledFlowStepCreateBulk) SaveX(ctx context.Context) []*CompiledFlowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledFlowStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledFlowStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
