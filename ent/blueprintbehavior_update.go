// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// BlueprintBehaviorUpdate is the builder for updating BlueprintBehavior entities.
type BlueprintBehaviorUpdate struct {
	config
	hooks    []Hook
	mutation *BlueprintBehaviorMutation
}

// Where appends a list predicates to the BlueprintBehaviorUpdate builder.
func (_u *BlueprintBehaviorUpdate) Where(ps ...predicate.BlueprintBehavior) *BlueprintBehaviorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBehaviorName sets the "behavior_name" field.
func (_u *BlueprintBehaviorUpdate) SetBehaviorName(v string) *BlueprintBehaviorUpdate {
	_u.mutation.SetBehaviorName(v)
	return _u
}

// SetNillableBehaviorName sets the "behavior_name" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdate) SetNillableBehaviorName(v *string) *BlueprintBehaviorUpdate {
	if v != nil {
		_u.SetBehaviorName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BlueprintBehaviorUpdate) SetDescription(v string) *BlueprintBehaviorUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdate) SetNillableDescription(v *string) *BlueprintBehaviorUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BlueprintBehaviorUpdate) ClearDescription() *BlueprintBehaviorUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetBehaviorType sets the "behavior_type" field.
func (_u *BlueprintBehaviorUpdate) SetBehaviorType(v blueprintbehavior.BehaviorType) *BlueprintBehaviorUpdate {
	_u.mutation.SetBehaviorType(v)
	return _u
}

// SetNillableBehaviorType sets the "behavior_type" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdate) SetNillableBehaviorType(v *blueprintbehavior.BehaviorType) *BlueprintBehaviorUpdate {
	if v != nil {
		_u.SetBehaviorType(*v)
	}
	return _u
}

// SetDetectionMode sets the "detection_mode" field.
func (_u *BlueprintBehaviorUpdate) SetDetectionMode(v blueprintbehavior.DetectionMode) *BlueprintBehaviorUpdate {
	_u.mutation.SetDetectionMode(v)
	return _u
}

// SetNillableDetectionMode sets the "detection_mode" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdate) SetNillableDetectionMode(v *blueprintbehavior.DetectionMode) *BlueprintBehaviorUpdate {
	if v != nil {
		_u.SetDetectionMode(*v)
	}
	return _u
}

// SetPhrases sets the "phrases" field.
func (_u *BlueprintBehaviorUpdate) SetPhrases(v []string) *BlueprintBehaviorUpdate {
	_u.mutation.SetPhrases(v)
	return _u
}

// AppendPhrases appends value to the "phrases" field.
func (_u *BlueprintBehaviorUpdate) AppendPhrases(v []string) *BlueprintBehaviorUpdate {
	_u.mutation.AppendPhrases(v)
	return _u
}

// ClearPhrases clears the value of the "phrases" field.
func (_u *BlueprintBehaviorUpdate) ClearPhrases() *BlueprintBehaviorUpdate {
	_u.mutation.ClearPhrases()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *BlueprintBehaviorUpdate) SetWeight(v float64) *BlueprintBehaviorUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdate) SetNillableWeight(v *float64) *BlueprintBehaviorUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *BlueprintBehaviorUpdate) AddWeight(v float64) *BlueprintBehaviorUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetCriticalAction sets the "critical_action" field.
func (_u *BlueprintBehaviorUpdate) SetCriticalAction(v blueprintbehavior.CriticalAction) *BlueprintBehaviorUpdate {
	_u.mutation.SetCriticalAction(v)
	return _u
}

// SetNillableCriticalAction sets the "critical_action" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdate) SetNillableCriticalAction(v *blueprintbehavior.CriticalAction) *BlueprintBehaviorUpdate {
	if v != nil {
		_u.SetCriticalAction(*v)
	}
	return _u
}

// ClearCriticalAction clears the value of the "critical_action" field.
func (_u *BlueprintBehaviorUpdate) ClearCriticalAction() *BlueprintBehaviorUpdate {
	_u.mutation.ClearCriticalAction()
	return _u
}

// SetUIOrder sets the "ui_order" field.
func (_u *BlueprintBehaviorUpdate) SetUIOrder(v int) *BlueprintBehaviorUpdate {
	_u.mutation.ResetUIOrder()
	_u.mutation.SetUIOrder(v)
	return _u
}

// SetNillableUIOrder sets the "ui_order" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdate) SetNillableUIOrder(v *int) *BlueprintBehaviorUpdate {
	if v != nil {
		_u.SetUIOrder(*v)
	}
	return _u
}

// AddUIOrder adds value to the "ui_order" field.
func (_u *BlueprintBehaviorUpdate) AddUIOrder(v int) *BlueprintBehaviorUpdate {
	_u.mutation.AddUIOrder(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BlueprintBehaviorUpdate) SetMetadata(v map[string]interface{}) *BlueprintBehaviorUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BlueprintBehaviorUpdate) ClearMetadata() *BlueprintBehaviorUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the BlueprintBehaviorMutation object of the builder.
func (_u *BlueprintBehaviorUpdate) Mutation() *BlueprintBehaviorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlueprintBehaviorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintBehaviorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlueprintBehaviorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintBehaviorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintBehaviorUpdate) check() error {
	if v, ok := _u.mutation.BehaviorType(); ok {
		if err := blueprintbehavior.BehaviorTypeValidator(v); err != nil {
			return &ValidationError{Name: "behavior_type", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.behavior_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetectionMode(); ok {
		if err := blueprintbehavior.DetectionModeValidator(v); err != nil {
			return &ValidationError{Name: "detection_mode", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.detection_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalAction(); ok {
		if err := blueprintbehavior.CriticalActionValidator(v); err != nil {
			return &ValidationError{Name: "critical_action", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.critical_action": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintBehavior.stage"`)
	}
	return nil
}

func (_u *BlueprintBehaviorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintbehavior.Table, blueprintbehavior.Columns, sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BehaviorName(); ok {
		_spec.SetField(blueprintbehavior.FieldBehaviorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(blueprintbehavior.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(blueprintbehavior.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.BehaviorType(); ok {
		_spec.SetField(blueprintbehavior.FieldBehaviorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DetectionMode(); ok {
		_spec.SetField(blueprintbehavior.FieldDetectionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phrases(); ok {
		_spec.SetField(blueprintbehavior.FieldPhrases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhrases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blueprintbehavior.FieldPhrases, value)
		})
	}
	if _u.mutation.PhrasesCleared() {
		_spec.ClearField(blueprintbehavior.FieldPhrases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(blueprintbehavior.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(blueprintbehavior.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriticalAction(); ok {
		_spec.SetField(blueprintbehavior.FieldCriticalAction, field.TypeEnum, value)
	}
	if _u.mutation.CriticalActionCleared() {
		_spec.ClearField(blueprintbehavior.FieldCriticalAction, field.TypeEnum)
	}
	if value, ok := _u.mutation.UIOrder(); ok {
		_spec.SetField(blueprintbehavior.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUIOrder(); ok {
		_spec.AddField(blueprintbehavior.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(blueprintbehavior.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(blueprintbehavior.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintbehavior.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlueprintBehaviorUpdateOne is the builder for updating a single BlueprintBehavior entity.
type BlueprintBehaviorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlueprintBehaviorMutation
}

// SetBehaviorName sets the "behavior_name" field.
func (_u *BlueprintBehaviorUpdateOne) SetBehaviorName(v string) *BlueprintBehaviorUpdateOne {
	_u.mutation.SetBehaviorName(v)
	return _u
}

// SetNillableBehaviorName sets the "behavior_name" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdateOne) SetNillableBehaviorName(v *string) *BlueprintBehaviorUpdateOne {
	if v != nil {
		_u.SetBehaviorName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BlueprintBehaviorUpdateOne) SetDescription(v string) *BlueprintBehaviorUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdateOne) SetNillableDescription(v *string) *BlueprintBehaviorUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BlueprintBehaviorUpdateOne) ClearDescription() *BlueprintBehaviorUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetBehaviorType sets the "behavior_type" field.
func (_u *BlueprintBehaviorUpdateOne) SetBehaviorType(v blueprintbehavior.BehaviorType) *BlueprintBehaviorUpdateOne {
	_u.mutation.SetBehaviorType(v)
	return _u
}

// SetNillableBehaviorType sets the "behavior_type" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdateOne) SetNillableBehaviorType(v *blueprintbehavior.BehaviorType) *BlueprintBehaviorUpdateOne {
	if v != nil {
		_u.SetBehaviorType(*v)
	}
	return _u
}

// SetDetectionMode sets the "detection_mode" field.
func (_u *BlueprintBehaviorUpdateOne) SetDetectionMode(v blueprintbehavior.DetectionMode) *BlueprintBehaviorUpdateOne {
	_u.mutation.SetDetectionMode(v)
	return _u
}

// SetNillableDetectionMode sets the "detection_mode" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdateOne) SetNillableDetectionMode(v *blueprintbehavior.DetectionMode) *BlueprintBehaviorUpdateOne {
	if v != nil {
		_u.SetDetectionMode(*v)
	}
	return _u
}

// SetPhrases sets the "phrases" field.
func (_u *BlueprintBehaviorUpdateOne) SetPhrases(v []string) *BlueprintBehaviorUpdateOne {
	_u.mutation.SetPhrases(v)
	return _u
}

// AppendPhrases appends value to the "phrases" field.
func (_u *BlueprintBehaviorUpdateOne) AppendPhrases(v []string) *BlueprintBehaviorUpdateOne {
	_u.mutation.AppendPhrases(v)
	return _u
}

// ClearPhrases clears the value of the "phrases" field.
func (_u *BlueprintBehaviorUpdateOne) ClearPhrases() *BlueprintBehaviorUpdateOne {
	_u.mutation.ClearPhrases()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *BlueprintBehaviorUpdateOne) SetWeight(v float64) *BlueprintBehaviorUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdateOne) SetNillableWeight(v *float64) *BlueprintBehaviorUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *BlueprintBehaviorUpdateOne) AddWeight(v float64) *BlueprintBehaviorUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetCriticalAction sets the "critical_action" field.
func (_u *BlueprintBehaviorUpdateOne) SetCriticalAction(v blueprintbehavior.CriticalAction) *BlueprintBehaviorUpdateOne {
	_u.mutation.SetCriticalAction(v)
	return _u
}

// SetNillableCriticalAction sets the "critical_action" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdateOne) SetNillableCriticalAction(v *blueprintbehavior.CriticalAction) *BlueprintBehaviorUpdateOne {
	if v != nil {
		_u.SetCriticalAction(*v)
	}
	return _u
}

// ClearCriticalAction clears the value of the "critical_action" field.
func (_u *BlueprintBehaviorUpdateOne) ClearCriticalAction() *BlueprintBehaviorUpdateOne {
	_u.mutation.ClearCriticalAction()
	return _u
}

// SetUIOrder sets the "ui_order" field.
func (_u *BlueprintBehaviorUpdateOne) SetUIOrder(v int) *BlueprintBehaviorUpdateOne {
	_u.mutation.ResetUIOrder()
	_u.mutation.SetUIOrder(v)
	return _u
}

// SetNillableUIOrder sets the "ui_order" field if the given value is not nil.
func (_u *BlueprintBehaviorUpdateOne) SetNillableUIOrder(v *int) *BlueprintBehaviorUpdateOne {
	if v != nil {
		_u.SetUIOrder(*v)
	}
	return _u
}

// AddUIOrder adds value to the "ui_order" field.
func (_u *BlueprintBehaviorUpdateOne) AddUIOrder(v int) *BlueprintBehaviorUpdateOne {
	_u.mutation.AddUIOrder(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BlueprintBehaviorUpdateOne) SetMetadata(v map[string]interface{}) *BlueprintBehaviorUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BlueprintBehaviorUpdateOne) ClearMetadata() *BlueprintBehaviorUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the BlueprintBehaviorMutation object of the builder.
func (_u *BlueprintBehaviorUpdateOne) Mutation() *BlueprintBehaviorMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlueprintBehaviorUpdate builder.
func (_u *BlueprintBehaviorUpdateOne) Where(ps ...predicate.BlueprintBehavior) *BlueprintBehaviorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlueprintBehaviorUpdateOne) Select(field string, fields ...string) *BlueprintBehaviorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlueprintBehavior entity.
func (_u *BlueprintBehaviorUpdateOne) Save(ctx context.Context) (*BlueprintBehavior, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintBehaviorUpdateOne) SaveX(ctx context.Context) *BlueprintBehavior {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlueprintBehaviorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintBehaviorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintBehaviorUpdateOne) check() error {
	if v, ok := _u.mutation.BehaviorType(); ok {
		if err := blueprintbehavior.BehaviorTypeValidator(v); err != nil {
			return &ValidationError{Name: "behavior_type", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.behavior_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetectionMode(); ok {
		if err := blueprintbehavior.DetectionModeValidator(v); err != nil {
			return &ValidationError{Name: "detection_mode", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.detection_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CriticalAction(); ok {
		if err := blueprintbehavior.CriticalActionValidator(v); err != nil {
			return &ValidationError{Name: "critical_action", err: fmt.Errorf(`ent: validator failed for field "BlueprintBehavior.critical_action": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlueprintBehavior.stage"`)
	}
	return nil
}

func (_u *BlueprintBehaviorUpdateOne) sqlSave(ctx context.Context) (_node *BlueprintBehavior, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprintbehavior.Table, blueprintbehavior.Columns, sqlgraph.NewFieldSpec(blueprintbehavior.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlueprintBehavior.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintbehavior.FieldID)
		for _, f := range fields {
			if !blueprintbehavior.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprintbehavior.FieldID {
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
	if value, ok := _u.mutation.BehaviorName(); ok {
		_spec.SetField(blueprintbehavior.FieldBehaviorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(blueprintbehavior.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(blueprintbehavior.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.BehaviorType(); ok {
		_spec.SetField(blueprintbehavior.FieldBehaviorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DetectionMode(); ok {
		_spec.SetField(blueprintbehavior.FieldDetectionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phrases(); ok {
		_spec.SetField(blueprintbehavior.FieldPhrases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhrases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blueprintbehavior.FieldPhrases, value)
		})
	}
	if _u.mutation.PhrasesCleared() {
		_spec.ClearField(blueprintbehavior.FieldPhrases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(blueprintbehavior.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(blueprintbehavior.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriticalAction(); ok {
		_spec.SetField(blueprintbehavior.FieldCriticalAction, field.TypeEnum, value)
	}
	if _u.mutation.CriticalActionCleared() {
		_spec.ClearField(blueprintbehavior.FieldCriticalAction, field.TypeEnum)
	}
	if value, ok := _u.mutation.UIOrder(); ok {
		_spec.SetField(blueprintbehavior.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUIOrder(); ok {
		_spec.AddField(blueprintbehavior.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(blueprintbehavior.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(blueprintbehavior.FieldMetadata, field.TypeJSON)
	}
	_node = &BlueprintBehavior{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintbehavior.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
