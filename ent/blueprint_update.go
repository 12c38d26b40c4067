// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
	"github.com/callscope-ai/callscope/ent/blueprintversion"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// BlueprintUpdate is the builder for updating Blueprint entities.
type BlueprintUpdate struct {
	config
	hooks    []Hook
	mutation *BlueprintMutation
}

// Where appends a list predicates to the BlueprintUpdate builder.
func (_u *BlueprintUpdate) Where(ps ...predicate.Blueprint) *BlueprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BlueprintUpdate) SetName(v string) *BlueprintUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableName(v *string) *BlueprintUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BlueprintUpdate) SetDescription(v string) *BlueprintUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableDescription(v *string) *BlueprintUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BlueprintUpdate) ClearDescription() *BlueprintUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlueprintUpdate) SetStatus(v blueprint.Status) *BlueprintUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableStatus(v *blueprint.Status) *BlueprintUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *BlueprintUpdate) SetVersionNumber(v int) *BlueprintUpdate {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableVersionNumber(v *int) *BlueprintUpdate {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *BlueprintUpdate) AddVersionNumber(v int) *BlueprintUpdate {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *BlueprintUpdate) SetCompiledFlowVersionID(v string) *BlueprintUpdate {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableCompiledFlowVersionID(v *string) *BlueprintUpdate {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *BlueprintUpdate) ClearCompiledFlowVersionID() *BlueprintUpdate {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *BlueprintUpdate) SetLanguage(v string) *BlueprintUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableLanguage(v *string) *BlueprintUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *BlueprintUpdate) ClearLanguage() *BlueprintUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlueprintUpdate) SetUpdatedAt(v time.Time) *BlueprintUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStageIDs adds the "stages" edge to the BlueprintStage entity by IDs.
func (_u *BlueprintUpdate) AddStageIDs(ids ...string) *BlueprintUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the BlueprintStage entity.
func (_u *BlueprintUpdate) AddStages(v ...*BlueprintStage) *BlueprintUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the BlueprintVersion entity by IDs.
func (_u *BlueprintUpdate) AddVersionIDs(ids ...string) *BlueprintUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the BlueprintVersion entity.
func (_u *BlueprintUpdate) AddVersions(v ...*BlueprintVersion) *BlueprintUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the BlueprintMutation object of the builder.
func (_u *BlueprintUpdate) Mutation() *BlueprintMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the BlueprintStage entity.
func (_u *BlueprintUpdate) ClearStages() *BlueprintUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to BlueprintStage entities by IDs.
func (_u *BlueprintUpdate) RemoveStageIDs(ids ...string) *BlueprintUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to BlueprintStage entities.
func (_u *BlueprintUpdate) RemoveStages(v ...*BlueprintStage) *BlueprintUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearVersions clears all "versions" edges to the BlueprintVersion entity.
func (_u *BlueprintUpdate) ClearVersions() *BlueprintUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to BlueprintVersion entities by IDs.
func (_u *BlueprintUpdate) RemoveVersionIDs(ids ...string) *BlueprintUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to BlueprintVersion entities.
func (_u *BlueprintUpdate) RemoveVersions(v ...*BlueprintVersion) *BlueprintUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlueprintUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlueprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlueprintUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blueprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := blueprint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Blueprint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BlueprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprint.Table, blueprint.Columns, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(blueprint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(blueprint.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(blueprint.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blueprint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(blueprint.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(blueprint.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(blueprint.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(blueprint.FieldCompiledFlowVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(blueprint.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(blueprint.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.StagesTable,
			Columns: []string{blueprint.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.StagesTable,
			Columns: []string{blueprint.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.StagesTable,
			Columns: []string{blueprint.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.VersionsTable,
			Columns: []string{blueprint.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.VersionsTable,
			Columns: []string{blueprint.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.VersionsTable,
			Columns: []string{blueprint.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlueprintUpdateOne is the builder for updating a single Blueprint entity.
type BlueprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlueprintMutation
}

// SetName sets the "name" field.
func (_u *BlueprintUpdateOne) SetName(v string) *BlueprintUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableName(v *string) *BlueprintUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BlueprintUpdateOne) SetDescription(v string) *BlueprintUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableDescription(v *string) *BlueprintUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BlueprintUpdateOne) ClearDescription() *BlueprintUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlueprintUpdateOne) SetStatus(v blueprint.Status) *BlueprintUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableStatus(v *blueprint.Status) *BlueprintUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *BlueprintUpdateOne) SetVersionNumber(v int) *BlueprintUpdateOne {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableVersionNumber(v *int) *BlueprintUpdateOne {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *BlueprintUpdateOne) AddVersionNumber(v int) *BlueprintUpdateOne {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *BlueprintUpdateOne) SetCompiledFlowVersionID(v string) *BlueprintUpdateOne {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableCompiledFlowVersionID(v *string) *BlueprintUpdateOne {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *BlueprintUpdateOne) ClearCompiledFlowVersionID() *BlueprintUpdateOne {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *BlueprintUpdateOne) SetLanguage(v string) *BlueprintUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableLanguage(v *string) *BlueprintUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *BlueprintUpdateOne) ClearLanguage() *BlueprintUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlueprintUpdateOne) SetUpdatedAt(v time.Time) *BlueprintUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStageIDs adds the "stages" edge to the BlueprintStage entity by IDs.
func (_u *BlueprintUpdateOne) AddStageIDs(ids ...string) *BlueprintUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the BlueprintStage entity.
func (_u *BlueprintUpdateOne) AddStages(v ...*BlueprintStage) *BlueprintUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the BlueprintVersion entity by IDs.
func (_u *BlueprintUpdateOne) AddVersionIDs(ids ...string) *BlueprintUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the BlueprintVersion entity.
func (_u *BlueprintUpdateOne) AddVersions(v ...*BlueprintVersion) *BlueprintUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// Mutation returns the BlueprintMutation object of the builder.
func (_u *BlueprintUpdateOne) Mutation() *BlueprintMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the BlueprintStage entity.
func (_u *BlueprintUpdateOne) ClearStages() *BlueprintUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to BlueprintStage entities by IDs.
func (_u *BlueprintUpdateOne) RemoveStageIDs(ids ...string) *BlueprintUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to BlueprintStage entities.
func (_u *BlueprintUpdateOne) RemoveStages(v ...*BlueprintStage) *BlueprintUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearVersions clears all "versions" edges to the BlueprintVersion entity.
func (_u *BlueprintUpdateOne) ClearVersions() *BlueprintUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to BlueprintVersion entities by IDs.
func (_u *BlueprintUpdateOne) RemoveVersionIDs(ids ...string) *BlueprintUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to BlueprintVersion entities.
func (_u *BlueprintUpdateOne) RemoveVersions(v ...*BlueprintVersion) *BlueprintUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the BlueprintUpdate builder.
func (_u *BlueprintUpdateOne) Where(ps ...predicate.Blueprint) *BlueprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlueprintUpdateOne) Select(field string, fields ...string) *BlueprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Blueprint entity.
func (_u *BlueprintUpdateOne) Save(ctx context.Context) (*Blueprint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintUpdateOne) SaveX(ctx context.Context) *Blueprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlueprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlueprintUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blueprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := blueprint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Blueprint.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BlueprintUpdateOne) sqlSave(ctx context.Context) (_node *Blueprint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprint.Table, blueprint.Columns, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Blueprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprint.FieldID)
		for _, f := range fields {
			if !blueprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprint.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(blueprint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(blueprint.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(blueprint.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blueprint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(blueprint.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(blueprint.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(blueprint.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(blueprint.FieldCompiledFlowVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(blueprint.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(blueprint.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.StagesTable,
			Columns: []string{blueprint.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.StagesTable,
			Columns: []string{blueprint.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.StagesTable,
			Columns: []string{blueprint.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.VersionsTable,
			Columns: []string{blueprint.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.VersionsTable,
			Columns: []string{blueprint.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.VersionsTable,
			Columns: []string{blueprint.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Blueprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
