// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledFlowVersionUpdate is the builder for updating CompiledFlowVersion entities.
type CompiledFlowVersionUpdate struct {
	config
	hooks    []Hook
	mutation *CompiledFlowVersionMutation
}

// Where appends a list predicates to the CompiledFlowVersionUpdate builder.
func (_u *CompiledFlowVersionUpdate) Where(ps ...predicate.CompiledFlowVersion) *CompiledFlowVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddStageIDs adds the "stages" edge to the CompiledFlowStage entity by IDs.
func (_u *CompiledFlowVersionUpdate) AddStageIDs(ids ...string) *CompiledFlowVersionUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the CompiledFlowStage entity.
func (_u *CompiledFlowVersionUpdate) AddStages(v ...*CompiledFlowStage) *CompiledFlowVersionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddRuleIDs adds the "rules" edge to the CompiledComplianceRule entity by IDs.
func (_u *CompiledFlowVersionUpdate) AddRuleIDs(ids ...string) *CompiledFlowVersionUpdate {
	_u.mutation.AddRuleIDs(ids...)
	return _u
}

// AddRules adds the "rules" edges to the CompiledComplianceRule entity.
func (_u *CompiledFlowVersionUpdate) AddRules(v ...*CompiledComplianceRule) *CompiledFlowVersionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleIDs(ids...)
}

// SetRubricID sets the "rubric" edge to the CompiledRubricTemplate entity by ID.
func (_u *CompiledFlowVersionUpdate) SetRubricID(id string) *CompiledFlowVersionUpdate {
	_u.mutation.SetRubricID(id)
	return _u
}

// SetNillableRubricID sets the "rubric" edge to the CompiledRubricTemplate entity by ID if the given value is not nil.
func (_u *CompiledFlowVersionUpdate) SetNillableRubricID(id *string) *CompiledFlowVersionUpdate {
	if id != nil {
		_u = _u.SetRubricID(*id)
	}
	return _u
}

// SetRubric sets the "rubric" edge to the CompiledRubricTemplate entity.
func (_u *CompiledFlowVersionUpdate) SetRubric(v *CompiledRubricTemplate) *CompiledFlowVersionUpdate {
	return _u.SetRubricID(v.ID)
}

// Mutation returns the CompiledFlowVersionMutation object of the builder.
func (_u *CompiledFlowVersionUpdate) Mutation() *CompiledFlowVersionMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the CompiledFlowStage entity.
func (_u *CompiledFlowVersionUpdate) ClearStages() *CompiledFlowVersionUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to CompiledFlowStage entities by IDs.
func (_u *CompiledFlowVersionUpdate) RemoveStageIDs(ids ...string) *CompiledFlowVersionUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to CompiledFlowStage entities.
func (_u *CompiledFlowVersionUpdate) RemoveStages(v ...*CompiledFlowStage) *CompiledFlowVersionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearRules clears all "rules" edges to the CompiledComplianceRule entity.
func (_u *CompiledFlowVersionUpdate) ClearRules() *CompiledFlowVersionUpdate {
	_u.mutation.ClearRules()
	return _u
}

// RemoveRuleIDs removes the "rules" edge to CompiledComplianceRule entities by IDs.
func (_u *CompiledFlowVersionUpdate) RemoveRuleIDs(ids ...string) *CompiledFlowVersionUpdate {
	_u.mutation.RemoveRuleIDs(ids...)
	return _u
}

// RemoveRules removes "rules" edges to CompiledComplianceRule entities.
func (_u *CompiledFlowVersionUpdate) RemoveRules(v ...*CompiledComplianceRule) *CompiledFlowVersionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleIDs(ids...)
}

// ClearRubric clears the "rubric" edge to the CompiledRubricTemplate entity.
func (_u *CompiledFlowVersionUpdate) ClearRubric() *CompiledFlowVersionUpdate {
	_u.mutation.ClearRubric()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompiledFlowVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledFlowVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompiledFlowVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledFlowVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompiledFlowVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(compiledflowversion.Table, compiledflowversion.Columns, sqlgraph.NewFieldSpec(compiledflowversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(compiledflowversion.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.StagesTable,
			Columns: []string{compiledflowversion.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.StagesTable,
			Columns: []string{compiledflowversion.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString),
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
			Table:   compiledflowversion.StagesTable,
			Columns: []string{compiledflowversion.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.RulesTable,
			Columns: []string{compiledflowversion.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRulesIDs(); len(nodes) > 0 && !_u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.RulesTable,
			Columns: []string{compiledflowversion.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.RulesTable,
			Columns: []string{compiledflowversion.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RubricCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   compiledflowversion.RubricTable,
			Columns: []string{compiledflowversion.RubricColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RubricIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   compiledflowversion.RubricTable,
			Columns: []string{compiledflowversion.RubricColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledflowversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompiledFlowVersionUpdateOne is the builder for updating a single CompiledFlowVersion entity.
type CompiledFlowVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompiledFlowVersionMutation
}

// AddStageIDs adds the "stages" edge to the CompiledFlowStage entity by IDs.
func (_u *CompiledFlowVersionUpdateOne) AddStageIDs(ids ...string) *CompiledFlowVersionUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the CompiledFlowStage entity.
func (_u *CompiledFlowVersionUpdateOne) AddStages(v ...*CompiledFlowStage) *CompiledFlowVersionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddRuleIDs adds the "rules" edge to the CompiledComplianceRule entity by IDs.
func (_u *CompiledFlowVersionUpdateOne) AddRuleIDs(ids ...string) *CompiledFlowVersionUpdateOne {
	_u.mutation.AddRuleIDs(ids...)
	return _u
}

// AddRules adds the "rules" edges to the CompiledComplianceRule entity.
func (_u *CompiledFlowVersionUpdateOne) AddRules(v ...*CompiledComplianceRule) *CompiledFlowVersionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleIDs(ids...)
}

// SetRubricID sets the "rubric" edge to the CompiledRubricTemplate entity by ID.
func (_u *CompiledFlowVersionUpdateOne) SetRubricID(id string) *CompiledFlowVersionUpdateOne {
	_u.mutation.SetRubricID(id)
	return _u
}

// SetNillableRubricID sets the "rubric" edge to the CompiledRubricTemplate entity by ID if the given value is not nil.
func (_u *CompiledFlowVersionUpdateOne) SetNillableRubricID(id *string) *CompiledFlowVersionUpdateOne {
	if id != nil {
		_u = _u.SetRubricID(*id)
	}
	return _u
}

// SetRubric sets the "rubric" edge to the CompiledRubricTemplate entity.
func (_u *CompiledFlowVersionUpdateOne) SetRubric(v *CompiledRubricTemplate) *CompiledFlowVersionUpdateOne {
	return _u.SetRubricID(v.ID)
}

// Mutation returns the CompiledFlowVersionMutation object of the builder.
func (_u *CompiledFlowVersionUpdateOne) Mutation() *CompiledFlowVersionMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the CompiledFlowStage entity.
func (_u *CompiledFlowVersionUpdateOne) ClearStages() *CompiledFlowVersionUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to CompiledFlowStage entities by IDs.
func (_u *CompiledFlowVersionUpdateOne) RemoveStageIDs(ids ...string) *CompiledFlowVersionUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to CompiledFlowStage entities.
func (_u *CompiledFlowVersionUpdateOne) RemoveStages(v ...*CompiledFlowStage) *CompiledFlowVersionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearRules clears all "rules" edges to the CompiledComplianceRule entity.
func (_u *CompiledFlowVersionUpdateOne) ClearRules() *CompiledFlowVersionUpdateOne {
	_u.mutation.ClearRules()
	return _u
}

// RemoveRuleIDs removes the "rules" edge to CompiledComplianceRule entities by IDs.
func (_u *CompiledFlowVersionUpdateOne) RemoveRuleIDs(ids ...string) *CompiledFlowVersionUpdateOne {
	_u.mutation.RemoveRuleIDs(ids...)
	return _u
}

// RemoveRules removes "rules" edges to CompiledComplianceRule entities.
func (_u *CompiledFlowVersionUpdateOne) RemoveRules(v ...*CompiledComplianceRule) *CompiledFlowVersionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleIDs(ids...)
}

// ClearRubric clears the "rubric" edge to the CompiledRubricTemplate entity.
func (_u *CompiledFlowVersionUpdateOne) ClearRubric() *CompiledFlowVersionUpdateOne {
	_u.mutation.ClearRubric()
	return _u
}

// Where appends a list predicates to the CompiledFlowVersionUpdate builder.
func (_u *CompiledFlowVersionUpdateOne) Where(ps ...predicate.CompiledFlowVersion) *CompiledFlowVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompiledFlowVersionUpdateOne) Select(field string, fields ...string) *CompiledFlowVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompiledFlowVersion entity.
func (_u *CompiledFlowVersionUpdateOne) Save(ctx context.Context) (*CompiledFlowVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompiledFlowVersionUpdateOne) SaveX(ctx context.Context) *CompiledFlowVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompiledFlowVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompiledFlowVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CompiledFlowVersionUpdateOne) sqlSave(ctx context.Context) (_node *CompiledFlowVersion, err error) {
	_spec := sqlgraph.NewUpdateSpec(compiledflowversion.Table, compiledflowversion.Columns, sqlgraph.NewFieldSpec(compiledflowversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompiledFlowVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compiledflowversion.FieldID)
		for _, f := range fields {
			if !compiledflowversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compiledflowversion.FieldID {
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
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(compiledflowversion.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.StagesTable,
			Columns: []string{compiledflowversion.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.StagesTable,
			Columns: []string{compiledflowversion.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString),
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
			Table:   compiledflowversion.StagesTable,
			Columns: []string{compiledflowversion.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.RulesTable,
			Columns: []string{compiledflowversion.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRulesIDs(); len(nodes) > 0 && !_u.mutation.RulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.RulesTable,
			Columns: []string{compiledflowversion.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   compiledflowversion.RulesTable,
			Columns: []string{compiledflowversion.RulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledcompliancerule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RubricCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   compiledflowversion.RubricTable,
			Columns: []string{compiledflowversion.RubricColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RubricIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   compiledflowversion.RubricTable,
			Columns: []string{compiledflowversion.RubricColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CompiledFlowVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compiledflowversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
