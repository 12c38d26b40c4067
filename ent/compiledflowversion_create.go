// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
)

// CompiledFlowVersionCreate is the builder for creating a CompiledFlowVersion entity.
type CompiledFlowVersionCreate struct {
	config
	mutation *CompiledFlowVersionMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *CompiledFlowVersionCreate) SetCompanyID(v string) *CompiledFlowVersionCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetBlueprintVersionID sets the "blueprint_version_id" field.
func (_c *CompiledFlowVersionCreate) SetBlueprintVersionID(v string) *CompiledFlowVersionCreate {
	_c.mutation.SetBlueprintVersionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CompiledFlowVersionCreate) SetName(v string) *CompiledFlowVersionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CompiledFlowVersionCreate) SetMetadata(v map[string]interface{}) *CompiledFlowVersionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompiledFlowVersionCreate) SetCreatedAt(v time.Time) *CompiledFlowVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompiledFlowVersionCreate) SetNillableCreatedAt(v *time.Time) *CompiledFlowVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompiledFlowVersionCreate) SetID(v string) *CompiledFlowVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageIDs adds the "stages" edge to the CompiledFlowStage entity by IDs.
func (_c *CompiledFlowVersionCreate) AddStageIDs(ids ...string) *CompiledFlowVersionCreate {
	_c.mutation.AddStageIDs(ids...)
	return _c
}

// AddStages adds the "stages" edges to the CompiledFlowStage entity.
func (_c *CompiledFlowVersionCreate) AddStages(v ...*CompiledFlowStage) *CompiledFlowVersionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageIDs(ids...)
}

// AddRuleIDs adds the "rules" edge to the CompiledComplianceRule entity by IDs.
func (_c *CompiledFlowVersionCreate) AddRuleIDs(ids ...string) *CompiledFlowVersionCreate {
	_c.mutation.AddRuleIDs(ids...)
	return _c
}

// AddRules adds the "rules" edges to the CompiledComplianceRule entity.
func (_c *CompiledFlowVersionCreate) AddRules(v ...*CompiledComplianceRule) *CompiledFlowVersionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRuleIDs(ids...)
}

// SetRubricID sets the "rubric" edge to the CompiledRubricTemplate entity by ID.
func (_c *CompiledFlowVersionCreate) SetRubricID(id string) *CompiledFlowVersionCreate {
	_c.mutation.SetRubricID(id)
	return _c
}

// SetNillableRubricID sets the "rubric" edge to the CompiledRubricTemplate entity by ID if the given value is not nil.
func (_c *CompiledFlowVersionCreate) SetNillableRubricID(id *string) *CompiledFlowVersionCreate {
	if id != nil {
		_c = _c.SetRubricID(*id)
	}
	return _c
}

// SetRubric sets the "rubric" edge to the CompiledRubricTemplate entity.
func (_c *CompiledFlowVersionCreate) SetRubric(v *CompiledRubricTemplate) *CompiledFlowVersionCreate {
	return _c.SetRubricID(v.ID)
}

// Mutation returns the CompiledFlowVersionMutation object of the builder.
func (_c *CompiledFlowVersionCreate) Mutation() *CompiledFlowVersionMutation {
	return _c.mutation
}

// Save creates the CompiledFlowVersion in the database.
func (_c *CompiledFlowVersionCreate) Save(ctx context.Context) (*CompiledFlowVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompiledFlowVersionCreate) SaveX(ctx context.Context) *CompiledFlowVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledFlowVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledFlowVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompiledFlowVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := compiledflowversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompiledFlowVersionCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "CompiledFlowVersion.company_id"`)}
	}
	if _, ok := _c.mutation.BlueprintVersionID(); !ok {
		return &ValidationError{Name: "blueprint_version_id", err: errors.New(`ent: missing required field "CompiledFlowVersion.blueprint_version_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CompiledFlowVersion.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CompiledFlowVersion.created_at"`)}
	}
	return nil
}

func (_c *CompiledFlowVersionCreate) sqlSave(ctx context.Context) (*CompiledFlowVersion, error) {
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
			return nil, fmt.Errorf("unexpected CompiledFlowVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompiledFlowVersionCreate) createSpec() (*CompiledFlowVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &CompiledFlowVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compiledflowversion.Table, sqlgraph.NewFieldSpec(compiledflowversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(compiledflowversion.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.BlueprintVersionID(); ok {
		_spec.SetField(compiledflowversion.FieldBlueprintVersionID, field.TypeString, value)
		_node.BlueprintVersionID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(compiledflowversion.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(compiledflowversion.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(compiledflowversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RulesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RubricIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompiledFlowVersionCreateBulk is the builder for creating many CompiledFlowVersion entities in bulk.
type CompiledFlowVersionCreateBulk struct {
	config
	err      error
	builders []*CompiledFlowVersionCreate
}

// Save creates the CompiledFlowVersion entities in the database.
func (_c *CompiledFlowVersionCreateBulk) Save(ctx context.Context) ([]*CompiledFlowVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompiledFlowVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompiledFlowVersionMutation)
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
func (_c *CompiledFlowVersionCreateBulk) SaveX(ctx context.Context) []*CompiledFlowVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledFlowVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledFlowVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
