// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
	"github.com/callscope-ai/callscope/ent/blueprintversion"
)

// BlueprintCreate is the builder for creating a Blueprint entity.
type BlueprintCreate struct {
	config
	mutation *BlueprintMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *BlueprintCreate) SetCompanyID(v string) *BlueprintCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BlueprintCreate) SetName(v string) *BlueprintCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BlueprintCreate) SetDescription(v string) *BlueprintCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableDescription(v *string) *BlueprintCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BlueprintCreate) SetStatus(v blueprint.Status) *BlueprintCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableStatus(v *blueprint.Status) *BlueprintCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *BlueprintCreate) SetVersionNumber(v int) *BlueprintCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableVersionNumber(v *int) *BlueprintCreate {
	if v != nil {
		_c.SetVersionNumber(*v)
	}
	return _c
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_c *BlueprintCreate) SetCompiledFlowVersionID(v string) *BlueprintCreate {
	_c.mutation.SetCompiledFlowVersionID(v)
	return _c
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableCompiledFlowVersionID(v *string) *BlueprintCreate {
	if v != nil {
		_c.SetCompiledFlowVersionID(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *BlueprintCreate) SetLanguage(v string) *BlueprintCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableLanguage(v *string) *BlueprintCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlueprintCreate) SetCreatedAt(v time.Time) *BlueprintCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableCreatedAt(v *time.Time) *BlueprintCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlueprintCreate) SetUpdatedAt(v time.Time) *BlueprintCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableUpdatedAt(v *time.Time) *BlueprintCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlueprintCreate) SetID(v string) *BlueprintCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageIDs adds the "stages" edge to the BlueprintStage entity by IDs.
func (_c *BlueprintCreate) AddStageIDs(ids ...string) *BlueprintCreate {
	_c.mutation.AddStageIDs(ids...)
	return _c
}

// AddStages adds the "stages" edges to the BlueprintStage entity.
func (_c *BlueprintCreate) AddStages(v ...*BlueprintStage) *BlueprintCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the BlueprintVersion entity by IDs.
func (_c *BlueprintCreate) AddVersionIDs(ids ...string) *BlueprintCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the BlueprintVersion entity.
func (_c *BlueprintCreate) AddVersions(v ...*BlueprintVersion) *BlueprintCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// Mutation returns the BlueprintMutation object of the builder.
func (_c *BlueprintCreate) Mutation() *BlueprintMutation {
	return _c.mutation
}

// Save creates the Blueprint in the database.
func (_c *BlueprintCreate) Save(ctx context.Context) (*Blueprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlueprintCreate) SaveX(ctx context.Context) *Blueprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlueprintCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := blueprint.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		v := blueprint.DefaultVersionNumber
		_c.mutation.SetVersionNumber(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blueprint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := blueprint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlueprintCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Blueprint.company_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Blueprint.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Blueprint.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := blueprint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Blueprint.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "Blueprint.version_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Blueprint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Blueprint.updated_at"`)}
	}
	return nil
}

func (_c *BlueprintCreate) sqlSave(ctx context.Context) (*Blueprint, error) {
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
			return nil, fmt.Errorf("unexpected Blueprint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlueprintCreate) createSpec() (*Blueprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Blueprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blueprint.Table, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(blueprint.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(blueprint.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(blueprint.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(blueprint.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(blueprint.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(blueprint.FieldCompiledFlowVersionID, field.TypeString, value)
		_node.CompiledFlowVersionID = &value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(blueprint.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blueprint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlueprintCreateBulk is the builder for creating many Blueprint entities in bulk.
type BlueprintCreateBulk struct {
	config
	err      error
	builders []*BlueprintCreate
}

// Save creates the Blueprint entities in the database.
func (_c *BlueprintCreateBulk) Save(ctx context.Context) ([]*Blueprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Blueprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintMutation)
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
func (_c *BlueprintCreateBulk) SaveX(ctx context.Context) []*Blueprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
