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
	"github.com/callscope-ai/callscope/ent/blueprintversion"
	"github.com/callscope-ai/callscope/pkg/models"
)

// BlueprintVersionCreate is the builder for creating a BlueprintVersion entity.
type BlueprintVersionCreate struct {
	config
	mutation *BlueprintVersionMutation
	hooks    []Hook
}

// SetBlueprintID sets the "blueprint_id" field.
func (_c *BlueprintVersionCreate) SetBlueprintID(v string) *BlueprintVersionCreate {
	_c.mutation.SetBlueprintID(v)
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *BlueprintVersionCreate) SetVersionNumber(v int) *BlueprintVersionCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetSnapshot sets the "snapshot" field.
func (_c *BlueprintVersionCreate) SetSnapshot(v *models.BlueprintSnapshot) *BlueprintVersionCreate {
	_c.mutation.SetSnapshot(v)
	return _c
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_c *BlueprintVersionCreate) SetCompiledFlowVersionID(v string) *BlueprintVersionCreate {
	_c.mutation.SetCompiledFlowVersionID(v)
	return _c
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_c *BlueprintVersionCreate) SetNillableCompiledFlowVersionID(v *string) *BlueprintVersionCreate {
	if v != nil {
		_c.SetCompiledFlowVersionID(*v)
	}
	return _c
}

// SetPublishedBy sets the "published_by" field.
func (_c *BlueprintVersionCreate) SetPublishedBy(v string) *BlueprintVersionCreate {
	_c.mutation.SetPublishedBy(v)
	return _c
}

// SetNillablePublishedBy sets the "published_by" field if the given value is not nil.
func (_c *BlueprintVersionCreate) SetNillablePublishedBy(v *string) *BlueprintVersionCreate {
	if v != nil {
		_c.SetPublishedBy(*v)
	}
	return _c
}

// SetPublishNote sets the "publish_note" field.
func (_c *BlueprintVersionCreate) SetPublishNote(v string) *BlueprintVersionCreate {
	_c.mutation.SetPublishNote(v)
	return _c
}

// SetNillablePublishNote sets the "publish_note" field if the given value is not nil.
func (_c *BlueprintVersionCreate) SetNillablePublishNote(v *string) *BlueprintVersionCreate {
	if v != nil {
		_c.SetPublishNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlueprintVersionCreate) SetCreatedAt(v time.Time) *BlueprintVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlueprintVersionCreate) SetNillableCreatedAt(v *time.Time) *BlueprintVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlueprintVersionCreate) SetID(v string) *BlueprintVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_c *BlueprintVersionCreate) SetBlueprint(v *Blueprint) *BlueprintVersionCreate {
	return _c.SetBlueprintID(v.ID)
}

// Mutation returns the BlueprintVersionMutation object of the builder.
func (_c *BlueprintVersionCreate) Mutation() *BlueprintVersionMutation {
	return _c.mutation
}

// Save creates the BlueprintVersion in the database.
func (_c *BlueprintVersionCreate) Save(ctx context.Context) (*BlueprintVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlueprintVersionCreate) SaveX(ctx context.Context) *BlueprintVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlueprintVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blueprintversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlueprintVersionCreate) check() error {
	if _, ok := _c.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "BlueprintVersion.blueprint_id"`)}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "BlueprintVersion.version_number"`)}
	}
	if _, ok := _c.mutation.Snapshot(); !ok {
		return &ValidationError{Name: "snapshot", err: errors.New(`ent: missing required field "BlueprintVersion.snapshot"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlueprintVersion.created_at"`)}
	}
	if len(_c.mutation.BlueprintIDs()) == 0 {
		return &ValidationError{Name: "blueprint", err: errors.New(`ent: missing required edge "BlueprintVersion.blueprint"`)}
	}
	return nil
}

func (_c *BlueprintVersionCreate) sqlSave(ctx context.Context) (*BlueprintVersion, error) {
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
			return nil, fmt.Errorf("unexpected BlueprintVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlueprintVersionCreate) createSpec() (*BlueprintVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &BlueprintVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blueprintversion.Table, sqlgraph.NewFieldSpec(blueprintversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(blueprintversion.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.Snapshot(); ok {
		_spec.SetField(blueprintversion.FieldSnapshot, field.TypeJSON, value)
		_node.Snapshot = value
	}
	if value, ok := _c.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(blueprintversion.FieldCompiledFlowVersionID, field.TypeString, value)
		_node.CompiledFlowVersionID = &value
	}
	if value, ok := _c.mutation.PublishedBy(); ok {
		_spec.SetField(blueprintversion.FieldPublishedBy, field.TypeString, value)
		_node.PublishedBy = value
	}
	if value, ok := _c.mutation.PublishNote(); ok {
		_spec.SetField(blueprintversion.FieldPublishNote, field.TypeString, value)
		_node.PublishNote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BlueprintIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blueprintversion.BlueprintTable,
			Columns: []string{blueprintversion.BlueprintColumn},
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
	return _node, _spec
}

// BlueprintVersionCreateBulk is the builder for creating many BlueprintVersion entities in bulk.
type BlueprintVersionCreateBulk struct {
	config
	err      error
	builders []*BlueprintVersionCreate
}

// Save creates the BlueprintVersion entities in the database.
func (_c *BlueprintVersionCreateBulk) Save(ctx context.Context) ([]*BlueprintVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlueprintVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintVersionMutation)
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
func (_c *BlueprintVersionCreateBulk) SaveX(ctx context.Context) []*BlueprintVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
