// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
	"github.com/callscope-ai/callscope/pkg/models"
)

// CompiledRubricTemplateCreate is the builder for creating a CompiledRubricTemplate entity.
type CompiledRubricTemplateCreate struct {
	config
	mutation *CompiledRubricTemplateMutation
	hooks    []Hook
}

// SetFlowVersionID sets the "flow_version_id" field.
func (_c *CompiledRubricTemplateCreate) SetFlowVersionID(v string) *CompiledRubricTemplateCreate {
	_c.mutation.SetFlowVersionID(v)
	return _c
}

// SetCategories sets the "categories" field.
func (_c *CompiledRubricTemplateCreate) SetCategories(v []models.RubricCategory) *CompiledRubricTemplateCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetMappings sets the "mappings" field.
func (_c *CompiledRubricTemplateCreate) SetMappings(v []models.RubricMapping) *CompiledRubricTemplateCreate {
	_c.mutation.SetMappings(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CompiledRubricTemplateCreate) SetID(v string) *CompiledRubricTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFlowVersion sets the "flow_version" edge to the CompiledFlowVersion entity.
func (_c *CompiledRubricTemplateCreate) SetFlowVersion(v *CompiledFlowVersion) *CompiledRubricTemplateCreate {
	return _c.SetFlowVersionID(v.ID)
}

// Mutation returns the CompiledRubricTemplateMutation object of the builder.
func (_c *CompiledRubricTemplateCreate) Mutation() *CompiledRubricTemplateMutation {
	return _c.mutation
}

// Save creates the CompiledRubricTemplate in the database.
func (_c *CompiledRubricTemplateCreate) Save(ctx context.Context) (*CompiledRubricTemplate, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompiledRubricTemplateCreate) SaveX(ctx context.Context) *CompiledRubricTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledRubricTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledRubricTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompiledRubricTemplateCreate) check() error {
	if _, ok := _c.mutation.FlowVersionID(); !ok {
		return &ValidationError{Name: "flow_version_id", err: errors.New(`ent: missing required field "CompiledRubricTemplate.flow_version_id"`)}
	}
	if _, ok := _c.mutation.Categories(); !ok {
		return &ValidationError{Name: "categories", err: errors.New(`ent: missing required field "CompiledRubricTemplate.categories"`)}
	}
	if _, ok := _c.mutation.Mappings(); !ok {
		return &ValidationError{Name: "mappings", err: errors.New(`ent: missing required field "CompiledRubricTemplate.mappings"`)}
	}
	if len(_c.mutation.FlowVersionIDs()) == 0 {
		return &ValidationError{Name: "flow_version", err: errors.New(`ent: missing required edge "CompiledRubricTemplate.flow_version"`)}
	}
	return nil
}

func (_c *CompiledRubricTemplateCreate) sqlSave(ctx context.Context) (*CompiledRubricTemplate, error) {
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
			return nil, fmt.Errorf("unexpected CompiledRubricTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompiledRubricTemplateCreate) createSpec() (*CompiledRubricTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &CompiledRubricTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compiledrubrictemplate.Table, sqlgraph.NewFieldSpec(compiledrubrictemplate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(compiledrubrictemplate.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.Mappings(); ok {
		_spec.SetField(compiledrubrictemplate.FieldMappings, field.TypeJSON, value)
		_node.Mappings = value
	}
	if nodes := _c.mutation.FlowVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   compiledrubrictemplate.FlowVersionTable,
			Columns: []string{compiledrubrictemplate.FlowVersionColumn},
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
	return _node, _spec
}

// CompiledRubricTemplateCreateBulk is the builder for creating many CompiledRubricTemplate entities in bulk.
type CompiledRubricTemplateCreateBulk struct {
	config
	err      error
	builders []*CompiledRubricTemplateCreate
}

// Save creates the CompiledRubricTemplate entities in the database.
func (_c *CompiledRubricTemplateCreateBulk) Save(ctx context.Context) ([]*CompiledRubricTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompiledRubricTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompiledRubricTemplateMutation)
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
func (_c *CompiledRubricTemplateCreateBulk) SaveX(ctx context.Context) []*CompiledRubricTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompiledRubricTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompiledRubricTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
