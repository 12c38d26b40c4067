// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/pkg/models"
)

// SandboxRunCreate is the builder for creating a SandboxRun entity.
type SandboxRunCreate struct {
	config
	mutation *SandboxRunMutation
	hooks    []Hook
}

// SetBlueprintID sets the "blueprint_id" field.
func (_c *SandboxRunCreate) SetBlueprintID(v string) *SandboxRunCreate {
	_c.mutation.SetBlueprintID(v)
	return _c
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_c *SandboxRunCreate) SetCompiledFlowVersionID(v string) *SandboxRunCreate {
	_c.mutation.SetCompiledFlowVersionID(v)
	return _c
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_c *SandboxRunCreate) SetNillableCompiledFlowVersionID(v *string) *SandboxRunCreate {
	if v != nil {
		_c.SetCompiledFlowVersionID(*v)
	}
	return _c
}

// SetRecordingID sets the "recording_id" field.
func (_c *SandboxRunCreate) SetRecordingID(v string) *SandboxRunCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetNillableRecordingID sets the "recording_id" field if the given value is not nil.
func (_c *SandboxRunCreate) SetNillableRecordingID(v *string) *SandboxRunCreate {
	if v != nil {
		_c.SetRecordingID(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *SandboxRunCreate) SetIdempotencyKey(v string) *SandboxRunCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *SandboxRunCreate) SetNillableIdempotencyKey(v *string) *SandboxRunCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SandboxRunCreate) SetStatus(v sandboxrun.Status) *SandboxRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SandboxRunCreate) SetNillableStatus(v *sandboxrun.Status) *SandboxRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTranscriptSnapshot sets the "transcript_snapshot" field.
func (_c *SandboxRunCreate) SetTranscriptSnapshot(v *models.Transcript) *SandboxRunCreate {
	_c.mutation.SetTranscriptSnapshot(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *SandboxRunCreate) SetResult(v *models.SandboxResult) *SandboxRunCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SandboxRunCreate) SetErrorMessage(v string) *SandboxRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SandboxRunCreate) SetNillableErrorMessage(v *string) *SandboxRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SandboxRunCreate) SetCreatedAt(v time.Time) *SandboxRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SandboxRunCreate) SetNillableCreatedAt(v *time.Time) *SandboxRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SandboxRunCreate) SetCompletedAt(v time.Time) *SandboxRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SandboxRunCreate) SetNillableCompletedAt(v *time.Time) *SandboxRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SandboxRunCreate) SetID(v string) *SandboxRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SandboxRunMutation object of the builder.
func (_c *SandboxRunCreate) Mutation() *SandboxRunMutation {
	return _c.mutation
}

// Save creates the SandboxRun in the database.
func (_c *SandboxRunCreate) Save(ctx context.Context) (*SandboxRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SandboxRunCreate) SaveX(ctx context.Context) *SandboxRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SandboxRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sandboxrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sandboxrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SandboxRunCreate) check() error {
	if _, ok := _c.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "SandboxRun.blueprint_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SandboxRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sandboxrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SandboxRun.created_at"`)}
	}
	return nil
}

func (_c *SandboxRunCreate) sqlSave(ctx context.Context) (*SandboxRun, error) {
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
			return nil, fmt.Errorf("unexpected SandboxRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SandboxRunCreate) createSpec() (*SandboxRun, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sandboxrun.Table, sqlgraph.NewFieldSpec(sandboxrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BlueprintID(); ok {
		_spec.SetField(sandboxrun.FieldBlueprintID, field.TypeString, value)
		_node.BlueprintID = value
	}
	if value, ok := _c.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(sandboxrun.FieldCompiledFlowVersionID, field.TypeString, value)
		_node.CompiledFlowVersionID = value
	}
	if value, ok := _c.mutation.RecordingID(); ok {
		_spec.SetField(sandboxrun.FieldRecordingID, field.TypeString, value)
		_node.RecordingID = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(sandboxrun.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sandboxrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TranscriptSnapshot(); ok {
		_spec.SetField(sandboxrun.FieldTranscriptSnapshot, field.TypeJSON, value)
		_node.TranscriptSnapshot = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(sandboxrun.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sandboxrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sandboxrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// SandboxRunCreateBulk is the builder for creating many SandboxRun entities in bulk.
type SandboxRunCreateBulk struct {
	config
	err      error
	builders []*SandboxRunCreate
}

// Save creates the SandboxRun entities in the database.
func (_c *SandboxRunCreateBulk) Save(ctx context.Context) ([]*SandboxRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SandboxRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxRunMutation)
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
func (_c *SandboxRunCreateBulk) SaveX(ctx context.Context) []*SandboxRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
