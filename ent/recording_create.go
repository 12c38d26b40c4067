// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/transcript"
)

// RecordingCreate is the builder for creating a Recording entity.
type RecordingCreate struct {
	config
	mutation *RecordingMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *RecordingCreate) SetCompanyID(v string) *RecordingCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetAudioURL sets the "audio_url" field.
func (_c *RecordingCreate) SetAudioURL(v string) *RecordingCreate {
	_c.mutation.SetAudioURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecordingCreate) SetStatus(v recording.Status) *RecordingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableStatus(v *recording.Status) *RecordingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDurationS sets the "duration_s" field.
func (_c *RecordingCreate) SetDurationS(v float64) *RecordingCreate {
	_c.mutation.SetDurationS(v)
	return _c
}

// SetNillableDurationS sets the "duration_s" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableDurationS(v *float64) *RecordingCreate {
	if v != nil {
		_c.SetDurationS(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RecordingCreate) SetErrorMessage(v string) *RecordingCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableErrorMessage(v *string) *RecordingCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecordingCreate) SetCreatedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableCreatedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RecordingCreate) SetDeletedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableDeletedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecordingCreate) SetID(v string) *RecordingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_c *RecordingCreate) SetTranscriptID(id string) *RecordingCreate {
	_c.mutation.SetTranscriptID(id)
	return _c
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_c *RecordingCreate) SetNillableTranscriptID(id *string) *RecordingCreate {
	if id != nil {
		_c = _c.SetTranscriptID(*id)
	}
	return _c
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_c *RecordingCreate) SetTranscript(v *Transcript) *RecordingCreate {
	return _c.SetTranscriptID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_c *RecordingCreate) AddEvaluationIDs(ids ...string) *RecordingCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_c *RecordingCreate) AddEvaluations(v ...*Evaluation) *RecordingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_c *RecordingCreate) Mutation() *RecordingMutation {
	return _c.mutation
}

// Save creates the Recording in the database.
func (_c *RecordingCreate) Save(ctx context.Context) (*Recording, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecordingCreate) SaveX(ctx context.Context) *Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecordingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := recording.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recording.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecordingCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Recording.company_id"`)}
	}
	if _, ok := _c.mutation.AudioURL(); !ok {
		return &ValidationError{Name: "audio_url", err: errors.New(`ent: missing required field "Recording.audio_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Recording.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recording.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recording.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recording.created_at"`)}
	}
	return nil
}

func (_c *RecordingCreate) sqlSave(ctx context.Context) (*Recording, error) {
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
			return nil, fmt.Errorf("unexpected Recording.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecordingCreate) createSpec() (*Recording, *sqlgraph.CreateSpec) {
	var (
		_node = &Recording{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recording.Table, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(recording.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.AudioURL(); ok {
		_spec.SetField(recording.FieldAudioURL, field.TypeString, value)
		_node.AudioURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recording.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DurationS(); ok {
		_spec.SetField(recording.FieldDurationS, field.TypeFloat64, value)
		_node.DurationS = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(recording.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(recording.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   recording.TranscriptTable,
			Columns: []string{recording.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.EvaluationsTable,
			Columns: []string{recording.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecordingCreateBulk is the builder for creating many Recording entities in bulk.
type RecordingCreateBulk struct {
	config
	err      error
	builders []*RecordingCreate
}

// Save creates the Recording entities in the database.
func (_c *RecordingCreateBulk) Save(ctx context.Context) ([]*Recording, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recording, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecordingMutation)
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
func (_c *RecordingCreateBulk) SaveX(ctx context.Context) []*Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
