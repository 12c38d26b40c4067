// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/transcript"
	"github.com/callscope-ai/callscope/pkg/models"
)

// TranscriptCreate is the builder for creating a Transcript entity.
type TranscriptCreate struct {
	config
	mutation *TranscriptMutation
	hooks    []Hook
}

// SetRecordingID sets the "recording_id" field.
func (_c *TranscriptCreate) SetRecordingID(v string) *TranscriptCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetTranscriptText sets the "transcript_text" field.
func (_c *TranscriptCreate) SetTranscriptText(v string) *TranscriptCreate {
	_c.mutation.SetTranscriptText(v)
	return _c
}

// SetDiarizedSegments sets the "diarized_segments" field.
func (_c *TranscriptCreate) SetDiarizedSegments(v []models.Segment) *TranscriptCreate {
	_c.mutation.SetDiarizedSegments(v)
	return _c
}

// SetSentimentAnalysis sets the "sentiment_analysis" field.
func (_c *TranscriptCreate) SetSentimentAnalysis(v []models.SentimentSpan) *TranscriptCreate {
	_c.mutation.SetSentimentAnalysis(v)
	return _c
}

// SetAsrConfidence sets the "asr_confidence" field.
func (_c *TranscriptCreate) SetAsrConfidence(v float64) *TranscriptCreate {
	_c.mutation.SetAsrConfidence(v)
	return _c
}

// SetNillableAsrConfidence sets the "asr_confidence" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableAsrConfidence(v *float64) *TranscriptCreate {
	if v != nil {
		_c.SetAsrConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptCreate) SetCreatedAt(v time.Time) *TranscriptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableCreatedAt(v *time.Time) *TranscriptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptCreate) SetID(v string) *TranscriptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_c *TranscriptCreate) SetRecording(v *Recording) *TranscriptCreate {
	return _c.SetRecordingID(v.ID)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_c *TranscriptCreate) Mutation() *TranscriptMutation {
	return _c.mutation
}

// Save creates the Transcript in the database.
func (_c *TranscriptCreate) Save(ctx context.Context) (*Transcript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptCreate) SaveX(ctx context.Context) *Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptCreate) defaults() {
	if _, ok := _c.mutation.AsrConfidence(); !ok {
		v := transcript.DefaultAsrConfidence
		_c.mutation.SetAsrConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcript.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptCreate) check() error {
	if _, ok := _c.mutation.RecordingID(); !ok {
		return &ValidationError{Name: "recording_id", err: errors.New(`ent: missing required field "Transcript.recording_id"`)}
	}
	if _, ok := _c.mutation.TranscriptText(); !ok {
		return &ValidationError{Name: "transcript_text", err: errors.New(`ent: missing required field "Transcript.transcript_text"`)}
	}
	if _, ok := _c.mutation.DiarizedSegments(); !ok {
		return &ValidationError{Name: "diarized_segments", err: errors.New(`ent: missing required field "Transcript.diarized_segments"`)}
	}
	if _, ok := _c.mutation.AsrConfidence(); !ok {
		return &ValidationError{Name: "asr_confidence", err: errors.New(`ent: missing required field "Transcript.asr_confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transcript.created_at"`)}
	}
	if len(_c.mutation.RecordingIDs()) == 0 {
		return &ValidationError{Name: "recording", err: errors.New(`ent: missing required edge "Transcript.recording"`)}
	}
	return nil
}

func (_c *TranscriptCreate) sqlSave(ctx context.Context) (*Transcript, error) {
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
			return nil, fmt.Errorf("unexpected Transcript.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptCreate) createSpec() (*Transcript, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcript.Table, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TranscriptText(); ok {
		_spec.SetField(transcript.FieldTranscriptText, field.TypeString, value)
		_node.TranscriptText = value
	}
	if value, ok := _c.mutation.DiarizedSegments(); ok {
		_spec.SetField(transcript.FieldDiarizedSegments, field.TypeJSON, value)
		_node.DiarizedSegments = value
	}
	if value, ok := _c.mutation.SentimentAnalysis(); ok {
		_spec.SetField(transcript.FieldSentimentAnalysis, field.TypeJSON, value)
		_node.SentimentAnalysis = value
	}
	if value, ok := _c.mutation.AsrConfidence(); ok {
		_spec.SetField(transcript.FieldAsrConfidence, field.TypeFloat64, value)
		_node.AsrConfidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcript.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RecordingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   transcript.RecordingTable,
			Columns: []string{transcript.RecordingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecordingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptCreateBulk is the builder for creating many Transcript entities in bulk.
type TranscriptCreateBulk struct {
	config
	err      error
	builders []*TranscriptCreate
}

// Save creates the Transcript entities in the database.
func (_c *TranscriptCreateBulk) Save(ctx context.Context) ([]*Transcript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptMutation)
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
func (_c *TranscriptCreateBulk) SaveX(ctx context.Context) []*Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
