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
	"github.com/callscope-ai/callscope/ent/predicate"
	"github.com/callscope-ai/callscope/ent/transcript"
	"github.com/callscope-ai/callscope/pkg/models"
)

// TranscriptUpdate is the builder for updating Transcript entities.
type TranscriptUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptMutation
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdate) Where(ps ...predicate.Transcript) *TranscriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTranscriptText sets the "transcript_text" field.
func (_u *TranscriptUpdate) SetTranscriptText(v string) *TranscriptUpdate {
	_u.mutation.SetTranscriptText(v)
	return _u
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableTranscriptText(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetTranscriptText(*v)
	}
	return _u
}

// SetDiarizedSegments sets the "diarized_segments" field.
func (_u *TranscriptUpdate) SetDiarizedSegments(v []models.Segment) *TranscriptUpdate {
	_u.mutation.SetDiarizedSegments(v)
	return _u
}

// AppendDiarizedSegments appends value to the "diarized_segments" field.
func (_u *TranscriptUpdate) AppendDiarizedSegments(v []models.Segment) *TranscriptUpdate {
	_u.mutation.AppendDiarizedSegments(v)
	return _u
}

// SetSentimentAnalysis sets the "sentiment_analysis" field.
func (_u *TranscriptUpdate) SetSentimentAnalysis(v []models.SentimentSpan) *TranscriptUpdate {
	_u.mutation.SetSentimentAnalysis(v)
	return _u
}

// AppendSentimentAnalysis appends value to the "sentiment_analysis" field.
func (_u *TranscriptUpdate) AppendSentimentAnalysis(v []models.SentimentSpan) *TranscriptUpdate {
	_u.mutation.AppendSentimentAnalysis(v)
	return _u
}

// ClearSentimentAnalysis clears the value of the "sentiment_analysis" field.
func (_u *TranscriptUpdate) ClearSentimentAnalysis() *TranscriptUpdate {
	_u.mutation.ClearSentimentAnalysis()
	return _u
}

// SetAsrConfidence sets the "asr_confidence" field.
func (_u *TranscriptUpdate) SetAsrConfidence(v float64) *TranscriptUpdate {
	_u.mutation.ResetAsrConfidence()
	_u.mutation.SetAsrConfidence(v)
	return _u
}

// SetNillableAsrConfidence sets the "asr_confidence" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableAsrConfidence(v *float64) *TranscriptUpdate {
	if v != nil {
		_u.SetAsrConfidence(*v)
	}
	return _u
}

// AddAsrConfidence adds value to the "asr_confidence" field.
func (_u *TranscriptUpdate) AddAsrConfidence(v float64) *TranscriptUpdate {
	_u.mutation.AddAsrConfidence(v)
	return _u
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdate) Mutation() *TranscriptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdate) check() error {
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcript.recording"`)
	}
	return nil
}

func (_u *TranscriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TranscriptText(); ok {
		_spec.SetField(transcript.FieldTranscriptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiarizedSegments(); ok {
		_spec.SetField(transcript.FieldDiarizedSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiarizedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldDiarizedSegments, value)
		})
	}
	if value, ok := _u.mutation.SentimentAnalysis(); ok {
		_spec.SetField(transcript.FieldSentimentAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSentimentAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldSentimentAnalysis, value)
		})
	}
	if _u.mutation.SentimentAnalysisCleared() {
		_spec.ClearField(transcript.FieldSentimentAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.AsrConfidence(); ok {
		_spec.SetField(transcript.FieldAsrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAsrConfidence(); ok {
		_spec.AddField(transcript.FieldAsrConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptUpdateOne is the builder for updating a single Transcript entity.
type TranscriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptMutation
}

// SetTranscriptText sets the "transcript_text" field.
func (_u *TranscriptUpdateOne) SetTranscriptText(v string) *TranscriptUpdateOne {
	_u.mutation.SetTranscriptText(v)
	return _u
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableTranscriptText(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetTranscriptText(*v)
	}
	return _u
}

// SetDiarizedSegments sets the "diarized_segments" field.
func (_u *TranscriptUpdateOne) SetDiarizedSegments(v []models.Segment) *TranscriptUpdateOne {
	_u.mutation.SetDiarizedSegments(v)
	return _u
}

// AppendDiarizedSegments appends value to the "diarized_segments" field.
func (_u *TranscriptUpdateOne) AppendDiarizedSegments(v []models.Segment) *TranscriptUpdateOne {
	_u.mutation.AppendDiarizedSegments(v)
	return _u
}

// SetSentimentAnalysis sets the "sentiment_analysis" field.
func (_u *TranscriptUpdateOne) SetSentimentAnalysis(v []models.SentimentSpan) *TranscriptUpdateOne {
	_u.mutation.SetSentimentAnalysis(v)
	return _u
}

// AppendSentimentAnalysis appends value to the "sentiment_analysis" field.
func (_u *TranscriptUpdateOne) AppendSentimentAnalysis(v []models.SentimentSpan) *TranscriptUpdateOne {
	_u.mutation.AppendSentimentAnalysis(v)
	return _u
}

// ClearSentimentAnalysis clears the value of the "sentiment_analysis" field.
func (_u *TranscriptUpdateOne) ClearSentimentAnalysis() *TranscriptUpdateOne {
	_u.mutation.ClearSentimentAnalysis()
	return _u
}

// SetAsrConfidence sets the "asr_confidence" field.
func (_u *TranscriptUpdateOne) SetAsrConfidence(v float64) *TranscriptUpdateOne {
	_u.mutation.ResetAsrConfidence()
	_u.mutation.SetAsrConfidence(v)
	return _u
}

// SetNillableAsrConfidence sets the "asr_confidence" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableAsrConfidence(v *float64) *TranscriptUpdateOne {
	if v != nil {
		_u.SetAsrConfidence(*v)
	}
	return _u
}

// AddAsrConfidence adds value to the "asr_confidence" field.
func (_u *TranscriptUpdateOne) AddAsrConfidence(v float64) *TranscriptUpdateOne {
	_u.mutation.AddAsrConfidence(v)
	return _u
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdateOne) Mutation() *TranscriptMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdateOne) Where(ps ...predicate.Transcript) *TranscriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptUpdateOne) Select(field string, fields ...string) *TranscriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcript entity.
func (_u *TranscriptUpdateOne) Save(ctx context.Context) (*Transcript, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdateOne) SaveX(ctx context.Context) *Transcript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdateOne) check() error {
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcript.recording"`)
	}
	return nil
}

func (_u *TranscriptUpdateOne) sqlSave(ctx context.Context) (_node *Transcript, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcript.FieldID)
		for _, f := range fields {
			if !transcript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcript.FieldID {
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
	if value, ok := _u.mutation.TranscriptText(); ok {
		_spec.SetField(transcript.FieldTranscriptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiarizedSegments(); ok {
		_spec.SetField(transcript.FieldDiarizedSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDiarizedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldDiarizedSegments, value)
		})
	}
	if value, ok := _u.mutation.SentimentAnalysis(); ok {
		_spec.SetField(transcript.FieldSentimentAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSentimentAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldSentimentAnalysis, value)
		})
	}
	if _u.mutation.SentimentAnalysisCleared() {
		_spec.ClearField(transcript.FieldSentimentAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.AsrConfidence(); ok {
		_spec.SetField(transcript.FieldAsrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAsrConfidence(); ok {
		_spec.AddField(transcript.FieldAsrConfidence, field.TypeFloat64, value)
	}
	_node = &Transcript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
