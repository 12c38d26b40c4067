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
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/predicate"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/transcript"
)

// RecordingUpdate is the builder for updating Recording entities.
type RecordingUpdate struct {
	config
	hooks    []Hook
	mutation *RecordingMutation
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdate) Where(ps ...predicate.Recording) *RecordingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *RecordingUpdate) SetAudioURL(v string) *RecordingUpdate {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableAudioURL(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordingUpdate) SetStatus(v recording.Status) *RecordingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableStatus(v *recording.Status) *RecordingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationS sets the "duration_s" field.
func (_u *RecordingUpdate) SetDurationS(v float64) *RecordingUpdate {
	_u.mutation.ResetDurationS()
	_u.mutation.SetDurationS(v)
	return _u
}

// SetNillableDurationS sets the "duration_s" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableDurationS(v *float64) *RecordingUpdate {
	if v != nil {
		_u.SetDurationS(*v)
	}
	return _u
}

// AddDurationS adds value to the "duration_s" field.
func (_u *RecordingUpdate) AddDurationS(v float64) *RecordingUpdate {
	_u.mutation.AddDurationS(v)
	return _u
}

// ClearDurationS clears the value of the "duration_s" field.
func (_u *RecordingUpdate) ClearDurationS() *RecordingUpdate {
	_u.mutation.ClearDurationS()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecordingUpdate) SetErrorMessage(v string) *RecordingUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableErrorMessage(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecordingUpdate) ClearErrorMessage() *RecordingUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RecordingUpdate) SetDeletedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableDeletedAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RecordingUpdate) ClearDeletedAt() *RecordingUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_u *RecordingUpdate) SetTranscriptID(id string) *RecordingUpdate {
	_u.mutation.SetTranscriptID(id)
	return _u
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_u *RecordingUpdate) SetNillableTranscriptID(id *string) *RecordingUpdate {
	if id != nil {
		_u = _u.SetTranscriptID(*id)
	}
	return _u
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_u *RecordingUpdate) SetTranscript(v *Transcript) *RecordingUpdate {
	return _u.SetTranscriptID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *RecordingUpdate) AddEvaluationIDs(ids ...string) *RecordingUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *RecordingUpdate) AddEvaluations(v ...*Evaluation) *RecordingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdate) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (_u *RecordingUpdate) ClearTranscript() *RecordingUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *RecordingUpdate) ClearEvaluations() *RecordingUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *RecordingUpdate) RemoveEvaluationIDs(ids ...string) *RecordingUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *RecordingUpdate) RemoveEvaluations(v ...*Evaluation) *RecordingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recording.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recording.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(recording.FieldAudioURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recording.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationS(); ok {
		_spec.SetField(recording.FieldDurationS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationS(); ok {
		_spec.AddField(recording.FieldDurationS, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSCleared() {
		_spec.ClearField(recording.FieldDurationS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(recording.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(recording.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(recording.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(recording.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TranscriptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordingUpdateOne is the builder for updating a single Recording entity.
type RecordingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordingMutation
}

// SetAudioURL sets the "audio_url" field.
func (_u *RecordingUpdateOne) SetAudioURL(v string) *RecordingUpdateOne {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableAudioURL(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordingUpdateOne) SetStatus(v recording.Status) *RecordingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableStatus(v *recording.Status) *RecordingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationS sets the "duration_s" field.
func (_u *RecordingUpdateOne) SetDurationS(v float64) *RecordingUpdateOne {
	_u.mutation.ResetDurationS()
	_u.mutation.SetDurationS(v)
	return _u
}

// SetNillableDurationS sets the "duration_s" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableDurationS(v *float64) *RecordingUpdateOne {
	if v != nil {
		_u.SetDurationS(*v)
	}
	return _u
}

// AddDurationS adds value to the "duration_s" field.
func (_u *RecordingUpdateOne) AddDurationS(v float64) *RecordingUpdateOne {
	_u.mutation.AddDurationS(v)
	return _u
}

// ClearDurationS clears the value of the "duration_s" field.
func (_u *RecordingUpdateOne) ClearDurationS() *RecordingUpdateOne {
	_u.mutation.ClearDurationS()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecordingUpdateOne) SetErrorMessage(v string) *RecordingUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableErrorMessage(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecordingUpdateOne) ClearErrorMessage() *RecordingUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RecordingUpdateOne) SetDeletedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableDeletedAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RecordingUpdateOne) ClearDeletedAt() *RecordingUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_u *RecordingUpdateOne) SetTranscriptID(id string) *RecordingUpdateOne {
	_u.mutation.SetTranscriptID(id)
	return _u
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableTranscriptID(id *string) *RecordingUpdateOne {
	if id != nil {
		_u = _u.SetTranscriptID(*id)
	}
	return _u
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_u *RecordingUpdateOne) SetTranscript(v *Transcript) *RecordingUpdateOne {
	return _u.SetTranscriptID(v.ID)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *RecordingUpdateOne) AddEvaluationIDs(ids ...string) *RecordingUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *RecordingUpdateOne) AddEvaluations(v ...*Evaluation) *RecordingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdateOne) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (_u *RecordingUpdateOne) ClearTranscript() *RecordingUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *RecordingUpdateOne) ClearEvaluations() *RecordingUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *RecordingUpdateOne) RemoveEvaluationIDs(ids ...string) *RecordingUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *RecordingUpdateOne) RemoveEvaluations(v ...*Evaluation) *RecordingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdateOne) Where(ps ...predicate.Recording) *RecordingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordingUpdateOne) Select(field string, fields ...string) *RecordingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recording entity.
func (_u *RecordingUpdateOne) Save(ctx context.Context) (*Recording, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdateOne) SaveX(ctx context.Context) *Recording {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recording.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recording.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordingUpdateOne) sqlSave(ctx context.Context) (_node *Recording, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recording.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recording.FieldID)
		for _, f := range fields {
			if !recording.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recording.FieldID {
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
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(recording.FieldAudioURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recording.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationS(); ok {
		_spec.SetField(recording.FieldDurationS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationS(); ok {
		_spec.AddField(recording.FieldDurationS, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSCleared() {
		_spec.ClearField(recording.FieldDurationS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(recording.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(recording.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(recording.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(recording.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TranscriptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recording{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
