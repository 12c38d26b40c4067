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
	"github.com/callscope-ai/callscope/ent/predicate"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/pkg/models"
)

// SandboxRunUpdate is the builder for updating SandboxRun entities.
type SandboxRunUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxRunMutation
}

// Where appends a list predicates to the SandboxRunUpdate builder.
func (_u *SandboxRunUpdate) Where(ps ...predicate.SandboxRun) *SandboxRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *SandboxRunUpdate) SetCompiledFlowVersionID(v string) *SandboxRunUpdate {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *SandboxRunUpdate) SetNillableCompiledFlowVersionID(v *string) *SandboxRunUpdate {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *SandboxRunUpdate) ClearCompiledFlowVersionID() *SandboxRunUpdate {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SandboxRunUpdate) SetStatus(v sandboxrun.Status) *SandboxRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SandboxRunUpdate) SetNillableStatus(v *sandboxrun.Status) *SandboxRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscriptSnapshot sets the "transcript_snapshot" field.
func (_u *SandboxRunUpdate) SetTranscriptSnapshot(v *models.Transcript) *SandboxRunUpdate {
	_u.mutation.SetTranscriptSnapshot(v)
	return _u
}

// ClearTranscriptSnapshot clears the value of the "transcript_snapshot" field.
func (_u *SandboxRunUpdate) ClearTranscriptSnapshot() *SandboxRunUpdate {
	_u.mutation.ClearTranscriptSnapshot()
	return _u
}

// SetResult sets the "result" field.
func (_u *SandboxRunUpdate) SetResult(v *models.SandboxResult) *SandboxRunUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SandboxRunUpdate) ClearResult() *SandboxRunUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SandboxRunUpdate) SetErrorMessage(v string) *SandboxRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SandboxRunUpdate) SetNillableErrorMessage(v *string) *SandboxRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SandboxRunUpdate) ClearErrorMessage() *SandboxRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SandboxRunUpdate) SetCompletedAt(v time.Time) *SandboxRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SandboxRunUpdate) SetNillableCompletedAt(v *time.Time) *SandboxRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SandboxRunUpdate) ClearCompletedAt() *SandboxRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SandboxRunMutation object of the builder.
func (_u *SandboxRunUpdate) Mutation() *SandboxRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SandboxRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SandboxRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sandboxrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxrun.Table, sandboxrun.Columns, sqlgraph.NewFieldSpec(sandboxrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(sandboxrun.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(sandboxrun.FieldCompiledFlowVersionID, field.TypeString)
	}
	if _u.mutation.RecordingIDCleared() {
		_spec.ClearField(sandboxrun.FieldRecordingID, field.TypeString)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(sandboxrun.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sandboxrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranscriptSnapshot(); ok {
		_spec.SetField(sandboxrun.FieldTranscriptSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.TranscriptSnapshotCleared() {
		_spec.ClearField(sandboxrun.FieldTranscriptSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(sandboxrun.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(sandboxrun.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sandboxrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sandboxrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sandboxrun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SandboxRunUpdateOne is the builder for updating a single SandboxRun entity.
type SandboxRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxRunMutation
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *SandboxRunUpdateOne) SetCompiledFlowVersionID(v string) *SandboxRunUpdateOne {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *SandboxRunUpdateOne) SetNillableCompiledFlowVersionID(v *string) *SandboxRunUpdateOne {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *SandboxRunUpdateOne) ClearCompiledFlowVersionID() *SandboxRunUpdateOne {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SandboxRunUpdateOne) SetStatus(v sandboxrun.Status) *SandboxRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SandboxRunUpdateOne) SetNillableStatus(v *sandboxrun.Status) *SandboxRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscriptSnapshot sets the "transcript_snapshot" field.
func (_u *SandboxRunUpdateOne) SetTranscriptSnapshot(v *models.Transcript) *SandboxRunUpdateOne {
	_u.mutation.SetTranscriptSnapshot(v)
	return _u
}

// ClearTranscriptSnapshot clears the value of the "transcript_snapshot" field.
func (_u *SandboxRunUpdateOne) ClearTranscriptSnapshot() *SandboxRunUpdateOne {
	_u.mutation.ClearTranscriptSnapshot()
	return _u
}

// SetResult sets the "result" field.
func (_u *SandboxRunUpdateOne) SetResult(v *models.SandboxResult) *SandboxRunUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SandboxRunUpdateOne) ClearResult() *SandboxRunUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SandboxRunUpdateOne) SetErrorMessage(v string) *SandboxRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SandboxRunUpdateOne) SetNillableErrorMessage(v *string) *SandboxRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SandboxRunUpdateOne) ClearErrorMessage() *SandboxRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SandboxRunUpdateOne) SetCompletedAt(v time.Time) *SandboxRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SandboxRunUpdateOne) SetNillableCompletedAt(v *time.Time) *SandboxRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SandboxRunUpdateOne) ClearCompletedAt() *SandboxRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SandboxRunMutation object of the builder.
func (_u *SandboxRunUpdateOne) Mutation() *SandboxRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the SandboxRunUpdate builder.
func (_u *SandboxRunUpdateOne) Where(ps ...predicate.SandboxRun) *SandboxRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SandboxRunUpdateOne) Select(field string, fields ...string) *SandboxRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SandboxRun entity.
func (_u *SandboxRunUpdateOne) Save(ctx context.Context) (*SandboxRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxRunUpdateOne) SaveX(ctx context.Context) *SandboxRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SandboxRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sandboxrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxRunUpdateOne) sqlSave(ctx context.Context) (_node *SandboxRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxrun.Table, sandboxrun.Columns, sqlgraph.NewFieldSpec(sandboxrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxrun.FieldID)
		for _, f := range fields {
			if !sandboxrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxrun.FieldID {
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
	if value, ok := _u.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(sandboxrun.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(sandboxrun.FieldCompiledFlowVersionID, field.TypeString)
	}
	if _u.mutation.RecordingIDCleared() {
		_spec.ClearField(sandboxrun.FieldRecordingID, field.TypeString)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(sandboxrun.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sandboxrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TranscriptSnapshot(); ok {
		_spec.SetField(sandboxrun.FieldTranscriptSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.TranscriptSnapshotCleared() {
		_spec.ClearField(sandboxrun.FieldTranscriptSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(sandboxrun.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(sandboxrun.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sandboxrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sandboxrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sandboxrun.FieldCompletedAt, field.TypeTime)
	}
	_node = &SandboxRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
