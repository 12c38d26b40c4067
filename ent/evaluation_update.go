// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/predicate"
	"github.com/callscope-ai/callscope/pkg/models"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *EvaluationUpdate) SetCompiledFlowVersionID(v string) *EvaluationUpdate {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCompiledFlowVersionID(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *EvaluationUpdate) ClearCompiledFlowVersionID() *EvaluationUpdate {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvaluationUpdate) SetStatus(v evaluation.Status) *EvaluationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableStatus(v *evaluation.Status) *EvaluationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationUpdate) SetOverallScore(v int) *EvaluationUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableOverallScore(v *int) *EvaluationUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationUpdate) AddOverallScore(v int) *EvaluationUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *EvaluationUpdate) ClearOverallScore() *EvaluationUpdate {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetOverallPassed sets the "overall_passed" field.
func (_u *EvaluationUpdate) SetOverallPassed(v bool) *EvaluationUpdate {
	_u.mutation.SetOverallPassed(v)
	return _u
}

// SetNillableOverallPassed sets the "overall_passed" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableOverallPassed(v *bool) *EvaluationUpdate {
	if v != nil {
		_u.SetOverallPassed(*v)
	}
	return _u
}

// ClearOverallPassed clears the value of the "overall_passed" field.
func (_u *EvaluationUpdate) ClearOverallPassed() *EvaluationUpdate {
	_u.mutation.ClearOverallPassed()
	return _u
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_u *EvaluationUpdate) SetRequiresHumanReview(v bool) *EvaluationUpdate {
	_u.mutation.SetRequiresHumanReview(v)
	return _u
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableRequiresHumanReview(v *bool) *EvaluationUpdate {
	if v != nil {
		_u.SetRequiresHumanReview(*v)
	}
	return _u
}

// ClearRequiresHumanReview clears the value of the "requires_human_review" field.
func (_u *EvaluationUpdate) ClearRequiresHumanReview() *EvaluationUpdate {
	_u.mutation.ClearRequiresHumanReview()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EvaluationUpdate) SetConfidenceScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableConfidenceScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EvaluationUpdate) AddConfidenceScore(v float64) *EvaluationUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *EvaluationUpdate) ClearConfidenceScore() *EvaluationUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetDeterministicResults sets the "deterministic_results" field.
func (_u *EvaluationUpdate) SetDeterministicResults(v *models.DeterministicResults) *EvaluationUpdate {
	_u.mutation.SetDeterministicResults(v)
	return _u
}

// ClearDeterministicResults clears the value of the "deterministic_results" field.
func (_u *EvaluationUpdate) ClearDeterministicResults() *EvaluationUpdate {
	_u.mutation.ClearDeterministicResults()
	return _u
}

// SetLlmStageEvaluations sets the "llm_stage_evaluations" field.
func (_u *EvaluationUpdate) SetLlmStageEvaluations(v []models.StageEvaluation) *EvaluationUpdate {
	_u.mutation.SetLlmStageEvaluations(v)
	return _u
}

// AppendLlmStageEvaluations appends value to the "llm_stage_evaluations" field.
func (_u *EvaluationUpdate) AppendLlmStageEvaluations(v []models.StageEvaluation) *EvaluationUpdate {
	_u.mutation.AppendLlmStageEvaluations(v)
	return _u
}

// ClearLlmStageEvaluations clears the value of the "llm_stage_evaluations" field.
func (_u *EvaluationUpdate) ClearLlmStageEvaluations() *EvaluationUpdate {
	_u.mutation.ClearLlmStageEvaluations()
	return _u
}

// SetFinalEvaluation sets the "final_evaluation" field.
func (_u *EvaluationUpdate) SetFinalEvaluation(v *models.FinalEvaluation) *EvaluationUpdate {
	_u.mutation.SetFinalEvaluation(v)
	return _u
}

// ClearFinalEvaluation clears the value of the "final_evaluation" field.
func (_u *EvaluationUpdate) ClearFinalEvaluation() *EvaluationUpdate {
	_u.mutation.ClearFinalEvaluation()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *EvaluationUpdate) SetErrorCode(v string) *EvaluationUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableErrorCode(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *EvaluationUpdate) ClearErrorCode() *EvaluationUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvaluationUpdate) SetErrorMessage(v string) *EvaluationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableErrorMessage(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EvaluationUpdate) ClearErrorMessage() *EvaluationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvaluationUpdate) SetCompletedAt(v time.Time) *EvaluationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCompletedAt(v *time.Time) *EvaluationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvaluationUpdate) ClearCompletedAt() *EvaluationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EvaluationUpdate) SetDeletedAt(v time.Time) *EvaluationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableDeletedAt(v *time.Time) *EvaluationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EvaluationUpdate) ClearDeletedAt() *EvaluationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Evaluation.status": %w`, err)}
		}
	}
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.recording"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(evaluation.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(evaluation.FieldCompiledFlowVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluation.FieldOverallScore, field.TypeInt, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(evaluation.FieldOverallScore, field.TypeInt)
	}
	if value, ok := _u.mutation.OverallPassed(); ok {
		_spec.SetField(evaluation.FieldOverallPassed, field.TypeBool, value)
	}
	if _u.mutation.OverallPassedCleared() {
		_spec.ClearField(evaluation.FieldOverallPassed, field.TypeBool)
	}
	if value, ok := _u.mutation.RequiresHumanReview(); ok {
		_spec.SetField(evaluation.FieldRequiresHumanReview, field.TypeBool, value)
	}
	if _u.mutation.RequiresHumanReviewCleared() {
		_spec.ClearField(evaluation.FieldRequiresHumanReview, field.TypeBool)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(evaluation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(evaluation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(evaluation.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeterministicResults(); ok {
		_spec.SetField(evaluation.FieldDeterministicResults, field.TypeJSON, value)
	}
	if _u.mutation.DeterministicResultsCleared() {
		_spec.ClearField(evaluation.FieldDeterministicResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmStageEvaluations(); ok {
		_spec.SetField(evaluation.FieldLlmStageEvaluations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLlmStageEvaluations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldLlmStageEvaluations, value)
		})
	}
	if _u.mutation.LlmStageEvaluationsCleared() {
		_spec.ClearField(evaluation.FieldLlmStageEvaluations, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalEvaluation(); ok {
		_spec.SetField(evaluation.FieldFinalEvaluation, field.TypeJSON, value)
	}
	if _u.mutation.FinalEvaluationCleared() {
		_spec.ClearField(evaluation.FieldFinalEvaluation, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(evaluation.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(evaluation.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(evaluation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evaluation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evaluation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(evaluation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(evaluation.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_u *EvaluationUpdateOne) SetCompiledFlowVersionID(v string) *EvaluationUpdateOne {
	_u.mutation.SetCompiledFlowVersionID(v)
	return _u
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCompiledFlowVersionID(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCompiledFlowVersionID(*v)
	}
	return _u
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (_u *EvaluationUpdateOne) ClearCompiledFlowVersionID() *EvaluationUpdateOne {
	_u.mutation.ClearCompiledFlowVersionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvaluationUpdateOne) SetStatus(v evaluation.Status) *EvaluationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableStatus(v *evaluation.Status) *EvaluationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *EvaluationUpdateOne) SetOverallScore(v int) *EvaluationUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableOverallScore(v *int) *EvaluationUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *EvaluationUpdateOne) AddOverallScore(v int) *EvaluationUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *EvaluationUpdateOne) ClearOverallScore() *EvaluationUpdateOne {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetOverallPassed sets the "overall_passed" field.
func (_u *EvaluationUpdateOne) SetOverallPassed(v bool) *EvaluationUpdateOne {
	_u.mutation.SetOverallPassed(v)
	return _u
}

// SetNillableOverallPassed sets the "overall_passed" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableOverallPassed(v *bool) *EvaluationUpdateOne {
	if v != nil {
		_u.SetOverallPassed(*v)
	}
	return _u
}

// ClearOverallPassed clears the value of the "overall_passed" field.
func (_u *EvaluationUpdateOne) ClearOverallPassed() *EvaluationUpdateOne {
	_u.mutation.ClearOverallPassed()
	return _u
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_u *EvaluationUpdateOne) SetRequiresHumanReview(v bool) *EvaluationUpdateOne {
	_u.mutation.SetRequiresHumanReview(v)
	return _u
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableRequiresHumanReview(v *bool) *EvaluationUpdateOne {
	if v != nil {
		_u.SetRequiresHumanReview(*v)
	}
	return _u
}

// ClearRequiresHumanReview clears the value of the "requires_human_review" field.
func (_u *EvaluationUpdateOne) ClearRequiresHumanReview() *EvaluationUpdateOne {
	_u.mutation.ClearRequiresHumanReview()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *EvaluationUpdateOne) SetConfidenceScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableConfidenceScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *EvaluationUpdateOne) AddConfidenceScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *EvaluationUpdateOne) ClearConfidenceScore() *EvaluationUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetDeterministicResults sets the "deterministic_results" field.
func (_u *EvaluationUpdateOne) SetDeterministicResults(v *models.DeterministicResults) *EvaluationUpdateOne {
	_u.mutation.SetDeterministicResults(v)
	return _u
}

// ClearDeterministicResults clears the value of the "deterministic_results" field.
func (_u *EvaluationUpdateOne) ClearDeterministicResults() *EvaluationUpdateOne {
	_u.mutation.ClearDeterministicResults()
	return _u
}

// SetLlmStageEvaluations sets the "llm_stage_evaluations" field.
func (_u *EvaluationUpdateOne) SetLlmStageEvaluations(v []models.StageEvaluation) *EvaluationUpdateOne {
	_u.mutation.SetLlmStageEvaluations(v)
	return _u
}

// AppendLlmStageEvaluations appends value to the "llm_stage_evaluations" field.
func (_u *EvaluationUpdateOne) AppendLlmStageEvaluations(v []models.StageEvaluation) *EvaluationUpdateOne {
	_u.mutation.AppendLlmStageEvaluations(v)
	return _u
}

// ClearLlmStageEvaluations clears the value of the "llm_stage_evaluations" field.
func (_u *EvaluationUpdateOne) ClearLlmStageEvaluations() *EvaluationUpdateOne {
	_u.mutation.ClearLlmStageEvaluations()
	return _u
}

// SetFinalEvaluation sets the "final_evaluation" field.
func (_u *EvaluationUpdateOne) SetFinalEvaluation(v *models.FinalEvaluation) *EvaluationUpdateOne {
	_u.mutation.SetFinalEvaluation(v)
	return _u
}

// ClearFinalEvaluation clears the value of the "final_evaluation" field.
func (_u *EvaluationUpdateOne) ClearFinalEvaluation() *EvaluationUpdateOne {
	_u.mutation.ClearFinalEvaluation()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *EvaluationUpdateOne) SetErrorCode(v string) *EvaluationUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableErrorCode(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *EvaluationUpdateOne) ClearErrorCode() *EvaluationUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvaluationUpdateOne) SetErrorMessage(v string) *EvaluationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableErrorMessage(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EvaluationUpdateOne) ClearErrorMessage() *EvaluationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvaluationUpdateOne) SetCompletedAt(v time.Time) *EvaluationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCompletedAt(v *time.Time) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvaluationUpdateOne) ClearCompletedAt() *EvaluationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EvaluationUpdateOne) SetDeletedAt(v time.Time) *EvaluationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableDeletedAt(v *time.Time) *EvaluationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EvaluationUpdateOne) ClearDeletedAt() *EvaluationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Evaluation.status": %w`, err)}
		}
	}
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.recording"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
		_spec.SetField(evaluation.FieldCompiledFlowVersionID, field.TypeString, value)
	}
	if _u.mutation.CompiledFlowVersionIDCleared() {
		_spec.ClearField(evaluation.FieldCompiledFlowVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(evaluation.FieldOverallScore, field.TypeInt, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(evaluation.FieldOverallScore, field.TypeInt)
	}
	if value, ok := _u.mutation.OverallPassed(); ok {
		_spec.SetField(evaluation.FieldOverallPassed, field.TypeBool, value)
	}
	if _u.mutation.OverallPassedCleared() {
		_spec.ClearField(evaluation.FieldOverallPassed, field.TypeBool)
	}
	if value, ok := _u.mutation.RequiresHumanReview(); ok {
		_spec.SetField(evaluation.FieldRequiresHumanReview, field.TypeBool, value)
	}
	if _u.mutation.RequiresHumanReviewCleared() {
		_spec.ClearField(evaluation.FieldRequiresHumanReview, field.TypeBool)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(evaluation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(evaluation.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(evaluation.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DeterministicResults(); ok {
		_spec.SetField(evaluation.FieldDeterministicResults, field.TypeJSON, value)
	}
	if _u.mutation.DeterministicResultsCleared() {
		_spec.ClearField(evaluation.FieldDeterministicResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmStageEvaluations(); ok {
		_spec.SetField(evaluation.FieldLlmStageEvaluations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLlmStageEvaluations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldLlmStageEvaluations, value)
		})
	}
	if _u.mutation.LlmStageEvaluationsCleared() {
		_spec.ClearField(evaluation.FieldLlmStageEvaluations, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalEvaluation(); ok {
		_spec.SetField(evaluation.FieldFinalEvaluation, field.TypeJSON, value)
	}
	if _u.mutation.FinalEvaluationCleared() {
		_spec.ClearField(evaluation.FieldFinalEvaluation, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(evaluation.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(evaluation.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(evaluation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evaluation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evaluation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(evaluation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(evaluation.FieldDeletedAt, field.TypeTime)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
