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
	"github.com/callscope-ai/callscope/pkg/models"
)

// EvaluationCreate is the builder for creating a Evaluation entity.
type EvaluationCreate struct {
	config
	mutation *EvaluationMutation
	hooks    []Hook
}

// SetRecordingID sets the "recording_id" field.
func (_c *EvaluationCreate) SetRecordingID(v string) *EvaluationCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetBlueprintID sets the "blueprint_id" field.
func (_c *EvaluationCreate) SetBlueprintID(v string) *EvaluationCreate {
	_c.mutation.SetBlueprintID(v)
	return _c
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (_c *EvaluationCreate) SetCompiledFlowVersionID(v string) *EvaluationCreate {
	_c.mutation.SetCompiledFlowVersionID(v)
	return _c
}

// SetNillableCompiledFlowVersionID sets the "compiled_flow_version_id" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCompiledFlowVersionID(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetCompiledFlowVersionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EvaluationCreate) SetStatus(v evaluation.Status) *EvaluationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableStatus(v *evaluation.Status) *EvaluationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *EvaluationCreate) SetOverallScore(v int) *EvaluationCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableOverallScore(v *int) *EvaluationCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetOverallPassed sets the "overall_passed" field.
func (_c *EvaluationCreate) SetOverallPassed(v bool) *EvaluationCreate {
	_c.mutation.SetOverallPassed(v)
	return _c
}

// SetNillableOverallPassed sets the "overall_passed" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableOverallPassed(v *bool) *EvaluationCreate {
	if v != nil {
		_c.SetOverallPassed(*v)
	}
	return _c
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_c *EvaluationCreate) SetRequiresHumanReview(v bool) *EvaluationCreate {
	_c.mutation.SetRequiresHumanReview(v)
	return _c
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableRequiresHumanReview(v *bool) *EvaluationCreate {
	if v != nil {
		_c.SetRequiresHumanReview(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *EvaluationCreate) SetConfidenceScore(v float64) *EvaluationCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableConfidenceScore(v *float64) *EvaluationCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetDeterministicResults sets the "deterministic_results" field.
func (_c *EvaluationCreate) SetDeterministicResults(v *models.DeterministicResults) *EvaluationCreate {
	_c.mutation.SetDeterministicResults(v)
	return _c
}

// SetLlmStageEvaluations sets the "llm_stage_evaluations" field.
func (_c *EvaluationCreate) SetLlmStageEvaluations(v []models.StageEvaluation) *EvaluationCreate {
	_c.mutation.SetLlmStageEvaluations(v)
	return _c
}

// SetFinalEvaluation sets the "final_evaluation" field.
func (_c *EvaluationCreate) SetFinalEvaluation(v *models.FinalEvaluation) *EvaluationCreate {
	_c.mutation.SetFinalEvaluation(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *EvaluationCreate) SetErrorCode(v string) *EvaluationCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableErrorCode(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EvaluationCreate) SetErrorMessage(v string) *EvaluationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableErrorMessage(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationCreate) SetCreatedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCreatedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *EvaluationCreate) SetCompletedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCompletedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EvaluationCreate) SetDeletedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableDeletedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationCreate) SetID(v string) *EvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_c *EvaluationCreate) SetRecording(v *Recording) *EvaluationCreate {
	return _c.SetRecordingID(v.ID)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_c *EvaluationCreate) Mutation() *EvaluationMutation {
	return _c.mutation
}

// Save creates the Evaluation in the database.
func (_c *EvaluationCreate) Save(ctx context.Context) (*Evaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationCreate) SaveX(ctx context.Context) *Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := evaluation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationCreate) check() error {
	if _, ok := _c.mutation.RecordingID(); !ok {
		return &ValidationError{Name: "recording_id", err: errors.New(`ent: missing required field "Evaluation.recording_id"`)}
	}
	if _, ok := _c.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "Evaluation.blueprint_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Evaluation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := evaluation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Evaluation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evaluation.created_at"`)}
	}
	if len(_c.mutation.RecordingIDs()) == 0 {
		return &ValidationError{Name: "recording", err: errors.New(`ent: missing required edge "Evaluation.recording"`)}
	}
	return nil
}

func (_c *EvaluationCreate) sqlSave(ctx context.Context) (*Evaluation, error) {
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
			return nil, fmt.Errorf("unexpected Evaluation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationCreate) createSpec() (*Evaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &Evaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluation.Table, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BlueprintID(); ok {
		_spec.SetField(evaluation.FieldBlueprintID, field.TypeString, value)
		_node.BlueprintID = value
	}
	if value, ok := _c.mutation.CompiledFlowVersionID(); ok {
		_spec.SetField(evaluation.FieldCompiledFlowVersionID, field.TypeString, value)
		_node.CompiledFlowVersionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(evaluation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(evaluation.FieldOverallScore, field.TypeInt, value)
		_node.OverallScore = &value
	}
	if value, ok := _c.mutation.OverallPassed(); ok {
		_spec.SetField(evaluation.FieldOverallPassed, field.TypeBool, value)
		_node.OverallPassed = &value
	}
	if value, ok := _c.mutation.RequiresHumanReview(); ok {
		_spec.SetField(evaluation.FieldRequiresHumanReview, field.TypeBool, value)
		_node.RequiresHumanReview = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(evaluation.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.DeterministicResults(); ok {
		_spec.SetField(evaluation.FieldDeterministicResults, field.TypeJSON, value)
		_node.DeterministicResults = value
	}
	if value, ok := _c.mutation.LlmStageEvaluations(); ok {
		_spec.SetField(evaluation.FieldLlmStageEvaluations, field.TypeJSON, value)
		_node.LlmStageEvaluations = value
	}
	if value, ok := _c.mutation.FinalEvaluation(); ok {
		_spec.SetField(evaluation.FieldFinalEvaluation, field.TypeJSON, value)
		_node.FinalEvaluation = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(evaluation.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(evaluation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(evaluation.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.RecordingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.RecordingTable,
			Columns: []string{evaluation.RecordingColumn},
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

// EvaluationCreateBulk is the builder for creating many Evaluation entities in bulk.
type EvaluationCreateBulk struct {
	config
	err      error
	builders []*EvaluationCreate
}

// Save creates the Evaluation entities in the database.
func (_c *EvaluationCreateBulk) Save(ctx context.Context) ([]*Evaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationMutation)
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
func (_c *EvaluationCreateBulk) SaveX(ctx context.Context) []*Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
