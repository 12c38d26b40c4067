// Code generated by ent, DO NOT EDIT.

package compiledflowstage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldContainsFold(FieldID, id))
}

// FlowVersionID applies equality check predicate on the "flow_version_id" field. It's identical to FlowVersionIDEQ.
func FlowVersionID(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldFlowVersionID, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldStageName, v))
}

// OrderingIndex applies equality check predicate on the "ordering_index" field. It's identical to OrderingIndexEQ.
func OrderingIndex(v int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldOrderingIndex, v))
}

// StageWeight applies equality check predicate on the "stage_weight" field. It's identical to StageWeightEQ.
func StageWeight(v float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldStageWeight, v))
}

// FlowVersionIDEQ applies the EQ predicate on the "flow_version_id" field.
func FlowVersionIDEQ(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldFlowVersionID, v))
}

// FlowVersionIDNEQ applies the NEQ predicate on the "flow_version_id" field.
func FlowVersionIDNEQ(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNEQ(FieldFlowVersionID, v))
}

// FlowVersionIDIn applies the In predicate on the "flow_version_id" field.
func FlowVersionIDIn(vs ...string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDNotIn applies the NotIn predicate on the "flow_version_id" field.
func FlowVersionIDNotIn(vs ...string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNotIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDGT applies the GT predicate on the "flow_version_id" field.
func FlowVersionIDGT(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGT(FieldFlowVersionID, v))
}

// FlowVersionIDGTE applies the GTE predicate on the "flow_version_id" field.
func FlowVersionIDGTE(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGTE(FieldFlowVersionID, v))
}

// FlowVersionIDLT applies the LT predicate on the "flow_version_id" field.
func FlowVersionIDLT(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLT(FieldFlowVersionID, v))
}

// FlowVersionIDLTE applies the LTE predicate on the "flow_version_id" field.
func FlowVersionIDLTE(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLTE(FieldFlowVersionID, v))
}

// FlowVersionIDContains applies the Contains predicate on the "flow_version_id" field.
func FlowVersionIDContains(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldContains(FieldFlowVersionID, v))
}

// FlowVersionIDHasPrefix applies the HasPrefix predicate on the "flow_version_id" field.
func FlowVersionIDHasPrefix(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldHasPrefix(FieldFlowVersionID, v))
}

// FlowVersionIDHasSuffix applies the HasSuffix predicate on the "flow_version_id" field.
func FlowVersionIDHasSuffix(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldHasSuffix(FieldFlowVersionID, v))
}

// FlowVersionIDEqualFold applies the EqualFold predicate on the "flow_version_id" field.
func FlowVersionIDEqualFold(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEqualFold(FieldFlowVersionID, v))
}

// FlowVersionIDContainsFold applies the ContainsFold predicate on the "flow_version_id" field.
func FlowVersionIDContainsFold(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldContainsFold(FieldFlowVersionID, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldContainsFold(FieldStageName, v))
}

// OrderingIndexEQ applies the EQ predicate on the "ordering_index" field.
func OrderingIndexEQ(v int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldOrderingIndex, v))
}

// OrderingIndexNEQ applies the NEQ predicate on the "ordering_index" field.
func OrderingIndexNEQ(v int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNEQ(FieldOrderingIndex, v))
}

// OrderingIndexIn applies the In predicate on the "ordering_index" field.
func OrderingIndexIn(vs ...int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldIn(FieldOrderingIndex, vs...))
}

// OrderingIndexNotIn applies the NotIn predicate on the "ordering_index" field.
func OrderingIndexNotIn(vs ...int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNotIn(FieldOrderingIndex, vs...))
}

// OrderingIndexGT applies the GT predicate on the "ordering_index" field.
func OrderingIndexGT(v int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGT(FieldOrderingIndex, v))
}

// OrderingIndexGTE applies the GTE predicate on the "ordering_index" field.
func OrderingIndexGTE(v int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGTE(FieldOrderingIndex, v))
}

// OrderingIndexLT applies the LT predicate on the "ordering_index" field.
func OrderingIndexLT(v int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLT(FieldOrderingIndex, v))
}

// OrderingIndexLTE applies the LTE predicate on the "ordering_index" field.
func OrderingIndexLTE(v int) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLTE(FieldOrderingIndex, v))
}

// StageWeightEQ applies the EQ predicate on the "stage_weight" field.
func StageWeightEQ(v float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldEQ(FieldStageWeight, v))
}

// StageWeightNEQ applies the NEQ predicate on the "stage_weight" field.
func StageWeightNEQ(v float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNEQ(FieldStageWeight, v))
}

// StageWeightIn applies the In predicate on the "stage_weight" field.
func StageWeightIn(vs ...float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldIn(FieldStageWeight, vs...))
}

// StageWeightNotIn applies the NotIn predicate on the "stage_weight" field.
func StageWeightNotIn(vs ...float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNotIn(FieldStageWeight, vs...))
}

// StageWeightGT applies the GT predicate on the "stage_weight" field.
func StageWeightGT(v float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGT(FieldStageWeight, v))
}

// StageWeightGTE applies the GTE predicate on the "stage_weight" field.
func StageWeightGTE(v float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldGTE(FieldStageWeight, v))
}

// StageWeightLT applies the LT predicate on the "stage_weight" field.
func StageWeightLT(v float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLT(FieldStageWeight, v))
}

// StageWeightLTE applies the LTE predicate on the "stage_weight" field.
func StageWeightLTE(v float64) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldLTE(FieldStageWeight, v))
}

// StageWeightIsNil applies the IsNil predicate on the "stage_weight" field.
func StageWeightIsNil() predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldIsNull(FieldStageWeight))
}

// StageWeightNotNil applies the NotNil predicate on the "stage_weight" field.
func StageWeightNotNil() predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.FieldNotNull(FieldStageWeight))
}

// HasFlowVersion applies the HasEdge predicate on the "flow_version" edge.
func HasFlowVersion() predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FlowVersionTable, FlowVersionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlowVersionWith applies the HasEdge predicate on the "flow_version" edge with a given conditions (other predicates).
func HasFlowVersionWith(preds ...predicate.CompiledFlowVersion) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(func(s *sql.Selector) {
		step := newFlowVersionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.CompiledFlowStep) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompiledFlowStage) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompiledFlowStage) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompiledFlowStage) predicate.CompiledFlowStage {
	return predicate.CompiledFlowStage(sql.NotPredicates(p))
}
