// Code generated by ent, DO NOT EDIT.

package blueprintstage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldContainsFold(FieldID, id))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldBlueprintID, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldStageName, v))
}

// OrderingIndex applies equality check predicate on the "ordering_index" field. It's identical to OrderingIndexEQ.
func OrderingIndex(v int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldOrderingIndex, v))
}

// StageWeight applies equality check predicate on the "stage_weight" field. It's identical to StageWeightEQ.
func StageWeight(v float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldStageWeight, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// BlueprintIDGT applies the GT predicate on the "blueprint_id" field.
func BlueprintIDGT(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGT(FieldBlueprintID, v))
}

// BlueprintIDGTE applies the GTE predicate on the "blueprint_id" field.
func BlueprintIDGTE(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGTE(FieldBlueprintID, v))
}

// BlueprintIDLT applies the LT predicate on the "blueprint_id" field.
func BlueprintIDLT(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLT(FieldBlueprintID, v))
}

// BlueprintIDLTE applies the LTE predicate on the "blueprint_id" field.
func BlueprintIDLTE(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLTE(FieldBlueprintID, v))
}

// BlueprintIDContains applies the Contains predicate on the "blueprint_id" field.
func BlueprintIDContains(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldContains(FieldBlueprintID, v))
}

// BlueprintIDHasPrefix applies the HasPrefix predicate on the "blueprint_id" field.
func BlueprintIDHasPrefix(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldHasPrefix(FieldBlueprintID, v))
}

// BlueprintIDHasSuffix applies the HasSuffix predicate on the "blueprint_id" field.
func BlueprintIDHasSuffix(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldHasSuffix(FieldBlueprintID, v))
}

// BlueprintIDEqualFold applies the EqualFold predicate on the "blueprint_id" field.
func BlueprintIDEqualFold(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEqualFold(FieldBlueprintID, v))
}

// BlueprintIDContainsFold applies the ContainsFold predicate on the "blueprint_id" field.
func BlueprintIDContainsFold(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldContainsFold(FieldBlueprintID, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldContainsFold(FieldStageName, v))
}

// OrderingIndexEQ applies the EQ predicate on the "ordering_index" field.
func OrderingIndexEQ(v int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldOrderingIndex, v))
}

// OrderingIndexNEQ applies the NEQ predicate on the "ordering_index" field.
func OrderingIndexNEQ(v int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNEQ(FieldOrderingIndex, v))
}

// OrderingIndexIn applies the In predicate on the "ordering_index" field.
func OrderingIndexIn(vs ...int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldIn(FieldOrderingIndex, vs...))
}

// OrderingIndexNotIn applies the NotIn predicate on the "ordering_index" field.
func OrderingIndexNotIn(vs ...int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNotIn(FieldOrderingIndex, vs...))
}

// OrderingIndexGT applies the GT predicate on the "ordering_index" field.
func OrderingIndexGT(v int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGT(FieldOrderingIndex, v))
}

// OrderingIndexGTE applies the GTE predicate on the "ordering_index" field.
func OrderingIndexGTE(v int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGTE(FieldOrderingIndex, v))
}

// OrderingIndexLT applies the LT predicate on the "ordering_index" field.
func OrderingIndexLT(v int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLT(FieldOrderingIndex, v))
}

// OrderingIndexLTE applies the LTE predicate on the "ordering_index" field.
func OrderingIndexLTE(v int) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLTE(FieldOrderingIndex, v))
}

// StageWeightEQ applies the EQ predicate on the "stage_weight" field.
func StageWeightEQ(v float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldEQ(FieldStageWeight, v))
}

// StageWeightNEQ applies the NEQ predicate on the "stage_weight" field.
func StageWeightNEQ(v float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNEQ(FieldStageWeight, v))
}

// StageWeightIn applies the In predicate on the "stage_weight" field.
func StageWeightIn(vs ...float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldIn(FieldStageWeight, vs...))
}

// StageWeightNotIn applies the NotIn predicate on the "stage_weight" field.
func StageWeightNotIn(vs ...float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNotIn(FieldStageWeight, vs...))
}

// StageWeightGT applies the GT predicate on the "stage_weight" field.
func StageWeightGT(v float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGT(FieldStageWeight, v))
}

// StageWeightGTE applies the GTE predicate on the "stage_weight" field.
func StageWeightGTE(v float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldGTE(FieldStageWeight, v))
}

// StageWeightLT applies the LT predicate on the "stage_weight" field.
func StageWeightLT(v float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLT(FieldStageWeight, v))
}

// StageWeightLTE applies the LTE predicate on the "stage_weight" field.
func StageWeightLTE(v float64) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldLTE(FieldStageWeight, v))
}

// StageWeightIsNil applies the IsNil predicate on the "stage_weight" field.
func StageWeightIsNil() predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldIsNull(FieldStageWeight))
}

// StageWeightNotNil applies the NotNil predicate on the "stage_weight" field.
func StageWeightNotNil() predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNotNull(FieldStageWeight))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.FieldNotNull(FieldMetadata))
}

// HasBlueprint applies the HasEdge predicate on the "blueprint" edge.
func HasBlueprint() predicate.BlueprintStage {
	return predicate.BlueprintStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlueprintTable, BlueprintColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlueprintWith applies the HasEdge predicate on the "blueprint" edge with a given conditions (other predicates).
func HasBlueprintWith(preds ...predicate.Blueprint) predicate.BlueprintStage {
	return predicate.BlueprintStage(func(s *sql.Selector) {
		step := newBlueprintStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBehaviors applies the HasEdge predicate on the "behaviors" edge.
func HasBehaviors() predicate.BlueprintStage {
	return predicate.BlueprintStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BehaviorsTable, BehaviorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBehaviorsWith applies the HasEdge predicate on the "behaviors" edge with a given conditions (other predicates).
func HasBehaviorsWith(preds ...predicate.BlueprintBehavior) predicate.BlueprintStage {
	return predicate.BlueprintStage(func(s *sql.Selector) {
		step := newBehaviorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlueprintStage) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlueprintStage) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlueprintStage) predicate.BlueprintStage {
	return predicate.BlueprintStage(sql.NotPredicates(p))
}
