// Code generated by ent, DO NOT EDIT.

package blueprintbehavior

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldContainsFold(FieldID, id))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldStageID, v))
}

// BehaviorName applies equality check predicate on the "behavior_name" field. It's identical to BehaviorNameEQ.
func BehaviorName(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldBehaviorName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldDescription, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldWeight, v))
}

// UIOrder applies equality check predicate on the "ui_order" field. It's identical to UIOrderEQ.
func UIOrder(v int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldUIOrder, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldContainsFold(FieldStageID, v))
}

// BehaviorNameEQ applies the EQ predicate on the "behavior_name" field.
func BehaviorNameEQ(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldBehaviorName, v))
}

// BehaviorNameNEQ applies the NEQ predicate on the "behavior_name" field.
func BehaviorNameNEQ(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldBehaviorName, v))
}

// BehaviorNameIn applies the In predicate on the "behavior_name" field.
func BehaviorNameIn(vs ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldBehaviorName, vs...))
}

// BehaviorNameNotIn applies the NotIn predicate on the "behavior_name" field.
func BehaviorNameNotIn(vs ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldBehaviorName, vs...))
}

// BehaviorNameGT applies the GT predicate on the "behavior_name" field.
func BehaviorNameGT(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGT(FieldBehaviorName, v))
}

// BehaviorNameGTE applies the GTE predicate on the "behavior_name" field.
func BehaviorNameGTE(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGTE(FieldBehaviorName, v))
}

// BehaviorNameLT applies the LT predicate on the "behavior_name" field.
func BehaviorNameLT(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLT(FieldBehaviorName, v))
}

// BehaviorNameLTE applies the LTE predicate on the "behavior_name" field.
func BehaviorNameLTE(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLTE(FieldBehaviorName, v))
}

// BehaviorNameContains applies the Contains predicate on the "behavior_name" field.
func BehaviorNameContains(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldContains(FieldBehaviorName, v))
}

// BehaviorNameHasPrefix applies the HasPrefix predicate on the "behavior_name" field.
func BehaviorNameHasPrefix(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldHasPrefix(FieldBehaviorName, v))
}

// BehaviorNameHasSuffix applies the HasSuffix predicate on the "behavior_name" field.
func BehaviorNameHasSuffix(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldHasSuffix(FieldBehaviorName, v))
}

// BehaviorNameEqualFold applies the EqualFold predicate on the "behavior_name" field.
func BehaviorNameEqualFold(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEqualFold(FieldBehaviorName, v))
}

// BehaviorNameContainsFold applies the ContainsFold predicate on the "behavior_name" field.
func BehaviorNameContainsFold(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldContainsFold(FieldBehaviorName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldContainsFold(FieldDescription, v))
}

// BehaviorTypeEQ applies the EQ predicate on the "behavior_type" field.
func BehaviorTypeEQ(v BehaviorType) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldBehaviorType, v))
}

// BehaviorTypeNEQ applies the NEQ predicate on the "behavior_type" field.
func BehaviorTypeNEQ(v BehaviorType) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldBehaviorType, v))
}

// BehaviorTypeIn applies the In predicate on the "behavior_type" field.
func BehaviorTypeIn(vs ...BehaviorType) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldBehaviorType, vs...))
}

// BehaviorTypeNotIn applies the NotIn predicate on the "behavior_type" field.
func BehaviorTypeNotIn(vs ...BehaviorType) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldBehaviorType, vs...))
}

// DetectionModeEQ applies the EQ predicate on the "detection_mode" field.
func DetectionModeEQ(v DetectionMode) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldDetectionMode, v))
}

// DetectionModeNEQ applies the NEQ predicate on the "detection_mode" field.
func DetectionModeNEQ(v DetectionMode) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldDetectionMode, v))
}

// DetectionModeIn applies the In predicate on the "detection_mode" field.
func DetectionModeIn(vs ...DetectionMode) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldDetectionMode, vs...))
}

// DetectionModeNotIn applies the NotIn predicate on the "detection_mode" field.
func DetectionModeNotIn(vs ...DetectionMode) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldDetectionMode, vs...))
}

// PhrasesIsNil applies the IsNil predicate on the "phrases" field.
func PhrasesIsNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIsNull(FieldPhrases))
}

// PhrasesNotNil applies the NotNil predicate on the "phrases" field.
func PhrasesNotNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotNull(FieldPhrases))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLTE(FieldWeight, v))
}

// CriticalActionEQ applies the EQ predicate on the "critical_action" field.
func CriticalActionEQ(v CriticalAction) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldCriticalAction, v))
}

// CriticalActionNEQ applies the NEQ predicate on the "critical_action" field.
func CriticalActionNEQ(v CriticalAction) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldCriticalAction, v))
}

// CriticalActionIn applies the In predicate on the "critical_action" field.
func CriticalActionIn(vs ...CriticalAction) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldCriticalAction, vs...))
}

// CriticalActionNotIn applies the NotIn predicate on the "critical_action" field.
func CriticalActionNotIn(vs ...CriticalAction) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldCriticalAction, vs...))
}

// CriticalActionIsNil applies the IsNil predicate on the "critical_action" field.
func CriticalActionIsNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIsNull(FieldCriticalAction))
}

// CriticalActionNotNil applies the NotNil predicate on the "critical_action" field.
func CriticalActionNotNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotNull(FieldCriticalAction))
}

// UIOrderEQ applies the EQ predicate on the "ui_order" field.
func UIOrderEQ(v int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldEQ(FieldUIOrder, v))
}

// UIOrderNEQ applies the NEQ predicate on the "ui_order" field.
func UIOrderNEQ(v int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNEQ(FieldUIOrder, v))
}

// UIOrderIn applies the In predicate on the "ui_order" field.
func UIOrderIn(vs ...int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIn(FieldUIOrder, vs...))
}

// UIOrderNotIn applies the NotIn predicate on the "ui_order" field.
func UIOrderNotIn(vs ...int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotIn(FieldUIOrder, vs...))
}

// UIOrderGT applies the GT predicate on the "ui_order" field.
func UIOrderGT(v int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGT(FieldUIOrder, v))
}

// UIOrderGTE applies the GTE predicate on the "ui_order" field.
func UIOrderGTE(v int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldGTE(FieldUIOrder, v))
}

// UIOrderLT applies the LT predicate on the "ui_order" field.
func UIOrderLT(v int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLT(FieldUIOrder, v))
}

// UIOrderLTE applies the LTE predicate on the "ui_order" field.
func UIOrderLTE(v int) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldLTE(FieldUIOrder, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.FieldNotNull(FieldMetadata))
}

// HasStage applies the HasEdge predicate on the "stage" edge.
func HasStage() predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageWith applies the HasEdge predicate on the "stage" edge with a given conditions (other predicates).
func HasStageWith(preds ...predicate.BlueprintStage) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(func(s *sql.Selector) {
		step := newStageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlueprintBehavior) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlueprintBehavior) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlueprintBehavior) predicate.BlueprintBehavior {
	return predicate.BlueprintBehavior(sql.NotPredicates(p))
}
