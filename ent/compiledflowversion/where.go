// Code generated by ent, DO NOT EDIT.

package compiledflowversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldCompanyID, v))
}

// BlueprintVersionID applies equality check predicate on the "blueprint_version_id" field. It's identical to BlueprintVersionIDEQ.
func BlueprintVersionID(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldBlueprintVersionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldContainsFold(FieldCompanyID, v))
}

// BlueprintVersionIDEQ applies the EQ predicate on the "blueprint_version_id" field.
func BlueprintVersionIDEQ(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDNEQ applies the NEQ predicate on the "blueprint_version_id" field.
func BlueprintVersionIDNEQ(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNEQ(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDIn applies the In predicate on the "blueprint_version_id" field.
func BlueprintVersionIDIn(vs ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldIn(FieldBlueprintVersionID, vs...))
}

// BlueprintVersionIDNotIn applies the NotIn predicate on the "blueprint_version_id" field.
func BlueprintVersionIDNotIn(vs ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNotIn(FieldBlueprintVersionID, vs...))
}

// BlueprintVersionIDGT applies the GT predicate on the "blueprint_version_id" field.
func BlueprintVersionIDGT(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGT(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDGTE applies the GTE predicate on the "blueprint_version_id" field.
func BlueprintVersionIDGTE(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGTE(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDLT applies the LT predicate on the "blueprint_version_id" field.
func BlueprintVersionIDLT(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLT(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDLTE applies the LTE predicate on the "blueprint_version_id" field.
func BlueprintVersionIDLTE(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLTE(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDContains applies the Contains predicate on the "blueprint_version_id" field.
func BlueprintVersionIDContains(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldContains(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDHasPrefix applies the HasPrefix predicate on the "blueprint_version_id" field.
func BlueprintVersionIDHasPrefix(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldHasPrefix(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDHasSuffix applies the HasSuffix predicate on the "blueprint_version_id" field.
func BlueprintVersionIDHasSuffix(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldHasSuffix(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDEqualFold applies the EqualFold predicate on the "blueprint_version_id" field.
func BlueprintVersionIDEqualFold(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEqualFold(FieldBlueprintVersionID, v))
}

// BlueprintVersionIDContainsFold applies the ContainsFold predicate on the "blueprint_version_id" field.
func BlueprintVersionIDContainsFold(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldContainsFold(FieldBlueprintVersionID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldContainsFold(FieldName, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStages applies the HasEdge predicate on the "stages" edge.
func HasStages() predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StagesTable, StagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStagesWith applies the HasEdge predicate on the "stages" edge with a given conditions (other predicates).
func HasStagesWith(preds ...predicate.CompiledFlowStage) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(func(s *sql.Selector) {
		step := newStagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRules applies the HasEdge predicate on the "rules" edge.
func HasRules() predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RulesTable, RulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRulesWith applies the HasEdge predicate on the "rules" edge with a given conditions (other predicates).
func HasRulesWith(preds ...predicate.CompiledComplianceRule) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(func(s *sql.Selector) {
		step := newRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRubric applies the HasEdge predicate on the "rubric" edge.
func HasRubric() predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, RubricTable, RubricColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRubricWith applies the HasEdge predicate on the "rubric" edge with a given conditions (other predicates).
func HasRubricWith(preds ...predicate.CompiledRubricTemplate) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(func(s *sql.Selector) {
		step := newRubricStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompiledFlowVersion) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompiledFlowVersion) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompiledFlowVersion) predicate.CompiledFlowVersion {
	return predicate.CompiledFlowVersion(sql.NotPredicates(p))
}
