// Code generated by ent, DO NOT EDIT.

package blueprint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCompanyID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDescription, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldVersionNumber, v))
}

// CompiledFlowVersionID applies equality check predicate on the "compiled_flow_version_id" field. It's identical to CompiledFlowVersionIDEQ.
func CompiledFlowVersionID(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldLanguage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldCompanyID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldVersionNumber, v))
}

// CompiledFlowVersionIDEQ applies the EQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDNEQ applies the NEQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIn applies the In predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDNotIn applies the NotIn predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDGT applies the GT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDGTE applies the GTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLT applies the LT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLTE applies the LTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContains applies the Contains predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasPrefix applies the HasPrefix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasSuffix applies the HasSuffix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIsNil applies the IsNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDNotNil applies the NotNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDEqualFold applies the EqualFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContainsFold applies the ContainsFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldCompiledFlowVersionID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldContainsFold(FieldLanguage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Blueprint {
	return predicate.Blueprint(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStages applies the HasEdge predicate on the "stages" edge.
func HasStages() predicate.Blueprint {
	return predicate.Blueprint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StagesTable, StagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStagesWith applies the HasEdge predicate on the "stages" edge with a given conditions (other predicates).
func HasStagesWith(preds ...predicate.BlueprintStage) predicate.Blueprint {
	return predicate.Blueprint(func(s *sql.Selector) {
		step := newStagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Blueprint {
	return predicate.Blueprint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.BlueprintVersion) predicate.Blueprint {
	return predicate.Blueprint(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Blueprint) predicate.Blueprint {
	return predicate.Blueprint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Blueprint) predicate.Blueprint {
	return predicate.Blueprint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Blueprint) predicate.Blueprint {
	return predicate.Blueprint(sql.NotPredicates(p))
}
