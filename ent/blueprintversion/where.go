// Code generated by ent, DO NOT EDIT.

package blueprintversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContainsFold(FieldID, id))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldBlueprintID, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// CompiledFlowVersionID applies equality check predicate on the "compiled_flow_version_id" field. It's identical to CompiledFlowVersionIDEQ.
func CompiledFlowVersionID(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// PublishedBy applies equality check predicate on the "published_by" field. It's identical to PublishedByEQ.
func PublishedBy(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldPublishedBy, v))
}

// PublishNote applies equality check predicate on the "publish_note" field. It's identical to PublishNoteEQ.
func PublishNote(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldPublishNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// BlueprintIDGT applies the GT predicate on the "blueprint_id" field.
func BlueprintIDGT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGT(FieldBlueprintID, v))
}

// BlueprintIDGTE applies the GTE predicate on the "blueprint_id" field.
func BlueprintIDGTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGTE(FieldBlueprintID, v))
}

// BlueprintIDLT applies the LT predicate on the "blueprint_id" field.
func BlueprintIDLT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLT(FieldBlueprintID, v))
}

// BlueprintIDLTE applies the LTE predicate on the "blueprint_id" field.
func BlueprintIDLTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLTE(FieldBlueprintID, v))
}

// BlueprintIDContains applies the Contains predicate on the "blueprint_id" field.
func BlueprintIDContains(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContains(FieldBlueprintID, v))
}

// BlueprintIDHasPrefix applies the HasPrefix predicate on the "blueprint_id" field.
func BlueprintIDHasPrefix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasPrefix(FieldBlueprintID, v))
}

// BlueprintIDHasSuffix applies the HasSuffix predicate on the "blueprint_id" field.
func BlueprintIDHasSuffix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasSuffix(FieldBlueprintID, v))
}

// BlueprintIDEqualFold applies the EqualFold predicate on the "blueprint_id" field.
func BlueprintIDEqualFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEqualFold(FieldBlueprintID, v))
}

// BlueprintIDContainsFold applies the ContainsFold predicate on the "blueprint_id" field.
func BlueprintIDContainsFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContainsFold(FieldBlueprintID, v))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLTE(FieldVersionNumber, v))
}

// CompiledFlowVersionIDEQ applies the EQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDNEQ applies the NEQ predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNEQ(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIn applies the In predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDNotIn applies the NotIn predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotIn(FieldCompiledFlowVersionID, vs...))
}

// CompiledFlowVersionIDGT applies the GT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDGTE applies the GTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDGTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLT applies the LT predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLT(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDLTE applies the LTE predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDLTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLTE(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContains applies the Contains predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContains(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContains(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasPrefix applies the HasPrefix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasPrefix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasPrefix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDHasSuffix applies the HasSuffix predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDHasSuffix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasSuffix(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDIsNil applies the IsNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDIsNil() predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIsNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDNotNil applies the NotNil predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDNotNil() predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotNull(FieldCompiledFlowVersionID))
}

// CompiledFlowVersionIDEqualFold applies the EqualFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDEqualFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEqualFold(FieldCompiledFlowVersionID, v))
}

// CompiledFlowVersionIDContainsFold applies the ContainsFold predicate on the "compiled_flow_version_id" field.
func CompiledFlowVersionIDContainsFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContainsFold(FieldCompiledFlowVersionID, v))
}

// PublishedByEQ applies the EQ predicate on the "published_by" field.
func PublishedByEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldPublishedBy, v))
}

// PublishedByNEQ applies the NEQ predicate on the "published_by" field.
func PublishedByNEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNEQ(FieldPublishedBy, v))
}

// PublishedByIn applies the In predicate on the "published_by" field.
func PublishedByIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIn(FieldPublishedBy, vs...))
}

// PublishedByNotIn applies the NotIn predicate on the "published_by" field.
func PublishedByNotIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotIn(FieldPublishedBy, vs...))
}

// PublishedByGT applies the GT predicate on the "published_by" field.
func PublishedByGT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGT(FieldPublishedBy, v))
}

// PublishedByGTE applies the GTE predicate on the "published_by" field.
func PublishedByGTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGTE(FieldPublishedBy, v))
}

// PublishedByLT applies the LT predicate on the "published_by" field.
func PublishedByLT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLT(FieldPublishedBy, v))
}

// PublishedByLTE applies the LTE predicate on the "published_by" field.
func PublishedByLTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLTE(FieldPublishedBy, v))
}

// PublishedByContains applies the Contains predicate on the "published_by" field.
func PublishedByContains(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContains(FieldPublishedBy, v))
}

// PublishedByHasPrefix applies the HasPrefix predicate on the "published_by" field.
func PublishedByHasPrefix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasPrefix(FieldPublishedBy, v))
}

// PublishedByHasSuffix applies the HasSuffix predicate on the "published_by" field.
func PublishedByHasSuffix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasSuffix(FieldPublishedBy, v))
}

// PublishedByIsNil applies the IsNil predicate on the "published_by" field.
func PublishedByIsNil() predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIsNull(FieldPublishedBy))
}

// PublishedByNotNil applies the NotNil predicate on the "published_by" field.
func PublishedByNotNil() predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotNull(FieldPublishedBy))
}

// PublishedByEqualFold applies the EqualFold predicate on the "published_by" field.
func PublishedByEqualFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEqualFold(FieldPublishedBy, v))
}

// PublishedByContainsFold applies the ContainsFold predicate on the "published_by" field.
func PublishedByContainsFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContainsFold(FieldPublishedBy, v))
}

// PublishNoteEQ applies the EQ predicate on the "publish_note" field.
func PublishNoteEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldPublishNote, v))
}

// PublishNoteNEQ applies the NEQ predicate on the "publish_note" field.
func PublishNoteNEQ(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNEQ(FieldPublishNote, v))
}

// PublishNoteIn applies the In predicate on the "publish_note" field.
func PublishNoteIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIn(FieldPublishNote, vs...))
}

// PublishNoteNotIn applies the NotIn predicate on the "publish_note" field.
func PublishNoteNotIn(vs ...string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotIn(FieldPublishNote, vs...))
}

// PublishNoteGT applies the GT predicate on the "publish_note" field.
func PublishNoteGT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGT(FieldPublishNote, v))
}

// PublishNoteGTE applies the GTE predicate on the "publish_note" field.
func PublishNoteGTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGTE(FieldPublishNote, v))
}

// PublishNoteLT applies the LT predicate on the "publish_note" field.
func PublishNoteLT(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLT(FieldPublishNote, v))
}

// PublishNoteLTE applies the LTE predicate on the "publish_note" field.
func PublishNoteLTE(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLTE(FieldPublishNote, v))
}

// PublishNoteContains applies the Contains predicate on the "publish_note" field.
func PublishNoteContains(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContains(FieldPublishNote, v))
}

// PublishNoteHasPrefix applies the HasPrefix predicate on the "publish_note" field.
func PublishNoteHasPrefix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasPrefix(FieldPublishNote, v))
}

// PublishNoteHasSuffix applies the HasSuffix predicate on the "publish_note" field.
func PublishNoteHasSuffix(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldHasSuffix(FieldPublishNote, v))
}

// PublishNoteIsNil applies the IsNil predicate on the "publish_note" field.
func PublishNoteIsNil() predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIsNull(FieldPublishNote))
}

// PublishNoteNotNil applies the NotNil predicate on the "publish_note" field.
func PublishNoteNotNil() predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotNull(FieldPublishNote))
}

// PublishNoteEqualFold applies the EqualFold predicate on the "publish_note" field.
func PublishNoteEqualFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEqualFold(FieldPublishNote, v))
}

// PublishNoteContainsFold applies the ContainsFold predicate on the "publish_note" field.
func PublishNoteContainsFold(v string) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldContainsFold(FieldPublishNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBlueprint applies the HasEdge predicate on the "blueprint" edge.
func HasBlueprint() predicate.BlueprintVersion {
	return predicate.BlueprintVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlueprintTable, BlueprintColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlueprintWith applies the HasEdge predicate on the "blueprint" edge with a given conditions (other predicates).
func HasBlueprintWith(preds ...predicate.Blueprint) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(func(s *sql.Selector) {
		step := newBlueprintStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlueprintVersion) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlueprintVersion) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlueprintVersion) predicate.BlueprintVersion {
	return predicate.BlueprintVersion(sql.NotPredicates(p))
}
