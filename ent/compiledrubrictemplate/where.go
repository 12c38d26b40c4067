// Code generated by ent, DO NOT EDIT.

package compiledrubrictemplate

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldContainsFold(FieldID, id))
}

// FlowVersionID applies equality check predicate on the "flow_version_id" field. It's identical to FlowVersionIDEQ.
func FlowVersionID(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldEQ(FieldFlowVersionID, v))
}

// FlowVersionIDEQ applies the EQ predicate on the "flow_version_id" field.
func FlowVersionIDEQ(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldEQ(FieldFlowVersionID, v))
}

// FlowVersionIDNEQ applies the NEQ predicate on the "flow_version_id" field.
func FlowVersionIDNEQ(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldNEQ(FieldFlowVersionID, v))
}

// FlowVersionIDIn applies the In predicate on the "flow_version_id" field.
func FlowVersionIDIn(vs ...string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDNotIn applies the NotIn predicate on the "flow_version_id" field.
func FlowVersionIDNotIn(vs ...string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldNotIn(FieldFlowVersionID, vs...))
}

// FlowVersionIDGT applies the GT predicate on the "flow_version_id" field.
func FlowVersionIDGT(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldGT(FieldFlowVersionID, v))
}

// FlowVersionIDGTE applies the GTE predicate on the "flow_version_id" field.
func FlowVersionIDGTE(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldGTE(FieldFlowVersionID, v))
}

// FlowVersionIDLT applies the LT predicate on the "flow_version_id" field.
func FlowVersionIDLT(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldLT(FieldFlowVersionID, v))
}

// FlowVersionIDLTE applies the LTE predicate on the "flow_version_id" field.
func FlowVersionIDLTE(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldLTE(FieldFlowVersionID, v))
}

// FlowVersionIDContains applies the Contains predicate on the "flow_version_id" field.
func FlowVersionIDContains(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldContains(FieldFlowVersionID, v))
}

// FlowVersionIDHasPrefix applies the HasPrefix predicate on the "flow_version_id" field.
func FlowVersionIDHasPrefix(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldHasPrefix(FieldFlowVersionID, v))
}

// FlowVersionIDHasSuffix applies the HasSuffix predicate on the "flow_version_id" field.
func FlowVersionIDHasSuffix(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldHasSuffix(FieldFlowVersionID, v))
}

// FlowVersionIDEqualFold applies the EqualFold predicate on the "flow_version_id" field.
func FlowVersionIDEqualFold(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldEqualFold(FieldFlowVersionID, v))
}

// FlowVersionIDContainsFold applies the ContainsFold predicate on the "flow_version_id" field.
func FlowVersionIDContainsFold(v string) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.FieldContainsFold(FieldFlowVersionID, v))
}

// HasFlowVersion applies the HasEdge predicate on the "flow_version" edge.
func HasFlowVersion() predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, FlowVersionTable, FlowVersionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlowVersionWith applies the HasEdge predicate on the "flow_version" edge with a given conditions (other predicates).
func HasFlowVersionWith(preds ...predicate.CompiledFlowVersion) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(func(s *sql.Selector) {
		step := newFlowVersionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompiledRubricTemplate) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompiledRubricTemplate) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompiledRubricTemplate) predicate.CompiledRubricTemplate {
	return predicate.CompiledRubricTemplate(sql.NotPredicates(p))
}
