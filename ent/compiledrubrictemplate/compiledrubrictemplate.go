// Code generated by ent, DO NOT EDIT.

package compiledrubrictemplate

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the compiledrubrictemplate type in the database.
	Label = "compiled_rubric_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rubric_id"
	// FieldFlowVersionID holds the string denoting the flow_version_id field in the database.
	FieldFlowVersionID = "flow_version_id"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories"
	// FieldMappings holds the string denoting the mappings field in the database.
	FieldMappings = "mappings"
	// EdgeFlowVersion holds the string denoting the flow_version edge name in mutations.
	EdgeFlowVersion = "flow_version"
	// CompiledFlowVersionFieldID holds the string denoting the ID field of the CompiledFlowVersion.
	CompiledFlowVersionFieldID = "flow_version_id"
	// Table holds the table name of the compiledrubrictemplate in the database.
	Table = "compiled_rubric_templates"
	// FlowVersionTable is the table that holds the flow_version relation/edge.
	FlowVersionTable = "compiled_rubric_templates"
	// FlowVersionInverseTable is the table name for the CompiledFlowVersion entity.
	// It exists in this package in order to avoid circular dependency with the "compiledflowversion" package.
	FlowVersionInverseTable = "compiled_flow_versions"
	// FlowVersionColumn is the table column denoting the flow_version relation/edge.
	FlowVersionColumn = "flow_version_id"
)

// Columns holds all SQL columns for compiledrubrictemplate fields.
var Columns = []string{
	FieldID,
	FieldFlowVersionID,
	FieldCategories,
	FieldMappings,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the CompiledRubricTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFlowVersionID orders the results by the flow_version_id field.
func ByFlowVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowVersionID, opts...).ToFunc()
}

// ByFlowVersionField orders the results by flow_version field.
func ByFlowVersionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlowVersionStep(), sql.OrderByField(field, opts...))
	}
}
func newFlowVersionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlowVersionInverseTable, CompiledFlowVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, FlowVersionTable, FlowVersionColumn),
	)
}
