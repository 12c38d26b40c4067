// Code generated by ent, DO NOT EDIT.

package compiledflowstage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the compiledflowstage type in the database.
	Label = "compiled_flow_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "compiled_stage_id"
	// FieldFlowVersionID holds the string denoting the flow_version_id field in the database.
	FieldFlowVersionID = "flow_version_id"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldOrderingIndex holds the string denoting the ordering_index field in the database.
	FieldOrderingIndex = "ordering_index"
	// FieldStageWeight holds the string denoting the stage_weight field in the database.
	FieldStageWeight = "stage_weight"
	// EdgeFlowVersion holds the string denoting the flow_version edge name in mutations.
	EdgeFlowVersion = "flow_version"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// CompiledFlowVersionFieldID holds the string denoting the ID field of the CompiledFlowVersion.
	CompiledFlowVersionFieldID = "flow_version_id"
	// CompiledFlowStepFieldID holds the string denoting the ID field of the CompiledFlowStep.
	CompiledFlowStepFieldID = "compiled_step_id"
	// Table holds the table name of the compiledflowstage in the database.
	Table = "compiled_flow_stages"
	// FlowVersionTable is the table that holds the flow_version relation/edge.
	FlowVersionTable = "compiled_flow_stages"
	// FlowVersionInverseTable is the table name for the CompiledFlowVersion entity.
	// It exists in this package in order to avoid circular dependency with the "compiledflowversion" package.
	FlowVersionInverseTable = "compiled_flow_versions"
	// FlowVersionColumn is the table column denoting the flow_version relation/edge.
	FlowVersionColumn = "flow_version_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "compiled_flow_steps"
	// StepsInverseTable is the table name for the CompiledFlowStep entity.
	// It exists in this package in order to avoid circular dependency with the "compiledflowstep" package.
	StepsInverseTable = "compiled_flow_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "compiled_stage_id"
)

// Columns holds all SQL columns for compiledflowstage fields.
var Columns = []string{
	FieldID,
	FieldFlowVersionID,
	FieldStageName,
	FieldOrderingIndex,
	FieldStageWeight,
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

// OrderOption defines the ordering options for the CompiledFlowStage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFlowVersionID orders the results by the flow_version_id field.
func ByFlowVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowVersionID, opts...).ToFunc()
}

// ByStageName orders the results by the stage_name field.
func ByStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageName, opts...).ToFunc()
}

// ByOrderingIndex orders the results by the ordering_index field.
func ByOrderingIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderingIndex, opts...).ToFunc()
}

// ByStageWeight orders the results by the stage_weight field.
func ByStageWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageWeight, opts...).ToFunc()
}

// ByFlowVersionField orders the results by flow_version field.
func ByFlowVersionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlowVersionStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFlowVersionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlowVersionInverseTable, CompiledFlowVersionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FlowVersionTable, FlowVersionColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, CompiledFlowStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
