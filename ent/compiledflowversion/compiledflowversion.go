// Code generated by ent, DO NOT EDIT.

package compiledflowversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the compiledflowversion type in the database.
	Label = "compiled_flow_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "flow_version_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldBlueprintVersionID holds the string denoting the blueprint_version_id field in the database.
	FieldBlueprintVersionID = "blueprint_version_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeStages holds the string denoting the stages edge name in mutations.
	EdgeStages = "stages"
	// EdgeRules holds the string denoting the rules edge name in mutations.
	EdgeRules = "rules"
	// EdgeRubric holds the string denoting the rubric edge name in mutations.
	EdgeRubric = "rubric"
	// CompiledFlowStageFieldID holds the string denoting the ID field of the CompiledFlowStage.
	CompiledFlowStageFieldID = "compiled_stage_id"
	// CompiledComplianceRuleFieldID holds the string denoting the ID field of the CompiledComplianceRule.
	CompiledComplianceRuleFieldID = "rule_id"
	// CompiledRubricTemplateFieldID holds the string denoting the ID field of the CompiledRubricTemplate.
	CompiledRubricTemplateFieldID = "rubric_id"
	// Table holds the table name of the compiledflowversion in the database.
	Table = "compiled_flow_versions"
	// StagesTable is the table that holds the stages relation/edge.
	StagesTable = "compiled_flow_stages"
	// StagesInverseTable is the table name for the CompiledFlowStage entity.
	// It exists in this package in order to avoid circular dependency with the "compiledflowstage" package.
	StagesInverseTable = "compiled_flow_stages"
	// StagesColumn is the table column denoting the stages relation/edge.
	StagesColumn = "flow_version_id"
	// RulesTable is the table that holds the rules relation/edge.
	RulesTable = "compiled_compliance_rules"
	// RulesInverseTable is the table name for the CompiledComplianceRule entity.
	// It exists in this package in order to avoid circular dependency with the "compiledcompliancerule" package.
	RulesInverseTable = "compiled_compliance_rules"
	// RulesColumn is the table column denoting the rules relation/edge.
	RulesColumn = "flow_version_id"
	// RubricTable is the table that holds the rubric relation/edge.
	RubricTable = "compiled_rubric_templates"
	// RubricInverseTable is the table name for the CompiledRubricTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "compiledrubrictemplate" package.
	RubricInverseTable = "compiled_rubric_templates"
	// RubricColumn is the table column denoting the rubric relation/edge.
	RubricColumn = "flow_version_id"
)

// Columns holds all SQL columns for compiledflowversion fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldBlueprintVersionID,
	FieldName,
	FieldMetadata,
	FieldCreatedAt,
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

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CompiledFlowVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByBlueprintVersionID orders the results by the blueprint_version_id field.
func ByBlueprintVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlueprintVersionID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStagesCount orders the results by stages count.
func ByStagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStagesStep(), opts...)
	}
}

// ByStages orders the results by stages terms.
func ByStages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRulesCount orders the results by rules count.
func ByRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRulesStep(), opts...)
	}
}

// ByRules orders the results by rules terms.
func ByRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRubricField orders the results by rubric field.
func ByRubricField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRubricStep(), sql.OrderByField(field, opts...))
	}
}
func newStagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StagesInverseTable, CompiledFlowStageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StagesTable, StagesColumn),
	)
}
func newRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RulesInverseTable, CompiledComplianceRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RulesTable, RulesColumn),
	)
}
func newRubricStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RubricInverseTable, CompiledRubricTemplateFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, RubricTable, RubricColumn),
	)
}
