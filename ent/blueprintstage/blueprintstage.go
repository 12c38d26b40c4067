// Code generated by ent, DO NOT EDIT.

package blueprintstage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the blueprintstage type in the database.
	Label = "blueprint_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_id"
	// FieldBlueprintID holds the string denoting the blueprint_id field in the database.
	FieldBlueprintID = "blueprint_id"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldOrderingIndex holds the string denoting the ordering_index field in the database.
	FieldOrderingIndex = "ordering_index"
	// FieldStageWeight holds the string denoting the stage_weight field in the database.
	FieldStageWeight = "stage_weight"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// EdgeBlueprint holds the string denoting the blueprint edge name in mutations.
	EdgeBlueprint = "blueprint"
	// EdgeBehaviors holds the string denoting the behaviors edge name in mutations.
	EdgeBehaviors = "behaviors"
	// BlueprintFieldID holds the string denoting the ID field of the Blueprint.
	BlueprintFieldID = "blueprint_id"
	// BlueprintBehaviorFieldID holds the string denoting the ID field of the BlueprintBehavior.
	BlueprintBehaviorFieldID = "behavior_id"
	// Table holds the table name of the blueprintstage in the database.
	Table = "blueprint_stages"
	// BlueprintTable is the table that holds the blueprint relation/edge.
	BlueprintTable = "blueprint_stages"
	// BlueprintInverseTable is the table name for the Blueprint entity.
	// It exists in this package in order to avoid circular dependency with the "blueprint" package.
	BlueprintInverseTable = "blueprints"
	// BlueprintColumn is the table column denoting the blueprint relation/edge.
	BlueprintColumn = "blueprint_id"
	// BehaviorsTable is the table that holds the behaviors relation/edge.
	BehaviorsTable = "blueprint_behaviors"
	// BehaviorsInverseTable is the table name for the BlueprintBehavior entity.
	// It exists in this package in order to avoid circular dependency with the "blueprintbehavior" package.
	BehaviorsInverseTable = "blueprint_behaviors"
	// BehaviorsColumn is the table column denoting the behaviors relation/edge.
	BehaviorsColumn = "stage_id"
)

// Columns holds all SQL columns for blueprintstage fields.
var Columns = []string{
	FieldID,
	FieldBlueprintID,
	FieldStageName,
	FieldOrderingIndex,
	FieldStageWeight,
	FieldMetadata,
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

// OrderOption defines the ordering options for the BlueprintStage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlueprintID orders the results by the blueprint_id field.
func ByBlueprintID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlueprintID, opts...).ToFunc()
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

// ByBlueprintField orders the results by blueprint field.
func ByBlueprintField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlueprintStep(), sql.OrderByField(field, opts...))
	}
}

// ByBehaviorsCount orders the results by behaviors count.
func ByBehaviorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBehaviorsStep(), opts...)
	}
}

// ByBehaviors orders the results by behaviors terms.
func ByBehaviors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBehaviorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBlueprintStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlueprintInverseTable, BlueprintFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlueprintTable, BlueprintColumn),
	)
}
func newBehaviorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BehaviorsInverseTable, BlueprintBehaviorFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BehaviorsTable, BehaviorsColumn),
	)
}
