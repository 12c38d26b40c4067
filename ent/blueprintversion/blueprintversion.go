// Code generated by ent, DO NOT EDIT.

package blueprintversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the blueprintversion type in the database.
	Label = "blueprint_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "blueprint_version_id"
	// FieldBlueprintID holds the string denoting the blueprint_id field in the database.
	FieldBlueprintID = "blueprint_id"
	// FieldVersionNumber holds the string denoting the version_number field in the database.
	FieldVersionNumber = "version_number"
	// FieldSnapshot holds the string denoting the snapshot field in the database.
	FieldSnapshot = "snapshot"
	// FieldCompiledFlowVersionID holds the string denoting the compiled_flow_version_id field in the database.
	FieldCompiledFlowVersionID = "compiled_flow_version_id"
	// FieldPublishedBy holds the string denoting the published_by field in the database.
	FieldPublishedBy = "published_by"
	// FieldPublishNote holds the string denoting the publish_note field in the database.
	FieldPublishNote = "publish_note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBlueprint holds the string denoting the blueprint edge name in mutations.
	EdgeBlueprint = "blueprint"
	// BlueprintFieldID holds the string denoting the ID field of the Blueprint.
	BlueprintFieldID = "blueprint_id"
	// Table holds the table name of the blueprintversion in the database.
	Table = "blueprint_versions"
	// BlueprintTable is the table that holds the blueprint relation/edge.
	BlueprintTable = "blueprint_versions"
	// BlueprintInverseTable is the table name for the Blueprint entity.
	// It exists in this package in order to avoid circular dependency with the "blueprint" package.
	BlueprintInverseTable = "blueprints"
	// BlueprintColumn is the table column denoting the blueprint relation/edge.
	BlueprintColumn = "blueprint_id"
)

// Columns holds all SQL columns for blueprintversion fields.
var Columns = []string{
	FieldID,
	FieldBlueprintID,
	FieldVersionNumber,
	FieldSnapshot,
	FieldCompiledFlowVersionID,
	FieldPublishedBy,
	FieldPublishNote,
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

// OrderOption defines the ordering options for the BlueprintVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlueprintID orders the results by the blueprint_id field.
func ByBlueprintID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlueprintID, opts...).ToFunc()
}

// ByVersionNumber orders the results by the version_number field.
func ByVersionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNumber, opts...).ToFunc()
}

// ByCompiledFlowVersionID orders the results by the compiled_flow_version_id field.
func ByCompiledFlowVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompiledFlowVersionID, opts...).ToFunc()
}

// ByPublishedBy orders the results by the published_by field.
func ByPublishedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedBy, opts...).ToFunc()
}

// ByPublishNote orders the results by the publish_note field.
func ByPublishNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBlueprintField orders the results by blueprint field.
func ByBlueprintField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlueprintStep(), sql.OrderByField(field, opts...))
	}
}
func newBlueprintStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlueprintInverseTable, BlueprintFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlueprintTable, BlueprintColumn),
	)
}
