// Code generated by ent, DO NOT EDIT.

package blueprintbehavior

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the blueprintbehavior type in the database.
	Label = "blueprint_behavior"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "behavior_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldBehaviorName holds the string denoting the behavior_name field in the database.
	FieldBehaviorName = "behavior_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldBehaviorType holds the string denoting the behavior_type field in the database.
	FieldBehaviorType = "behavior_type"
	// FieldDetectionMode holds the string denoting the detection_mode field in the database.
	FieldDetectionMode = "detection_mode"
	// FieldPhrases holds the string denoting the phrases field in the database.
	FieldPhrases = "phrases"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldCriticalAction holds the string denoting the critical_action field in the database.
	FieldCriticalAction = "critical_action"
	// FieldUIOrder holds the string denoting the ui_order field in the database.
	FieldUIOrder = "ui_order"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// EdgeStage holds the string denoting the stage edge name in mutations.
	EdgeStage = "stage"
	// BlueprintStageFieldID holds the string denoting the ID field of the BlueprintStage.
	BlueprintStageFieldID = "stage_id"
	// Table holds the table name of the blueprintbehavior in the database.
	Table = "blueprint_behaviors"
	// StageTable is the table that holds the stage relation/edge.
	StageTable = "blueprint_behaviors"
	// StageInverseTable is the table name for the BlueprintStage entity.
	// It exists in this package in order to avoid circular dependency with the "blueprintstage" package.
	StageInverseTable = "blueprint_stages"
	// StageColumn is the table column denoting the stage relation/edge.
	StageColumn = "stage_id"
)

// Columns holds all SQL columns for blueprintbehavior fields.
var Columns = []string{
	FieldID,
	FieldStageID,
	FieldBehaviorName,
	FieldDescription,
	FieldBehaviorType,
	FieldDetectionMode,
	FieldPhrases,
	FieldWeight,
	FieldCriticalAction,
	FieldUIOrder,
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

var (
	// DefaultWeight holds the default value on creation for the "weight" field.
	DefaultWeight float64
	// DefaultUIOrder holds the default value on creation for the "ui_order" field.
	DefaultUIOrder int
)

// BehaviorType defines the type for the "behavior_type" enum field.
type BehaviorType string

// BehaviorType values.
const (
	BehaviorTypeRequired  BehaviorType = "required"
	BehaviorTypeOptional  BehaviorType = "optional"
	BehaviorTypeForbidden BehaviorType = "forbidden"
	BehaviorTypeCritical  BehaviorType = "critical"
)

func (bt BehaviorType) String() string {
	return string(bt)
}

// BehaviorTypeValidator is a validator for the "behavior_type" field enum values. It is called by the builders before save.
func BehaviorTypeValidator(bt BehaviorType) error {
	switch bt {
	case BehaviorTypeRequired, BehaviorTypeOptional, BehaviorTypeForbidden, BehaviorTypeCritical:
		return nil
	default:
		return fmt.Errorf("blueprintbehavior: invalid enum value for behavior_type field: %q", bt)
	}
}

// DetectionMode defines the type for the "detection_mode" enum field.
type DetectionMode string

// DetectionMode values.
const (
	DetectionModeSemantic    DetectionMode = "semantic"
	DetectionModeExactPhrase DetectionMode = "exact_phrase"
	DetectionModeHybrid      DetectionMode = "hybrid"
)

func (dm DetectionMode) String() string {
	return string(dm)
}

// DetectionModeValidator is a validator for the "detection_mode" field enum values. It is called by the builders before save.
func DetectionModeValidator(dm DetectionMode) error {
	switch dm {
	case DetectionModeSemantic, DetectionModeExactPhrase, DetectionModeHybrid:
		return nil
	default:
		return fmt.Errorf("blueprintbehavior: invalid enum value for detection_mode field: %q", dm)
	}
}

// CriticalAction defines the type for the "critical_action" enum field.
type CriticalAction string

// CriticalAction values.
const (
	CriticalActionFailStage   CriticalAction = "fail_stage"
	CriticalActionFailOverall CriticalAction = "fail_overall"
	CriticalActionFlagOnly    CriticalAction = "flag_only"
)

func (ca CriticalAction) String() string {
	return string(ca)
}

// CriticalActionValidator is a validator for the "critical_action" field enum values. It is called by the builders before save.
func CriticalActionValidator(ca CriticalAction) error {
	switch ca {
	case CriticalActionFailStage, CriticalActionFailOverall, CriticalActionFlagOnly:
		return nil
	default:
		return fmt.Errorf("blueprintbehavior: invalid enum value for critical_action field: %q", ca)
	}
}

// OrderOption defines the ordering options for the BlueprintBehavior queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByBehaviorName orders the results by the behavior_name field.
func ByBehaviorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehaviorName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByBehaviorType orders the results by the behavior_type field.
func ByBehaviorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehaviorType, opts...).ToFunc()
}

// ByDetectionMode orders the results by the detection_mode field.
func ByDetectionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectionMode, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByCriticalAction orders the results by the critical_action field.
func ByCriticalAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalAction, opts...).ToFunc()
}

// ByUIOrder orders the results by the ui_order field.
func ByUIOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUIOrder, opts...).ToFunc()
}

// ByStageField orders the results by stage field.
func ByStageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageStep(), sql.OrderByField(field, opts...))
	}
}
func newStageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageInverseTable, BlueprintStageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
	)
}
