// Code generated by ent, DO NOT EDIT.

package compiledflowstep

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the compiledflowstep type in the database.
	Label = "compiled_flow_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "compiled_step_id"
	// FieldCompiledStageID holds the string denoting the compiled_stage_id field in the database.
	FieldCompiledStageID = "compiled_stage_id"
	// FieldFlowVersionID holds the string denoting the flow_version_id field in the database.
	FieldFlowVersionID = "flow_version_id"
	// FieldStepName holds the string denoting the step_name field in the database.
	FieldStepName = "step_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldOrderingIndex holds the string denoting the ordering_index field in the database.
	FieldOrderingIndex = "ordering_index"
	// FieldExpectedRole holds the string denoting the expected_role field in the database.
	FieldExpectedRole = "expected_role"
	// FieldExpectedPhrases holds the string denoting the expected_phrases field in the database.
	FieldExpectedPhrases = "expected_phrases"
	// FieldDetectionHint holds the string denoting the detection_hint field in the database.
	FieldDetectionHint = "detection_hint"
	// FieldBehaviorType holds the string denoting the behavior_type field in the database.
	FieldBehaviorType = "behavior_type"
	// FieldCriticalAction holds the string denoting the critical_action field in the database.
	FieldCriticalAction = "critical_action"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// EdgeStage holds the string denoting the stage edge name in mutations.
	EdgeStage = "stage"
	// CompiledFlowStageFieldID holds the string denoting the ID field of the CompiledFlowStage.
	CompiledFlowStageFieldID = "compiled_stage_id"
	// Table holds the table name of the compiledflowstep in the database.
	Table = "compiled_flow_steps"
	// StageTable is the table that holds the stage relation/edge.
	StageTable = "compiled_flow_steps"
	// StageInverseTable is the table name for the CompiledFlowStage entity.
	// It exists in this package in order to avoid circular dependency with the "compiledflowstage" package.
	StageInverseTable = "compiled_flow_stages"
	// StageColumn is the table column denoting the stage relation/edge.
	StageColumn = "compiled_stage_id"
)

// Columns holds all SQL columns for compiledflowstep fields.
var Columns = []string{
	FieldID,
	FieldCompiledStageID,
	FieldFlowVersionID,
	FieldStepName,
	FieldDescription,
	FieldOrderingIndex,
	FieldExpectedRole,
	FieldExpectedPhrases,
	FieldDetectionHint,
	FieldBehaviorType,
	FieldCriticalAction,
	FieldWeight,
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
)

// ExpectedRole defines the type for the "expected_role" enum field.
type ExpectedRole string

// ExpectedRoleAgent is the default value of the ExpectedRole enum.
const DefaultExpectedRole = ExpectedRoleAgent

// ExpectedRole values.
const (
	ExpectedRoleAgent  ExpectedRole = "agent"
	ExpectedRoleCaller ExpectedRole = "caller"
)

func (er ExpectedRole) String() string {
	return string(er)
}

// ExpectedRoleValidator is a validator for the "expected_role" field enum values. It is called by the builders before save.
func ExpectedRoleValidator(er ExpectedRole) error {
	switch er {
	case ExpectedRoleAgent, ExpectedRoleCaller:
		return nil
	default:
		return fmt.Errorf("compiledflowstep: invalid enum value for expected_role field: %q", er)
	}
}

// DetectionHint defines the type for the "detection_hint" enum field.
type DetectionHint string

// DetectionHint values.
const (
	DetectionHintSemantic    DetectionHint = "semantic"
	DetectionHintExactPhrase DetectionHint = "exact_phrase"
	DetectionHintHybrid      DetectionHint = "hybrid"
)

func (dh DetectionHint) String() string {
	return string(dh)
}

// DetectionHintValidator is a validator for the "detection_hint" field enum values. It is called by the builders before save.
func DetectionHintValidator(dh DetectionHint) error {
	switch dh {
	case DetectionHintSemantic, DetectionHintExactPhrase, DetectionHintHybrid:
		return nil
	default:
		return fmt.Errorf("compiledflowstep: invalid enum value for detection_hint field: %q", dh)
	}
}

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
		return fmt.Errorf("compiledflowstep: invalid enum value for behavior_type field: %q", bt)
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
		return fmt.Errorf("compiledflowstep: invalid enum value for critical_action field: %q", ca)
	}
}

// OrderOption defines the ordering options for the CompiledFlowStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompiledStageID orders the results by the compiled_stage_id field.
func ByCompiledStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompiledStageID, opts...).ToFunc()
}

// ByFlowVersionID orders the results by the flow_version_id field.
func ByFlowVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowVersionID, opts...).ToFunc()
}

// ByStepName orders the results by the step_name field.
func ByStepName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOrderingIndex orders the results by the ordering_index field.
func ByOrderingIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderingIndex, opts...).ToFunc()
}

// ByExpectedRole orders the results by the expected_role field.
func ByExpectedRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedRole, opts...).ToFunc()
}

// ByDetectionHint orders the results by the detection_hint field.
func ByDetectionHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectionHint, opts...).ToFunc()
}

// ByBehaviorType orders the results by the behavior_type field.
func ByBehaviorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehaviorType, opts...).ToFunc()
}

// ByCriticalAction orders the results by the critical_action field.
func ByCriticalAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalAction, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
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
		sqlgraph.To(StageInverseTable, CompiledFlowStageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
	)
}
