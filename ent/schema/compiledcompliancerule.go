package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/callscope-ai/callscope/pkg/models"
)

// CompiledComplianceRule holds the schema definition for one deterministic
// compliance rule belonging to a compiled flow version.
type CompiledComplianceRule struct {
	ent.Schema
}

// Fields of the CompiledComplianceRule.
func (CompiledComplianceRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("flow_version_id").
			Immutable(),
		field.Enum("rule_type").
			Values("required_phrase", "forbidden_phrase", "required_step",
				"sequence_rule", "timing_rule", "verification_rule", "conditional_rule").
			Immutable(),
		field.String("target_step_id").
			Optional().
			Immutable(),
		field.JSON("phrases", []string{}).
			Optional().
			Immutable(),
		field.Enum("match_mode").
			Values("exact", "contains", "regex", "semantic", "hybrid").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("severity").
			Values("critical", "major", "minor").
			Immutable(),
		field.Enum("action_on_fail").
			Values("fail_stage", "fail_overall", "flag_only").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("timing_constraints", &models.TimingConstraints{}).
			Optional().
			Immutable(),
		field.JSON("params", map[string]any{}).
			Optional().
			Immutable().
			Comment("Rule-type specific parameters (sequence/verification/conditional)"),
	}
}

// Edges of the CompiledComplianceRule.
func (CompiledComplianceRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("flow_version", CompiledFlowVersion.Type).
			Ref("rules").
			Field("flow_version_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CompiledComplianceRule.
func (CompiledComplianceRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flow_version_id", "rule_type"),
		index.Fields("target_step_id"),
	}
}
