package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompiledFlowStep holds the schema definition for the compiled form of one
// behavior. Expected phrases are retained even in semantic mode: they feed
// semantic prompts and reviewer context.
type CompiledFlowStep struct {
	ent.Schema
}

// Fields of the CompiledFlowStep.
func (CompiledFlowStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("compiled_step_id").
			Unique().
			Immutable(),
		field.String("compiled_stage_id").
			Immutable(),
		field.String("flow_version_id").
			Immutable().
			Comment("Denormalized for whole-flow loads"),
		field.String("step_name").
			Immutable(),
		field.Text("description").
			Optional().
			Immutable(),
		field.Int("ordering_index").
			Immutable(),
		field.Enum("expected_role").
			Values("agent", "caller").
			Default("agent").
			Immutable(),
		field.JSON("expected_phrases", []string{}).
			Optional().
			Immutable(),
		field.Enum("detection_hint").
			Values("semantic", "exact_phrase", "hybrid").
			Immutable(),
		field.Enum("behavior_type").
			Values("required", "optional", "forbidden", "critical").
			Immutable(),
		field.Enum("critical_action").
			Values("fail_stage", "fail_overall", "flag_only").
			Optional().
			Nillable().
			Immutable(),
		field.Float("weight").
			Default(1).
			Immutable(),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Immutable().
			Comment("Language/example metadata, carried verbatim from authoring"),
	}
}

// Edges of the CompiledFlowStep.
func (CompiledFlowStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stage", CompiledFlowStage.Type).
			Ref("steps").
			Field("compiled_stage_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CompiledFlowStep.
func (CompiledFlowStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flow_version_id"),
		index.Fields("compiled_stage_id", "ordering_index").
			Unique(),
	}
}
