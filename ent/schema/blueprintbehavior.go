package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlueprintBehavior holds the schema definition for one expected (or
// forbidden) agent behavior within a stage.
type BlueprintBehavior struct {
	ent.Schema
}

// Fields of the BlueprintBehavior.
func (BlueprintBehavior) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("behavior_id").
			Unique().
			Immutable(),
		field.String("stage_id").
			Immutable(),
		field.String("behavior_name"),
		field.Text("description").
			Optional(),
		field.Enum("behavior_type").
			Values("required", "optional", "forbidden", "critical"),
		field.Enum("detection_mode").
			Values("semantic", "exact_phrase", "hybrid"),
		field.JSON("phrases", []string{}).
			Optional().
			Comment("Required when detection_mode != semantic"),
		field.Float("weight").
			Default(1).
			Comment(">= 0"),
		field.Enum("critical_action").
			Values("fail_stage", "fail_overall", "flag_only").
			Optional().
			Nillable().
			Comment("Required when behavior_type = critical"),
		field.Int("ui_order").
			Default(0),
		field.JSON("metadata", map[string]any{}).
			Optional(),
	}
}

// Edges of the BlueprintBehavior.
func (BlueprintBehavior) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stage", BlueprintStage.Type).
			Ref("behaviors").
			Field("stage_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BlueprintBehavior.
func (BlueprintBehavior) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage_id", "behavior_name").
			Unique(),
	}
}
