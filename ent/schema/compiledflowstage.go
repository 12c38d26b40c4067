package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompiledFlowStage holds the schema definition for one ordered stage within
// a compiled flow version.
type CompiledFlowStage struct {
	ent.Schema
}

// Fields of the CompiledFlowStage.
func (CompiledFlowStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("compiled_stage_id").
			Unique().
			Immutable(),
		field.String("flow_version_id").
			Immutable(),
		field.String("stage_name").
			Immutable(),
		field.Int("ordering_index").
			Immutable(),
		field.Float("stage_weight").
			Optional().
			Nillable().
			Immutable().
			Comment("Normalized; nil when rubric distributes evenly"),
	}
}

// Edges of the CompiledFlowStage.
func (CompiledFlowStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("flow_version", CompiledFlowVersion.Type).
			Ref("stages").
			Field("flow_version_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", CompiledFlowStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CompiledFlowStage.
func (CompiledFlowStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flow_version_id", "ordering_index").
			Unique(),
	}
}
