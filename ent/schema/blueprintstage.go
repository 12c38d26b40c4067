package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlueprintStage holds the schema definition for one ordered stage within an
// authoring blueprint (e.g. "Opening", "Discovery").
type BlueprintStage struct {
	ent.Schema
}

// Fields of the BlueprintStage.
func (BlueprintStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_id").
			Unique().
			Immutable(),
		field.String("blueprint_id").
			Immutable(),
		field.String("stage_name"),
		field.Int("ordering_index").
			Comment("Position within the blueprint: 0, 1, 2..."),
		field.Float("stage_weight").
			Optional().
			Nillable().
			Comment("0-100; optional, normalized at publish"),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("Opaque author metadata, carried into compiled artifacts"),
	}
}

// Edges of the BlueprintStage.
func (BlueprintStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("blueprint", Blueprint.Type).
			Ref("stages").
			Field("blueprint_id").
			Unique().
			Required().
			Immutable(),
		edge.To("behaviors", BlueprintBehavior.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BlueprintStage.
func (BlueprintStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id", "ordering_index").
			Unique(),
		index.Fields("blueprint_id", "stage_name").
			Unique(),
	}
}
