package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompiledFlowVersion holds the schema definition for the root compiled
// artifact of one published blueprint version. Immutable once written.
type CompiledFlowVersion struct {
	ent.Schema
}

// Fields of the CompiledFlowVersion.
func (CompiledFlowVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("flow_version_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Immutable(),
		field.String("blueprint_version_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Immutable().
			Comment(`Globally disambiguated: "{name} (bp:{short} v{n})"`),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Immutable().
			Comment("Language, retention hints"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CompiledFlowVersion.
func (CompiledFlowVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", CompiledFlowStage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rules", CompiledComplianceRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rubric", CompiledRubricTemplate.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CompiledFlowVersion.
func (CompiledFlowVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
	}
}
