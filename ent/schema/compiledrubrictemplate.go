package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/callscope-ai/callscope/pkg/models"
)

// CompiledRubricTemplate holds the schema definition for the scoring rubric
// of a compiled flow version. Categories and step mappings are owned
// documents: nothing outside the rubric references them.
type CompiledRubricTemplate struct {
	ent.Schema
}

// Fields of the CompiledRubricTemplate.
func (CompiledRubricTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rubric_id").
			Unique().
			Immutable(),
		field.String("flow_version_id").
			Unique().
			Immutable(),
		field.JSON("categories", []models.RubricCategory{}).
			Immutable(),
		field.JSON("mappings", []models.RubricMapping{}).
			Immutable(),
	}
}

// Edges of the CompiledRubricTemplate.
func (CompiledRubricTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("flow_version", CompiledFlowVersion.Type).
			Ref("rubric").
			Field("flow_version_id").
			Unique().
			Required().
			Immutable(),
	}
}
