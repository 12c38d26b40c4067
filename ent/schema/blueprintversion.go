package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/callscope-ai/callscope/pkg/models"
)

// BlueprintVersion holds the schema definition for an immutable snapshot of a
// blueprint, created on publish. The snapshot is the compiler's only input.
type BlueprintVersion struct {
	ent.Schema
}

// Fields of the BlueprintVersion.
func (BlueprintVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blueprint_version_id").
			Unique().
			Immutable(),
		field.String("blueprint_id").
			Immutable(),
		field.Int("version_number").
			Immutable(),
		field.JSON("snapshot", &models.BlueprintSnapshot{}).
			Immutable().
			Comment("Entire normalized blueprint at publish time"),
		field.String("compiled_flow_version_id").
			Optional().
			Nillable().
			Comment("Set once compilation succeeds; makes compile idempotent"),
		field.String("published_by").
			Optional().
			Immutable(),
		field.String("publish_note").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BlueprintVersion.
func (BlueprintVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("blueprint", Blueprint.Type).
			Ref("versions").
			Field("blueprint_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BlueprintVersion.
func (BlueprintVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id", "version_number").
			Unique(),
	}
}
