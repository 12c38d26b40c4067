package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Blueprint holds the schema definition for the Blueprint entity.
// A blueprint is the author-editable definition of how a call should go and
// how it is scored. It is mutable until published.
type Blueprint struct {
	ent.Schema
}

// Fields of the Blueprint.
func (Blueprint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blueprint_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Immutable().
			Comment("Tenant identifier"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("draft", "published", "archived").
			Default("draft"),
		field.Int("version_number").
			Default(1).
			Comment("Incremented on each publish"),
		field.String("compiled_flow_version_id").
			Optional().
			Nillable().
			Comment("Set after a successful compile of the latest version"),
		field.String("language").
			Optional().
			Comment("Language hint, e.g. 'en'"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Blueprint.
func (Blueprint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", BlueprintStage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("versions", BlueprintVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Blueprint.
func (Blueprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("status"),
		index.Fields("company_id", "name"),
	}
}
