package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Recording holds the schema definition for an uploaded call recording.
type Recording struct {
	ent.Schema
}

// Fields of the Recording.
func (Recording) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recording_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Immutable(),
		field.String("audio_url").
			Comment("Object-store path; resolved to a signed URL for ASR"),
		field.Enum("status").
			Values("queued", "processing", "completed", "failed").
			Default("queued"),
		field.Float("duration_s").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Recording.
func (Recording) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transcript", Transcript.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluations", Evaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Recording.
func (Recording) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("status"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
