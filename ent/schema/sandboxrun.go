package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/callscope-ai/callscope/pkg/models"
)

// SandboxRun holds the schema definition for a non-persisting pipeline run
// used to preview a blueprint's effect. Mirrors Evaluation but is not tied
// to a Recording's lifecycle; keyed by an optional idempotency token.
type SandboxRun struct {
	ent.Schema
}

// Fields of the SandboxRun.
func (SandboxRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sandbox_run_id").
			Unique().
			Immutable(),
		field.String("blueprint_id").
			Immutable(),
		field.String("compiled_flow_version_id").
			Optional().
			Comment("Filled in once compilation resolves"),
		field.String("recording_id").
			Optional().
			Immutable(),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.JSON("transcript_snapshot", &models.Transcript{}).
			Optional().
			Comment("Redacted copy of the input transcript"),
		field.JSON("result", &models.SandboxResult{}).
			Optional(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the SandboxRun.
func (SandboxRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id"),
		index.Fields("status"),
		index.Fields("idempotency_key").
			Unique().
			Annotations(entsql.IndexWhere("idempotency_key IS NOT NULL")),
	}
}
