package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for a queued background task. The jobs
// table is the queue: workers claim pending rows with
// FOR UPDATE SKIP LOCKED and idempotency keys make duplicate enqueues no-ops.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("compile_blueprint", "evaluate_recording", "sandbox_evaluate").
			Immutable(),
		field.String("idempotency_key").
			Unique().
			Immutable().
			Comment(`"compile-{version_id}", "evaluate-{recording_id}", "sandbox-{run_id}"`),
		field.JSON("payload", map[string]any{}),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "timed_out", "cancelled").
			Default("pending"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Int("attempts").
			Default(0),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("run_after").
			Optional().
			Nillable().
			Comment("Delayed dispatch"),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("kind", "status"),
	}
}
