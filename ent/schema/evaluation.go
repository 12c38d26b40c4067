package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/callscope-ai/callscope/pkg/models"
)

// Evaluation holds the schema definition for the terminal scorecard produced
// for one recording against one blueprint. Status progresses
// pending -> completed | failed and never loops.
type Evaluation struct {
	ent.Schema
}

// Fields of the Evaluation.
func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evaluation_id").
			Unique().
			Immutable(),
		field.String("recording_id").
			Immutable(),
		field.String("blueprint_id").
			Immutable(),
		field.String("compiled_flow_version_id").
			Optional(),
		field.Enum("status").
			Values("pending", "completed", "failed").
			Default("pending"),
		field.Int("overall_score").
			Optional().
			Nillable(),
		field.Bool("overall_passed").
			Optional().
			Nillable(),
		field.Bool("requires_human_review").
			Optional().
			Nillable(),
		field.Float("confidence_score").
			Optional().
			Nillable(),
		field.JSON("deterministic_results", &models.DeterministicResults{}).
			Optional(),
		field.JSON("llm_stage_evaluations", []models.StageEvaluation{}).
			Optional(),
		field.JSON("final_evaluation", &models.FinalEvaluation{}).
			Optional(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable().
			Comment("Truncated before storage"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Evaluation.
func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recording", Recording.Type).
			Ref("evaluations").
			Field("recording_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Evaluation.
func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id"),
		index.Fields("status"),
		// One live evaluation per recording.
		index.Fields("recording_id").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
	}
}
