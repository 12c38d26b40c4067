package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/callscope-ai/callscope/pkg/models"
)

// Transcript holds the schema definition for a recording's diarized
// transcript, produced by the ASR collaborator.
type Transcript struct {
	ent.Schema
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.String("recording_id").
			Unique().
			Immutable(),
		field.Text("transcript_text").
			Comment("Full text (full-text searchable)"),
		field.JSON("diarized_segments", []models.Segment{}),
		field.JSON("sentiment_analysis", []models.SentimentSpan{}).
			Optional(),
		field.Float("asr_confidence").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Transcript.
func (Transcript) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recording", Recording.Type).
			Ref("transcript").
			Field("recording_id").
			Unique().
			Required().
			Immutable(),
	}
}
