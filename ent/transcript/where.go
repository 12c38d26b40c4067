// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldID, id))
}

// RecordingID applies equality check predicate on the "recording_id" field. It's identical to RecordingIDEQ.
func RecordingID(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldRecordingID, v))
}

// TranscriptText applies equality check predicate on the "transcript_text" field. It's identical to TranscriptTextEQ.
func TranscriptText(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTranscriptText, v))
}

// AsrConfidence applies equality check predicate on the "asr_confidence" field. It's identical to AsrConfidenceEQ.
func AsrConfidence(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldAsrConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// RecordingIDEQ applies the EQ predicate on the "recording_id" field.
func RecordingIDEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldRecordingID, v))
}

// RecordingIDNEQ applies the NEQ predicate on the "recording_id" field.
func RecordingIDNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldRecordingID, v))
}

// RecordingIDIn applies the In predicate on the "recording_id" field.
func RecordingIDIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldRecordingID, vs...))
}

// RecordingIDNotIn applies the NotIn predicate on the "recording_id" field.
func RecordingIDNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldRecordingID, vs...))
}

// RecordingIDGT applies the GT predicate on the "recording_id" field.
func RecordingIDGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldRecordingID, v))
}

// RecordingIDGTE applies the GTE predicate on the "recording_id" field.
func RecordingIDGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldRecordingID, v))
}

// RecordingIDLT applies the LT predicate on the "recording_id" field.
func RecordingIDLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldRecordingID, v))
}

// RecordingIDLTE applies the LTE predicate on the "recording_id" field.
func RecordingIDLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldRecordingID, v))
}

// RecordingIDContains applies the Contains predicate on the "recording_id" field.
func RecordingIDContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldRecordingID, v))
}

// RecordingIDHasPrefix applies the HasPrefix predicate on the "recording_id" field.
func RecordingIDHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldRecordingID, v))
}

// RecordingIDHasSuffix applies the HasSuffix predicate on the "recording_id" field.
func RecordingIDHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldRecordingID, v))
}

// RecordingIDEqualFold applies the EqualFold predicate on the "recording_id" field.
func RecordingIDEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldRecordingID, v))
}

// RecordingIDContainsFold applies the ContainsFold predicate on the "recording_id" field.
func RecordingIDContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldRecordingID, v))
}

// TranscriptTextEQ applies the EQ predicate on the "transcript_text" field.
func TranscriptTextEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTranscriptText, v))
}

// TranscriptTextNEQ applies the NEQ predicate on the "transcript_text" field.
func TranscriptTextNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTranscriptText, v))
}

// TranscriptTextIn applies the In predicate on the "transcript_text" field.
func TranscriptTextIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTranscriptText, vs...))
}

// TranscriptTextNotIn applies the NotIn predicate on the "transcript_text" field.
func TranscriptTextNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTranscriptText, vs...))
}

// TranscriptTextGT applies the GT predicate on the "transcript_text" field.
func TranscriptTextGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTranscriptText, v))
}

// TranscriptTextGTE applies the GTE predicate on the "transcript_text" field.
func TranscriptTextGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTranscriptText, v))
}

// TranscriptTextLT applies the LT predicate on the "transcript_text" field.
func TranscriptTextLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTranscriptText, v))
}

// TranscriptTextLTE applies the LTE predicate on the "transcript_text" field.
func TranscriptTextLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTranscriptText, v))
}

// TranscriptTextContains applies the Contains predicate on the "transcript_text" field.
func TranscriptTextContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldTranscriptText, v))
}

// TranscriptTextHasPrefix applies the HasPrefix predicate on the "transcript_text" field.
func TranscriptTextHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldTranscriptText, v))
}

// TranscriptTextHasSuffix applies the HasSuffix predicate on the "transcript_text" field.
func TranscriptTextHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldTranscriptText, v))
}

// TranscriptTextEqualFold applies the EqualFold predicate on the "transcript_text" field.
func TranscriptTextEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldTranscriptText, v))
}

// TranscriptTextContainsFold applies the ContainsFold predicate on the "transcript_text" field.
func TranscriptTextContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldTranscriptText, v))
}

// SentimentAnalysisIsNil applies the IsNil predicate on the "sentiment_analysis" field.
func SentimentAnalysisIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldSentimentAnalysis))
}

// SentimentAnalysisNotNil applies the NotNil predicate on the "sentiment_analysis" field.
func SentimentAnalysisNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldSentimentAnalysis))
}

// AsrConfidenceEQ applies the EQ predicate on the "asr_confidence" field.
func AsrConfidenceEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldAsrConfidence, v))
}

// AsrConfidenceNEQ applies the NEQ predicate on the "asr_confidence" field.
func AsrConfidenceNEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldAsrConfidence, v))
}

// AsrConfidenceIn applies the In predicate on the "asr_confidence" field.
func AsrConfidenceIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldAsrConfidence, vs...))
}

// AsrConfidenceNotIn applies the NotIn predicate on the "asr_confidence" field.
func AsrConfidenceNotIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldAsrConfidence, vs...))
}

// AsrConfidenceGT applies the GT predicate on the "asr_confidence" field.
func AsrConfidenceGT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldAsrConfidence, v))
}

// AsrConfidenceGTE applies the GTE predicate on the "asr_confidence" field.
func AsrConfidenceGTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldAsrConfidence, v))
}

// AsrConfidenceLT applies the LT predicate on the "asr_confidence" field.
func AsrConfidenceLT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldAsrConfidence, v))
}

// AsrConfidenceLTE applies the LTE predicate on the "asr_confidence" field.
func AsrConfidenceLTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldAsrConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRecording applies the HasEdge predicate on the "recording" edge.
func HasRecording() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RecordingTable, RecordingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordingWith applies the HasEdge predicate on the "recording" edge with a given conditions (other predicates).
func HasRecordingWith(preds ...predicate.Recording) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newRecordingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.NotPredicates(p))
}
