// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcript type in the database.
	Label = "transcript"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "transcript_id"
	// FieldRecordingID holds the string denoting the recording_id field in the database.
	FieldRecordingID = "recording_id"
	// FieldTranscriptText holds the string denoting the transcript_text field in the database.
	FieldTranscriptText = "transcript_text"
	// FieldDiarizedSegments holds the string denoting the diarized_segments field in the database.
	FieldDiarizedSegments = "diarized_segments"
	// FieldSentimentAnalysis holds the string denoting the sentiment_analysis field in the database.
	FieldSentimentAnalysis = "sentiment_analysis"
	// FieldAsrConfidence holds the string denoting the asr_confidence field in the database.
	FieldAsrConfidence = "asr_confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRecording holds the string denoting the recording edge name in mutations.
	EdgeRecording = "recording"
	// RecordingFieldID holds the string denoting the ID field of the Recording.
	RecordingFieldID = "recording_id"
	// Table holds the table name of the transcript in the database.
	Table = "transcripts"
	// RecordingTable is the table that holds the recording relation/edge.
	RecordingTable = "transcripts"
	// RecordingInverseTable is the table name for the Recording entity.
	// It exists in this package in order to avoid circular dependency with the "recording" package.
	RecordingInverseTable = "recordings"
	// RecordingColumn is the table column denoting the recording relation/edge.
	RecordingColumn = "recording_id"
)

// Columns holds all SQL columns for transcript fields.
var Columns = []string{
	FieldID,
	FieldRecordingID,
	FieldTranscriptText,
	FieldDiarizedSegments,
	FieldSentimentAnalysis,
	FieldAsrConfidence,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAsrConfidence holds the default value on creation for the "asr_confidence" field.
	DefaultAsrConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Transcript queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecordingID orders the results by the recording_id field.
func ByRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingID, opts...).ToFunc()
}

// ByTranscriptText orders the results by the transcript_text field.
func ByTranscriptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptText, opts...).ToFunc()
}

// ByAsrConfidence orders the results by the asr_confidence field.
func ByAsrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAsrConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRecordingField orders the results by recording field.
func ByRecordingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordingStep(), sql.OrderByField(field, opts...))
	}
}
func newRecordingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordingInverseTable, RecordingFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RecordingTable, RecordingColumn),
	)
}
