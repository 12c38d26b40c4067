// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/transcript"
	"github.com/callscope-ai/callscope/pkg/models"
)

// Transcript is the model entity for the Transcript schema.
type Transcript struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RecordingID holds the value of the "recording_id" field.
	RecordingID string `json:"recording_id,omitempty"`
	// Full text (full-text searchable)
	TranscriptText string `json:"transcript_text,omitempty"`
	// DiarizedSegments holds the value of the "diarized_segments" field.
	DiarizedSegments []models.Segment `json:"diarized_segments,omitempty"`
	// SentimentAnalysis holds the value of the "sentiment_analysis" field.
	SentimentAnalysis []models.SentimentSpan `json:"sentiment_analysis,omitempty"`
	// AsrConfidence holds the value of the "asr_confidence" field.
	AsrConfidence float64 `json:"asr_confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptQuery when eager-loading is set.
	Edges        TranscriptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptEdges holds the relations/edges for other nodes in the graph.
type TranscriptEdges struct {
	// Recording holds the value of the recording edge.
	Recording *Recording `json:"recording,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordingOrErr returns the Recording value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptEdges) RecordingOrErr() (*Recording, error) {
	if e.Recording != nil {
		return e.Recording, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recording.Label}
	}
	return nil, &NotLoadedError{edge: "recording"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transcript) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcript.FieldDiarizedSegments, transcript.FieldSentimentAnalysis:
			values[i] = new([]byte)
		case transcript.FieldAsrConfidence:
			values[i] = new(sql.NullFloat64)
		case transcript.FieldID, transcript.FieldRecordingID, transcript.FieldTranscriptText:
			values[i] = new(sql.NullString)
		case transcript.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transcript fields.
func (_m *Transcript) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcript.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcript.FieldRecordingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_id", values[i])
			} else if value.Valid {
				_m.RecordingID = value.String
			}
		case transcript.FieldTranscriptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_text", values[i])
			} else if value.Valid {
				_m.TranscriptText = value.String
			}
		case transcript.FieldDiarizedSegments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field diarized_segments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DiarizedSegments); err != nil {
					return fmt.Errorf("unmarshal field diarized_segments: %w", err)
				}
			}
		case transcript.FieldSentimentAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SentimentAnalysis); err != nil {
					return fmt.Errorf("unmarshal field sentiment_analysis: %w", err)
				}
			}
		case transcript.FieldAsrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field asr_confidence", values[i])
			} else if value.Valid {
				_m.AsrConfidence = value.Float64
			}
		case transcript.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Transcript.
// This includes values selected through modifiers, order, etc.
func (_m *Transcript) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecording queries the "recording" edge of the Transcript entity.
func (_m *Transcript) QueryRecording() *RecordingQuery {
	return NewTranscriptClient(_m.config).QueryRecording(_m)
}

// Update returns a builder for updating this Transcript.
// Note that you need to call Transcript.Unwrap() before calling this method if this Transcript
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Transcript) Update() *TranscriptUpdateOne {
	return NewTranscriptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Transcript entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Transcript) Unwrap() *Transcript {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Transcript is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Transcript) String() string {
	var builder strings.Builder
	builder.WriteString("Transcript(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recording_id=")
	builder.WriteString(_m.RecordingID)
	builder.WriteString(", ")
	builder.WriteString("transcript_text=")
	builder.WriteString(_m.TranscriptText)
	builder.WriteString(", ")
	builder.WriteString("diarized_segments=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiarizedSegments))
	builder.WriteString(", ")
	builder.WriteString("sentiment_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentimentAnalysis))
	builder.WriteString(", ")
	builder.WriteString("asr_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AsrConfidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Transcripts is a parsable slice of Transcript.
type Transcripts []*Transcript
