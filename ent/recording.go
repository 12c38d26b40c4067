// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/transcript"
)

// Recording is the model entity for the Recording schema.
type Recording struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// Object-store path; resolved to a signed URL for ASR
	AudioURL string `json:"audio_url,omitempty"`
	// Status holds the value of the "status" field.
	Status recording.Status `json:"status,omitempty"`
	// DurationS holds the value of the "duration_s" field.
	DurationS *float64 `json:"duration_s,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecordingQuery when eager-loading is set.
	Edges        RecordingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecordingEdges holds the relations/edges for other nodes in the graph.
type RecordingEdges struct {
	// Transcript holds the value of the transcript edge.
	Transcript *Transcript `json:"transcript,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TranscriptOrErr returns the Transcript value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) TranscriptOrErr() (*Transcript, error) {
	if e.Transcript != nil {
		return e.Transcript, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: transcript.Label}
	}
	return nil, &NotLoadedError{edge: "transcript"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e RecordingEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[1] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recording) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recording.FieldDurationS:
			values[i] = new(sql.NullFloat64)
		case recording.FieldID, recording.FieldCompanyID, recording.FieldAudioURL, recording.FieldStatus, recording.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case recording.FieldCreatedAt, recording.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recording fields.
func (_m *Recording) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recording.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recording.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case recording.FieldAudioURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_url", values[i])
			} else if value.Valid {
				_m.AudioURL = value.String
			}
		case recording.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = recording.Status(value.String)
			}
		case recording.FieldDurationS:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_s", values[i])
			} else if value.Valid {
				_m.DurationS = new(float64)
				*_m.DurationS = value.Float64
			}
		case recording.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case recording.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recording.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recording.
// This includes values selected through modifiers, order, etc.
func (_m *Recording) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTranscript queries the "transcript" edge of the Recording entity.
func (_m *Recording) QueryTranscript() *TranscriptQuery {
	return NewRecordingClient(_m.config).QueryTranscript(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Recording entity.
func (_m *Recording) QueryEvaluations() *EvaluationQuery {
	return NewRecordingClient(_m.config).QueryEvaluations(_m)
}

// Update returns a builder for updating this Recording.
// Note that you need to call Recording.Unwrap() before calling this method if this Recording
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recording) Update() *RecordingUpdateOne {
	return NewRecordingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recording entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recording) Unwrap() *Recording {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recording is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recording) String() string {
	var builder strings.Builder
	builder.WriteString("Recording(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("audio_url=")
	builder.WriteString(_m.AudioURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DurationS; v != nil {
		builder.WriteString("duration_s=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Recordings is a parsable slice of Recording.
type Recordings []*Recording
