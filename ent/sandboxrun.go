// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/pkg/models"
)

// SandboxRun is the model entity for the SandboxRun schema.
type SandboxRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BlueprintID holds the value of the "blueprint_id" field.
	BlueprintID string `json:"blueprint_id,omitempty"`
	// Filled in once compilation resolves
	CompiledFlowVersionID string `json:"compiled_flow_version_id,omitempty"`
	// RecordingID holds the value of the "recording_id" field.
	RecordingID string `json:"recording_id,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// Status holds the value of the "status" field.
	Status sandboxrun.Status `json:"status,omitempty"`
	// Redacted copy of the input transcript
	TranscriptSnapshot *models.Transcript `json:"transcript_snapshot,omitempty"`
	// Result holds the value of the "result" field.
	Result *models.SandboxResult `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxrun.FieldTranscriptSnapshot, sandboxrun.FieldResult:
			values[i] = new([]byte)
		case sandboxrun.FieldID, sandboxrun.FieldBlueprintID, sandboxrun.FieldCompiledFlowVersionID, sandboxrun.FieldRecordingID, sandboxrun.FieldIdempotencyKey, sandboxrun.FieldStatus, sandboxrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case sandboxrun.FieldCreatedAt, sandboxrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxRun fields.
func (_m *SandboxRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sandboxrun.FieldBlueprintID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value.Valid {
				_m.BlueprintID = value.String
			}
		case sandboxrun.FieldCompiledFlowVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_flow_version_id", values[i])
			} else if value.Valid {
				_m.CompiledFlowVersionID = value.String
			}
		case sandboxrun.FieldRecordingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_id", values[i])
			} else if value.Valid {
				_m.RecordingID = value.String
			}
		case sandboxrun.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case sandboxrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sandboxrun.Status(value.String)
			}
		case sandboxrun.FieldTranscriptSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TranscriptSnapshot); err != nil {
					return fmt.Errorf("unmarshal field transcript_snapshot: %w", err)
				}
			}
		case sandboxrun.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case sandboxrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case sandboxrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sandboxrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxRun.
// This includes values selected through modifiers, order, etc.
func (_m *SandboxRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SandboxRun.
// Note that you need to call SandboxRun.Unwrap() before calling this method if this SandboxRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SandboxRun) Update() *SandboxRunUpdateOne {
	return NewSandboxRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SandboxRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SandboxRun) Unwrap() *SandboxRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SandboxRun) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blueprint_id=")
	builder.WriteString(_m.BlueprintID)
	builder.WriteString(", ")
	builder.WriteString("compiled_flow_version_id=")
	builder.WriteString(_m.CompiledFlowVersionID)
	builder.WriteString(", ")
	builder.WriteString("recording_id=")
	builder.WriteString(_m.RecordingID)
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("transcript_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptSnapshot))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SandboxRuns is a parsable slice of SandboxRun.
type SandboxRuns []*SandboxRun
