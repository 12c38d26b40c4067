// Code generated by ent, DO NOT EDIT.

package recording

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCompanyID, v))
}

// AudioURL applies equality check predicate on the "audio_url" field. It's identical to AudioURLEQ.
func AudioURL(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldAudioURL, v))
}

// DurationS applies equality check predicate on the "duration_s" field. It's identical to DurationSEQ.
func DurationS(v float64) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldDurationS, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldDeletedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldCompanyID, v))
}

// AudioURLEQ applies the EQ predicate on the "audio_url" field.
func AudioURLEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldAudioURL, v))
}

// AudioURLNEQ applies the NEQ predicate on the "audio_url" field.
func AudioURLNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldAudioURL, v))
}

// AudioURLIn applies the In predicate on the "audio_url" field.
func AudioURLIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldAudioURL, vs...))
}

// AudioURLNotIn applies the NotIn predicate on the "audio_url" field.
func AudioURLNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldAudioURL, vs...))
}

// AudioURLGT applies the GT predicate on the "audio_url" field.
func AudioURLGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldAudioURL, v))
}

// AudioURLGTE applies the GTE predicate on the "audio_url" field.
func AudioURLGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldAudioURL, v))
}

// AudioURLLT applies the LT predicate on the "audio_url" field.
func AudioURLLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldAudioURL, v))
}

// AudioURLLTE applies the LTE predicate on the "audio_url" field.
func AudioURLLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldAudioURL, v))
}

// AudioURLContains applies the Contains predicate on the "audio_url" field.
func AudioURLContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldAudioURL, v))
}

// AudioURLHasPrefix applies the HasPrefix predicate on the "audio_url" field.
func AudioURLHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldAudioURL, v))
}

// AudioURLHasSuffix applies the HasSuffix predicate on the "audio_url" field.
func AudioURLHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldAudioURL, v))
}

// AudioURLEqualFold applies the EqualFold predicate on the "audio_url" field.
func AudioURLEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldAudioURL, v))
}

// AudioURLContainsFold applies the ContainsFold predicate on the "audio_url" field.
func AudioURLContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldAudioURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldStatus, vs...))
}

// DurationSEQ applies the EQ predicate on the "duration_s" field.
func DurationSEQ(v float64) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldDurationS, v))
}

// DurationSNEQ applies the NEQ predicate on the "duration_s" field.
func DurationSNEQ(v float64) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldDurationS, v))
}

// DurationSIn applies the In predicate on the "duration_s" field.
func DurationSIn(vs ...float64) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldDurationS, vs...))
}

// DurationSNotIn applies the NotIn predicate on the "duration_s" field.
func DurationSNotIn(vs ...float64) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldDurationS, vs...))
}

// DurationSGT applies the GT predicate on the "duration_s" field.
func DurationSGT(v float64) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldDurationS, v))
}

// DurationSGTE applies the GTE predicate on the "duration_s" field.
func DurationSGTE(v float64) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldDurationS, v))
}

// DurationSLT applies the LT predicate on the "duration_s" field.
func DurationSLT(v float64) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldDurationS, v))
}

// DurationSLTE applies the LTE predicate on the "duration_s" field.
func DurationSLTE(v float64) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldDurationS, v))
}

// DurationSIsNil applies the IsNil predicate on the "duration_s" field.
func DurationSIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldDurationS))
}

// DurationSNotNil applies the NotNil predicate on the "duration_s" field.
func DurationSNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldDurationS))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldDeletedAt))
}

// HasTranscript applies the HasEdge predicate on the "transcript" edge.
func HasTranscript() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TranscriptTable, TranscriptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptWith applies the HasEdge predicate on the "transcript" edge with a given conditions (other predicates).
func HasTranscriptWith(preds ...predicate.Transcript) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newTranscriptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.Evaluation) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.NotPredicates(p))
}
