// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
	"github.com/callscope-ai/callscope/ent/blueprintversion"
	"github.com/callscope-ai/callscope/ent/compiledcompliancerule"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/compiledrubrictemplate"
	"github.com/callscope-ai/callscope/ent/evaluation"
	"github.com/callscope-ai/callscope/ent/job"
	"github.com/callscope-ai/callscope/ent/predicate"
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/ent/transcript"
	"github.com/callscope-ai/callscope/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBlueprint              = "Blueprint"
	TypeBlueprintBehavior      = "BlueprintBehavior"
	TypeBlueprintStage         = "BlueprintStage"
	TypeBlueprintVersion       = "BlueprintVersion"
	TypeCompiledComplianceRule = "CompiledComplianceRule"
	TypeCompiledFlowStage      = "CompiledFlowStage"
	TypeCompiledFlowStep       = "CompiledFlowStep"
	TypeCompiledFlowVersion    = "CompiledFlowVersion"
	TypeCompiledRubricTemplate = "CompiledRubricTemplate"
	TypeEvaluation             = "Evaluation"
	TypeJob                    = "Job"
	TypeRecording              = "Recording"
	TypeSandboxRun             = "SandboxRun"
	TypeTranscript             = "Transcript"
)

// BlueprintMutation represents an operation that mutates the Blueprint nodes in the graph.
type BlueprintMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	company_id               *string
	name                     *string
	description              *string
	status                   *blueprint.Status
	version_number           *int
	addversion_number        *int
	compiled_flow_version_id *string
	language                 *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	stages                   map[string]struct{}
	removedstages            map[string]struct{}
	clearedstages            bool
	versions                 map[string]struct{}
	removedversions          map[string]struct{}
	clearedversions          bool
	done                     bool
	oldValue                 func(context.Context) (*Blueprint, error)
	predicates               []predicate.Blueprint
}

var _ ent.Mutation = (*BlueprintMutation)(nil)

// blueprintOption allows management of the mutation configuration using functional options.
type blueprintOption func(*BlueprintMutation)

// newBlueprintMutation creates new mutation for the Blueprint entity.
func newBlueprintMutation(c config, op Op, opts ...blueprintOption) *BlueprintMutation {
	m := &BlueprintMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintID sets the ID field of the mutation.
func withBlueprintID(id string) blueprintOption {
	return func(m *BlueprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Blueprint
		)
		m.oldValue = func(ctx context.Context) (*Blueprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Blueprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprint sets the old Blueprint of the mutation.
func withBlueprint(node *Blueprint) blueprintOption {
	return func(m *BlueprintMutation) {
		m.oldValue = func(context.Context) (*Blueprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Blueprint entities.
func (m *BlueprintMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Blueprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *BlueprintMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *BlueprintMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *BlueprintMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetName sets the "name" field.
func (m *BlueprintMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BlueprintMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BlueprintMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *BlueprintMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BlueprintMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BlueprintMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[blueprint.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BlueprintMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BlueprintMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, blueprint.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *BlueprintMutation) SetStatus(b blueprint.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BlueprintMutation) Status() (r blueprint.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldStatus(ctx context.Context) (v blueprint.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BlueprintMutation) ResetStatus() {
	m.status = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *BlueprintMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *BlueprintMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *BlueprintMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *BlueprintMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *BlueprintMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (m *BlueprintMutation) SetCompiledFlowVersionID(s string) {
	m.compiled_flow_version_id = &s
}

// CompiledFlowVersionID returns the value of the "compiled_flow_version_id" field in the mutation.
func (m *BlueprintMutation) CompiledFlowVersionID() (r string, exists bool) {
	v := m.compiled_flow_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledFlowVersionID returns the old "compiled_flow_version_id" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCompiledFlowVersionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledFlowVersionID: %w", err)
	}
	return oldValue.CompiledFlowVersionID, nil
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (m *BlueprintMutation) ClearCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	m.clearedFields[blueprint.FieldCompiledFlowVersionID] = struct{}{}
}

// CompiledFlowVersionIDCleared returns if the "compiled_flow_version_id" field was cleared in this mutation.
func (m *BlueprintMutation) CompiledFlowVersionIDCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldCompiledFlowVersionID]
	return ok
}

// ResetCompiledFlowVersionID resets all changes to the "compiled_flow_version_id" field.
func (m *BlueprintMutation) ResetCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	delete(m.clearedFields, blueprint.FieldCompiledFlowVersionID)
}

// SetLanguage sets the "language" field.
func (m *BlueprintMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *BlueprintMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *BlueprintMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[blueprint.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *BlueprintMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *BlueprintMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, blueprint.FieldLanguage)
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlueprintMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlueprintMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlueprintMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlueprintMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStageIDs adds the "stages" edge to the BlueprintStage entity by ids.
func (m *BlueprintMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the BlueprintStage entity.
func (m *BlueprintMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the BlueprintStage entity was cleared.
func (m *BlueprintMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the BlueprintStage entity by IDs.
func (m *BlueprintMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the BlueprintStage entity.
func (m *BlueprintMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *BlueprintMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *BlueprintMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// AddVersionIDs adds the "versions" edge to the BlueprintVersion entity by ids.
func (m *BlueprintMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the BlueprintVersion entity.
func (m *BlueprintMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the BlueprintVersion entity was cleared.
func (m *BlueprintMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the BlueprintVersion entity by IDs.
func (m *BlueprintMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the BlueprintVersion entity.
func (m *BlueprintMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *BlueprintMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *BlueprintMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the BlueprintMutation builder.
func (m *BlueprintMutation) Where(ps ...predicate.Blueprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Blueprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Blueprint).
func (m *BlueprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.company_id != nil {
		fields = append(fields, blueprint.FieldCompanyID)
	}
	if m.name != nil {
		fields = append(fields, blueprint.FieldName)
	}
	if m.description != nil {
		fields = append(fields, blueprint.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, blueprint.FieldStatus)
	}
	if m.version_number != nil {
		fields = append(fields, blueprint.FieldVersionNumber)
	}
	if m.compiled_flow_version_id != nil {
		fields = append(fields, blueprint.FieldCompiledFlowVersionID)
	}
	if m.language != nil {
		fields = append(fields, blueprint.FieldLanguage)
	}
	if m.created_at != nil {
		fields = append(fields, blueprint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, blueprint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprint.FieldCompanyID:
		return m.CompanyID()
	case blueprint.FieldName:
		return m.Name()
	case blueprint.FieldDescription:
		return m.Description()
	case blueprint.FieldStatus:
		return m.Status()
	case blueprint.FieldVersionNumber:
		return m.VersionNumber()
	case blueprint.FieldCompiledFlowVersionID:
		return m.CompiledFlowVersionID()
	case blueprint.FieldLanguage:
		return m.Language()
	case blueprint.FieldCreatedAt:
		return m.CreatedAt()
	case blueprint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprint.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case blueprint.FieldName:
		return m.OldName(ctx)
	case blueprint.FieldDescription:
		return m.OldDescription(ctx)
	case blueprint.FieldStatus:
		return m.OldStatus(ctx)
	case blueprint.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case blueprint.FieldCompiledFlowVersionID:
		return m.OldCompiledFlowVersionID(ctx)
	case blueprint.FieldLanguage:
		return m.OldLanguage(ctx)
	case blueprint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blueprint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Blueprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprint.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case blueprint.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case blueprint.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case blueprint.FieldStatus:
		v, ok := value.(blueprint.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case blueprint.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case blueprint.FieldCompiledFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledFlowVersionID(v)
		return nil
	case blueprint.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case blueprint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blueprint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, blueprint.FieldVersionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprint.FieldVersionNumber:
		return m.AddedVersionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprint.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Blueprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprint.FieldDescription) {
		fields = append(fields, blueprint.FieldDescription)
	}
	if m.FieldCleared(blueprint.FieldCompiledFlowVersionID) {
		fields = append(fields, blueprint.FieldCompiledFlowVersionID)
	}
	if m.FieldCleared(blueprint.FieldLanguage) {
		fields = append(fields, blueprint.FieldLanguage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintMutation) ClearField(name string) error {
	switch name {
	case blueprint.FieldDescription:
		m.ClearDescription()
		return nil
	case blueprint.FieldCompiledFlowVersionID:
		m.ClearCompiledFlowVersionID()
		return nil
	case blueprint.FieldLanguage:
		m.ClearLanguage()
		return nil
	}
	return fmt.Errorf("unknown Blueprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintMutation) ResetField(name string) error {
	switch name {
	case blueprint.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case blueprint.FieldName:
		m.ResetName()
		return nil
	case blueprint.FieldDescription:
		m.ResetDescription()
		return nil
	case blueprint.FieldStatus:
		m.ResetStatus()
		return nil
	case blueprint.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case blueprint.FieldCompiledFlowVersionID:
		m.ResetCompiledFlowVersionID()
		return nil
	case blueprint.FieldLanguage:
		m.ResetLanguage()
		return nil
	case blueprint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blueprint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.stages != nil {
		edges = append(edges, blueprint.EdgeStages)
	}
	if m.versions != nil {
		edges = append(edges, blueprint.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blueprint.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	case blueprint.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedstages != nil {
		edges = append(edges, blueprint.EdgeStages)
	}
	if m.removedversions != nil {
		edges = append(edges, blueprint.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case blueprint.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	case blueprint.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstages {
		edges = append(edges, blueprint.EdgeStages)
	}
	if m.clearedversions {
		edges = append(edges, blueprint.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintMutation) EdgeCleared(name string) bool {
	switch name {
	case blueprint.EdgeStages:
		return m.clearedstages
	case blueprint.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Blueprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintMutation) ResetEdge(name string) error {
	switch name {
	case blueprint.EdgeStages:
		m.ResetStages()
		return nil
	case blueprint.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown Blueprint edge %s", name)
}

// BlueprintBehaviorMutation represents an operation that mutates the BlueprintBehavior nodes in the graph.
type BlueprintBehaviorMutation struct {
	config
	op              Op
	typ             string
	id              *string
	behavior_name   *string
	description     *string
	behavior_type   *blueprintbehavior.BehaviorType
	detection_mode  *blueprintbehavior.DetectionMode
	phrases         *[]string
	appendphrases   []string
	weight          *float64
	addweight       *float64
	critical_action *blueprintbehavior.CriticalAction
	ui_order        *int
	addui_order     *int
	metadata        *map[string]interface{}
	clearedFields   map[string]struct{}
	stage           *string
	clearedstage    bool
	done            bool
	oldValue        func(context.Context) (*BlueprintBehavior, error)
	predicates      []predicate.BlueprintBehavior
}

var _ ent.Mutation = (*BlueprintBehaviorMutation)(nil)

// blueprintbehaviorOption allows management of the mutation configuration using functional options.
type blueprintbehaviorOption func(*BlueprintBehaviorMutation)

// newBlueprintBehaviorMutation creates new mutation for the BlueprintBehavior entity.
func newBlueprintBehaviorMutation(c config, op Op, opts ...blueprintbehaviorOption) *BlueprintBehaviorMutation {
	m := &BlueprintBehaviorMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprintBehavior,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintBehaviorID sets the ID field of the mutation.
func withBlueprintBehaviorID(id string) blueprintbehaviorOption {
	return func(m *BlueprintBehaviorMutation) {
		var (
			err   error
			once  sync.Once
			value *BlueprintBehavior
		)
		m.oldValue = func(ctx context.Context) (*BlueprintBehavior, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlueprintBehavior.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprintBehavior sets the old BlueprintBehavior of the mutation.
func withBlueprintBehavior(node *BlueprintBehavior) blueprintbehaviorOption {
	return func(m *BlueprintBehaviorMutation) {
		m.oldValue = func(context.Context) (*BlueprintBehavior, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintBehaviorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintBehaviorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlueprintBehavior entities.
func (m *BlueprintBehaviorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintBehaviorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintBehaviorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlueprintBehavior.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStageID sets the "stage_id" field.
func (m *BlueprintBehaviorMutation) SetStageID(s string) {
	m.stage = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *BlueprintBehaviorMutation) StageID() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *BlueprintBehaviorMutation) ResetStageID() {
	m.stage = nil
}

// SetBehaviorName sets the "behavior_name" field.
func (m *BlueprintBehaviorMutation) SetBehaviorName(s string) {
	m.behavior_name = &s
}

// BehaviorName returns the value of the "behavior_name" field in the mutation.
func (m *BlueprintBehaviorMutation) BehaviorName() (r string, exists bool) {
	v := m.behavior_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBehaviorName returns the old "behavior_name" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldBehaviorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehaviorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehaviorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehaviorName: %w", err)
	}
	return oldValue.BehaviorName, nil
}

// ResetBehaviorName resets all changes to the "behavior_name" field.
func (m *BlueprintBehaviorMutation) ResetBehaviorName() {
	m.behavior_name = nil
}

// SetDescription sets the "description" field.
func (m *BlueprintBehaviorMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BlueprintBehaviorMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BlueprintBehaviorMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[blueprintbehavior.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BlueprintBehaviorMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[blueprintbehavior.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BlueprintBehaviorMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, blueprintbehavior.FieldDescription)
}

// SetBehaviorType sets the "behavior_type" field.
func (m *BlueprintBehaviorMutation) SetBehaviorType(bt blueprintbehavior.BehaviorType) {
	m.behavior_type = &bt
}

// BehaviorType returns the value of the "behavior_type" field in the mutation.
func (m *BlueprintBehaviorMutation) BehaviorType() (r blueprintbehavior.BehaviorType, exists bool) {
	v := m.behavior_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBehaviorType returns the old "behavior_type" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldBehaviorType(ctx context.Context) (v blueprintbehavior.BehaviorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehaviorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehaviorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehaviorType: %w", err)
	}
	return oldValue.BehaviorType, nil
}

// ResetBehaviorType resets all changes to the "behavior_type" field.
func (m *BlueprintBehaviorMutation) ResetBehaviorType() {
	m.behavior_type = nil
}

// SetDetectionMode sets the "detection_mode" field.
func (m *BlueprintBehaviorMutation) SetDetectionMode(bm blueprintbehavior.DetectionMode) {
	m.detection_mode = &bm
}

// DetectionMode returns the value of the "detection_mode" field in the mutation.
func (m *BlueprintBehaviorMutation) DetectionMode() (r blueprintbehavior.DetectionMode, exists bool) {
	v := m.detection_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionMode returns the old "detection_mode" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldDetectionMode(ctx context.Context) (v blueprintbehavior.DetectionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionMode: %w", err)
	}
	return oldValue.DetectionMode, nil
}

// ResetDetectionMode resets all changes to the "detection_mode" field.
func (m *BlueprintBehaviorMutation) ResetDetectionMode() {
	m.detection_mode = nil
}

// SetPhrases sets the "phrases" field.
func (m *BlueprintBehaviorMutation) SetPhrases(s []string) {
	m.phrases = &s
	m.appendphrases = nil
}

// Phrases returns the value of the "phrases" field in the mutation.
func (m *BlueprintBehaviorMutation) Phrases() (r []string, exists bool) {
	v := m.phrases
	if v == nil {
		return
	}
	return *v, true
}

// OldPhrases returns the old "phrases" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldPhrases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhrases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhrases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhrases: %w", err)
	}
	return oldValue.Phrases, nil
}

// AppendPhrases adds s to the "phrases" field.
func (m *BlueprintBehaviorMutation) AppendPhrases(s []string) {
	m.appendphrases = append(m.appendphrases, s...)
}

// AppendedPhrases returns the list of values that were appended to the "phrases" field in this mutation.
func (m *BlueprintBehaviorMutation) AppendedPhrases() ([]string, bool) {
	if len(m.appendphrases) == 0 {
		return nil, false
	}
	return m.appendphrases, true
}

// ClearPhrases clears the value of the "phrases" field.
func (m *BlueprintBehaviorMutation) ClearPhrases() {
	m.phrases = nil
	m.appendphrases = nil
	m.clearedFields[blueprintbehavior.FieldPhrases] = struct{}{}
}

// PhrasesCleared returns if the "phrases" field was cleared in this mutation.
func (m *BlueprintBehaviorMutation) PhrasesCleared() bool {
	_, ok := m.clearedFields[blueprintbehavior.FieldPhrases]
	return ok
}

// ResetPhrases resets all changes to the "phrases" field.
func (m *BlueprintBehaviorMutation) ResetPhrases() {
	m.phrases = nil
	m.appendphrases = nil
	delete(m.clearedFields, blueprintbehavior.FieldPhrases)
}

// SetWeight sets the "weight" field.
func (m *BlueprintBehaviorMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *BlueprintBehaviorMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *BlueprintBehaviorMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *BlueprintBehaviorMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *BlueprintBehaviorMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetCriticalAction sets the "critical_action" field.
func (m *BlueprintBehaviorMutation) SetCriticalAction(ba blueprintbehavior.CriticalAction) {
	m.critical_action = &ba
}

// CriticalAction returns the value of the "critical_action" field in the mutation.
func (m *BlueprintBehaviorMutation) CriticalAction() (r blueprintbehavior.CriticalAction, exists bool) {
	v := m.critical_action
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalAction returns the old "critical_action" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldCriticalAction(ctx context.Context) (v *blueprintbehavior.CriticalAction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalAction: %w", err)
	}
	return oldValue.CriticalAction, nil
}

// ClearCriticalAction clears the value of the "critical_action" field.
func (m *BlueprintBehaviorMutation) ClearCriticalAction() {
	m.critical_action = nil
	m.clearedFields[blueprintbehavior.FieldCriticalAction] = struct{}{}
}

// CriticalActionCleared returns if the "critical_action" field was cleared in this mutation.
func (m *BlueprintBehaviorMutation) CriticalActionCleared() bool {
	_, ok := m.clearedFields[blueprintbehavior.FieldCriticalAction]
	return ok
}

// ResetCriticalAction resets all changes to the "critical_action" field.
func (m *BlueprintBehaviorMutation) ResetCriticalAction() {
	m.critical_action = nil
	delete(m.clearedFields, blueprintbehavior.FieldCriticalAction)
}

// SetUIOrder sets the "ui_order" field.
func (m *BlueprintBehaviorMutation) SetUIOrder(i int) {
	m.ui_order = &i
	m.addui_order = nil
}

// UIOrder returns the value of the "ui_order" field in the mutation.
func (m *BlueprintBehaviorMutation) UIOrder() (r int, exists bool) {
	v := m.ui_order
	if v == nil {
		return
	}
	return *v, true
}

// OldUIOrder returns the old "ui_order" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldUIOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUIOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUIOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUIOrder: %w", err)
	}
	return oldValue.UIOrder, nil
}

// AddUIOrder adds i to the "ui_order" field.
func (m *BlueprintBehaviorMutation) AddUIOrder(i int) {
	if m.addui_order != nil {
		*m.addui_order += i
	} else {
		m.addui_order = &i
	}
}

// AddedUIOrder returns the value that was added to the "ui_order" field in this mutation.
func (m *BlueprintBehaviorMutation) AddedUIOrder() (r int, exists bool) {
	v := m.addui_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetUIOrder resets all changes to the "ui_order" field.
func (m *BlueprintBehaviorMutation) ResetUIOrder() {
	m.ui_order = nil
	m.addui_order = nil
}

// SetMetadata sets the "metadata" field.
func (m *BlueprintBehaviorMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BlueprintBehaviorMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the BlueprintBehavior entity.
// If the BlueprintBehavior object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintBehaviorMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BlueprintBehaviorMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[blueprintbehavior.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BlueprintBehaviorMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[blueprintbehavior.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BlueprintBehaviorMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, blueprintbehavior.FieldMetadata)
}

// ClearStage clears the "stage" edge to the BlueprintStage entity.
func (m *BlueprintBehaviorMutation) ClearStage() {
	m.clearedstage = true
	m.clearedFields[blueprintbehavior.FieldStageID] = struct{}{}
}

// StageCleared reports if the "stage" edge to the BlueprintStage entity was cleared.
func (m *BlueprintBehaviorMutation) StageCleared() bool {
	return m.clearedstage
}

// StageIDs returns the "stage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageID instead. It exists only for internal usage by the builders.
func (m *BlueprintBehaviorMutation) StageIDs() (ids []string) {
	if id := m.stage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStage resets all changes to the "stage" edge.
func (m *BlueprintBehaviorMutation) ResetStage() {
	m.stage = nil
	m.clearedstage = false
}

// Where appends a list predicates to the BlueprintBehaviorMutation builder.
func (m *BlueprintBehaviorMutation) Where(ps ...predicate.BlueprintBehavior) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintBehaviorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintBehaviorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlueprintBehavior, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintBehaviorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintBehaviorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlueprintBehavior).
func (m *BlueprintBehaviorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintBehaviorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.stage != nil {
		fields = append(fields, blueprintbehavior.FieldStageID)
	}
	if m.behavior_name != nil {
		fields = append(fields, blueprintbehavior.FieldBehaviorName)
	}
	if m.description != nil {
		fields = append(fields, blueprintbehavior.FieldDescription)
	}
	if m.behavior_type != nil {
		fields = append(fields, blueprintbehavior.FieldBehaviorType)
	}
	if m.detection_mode != nil {
		fields = append(fields, blueprintbehavior.FieldDetectionMode)
	}
	if m.phrases != nil {
		fields = append(fields, blueprintbehavior.FieldPhrases)
	}
	if m.weight != nil {
		fields = append(fields, blueprintbehavior.FieldWeight)
	}
	if m.critical_action != nil {
		fields = append(fields, blueprintbehavior.FieldCriticalAction)
	}
	if m.ui_order != nil {
		fields = append(fields, blueprintbehavior.FieldUIOrder)
	}
	if m.metadata != nil {
		fields = append(fields, blueprintbehavior.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintBehaviorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprintbehavior.FieldStageID:
		return m.StageID()
	case blueprintbehavior.FieldBehaviorName:
		return m.BehaviorName()
	case blueprintbehavior.FieldDescription:
		return m.Description()
	case blueprintbehavior.FieldBehaviorType:
		return m.BehaviorType()
	case blueprintbehavior.FieldDetectionMode:
		return m.DetectionMode()
	case blueprintbehavior.FieldPhrases:
		return m.Phrases()
	case blueprintbehavior.FieldWeight:
		return m.Weight()
	case blueprintbehavior.FieldCriticalAction:
		return m.CriticalAction()
	case blueprintbehavior.FieldUIOrder:
		return m.UIOrder()
	case blueprintbehavior.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintBehaviorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprintbehavior.FieldStageID:
		return m.OldStageID(ctx)
	case blueprintbehavior.FieldBehaviorName:
		return m.OldBehaviorName(ctx)
	case blueprintbehavior.FieldDescription:
		return m.OldDescription(ctx)
	case blueprintbehavior.FieldBehaviorType:
		return m.OldBehaviorType(ctx)
	case blueprintbehavior.FieldDetectionMode:
		return m.OldDetectionMode(ctx)
	case blueprintbehavior.FieldPhrases:
		return m.OldPhrases(ctx)
	case blueprintbehavior.FieldWeight:
		return m.OldWeight(ctx)
	case blueprintbehavior.FieldCriticalAction:
		return m.OldCriticalAction(ctx)
	case blueprintbehavior.FieldUIOrder:
		return m.OldUIOrder(ctx)
	case blueprintbehavior.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown BlueprintBehavior field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintBehaviorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprintbehavior.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case blueprintbehavior.FieldBehaviorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehaviorName(v)
		return nil
	case blueprintbehavior.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case blueprintbehavior.FieldBehaviorType:
		v, ok := value.(blueprintbehavior.BehaviorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehaviorType(v)
		return nil
	case blueprintbehavior.FieldDetectionMode:
		v, ok := value.(blueprintbehavior.DetectionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionMode(v)
		return nil
	case blueprintbehavior.FieldPhrases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhrases(v)
		return nil
	case blueprintbehavior.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case blueprintbehavior.FieldCriticalAction:
		v, ok := value.(blueprintbehavior.CriticalAction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalAction(v)
		return nil
	case blueprintbehavior.FieldUIOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUIOrder(v)
		return nil
	case blueprintbehavior.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintBehavior field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintBehaviorMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, blueprintbehavior.FieldWeight)
	}
	if m.addui_order != nil {
		fields = append(fields, blueprintbehavior.FieldUIOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintBehaviorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprintbehavior.FieldWeight:
		return m.AddedWeight()
	case blueprintbehavior.FieldUIOrder:
		return m.AddedUIOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintBehaviorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprintbehavior.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case blueprintbehavior.FieldUIOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUIOrder(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintBehavior numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintBehaviorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprintbehavior.FieldDescription) {
		fields = append(fields, blueprintbehavior.FieldDescription)
	}
	if m.FieldCleared(blueprintbehavior.FieldPhrases) {
		fields = append(fields, blueprintbehavior.FieldPhrases)
	}
	if m.FieldCleared(blueprintbehavior.FieldCriticalAction) {
		fields = append(fields, blueprintbehavior.FieldCriticalAction)
	}
	if m.FieldCleared(blueprintbehavior.FieldMetadata) {
		fields = append(fields, blueprintbehavior.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintBehaviorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintBehaviorMutation) ClearField(name string) error {
	switch name {
	case blueprintbehavior.FieldDescription:
		m.ClearDescription()
		return nil
	case blueprintbehavior.FieldPhrases:
		m.ClearPhrases()
		return nil
	case blueprintbehavior.FieldCriticalAction:
		m.ClearCriticalAction()
		return nil
	case blueprintbehavior.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown BlueprintBehavior nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintBehaviorMutation) ResetField(name string) error {
	switch name {
	case blueprintbehavior.FieldStageID:
		m.ResetStageID()
		return nil
	case blueprintbehavior.FieldBehaviorName:
		m.ResetBehaviorName()
		return nil
	case blueprintbehavior.FieldDescription:
		m.ResetDescription()
		return nil
	case blueprintbehavior.FieldBehaviorType:
		m.ResetBehaviorType()
		return nil
	case blueprintbehavior.FieldDetectionMode:
		m.ResetDetectionMode()
		return nil
	case blueprintbehavior.FieldPhrases:
		m.ResetPhrases()
		return nil
	case blueprintbehavior.FieldWeight:
		m.ResetWeight()
		return nil
	case blueprintbehavior.FieldCriticalAction:
		m.ResetCriticalAction()
		return nil
	case blueprintbehavior.FieldUIOrder:
		m.ResetUIOrder()
		return nil
	case blueprintbehavior.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown BlueprintBehavior field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintBehaviorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stage != nil {
		edges = append(edges, blueprintbehavior.EdgeStage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintBehaviorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blueprintbehavior.EdgeStage:
		if id := m.stage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintBehaviorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintBehaviorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintBehaviorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstage {
		edges = append(edges, blueprintbehavior.EdgeStage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintBehaviorMutation) EdgeCleared(name string) bool {
	switch name {
	case blueprintbehavior.EdgeStage:
		return m.clearedstage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintBehaviorMutation) ClearEdge(name string) error {
	switch name {
	case blueprintbehavior.EdgeStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown BlueprintBehavior unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintBehaviorMutation) ResetEdge(name string) error {
	switch name {
	case blueprintbehavior.EdgeStage:
		m.ResetStage()
		return nil
	}
	return fmt.Errorf("unknown BlueprintBehavior edge %s", name)
}

// BlueprintStageMutation represents an operation that mutates the BlueprintStage nodes in the graph.
type BlueprintStageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	stage_name        *string
	ordering_index    *int
	addordering_index *int
	stage_weight      *float64
	addstage_weight   *float64
	metadata          *map[string]interface{}
	clearedFields     map[string]struct{}
	blueprint         *string
	clearedblueprint  bool
	behaviors         map[string]struct{}
	removedbehaviors  map[string]struct{}
	clearedbehaviors  bool
	done              bool
	oldValue          func(context.Context) (*BlueprintStage, error)
	predicates        []predicate.BlueprintStage
}

var _ ent.Mutation = (*BlueprintStageMutation)(nil)

// blueprintstageOption allows management of the mutation configuration using functional options.
type blueprintstageOption func(*BlueprintStageMutation)

// newBlueprintStageMutation creates new mutation for the BlueprintStage entity.
func newBlueprintStageMutation(c config, op Op, opts ...blueprintstageOption) *BlueprintStageMutation {
	m := &BlueprintStageMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprintStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintStageID sets the ID field of the mutation.
func withBlueprintStageID(id string) blueprintstageOption {
	return func(m *BlueprintStageMutation) {
		var (
			err   error
			once  sync.Once
			value *BlueprintStage
		)
		m.oldValue = func(ctx context.Context) (*BlueprintStage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlueprintStage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprintStage sets the old BlueprintStage of the mutation.
func withBlueprintStage(node *BlueprintStage) blueprintstageOption {
	return func(m *BlueprintStageMutation) {
		m.oldValue = func(context.Context) (*BlueprintStage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintStageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintStageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlueprintStage entities.
func (m *BlueprintStageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintStageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintStageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlueprintStage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *BlueprintStageMutation) SetBlueprintID(s string) {
	m.blueprint = &s
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *BlueprintStageMutation) BlueprintID() (r string, exists bool) {
	v := m.blueprint
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the BlueprintStage entity.
// If the BlueprintStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStageMutation) OldBlueprintID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *BlueprintStageMutation) ResetBlueprintID() {
	m.blueprint = nil
}

// SetStageName sets the "stage_name" field.
func (m *BlueprintStageMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *BlueprintStageMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the BlueprintStage entity.
// If the BlueprintStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStageMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *BlueprintStageMutation) ResetStageName() {
	m.stage_name = nil
}

// SetOrderingIndex sets the "ordering_index" field.
func (m *BlueprintStageMutation) SetOrderingIndex(i int) {
	m.ordering_index = &i
	m.addordering_index = nil
}

// OrderingIndex returns the value of the "ordering_index" field in the mutation.
func (m *BlueprintStageMutation) OrderingIndex() (r int, exists bool) {
	v := m.ordering_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderingIndex returns the old "ordering_index" field's value of the BlueprintStage entity.
// If the BlueprintStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStageMutation) OldOrderingIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderingIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderingIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderingIndex: %w", err)
	}
	return oldValue.OrderingIndex, nil
}

// AddOrderingIndex adds i to the "ordering_index" field.
func (m *BlueprintStageMutation) AddOrderingIndex(i int) {
	if m.addordering_index != nil {
		*m.addordering_index += i
	} else {
		m.addordering_index = &i
	}
}

// AddedOrderingIndex returns the value that was added to the "ordering_index" field in this mutation.
func (m *BlueprintStageMutation) AddedOrderingIndex() (r int, exists bool) {
	v := m.addordering_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderingIndex resets all changes to the "ordering_index" field.
func (m *BlueprintStageMutation) ResetOrderingIndex() {
	m.ordering_index = nil
	m.addordering_index = nil
}

// SetStageWeight sets the "stage_weight" field.
func (m *BlueprintStageMutation) SetStageWeight(f float64) {
	m.stage_weight = &f
	m.addstage_weight = nil
}

// StageWeight returns the value of the "stage_weight" field in the mutation.
func (m *BlueprintStageMutation) StageWeight() (r float64, exists bool) {
	v := m.stage_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldStageWeight returns the old "stage_weight" field's value of the BlueprintStage entity.
// If the BlueprintStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStageMutation) OldStageWeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageWeight: %w", err)
	}
	return oldValue.StageWeight, nil
}

// AddStageWeight adds f to the "stage_weight" field.
func (m *BlueprintStageMutation) AddStageWeight(f float64) {
	if m.addstage_weight != nil {
		*m.addstage_weight += f
	} else {
		m.addstage_weight = &f
	}
}

// AddedStageWeight returns the value that was added to the "stage_weight" field in this mutation.
func (m *BlueprintStageMutation) AddedStageWeight() (r float64, exists bool) {
	v := m.addstage_weight
	if v == nil {
		return
	}
	return *v, true
}

// ClearStageWeight clears the value of the "stage_weight" field.
func (m *BlueprintStageMutation) ClearStageWeight() {
	m.stage_weight = nil
	m.addstage_weight = nil
	m.clearedFields[blueprintstage.FieldStageWeight] = struct{}{}
}

// StageWeightCleared returns if the "stage_weight" field was cleared in this mutation.
func (m *BlueprintStageMutation) StageWeightCleared() bool {
	_, ok := m.clearedFields[blueprintstage.FieldStageWeight]
	return ok
}

// ResetStageWeight resets all changes to the "stage_weight" field.
func (m *BlueprintStageMutation) ResetStageWeight() {
	m.stage_weight = nil
	m.addstage_weight = nil
	delete(m.clearedFields, blueprintstage.FieldStageWeight)
}

// SetMetadata sets the "metadata" field.
func (m *BlueprintStageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BlueprintStageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the BlueprintStage entity.
// If the BlueprintStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintStageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BlueprintStageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[blueprintstage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BlueprintStageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[blueprintstage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BlueprintStageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, blueprintstage.FieldMetadata)
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (m *BlueprintStageMutation) ClearBlueprint() {
	m.clearedblueprint = true
	m.clearedFields[blueprintstage.FieldBlueprintID] = struct{}{}
}

// BlueprintCleared reports if the "blueprint" edge to the Blueprint entity was cleared.
func (m *BlueprintStageMutation) BlueprintCleared() bool {
	return m.clearedblueprint
}

// BlueprintIDs returns the "blueprint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlueprintID instead. It exists only for internal usage by the builders.
func (m *BlueprintStageMutation) BlueprintIDs() (ids []string) {
	if id := m.blueprint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlueprint resets all changes to the "blueprint" edge.
func (m *BlueprintStageMutation) ResetBlueprint() {
	m.blueprint = nil
	m.clearedblueprint = false
}

// AddBehaviorIDs adds the "behaviors" edge to the BlueprintBehavior entity by ids.
func (m *BlueprintStageMutation) AddBehaviorIDs(ids ...string) {
	if m.behaviors == nil {
		m.behaviors = make(map[string]struct{})
	}
	for i := range ids {
		m.behaviors[ids[i]] = struct{}{}
	}
}

// ClearBehaviors clears the "behaviors" edge to the BlueprintBehavior entity.
func (m *BlueprintStageMutation) ClearBehaviors() {
	m.clearedbehaviors = true
}

// BehaviorsCleared reports if the "behaviors" edge to the BlueprintBehavior entity was cleared.
func (m *BlueprintStageMutation) BehaviorsCleared() bool {
	return m.clearedbehaviors
}

// RemoveBehaviorIDs removes the "behaviors" edge to the BlueprintBehavior entity by IDs.
func (m *BlueprintStageMutation) RemoveBehaviorIDs(ids ...string) {
	if m.removedbehaviors == nil {
		m.removedbehaviors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.behaviors, ids[i])
		m.removedbehaviors[ids[i]] = struct{}{}
	}
}

// RemovedBehaviors returns the removed IDs of the "behaviors" edge to the BlueprintBehavior entity.
func (m *BlueprintStageMutation) RemovedBehaviorsIDs() (ids []string) {
	for id := range m.removedbehaviors {
		ids = append(ids, id)
	}
	return
}

// BehaviorsIDs returns the "behaviors" edge IDs in the mutation.
func (m *BlueprintStageMutation) BehaviorsIDs() (ids []string) {
	for id := range m.behaviors {
		ids = append(ids, id)
	}
	return
}

// ResetBehaviors resets all changes to the "behaviors" edge.
func (m *BlueprintStageMutation) ResetBehaviors() {
	m.behaviors = nil
	m.clearedbehaviors = false
	m.removedbehaviors = nil
}

// Where appends a list predicates to the BlueprintStageMutation builder.
func (m *BlueprintStageMutation) Where(ps ...predicate.BlueprintStage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintStageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintStageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlueprintStage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintStageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintStageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlueprintStage).
func (m *BlueprintStageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintStageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.blueprint != nil {
		fields = append(fields, blueprintstage.FieldBlueprintID)
	}
	if m.stage_name != nil {
		fields = append(fields, blueprintstage.FieldStageName)
	}
	if m.ordering_index != nil {
		fields = append(fields, blueprintstage.FieldOrderingIndex)
	}
	if m.stage_weight != nil {
		fields = append(fields, blueprintstage.FieldStageWeight)
	}
	if m.metadata != nil {
		fields = append(fields, blueprintstage.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintStageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprintstage.FieldBlueprintID:
		return m.BlueprintID()
	case blueprintstage.FieldStageName:
		return m.StageName()
	case blueprintstage.FieldOrderingIndex:
		return m.OrderingIndex()
	case blueprintstage.FieldStageWeight:
		return m.StageWeight()
	case blueprintstage.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintStageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprintstage.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case blueprintstage.FieldStageName:
		return m.OldStageName(ctx)
	case blueprintstage.FieldOrderingIndex:
		return m.OldOrderingIndex(ctx)
	case blueprintstage.FieldStageWeight:
		return m.OldStageWeight(ctx)
	case blueprintstage.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown BlueprintStage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintStageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprintstage.FieldBlueprintID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case blueprintstage.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case blueprintstage.FieldOrderingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderingIndex(v)
		return nil
	case blueprintstage.FieldStageWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageWeight(v)
		return nil
	case blueprintstage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintStage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintStageMutation) AddedFields() []string {
	var fields []string
	if m.addordering_index != nil {
		fields = append(fields, blueprintstage.FieldOrderingIndex)
	}
	if m.addstage_weight != nil {
		fields = append(fields, blueprintstage.FieldStageWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintStageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprintstage.FieldOrderingIndex:
		return m.AddedOrderingIndex()
	case blueprintstage.FieldStageWeight:
		return m.AddedStageWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintStageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprintstage.FieldOrderingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderingIndex(v)
		return nil
	case blueprintstage.FieldStageWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageWeight(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintStage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintStageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprintstage.FieldStageWeight) {
		fields = append(fields, blueprintstage.FieldStageWeight)
	}
	if m.FieldCleared(blueprintstage.FieldMetadata) {
		fields = append(fields, blueprintstage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintStageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintStageMutation) ClearField(name string) error {
	switch name {
	case blueprintstage.FieldStageWeight:
		m.ClearStageWeight()
		return nil
	case blueprintstage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintStageMutation) ResetField(name string) error {
	switch name {
	case blueprintstage.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case blueprintstage.FieldStageName:
		m.ResetStageName()
		return nil
	case blueprintstage.FieldOrderingIndex:
		m.ResetOrderingIndex()
		return nil
	case blueprintstage.FieldStageWeight:
		m.ResetStageWeight()
		return nil
	case blueprintstage.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintStageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.blueprint != nil {
		edges = append(edges, blueprintstage.EdgeBlueprint)
	}
	if m.behaviors != nil {
		edges = append(edges, blueprintstage.EdgeBehaviors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintStageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blueprintstage.EdgeBlueprint:
		if id := m.blueprint; id != nil {
			return []ent.Value{*id}
		}
	case blueprintstage.EdgeBehaviors:
		ids := make([]ent.Value, 0, len(m.behaviors))
		for id := range m.behaviors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintStageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbehaviors != nil {
		edges = append(edges, blueprintstage.EdgeBehaviors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintStageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case blueprintstage.EdgeBehaviors:
		ids := make([]ent.Value, 0, len(m.removedbehaviors))
		for id := range m.removedbehaviors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintStageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedblueprint {
		edges = append(edges, blueprintstage.EdgeBlueprint)
	}
	if m.clearedbehaviors {
		edges = append(edges, blueprintstage.EdgeBehaviors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintStageMutation) EdgeCleared(name string) bool {
	switch name {
	case blueprintstage.EdgeBlueprint:
		return m.clearedblueprint
	case blueprintstage.EdgeBehaviors:
		return m.clearedbehaviors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintStageMutation) ClearEdge(name string) error {
	switch name {
	case blueprintstage.EdgeBlueprint:
		m.ClearBlueprint()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintStageMutation) ResetEdge(name string) error {
	switch name {
	case blueprintstage.EdgeBlueprint:
		m.ResetBlueprint()
		return nil
	case blueprintstage.EdgeBehaviors:
		m.ResetBehaviors()
		return nil
	}
	return fmt.Errorf("unknown BlueprintStage edge %s", name)
}

// BlueprintVersionMutation represents an operation that mutates the BlueprintVersion nodes in the graph.
type BlueprintVersionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	version_number           *int
	addversion_number        *int
	snapshot                 **models.BlueprintSnapshot
	compiled_flow_version_id *string
	published_by             *string
	publish_note             *string
	created_at               *time.Time
	clearedFields            map[string]struct{}
	blueprint                *string
	clearedblueprint         bool
	done                     bool
	oldValue                 func(context.Context) (*BlueprintVersion, error)
	predicates               []predicate.BlueprintVersion
}

var _ ent.Mutation = (*BlueprintVersionMutation)(nil)

// blueprintversionOption allows management of the mutation configuration using functional options.
type blueprintversionOption func(*BlueprintVersionMutation)

// newBlueprintVersionMutation creates new mutation for the BlueprintVersion entity.
func newBlueprintVersionMutation(c config, op Op, opts ...blueprintversionOption) *BlueprintVersionMutation {
	m := &BlueprintVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprintVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintVersionID sets the ID field of the mutation.
func withBlueprintVersionID(id string) blueprintversionOption {
	return func(m *BlueprintVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *BlueprintVersion
		)
		m.oldValue = func(ctx context.Context) (*BlueprintVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlueprintVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprintVersion sets the old BlueprintVersion of the mutation.
func withBlueprintVersion(node *BlueprintVersion) blueprintversionOption {
	return func(m *BlueprintVersionMutation) {
		m.oldValue = func(context.Context) (*BlueprintVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlueprintVersion entities.
func (m *BlueprintVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlueprintVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *BlueprintVersionMutation) SetBlueprintID(s string) {
	m.blueprint = &s
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *BlueprintVersionMutation) BlueprintID() (r string, exists bool) {
	v := m.blueprint
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the BlueprintVersion entity.
// If the BlueprintVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintVersionMutation) OldBlueprintID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *BlueprintVersionMutation) ResetBlueprintID() {
	m.blueprint = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *BlueprintVersionMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *BlueprintVersionMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the BlueprintVersion entity.
// If the BlueprintVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintVersionMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *BlueprintVersionMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *BlueprintVersionMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *BlueprintVersionMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetSnapshot sets the "snapshot" field.
func (m *BlueprintVersionMutation) SetSnapshot(ms *models.BlueprintSnapshot) {
	m.snapshot = &ms
}

// Snapshot returns the value of the "snapshot" field in the mutation.
func (m *BlueprintVersionMutation) Snapshot() (r *models.BlueprintSnapshot, exists bool) {
	v := m.snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshot returns the old "snapshot" field's value of the BlueprintVersion entity.
// If the BlueprintVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintVersionMutation) OldSnapshot(ctx context.Context) (v *models.BlueprintSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshot: %w", err)
	}
	return oldValue.Snapshot, nil
}

// ResetSnapshot resets all changes to the "snapshot" field.
func (m *BlueprintVersionMutation) ResetSnapshot() {
	m.snapshot = nil
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (m *BlueprintVersionMutation) SetCompiledFlowVersionID(s string) {
	m.compiled_flow_version_id = &s
}

// CompiledFlowVersionID returns the value of the "compiled_flow_version_id" field in the mutation.
func (m *BlueprintVersionMutation) CompiledFlowVersionID() (r string, exists bool) {
	v := m.compiled_flow_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledFlowVersionID returns the old "compiled_flow_version_id" field's value of the BlueprintVersion entity.
// If the BlueprintVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintVersionMutation) OldCompiledFlowVersionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledFlowVersionID: %w", err)
	}
	return oldValue.CompiledFlowVersionID, nil
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (m *BlueprintVersionMutation) ClearCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	m.clearedFields[blueprintversion.FieldCompiledFlowVersionID] = struct{}{}
}

// CompiledFlowVersionIDCleared returns if the "compiled_flow_version_id" field was cleared in this mutation.
func (m *BlueprintVersionMutation) CompiledFlowVersionIDCleared() bool {
	_, ok := m.clearedFields[blueprintversion.FieldCompiledFlowVersionID]
	return ok
}

// ResetCompiledFlowVersionID resets all changes to the "compiled_flow_version_id" field.
func (m *BlueprintVersionMutation) ResetCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	delete(m.clearedFields, blueprintversion.FieldCompiledFlowVersionID)
}

// SetPublishedBy sets the "published_by" field.
func (m *BlueprintVersionMutation) SetPublishedBy(s string) {
	m.published_by = &s
}

// PublishedBy returns the value of the "published_by" field in the mutation.
func (m *BlueprintVersionMutation) PublishedBy() (r string, exists bool) {
	v := m.published_by
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedBy returns the old "published_by" field's value of the BlueprintVersion entity.
// If the BlueprintVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintVersionMutation) OldPublishedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedBy: %w", err)
	}
	return oldValue.PublishedBy, nil
}

// ClearPublishedBy clears the value of the "published_by" field.
func (m *BlueprintVersionMutation) ClearPublishedBy() {
	m.published_by = nil
	m.clearedFields[blueprintversion.FieldPublishedBy] = struct{}{}
}

// PublishedByCleared returns if the "published_by" field was cleared in this mutation.
func (m *BlueprintVersionMutation) PublishedByCleared() bool {
	_, ok := m.clearedFields[blueprintversion.FieldPublishedBy]
	return ok
}

// ResetPublishedBy resets all changes to the "published_by" field.
func (m *BlueprintVersionMutation) ResetPublishedBy() {
	m.published_by = nil
	delete(m.clearedFields, blueprintversion.FieldPublishedBy)
}

// SetPublishNote sets the "publish_note" field.
func (m *BlueprintVersionMutation) SetPublishNote(s string) {
	m.publish_note = &s
}

// PublishNote returns the value of the "publish_note" field in the mutation.
func (m *BlueprintVersionMutation) PublishNote() (r string, exists bool) {
	v := m.publish_note
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishNote returns the old "publish_note" field's value of the BlueprintVersion entity.
// If the BlueprintVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintVersionMutation) OldPublishNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishNote: %w", err)
	}
	return oldValue.PublishNote, nil
}

// ClearPublishNote clears the value of the "publish_note" field.
func (m *BlueprintVersionMutation) ClearPublishNote() {
	m.publish_note = nil
	m.clearedFields[blueprintversion.FieldPublishNote] = struct{}{}
}

// PublishNoteCleared returns if the "publish_note" field was cleared in this mutation.
func (m *BlueprintVersionMutation) PublishNoteCleared() bool {
	_, ok := m.clearedFields[blueprintversion.FieldPublishNote]
	return ok
}

// ResetPublishNote resets all changes to the "publish_note" field.
func (m *BlueprintVersionMutation) ResetPublishNote() {
	m.publish_note = nil
	delete(m.clearedFields, blueprintversion.FieldPublishNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlueprintVersion entity.
// If the BlueprintVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlueprintVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (m *BlueprintVersionMutation) ClearBlueprint() {
	m.clearedblueprint = true
	m.clearedFields[blueprintversion.FieldBlueprintID] = struct{}{}
}

// BlueprintCleared reports if the "blueprint" edge to the Blueprint entity was cleared.
func (m *BlueprintVersionMutation) BlueprintCleared() bool {
	return m.clearedblueprint
}

// BlueprintIDs returns the "blueprint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlueprintID instead. It exists only for internal usage by the builders.
func (m *BlueprintVersionMutation) BlueprintIDs() (ids []string) {
	if id := m.blueprint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlueprint resets all changes to the "blueprint" edge.
func (m *BlueprintVersionMutation) ResetBlueprint() {
	m.blueprint = nil
	m.clearedblueprint = false
}

// Where appends a list predicates to the BlueprintVersionMutation builder.
func (m *BlueprintVersionMutation) Where(ps ...predicate.BlueprintVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlueprintVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlueprintVersion).
func (m *BlueprintVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintVersionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.blueprint != nil {
		fields = append(fields, blueprintversion.FieldBlueprintID)
	}
	if m.version_number != nil {
		fields = append(fields, blueprintversion.FieldVersionNumber)
	}
	if m.snapshot != nil {
		fields = append(fields, blueprintversion.FieldSnapshot)
	}
	if m.compiled_flow_version_id != nil {
		fields = append(fields, blueprintversion.FieldCompiledFlowVersionID)
	}
	if m.published_by != nil {
		fields = append(fields, blueprintversion.FieldPublishedBy)
	}
	if m.publish_note != nil {
		fields = append(fields, blueprintversion.FieldPublishNote)
	}
	if m.created_at != nil {
		fields = append(fields, blueprintversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprintversion.FieldBlueprintID:
		return m.BlueprintID()
	case blueprintversion.FieldVersionNumber:
		return m.VersionNumber()
	case blueprintversion.FieldSnapshot:
		return m.Snapshot()
	case blueprintversion.FieldCompiledFlowVersionID:
		return m.CompiledFlowVersionID()
	case blueprintversion.FieldPublishedBy:
		return m.PublishedBy()
	case blueprintversion.FieldPublishNote:
		return m.PublishNote()
	case blueprintversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprintversion.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case blueprintversion.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case blueprintversion.FieldSnapshot:
		return m.OldSnapshot(ctx)
	case blueprintversion.FieldCompiledFlowVersionID:
		return m.OldCompiledFlowVersionID(ctx)
	case blueprintversion.FieldPublishedBy:
		return m.OldPublishedBy(ctx)
	case blueprintversion.FieldPublishNote:
		return m.OldPublishNote(ctx)
	case blueprintversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlueprintVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprintversion.FieldBlueprintID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case blueprintversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case blueprintversion.FieldSnapshot:
		v, ok := value.(*models.BlueprintSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshot(v)
		return nil
	case blueprintversion.FieldCompiledFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledFlowVersionID(v)
		return nil
	case blueprintversion.FieldPublishedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedBy(v)
		return nil
	case blueprintversion.FieldPublishNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishNote(v)
		return nil
	case blueprintversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, blueprintversion.FieldVersionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprintversion.FieldVersionNumber:
		return m.AddedVersionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprintversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprintversion.FieldCompiledFlowVersionID) {
		fields = append(fields, blueprintversion.FieldCompiledFlowVersionID)
	}
	if m.FieldCleared(blueprintversion.FieldPublishedBy) {
		fields = append(fields, blueprintversion.FieldPublishedBy)
	}
	if m.FieldCleared(blueprintversion.FieldPublishNote) {
		fields = append(fields, blueprintversion.FieldPublishNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintVersionMutation) ClearField(name string) error {
	switch name {
	case blueprintversion.FieldCompiledFlowVersionID:
		m.ClearCompiledFlowVersionID()
		return nil
	case blueprintversion.FieldPublishedBy:
		m.ClearPublishedBy()
		return nil
	case blueprintversion.FieldPublishNote:
		m.ClearPublishNote()
		return nil
	}
	return fmt.Errorf("unknown BlueprintVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintVersionMutation) ResetField(name string) error {
	switch name {
	case blueprintversion.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case blueprintversion.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case blueprintversion.FieldSnapshot:
		m.ResetSnapshot()
		return nil
	case blueprintversion.FieldCompiledFlowVersionID:
		m.ResetCompiledFlowVersionID()
		return nil
	case blueprintversion.FieldPublishedBy:
		m.ResetPublishedBy()
		return nil
	case blueprintversion.FieldPublishNote:
		m.ResetPublishNote()
		return nil
	case blueprintversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlueprintVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.blueprint != nil {
		edges = append(edges, blueprintversion.EdgeBlueprint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blueprintversion.EdgeBlueprint:
		if id := m.blueprint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedblueprint {
		edges = append(edges, blueprintversion.EdgeBlueprint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case blueprintversion.EdgeBlueprint:
		return m.clearedblueprint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintVersionMutation) ClearEdge(name string) error {
	switch name {
	case blueprintversion.EdgeBlueprint:
		m.ClearBlueprint()
		return nil
	}
	return fmt.Errorf("unknown BlueprintVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintVersionMutation) ResetEdge(name string) error {
	switch name {
	case blueprintversion.EdgeBlueprint:
		m.ResetBlueprint()
		return nil
	}
	return fmt.Errorf("unknown BlueprintVersion edge %s", name)
}

// CompiledComplianceRuleMutation represents an operation that mutates the CompiledComplianceRule nodes in the graph.
type CompiledComplianceRuleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	rule_type           *compiledcompliancerule.RuleType
	target_step_id      *string
	phrases             *[]string
	appendphrases       []string
	match_mode          *compiledcompliancerule.MatchMode
	severity            *compiledcompliancerule.Severity
	action_on_fail      *compiledcompliancerule.ActionOnFail
	timing_constraints  **models.TimingConstraints
	params              *map[string]interface{}
	clearedFields       map[string]struct{}
	flow_version        *string
	clearedflow_version bool
	done                bool
	oldValue            func(context.Context) (*CompiledComplianceRule, error)
	predicates          []predicate.CompiledComplianceRule
}

var _ ent.Mutation = (*CompiledComplianceRuleMutation)(nil)

// compiledcomplianceruleOption allows management of the mutation configuration using functional options.
type compiledcomplianceruleOption func(*CompiledComplianceRuleMutation)

// newCompiledComplianceRuleMutation creates new mutation for the CompiledComplianceRule entity.
func newCompiledComplianceRuleMutation(c config, op Op, opts ...compiledcomplianceruleOption) *CompiledComplianceRuleMutation {
	m := &CompiledComplianceRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeCompiledComplianceRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompiledComplianceRuleID sets the ID field of the mutation.
func withCompiledComplianceRuleID(id string) compiledcomplianceruleOption {
	return func(m *CompiledComplianceRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *CompiledComplianceRule
		)
		m.oldValue = func(ctx context.Context) (*CompiledComplianceRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompiledComplianceRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompiledComplianceRule sets the old CompiledComplianceRule of the mutation.
func withCompiledComplianceRule(node *CompiledComplianceRule) compiledcomplianceruleOption {
	return func(m *CompiledComplianceRuleMutation) {
		m.oldValue = func(context.Context) (*CompiledComplianceRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompiledComplianceRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompiledComplianceRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompiledComplianceRule entities.
func (m *CompiledComplianceRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompiledComplianceRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompiledComplianceRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompiledComplianceRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFlowVersionID sets the "flow_version_id" field.
func (m *CompiledComplianceRuleMutation) SetFlowVersionID(s string) {
	m.flow_version = &s
}

// FlowVersionID returns the value of the "flow_version_id" field in the mutation.
func (m *CompiledComplianceRuleMutation) FlowVersionID() (r string, exists bool) {
	v := m.flow_version
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowVersionID returns the old "flow_version_id" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldFlowVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowVersionID: %w", err)
	}
	return oldValue.FlowVersionID, nil
}

// ResetFlowVersionID resets all changes to the "flow_version_id" field.
func (m *CompiledComplianceRuleMutation) ResetFlowVersionID() {
	m.flow_version = nil
}

// SetRuleType sets the "rule_type" field.
func (m *CompiledComplianceRuleMutation) SetRuleType(ct compiledcompliancerule.RuleType) {
	m.rule_type = &ct
}

// RuleType returns the value of the "rule_type" field in the mutation.
func (m *CompiledComplianceRuleMutation) RuleType() (r compiledcompliancerule.RuleType, exists bool) {
	v := m.rule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleType returns the old "rule_type" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldRuleType(ctx context.Context) (v compiledcompliancerule.RuleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleType: %w", err)
	}
	return oldValue.RuleType, nil
}

// ResetRuleType resets all changes to the "rule_type" field.
func (m *CompiledComplianceRuleMutation) ResetRuleType() {
	m.rule_type = nil
}

// SetTargetStepID sets the "target_step_id" field.
func (m *CompiledComplianceRuleMutation) SetTargetStepID(s string) {
	m.target_step_id = &s
}

// TargetStepID returns the value of the "target_step_id" field in the mutation.
func (m *CompiledComplianceRuleMutation) TargetStepID() (r string, exists bool) {
	v := m.target_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetStepID returns the old "target_step_id" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldTargetStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetStepID: %w", err)
	}
	return oldValue.TargetStepID, nil
}

// ClearTargetStepID clears the value of the "target_step_id" field.
func (m *CompiledComplianceRuleMutation) ClearTargetStepID() {
	m.target_step_id = nil
	m.clearedFields[compiledcompliancerule.FieldTargetStepID] = struct{}{}
}

// TargetStepIDCleared returns if the "target_step_id" field was cleared in this mutation.
func (m *CompiledComplianceRuleMutation) TargetStepIDCleared() bool {
	_, ok := m.clearedFields[compiledcompliancerule.FieldTargetStepID]
	return ok
}

// ResetTargetStepID resets all changes to the "target_step_id" field.
func (m *CompiledComplianceRuleMutation) ResetTargetStepID() {
	m.target_step_id = nil
	delete(m.clearedFields, compiledcompliancerule.FieldTargetStepID)
}

// SetPhrases sets the "phrases" field.
func (m *CompiledComplianceRuleMutation) SetPhrases(s []string) {
	m.phrases = &s
	m.appendphrases = nil
}

// Phrases returns the value of the "phrases" field in the mutation.
func (m *CompiledComplianceRuleMutation) Phrases() (r []string, exists bool) {
	v := m.phrases
	if v == nil {
		return
	}
	return *v, true
}

// OldPhrases returns the old "phrases" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldPhrases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhrases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhrases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhrases: %w", err)
	}
	return oldValue.Phrases, nil
}

// AppendPhrases adds s to the "phrases" field.
func (m *CompiledComplianceRuleMutation) AppendPhrases(s []string) {
	m.appendphrases = append(m.appendphrases, s...)
}

// AppendedPhrases returns the list of values that were appended to the "phrases" field in this mutation.
func (m *CompiledComplianceRuleMutation) AppendedPhrases() ([]string, bool) {
	if len(m.appendphrases) == 0 {
		return nil, false
	}
	return m.appendphrases, true
}

// ClearPhrases clears the value of the "phrases" field.
func (m *CompiledComplianceRuleMutation) ClearPhrases() {
	m.phrases = nil
	m.appendphrases = nil
	m.clearedFields[compiledcompliancerule.FieldPhrases] = struct{}{}
}

// PhrasesCleared returns if the "phrases" field was cleared in this mutation.
func (m *CompiledComplianceRuleMutation) PhrasesCleared() bool {
	_, ok := m.clearedFields[compiledcompliancerule.FieldPhrases]
	return ok
}

// ResetPhrases resets all changes to the "phrases" field.
func (m *CompiledComplianceRuleMutation) ResetPhrases() {
	m.phrases = nil
	m.appendphrases = nil
	delete(m.clearedFields, compiledcompliancerule.FieldPhrases)
}

// SetMatchMode sets the "match_mode" field.
func (m *CompiledComplianceRuleMutation) SetMatchMode(cm compiledcompliancerule.MatchMode) {
	m.match_mode = &cm
}

// MatchMode returns the value of the "match_mode" field in the mutation.
func (m *CompiledComplianceRuleMutation) MatchMode() (r compiledcompliancerule.MatchMode, exists bool) {
	v := m.match_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchMode returns the old "match_mode" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldMatchMode(ctx context.Context) (v *compiledcompliancerule.MatchMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchMode: %w", err)
	}
	return oldValue.MatchMode, nil
}

// ClearMatchMode clears the value of the "match_mode" field.
func (m *CompiledComplianceRuleMutation) ClearMatchMode() {
	m.match_mode = nil
	m.clearedFields[compiledcompliancerule.FieldMatchMode] = struct{}{}
}

// MatchModeCleared returns if the "match_mode" field was cleared in this mutation.
func (m *CompiledComplianceRuleMutation) MatchModeCleared() bool {
	_, ok := m.clearedFields[compiledcompliancerule.FieldMatchMode]
	return ok
}

// ResetMatchMode resets all changes to the "match_mode" field.
func (m *CompiledComplianceRuleMutation) ResetMatchMode() {
	m.match_mode = nil
	delete(m.clearedFields, compiledcompliancerule.FieldMatchMode)
}

// SetSeverity sets the "severity" field.
func (m *CompiledComplianceRuleMutation) SetSeverity(c compiledcompliancerule.Severity) {
	m.severity = &c
}

// Severity returns the value of the "severity" field in the mutation.
func (m *CompiledComplianceRuleMutation) Severity() (r compiledcompliancerule.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldSeverity(ctx context.Context) (v compiledcompliancerule.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *CompiledComplianceRuleMutation) ResetSeverity() {
	m.severity = nil
}

// SetActionOnFail sets the "action_on_fail" field.
func (m *CompiledComplianceRuleMutation) SetActionOnFail(cof compiledcompliancerule.ActionOnFail) {
	m.action_on_fail = &cof
}

// ActionOnFail returns the value of the "action_on_fail" field in the mutation.
func (m *CompiledComplianceRuleMutation) ActionOnFail() (r compiledcompliancerule.ActionOnFail, exists bool) {
	v := m.action_on_fail
	if v == nil {
		return
	}
	return *v, true
}

// OldActionOnFail returns the old "action_on_fail" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldActionOnFail(ctx context.Context) (v *compiledcompliancerule.ActionOnFail, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionOnFail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionOnFail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionOnFail: %w", err)
	}
	return oldValue.ActionOnFail, nil
}

// ClearActionOnFail clears the value of the "action_on_fail" field.
func (m *CompiledComplianceRuleMutation) ClearActionOnFail() {
	m.action_on_fail = nil
	m.clearedFields[compiledcompliancerule.FieldActionOnFail] = struct{}{}
}

// ActionOnFailCleared returns if the "action_on_fail" field was cleared in this mutation.
func (m *CompiledComplianceRuleMutation) ActionOnFailCleared() bool {
	_, ok := m.clearedFields[compiledcompliancerule.FieldActionOnFail]
	return ok
}

// ResetActionOnFail resets all changes to the "action_on_fail" field.
func (m *CompiledComplianceRuleMutation) ResetActionOnFail() {
	m.action_on_fail = nil
	delete(m.clearedFields, compiledcompliancerule.FieldActionOnFail)
}

// SetTimingConstraints sets the "timing_constraints" field.
func (m *CompiledComplianceRuleMutation) SetTimingConstraints(mc *models.TimingConstraints) {
	m.timing_constraints = &mc
}

// TimingConstraints returns the value of the "timing_constraints" field in the mutation.
func (m *CompiledComplianceRuleMutation) TimingConstraints() (r *models.TimingConstraints, exists bool) {
	v := m.timing_constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldTimingConstraints returns the old "timing_constraints" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldTimingConstraints(ctx context.Context) (v *models.TimingConstraints, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimingConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimingConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimingConstraints: %w", err)
	}
	return oldValue.TimingConstraints, nil
}

// ClearTimingConstraints clears the value of the "timing_constraints" field.
func (m *CompiledComplianceRuleMutation) ClearTimingConstraints() {
	m.timing_constraints = nil
	m.clearedFields[compiledcompliancerule.FieldTimingConstraints] = struct{}{}
}

// TimingConstraintsCleared returns if the "timing_constraints" field was cleared in this mutation.
func (m *CompiledComplianceRuleMutation) TimingConstraintsCleared() bool {
	_, ok := m.clearedFields[compiledcompliancerule.FieldTimingConstraints]
	return ok
}

// ResetTimingConstraints resets all changes to the "timing_constraints" field.
func (m *CompiledComplianceRuleMutation) ResetTimingConstraints() {
	m.timing_constraints = nil
	delete(m.clearedFields, compiledcompliancerule.FieldTimingConstraints)
}

// SetParams sets the "params" field.
func (m *CompiledComplianceRuleMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *CompiledComplianceRuleMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the CompiledComplianceRule entity.
// If the CompiledComplianceRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledComplianceRuleMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *CompiledComplianceRuleMutation) ClearParams() {
	m.params = nil
	m.clearedFields[compiledcompliancerule.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *CompiledComplianceRuleMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[compiledcompliancerule.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *CompiledComplianceRuleMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, compiledcompliancerule.FieldParams)
}

// ClearFlowVersion clears the "flow_version" edge to the CompiledFlowVersion entity.
func (m *CompiledComplianceRuleMutation) ClearFlowVersion() {
	m.clearedflow_version = true
	m.clearedFields[compiledcompliancerule.FieldFlowVersionID] = struct{}{}
}

// FlowVersionCleared reports if the "flow_version" edge to the CompiledFlowVersion entity was cleared.
func (m *CompiledComplianceRuleMutation) FlowVersionCleared() bool {
	return m.clearedflow_version
}

// FlowVersionIDs returns the "flow_version" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlowVersionID instead. It exists only for internal usage by the builders.
func (m *CompiledComplianceRuleMutation) FlowVersionIDs() (ids []string) {
	if id := m.flow_version; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlowVersion resets all changes to the "flow_version" edge.
func (m *CompiledComplianceRuleMutation) ResetFlowVersion() {
	m.flow_version = nil
	m.clearedflow_version = false
}

// Where appends a list predicates to the CompiledComplianceRuleMutation builder.
func (m *CompiledComplianceRuleMutation) Where(ps ...predicate.CompiledComplianceRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompiledComplianceRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompiledComplianceRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompiledComplianceRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompiledComplianceRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompiledComplianceRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompiledComplianceRule).
func (m *CompiledComplianceRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompiledComplianceRuleMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.flow_version != nil {
		fields = append(fields, compiledcompliancerule.FieldFlowVersionID)
	}
	if m.rule_type != nil {
		fields = append(fields, compiledcompliancerule.FieldRuleType)
	}
	if m.target_step_id != nil {
		fields = append(fields, compiledcompliancerule.FieldTargetStepID)
	}
	if m.phrases != nil {
		fields = append(fields, compiledcompliancerule.FieldPhrases)
	}
	if m.match_mode != nil {
		fields = append(fields, compiledcompliancerule.FieldMatchMode)
	}
	if m.severity != nil {
		fields = append(fields, compiledcompliancerule.FieldSeverity)
	}
	if m.action_on_fail != nil {
		fields = append(fields, compiledcompliancerule.FieldActionOnFail)
	}
	if m.timing_constraints != nil {
		fields = append(fields, compiledcompliancerule.FieldTimingConstraints)
	}
	if m.params != nil {
		fields = append(fields, compiledcompliancerule.FieldParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompiledComplianceRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compiledcompliancerule.FieldFlowVersionID:
		return m.FlowVersionID()
	case compiledcompliancerule.FieldRuleType:
		return m.RuleType()
	case compiledcompliancerule.FieldTargetStepID:
		return m.TargetStepID()
	case compiledcompliancerule.FieldPhrases:
		return m.Phrases()
	case compiledcompliancerule.FieldMatchMode:
		return m.MatchMode()
	case compiledcompliancerule.FieldSeverity:
		return m.Severity()
	case compiledcompliancerule.FieldActionOnFail:
		return m.ActionOnFail()
	case compiledcompliancerule.FieldTimingConstraints:
		return m.TimingConstraints()
	case compiledcompliancerule.FieldParams:
		return m.Params()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompiledComplianceRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compiledcompliancerule.FieldFlowVersionID:
		return m.OldFlowVersionID(ctx)
	case compiledcompliancerule.FieldRuleType:
		return m.OldRuleType(ctx)
	case compiledcompliancerule.FieldTargetStepID:
		return m.OldTargetStepID(ctx)
	case compiledcompliancerule.FieldPhrases:
		return m.OldPhrases(ctx)
	case compiledcompliancerule.FieldMatchMode:
		return m.OldMatchMode(ctx)
	case compiledcompliancerule.FieldSeverity:
		return m.OldSeverity(ctx)
	case compiledcompliancerule.FieldActionOnFail:
		return m.OldActionOnFail(ctx)
	case compiledcompliancerule.FieldTimingConstraints:
		return m.OldTimingConstraints(ctx)
	case compiledcompliancerule.FieldParams:
		return m.OldParams(ctx)
	}
	return nil, fmt.Errorf("unknown CompiledComplianceRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledComplianceRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compiledcompliancerule.FieldFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowVersionID(v)
		return nil
	case compiledcompliancerule.FieldRuleType:
		v, ok := value.(compiledcompliancerule.RuleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleType(v)
		return nil
	case compiledcompliancerule.FieldTargetStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetStepID(v)
		return nil
	case compiledcompliancerule.FieldPhrases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhrases(v)
		return nil
	case compiledcompliancerule.FieldMatchMode:
		v, ok := value.(compiledcompliancerule.MatchMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchMode(v)
		return nil
	case compiledcompliancerule.FieldSeverity:
		v, ok := value.(compiledcompliancerule.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case compiledcompliancerule.FieldActionOnFail:
		v, ok := value.(compiledcompliancerule.ActionOnFail)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionOnFail(v)
		return nil
	case compiledcompliancerule.FieldTimingConstraints:
		v, ok := value.(*models.TimingConstraints)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimingConstraints(v)
		return nil
	case compiledcompliancerule.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	}
	return fmt.Errorf("unknown CompiledComplianceRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompiledComplianceRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompiledComplianceRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledComplianceRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CompiledComplianceRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompiledComplianceRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(compiledcompliancerule.FieldTargetStepID) {
		fields = append(fields, compiledcompliancerule.FieldTargetStepID)
	}
	if m.FieldCleared(compiledcompliancerule.FieldPhrases) {
		fields = append(fields, compiledcompliancerule.FieldPhrases)
	}
	if m.FieldCleared(compiledcompliancerule.FieldMatchMode) {
		fields = append(fields, compiledcompliancerule.FieldMatchMode)
	}
	if m.FieldCleared(compiledcompliancerule.FieldActionOnFail) {
		fields = append(fields, compiledcompliancerule.FieldActionOnFail)
	}
	if m.FieldCleared(compiledcompliancerule.FieldTimingConstraints) {
		fields = append(fields, compiledcompliancerule.FieldTimingConstraints)
	}
	if m.FieldCleared(compiledcompliancerule.FieldParams) {
		fields = append(fields, compiledcompliancerule.FieldParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompiledComplianceRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompiledComplianceRuleMutation) ClearField(name string) error {
	switch name {
	case compiledcompliancerule.FieldTargetStepID:
		m.ClearTargetStepID()
		return nil
	case compiledcompliancerule.FieldPhrases:
		m.ClearPhrases()
		return nil
	case compiledcompliancerule.FieldMatchMode:
		m.ClearMatchMode()
		return nil
	case compiledcompliancerule.FieldActionOnFail:
		m.ClearActionOnFail()
		return nil
	case compiledcompliancerule.FieldTimingConstraints:
		m.ClearTimingConstraints()
		return nil
	case compiledcompliancerule.FieldParams:
		m.ClearParams()
		return nil
	}
	return fmt.Errorf("unknown CompiledComplianceRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompiledComplianceRuleMutation) ResetField(name string) error {
	switch name {
	case compiledcompliancerule.FieldFlowVersionID:
		m.ResetFlowVersionID()
		return nil
	case compiledcompliancerule.FieldRuleType:
		m.ResetRuleType()
		return nil
	case compiledcompliancerule.FieldTargetStepID:
		m.ResetTargetStepID()
		return nil
	case compiledcompliancerule.FieldPhrases:
		m.ResetPhrases()
		return nil
	case compiledcompliancerule.FieldMatchMode:
		m.ResetMatchMode()
		return nil
	case compiledcompliancerule.FieldSeverity:
		m.ResetSeverity()
		return nil
	case compiledcompliancerule.FieldActionOnFail:
		m.ResetActionOnFail()
		return nil
	case compiledcompliancerule.FieldTimingConstraints:
		m.ResetTimingConstraints()
		return nil
	case compiledcompliancerule.FieldParams:
		m.ResetParams()
		return nil
	}
	return fmt.Errorf("unknown CompiledComplianceRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompiledComplianceRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.flow_version != nil {
		edges = append(edges, compiledcompliancerule.EdgeFlowVersion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompiledComplianceRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case compiledcompliancerule.EdgeFlowVersion:
		if id := m.flow_version; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompiledComplianceRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompiledComplianceRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompiledComplianceRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedflow_version {
		edges = append(edges, compiledcompliancerule.EdgeFlowVersion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompiledComplianceRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case compiledcompliancerule.EdgeFlowVersion:
		return m.clearedflow_version
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompiledComplianceRuleMutation) ClearEdge(name string) error {
	switch name {
	case compiledcompliancerule.EdgeFlowVersion:
		m.ClearFlowVersion()
		return nil
	}
	return fmt.Errorf("unknown CompiledComplianceRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompiledComplianceRuleMutation) ResetEdge(name string) error {
	switch name {
	case compiledcompliancerule.EdgeFlowVersion:
		m.ResetFlowVersion()
		return nil
	}
	return fmt.Errorf("unknown CompiledComplianceRule edge %s", name)
}

// CompiledFlowStageMutation represents an operation that mutates the CompiledFlowStage nodes in the graph.
type CompiledFlowStageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	stage_name          *string
	ordering_index      *int
	addordering_index   *int
	stage_weight        *float64
	addstage_weight     *float64
	clearedFields       map[string]struct{}
	flow_version        *string
	clearedflow_version bool
	steps               map[string]struct{}
	removedsteps        map[string]struct{}
	clearedsteps        bool
	done                bool
	oldValue            func(context.Context) (*CompiledFlowStage, error)
	predicates          []predicate.CompiledFlowStage
}

var _ ent.Mutation = (*CompiledFlowStageMutation)(nil)

// compiledflowstageOption allows management of the mutation configuration using functional options.
type compiledflowstageOption func(*CompiledFlowStageMutation)

// newCompiledFlowStageMutation creates new mutation for the CompiledFlowStage entity.
func newCompiledFlowStageMutation(c config, op Op, opts ...compiledflowstageOption) *CompiledFlowStageMutation {
	m := &CompiledFlowStageMutation{
		config:        c,
		op:            op,
		typ:           TypeCompiledFlowStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompiledFlowStageID sets the ID field of the mutation.
func withCompiledFlowStageID(id string) compiledflowstageOption {
	return func(m *CompiledFlowStageMutation) {
		var (
			err   error
			once  sync.Once
			value *CompiledFlowStage
		)
		m.oldValue = func(ctx context.Context) (*CompiledFlowStage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompiledFlowStage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompiledFlowStage sets the old CompiledFlowStage of the mutation.
func withCompiledFlowStage(node *CompiledFlowStage) compiledflowstageOption {
	return func(m *CompiledFlowStageMutation) {
		m.oldValue = func(context.Context) (*CompiledFlowStage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompiledFlowStageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompiledFlowStageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompiledFlowStage entities.
func (m *CompiledFlowStageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompiledFlowStageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompiledFlowStageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompiledFlowStage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFlowVersionID sets the "flow_version_id" field.
func (m *CompiledFlowStageMutation) SetFlowVersionID(s string) {
	m.flow_version = &s
}

// FlowVersionID returns the value of the "flow_version_id" field in the mutation.
func (m *CompiledFlowStageMutation) FlowVersionID() (r string, exists bool) {
	v := m.flow_version
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowVersionID returns the old "flow_version_id" field's value of the CompiledFlowStage entity.
// If the CompiledFlowStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStageMutation) OldFlowVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowVersionID: %w", err)
	}
	return oldValue.FlowVersionID, nil
}

// ResetFlowVersionID resets all changes to the "flow_version_id" field.
func (m *CompiledFlowStageMutation) ResetFlowVersionID() {
	m.flow_version = nil
}

// SetStageName sets the "stage_name" field.
func (m *CompiledFlowStageMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *CompiledFlowStageMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the CompiledFlowStage entity.
// If the CompiledFlowStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStageMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *CompiledFlowStageMutation) ResetStageName() {
	m.stage_name = nil
}

// SetOrderingIndex sets the "ordering_index" field.
func (m *CompiledFlowStageMutation) SetOrderingIndex(i int) {
	m.ordering_index = &i
	m.addordering_index = nil
}

// OrderingIndex returns the value of the "ordering_index" field in the mutation.
func (m *CompiledFlowStageMutation) OrderingIndex() (r int, exists bool) {
	v := m.ordering_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderingIndex returns the old "ordering_index" field's value of the CompiledFlowStage entity.
// If the CompiledFlowStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStageMutation) OldOrderingIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderingIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderingIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderingIndex: %w", err)
	}
	return oldValue.OrderingIndex, nil
}

// AddOrderingIndex adds i to the "ordering_index" field.
func (m *CompiledFlowStageMutation) AddOrderingIndex(i int) {
	if m.addordering_index != nil {
		*m.addordering_index += i
	} else {
		m.addordering_index = &i
	}
}

// AddedOrderingIndex returns the value that was added to the "ordering_index" field in this mutation.
func (m *CompiledFlowStageMutation) AddedOrderingIndex() (r int, exists bool) {
	v := m.addordering_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderingIndex resets all changes to the "ordering_index" field.
func (m *CompiledFlowStageMutation) ResetOrderingIndex() {
	m.ordering_index = nil
	m.addordering_index = nil
}

// SetStageWeight sets the "stage_weight" field.
func (m *CompiledFlowStageMutation) SetStageWeight(f float64) {
	m.stage_weight = &f
	m.addstage_weight = nil
}

// StageWeight returns the value of the "stage_weight" field in the mutation.
func (m *CompiledFlowStageMutation) StageWeight() (r float64, exists bool) {
	v := m.stage_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldStageWeight returns the old "stage_weight" field's value of the CompiledFlowStage entity.
// If the CompiledFlowStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStageMutation) OldStageWeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageWeight: %w", err)
	}
	return oldValue.StageWeight, nil
}

// AddStageWeight adds f to the "stage_weight" field.
func (m *CompiledFlowStageMutation) AddStageWeight(f float64) {
	if m.addstage_weight != nil {
		*m.addstage_weight += f
	} else {
		m.addstage_weight = &f
	}
}

// AddedStageWeight returns the value that was added to the "stage_weight" field in this mutation.
func (m *CompiledFlowStageMutation) AddedStageWeight() (r float64, exists bool) {
	v := m.addstage_weight
	if v == nil {
		return
	}
	return *v, true
}

// ClearStageWeight clears the value of the "stage_weight" field.
func (m *CompiledFlowStageMutation) ClearStageWeight() {
	m.stage_weight = nil
	m.addstage_weight = nil
	m.clearedFields[compiledflowstage.FieldStageWeight] = struct{}{}
}

// StageWeightCleared returns if the "stage_weight" field was cleared in this mutation.
func (m *CompiledFlowStageMutation) StageWeightCleared() bool {
	_, ok := m.clearedFields[compiledflowstage.FieldStageWeight]
	return ok
}

// ResetStageWeight resets all changes to the "stage_weight" field.
func (m *CompiledFlowStageMutation) ResetStageWeight() {
	m.stage_weight = nil
	m.addstage_weight = nil
	delete(m.clearedFields, compiledflowstage.FieldStageWeight)
}

// ClearFlowVersion clears the "flow_version" edge to the CompiledFlowVersion entity.
func (m *CompiledFlowStageMutation) ClearFlowVersion() {
	m.clearedflow_version = true
	m.clearedFields[compiledflowstage.FieldFlowVersionID] = struct{}{}
}

// FlowVersionCleared reports if the "flow_version" edge to the CompiledFlowVersion entity was cleared.
func (m *CompiledFlowStageMutation) FlowVersionCleared() bool {
	return m.clearedflow_version
}

// FlowVersionIDs returns the "flow_version" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlowVersionID instead. It exists only for internal usage by the builders.
func (m *CompiledFlowStageMutation) FlowVersionIDs() (ids []string) {
	if id := m.flow_version; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlowVersion resets all changes to the "flow_version" edge.
func (m *CompiledFlowStageMutation) ResetFlowVersion() {
	m.flow_version = nil
	m.clearedflow_version = false
}

// AddStepIDs adds the "steps" edge to the CompiledFlowStep entity by ids.
func (m *CompiledFlowStageMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the CompiledFlowStep entity.
func (m *CompiledFlowStageMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the CompiledFlowStep entity was cleared.
func (m *CompiledFlowStageMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the CompiledFlowStep entity by IDs.
func (m *CompiledFlowStageMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the CompiledFlowStep entity.
func (m *CompiledFlowStageMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *CompiledFlowStageMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *CompiledFlowStageMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the CompiledFlowStageMutation builder.
func (m *CompiledFlowStageMutation) Where(ps ...predicate.CompiledFlowStage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompiledFlowStageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompiledFlowStageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompiledFlowStage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompiledFlowStageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompiledFlowStageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompiledFlowStage).
func (m *CompiledFlowStageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompiledFlowStageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.flow_version != nil {
		fields = append(fields, compiledflowstage.FieldFlowVersionID)
	}
	if m.stage_name != nil {
		fields = append(fields, compiledflowstage.FieldStageName)
	}
	if m.ordering_index != nil {
		fields = append(fields, compiledflowstage.FieldOrderingIndex)
	}
	if m.stage_weight != nil {
		fields = append(fields, compiledflowstage.FieldStageWeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompiledFlowStageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compiledflowstage.FieldFlowVersionID:
		return m.FlowVersionID()
	case compiledflowstage.FieldStageName:
		return m.StageName()
	case compiledflowstage.FieldOrderingIndex:
		return m.OrderingIndex()
	case compiledflowstage.FieldStageWeight:
		return m.StageWeight()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompiledFlowStageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compiledflowstage.FieldFlowVersionID:
		return m.OldFlowVersionID(ctx)
	case compiledflowstage.FieldStageName:
		return m.OldStageName(ctx)
	case compiledflowstage.FieldOrderingIndex:
		return m.OldOrderingIndex(ctx)
	case compiledflowstage.FieldStageWeight:
		return m.OldStageWeight(ctx)
	}
	return nil, fmt.Errorf("unknown CompiledFlowStage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledFlowStageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compiledflowstage.FieldFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowVersionID(v)
		return nil
	case compiledflowstage.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case compiledflowstage.FieldOrderingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderingIndex(v)
		return nil
	case compiledflowstage.FieldStageWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageWeight(v)
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompiledFlowStageMutation) AddedFields() []string {
	var fields []string
	if m.addordering_index != nil {
		fields = append(fields, compiledflowstage.FieldOrderingIndex)
	}
	if m.addstage_weight != nil {
		fields = append(fields, compiledflowstage.FieldStageWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompiledFlowStageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case compiledflowstage.FieldOrderingIndex:
		return m.AddedOrderingIndex()
	case compiledflowstage.FieldStageWeight:
		return m.AddedStageWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledFlowStageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case compiledflowstage.FieldOrderingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderingIndex(v)
		return nil
	case compiledflowstage.FieldStageWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageWeight(v)
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompiledFlowStageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(compiledflowstage.FieldStageWeight) {
		fields = append(fields, compiledflowstage.FieldStageWeight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompiledFlowStageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompiledFlowStageMutation) ClearField(name string) error {
	switch name {
	case compiledflowstage.FieldStageWeight:
		m.ClearStageWeight()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompiledFlowStageMutation) ResetField(name string) error {
	switch name {
	case compiledflowstage.FieldFlowVersionID:
		m.ResetFlowVersionID()
		return nil
	case compiledflowstage.FieldStageName:
		m.ResetStageName()
		return nil
	case compiledflowstage.FieldOrderingIndex:
		m.ResetOrderingIndex()
		return nil
	case compiledflowstage.FieldStageWeight:
		m.ResetStageWeight()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompiledFlowStageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.flow_version != nil {
		edges = append(edges, compiledflowstage.EdgeFlowVersion)
	}
	if m.steps != nil {
		edges = append(edges, compiledflowstage.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompiledFlowStageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case compiledflowstage.EdgeFlowVersion:
		if id := m.flow_version; id != nil {
			return []ent.Value{*id}
		}
	case compiledflowstage.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompiledFlowStageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, compiledflowstage.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompiledFlowStageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case compiledflowstage.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompiledFlowStageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedflow_version {
		edges = append(edges, compiledflowstage.EdgeFlowVersion)
	}
	if m.clearedsteps {
		edges = append(edges, compiledflowstage.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompiledFlowStageMutation) EdgeCleared(name string) bool {
	switch name {
	case compiledflowstage.EdgeFlowVersion:
		return m.clearedflow_version
	case compiledflowstage.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompiledFlowStageMutation) ClearEdge(name string) error {
	switch name {
	case compiledflowstage.EdgeFlowVersion:
		m.ClearFlowVersion()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompiledFlowStageMutation) ResetEdge(name string) error {
	switch name {
	case compiledflowstage.EdgeFlowVersion:
		m.ResetFlowVersion()
		return nil
	case compiledflowstage.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStage edge %s", name)
}

// CompiledFlowStepMutation represents an operation that mutates the CompiledFlowStep nodes in the graph.
type CompiledFlowStepMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	flow_version_id        *string
	step_name              *string
	description            *string
	ordering_index         *int
	addordering_index      *int
	expected_role          *compiledflowstep.ExpectedRole
	expected_phrases       *[]string
	appendexpected_phrases []string
	detection_hint         *compiledflowstep.DetectionHint
	behavior_type          *compiledflowstep.BehaviorType
	critical_action        *compiledflowstep.CriticalAction
	weight                 *float64
	addweight              *float64
	metadata               *map[string]interface{}
	clearedFields          map[string]struct{}
	stage                  *string
	clearedstage           bool
	done                   bool
	oldValue               func(context.Context) (*CompiledFlowStep, error)
	predicates             []predicate.CompiledFlowStep
}

var _ ent.Mutation = (*CompiledFlowStepMutation)(nil)

// compiledflowstepOption allows management of the mutation configuration using functional options.
type compiledflowstepOption func(*CompiledFlowStepMutation)

// newCompiledFlowStepMutation creates new mutation for the CompiledFlowStep entity.
func newCompiledFlowStepMutation(c config, op Op, opts ...compiledflowstepOption) *CompiledFlowStepMutation {
	m := &CompiledFlowStepMutation{
		config:        c,
		op:            op,
		typ:           TypeCompiledFlowStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompiledFlowStepID sets the ID field of the mutation.
func withCompiledFlowStepID(id string) compiledflowstepOption {
	return func(m *CompiledFlowStepMutation) {
		var (
			err   error
			once  sync.Once
			value *CompiledFlowStep
		)
		m.oldValue = func(ctx context.Context) (*CompiledFlowStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompiledFlowStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompiledFlowStep sets the old CompiledFlowStep of the mutation.
func withCompiledFlowStep(node *CompiledFlowStep) compiledflowstepOption {
	return func(m *CompiledFlowStepMutation) {
		m.oldValue = func(context.Context) (*CompiledFlowStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompiledFlowStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompiledFlowStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompiledFlowStep entities.
func (m *CompiledFlowStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompiledFlowStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompiledFlowStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompiledFlowStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompiledStageID sets the "compiled_stage_id" field.
func (m *CompiledFlowStepMutation) SetCompiledStageID(s string) {
	m.stage = &s
}

// CompiledStageID returns the value of the "compiled_stage_id" field in the mutation.
func (m *CompiledFlowStepMutation) CompiledStageID() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledStageID returns the old "compiled_stage_id" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldCompiledStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledStageID: %w", err)
	}
	return oldValue.CompiledStageID, nil
}

// ResetCompiledStageID resets all changes to the "compiled_stage_id" field.
func (m *CompiledFlowStepMutation) ResetCompiledStageID() {
	m.stage = nil
}

// SetFlowVersionID sets the "flow_version_id" field.
func (m *CompiledFlowStepMutation) SetFlowVersionID(s string) {
	m.flow_version_id = &s
}

// FlowVersionID returns the value of the "flow_version_id" field in the mutation.
func (m *CompiledFlowStepMutation) FlowVersionID() (r string, exists bool) {
	v := m.flow_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowVersionID returns the old "flow_version_id" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldFlowVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowVersionID: %w", err)
	}
	return oldValue.FlowVersionID, nil
}

// ResetFlowVersionID resets all changes to the "flow_version_id" field.
func (m *CompiledFlowStepMutation) ResetFlowVersionID() {
	m.flow_version_id = nil
}

// SetStepName sets the "step_name" field.
func (m *CompiledFlowStepMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *CompiledFlowStepMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *CompiledFlowStepMutation) ResetStepName() {
	m.step_name = nil
}

// SetDescription sets the "description" field.
func (m *CompiledFlowStepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CompiledFlowStepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CompiledFlowStepMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[compiledflowstep.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CompiledFlowStepMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[compiledflowstep.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CompiledFlowStepMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, compiledflowstep.FieldDescription)
}

// SetOrderingIndex sets the "ordering_index" field.
func (m *CompiledFlowStepMutation) SetOrderingIndex(i int) {
	m.ordering_index = &i
	m.addordering_index = nil
}

// OrderingIndex returns the value of the "ordering_index" field in the mutation.
func (m *CompiledFlowStepMutation) OrderingIndex() (r int, exists bool) {
	v := m.ordering_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderingIndex returns the old "ordering_index" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldOrderingIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderingIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderingIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderingIndex: %w", err)
	}
	return oldValue.OrderingIndex, nil
}

// AddOrderingIndex adds i to the "ordering_index" field.
func (m *CompiledFlowStepMutation) AddOrderingIndex(i int) {
	if m.addordering_index != nil {
		*m.addordering_index += i
	} else {
		m.addordering_index = &i
	}
}

// AddedOrderingIndex returns the value that was added to the "ordering_index" field in this mutation.
func (m *CompiledFlowStepMutation) AddedOrderingIndex() (r int, exists bool) {
	v := m.addordering_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderingIndex resets all changes to the "ordering_index" field.
func (m *CompiledFlowStepMutation) ResetOrderingIndex() {
	m.ordering_index = nil
	m.addordering_index = nil
}

// SetExpectedRole sets the "expected_role" field.
func (m *CompiledFlowStepMutation) SetExpectedRole(cr compiledflowstep.ExpectedRole) {
	m.expected_role = &cr
}

// ExpectedRole returns the value of the "expected_role" field in the mutation.
func (m *CompiledFlowStepMutation) ExpectedRole() (r compiledflowstep.ExpectedRole, exists bool) {
	v := m.expected_role
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedRole returns the old "expected_role" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldExpectedRole(ctx context.Context) (v compiledflowstep.ExpectedRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedRole: %w", err)
	}
	return oldValue.ExpectedRole, nil
}

// ResetExpectedRole resets all changes to the "expected_role" field.
func (m *CompiledFlowStepMutation) ResetExpectedRole() {
	m.expected_role = nil
}

// SetExpectedPhrases sets the "expected_phrases" field.
func (m *CompiledFlowStepMutation) SetExpectedPhrases(s []string) {
	m.expected_phrases = &s
	m.appendexpected_phrases = nil
}

// ExpectedPhrases returns the value of the "expected_phrases" field in the mutation.
func (m *CompiledFlowStepMutation) ExpectedPhrases() (r []string, exists bool) {
	v := m.expected_phrases
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedPhrases returns the old "expected_phrases" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldExpectedPhrases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedPhrases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedPhrases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedPhrases: %w", err)
	}
	return oldValue.ExpectedPhrases, nil
}

// AppendExpectedPhrases adds s to the "expected_phrases" field.
func (m *CompiledFlowStepMutation) AppendExpectedPhrases(s []string) {
	m.appendexpected_phrases = append(m.appendexpected_phrases, s...)
}

// AppendedExpectedPhrases returns the list of values that were appended to the "expected_phrases" field in this mutation.
func (m *CompiledFlowStepMutation) AppendedExpectedPhrases() ([]string, bool) {
	if len(m.appendexpected_phrases) == 0 {
		return nil, false
	}
	return m.appendexpected_phrases, true
}

// ClearExpectedPhrases clears the value of the "expected_phrases" field.
func (m *CompiledFlowStepMutation) ClearExpectedPhrases() {
	m.expected_phrases = nil
	m.appendexpected_phrases = nil
	m.clearedFields[compiledflowstep.FieldExpectedPhrases] = struct{}{}
}

// ExpectedPhrasesCleared returns if the "expected_phrases" field was cleared in this mutation.
func (m *CompiledFlowStepMutation) ExpectedPhrasesCleared() bool {
	_, ok := m.clearedFields[compiledflowstep.FieldExpectedPhrases]
	return ok
}

// ResetExpectedPhrases resets all changes to the "expected_phrases" field.
func (m *CompiledFlowStepMutation) ResetExpectedPhrases() {
	m.expected_phrases = nil
	m.appendexpected_phrases = nil
	delete(m.clearedFields, compiledflowstep.FieldExpectedPhrases)
}

// SetDetectionHint sets the "detection_hint" field.
func (m *CompiledFlowStepMutation) SetDetectionHint(ch compiledflowstep.DetectionHint) {
	m.detection_hint = &ch
}

// DetectionHint returns the value of the "detection_hint" field in the mutation.
func (m *CompiledFlowStepMutation) DetectionHint() (r compiledflowstep.DetectionHint, exists bool) {
	v := m.detection_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionHint returns the old "detection_hint" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldDetectionHint(ctx context.Context) (v compiledflowstep.DetectionHint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionHint: %w", err)
	}
	return oldValue.DetectionHint, nil
}

// ResetDetectionHint resets all changes to the "detection_hint" field.
func (m *CompiledFlowStepMutation) ResetDetectionHint() {
	m.detection_hint = nil
}

// SetBehaviorType sets the "behavior_type" field.
func (m *CompiledFlowStepMutation) SetBehaviorType(ct compiledflowstep.BehaviorType) {
	m.behavior_type = &ct
}

// BehaviorType returns the value of the "behavior_type" field in the mutation.
func (m *CompiledFlowStepMutation) BehaviorType() (r compiledflowstep.BehaviorType, exists bool) {
	v := m.behavior_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBehaviorType returns the old "behavior_type" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldBehaviorType(ctx context.Context) (v compiledflowstep.BehaviorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehaviorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehaviorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehaviorType: %w", err)
	}
	return oldValue.BehaviorType, nil
}

// ResetBehaviorType resets all changes to the "behavior_type" field.
func (m *CompiledFlowStepMutation) ResetBehaviorType() {
	m.behavior_type = nil
}

// SetCriticalAction sets the "critical_action" field.
func (m *CompiledFlowStepMutation) SetCriticalAction(ca compiledflowstep.CriticalAction) {
	m.critical_action = &ca
}

// CriticalAction returns the value of the "critical_action" field in the mutation.
func (m *CompiledFlowStepMutation) CriticalAction() (r compiledflowstep.CriticalAction, exists bool) {
	v := m.critical_action
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalAction returns the old "critical_action" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldCriticalAction(ctx context.Context) (v *compiledflowstep.CriticalAction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalAction: %w", err)
	}
	return oldValue.CriticalAction, nil
}

// ClearCriticalAction clears the value of the "critical_action" field.
func (m *CompiledFlowStepMutation) ClearCriticalAction() {
	m.critical_action = nil
	m.clearedFields[compiledflowstep.FieldCriticalAction] = struct{}{}
}

// CriticalActionCleared returns if the "critical_action" field was cleared in this mutation.
func (m *CompiledFlowStepMutation) CriticalActionCleared() bool {
	_, ok := m.clearedFields[compiledflowstep.FieldCriticalAction]
	return ok
}

// ResetCriticalAction resets all changes to the "critical_action" field.
func (m *CompiledFlowStepMutation) ResetCriticalAction() {
	m.critical_action = nil
	delete(m.clearedFields, compiledflowstep.FieldCriticalAction)
}

// SetWeight sets the "weight" field.
func (m *CompiledFlowStepMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *CompiledFlowStepMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *CompiledFlowStepMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *CompiledFlowStepMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *CompiledFlowStepMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetMetadata sets the "metadata" field.
func (m *CompiledFlowStepMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CompiledFlowStepMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CompiledFlowStep entity.
// If the CompiledFlowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowStepMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CompiledFlowStepMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[compiledflowstep.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CompiledFlowStepMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[compiledflowstep.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CompiledFlowStepMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, compiledflowstep.FieldMetadata)
}

// SetStageID sets the "stage" edge to the CompiledFlowStage entity by id.
func (m *CompiledFlowStepMutation) SetStageID(id string) {
	m.stage = &id
}

// ClearStage clears the "stage" edge to the CompiledFlowStage entity.
func (m *CompiledFlowStepMutation) ClearStage() {
	m.clearedstage = true
	m.clearedFields[compiledflowstep.FieldCompiledStageID] = struct{}{}
}

// StageCleared reports if the "stage" edge to the CompiledFlowStage entity was cleared.
func (m *CompiledFlowStepMutation) StageCleared() bool {
	return m.clearedstage
}

// StageID returns the "stage" edge ID in the mutation.
func (m *CompiledFlowStepMutation) StageID() (id string, exists bool) {
	if m.stage != nil {
		return *m.stage, true
	}
	return
}

// StageIDs returns the "stage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageID instead. It exists only for internal usage by the builders.
func (m *CompiledFlowStepMutation) StageIDs() (ids []string) {
	if id := m.stage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStage resets all changes to the "stage" edge.
func (m *CompiledFlowStepMutation) ResetStage() {
	m.stage = nil
	m.clearedstage = false
}

// Where appends a list predicates to the CompiledFlowStepMutation builder.
func (m *CompiledFlowStepMutation) Where(ps ...predicate.CompiledFlowStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompiledFlowStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompiledFlowStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompiledFlowStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompiledFlowStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompiledFlowStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompiledFlowStep).
func (m *CompiledFlowStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompiledFlowStepMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.stage != nil {
		fields = append(fields, compiledflowstep.FieldCompiledStageID)
	}
	if m.flow_version_id != nil {
		fields = append(fields, compiledflowstep.FieldFlowVersionID)
	}
	if m.step_name != nil {
		fields = append(fields, compiledflowstep.FieldStepName)
	}
	if m.description != nil {
		fields = append(fields, compiledflowstep.FieldDescription)
	}
	if m.ordering_index != nil {
		fields = append(fields, compiledflowstep.FieldOrderingIndex)
	}
	if m.expected_role != nil {
		fields = append(fields, compiledflowstep.FieldExpectedRole)
	}
	if m.expected_phrases != nil {
		fields = append(fields, compiledflowstep.FieldExpectedPhrases)
	}
	if m.detection_hint != nil {
		fields = append(fields, compiledflowstep.FieldDetectionHint)
	}
	if m.behavior_type != nil {
		fields = append(fields, compiledflowstep.FieldBehaviorType)
	}
	if m.critical_action != nil {
		fields = append(fields, compiledflowstep.FieldCriticalAction)
	}
	if m.weight != nil {
		fields = append(fields, compiledflowstep.FieldWeight)
	}
	if m.metadata != nil {
		fields = append(fields, compiledflowstep.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompiledFlowStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compiledflowstep.FieldCompiledStageID:
		return m.CompiledStageID()
	case compiledflowstep.FieldFlowVersionID:
		return m.FlowVersionID()
	case compiledflowstep.FieldStepName:
		return m.StepName()
	case compiledflowstep.FieldDescription:
		return m.Description()
	case compiledflowstep.FieldOrderingIndex:
		return m.OrderingIndex()
	case compiledflowstep.FieldExpectedRole:
		return m.ExpectedRole()
	case compiledflowstep.FieldExpectedPhrases:
		return m.ExpectedPhrases()
	case compiledflowstep.FieldDetectionHint:
		return m.DetectionHint()
	case compiledflowstep.FieldBehaviorType:
		return m.BehaviorType()
	case compiledflowstep.FieldCriticalAction:
		return m.CriticalAction()
	case compiledflowstep.FieldWeight:
		return m.Weight()
	case compiledflowstep.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompiledFlowStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compiledflowstep.FieldCompiledStageID:
		return m.OldCompiledStageID(ctx)
	case compiledflowstep.FieldFlowVersionID:
		return m.OldFlowVersionID(ctx)
	case compiledflowstep.FieldStepName:
		return m.OldStepName(ctx)
	case compiledflowstep.FieldDescription:
		return m.OldDescription(ctx)
	case compiledflowstep.FieldOrderingIndex:
		return m.OldOrderingIndex(ctx)
	case compiledflowstep.FieldExpectedRole:
		return m.OldExpectedRole(ctx)
	case compiledflowstep.FieldExpectedPhrases:
		return m.OldExpectedPhrases(ctx)
	case compiledflowstep.FieldDetectionHint:
		return m.OldDetectionHint(ctx)
	case compiledflowstep.FieldBehaviorType:
		return m.OldBehaviorType(ctx)
	case compiledflowstep.FieldCriticalAction:
		return m.OldCriticalAction(ctx)
	case compiledflowstep.FieldWeight:
		return m.OldWeight(ctx)
	case compiledflowstep.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown CompiledFlowStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledFlowStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compiledflowstep.FieldCompiledStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledStageID(v)
		return nil
	case compiledflowstep.FieldFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowVersionID(v)
		return nil
	case compiledflowstep.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case compiledflowstep.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case compiledflowstep.FieldOrderingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderingIndex(v)
		return nil
	case compiledflowstep.FieldExpectedRole:
		v, ok := value.(compiledflowstep.ExpectedRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedRole(v)
		return nil
	case compiledflowstep.FieldExpectedPhrases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedPhrases(v)
		return nil
	case compiledflowstep.FieldDetectionHint:
		v, ok := value.(compiledflowstep.DetectionHint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionHint(v)
		return nil
	case compiledflowstep.FieldBehaviorType:
		v, ok := value.(compiledflowstep.BehaviorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehaviorType(v)
		return nil
	case compiledflowstep.FieldCriticalAction:
		v, ok := value.(compiledflowstep.CriticalAction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalAction(v)
		return nil
	case compiledflowstep.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case compiledflowstep.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompiledFlowStepMutation) AddedFields() []string {
	var fields []string
	if m.addordering_index != nil {
		fields = append(fields, compiledflowstep.FieldOrderingIndex)
	}
	if m.addweight != nil {
		fields = append(fields, compiledflowstep.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompiledFlowStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case compiledflowstep.FieldOrderingIndex:
		return m.AddedOrderingIndex()
	case compiledflowstep.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledFlowStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case compiledflowstep.FieldOrderingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderingIndex(v)
		return nil
	case compiledflowstep.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompiledFlowStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(compiledflowstep.FieldDescription) {
		fields = append(fields, compiledflowstep.FieldDescription)
	}
	if m.FieldCleared(compiledflowstep.FieldExpectedPhrases) {
		fields = append(fields, compiledflowstep.FieldExpectedPhrases)
	}
	if m.FieldCleared(compiledflowstep.FieldCriticalAction) {
		fields = append(fields, compiledflowstep.FieldCriticalAction)
	}
	if m.FieldCleared(compiledflowstep.FieldMetadata) {
		fields = append(fields, compiledflowstep.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompiledFlowStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompiledFlowStepMutation) ClearField(name string) error {
	switch name {
	case compiledflowstep.FieldDescription:
		m.ClearDescription()
		return nil
	case compiledflowstep.FieldExpectedPhrases:
		m.ClearExpectedPhrases()
		return nil
	case compiledflowstep.FieldCriticalAction:
		m.ClearCriticalAction()
		return nil
	case compiledflowstep.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompiledFlowStepMutation) ResetField(name string) error {
	switch name {
	case compiledflowstep.FieldCompiledStageID:
		m.ResetCompiledStageID()
		return nil
	case compiledflowstep.FieldFlowVersionID:
		m.ResetFlowVersionID()
		return nil
	case compiledflowstep.FieldStepName:
		m.ResetStepName()
		return nil
	case compiledflowstep.FieldDescription:
		m.ResetDescription()
		return nil
	case compiledflowstep.FieldOrderingIndex:
		m.ResetOrderingIndex()
		return nil
	case compiledflowstep.FieldExpectedRole:
		m.ResetExpectedRole()
		return nil
	case compiledflowstep.FieldExpectedPhrases:
		m.ResetExpectedPhrases()
		return nil
	case compiledflowstep.FieldDetectionHint:
		m.ResetDetectionHint()
		return nil
	case compiledflowstep.FieldBehaviorType:
		m.ResetBehaviorType()
		return nil
	case compiledflowstep.FieldCriticalAction:
		m.ResetCriticalAction()
		return nil
	case compiledflowstep.FieldWeight:
		m.ResetWeight()
		return nil
	case compiledflowstep.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompiledFlowStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stage != nil {
		edges = append(edges, compiledflowstep.EdgeStage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompiledFlowStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case compiledflowstep.EdgeStage:
		if id := m.stage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompiledFlowStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompiledFlowStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompiledFlowStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstage {
		edges = append(edges, compiledflowstep.EdgeStage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompiledFlowStepMutation) EdgeCleared(name string) bool {
	switch name {
	case compiledflowstep.EdgeStage:
		return m.clearedstage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompiledFlowStepMutation) ClearEdge(name string) error {
	switch name {
	case compiledflowstep.EdgeStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompiledFlowStepMutation) ResetEdge(name string) error {
	switch name {
	case compiledflowstep.EdgeStage:
		m.ResetStage()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowStep edge %s", name)
}

// CompiledFlowVersionMutation represents an operation that mutates the CompiledFlowVersion nodes in the graph.
type CompiledFlowVersionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	company_id           *string
	blueprint_version_id *string
	name                 *string
	metadata             *map[string]interface{}
	created_at           *time.Time
	clearedFields        map[string]struct{}
	stages               map[string]struct{}
	removedstages        map[string]struct{}
	clearedstages        bool
	rules                map[string]struct{}
	removedrules         map[string]struct{}
	clearedrules         bool
	rubric               *string
	clearedrubric        bool
	done                 bool
	oldValue             func(context.Context) (*CompiledFlowVersion, error)
	predicates           []predicate.CompiledFlowVersion
}

var _ ent.Mutation = (*CompiledFlowVersionMutation)(nil)

// compiledflowversionOption allows management of the mutation configuration using functional options.
type compiledflowversionOption func(*CompiledFlowVersionMutation)

// newCompiledFlowVersionMutation creates new mutation for the CompiledFlowVersion entity.
func newCompiledFlowVersionMutation(c config, op Op, opts ...compiledflowversionOption) *CompiledFlowVersionMutation {
	m := &CompiledFlowVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeCompiledFlowVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompiledFlowVersionID sets the ID field of the mutation.
func withCompiledFlowVersionID(id string) compiledflowversionOption {
	return func(m *CompiledFlowVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *CompiledFlowVersion
		)
		m.oldValue = func(ctx context.Context) (*CompiledFlowVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompiledFlowVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompiledFlowVersion sets the old CompiledFlowVersion of the mutation.
func withCompiledFlowVersion(node *CompiledFlowVersion) compiledflowversionOption {
	return func(m *CompiledFlowVersionMutation) {
		m.oldValue = func(context.Context) (*CompiledFlowVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompiledFlowVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompiledFlowVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompiledFlowVersion entities.
func (m *CompiledFlowVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompiledFlowVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompiledFlowVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompiledFlowVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *CompiledFlowVersionMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *CompiledFlowVersionMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the CompiledFlowVersion entity.
// If the CompiledFlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowVersionMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *CompiledFlowVersionMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetBlueprintVersionID sets the "blueprint_version_id" field.
func (m *CompiledFlowVersionMutation) SetBlueprintVersionID(s string) {
	m.blueprint_version_id = &s
}

// BlueprintVersionID returns the value of the "blueprint_version_id" field in the mutation.
func (m *CompiledFlowVersionMutation) BlueprintVersionID() (r string, exists bool) {
	v := m.blueprint_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintVersionID returns the old "blueprint_version_id" field's value of the CompiledFlowVersion entity.
// If the CompiledFlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowVersionMutation) OldBlueprintVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintVersionID: %w", err)
	}
	return oldValue.BlueprintVersionID, nil
}

// ResetBlueprintVersionID resets all changes to the "blueprint_version_id" field.
func (m *CompiledFlowVersionMutation) ResetBlueprintVersionID() {
	m.blueprint_version_id = nil
}

// SetName sets the "name" field.
func (m *CompiledFlowVersionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompiledFlowVersionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CompiledFlowVersion entity.
// If the CompiledFlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowVersionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompiledFlowVersionMutation) ResetName() {
	m.name = nil
}

// SetMetadata sets the "metadata" field.
func (m *CompiledFlowVersionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CompiledFlowVersionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CompiledFlowVersion entity.
// If the CompiledFlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowVersionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CompiledFlowVersionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[compiledflowversion.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CompiledFlowVersionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[compiledflowversion.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CompiledFlowVersionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, compiledflowversion.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompiledFlowVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompiledFlowVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CompiledFlowVersion entity.
// If the CompiledFlowVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledFlowVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompiledFlowVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStageIDs adds the "stages" edge to the CompiledFlowStage entity by ids.
func (m *CompiledFlowVersionMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the CompiledFlowStage entity.
func (m *CompiledFlowVersionMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the CompiledFlowStage entity was cleared.
func (m *CompiledFlowVersionMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the CompiledFlowStage entity by IDs.
func (m *CompiledFlowVersionMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the CompiledFlowStage entity.
func (m *CompiledFlowVersionMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *CompiledFlowVersionMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *CompiledFlowVersionMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// AddRuleIDs adds the "rules" edge to the CompiledComplianceRule entity by ids.
func (m *CompiledFlowVersionMutation) AddRuleIDs(ids ...string) {
	if m.rules == nil {
		m.rules = make(map[string]struct{})
	}
	for i := range ids {
		m.rules[ids[i]] = struct{}{}
	}
}

// ClearRules clears the "rules" edge to the CompiledComplianceRule entity.
func (m *CompiledFlowVersionMutation) ClearRules() {
	m.clearedrules = true
}

// RulesCleared reports if the "rules" edge to the CompiledComplianceRule entity was cleared.
func (m *CompiledFlowVersionMutation) RulesCleared() bool {
	return m.clearedrules
}

// RemoveRuleIDs removes the "rules" edge to the CompiledComplianceRule entity by IDs.
func (m *CompiledFlowVersionMutation) RemoveRuleIDs(ids ...string) {
	if m.removedrules == nil {
		m.removedrules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rules, ids[i])
		m.removedrules[ids[i]] = struct{}{}
	}
}

// RemovedRules returns the removed IDs of the "rules" edge to the CompiledComplianceRule entity.
func (m *CompiledFlowVersionMutation) RemovedRulesIDs() (ids []string) {
	for id := range m.removedrules {
		ids = append(ids, id)
	}
	return
}

// RulesIDs returns the "rules" edge IDs in the mutation.
func (m *CompiledFlowVersionMutation) RulesIDs() (ids []string) {
	for id := range m.rules {
		ids = append(ids, id)
	}
	return
}

// ResetRules resets all changes to the "rules" edge.
func (m *CompiledFlowVersionMutation) ResetRules() {
	m.rules = nil
	m.clearedrules = false
	m.removedrules = nil
}

// SetRubricID sets the "rubric" edge to the CompiledRubricTemplate entity by id.
func (m *CompiledFlowVersionMutation) SetRubricID(id string) {
	m.rubric = &id
}

// ClearRubric clears the "rubric" edge to the CompiledRubricTemplate entity.
func (m *CompiledFlowVersionMutation) ClearRubric() {
	m.clearedrubric = true
}

// RubricCleared reports if the "rubric" edge to the CompiledRubricTemplate entity was cleared.
func (m *CompiledFlowVersionMutation) RubricCleared() bool {
	return m.clearedrubric
}

// RubricID returns the "rubric" edge ID in the mutation.
func (m *CompiledFlowVersionMutation) RubricID() (id string, exists bool) {
	if m.rubric != nil {
		return *m.rubric, true
	}
	return
}

// RubricIDs returns the "rubric" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RubricID instead. It exists only for internal usage by the builders.
func (m *CompiledFlowVersionMutation) RubricIDs() (ids []string) {
	if id := m.rubric; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRubric resets all changes to the "rubric" edge.
func (m *CompiledFlowVersionMutation) ResetRubric() {
	m.rubric = nil
	m.clearedrubric = false
}

// Where appends a list predicates to the CompiledFlowVersionMutation builder.
func (m *CompiledFlowVersionMutation) Where(ps ...predicate.CompiledFlowVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompiledFlowVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompiledFlowVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompiledFlowVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompiledFlowVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompiledFlowVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompiledFlowVersion).
func (m *CompiledFlowVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompiledFlowVersionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.company_id != nil {
		fields = append(fields, compiledflowversion.FieldCompanyID)
	}
	if m.blueprint_version_id != nil {
		fields = append(fields, compiledflowversion.FieldBlueprintVersionID)
	}
	if m.name != nil {
		fields = append(fields, compiledflowversion.FieldName)
	}
	if m.metadata != nil {
		fields = append(fields, compiledflowversion.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, compiledflowversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompiledFlowVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compiledflowversion.FieldCompanyID:
		return m.CompanyID()
	case compiledflowversion.FieldBlueprintVersionID:
		return m.BlueprintVersionID()
	case compiledflowversion.FieldName:
		return m.Name()
	case compiledflowversion.FieldMetadata:
		return m.Metadata()
	case compiledflowversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompiledFlowVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compiledflowversion.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case compiledflowversion.FieldBlueprintVersionID:
		return m.OldBlueprintVersionID(ctx)
	case compiledflowversion.FieldName:
		return m.OldName(ctx)
	case compiledflowversion.FieldMetadata:
		return m.OldMetadata(ctx)
	case compiledflowversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompiledFlowVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledFlowVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compiledflowversion.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case compiledflowversion.FieldBlueprintVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintVersionID(v)
		return nil
	case compiledflowversion.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case compiledflowversion.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case compiledflowversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompiledFlowVersionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompiledFlowVersionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledFlowVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CompiledFlowVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompiledFlowVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(compiledflowversion.FieldMetadata) {
		fields = append(fields, compiledflowversion.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompiledFlowVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompiledFlowVersionMutation) ClearField(name string) error {
	switch name {
	case compiledflowversion.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompiledFlowVersionMutation) ResetField(name string) error {
	switch name {
	case compiledflowversion.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case compiledflowversion.FieldBlueprintVersionID:
		m.ResetBlueprintVersionID()
		return nil
	case compiledflowversion.FieldName:
		m.ResetName()
		return nil
	case compiledflowversion.FieldMetadata:
		m.ResetMetadata()
		return nil
	case compiledflowversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompiledFlowVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.stages != nil {
		edges = append(edges, compiledflowversion.EdgeStages)
	}
	if m.rules != nil {
		edges = append(edges, compiledflowversion.EdgeRules)
	}
	if m.rubric != nil {
		edges = append(edges, compiledflowversion.EdgeRubric)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompiledFlowVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case compiledflowversion.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	case compiledflowversion.EdgeRules:
		ids := make([]ent.Value, 0, len(m.rules))
		for id := range m.rules {
			ids = append(ids, id)
		}
		return ids
	case compiledflowversion.EdgeRubric:
		if id := m.rubric; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompiledFlowVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstages != nil {
		edges = append(edges, compiledflowversion.EdgeStages)
	}
	if m.removedrules != nil {
		edges = append(edges, compiledflowversion.EdgeRules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompiledFlowVersionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case compiledflowversion.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	case compiledflowversion.EdgeRules:
		ids := make([]ent.Value, 0, len(m.removedrules))
		for id := range m.removedrules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompiledFlowVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedstages {
		edges = append(edges, compiledflowversion.EdgeStages)
	}
	if m.clearedrules {
		edges = append(edges, compiledflowversion.EdgeRules)
	}
	if m.clearedrubric {
		edges = append(edges, compiledflowversion.EdgeRubric)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompiledFlowVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case compiledflowversion.EdgeStages:
		return m.clearedstages
	case compiledflowversion.EdgeRules:
		return m.clearedrules
	case compiledflowversion.EdgeRubric:
		return m.clearedrubric
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompiledFlowVersionMutation) ClearEdge(name string) error {
	switch name {
	case compiledflowversion.EdgeRubric:
		m.ClearRubric()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompiledFlowVersionMutation) ResetEdge(name string) error {
	switch name {
	case compiledflowversion.EdgeStages:
		m.ResetStages()
		return nil
	case compiledflowversion.EdgeRules:
		m.ResetRules()
		return nil
	case compiledflowversion.EdgeRubric:
		m.ResetRubric()
		return nil
	}
	return fmt.Errorf("unknown CompiledFlowVersion edge %s", name)
}

// CompiledRubricTemplateMutation represents an operation that mutates the CompiledRubricTemplate nodes in the graph.
type CompiledRubricTemplateMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	categories          *[]models.RubricCategory
	appendcategories    []models.RubricCategory
	mappings            *[]models.RubricMapping
	appendmappings      []models.RubricMapping
	clearedFields       map[string]struct{}
	flow_version        *string
	clearedflow_version bool
	done                bool
	oldValue            func(context.Context) (*CompiledRubricTemplate, error)
	predicates          []predicate.CompiledRubricTemplate
}

var _ ent.Mutation = (*CompiledRubricTemplateMutation)(nil)

// compiledrubrictemplateOption allows management of the mutation configuration using functional options.
type compiledrubrictemplateOption func(*CompiledRubricTemplateMutation)

// newCompiledRubricTemplateMutation creates new mutation for the CompiledRubricTemplate entity.
func newCompiledRubricTemplateMutation(c config, op Op, opts ...compiledrubrictemplateOption) *CompiledRubricTemplateMutation {
	m := &CompiledRubricTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeCompiledRubricTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompiledRubricTemplateID sets the ID field of the mutation.
func withCompiledRubricTemplateID(id string) compiledrubrictemplateOption {
	return func(m *CompiledRubricTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *CompiledRubricTemplate
		)
		m.oldValue = func(ctx context.Context) (*CompiledRubricTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompiledRubricTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompiledRubricTemplate sets the old CompiledRubricTemplate of the mutation.
func withCompiledRubricTemplate(node *CompiledRubricTemplate) compiledrubrictemplateOption {
	return func(m *CompiledRubricTemplateMutation) {
		m.oldValue = func(context.Context) (*CompiledRubricTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompiledRubricTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompiledRubricTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompiledRubricTemplate entities.
func (m *CompiledRubricTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompiledRubricTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompiledRubricTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompiledRubricTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFlowVersionID sets the "flow_version_id" field.
func (m *CompiledRubricTemplateMutation) SetFlowVersionID(s string) {
	m.flow_version = &s
}

// FlowVersionID returns the value of the "flow_version_id" field in the mutation.
func (m *CompiledRubricTemplateMutation) FlowVersionID() (r string, exists bool) {
	v := m.flow_version
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowVersionID returns the old "flow_version_id" field's value of the CompiledRubricTemplate entity.
// If the CompiledRubricTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledRubricTemplateMutation) OldFlowVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowVersionID: %w", err)
	}
	return oldValue.FlowVersionID, nil
}

// ResetFlowVersionID resets all changes to the "flow_version_id" field.
func (m *CompiledRubricTemplateMutation) ResetFlowVersionID() {
	m.flow_version = nil
}

// SetCategories sets the "categories" field.
func (m *CompiledRubricTemplateMutation) SetCategories(mc []models.RubricCategory) {
	m.categories = &mc
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *CompiledRubricTemplateMutation) Categories() (r []models.RubricCategory, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the CompiledRubricTemplate entity.
// If the CompiledRubricTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledRubricTemplateMutation) OldCategories(ctx context.Context) (v []models.RubricCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds mc to the "categories" field.
func (m *CompiledRubricTemplateMutation) AppendCategories(mc []models.RubricCategory) {
	m.appendcategories = append(m.appendcategories, mc...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *CompiledRubricTemplateMutation) AppendedCategories() ([]models.RubricCategory, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ResetCategories resets all changes to the "categories" field.
func (m *CompiledRubricTemplateMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
}

// SetMappings sets the "mappings" field.
func (m *CompiledRubricTemplateMutation) SetMappings(mm []models.RubricMapping) {
	m.mappings = &mm
	m.appendmappings = nil
}

// Mappings returns the value of the "mappings" field in the mutation.
func (m *CompiledRubricTemplateMutation) Mappings() (r []models.RubricMapping, exists bool) {
	v := m.mappings
	if v == nil {
		return
	}
	return *v, true
}

// OldMappings returns the old "mappings" field's value of the CompiledRubricTemplate entity.
// If the CompiledRubricTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompiledRubricTemplateMutation) OldMappings(ctx context.Context) (v []models.RubricMapping, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappings: %w", err)
	}
	return oldValue.Mappings, nil
}

// AppendMappings adds mm to the "mappings" field.
func (m *CompiledRubricTemplateMutation) AppendMappings(mm []models.RubricMapping) {
	m.appendmappings = append(m.appendmappings, mm...)
}

// AppendedMappings returns the list of values that were appended to the "mappings" field in this mutation.
func (m *CompiledRubricTemplateMutation) AppendedMappings() ([]models.RubricMapping, bool) {
	if len(m.appendmappings) == 0 {
		return nil, false
	}
	return m.appendmappings, true
}

// ResetMappings resets all changes to the "mappings" field.
func (m *CompiledRubricTemplateMutation) ResetMappings() {
	m.mappings = nil
	m.appendmappings = nil
}

// ClearFlowVersion clears the "flow_version" edge to the CompiledFlowVersion entity.
func (m *CompiledRubricTemplateMutation) ClearFlowVersion() {
	m.clearedflow_version = true
	m.clearedFields[compiledrubrictemplate.FieldFlowVersionID] = struct{}{}
}

// FlowVersionCleared reports if the "flow_version" edge to the CompiledFlowVersion entity was cleared.
func (m *CompiledRubricTemplateMutation) FlowVersionCleared() bool {
	return m.clearedflow_version
}

// FlowVersionIDs returns the "flow_version" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlowVersionID instead. It exists only for internal usage by the builders.
func (m *CompiledRubricTemplateMutation) FlowVersionIDs() (ids []string) {
	if id := m.flow_version; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlowVersion resets all changes to the "flow_version" edge.
func (m *CompiledRubricTemplateMutation) ResetFlowVersion() {
	m.flow_version = nil
	m.clearedflow_version = false
}

// Where appends a list predicates to the CompiledRubricTemplateMutation builder.
func (m *CompiledRubricTemplateMutation) Where(ps ...predicate.CompiledRubricTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompiledRubricTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompiledRubricTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompiledRubricTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompiledRubricTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompiledRubricTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompiledRubricTemplate).
func (m *CompiledRubricTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompiledRubricTemplateMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.flow_version != nil {
		fields = append(fields, compiledrubrictemplate.FieldFlowVersionID)
	}
	if m.categories != nil {
		fields = append(fields, compiledrubrictemplate.FieldCategories)
	}
	if m.mappings != nil {
		fields = append(fields, compiledrubrictemplate.FieldMappings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompiledRubricTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compiledrubrictemplate.FieldFlowVersionID:
		return m.FlowVersionID()
	case compiledrubrictemplate.FieldCategories:
		return m.Categories()
	case compiledrubrictemplate.FieldMappings:
		return m.Mappings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompiledRubricTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compiledrubrictemplate.FieldFlowVersionID:
		return m.OldFlowVersionID(ctx)
	case compiledrubrictemplate.FieldCategories:
		return m.OldCategories(ctx)
	case compiledrubrictemplate.FieldMappings:
		return m.OldMappings(ctx)
	}
	return nil, fmt.Errorf("unknown CompiledRubricTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledRubricTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compiledrubrictemplate.FieldFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowVersionID(v)
		return nil
	case compiledrubrictemplate.FieldCategories:
		v, ok := value.([]models.RubricCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case compiledrubrictemplate.FieldMappings:
		v, ok := value.([]models.RubricMapping)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappings(v)
		return nil
	}
	return fmt.Errorf("unknown CompiledRubricTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompiledRubricTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompiledRubricTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompiledRubricTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CompiledRubricTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompiledRubricTemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompiledRubricTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompiledRubricTemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CompiledRubricTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompiledRubricTemplateMutation) ResetField(name string) error {
	switch name {
	case compiledrubrictemplate.FieldFlowVersionID:
		m.ResetFlowVersionID()
		return nil
	case compiledrubrictemplate.FieldCategories:
		m.ResetCategories()
		return nil
	case compiledrubrictemplate.FieldMappings:
		m.ResetMappings()
		return nil
	}
	return fmt.Errorf("unknown CompiledRubricTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompiledRubricTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.flow_version != nil {
		edges = append(edges, compiledrubrictemplate.EdgeFlowVersion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompiledRubricTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case compiledrubrictemplate.EdgeFlowVersion:
		if id := m.flow_version; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompiledRubricTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompiledRubricTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompiledRubricTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedflow_version {
		edges = append(edges, compiledrubrictemplate.EdgeFlowVersion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompiledRubricTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case compiledrubrictemplate.EdgeFlowVersion:
		return m.clearedflow_version
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompiledRubricTemplateMutation) ClearEdge(name string) error {
	switch name {
	case compiledrubrictemplate.EdgeFlowVersion:
		m.ClearFlowVersion()
		return nil
	}
	return fmt.Errorf("unknown CompiledRubricTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompiledRubricTemplateMutation) ResetEdge(name string) error {
	switch name {
	case compiledrubrictemplate.EdgeFlowVersion:
		m.ResetFlowVersion()
		return nil
	}
	return fmt.Errorf("unknown CompiledRubricTemplate edge %s", name)
}

// EvaluationMutation represents an operation that mutates the Evaluation nodes in the graph.
type EvaluationMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	blueprint_id                *string
	compiled_flow_version_id    *string
	status                      *evaluation.Status
	overall_score               *int
	addoverall_score            *int
	overall_passed              *bool
	requires_human_review       *bool
	confidence_score            *float64
	addconfidence_score         *float64
	deterministic_results       **models.DeterministicResults
	llm_stage_evaluations       *[]models.StageEvaluation
	appendllm_stage_evaluations []models.StageEvaluation
	final_evaluation            **models.FinalEvaluation
	error_code                  *string
	error_message               *string
	created_at                  *time.Time
	completed_at                *time.Time
	deleted_at                  *time.Time
	clearedFields               map[string]struct{}
	recording                   *string
	clearedrecording            bool
	done                        bool
	oldValue                    func(context.Context) (*Evaluation, error)
	predicates                  []predicate.Evaluation
}

var _ ent.Mutation = (*EvaluationMutation)(nil)

// evaluationOption allows management of the mutation configuration using functional options.
type evaluationOption func(*EvaluationMutation)

// newEvaluationMutation creates new mutation for the Evaluation entity.
func newEvaluationMutation(c config, op Op, opts ...evaluationOption) *EvaluationMutation {
	m := &EvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationID sets the ID field of the mutation.
func withEvaluationID(id string) evaluationOption {
	return func(m *EvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *Evaluation
		)
		m.oldValue = func(ctx context.Context) (*Evaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluation sets the old Evaluation of the mutation.
func withEvaluation(node *Evaluation) evaluationOption {
	return func(m *EvaluationMutation) {
		m.oldValue = func(context.Context) (*Evaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evaluation entities.
func (m *EvaluationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordingID sets the "recording_id" field.
func (m *EvaluationMutation) SetRecordingID(s string) {
	m.recording = &s
}

// RecordingID returns the value of the "recording_id" field in the mutation.
func (m *EvaluationMutation) RecordingID() (r string, exists bool) {
	v := m.recording
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingID returns the old "recording_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldRecordingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingID: %w", err)
	}
	return oldValue.RecordingID, nil
}

// ResetRecordingID resets all changes to the "recording_id" field.
func (m *EvaluationMutation) ResetRecordingID() {
	m.recording = nil
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *EvaluationMutation) SetBlueprintID(s string) {
	m.blueprint_id = &s
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *EvaluationMutation) BlueprintID() (r string, exists bool) {
	v := m.blueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldBlueprintID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *EvaluationMutation) ResetBlueprintID() {
	m.blueprint_id = nil
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (m *EvaluationMutation) SetCompiledFlowVersionID(s string) {
	m.compiled_flow_version_id = &s
}

// CompiledFlowVersionID returns the value of the "compiled_flow_version_id" field in the mutation.
func (m *EvaluationMutation) CompiledFlowVersionID() (r string, exists bool) {
	v := m.compiled_flow_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledFlowVersionID returns the old "compiled_flow_version_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCompiledFlowVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledFlowVersionID: %w", err)
	}
	return oldValue.CompiledFlowVersionID, nil
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (m *EvaluationMutation) ClearCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	m.clearedFields[evaluation.FieldCompiledFlowVersionID] = struct{}{}
}

// CompiledFlowVersionIDCleared returns if the "compiled_flow_version_id" field was cleared in this mutation.
func (m *EvaluationMutation) CompiledFlowVersionIDCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldCompiledFlowVersionID]
	return ok
}

// ResetCompiledFlowVersionID resets all changes to the "compiled_flow_version_id" field.
func (m *EvaluationMutation) ResetCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	delete(m.clearedFields, evaluation.FieldCompiledFlowVersionID)
}

// SetStatus sets the "status" field.
func (m *EvaluationMutation) SetStatus(e evaluation.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EvaluationMutation) Status() (r evaluation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldStatus(ctx context.Context) (v evaluation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EvaluationMutation) ResetStatus() {
	m.status = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *EvaluationMutation) SetOverallScore(i int) {
	m.overall_score = &i
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *EvaluationMutation) OverallScore() (r int, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldOverallScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds i to the "overall_score" field.
func (m *EvaluationMutation) AddOverallScore(i int) {
	if m.addoverall_score != nil {
		*m.addoverall_score += i
	} else {
		m.addoverall_score = &i
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *EvaluationMutation) AddedOverallScore() (r int, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallScore clears the value of the "overall_score" field.
func (m *EvaluationMutation) ClearOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
	m.clearedFields[evaluation.FieldOverallScore] = struct{}{}
}

// OverallScoreCleared returns if the "overall_score" field was cleared in this mutation.
func (m *EvaluationMutation) OverallScoreCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldOverallScore]
	return ok
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *EvaluationMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
	delete(m.clearedFields, evaluation.FieldOverallScore)
}

// SetOverallPassed sets the "overall_passed" field.
func (m *EvaluationMutation) SetOverallPassed(b bool) {
	m.overall_passed = &b
}

// OverallPassed returns the value of the "overall_passed" field in the mutation.
func (m *EvaluationMutation) OverallPassed() (r bool, exists bool) {
	v := m.overall_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallPassed returns the old "overall_passed" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldOverallPassed(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallPassed: %w", err)
	}
	return oldValue.OverallPassed, nil
}

// ClearOverallPassed clears the value of the "overall_passed" field.
func (m *EvaluationMutation) ClearOverallPassed() {
	m.overall_passed = nil
	m.clearedFields[evaluation.FieldOverallPassed] = struct{}{}
}

// OverallPassedCleared returns if the "overall_passed" field was cleared in this mutation.
func (m *EvaluationMutation) OverallPassedCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldOverallPassed]
	return ok
}

// ResetOverallPassed resets all changes to the "overall_passed" field.
func (m *EvaluationMutation) ResetOverallPassed() {
	m.overall_passed = nil
	delete(m.clearedFields, evaluation.FieldOverallPassed)
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (m *EvaluationMutation) SetRequiresHumanReview(b bool) {
	m.requires_human_review = &b
}

// RequiresHumanReview returns the value of the "requires_human_review" field in the mutation.
func (m *EvaluationMutation) RequiresHumanReview() (r bool, exists bool) {
	v := m.requires_human_review
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresHumanReview returns the old "requires_human_review" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldRequiresHumanReview(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresHumanReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresHumanReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresHumanReview: %w", err)
	}
	return oldValue.RequiresHumanReview, nil
}

// ClearRequiresHumanReview clears the value of the "requires_human_review" field.
func (m *EvaluationMutation) ClearRequiresHumanReview() {
	m.requires_human_review = nil
	m.clearedFields[evaluation.FieldRequiresHumanReview] = struct{}{}
}

// RequiresHumanReviewCleared returns if the "requires_human_review" field was cleared in this mutation.
func (m *EvaluationMutation) RequiresHumanReviewCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldRequiresHumanReview]
	return ok
}

// ResetRequiresHumanReview resets all changes to the "requires_human_review" field.
func (m *EvaluationMutation) ResetRequiresHumanReview() {
	m.requires_human_review = nil
	delete(m.clearedFields, evaluation.FieldRequiresHumanReview)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *EvaluationMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *EvaluationMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *EvaluationMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *EvaluationMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *EvaluationMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[evaluation.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *EvaluationMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *EvaluationMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, evaluation.FieldConfidenceScore)
}

// SetDeterministicResults sets the "deterministic_results" field.
func (m *EvaluationMutation) SetDeterministicResults(mr *models.DeterministicResults) {
	m.deterministic_results = &mr
}

// DeterministicResults returns the value of the "deterministic_results" field in the mutation.
func (m *EvaluationMutation) DeterministicResults() (r *models.DeterministicResults, exists bool) {
	v := m.deterministic_results
	if v == nil {
		return
	}
	return *v, true
}

// OldDeterministicResults returns the old "deterministic_results" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldDeterministicResults(ctx context.Context) (v *models.DeterministicResults, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeterministicResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeterministicResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeterministicResults: %w", err)
	}
	return oldValue.DeterministicResults, nil
}

// ClearDeterministicResults clears the value of the "deterministic_results" field.
func (m *EvaluationMutation) ClearDeterministicResults() {
	m.deterministic_results = nil
	m.clearedFields[evaluation.FieldDeterministicResults] = struct{}{}
}

// DeterministicResultsCleared returns if the "deterministic_results" field was cleared in this mutation.
func (m *EvaluationMutation) DeterministicResultsCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldDeterministicResults]
	return ok
}

// ResetDeterministicResults resets all changes to the "deterministic_results" field.
func (m *EvaluationMutation) ResetDeterministicResults() {
	m.deterministic_results = nil
	delete(m.clearedFields, evaluation.FieldDeterministicResults)
}

// SetLlmStageEvaluations sets the "llm_stage_evaluations" field.
func (m *EvaluationMutation) SetLlmStageEvaluations(me []models.StageEvaluation) {
	m.llm_stage_evaluations = &me
	m.appendllm_stage_evaluations = nil
}

// LlmStageEvaluations returns the value of the "llm_stage_evaluations" field in the mutation.
func (m *EvaluationMutation) LlmStageEvaluations() (r []models.StageEvaluation, exists bool) {
	v := m.llm_stage_evaluations
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmStageEvaluations returns the old "llm_stage_evaluations" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldLlmStageEvaluations(ctx context.Context) (v []models.StageEvaluation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmStageEvaluations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmStageEvaluations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmStageEvaluations: %w", err)
	}
	return oldValue.LlmStageEvaluations, nil
}

// AppendLlmStageEvaluations adds me to the "llm_stage_evaluations" field.
func (m *EvaluationMutation) AppendLlmStageEvaluations(me []models.StageEvaluation) {
	m.appendllm_stage_evaluations = append(m.appendllm_stage_evaluations, me...)
}

// AppendedLlmStageEvaluations returns the list of values that were appended to the "llm_stage_evaluations" field in this mutation.
func (m *EvaluationMutation) AppendedLlmStageEvaluations() ([]models.StageEvaluation, bool) {
	if len(m.appendllm_stage_evaluations) == 0 {
		return nil, false
	}
	return m.appendllm_stage_evaluations, true
}

// ClearLlmStageEvaluations clears the value of the "llm_stage_evaluations" field.
func (m *EvaluationMutation) ClearLlmStageEvaluations() {
	m.llm_stage_evaluations = nil
	m.appendllm_stage_evaluations = nil
	m.clearedFields[evaluation.FieldLlmStageEvaluations] = struct{}{}
}

// LlmStageEvaluationsCleared returns if the "llm_stage_evaluations" field was cleared in this mutation.
func (m *EvaluationMutation) LlmStageEvaluationsCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldLlmStageEvaluations]
	return ok
}

// ResetLlmStageEvaluations resets all changes to the "llm_stage_evaluations" field.
func (m *EvaluationMutation) ResetLlmStageEvaluations() {
	m.llm_stage_evaluations = nil
	m.appendllm_stage_evaluations = nil
	delete(m.clearedFields, evaluation.FieldLlmStageEvaluations)
}

// SetFinalEvaluation sets the "final_evaluation" field.
func (m *EvaluationMutation) SetFinalEvaluation(me *models.FinalEvaluation) {
	m.final_evaluation = &me
}

// FinalEvaluation returns the value of the "final_evaluation" field in the mutation.
func (m *EvaluationMutation) FinalEvaluation() (r *models.FinalEvaluation, exists bool) {
	v := m.final_evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalEvaluation returns the old "final_evaluation" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldFinalEvaluation(ctx context.Context) (v *models.FinalEvaluation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalEvaluation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalEvaluation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalEvaluation: %w", err)
	}
	return oldValue.FinalEvaluation, nil
}

// ClearFinalEvaluation clears the value of the "final_evaluation" field.
func (m *EvaluationMutation) ClearFinalEvaluation() {
	m.final_evaluation = nil
	m.clearedFields[evaluation.FieldFinalEvaluation] = struct{}{}
}

// FinalEvaluationCleared returns if the "final_evaluation" field was cleared in this mutation.
func (m *EvaluationMutation) FinalEvaluationCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldFinalEvaluation]
	return ok
}

// ResetFinalEvaluation resets all changes to the "final_evaluation" field.
func (m *EvaluationMutation) ResetFinalEvaluation() {
	m.final_evaluation = nil
	delete(m.clearedFields, evaluation.FieldFinalEvaluation)
}

// SetErrorCode sets the "error_code" field.
func (m *EvaluationMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *EvaluationMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *EvaluationMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[evaluation.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *EvaluationMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *EvaluationMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, evaluation.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *EvaluationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EvaluationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *EvaluationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[evaluation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *EvaluationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EvaluationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, evaluation.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *EvaluationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *EvaluationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *EvaluationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[evaluation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *EvaluationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *EvaluationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, evaluation.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *EvaluationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *EvaluationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *EvaluationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[evaluation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *EvaluationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *EvaluationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, evaluation.FieldDeletedAt)
}

// ClearRecording clears the "recording" edge to the Recording entity.
func (m *EvaluationMutation) ClearRecording() {
	m.clearedrecording = true
	m.clearedFields[evaluation.FieldRecordingID] = struct{}{}
}

// RecordingCleared reports if the "recording" edge to the Recording entity was cleared.
func (m *EvaluationMutation) RecordingCleared() bool {
	return m.clearedrecording
}

// RecordingIDs returns the "recording" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecordingID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) RecordingIDs() (ids []string) {
	if id := m.recording; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecording resets all changes to the "recording" edge.
func (m *EvaluationMutation) ResetRecording() {
	m.recording = nil
	m.clearedrecording = false
}

// Where appends a list predicates to the EvaluationMutation builder.
func (m *EvaluationMutation) Where(ps ...predicate.Evaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evaluation).
func (m *EvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.recording != nil {
		fields = append(fields, evaluation.FieldRecordingID)
	}
	if m.blueprint_id != nil {
		fields = append(fields, evaluation.FieldBlueprintID)
	}
	if m.compiled_flow_version_id != nil {
		fields = append(fields, evaluation.FieldCompiledFlowVersionID)
	}
	if m.status != nil {
		fields = append(fields, evaluation.FieldStatus)
	}
	if m.overall_score != nil {
		fields = append(fields, evaluation.FieldOverallScore)
	}
	if m.overall_passed != nil {
		fields = append(fields, evaluation.FieldOverallPassed)
	}
	if m.requires_human_review != nil {
		fields = append(fields, evaluation.FieldRequiresHumanReview)
	}
	if m.confidence_score != nil {
		fields = append(fields, evaluation.FieldConfidenceScore)
	}
	if m.deterministic_results != nil {
		fields = append(fields, evaluation.FieldDeterministicResults)
	}
	if m.llm_stage_evaluations != nil {
		fields = append(fields, evaluation.FieldLlmStageEvaluations)
	}
	if m.final_evaluation != nil {
		fields = append(fields, evaluation.FieldFinalEvaluation)
	}
	if m.error_code != nil {
		fields = append(fields, evaluation.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, evaluation.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, evaluation.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, evaluation.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, evaluation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldRecordingID:
		return m.RecordingID()
	case evaluation.FieldBlueprintID:
		return m.BlueprintID()
	case evaluation.FieldCompiledFlowVersionID:
		return m.CompiledFlowVersionID()
	case evaluation.FieldStatus:
		return m.Status()
	case evaluation.FieldOverallScore:
		return m.OverallScore()
	case evaluation.FieldOverallPassed:
		return m.OverallPassed()
	case evaluation.FieldRequiresHumanReview:
		return m.RequiresHumanReview()
	case evaluation.FieldConfidenceScore:
		return m.ConfidenceScore()
	case evaluation.FieldDeterministicResults:
		return m.DeterministicResults()
	case evaluation.FieldLlmStageEvaluations:
		return m.LlmStageEvaluations()
	case evaluation.FieldFinalEvaluation:
		return m.FinalEvaluation()
	case evaluation.FieldErrorCode:
		return m.ErrorCode()
	case evaluation.FieldErrorMessage:
		return m.ErrorMessage()
	case evaluation.FieldCreatedAt:
		return m.CreatedAt()
	case evaluation.FieldCompletedAt:
		return m.CompletedAt()
	case evaluation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluation.FieldRecordingID:
		return m.OldRecordingID(ctx)
	case evaluation.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case evaluation.FieldCompiledFlowVersionID:
		return m.OldCompiledFlowVersionID(ctx)
	case evaluation.FieldStatus:
		return m.OldStatus(ctx)
	case evaluation.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case evaluation.FieldOverallPassed:
		return m.OldOverallPassed(ctx)
	case evaluation.FieldRequiresHumanReview:
		return m.OldRequiresHumanReview(ctx)
	case evaluation.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case evaluation.FieldDeterministicResults:
		return m.OldDeterministicResults(ctx)
	case evaluation.FieldLlmStageEvaluations:
		return m.OldLlmStageEvaluations(ctx)
	case evaluation.FieldFinalEvaluation:
		return m.OldFinalEvaluation(ctx)
	case evaluation.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case evaluation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case evaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evaluation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case evaluation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingID(v)
		return nil
	case evaluation.FieldBlueprintID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case evaluation.FieldCompiledFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledFlowVersionID(v)
		return nil
	case evaluation.FieldStatus:
		v, ok := value.(evaluation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case evaluation.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case evaluation.FieldOverallPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallPassed(v)
		return nil
	case evaluation.FieldRequiresHumanReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresHumanReview(v)
		return nil
	case evaluation.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case evaluation.FieldDeterministicResults:
		v, ok := value.(*models.DeterministicResults)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeterministicResults(v)
		return nil
	case evaluation.FieldLlmStageEvaluations:
		v, ok := value.([]models.StageEvaluation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmStageEvaluations(v)
		return nil
	case evaluation.FieldFinalEvaluation:
		v, ok := value.(*models.FinalEvaluation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalEvaluation(v)
		return nil
	case evaluation.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case evaluation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case evaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evaluation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case evaluation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, evaluation.FieldOverallScore)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, evaluation.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldOverallScore:
		return m.AddedOverallScore()
	case evaluation.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case evaluation.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluation.FieldCompiledFlowVersionID) {
		fields = append(fields, evaluation.FieldCompiledFlowVersionID)
	}
	if m.FieldCleared(evaluation.FieldOverallScore) {
		fields = append(fields, evaluation.FieldOverallScore)
	}
	if m.FieldCleared(evaluation.FieldOverallPassed) {
		fields = append(fields, evaluation.FieldOverallPassed)
	}
	if m.FieldCleared(evaluation.FieldRequiresHumanReview) {
		fields = append(fields, evaluation.FieldRequiresHumanReview)
	}
	if m.FieldCleared(evaluation.FieldConfidenceScore) {
		fields = append(fields, evaluation.FieldConfidenceScore)
	}
	if m.FieldCleared(evaluation.FieldDeterministicResults) {
		fields = append(fields, evaluation.FieldDeterministicResults)
	}
	if m.FieldCleared(evaluation.FieldLlmStageEvaluations) {
		fields = append(fields, evaluation.FieldLlmStageEvaluations)
	}
	if m.FieldCleared(evaluation.FieldFinalEvaluation) {
		fields = append(fields, evaluation.FieldFinalEvaluation)
	}
	if m.FieldCleared(evaluation.FieldErrorCode) {
		fields = append(fields, evaluation.FieldErrorCode)
	}
	if m.FieldCleared(evaluation.FieldErrorMessage) {
		fields = append(fields, evaluation.FieldErrorMessage)
	}
	if m.FieldCleared(evaluation.FieldCompletedAt) {
		fields = append(fields, evaluation.FieldCompletedAt)
	}
	if m.FieldCleared(evaluation.FieldDeletedAt) {
		fields = append(fields, evaluation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationMutation) ClearField(name string) error {
	switch name {
	case evaluation.FieldCompiledFlowVersionID:
		m.ClearCompiledFlowVersionID()
		return nil
	case evaluation.FieldOverallScore:
		m.ClearOverallScore()
		return nil
	case evaluation.FieldOverallPassed:
		m.ClearOverallPassed()
		return nil
	case evaluation.FieldRequiresHumanReview:
		m.ClearRequiresHumanReview()
		return nil
	case evaluation.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case evaluation.FieldDeterministicResults:
		m.ClearDeterministicResults()
		return nil
	case evaluation.FieldLlmStageEvaluations:
		m.ClearLlmStageEvaluations()
		return nil
	case evaluation.FieldFinalEvaluation:
		m.ClearFinalEvaluation()
		return nil
	case evaluation.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case evaluation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case evaluation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case evaluation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationMutation) ResetField(name string) error {
	switch name {
	case evaluation.FieldRecordingID:
		m.ResetRecordingID()
		return nil
	case evaluation.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case evaluation.FieldCompiledFlowVersionID:
		m.ResetCompiledFlowVersionID()
		return nil
	case evaluation.FieldStatus:
		m.ResetStatus()
		return nil
	case evaluation.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case evaluation.FieldOverallPassed:
		m.ResetOverallPassed()
		return nil
	case evaluation.FieldRequiresHumanReview:
		m.ResetRequiresHumanReview()
		return nil
	case evaluation.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case evaluation.FieldDeterministicResults:
		m.ResetDeterministicResults()
		return nil
	case evaluation.FieldLlmStageEvaluations:
		m.ResetLlmStageEvaluations()
		return nil
	case evaluation.FieldFinalEvaluation:
		m.ResetFinalEvaluation()
		return nil
	case evaluation.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case evaluation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case evaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evaluation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case evaluation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recording != nil {
		edges = append(edges, evaluation.EdgeRecording)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeRecording:
		if id := m.recording; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecording {
		edges = append(edges, evaluation.EdgeRecording)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluation.EdgeRecording:
		return m.clearedrecording
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationMutation) ClearEdge(name string) error {
	switch name {
	case evaluation.EdgeRecording:
		m.ClearRecording()
		return nil
	}
	return fmt.Errorf("unknown Evaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationMutation) ResetEdge(name string) error {
	switch name {
	case evaluation.EdgeRecording:
		m.ResetRecording()
		return nil
	}
	return fmt.Errorf("unknown Evaluation edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	kind              *job.Kind
	idempotency_key   *string
	payload           *map[string]interface{}
	status            *job.Status
	pod_id            *string
	attempts          *int
	addattempts       *int
	error_message     *string
	created_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	last_heartbeat_at *time.Time
	run_after         *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Job, error)
	predicates        []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *JobMutation) SetKind(j job.Kind) {
	m.kind = &j
}

// Kind returns the value of the "kind" field in the mutation.
func (m *JobMutation) Kind() (r job.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldKind(ctx context.Context) (v job.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *JobMutation) ResetKind() {
	m.kind = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *JobMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *JobMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *JobMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetRunAfter sets the "run_after" field.
func (m *JobMutation) SetRunAfter(t time.Time) {
	m.run_after = &t
}

// RunAfter returns the value of the "run_after" field in the mutation.
func (m *JobMutation) RunAfter() (r time.Time, exists bool) {
	v := m.run_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAfter returns the old "run_after" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAfter(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAfter: %w", err)
	}
	return oldValue.RunAfter, nil
}

// ClearRunAfter clears the value of the "run_after" field.
func (m *JobMutation) ClearRunAfter() {
	m.run_after = nil
	m.clearedFields[job.FieldRunAfter] = struct{}{}
}

// RunAfterCleared returns if the "run_after" field was cleared in this mutation.
func (m *JobMutation) RunAfterCleared() bool {
	_, ok := m.clearedFields[job.FieldRunAfter]
	return ok
}

// ResetRunAfter resets all changes to the "run_after" field.
func (m *JobMutation) ResetRunAfter() {
	m.run_after = nil
	delete(m.clearedFields, job.FieldRunAfter)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.kind != nil {
		fields = append(fields, job.FieldKind)
	}
	if m.idempotency_key != nil {
		fields = append(fields, job.FieldIdempotencyKey)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.run_after != nil {
		fields = append(fields, job.FieldRunAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldKind:
		return m.Kind()
	case job.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldRunAfter:
		return m.RunAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldKind:
		return m.OldKind(ctx)
	case job.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldRunAfter:
		return m.OldRunAfter(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldKind:
		v, ok := value.(job.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case job.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldRunAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAfter(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldRunAfter) {
		fields = append(fields, job.FieldRunAfter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldRunAfter:
		m.ClearRunAfter()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldKind:
		m.ResetKind()
		return nil
	case job.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldRunAfter:
		m.ResetRunAfter()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// RecordingMutation represents an operation that mutates the Recording nodes in the graph.
type RecordingMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	company_id         *string
	audio_url          *string
	status             *recording.Status
	duration_s         *float64
	addduration_s      *float64
	error_message      *string
	created_at         *time.Time
	deleted_at         *time.Time
	clearedFields      map[string]struct{}
	transcript         *string
	clearedtranscript  bool
	evaluations        map[string]struct{}
	removedevaluations map[string]struct{}
	clearedevaluations bool
	done               bool
	oldValue           func(context.Context) (*Recording, error)
	predicates         []predicate.Recording
}

var _ ent.Mutation = (*RecordingMutation)(nil)

// recordingOption allows management of the mutation configuration using functional options.
type recordingOption func(*RecordingMutation)

// newRecordingMutation creates new mutation for the Recording entity.
func newRecordingMutation(c config, op Op, opts ...recordingOption) *RecordingMutation {
	m := &RecordingMutation{
		config:        c,
		op:            op,
		typ:           TypeRecording,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecordingID sets the ID field of the mutation.
func withRecordingID(id string) recordingOption {
	return func(m *RecordingMutation) {
		var (
			err   error
			once  sync.Once
			value *Recording
		)
		m.oldValue = func(ctx context.Context) (*Recording, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recording.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecording sets the old Recording of the mutation.
func withRecording(node *Recording) recordingOption {
	return func(m *RecordingMutation) {
		m.oldValue = func(context.Context) (*Recording, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecordingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecordingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recording entities.
func (m *RecordingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecordingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecordingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recording.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *RecordingMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *RecordingMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *RecordingMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetAudioURL sets the "audio_url" field.
func (m *RecordingMutation) SetAudioURL(s string) {
	m.audio_url = &s
}

// AudioURL returns the value of the "audio_url" field in the mutation.
func (m *RecordingMutation) AudioURL() (r string, exists bool) {
	v := m.audio_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioURL returns the old "audio_url" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldAudioURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioURL: %w", err)
	}
	return oldValue.AudioURL, nil
}

// ResetAudioURL resets all changes to the "audio_url" field.
func (m *RecordingMutation) ResetAudioURL() {
	m.audio_url = nil
}

// SetStatus sets the "status" field.
func (m *RecordingMutation) SetStatus(r recording.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecordingMutation) Status() (r recording.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldStatus(ctx context.Context) (v recording.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecordingMutation) ResetStatus() {
	m.status = nil
}

// SetDurationS sets the "duration_s" field.
func (m *RecordingMutation) SetDurationS(f float64) {
	m.duration_s = &f
	m.addduration_s = nil
}

// DurationS returns the value of the "duration_s" field in the mutation.
func (m *RecordingMutation) DurationS() (r float64, exists bool) {
	v := m.duration_s
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationS returns the old "duration_s" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldDurationS(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationS: %w", err)
	}
	return oldValue.DurationS, nil
}

// AddDurationS adds f to the "duration_s" field.
func (m *RecordingMutation) AddDurationS(f float64) {
	if m.addduration_s != nil {
		*m.addduration_s += f
	} else {
		m.addduration_s = &f
	}
}

// AddedDurationS returns the value that was added to the "duration_s" field in this mutation.
func (m *RecordingMutation) AddedDurationS() (r float64, exists bool) {
	v := m.addduration_s
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationS clears the value of the "duration_s" field.
func (m *RecordingMutation) ClearDurationS() {
	m.duration_s = nil
	m.addduration_s = nil
	m.clearedFields[recording.FieldDurationS] = struct{}{}
}

// DurationSCleared returns if the "duration_s" field was cleared in this mutation.
func (m *RecordingMutation) DurationSCleared() bool {
	_, ok := m.clearedFields[recording.FieldDurationS]
	return ok
}

// ResetDurationS resets all changes to the "duration_s" field.
func (m *RecordingMutation) ResetDurationS() {
	m.duration_s = nil
	m.addduration_s = nil
	delete(m.clearedFields, recording.FieldDurationS)
}

// SetErrorMessage sets the "error_message" field.
func (m *RecordingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RecordingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RecordingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[recording.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RecordingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[recording.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RecordingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, recording.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecordingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecordingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecordingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RecordingMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RecordingMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RecordingMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[recording.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RecordingMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[recording.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RecordingMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, recording.FieldDeletedAt)
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by id.
func (m *RecordingMutation) SetTranscriptID(id string) {
	m.transcript = &id
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *RecordingMutation) ClearTranscript() {
	m.clearedtranscript = true
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *RecordingMutation) TranscriptCleared() bool {
	return m.clearedtranscript
}

// TranscriptID returns the "transcript" edge ID in the mutation.
func (m *RecordingMutation) TranscriptID() (id string, exists bool) {
	if m.transcript != nil {
		return *m.transcript, true
	}
	return
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *RecordingMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *RecordingMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *RecordingMutation) AddEvaluationIDs(ids ...string) {
	if m.evaluations == nil {
		m.evaluations = make(map[string]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *RecordingMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *RecordingMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *RecordingMutation) RemoveEvaluationIDs(ids ...string) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *RecordingMutation) RemovedEvaluationsIDs() (ids []string) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *RecordingMutation) EvaluationsIDs() (ids []string) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *RecordingMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// Where appends a list predicates to the RecordingMutation builder.
func (m *RecordingMutation) Where(ps ...predicate.Recording) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecordingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecordingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recording, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecordingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecordingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recording).
func (m *RecordingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecordingMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.company_id != nil {
		fields = append(fields, recording.FieldCompanyID)
	}
	if m.audio_url != nil {
		fields = append(fields, recording.FieldAudioURL)
	}
	if m.status != nil {
		fields = append(fields, recording.FieldStatus)
	}
	if m.duration_s != nil {
		fields = append(fields, recording.FieldDurationS)
	}
	if m.error_message != nil {
		fields = append(fields, recording.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, recording.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, recording.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecordingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldCompanyID:
		return m.CompanyID()
	case recording.FieldAudioURL:
		return m.AudioURL()
	case recording.FieldStatus:
		return m.Status()
	case recording.FieldDurationS:
		return m.DurationS()
	case recording.FieldErrorMessage:
		return m.ErrorMessage()
	case recording.FieldCreatedAt:
		return m.CreatedAt()
	case recording.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecordingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recording.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case recording.FieldAudioURL:
		return m.OldAudioURL(ctx)
	case recording.FieldStatus:
		return m.OldStatus(ctx)
	case recording.FieldDurationS:
		return m.OldDurationS(ctx)
	case recording.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case recording.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recording.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recording field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recording.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case recording.FieldAudioURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioURL(v)
		return nil
	case recording.FieldStatus:
		v, ok := value.(recording.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recording.FieldDurationS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationS(v)
		return nil
	case recording.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case recording.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recording.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecordingMutation) AddedFields() []string {
	var fields []string
	if m.addduration_s != nil {
		fields = append(fields, recording.FieldDurationS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecordingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldDurationS:
		return m.AddedDurationS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recording.FieldDurationS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationS(v)
		return nil
	}
	return fmt.Errorf("unknown Recording numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecordingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recording.FieldDurationS) {
		fields = append(fields, recording.FieldDurationS)
	}
	if m.FieldCleared(recording.FieldErrorMessage) {
		fields = append(fields, recording.FieldErrorMessage)
	}
	if m.FieldCleared(recording.FieldDeletedAt) {
		fields = append(fields, recording.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecordingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecordingMutation) ClearField(name string) error {
	switch name {
	case recording.FieldDurationS:
		m.ClearDurationS()
		return nil
	case recording.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case recording.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Recording nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecordingMutation) ResetField(name string) error {
	switch name {
	case recording.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case recording.FieldAudioURL:
		m.ResetAudioURL()
		return nil
	case recording.FieldStatus:
		m.ResetStatus()
		return nil
	case recording.FieldDurationS:
		m.ResetDurationS()
		return nil
	case recording.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case recording.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recording.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecordingMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.transcript != nil {
		edges = append(edges, recording.EdgeTranscript)
	}
	if m.evaluations != nil {
		edges = append(edges, recording.EdgeEvaluations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecordingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	case recording.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecordingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevaluations != nil {
		edges = append(edges, recording.EdgeEvaluations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecordingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecordingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtranscript {
		edges = append(edges, recording.EdgeTranscript)
	}
	if m.clearedevaluations {
		edges = append(edges, recording.EdgeEvaluations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecordingMutation) EdgeCleared(name string) bool {
	switch name {
	case recording.EdgeTranscript:
		return m.clearedtranscript
	case recording.EdgeEvaluations:
		return m.clearedevaluations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecordingMutation) ClearEdge(name string) error {
	switch name {
	case recording.EdgeTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown Recording unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecordingMutation) ResetEdge(name string) error {
	switch name {
	case recording.EdgeTranscript:
		m.ResetTranscript()
		return nil
	case recording.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	}
	return fmt.Errorf("unknown Recording edge %s", name)
}

// SandboxRunMutation represents an operation that mutates the SandboxRun nodes in the graph.
type SandboxRunMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	blueprint_id             *string
	compiled_flow_version_id *string
	recording_id             *string
	idempotency_key          *string
	status                   *sandboxrun.Status
	transcript_snapshot      **models.Transcript
	result                   **models.SandboxResult
	error_message            *string
	created_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*SandboxRun, error)
	predicates               []predicate.SandboxRun
}

var _ ent.Mutation = (*SandboxRunMutation)(nil)

// sandboxrunOption allows management of the mutation configuration using functional options.
type sandboxrunOption func(*SandboxRunMutation)

// newSandboxRunMutation creates new mutation for the SandboxRun entity.
func newSandboxRunMutation(c config, op Op, opts ...sandboxrunOption) *SandboxRunMutation {
	m := &SandboxRunMutation{
		config:        c,
		op:            op,
		typ:           TypeSandboxRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSandboxRunID sets the ID field of the mutation.
func withSandboxRunID(id string) sandboxrunOption {
	return func(m *SandboxRunMutation) {
		var (
			err   error
			once  sync.Once
			value *SandboxRun
		)
		m.oldValue = func(ctx context.Context) (*SandboxRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SandboxRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSandboxRun sets the old SandboxRun of the mutation.
func withSandboxRun(node *SandboxRun) sandboxrunOption {
	return func(m *SandboxRunMutation) {
		m.oldValue = func(context.Context) (*SandboxRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SandboxRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SandboxRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SandboxRun entities.
func (m *SandboxRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SandboxRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SandboxRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SandboxRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *SandboxRunMutation) SetBlueprintID(s string) {
	m.blueprint_id = &s
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *SandboxRunMutation) BlueprintID() (r string, exists bool) {
	v := m.blueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldBlueprintID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *SandboxRunMutation) ResetBlueprintID() {
	m.blueprint_id = nil
}

// SetCompiledFlowVersionID sets the "compiled_flow_version_id" field.
func (m *SandboxRunMutation) SetCompiledFlowVersionID(s string) {
	m.compiled_flow_version_id = &s
}

// CompiledFlowVersionID returns the value of the "compiled_flow_version_id" field in the mutation.
func (m *SandboxRunMutation) CompiledFlowVersionID() (r string, exists bool) {
	v := m.compiled_flow_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledFlowVersionID returns the old "compiled_flow_version_id" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldCompiledFlowVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledFlowVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledFlowVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledFlowVersionID: %w", err)
	}
	return oldValue.CompiledFlowVersionID, nil
}

// ClearCompiledFlowVersionID clears the value of the "compiled_flow_version_id" field.
func (m *SandboxRunMutation) ClearCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	m.clearedFields[sandboxrun.FieldCompiledFlowVersionID] = struct{}{}
}

// CompiledFlowVersionIDCleared returns if the "compiled_flow_version_id" field was cleared in this mutation.
func (m *SandboxRunMutation) CompiledFlowVersionIDCleared() bool {
	_, ok := m.clearedFields[sandboxrun.FieldCompiledFlowVersionID]
	return ok
}

// ResetCompiledFlowVersionID resets all changes to the "compiled_flow_version_id" field.
func (m *SandboxRunMutation) ResetCompiledFlowVersionID() {
	m.compiled_flow_version_id = nil
	delete(m.clearedFields, sandboxrun.FieldCompiledFlowVersionID)
}

// SetRecordingID sets the "recording_id" field.
func (m *SandboxRunMutation) SetRecordingID(s string) {
	m.recording_id = &s
}

// RecordingID returns the value of the "recording_id" field in the mutation.
func (m *SandboxRunMutation) RecordingID() (r string, exists bool) {
	v := m.recording_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingID returns the old "recording_id" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldRecordingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingID: %w", err)
	}
	return oldValue.RecordingID, nil
}

// ClearRecordingID clears the value of the "recording_id" field.
func (m *SandboxRunMutation) ClearRecordingID() {
	m.recording_id = nil
	m.clearedFields[sandboxrun.FieldRecordingID] = struct{}{}
}

// RecordingIDCleared returns if the "recording_id" field was cleared in this mutation.
func (m *SandboxRunMutation) RecordingIDCleared() bool {
	_, ok := m.clearedFields[sandboxrun.FieldRecordingID]
	return ok
}

// ResetRecordingID resets all changes to the "recording_id" field.
func (m *SandboxRunMutation) ResetRecordingID() {
	m.recording_id = nil
	delete(m.clearedFields, sandboxrun.FieldRecordingID)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *SandboxRunMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *SandboxRunMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *SandboxRunMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[sandboxrun.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *SandboxRunMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[sandboxrun.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *SandboxRunMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, sandboxrun.FieldIdempotencyKey)
}

// SetStatus sets the "status" field.
func (m *SandboxRunMutation) SetStatus(s sandboxrun.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SandboxRunMutation) Status() (r sandboxrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldStatus(ctx context.Context) (v sandboxrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SandboxRunMutation) ResetStatus() {
	m.status = nil
}

// SetTranscriptSnapshot sets the "transcript_snapshot" field.
func (m *SandboxRunMutation) SetTranscriptSnapshot(value *models.Transcript) {
	m.transcript_snapshot = &value
}

// TranscriptSnapshot returns the value of the "transcript_snapshot" field in the mutation.
func (m *SandboxRunMutation) TranscriptSnapshot() (r *models.Transcript, exists bool) {
	v := m.transcript_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptSnapshot returns the old "transcript_snapshot" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldTranscriptSnapshot(ctx context.Context) (v *models.Transcript, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptSnapshot: %w", err)
	}
	return oldValue.TranscriptSnapshot, nil
}

// ClearTranscriptSnapshot clears the value of the "transcript_snapshot" field.
func (m *SandboxRunMutation) ClearTranscriptSnapshot() {
	m.transcript_snapshot = nil
	m.clearedFields[sandboxrun.FieldTranscriptSnapshot] = struct{}{}
}

// TranscriptSnapshotCleared returns if the "transcript_snapshot" field was cleared in this mutation.
func (m *SandboxRunMutation) TranscriptSnapshotCleared() bool {
	_, ok := m.clearedFields[sandboxrun.FieldTranscriptSnapshot]
	return ok
}

// ResetTranscriptSnapshot resets all changes to the "transcript_snapshot" field.
func (m *SandboxRunMutation) ResetTranscriptSnapshot() {
	m.transcript_snapshot = nil
	delete(m.clearedFields, sandboxrun.FieldTranscriptSnapshot)
}

// SetResult sets the "result" field.
func (m *SandboxRunMutation) SetResult(mr *models.SandboxResult) {
	m.result = &mr
}

// Result returns the value of the "result" field in the mutation.
func (m *SandboxRunMutation) Result() (r *models.SandboxResult, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldResult(ctx context.Context) (v *models.SandboxResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *SandboxRunMutation) ClearResult() {
	m.result = nil
	m.clearedFields[sandboxrun.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *SandboxRunMutation) ResultCleared() bool {
	_, ok := m.clearedFields[sandboxrun.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *SandboxRunMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, sandboxrun.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *SandboxRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SandboxRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SandboxRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[sandboxrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SandboxRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[sandboxrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SandboxRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, sandboxrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SandboxRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SandboxRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SandboxRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SandboxRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SandboxRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SandboxRun entity.
// If the SandboxRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SandboxRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sandboxrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SandboxRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sandboxrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SandboxRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sandboxrun.FieldCompletedAt)
}

// Where appends a list predicates to the SandboxRunMutation builder.
func (m *SandboxRunMutation) Where(ps ...predicate.SandboxRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SandboxRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SandboxRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SandboxRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SandboxRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SandboxRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SandboxRun).
func (m *SandboxRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SandboxRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.blueprint_id != nil {
		fields = append(fields, sandboxrun.FieldBlueprintID)
	}
	if m.compiled_flow_version_id != nil {
		fields = append(fields, sandboxrun.FieldCompiledFlowVersionID)
	}
	if m.recording_id != nil {
		fields = append(fields, sandboxrun.FieldRecordingID)
	}
	if m.idempotency_key != nil {
		fields = append(fields, sandboxrun.FieldIdempotencyKey)
	}
	if m.status != nil {
		fields = append(fields, sandboxrun.FieldStatus)
	}
	if m.transcript_snapshot != nil {
		fields = append(fields, sandboxrun.FieldTranscriptSnapshot)
	}
	if m.result != nil {
		fields = append(fields, sandboxrun.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, sandboxrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, sandboxrun.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, sandboxrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SandboxRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sandboxrun.FieldBlueprintID:
		return m.BlueprintID()
	case sandboxrun.FieldCompiledFlowVersionID:
		return m.CompiledFlowVersionID()
	case sandboxrun.FieldRecordingID:
		return m.RecordingID()
	case sandboxrun.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case sandboxrun.FieldStatus:
		return m.Status()
	case sandboxrun.FieldTranscriptSnapshot:
		return m.TranscriptSnapshot()
	case sandboxrun.FieldResult:
		return m.Result()
	case sandboxrun.FieldErrorMessage:
		return m.ErrorMessage()
	case sandboxrun.FieldCreatedAt:
		return m.CreatedAt()
	case sandboxrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SandboxRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sandboxrun.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case sandboxrun.FieldCompiledFlowVersionID:
		return m.OldCompiledFlowVersionID(ctx)
	case sandboxrun.FieldRecordingID:
		return m.OldRecordingID(ctx)
	case sandboxrun.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case sandboxrun.FieldStatus:
		return m.OldStatus(ctx)
	case sandboxrun.FieldTranscriptSnapshot:
		return m.OldTranscriptSnapshot(ctx)
	case sandboxrun.FieldResult:
		return m.OldResult(ctx)
	case sandboxrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case sandboxrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sandboxrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SandboxRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sandboxrun.FieldBlueprintID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case sandboxrun.FieldCompiledFlowVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledFlowVersionID(v)
		return nil
	case sandboxrun.FieldRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingID(v)
		return nil
	case sandboxrun.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case sandboxrun.FieldStatus:
		v, ok := value.(sandboxrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sandboxrun.FieldTranscriptSnapshot:
		v, ok := value.(*models.Transcript)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptSnapshot(v)
		return nil
	case sandboxrun.FieldResult:
		v, ok := value.(*models.SandboxResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case sandboxrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case sandboxrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sandboxrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SandboxRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SandboxRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SandboxRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SandboxRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sandboxrun.FieldCompiledFlowVersionID) {
		fields = append(fields, sandboxrun.FieldCompiledFlowVersionID)
	}
	if m.FieldCleared(sandboxrun.FieldRecordingID) {
		fields = append(fields, sandboxrun.FieldRecordingID)
	}
	if m.FieldCleared(sandboxrun.FieldIdempotencyKey) {
		fields = append(fields, sandboxrun.FieldIdempotencyKey)
	}
	if m.FieldCleared(sandboxrun.FieldTranscriptSnapshot) {
		fields = append(fields, sandboxrun.FieldTranscriptSnapshot)
	}
	if m.FieldCleared(sandboxrun.FieldResult) {
		fields = append(fields, sandboxrun.FieldResult)
	}
	if m.FieldCleared(sandboxrun.FieldErrorMessage) {
		fields = append(fields, sandboxrun.FieldErrorMessage)
	}
	if m.FieldCleared(sandboxrun.FieldCompletedAt) {
		fields = append(fields, sandboxrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SandboxRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SandboxRunMutation) ClearField(name string) error {
	switch name {
	case sandboxrun.FieldCompiledFlowVersionID:
		m.ClearCompiledFlowVersionID()
		return nil
	case sandboxrun.FieldRecordingID:
		m.ClearRecordingID()
		return nil
	case sandboxrun.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case sandboxrun.FieldTranscriptSnapshot:
		m.ClearTranscriptSnapshot()
		return nil
	case sandboxrun.FieldResult:
		m.ClearResult()
		return nil
	case sandboxrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case sandboxrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SandboxRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SandboxRunMutation) ResetField(name string) error {
	switch name {
	case sandboxrun.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case sandboxrun.FieldCompiledFlowVersionID:
		m.ResetCompiledFlowVersionID()
		return nil
	case sandboxrun.FieldRecordingID:
		m.ResetRecordingID()
		return nil
	case sandboxrun.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case sandboxrun.FieldStatus:
		m.ResetStatus()
		return nil
	case sandboxrun.FieldTranscriptSnapshot:
		m.ResetTranscriptSnapshot()
		return nil
	case sandboxrun.FieldResult:
		m.ResetResult()
		return nil
	case sandboxrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case sandboxrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sandboxrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SandboxRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SandboxRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SandboxRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SandboxRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SandboxRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SandboxRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SandboxRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SandboxRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SandboxRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SandboxRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SandboxRun edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	transcript_text          *string
	diarized_segments        *[]models.Segment
	appenddiarized_segments  []models.Segment
	sentiment_analysis       *[]models.SentimentSpan
	appendsentiment_analysis []models.SentimentSpan
	asr_confidence           *float64
	addasr_confidence        *float64
	created_at               *time.Time
	clearedFields            map[string]struct{}
	recording                *string
	clearedrecording         bool
	done                     bool
	oldValue                 func(context.Context) (*Transcript, error)
	predicates               []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id string) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcript entities.
func (m *TranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordingID sets the "recording_id" field.
func (m *TranscriptMutation) SetRecordingID(s string) {
	m.recording = &s
}

// RecordingID returns the value of the "recording_id" field in the mutation.
func (m *TranscriptMutation) RecordingID() (r string, exists bool) {
	v := m.recording
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingID returns the old "recording_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldRecordingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingID: %w", err)
	}
	return oldValue.RecordingID, nil
}

// ResetRecordingID resets all changes to the "recording_id" field.
func (m *TranscriptMutation) ResetRecordingID() {
	m.recording = nil
}

// SetTranscriptText sets the "transcript_text" field.
func (m *TranscriptMutation) SetTranscriptText(s string) {
	m.transcript_text = &s
}

// TranscriptText returns the value of the "transcript_text" field in the mutation.
func (m *TranscriptMutation) TranscriptText() (r string, exists bool) {
	v := m.transcript_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptText returns the old "transcript_text" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTranscriptText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptText: %w", err)
	}
	return oldValue.TranscriptText, nil
}

// ResetTranscriptText resets all changes to the "transcript_text" field.
func (m *TranscriptMutation) ResetTranscriptText() {
	m.transcript_text = nil
}

// SetDiarizedSegments sets the "diarized_segments" field.
func (m *TranscriptMutation) SetDiarizedSegments(value []models.Segment) {
	m.diarized_segments = &value
	m.appenddiarized_segments = nil
}

// DiarizedSegments returns the value of the "diarized_segments" field in the mutation.
func (m *TranscriptMutation) DiarizedSegments() (r []models.Segment, exists bool) {
	v := m.diarized_segments
	if v == nil {
		return
	}
	return *v, true
}

// OldDiarizedSegments returns the old "diarized_segments" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldDiarizedSegments(ctx context.Context) (v []models.Segment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiarizedSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiarizedSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiarizedSegments: %w", err)
	}
	return oldValue.DiarizedSegments, nil
}

// AppendDiarizedSegments adds value to the "diarized_segments" field.
func (m *TranscriptMutation) AppendDiarizedSegments(value []models.Segment) {
	m.appenddiarized_segments = append(m.appenddiarized_segments, value...)
}

// AppendedDiarizedSegments returns the list of values that were appended to the "diarized_segments" field in this mutation.
func (m *TranscriptMutation) AppendedDiarizedSegments() ([]models.Segment, bool) {
	if len(m.appenddiarized_segments) == 0 {
		return nil, false
	}
	return m.appenddiarized_segments, true
}

// ResetDiarizedSegments resets all changes to the "diarized_segments" field.
func (m *TranscriptMutation) ResetDiarizedSegments() {
	m.diarized_segments = nil
	m.appenddiarized_segments = nil
}

// SetSentimentAnalysis sets the "sentiment_analysis" field.
func (m *TranscriptMutation) SetSentimentAnalysis(ms []models.SentimentSpan) {
	m.sentiment_analysis = &ms
	m.appendsentiment_analysis = nil
}

// SentimentAnalysis returns the value of the "sentiment_analysis" field in the mutation.
func (m *TranscriptMutation) SentimentAnalysis() (r []models.SentimentSpan, exists bool) {
	v := m.sentiment_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentAnalysis returns the old "sentiment_analysis" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldSentimentAnalysis(ctx context.Context) (v []models.SentimentSpan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentAnalysis: %w", err)
	}
	return oldValue.SentimentAnalysis, nil
}

// AppendSentimentAnalysis adds ms to the "sentiment_analysis" field.
func (m *TranscriptMutation) AppendSentimentAnalysis(ms []models.SentimentSpan) {
	m.appendsentiment_analysis = append(m.appendsentiment_analysis, ms...)
}

// AppendedSentimentAnalysis returns the list of values that were appended to the "sentiment_analysis" field in this mutation.
func (m *TranscriptMutation) AppendedSentimentAnalysis() ([]models.SentimentSpan, bool) {
	if len(m.appendsentiment_analysis) == 0 {
		return nil, false
	}
	return m.appendsentiment_analysis, true
}

// ClearSentimentAnalysis clears the value of the "sentiment_analysis" field.
func (m *TranscriptMutation) ClearSentimentAnalysis() {
	m.sentiment_analysis = nil
	m.appendsentiment_analysis = nil
	m.clearedFields[transcript.FieldSentimentAnalysis] = struct{}{}
}

// SentimentAnalysisCleared returns if the "sentiment_analysis" field was cleared in this mutation.
func (m *TranscriptMutation) SentimentAnalysisCleared() bool {
	_, ok := m.clearedFields[transcript.FieldSentimentAnalysis]
	return ok
}

// ResetSentimentAnalysis resets all changes to the "sentiment_analysis" field.
func (m *TranscriptMutation) ResetSentimentAnalysis() {
	m.sentiment_analysis = nil
	m.appendsentiment_analysis = nil
	delete(m.clearedFields, transcript.FieldSentimentAnalysis)
}

// SetAsrConfidence sets the "asr_confidence" field.
func (m *TranscriptMutation) SetAsrConfidence(f float64) {
	m.asr_confidence = &f
	m.addasr_confidence = nil
}

// AsrConfidence returns the value of the "asr_confidence" field in the mutation.
func (m *TranscriptMutation) AsrConfidence() (r float64, exists bool) {
	v := m.asr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAsrConfidence returns the old "asr_confidence" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldAsrConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAsrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAsrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAsrConfidence: %w", err)
	}
	return oldValue.AsrConfidence, nil
}

// AddAsrConfidence adds f to the "asr_confidence" field.
func (m *TranscriptMutation) AddAsrConfidence(f float64) {
	if m.addasr_confidence != nil {
		*m.addasr_confidence += f
	} else {
		m.addasr_confidence = &f
	}
}

// AddedAsrConfidence returns the value that was added to the "asr_confidence" field in this mutation.
func (m *TranscriptMutation) AddedAsrConfidence() (r float64, exists bool) {
	v := m.addasr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAsrConfidence resets all changes to the "asr_confidence" field.
func (m *TranscriptMutation) ResetAsrConfidence() {
	m.asr_confidence = nil
	m.addasr_confidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRecording clears the "recording" edge to the Recording entity.
func (m *TranscriptMutation) ClearRecording() {
	m.clearedrecording = true
	m.clearedFields[transcript.FieldRecordingID] = struct{}{}
}

// RecordingCleared reports if the "recording" edge to the Recording entity was cleared.
func (m *TranscriptMutation) RecordingCleared() bool {
	return m.clearedrecording
}

// RecordingIDs returns the "recording" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecordingID instead. It exists only for internal usage by the builders.
func (m *TranscriptMutation) RecordingIDs() (ids []string) {
	if id := m.recording; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecording resets all changes to the "recording" edge.
func (m *TranscriptMutation) ResetRecording() {
	m.recording = nil
	m.clearedrecording = false
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.recording != nil {
		fields = append(fields, transcript.FieldRecordingID)
	}
	if m.transcript_text != nil {
		fields = append(fields, transcript.FieldTranscriptText)
	}
	if m.diarized_segments != nil {
		fields = append(fields, transcript.FieldDiarizedSegments)
	}
	if m.sentiment_analysis != nil {
		fields = append(fields, transcript.FieldSentimentAnalysis)
	}
	if m.asr_confidence != nil {
		fields = append(fields, transcript.FieldAsrConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, transcript.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldRecordingID:
		return m.RecordingID()
	case transcript.FieldTranscriptText:
		return m.TranscriptText()
	case transcript.FieldDiarizedSegments:
		return m.DiarizedSegments()
	case transcript.FieldSentimentAnalysis:
		return m.SentimentAnalysis()
	case transcript.FieldAsrConfidence:
		return m.AsrConfidence()
	case transcript.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldRecordingID:
		return m.OldRecordingID(ctx)
	case transcript.FieldTranscriptText:
		return m.OldTranscriptText(ctx)
	case transcript.FieldDiarizedSegments:
		return m.OldDiarizedSegments(ctx)
	case transcript.FieldSentimentAnalysis:
		return m.OldSentimentAnalysis(ctx)
	case transcript.FieldAsrConfidence:
		return m.OldAsrConfidence(ctx)
	case transcript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingID(v)
		return nil
	case transcript.FieldTranscriptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptText(v)
		return nil
	case transcript.FieldDiarizedSegments:
		v, ok := value.([]models.Segment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiarizedSegments(v)
		return nil
	case transcript.FieldSentimentAnalysis:
		v, ok := value.([]models.SentimentSpan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentAnalysis(v)
		return nil
	case transcript.FieldAsrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAsrConfidence(v)
		return nil
	case transcript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	var fields []string
	if m.addasr_confidence != nil {
		fields = append(fields, transcript.FieldAsrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldAsrConfidence:
		return m.AddedAsrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldAsrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAsrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcript.FieldSentimentAnalysis) {
		fields = append(fields, transcript.FieldSentimentAnalysis)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	switch name {
	case transcript.FieldSentimentAnalysis:
		m.ClearSentimentAnalysis()
		return nil
	}
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldRecordingID:
		m.ResetRecordingID()
		return nil
	case transcript.FieldTranscriptText:
		m.ResetTranscriptText()
		return nil
	case transcript.FieldDiarizedSegments:
		m.ResetDiarizedSegments()
		return nil
	case transcript.FieldSentimentAnalysis:
		m.ResetSentimentAnalysis()
		return nil
	case transcript.FieldAsrConfidence:
		m.ResetAsrConfidence()
		return nil
	case transcript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recording != nil {
		edges = append(edges, transcript.EdgeRecording)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcript.EdgeRecording:
		if id := m.recording; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecording {
		edges = append(edges, transcript.EdgeRecording)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	switch name {
	case transcript.EdgeRecording:
		return m.clearedrecording
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	switch name {
	case transcript.EdgeRecording:
		m.ClearRecording()
		return nil
	}
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	switch name {
	case transcript.EdgeRecording:
		m.ResetRecording()
		return nil
	}
	return fmt.Errorf("unknown Transcript edge %s", name)
}
