// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/callscope-ai/callscope/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/callscope-ai/callscope/ent/recording"
	"github.com/callscope-ai/callscope/ent/sandboxrun"
	"github.com/callscope-ai/callscope/ent/transcript"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Blueprint is the client for interacting with the Blueprint builders.
	Blueprint *BlueprintClient
	// BlueprintBehavior is the client for interacting with the BlueprintBehavior builders.
	BlueprintBehavior *BlueprintBehaviorClient
	// BlueprintStage is the client for interacting with the BlueprintStage builders.
	BlueprintStage *BlueprintStageClient
	// BlueprintVersion is the client for interacting with the BlueprintVersion builders.
	BlueprintVersion *BlueprintVersionClient
	// CompiledComplianceRule is the client for interacting with the CompiledComplianceRule builders.
	CompiledComplianceRule *CompiledComplianceRuleClient
	// CompiledFlowStage is the client for interacting with the CompiledFlowStage builders.
	CompiledFlowStage *CompiledFlowStageClient
	// CompiledFlowStep is the client for interacting with the CompiledFlowStep builders.
	CompiledFlowStep *CompiledFlowStepClient
	// CompiledFlowVersion is the client for interacting with the CompiledFlowVersion builders.
	CompiledFlowVersion *CompiledFlowVersionClient
	// CompiledRubricTemplate is the client for interacting with the CompiledRubricTemplate builders.
	CompiledRubricTemplate *CompiledRubricTemplateClient
	// Evaluation is the client for interacting with the Evaluation builders.
	Evaluation *EvaluationClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// Recording is the client for interacting with the Recording builders.
	Recording *RecordingClient
	// SandboxRun is the client for interacting with the SandboxRun builders.
	SandboxRun *SandboxRunClient
	// Transcript is the client for interacting with the Transcript builders.
	Transcript *TranscriptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Blueprint = NewBlueprintClient(c.config)
	c.BlueprintBehavior = NewBlueprintBehaviorClient(c.config)
	c.BlueprintStage = NewBlueprintStageClient(c.config)
	c.BlueprintVersion = NewBlueprintVersionClient(c.config)
	c.CompiledComplianceRule = NewCompiledComplianceRuleClient(c.config)
	c.CompiledFlowStage = NewCompiledFlowStageClient(c.config)
	c.CompiledFlowStep = NewCompiledFlowStepClient(c.config)
	c.CompiledFlowVersion = NewCompiledFlowVersionClient(c.config)
	c.CompiledRubricTemplate = NewCompiledRubricTemplateClient(c.config)
	c.Evaluation = NewEvaluationClient(c.config)
	c.Job = NewJobClient(c.config)
	c.Recording = NewRecordingClient(c.config)
	c.SandboxRun = NewSandboxRunClient(c.config)
	c.Transcript = NewTranscriptClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Blueprint:              NewBlueprintClient(cfg),
		BlueprintBehavior:      NewBlueprintBehaviorClient(cfg),
		BlueprintStage:         NewBlueprintStageClient(cfg),
		BlueprintVersion:       NewBlueprintVersionClient(cfg),
		CompiledComplianceRule: NewCompiledComplianceRuleClient(cfg),
		CompiledFlowStage:      NewCompiledFlowStageClient(cfg),
		CompiledFlowStep:       NewCompiledFlowStepClient(cfg),
		CompiledFlowVersion:    NewCompiledFlowVersionClient(cfg),
		CompiledRubricTemplate: NewCompiledRubricTemplateClient(cfg),
		Evaluation:             NewEvaluationClient(cfg),
		Job:                    NewJobClient(cfg),
		Recording:              NewRecordingClient(cfg),
		SandboxRun:             NewSandboxRunClient(cfg),
		Transcript:             NewTranscriptClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Blueprint:              NewBlueprintClient(cfg),
		BlueprintBehavior:      NewBlueprintBehaviorClient(cfg),
		BlueprintStage:         NewBlueprintStageClient(cfg),
		BlueprintVersion:       NewBlueprintVersionClient(cfg),
		CompiledComplianceRule: NewCompiledComplianceRuleClient(cfg),
		CompiledFlowStage:      NewCompiledFlowStageClient(cfg),
		CompiledFlowStep:       NewCompiledFlowStepClient(cfg),
		CompiledFlowVersion:    NewCompiledFlowVersionClient(cfg),
		CompiledRubricTemplate: NewCompiledRubricTemplateClient(cfg),
		Evaluation:             NewEvaluationClient(cfg),
		Job:                    NewJobClient(cfg),
		Recording:              NewRecordingClient(cfg),
		SandboxRun:             NewSandboxRunClient(cfg),
		Transcript:             NewTranscriptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Blueprint.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Blueprint, c.BlueprintBehavior, c.BlueprintStage, c.BlueprintVersion,
		c.CompiledComplianceRule, c.CompiledFlowStage, c.CompiledFlowStep,
		c.CompiledFlowVersion, c.CompiledRubricTemplate, c.Evaluation, c.Job,
		c.Recording, c.SandboxRun, c.Transcript,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Blueprint, c.BlueprintBehavior, c.BlueprintStage, c.BlueprintVersion,
		c.CompiledComplianceRule, c.CompiledFlowStage, c.CompiledFlowStep,
		c.CompiledFlowVersion, c.CompiledRubricTemplate, c.Evaluation, c.Job,
		c.Recording, c.SandboxRun, c.Transcript,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BlueprintMutation:
		return c.Blueprint.mutate(ctx, m)
	case *BlueprintBehaviorMutation:
		return c.BlueprintBehavior.mutate(ctx, m)
	case *BlueprintStageMutation:
		return c.BlueprintStage.mutate(ctx, m)
	case *BlueprintVersionMutation:
		return c.BlueprintVersion.mutate(ctx, m)
	case *CompiledComplianceRuleMutation:
		return c.CompiledComplianceRule.mutate(ctx, m)
	case *CompiledFlowStageMutation:
		return c.CompiledFlowStage.mutate(ctx, m)
	case *CompiledFlowStepMutation:
		return c.CompiledFlowStep.mutate(ctx, m)
	case *CompiledFlowVersionMutation:
		return c.CompiledFlowVersion.mutate(ctx, m)
	case *CompiledRubricTemplateMutation:
		return c.CompiledRubricTemplate.mutate(ctx, m)
	case *EvaluationMutation:
		return c.Evaluation.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *RecordingMutation:
		return c.Recording.mutate(ctx, m)
	case *SandboxRunMutation:
		return c.SandboxRun.mutate(ctx, m)
	case *TranscriptMutation:
		return c.Transcript.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BlueprintClient is a client for the Blueprint schema.
type BlueprintClient struct {
	config
}

// NewBlueprintClient returns a client for the Blueprint from the given config.
func NewBlueprintClient(c config) *BlueprintClient {
	return &BlueprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprint.Hooks(f(g(h())))`.
func (c *BlueprintClient) Use(hooks ...Hook) {
	c.hooks.Blueprint = append(c.hooks.Blueprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprint.Intercept(f(g(h())))`.
func (c *BlueprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.Blueprint = append(c.inters.Blueprint, interceptors...)
}

// Create returns a builder for creating a Blueprint entity.
func (c *BlueprintClient) Create() *BlueprintCreate {
	mutation := newBlueprintMutation(c.config, OpCreate)
	return &BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Blueprint entities.
func (c *BlueprintClient) CreateBulk(builders ...*BlueprintCreate) *BlueprintCreateBulk {
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintClient) MapCreateBulk(slice any, setFunc func(*BlueprintCreate, int)) *BlueprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintCreateBulk{err: fmt.Errorf("calling to BlueprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Blueprint.
func (c *BlueprintClient) Update() *BlueprintUpdate {
	mutation := newBlueprintMutation(c.config, OpUpdate)
	return &BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintClient) UpdateOne(_m *Blueprint) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprint(_m))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintClient) UpdateOneID(id string) *BlueprintUpdateOne {
	mutation := newBlueprintMutation(c.config, OpUpdateOne, withBlueprintID(id))
	return &BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Blueprint.
func (c *BlueprintClient) Delete() *BlueprintDelete {
	mutation := newBlueprintMutation(c.config, OpDelete)
	return &BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintClient) DeleteOne(_m *Blueprint) *BlueprintDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintClient) DeleteOneID(id string) *BlueprintDeleteOne {
	builder := c.Delete().Where(blueprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintDeleteOne{builder}
}

// Query returns a query builder for Blueprint.
func (c *BlueprintClient) Query() *BlueprintQuery {
	return &BlueprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprint},
		inters: c.Interceptors(),
	}
}

// Get returns a Blueprint entity by its id.
func (c *BlueprintClient) Get(ctx context.Context, id string) (*Blueprint, error) {
	return c.Query().Where(blueprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintClient) GetX(ctx context.Context, id string) *Blueprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStages queries the stages edge of a Blueprint.
func (c *BlueprintClient) QueryStages(_m *Blueprint) *BlueprintStageQuery {
	query := (&BlueprintStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprint.Table, blueprint.FieldID, id),
			sqlgraph.To(blueprintstage.Table, blueprintstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blueprint.StagesTable, blueprint.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVersions queries the versions edge of a Blueprint.
func (c *BlueprintClient) QueryVersions(_m *Blueprint) *BlueprintVersionQuery {
	query := (&BlueprintVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprint.Table, blueprint.FieldID, id),
			sqlgraph.To(blueprintversion.Table, blueprintversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blueprint.VersionsTable, blueprint.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlueprintClient) Hooks() []Hook {
	return c.hooks.Blueprint
}

// Interceptors returns the client interceptors.
func (c *BlueprintClient) Interceptors() []Interceptor {
	return c.inters.Blueprint
}

func (c *BlueprintClient) mutate(ctx context.Context, m *BlueprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Blueprint mutation op: %q", m.Op())
	}
}

// BlueprintBehaviorClient is a client for the BlueprintBehavior schema.
type BlueprintBehaviorClient struct {
	config
}

// NewBlueprintBehaviorClient returns a client for the BlueprintBehavior from the given config.
func NewBlueprintBehaviorClient(c config) *BlueprintBehaviorClient {
	return &BlueprintBehaviorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprintbehavior.Hooks(f(g(h())))`.
func (c *BlueprintBehaviorClient) Use(hooks ...Hook) {
	c.hooks.BlueprintBehavior = append(c.hooks.BlueprintBehavior, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprintbehavior.Intercept(f(g(h())))`.
func (c *BlueprintBehaviorClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlueprintBehavior = append(c.inters.BlueprintBehavior, interceptors...)
}

// Create returns a builder for creating a BlueprintBehavior entity.
func (c *BlueprintBehaviorClient) Create() *BlueprintBehaviorCreate {
	mutation := newBlueprintBehaviorMutation(c.config, OpCreate)
	return &BlueprintBehaviorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlueprintBehavior entities.
func (c *BlueprintBehaviorClient) CreateBulk(builders ...*BlueprintBehaviorCreate) *BlueprintBehaviorCreateBulk {
	return &BlueprintBehaviorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintBehaviorClient) MapCreateBulk(slice any, setFunc func(*BlueprintBehaviorCreate, int)) *BlueprintBehaviorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintBehaviorCreateBulk{err: fmt.Errorf("calling to BlueprintBehaviorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintBehaviorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintBehaviorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlueprintBehavior.
func (c *BlueprintBehaviorClient) Update() *BlueprintBehaviorUpdate {
	mutation := newBlueprintBehaviorMutation(c.config, OpUpdate)
	return &BlueprintBehaviorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintBehaviorClient) UpdateOne(_m *BlueprintBehavior) *BlueprintBehaviorUpdateOne {
	mutation := newBlueprintBehaviorMutation(c.config, OpUpdateOne, withBlueprintBehavior(_m))
	return &BlueprintBehaviorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintBehaviorClient) UpdateOneID(id string) *BlueprintBehaviorUpdateOne {
	mutation := newBlueprintBehaviorMutation(c.config, OpUpdateOne, withBlueprintBehaviorID(id))
	return &BlueprintBehaviorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlueprintBehavior.
func (c *BlueprintBehaviorClient) Delete() *BlueprintBehaviorDelete {
	mutation := newBlueprintBehaviorMutation(c.config, OpDelete)
	return &BlueprintBehaviorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintBehaviorClient) DeleteOne(_m *BlueprintBehavior) *BlueprintBehaviorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintBehaviorClient) DeleteOneID(id string) *BlueprintBehaviorDeleteOne {
	builder := c.Delete().Where(blueprintbehavior.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintBehaviorDeleteOne{builder}
}

// Query returns a query builder for BlueprintBehavior.
func (c *BlueprintBehaviorClient) Query() *BlueprintBehaviorQuery {
	return &BlueprintBehaviorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprintBehavior},
		inters: c.Interceptors(),
	}
}

// Get returns a BlueprintBehavior entity by its id.
func (c *BlueprintBehaviorClient) Get(ctx context.Context, id string) (*BlueprintBehavior, error) {
	return c.Query().Where(blueprintbehavior.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintBehaviorClient) GetX(ctx context.Context, id string) *BlueprintBehavior {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStage queries the stage edge of a BlueprintBehavior.
func (c *BlueprintBehaviorClient) QueryStage(_m *BlueprintBehavior) *BlueprintStageQuery {
	query := (&BlueprintStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprintbehavior.Table, blueprintbehavior.FieldID, id),
			sqlgraph.To(blueprintstage.Table, blueprintstage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blueprintbehavior.StageTable, blueprintbehavior.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlueprintBehaviorClient) Hooks() []Hook {
	return c.hooks.BlueprintBehavior
}

// Interceptors returns the client interceptors.
func (c *BlueprintBehaviorClient) Interceptors() []Interceptor {
	return c.inters.BlueprintBehavior
}

func (c *BlueprintBehaviorClient) mutate(ctx context.Context, m *BlueprintBehaviorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintBehaviorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintBehaviorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintBehaviorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintBehaviorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlueprintBehavior mutation op: %q", m.Op())
	}
}

// BlueprintStageClient is a client for the BlueprintStage schema.
type BlueprintStageClient struct {
	config
}

// NewBlueprintStageClient returns a client for the BlueprintStage from the given config.
func NewBlueprintStageClient(c config) *BlueprintStageClient {
	return &BlueprintStageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprintstage.Hooks(f(g(h())))`.
func (c *BlueprintStageClient) Use(hooks ...Hook) {
	c.hooks.BlueprintStage = append(c.hooks.BlueprintStage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprintstage.Intercept(f(g(h())))`.
func (c *BlueprintStageClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlueprintStage = append(c.inters.BlueprintStage, interceptors...)
}

// Create returns a builder for creating a BlueprintStage entity.
func (c *BlueprintStageClient) Create() *BlueprintStageCreate {
	mutation := newBlueprintStageMutation(c.config, OpCreate)
	return &BlueprintStageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlueprintStage entities.
func (c *BlueprintStageClient) CreateBulk(builders ...*BlueprintStageCreate) *BlueprintStageCreateBulk {
	return &BlueprintStageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintStageClient) MapCreateBulk(slice any, setFunc func(*BlueprintStageCreate, int)) *BlueprintStageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintStageCreateBulk{err: fmt.Errorf("calling to BlueprintStageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintStageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintStageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlueprintStage.
func (c *BlueprintStageClient) Update() *BlueprintStageUpdate {
	mutation := newBlueprintStageMutation(c.config, OpUpdate)
	return &BlueprintStageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintStageClient) UpdateOne(_m *BlueprintStage) *BlueprintStageUpdateOne {
	mutation := newBlueprintStageMutation(c.config, OpUpdateOne, withBlueprintStage(_m))
	return &BlueprintStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintStageClient) UpdateOneID(id string) *BlueprintStageUpdateOne {
	mutation := newBlueprintStageMutation(c.config, OpUpdateOne, withBlueprintStageID(id))
	return &BlueprintStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlueprintStage.
func (c *BlueprintStageClient) Delete() *BlueprintStageDelete {
	mutation := newBlueprintStageMutation(c.config, OpDelete)
	return &BlueprintStageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintStageClient) DeleteOne(_m *BlueprintStage) *BlueprintStageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintStageClient) DeleteOneID(id string) *BlueprintStageDeleteOne {
	builder := c.Delete().Where(blueprintstage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintStageDeleteOne{builder}
}

// Query returns a query builder for BlueprintStage.
func (c *BlueprintStageClient) Query() *BlueprintStageQuery {
	return &BlueprintStageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprintStage},
		inters: c.Interceptors(),
	}
}

// Get returns a BlueprintStage entity by its id.
func (c *BlueprintStageClient) Get(ctx context.Context, id string) (*BlueprintStage, error) {
	return c.Query().Where(blueprintstage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintStageClient) GetX(ctx context.Context, id string) *BlueprintStage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlueprint queries the blueprint edge of a BlueprintStage.
func (c *BlueprintStageClient) QueryBlueprint(_m *BlueprintStage) *BlueprintQuery {
	query := (&BlueprintClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprintstage.Table, blueprintstage.FieldID, id),
			sqlgraph.To(blueprint.Table, blueprint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blueprintstage.BlueprintTable, blueprintstage.BlueprintColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBehaviors queries the behaviors edge of a BlueprintStage.
func (c *BlueprintStageClient) QueryBehaviors(_m *BlueprintStage) *BlueprintBehaviorQuery {
	query := (&BlueprintBehaviorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprintstage.Table, blueprintstage.FieldID, id),
			sqlgraph.To(blueprintbehavior.Table, blueprintbehavior.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blueprintstage.BehaviorsTable, blueprintstage.BehaviorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlueprintStageClient) Hooks() []Hook {
	return c.hooks.BlueprintStage
}

// Interceptors returns the client interceptors.
func (c *BlueprintStageClient) Interceptors() []Interceptor {
	return c.inters.BlueprintStage
}

func (c *BlueprintStageClient) mutate(ctx context.Context, m *BlueprintStageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintStageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintStageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintStageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlueprintStage mutation op: %q", m.Op())
	}
}

// BlueprintVersionClient is a client for the BlueprintVersion schema.
type BlueprintVersionClient struct {
	config
}

// NewBlueprintVersionClient returns a client for the BlueprintVersion from the given config.
func NewBlueprintVersionClient(c config) *BlueprintVersionClient {
	return &BlueprintVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blueprintversion.Hooks(f(g(h())))`.
func (c *BlueprintVersionClient) Use(hooks ...Hook) {
	c.hooks.BlueprintVersion = append(c.hooks.BlueprintVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blueprintversion.Intercept(f(g(h())))`.
func (c *BlueprintVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlueprintVersion = append(c.inters.BlueprintVersion, interceptors...)
}

// Create returns a builder for creating a BlueprintVersion entity.
func (c *BlueprintVersionClient) Create() *BlueprintVersionCreate {
	mutation := newBlueprintVersionMutation(c.config, OpCreate)
	return &BlueprintVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlueprintVersion entities.
func (c *BlueprintVersionClient) CreateBulk(builders ...*BlueprintVersionCreate) *BlueprintVersionCreateBulk {
	return &BlueprintVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlueprintVersionClient) MapCreateBulk(slice any, setFunc func(*BlueprintVersionCreate, int)) *BlueprintVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlueprintVersionCreateBulk{err: fmt.Errorf("calling to BlueprintVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlueprintVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlueprintVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlueprintVersion.
func (c *BlueprintVersionClient) Update() *BlueprintVersionUpdate {
	mutation := newBlueprintVersionMutation(c.config, OpUpdate)
	return &BlueprintVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlueprintVersionClient) UpdateOne(_m *BlueprintVersion) *BlueprintVersionUpdateOne {
	mutation := newBlueprintVersionMutation(c.config, OpUpdateOne, withBlueprintVersion(_m))
	return &BlueprintVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlueprintVersionClient) UpdateOneID(id string) *BlueprintVersionUpdateOne {
	mutation := newBlueprintVersionMutation(c.config, OpUpdateOne, withBlueprintVersionID(id))
	return &BlueprintVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlueprintVersion.
func (c *BlueprintVersionClient) Delete() *BlueprintVersionDelete {
	mutation := newBlueprintVersionMutation(c.config, OpDelete)
	return &BlueprintVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlueprintVersionClient) DeleteOne(_m *BlueprintVersion) *BlueprintVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlueprintVersionClient) DeleteOneID(id string) *BlueprintVersionDeleteOne {
	builder := c.Delete().Where(blueprintversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlueprintVersionDeleteOne{builder}
}

// Query returns a query builder for BlueprintVersion.
func (c *BlueprintVersionClient) Query() *BlueprintVersionQuery {
	return &BlueprintVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlueprintVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a BlueprintVersion entity by its id.
func (c *BlueprintVersionClient) Get(ctx context.Context, id string) (*BlueprintVersion, error) {
	return c.Query().Where(blueprintversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlueprintVersionClient) GetX(ctx context.Context, id string) *BlueprintVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlueprint queries the blueprint edge of a BlueprintVersion.
func (c *BlueprintVersionClient) QueryBlueprint(_m *BlueprintVersion) *BlueprintQuery {
	query := (&BlueprintClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprintversion.Table, blueprintversion.FieldID, id),
			sqlgraph.To(blueprint.Table, blueprint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blueprintversion.BlueprintTable, blueprintversion.BlueprintColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlueprintVersionClient) Hooks() []Hook {
	return c.hooks.BlueprintVersion
}

// Interceptors returns the client interceptors.
func (c *BlueprintVersionClient) Interceptors() []Interceptor {
	return c.inters.BlueprintVersion
}

func (c *BlueprintVersionClient) mutate(ctx context.Context, m *BlueprintVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlueprintVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlueprintVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlueprintVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlueprintVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BlueprintVersion mutation op: %q", m.Op())
	}
}

// CompiledComplianceRuleClient is a client for the CompiledComplianceRule schema.
type CompiledComplianceRuleClient struct {
	config
}

// NewCompiledComplianceRuleClient returns a client for the CompiledComplianceRule from the given config.
func NewCompiledComplianceRuleClient(c config) *CompiledComplianceRuleClient {
	return &CompiledComplianceRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compiledcompliancerule.Hooks(f(g(h())))`.
func (c *CompiledComplianceRuleClient) Use(hooks ...Hook) {
	c.hooks.CompiledComplianceRule = append(c.hooks.CompiledComplianceRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compiledcompliancerule.Intercept(f(g(h())))`.
func (c *CompiledComplianceRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompiledComplianceRule = append(c.inters.CompiledComplianceRule, interceptors...)
}

// Create returns a builder for creating a CompiledComplianceRule entity.
func (c *CompiledComplianceRuleClient) Create() *CompiledComplianceRuleCreate {
	mutation := newCompiledComplianceRuleMutation(c.config, OpCreate)
	return &CompiledComplianceRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompiledComplianceRule entities.
func (c *CompiledComplianceRuleClient) CreateBulk(builders ...*CompiledComplianceRuleCreate) *CompiledComplianceRuleCreateBulk {
	return &CompiledComplianceRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompiledComplianceRuleClient) MapCreateBulk(slice any, setFunc func(*CompiledComplianceRuleCreate, int)) *CompiledComplianceRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompiledComplianceRuleCreateBulk{err: fmt.Errorf("calling to CompiledComplianceRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompiledComplianceRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompiledComplianceRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompiledComplianceRule.
func (c *CompiledComplianceRuleClient) Update() *CompiledComplianceRuleUpdate {
	mutation := newCompiledComplianceRuleMutation(c.config, OpUpdate)
	return &CompiledComplianceRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompiledComplianceRuleClient) UpdateOne(_m *CompiledComplianceRule) *CompiledComplianceRuleUpdateOne {
	mutation := newCompiledComplianceRuleMutation(c.config, OpUpdateOne, withCompiledComplianceRule(_m))
	return &CompiledComplianceRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompiledComplianceRuleClient) UpdateOneID(id string) *CompiledComplianceRuleUpdateOne {
	mutation := newCompiledComplianceRuleMutation(c.config, OpUpdateOne, withCompiledComplianceRuleID(id))
	return &CompiledComplianceRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompiledComplianceRule.
func (c *CompiledComplianceRuleClient) Delete() *CompiledComplianceRuleDelete {
	mutation := newCompiledComplianceRuleMutation(c.config, OpDelete)
	return &CompiledComplianceRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompiledComplianceRuleClient) DeleteOne(_m *CompiledComplianceRule) *CompiledComplianceRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompiledComplianceRuleClient) DeleteOneID(id string) *CompiledComplianceRuleDeleteOne {
	builder := c.Delete().Where(compiledcompliancerule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompiledComplianceRuleDeleteOne{builder}
}

// Query returns a query builder for CompiledComplianceRule.
func (c *CompiledComplianceRuleClient) Query() *CompiledComplianceRuleQuery {
	return &CompiledComplianceRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompiledComplianceRule},
		inters: c.Interceptors(),
	}
}

// Get returns a CompiledComplianceRule entity by its id.
func (c *CompiledComplianceRuleClient) Get(ctx context.Context, id string) (*CompiledComplianceRule, error) {
	return c.Query().Where(compiledcompliancerule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompiledComplianceRuleClient) GetX(ctx context.Context, id string) *CompiledComplianceRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFlowVersion queries the flow_version edge of a CompiledComplianceRule.
func (c *CompiledComplianceRuleClient) QueryFlowVersion(_m *CompiledComplianceRule) *CompiledFlowVersionQuery {
	query := (&CompiledFlowVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledcompliancerule.Table, compiledcompliancerule.FieldID, id),
			sqlgraph.To(compiledflowversion.Table, compiledflowversion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, compiledcompliancerule.FlowVersionTable, compiledcompliancerule.FlowVersionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompiledComplianceRuleClient) Hooks() []Hook {
	return c.hooks.CompiledComplianceRule
}

// Interceptors returns the client interceptors.
func (c *CompiledComplianceRuleClient) Interceptors() []Interceptor {
	return c.inters.CompiledComplianceRule
}

func (c *CompiledComplianceRuleClient) mutate(ctx context.Context, m *CompiledComplianceRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompiledComplianceRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompiledComplianceRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompiledComplianceRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompiledComplianceRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompiledComplianceRule mutation op: %q", m.Op())
	}
}

// CompiledFlowStageClient is a client for the CompiledFlowStage schema.
type CompiledFlowStageClient struct {
	config
}

// NewCompiledFlowStageClient returns a client for the CompiledFlowStage from the given config.
func NewCompiledFlowStageClient(c config) *CompiledFlowStageClient {
	return &CompiledFlowStageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compiledflowstage.Hooks(f(g(h())))`.
func (c *CompiledFlowStageClient) Use(hooks ...Hook) {
	c.hooks.CompiledFlowStage = append(c.hooks.CompiledFlowStage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compiledflowstage.Intercept(f(g(h())))`.
func (c *CompiledFlowStageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompiledFlowStage = append(c.inters.CompiledFlowStage, interceptors...)
}

// Create returns a builder for creating a CompiledFlowStage entity.
func (c *CompiledFlowStageClient) Create() *CompiledFlowStageCreate {
	mutation := newCompiledFlowStageMutation(c.config, OpCreate)
	return &CompiledFlowStageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompiledFlowStage entities.
func (c *CompiledFlowStageClient) CreateBulk(builders ...*CompiledFlowStageCreate) *CompiledFlowStageCreateBulk {
	return &CompiledFlowStageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompiledFlowStageClient) MapCreateBulk(slice any, setFunc func(*CompiledFlowStageCreate, int)) *CompiledFlowStageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompiledFlowStageCreateBulk{err: fmt.Errorf("calling to CompiledFlowStageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompiledFlowStageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompiledFlowStageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompiledFlowStage.
func (c *CompiledFlowStageClient) Update() *CompiledFlowStageUpdate {
	mutation := newCompiledFlowStageMutation(c.config, OpUpdate)
	return &CompiledFlowStageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompiledFlowStageClient) UpdateOne(_m *CompiledFlowStage) *CompiledFlowStageUpdateOne {
	mutation := newCompiledFlowStageMutation(c.config, OpUpdateOne, withCompiledFlowStage(_m))
	return &CompiledFlowStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompiledFlowStageClient) UpdateOneID(id string) *CompiledFlowStageUpdateOne {
	mutation := newCompiledFlowStageMutation(c.config, OpUpdateOne, withCompiledFlowStageID(id))
	return &CompiledFlowStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompiledFlowStage.
func (c *CompiledFlowStageClient) Delete() *CompiledFlowStageDelete {
	mutation := newCompiledFlowStageMutation(c.config, OpDelete)
	return &CompiledFlowStageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompiledFlowStageClient) DeleteOne(_m *CompiledFlowStage) *CompiledFlowStageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompiledFlowStageClient) DeleteOneID(id string) *CompiledFlowStageDeleteOne {
	builder := c.Delete().Where(compiledflowstage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompiledFlowStageDeleteOne{builder}
}

// Query returns a query builder for CompiledFlowStage.
func (c *CompiledFlowStageClient) Query() *CompiledFlowStageQuery {
	return &CompiledFlowStageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompiledFlowStage},
		inters: c.Interceptors(),
	}
}

// Get returns a CompiledFlowStage entity by its id.
func (c *CompiledFlowStageClient) Get(ctx context.Context, id string) (*CompiledFlowStage, error) {
	return c.Query().Where(compiledflowstage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompiledFlowStageClient) GetX(ctx context.Context, id string) *CompiledFlowStage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFlowVersion queries the flow_version edge of a CompiledFlowStage.
func (c *CompiledFlowStageClient) QueryFlowVersion(_m *CompiledFlowStage) *CompiledFlowVersionQuery {
	query := (&CompiledFlowVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowstage.Table, compiledflowstage.FieldID, id),
			sqlgraph.To(compiledflowversion.Table, compiledflowversion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, compiledflowstage.FlowVersionTable, compiledflowstage.FlowVersionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a CompiledFlowStage.
func (c *CompiledFlowStageClient) QuerySteps(_m *CompiledFlowStage) *CompiledFlowStepQuery {
	query := (&CompiledFlowStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowstage.Table, compiledflowstage.FieldID, id),
			sqlgraph.To(compiledflowstep.Table, compiledflowstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, compiledflowstage.StepsTable, compiledflowstage.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompiledFlowStageClient) Hooks() []Hook {
	return c.hooks.CompiledFlowStage
}

// Interceptors returns the client interceptors.
func (c *CompiledFlowStageClient) Interceptors() []Interceptor {
	return c.inters.CompiledFlowStage
}

func (c *CompiledFlowStageClient) mutate(ctx context.Context, m *CompiledFlowStageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompiledFlowStageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompiledFlowStageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompiledFlowStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompiledFlowStageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompiledFlowStage mutation op: %q", m.Op())
	}
}

// CompiledFlowStepClient is a client for the CompiledFlowStep schema.
type CompiledFlowStepClient struct {
	config
}

// NewCompiledFlowStepClient returns a client for the CompiledFlowStep from the given config.
func NewCompiledFlowStepClient(c config) *CompiledFlowStepClient {
	return &CompiledFlowStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compiledflowstep.Hooks(f(g(h())))`.
func (c *CompiledFlowStepClient) Use(hooks ...Hook) {
	c.hooks.CompiledFlowStep = append(c.hooks.CompiledFlowStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compiledflowstep.Intercept(f(g(h())))`.
func (c *CompiledFlowStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompiledFlowStep = append(c.inters.CompiledFlowStep, interceptors...)
}

// Create returns a builder for creating a CompiledFlowStep entity.
func (c *CompiledFlowStepClient) Create() *CompiledFlowStepCreate {
	mutation := newCompiledFlowStepMutation(c.config, OpCreate)
	return &CompiledFlowStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompiledFlowStep entities.
func (c *CompiledFlowStepClient) CreateBulk(builders ...*CompiledFlowStepCreate) *CompiledFlowStepCreateBulk {
	return &CompiledFlowStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompiledFlowStepClient) MapCreateBulk(slice any, setFunc func(*CompiledFlowStepCreate, int)) *CompiledFlowStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompiledFlowStepCreateBulk{err: fmt.Errorf("calling to CompiledFlowStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompiledFlowStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompiledFlowStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompiledFlowStep.
func (c *CompiledFlowStepClient) Update() *CompiledFlowStepUpdate {
	mutation := newCompiledFlowStepMutation(c.config, OpUpdate)
	return &CompiledFlowStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompiledFlowStepClient) UpdateOne(_m *CompiledFlowStep) *CompiledFlowStepUpdateOne {
	mutation := newCompiledFlowStepMutation(c.config, OpUpdateOne, withCompiledFlowStep(_m))
	return &CompiledFlowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompiledFlowStepClient) UpdateOneID(id string) *CompiledFlowStepUpdateOne {
	mutation := newCompiledFlowStepMutation(c.config, OpUpdateOne, withCompiledFlowStepID(id))
	return &CompiledFlowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompiledFlowStep.
func (c *CompiledFlowStepClient) Delete() *CompiledFlowStepDelete {
	mutation := newCompiledFlowStepMutation(c.config, OpDelete)
	return &CompiledFlowStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompiledFlowStepClient) DeleteOne(_m *CompiledFlowStep) *CompiledFlowStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompiledFlowStepClient) DeleteOneID(id string) *CompiledFlowStepDeleteOne {
	builder := c.Delete().Where(compiledflowstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompiledFlowStepDeleteOne{builder}
}

// Query returns a query builder for CompiledFlowStep.
func (c *CompiledFlowStepClient) Query() *CompiledFlowStepQuery {
	return &CompiledFlowStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompiledFlowStep},
		inters: c.Interceptors(),
	}
}

// Get returns a CompiledFlowStep entity by its id.
func (c *CompiledFlowStepClient) Get(ctx context.Context, id string) (*CompiledFlowStep, error) {
	return c.Query().Where(compiledflowstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompiledFlowStepClient) GetX(ctx context.Context, id string) *CompiledFlowStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStage queries the stage edge of a CompiledFlowStep.
func (c *CompiledFlowStepClient) QueryStage(_m *CompiledFlowStep) *CompiledFlowStageQuery {
	query := (&CompiledFlowStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowstep.Table, compiledflowstep.FieldID, id),
			sqlgraph.To(compiledflowstage.Table, compiledflowstage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, compiledflowstep.StageTable, compiledflowstep.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompiledFlowStepClient) Hooks() []Hook {
	return c.hooks.CompiledFlowStep
}

// Interceptors returns the client interceptors.
func (c *CompiledFlowStepClient) Interceptors() []Interceptor {
	return c.inters.CompiledFlowStep
}

func (c *CompiledFlowStepClient) mutate(ctx context.Context, m *CompiledFlowStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompiledFlowStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompiledFlowStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompiledFlowStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompiledFlowStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompiledFlowStep mutation op: %q", m.Op())
	}
}

// CompiledFlowVersionClient is a client for the CompiledFlowVersion schema.
type CompiledFlowVersionClient struct {
	config
}

// NewCompiledFlowVersionClient returns a client for the CompiledFlowVersion from the given config.
func NewCompiledFlowVersionClient(c config) *CompiledFlowVersionClient {
	return &CompiledFlowVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compiledflowversion.Hooks(f(g(h())))`.
func (c *CompiledFlowVersionClient) Use(hooks ...Hook) {
	c.hooks.CompiledFlowVersion = append(c.hooks.CompiledFlowVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compiledflowversion.Intercept(f(g(h())))`.
func (c *CompiledFlowVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompiledFlowVersion = append(c.inters.CompiledFlowVersion, interceptors...)
}

// Create returns a builder for creating a CompiledFlowVersion entity.
func (c *CompiledFlowVersionClient) Create() *CompiledFlowVersionCreate {
	mutation := newCompiledFlowVersionMutation(c.config, OpCreate)
	return &CompiledFlowVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompiledFlowVersion entities.
func (c *CompiledFlowVersionClient) CreateBulk(builders ...*CompiledFlowVersionCreate) *CompiledFlowVersionCreateBulk {
	return &CompiledFlowVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompiledFlowVersionClient) MapCreateBulk(slice any, setFunc func(*CompiledFlowVersionCreate, int)) *CompiledFlowVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompiledFlowVersionCreateBulk{err: fmt.Errorf("calling to CompiledFlowVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompiledFlowVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompiledFlowVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompiledFlowVersion.
func (c *CompiledFlowVersionClient) Update() *CompiledFlowVersionUpdate {
	mutation := newCompiledFlowVersionMutation(c.config, OpUpdate)
	return &CompiledFlowVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompiledFlowVersionClient) UpdateOne(_m *CompiledFlowVersion) *CompiledFlowVersionUpdateOne {
	mutation := newCompiledFlowVersionMutation(c.config, OpUpdateOne, withCompiledFlowVersion(_m))
	return &CompiledFlowVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompiledFlowVersionClient) UpdateOneID(id string) *CompiledFlowVersionUpdateOne {
	mutation := newCompiledFlowVersionMutation(c.config, OpUpdateOne, withCompiledFlowVersionID(id))
	return &CompiledFlowVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompiledFlowVersion.
func (c *CompiledFlowVersionClient) Delete() *CompiledFlowVersionDelete {
	mutation := newCompiledFlowVersionMutation(c.config, OpDelete)
	return &CompiledFlowVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompiledFlowVersionClient) DeleteOne(_m *CompiledFlowVersion) *CompiledFlowVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompiledFlowVersionClient) DeleteOneID(id string) *CompiledFlowVersionDeleteOne {
	builder := c.Delete().Where(compiledflowversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompiledFlowVersionDeleteOne{builder}
}

// Query returns a query builder for CompiledFlowVersion.
func (c *CompiledFlowVersionClient) Query() *CompiledFlowVersionQuery {
	return &CompiledFlowVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompiledFlowVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a CompiledFlowVersion entity by its id.
func (c *CompiledFlowVersionClient) Get(ctx context.Context, id string) (*CompiledFlowVersion, error) {
	return c.Query().Where(compiledflowversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompiledFlowVersionClient) GetX(ctx context.Context, id string) *CompiledFlowVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStages queries the stages edge of a CompiledFlowVersion.
func (c *CompiledFlowVersionClient) QueryStages(_m *CompiledFlowVersion) *CompiledFlowStageQuery {
	query := (&CompiledFlowStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowversion.Table, compiledflowversion.FieldID, id),
			sqlgraph.To(compiledflowstage.Table, compiledflowstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, compiledflowversion.StagesTable, compiledflowversion.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRules queries the rules edge of a CompiledFlowVersion.
func (c *CompiledFlowVersionClient) QueryRules(_m *CompiledFlowVersion) *CompiledComplianceRuleQuery {
	query := (&CompiledComplianceRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowversion.Table, compiledflowversion.FieldID, id),
			sqlgraph.To(compiledcompliancerule.Table, compiledcompliancerule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, compiledflowversion.RulesTable, compiledflowversion.RulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRubric queries the rubric edge of a CompiledFlowVersion.
func (c *CompiledFlowVersionClient) QueryRubric(_m *CompiledFlowVersion) *CompiledRubricTemplateQuery {
	query := (&CompiledRubricTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowversion.Table, compiledflowversion.FieldID, id),
			sqlgraph.To(compiledrubrictemplate.Table, compiledrubrictemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, compiledflowversion.RubricTable, compiledflowversion.RubricColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompiledFlowVersionClient) Hooks() []Hook {
	return c.hooks.CompiledFlowVersion
}

// Interceptors returns the client interceptors.
func (c *CompiledFlowVersionClient) Interceptors() []Interceptor {
	return c.inters.CompiledFlowVersion
}

func (c *CompiledFlowVersionClient) mutate(ctx context.Context, m *CompiledFlowVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompiledFlowVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompiledFlowVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompiledFlowVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompiledFlowVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompiledFlowVersion mutation op: %q", m.Op())
	}
}

// CompiledRubricTemplateClient is a client for the CompiledRubricTemplate schema.
type CompiledRubricTemplateClient struct {
	config
}

// NewCompiledRubricTemplateClient returns a client for the CompiledRubricTemplate from the given config.
func NewCompiledRubricTemplateClient(c config) *CompiledRubricTemplateClient {
	return &CompiledRubricTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `compiledrubrictemplate.Hooks(f(g(h())))`.
func (c *CompiledRubricTemplateClient) Use(hooks ...Hook) {
	c.hooks.CompiledRubricTemplate = append(c.hooks.CompiledRubricTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `compiledrubrictemplate.Intercept(f(g(h())))`.
func (c *CompiledRubricTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompiledRubricTemplate = append(c.inters.CompiledRubricTemplate, interceptors...)
}

// Create returns a builder for creating a CompiledRubricTemplate entity.
func (c *CompiledRubricTemplateClient) Create() *CompiledRubricTemplateCreate {
	mutation := newCompiledRubricTemplateMutation(c.config, OpCreate)
	return &CompiledRubricTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompiledRubricTemplate entities.
func (c *CompiledRubricTemplateClient) CreateBulk(builders ...*CompiledRubricTemplateCreate) *CompiledRubricTemplateCreateBulk {
	return &CompiledRubricTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompiledRubricTemplateClient) MapCreateBulk(slice any, setFunc func(*CompiledRubricTemplateCreate, int)) *CompiledRubricTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompiledRubricTemplateCreateBulk{err: fmt.Errorf("calling to CompiledRubricTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompiledRubricTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompiledRubricTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompiledRubricTemplate.
func (c *CompiledRubricTemplateClient) Update() *CompiledRubricTemplateUpdate {
	mutation := newCompiledRubricTemplateMutation(c.config, OpUpdate)
	return &CompiledRubricTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompiledRubricTemplateClient) UpdateOne(_m *CompiledRubricTemplate) *CompiledRubricTemplateUpdateOne {
	mutation := newCompiledRubricTemplateMutation(c.config, OpUpdateOne, withCompiledRubricTemplate(_m))
	return &CompiledRubricTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompiledRubricTemplateClient) UpdateOneID(id string) *CompiledRubricTemplateUpdateOne {
	mutation := newCompiledRubricTemplateMutation(c.config, OpUpdateOne, withCompiledRubricTemplateID(id))
	return &CompiledRubricTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompiledRubricTemplate.
func (c *CompiledRubricTemplateClient) Delete() *CompiledRubricTemplateDelete {
	mutation := newCompiledRubricTemplateMutation(c.config, OpDelete)
	return &CompiledRubricTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompiledRubricTemplateClient) DeleteOne(_m *CompiledRubricTemplate) *CompiledRubricTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompiledRubricTemplateClient) DeleteOneID(id string) *CompiledRubricTemplateDeleteOne {
	builder := c.Delete().Where(compiledrubrictemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompiledRubricTemplateDeleteOne{builder}
}

// Query returns a query builder for CompiledRubricTemplate.
func (c *CompiledRubricTemplateClient) Query() *CompiledRubricTemplateQuery {
	return &CompiledRubricTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompiledRubricTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a CompiledRubricTemplate entity by its id.
func (c *CompiledRubricTemplateClient) Get(ctx context.Context, id string) (*CompiledRubricTemplate, error) {
	return c.Query().Where(compiledrubrictemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompiledRubricTemplateClient) GetX(ctx context.Context, id string) *CompiledRubricTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFlowVersion queries the flow_version edge of a CompiledRubricTemplate.
func (c *CompiledRubricTemplateClient) QueryFlowVersion(_m *CompiledRubricTemplate) *CompiledFlowVersionQuery {
	query := (&CompiledFlowVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledrubrictemplate.Table, compiledrubrictemplate.FieldID, id),
			sqlgraph.To(compiledflowversion.Table, compiledflowversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, compiledrubrictemplate.FlowVersionTable, compiledrubrictemplate.FlowVersionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompiledRubricTemplateClient) Hooks() []Hook {
	return c.hooks.CompiledRubricTemplate
}

// Interceptors returns the client interceptors.
func (c *CompiledRubricTemplateClient) Interceptors() []Interceptor {
	return c.inters.CompiledRubricTemplate
}

func (c *CompiledRubricTemplateClient) mutate(ctx context.Context, m *CompiledRubricTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompiledRubricTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompiledRubricTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompiledRubricTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompiledRubricTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompiledRubricTemplate mutation op: %q", m.Op())
	}
}

// EvaluationClient is a client for the Evaluation schema.
type EvaluationClient struct {
	config
}

// NewEvaluationClient returns a client for the Evaluation from the given config.
func NewEvaluationClient(c config) *EvaluationClient {
	return &EvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluation.Hooks(f(g(h())))`.
func (c *EvaluationClient) Use(hooks ...Hook) {
	c.hooks.Evaluation = append(c.hooks.Evaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluation.Intercept(f(g(h())))`.
func (c *EvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evaluation = append(c.inters.Evaluation, interceptors...)
}

// Create returns a builder for creating a Evaluation entity.
func (c *EvaluationClient) Create() *EvaluationCreate {
	mutation := newEvaluationMutation(c.config, OpCreate)
	return &EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evaluation entities.
func (c *EvaluationClient) CreateBulk(builders ...*EvaluationCreate) *EvaluationCreateBulk {
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationClient) MapCreateBulk(slice any, setFunc func(*EvaluationCreate, int)) *EvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationCreateBulk{err: fmt.Errorf("calling to EvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evaluation.
func (c *EvaluationClient) Update() *EvaluationUpdate {
	mutation := newEvaluationMutation(c.config, OpUpdate)
	return &EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationClient) UpdateOne(_m *Evaluation) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluation(_m))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationClient) UpdateOneID(id string) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluationID(id))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evaluation.
func (c *EvaluationClient) Delete() *EvaluationDelete {
	mutation := newEvaluationMutation(c.config, OpDelete)
	return &EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationClient) DeleteOne(_m *Evaluation) *EvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationClient) DeleteOneID(id string) *EvaluationDeleteOne {
	builder := c.Delete().Where(evaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationDeleteOne{builder}
}

// Query returns a query builder for Evaluation.
func (c *EvaluationClient) Query() *EvaluationQuery {
	return &EvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a Evaluation entity by its id.
func (c *EvaluationClient) Get(ctx context.Context, id string) (*Evaluation, error) {
	return c.Query().Where(evaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationClient) GetX(ctx context.Context, id string) *Evaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecording queries the recording edge of a Evaluation.
func (c *EvaluationClient) QueryRecording(_m *Evaluation) *RecordingQuery {
	query := (&RecordingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(recording.Table, recording.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluation.RecordingTable, evaluation.RecordingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationClient) Hooks() []Hook {
	return c.hooks.Evaluation
}

// Interceptors returns the client interceptors.
func (c *EvaluationClient) Interceptors() []Interceptor {
	return c.inters.Evaluation
}

func (c *EvaluationClient) mutate(ctx context.Context, m *EvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evaluation mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// RecordingClient is a client for the Recording schema.
type RecordingClient struct {
	config
}

// NewRecordingClient returns a client for the Recording from the given config.
func NewRecordingClient(c config) *RecordingClient {
	return &RecordingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recording.Hooks(f(g(h())))`.
func (c *RecordingClient) Use(hooks ...Hook) {
	c.hooks.Recording = append(c.hooks.Recording, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recording.Intercept(f(g(h())))`.
func (c *RecordingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Recording = append(c.inters.Recording, interceptors...)
}

// Create returns a builder for creating a Recording entity.
func (c *RecordingClient) Create() *RecordingCreate {
	mutation := newRecordingMutation(c.config, OpCreate)
	return &RecordingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Recording entities.
func (c *RecordingClient) CreateBulk(builders ...*RecordingCreate) *RecordingCreateBulk {
	return &RecordingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecordingClient) MapCreateBulk(slice any, setFunc func(*RecordingCreate, int)) *RecordingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecordingCreateBulk{err: fmt.Errorf("calling to RecordingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecordingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecordingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Recording.
func (c *RecordingClient) Update() *RecordingUpdate {
	mutation := newRecordingMutation(c.config, OpUpdate)
	return &RecordingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecordingClient) UpdateOne(_m *Recording) *RecordingUpdateOne {
	mutation := newRecordingMutation(c.config, OpUpdateOne, withRecording(_m))
	return &RecordingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecordingClient) UpdateOneID(id string) *RecordingUpdateOne {
	mutation := newRecordingMutation(c.config, OpUpdateOne, withRecordingID(id))
	return &RecordingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Recording.
func (c *RecordingClient) Delete() *RecordingDelete {
	mutation := newRecordingMutation(c.config, OpDelete)
	return &RecordingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecordingClient) DeleteOne(_m *Recording) *RecordingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecordingClient) DeleteOneID(id string) *RecordingDeleteOne {
	builder := c.Delete().Where(recording.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecordingDeleteOne{builder}
}

// Query returns a query builder for Recording.
func (c *RecordingClient) Query() *RecordingQuery {
	return &RecordingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecording},
		inters: c.Interceptors(),
	}
}

// Get returns a Recording entity by its id.
func (c *RecordingClient) Get(ctx context.Context, id string) (*Recording, error) {
	return c.Query().Where(recording.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecordingClient) GetX(ctx context.Context, id string) *Recording {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTranscript queries the transcript edge of a Recording.
func (c *RecordingClient) QueryTranscript(_m *Recording) *TranscriptQuery {
	query := (&TranscriptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recording.Table, recording.FieldID, id),
			sqlgraph.To(transcript.Table, transcript.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, recording.TranscriptTable, recording.TranscriptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Recording.
func (c *RecordingClient) QueryEvaluations(_m *Recording) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recording.Table, recording.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recording.EvaluationsTable, recording.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecordingClient) Hooks() []Hook {
	return c.hooks.Recording
}

// Interceptors returns the client interceptors.
func (c *RecordingClient) Interceptors() []Interceptor {
	return c.inters.Recording
}

func (c *RecordingClient) mutate(ctx context.Context, m *RecordingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecordingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecordingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecordingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecordingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Recording mutation op: %q", m.Op())
	}
}

// SandboxRunClient is a client for the SandboxRun schema.
type SandboxRunClient struct {
	config
}

// NewSandboxRunClient returns a client for the SandboxRun from the given config.
func NewSandboxRunClient(c config) *SandboxRunClient {
	return &SandboxRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sandboxrun.Hooks(f(g(h())))`.
func (c *SandboxRunClient) Use(hooks ...Hook) {
	c.hooks.SandboxRun = append(c.hooks.SandboxRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sandboxrun.Intercept(f(g(h())))`.
func (c *SandboxRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.SandboxRun = append(c.inters.SandboxRun, interceptors...)
}

// Create returns a builder for creating a SandboxRun entity.
func (c *SandboxRunClient) Create() *SandboxRunCreate {
	mutation := newSandboxRunMutation(c.config, OpCreate)
	return &SandboxRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SandboxRun entities.
func (c *SandboxRunClient) CreateBulk(builders ...*SandboxRunCreate) *SandboxRunCreateBulk {
	return &SandboxRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SandboxRunClient) MapCreateBulk(slice any, setFunc func(*SandboxRunCreate, int)) *SandboxRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SandboxRunCreateBulk{err: fmt.Errorf("calling to SandboxRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SandboxRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SandboxRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SandboxRun.
func (c *SandboxRunClient) Update() *SandboxRunUpdate {
	mutation := newSandboxRunMutation(c.config, OpUpdate)
	return &SandboxRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SandboxRunClient) UpdateOne(_m *SandboxRun) *SandboxRunUpdateOne {
	mutation := newSandboxRunMutation(c.config, OpUpdateOne, withSandboxRun(_m))
	return &SandboxRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SandboxRunClient) UpdateOneID(id string) *SandboxRunUpdateOne {
	mutation := newSandboxRunMutation(c.config, OpUpdateOne, withSandboxRunID(id))
	return &SandboxRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SandboxRun.
func (c *SandboxRunClient) Delete() *SandboxRunDelete {
	mutation := newSandboxRunMutation(c.config, OpDelete)
	return &SandboxRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SandboxRunClient) DeleteOne(_m *SandboxRun) *SandboxRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SandboxRunClient) DeleteOneID(id string) *SandboxRunDeleteOne {
	builder := c.Delete().Where(sandboxrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SandboxRunDeleteOne{builder}
}

// Query returns a query builder for SandboxRun.
func (c *SandboxRunClient) Query() *SandboxRunQuery {
	return &SandboxRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSandboxRun},
		inters: c.Interceptors(),
	}
}

// Get returns a SandboxRun entity by its id.
func (c *SandboxRunClient) Get(ctx context.Context, id string) (*SandboxRun, error) {
	return c.Query().Where(sandboxrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SandboxRunClient) GetX(ctx context.Context, id string) *SandboxRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SandboxRunClient) Hooks() []Hook {
	return c.hooks.SandboxRun
}

// Interceptors returns the client interceptors.
func (c *SandboxRunClient) Interceptors() []Interceptor {
	return c.inters.SandboxRun
}

func (c *SandboxRunClient) mutate(ctx context.Context, m *SandboxRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SandboxRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SandboxRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SandboxRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SandboxRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SandboxRun mutation op: %q", m.Op())
	}
}

// TranscriptClient is a client for the Transcript schema.
type TranscriptClient struct {
	config
}

// NewTranscriptClient returns a client for the Transcript from the given config.
func NewTranscriptClient(c config) *TranscriptClient {
	return &TranscriptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcript.Hooks(f(g(h())))`.
func (c *TranscriptClient) Use(hooks ...Hook) {
	c.hooks.Transcript = append(c.hooks.Transcript, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcript.Intercept(f(g(h())))`.
func (c *TranscriptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transcript = append(c.inters.Transcript, interceptors...)
}

// Create returns a builder for creating a Transcript entity.
func (c *TranscriptClient) Create() *TranscriptCreate {
	mutation := newTranscriptMutation(c.config, OpCreate)
	return &TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transcript entities.
func (c *TranscriptClient) CreateBulk(builders ...*TranscriptCreate) *TranscriptCreateBulk {
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptClient) MapCreateBulk(slice any, setFunc func(*TranscriptCreate, int)) *TranscriptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptCreateBulk{err: fmt.Errorf("calling to TranscriptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transcript.
func (c *TranscriptClient) Update() *TranscriptUpdate {
	mutation := newTranscriptMutation(c.config, OpUpdate)
	return &TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptClient) UpdateOne(_m *Transcript) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscript(_m))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptClient) UpdateOneID(id string) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscriptID(id))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transcript.
func (c *TranscriptClient) Delete() *TranscriptDelete {
	mutation := newTranscriptMutation(c.config, OpDelete)
	return &TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptClient) DeleteOne(_m *Transcript) *TranscriptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptClient) DeleteOneID(id string) *TranscriptDeleteOne {
	builder := c.Delete().Where(transcript.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptDeleteOne{builder}
}

// Query returns a query builder for Transcript.
func (c *TranscriptClient) Query() *TranscriptQuery {
	return &TranscriptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscript},
		inters: c.Interceptors(),
	}
}

// Get returns a Transcript entity by its id.
func (c *TranscriptClient) Get(ctx context.Context, id string) (*Transcript, error) {
	return c.Query().Where(transcript.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptClient) GetX(ctx context.Context, id string) *Transcript {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecording queries the recording edge of a Transcript.
func (c *TranscriptClient) QueryRecording(_m *Transcript) *RecordingQuery {
	query := (&RecordingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcript.Table, transcript.FieldID, id),
			sqlgraph.To(recording.Table, recording.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, transcript.RecordingTable, transcript.RecordingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptClient) Hooks() []Hook {
	return c.hooks.Transcript
}

// Interceptors returns the client interceptors.
func (c *TranscriptClient) Interceptors() []Interceptor {
	return c.inters.Transcript
}

func (c *TranscriptClient) mutate(ctx context.Context, m *TranscriptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transcript mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Blueprint, BlueprintBehavior, BlueprintStage, BlueprintVersion,
		CompiledComplianceRule, CompiledFlowStage, CompiledFlowStep,
		CompiledFlowVersion, CompiledRubricTemplate, Evaluation, Job, Recording,
		SandboxRun, Transcript []ent.Hook
	}
	inters struct {
		Blueprint, BlueprintBehavior, BlueprintStage, BlueprintVersion,
		CompiledComplianceRule, CompiledFlowStage, CompiledFlowStep,
		CompiledFlowVersion, CompiledRubricTemplate, Evaluation, Job, Recording,
		SandboxRun, Transcript []ent.Interceptor
	}
)
