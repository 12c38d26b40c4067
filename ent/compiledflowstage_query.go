// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/callscope-ai/callscope/ent/compiledflowstage"
	"github.com/callscope-ai/callscope/ent/compiledflowstep"
	"github.com/callscope-ai/callscope/ent/compiledflowversion"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// CompiledFlowStageQuery is the builder for querying CompiledFlowStage entities.
type CompiledFlowStageQuery struct {
	config
	ctx             *QueryContext
	order           []compiledflowstage.OrderOption
	inters          []Interceptor
	predicates      []predicate.CompiledFlowStage
	withFlowVersion *CompiledFlowVersionQuery
	withSteps       *CompiledFlowStepQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CompiledFlowStageQuery builder.
func (_q *CompiledFlowStageQuery) Where(ps ...predicate.CompiledFlowStage) *CompiledFlowStageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CompiledFlowStageQuery) Limit(limit int) *CompiledFlowStageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CompiledFlowStageQuery) Offset(offset int) *CompiledFlowStageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CompiledFlowStageQuery) Unique(unique bool) *CompiledFlowStageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CompiledFlowStageQuery) Order(o ...compiledflowstage.OrderOption) *CompiledFlowStageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFlowVersion chains the current query on the "flow_version" edge.
func (_q *CompiledFlowStageQuery) QueryFlowVersion() *CompiledFlowVersionQuery {
	query := (&CompiledFlowVersionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowstage.Table, compiledflowstage.FieldID, selector),
			sqlgraph.To(compiledflowversion.Table, compiledflowversion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, compiledflowstage.FlowVersionTable, compiledflowstage.FlowVersionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *CompiledFlowStageQuery) QuerySteps() *CompiledFlowStepQuery {
	query := (&CompiledFlowStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(compiledflowstage.Table, compiledflowstage.FieldID, selector),
			sqlgraph.To(compiledflowstep.Table, compiledflowstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, compiledflowstage.StepsTable, compiledflowstage.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CompiledFlowStage entity from the query.
// Returns a *NotFoundError when no CompiledFlowStage was found.
func (_q *CompiledFlowStageQuery) First(ctx context.Context) (*CompiledFlowStage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{compiledflowstage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) FirstX(ctx context.Context) *CompiledFlowStage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CompiledFlowStage ID from the query.
// Returns a *NotFoundError when no CompiledFlowStage ID was found.
func (_q *CompiledFlowStageQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{compiledflowstage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CompiledFlowStage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CompiledFlowStage entity is found.
// Returns a *NotFoundError when no CompiledFlowStage entities are found.
func (_q *CompiledFlowStageQuery) Only(ctx context.Context) (*CompiledFlowStage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{compiledflowstage.Label}
	default:
		return nil, &NotSingularError{compiledflowstage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) OnlyX(ctx context.Context) *CompiledFlowStage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CompiledFlowStage ID in the query.
// Returns a *NotSingularError when more than one CompiledFlowStage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CompiledFlowStageQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{compiledflowstage.Label}
	default:
		err = &NotSingularError{compiledflowstage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CompiledFlowStages.
func (_q *CompiledFlowStageQuery) All(ctx context.Context) ([]*CompiledFlowStage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CompiledFlowStage, *CompiledFlowStageQuery]()
	return withInterceptors[[]*CompiledFlowStage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) AllX(ctx context.Context) []*CompiledFlowStage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CompiledFlowStage IDs.
func (_q *CompiledFlowStageQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(compiledflowstage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CompiledFlowStageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CompiledFlowStageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CompiledFlowStageQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CompiledFlowStageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CompiledFlowStageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CompiledFlowStageQuery) Clone() *CompiledFlowStageQuery {
	if _q == nil {
		return nil
	}
	return &CompiledFlowStageQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]compiledflowstage.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.CompiledFlowStage{}, _q.predicates...),
		withFlowVersion: _q.withFlowVersion.Clone(),
		withSteps:       _q.withSteps.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFlowVersion tells the query-builder to eager-load the nodes that are connected to
// the "flow_version" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CompiledFlowStageQuery) WithFlowVersion(opts ...func(*CompiledFlowVersionQuery)) *CompiledFlowStageQuery {
	query := (&CompiledFlowVersionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFlowVersion = query
	return _q
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CompiledFlowStageQuery) WithSteps(opts ...func(*CompiledFlowStepQuery)) *CompiledFlowStageQuery {
	query := (&CompiledFlowStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FlowVersionID string `json:"flow_version_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CompiledFlowStage.Query().
//		GroupBy(compiledflowstage.FieldFlowVersionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CompiledFlowStageQuery) GroupBy(field string, fields ...string) *CompiledFlowStageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CompiledFlowStageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = compiledflowstage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FlowVersionID string `json:"flow_version_id,omitempty"`
//	}
//
//	client.CompiledFlowStage.Query().
//		Select(compiledflowstage.FieldFlowVersionID).
//		Scan(ctx, &v)
func (_q *CompiledFlowStageQuery) Select(fields ...string) *CompiledFlowStageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CompiledFlowStageSelect{CompiledFlowStageQuery: _q}
	sbuild.label = compiledflowstage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CompiledFlowStageSelect configured with the given aggregations.
func (_q *CompiledFlowStageQuery) Aggregate(fns ...AggregateFunc) *CompiledFlowStageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CompiledFlowStageQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !compiledflowstage.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CompiledFlowStageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CompiledFlowStage, error) {
	var (
		nodes       = []*CompiledFlowStage{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withFlowVersion != nil,
			_q.withSteps != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CompiledFlowStage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CompiledFlowStage{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFlowVersion; query != nil {
		if err := _q.loadFlowVersion(ctx, query, nodes, nil,
			func(n *CompiledFlowStage, e *CompiledFlowVersion) { n.Edges.FlowVersion = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *CompiledFlowStage) { n.Edges.Steps = []*CompiledFlowStep{} },
			func(n *CompiledFlowStage, e *CompiledFlowStep) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CompiledFlowStageQuery) loadFlowVersion(ctx context.Context, query *CompiledFlowVersionQuery, nodes []*CompiledFlowStage, init func(*CompiledFlowStage), assign func(*CompiledFlowStage, *CompiledFlowVersion)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CompiledFlowStage)
	for i := range nodes {
		fk := nodes[i].FlowVersionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(compiledflowversion.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "flow_version_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CompiledFlowStageQuery) loadSteps(ctx context.Context, query *CompiledFlowStepQuery, nodes []*CompiledFlowStage, init func(*CompiledFlowStage), assign func(*CompiledFlowStage, *CompiledFlowStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CompiledFlowStage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(compiledflowstep.FieldCompiledStageID)
	}
	query.Where(predicate.CompiledFlowStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(compiledflowstage.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CompiledStageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "compiled_stage_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CompiledFlowStageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CompiledFlowStageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(compiledflowstage.Table, compiledflowstage.Columns, sqlgraph.NewFieldSpec(compiledflowstage.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compiledflowstage.FieldID)
		for i := range fields {
			if fields[i] != compiledflowstage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFlowVersion != nil {
			_spec.Node.AddColumnOnce(compiledflowstage.FieldFlowVersionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CompiledFlowStageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(compiledflowstage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = compiledflowstage.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *CompiledFlowStageQuery) ForUpdate(opts ...sql.LockOption) *CompiledFlowStageQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *CompiledFlowStageQuery) ForShare(opts ...sql.LockOption) *CompiledFlowStageQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CompiledFlowStageGroupBy is the group-by builder for CompiledFlowStage entities.
type CompiledFlowStageGroupBy struct {
	selector
	build *CompiledFlowStageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CompiledFlowStageGroupBy) Aggregate(fns ...AggregateFunc) *CompiledFlowStageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CompiledFlowStageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CompiledFlowStageQuery, *CompiledFlowStageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CompiledFlowStageGroupBy) sqlScan(ctx context.Context, root *CompiledFlowStageQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CompiledFlowStageSelect is the builder for selecting fields of CompiledFlowStage entities.
type CompiledFlowStageSelect struct {
	*CompiledFlowStageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CompiledFlowStageSelect) Aggregate(fns ...AggregateFunc) *CompiledFlowStageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CompiledFlowStageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CompiledFlowStageQuery, *CompiledFlowStageSelect](ctx, _s.CompiledFlowStageQuery, _s, _s.inters, v)
}

func (_s *CompiledFlowStageSelect) sqlScan(ctx context.Context, root *CompiledFlowStageQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
