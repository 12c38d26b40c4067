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
	"github.com/callscope-ai/callscope/ent/blueprint"
	"github.com/callscope-ai/callscope/ent/blueprintbehavior"
	"github.com/callscope-ai/callscope/ent/blueprintstage"
	"github.com/callscope-ai/callscope/ent/predicate"
)

// BlueprintStageQuery is the builder for querying BlueprintStage entities.
type BlueprintStageQuery struct {
	config
	ctx           *QueryContext
	order         []blueprintstage.OrderOption
	inters        []Interceptor
	predicates    []predicate.BlueprintStage
	withBlueprint *BlueprintQuery
	withBehaviors *BlueprintBehaviorQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BlueprintStageQuery builder.
func (_q *BlueprintStageQuery) Where(ps ...predicate.BlueprintStage) *BlueprintStageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BlueprintStageQuery) Limit(limit int) *BlueprintStageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BlueprintStageQuery) Offset(offset int) *BlueprintStageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BlueprintStageQuery) Unique(unique bool) *BlueprintStageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BlueprintStageQuery) Order(o ...blueprintstage.OrderOption) *BlueprintStageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBlueprint chains the current query on the "blueprint" edge.
func (_q *BlueprintStageQuery) QueryBlueprint() *BlueprintQuery {
	query := (&BlueprintClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprintstage.Table, blueprintstage.FieldID, selector),
			sqlgraph.To(blueprint.Table, blueprint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blueprintstage.BlueprintTable, blueprintstage.BlueprintColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBehaviors chains the current query on the "behaviors" edge.
func (_q *BlueprintStageQuery) QueryBehaviors() *BlueprintBehaviorQuery {
	query := (&BlueprintBehaviorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(blueprintstage.Table, blueprintstage.FieldID, selector),
			sqlgraph.To(blueprintbehavior.Table, blueprintbehavior.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blueprintstage.BehaviorsTable, blueprintstage.BehaviorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BlueprintStage entity from the query.
// Returns a *NotFoundError when no BlueprintStage was found.
func (_q *BlueprintStageQuery) First(ctx context.Context) (*BlueprintStage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{blueprintstage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BlueprintStageQuery) FirstX(ctx context.Context) *BlueprintStage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BlueprintStage ID from the query.
// Returns a *NotFoundError when no BlueprintStage ID was found.
func (_q *BlueprintStageQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{blueprintstage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BlueprintStageQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BlueprintStage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BlueprintStage entity is found.
// Returns a *NotFoundError when no BlueprintStage entities are found.
func (_q *BlueprintStageQuery) Only(ctx context.Context) (*BlueprintStage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{blueprintstage.Label}
	default:
		return nil, &NotSingularError{blueprintstage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BlueprintStageQuery) OnlyX(ctx context.Context) *BlueprintStage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BlueprintStage ID in the query.
// Returns a *NotSingularError when more than one BlueprintStage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BlueprintStageQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{blueprintstage.Label}
	default:
		err = &NotSingularError{blueprintstage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BlueprintStageQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BlueprintStages.
func (_q *BlueprintStageQuery) All(ctx context.Context) ([]*BlueprintStage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BlueprintStage, *BlueprintStageQuery]()
	return withInterceptors[[]*BlueprintStage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BlueprintStageQuery) AllX(ctx context.Context) []*BlueprintStage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BlueprintStage IDs.
func (_q *BlueprintStageQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(blueprintstage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BlueprintStageQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BlueprintStageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BlueprintStageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BlueprintStageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BlueprintStageQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BlueprintStageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BlueprintStageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BlueprintStageQuery) Clone() *BlueprintStageQuery {
	if _q == nil {
		return nil
	}
	return &BlueprintStageQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]blueprintstage.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.BlueprintStage{}, _q.predicates...),
		withBlueprint: _q.withBlueprint.Clone(),
		withBehaviors: _q.withBehaviors.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBlueprint tells the query-builder to eager-load the nodes that are connected to
// the "blueprint" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlueprintStageQuery) WithBlueprint(opts ...func(*BlueprintQuery)) *BlueprintStageQuery {
	query := (&BlueprintClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBlueprint = query
	return _q
}

// WithBehaviors tells the query-builder to eager-load the nodes that are connected to
// the "behaviors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BlueprintStageQuery) WithBehaviors(opts ...func(*BlueprintBehaviorQuery)) *BlueprintStageQuery {
	query := (&BlueprintBehaviorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBehaviors = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BlueprintID string `json:"blueprint_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BlueprintStage.Query().
//		GroupBy(blueprintstage.FieldBlueprintID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BlueprintStageQuery) GroupBy(field string, fields ...string) *BlueprintStageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BlueprintStageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = blueprintstage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BlueprintID string `json:"blueprint_id,omitempty"`
//	}
//
//	client.BlueprintStage.Query().
//		Select(blueprintstage.FieldBlueprintID).
//		Scan(ctx, &v)
func (_q *BlueprintStageQuery) Select(fields ...string) *BlueprintStageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BlueprintStageSelect{BlueprintStageQuery: _q}
	sbuild.label = blueprintstage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BlueprintStageSelect configured with the given aggregations.
func (_q *BlueprintStageQuery) Aggregate(fns ...AggregateFunc) *BlueprintStageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BlueprintStageQuery) prepareQuery(ctx context.Context) error {
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
		if !blueprintstage.ValidColumn(f) {
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

func (_q *BlueprintStageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BlueprintStage, error) {
	var (
		nodes       = []*BlueprintStage{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withBlueprint != nil,
			_q.withBehaviors != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BlueprintStage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BlueprintStage{config: _q.config}
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
	if query := _q.withBlueprint; query != nil {
		if err := _q.loadBlueprint(ctx, query, nodes, nil,
			func(n *BlueprintStage, e *Blueprint) { n.Edges.Blueprint = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBehaviors; query != nil {
		if err := _q.loadBehaviors(ctx, query, nodes,
			func(n *BlueprintStage) { n.Edges.Behaviors = []*BlueprintBehavior{} },
			func(n *BlueprintStage, e *BlueprintBehavior) { n.Edges.Behaviors = append(n.Edges.Behaviors, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BlueprintStageQuery) loadBlueprint(ctx context.Context, query *BlueprintQuery, nodes []*BlueprintStage, init func(*BlueprintStage), assign func(*BlueprintStage, *Blueprint)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*BlueprintStage)
	for i := range nodes {
		fk := nodes[i].BlueprintID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(blueprint.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "blueprint_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BlueprintStageQuery) loadBehaviors(ctx context.Context, query *BlueprintBehaviorQuery, nodes []*BlueprintStage, init func(*BlueprintStage), assign func(*BlueprintStage, *BlueprintBehavior)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*BlueprintStage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(blueprintbehavior.FieldStageID)
	}
	query.Where(predicate.BlueprintBehavior(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(blueprintstage.BehaviorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stage_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BlueprintStageQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *BlueprintStageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(blueprintstage.Table, blueprintstage.Columns, sqlgraph.NewFieldSpec(blueprintstage.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintstage.FieldID)
		for i := range fields {
			if fields[i] != blueprintstage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBlueprint != nil {
			_spec.Node.AddColumnOnce(blueprintstage.FieldBlueprintID)
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

func (_q *BlueprintStageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(blueprintstage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = blueprintstage.Columns
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
func (_q *BlueprintStageQuery) ForUpdate(opts ...sql.LockOption) *BlueprintStageQuery {
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
func (_q *BlueprintStageQuery) ForShare(opts ...sql.LockOption) *BlueprintStageQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// BlueprintStageGroupBy is the group-by builder for BlueprintStage entities.
type BlueprintStageGroupBy struct {
	selector
	build *BlueprintStageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BlueprintStageGroupBy) Aggregate(fns ...AggregateFunc) *BlueprintStageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BlueprintStageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintStageQuery, *BlueprintStageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BlueprintStageGroupBy) sqlScan(ctx context.Context, root *BlueprintStageQuery, v any) error {
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

// BlueprintStageSelect is the builder for selecting fields of BlueprintStage entities.
type BlueprintStageSelect struct {
	*BlueprintStageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BlueprintStageSelect) Aggregate(fns ...AggregateFunc) *BlueprintStageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BlueprintStageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintStageQuery, *BlueprintStageSelect](ctx, _s.BlueprintStageQuery, _s, _s.inters, v)
}

func (_s *BlueprintStageSelect) sqlScan(ctx context.Context, root *BlueprintStageQuery, v any) error {
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
