package query

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// CommonTableExpression is one name [(cols)] AS [NOT] [MATERIALIZED] (query).
type CommonTableExpression struct {
	Name         iden.Dyn
	Columns      []iden.Dyn
	Query        Statement
	Materialized *bool
}

// CTE starts a common table expression over q.
func CTE(name iden.Iden, q Statement) *CommonTableExpression {
	return &CommonTableExpression{Name: iden.Of(name), Query: q.cloneStatement()}
}

// Column appends a column name.
func (c *CommonTableExpression) Column(col iden.Iden) *CommonTableExpression {
	c.Columns = append(c.Columns, iden.Of(col))
	return c
}

// Cols appends column names.
func (c *CommonTableExpression) Cols(cols ...iden.Iden) *CommonTableExpression {
	c.Columns = append(c.Columns, iden.All(cols...)...)
	return c
}

// Materialize sets MATERIALIZED (true) or NOT MATERIALIZED (false).
func (c *CommonTableExpression) Materialize(m bool) *CommonTableExpression {
	c.Materialized = &m
	return c
}

// SearchOrder is DEPTH or BREADTH.
type SearchOrder string

// Search orders.
const (
	SearchDepth   SearchOrder = "DEPTH"
	SearchBreadth SearchOrder = "BREADTH"
)

// Search is SEARCH DEPTH|BREADTH FIRST BY expr SET column.
type Search struct {
	Order SearchOrder
	By    Expr
	Set   iden.Dyn
}

// Cycle is CYCLE expr SET column USING column.
type Cycle struct {
	Expr  Expr
	Set   iden.Dyn
	Using iden.Dyn
}

// WithClause is the WITH prefix.
type WithClause struct {
	IsRecursive  bool
	CTEs         []*CommonTableExpression
	SearchClause *Search
	CycleClause  *Cycle
}

// With starts an empty WITH clause.
func With() *WithClause { return &WithClause{} }

// Recursive sets WITH RECURSIVE.
func (w *WithClause) Recursive(r bool) *WithClause {
	w.IsRecursive = r
	return w
}

// CTE appends a common table expression.
func (w *WithClause) CTE(c *CommonTableExpression) *WithClause {
	w.CTEs = append(w.CTEs, c)
	return w
}

// Search sets the SEARCH clause.
func (w *WithClause) Search(order SearchOrder, by any, set iden.Iden) *WithClause {
	w.SearchClause = &Search{Order: order, By: IntoExpr(by), Set: iden.Of(set)}
	return w
}

// Cycle sets the CYCLE clause.
func (w *WithClause) Cycle(x any, set, using iden.Iden) *WithClause {
	w.CycleClause = &Cycle{Expr: IntoExpr(x), Set: iden.Of(set), Using: iden.Of(using)}
	return w
}

// Query attaches the statement the clause prefixes.
func (w *WithClause) Query(q Statement) *WithQuery {
	return &WithQuery{Clause: w, Query: q}
}

// Clone returns an independent copy.
func (w *WithClause) Clone() *WithClause {
	out := *w
	out.CTEs = make([]*CommonTableExpression, len(w.CTEs))
	for i, c := range w.CTEs {
		cc := *c
		cc.Columns = append([]iden.Dyn(nil), c.Columns...)
		cc.Query = c.Query.cloneStatement()
		out.CTEs[i] = &cc
	}
	return &out
}

// WithQuery is a WITH clause followed by a statement.
type WithQuery struct {
	Clause *WithClause
	Query  Statement
}

func (*WithQuery) queryStatement() {}

func (q *WithQuery) cloneStatement() Statement {
	out := &WithQuery{Clause: q.Clause.Clone()}
	if q.Query != nil {
		out.Query = q.Query.cloneStatement()
	}
	return out
}

// Build renders with placeholders.
func (q *WithQuery) Build(qb QueryBuilder) (string, value.Values, error) { return Build(q, qb) }

// ToString renders with inline values.
func (q *WithQuery) ToString(qb QueryBuilder) (string, error) { return ToString(q, qb) }

// MustBuild renders with placeholders and panics on error.
func (q *WithQuery) MustBuild(qb QueryBuilder) (string, value.Values) { return MustBuild(q, qb) }

// MustString renders with inline values and panics on error.
func (q *WithQuery) MustString(qb QueryBuilder) string { return MustString(q, qb) }
