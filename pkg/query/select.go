package query

import (
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// DistinctKind selects the DISTINCT flavour of a SELECT.
type DistinctKind uint8

// Distinct flavours.
const (
	DistinctAll DistinctKind = iota + 1
	DistinctPlain
	DistinctRow
	DistinctOn
)

// SelectDistinct is the DISTINCT clause. On is used by DistinctOn.
type SelectDistinct struct {
	Kind DistinctKind
	On   []Expr
}

// SelectExpr is one item of the selection list.
type SelectExpr struct {
	Expr   Expr
	Alias  iden.Dyn
	Window *WindowRef
}

// JoinType is the join keyword.
type JoinType string

// Join types.
const (
	Join          JoinType = "JOIN"
	CrossJoin     JoinType = "CROSS JOIN"
	InnerJoin     JoinType = "INNER JOIN"
	LeftJoin      JoinType = "LEFT JOIN"
	RightJoin     JoinType = "RIGHT JOIN"
	FullOuterJoin JoinType = "FULL OUTER JOIN"
	StraightJoin  JoinType = "STRAIGHT_JOIN"
)

// JoinExpr is one JOIN clause. At most one of On and Using is set.
type JoinExpr struct {
	Type    JoinType
	Table   TableRef
	On      *Condition
	Using   []iden.Dyn
	Lateral bool
}

// UnionKind is the set operator joining two selects.
type UnionKind string

// Set operators.
const (
	UnionDistinct UnionKind = "UNION"
	UnionAll      UnionKind = "UNION ALL"
	Intersect     UnionKind = "INTERSECT"
	Except        UnionKind = "EXCEPT"
)

// UnionArm is one set-operation arm.
type UnionArm struct {
	Kind  UnionKind
	Query *SelectStatement
}

// LockType is the row lock strength.
type LockType string

// Lock strengths.
const (
	LockUpdate      LockType = "UPDATE"
	LockNoKeyUpdate LockType = "NO KEY UPDATE"
	LockShare       LockType = "SHARE"
	LockKeyShare    LockType = "KEY SHARE"
)

// LockBehavior is the wait policy of a lock.
type LockBehavior string

// Wait policies. The zero value waits.
const (
	LockNowait     LockBehavior = "NOWAIT"
	LockSkipLocked LockBehavior = "SKIP LOCKED"
)

// LockClause is FOR UPDATE / FOR SHARE ...
type LockClause struct {
	Type     LockType
	Of       []iden.TableName
	Behavior LockBehavior
}

// IndexHintType is the MySQL index hint verb.
type IndexHintType string

// Index hint verbs.
const (
	UseIndex    IndexHintType = "USE"
	IgnoreIndex IndexHintType = "IGNORE"
	ForceIndex  IndexHintType = "FORCE"
)

// IndexHintScope restricts a MySQL index hint.
type IndexHintScope string

// Index hint scopes. The zero value applies everywhere.
const (
	HintForJoin    IndexHintScope = "JOIN"
	HintForOrderBy IndexHintScope = "ORDER BY"
	HintForGroupBy IndexHintScope = "GROUP BY"
)

// IndexHint is a MySQL USE/IGNORE/FORCE INDEX hint.
type IndexHint struct {
	Type  IndexHintType
	Scope IndexHintScope
	Index iden.Dyn
}

// SelectStatement is a SELECT. Build it with Select and the chainable
// methods; renderers read the exported fields.
type SelectStatement struct {
	DistinctClause *SelectDistinct
	SelectList     []SelectExpr
	FromList       []TableRef
	JoinList       []JoinExpr
	IndexHints     []IndexHint
	WhereClause    ConditionHolder
	GroupByList    []Expr
	HavingClause   ConditionHolder
	Windows        []NamedWindow
	UnionList      []UnionArm
	OrderByList    []OrderExpr
	LimitValue     *value.Value
	OffsetValue    *value.Value
	LockClause     *LockClause
}

// Select starts a SELECT.
func Select() *SelectStatement { return &SelectStatement{} }

func (*SelectStatement) queryStatement()             {}
func (s *SelectStatement) cloneStatement() Statement { return s.Clone() }

// Clone returns a deep copy of the statement's own lists. Nested
// expressions are shared.
func (s *SelectStatement) Clone() *SelectStatement {
	out := *s
	if s.DistinctClause != nil {
		d := *s.DistinctClause
		d.On = append([]Expr(nil), d.On...)
		out.DistinctClause = &d
	}
	out.SelectList = append([]SelectExpr(nil), s.SelectList...)
	out.FromList = append([]TableRef(nil), s.FromList...)
	out.JoinList = append([]JoinExpr(nil), s.JoinList...)
	out.IndexHints = append([]IndexHint(nil), s.IndexHints...)
	out.WhereClause = s.WhereClause.clone()
	out.GroupByList = append([]Expr(nil), s.GroupByList...)
	out.HavingClause = s.HavingClause.clone()
	out.Windows = append([]NamedWindow(nil), s.Windows...)
	out.UnionList = append([]UnionArm(nil), s.UnionList...)
	out.OrderByList = append([]OrderExpr(nil), s.OrderByList...)
	if s.LockClause != nil {
		l := *s.LockClause
		out.LockClause = &l
	}
	return &out
}

// Distinct sets SELECT DISTINCT.
func (s *SelectStatement) Distinct() *SelectStatement {
	s.DistinctClause = &SelectDistinct{Kind: DistinctPlain}
	return s
}

// DistinctRow sets the MySQL SELECT DISTINCTROW.
func (s *SelectStatement) DistinctRow() *SelectStatement {
	s.DistinctClause = &SelectDistinct{Kind: DistinctRow}
	return s
}

// DistinctOn sets the Postgres SELECT DISTINCT ON (cols).
func (s *SelectStatement) DistinctOn(cols ...any) *SelectStatement {
	s.DistinctClause = &SelectDistinct{Kind: DistinctOn, On: intoExprs(cols)}
	return s
}

// Column appends a column. Accepts identifiers, column references and
// expressions.
func (s *SelectStatement) Column(c any) *SelectStatement {
	s.SelectList = append(s.SelectList, SelectExpr{Expr: IntoExpr(c)})
	return s
}

// Columns appends several columns.
func (s *SelectStatement) Columns(cs ...any) *SelectStatement {
	for _, c := range cs {
		s.Column(c)
	}
	return s
}

// Expr appends an expression. Plain Go values become bindable values.
func (s *SelectStatement) Expr(x any) *SelectStatement {
	return s.Column(x)
}

// Exprs appends several expressions.
func (s *SelectStatement) Exprs(xs ...any) *SelectStatement {
	return s.Columns(xs...)
}

// ExprAs appends an expression with an alias.
func (s *SelectStatement) ExprAs(x any, alias iden.Iden) *SelectStatement {
	s.SelectList = append(s.SelectList, SelectExpr{Expr: IntoExpr(x), Alias: iden.Of(alias)})
	return s
}

// ExprWindow appends expr OVER (window).
func (s *SelectStatement) ExprWindow(x any, w *WindowStatement) *SelectStatement {
	s.SelectList = append(s.SelectList, SelectExpr{Expr: IntoExpr(x), Window: &WindowRef{Spec: w}})
	return s
}

// ExprWindowAs appends expr OVER (window) AS alias.
func (s *SelectStatement) ExprWindowAs(x any, w *WindowStatement, alias iden.Iden) *SelectStatement {
	s.SelectList = append(s.SelectList, SelectExpr{Expr: IntoExpr(x), Alias: iden.Of(alias), Window: &WindowRef{Spec: w}})
	return s
}

// ExprWindowName appends expr OVER name.
func (s *SelectStatement) ExprWindowName(x any, name iden.Iden) *SelectStatement {
	s.SelectList = append(s.SelectList, SelectExpr{Expr: IntoExpr(x), Window: &WindowRef{Name: iden.Of(name)}})
	return s
}

// ClearSelects empties the selection list.
func (s *SelectStatement) ClearSelects() *SelectStatement {
	s.SelectList = nil
	return s
}

// From appends a table to the FROM list.
func (s *SelectStatement) From(t any) *SelectStatement {
	s.FromList = append(s.FromList, IntoTableRef(t))
	return s
}

// FromAs appends an aliased table.
func (s *SelectStatement) FromAs(t any, alias iden.Iden) *SelectStatement {
	s.FromList = append(s.FromList, AliasedTable(t, alias))
	return s
}

// FromSubquery appends (SELECT ...) AS alias.
func (s *SelectStatement) FromSubquery(q *SelectStatement, alias iden.Iden) *SelectStatement {
	s.FromList = append(s.FromList, SubQueryRef{Query: q.Clone(), Alias: iden.Of(alias)})
	return s
}

// FromValues appends (VALUES ...) AS alias.
func (s *SelectStatement) FromValues(rows []value.Tuple, alias iden.Iden) *SelectStatement {
	s.FromList = append(s.FromList, ValuesRef{Rows: rows, Alias: iden.Of(alias)})
	return s
}

// FromFunction appends a function call as a table.
func (s *SelectStatement) FromFunction(call FuncCall, alias iden.Iden) *SelectStatement {
	s.FromList = append(s.FromList, FunctionRef{Call: call, Alias: iden.Of(alias)})
	return s
}

// JoinOn appends a join with an ON condition. on accepts expressions and
// conditions.
func (s *SelectStatement) JoinOn(typ JoinType, t any, on any) *SelectStatement {
	s.JoinList = append(s.JoinList, JoinExpr{Type: typ, Table: IntoTableRef(t), On: intoCondition(on)})
	return s
}

// JoinAs appends a join against an aliased table.
func (s *SelectStatement) JoinAs(typ JoinType, t any, alias iden.Iden, on any) *SelectStatement {
	s.JoinList = append(s.JoinList, JoinExpr{Type: typ, Table: AliasedTable(t, alias), On: intoCondition(on)})
	return s
}

// JoinUsing appends a join with USING (cols).
func (s *SelectStatement) JoinUsing(typ JoinType, t any, cols ...iden.Iden) *SelectStatement {
	s.JoinList = append(s.JoinList, JoinExpr{Type: typ, Table: IntoTableRef(t), Using: iden.All(cols...)})
	return s
}

// JoinLateral appends a join against a LATERAL sub-query.
func (s *SelectStatement) JoinLateral(typ JoinType, q *SelectStatement, alias iden.Iden, on any) *SelectStatement {
	s.JoinList = append(s.JoinList, JoinExpr{
		Type:    typ,
		Table:   SubQueryRef{Query: q.Clone(), Alias: iden.Of(alias)},
		On:      intoCondition(on),
		Lateral: true,
	})
	return s
}

// InnerJoin appends INNER JOIN t ON on.
func (s *SelectStatement) InnerJoin(t any, on any) *SelectStatement {
	return s.JoinOn(InnerJoin, t, on)
}

// LeftJoin appends LEFT JOIN t ON on.
func (s *SelectStatement) LeftJoin(t any, on any) *SelectStatement {
	return s.JoinOn(LeftJoin, t, on)
}

// RightJoin appends RIGHT JOIN t ON on.
func (s *SelectStatement) RightJoin(t any, on any) *SelectStatement {
	return s.JoinOn(RightJoin, t, on)
}

// FullOuterJoin appends FULL OUTER JOIN t ON on.
func (s *SelectStatement) FullOuterJoin(t any, on any) *SelectStatement {
	return s.JoinOn(FullOuterJoin, t, on)
}

// CrossJoin appends CROSS JOIN t.
func (s *SelectStatement) CrossJoin(t any) *SelectStatement {
	s.JoinList = append(s.JoinList, JoinExpr{Type: CrossJoin, Table: IntoTableRef(t)})
	return s
}

// IndexHint appends a MySQL index hint.
func (s *SelectStatement) IndexHint(typ IndexHintType, index iden.Iden, scope IndexHintScope) *SelectStatement {
	s.IndexHints = append(s.IndexHints, IndexHint{Type: typ, Scope: scope, Index: iden.Of(index)})
	return s
}

// AndWhere adds x to WHERE with AND.
func (s *SelectStatement) AndWhere(x any) *SelectStatement {
	s.WhereClause.And(x)
	return s
}

// OrWhere adds x to WHERE with OR. The existing condition becomes the
// left operand.
func (s *SelectStatement) OrWhere(x any) *SelectStatement {
	s.WhereClause.Or(x)
	return s
}

// CondWhere merges a condition tree into WHERE.
func (s *SelectStatement) CondWhere(c *Condition) *SelectStatement {
	s.WhereClause.Merge(c)
	return s
}

// GroupBy appends GROUP BY expressions.
func (s *SelectStatement) GroupBy(xs ...any) *SelectStatement {
	s.GroupByList = append(s.GroupByList, intoExprs(xs)...)
	return s
}

// AndHaving adds x to HAVING with AND.
func (s *SelectStatement) AndHaving(x any) *SelectStatement {
	s.HavingClause.And(x)
	return s
}

// OrHaving adds x to HAVING with OR.
func (s *SelectStatement) OrHaving(x any) *SelectStatement {
	s.HavingClause.Or(x)
	return s
}

// CondHaving merges a condition tree into HAVING.
func (s *SelectStatement) CondHaving(c *Condition) *SelectStatement {
	s.HavingClause.Merge(c)
	return s
}

// Window appends a named window definition.
func (s *SelectStatement) Window(name iden.Iden, w *WindowStatement) *SelectStatement {
	s.Windows = append(s.Windows, NamedWindow{Name: iden.Of(name), Spec: w})
	return s
}

// Union appends a set-operation arm. Arms keep insertion order.
func (s *SelectStatement) Union(kind UnionKind, q *SelectStatement) *SelectStatement {
	s.UnionList = append(s.UnionList, UnionArm{Kind: kind, Query: q.Clone()})
	return s
}

// OrderBy appends an ORDER BY item.
func (s *SelectStatement) OrderBy(x any, o Order) *SelectStatement {
	s.OrderByList = append(s.OrderByList, OrderExpr{Expr: IntoExpr(x), Order: o})
	return s
}

// OrderByNulls appends an ORDER BY item with NULLS FIRST/LAST.
func (s *SelectStatement) OrderByNulls(x any, o Order, n NullOrdering) *SelectStatement {
	s.OrderByList = append(s.OrderByList, OrderExpr{Expr: IntoExpr(x), Order: o, Nulls: n})
	return s
}

// OrderByField sorts by the position of x in vals.
func (s *SelectStatement) OrderByField(x any, o Order, vals ...any) *SelectStatement {
	field := make(value.Values, len(vals))
	for i, v := range vals {
		field[i] = value.From(v)
	}
	s.OrderByList = append(s.OrderByList, OrderExpr{Expr: IntoExpr(x), Order: o, Field: field})
	return s
}

// Limit sets LIMIT n. The limit is bound like any other value.
func (s *SelectStatement) Limit(n uint64) *SelectStatement {
	v := value.BigUnsigned(n)
	s.LimitValue = &v
	return s
}

// Offset sets OFFSET n.
func (s *SelectStatement) Offset(n uint64) *SelectStatement {
	v := value.BigUnsigned(n)
	s.OffsetValue = &v
	return s
}

// ResetLimit removes LIMIT.
func (s *SelectStatement) ResetLimit() *SelectStatement {
	s.LimitValue = nil
	return s
}

// ResetOffset removes OFFSET.
func (s *SelectStatement) ResetOffset() *SelectStatement {
	s.OffsetValue = nil
	return s
}

// Lock sets FOR <typ>.
func (s *SelectStatement) Lock(typ LockType) *SelectStatement {
	s.LockClause = &LockClause{Type: typ}
	return s
}

// LockWith sets FOR <typ> [OF tables] [behavior].
func (s *SelectStatement) LockWith(typ LockType, behavior LockBehavior, tables ...iden.Iden) *SelectStatement {
	l := &LockClause{Type: typ, Behavior: behavior}
	for _, t := range tables {
		l.Of = append(l.Of, iden.Table(t))
	}
	s.LockClause = l
	return s
}

// With wraps the statement in a WITH query.
func (s *SelectStatement) With(w *WithClause) *WithQuery {
	return &WithQuery{Clause: w, Query: s}
}

// Build renders with placeholders.
func (s *SelectStatement) Build(qb QueryBuilder) (string, value.Values, error) { return Build(s, qb) }

// ToString renders with inline values.
func (s *SelectStatement) ToString(qb QueryBuilder) (string, error) { return ToString(s, qb) }

// MustBuild renders with placeholders and panics on error.
func (s *SelectStatement) MustBuild(qb QueryBuilder) (string, value.Values) { return MustBuild(s, qb) }

// MustString renders with inline values and panics on error.
func (s *SelectStatement) MustString(qb QueryBuilder) string { return MustString(s, qb) }

// Render writes the statement into w using qb. It lets callers embed a
// statement into a larger buffer.
func (s *SelectStatement) Render(qb QueryBuilder, w *format.Writer) { qb.PrepareQuery(s, w) }

func intoCondition(x any) *Condition {
	if x == nil {
		return nil
	}
	e := IntoExpr(x)
	if c, ok := e.(*Condition); ok {
		return c.Clone()
	}
	return All(e)
}
