package query

import "github.com/leapstack-labs/querykit/pkg/value"

// DeleteStatement is a DELETE.
type DeleteStatement struct {
	Target          TableRef
	WhereClause     ConditionHolder
	OrderByList     []OrderExpr
	LimitValue      *value.Value
	ReturningClause *Returning
}

// Delete starts a DELETE.
func Delete() *DeleteStatement { return &DeleteStatement{} }

func (*DeleteStatement) queryStatement()             {}
func (s *DeleteStatement) cloneStatement() Statement { return s.Clone() }

// Clone returns a copy whose lists can be extended independently.
func (s *DeleteStatement) Clone() *DeleteStatement {
	out := *s
	out.WhereClause = s.WhereClause.clone()
	out.OrderByList = append([]OrderExpr(nil), s.OrderByList...)
	return &out
}

// FromTable sets the target table.
func (s *DeleteStatement) FromTable(t any) *DeleteStatement {
	s.Target = IntoTableRef(t)
	return s
}

// AndWhere adds x to WHERE with AND.
func (s *DeleteStatement) AndWhere(x any) *DeleteStatement {
	s.WhereClause.And(x)
	return s
}

// OrWhere adds x to WHERE with OR.
func (s *DeleteStatement) OrWhere(x any) *DeleteStatement {
	s.WhereClause.Or(x)
	return s
}

// CondWhere merges a condition tree into WHERE.
func (s *DeleteStatement) CondWhere(c *Condition) *DeleteStatement {
	s.WhereClause.Merge(c)
	return s
}

// OrderBy appends an ORDER BY item.
func (s *DeleteStatement) OrderBy(x any, o Order) *DeleteStatement {
	s.OrderByList = append(s.OrderByList, OrderExpr{Expr: IntoExpr(x), Order: o})
	return s
}

// Limit sets LIMIT n.
func (s *DeleteStatement) Limit(n uint64) *DeleteStatement {
	v := value.BigUnsigned(n)
	s.LimitValue = &v
	return s
}

// Returning sets the RETURNING clause.
func (s *DeleteStatement) Returning(r *Returning) *DeleteStatement {
	s.ReturningClause = r
	return s
}

// ReturningAll sets RETURNING *.
func (s *DeleteStatement) ReturningAll() *DeleteStatement { return s.Returning(ReturningAll()) }

// ReturningCol sets RETURNING cols.
func (s *DeleteStatement) ReturningCol(cols ...any) *DeleteStatement {
	return s.Returning(ReturningExprs(cols...))
}

// With wraps the statement in a WITH query.
func (s *DeleteStatement) With(w *WithClause) *WithQuery {
	return &WithQuery{Clause: w, Query: s}
}

// Build renders with placeholders.
func (s *DeleteStatement) Build(qb QueryBuilder) (string, value.Values, error) { return Build(s, qb) }

// ToString renders with inline values.
func (s *DeleteStatement) ToString(qb QueryBuilder) (string, error) { return ToString(s, qb) }

// MustBuild renders with placeholders and panics on error.
func (s *DeleteStatement) MustBuild(qb QueryBuilder) (string, value.Values) { return MustBuild(s, qb) }

// MustString renders with inline values and panics on error.
func (s *DeleteStatement) MustString(qb QueryBuilder) string { return MustString(s, qb) }
