package query

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// Assignment is one SET col = expr item.
type Assignment struct {
	Column iden.Dyn
	Expr   Expr
}

// Assign builds an assignment.
func Assign(col iden.Iden, x any) Assignment {
	return Assignment{Column: iden.Of(col), Expr: IntoExpr(x)}
}

// UpdateStatement is an UPDATE. Assignments render in insertion order.
type UpdateStatement struct {
	Target          TableRef
	FromList        []TableRef
	Assignments     []Assignment
	WhereClause     ConditionHolder
	OrderByList     []OrderExpr
	LimitValue      *value.Value
	ReturningClause *Returning
}

// Update starts an UPDATE.
func Update() *UpdateStatement { return &UpdateStatement{} }

func (*UpdateStatement) queryStatement()             {}
func (s *UpdateStatement) cloneStatement() Statement { return s.Clone() }

// Clone returns a copy whose lists can be extended independently.
func (s *UpdateStatement) Clone() *UpdateStatement {
	out := *s
	out.FromList = append([]TableRef(nil), s.FromList...)
	out.Assignments = append([]Assignment(nil), s.Assignments...)
	out.WhereClause = s.WhereClause.clone()
	out.OrderByList = append([]OrderExpr(nil), s.OrderByList...)
	return &out
}

// Table sets the target table.
func (s *UpdateStatement) Table(t any) *UpdateStatement {
	s.Target = IntoTableRef(t)
	return s
}

// From appends an UPDATE ... FROM table.
func (s *UpdateStatement) From(t any) *UpdateStatement {
	s.FromList = append(s.FromList, IntoTableRef(t))
	return s
}

// Value appends col = x.
func (s *UpdateStatement) Value(col iden.Iden, x any) *UpdateStatement {
	s.Assignments = append(s.Assignments, Assign(col, x))
	return s
}

// Values appends several assignments.
func (s *UpdateStatement) Values(as ...Assignment) *UpdateStatement {
	s.Assignments = append(s.Assignments, as...)
	return s
}

// AndWhere adds x to WHERE with AND.
func (s *UpdateStatement) AndWhere(x any) *UpdateStatement {
	s.WhereClause.And(x)
	return s
}

// OrWhere adds x to WHERE with OR.
func (s *UpdateStatement) OrWhere(x any) *UpdateStatement {
	s.WhereClause.Or(x)
	return s
}

// CondWhere merges a condition tree into WHERE.
func (s *UpdateStatement) CondWhere(c *Condition) *UpdateStatement {
	s.WhereClause.Merge(c)
	return s
}

// OrderBy appends an ORDER BY item.
func (s *UpdateStatement) OrderBy(x any, o Order) *UpdateStatement {
	s.OrderByList = append(s.OrderByList, OrderExpr{Expr: IntoExpr(x), Order: o})
	return s
}

// Limit sets LIMIT n.
func (s *UpdateStatement) Limit(n uint64) *UpdateStatement {
	v := value.BigUnsigned(n)
	s.LimitValue = &v
	return s
}

// Returning sets the RETURNING clause.
func (s *UpdateStatement) Returning(r *Returning) *UpdateStatement {
	s.ReturningClause = r
	return s
}

// ReturningAll sets RETURNING *.
func (s *UpdateStatement) ReturningAll() *UpdateStatement { return s.Returning(ReturningAll()) }

// ReturningCol sets RETURNING cols.
func (s *UpdateStatement) ReturningCol(cols ...any) *UpdateStatement {
	return s.Returning(ReturningExprs(cols...))
}

// With wraps the statement in a WITH query.
func (s *UpdateStatement) With(w *WithClause) *WithQuery {
	return &WithQuery{Clause: w, Query: s}
}

// Build renders with placeholders.
func (s *UpdateStatement) Build(qb QueryBuilder) (string, value.Values, error) { return Build(s, qb) }

// ToString renders with inline values.
func (s *UpdateStatement) ToString(qb QueryBuilder) (string, error) { return ToString(s, qb) }

// MustBuild renders with placeholders and panics on error.
func (s *UpdateStatement) MustBuild(qb QueryBuilder) (string, value.Values) { return MustBuild(s, qb) }

// MustString renders with inline values and panics on error.
func (s *UpdateStatement) MustString(qb QueryBuilder) string { return MustString(s, qb) }
