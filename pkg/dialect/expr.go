package dialect

import (
	"strconv"

	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/value"
)

func (r *renderer) expr(e query.Expr) {
	switch t := query.Unwrap(e).(type) {
	case nil:
		r.failf("missing expression")
	case query.ColumnExpr:
		r.columnRef(t.Ref)
	case query.TupleExpr:
		r.write("(")
		r.exprs(t)
		r.write(")")
	case query.UnaryExpr:
		r.unary(t)
	case query.BinaryExpr:
		r.binary(t)
	case query.FuncCall:
		r.funcCall(t)
	case query.SubQueryExpr:
		r.subQuery(t)
	case query.ValueExpr:
		r.value(t.Value)
	case query.ValuesExpr:
		r.write("(")
		r.values(t)
		r.write(")")
	case query.CustomExpr:
		r.write(string(t))
	case query.CustomWithExpr:
		format.Expand(r.w, t.Template, r.cfg.Template, len(t.Args), func(i int) {
			r.expr(t.Args[i])
		})
	case query.Keyword:
		r.write(string(t))
	case query.AsEnumExpr:
		r.asEnum(t)
	case query.ConstantExpr:
		r.literal(t.Value)
	case query.TypeNameExpr:
		r.typeName(t.Type)
	case query.LikeExpr:
		r.like(t)
	case *query.CaseExpr:
		r.caseExpr(t)
	default:
		r.failf("unknown expression %T", t)
	}
}

func (r *renderer) exprs(es []query.Expr) {
	r.w.List(len(es), ", ", func(i int) { r.expr(es[i]) })
}

// wellKnownHighPrecedence reports nodes that never need parentheses as an
// operand.
func wellKnownHighPrecedence(e query.Expr) bool {
	switch e.(type) {
	case query.ColumnExpr, query.TupleExpr, query.ConstantExpr, query.FuncCall,
		query.ValueExpr, query.ValuesExpr, query.Keyword, *query.CaseExpr,
		query.SubQueryExpr, query.LikeExpr, query.TypeNameExpr, query.AsEnumExpr,
		query.CustomExpr, query.CustomWithExpr:
		return true
	}
	return false
}

// needsParens decides whether inner, an operand of outer, is wrapped.
func needsParens(inner query.Expr, outer query.BinOper, left bool) bool {
	if wellKnownHighPrecedence(inner) {
		return false
	}
	b, ok := inner.(query.BinaryExpr)
	if !ok {
		return true
	}
	if left && b.Op == outer && outer.LeftAssociative() {
		return false
	}
	if (b.Op.IsArithmetic() || b.Op.IsShift()) &&
		(outer.IsComparison() || outer.IsBetween() || outer.IsIn() || outer.IsLike() || outer.IsLogical()) {
		return false
	}
	if (b.Op.IsComparison() || b.Op.IsBetween() || b.Op.IsIn() || b.Op.IsLike() || b.Op.IsIs()) && outer.IsLogical() {
		return false
	}
	return true
}

func (r *renderer) operand(e query.Expr, outer query.BinOper, left bool) {
	inner := query.Unwrap(e)
	if needsParens(inner, outer, left) {
		r.write("(")
		r.expr(inner)
		r.write(")")
		return
	}
	r.expr(inner)
}

func (r *renderer) unary(u query.UnaryExpr) {
	inner := query.Unwrap(u.Expr)
	switch u.Op {
	case query.OpNot:
		r.write("NOT ")
		r.operand(inner, query.OpAnd, false)
	default:
		r.write(string(u.Op))
		if wellKnownHighPrecedence(inner) {
			r.expr(inner)
			return
		}
		r.write("(")
		r.expr(inner)
		r.write(")")
	}
}

func (r *renderer) binary(b query.BinaryExpr) {
	if b.Op.IsIn() {
		if t, ok := query.Unwrap(b.Right).(query.TupleExpr); ok && len(t) == 0 {
			if b.Op == query.OpIn {
				r.write("1 = 2")
			} else {
				r.write("1 = 1")
			}
			return
		}
	}
	r.operand(b.Left, b.Op, true)
	r.write(" ")
	r.write(string(b.Op))
	r.write(" ")
	if b.Op.IsBetween() {
		if rng, ok := query.Unwrap(b.Right).(query.BinaryExpr); ok && rng.Op == query.OpAnd {
			r.operand(rng.Left, b.Op, false)
			r.write(" AND ")
			r.operand(rng.Right, b.Op, false)
			return
		}
	}
	r.operand(b.Right, b.Op, false)
}

func (r *renderer) like(l query.LikeExpr) {
	r.value(value.String(l.Pattern))
	if l.HasEscape {
		r.write(" ESCAPE ")
		r.write(r.d.QuoteString(string(l.Escape)))
	}
}

func (r *renderer) funcCall(c query.FuncCall) {
	r.write(r.cfg.FunctionName(c.Func))
	r.write("(")
	r.w.List(len(c.Args), ", ", func(i int) {
		if c.IsDistinct(i) {
			r.write("DISTINCT ")
		}
		r.expr(c.Args[i])
	})
	r.write(")")
}

func (r *renderer) subQuery(s query.SubQueryExpr) {
	r.write(string(s.Op))
	r.write("(")
	r.statement(s.Query)
	r.write(")")
}

func (r *renderer) asEnum(a query.AsEnumExpr) {
	if !r.cfg.SupportsEnumCast {
		r.expr(a.Expr)
		return
	}
	r.write("CAST(")
	r.expr(a.Expr)
	r.write(" AS ")
	r.iden(a.Type)
	r.write(")")
}

func (r *renderer) caseExpr(c *query.CaseExpr) {
	r.write("(CASE")
	for _, w := range c.Whens {
		r.write(" WHEN (")
		r.expr(w.Cond)
		r.write(") THEN ")
		r.expr(w.Then)
	}
	if c.Else != nil {
		r.write(" ELSE ")
		r.expr(c.Else)
	}
	r.write(" END)")
}

// condition writes a WHERE/HAVING/ON body.
func (r *renderer) condition(c *query.Condition) {
	r.expr(c.ToExpr())
}

func (r *renderer) orderExprs(os []query.OrderExpr) {
	r.w.List(len(os), ", ", func(i int) { r.orderExpr(os[i]) })
}

func (r *renderer) orderExpr(o query.OrderExpr) {
	if len(o.Field) > 0 {
		r.fieldOrder(o)
		return
	}
	if o.Nulls != query.NullsDefault && !r.cfg.SupportsNullsOrdering {
		r.expr(o.Expr)
		if o.Nulls == query.NullsFirst {
			r.write(" IS NULL DESC, ")
		} else {
			r.write(" IS NULL ASC, ")
		}
	}
	r.expr(o.Expr)
	r.order(o.Order)
	if o.Nulls != query.NullsDefault && r.cfg.SupportsNullsOrdering {
		if o.Nulls == query.NullsFirst {
			r.write(" NULLS FIRST")
		} else {
			r.write(" NULLS LAST")
		}
	}
}

func (r *renderer) order(o query.Order) {
	if o == query.Desc {
		r.write(" DESC")
	} else {
		r.write(" ASC")
	}
}

// fieldOrder sorts by position in a value list.
func (r *renderer) fieldOrder(o query.OrderExpr) {
	if r.cfg.SupportsFieldOrdering {
		r.write("FIELD(")
		r.expr(o.Expr)
		for _, v := range o.Field {
			r.write(", ")
			r.value(v)
		}
		r.write(")")
		r.order(o.Order)
		return
	}
	r.write("CASE")
	for i, v := range o.Field {
		r.write(" WHEN ")
		r.operand(o.Expr, query.OpEqual, true)
		r.write(" = ")
		r.value(v)
		r.write(" THEN ")
		r.write(strconv.Itoa(i))
	}
	r.write(" ELSE ")
	r.write(strconv.Itoa(len(o.Field)))
	r.write(" END")
	r.order(o.Order)
}

func (r *renderer) window(w *query.WindowStatement) {
	wrote := false
	if len(w.PartitionBy) > 0 {
		r.write("PARTITION BY ")
		r.exprs(w.PartitionBy)
		wrote = true
	}
	if len(w.OrderBy) > 0 {
		if wrote {
			r.write(" ")
		}
		r.write("ORDER BY ")
		r.orderExprs(w.OrderBy)
		wrote = true
	}
	if w.Frame != nil {
		if !r.cfg.SupportsWindowFrames {
			r.unsupported("window frames")
			return
		}
		if wrote {
			r.write(" ")
		}
		r.write(string(w.Frame.Type))
		r.write(" ")
		if w.Frame.End != nil {
			r.write("BETWEEN ")
			r.frameBound(w.Frame.Start)
			r.write(" AND ")
			r.frameBound(*w.Frame.End)
		} else {
			r.frameBound(w.Frame.Start)
		}
	}
}

func (r *renderer) frameBound(b query.FrameBound) {
	switch b.Kind {
	case query.UnboundedPreceding:
		r.write("UNBOUNDED PRECEDING")
	case query.Preceding:
		r.write(strconv.FormatUint(uint64(b.N), 10))
		r.write(" PRECEDING")
	case query.CurrentRow:
		r.write("CURRENT ROW")
	case query.Following:
		r.write(strconv.FormatUint(uint64(b.N), 10))
		r.write(" FOLLOWING")
	case query.UnboundedFollowing:
		r.write("UNBOUNDED FOLLOWING")
	}
}
