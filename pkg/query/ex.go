package query

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// Ex wraps an expression with chainable operator methods:
//
//	query.Col(Glyph.Aspect).Mul(2).Gte(query.Col(Glyph.Size))
//
// Operands accept anything IntoExpr accepts.
type Ex struct {
	Expr
}

// Wrap returns e with operator methods.
func Wrap(e Expr) Ex {
	if x, ok := e.(Ex); ok {
		return x
	}
	return Ex{Expr: e}
}

// Col refers to an unqualified column. iden.Star yields *.
func Col(name iden.Iden) Ex { return Ex{ColumnExpr{Ref: iden.Col(name)}} }

// TblCol refers to table.column.
func TblCol(table, name iden.Iden) Ex { return Ex{ColumnExpr{Ref: iden.TableCol(table, name)}} }

// ColRef refers to an arbitrary column reference.
func ColRef(ref iden.ColumnRef) Ex { return Ex{ColumnExpr{Ref: ref}} }

// Star is the bare * column.
func Star() Ex { return Ex{ColumnExpr{Ref: iden.Col(iden.Star)}} }

// Val is a bindable value converted with value.From.
func Val(x any) Ex {
	if v, ok := x.(value.Value); ok {
		return Ex{ValueExpr{Value: v}}
	}
	return Ex{ValueExpr{Value: value.From(x)}}
}

// Vals is a parenthesised list of bindable values.
func Vals(xs ...any) Ex {
	out := make(ValuesExpr, len(xs))
	for i, x := range xs {
		out[i] = value.From(x)
	}
	return Ex{out}
}

// Const is a value always written inline.
func Const(x any) Ex { return Ex{ConstantExpr{Value: value.From(x)}} }

// Cust is raw SQL.
func Cust(sql string) Ex { return Ex{CustomExpr(sql)} }

// CustWith is raw SQL with $n (or ?) placeholders filled by args.
func CustWith(tmpl string, args ...any) Ex {
	return Ex{CustomWithExpr{Template: tmpl, Args: intoExprs(args)}}
}

// Tuple builds (a, b, ...).
func Tuple(xs ...any) Ex { return Ex{TupleExpr(intoExprs(xs))} }

// Kw is a bare keyword.
func Kw(k Keyword) Ex { return Ex{k} }

// CurrentTimestamp is CURRENT_TIMESTAMP.
func CurrentTimestamp() Ex { return Ex{KwCurrentTimestamp} }

// TypeName refers to a type.
func TypeName(t iden.TypeRef) Ex { return Ex{TypeNameExpr{Type: t}} }

// Exists is EXISTS (q).
func Exists(q Statement) Ex { return Ex{SubQueryExpr{Op: SubQueryExists, Query: q.cloneStatement()}} }

// NotExists is NOT EXISTS (q).
func NotExists(q Statement) Ex {
	return Ex{SubQueryExpr{Op: SubQueryNotExists, Query: q.cloneStatement()}}
}

// AnyOf is ANY (q).
func AnyOf(q Statement) Ex { return Ex{SubQueryExpr{Op: SubQueryAny, Query: q.cloneStatement()}} }

// SomeOf is SOME (q).
func SomeOf(q Statement) Ex { return Ex{SubQueryExpr{Op: SubQuerySome, Query: q.cloneStatement()}} }

// AllOf is ALL (q).
func AllOf(q Statement) Ex { return Ex{SubQueryExpr{Op: SubQueryAll, Query: q.cloneStatement()}} }

// SubQuery is a bare parenthesised sub-query.
func SubQuery(q Statement) Ex { return Ex{SubQueryExpr{Query: q.cloneStatement()}} }

// Binary applies op with right as the right operand.
func (e Ex) Binary(op BinOper, right any) Ex {
	return Ex{BinaryExpr{Left: e.Expr, Op: op, Right: IntoExpr(right)}}
}

// Eq is =.
func (e Ex) Eq(x any) Ex { return e.Binary(OpEqual, x) }

// Ne is <>.
func (e Ex) Ne(x any) Ex { return e.Binary(OpNotEqual, x) }

// Lt is <.
func (e Ex) Lt(x any) Ex { return e.Binary(OpLt, x) }

// Lte is <=.
func (e Ex) Lte(x any) Ex { return e.Binary(OpLte, x) }

// Gt is >.
func (e Ex) Gt(x any) Ex { return e.Binary(OpGt, x) }

// Gte is >=.
func (e Ex) Gte(x any) Ex { return e.Binary(OpGte, x) }

// Is is IS.
func (e Ex) Is(x any) Ex { return e.Binary(OpIs, x) }

// IsNot is IS NOT.
func (e Ex) IsNot(x any) Ex { return e.Binary(OpIsNot, x) }

// IsNull is IS NULL.
func (e Ex) IsNull() Ex { return e.Binary(OpIs, KwNull) }

// IsNotNull is IS NOT NULL.
func (e Ex) IsNotNull() Ex { return e.Binary(OpIsNot, KwNull) }

// Between is BETWEEN a AND b.
func (e Ex) Between(a, b any) Ex {
	return e.Binary(OpBetween, BinaryExpr{Left: IntoExpr(a), Op: OpAnd, Right: IntoExpr(b)})
}

// NotBetween is NOT BETWEEN a AND b.
func (e Ex) NotBetween(a, b any) Ex {
	return e.Binary(OpNotBetween, BinaryExpr{Left: IntoExpr(a), Op: OpAnd, Right: IntoExpr(b)})
}

// In is IN (xs...). An empty list renders as the false predicate 1 = 2.
func (e Ex) In(xs ...any) Ex { return e.Binary(OpIn, TupleExpr(intoExprs(xs))) }

// NotIn is NOT IN (xs...). An empty list renders as the true predicate 1 = 1.
func (e Ex) NotIn(xs ...any) Ex { return e.Binary(OpNotIn, TupleExpr(intoExprs(xs))) }

// InTuples is (a, b) IN ((1, 2), (3, 4)). e is usually a Tuple.
func (e Ex) InTuples(rows ...value.Tuple) Ex {
	out := make(TupleExpr, len(rows))
	for i, r := range rows {
		out[i] = IntoExpr(r)
	}
	return e.Binary(OpIn, out)
}

// InSubquery is IN (q).
func (e Ex) InSubquery(q Statement) Ex {
	return e.Binary(OpIn, SubQueryExpr{Query: q.cloneStatement()})
}

// NotInSubquery is NOT IN (q).
func (e Ex) NotInSubquery(q Statement) Ex {
	return e.Binary(OpNotIn, SubQueryExpr{Query: q.cloneStatement()})
}

// Like is LIKE. pattern is a string or a LikeExpr.
func (e Ex) Like(pattern any) Ex { return e.Binary(OpLike, likeOperand(pattern)) }

// NotLike is NOT LIKE.
func (e Ex) NotLike(pattern any) Ex { return e.Binary(OpNotLike, likeOperand(pattern)) }

// ILike is the Postgres case-insensitive LIKE.
func (e Ex) ILike(pattern any) Ex { return e.Binary(OpILike, likeOperand(pattern)) }

// NotILike is NOT ILIKE.
func (e Ex) NotILike(pattern any) Ex { return e.Binary(OpNotILike, likeOperand(pattern)) }

func likeOperand(p any) any {
	if s, ok := p.(string); ok {
		return LikeExpr{Pattern: s}
	}
	return p
}

// Add is +.
func (e Ex) Add(x any) Ex { return e.Binary(OpAdd, x) }

// Sub is -.
func (e Ex) Sub(x any) Ex { return e.Binary(OpSub, x) }

// Mul is *.
func (e Ex) Mul(x any) Ex { return e.Binary(OpMul, x) }

// Div is /.
func (e Ex) Div(x any) Ex { return e.Binary(OpDiv, x) }

// Mod is %.
func (e Ex) Mod(x any) Ex { return e.Binary(OpMod, x) }

// BitAnd is &.
func (e Ex) BitAnd(x any) Ex { return e.Binary(OpBitAnd, x) }

// BitOr is |.
func (e Ex) BitOr(x any) Ex { return e.Binary(OpBitOr, x) }

// LShift is <<.
func (e Ex) LShift(x any) Ex { return e.Binary(OpLShift, x) }

// RShift is >>.
func (e Ex) RShift(x any) Ex { return e.Binary(OpRShift, x) }

// And is AND.
func (e Ex) And(x any) Ex { return e.Binary(OpAnd, x) }

// Or is OR.
func (e Ex) Or(x any) Ex { return e.Binary(OpOr, x) }

// Not is NOT e.
func (e Ex) Not() Ex { return Ex{UnaryExpr{Op: OpNot, Expr: e.Expr}} }

// Neg is -e.
func (e Ex) Neg() Ex { return Ex{UnaryExpr{Op: OpNeg, Expr: e.Expr}} }

// Matches is the Postgres full text match @@.
func (e Ex) Matches(x any) Ex { return e.Binary(OpMatches, x) }

// Contains is the Postgres @>.
func (e Ex) Contains(x any) Ex { return e.Binary(OpContains, x) }

// Contained is the Postgres <@.
func (e Ex) Contained(x any) Ex { return e.Binary(OpContained, x) }

// Concat is ||.
func (e Ex) Concat(x any) Ex { return e.Binary(OpConcat, x) }

// GetJSONField is ->.
func (e Ex) GetJSONField(x any) Ex { return e.Binary(OpGetJSONField, x) }

// CastJSONField is ->>.
func (e Ex) CastJSONField(x any) Ex { return e.Binary(OpCastJSONField, x) }

// CastAs is CAST(e AS typ).
func (e Ex) CastAs(typ iden.Iden) Ex { return Ex{CastAs(e.Expr, typ)} }

// AsEnum casts e to the enum type in dialects that have user-defined enums.
func (e Ex) AsEnum(typ iden.Iden) Ex { return Ex{AsEnumExpr{Type: iden.Of(typ), Expr: e.Expr}} }

// Max is MAX(e).
func (e Ex) Max() Ex { return Ex{Call(FuncMax, e.Expr)} }

// Min is MIN(e).
func (e Ex) Min() Ex { return Ex{Call(FuncMin, e.Expr)} }

// Sum is SUM(e).
func (e Ex) Sum() Ex { return Ex{Call(FuncSum, e.Expr)} }

// Avg is AVG(e).
func (e Ex) Avg() Ex { return Ex{Call(FuncAvg, e.Expr)} }

// Count is COUNT(e).
func (e Ex) Count() Ex { return Ex{Call(FuncCount, e.Expr)} }

// CountDistinct is COUNT(DISTINCT e).
func (e Ex) CountDistinct() Ex {
	return Ex{FuncCall{Func: FuncCount, Args: []Expr{e.Expr}, Distinct: []bool{true}}}
}

// IfNull is IFNULL(e, x), spelled per dialect.
func (e Ex) IfNull(x any) Ex { return Ex{Call(FuncIfNull, e.Expr, x)} }
