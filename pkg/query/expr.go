package query

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// Expr is a node of the expression tree. The set of implementations is
// closed; renderers switch over the concrete types below.
type Expr interface {
	exprNode()
}

// ColumnExpr is a column reference.
type ColumnExpr struct {
	Ref iden.ColumnRef
}

// TupleExpr is a parenthesised list: (a, b, c).
type TupleExpr []Expr

// UnaryExpr applies a prefix operator.
type UnaryExpr struct {
	Op   UnOper
	Expr Expr
}

// BinaryExpr applies an infix operator. BETWEEN stores its bounds as a
// BinaryExpr with OpAnd on the right.
type BinaryExpr struct {
	Left  Expr
	Op    BinOper
	Right Expr
}

// FuncCall calls a function.
type FuncCall struct {
	Func Function
	Args []Expr
	// Distinct marks arguments written as DISTINCT arg. It is either nil or
	// as long as Args.
	Distinct []bool
}

// SubQueryExpr embeds a statement, optionally behind an operator such as
// EXISTS.
type SubQueryExpr struct {
	Op    SubQueryOper
	Query Statement
}

// ValueExpr is a bindable value.
type ValueExpr struct {
	Value value.Value
}

// ValuesExpr is a parenthesised list of bindable values.
type ValuesExpr []value.Value

// CustomExpr is raw SQL emitted verbatim.
type CustomExpr string

// CustomWithExpr is raw SQL with placeholders substituted by rendered
// arguments: $1, $2 (or ? in sequential dialects), $$ for a literal $.
type CustomWithExpr struct {
	Template string
	Args     []Expr
}

// Keyword is a bare SQL keyword such as CURRENT_TIMESTAMP.
type Keyword string

// Keywords.
const (
	KwNull             Keyword = "NULL"
	KwCurrentDate      Keyword = "CURRENT_DATE"
	KwCurrentTime      Keyword = "CURRENT_TIME"
	KwCurrentTimestamp Keyword = "CURRENT_TIMESTAMP"
	KwDefault          Keyword = "DEFAULT"
)

// AsEnumExpr casts an expression to a user-defined enum type in dialects
// that have them.
type AsEnumExpr struct {
	Type iden.Dyn
	Expr Expr
}

// ConstantExpr is a value that is always written inline, even by
// parameterised writers.
type ConstantExpr struct {
	Value value.Value
}

// TypeNameExpr is a reference to a type, e.g. the target of a cast.
type TypeNameExpr struct {
	Type iden.TypeRef
}

// LikeExpr is the right side of LIKE: a pattern and an optional escape
// character.
type LikeExpr struct {
	Pattern   string
	Escape    rune
	HasEscape bool
}

// Like builds a pattern without escape character.
func Like(pattern string) LikeExpr {
	return LikeExpr{Pattern: pattern}
}

// WithEscape sets the escape character.
func (l LikeExpr) WithEscape(c rune) LikeExpr {
	l.Escape = c
	l.HasEscape = true
	return l
}

func (ColumnExpr) exprNode()     {}
func (TupleExpr) exprNode()      {}
func (UnaryExpr) exprNode()      {}
func (BinaryExpr) exprNode()     {}
func (FuncCall) exprNode()       {}
func (SubQueryExpr) exprNode()   {}
func (ValueExpr) exprNode()      {}
func (ValuesExpr) exprNode()     {}
func (CustomExpr) exprNode()     {}
func (CustomWithExpr) exprNode() {}
func (Keyword) exprNode()        {}
func (AsEnumExpr) exprNode()     {}
func (ConstantExpr) exprNode()   {}
func (TypeNameExpr) exprNode()   {}
func (LikeExpr) exprNode()       {}
func (*CaseExpr) exprNode()      {}
func (*Condition) exprNode()     {}

// Unwrap strips Ex wrappers and turns conditions into their expression
// form, returning one of the concrete node types.
func Unwrap(e Expr) Expr {
	for {
		switch t := e.(type) {
		case Ex:
			e = t.Expr
		case *Ex:
			if t == nil {
				return nil
			}
			e = t.Expr
		case *Condition:
			return t.ToExpr()
		default:
			return e
		}
	}
}

// IntoExpr converts builder arguments into expressions:
//
//   - an Expr (including Ex and *Condition) is used as is,
//   - an iden.ColumnRef or iden.Iden becomes a column,
//   - a Statement becomes a sub-query,
//   - nil becomes NULL,
//   - anything else goes through value.From.
func IntoExpr(x any) Expr {
	switch t := x.(type) {
	case nil:
		return KwNull
	case Ex:
		return t.Expr
	case Expr:
		return t
	case iden.ColumnRef:
		return ColumnExpr{Ref: t}
	case iden.Iden:
		return ColumnExpr{Ref: iden.Col(t)}
	case Statement:
		return SubQueryExpr{Query: t.cloneStatement()}
	case value.Tuple:
		out := make(TupleExpr, len(t))
		for i, v := range t {
			out[i] = ValueExpr{Value: v}
		}
		return out
	default:
		return ValueExpr{Value: value.From(x)}
	}
}

func intoExprs(xs []any) []Expr {
	out := make([]Expr, len(xs))
	for i, x := range xs {
		out[i] = IntoExpr(x)
	}
	return out
}
