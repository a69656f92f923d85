package query

import "github.com/leapstack-labs/querykit/pkg/iden"

// Function names a SQL function. Dialects may respell the portable ones
// (FuncIfNull, FuncCharLength, FuncRandom); anything else is written as is.
type Function string

// Portable functions.
const (
	FuncMax        Function = "MAX"
	FuncMin        Function = "MIN"
	FuncSum        Function = "SUM"
	FuncAvg        Function = "AVG"
	FuncAbs        Function = "ABS"
	FuncCount      Function = "COUNT"
	FuncIfNull     Function = "IFNULL"
	FuncCoalesce   Function = "COALESCE"
	FuncLower      Function = "LOWER"
	FuncUpper      Function = "UPPER"
	FuncBitAnd     Function = "BIT_AND"
	FuncBitOr      Function = "BIT_OR"
	FuncCharLength Function = "CHAR_LENGTH"
	FuncRandom     Function = "RANDOM"
	FuncRound      Function = "ROUND"
	FuncMd5        Function = "MD5"
	FuncCast       Function = "CAST"
)

// Postgres functions.
const (
	FuncToTsquery          Function = "TO_TSQUERY"
	FuncToTsvector         Function = "TO_TSVECTOR"
	FuncPhrasetoTsquery    Function = "PHRASETO_TSQUERY"
	FuncPlaintoTsquery     Function = "PLAINTO_TSQUERY"
	FuncWebsearchToTsquery Function = "WEBSEARCH_TO_TSQUERY"
	FuncTsRank             Function = "TS_RANK"
	FuncTsRankCd           Function = "TS_RANK_CD"
	FuncStartsWith         Function = "STARTS_WITH"
	FuncGenRandomUUID      Function = "GEN_RANDOM_UUID"
	FuncAny                Function = "ANY"
	FuncSome               Function = "SOME"
	FuncAll                Function = "ALL"
	FuncArrayAgg           Function = "ARRAY_AGG"
)

// CustomFunc names a user function by identifier. The spelling is written
// unquoted.
func CustomFunc(name iden.Iden) Function {
	return Function(name.Unquoted())
}

// Call builds a function call. Arguments accept anything IntoExpr accepts.
func Call(f Function, args ...any) FuncCall {
	return FuncCall{Func: f, Args: intoExprs(args)}
}

// Arg appends an argument.
func (c FuncCall) Arg(x any) FuncCall {
	c.Args = append(append([]Expr(nil), c.Args...), IntoExpr(x))
	if c.Distinct != nil {
		c.Distinct = append(append([]bool(nil), c.Distinct...), false)
	}
	return c
}

// DistinctArg appends an argument written as DISTINCT arg.
func (c FuncCall) DistinctArg(x any) FuncCall {
	if c.Distinct == nil {
		c.Distinct = make([]bool, len(c.Args))
	} else {
		c.Distinct = append([]bool(nil), c.Distinct...)
	}
	c.Args = append(append([]Expr(nil), c.Args...), IntoExpr(x))
	c.Distinct = append(c.Distinct, true)
	return c
}

// IsDistinct reports whether argument i is DISTINCT.
func (c FuncCall) IsDistinct(i int) bool {
	return i < len(c.Distinct) && c.Distinct[i]
}

// Ex returns the call with operator methods.
func (c FuncCall) Ex() Ex { return Ex{c} }

// CastAs builds CAST(e AS typ). The type is written unquoted.
func CastAs(e any, typ iden.Iden) FuncCall {
	return FuncCall{
		Func: FuncCast,
		Args: []Expr{BinaryExpr{Left: IntoExpr(e), Op: OpAs, Right: CustomExpr(typ.Unquoted())}},
	}
}

// Coalesce is COALESCE(args...).
func Coalesce(args ...any) FuncCall { return Call(FuncCoalesce, args...) }

// Lower is LOWER(x).
func Lower(x any) FuncCall { return Call(FuncLower, x) }

// Upper is UPPER(x).
func Upper(x any) FuncCall { return Call(FuncUpper, x) }

// Random is RANDOM(), spelled per dialect.
func Random() FuncCall { return Call(FuncRandom) }

// CharLength is CHAR_LENGTH(x), spelled per dialect.
func CharLength(x any) FuncCall { return Call(FuncCharLength, x) }

// Round is ROUND(x) or ROUND(x, digits).
func Round(x any, digits ...any) FuncCall {
	return Call(FuncRound, append([]any{x}, digits...)...)
}
