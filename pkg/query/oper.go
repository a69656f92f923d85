package query

// BinOper is a binary operator. The value is its SQL spelling, so custom
// operators are just BinOper("...").
type BinOper string

// Standard binary operators.
const (
	OpAnd        BinOper = "AND"
	OpOr         BinOper = "OR"
	OpLike       BinOper = "LIKE"
	OpNotLike    BinOper = "NOT LIKE"
	OpIs         BinOper = "IS"
	OpIsNot      BinOper = "IS NOT"
	OpIn         BinOper = "IN"
	OpNotIn      BinOper = "NOT IN"
	OpBetween    BinOper = "BETWEEN"
	OpNotBetween BinOper = "NOT BETWEEN"
	OpEqual      BinOper = "="
	OpNotEqual   BinOper = "<>"
	OpLt         BinOper = "<"
	OpGt         BinOper = ">"
	OpLte        BinOper = "<="
	OpGte        BinOper = ">="
	OpAdd        BinOper = "+"
	OpSub        BinOper = "-"
	OpMul        BinOper = "*"
	OpDiv        BinOper = "/"
	OpMod        BinOper = "%"
	OpBitAnd     BinOper = "&"
	OpBitOr      BinOper = "|"
	OpLShift     BinOper = "<<"
	OpRShift     BinOper = ">>"
	OpAs         BinOper = "AS"
	OpEscape     BinOper = "ESCAPE"
)

// Postgres operators.
const (
	OpILike                        BinOper = "ILIKE"
	OpNotILike                     BinOper = "NOT ILIKE"
	OpMatches                      BinOper = "@@"
	OpContains                     BinOper = "@>"
	OpContained                    BinOper = "<@"
	OpConcat                       BinOper = "||"
	OpOverlap                      BinOper = "&&"
	OpSimilarity                   BinOper = "%"
	OpWordSimilarity               BinOper = "<%"
	OpStrictWordSimilarity         BinOper = "<<%"
	OpSimilarityDistance           BinOper = "<->"
	OpWordSimilarityDistance       BinOper = "<<->"
	OpStrictWordSimilarityDistance BinOper = "<<<->"
	OpGetJSONField                 BinOper = "->"
	OpCastJSONField                BinOper = "->>"
	OpRegex                        BinOper = "~"
	OpIRegex                       BinOper = "~*"
	OpNotRegex                     BinOper = "!~"
	OpNotIRegex                    BinOper = "!~*"
)

// SQLite operators.
const (
	OpGlob  BinOper = "GLOB"
	OpMatch BinOper = "MATCH"
)

// IsLogical reports AND and OR.
func (o BinOper) IsLogical() bool { return o == OpAnd || o == OpOr }

// IsArithmetic reports + - * / %.
func (o BinOper) IsArithmetic() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return true
	}
	return false
}

// IsShift reports << and >>.
func (o BinOper) IsShift() bool { return o == OpLShift || o == OpRShift }

// IsComparison reports = <> < > <= >=.
func (o BinOper) IsComparison() bool {
	switch o {
	case OpEqual, OpNotEqual, OpLt, OpGt, OpLte, OpGte:
		return true
	}
	return false
}

// IsBetween reports BETWEEN and NOT BETWEEN.
func (o BinOper) IsBetween() bool { return o == OpBetween || o == OpNotBetween }

// IsIn reports IN and NOT IN.
func (o BinOper) IsIn() bool { return o == OpIn || o == OpNotIn }

// IsLike reports the pattern operators.
func (o BinOper) IsLike() bool {
	switch o {
	case OpLike, OpNotLike, OpILike, OpNotILike:
		return true
	}
	return false
}

// IsIs reports IS and IS NOT.
func (o BinOper) IsIs() bool { return o == OpIs || o == OpIsNot }

// LeftAssociative reports operators whose left operand never needs
// parentheses when it uses the same operator.
func (o BinOper) LeftAssociative() bool {
	switch o {
	case OpAnd, OpOr, OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// UnOper is a unary operator.
type UnOper string

// Unary operators.
const (
	OpNot UnOper = "NOT"
	OpNeg UnOper = "-"
)

// SubQueryOper prefixes a sub-query.
type SubQueryOper string

// Sub-query operators. The zero value is a bare sub-query.
const (
	SubQueryExists    SubQueryOper = "EXISTS"
	SubQueryNotExists SubQueryOper = "NOT EXISTS"
	SubQueryAny       SubQueryOper = "ANY"
	SubQuerySome      SubQueryOper = "SOME"
	SubQueryAll       SubQueryOper = "ALL"
)
