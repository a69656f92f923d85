package value

import "strings"

// RangeType is a Postgres range type.
type RangeType uint8

// Range types.
const (
	Int4Range RangeType = iota + 1
	Int8Range
	NumRange
	TsRange
	TstzRange
	DateRange
)

var rangeTypeNames = map[RangeType]string{
	Int4Range: "int4range",
	Int8Range: "int8range",
	NumRange:  "numrange",
	TsRange:   "tsrange",
	TstzRange: "tstzrange",
	DateRange: "daterange",
}

// String returns the SQL type name.
func (t RangeType) String() string { return rangeTypeNames[t] }

// Bound is one side of a range. A bound with an invalid Value is unbounded.
type Bound struct {
	Value     Value
	Inclusive bool
}

// Unbounded reports whether the bound is open-ended.
func (b Bound) Unbounded() bool { return !b.Value.IsValid() || b.Value.IsNull() }

// Inclusive builds an inclusive bound.
func Inclusive(v Value) Bound { return Bound{Value: v, Inclusive: true} }

// Exclusive builds an exclusive bound.
func Exclusive(v Value) Bound { return Bound{Value: v} }

// Unbounded is the open bound.
var Unbounded = Bound{}

// Range is the payload of a Range value.
type Range struct {
	Type  RangeType
	Lower Bound
	Upper Bound
	Empty bool
}

// NewRange builds a range value.
func NewRange(t RangeType, lower, upper Bound) Value {
	return Value{kind: KindRange, ext: &Range{Type: t, Lower: lower, Upper: upper}}
}

// EmptyRange builds the empty range of a type.
func EmptyRange(t RangeType) Value {
	return Value{kind: KindRange, ext: &Range{Type: t, Empty: true}}
}

// Range returns the payload of a Range value.
func (v Value) Range() (*Range, error) {
	if err := v.expect(KindRange); err != nil {
		return nil, err
	}
	return v.ext.(*Range), nil
}

// Text renders the range literal body, e.g. [1,10). Bound values are
// rendered by the supplied formatter.
func (r *Range) Text(format func(Value) string) string {
	if r.Empty {
		return "empty"
	}
	var b strings.Builder
	if r.Lower.Inclusive && !r.Lower.Unbounded() {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if !r.Lower.Unbounded() {
		b.WriteString(format(r.Lower.Value))
	}
	b.WriteByte(',')
	if !r.Upper.Unbounded() {
		b.WriteString(format(r.Upper.Value))
	}
	if r.Upper.Inclusive && !r.Upper.Unbounded() {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
