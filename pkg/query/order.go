package query

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// Order is a sort direction.
type Order uint8

// Sort directions.
const (
	Asc Order = iota
	Desc
)

// NullOrdering places NULLs first or last.
type NullOrdering uint8

// Null orderings.
const (
	NullsDefault NullOrdering = iota
	NullsFirst
	NullsLast
)

// OrderExpr is one ORDER BY item. When Field is set the item sorts by the
// position of Expr in Field, i.e. MySQL's FIELD(expr, ...).
type OrderExpr struct {
	Expr  Expr
	Order Order
	Nulls NullOrdering
	Field value.Values
}

// WindowStatement is a window specification.
type WindowStatement struct {
	PartitionBy []Expr
	OrderBy     []OrderExpr
	Frame       *Frame
}

// Window starts an empty window specification.
func Window() *WindowStatement { return &WindowStatement{} }

// Partition appends PARTITION BY expressions.
func (w *WindowStatement) Partition(xs ...any) *WindowStatement {
	w.PartitionBy = append(w.PartitionBy, intoExprs(xs)...)
	return w
}

// Order appends an ORDER BY item.
func (w *WindowStatement) Order(x any, o Order) *WindowStatement {
	w.OrderBy = append(w.OrderBy, OrderExpr{Expr: IntoExpr(x), Order: o})
	return w
}

// Rows sets a ROWS frame. end may be nil for a single-bound frame.
func (w *WindowStatement) Rows(start FrameBound, end *FrameBound) *WindowStatement {
	w.Frame = &Frame{Type: FrameRows, Start: start, End: end}
	return w
}

// Range sets a RANGE frame.
func (w *WindowStatement) Range(start FrameBound, end *FrameBound) *WindowStatement {
	w.Frame = &Frame{Type: FrameRange, Start: start, End: end}
	return w
}

// FrameType is ROWS or RANGE.
type FrameType string

// Frame types.
const (
	FrameRows  FrameType = "ROWS"
	FrameRange FrameType = "RANGE"
)

// Frame is a window frame clause.
type Frame struct {
	Type  FrameType
	Start FrameBound
	End   *FrameBound
}

// FrameBoundKind is the shape of a frame bound.
type FrameBoundKind uint8

// Frame bound kinds.
const (
	UnboundedPreceding FrameBoundKind = iota
	Preceding
	CurrentRow
	Following
	UnboundedFollowing
)

// FrameBound is one end of a frame. N is used by Preceding and Following.
type FrameBound struct {
	Kind FrameBoundKind
	N    uint32
}

// WindowRef attaches a window to a select item, by name or inline.
type WindowRef struct {
	Name iden.Dyn
	Spec *WindowStatement
}

// NamedWindow is a WINDOW name AS (...) definition.
type NamedWindow struct {
	Name iden.Dyn
	Spec *WindowStatement
}
