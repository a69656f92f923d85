package query

import "github.com/leapstack-labs/querykit/pkg/value"

// ConditionKind tags a Condition as a conjunction or a disjunction.
type ConditionKind uint8

const (
	// CondAll joins items with AND. The empty All is TRUE.
	CondAll ConditionKind = iota
	// CondAny joins items with OR. The empty Any is FALSE.
	CondAny
)

// Condition is an n-ary AND/OR node with an overall negation flag.
type Condition struct {
	Kind    ConditionKind
	Negated bool
	Items   []Expr
}

// All builds a conjunction.
func All(items ...any) *Condition {
	c := &Condition{Kind: CondAll}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Any builds a disjunction.
func Any(items ...any) *Condition {
	c := &Condition{Kind: CondAny}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Add appends an item. A nested condition with a single item and no
// negation is replaced by that item.
func (c *Condition) Add(x any) *Condition {
	e := IntoExpr(x)
	if nested, ok := e.(*Condition); ok && len(nested.Items) == 1 && !nested.Negated {
		e = nested.Items[0]
	}
	c.Items = append(c.Items, e)
	return c
}

// AddIf appends x only when ok is true.
func (c *Condition) AddIf(ok bool, x any) *Condition {
	if ok {
		c.Add(x)
	}
	return c
}

// Not toggles negation.
func (c *Condition) Not() *Condition {
	c.Negated = !c.Negated
	return c
}

// Len returns the number of items.
func (c *Condition) Len() int { return len(c.Items) }

// IsEmpty reports whether the condition has no items.
func (c *Condition) IsEmpty() bool { return len(c.Items) == 0 }

// Clone returns a copy that can be extended without touching c.
func (c *Condition) Clone() *Condition {
	if c == nil {
		return nil
	}
	out := *c
	out.Items = append([]Expr(nil), c.Items...)
	return &out
}

// ToExpr folds the condition into a left-deep chain of AND/OR binary
// expressions. The empty All is TRUE, the empty Any is FALSE.
func (c *Condition) ToExpr() Expr {
	op := OpAnd
	if c.Kind == CondAny {
		op = OpOr
	}
	var out Expr
	for _, it := range c.Items {
		e := Unwrap(it)
		if out == nil {
			out = e
			continue
		}
		out = BinaryExpr{Left: out, Op: op, Right: e}
	}
	if out == nil {
		out = ConstantExpr{Value: value.Bool(c.Kind == CondAll)}
	}
	if c.Negated {
		return UnaryExpr{Op: OpNot, Expr: out}
	}
	return out
}

// ConditionHolder is the WHERE or HAVING slot of a statement. The zero
// value is empty and renders nothing.
type ConditionHolder struct {
	cond *Condition
}

// IsEmpty reports whether nothing was added.
func (h *ConditionHolder) IsEmpty() bool { return h.cond == nil }

// Condition returns the accumulated condition, or nil.
func (h *ConditionHolder) Condition() *Condition { return h.cond }

// And adds x with AND semantics.
func (h *ConditionHolder) And(x any) {
	switch {
	case h.cond == nil:
		h.cond = All(x)
	case h.cond.Kind == CondAll && !h.cond.Negated:
		h.cond.Add(x)
	default:
		h.cond = All(h.cond, x)
	}
}

// Or adds x with OR semantics: the existing condition becomes the left
// operand.
func (h *ConditionHolder) Or(x any) {
	switch {
	case h.cond == nil:
		h.cond = Any(x)
	case h.cond.Kind == CondAny && !h.cond.Negated:
		h.cond.Add(x)
	default:
		h.cond = Any(h.cond, x)
	}
}

// Merge adds a whole condition. Two plain conjunctions are flattened;
// anything else is nested under a conjunction.
func (h *ConditionHolder) Merge(c *Condition) {
	c = c.Clone()
	switch {
	case c == nil:
	case h.cond == nil:
		h.cond = c
	case h.cond.Kind == CondAll && !h.cond.Negated:
		if c.Kind == CondAll && !c.Negated {
			h.cond.Items = append(h.cond.Items, c.Items...)
			return
		}
		h.cond.Add(c)
	default:
		h.cond = All(h.cond, c)
	}
}

func (h ConditionHolder) clone() ConditionHolder {
	return ConditionHolder{cond: h.cond.Clone()}
}
