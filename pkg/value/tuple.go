package value

// Tuple is a flat row of values used by row-value predicates such as
// (a, b) IN ((1, 2), (3, 4)).
type Tuple []Value

// TupleOf converts host values with From.
func TupleOf(xs ...any) Tuple {
	out := make(Tuple, len(xs))
	for i, x := range xs {
		out[i] = From(x)
	}
	return out
}

// Arity returns the number of values.
func (t Tuple) Arity() int { return len(t) }

// Equal reports element-wise equality.
func (t Tuple) Equal(o Tuple) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !t[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Any returns the host form of each value, in order.
func (vs Values) Any() []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v.Interface()
	}
	return out
}

// Equal reports element-wise equality.
func (vs Values) Equal(o Values) bool {
	return Tuple(vs).Equal(Tuple(o))
}
