package query

// Returning is a RETURNING clause. All renders RETURNING *.
type Returning struct {
	All   bool
	Exprs []Expr
}

// ReturningAll returns RETURNING *.
func ReturningAll() *Returning { return &Returning{All: true} }

// ReturningExprs returns RETURNING with the given columns or expressions.
func ReturningExprs(xs ...any) *Returning { return &Returning{Exprs: intoExprs(xs)} }
