package query

// CaseWhen is one WHEN ... THEN ... arm.
type CaseWhen struct {
	Cond Expr
	Then Expr
}

// CaseExpr is CASE WHEN ... THEN ... [ELSE ...] END.
type CaseExpr struct {
	Whens []CaseWhen
	Else  Expr
}

// Case starts a CASE expression.
func Case() *CaseExpr { return &CaseExpr{} }

// When appends an arm.
func (c *CaseExpr) When(cond, then any) *CaseExpr {
	c.Whens = append(c.Whens, CaseWhen{Cond: IntoExpr(cond), Then: IntoExpr(then)})
	return c
}

// Finally sets the ELSE result.
func (c *CaseExpr) Finally(x any) *CaseExpr {
	c.Else = IntoExpr(x)
	return c
}

// Ex returns the expression with operator methods.
func (c *CaseExpr) Ex() Ex { return Ex{c} }
