package dialect

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/value"
)

func (r *renderer) insert(s *query.InsertStatement) {
	if err := s.Err(); err != nil {
		r.w.Fail(err)
		return
	}
	if s.Target == nil {
		r.failf("insert without target table")
		return
	}
	replaceOn := s.Conflict != nil && r.cfg.Upsert == UpsertReplaceOn
	switch {
	case s.ReplaceMode || replaceOn:
		if r.cfg.Replace == "" {
			r.unsupported("REPLACE")
			return
		}
		r.write(r.cfg.Replace)
	default:
		r.write("INSERT")
	}
	r.write(" INTO ")
	r.tableRef(s.Target)
	if len(s.ColumnList) > 0 {
		r.write(" (")
		r.idens(s.ColumnList)
		r.write(")")
	}
	if replaceOn {
		r.replaceOn(s.Conflict)
	}
	r.output(s.ReturningClause, "INSERTED")

	switch src := s.Source.(type) {
	case nil:
		r.defaultValues(len(s.ColumnList), 1)
	case query.DefaultValuesSource:
		r.defaultValues(len(s.ColumnList), src.Rows)
	case *query.RowsSource:
		r.write(" VALUES ")
		r.w.List(len(src.Rows), ", ", func(i int) {
			r.write("(")
			r.exprs(src.Rows[i])
			r.write(")")
		})
	case query.SelectSource:
		r.write(" ")
		r.selectStatement(src.Query)
	}

	if s.Conflict != nil && !replaceOn {
		r.onConflict(s)
	}
	r.returning(s.ReturningClause)
}

func (r *renderer) defaultValues(cols, rows int) {
	if rows < 1 {
		rows = 1
	}
	switch r.cfg.DefaultValues {
	case DefaultValuesRow:
		if cols < 1 {
			cols = 1
		}
		r.write(" VALUES ")
		r.w.List(rows, ", ", func(int) {
			r.write("(")
			r.w.List(cols, ", ", func(int) { r.write("DEFAULT") })
			r.write(")")
		})
	case DefaultValuesEmpty:
		r.write(" VALUES ")
		r.w.List(rows, ", ", func(int) { r.write("()") })
	case DefaultValuesKeyword:
		if rows > 1 {
			r.unsupported("multiple rows of DEFAULT VALUES")
			return
		}
		r.write(" DEFAULT VALUES")
	default:
		r.unsupported("inserting default values")
	}
}

// conflictTargets writes the columns or expressions of an ON CONFLICT
// target. Expressions other than columns and calls get parentheses.
func (r *renderer) conflictTargets(targets []query.Expr) {
	r.write(" (")
	r.w.List(len(targets), ", ", func(i int) {
		e := query.Unwrap(targets[i])
		switch e.(type) {
		case query.ColumnExpr, query.FuncCall:
			r.expr(e)
		default:
			r.write("(")
			r.expr(e)
			r.write(")")
		}
	})
	r.write(")")
}

func (r *renderer) replaceOn(oc *query.OnConflict) {
	if len(oc.Targets) == 0 {
		r.failf("REPLACE ... ON needs conflict columns")
		return
	}
	if _, ok := oc.Action.(query.DoNothingAction); ok {
		r.unsupported("ON CONFLICT DO NOTHING")
		return
	}
	r.write(" ON")
	r.conflictTargets(oc.Targets)
}

func (r *renderer) onConflict(s *query.InsertStatement) {
	oc := s.Conflict
	switch r.cfg.Upsert {
	case UpsertOnConflict:
		r.write(" ON CONFLICT")
		switch {
		case !oc.Constraint.IsZero():
			r.write(" ON CONSTRAINT ")
			r.iden(oc.Constraint)
		case len(oc.Targets) > 0:
			r.conflictTargets(oc.Targets)
		}
		if !oc.TargetWhere.IsEmpty() {
			r.write(" WHERE ")
			r.condition(oc.TargetWhere.Condition())
		}
		switch a := oc.Action.(type) {
		case *query.UpdateAction:
			r.write(" DO UPDATE SET ")
			r.w.List(len(a.Items), ", ", func(i int) {
				it := a.Items[i]
				r.iden(it.Column)
				r.write(" = ")
				if it.Expr == nil {
					r.columnRef(iden.ExcludedCol(it.Column))
					return
				}
				r.expr(it.Expr)
			})
		default:
			r.write(" DO NOTHING")
		}
		if !oc.ActionWhere.IsEmpty() {
			r.write(" WHERE ")
			r.condition(oc.ActionWhere.Condition())
		}
	case UpsertDuplicateKey:
		if !oc.ActionWhere.IsEmpty() {
			r.unsupported("WHERE on the conflict action")
			return
		}
		r.write(" ON DUPLICATE KEY UPDATE ")
		switch a := oc.Action.(type) {
		case *query.UpdateAction:
			r.w.List(len(a.Items), ", ", func(i int) {
				it := a.Items[i]
				r.iden(it.Column)
				r.write(" = ")
				if it.Expr == nil {
					r.write("VALUES(")
					r.iden(it.Column)
					r.write(")")
					return
				}
				r.expr(it.Expr)
			})
		default:
			var cols []iden.Dyn
			if d, ok := a.(query.DoNothingAction); ok {
				cols = d.On
			}
			if len(cols) == 0 && len(s.ColumnList) > 0 {
				cols = s.ColumnList[:1]
			}
			if len(cols) == 0 {
				r.failf("DO NOTHING needs a column to emulate ON DUPLICATE KEY")
				return
			}
			r.w.List(len(cols), ", ", func(i int) {
				r.iden(cols[i])
				r.write(" = ")
				r.iden(cols[i])
			})
		}
	default:
		r.unsupported("ON CONFLICT")
	}
}

// returning writes a trailing RETURNING clause.
func (r *renderer) returning(rc *query.Returning) {
	if rc == nil {
		return
	}
	switch r.cfg.Returning {
	case ReturningClause:
		r.write(" RETURNING ")
		if rc.All {
			r.write("*")
			return
		}
		r.exprs(rc.Exprs)
	case ReturningOutput:
		// written by output
	default:
		r.unsupported("RETURNING")
	}
}

// output writes SQL Server's OUTPUT clause; pseudo is INSERTED or DELETED.
func (r *renderer) output(rc *query.Returning, pseudo string) {
	if rc == nil || r.cfg.Returning != ReturningOutput {
		return
	}
	r.write(" OUTPUT ")
	if rc.All {
		r.write(pseudo)
		r.write(".*")
		return
	}
	r.w.List(len(rc.Exprs), ", ", func(i int) {
		e := query.Unwrap(rc.Exprs[i])
		if c, ok := e.(query.ColumnExpr); ok && c.Ref.Kind == iden.ColumnPlain && c.Ref.Column.Table == nil {
			r.write(pseudo)
			r.write(".")
			r.iden(c.Ref.Column.Name)
			return
		}
		r.expr(e)
	})
}

func (r *renderer) update(s *query.UpdateStatement) {
	if s.Target == nil {
		r.failf("update without target table")
		return
	}
	r.write("UPDATE ")
	r.tableRef(s.Target)
	r.write(" SET ")
	r.w.List(len(s.Assignments), ", ", func(i int) {
		r.iden(s.Assignments[i].Column)
		r.write(" = ")
		r.expr(s.Assignments[i].Expr)
	})
	r.output(s.ReturningClause, "INSERTED")
	if len(s.FromList) > 0 {
		if !r.cfg.SupportsUpdateFrom {
			r.unsupported("UPDATE ... FROM")
			return
		}
		r.write(" FROM ")
		r.w.List(len(s.FromList), ", ", func(i int) { r.tableRef(s.FromList[i]) })
	}
	if !s.WhereClause.IsEmpty() {
		r.write(" WHERE ")
		r.condition(s.WhereClause.Condition())
	}
	r.orderLimit(s.OrderByList, s.LimitValue)
	r.returning(s.ReturningClause)
}

func (r *renderer) delete(s *query.DeleteStatement) {
	if s.Target == nil {
		r.failf("delete without target table")
		return
	}
	r.write("DELETE FROM ")
	r.tableRef(s.Target)
	r.output(s.ReturningClause, "DELETED")
	if !s.WhereClause.IsEmpty() {
		r.write(" WHERE ")
		r.condition(s.WhereClause.Condition())
	}
	r.orderLimit(s.OrderByList, s.LimitValue)
	r.returning(s.ReturningClause)
}

// orderLimit writes ORDER BY and LIMIT on UPDATE and DELETE.
func (r *renderer) orderLimit(order []query.OrderExpr, limit *value.Value) {
	if len(order) == 0 && limit == nil {
		return
	}
	if !r.cfg.SupportsUpdateOrderLimit {
		r.unsupported("ORDER BY and LIMIT on UPDATE or DELETE")
		return
	}
	if len(order) > 0 {
		r.write(" ORDER BY ")
		r.orderExprs(order)
	}
	if limit != nil {
		r.write(" LIMIT ")
		r.value(*limit)
	}
}

func (r *renderer) withQuery(q *query.WithQuery) {
	if q.Clause == nil || len(q.Clause.CTEs) == 0 {
		r.failf("WITH without common table expressions")
		return
	}
	if q.Query == nil {
		r.failf("WITH without a query")
		return
	}
	r.withClause(q.Clause)
	r.write(" ")
	r.statement(q.Query)
}

func (r *renderer) withClause(w *query.WithClause) {
	r.write("WITH ")
	if w.IsRecursive && r.cfg.Recursive != "" {
		r.write(r.cfg.Recursive)
		r.write(" ")
	}
	r.w.List(len(w.CTEs), ", ", func(i int) { r.cte(w.CTEs[i]) })
	if w.SearchClause == nil && w.CycleClause == nil {
		return
	}
	if !r.cfg.SupportsCTESearchCycle {
		r.unsupported("SEARCH and CYCLE")
		return
	}
	if sc := w.SearchClause; sc != nil {
		r.write(" SEARCH ")
		r.write(string(sc.Order))
		r.write(" FIRST BY ")
		r.expr(sc.By)
		r.write(" SET ")
		r.iden(sc.Set)
	}
	if cc := w.CycleClause; cc != nil {
		r.write(" CYCLE ")
		r.expr(cc.Expr)
		r.write(" SET ")
		r.iden(cc.Set)
		r.write(" USING ")
		r.iden(cc.Using)
	}
}

func (r *renderer) cte(c *query.CommonTableExpression) {
	r.iden(c.Name)
	if len(c.Columns) > 0 {
		r.write(" (")
		r.idens(c.Columns)
		r.write(")")
	}
	r.write(" AS ")
	if c.Materialized != nil {
		if !r.cfg.SupportsMaterializedCTE {
			r.unsupported("MATERIALIZED common table expressions")
			return
		}
		if !*c.Materialized {
			r.write("NOT ")
		}
		r.write("MATERIALIZED ")
	}
	r.write("(")
	r.statement(c.Query)
	r.write(")")
}
