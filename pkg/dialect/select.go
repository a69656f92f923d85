package dialect

import (
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/value"
)

func (r *renderer) statement(s query.Statement) {
	switch t := s.(type) {
	case *query.SelectStatement:
		r.selectStatement(t)
	case *query.InsertStatement:
		r.insert(t)
	case *query.UpdateStatement:
		r.update(t)
	case *query.DeleteStatement:
		r.delete(t)
	case *query.WithQuery:
		r.withQuery(t)
	case *query.ExplainStatement:
		r.explain(t)
	default:
		r.failf("unknown statement %T", s)
	}
}

func (r *renderer) selectStatement(s *query.SelectStatement) {
	r.write("SELECT ")
	if s.DistinctClause != nil {
		r.distinct(s.DistinctClause)
	}
	r.w.List(len(s.SelectList), ", ", func(i int) { r.selectExpr(s.SelectList[i]) })

	if len(s.FromList) > 0 {
		r.write(" FROM ")
		r.w.List(len(s.FromList), ", ", func(i int) { r.tableRef(s.FromList[i]) })
		r.indexHints(s.IndexHints)
	}
	for _, j := range s.JoinList {
		r.join(j)
	}
	if !s.WhereClause.IsEmpty() {
		r.write(" WHERE ")
		r.condition(s.WhereClause.Condition())
	}
	if len(s.GroupByList) > 0 {
		r.write(" GROUP BY ")
		r.exprs(s.GroupByList)
	}
	if !s.HavingClause.IsEmpty() {
		r.write(" HAVING ")
		r.condition(s.HavingClause.Condition())
	}
	if len(s.Windows) > 0 {
		r.write(" WINDOW ")
		r.w.List(len(s.Windows), ", ", func(i int) {
			r.iden(s.Windows[i].Name)
			r.write(" AS (")
			r.window(s.Windows[i].Spec)
			r.write(")")
		})
	}
	for _, arm := range s.UnionList {
		r.write(" ")
		r.write(r.cfg.SetOperator(arm.Kind))
		r.write(" ")
		if r.cfg.FlattenUnions {
			r.selectStatement(arm.Query)
			continue
		}
		r.write("(")
		r.selectStatement(arm.Query)
		r.write(")")
	}
	if len(s.OrderByList) > 0 {
		r.write(" ORDER BY ")
		r.orderExprs(s.OrderByList)
	}
	r.limitOffset(s.LimitValue, s.OffsetValue)
	if s.LockClause != nil {
		r.lock(s.LockClause)
	}
}

func (r *renderer) distinct(d *query.SelectDistinct) {
	switch d.Kind {
	case query.DistinctAll:
		r.write("ALL ")
	case query.DistinctPlain:
		r.write("DISTINCT ")
	case query.DistinctRow:
		if !r.cfg.SupportsDistinctRow {
			r.unsupported("DISTINCTROW")
			return
		}
		r.write("DISTINCTROW ")
	case query.DistinctOn:
		if !r.cfg.SupportsDistinctOn {
			r.unsupported("DISTINCT ON")
			return
		}
		r.write("DISTINCT ON (")
		r.exprs(d.On)
		r.write(") ")
	}
}

func (r *renderer) selectExpr(se query.SelectExpr) {
	r.expr(se.Expr)
	if se.Window != nil {
		r.write(" OVER ")
		if se.Window.Spec != nil {
			r.write("(")
			r.window(se.Window.Spec)
			r.write(")")
		} else {
			r.iden(se.Window.Name)
		}
	}
	if !se.Alias.IsZero() {
		r.write(" AS ")
		r.iden(se.Alias)
	}
}

func (r *renderer) indexHints(hints []query.IndexHint) {
	if !r.cfg.SupportsIndexHints {
		return
	}
	for _, h := range hints {
		r.write(" ")
		r.write(string(h.Type))
		r.write(" INDEX ")
		if h.Scope != "" {
			r.write("FOR ")
			r.write(string(h.Scope))
			r.write(" ")
		}
		r.write("(")
		r.iden(h.Index)
		r.write(")")
	}
}

func (r *renderer) join(j query.JoinExpr) {
	r.write(" ")
	r.write(string(j.Type))
	r.write(" ")
	if j.Lateral {
		if !r.cfg.SupportsLateral {
			r.unsupported("LATERAL joins")
			return
		}
		r.write("LATERAL ")
	}
	r.tableRef(j.Table)
	switch {
	case j.On != nil:
		r.write(" ON ")
		r.condition(j.On)
	case len(j.Using) > 0:
		r.write(" USING (")
		r.idens(j.Using)
		r.write(")")
	}
}

func (r *renderer) limitOffset(limit, offset *value.Value) {
	if r.cfg.Limit == OffsetFetch {
		if limit == nil && offset == nil {
			return
		}
		r.write(" OFFSET ")
		if offset != nil {
			r.value(*offset)
		} else {
			r.write("0")
		}
		r.write(" ROWS")
		if limit != nil {
			r.write(" FETCH NEXT ")
			r.value(*limit)
			r.write(" ROWS ONLY")
		}
		return
	}
	if limit != nil {
		r.write(" LIMIT ")
		r.value(*limit)
	} else if offset != nil && r.cfg.OffsetOnlyLimit != "" {
		r.write(" LIMIT ")
		r.write(r.cfg.OffsetOnlyLimit)
	}
	if offset != nil {
		r.write(" OFFSET ")
		r.value(*offset)
	}
}

// lock writes FOR UPDATE and friends. Dialects without row locks ignore
// the clause.
func (r *renderer) lock(l *query.LockClause) {
	if !r.cfg.SupportsRowLocking {
		return
	}
	r.write(" FOR ")
	r.write(string(l.Type))
	if len(l.Of) > 0 {
		r.write(" OF ")
		r.w.List(len(l.Of), ", ", func(i int) { r.tableName(l.Of[i]) })
	}
	if l.Behavior != "" {
		r.write(" ")
		r.write(string(l.Behavior))
	}
}
