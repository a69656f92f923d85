package query

import (
	"strings"

	"github.com/leapstack-labs/querykit/pkg/iden"
)

// AuditResult lists the tables a statement touches, each once, in first
// seen order.
type AuditResult struct {
	Selected []iden.TableName
	Inserted []iden.TableName
	Updated  []iden.TableName
	Deleted  []iden.TableName
}

// Reads returns the tables read by the statement.
func (r AuditResult) Reads() []iden.TableName { return r.Selected }

// Writes returns the tables written by the statement.
func (r AuditResult) Writes() []iden.TableName {
	var out []iden.TableName
	seen := map[string]bool{}
	for _, list := range [][]iden.TableName{r.Inserted, r.Updated, r.Deleted} {
		out = appendTable(out, seen, list...)
	}
	return out
}

// Audit walks stmt, sub-queries included, and reports the tables it reads
// and writes. Names bound by a WITH clause are not reported as reads.
func Audit(stmt Statement) AuditResult {
	a := &auditor{}
	a.statement(stmt)
	return a.result()
}

type auditor struct {
	selected []iden.TableName
	inserted []iden.TableName
	updated  []iden.TableName
	deleted  []iden.TableName
	ctes     map[string]bool
}

func tableKey(t iden.TableName) string {
	parts := t.Parts()
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Unquoted()
	}
	return strings.Join(names, ".")
}

func appendTable(out []iden.TableName, seen map[string]bool, ts ...iden.TableName) []iden.TableName {
	for _, t := range ts {
		k := tableKey(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}

func (a *auditor) result() AuditResult {
	var r AuditResult
	dedupe := func(ts []iden.TableName, skipCTE bool) []iden.TableName {
		seen := map[string]bool{}
		var out []iden.TableName
		for _, t := range ts {
			if skipCTE && t.Schema == nil && a.ctes[t.Name.Unquoted()] {
				continue
			}
			out = appendTable(out, seen, t)
		}
		return out
	}
	r.Selected = dedupe(a.selected, true)
	r.Inserted = dedupe(a.inserted, false)
	r.Updated = dedupe(a.updated, false)
	r.Deleted = dedupe(a.deleted, false)
	return r
}

func (a *auditor) statement(stmt Statement) {
	switch s := stmt.(type) {
	case *SelectStatement:
		a.selectStmt(s)
	case *InsertStatement:
		if t, ok := tableNameOf(s.Target); ok {
			a.inserted = append(a.inserted, t)
		}
		switch src := s.Source.(type) {
		case *RowsSource:
			for _, row := range src.Rows {
				a.exprs(row)
			}
		case SelectSource:
			a.selectStmt(src.Query)
		}
	case *UpdateStatement:
		if t, ok := tableNameOf(s.Target); ok {
			a.updated = append(a.updated, t)
		}
		for _, ref := range s.FromList {
			a.tableRef(ref)
		}
		for _, as := range s.Assignments {
			a.expr(as.Expr)
		}
		a.cond(s.WhereClause.Condition())
	case *DeleteStatement:
		if t, ok := tableNameOf(s.Target); ok {
			a.deleted = append(a.deleted, t)
		}
		a.cond(s.WhereClause.Condition())
	case *WithQuery:
		if s.Clause != nil {
			if a.ctes == nil {
				a.ctes = map[string]bool{}
			}
			for _, c := range s.Clause.CTEs {
				a.ctes[c.Name.Unquoted()] = true
				a.statement(c.Query)
			}
		}
		if s.Query != nil {
			a.statement(s.Query)
		}
	case *ExplainStatement:
		if s.Query != nil {
			a.statement(s.Query)
		}
	}
}

func (a *auditor) selectStmt(s *SelectStatement) {
	if s == nil {
		return
	}
	for _, se := range s.SelectList {
		a.expr(se.Expr)
	}
	for _, ref := range s.FromList {
		a.tableRef(ref)
	}
	for _, j := range s.JoinList {
		a.tableRef(j.Table)
		a.cond(j.On)
	}
	a.cond(s.WhereClause.Condition())
	a.cond(s.HavingClause.Condition())
	for _, u := range s.UnionList {
		a.selectStmt(u.Query)
	}
}

func (a *auditor) tableRef(ref TableRef) {
	switch t := ref.(type) {
	case TableNameRef:
		a.selected = append(a.selected, t.Name)
	case SubQueryRef:
		a.selectStmt(t.Query)
	}
}

func (a *auditor) cond(c *Condition) {
	if c != nil {
		a.exprs(c.Items)
	}
}

func (a *auditor) exprs(es []Expr) {
	for _, e := range es {
		a.expr(e)
	}
}

func (a *auditor) expr(e Expr) {
	switch t := Unwrap(e).(type) {
	case SubQueryExpr:
		a.statement(t.Query)
	case BinaryExpr:
		a.expr(t.Left)
		a.expr(t.Right)
	case UnaryExpr:
		a.expr(t.Expr)
	case TupleExpr:
		a.exprs(t)
	case FuncCall:
		a.exprs(t.Args)
	case *CaseExpr:
		for _, w := range t.Whens {
			a.expr(w.Cond)
			a.expr(w.Then)
		}
		if t.Else != nil {
			a.expr(t.Else)
		}
	}
}
