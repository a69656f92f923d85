package dialect

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
)

// iden writes a quoted identifier. Literal-safe spellings cannot contain
// a quote character and skip the escape pass.
func (r *renderer) iden(d iden.Dyn) {
	if !d.LiteralSafe() {
		r.write(r.d.QuoteIdentifier(d.Unquoted()))
		return
	}
	id := r.cfg.Identifiers
	r.write(id.Quote)
	r.write(d.Unquoted())
	r.write(id.QuoteEnd)
}

func (r *renderer) idens(ds []iden.Dyn) {
	r.w.List(len(ds), ", ", func(i int) { r.iden(ds[i]) })
}

// qualified writes dot-separated quoted parts.
func (r *renderer) qualified(parts []iden.Dyn) {
	r.w.List(len(parts), ".", func(i int) { r.iden(parts[i]) })
}

func (r *renderer) tableName(t iden.TableName) { r.qualified(t.Parts()) }

func (r *renderer) typeName(t iden.TypeRef) { r.qualified(t.Parts()) }

func (r *renderer) columnRef(c iden.ColumnRef) {
	switch c.Kind {
	case iden.ColumnAsterisk:
		if t, ok := c.TableName(); ok {
			r.tableName(t)
			r.write(".")
		}
		r.write("*")
	case iden.ColumnNew:
		r.write("NEW.")
		r.iden(c.Column.Name)
	case iden.ColumnOld:
		r.write("OLD.")
		r.iden(c.Column.Name)
	case iden.ColumnExcluded:
		r.iden(iden.Name("excluded"))
		r.write(".")
		r.iden(c.Column.Name)
	default:
		r.qualified(c.Column.Parts())
	}
}

// alias writes [AS ]"alias" for table references.
func (r *renderer) tableAlias(alias iden.Dyn) {
	if alias.IsZero() {
		return
	}
	if r.cfg.TableAliasAs {
		r.write(" AS ")
	} else {
		r.write(" ")
	}
	r.iden(alias)
}

func (r *renderer) tableRef(ref query.TableRef) {
	switch t := ref.(type) {
	case query.TableNameRef:
		r.tableName(t.Name)
		r.tableAlias(t.Alias)
	case query.SubQueryRef:
		r.write("(")
		r.selectStatement(t.Query)
		r.write(")")
		r.tableAlias(t.Alias)
	case query.ValuesRef:
		r.write("(")
		r.valuesList(t.Rows)
		r.write(")")
		r.tableAlias(t.Alias)
	case query.FunctionRef:
		r.funcCall(t.Call)
		r.tableAlias(t.Alias)
	default:
		r.failf("unknown table reference %T", ref)
	}
}
