package query

import (
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// TableRef is something a FROM, JOIN or INTO clause can name.
type TableRef interface {
	tableRef()
}

// TableNameRef is a possibly qualified table with an optional alias.
type TableNameRef struct {
	Name  iden.TableName
	Alias iden.Dyn
}

// SubQueryRef is (SELECT ...) AS alias.
type SubQueryRef struct {
	Query *SelectStatement
	Alias iden.Dyn
}

// ValuesRef is (VALUES (...), (...)) AS alias.
type ValuesRef struct {
	Rows  []value.Tuple
	Alias iden.Dyn
}

// FunctionRef is a set-returning function call with an alias.
type FunctionRef struct {
	Call  FuncCall
	Alias iden.Dyn
}

func (TableNameRef) tableRef() {}
func (SubQueryRef) tableRef()  {}
func (ValuesRef) tableRef()    {}
func (FunctionRef) tableRef()  {}

// IntoTableRef converts builder arguments into a table reference:
// a TableRef is used as is, an iden.TableName or iden.Iden names a table.
func IntoTableRef(x any) TableRef {
	switch t := x.(type) {
	case TableRef:
		return t
	case iden.TableName:
		return TableNameRef{Name: t}
	case iden.Iden:
		return TableNameRef{Name: iden.Table(t)}
	}
	panic(fmt.Sprintf("query: unsupported table reference %T", x))
}

// AliasedTable names a table with an alias.
func AliasedTable(table any, alias iden.Iden) TableRef {
	ref := IntoTableRef(table)
	if t, ok := ref.(TableNameRef); ok {
		t.Alias = iden.Of(alias)
		return t
	}
	return ref
}

// tableNameOf returns the table a reference names, if it names one.
func tableNameOf(ref TableRef) (iden.TableName, bool) {
	if t, ok := ref.(TableNameRef); ok {
		return t.Name, true
	}
	return iden.TableName{}, false
}
