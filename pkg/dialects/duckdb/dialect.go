package duckdb

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

func init() {
	dialect.Register(DuckDB)
}

var duckDBReservedWords = []string{
	"all", "analyse", "analyze", "and", "any", "array", "as", "asc",
	"asymmetric", "both", "case", "cast", "check", "collate", "column",
	"constraint", "create", "default", "deferrable", "desc", "describe",
	"distinct", "do", "else", "end", "except", "false", "fetch", "for",
	"foreign", "from", "grant", "group", "having", "in", "initially",
	"intersect", "into", "lateral", "leading", "limit", "offset", "on",
	"only", "or", "order", "pivot", "pivot_longer", "pivot_wider", "placing",
	"primary", "qualify", "references", "returning", "select", "show",
	"some", "summarize", "symmetric", "table", "then", "to", "trailing",
	"true", "union", "unique", "unpivot", "using", "variadic", "when",
	"where", "window", "with",
}

// DuckDB is the DuckDB dialect.
var DuckDB = dialect.New(Config).
	ColumnTypes(columnType).
	WithReservedWords(duckDBReservedWords...).
	Build()

// columnType spells fixed-width strings as varchar and drops lengths DuckDB
// does not take on blob and bit columns.
func columnType(t *schema.ColumnType) (string, bool) {
	switch t.Kind {
	case schema.TypeChar:
		return "varchar", true
	case schema.TypeBinary, schema.TypeVarBinary:
		return "blob", true
	case schema.TypeBit, schema.TypeVarBit:
		return "bit", true
	}
	return "", false
}
