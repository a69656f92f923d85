package bigquery

import (
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

func init() {
	dialect.Register(BigQuery)
}

var bigqueryReservedWords = []string{
	"all", "and", "any", "array", "as", "asc", "assert_rows_modified", "at",
	"between", "by", "case", "cast", "collate", "contains", "create", "cross",
	"cube", "current", "default", "define", "desc", "distinct", "else", "end",
	"enum", "escape", "except", "exclude", "exists", "extract", "false",
	"fetch", "following", "for", "from", "full", "group", "grouping", "groups",
	"hash", "having", "if", "ignore", "in", "inner", "intersect", "interval",
	"into", "is", "join", "lateral", "left", "like", "limit", "lookup", "merge",
	"natural", "new", "no", "not", "null", "nulls", "of", "on", "or", "order",
	"outer", "over", "partition", "preceding", "proto", "qualify", "range",
	"recursive", "respect", "right", "rollup", "rows", "select", "set", "some",
	"struct", "tablesample", "then", "to", "treat", "true", "unbounded",
	"union", "unnest", "using", "when", "where", "window", "with", "within",
}

// BigQuery is the BigQuery dialect.
var BigQuery = dialect.New(Config).
	ColumnTypes(columnType).
	WithReservedWords(bigqueryReservedWords...).
	Build()

// columnType picks NUMERIC or BIGNUMERIC from the requested precision and
// scale.
func columnType(t *schema.ColumnType) (string, bool) {
	switch t.Kind {
	case schema.TypeDecimal, schema.TypeMoney:
		if !t.HasPrecision() {
			return "", false
		}
		p, s := t.Precision, t.Scale
		if s <= 9 && p <= s+29 {
			return fmt.Sprintf("NUMERIC(%d, %d)", p, s), true
		}
		return fmt.Sprintf("BIGNUMERIC(%d, %d)", p, s), true
	}
	return "", false
}
