package databend

import (
	"strconv"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

func init() {
	dialect.Register(Databend)
}

var databendReservedWords = []string{
	"all", "alter", "and", "any", "array", "as", "asc", "between", "by",
	"case", "cast", "create", "cross", "database", "default", "delete",
	"desc", "distinct", "drop", "else", "end", "except", "exists", "false",
	"from", "full", "group", "having", "in", "inner", "insert", "intersect",
	"into", "is", "join", "left", "like", "limit", "map", "natural", "not",
	"null", "offset", "on", "or", "order", "outer", "qualify", "replace",
	"right", "select", "set", "table", "then", "true", "tuple", "union",
	"update", "using", "values", "when", "where", "window", "with",
}

// Databend is the Databend dialect.
var Databend = dialect.New(Config).
	ColumnTypes(columnType).
	WithReservedWords(databendReservedWords...).
	Build()

// columnType drops lengths Databend does not accept on binary columns.
func columnType(t *schema.ColumnType) (string, bool) {
	switch t.Kind {
	case schema.TypeBinary, schema.TypeVarBinary, schema.TypeBlob:
		return "binary", true
	case schema.TypeVector:
		if !t.HasLength() {
			return "", false
		}
		return "vector(" + strconv.FormatUint(uint64(t.Length), 10) + ")", true
	}
	return "", false
}
