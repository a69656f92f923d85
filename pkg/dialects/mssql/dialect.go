package mssql

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

func init() {
	dialect.Register(MSSQL)
}

var mssqlReservedWords = []string{
	"add", "all", "alter", "and", "any", "as", "asc", "backup", "begin",
	"between", "break", "browse", "bulk", "by", "cascade", "case", "check",
	"checkpoint", "close", "clustered", "column", "commit", "constraint",
	"contains", "continue", "create", "cross", "current", "cursor",
	"database", "deallocate", "declare", "default", "delete", "deny", "desc",
	"distinct", "drop", "else", "end", "escape", "except", "exec", "execute",
	"exists", "fetch", "file", "for", "foreign", "from", "full", "function",
	"goto", "grant", "group", "having", "identity", "if", "in", "index",
	"inner", "insert", "intersect", "into", "is", "join", "key", "kill",
	"left", "like", "merge", "not", "null", "of", "off", "offsets", "on",
	"open", "option", "or", "order", "outer", "over", "percent", "pivot",
	"plan", "primary", "print", "proc", "procedure", "public", "read",
	"references", "return", "revoke", "right", "rollback", "rowcount",
	"rule", "save", "schema", "select", "set", "some", "table", "then", "to",
	"top", "tran", "transaction", "trigger", "truncate", "union", "unique",
	"update", "use", "user", "values", "view", "when", "where", "while", "with",
}

// MSSQL is the SQL Server dialect.
var MSSQL = dialect.New(Config).
	ColumnTypes(columnType).
	WithReservedWords(mssqlReservedWords...).
	Build()

// columnType handles types whose unbounded form needs (max) and bit, which
// takes no length.
func columnType(t *schema.ColumnType) (string, bool) {
	switch t.Kind {
	case schema.TypeString:
		if !t.HasLength() {
			return "nvarchar(max)", true
		}
	case schema.TypeVarBinary:
		if !t.HasLength() {
			return "varbinary(max)", true
		}
	case schema.TypeBit:
		return "bit", true
	}
	return "", false
}
