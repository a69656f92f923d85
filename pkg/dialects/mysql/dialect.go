package mysql

import "github.com/leapstack-labs/querykit/pkg/dialect"

func init() {
	dialect.Register(MySQL)
}

// mysqlReservedWords contains frequently problematic MySQL reserved words.
var mysqlReservedWords = []string{
	"add", "all", "alter", "and", "as", "asc", "between", "by", "case",
	"change", "check", "column", "condition", "constraint", "create", "cross",
	"current_date", "current_time", "current_timestamp", "database", "default",
	"delete", "desc", "describe", "distinct", "distinctrow", "div", "drop",
	"else", "exists", "explain", "false", "fetch", "for", "force", "foreign",
	"from", "fulltext", "group", "having", "ignore", "in", "index", "inner",
	"insert", "interval", "into", "is", "join", "key", "keys", "kill",
	"lateral", "left", "like", "limit", "lock", "match", "mod", "natural",
	"not", "null", "on", "or", "order", "outer", "primary", "range", "read",
	"references", "regexp", "rename", "replace", "right", "rlike", "select",
	"set", "show", "table", "then", "to", "true", "union", "unique", "unsigned",
	"update", "usage", "use", "using", "values", "when", "where", "window",
	"with", "write", "xor", "year_month", "zerofill",
}

// MySQL is the MySQL dialect.
var MySQL = dialect.New(Config).
	WithReservedWords(mysqlReservedWords...).
	Build()
