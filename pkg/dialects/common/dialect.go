package common

import "github.com/leapstack-labs/querykit/pkg/dialect"

func init() {
	dialect.Register(Common)
}

// Common is the generic dialect.
var Common = dialect.New(Config).
	WithReservedWords(
		"all", "and", "as", "between", "by", "case", "check", "column",
		"constraint", "create", "cross", "default", "delete", "distinct", "drop",
		"else", "end", "exists", "false", "for", "foreign", "from", "full",
		"group", "having", "in", "inner", "insert", "into", "is", "join", "key",
		"left", "like", "not", "null", "on", "or", "order", "outer", "primary",
		"references", "right", "select", "set", "table", "then", "true",
		"union", "unique", "update", "user", "using", "values", "when", "where",
		"with",
	).
	Build()
