package dialect

import (
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// BuildAny renders a query or schema statement chosen at runtime. Query
// statements get placeholders; schema statements are always inline and
// return no values.
func BuildAny(d Dialect, stmt any) (string, value.Values, error) {
	if d == nil {
		return "", nil, ErrDialectRequired
	}
	switch s := stmt.(type) {
	case query.Statement:
		return query.Build(s, d)
	case schema.Statement:
		sql, err := schema.Build(s, d)
		return sql, nil, err
	}
	return "", nil, fmt.Errorf("%s: cannot render %T", d.Name(), stmt)
}

// Render resolves a registered dialect by name and renders stmt. With
// inline set, query statements are rendered with literals and no values.
func Render(name string, stmt any, inline bool) (string, value.Values, error) {
	d, err := Lookup(name)
	if err != nil {
		return "", nil, err
	}
	if q, ok := stmt.(query.Statement); ok && inline {
		sql, err := query.ToString(q, d)
		return sql, nil, err
	}
	return BuildAny(d, stmt)
}
