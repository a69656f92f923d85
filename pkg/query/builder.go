// Package query builds DML statements and the expression trees inside them.
package query

import (
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// Statement is a renderable DML statement: SELECT, INSERT, UPDATE, DELETE,
// or a WITH query or EXPLAIN wrapping one of them.
type Statement interface {
	queryStatement()
	cloneStatement() Statement
}

// QueryBuilder renders statements. Every dialect implements it.
type QueryBuilder interface {
	// Writer returns a fresh writer configured with the dialect's marker.
	Writer(inline bool) *format.Writer
	// PrepareQuery renders stmt into w.
	PrepareQuery(stmt Statement, w *format.Writer)
}

// Build renders stmt with positional placeholders and returns the SQL and
// the values to bind, in marker order.
func Build(stmt Statement, qb QueryBuilder) (string, value.Values, error) {
	if err := builderErr(stmt); err != nil {
		return "", nil, err
	}
	w := qb.Writer(false)
	qb.PrepareQuery(stmt, w)
	return w.Result()
}

// ToString renders stmt with inline literals. The result is meant for logs
// and tests; do not use it with untrusted input.
func ToString(stmt Statement, qb QueryBuilder) (string, error) {
	if err := builderErr(stmt); err != nil {
		return "", err
	}
	w := qb.Writer(true)
	qb.PrepareQuery(stmt, w)
	sql, _, err := w.Result()
	return sql, err
}

// MustBuild is Build that panics on error.
func MustBuild(stmt Statement, qb QueryBuilder) (string, value.Values) {
	sql, vals, err := Build(stmt, qb)
	if err != nil {
		panic(fmt.Sprintf("query: build: %v", err))
	}
	return sql, vals
}

// MustString is ToString that panics on error.
func MustString(stmt Statement, qb QueryBuilder) string {
	sql, err := ToString(stmt, qb)
	if err != nil {
		panic(fmt.Sprintf("query: to string: %v", err))
	}
	return sql
}

// builderErr returns a misuse error recorded while the statement was built.
func builderErr(stmt Statement) error {
	switch s := stmt.(type) {
	case *InsertStatement:
		return s.err
	case *WithQuery:
		if s.Query != nil {
			return builderErr(s.Query)
		}
	case *ExplainStatement:
		if s.Query != nil {
			return builderErr(s.Query)
		}
	}
	return nil
}
