package schema

import (
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/format"
)

// Statement is a renderable DDL statement.
type Statement interface {
	schemaStatement()
}

// SchemaBuilder renders DDL. Every dialect implements it.
type SchemaBuilder interface {
	// Writer returns a fresh writer configured with the dialect's marker.
	Writer(inline bool) *format.Writer
	// PrepareSchema renders stmt into w.
	PrepareSchema(stmt Statement, w *format.Writer)
}

// Build renders stmt. Values are always written inline.
func Build(stmt Statement, sb SchemaBuilder) (string, error) {
	w := sb.Writer(true)
	sb.PrepareSchema(stmt, w)
	sql, _, err := w.Result()
	return sql, err
}

// MustBuild is Build that panics on error.
func MustBuild(stmt Statement, sb SchemaBuilder) string {
	sql, err := Build(stmt, sb)
	if err != nil {
		panic(fmt.Sprintf("schema: build: %v", err))
	}
	return sql
}
