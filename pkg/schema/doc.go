// Package schema builds DDL statements: tables, indexes, foreign keys,
// views, standalone constraints, Postgres types and extensions, and
// triggers. Statements render through a SchemaBuilder, which every
// dialect implements. DDL always renders values inline.
package schema
