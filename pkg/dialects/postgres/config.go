// Package postgres provides the PostgreSQL SQL dialect.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the PostgreSQL dialect configuration.
var Config = &dialect.Config{
	Name:        "postgres",
	Placeholder: dialect.PlaceholderDollar,
	Template:    format.TemplateNumbered,
	Identifiers: dialect.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},

	Strings: dialect.StringsPostgres,
	Bytes:   dialect.BytesEscape,

	Upsert:        dialect.UpsertOnConflict,
	Returning:     dialect.ReturningClause,
	Limit:         dialect.LimitOffset,
	DefaultValues: dialect.DefaultValuesRow,
	Recursive:     "RECURSIVE",

	ArrayOpen:       "ARRAY[",
	ArrayClose:      "]",
	ArrayEmpty:      "'{}'",
	TemporalOffsets: true,
	TableAliasAs:    true,

	Types: map[schema.TypeKind]string{
		schema.TypeTinyInteger:   "smallint",
		schema.TypeTinyUnsigned:  "smallint",
		schema.TypeSmallUnsigned: "smallint",
		schema.TypeUnsigned:      "integer",
		schema.TypeBigUnsigned:   "bigint",
		schema.TypeFloat:         "real",
		schema.TypeDouble:        "double precision",
		schema.TypeDateTime:      "timestamp without time zone",
		schema.TypeYear:          "",
		schema.TypeBlob:          "bytea",
	},

	AutoIncrement:         "GENERATED BY DEFAULT AS IDENTITY",
	AutoIncrementPosition: dialect.AutoIncrementAfterType,
	SerialTypes:           true,
	AlterColumn:           dialect.AlterColumnType,
	AlterMultiple:         true,
	DropForeignKey:        "DROP CONSTRAINT",
	RenameTable:           dialect.RenameAlterTable,
	DropBehavior:          true,
	AlterForeignKeys:      true,
	IndexMethods:          true,
	IndexMethodNames: map[schema.IndexType]string{
		schema.IndexFullText: "GIN",
	},
	Triggers: dialect.TriggerFunction,

	Functions: map[query.Function]string{
		query.FuncIfNull: "COALESCE",
	},

	SupportsDistinctOn:       true,
	SupportsArrays:           true,
	SupportsRanges:           true,
	SupportsEnumCast:         true,
	SupportsRowLocking:       true,
	SupportsNullsOrdering:    true,
	SupportsUpdateFrom:       true,
	SupportsTruncate:         true,
	SupportsLateral:          true,
	SupportsWindowFrames:     true,
	SupportsCTESearchCycle:   true,
	SupportsMaterializedCTE:  true,
	SupportsUserTypes:        true,
	SupportsExtensions:       true,
	SupportsConcurrentIndex:  true,
	SupportsPartialIndex:     true,
	SupportsIndexInclude:     true,
	SupportsIfNotExistsIndex: true,
	SupportsIndexes:          true,
	SupportsNullsNotDistinct: true,
	SupportsForeignKeys:      true,

	AlterConstraints:     true,
	ConstraintUsingIndex: true,
	Explain:              dialect.ExplainParenthesized,
	Views: dialect.ViewConfig{
		Supported:   true,
		OrReplace:   true,
		Temporary:   true,
		Recursive:   true,
		CheckOption: true,
		DropMany:    true,
	},
}
