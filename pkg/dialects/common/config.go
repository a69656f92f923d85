// Package common provides a generic ANSI-leaning SQL dialect for logs,
// documentation and tests that are not tied to a database.
package common

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
)

// Config is the generic dialect configuration.
var Config = &dialect.Config{
	Name:        "common",
	Placeholder: dialect.PlaceholderQuestion,
	Template:    format.TemplateNumbered,
	Identifiers: dialect.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},

	Strings: dialect.StringsDoubled,
	Bytes:   dialect.BytesHex,

	Upsert:          dialect.UpsertOnConflict,
	Returning:       dialect.ReturningClause,
	Limit:           dialect.LimitOffset,
	DefaultValues:   dialect.DefaultValuesKeyword,
	Recursive:       "RECURSIVE",
	TemporalOffsets: true,
	TableAliasAs:    true,

	AutoIncrement:         "GENERATED BY DEFAULT AS IDENTITY",
	AutoIncrementPosition: dialect.AutoIncrementAfterType,
	AlterColumn:           dialect.AlterColumnSetDataType,
	AlterMultiple:         true,
	DropForeignKey:        "DROP CONSTRAINT",
	RenameTable:           dialect.RenameAlterTable,
	DropBehavior:          true,
	AlterForeignKeys:      true,

	SupportsNullsOrdering:    true,
	SupportsUpdateFrom:       true,
	SupportsTruncate:         true,
	SupportsLateral:          true,
	SupportsWindowFrames:     true,
	SupportsIfNotExistsIndex: true,
	SupportsIndexes:          true,
	SupportsForeignKeys:      true,

	AlterConstraints: true,
	Explain:          dialect.ExplainPlain,
	Views: dialect.ViewConfig{
		Supported:   true,
		OrReplace:   true,
		Recursive:   true,
		CheckOption: true,
		DropMany:    true,
	},
}
