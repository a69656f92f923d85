// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the DuckDB dialect configuration.
var Config = &dialect.Config{
	Name:        "duckdb",
	Placeholder: dialect.PlaceholderQuestion,
	Template:    format.TemplateNumbered,
	Identifiers: dialect.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},

	Strings: dialect.StringsDoubled,
	Bytes:   dialect.BytesBlobCast,

	Upsert:          dialect.UpsertOnConflict,
	Returning:       dialect.ReturningClause,
	Limit:           dialect.LimitOffset,
	DefaultValues:   dialect.DefaultValuesKeyword,
	Replace:         "INSERT OR REPLACE",
	Recursive:       "RECURSIVE",
	TemporalOffsets: true,
	TableAliasAs:    true,

	ArrayOpen:  "[",
	ArrayClose: "]",

	Types: map[schema.TypeKind]string{
		schema.TypeTinyUnsigned:          "utinyint",
		schema.TypeSmallUnsigned:         "usmallint",
		schema.TypeUnsigned:              "uinteger",
		schema.TypeBigUnsigned:           "ubigint",
		schema.TypeFloat:                 "real",
		schema.TypeDateTime:              "timestamp",
		schema.TypeTimestampWithTimeZone: "timestamptz",
		schema.TypeYear:                  "",
		schema.TypeBinary:                "blob",
		schema.TypeVarBinary:             "blob",
		schema.TypeBit:                   "bit",
		schema.TypeVarBit:                "bit",
		schema.TypeMoney:                 "decimal",
		schema.TypeJSONBinary:            "json",
		schema.TypeCidr:                  "",
		schema.TypeInet:                  "inet",
		schema.TypeMacAddr:               "",
		schema.TypeLTree:                 "",
		schema.TypeVector:                "",
	},

	AlterColumn:  dialect.AlterColumnSetDataType,
	RenameTable:  dialect.RenameAlterTable,
	DropBehavior: true,

	Functions: map[query.Function]string{
		query.FuncIfNull: "COALESCE",
	},

	SupportsDistinctOn:       true,
	SupportsArrays:           true,
	SupportsEnumCast:         true,
	SupportsNullsOrdering:    true,
	SupportsUpdateFrom:       true,
	SupportsTruncate:         true,
	SupportsLateral:          true,
	SupportsWindowFrames:     true,
	SupportsMaterializedCTE:  true,
	SupportsUserTypes:        true,
	SupportsIfNotExistsIndex: true,
	SupportsIndexes:          true,
	SupportsForeignKeys:      true,

	Explain: dialect.ExplainPlain,
	Views: dialect.ViewConfig{
		Supported:   true,
		OrReplace:   true,
		IfNotExists: true,
		Temporary:   true,
	},
}
