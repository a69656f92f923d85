// Package sqlite provides the SQLite SQL dialect.
// This package is pure Go with no database driver dependencies; the
// integration tests run against modernc.org/sqlite.
package sqlite

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the SQLite dialect configuration.
var Config = &dialect.Config{
	Name:        "sqlite",
	Placeholder: dialect.PlaceholderQuestion,
	Template:    format.TemplateSequential,
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
	OffsetOnlyLimit: "-1",
	DefaultValues:   dialect.DefaultValuesKeyword,
	Replace:         "REPLACE",
	Recursive:       "RECURSIVE",
	TableAliasAs:    true,
	FlattenUnions:   true,

	// SQLite stores by affinity; the names below keep the declared intent
	// readable while mapping onto INTEGER, REAL, TEXT and BLOB.
	Types: map[schema.TypeKind]string{
		schema.TypeChar:                  "text",
		schema.TypeString:                "text",
		schema.TypeTinyInteger:           "integer",
		schema.TypeSmallInteger:          "integer",
		schema.TypeBigInteger:            "integer",
		schema.TypeTinyUnsigned:          "integer",
		schema.TypeSmallUnsigned:         "integer",
		schema.TypeUnsigned:              "integer",
		schema.TypeBigUnsigned:           "integer",
		schema.TypeFloat:                 "real",
		schema.TypeDouble:                "real",
		schema.TypeDecimal:               "real",
		schema.TypeDateTime:              "text",
		schema.TypeTimestamp:             "text",
		schema.TypeTimestampWithTimeZone: "text",
		schema.TypeTime:                  "text",
		schema.TypeDate:                  "text",
		schema.TypeYear:                  "integer",
		schema.TypeInterval:              "",
		schema.TypeVarBinary:             "blob",
		schema.TypeBit:                   "",
		schema.TypeVarBit:                "",
		schema.TypeBoolean:               "integer",
		schema.TypeMoney:                 "integer",
		schema.TypeJSON:                  "text",
		schema.TypeJSONBinary:            "text",
		schema.TypeUUID:                  "text(36)",
		schema.TypeCidr:                  "text",
		schema.TypeInet:                  "text",
		schema.TypeMacAddr:               "text",
		schema.TypeLTree:                 "",
		schema.TypeVector:                "",
	},

	AutoIncrement:         "AUTOINCREMENT",
	AutoIncrementPosition: dialect.AutoIncrementAfterPrimaryKey,
	RenameTable:           dialect.RenameAlterTable,
	Triggers:              dialect.TriggerBodyBlock,

	SupportsNullsOrdering:    true,
	SupportsUpdateFrom:       true,
	SupportsWindowFrames:     true,
	SupportsMaterializedCTE:  true,
	SupportsPartialIndex:     true,
	SupportsIfNotExistsIndex: true,
	SupportsIndexes:          true,
	SupportsForeignKeys:      true,

	Explain: dialect.ExplainQueryPlan,
	Views: dialect.ViewConfig{
		Supported:   true,
		IfNotExists: true,
		Temporary:   true,
		Rename:      dialect.RenameUnsupported,
	},
}
