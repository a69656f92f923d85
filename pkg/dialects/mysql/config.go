// Package mysql provides the MySQL SQL dialect.
// This package is pure Go with no database driver dependencies.
package mysql

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the MySQL dialect configuration.
var Config = &dialect.Config{
	Name:        "mysql",
	Placeholder: dialect.PlaceholderQuestion,
	Template:    format.TemplateSequential,
	Identifiers: dialect.IdentifierConfig{
		Quote:    "`",
		QuoteEnd: "`",
		Escape:   "``",
	},

	Strings: dialect.StringsBackslash,
	Bytes:   dialect.BytesHex,

	Upsert:          dialect.UpsertDuplicateKey,
	Returning:       dialect.ReturningNone,
	Limit:           dialect.LimitOffset,
	OffsetOnlyLimit: "18446744073709551615",
	DefaultValues:   dialect.DefaultValuesEmpty,
	Replace:         "REPLACE",
	Recursive:       "RECURSIVE",
	TableAliasAs:    true,

	Types: map[schema.TypeKind]string{
		schema.TypeTinyUnsigned:          "tinyint UNSIGNED",
		schema.TypeSmallUnsigned:         "smallint UNSIGNED",
		schema.TypeUnsigned:              "integer UNSIGNED",
		schema.TypeBigUnsigned:           "bigint UNSIGNED",
		schema.TypeTimestampWithTimeZone: "timestamp",
		schema.TypeInterval:              "",
		schema.TypeVarBit:                "",
		schema.TypeMoney:                 "decimal",
		schema.TypeJSONBinary:            "json",
		schema.TypeUUID:                  "binary(16)",
		schema.TypeCidr:                  "",
		schema.TypeInet:                  "",
		schema.TypeMacAddr:               "",
		schema.TypeLTree:                 "",
		schema.TypeVector:                "",
	},
	VarcharLength: 255,
	InlineEnums:   true,

	AutoIncrement:         "AUTO_INCREMENT",
	AutoIncrementPosition: dialect.AutoIncrementAfterNull,
	AlterColumn:           dialect.AlterColumnModify,
	AlterMultiple:         true,
	DropForeignKey:        "DROP FOREIGN KEY",
	RenameTable:           dialect.RenameTableKeyword,
	DropIndexOnTable:      true,
	AlterForeignKeys:      true,
	IndexMethods:          true,
	FullTextPrefix:        true,
	TableKeys:             true,
	Triggers:              dialect.TriggerBody,
	ColumnComments:        true,
	TableOptions:          true,

	SupportsDistinctRow:      true,
	SupportsRowLocking:       true,
	SupportsIndexHints:       true,
	SupportsFieldOrdering:    true,
	SupportsUpdateOrderLimit: true,
	SupportsTruncate:         true,
	SupportsLateral:          true,
	SupportsWindowFrames:     true,
	SupportsIndexes:          true,
	SupportsIndexPrefix:      true,
	SupportsForeignKeys:      true,

	AlterConstraints: true,
	Explain:          dialect.ExplainMySQL,
	Views: dialect.ViewConfig{
		Supported:   true,
		OrReplace:   true,
		CheckOption: true,
		DropMany:    true,
		Rename:      dialect.RenameTableKeyword,
	},
}
