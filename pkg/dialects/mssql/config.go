// Package mssql provides the Microsoft SQL Server dialect.
// This package is pure Go with no database driver dependencies.
package mssql

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the SQL Server dialect configuration.
var Config = &dialect.Config{
	Name:        "mssql",
	Placeholder: dialect.PlaceholderAtP,
	Template:    format.TemplateNumbered,
	Identifiers: dialect.IdentifierConfig{
		Quote:    "[",
		QuoteEnd: "]",
		Escape:   "]]",
	},

	Strings:   dialect.StringsDoubled,
	Bytes:     dialect.BytesPrefixed,
	BoolAsInt: true,

	Upsert:          dialect.UpsertNone,
	Returning:       dialect.ReturningOutput,
	Limit:           dialect.OffsetFetch,
	DefaultValues:   dialect.DefaultValuesKeyword,
	TemporalOffsets: true,
	TableAliasAs:    true,

	Types: map[schema.TypeKind]string{
		schema.TypeChar:                  "nchar",
		schema.TypeString:                "nvarchar",
		schema.TypeText:                  "nvarchar(max)",
		schema.TypeInteger:               "int",
		schema.TypeTinyUnsigned:          "tinyint",
		schema.TypeSmallUnsigned:         "int",
		schema.TypeUnsigned:              "bigint",
		schema.TypeBigUnsigned:           "decimal(20, 0)",
		schema.TypeFloat:                 "real",
		schema.TypeDouble:                "float",
		schema.TypeDateTime:              "datetime2",
		schema.TypeTimestamp:             "datetime2",
		schema.TypeTimestampWithTimeZone: "datetimeoffset",
		schema.TypeYear:                  "",
		schema.TypeInterval:              "",
		schema.TypeVarBit:                "",
		schema.TypeBlob:                  "varbinary(max)",
		schema.TypeBoolean:               "bit",
		schema.TypeJSON:                  "nvarchar(max)",
		schema.TypeJSONBinary:            "nvarchar(max)",
		schema.TypeUUID:                  "uniqueidentifier",
		schema.TypeCidr:                  "",
		schema.TypeInet:                  "",
		schema.TypeMacAddr:               "",
		schema.TypeLTree:                 "",
		schema.TypeVector:                "",
	},

	AutoIncrement:         "IDENTITY(1,1)",
	AutoIncrementPosition: dialect.AutoIncrementAfterType,
	AlterColumn:           dialect.AlterColumnPlain,
	AddColumnBare:         true,
	DropForeignKey:        "DROP CONSTRAINT",
	RenameTable:           dialect.RenameSpRename,
	DropIndexOnTable:      true,
	AlterForeignKeys:      true,

	Functions: map[query.Function]string{
		query.FuncIfNull:     "ISNULL",
		query.FuncCharLength: "LEN",
		query.FuncRandom:     "RAND",
	},

	SupportsUpdateFrom:   true,
	SupportsTruncate:     true,
	SupportsWindowFrames: true,
	SupportsPartialIndex: true,
	SupportsIndexInclude: true,
	SupportsIndexes:      true,
	SupportsForeignKeys:  true,

	AlterConstraints: true,
	Views: dialect.ViewConfig{
		Supported: true,
		DropMany:  true,
		Rename:    dialect.RenameSpRename,
	},
}
