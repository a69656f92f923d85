// Package databend provides the Databend dialect.
// This package is pure Go with no database driver dependencies.
package databend

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the Databend dialect configuration.
var Config = &dialect.Config{
	Name:        "databend",
	Placeholder: dialect.PlaceholderQuestion,
	Template:    format.TemplateNumbered,
	Identifiers: dialect.IdentifierConfig{
		Quote:    "`",
		QuoteEnd: "`",
		Escape:   "``",
	},

	Strings: dialect.StringsBackslash,
	Bytes:   dialect.BytesFromHex,

	Upsert:          dialect.UpsertReplaceOn,
	Replace:         "REPLACE",
	Returning:       dialect.ReturningNone,
	Limit:           dialect.LimitOffset,
	DefaultValues:   dialect.DefaultValuesNone,
	Recursive:       "RECURSIVE",
	TemporalOffsets: true,
	TableAliasAs:    true,

	ArrayOpen:      "[",
	ArrayClose:     "]",
	ArrayTypeOpen:  "ARRAY(",
	ArrayTypeClose: ")",

	Types: map[schema.TypeKind]string{
		schema.TypeChar:                  "varchar",
		schema.TypeText:                  "string",
		schema.TypeTinyUnsigned:          "tinyint unsigned",
		schema.TypeSmallUnsigned:         "smallint unsigned",
		schema.TypeUnsigned:              "int unsigned",
		schema.TypeBigUnsigned:           "bigint unsigned",
		schema.TypeInteger:               "int",
		schema.TypeDateTime:              "timestamp",
		schema.TypeTimestampWithTimeZone: "timestamp",
		schema.TypeTime:                  "",
		schema.TypeYear:                  "",
		schema.TypeInterval:              "interval",
		schema.TypeBinary:                "binary",
		schema.TypeVarBinary:             "binary",
		schema.TypeBit:                   "",
		schema.TypeVarBit:                "",
		schema.TypeBlob:                  "binary",
		schema.TypeMoney:                 "decimal",
		schema.TypeJSON:                  "variant",
		schema.TypeJSONBinary:            "variant",
		schema.TypeUUID:                  "varchar(36)",
		schema.TypeCidr:                  "",
		schema.TypeInet:                  "",
		schema.TypeMacAddr:               "",
		schema.TypeLTree:                 "",
		schema.TypeVector:                "vector",
	},

	OmitColumnKeys: true,
	AlterColumn:    dialect.AlterColumnSetDataType,
	RenameTable:    dialect.RenameAlterTable,
	ColumnComments: true,

	SupportsArrays:        true,
	SupportsNullsOrdering: true,
	SupportsUpdateFrom:    true,
	SupportsTruncate:      true,
	SupportsWindowFrames:  true,

	Explain: dialect.ExplainPlain,
	Views: dialect.ViewConfig{
		Supported:   true,
		OrReplace:   true,
		IfNotExists: true,
		Rename:      dialect.RenameUnsupported,
	},
}
