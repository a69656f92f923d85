// Package bigquery provides the Google BigQuery dialect.
// This package is pure Go with no database driver dependencies.
package bigquery

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the BigQuery dialect configuration.
var Config = &dialect.Config{
	Name:        "bigquery",
	Placeholder: dialect.PlaceholderQuestion,
	Template:    format.TemplateNumbered,
	Identifiers: dialect.IdentifierConfig{
		Quote:    "`",
		QuoteEnd: "`",
		Escape:   "\\`",
	},

	Strings: dialect.StringsBackslash,
	Bytes:   dialect.BytesFromHex,

	Upsert:          dialect.UpsertNone,
	Returning:       dialect.ReturningNone,
	Limit:           dialect.LimitOffset,
	DefaultValues:   dialect.DefaultValuesNone,
	Recursive:       "RECURSIVE",
	TemporalOffsets: true,
	TableAliasAs:    true,

	SetOperators: map[query.UnionKind]string{
		query.UnionDistinct: "UNION DISTINCT",
		query.Intersect:     "INTERSECT DISTINCT",
		query.Except:        "EXCEPT DISTINCT",
	},

	ArrayOpen:      "[",
	ArrayClose:     "]",
	ArrayTypeOpen:  "ARRAY<",
	ArrayTypeClose: ">",

	Types: map[schema.TypeKind]string{
		schema.TypeChar:                  "STRING",
		schema.TypeString:                "STRING",
		schema.TypeText:                  "STRING",
		schema.TypeTinyInteger:           "INT64",
		schema.TypeSmallInteger:          "INT64",
		schema.TypeInteger:               "INT64",
		schema.TypeBigInteger:            "INT64",
		schema.TypeTinyUnsigned:          "INT64",
		schema.TypeSmallUnsigned:         "INT64",
		schema.TypeUnsigned:              "INT64",
		schema.TypeBigUnsigned:           "INT64",
		schema.TypeFloat:                 "FLOAT64",
		schema.TypeDouble:                "FLOAT64",
		schema.TypeDecimal:               "BIGNUMERIC",
		schema.TypeMoney:                 "BIGNUMERIC",
		schema.TypeDateTime:              "DATETIME",
		schema.TypeTimestamp:             "TIMESTAMP",
		schema.TypeTimestampWithTimeZone: "TIMESTAMP",
		schema.TypeTime:                  "TIME",
		schema.TypeDate:                  "DATE",
		schema.TypeYear:                  "",
		schema.TypeInterval:              "INTERVAL",
		schema.TypeBinary:                "BYTES",
		schema.TypeVarBinary:             "BYTES",
		schema.TypeBit:                   "",
		schema.TypeVarBit:                "",
		schema.TypeBlob:                  "BYTES",
		schema.TypeBoolean:               "BOOL",
		schema.TypeJSON:                  "JSON",
		schema.TypeJSONBinary:            "JSON",
		schema.TypeUUID:                  "STRING(36)",
		schema.TypeCidr:                  "",
		schema.TypeInet:                  "",
		schema.TypeMacAddr:               "",
		schema.TypeLTree:                 "",
		schema.TypeVector:                "",
	},

	OmitColumnKeys: true,
	AlterColumn:    dialect.AlterColumnSetDataType,
	AlterMultiple:  true,
	DropForeignKey: "DROP CONSTRAINT",
	RenameTable:    dialect.RenameAlterTable,

	Functions: map[query.Function]string{
		query.FuncIfNull: "COALESCE",
	},

	SupportsArrays:        true,
	SupportsNullsOrdering: true,
	SupportsUpdateFrom:    true,
	SupportsTruncate:      true,
	SupportsWindowFrames:  true,
	SupportsIndexes:       true,

	Views: dialect.ViewConfig{
		Supported:   true,
		OrReplace:   true,
		IfNotExists: true,
		Rename:      dialect.RenameUnsupported,
	},
}
