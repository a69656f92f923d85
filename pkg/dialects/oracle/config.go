// Package oracle provides the Oracle Database dialect.
// This package is pure Go with no database driver dependencies.
package oracle

import (
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Config is the Oracle dialect configuration.
var Config = &dialect.Config{
	Name:        "oracle",
	Placeholder: dialect.PlaceholderColon,
	Template:    format.TemplateNumbered,
	Identifiers: dialect.IdentifierConfig{
		Quote:    `"`,
		QuoteEnd: `"`,
		Escape:   `""`,
	},

	Strings:   dialect.StringsDoubled,
	Bytes:     dialect.BytesHexToRaw,
	BoolAsInt: true,

	Upsert:        dialect.UpsertNone,
	Returning:     dialect.ReturningNone,
	Limit:         dialect.OffsetFetch,
	DefaultValues: dialect.DefaultValuesRow,

	// Oracle spells EXCEPT as MINUS and rejects AS before table aliases.
	SetOperators: map[query.UnionKind]string{
		query.Except: "MINUS",
	},

	Types: map[schema.TypeKind]string{
		schema.TypeString:                "varchar2",
		schema.TypeText:                  "clob",
		schema.TypeTinyInteger:           "number(3)",
		schema.TypeSmallInteger:          "number(5)",
		schema.TypeInteger:               "number(10)",
		schema.TypeBigInteger:            "number(19)",
		schema.TypeTinyUnsigned:          "number(3)",
		schema.TypeSmallUnsigned:         "number(5)",
		schema.TypeUnsigned:              "number(10)",
		schema.TypeBigUnsigned:           "number(20)",
		schema.TypeFloat:                 "binary_float",
		schema.TypeDouble:                "binary_double",
		schema.TypeDecimal:               "number",
		schema.TypeDateTime:              "timestamp",
		schema.TypeTimestampWithTimeZone: "timestamp with time zone",
		schema.TypeTime:                  "",
		schema.TypeYear:                  "",
		schema.TypeBinary:                "raw",
		schema.TypeVarBinary:             "raw",
		schema.TypeBit:                   "",
		schema.TypeVarBit:                "",
		schema.TypeBoolean:               "number(1)",
		schema.TypeMoney:                 "number",
		schema.TypeJSON:                  "clob",
		schema.TypeJSONBinary:            "blob",
		schema.TypeUUID:                  "raw(16)",
		schema.TypeCidr:                  "",
		schema.TypeInet:                  "",
		schema.TypeMacAddr:               "",
		schema.TypeLTree:                 "",
		schema.TypeVector:                "",
	},
	VarcharLength: 255,

	AutoIncrement:         "GENERATED BY DEFAULT AS IDENTITY",
	AutoIncrementPosition: dialect.AutoIncrementAfterType,
	AddColumnBare:         true,
	DropForeignKey:        "DROP CONSTRAINT",
	RenameTable:           dialect.RenameAlterTable,
	AlterForeignKeys:      true,

	Functions: map[query.Function]string{
		query.FuncIfNull:     "NVL",
		query.FuncCharLength: "LENGTH",
		query.FuncRandom:     "DBMS_RANDOM.VALUE",
	},

	SupportsRowLocking:    true,
	SupportsNullsOrdering: true,
	SupportsTruncate:      true,
	SupportsLateral:       true,
	SupportsWindowFrames:  true,
	SupportsIndexes:       true,
	SupportsForeignKeys:   true,

	AlterConstraints: true,
	Explain:          dialect.ExplainPlanFor,
	Views: dialect.ViewConfig{
		Supported: true,
		OrReplace: true,
		Rename:    dialect.RenameStatement,
	},
}
