package schema

import "github.com/leapstack-labs/querykit/pkg/iden"

// TypeKind is the portable column type.
type TypeKind uint8

// Column type kinds.
const (
	TypeChar TypeKind = iota + 1
	TypeString
	TypeText
	TypeTinyInteger
	TypeSmallInteger
	TypeInteger
	TypeBigInteger
	TypeTinyUnsigned
	TypeSmallUnsigned
	TypeUnsigned
	TypeBigUnsigned
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeDateTime
	TypeTimestamp
	TypeTimestampWithTimeZone
	TypeTime
	TypeDate
	TypeYear
	TypeInterval
	TypeBinary
	TypeVarBinary
	TypeBit
	TypeVarBit
	TypeBlob
	TypeBoolean
	TypeMoney
	TypeJSON
	TypeJSONBinary
	TypeUUID
	TypeCustom
	TypeEnum
	TypeArray
	TypeCidr
	TypeInet
	TypeMacAddr
	TypeLTree
	TypeVector
)

var typeKindNames = [...]string{
	TypeChar:                  "char",
	TypeString:                "string",
	TypeText:                  "text",
	TypeTinyInteger:           "tiny_integer",
	TypeSmallInteger:          "small_integer",
	TypeInteger:               "integer",
	TypeBigInteger:            "big_integer",
	TypeTinyUnsigned:          "tiny_unsigned",
	TypeSmallUnsigned:         "small_unsigned",
	TypeUnsigned:              "unsigned",
	TypeBigUnsigned:           "big_unsigned",
	TypeFloat:                 "float",
	TypeDouble:                "double",
	TypeDecimal:               "decimal",
	TypeDateTime:              "date_time",
	TypeTimestamp:             "timestamp",
	TypeTimestampWithTimeZone: "timestamp_with_time_zone",
	TypeTime:                  "time",
	TypeDate:                  "date",
	TypeYear:                  "year",
	TypeInterval:              "interval",
	TypeBinary:                "binary",
	TypeVarBinary:             "var_binary",
	TypeBit:                   "bit",
	TypeVarBit:                "var_bit",
	TypeBlob:                  "blob",
	TypeBoolean:               "boolean",
	TypeMoney:                 "money",
	TypeJSON:                  "json",
	TypeJSONBinary:            "json_binary",
	TypeUUID:                  "uuid",
	TypeCustom:                "custom",
	TypeEnum:                  "enum",
	TypeArray:                 "array",
	TypeCidr:                  "cidr",
	TypeInet:                  "inet",
	TypeMacAddr:               "mac_addr",
	TypeLTree:                 "ltree",
	TypeVector:                "vector",
}

// String returns the kind name used in error messages.
func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) && typeKindNames[k] != "" {
		return typeKindNames[k]
	}
	return "unknown"
}

// ColumnType is a column's type with its parameters. Length is used by
// char, string, binary, varbinary, bit, varbit and vector; Precision and
// Scale by decimal and money.
type ColumnType struct {
	Kind      TypeKind
	Length    uint32
	Precision uint32
	Scale     uint32
	// Name is the custom type or enum type name.
	Name iden.Dyn
	// Variants are the enum labels.
	Variants []string
	// Elem is the array element type.
	Elem *ColumnType
	// Fields qualifies intervals, e.g. "YEAR TO MONTH".
	Fields string
}

// HasLength reports whether an explicit length was set.
func (t ColumnType) HasLength() bool { return t.Length > 0 }

// HasPrecision reports whether an explicit precision was set.
func (t ColumnType) HasPrecision() bool { return t.Precision > 0 }
