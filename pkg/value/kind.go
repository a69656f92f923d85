package value

// Kind is the tag of a Value. Every kind has its own NULL.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindBool
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindTinyUnsigned
	KindSmallUnsigned
	KindUnsigned
	KindBigUnsigned
	KindFloat
	KindDouble
	KindChar
	KindString
	KindBytes
	KindJSON
	KindDate
	KindTime
	KindDateTime
	KindDateTimeUTC
	KindDateTimeLocal
	KindDateTimeWithTimeZone
	KindUUID
	KindDecimal
	KindBigDecimal
	KindIPNetwork
	KindMacAddress
	KindArray
	KindRange
	KindVector
	KindEnum
)

var kindNames = [...]string{
	KindInvalid:              "Invalid",
	KindBool:                 "Bool",
	KindTinyInt:              "TinyInt",
	KindSmallInt:             "SmallInt",
	KindInt:                  "Int",
	KindBigInt:               "BigInt",
	KindTinyUnsigned:         "TinyUnsigned",
	KindSmallUnsigned:        "SmallUnsigned",
	KindUnsigned:             "Unsigned",
	KindBigUnsigned:          "BigUnsigned",
	KindFloat:                "Float",
	KindDouble:               "Double",
	KindChar:                 "Char",
	KindString:               "String",
	KindBytes:                "Bytes",
	KindJSON:                 "Json",
	KindDate:                 "Date",
	KindTime:                 "Time",
	KindDateTime:             "DateTime",
	KindDateTimeUTC:          "DateTimeUtc",
	KindDateTimeLocal:        "DateTimeLocal",
	KindDateTimeWithTimeZone: "DateTimeWithTimeZone",
	KindUUID:                 "Uuid",
	KindDecimal:              "Decimal",
	KindBigDecimal:           "BigDecimal",
	KindIPNetwork:            "IpNetwork",
	KindMacAddress:           "MacAddress",
	KindArray:                "Array",
	KindRange:                "Range",
	KindVector:               "Vector",
	KindEnum:                 "Enum",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindTinyInt && k <= KindBigUnsigned
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= KindTinyUnsigned && k <= KindBigUnsigned
}

// IsFloat reports whether k is Float or Double.
func (k Kind) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}

// IsNumeric reports whether k renders as an unquoted number.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat() || k == KindDecimal || k == KindBigDecimal
}

// IsTemporal reports whether k is a date, time or timestamp kind.
func (k Kind) IsTemporal() bool {
	return k >= KindDate && k <= KindDateTimeWithTimeZone
}
